package matching

import (
	"github.com/quantarc/exchange-sim/types/avl"
)

// matchOrder matches the given incoming order against the opposite side of
// the book, starting from the top. Liquidity is consumed in price order and,
// within a level, in strict FIFO order. Every match prints at the resting
// order's price.
func (e *Engine) matchOrder(ob *OrderBook, order *Order) error {
	for !order.IsExecuted() {

		// Determine the best opposite price level
		var priceLevel *avl.Node[Uint, *PriceLevel]
		if order.IsBuy() {
			priceLevel = ob.BestAsk()
		} else {
			priceLevel = ob.BestBid()
		}
		if priceLevel == nil {
			return nil
		}

		// Check the incoming limit price crosses the opposite best price
		restingPrice := priceLevel.Value().Price()
		if order.IsLimit() {
			if order.IsBuy() && order.price.LessThan(restingPrice) {
				return nil
			}
			if order.IsSell() && order.price.GreaterThan(restingPrice) {
				return nil
			}
		}

		// Execute against the oldest order of the level
		resting := priceLevel.Value().Front()
		quantity := Min(order.restQuantity, resting.restQuantity)

		resting, err := ob.ReduceFront(resting.side, restingPrice, quantity)
		if err != nil {
			e.handler.OnError(ob, err)
			return err
		}
		order.restQuantity = order.restQuantity.Sub(quantity)

		// The trade prints at the resting order's price
		e.tradeSeq++
		trade := Trade{
			SeqNo:    e.tradeSeq,
			Price:    restingPrice,
			Quantity: quantity,
		}
		if order.IsBuy() {
			trade.BuyOrderID, trade.SellOrderID = order.id, resting.id
		} else {
			trade.BuyOrderID, trade.SellOrderID = resting.id, order.id
		}
		e.handler.OnExecuteTrade(ob, trade)

		// Report the resting order state
		if resting.IsExecuted() {
			resting.status = OrderStatusFilled
			e.handler.OnDeleteOrder(ob, resting)
		} else {
			resting.status = OrderStatusPartiallyFilled
			e.handler.OnUpdateOrder(ob, resting)
		}

		// Track the incoming order state
		if order.IsExecuted() {
			order.status = OrderStatusFilled
		} else {
			order.status = OrderStatusPartiallyFilled
		}
	}
	return nil
}
