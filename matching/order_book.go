package matching

import (
	"github.com/tidwall/hashmap"

	"github.com/quantarc/exchange-sim/types/avl"
)

// OrderBook stores resting buy and sell orders of a single instrument in
// price level order. Bids are kept best (highest) price first, asks best
// (lowest) price first; each level is a FIFO queue of orders sharing that
// price. The id index always reflects exactly the orders resting in the
// ladders.
// NOTE: Not thread-safe. The book is exclusively owned by one Engine.
type OrderBook struct {
	// Bid/Ask price levels
	bids avl.Tree[Uint, *PriceLevel]
	asks avl.Tree[Uint, *PriceLevel]

	// Resting orders by id
	orders *hashmap.Map[uint64, *Order]
}

// NewOrderBook creates and returns new OrderBook instance.
func NewOrderBook() *OrderBook {
	return &OrderBook{
		bids:   avl.NewTree[Uint, *PriceLevel](func(a, b Uint) int { return -a.Cmp(b) }),
		asks:   avl.NewTree[Uint, *PriceLevel](func(a, b Uint) int { return a.Cmp(b) }),
		orders: hashmap.New[uint64, *Order](defaultReservedOrderSlots),
	}
}

// IsEmpty returns true if the order book has no orders at all.
func (ob *OrderBook) IsEmpty() bool {
	return ob.Size() == 0
}

// Size returns total amount of resting orders in the order book.
func (ob *OrderBook) Size() int {
	return ob.orders.Len()
}

// Order returns the resting order with given id or nil.
func (ob *OrderBook) Order(id uint64) *Order {
	if order, ok := ob.orders.Get(id); ok {
		return order
	}
	return nil
}

// BidLevels returns the amount of distinct bid price levels.
func (ob *OrderBook) BidLevels() int {
	return ob.bids.Size()
}

// AskLevels returns the amount of distinct ask price levels.
func (ob *OrderBook) AskLevels() int {
	return ob.asks.Size()
}

// BestBid returns the highest bid price level or nil when the side is empty.
func (ob *OrderBook) BestBid() *avl.Node[Uint, *PriceLevel] {
	return ob.bids.MostLeft()
}

// BestAsk returns the lowest ask price level or nil when the side is empty.
func (ob *OrderBook) BestAsk() *avl.Node[Uint, *PriceLevel] {
	return ob.asks.MostLeft()
}

// GetLevel returns the price level with given side and price or nil.
func (ob *OrderBook) GetLevel(side OrderSide, price Uint) *avl.Node[Uint, *PriceLevel] {
	return ob.ladder(side).Find(price)
}

// Insert places a limit order at the back of the queue for its price,
// creating the level when absent. The order becomes last in time priority
// at that price.
func (ob *OrderBook) Insert(order *Order) error {
	if err := order.Validate(); err != nil {
		return err
	}
	if !order.IsLimit() {
		// Market orders never rest
		return ErrInvalidOrderType
	}
	if order.restQuantity.IsZero() {
		return ErrInvalidOrderQuantity
	}
	if _, ok := ob.orders.Get(order.id); ok {
		return ErrOrderDuplicate
	}

	tree := ob.ladder(order.side)

	// Find the price level for the order, create a new one if no one found
	node := tree.Find(order.price)
	if node == nil {
		var err error
		node, err = tree.Add(order.price, NewPriceLevel(order.price))
		if err != nil {
			return err
		}
	}

	// Enqueue the order to the order queue of the price level
	priceLevel := node.Value()
	priceLevel.volume = priceLevel.volume.Add(order.restQuantity)
	order.orderQueued = priceLevel.queue.PushBack(order)
	order.priceLevel = node

	ob.orders.Set(order.id, order)
	return nil
}

// RemoveFront pops the oldest order at the level with given side and price,
// deleting the level if it becomes empty.
func (ob *OrderBook) RemoveFront(side OrderSide, price Uint) (*Order, error) {
	tree := ob.ladder(side)
	node := tree.Find(price)
	if node == nil {
		return nil, ErrPriceLevelNotFound
	}

	priceLevel := node.Value()
	order := priceLevel.Front()

	priceLevel.volume = priceLevel.volume.Sub(order.restQuantity)
	ob.unlink(tree, priceLevel, order)
	return order, nil
}

// ReduceFront decrements the rest quantity of the front order at the level
// with given side and price by at most quantity, removing the order (and an
// emptied level) when it reaches zero. Returns the affected order.
func (ob *OrderBook) ReduceFront(side OrderSide, price Uint, quantity Uint) (*Order, error) {
	tree := ob.ladder(side)
	node := tree.Find(price)
	if node == nil {
		return nil, ErrPriceLevelNotFound
	}

	priceLevel := node.Value()
	order := priceLevel.Front()

	quantity = Min(quantity, order.restQuantity)
	order.restQuantity = order.restQuantity.Sub(quantity)
	priceLevel.volume = priceLevel.volume.Sub(quantity)

	if order.IsExecuted() {
		ob.unlink(tree, priceLevel, order)
	}
	return order, nil
}

// Cancel locates the order via the id index and removes it from its level,
// deleting the level if it becomes empty.
func (ob *OrderBook) Cancel(orderID uint64) (*Order, error) {
	order, ok := ob.orders.Get(orderID)
	if !ok {
		return nil, ErrOrderNotFound
	}

	priceLevel := order.priceLevel.Value()
	priceLevel.volume = priceLevel.volume.Sub(order.restQuantity)
	ob.unlink(ob.ladder(order.side), priceLevel, order)
	return order, nil
}

// unlink dequeues the order from its level queue, drops it from the id index
// and deletes the level when it became empty.
func (ob *OrderBook) unlink(tree *avl.Tree[Uint, *PriceLevel], priceLevel *PriceLevel, order *Order) {
	priceLevel.queue.Remove(order.orderQueued)
	order.orderQueued = nil
	order.priceLevel = nil
	ob.orders.Delete(order.id)

	if priceLevel.queue.Len() == 0 {
		tree.Remove(priceLevel.price)
	}
}

func (ob *OrderBook) ladder(side OrderSide) *avl.Tree[Uint, *PriceLevel] {
	if side == OrderSideBuy {
		return &ob.bids
	}
	return &ob.asks
}
