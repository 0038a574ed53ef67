package matching

import (
	"github.com/quantarc/exchange-sim/types/avl"
	"github.com/quantarc/exchange-sim/types/list"
)

// Order contains information about a single order.
// An order is an instruction to buy or sell a quantity of the traded
// instrument, either at a fixed limit price or at the best available
// market price. The id is unique for the lifetime of the order and the
// sequence number records arrival order, which defines time priority.
type Order struct {
	id        uint64
	orderType OrderType
	side      OrderSide
	status    OrderStatus

	price Uint

	quantity     Uint
	restQuantity Uint

	// Arrival sequence number assigned by the event source.
	sequence uint64

	// Pointer to the price level where the order is placed.
	priceLevel *avl.Node[Uint, *PriceLevel]

	// Pointer to the order queue element where the order is placed.
	orderQueued *list.Element[*Order]
}

// ID returns the order ID.
func (o *Order) ID() uint64 {
	return o.id
}

// Type returns the order type.
func (o *Order) Type() OrderType {
	return o.orderType
}

// IsLimit returns true if limit order.
func (o *Order) IsLimit() bool {
	return o.orderType == OrderTypeLimit
}

// IsMarket returns true if market order.
func (o *Order) IsMarket() bool {
	return o.orderType == OrderTypeMarket
}

// Side returns the market side of the order.
func (o *Order) Side() OrderSide {
	return o.side
}

// IsBuy returns true if buy order.
func (o *Order) IsBuy() bool {
	return o.side == OrderSideBuy
}

// IsSell returns true if sell order.
func (o *Order) IsSell() bool {
	return o.side == OrderSideSell
}

// Status returns the current lifecycle status of the order.
func (o *Order) Status() OrderStatus {
	return o.status
}

// Price returns the order limit price.
func (o *Order) Price() Uint {
	return o.price
}

// Quantity returns the original order quantity.
func (o *Order) Quantity() Uint {
	return o.quantity
}

// RestQuantity returns order remaining quantity.
func (o *Order) RestQuantity() Uint {
	return o.restQuantity
}

// ExecutedQuantity returns order executed quantity.
func (o *Order) ExecutedQuantity() Uint {
	return o.quantity.Sub(o.restQuantity)
}

// Sequence returns the arrival sequence number of the order.
func (o *Order) Sequence() uint64 {
	return o.sequence
}

// IsExecuted returns true if the order is completely executed.
func (o *Order) IsExecuted() bool {
	return o.restQuantity.IsZero()
}

// Validate returns error if the order fails to pass validation so can be used safely.
func (o *Order) Validate() error {
	if o.side != OrderSideBuy && o.side != OrderSideSell {
		return ErrInvalidOrderSide
	}
	if o.quantity.IsZero() {
		return ErrInvalidOrderQuantity
	}
	switch o.orderType {
	case OrderTypeLimit:
		if o.price.IsZero() {
			return ErrInvalidOrderPrice
		}
	case OrderTypeMarket:
	default:
		return ErrInvalidOrderType
	}
	return nil
}
