package matching

import (
	"github.com/quantarc/exchange-sim/types/list"
)

// PriceLevel aggregates all resting orders at one price on one side and
// encapsulates the order queue management. Orders in the queue are strictly
// FIFO by arrival sequence.
// NOTE: Not thread-safe.
type PriceLevel struct {
	price  Uint
	volume Uint // total rest quantity of entire order queue
	queue  *list.List[*Order]
}

// NewPriceLevel creates and returns new PriceLevel instance.
func NewPriceLevel(price Uint) *PriceLevel {
	return &PriceLevel{
		price: price,
		queue: list.NewList[*Order](),
	}
}

// Price returns price of the level.
func (pl *PriceLevel) Price() Uint {
	return pl.price
}

// Volume returns total rest quantity of all queued orders.
func (pl *PriceLevel) Volume() Uint {
	return pl.volume
}

// Orders returns amount of orders in the queue.
func (pl *PriceLevel) Orders() int {
	return pl.queue.Len()
}

// Front returns the oldest queued order or nil if the level is empty.
func (pl *PriceLevel) Front() *Order {
	front := pl.queue.Front()
	if front == nil {
		return nil
	}
	return front.Value
}

// Iterator returns a removal-safe iterator over the queued orders.
func (pl *PriceLevel) Iterator() list.Iterator[*Order] {
	return list.NewIterator(pl.queue)
}
