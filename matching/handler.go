package matching

//go:generate mockgen -destination=mocks/interfaces.go -package=mockmatching . Handler

// Handler is the callback surface through which the engine reports
// everything the caller may observe. Callbacks are invoked synchronously
// in event-processing order, which makes their order authoritative.
type Handler interface {

	// Orders handlers
	OnAcceptOrder(orderBook *OrderBook, order *Order)
	OnAddOrder(orderBook *OrderBook, order *Order)
	OnUpdateOrder(orderBook *OrderBook, order *Order)
	OnDeleteOrder(orderBook *OrderBook, order *Order)
	OnExpireOrder(orderBook *OrderBook, order *Order)

	// Matching handlers
	// NOTE: OnExecuteTrade is called AFTER both orders' rest quantities are reduced.
	OnExecuteTrade(orderBook *OrderBook, trade Trade)

	// Rejects and errors
	OnRejectEvent(orderBook *OrderBook, event OrderEvent, err error)
	OnError(orderBook *OrderBook, err error)
}
