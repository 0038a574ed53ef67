package matching

// Engine applies the price-time priority algorithm to inbound order
// events, mutating the order book and producing the trade sequence.
// The order book is an explicitly owned instance passed in on creation;
// no other component may mutate it while the engine is in use.
//
// Processing is strictly sequential: Process applies exactly one event to
// full completion, including every resulting trade and book mutation,
// before returning. Both time priority and the no-crossed-book invariant
// depend on this serialization.
// NOTE: Not thread-safe.
type Engine struct {
	handler Handler

	// Order book exclusively owned by the engine
	orderBook *OrderBook

	// Last assigned trade sequence number
	tradeSeq uint64
}

// NewEngine creates and returns new Engine instance working on the given order book.
func NewEngine(handler Handler, orderBook *OrderBook) *Engine {
	return &Engine{
		handler:   handler,
		orderBook: orderBook,
	}
}

// OrderBook returns the order book owned by the engine.
func (e *Engine) OrderBook() *OrderBook {
	return e.orderBook
}

// Trades returns the amount of trades emitted so far.
func (e *Engine) Trades() uint64 {
	return e.tradeSeq
}

// Process applies a single order event to completion.
//
// Per-event failures (malformed order, cancel of an unknown id) are
// reported through Handler.OnRejectEvent and leave the book untouched;
// the returned error is nil so the caller continues with the next event.
// A non-nil error signals an internal invariant violation and the caller
// must stop processing.
func (e *Engine) Process(event OrderEvent) error {
	switch event.Kind {
	case EventNew:
		return e.processNew(event)
	case EventCancel:
		return e.processCancel(event)
	default:
		e.handler.OnRejectEvent(e.orderBook, event, ErrInvalidEventKind)
		return nil
	}
}

func (e *Engine) processNew(event OrderEvent) error {
	ob := e.orderBook

	// Construct the order of the corresponding type
	var order Order
	switch event.Type {
	case OrderTypeLimit:
		order = NewLimitOrder(event.OrderID, event.Side, event.Price, event.Quantity, event.Sequence)
	case OrderTypeMarket:
		order = NewMarketOrder(event.OrderID, event.Side, event.Quantity, event.Sequence)
	default:
		e.handler.OnRejectEvent(ob, event, ErrInvalidOrderType)
		return nil
	}

	// Validate order parameters, reject with zero book mutation on failure
	if err := order.Validate(); err != nil {
		e.handler.OnRejectEvent(ob, event, err)
		return nil
	}
	if ob.Order(order.id) != nil {
		e.handler.OnRejectEvent(ob, event, ErrOrderDuplicate)
		return nil
	}

	e.handler.OnAcceptOrder(ob, &order)

	// Match the order against the opposite side of the book
	if err := e.matchOrder(ob, &order); err != nil {
		return err
	}

	// Place or discard the remainder
	if !order.IsExecuted() {
		switch order.orderType {
		case OrderTypeLimit:
			if err := ob.Insert(&order); err != nil {
				e.handler.OnError(ob, err)
				return err
			}
			e.handler.OnAddOrder(ob, &order)
		case OrderTypeMarket:
			// Market orders never rest, the unmatched remainder is discarded
			order.status = OrderStatusExpired
			e.handler.OnExpireOrder(ob, &order)
		}
	}

	return e.verify(ob)
}

func (e *Engine) processCancel(event OrderEvent) error {
	ob := e.orderBook

	order, err := ob.Cancel(event.OrderID)
	if err != nil {
		e.handler.OnRejectEvent(ob, event, err)
		return nil
	}

	order.status = OrderStatusCancelled
	e.handler.OnDeleteOrder(ob, order)
	return nil
}

// verify checks the no-crossed-book invariant after a matching pass completes.
func (e *Engine) verify(ob *OrderBook) error {
	bid, ask := ob.BestBid(), ob.BestAsk()
	if bid != nil && ask != nil && bid.Value().Price().GreaterThanOrEqualTo(ask.Value().Price()) {
		e.handler.OnError(ob, ErrCrossedBook)
		return ErrCrossedBook
	}
	return nil
}
