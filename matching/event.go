package matching

// EventKind is an enumeration of possible order event kinds.
type EventKind uint8

const (
	// EventNew submits a new order to the engine.
	EventNew EventKind = iota + 1
	// EventCancel removes a previously submitted order from the book.
	EventCancel
)

func (ek EventKind) String() string {
	switch ek {
	case EventNew:
		return "new"
	case EventCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// OrderEvent is a single inbound instruction from the event source.
// Price and Quantity are meaningful only for New events, Price only for
// limit orders. Sequence is assigned by the source in receipt order and
// defines time priority.
type OrderEvent struct {
	Kind     EventKind
	Sequence uint64
	OrderID  uint64
	Side     OrderSide
	Type     OrderType
	Price    Uint
	Quantity Uint
}

// NewLimitOrderEvent creates a New event carrying a limit order.
func NewLimitOrderEvent(sequence, orderID uint64, side OrderSide, price, quantity Uint) OrderEvent {
	return OrderEvent{
		Kind:     EventNew,
		Sequence: sequence,
		OrderID:  orderID,
		Side:     side,
		Type:     OrderTypeLimit,
		Price:    price,
		Quantity: quantity,
	}
}

// NewMarketOrderEvent creates a New event carrying a market order.
func NewMarketOrderEvent(sequence, orderID uint64, side OrderSide, quantity Uint) OrderEvent {
	return OrderEvent{
		Kind:     EventNew,
		Sequence: sequence,
		OrderID:  orderID,
		Side:     side,
		Type:     OrderTypeMarket,
		Quantity: quantity,
	}
}

// NewCancelOrderEvent creates a Cancel event for a previously submitted order.
func NewCancelOrderEvent(sequence, orderID uint64) OrderEvent {
	return OrderEvent{
		Kind:     EventCancel,
		Sequence: sequence,
		OrderID:  orderID,
	}
}
