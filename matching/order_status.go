package matching

// OrderStatus tracks the lifecycle of an order from acceptance to a terminal state.
type OrderStatus uint8

const (
	// OrderStatusResting marks a limit order placed in the book untouched.
	OrderStatusResting OrderStatus = iota + 1
	// OrderStatusPartiallyFilled marks an order with some executed quantity left.
	OrderStatusPartiallyFilled
	// OrderStatusFilled marks a completely executed order.
	OrderStatusFilled
	// OrderStatusCancelled marks an order removed by an explicit cancel.
	OrderStatusCancelled
	// OrderStatusExpired marks a market order whose unmatched remainder was discarded.
	OrderStatusExpired
)

func (os OrderStatus) String() string {
	switch os {
	case OrderStatusResting:
		return "resting"
	case OrderStatusPartiallyFilled:
		return "partially-filled"
	case OrderStatusFilled:
		return "filled"
	case OrderStatusCancelled:
		return "cancelled"
	case OrderStatusExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// IsTerminal returns true if no further transition is possible for the status.
func (os OrderStatus) IsTerminal() bool {
	switch os {
	case OrderStatusFilled, OrderStatusCancelled, OrderStatusExpired:
		return true
	}
	return false
}
