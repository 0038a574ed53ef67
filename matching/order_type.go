package matching

// OrderType is an enumeration of possible order types.
type OrderType uint8

const (
	// A limit order is an order to buy or sell at a specific price or better.
	// A buy limit order can only be executed at the limit price or lower, and
	// a sell limit order can only be executed at the limit price or higher.
	// A limit order is not guaranteed to execute; the unexecuted remainder
	// rests in the book awaiting a counterparty.
	OrderTypeLimit OrderType = iota + 1

	// A market order is an order to buy or sell at the best available price.
	// It consumes resting liquidity immediately and never rests: whatever
	// quantity cannot be matched right away is discarded.
	OrderTypeMarket
)

func (ot OrderType) String() string {
	switch ot {
	case OrderTypeLimit:
		return "limit"
	case OrderTypeMarket:
		return "market"
	default:
		return "unknown"
	}
}
