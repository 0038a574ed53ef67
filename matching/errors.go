package matching

import (
	"errors"
)

// Errors used by the package.
var (
	ErrOrderDuplicate       = errors.New("order is duplicated")
	ErrOrderNotFound        = errors.New("order is not found")
	ErrPriceLevelNotFound   = errors.New("price level is not found")
	ErrInvalidOrderSide     = errors.New("invalid order side")
	ErrInvalidOrderType     = errors.New("invalid order type")
	ErrInvalidOrderPrice    = errors.New("invalid order price")
	ErrInvalidOrderQuantity = errors.New("invalid order quantity")
	ErrInvalidEventKind     = errors.New("invalid event kind")

	// ErrCrossedBook signals a logic defect detected after a matching pass:
	// the best bid price reached or crossed the best ask price. It is not
	// recoverable; continued processing could silently corrupt the trade tape.
	ErrCrossedBook = errors.New("order book is crossed")
)
