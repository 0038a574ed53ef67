package csvfeed

import "errors"

var (
	ErrBadHeader   = errors.New("csvfeed: unexpected header row")
	ErrBadRecord   = errors.New("csvfeed: malformed record")
	ErrUnknownOp   = errors.New("csvfeed: unknown operation")
	ErrUnknownSide = errors.New("csvfeed: unknown order side")
	ErrUnknownType = errors.New("csvfeed: unknown order type")
)
