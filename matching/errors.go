package matching

import (
	"errors"
)

// Errors used by the package.
var (
	ErrOrderBookNotFound    = errors.New("order book is not found")
	ErrInvalidOrder         = errors.New("invalid order")
	ErrInvalidTradingPair   = errors.New("invalid trading pair")
	ErrInvalidOrderSide     = errors.New("invalid order side")
	ErrInvalidOrderQuantity = errors.New("invalid order quantity")
	ErrInvalidOrderPrice    = errors.New("invalid order price")
)
