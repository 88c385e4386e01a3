package types

import (
	"cosmossdk.io/errors"
)

// oracle sentinel errors
var (
	ErrInvalidPrice       = errors.Register(ModuleName, 2, "price must be positive")
	ErrInvalidQuantity    = errors.Register(ModuleName, 3, "quantity must be positive")
	ErrOrderTooLarge      = errors.Register(ModuleName, 4, "order exceeds single-order limit")
	ErrArithmeticOverflow = errors.Register(ModuleName, 5, "arithmetic overflow")
	ErrRateOutOfBand      = errors.Register(ModuleName, 6, "exchange rate outside sanity band")
	ErrRateStale          = errors.Register(ModuleName, 7, "exchange rate update interval not elapsed")
	ErrColdStartActive    = errors.Register(ModuleName, 8, "cold start still active")
	ErrColdStartExited    = errors.Register(ModuleName, 9, "cold start already exited")
	ErrDeviationTooLarge  = errors.Register(ModuleName, 10, "price deviates too far from reference")
	ErrPriceOutOfRange    = errors.Register(ModuleName, 11, "price out of measurable range")
	ErrUnauthorizedFeeder = errors.Register(ModuleName, 12, "feeder not authorized")
	ErrInvalidVenue       = errors.Register(ModuleName, 13, "unknown venue")
	ErrInvalidAddress     = errors.Register(ModuleName, 14, "invalid address")
)
