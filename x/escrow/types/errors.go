package types

import (
	"cosmossdk.io/errors"
)

// Escrow module sentinel errors
var (
	ErrNoLock             = errors.Register(ModuleName, 2, "no lock found for id")
	ErrLockExists         = errors.Register(ModuleName, 3, "lock already exists for id")
	ErrInsufficient       = errors.Register(ModuleName, 4, "insufficient locked balance")
	ErrDisputeActive      = errors.Register(ModuleName, 5, "lock is under dispute")
	ErrNotDisputed        = errors.Register(ModuleName, 6, "lock is not under dispute")
	ErrAlreadyClosed      = errors.Register(ModuleName, 7, "lock already closed")
	ErrPaused             = errors.Register(ModuleName, 8, "escrow module is paused")
	ErrInvalidAmount      = errors.Register(ModuleName, 9, "invalid amount")
	ErrInvalidBasisPoints = errors.Register(ModuleName, 10, "basis points out of range")
	ErrTooManyEntries     = errors.Register(ModuleName, 11, "too many split entries")
	ErrTooManyExpiring    = errors.Register(ModuleName, 12, "expiry bucket full for height")
	ErrInvalidAddress     = errors.Register(ModuleName, 13, "invalid address")
	ErrInvalidExpiry      = errors.Register(ModuleName, 14, "invalid expiry height")
)
