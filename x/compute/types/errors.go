package types

import (
	"cosmossdk.io/errors"
)

// x/compute module sentinel errors
var (
	ErrRequestNotFound         = errors.Register(ModuleName, 2, "request not found")
	ErrRequestAlreadyProcessed = errors.Register(ModuleName, 3, "request already processed")
	ErrNotOwner                = errors.Register(ModuleName, 4, "sender is not the owner")
	ErrCannotCancel            = errors.Register(ModuleName, 5, "request cannot be cancelled")
	ErrNodeNotAvailable        = errors.Register(ModuleName, 6, "no node available")
	ErrSignatureInvalid        = errors.Register(ModuleName, 7, "result signature invalid")
	ErrComputationError        = errors.Register(ModuleName, 8, "computation error")
	ErrTimeout                 = errors.Register(ModuleName, 9, "request timed out")
	ErrUserCancelled           = errors.Register(ModuleName, 10, "request cancelled by user")
	ErrInputTooLarge           = errors.Register(ModuleName, 11, "input data too large")
	ErrQueueFull               = errors.Register(ModuleName, 12, "pending queue is full")
	ErrTooManyVersions         = errors.Register(ModuleName, 13, "result version limit reached")
	ErrResultNotFound          = errors.Register(ModuleName, 14, "result not found")
	ErrInvalidAddress          = errors.Register(ModuleName, 15, "invalid address")
	ErrInvalidRequest          = errors.Register(ModuleName, 16, "invalid request")
	ErrNotAssigned             = errors.Register(ModuleName, 17, "request not assigned to node")
)
