package types

import (
	"cosmossdk.io/errors"
)

// TEE registry sentinel errors
var (
	ErrNodeNotFound         = errors.Register(ModuleName, 2, "node not found")
	ErrNodeAlreadyRegistered = errors.Register(ModuleName, 3, "node already registered")
	ErrAttestationInvalid   = errors.Register(ModuleName, 4, "attestation invalid")
	ErrAttestationExpired   = errors.Register(ModuleName, 5, "attestation expired")
	ErrEnclaveNotAllowed    = errors.Register(ModuleName, 6, "enclave measurement not allow-listed")
	ErrSignerNotAllowed     = errors.Register(ModuleName, 7, "signer measurement not allow-listed")
	ErrInsufficientStake    = errors.Register(ModuleName, 8, "stake below minimum")
	ErrUnbondingPending     = errors.Register(ModuleName, 9, "unbonding already in progress")
	ErrNothingToWithdraw    = errors.Register(ModuleName, 10, "no unbonded stake to withdraw")
	ErrUnbondingLocked      = errors.Register(ModuleName, 11, "unbonding period not elapsed")
	ErrPubkeyImmutable      = errors.Register(ModuleName, 12, "enclave pubkey cannot change")
	ErrNodeNotActive        = errors.Register(ModuleName, 13, "node not active")
	ErrNodeNotSuspended     = errors.Register(ModuleName, 14, "node not suspended")
	ErrInvalidAmount        = errors.Register(ModuleName, 15, "invalid amount")
	ErrInvalidAddress       = errors.Register(ModuleName, 16, "invalid address")
	ErrNoReward             = errors.Register(ModuleName, 17, "no reward accrued")
	ErrInvalidMeasurement   = errors.Register(ModuleName, 18, "invalid measurement encoding")
)
