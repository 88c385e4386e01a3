package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// LockState is the lifecycle state of an escrow lock.
type LockState uint32

const (
	LockStateLocked LockState = iota + 1
	LockStateDisputed
	LockStateResolved
	LockStateClosed
)

// String returns the human-readable state name.
func (s LockState) String() string {
	switch s {
	case LockStateLocked:
		return "LOCKED"
	case LockStateDisputed:
		return "DISPUTED"
	case LockStateResolved:
		return "RESOLVED"
	case LockStateClosed:
		return "CLOSED"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint32(s))
	}
}

// LockRecord is a single escrow lock. The id is caller-owned: the locking
// module chooses it and is responsible for uniqueness within its namespace.
type LockRecord struct {
	Id           uint64    `json:"id"`
	Payer        string    `json:"payer"`
	Amount       math.Int  `json:"amount"`
	State        LockState `json:"state"`
	LastNonce    uint64    `json:"last_nonce"`
	ExpiryHeight int64     `json:"expiry_height,omitempty"` // 0 when no expiry is scheduled
	CreatedAt    int64     `json:"created_at"`
}

// Validate checks structural validity of a lock record.
func (r LockRecord) Validate() error {
	if _, err := sdk.AccAddressFromBech32(r.Payer); err != nil {
		return fmt.Errorf("invalid payer address: %w", err)
	}
	if r.Amount.IsNil() || r.Amount.IsNegative() {
		return fmt.Errorf("lock %d has invalid amount", r.Id)
	}
	if r.State < LockStateLocked || r.State > LockStateClosed {
		return fmt.Errorf("lock %d has invalid state %d", r.Id, r.State)
	}
	return nil
}

// SplitEntry is one recipient share of a multi-party release.
type SplitEntry struct {
	Recipient string   `json:"recipient"`
	Amount    math.Int `json:"amount"`
}

// ExpiryAction is what an expiry policy decided to do with an expired lock.
type ExpiryAction uint8

const (
	ExpiryNoop ExpiryAction = iota
	ExpiryRelease
	ExpiryRefund
)

// String returns the action name used in expiry events.
func (a ExpiryAction) String() string {
	switch a {
	case ExpiryRelease:
		return "release"
	case ExpiryRefund:
		return "refund"
	default:
		return "noop"
	}
}

// ExpiryDecision pairs an action with the recipient it applies to.
// Recipient is ignored for ExpiryNoop.
type ExpiryDecision struct {
	Action    ExpiryAction
	Recipient sdk.AccAddress
}

// ExpiryPolicy decides the disposition of a lock whose scheduled expiry
// height has been reached. Registered by the module that owns the lock
// namespace (the compute scheduler in practice).
type ExpiryPolicy interface {
	OnExpire(ctx sdk.Context, lockID uint64) ExpiryDecision
}
