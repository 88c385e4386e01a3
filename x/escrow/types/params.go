package types

import (
	"fmt"
)

// Params defines the escrow module parameters.
type Params struct {
	// MaxExpiringPerBlock bounds how many locks may be scheduled to expire at
	// a single height, keeping EndBlocker work bounded.
	MaxExpiringPerBlock uint32 `json:"max_expiring_per_block"`
	// MaxSplitEntries bounds the recipient list of a split release.
	MaxSplitEntries uint32 `json:"max_split_entries"`
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return Params{
		MaxExpiringPerBlock: 100,
		MaxSplitEntries:     16,
	}
}

// Validate validates the set of params
func (p Params) Validate() error {
	if p.MaxExpiringPerBlock == 0 {
		return fmt.Errorf("max expiring per block must be positive")
	}
	if p.MaxSplitEntries == 0 {
		return fmt.Errorf("max split entries must be positive")
	}
	return nil
}
