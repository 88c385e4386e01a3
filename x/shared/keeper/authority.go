// Package keeper provides shared keeper utilities used across Arcanum modules.
package keeper

import (
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
)

// ValidateAuthority checks that the provided authority matches the expected
// authority. Used by every governance-gated message handler.
func ValidateAuthority(expected, actual string) error {
	if expected != actual {
		return govtypes.ErrInvalidSigner.Wrapf(
			"invalid authority; expected %s, got %s",
			expected,
			actual,
		)
	}
	return nil
}
