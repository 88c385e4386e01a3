package types

const (
	// ModuleName defines the module name
	ModuleName = "escrow"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for the escrow module
	RouterKey = ModuleName
)

// DefaultDenom is the native staking and payment denom.
const DefaultDenom = "uarc"
