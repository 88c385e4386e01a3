package types

const (
	// ModuleName defines the module name
	ModuleName = "tee"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for the tee module
	RouterKey = ModuleName
)

// DefaultDenom is the native staking and payment denom.
const DefaultDenom = "uarc"

// EnclavePubkeySize is the length of a node's ed25519 enclave public key.
const EnclavePubkeySize = 32

// MeasurementSize is the length of MRENCLAVE / MRSIGNER measurements.
const MeasurementSize = 32
