package types

const (
	// ModuleName defines the module name
	ModuleName = "compute"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// DefaultDenom is the fee denom for compute requests
	DefaultDenom = "uarc"
)

const (
	// InputHashSize is the size of the sha256 input commitment
	InputHashSize = 32

	// ManifestHashSize is the size of the sha256 manifest commitment
	ManifestHashSize = 32

	// MaxManifestCidLength bounds the stored manifest CID
	MaxManifestCidLength = 64

	// MaxTypeIndexLength bounds the per-type index blob on a result
	MaxTypeIndexLength = 256
)
