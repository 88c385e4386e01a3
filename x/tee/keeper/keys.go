package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x01}

	// NodeKeyPrefix is the prefix for node record storage
	NodeKeyPrefix = []byte{0x02}

	// ActiveNodesPrefix is the index of nodes in ACTIVE status
	ActiveNodesPrefix = []byte{0x03}

	// StakeKeyPrefix is the prefix for stake record storage
	StakeKeyPrefix = []byte{0x04}

	// RewardKeyPrefix is the prefix for accrued reward storage
	RewardKeyPrefix = []byte{0x05}

	// TotalSlashedKey stores the cumulative slashed amount
	TotalSlashedKey = []byte{0x06}
)

// NodeKey returns the store key for a node record
func NodeKey(address sdk.AccAddress) []byte {
	return append(NodeKeyPrefix, address.Bytes()...)
}

// ActiveNodeKey returns the index key for an active node
func ActiveNodeKey(address sdk.AccAddress) []byte {
	return append(ActiveNodesPrefix, address.Bytes()...)
}

// StakeKey returns the store key for a stake record
func StakeKey(address sdk.AccAddress) []byte {
	return append(StakeKeyPrefix, address.Bytes()...)
}

// RewardKey returns the store key for a reward record
func RewardKey(address sdk.AccAddress) []byte {
	return append(RewardKeyPrefix, address.Bytes()...)
}
