package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// NodeStatus is the lifecycle state of a registered TEE node.
type NodeStatus uint32

const (
	NodeStatusActive NodeStatus = iota + 1
	NodeStatusSuspended
	NodeStatusSlashed
	NodeStatusRetired
)

// String returns the human-readable status name.
func (s NodeStatus) String() string {
	switch s {
	case NodeStatusActive:
		return "ACTIVE"
	case NodeStatusSuspended:
		return "SUSPENDED"
	case NodeStatusSlashed:
		return "SLASHED"
	case NodeStatusRetired:
		return "RETIRED"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint32(s))
	}
}

// Node is a registered TEE worker. The enclave pubkey is pinned at
// registration: key rotation requires retiring and re-registering, so a
// compromised operator cannot swap in a non-enclave key.
type Node struct {
	Address       string     `json:"address"`
	EnclavePubkey []byte     `json:"enclave_pubkey"`
	MrEnclave     []byte     `json:"mr_enclave"`
	MrSigner      []byte     `json:"mr_signer"`
	TeeType       uint32     `json:"tee_type"`
	Status        NodeStatus `json:"status"`
	AttestedAt    int64      `json:"attested_at"`
	RegisteredAt  int64      `json:"registered_at"`
}

// Validate checks structural validity of a node record.
func (n Node) Validate() error {
	if _, err := sdk.AccAddressFromBech32(n.Address); err != nil {
		return fmt.Errorf("invalid node address: %w", err)
	}
	if len(n.EnclavePubkey) != EnclavePubkeySize {
		return fmt.Errorf("node %s: enclave pubkey must be %d bytes", n.Address, EnclavePubkeySize)
	}
	if len(n.MrEnclave) != MeasurementSize || len(n.MrSigner) != MeasurementSize {
		return fmt.Errorf("node %s: measurements must be %d bytes", n.Address, MeasurementSize)
	}
	if n.Status < NodeStatusActive || n.Status > NodeStatusRetired {
		return fmt.Errorf("node %s: invalid status %d", n.Address, n.Status)
	}
	return nil
}

// Stake tracks a node's bonded and unbonding balances.
type Stake struct {
	Node            string   `json:"node"`
	Amount          math.Int `json:"amount"`
	UnbondingAmount math.Int `json:"unbonding_amount"`
	UnlockHeight    int64    `json:"unlock_height"`
}

// NewStake returns an empty stake record for a node.
func NewStake(node string) Stake {
	return Stake{
		Node:            node,
		Amount:          math.ZeroInt(),
		UnbondingAmount: math.ZeroInt(),
	}
}

// Reward is a node's accrued, unclaimed reward balance.
type Reward struct {
	Node   string   `json:"node"`
	Amount math.Int `json:"amount"`
}
