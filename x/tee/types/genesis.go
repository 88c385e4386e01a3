package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// GenesisState defines the tee module's genesis state.
type GenesisState struct {
	Params       Params   `json:"params"`
	Nodes        []Node   `json:"nodes"`
	Stakes       []Stake  `json:"stakes"`
	Rewards      []Reward `json:"rewards"`
	TotalSlashed math.Int `json:"total_slashed"`
}

// DefaultGenesis returns the default genesis state for the tee module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:       DefaultParams(),
		Nodes:        []Node{},
		Stakes:       []Stake{},
		Rewards:      []Reward{},
		TotalSlashed: math.ZeroInt(),
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	nodes := make(map[string]struct{}, len(gs.Nodes))
	for _, node := range gs.Nodes {
		if _, ok := nodes[node.Address]; ok {
			return fmt.Errorf("duplicate node %s", node.Address)
		}
		nodes[node.Address] = struct{}{}
		if err := node.Validate(); err != nil {
			return err
		}
	}

	for _, stake := range gs.Stakes {
		if _, ok := nodes[stake.Node]; !ok {
			return fmt.Errorf("stake for unknown node %s", stake.Node)
		}
		if stake.Amount.IsNil() || stake.Amount.IsNegative() {
			return fmt.Errorf("node %s: invalid stake amount", stake.Node)
		}
		if stake.UnbondingAmount.IsNil() || stake.UnbondingAmount.IsNegative() {
			return fmt.Errorf("node %s: invalid unbonding amount", stake.Node)
		}
	}

	for _, reward := range gs.Rewards {
		if _, ok := nodes[reward.Node]; !ok {
			return fmt.Errorf("reward for unknown node %s", reward.Node)
		}
		if reward.Amount.IsNil() || reward.Amount.IsNegative() {
			return fmt.Errorf("node %s: invalid reward amount", reward.Node)
		}
	}

	if gs.TotalSlashed.IsNil() || gs.TotalSlashed.IsNegative() {
		return fmt.Errorf("total slashed must be non-negative")
	}
	return nil
}
