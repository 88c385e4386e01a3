package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/arcanum-chain/arcanum/x/tee/types"
)

// InitGenesis initializes the tee module state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}

	for _, node := range genState.Nodes {
		if err := k.SetNode(ctx, node); err != nil {
			panic(err)
		}
	}
	for _, stake := range genState.Stakes {
		addr, err := sdk.AccAddressFromBech32(stake.Node)
		if err != nil {
			panic(err)
		}
		if err := k.SetStake(ctx, addr, stake); err != nil {
			panic(err)
		}
	}
	for _, reward := range genState.Rewards {
		addr, err := sdk.AccAddressFromBech32(reward.Node)
		if err != nil {
			panic(err)
		}
		if err := k.SetReward(ctx, addr, reward); err != nil {
			panic(err)
		}
	}

	if !genState.TotalSlashed.IsNil() {
		k.SetTotalSlashed(ctx, genState.TotalSlashed)
	}
}

// ExportGenesis exports the tee module state to a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	params, err := k.GetParams(ctx)
	if err != nil {
		panic(err)
	}

	var nodes []types.Node
	var stakes []types.Stake
	var rewards []types.Reward

	k.IterateNodes(ctx, func(node types.Node) bool {
		nodes = append(nodes, node)

		addr, err := sdk.AccAddressFromBech32(node.Address)
		if err != nil {
			return false
		}
		stake := k.GetStake(ctx, addr)
		if stake.Amount.IsPositive() || stake.UnbondingAmount.IsPositive() {
			stakes = append(stakes, stake)
		}
		reward := k.GetReward(ctx, addr)
		if reward.Amount.IsPositive() {
			rewards = append(rewards, reward)
		}
		return false
	})

	return &types.GenesisState{
		Params:       params,
		Nodes:        nodes,
		Stakes:       stakes,
		Rewards:      rewards,
		TotalSlashed: k.GetTotalSlashed(ctx),
	}
}
