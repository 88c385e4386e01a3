package keeper

import (
	"context"

	"github.com/arcanum-chain/arcanum/x/escrow/types"
)

// InitGenesis initializes the escrow module state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}
	k.SetPaused(ctx, genState.Paused)

	for _, lock := range genState.Locks {
		if err := k.SetLock(ctx, lock); err != nil {
			panic(err)
		}
		if lock.ExpiryHeight > 0 {
			if err := k.ScheduleExpiry(ctx, lock.Id, lock.ExpiryHeight); err != nil {
				panic(err)
			}
		}
	}
}

// ExportGenesis exports the escrow module state to a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	params, err := k.GetParams(ctx)
	if err != nil {
		panic(err)
	}

	var locks []types.LockRecord
	k.IterateLocks(ctx, func(record types.LockRecord) bool {
		locks = append(locks, record)
		return false
	})

	return &types.GenesisState{
		Params: params,
		Paused: k.IsPaused(ctx),
		Locks:  locks,
	}
}
