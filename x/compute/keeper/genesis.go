package keeper

import (
	"context"
	"encoding/json"
	"sort"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/arcanum-chain/arcanum/x/compute/types"
)

// InitGenesis initializes the compute module state from a genesis state.
// The queue, busy map and timeout index are rebuilt from request statuses.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}

	store := k.getStore(ctx)
	store.Set(NextRequestIDKey, uint64Bytes(genState.NextRequestId))

	requests := make([]types.Request, len(genState.Requests))
	copy(requests, genState.Requests)
	sort.Slice(requests, func(i, j int) bool { return requests[i].Id < requests[j].Id })

	for _, request := range requests {
		if err := k.SetRequest(ctx, request); err != nil {
			panic(err)
		}

		switch request.Status {
		case types.RequestStatusPending:
			if err := k.enqueue(ctx, request.Id); err != nil {
				panic(err)
			}
		case types.RequestStatusProcessing:
			node, err := sdk.AccAddressFromBech32(request.AssignedNode)
			if err != nil {
				panic(err)
			}
			k.setNodeBusy(ctx, node, request.Id)
			store.Set(ProcessingIndexKey(request.TimeoutAt, request.Id), []byte{})
		}
	}

	results := make([]types.Result, len(genState.Results))
	copy(results, genState.Results)
	sort.Slice(results, func(i, j int) bool {
		if results[i].FirstVersionId != results[j].FirstVersionId {
			return results[i].FirstVersionId < results[j].FirstVersionId
		}
		return results[i].Version < results[j].Version
	})

	for _, result := range results {
		if err := k.SetResult(ctx, result); err != nil {
			panic(err)
		}
		chain := k.GetVersionChain(ctx, result.FirstVersionId)
		chain = append(chain, result.RequestId)
		if err := k.setVersionChain(ctx, result.FirstVersionId, chain); err != nil {
			panic(err)
		}
		if result.IsLatest {
			k.setLatestVersion(ctx, result.FirstVersionId, result.RequestId)
		}
	}

	for _, in := range genState.Inputs {
		if len(in.Input) > 0 {
			store.Set(InputDataKey(in.RequestId), in.Input)
		}
		if len(in.UserPubkey) > 0 {
			store.Set(UserPubkeyKey(in.RequestId), in.UserPubkey)
		}
		if in.Hint != nil {
			bz, err := json.Marshal(in.Hint)
			if err != nil {
				panic(err)
			}
			store.Set(VersionHintKey(in.RequestId), bz)
		}
	}
}

// ExportGenesis exports the compute module state to a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	params, err := k.GetParams(ctx)
	if err != nil {
		panic(err)
	}

	store := k.getStore(ctx)
	nextID := uint64(1)
	if bz := store.Get(NextRequestIDKey); bz != nil {
		nextID = GetIDFromBytes(bz)
	}

	var requests []types.Request
	var inputs []types.GenesisInput
	k.IterateRequests(ctx, func(request types.Request) bool {
		requests = append(requests, request)

		if request.Status.IsTerminal() {
			return false
		}
		in := types.GenesisInput{RequestId: request.Id}
		if data, ok := k.GetInputData(ctx, request.Id); ok {
			in.Input = data
		}
		if pubkey, ok := k.GetUserPubkey(ctx, request.Id); ok {
			in.UserPubkey = pubkey
		}
		if hint, ok := k.GetVersionHint(ctx, request.Id); ok {
			in.Hint = &hint
		}
		if len(in.Input) > 0 || len(in.UserPubkey) > 0 || in.Hint != nil {
			inputs = append(inputs, in)
		}
		return false
	})

	var results []types.Result
	k.IterateResults(ctx, func(result types.Result) bool {
		results = append(results, result)
		return false
	})

	return &types.GenesisState{
		Params:        params,
		NextRequestId: nextID,
		Requests:      requests,
		Results:       results,
		Inputs:        inputs,
	}
}
