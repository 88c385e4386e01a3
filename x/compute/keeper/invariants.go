package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/arcanum-chain/arcanum/x/compute/types"
)

// RegisterInvariants registers the compute module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "one-request-per-node", OneRequestPerNodeInvariant(k))
	ir.RegisterRoute(types.ModuleName, "terminal-transient-empty", TerminalTransientInvariant(k))
}

// OneRequestPerNodeInvariant checks that every processing request agrees
// with the busy map and no node carries two assignments.
func OneRequestPerNodeInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		assignments := make(map[string]uint64)
		var broken bool
		var msg string

		k.IterateRequests(ctx, func(request types.Request) bool {
			if request.Status != types.RequestStatusProcessing {
				return false
			}
			if prev, dup := assignments[request.AssignedNode]; dup {
				broken = true
				msg = fmt.Sprintf("node %s assigned to requests %d and %d", request.AssignedNode, prev, request.Id)
				return true
			}
			assignments[request.AssignedNode] = request.Id

			node, err := sdk.AccAddressFromBech32(request.AssignedNode)
			if err != nil {
				broken = true
				msg = fmt.Sprintf("request %d has invalid assigned node %q", request.Id, request.AssignedNode)
				return true
			}
			busyID, busy := k.NodeCurrentRequest(ctx, node)
			if !busy || busyID != request.Id {
				broken = true
				msg = fmt.Sprintf("busy map disagrees for node %s on request %d", request.AssignedNode, request.Id)
				return true
			}
			return false
		})

		return sdk.FormatInvariant(types.ModuleName, "one-request-per-node", msg), broken
	}
}

// TerminalTransientInvariant checks that terminal requests hold no
// transient input, pubkey or version hint data.
func TerminalTransientInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var broken bool
		var msg string

		k.IterateRequests(ctx, func(request types.Request) bool {
			if !request.Status.IsTerminal() {
				return false
			}
			if _, ok := k.GetInputData(ctx, request.Id); ok {
				broken = true
				msg = fmt.Sprintf("terminal request %d still holds input data", request.Id)
				return true
			}
			if _, ok := k.GetUserPubkey(ctx, request.Id); ok {
				broken = true
				msg = fmt.Sprintf("terminal request %d still holds a user pubkey", request.Id)
				return true
			}
			if _, ok := k.GetVersionHint(ctx, request.Id); ok {
				broken = true
				msg = fmt.Sprintf("terminal request %d still holds a version hint", request.Id)
				return true
			}
			return false
		})

		return sdk.FormatInvariant(types.ModuleName, "terminal-transient-empty", msg), broken
	}
}
