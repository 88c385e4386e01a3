package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BeginBlocker runs the assignment tick.
func (k Keeper) BeginBlocker(ctx context.Context) error {
	if err := k.AssignPendingRequests(ctx); err != nil {
		sdk.UnwrapSDKContext(ctx).Logger().Error("compute assignment tick failed", "error", err)
	}
	return nil
}

// EndBlocker runs the timeout scan.
func (k Keeper) EndBlocker(ctx context.Context) error {
	if err := k.ProcessTimeouts(ctx); err != nil {
		sdk.UnwrapSDKContext(ctx).Logger().Error("compute timeout scan failed", "error", err)
	}
	return nil
}
