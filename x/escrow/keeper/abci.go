package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// EndBlocker settles locks whose expiry height is the current block.
// Errors are logged and never halt block production.
func (k Keeper) EndBlocker(ctx context.Context) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if err := k.ProcessExpiredLocks(ctx); err != nil {
		sdkCtx.Logger().Error("escrow expiry processing failed", "error", err)
	}

	return nil
}
