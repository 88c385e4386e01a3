package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/arcanum-chain/arcanum/x/escrow/types"
)

// IsPaused reports whether the escrow kill switch is engaged.
func (k Keeper) IsPaused(ctx context.Context) bool {
	bz := k.getStore(ctx).Get(PausedKey)
	return len(bz) == 1 && bz[0] == 1
}

// SetPaused toggles the module-wide kill switch.
func (k Keeper) SetPaused(ctx context.Context, paused bool) {
	store := k.getStore(ctx)
	if paused {
		store.Set(PausedKey, []byte{1})
	} else {
		store.Delete(PausedKey)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePauseToggled,
			sdk.NewAttribute(types.AttributeKeyPaused, fmt.Sprintf("%t", paused)),
		),
	)
}

// checkNotPaused gates every mutating entry point.
func (k Keeper) checkNotPaused(ctx context.Context) error {
	if k.IsPaused(ctx) {
		return types.ErrPaused
	}
	return nil
}
