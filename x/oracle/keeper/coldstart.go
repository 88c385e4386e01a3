package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/arcanum-chain/arcanum/x/oracle/types"
)

// SetColdStartParams adjusts the cold-start threshold and the default price.
// Zero fields keep the current value. Rejected once the latch is up.
func (k Keeper) SetColdStartParams(ctx context.Context, threshold, defaultPrice uint64) error {
	if k.ColdStartExited(ctx) {
		return types.ErrColdStartExited
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	if threshold != 0 {
		params.ColdStartThreshold = threshold
	}
	if defaultPrice != 0 {
		params.DefaultPrice = defaultPrice
	}
	return k.SetParams(ctx, params)
}

// ResetColdStart re-arms the latch. Rejected while the latch is down.
func (k Keeper) ResetColdStart(ctx context.Context, reason string) error {
	if !k.ColdStartExited(ctx) {
		return types.ErrColdStartActive
	}

	k.setColdStartExited(ctx, false)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeColdStartReset,
			sdk.NewAttribute(types.AttributeKeyReason, reason),
			sdk.NewAttribute(types.AttributeKeyHeight, fmt.Sprintf("%d", sdkCtx.BlockHeight())),
		),
	)
	return nil
}
