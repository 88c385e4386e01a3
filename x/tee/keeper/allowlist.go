package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/arcanum-chain/arcanum/x/tee/types"
)

// SetAllowedEnclaves replaces the MRENCLAVE allow-list. Registered nodes are
// untouched; a removed measurement takes effect at the node's next refresh.
func (k Keeper) SetAllowedEnclaves(ctx context.Context, measurements []string) error {
	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	params.AllowedMrEnclaves = measurements
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}

	k.emitAllowListUpdated(ctx, "mr_enclave", len(measurements))
	return nil
}

// SetAllowedSigners replaces the MRSIGNER allow-list.
func (k Keeper) SetAllowedSigners(ctx context.Context, measurements []string) error {
	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	params.AllowedMrSigners = measurements
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}

	k.emitAllowListUpdated(ctx, "mr_signer", len(measurements))
	return nil
}

func (k Keeper) emitAllowListUpdated(ctx context.Context, list string, size int) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAllowListUpdated,
			sdk.NewAttribute(types.AttributeKeyList, list),
			sdk.NewAttribute(types.AttributeKeySize, strconv.Itoa(size)),
		),
	)
}
