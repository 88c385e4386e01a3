package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/arcanum-chain/arcanum/x/compute/types"
)

// GetParams returns the current compute module parameters
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	store := k.getStore(ctx)
	bz := store.Get(ParamsKey)
	if bz == nil {
		return types.DefaultParams(), nil
	}

	var params types.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		return types.Params{}, fmt.Errorf("failed to unmarshal compute params: %w", err)
	}
	return params, nil
}

// SetParams sets the compute module parameters
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	bz, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to marshal compute params: %w", err)
	}
	k.getStore(ctx).Set(ParamsKey, bz)
	return nil
}
