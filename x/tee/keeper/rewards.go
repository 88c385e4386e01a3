package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/arcanum-chain/arcanum/x/tee/types"
)

// GetReward retrieves a node's accrued reward, zero-valued when absent.
func (k Keeper) GetReward(ctx context.Context, address sdk.AccAddress) types.Reward {
	bz := k.getStore(ctx).Get(RewardKey(address))
	if bz == nil {
		return types.Reward{Node: address.String(), Amount: math.ZeroInt()}
	}

	var reward types.Reward
	if err := json.Unmarshal(bz, &reward); err != nil {
		return types.Reward{Node: address.String(), Amount: math.ZeroInt()}
	}
	return reward
}

// SetReward stores a reward record
func (k Keeper) SetReward(ctx context.Context, address sdk.AccAddress, reward types.Reward) error {
	bz, err := json.Marshal(reward)
	if err != nil {
		return fmt.Errorf("failed to marshal reward record: %w", err)
	}
	k.getStore(ctx).Set(RewardKey(address), bz)
	return nil
}

// AccrueReward credits a node's reward balance. The corresponding coins must
// already sit in the tee module account; callers (the compute settlement
// path) transfer them there in the same transaction.
func (k Keeper) AccrueReward(ctx context.Context, address sdk.AccAddress, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrap("reward amount must be positive")
	}
	if _, found := k.GetNode(ctx, address); !found {
		return types.ErrNodeNotFound.Wrapf("node %s", address)
	}

	reward := k.GetReward(ctx, address)
	reward.Amount = reward.Amount.Add(amount)
	if err := k.SetReward(ctx, address, reward); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRewardAccrued,
			sdk.NewAttribute(types.AttributeKeyNode, address.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// DepositReward moves coins from a depositor into the shared reward pool and
// credits them to a node. This is the external funding path; the compute
// settlement path deposits through the escrow module instead.
func (k Keeper) DepositReward(ctx context.Context, depositor, node sdk.AccAddress, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrap("deposit amount must be positive")
	}
	if _, found := k.GetNode(ctx, node); !found {
		return types.ErrNodeNotFound.Wrapf("node %s", node)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	coins := sdk.NewCoins(sdk.NewCoin(types.DefaultDenom, amount))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(sdkCtx, depositor, types.ModuleName, coins); err != nil {
		return fmt.Errorf("failed to fund reward pool: %w", err)
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRewardDeposited,
			sdk.NewAttribute(types.AttributeKeyDepositor, depositor.String()),
			sdk.NewAttribute(types.AttributeKeyNode, node.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return k.AccrueReward(ctx, node, amount)
}

// ClaimReward pays a node's full accrued reward out of the module account.
func (k Keeper) ClaimReward(ctx context.Context, address sdk.AccAddress) error {
	reward := k.GetReward(ctx, address)
	if !reward.Amount.IsPositive() {
		return types.ErrNoReward.Wrapf("node %s", address)
	}

	amount := reward.Amount
	reward.Amount = math.ZeroInt()
	if err := k.SetReward(ctx, address, reward); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	coins := sdk.NewCoins(sdk.NewCoin(types.DefaultDenom, amount))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(sdkCtx, types.ModuleName, address, coins); err != nil {
		return fmt.Errorf("failed to pay reward: %w", err)
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRewardClaimed,
			sdk.NewAttribute(types.AttributeKeyNode, address.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}
