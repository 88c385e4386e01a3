package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/arcanum-chain/arcanum/x/tee/types"
)

// GetStake retrieves a node's stake record, zero-valued when absent.
func (k Keeper) GetStake(ctx context.Context, address sdk.AccAddress) types.Stake {
	store := k.getStore(ctx)
	bz := store.Get(StakeKey(address))
	if bz == nil {
		return types.NewStake(address.String())
	}

	var stake types.Stake
	if err := json.Unmarshal(bz, &stake); err != nil {
		return types.NewStake(address.String())
	}
	return stake
}

// SetStake stores a stake record
func (k Keeper) SetStake(ctx context.Context, address sdk.AccAddress, stake types.Stake) error {
	bz, err := json.Marshal(stake)
	if err != nil {
		return fmt.Errorf("failed to marshal stake record: %w", err)
	}
	k.getStore(ctx).Set(StakeKey(address), bz)
	return nil
}

// Bond pulls coins from the sender into the module account as node stake.
// Bonding is permitted before registration; registration requires the
// minimum to already be bonded.
func (k Keeper) Bond(ctx context.Context, sender sdk.AccAddress, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrap("bond amount must be positive")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)

	coins := sdk.NewCoins(sdk.NewCoin(types.DefaultDenom, amount))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(sdkCtx, sender, types.ModuleName, coins); err != nil {
		return fmt.Errorf("failed to bond stake: %w", err)
	}

	stake := k.GetStake(ctx, sender)
	stake.Amount = stake.Amount.Add(amount)
	if err := k.SetStake(ctx, sender, stake); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBonded,
			sdk.NewAttribute(types.AttributeKeyNode, sender.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// Unbond moves stake into the unbonding bucket with an unlock height.
// Only one unbonding may be in flight per node.
func (k Keeper) Unbond(ctx context.Context, sender sdk.AccAddress, amount math.Int) (int64, error) {
	if amount.IsNil() || !amount.IsPositive() {
		return 0, types.ErrInvalidAmount.Wrap("unbond amount must be positive")
	}

	stake := k.GetStake(ctx, sender)
	if stake.UnbondingAmount.IsPositive() {
		return 0, types.ErrUnbondingPending.Wrapf("node %s", sender)
	}
	if amount.GT(stake.Amount) {
		return 0, types.ErrInvalidAmount.Wrapf("unbond %s exceeds bonded %s", amount, stake.Amount)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	params, err := k.GetParams(ctx)
	if err != nil {
		return 0, err
	}

	unlockHeight := sdkCtx.BlockHeight() + params.UnbondingPeriodBlocks

	stake.Amount = stake.Amount.Sub(amount)
	stake.UnbondingAmount = amount
	stake.UnlockHeight = unlockHeight
	if err := k.SetStake(ctx, sender, stake); err != nil {
		return 0, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeUnbonded,
			sdk.NewAttribute(types.AttributeKeyNode, sender.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyHeight, fmt.Sprintf("%d", unlockHeight)),
		),
	)
	return unlockHeight, nil
}

// WithdrawUnbonded pays out stake whose unbonding period has elapsed.
// Pull-based: no EndBlocker work is needed for unbonding.
func (k Keeper) WithdrawUnbonded(ctx context.Context, sender sdk.AccAddress) error {
	stake := k.GetStake(ctx, sender)
	if !stake.UnbondingAmount.IsPositive() {
		return types.ErrNothingToWithdraw.Wrapf("node %s", sender)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if sdkCtx.BlockHeight() < stake.UnlockHeight {
		return types.ErrUnbondingLocked.Wrapf("unlocks at height %d", stake.UnlockHeight)
	}

	amount := stake.UnbondingAmount
	stake.UnbondingAmount = math.ZeroInt()
	stake.UnlockHeight = 0
	if err := k.SetStake(ctx, sender, stake); err != nil {
		return err
	}

	coins := sdk.NewCoins(sdk.NewCoin(types.DefaultDenom, amount))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(sdkCtx, types.ModuleName, sender, coins); err != nil {
		return fmt.Errorf("failed to withdraw stake: %w", err)
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeWithdrawn,
			sdk.NewAttribute(types.AttributeKeyNode, sender.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// Slash confiscates stake from a node, drawing first from the bonded bucket
// and then from any unbonding balance. A node left below the minimum is
// marked SLASHED and drops out of rotation.
func (k Keeper) Slash(ctx context.Context, address sdk.AccAddress, amount math.Int, reason string) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrap("slash amount must be positive")
	}

	node, found := k.GetNode(ctx, address)
	if !found {
		return types.ErrNodeNotFound.Wrapf("node %s", address)
	}

	stake := k.GetStake(ctx, address)
	remaining := amount

	fromBonded := math.MinInt(remaining, stake.Amount)
	stake.Amount = stake.Amount.Sub(fromBonded)
	remaining = remaining.Sub(fromBonded)

	fromUnbonding := math.MinInt(remaining, stake.UnbondingAmount)
	stake.UnbondingAmount = stake.UnbondingAmount.Sub(fromUnbonding)

	slashed := fromBonded.Add(fromUnbonding)
	if err := k.SetStake(ctx, address, stake); err != nil {
		return err
	}

	k.addTotalSlashed(ctx, slashed)

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	if stake.Amount.LT(params.MinimumStake) && node.Status == types.NodeStatusActive {
		node.Status = types.NodeStatusSlashed
		if err := k.SetNode(ctx, node); err != nil {
			return err
		}
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSlashed,
			sdk.NewAttribute(types.AttributeKeyNode, address.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, slashed.String()),
			sdk.NewAttribute(types.AttributeKeyReason, reason),
		),
	)
	return nil
}

// GetTotalSlashed returns the cumulative slashed amount.
func (k Keeper) GetTotalSlashed(ctx context.Context) math.Int {
	bz := k.getStore(ctx).Get(TotalSlashedKey)
	if bz == nil {
		return math.ZeroInt()
	}
	return math.NewIntFromUint64(binary.BigEndian.Uint64(bz))
}

// SetTotalSlashed stores the cumulative slashed amount.
func (k Keeper) SetTotalSlashed(ctx context.Context, total math.Int) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, total.Uint64())
	k.getStore(ctx).Set(TotalSlashedKey, bz)
}

func (k Keeper) addTotalSlashed(ctx context.Context, amount math.Int) {
	k.SetTotalSlashed(ctx, k.GetTotalSlashed(ctx).Add(amount))
}
