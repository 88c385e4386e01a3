package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/arcanum-chain/arcanum/testutil/keeper"
	"github.com/arcanum-chain/arcanum/x/tee/types"
)

func TestBondAndUnbondLifecycle(t *testing.T) {
	k, bk, ctx := testkeeper.TeeKeeper(t)

	amount := math.NewInt(2_000_000_000)
	testkeeper.FundAccount(t, ctx, bk, nodeAddr, amount)
	require.NoError(t, k.Bond(ctx, nodeAddr, amount))

	stake := k.GetStake(ctx, nodeAddr)
	require.Equal(t, amount, stake.Amount)

	moduleAddr := authtypes.NewModuleAddress(types.ModuleName)
	require.Equal(t, amount, bk.GetBalance(ctx, moduleAddr, types.DefaultDenom).Amount)

	half := math.NewInt(1_000_000_000)
	unlockHeight, err := k.Unbond(ctx, nodeAddr, half)
	require.NoError(t, err)

	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	require.Equal(t, ctx.BlockHeight()+params.UnbondingPeriodBlocks, unlockHeight)

	stake = k.GetStake(ctx, nodeAddr)
	require.Equal(t, half, stake.Amount)
	require.Equal(t, half, stake.UnbondingAmount)

	// second unbonding while one is in flight
	_, err = k.Unbond(ctx, nodeAddr, math.NewInt(1))
	require.ErrorIs(t, err, types.ErrUnbondingPending)

	err = k.WithdrawUnbonded(ctx, nodeAddr)
	require.ErrorIs(t, err, types.ErrUnbondingLocked)

	matured := ctx.WithBlockHeight(unlockHeight)
	require.NoError(t, k.WithdrawUnbonded(matured, nodeAddr))

	require.Equal(t, half, bk.GetBalance(ctx, nodeAddr, types.DefaultDenom).Amount)
	stake = k.GetStake(ctx, nodeAddr)
	require.True(t, stake.UnbondingAmount.IsZero())
	require.Zero(t, stake.UnlockHeight)

	err = k.WithdrawUnbonded(matured, nodeAddr)
	require.ErrorIs(t, err, types.ErrNothingToWithdraw)
}

func TestUnbondRejectsOverdraw(t *testing.T) {
	k, bk, ctx := testkeeper.TeeKeeper(t)

	amount := math.NewInt(1000)
	testkeeper.FundAccount(t, ctx, bk, nodeAddr, amount)
	require.NoError(t, k.Bond(ctx, nodeAddr, amount))

	_, err := k.Unbond(ctx, nodeAddr, math.NewInt(1001))
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	_, err = k.Unbond(ctx, nodeAddr, math.NewInt(0))
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}

func TestSlashDrawsBondedThenUnbonding(t *testing.T) {
	k, bk, ctx := testkeeper.TeeKeeper(t)

	params, err := k.GetParams(ctx)
	require.NoError(t, err)

	total := params.MinimumStake.Add(math.NewInt(400))
	testkeeper.FundAccount(t, ctx, bk, nodeAddr, total)
	require.NoError(t, k.Bond(ctx, nodeAddr, total))
	require.NoError(t, k.RegisterNode(ctx, nodeAddr, fillBytes(0x01), fillBytes(0x02), fillBytes(0x03), 1))

	_, err = k.Unbond(ctx, nodeAddr, math.NewInt(300))
	require.NoError(t, err)

	// bonded = min + 100, unbonding = 300; slash min + 200
	slashAmount := params.MinimumStake.Add(math.NewInt(200))
	require.NoError(t, k.Slash(ctx, nodeAddr, slashAmount, "invalid signature"))

	stake := k.GetStake(ctx, nodeAddr)
	require.True(t, stake.Amount.IsZero())
	require.Equal(t, math.NewInt(200), stake.UnbondingAmount)
	require.Equal(t, slashAmount, k.GetTotalSlashed(ctx))

	node, found := k.GetNode(ctx, nodeAddr)
	require.True(t, found)
	require.Equal(t, types.NodeStatusSlashed, node.Status)
	require.False(t, k.IsNodeActive(ctx, nodeAddr))
}

func TestSlashCapsAtAvailableStake(t *testing.T) {
	k, bk, ctx := testkeeper.TeeKeeper(t)

	params, err := k.GetParams(ctx)
	require.NoError(t, err)

	testkeeper.FundAccount(t, ctx, bk, nodeAddr, params.MinimumStake)
	require.NoError(t, k.Bond(ctx, nodeAddr, params.MinimumStake))
	require.NoError(t, k.RegisterNode(ctx, nodeAddr, fillBytes(0x01), fillBytes(0x02), fillBytes(0x03), 1))

	require.NoError(t, k.Slash(ctx, nodeAddr, params.MinimumStake.MulRaw(2), "double charge"))

	stake := k.GetStake(ctx, nodeAddr)
	require.True(t, stake.Amount.IsZero())
	require.True(t, stake.UnbondingAmount.IsZero())
	require.Equal(t, params.MinimumStake, k.GetTotalSlashed(ctx))
}

func TestSlashUnknownNode(t *testing.T) {
	k, _, ctx := testkeeper.TeeKeeper(t)

	err := k.Slash(ctx, nodeAddr, math.NewInt(1), "no such node")
	require.ErrorIs(t, err, types.ErrNodeNotFound)
}

func TestRewardAccrueAndClaim(t *testing.T) {
	k, bk, ctx := testkeeper.TeeKeeper(t)

	params, err := k.GetParams(ctx)
	require.NoError(t, err)

	testkeeper.FundAccount(t, ctx, bk, nodeAddr, params.MinimumStake)
	require.NoError(t, k.Bond(ctx, nodeAddr, params.MinimumStake))
	require.NoError(t, k.RegisterNode(ctx, nodeAddr, fillBytes(0x01), fillBytes(0x02), fillBytes(0x03), 1))

	err = k.AccrueReward(ctx, nodeAddr2, math.NewInt(100))
	require.ErrorIs(t, err, types.ErrNodeNotFound)

	// fund the module account the way the settlement path does
	moduleAddr := authtypes.NewModuleAddress(types.ModuleName)
	testkeeper.FundAccount(t, ctx, bk, moduleAddr, math.NewInt(300))

	require.NoError(t, k.AccrueReward(ctx, nodeAddr, math.NewInt(100)))
	require.NoError(t, k.AccrueReward(ctx, nodeAddr, math.NewInt(200)))
	require.Equal(t, math.NewInt(300), k.GetReward(ctx, nodeAddr).Amount)

	balanceBefore := bk.GetBalance(ctx, nodeAddr, types.DefaultDenom).Amount
	require.NoError(t, k.ClaimReward(ctx, nodeAddr))
	require.Equal(t, balanceBefore.Add(math.NewInt(300)), bk.GetBalance(ctx, nodeAddr, types.DefaultDenom).Amount)
	require.True(t, k.GetReward(ctx, nodeAddr).Amount.IsZero())

	err = k.ClaimReward(ctx, nodeAddr)
	require.ErrorIs(t, err, types.ErrNoReward)
}

func TestDepositReward(t *testing.T) {
	k, bk, ctx := testkeeper.TeeKeeper(t)

	params, err := k.GetParams(ctx)
	require.NoError(t, err)

	testkeeper.FundAccount(t, ctx, bk, nodeAddr, params.MinimumStake)
	require.NoError(t, k.Bond(ctx, nodeAddr, params.MinimumStake))
	require.NoError(t, k.RegisterNode(ctx, nodeAddr, fillBytes(0x01), fillBytes(0x02), fillBytes(0x03), 1))

	depositor := nodeAddr2
	testkeeper.FundAccount(t, ctx, bk, depositor, math.NewInt(500))

	err = k.DepositReward(ctx, depositor, nodeAddr2, math.NewInt(100))
	require.ErrorIs(t, err, types.ErrNodeNotFound)

	err = k.DepositReward(ctx, depositor, nodeAddr, math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	require.NoError(t, k.DepositReward(ctx, depositor, nodeAddr, math.NewInt(500)))
	require.Equal(t, math.NewInt(500), k.GetReward(ctx, nodeAddr).Amount)
	require.True(t, bk.GetBalance(ctx, depositor, types.DefaultDenom).Amount.IsZero())

	// deposit sits in the module account next to the bonded stake
	moduleAddr := authtypes.NewModuleAddress(types.ModuleName)
	require.Equal(t, params.MinimumStake.Add(math.NewInt(500)), bk.GetBalance(ctx, moduleAddr, types.DefaultDenom).Amount)

	// and the deposited reward is claimable
	require.NoError(t, k.ClaimReward(ctx, nodeAddr))
	require.Equal(t, math.NewInt(500), bk.GetBalance(ctx, nodeAddr, types.DefaultDenom).Amount)
}
