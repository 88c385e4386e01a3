package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/arcanum-chain/arcanum/testutil/keeper"
	"github.com/arcanum-chain/arcanum/x/escrow/types"
)

// releasePolicy always releases to a fixed recipient.
type releasePolicy struct {
	to sdk.AccAddress
}

func (p releasePolicy) OnExpire(ctx sdk.Context, lockID uint64) types.ExpiryDecision {
	return types.ExpiryDecision{Action: types.ExpiryRelease, Recipient: p.to}
}

func TestExpiryRefundsByDefault(t *testing.T) {
	k, bk, ctx := testkeeper.EscrowKeeper(t)
	testkeeper.FundAccount(t, ctx, bk, payerAddr, math.NewInt(1_000))

	require.NoError(t, k.Lock(ctx, 1, payerAddr, math.NewInt(700)))
	require.NoError(t, k.ScheduleExpiry(ctx, 1, 10))

	// Nothing happens before the height.
	require.NoError(t, k.EndBlocker(ctx.WithBlockHeight(9)))
	_, found := k.GetLock(ctx, 1)
	require.True(t, found)

	require.NoError(t, k.EndBlocker(ctx.WithBlockHeight(10)))

	_, found = k.GetLock(ctx, 1)
	require.False(t, found)
	require.Equal(t, math.NewInt(1_000), bk.GetBalance(ctx, payerAddr, types.DefaultDenom).Amount)
}

func TestExpiryUsesRegisteredPolicy(t *testing.T) {
	k, bk, ctx := testkeeper.EscrowKeeper(t)
	testkeeper.FundAccount(t, ctx, bk, payerAddr, math.NewInt(1_000))

	k.SetExpiryPolicy(releasePolicy{to: recipientAddr})

	require.NoError(t, k.Lock(ctx, 2, payerAddr, math.NewInt(300)))
	require.NoError(t, k.ScheduleExpiry(ctx, 2, 5))
	require.NoError(t, k.EndBlocker(ctx.WithBlockHeight(5)))

	require.Equal(t, math.NewInt(300), bk.GetBalance(ctx, recipientAddr, types.DefaultDenom).Amount)
}

func TestExpirySkipsDisputedLocks(t *testing.T) {
	k, bk, ctx := testkeeper.EscrowKeeper(t)
	testkeeper.FundAccount(t, ctx, bk, payerAddr, math.NewInt(1_000))

	require.NoError(t, k.Lock(ctx, 3, payerAddr, math.NewInt(400)))
	require.NoError(t, k.ScheduleExpiry(ctx, 3, 8))
	require.NoError(t, k.Dispute(ctx, 3, "contested"))

	require.NoError(t, k.EndBlocker(ctx.WithBlockHeight(8)))

	// Funds stay put until a decision is applied.
	record, found := k.GetLock(ctx, 3)
	require.True(t, found)
	require.Equal(t, types.LockStateDisputed, record.State)
	require.Equal(t, math.NewInt(400), record.Amount)
}

func TestRescheduleReplacesOldEntry(t *testing.T) {
	k, bk, ctx := testkeeper.EscrowKeeper(t)
	testkeeper.FundAccount(t, ctx, bk, payerAddr, math.NewInt(1_000))

	require.NoError(t, k.Lock(ctx, 4, payerAddr, math.NewInt(100)))
	require.NoError(t, k.ScheduleExpiry(ctx, 4, 6))
	require.NoError(t, k.ScheduleExpiry(ctx, 4, 20))

	// Old height fires nothing.
	require.NoError(t, k.EndBlocker(ctx.WithBlockHeight(6)))
	_, found := k.GetLock(ctx, 4)
	require.True(t, found)

	require.NoError(t, k.EndBlocker(ctx.WithBlockHeight(20)))
	_, found = k.GetLock(ctx, 4)
	require.False(t, found)
}

func TestCancelExpiry(t *testing.T) {
	k, bk, ctx := testkeeper.EscrowKeeper(t)
	testkeeper.FundAccount(t, ctx, bk, payerAddr, math.NewInt(1_000))

	require.NoError(t, k.Lock(ctx, 5, payerAddr, math.NewInt(100)))
	require.NoError(t, k.ScheduleExpiry(ctx, 5, 7))
	require.NoError(t, k.CancelExpiry(ctx, 5))

	require.NoError(t, k.EndBlocker(ctx.WithBlockHeight(7)))
	record, found := k.GetLock(ctx, 5)
	require.True(t, found)
	require.Equal(t, int64(0), record.ExpiryHeight)
}

func TestExpiryBucketBound(t *testing.T) {
	k, bk, ctx := testkeeper.EscrowKeeper(t)
	testkeeper.FundAccount(t, ctx, bk, payerAddr, math.NewInt(1_000_000))

	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	params.MaxExpiringPerBlock = 2
	require.NoError(t, k.SetParams(ctx, params))

	for id := uint64(1); id <= 3; id++ {
		require.NoError(t, k.Lock(ctx, id, payerAddr, math.NewInt(10)))
	}

	require.NoError(t, k.ScheduleExpiry(ctx, 1, 50))
	require.NoError(t, k.ScheduleExpiry(ctx, 2, 50))
	require.ErrorIs(t, k.ScheduleExpiry(ctx, 3, 50), types.ErrTooManyExpiring)
}
