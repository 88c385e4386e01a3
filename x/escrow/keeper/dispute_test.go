package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/arcanum-chain/arcanum/testutil/keeper"
	"github.com/arcanum-chain/arcanum/x/escrow/types"
)

func TestDisputeBlocksMovement(t *testing.T) {
	k, bk, ctx := testkeeper.EscrowKeeper(t)
	testkeeper.FundAccount(t, ctx, bk, payerAddr, math.NewInt(10_000))

	require.NoError(t, k.Lock(ctx, 1, payerAddr, math.NewInt(5_000)))
	require.NoError(t, k.Dispute(ctx, 1, "output contested"))

	require.ErrorIs(t, k.ReleaseAll(ctx, 1, recipientAddr), types.ErrDisputeActive)
	require.ErrorIs(t, k.RefundAll(ctx, 1, payerAddr), types.ErrDisputeActive)
	require.ErrorIs(t, k.SplitPartial(ctx, 1, recipientAddr, payerAddr, 5000), types.ErrDisputeActive)
	require.ErrorIs(t, k.Lock(ctx, 1, payerAddr, math.NewInt(1)), types.ErrDisputeActive)

	// Double dispute is rejected too.
	require.ErrorIs(t, k.Dispute(ctx, 1, "again"), types.ErrDisputeActive)
}

func TestApplyDecisionPartialBps(t *testing.T) {
	k, bk, ctx := testkeeper.EscrowKeeper(t)
	testkeeper.FundAccount(t, ctx, bk, payerAddr, math.NewInt(10_000))

	require.NoError(t, k.Lock(ctx, 2, payerAddr, math.NewInt(10_000)))
	require.NoError(t, k.Dispute(ctx, 2, "partial delivery"))

	// 70/30 arbitration outcome.
	require.NoError(t, k.ApplyDecisionPartialBps(ctx, 2, recipientAddr, payerAddr, 7000))

	require.Equal(t, math.NewInt(7_000), bk.GetBalance(ctx, recipientAddr, types.DefaultDenom).Amount)
	require.Equal(t, math.NewInt(3_000), bk.GetBalance(ctx, payerAddr, types.DefaultDenom).Amount)

	_, found := k.GetLock(ctx, 2)
	require.False(t, found)
}

func TestApplyDecisionRequiresDispute(t *testing.T) {
	k, bk, ctx := testkeeper.EscrowKeeper(t)
	testkeeper.FundAccount(t, ctx, bk, payerAddr, math.NewInt(1_000))

	require.NoError(t, k.Lock(ctx, 3, payerAddr, math.NewInt(500)))

	require.ErrorIs(t, k.ApplyDecisionReleaseAll(ctx, 3, recipientAddr), types.ErrNotDisputed)
	require.ErrorIs(t, k.ApplyDecisionRefundAll(ctx, 3, payerAddr), types.ErrNotDisputed)
	require.ErrorIs(t, k.ApplyDecisionPartialBps(ctx, 3, recipientAddr, payerAddr, 1), types.ErrNotDisputed)
}

func TestApplyDecisionReleaseAll(t *testing.T) {
	k, bk, ctx := testkeeper.EscrowKeeper(t)
	testkeeper.FundAccount(t, ctx, bk, payerAddr, math.NewInt(1_000))

	require.NoError(t, k.Lock(ctx, 4, payerAddr, math.NewInt(800)))
	require.NoError(t, k.Dispute(ctx, 4, "contested"))
	require.NoError(t, k.ApplyDecisionReleaseAll(ctx, 4, recipientAddr))

	require.Equal(t, math.NewInt(800), bk.GetBalance(ctx, recipientAddr, types.DefaultDenom).Amount)
	_, found := k.GetLock(ctx, 4)
	require.False(t, found)
}
