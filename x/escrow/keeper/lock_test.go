package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/arcanum-chain/arcanum/testutil/keeper"
	"github.com/arcanum-chain/arcanum/x/escrow/types"
)

var (
	payerAddr     = sdk.AccAddress([]byte("payer_______________"))
	recipientAddr = sdk.AccAddress([]byte("recipient___________"))
	otherAddr     = sdk.AccAddress([]byte("other_______________"))
)

func TestLockAndReleaseAll(t *testing.T) {
	k, bk, ctx := testkeeper.EscrowKeeper(t)
	testkeeper.FundAccount(t, ctx, bk, payerAddr, math.NewInt(1_000_000))

	require.NoError(t, k.Lock(ctx, 1, payerAddr, math.NewInt(400_000)))

	record, found := k.GetLock(ctx, 1)
	require.True(t, found)
	require.Equal(t, types.LockStateLocked, record.State)
	require.Equal(t, math.NewInt(400_000), record.Amount)

	moduleAddr := authtypes.NewModuleAddress(types.ModuleName)
	require.Equal(t, math.NewInt(400_000), bk.GetBalance(ctx, moduleAddr, types.DefaultDenom).Amount)

	require.NoError(t, k.ReleaseAll(ctx, 1, recipientAddr))

	_, found = k.GetLock(ctx, 1)
	require.False(t, found)
	require.Equal(t, math.NewInt(400_000), bk.GetBalance(ctx, recipientAddr, types.DefaultDenom).Amount)
	require.True(t, bk.GetBalance(ctx, moduleAddr, types.DefaultDenom).Amount.IsZero())
}

func TestLockTopUp(t *testing.T) {
	k, bk, ctx := testkeeper.EscrowKeeper(t)
	testkeeper.FundAccount(t, ctx, bk, payerAddr, math.NewInt(1_000_000))

	require.NoError(t, k.Lock(ctx, 7, payerAddr, math.NewInt(100)))
	require.NoError(t, k.Lock(ctx, 7, payerAddr, math.NewInt(250)))

	record, found := k.GetLock(ctx, 7)
	require.True(t, found)
	require.Equal(t, math.NewInt(350), record.Amount)
}

func TestLockWithNonceIdempotent(t *testing.T) {
	k, bk, ctx := testkeeper.EscrowKeeper(t)
	testkeeper.FundAccount(t, ctx, bk, payerAddr, math.NewInt(1_000_000))

	require.NoError(t, k.LockWithNonce(ctx, 2, payerAddr, math.NewInt(500), 10))

	// Replays with an equal or lower nonce are silent no-ops.
	require.NoError(t, k.LockWithNonce(ctx, 2, payerAddr, math.NewInt(500), 10))
	require.NoError(t, k.LockWithNonce(ctx, 2, payerAddr, math.NewInt(500), 3))

	record, _ := k.GetLock(ctx, 2)
	require.Equal(t, math.NewInt(500), record.Amount)
	require.Equal(t, uint64(10), record.LastNonce)

	// A higher nonce applies.
	require.NoError(t, k.LockWithNonce(ctx, 2, payerAddr, math.NewInt(500), 11))
	record, _ = k.GetLock(ctx, 2)
	require.Equal(t, math.NewInt(1000), record.Amount)
	require.Equal(t, uint64(11), record.LastNonce)
}

func TestLockRejectsInvalidAmount(t *testing.T) {
	k, _, ctx := testkeeper.EscrowKeeper(t)

	err := k.Lock(ctx, 3, payerAddr, math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	err = k.Lock(ctx, 3, payerAddr, math.NewInt(-5))
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}

func TestReleaseUnknownLock(t *testing.T) {
	k, _, ctx := testkeeper.EscrowKeeper(t)

	err := k.ReleaseAll(ctx, 99, recipientAddr)
	require.ErrorIs(t, err, types.ErrNoLock)

	err = k.RefundAll(ctx, 99, payerAddr)
	require.ErrorIs(t, err, types.ErrNoLock)
}

func TestReleaseSplit(t *testing.T) {
	k, bk, ctx := testkeeper.EscrowKeeper(t)
	testkeeper.FundAccount(t, ctx, bk, payerAddr, math.NewInt(1_000_000))

	require.NoError(t, k.Lock(ctx, 4, payerAddr, math.NewInt(1000)))

	entries := []types.SplitEntry{
		{Recipient: recipientAddr.String(), Amount: math.NewInt(600)},
		{Recipient: otherAddr.String(), Amount: math.NewInt(400)},
	}
	require.NoError(t, k.ReleaseSplit(ctx, 4, entries))

	require.Equal(t, math.NewInt(600), bk.GetBalance(ctx, recipientAddr, types.DefaultDenom).Amount)
	require.Equal(t, math.NewInt(400), bk.GetBalance(ctx, otherAddr, types.DefaultDenom).Amount)

	// Fully paid out, so the lock closed.
	_, found := k.GetLock(ctx, 4)
	require.False(t, found)
}

func TestReleaseSplitOverdraw(t *testing.T) {
	k, bk, ctx := testkeeper.EscrowKeeper(t)
	testkeeper.FundAccount(t, ctx, bk, payerAddr, math.NewInt(1_000_000))

	require.NoError(t, k.Lock(ctx, 5, payerAddr, math.NewInt(100)))

	entries := []types.SplitEntry{
		{Recipient: recipientAddr.String(), Amount: math.NewInt(80)},
		{Recipient: otherAddr.String(), Amount: math.NewInt(30)},
	}
	err := k.ReleaseSplit(ctx, 5, entries)
	require.ErrorIs(t, err, types.ErrInsufficient)

	// Nothing moved.
	record, found := k.GetLock(ctx, 5)
	require.True(t, found)
	require.Equal(t, math.NewInt(100), record.Amount)
	require.True(t, bk.GetBalance(ctx, recipientAddr, types.DefaultDenom).Amount.IsZero())
}

func TestSplitPartialFloors(t *testing.T) {
	k, bk, ctx := testkeeper.EscrowKeeper(t)
	testkeeper.FundAccount(t, ctx, bk, payerAddr, math.NewInt(1_000_000))

	require.NoError(t, k.Lock(ctx, 6, payerAddr, math.NewInt(1001)))

	// floor(1001 * 3333 / 10000) = 333
	require.NoError(t, k.SplitPartial(ctx, 6, recipientAddr, payerAddr, 3333))

	require.Equal(t, math.NewInt(333), bk.GetBalance(ctx, recipientAddr, types.DefaultDenom).Amount)
	require.Equal(t, math.NewInt(1_000_000-1001+668), bk.GetBalance(ctx, payerAddr, types.DefaultDenom).Amount)

	_, found := k.GetLock(ctx, 6)
	require.False(t, found)
}

func TestSplitPartialRejectsBadBps(t *testing.T) {
	k, bk, ctx := testkeeper.EscrowKeeper(t)
	testkeeper.FundAccount(t, ctx, bk, payerAddr, math.NewInt(1_000))

	require.NoError(t, k.Lock(ctx, 8, payerAddr, math.NewInt(100)))

	err := k.SplitPartial(ctx, 8, recipientAddr, payerAddr, 10001)
	require.ErrorIs(t, err, types.ErrInvalidBasisPoints)
}

func TestPauseBlocksMutations(t *testing.T) {
	k, bk, ctx := testkeeper.EscrowKeeper(t)
	testkeeper.FundAccount(t, ctx, bk, payerAddr, math.NewInt(1_000))

	require.NoError(t, k.Lock(ctx, 9, payerAddr, math.NewInt(100)))

	k.SetPaused(ctx, true)

	require.ErrorIs(t, k.Lock(ctx, 10, payerAddr, math.NewInt(1)), types.ErrPaused)
	require.ErrorIs(t, k.ReleaseAll(ctx, 9, recipientAddr), types.ErrPaused)
	require.ErrorIs(t, k.Dispute(ctx, 9, "x"), types.ErrPaused)

	k.SetPaused(ctx, false)
	require.NoError(t, k.ReleaseAll(ctx, 9, recipientAddr))
}
