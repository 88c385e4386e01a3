package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	testkeeper "github.com/arcanum-chain/arcanum/testutil/keeper"
	"github.com/arcanum-chain/arcanum/x/oracle/types"
)

func TestAddOrderValidation(t *testing.T) {
	k, ctx := testkeeper.OracleKeeper(t)

	err := k.AddOrder(ctx, types.VenueOTC, 1, 0, 100)
	require.ErrorIs(t, err, types.ErrInvalidPrice)

	err = k.AddOrder(ctx, types.VenueOTC, 1, 100, 0)
	require.ErrorIs(t, err, types.ErrInvalidQuantity)

	err = k.AddOrder(ctx, types.Venue(7), 1, 100, 100)
	require.ErrorIs(t, err, types.ErrInvalidVenue)

	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	err = k.AddOrder(ctx, types.VenueOTC, 1, 100, params.MaxSingleOrder+1)
	require.ErrorIs(t, err, types.ErrOrderTooLarge)
}

func TestAddOrderAccumulates(t *testing.T) {
	k, ctx := testkeeper.OracleKeeper(t)

	// qty in 10^12-precision base units, price 6dp fixed-point
	require.NoError(t, k.AddOrder(ctx, types.VenueOTC, 1, 2_000_000, 400_000_000_000))
	require.NoError(t, k.AddOrder(ctx, types.VenueOTC, 2, 3_000_000, 600_000_000_000))

	summary := k.GetVenueSummary(ctx, types.VenueOTC)
	require.Equal(t, uint64(1_000_000_000_000), summary.TotalQty)
	require.Equal(t, uint32(2), summary.OrderCount)
	require.Equal(t, uint32(0), summary.OldestIndex)
	require.Equal(t, uint32(1), summary.NewestIndex)

	// 0.4 * 2.0 + 0.6 * 3.0 = 2.6 in quote units
	require.Equal(t, int64(2_600_000), summary.TotalQuote.Int64())

	// venues are independent
	require.Equal(t, uint32(0), k.GetVenueSummary(ctx, types.VenueBridge).OrderCount)
}

func TestWindowEviction(t *testing.T) {
	k, ctx := testkeeper.OracleKeeper(t)

	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	params.WindowSize = 1_000
	params.MaxSingleOrder = 900
	require.NoError(t, k.SetParams(ctx, params))

	require.NoError(t, k.AddOrder(ctx, types.VenueOTC, 1, 5_000_000, 600))
	require.NoError(t, k.AddOrder(ctx, types.VenueOTC, 2, 5_000_000, 300))

	// 600 + 300 + 600 > 1000: the first order is evicted
	require.NoError(t, k.AddOrder(ctx, types.VenueOTC, 3, 5_000_000, 600))

	summary := k.GetVenueSummary(ctx, types.VenueOTC)
	require.Equal(t, uint64(900), summary.TotalQty)
	require.Equal(t, uint32(2), summary.OrderCount)
	require.Equal(t, uint32(1), summary.OldestIndex)
	require.Equal(t, uint32(2), summary.NewestIndex)

	_, found := k.GetOrder(ctx, types.VenueOTC, 0)
	require.False(t, found)

	oldest, found := k.GetOrder(ctx, types.VenueOTC, 1)
	require.True(t, found)
	require.Equal(t, uint64(300), oldest.Qty)
}

func TestWindowIndexResetAfterFullEviction(t *testing.T) {
	k, ctx := testkeeper.OracleKeeper(t)

	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	params.WindowSize = 1_000
	params.MaxSingleOrder = 900
	require.NoError(t, k.SetParams(ctx, params))

	require.NoError(t, k.AddOrder(ctx, types.VenueOTC, 1, 5_000_000, 600))

	// the new order only fits once the window is completely drained
	require.NoError(t, k.AddOrder(ctx, types.VenueOTC, 2, 5_000_000, 900))

	summary := k.GetVenueSummary(ctx, types.VenueOTC)
	require.Equal(t, uint64(900), summary.TotalQty)
	require.Equal(t, uint32(1), summary.OrderCount)
	require.Equal(t, uint32(0), summary.OldestIndex)
	require.Equal(t, uint32(0), summary.NewestIndex)
}
