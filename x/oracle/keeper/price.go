package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/arcanum-chain/arcanum/x/oracle/types"
)

var maxUint64 = math.NewIntFromUint64(^uint64(0))

// ColdStartExited reports whether the cold-start latch is set.
func (k Keeper) ColdStartExited(ctx context.Context) bool {
	return k.getStore(ctx).Has(ColdStartExitedKey)
}

func (k Keeper) setColdStartExited(ctx context.Context, exited bool) {
	store := k.getStore(ctx)
	if exited {
		store.Set(ColdStartExitedKey, []byte{1})
	} else {
		store.Delete(ColdStartExitedKey)
	}
}

// VenueVWAP returns the volume-weighted average price of a venue in 6dp
// fixed-point units, clamped to MaxUint64. Zero when the window is empty.
func (k Keeper) VenueVWAP(ctx context.Context, venue types.Venue) uint64 {
	summary := k.GetVenueSummary(ctx, venue)
	return vwap(summary.TotalQuote, summary.TotalQty)
}

func vwap(totalQuote math.Int, totalQty uint64) uint64 {
	if totalQty == 0 {
		return 0
	}

	avg := totalQuote.
		MulRaw(types.BasePrecision).
		Quo(math.NewIntFromUint64(totalQty))
	if avg.GT(maxUint64) {
		return ^uint64(0)
	}
	return avg.Uint64()
}

// ReferencePrice returns the platform reference price. While the cold-start
// latch is down and neither venue has crossed the volume threshold it is the
// governance default; the first read after a venue crosses the threshold
// sets the latch, emits a one-shot event and switches to market pricing.
func (k Keeper) ReferencePrice(ctx context.Context) (uint64, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return 0, err
	}

	otc := k.GetVenueSummary(ctx, types.VenueOTC)
	bridge := k.GetVenueSummary(ctx, types.VenueBridge)

	if !k.ColdStartExited(ctx) {
		if otc.TotalQty <= params.ColdStartThreshold && bridge.TotalQty <= params.ColdStartThreshold {
			return params.DefaultPrice, nil
		}

		// latch is sticky from here on
		k.setColdStartExited(ctx, true)
		k.metrics.ColdStartExits.Inc()

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeColdStartExited,
				sdk.NewAttribute(types.AttributeKeyHeight, fmt.Sprintf("%d", sdkCtx.BlockHeight())),
			),
		)
	}

	combinedQty := otc.TotalQty + bridge.TotalQty
	if combinedQty == 0 {
		return params.DefaultPrice, nil
	}

	// qty-weighted average of the venue VWAPs
	price := vwap(otc.TotalQuote.Add(bridge.TotalQuote), combinedQty)
	k.metrics.ReferencePrice.Set(float64(price))
	return price, nil
}

// CheckPriceDeviation rejects an order price that strays too far from the
// reference. Deviations that do not fit in 16 bits are refused outright.
func (k Keeper) CheckPriceDeviation(ctx context.Context, orderPrice uint64) error {
	if orderPrice == 0 {
		return types.ErrInvalidPrice
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	reference, err := k.ReferencePrice(ctx)
	if err != nil {
		return err
	}
	if reference == 0 {
		return types.ErrPriceOutOfRange
	}

	var diff uint64
	if orderPrice > reference {
		diff = orderPrice - reference
	} else {
		diff = reference - orderPrice
	}

	deviation := math.NewIntFromUint64(diff).
		MulRaw(10_000).
		Quo(math.NewIntFromUint64(reference))
	if !deviation.IsUint64() || deviation.Uint64() > 0xFFFF {
		return types.ErrPriceOutOfRange.Wrapf("price %d against reference %d", orderPrice, reference)
	}

	if deviation.Uint64() > uint64(params.MaxPriceDeviationBps) {
		return types.ErrDeviationTooLarge.Wrapf("%d bps exceeds limit %d", deviation.Uint64(), params.MaxPriceDeviationBps)
	}
	return nil
}
