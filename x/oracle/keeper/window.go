package keeper

import (
	"context"
	"encoding/json"
	"fmt"
	"math/bits"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/arcanum-chain/arcanum/x/oracle/types"
)

// GetVenueSummary returns the running window summary for a venue
func (k Keeper) GetVenueSummary(ctx context.Context, venue types.Venue) types.VenueSummary {
	store := k.getStore(ctx)
	bz := store.Get(SummaryKey(venue))
	if bz == nil {
		return types.NewVenueSummary()
	}

	var summary types.VenueSummary
	if err := json.Unmarshal(bz, &summary); err != nil {
		panic(fmt.Errorf("failed to unmarshal venue summary: %w", err))
	}
	return summary
}

func (k Keeper) setVenueSummary(ctx context.Context, venue types.Venue, summary types.VenueSummary) {
	bz, err := json.Marshal(summary)
	if err != nil {
		panic(fmt.Errorf("failed to marshal venue summary: %w", err))
	}
	k.getStore(ctx).Set(SummaryKey(venue), bz)
}

// GetOrder returns the ring buffer slot at index for a venue
func (k Keeper) GetOrder(ctx context.Context, venue types.Venue, index uint32) (types.OrderSnapshot, bool) {
	store := k.getStore(ctx)
	bz := store.Get(OrderKey(venue, index))
	if bz == nil {
		return types.OrderSnapshot{}, false
	}

	var order types.OrderSnapshot
	if err := json.Unmarshal(bz, &order); err != nil {
		panic(fmt.Errorf("failed to unmarshal order snapshot: %w", err))
	}
	return order, true
}

func (k Keeper) setOrder(ctx context.Context, venue types.Venue, index uint32, order types.OrderSnapshot) {
	bz, err := json.Marshal(order)
	if err != nil {
		panic(fmt.Errorf("failed to marshal order snapshot: %w", err))
	}
	k.getStore(ctx).Set(OrderKey(venue, index), bz)
}

// quoteContribution converts an order into 6dp quote units. Qty is in
// 10^12-precision base units; multiply before divide so small quantities
// still contribute.
func quoteContribution(price, qty uint64) math.Int {
	return math.NewIntFromUint64(qty).
		Mul(math.NewIntFromUint64(price)).
		QuoRaw(types.BasePrecision)
}

// AddOrder inserts a filled order into a venue's sliding window, evicting
// the oldest snapshots until the new total fits inside the window.
func (k Keeper) AddOrder(ctx context.Context, venue types.Venue, ts, price, qty uint64) error {
	if err := venue.Validate(); err != nil {
		return err
	}
	if price == 0 {
		return types.ErrInvalidPrice
	}
	if qty == 0 {
		return types.ErrInvalidQuantity
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	if qty > params.MaxSingleOrder {
		return types.ErrOrderTooLarge.Wrapf("qty %d exceeds limit %d", qty, params.MaxSingleOrder)
	}
	if qty > params.WindowSize {
		return types.ErrOrderTooLarge.Wrapf("qty %d exceeds window %d", qty, params.WindowSize)
	}

	summary := k.GetVenueSummary(ctx, venue)

	// evict oldest snapshots until the order fits; a full ring also forces
	// one eviction so the newest slot never overwrites a live one
	for summary.OrderCount > 0 &&
		(summary.TotalQty > params.WindowSize-qty || summary.OrderCount >= types.RingSize) {
		if err := k.evictOldest(ctx, venue, &summary); err != nil {
			return err
		}
	}

	var newIndex uint32
	if summary.OrderCount == 0 {
		summary.OldestIndex = 0
		summary.NewestIndex = 0
	} else {
		newIndex = (summary.NewestIndex + 1) % types.RingSize
	}

	newQty, carry := bits.Add64(summary.TotalQty, qty, 0)
	if carry != 0 {
		return types.ErrArithmeticOverflow
	}

	k.setOrder(ctx, venue, newIndex, types.OrderSnapshot{Ts: ts, Price: price, Qty: qty})
	summary.TotalQty = newQty
	summary.TotalQuote = summary.TotalQuote.Add(quoteContribution(price, qty))
	summary.OrderCount++
	summary.NewestIndex = newIndex
	k.setVenueSummary(ctx, venue, summary)

	k.metrics.OrdersAdded.WithLabelValues(venue.String()).Inc()
	k.metrics.WindowQty.WithLabelValues(venue.String()).Set(float64(summary.TotalQty))

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeOrderAdded,
			sdk.NewAttribute(types.AttributeKeyVenue, venue.String()),
			sdk.NewAttribute(types.AttributeKeyPrice, fmt.Sprintf("%d", price)),
			sdk.NewAttribute(types.AttributeKeyQty, fmt.Sprintf("%d", qty)),
		),
	)
	return nil
}

// evictOldest removes the oldest snapshot and subtracts its contribution.
func (k Keeper) evictOldest(ctx context.Context, venue types.Venue, summary *types.VenueSummary) error {
	oldest, found := k.GetOrder(ctx, venue, summary.OldestIndex)
	if !found {
		return fmt.Errorf("ring slot %d missing for venue %s", summary.OldestIndex, venue)
	}

	k.getStore(ctx).Delete(OrderKey(venue, summary.OldestIndex))

	summary.TotalQty -= oldest.Qty
	summary.TotalQuote = summary.TotalQuote.Sub(quoteContribution(oldest.Price, oldest.Qty))
	summary.OrderCount--
	summary.OldestIndex = (summary.OldestIndex + 1) % types.RingSize
	return nil
}
