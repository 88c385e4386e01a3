package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/arcanum-chain/arcanum/x/oracle/types"
)

// RegisterInvariants registers the oracle module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "window-bound", WindowBoundInvariant(k))
	ir.RegisterRoute(types.ModuleName, "summary-consistent", SummaryConsistencyInvariant(k))
}

// WindowBoundInvariant checks that no venue window holds more quantity than
// the configured window size.
func WindowBoundInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		params, err := k.GetParams(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "window-bound", err.Error()), true
		}

		for _, venue := range types.Venues {
			summary := k.GetVenueSummary(ctx, venue)
			if summary.TotalQty > params.WindowSize {
				return sdk.FormatInvariant(
					types.ModuleName, "window-bound",
					fmt.Sprintf("venue %s holds %d, window is %d", venue, summary.TotalQty, params.WindowSize),
				), true
			}
			if summary.OrderCount > types.RingSize {
				return sdk.FormatInvariant(
					types.ModuleName, "window-bound",
					fmt.Sprintf("venue %s counts %d orders, ring holds %d", venue, summary.OrderCount, types.RingSize),
				), true
			}
		}
		return sdk.FormatInvariant(types.ModuleName, "window-bound", "all venue windows within bounds"), false
	}
}

// SummaryConsistencyInvariant recomputes each venue summary from its ring
// slots and compares.
func SummaryConsistencyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		for _, venue := range types.Venues {
			summary := k.GetVenueSummary(ctx, venue)

			var totalQty uint64
			totalQuote := types.NewVenueSummary().TotalQuote
			index := summary.OldestIndex
			for i := uint32(0); i < summary.OrderCount; i++ {
				order, found := k.GetOrder(ctx, venue, index)
				if !found {
					return sdk.FormatInvariant(
						types.ModuleName, "summary-consistent",
						fmt.Sprintf("venue %s ring slot %d missing", venue, index),
					), true
				}
				totalQty += order.Qty
				totalQuote = totalQuote.Add(quoteContribution(order.Price, order.Qty))
				index = (index + 1) % types.RingSize
			}

			if totalQty != summary.TotalQty || !totalQuote.Equal(summary.TotalQuote) {
				return sdk.FormatInvariant(
					types.ModuleName, "summary-consistent",
					fmt.Sprintf("venue %s summary (%d, %s) disagrees with ring (%d, %s)",
						venue, summary.TotalQty, summary.TotalQuote, totalQty, totalQuote),
				), true
			}
		}
		return sdk.FormatInvariant(types.ModuleName, "summary-consistent", "all venue summaries agree with their rings"), false
	}
}
