package keeper

import (
	"context"
	"fmt"

	"github.com/arcanum-chain/arcanum/x/oracle/types"
)

// InitGenesis initializes the oracle module state from a genesis state.
// Venue windows are rebuilt from their order lists, oldest first.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}

	k.setColdStartExited(ctx, genState.ColdStartExited)

	if genState.Rate != nil {
		k.setExchangeRate(ctx, *genState.Rate)
	}

	for _, venue := range genState.Venues {
		summary := types.NewVenueSummary()
		for i, order := range venue.Orders {
			index := uint32(i) % types.RingSize
			k.setOrder(ctx, venue.Venue, index, order)

			summary.TotalQty += order.Qty
			summary.TotalQuote = summary.TotalQuote.Add(quoteContribution(order.Price, order.Qty))
			summary.OrderCount++
			summary.NewestIndex = index
		}
		if summary.OrderCount > 0 {
			k.setVenueSummary(ctx, venue.Venue, summary)
		}
	}
}

// ExportGenesis returns the oracle module's exported genesis
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	params, err := k.GetParams(ctx)
	if err != nil {
		panic(err)
	}

	genState := &types.GenesisState{
		Params:          params,
		ColdStartExited: k.ColdStartExited(ctx),
	}

	if rate, found := k.GetExchangeRate(ctx); found {
		genState.Rate = &rate
	}

	for _, venue := range types.Venues {
		summary := k.GetVenueSummary(ctx, venue)
		if summary.OrderCount == 0 {
			continue
		}

		orders := make([]types.OrderSnapshot, 0, summary.OrderCount)
		index := summary.OldestIndex
		for i := uint32(0); i < summary.OrderCount; i++ {
			order, found := k.GetOrder(ctx, venue, index)
			if !found {
				panic(fmt.Errorf("ring slot %d missing for venue %s", index, venue))
			}
			orders = append(orders, order)
			index = (index + 1) % types.RingSize
		}
		genState.Venues = append(genState.Venues, types.GenesisVenue{Venue: venue, Orders: orders})
	}
	return genState
}
