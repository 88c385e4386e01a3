package types

import (
	"fmt"
)

// GenesisVenue is one venue's window at genesis, orders oldest first.
type GenesisVenue struct {
	Venue  Venue           `json:"venue"`
	Orders []OrderSnapshot `json:"orders,omitempty"`
}

// GenesisState defines the oracle module's genesis state
type GenesisState struct {
	Params          Params         `json:"params"`
	ColdStartExited bool           `json:"cold_start_exited"`
	Rate            *ExchangeRate  `json:"rate,omitempty"`
	Venues          []GenesisVenue `json:"venues,omitempty"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

// Validate performs basic genesis state validation
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	if gs.Rate != nil {
		if err := gs.Rate.Validate(); err != nil {
			return err
		}
	}

	seen := make(map[Venue]bool)
	for _, venue := range gs.Venues {
		if err := venue.Venue.Validate(); err != nil {
			return err
		}
		if seen[venue.Venue] {
			return fmt.Errorf("duplicate venue %s in genesis", venue.Venue)
		}
		seen[venue.Venue] = true

		if len(venue.Orders) > RingSize {
			return fmt.Errorf("venue %s has %d orders, ring holds %d", venue.Venue, len(venue.Orders), RingSize)
		}
		for _, order := range venue.Orders {
			if order.Price == 0 {
				return fmt.Errorf("venue %s has an order with zero price", venue.Venue)
			}
			if order.Qty == 0 {
				return fmt.Errorf("venue %s has an order with zero quantity", venue.Venue)
			}
		}
	}
	return nil
}
