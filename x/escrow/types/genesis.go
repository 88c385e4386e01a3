package types

import (
	"fmt"
)

// GenesisState defines the escrow module's genesis state.
type GenesisState struct {
	Params Params       `json:"params"`
	Paused bool         `json:"paused"`
	Locks  []LockRecord `json:"locks"`
}

// DefaultGenesis returns the default genesis state for the escrow module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
		Paused: false,
		Locks:  []LockRecord{},
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	seen := make(map[uint64]struct{}, len(gs.Locks))
	for _, lock := range gs.Locks {
		if _, ok := seen[lock.Id]; ok {
			return fmt.Errorf("duplicate lock id %d", lock.Id)
		}
		seen[lock.Id] = struct{}{}

		if err := lock.Validate(); err != nil {
			return err
		}
		if lock.State == LockStateClosed {
			return fmt.Errorf("lock %d: closed locks must not appear in genesis", lock.Id)
		}
	}
	return nil
}
