package types

import (
	"fmt"
)

// GenesisInput carries the transient payload of a non-terminal request
// across export/import.
type GenesisInput struct {
	RequestId  uint64       `json:"request_id"`
	Input      []byte       `json:"input,omitempty"`
	UserPubkey []byte       `json:"user_pubkey,omitempty"`
	Hint       *VersionHint `json:"hint,omitempty"`
}

// GenesisState defines the compute module's genesis state. The pending
// queue, busy map and timeout index are rebuilt from request statuses.
type GenesisState struct {
	Params        Params         `json:"params"`
	NextRequestId uint64         `json:"next_request_id"`
	Requests      []Request      `json:"requests,omitempty"`
	Results       []Result       `json:"results,omitempty"`
	Inputs        []GenesisInput `json:"inputs,omitempty"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:        DefaultParams(),
		NextRequestId: 1,
	}
}

// Validate performs basic genesis state validation
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	if gs.NextRequestId == 0 {
		return fmt.Errorf("next request id starts at 1")
	}

	seen := make(map[uint64]bool)
	for _, req := range gs.Requests {
		if err := req.Validate(); err != nil {
			return fmt.Errorf("request %d: %w", req.Id, err)
		}
		if seen[req.Id] {
			return fmt.Errorf("duplicate request id %d", req.Id)
		}
		seen[req.Id] = true
		if req.Id >= gs.NextRequestId {
			return fmt.Errorf("request id %d not below next request id %d", req.Id, gs.NextRequestId)
		}
	}

	seenResults := make(map[uint64]bool)
	for _, res := range gs.Results {
		if err := res.Validate(); err != nil {
			return fmt.Errorf("result %d: %w", res.RequestId, err)
		}
		if seenResults[res.RequestId] {
			return fmt.Errorf("duplicate result id %d", res.RequestId)
		}
		seenResults[res.RequestId] = true
	}

	for _, in := range gs.Inputs {
		if !seen[in.RequestId] {
			return fmt.Errorf("input for unknown request %d", in.RequestId)
		}
	}
	return nil
}
