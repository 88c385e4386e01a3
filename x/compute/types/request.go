package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RequestStatus is the lifecycle state of a compute request.
type RequestStatus uint32

const (
	RequestStatusUnspecified RequestStatus = 0
	RequestStatusPending     RequestStatus = 1
	RequestStatusProcessing  RequestStatus = 2
	RequestStatusCompleted   RequestStatus = 3
	RequestStatusFailed      RequestStatus = 4
	RequestStatusTimeout     RequestStatus = 5
	RequestStatusCancelled   RequestStatus = 6
)

// String implements fmt.Stringer
func (s RequestStatus) String() string {
	switch s {
	case RequestStatusPending:
		return "PENDING"
	case RequestStatusProcessing:
		return "PROCESSING"
	case RequestStatusCompleted:
		return "COMPLETED"
	case RequestStatusFailed:
		return "FAILED"
	case RequestStatusTimeout:
		return "TIMEOUT"
	case RequestStatusCancelled:
		return "CANCELLED"
	default:
		return "UNSPECIFIED"
	}
}

// IsTerminal reports whether no further transitions are possible.
func (s RequestStatus) IsTerminal() bool {
	switch s {
	case RequestStatusCompleted, RequestStatusFailed, RequestStatusTimeout, RequestStatusCancelled:
		return true
	default:
		return false
	}
}

// Request is a compute request row. Input data, the user pubkey and any
// version hint live in separate transient maps and are deleted on every
// terminal transition; the row itself is kept for audit.
type Request struct {
	Id            uint64        `json:"id"`
	Requester     string        `json:"requester"`
	ComputeType   uint8         `json:"compute_type"`
	PrivacyMode   PrivacyMode   `json:"privacy_mode"`
	InputHash     []byte        `json:"input_hash"`
	AssignedNode  string        `json:"assigned_node,omitempty"`
	CreatedAt     int64         `json:"created_at"`
	TimeoutAt     int64         `json:"timeout_at,omitempty"`
	Status        RequestStatus `json:"status"`
	FailoverCount uint32        `json:"failover_count"`
	FailureReason string        `json:"failure_reason,omitempty"`
}

// Validate performs stateless validation of a request row
func (r Request) Validate() error {
	if r.Id == 0 {
		return fmt.Errorf("request id cannot be zero")
	}
	if _, err := sdk.AccAddressFromBech32(r.Requester); err != nil {
		return fmt.Errorf("invalid requester address: %w", err)
	}
	if len(r.InputHash) != InputHashSize {
		return fmt.Errorf("input hash must be %d bytes, got %d", InputHashSize, len(r.InputHash))
	}
	if r.AssignedNode != "" {
		if _, err := sdk.AccAddressFromBech32(r.AssignedNode); err != nil {
			return fmt.Errorf("invalid assigned node address: %w", err)
		}
	}
	return nil
}

// VersionHint links a recomputation request to the result chain it extends.
type VersionHint struct {
	FirstVersionId  uint64 `json:"first_version_id"`
	PreviousVersion uint64 `json:"previous_version"`
}
