package types

// compute module event types
const (
	EventTypeRequestSubmitted = "compute_request_submitted"
	EventTypeRequestCancelled = "compute_request_cancelled"
	EventTypeRequestAssigned  = "compute_request_assigned"
	EventTypeRequestCompleted = "compute_request_completed"
	EventTypeRequestFailed    = "compute_request_failed"
	EventTypeRequestTimedOut  = "compute_request_timed_out"
	EventTypeRequestFailover  = "compute_request_failover"
	EventTypeSlashCandidate   = "compute_slash_candidate"
	EventTypeResultStored     = "compute_result_stored"
	EventTypeResultUpdated    = "compute_result_updated"
	EventTypeResultDeleted    = "compute_result_deleted"

	AttributeKeyRequestID     = "request_id"
	AttributeKeyRequester     = "requester"
	AttributeKeyNode          = "node"
	AttributeKeyComputeType   = "compute_type"
	AttributeKeyReason        = "reason"
	AttributeKeyFailoverCount = "failover_count"
	AttributeKeyResultID      = "result_id"
	AttributeKeyVersion       = "version"
	AttributeKeyManifestCid   = "manifest_cid"
)
