package types

// Event types for the escrow module
const (
	EventTypeLocked              = "escrow_locked"
	EventTypeReleased            = "escrow_released"
	EventTypeRefunded            = "escrow_refunded"
	EventTypeSplitReleased       = "escrow_split_released"
	EventTypeDisputed            = "escrow_disputed"
	EventTypeDecisionApplied     = "escrow_decision_applied"
	EventTypeClosed              = "escrow_closed"
	EventTypeExpired             = "escrow_expired"
	EventTypePauseToggled        = "escrow_pause_toggled"
	EventTypeCatastrophicFailure = "escrow_catastrophic_failure"

	AttributeKeyLockID    = "lock_id"
	AttributeKeyPayer     = "payer"
	AttributeKeyRecipient = "recipient"
	AttributeKeyAmount    = "amount"
	AttributeKeyNonce     = "nonce"
	AttributeKeyReason    = "reason"
	AttributeKeyAction    = "action"
	AttributeKeyBps       = "bps"
	AttributeKeyHeight    = "height"
	AttributeKeyPaused    = "paused"
)
