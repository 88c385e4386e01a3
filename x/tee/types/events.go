package types

// Event types for the tee module
const (
	EventTypeNodeRegistered       = "tee_node_registered"
	EventTypeAttestationRefreshed = "tee_attestation_refreshed"
	EventTypeBonded               = "tee_bonded"
	EventTypeUnbonded             = "tee_unbonded"
	EventTypeWithdrawn            = "tee_withdrawn"
	EventTypeSlashed              = "tee_slashed"
	EventTypeSuspended            = "tee_suspended"
	EventTypeResumed              = "tee_resumed"
	EventTypeRewardAccrued        = "tee_reward_accrued"
	EventTypeRewardDeposited      = "tee_reward_deposited"
	EventTypeRewardClaimed        = "tee_reward_claimed"
	EventTypeAllowListUpdated     = "tee_allow_list_updated"

	AttributeKeyNode      = "node"
	AttributeKeyAmount    = "amount"
	AttributeKeyReason    = "reason"
	AttributeKeyMrEnclave = "mr_enclave"
	AttributeKeyMrSigner  = "mr_signer"
	AttributeKeyHeight    = "height"
	AttributeKeyDepositor = "depositor"
	AttributeKeyList      = "list"
	AttributeKeySize      = "size"
)
