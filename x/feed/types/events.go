package types

// Event types for the feed module
// All event types use lowercase with underscore separator (module_action format)
const (
	EventTypeFeedCreated          = "feed_created"
	EventTypeNewRound             = "feed_new_round"
	EventTypeSubmissionReceived   = "feed_submission_received"
	EventTypeAnswerUpdated        = "feed_answer_updated"
	EventTypeRoundDetailsUpdated  = "feed_round_details_updated"
	EventTypePruningWindowUpdated = "feed_pruning_window_updated"

	EventTypeOraclePermissionsUpdated    = "feed_oracle_permissions_updated"
	EventTypeOracleAdminUpdateRequested  = "feed_oracle_admin_update_requested"
	EventTypeOracleAdminUpdated          = "feed_oracle_admin_updated"
	EventTypeOwnerUpdateRequested        = "feed_owner_update_requested"
	EventTypeOwnerUpdated                = "feed_owner_updated"
	EventTypeRequesterPermissionsSet     = "feed_requester_permissions_set"
	EventTypeModuleAdminUpdateRequested  = "feed_module_admin_update_requested"
	EventTypeModuleAdminUpdated          = "feed_module_admin_updated"
	EventTypeFeedCreatorSet              = "feed_creator_set"
	EventTypeFeedCreatorRemoved          = "feed_creator_removed"
	EventTypePaymentWithdrawn            = "feed_payment_withdrawn"
	EventTypeFundsWithdrawn              = "feed_funds_withdrawn"
	EventTypeDebtReduced                 = "feed_debt_reduced"
	EventTypeParamsUpdated               = "feed_params_updated"
)

// Event attribute keys for the feed module
const (
	AttributeKeyFeedID       = "feed_id"
	AttributeKeyRoundID      = "round_id"
	AttributeKeyOracle       = "oracle"
	AttributeKeySubmission   = "submission"
	AttributeKeyAnswer       = "answer"
	AttributeKeyStartedAt    = "started_at"
	AttributeKeyUpdatedAt    = "updated_at"
	AttributeKeyInitiator    = "initiator"
	AttributeKeyOwner        = "owner"
	AttributeKeyPendingOwner = "pending_owner"
	AttributeKeyAdmin        = "admin"
	AttributeKeyPendingAdmin = "pending_admin"
	AttributeKeyPayment      = "payment"
	AttributeKeyMinCount     = "min_submissions"
	AttributeKeyMaxCount     = "max_submissions"
	AttributeKeyRestartDelay = "restart_delay"
	AttributeKeyTimeout      = "timeout"
	AttributeKeyEnabled      = "enabled"
	AttributeKeyAuthorized   = "authorized"
	AttributeKeyDelay        = "delay"
	AttributeKeyRequester    = "requester"
	AttributeKeyCreator      = "creator"
	AttributeKeyRecipient    = "recipient"
	AttributeKeyAmount       = "amount"
	AttributeKeyDebt         = "debt"
	AttributeKeyWindow       = "pruning_window"
)
