package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgCreateFeed          = "create_feed"
	TypeMsgSubmit              = "submit"
	TypeMsgChangeOracles       = "change_oracles"
	TypeMsgUpdateFutureRounds  = "update_future_rounds"
	TypeMsgSetPruningWindow    = "set_pruning_window"
	TypeMsgTransferOwnership   = "transfer_ownership"
	TypeMsgAcceptOwnership     = "accept_ownership"
	TypeMsgSetRequester        = "set_requester"
	TypeMsgRemoveRequester     = "remove_requester"
	TypeMsgRequestNewRound     = "request_new_round"
	TypeMsgWithdrawPayment     = "withdraw_payment"
	TypeMsgTransferAdmin       = "transfer_admin"
	TypeMsgAcceptAdmin         = "accept_admin"
	TypeMsgWithdrawFunds       = "withdraw_funds"
	TypeMsgReduceDebt          = "reduce_debt"
	TypeMsgTransferModuleAdmin = "transfer_module_admin"
	TypeMsgAcceptModuleAdmin   = "accept_module_admin"
	TypeMsgSetFeedCreator      = "set_feed_creator"
	TypeMsgRemoveFeedCreator   = "remove_feed_creator"
	TypeMsgUpdateParams        = "update_params"
)

var (
	_ sdk.Msg = &MsgCreateFeed{}
	_ sdk.Msg = &MsgSubmit{}
	_ sdk.Msg = &MsgChangeOracles{}
	_ sdk.Msg = &MsgUpdateFutureRounds{}
	_ sdk.Msg = &MsgSetPruningWindow{}
	_ sdk.Msg = &MsgTransferOwnership{}
	_ sdk.Msg = &MsgAcceptOwnership{}
	_ sdk.Msg = &MsgSetRequester{}
	_ sdk.Msg = &MsgRemoveRequester{}
	_ sdk.Msg = &MsgRequestNewRound{}
	_ sdk.Msg = &MsgWithdrawPayment{}
	_ sdk.Msg = &MsgTransferAdmin{}
	_ sdk.Msg = &MsgAcceptAdmin{}
	_ sdk.Msg = &MsgWithdrawFunds{}
	_ sdk.Msg = &MsgReduceDebt{}
	_ sdk.Msg = &MsgTransferModuleAdmin{}
	_ sdk.Msg = &MsgAcceptModuleAdmin{}
	_ sdk.Msg = &MsgSetFeedCreator{}
	_ sdk.Msg = &MsgRemoveFeedCreator{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgCreateFeed creates a new oracle feed. Limited to feed creator accounts.
type MsgCreateFeed struct {
	Owner                 string       `json:"owner"`
	Payment               math.Int     `json:"payment"`
	Timeout               int64        `json:"timeout"`
	SubmissionValueBounds ValueBounds  `json:"submission_value_bounds"`
	MinSubmissions        uint32       `json:"min_submissions"`
	Decimals              uint8        `json:"decimals"`
	Description           string       `json:"description"`
	RestartDelay          uint64       `json:"restart_delay"`
	Oracles               []OraclePair `json:"oracles"`
	// PruningWindow defaults to the maximum when nil
	PruningWindow *uint64 `json:"pruning_window,omitempty"`
	// MaxDebt is unlimited when nil
	MaxDebt *math.Int `json:"max_debt,omitempty"`
}

// MsgCreateFeedResponse returns the id assigned to the new feed.
type MsgCreateFeedResponse struct {
	FeedId uint64 `json:"feed_id"`
}

func (msg *MsgCreateFeed) Reset()         { *msg = MsgCreateFeed{} }
func (msg *MsgCreateFeed) String() string { return fmt.Sprintf("MsgCreateFeed<%s>", msg.Owner) }
func (msg *MsgCreateFeed) ProtoMessage()  {}

// Route implements sdk.Msg
func (msg *MsgCreateFeed) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgCreateFeed) Type() string { return TypeMsgCreateFeed }

// GetSigners implements sdk.Msg
func (msg *MsgCreateFeed) GetSigners() []sdk.AccAddress {
	owner, _ := sdk.AccAddressFromBech32(msg.Owner)
	return []sdk.AccAddress{owner}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgCreateFeed) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgCreateFeed) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return ErrNotFeedOwner.Wrapf("invalid owner address: %s", err)
	}
	if msg.Payment.IsNil() || msg.Payment.IsNegative() {
		return ErrInvalidParams.Wrap("payment cannot be negative")
	}
	if msg.Timeout < 0 {
		return ErrInvalidParams.Wrap("timeout cannot be negative")
	}
	if msg.SubmissionValueBounds.Min.IsNil() || msg.SubmissionValueBounds.Max.IsNil() {
		return ErrWrongBounds.Wrap("submission value bounds must be set")
	}
	if msg.SubmissionValueBounds.Min.GT(msg.SubmissionValueBounds.Max) {
		return ErrWrongBounds.Wrap("submission value minimum above maximum")
	}
	if msg.PruningWindow != nil && *msg.PruningWindow == 0 {
		return ErrCannotPruneRoundZero
	}
	if msg.MaxDebt != nil && msg.MaxDebt.IsNegative() {
		return ErrInvalidParams.Wrap("max debt cannot be negative")
	}
	for _, pair := range msg.Oracles {
		if _, err := sdk.AccAddressFromBech32(pair.Oracle); err != nil {
			return ErrOracleNotFound.Wrapf("invalid oracle address: %s", err)
		}
		if _, err := sdk.AccAddressFromBech32(pair.Admin); err != nil {
			return ErrNotAdmin.Wrapf("invalid oracle admin address: %s", err)
		}
	}
	return nil
}

// MsgSubmit submits a new value to the given feed and round. Limited to the
// oracles of a feed.
type MsgSubmit struct {
	Oracle     string   `json:"oracle"`
	FeedId     uint64   `json:"feed_id"`
	RoundId    uint64   `json:"round_id"`
	Submission math.Int `json:"submission"`
}

// MsgSubmitResponse is the response for MsgSubmit.
type MsgSubmitResponse struct{}

// NewMsgSubmit creates a new MsgSubmit instance
func NewMsgSubmit(oracle string, feedID, roundID uint64, submission math.Int) *MsgSubmit {
	return &MsgSubmit{
		Oracle:     oracle,
		FeedId:     feedID,
		RoundId:    roundID,
		Submission: submission,
	}
}

func (msg *MsgSubmit) Reset()         { *msg = MsgSubmit{} }
func (msg *MsgSubmit) String() string { return fmt.Sprintf("MsgSubmit<%s>", msg.Oracle) }
func (msg *MsgSubmit) ProtoMessage()  {}

// Route implements sdk.Msg
func (msg *MsgSubmit) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgSubmit) Type() string { return TypeMsgSubmit }

// GetSigners implements sdk.Msg
func (msg *MsgSubmit) GetSigners() []sdk.AccAddress {
	oracle, _ := sdk.AccAddressFromBech32(msg.Oracle)
	return []sdk.AccAddress{oracle}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgSubmit) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgSubmit) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Oracle); err != nil {
		return ErrNotOracle.Wrapf("invalid oracle address: %s", err)
	}
	if msg.RoundId == 0 {
		return ErrInvalidRound.Wrap("round zero does not accept submissions")
	}
	if msg.Submission.IsNil() {
		return ErrInvalidRound.Wrap("submission must be set")
	}
	return nil
}

// MsgChangeOracles disables and adds oracles for the given feed. Limited to
// the feed owner.
type MsgChangeOracles struct {
	Owner     string       `json:"owner"`
	FeedId    uint64       `json:"feed_id"`
	ToDisable []string     `json:"to_disable"`
	ToAdd     []OraclePair `json:"to_add"`
}

// MsgChangeOraclesResponse is the response for MsgChangeOracles.
type MsgChangeOraclesResponse struct{}

func (msg *MsgChangeOracles) Reset()         { *msg = MsgChangeOracles{} }
func (msg *MsgChangeOracles) String() string { return fmt.Sprintf("MsgChangeOracles<%d>", msg.FeedId) }
func (msg *MsgChangeOracles) ProtoMessage()  {}

// Route implements sdk.Msg
func (msg *MsgChangeOracles) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgChangeOracles) Type() string { return TypeMsgChangeOracles }

// GetSigners implements sdk.Msg
func (msg *MsgChangeOracles) GetSigners() []sdk.AccAddress {
	owner, _ := sdk.AccAddressFromBech32(msg.Owner)
	return []sdk.AccAddress{owner}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgChangeOracles) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgChangeOracles) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return ErrNotFeedOwner.Wrapf("invalid owner address: %s", err)
	}
	for _, oracle := range msg.ToDisable {
		if _, err := sdk.AccAddressFromBech32(oracle); err != nil {
			return ErrOracleNotFound.Wrapf("invalid oracle address: %s", err)
		}
	}
	for _, pair := range msg.ToAdd {
		if _, err := sdk.AccAddressFromBech32(pair.Oracle); err != nil {
			return ErrOracleNotFound.Wrapf("invalid oracle address: %s", err)
		}
		if _, err := sdk.AccAddressFromBech32(pair.Admin); err != nil {
			return ErrNotAdmin.Wrapf("invalid oracle admin address: %s", err)
		}
	}
	return nil
}

// MsgUpdateFutureRounds updates the round configuration applied to future
// rounds. Limited to the feed owner.
type MsgUpdateFutureRounds struct {
	Owner          string   `json:"owner"`
	FeedId         uint64   `json:"feed_id"`
	Payment        math.Int `json:"payment"`
	MinSubmissions uint32   `json:"min_submissions"`
	MaxSubmissions uint32   `json:"max_submissions"`
	RestartDelay   uint64   `json:"restart_delay"`
	Timeout        int64    `json:"timeout"`
}

// MsgUpdateFutureRoundsResponse is the response for MsgUpdateFutureRounds.
type MsgUpdateFutureRoundsResponse struct{}

func (msg *MsgUpdateFutureRounds) Reset() { *msg = MsgUpdateFutureRounds{} }
func (msg *MsgUpdateFutureRounds) String() string {
	return fmt.Sprintf("MsgUpdateFutureRounds<%d>", msg.FeedId)
}
func (msg *MsgUpdateFutureRounds) ProtoMessage() {}

// Route implements sdk.Msg
func (msg *MsgUpdateFutureRounds) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgUpdateFutureRounds) Type() string { return TypeMsgUpdateFutureRounds }

// GetSigners implements sdk.Msg
func (msg *MsgUpdateFutureRounds) GetSigners() []sdk.AccAddress {
	owner, _ := sdk.AccAddressFromBech32(msg.Owner)
	return []sdk.AccAddress{owner}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgUpdateFutureRounds) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgUpdateFutureRounds) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return ErrNotFeedOwner.Wrapf("invalid owner address: %s", err)
	}
	if msg.Payment.IsNil() || msg.Payment.IsNegative() {
		return ErrInvalidParams.Wrap("payment cannot be negative")
	}
	if msg.Timeout < 0 {
		return ErrInvalidParams.Wrap("timeout cannot be negative")
	}
	return nil
}

// MsgSetPruningWindow updates the pruning window of an existing feed. Prunes
// rounds if the new window is smaller than the old one. Limited to the feed
// owner.
type MsgSetPruningWindow struct {
	Owner         string `json:"owner"`
	FeedId        uint64 `json:"feed_id"`
	PruningWindow uint64 `json:"pruning_window"`
}

// MsgSetPruningWindowResponse is the response for MsgSetPruningWindow.
type MsgSetPruningWindowResponse struct{}

func (msg *MsgSetPruningWindow) Reset() { *msg = MsgSetPruningWindow{} }
func (msg *MsgSetPruningWindow) String() string {
	return fmt.Sprintf("MsgSetPruningWindow<%d>", msg.FeedId)
}
func (msg *MsgSetPruningWindow) ProtoMessage() {}

// Route implements sdk.Msg
func (msg *MsgSetPruningWindow) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgSetPruningWindow) Type() string { return TypeMsgSetPruningWindow }

// GetSigners implements sdk.Msg
func (msg *MsgSetPruningWindow) GetSigners() []sdk.AccAddress {
	owner, _ := sdk.AccAddressFromBech32(msg.Owner)
	return []sdk.AccAddress{owner}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgSetPruningWindow) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgSetPruningWindow) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return ErrNotFeedOwner.Wrapf("invalid owner address: %s", err)
	}
	if msg.PruningWindow == 0 {
		return ErrCannotPruneRoundZero
	}
	return nil
}

// MsgTransferOwnership initiates the transfer of a feed to a new owner.
// Limited to the feed owner.
type MsgTransferOwnership struct {
	Owner    string `json:"owner"`
	FeedId   uint64 `json:"feed_id"`
	NewOwner string `json:"new_owner"`
}

// MsgTransferOwnershipResponse is the response for MsgTransferOwnership.
type MsgTransferOwnershipResponse struct{}

func (msg *MsgTransferOwnership) Reset() { *msg = MsgTransferOwnership{} }
func (msg *MsgTransferOwnership) String() string {
	return fmt.Sprintf("MsgTransferOwnership<%d>", msg.FeedId)
}
func (msg *MsgTransferOwnership) ProtoMessage() {}

// Route implements sdk.Msg
func (msg *MsgTransferOwnership) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgTransferOwnership) Type() string { return TypeMsgTransferOwnership }

// GetSigners implements sdk.Msg
func (msg *MsgTransferOwnership) GetSigners() []sdk.AccAddress {
	owner, _ := sdk.AccAddressFromBech32(msg.Owner)
	return []sdk.AccAddress{owner}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgTransferOwnership) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgTransferOwnership) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return ErrNotFeedOwner.Wrapf("invalid owner address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.NewOwner); err != nil {
		return ErrNotPendingOwner.Wrapf("invalid new owner address: %s", err)
	}
	return nil
}

// MsgAcceptOwnership accepts the transfer of feed ownership. Limited to the
// pending owner.
type MsgAcceptOwnership struct {
	NewOwner string `json:"new_owner"`
	FeedId   uint64 `json:"feed_id"`
}

// MsgAcceptOwnershipResponse is the response for MsgAcceptOwnership.
type MsgAcceptOwnershipResponse struct{}

func (msg *MsgAcceptOwnership) Reset() { *msg = MsgAcceptOwnership{} }
func (msg *MsgAcceptOwnership) String() string {
	return fmt.Sprintf("MsgAcceptOwnership<%d>", msg.FeedId)
}
func (msg *MsgAcceptOwnership) ProtoMessage() {}

// Route implements sdk.Msg
func (msg *MsgAcceptOwnership) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgAcceptOwnership) Type() string { return TypeMsgAcceptOwnership }

// GetSigners implements sdk.Msg
func (msg *MsgAcceptOwnership) GetSigners() []sdk.AccAddress {
	newOwner, _ := sdk.AccAddressFromBech32(msg.NewOwner)
	return []sdk.AccAddress{newOwner}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgAcceptOwnership) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgAcceptOwnership) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.NewOwner); err != nil {
		return ErrNotPendingOwner.Wrapf("invalid new owner address: %s", err)
	}
	return nil
}

// MsgSetRequester grants round-request permissions to an account. Limited to
// the feed owner.
type MsgSetRequester struct {
	Owner     string `json:"owner"`
	FeedId    uint64 `json:"feed_id"`
	Requester string `json:"requester"`
	Delay     uint64 `json:"delay"`
}

// MsgSetRequesterResponse is the response for MsgSetRequester.
type MsgSetRequesterResponse struct{}

func (msg *MsgSetRequester) Reset()         { *msg = MsgSetRequester{} }
func (msg *MsgSetRequester) String() string { return fmt.Sprintf("MsgSetRequester<%d>", msg.FeedId) }
func (msg *MsgSetRequester) ProtoMessage()  {}

// Route implements sdk.Msg
func (msg *MsgSetRequester) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgSetRequester) Type() string { return TypeMsgSetRequester }

// GetSigners implements sdk.Msg
func (msg *MsgSetRequester) GetSigners() []sdk.AccAddress {
	owner, _ := sdk.AccAddressFromBech32(msg.Owner)
	return []sdk.AccAddress{owner}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgSetRequester) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgSetRequester) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return ErrNotFeedOwner.Wrapf("invalid owner address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Requester); err != nil {
		return ErrRequesterNotFound.Wrapf("invalid requester address: %s", err)
	}
	return nil
}

// MsgRemoveRequester revokes round-request permissions. Limited to the feed
// owner.
type MsgRemoveRequester struct {
	Owner     string `json:"owner"`
	FeedId    uint64 `json:"feed_id"`
	Requester string `json:"requester"`
}

// MsgRemoveRequesterResponse is the response for MsgRemoveRequester.
type MsgRemoveRequesterResponse struct{}

func (msg *MsgRemoveRequester) Reset() { *msg = MsgRemoveRequester{} }
func (msg *MsgRemoveRequester) String() string {
	return fmt.Sprintf("MsgRemoveRequester<%d>", msg.FeedId)
}
func (msg *MsgRemoveRequester) ProtoMessage() {}

// Route implements sdk.Msg
func (msg *MsgRemoveRequester) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgRemoveRequester) Type() string { return TypeMsgRemoveRequester }

// GetSigners implements sdk.Msg
func (msg *MsgRemoveRequester) GetSigners() []sdk.AccAddress {
	owner, _ := sdk.AccAddressFromBech32(msg.Owner)
	return []sdk.AccAddress{owner}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgRemoveRequester) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgRemoveRequester) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return ErrNotFeedOwner.Wrapf("invalid owner address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Requester); err != nil {
		return ErrRequesterNotFound.Wrapf("invalid requester address: %s", err)
	}
	return nil
}

// MsgRequestNewRound requests the start of a new oracle round. Limited to
// accounts with requester permissions.
type MsgRequestNewRound struct {
	Requester string `json:"requester"`
	FeedId    uint64 `json:"feed_id"`
}

// MsgRequestNewRoundResponse returns the id of the round that was started.
type MsgRequestNewRoundResponse struct {
	RoundId uint64 `json:"round_id"`
}

func (msg *MsgRequestNewRound) Reset() { *msg = MsgRequestNewRound{} }
func (msg *MsgRequestNewRound) String() string {
	return fmt.Sprintf("MsgRequestNewRound<%d>", msg.FeedId)
}
func (msg *MsgRequestNewRound) ProtoMessage() {}

// Route implements sdk.Msg
func (msg *MsgRequestNewRound) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgRequestNewRound) Type() string { return TypeMsgRequestNewRound }

// GetSigners implements sdk.Msg
func (msg *MsgRequestNewRound) GetSigners() []sdk.AccAddress {
	requester, _ := sdk.AccAddressFromBech32(msg.Requester)
	return []sdk.AccAddress{requester}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgRequestNewRound) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgRequestNewRound) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Requester); err != nil {
		return ErrNotAuthorizedRequester.Wrapf("invalid requester address: %s", err)
	}
	return nil
}

// MsgWithdrawPayment withdraws accumulated rewards of an oracle to a
// recipient. Limited to the oracle admin.
type MsgWithdrawPayment struct {
	Admin     string   `json:"admin"`
	Oracle    string   `json:"oracle"`
	Recipient string   `json:"recipient"`
	Amount    math.Int `json:"amount"`
}

// MsgWithdrawPaymentResponse is the response for MsgWithdrawPayment.
type MsgWithdrawPaymentResponse struct{}

func (msg *MsgWithdrawPayment) Reset() { *msg = MsgWithdrawPayment{} }
func (msg *MsgWithdrawPayment) String() string {
	return fmt.Sprintf("MsgWithdrawPayment<%s>", msg.Oracle)
}
func (msg *MsgWithdrawPayment) ProtoMessage() {}

// Route implements sdk.Msg
func (msg *MsgWithdrawPayment) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgWithdrawPayment) Type() string { return TypeMsgWithdrawPayment }

// GetSigners implements sdk.Msg
func (msg *MsgWithdrawPayment) GetSigners() []sdk.AccAddress {
	admin, _ := sdk.AccAddressFromBech32(msg.Admin)
	return []sdk.AccAddress{admin}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgWithdrawPayment) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgWithdrawPayment) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return ErrNotAdmin.Wrapf("invalid admin address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Oracle); err != nil {
		return ErrOracleNotFound.Wrapf("invalid oracle address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Recipient); err != nil {
		return ErrInsufficientFunds.Wrapf("invalid recipient address: %s", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrInsufficientFunds.Wrap("amount must be positive")
	}
	return nil
}

// MsgTransferAdmin initiates an admin transfer for an oracle. Limited to the
// oracle admin.
type MsgTransferAdmin struct {
	Admin    string `json:"admin"`
	Oracle   string `json:"oracle"`
	NewAdmin string `json:"new_admin"`
}

// MsgTransferAdminResponse is the response for MsgTransferAdmin.
type MsgTransferAdminResponse struct{}

func (msg *MsgTransferAdmin) Reset()         { *msg = MsgTransferAdmin{} }
func (msg *MsgTransferAdmin) String() string { return fmt.Sprintf("MsgTransferAdmin<%s>", msg.Oracle) }
func (msg *MsgTransferAdmin) ProtoMessage()  {}

// Route implements sdk.Msg
func (msg *MsgTransferAdmin) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgTransferAdmin) Type() string { return TypeMsgTransferAdmin }

// GetSigners implements sdk.Msg
func (msg *MsgTransferAdmin) GetSigners() []sdk.AccAddress {
	admin, _ := sdk.AccAddressFromBech32(msg.Admin)
	return []sdk.AccAddress{admin}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgTransferAdmin) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgTransferAdmin) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return ErrNotAdmin.Wrapf("invalid admin address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Oracle); err != nil {
		return ErrOracleNotFound.Wrapf("invalid oracle address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.NewAdmin); err != nil {
		return ErrNotPendingAdmin.Wrapf("invalid new admin address: %s", err)
	}
	return nil
}

// MsgAcceptAdmin completes an admin transfer for an oracle. Limited to the
// pending admin.
type MsgAcceptAdmin struct {
	NewAdmin string `json:"new_admin"`
	Oracle   string `json:"oracle"`
}

// MsgAcceptAdminResponse is the response for MsgAcceptAdmin.
type MsgAcceptAdminResponse struct{}

func (msg *MsgAcceptAdmin) Reset()         { *msg = MsgAcceptAdmin{} }
func (msg *MsgAcceptAdmin) String() string { return fmt.Sprintf("MsgAcceptAdmin<%s>", msg.Oracle) }
func (msg *MsgAcceptAdmin) ProtoMessage()  {}

// Route implements sdk.Msg
func (msg *MsgAcceptAdmin) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgAcceptAdmin) Type() string { return TypeMsgAcceptAdmin }

// GetSigners implements sdk.Msg
func (msg *MsgAcceptAdmin) GetSigners() []sdk.AccAddress {
	newAdmin, _ := sdk.AccAddressFromBech32(msg.NewAdmin)
	return []sdk.AccAddress{newAdmin}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgAcceptAdmin) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgAcceptAdmin) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.NewAdmin); err != nil {
		return ErrNotPendingAdmin.Wrapf("invalid new admin address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Oracle); err != nil {
		return ErrOracleNotFound.Wrapf("invalid oracle address: %s", err)
	}
	return nil
}

// MsgWithdrawFunds withdraws funds from the reward pool. Limited to the
// module admin.
type MsgWithdrawFunds struct {
	Admin     string   `json:"admin"`
	Recipient string   `json:"recipient"`
	Amount    math.Int `json:"amount"`
}

// MsgWithdrawFundsResponse is the response for MsgWithdrawFunds.
type MsgWithdrawFundsResponse struct{}

func (msg *MsgWithdrawFunds) Reset()         { *msg = MsgWithdrawFunds{} }
func (msg *MsgWithdrawFunds) String() string { return fmt.Sprintf("MsgWithdrawFunds<%s>", msg.Admin) }
func (msg *MsgWithdrawFunds) ProtoMessage()  {}

// Route implements sdk.Msg
func (msg *MsgWithdrawFunds) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgWithdrawFunds) Type() string { return TypeMsgWithdrawFunds }

// GetSigners implements sdk.Msg
func (msg *MsgWithdrawFunds) GetSigners() []sdk.AccAddress {
	admin, _ := sdk.AccAddressFromBech32(msg.Admin)
	return []sdk.AccAddress{admin}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgWithdrawFunds) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgWithdrawFunds) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return ErrNotModuleAdmin.Wrapf("invalid admin address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Recipient); err != nil {
		return ErrInsufficientFunds.Wrapf("invalid recipient address: %s", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrInsufficientFunds.Wrap("amount must be positive")
	}
	return nil
}

// MsgReduceDebt moves funds from the free pool into the reserve to pay down
// a feed's accumulated debt. Open to any account.
type MsgReduceDebt struct {
	Sender string   `json:"sender"`
	FeedId uint64   `json:"feed_id"`
	Amount math.Int `json:"amount"`
}

// MsgReduceDebtResponse is the response for MsgReduceDebt.
type MsgReduceDebtResponse struct{}

func (msg *MsgReduceDebt) Reset()         { *msg = MsgReduceDebt{} }
func (msg *MsgReduceDebt) String() string { return fmt.Sprintf("MsgReduceDebt<%d>", msg.FeedId) }
func (msg *MsgReduceDebt) ProtoMessage()  {}

// Route implements sdk.Msg
func (msg *MsgReduceDebt) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgReduceDebt) Type() string { return TypeMsgReduceDebt }

// GetSigners implements sdk.Msg
func (msg *MsgReduceDebt) GetSigners() []sdk.AccAddress {
	sender, _ := sdk.AccAddressFromBech32(msg.Sender)
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgReduceDebt) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgReduceDebt) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidParams.Wrapf("invalid sender address: %s", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrInvalidParams.Wrap("amount must be positive")
	}
	return nil
}

// MsgTransferModuleAdmin initiates a module admin transfer. Limited to the
// module admin.
type MsgTransferModuleAdmin struct {
	Admin    string `json:"admin"`
	NewAdmin string `json:"new_admin"`
}

// MsgTransferModuleAdminResponse is the response for MsgTransferModuleAdmin.
type MsgTransferModuleAdminResponse struct{}

func (msg *MsgTransferModuleAdmin) Reset() { *msg = MsgTransferModuleAdmin{} }
func (msg *MsgTransferModuleAdmin) String() string {
	return fmt.Sprintf("MsgTransferModuleAdmin<%s>", msg.NewAdmin)
}
func (msg *MsgTransferModuleAdmin) ProtoMessage() {}

// Route implements sdk.Msg
func (msg *MsgTransferModuleAdmin) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgTransferModuleAdmin) Type() string { return TypeMsgTransferModuleAdmin }

// GetSigners implements sdk.Msg
func (msg *MsgTransferModuleAdmin) GetSigners() []sdk.AccAddress {
	admin, _ := sdk.AccAddressFromBech32(msg.Admin)
	return []sdk.AccAddress{admin}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgTransferModuleAdmin) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgTransferModuleAdmin) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return ErrNotModuleAdmin.Wrapf("invalid admin address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.NewAdmin); err != nil {
		return ErrNotPendingModuleAdmin.Wrapf("invalid new admin address: %s", err)
	}
	return nil
}

// MsgAcceptModuleAdmin completes a module admin transfer. Limited to the
// pending module admin.
type MsgAcceptModuleAdmin struct {
	NewAdmin string `json:"new_admin"`
}

// MsgAcceptModuleAdminResponse is the response for MsgAcceptModuleAdmin.
type MsgAcceptModuleAdminResponse struct{}

func (msg *MsgAcceptModuleAdmin) Reset() { *msg = MsgAcceptModuleAdmin{} }
func (msg *MsgAcceptModuleAdmin) String() string {
	return fmt.Sprintf("MsgAcceptModuleAdmin<%s>", msg.NewAdmin)
}
func (msg *MsgAcceptModuleAdmin) ProtoMessage() {}

// Route implements sdk.Msg
func (msg *MsgAcceptModuleAdmin) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgAcceptModuleAdmin) Type() string { return TypeMsgAcceptModuleAdmin }

// GetSigners implements sdk.Msg
func (msg *MsgAcceptModuleAdmin) GetSigners() []sdk.AccAddress {
	newAdmin, _ := sdk.AccAddressFromBech32(msg.NewAdmin)
	return []sdk.AccAddress{newAdmin}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgAcceptModuleAdmin) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgAcceptModuleAdmin) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.NewAdmin); err != nil {
		return ErrNotPendingModuleAdmin.Wrapf("invalid new admin address: %s", err)
	}
	return nil
}

// MsgSetFeedCreator allows an account to create feeds. Limited to the module
// admin.
type MsgSetFeedCreator struct {
	Admin      string `json:"admin"`
	NewCreator string `json:"new_creator"`
}

// MsgSetFeedCreatorResponse is the response for MsgSetFeedCreator.
type MsgSetFeedCreatorResponse struct{}

func (msg *MsgSetFeedCreator) Reset() { *msg = MsgSetFeedCreator{} }
func (msg *MsgSetFeedCreator) String() string {
	return fmt.Sprintf("MsgSetFeedCreator<%s>", msg.NewCreator)
}
func (msg *MsgSetFeedCreator) ProtoMessage() {}

// Route implements sdk.Msg
func (msg *MsgSetFeedCreator) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgSetFeedCreator) Type() string { return TypeMsgSetFeedCreator }

// GetSigners implements sdk.Msg
func (msg *MsgSetFeedCreator) GetSigners() []sdk.AccAddress {
	admin, _ := sdk.AccAddressFromBech32(msg.Admin)
	return []sdk.AccAddress{admin}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgSetFeedCreator) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgSetFeedCreator) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return ErrNotModuleAdmin.Wrapf("invalid admin address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.NewCreator); err != nil {
		return ErrNotFeedCreator.Wrapf("invalid creator address: %s", err)
	}
	return nil
}

// MsgRemoveFeedCreator disallows an account from creating feeds. Limited to
// the module admin.
type MsgRemoveFeedCreator struct {
	Admin   string `json:"admin"`
	Creator string `json:"creator"`
}

// MsgRemoveFeedCreatorResponse is the response for MsgRemoveFeedCreator.
type MsgRemoveFeedCreatorResponse struct{}

func (msg *MsgRemoveFeedCreator) Reset() { *msg = MsgRemoveFeedCreator{} }
func (msg *MsgRemoveFeedCreator) String() string {
	return fmt.Sprintf("MsgRemoveFeedCreator<%s>", msg.Creator)
}
func (msg *MsgRemoveFeedCreator) ProtoMessage() {}

// Route implements sdk.Msg
func (msg *MsgRemoveFeedCreator) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgRemoveFeedCreator) Type() string { return TypeMsgRemoveFeedCreator }

// GetSigners implements sdk.Msg
func (msg *MsgRemoveFeedCreator) GetSigners() []sdk.AccAddress {
	admin, _ := sdk.AccAddressFromBech32(msg.Admin)
	return []sdk.AccAddress{admin}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgRemoveFeedCreator) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgRemoveFeedCreator) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return ErrNotModuleAdmin.Wrapf("invalid admin address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return ErrNotFeedCreator.Wrapf("invalid creator address: %s", err)
	}
	return nil
}

// MsgUpdateParams updates the module parameters. Limited to the governance
// authority.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

// MsgUpdateParamsResponse is the response for MsgUpdateParams.
type MsgUpdateParamsResponse struct{}

func (msg *MsgUpdateParams) Reset()         { *msg = MsgUpdateParams{} }
func (msg *MsgUpdateParams) String() string { return fmt.Sprintf("MsgUpdateParams<%s>", msg.Authority) }
func (msg *MsgUpdateParams) ProtoMessage()  {}

// Route implements sdk.Msg
func (msg *MsgUpdateParams) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgUpdateParams) Type() string { return TypeMsgUpdateParams }

// GetSigners implements sdk.Msg
func (msg *MsgUpdateParams) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgUpdateParams) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrInvalidParams.Wrapf("invalid authority address: %s", err)
	}
	return msg.Params.Validate()
}
