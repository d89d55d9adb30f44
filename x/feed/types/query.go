package types

import (
	"context"

	"cosmossdk.io/math"
)

// QueryParamsRequest is the request type for the Query/Params RPC method.
type QueryParamsRequest struct{}

// QueryParamsResponse is the response type for the Query/Params RPC method.
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryFeedRequest is the request type for the Query/Feed RPC method.
type QueryFeedRequest struct {
	FeedId uint64 `json:"feed_id"`
}

// QueryFeedResponse is the response type for the Query/Feed RPC method.
type QueryFeedResponse struct {
	Feed FeedConfig `json:"feed"`
}

// QueryFeedsRequest is the request type for the Query/Feeds RPC method.
type QueryFeedsRequest struct{}

// QueryFeedsResponse is the response type for the Query/Feeds RPC method.
type QueryFeedsResponse struct {
	FeedIds []uint64     `json:"feed_ids"`
	Feeds   []FeedConfig `json:"feeds"`
}

// QueryRoundDataRequest is the request type for the Query/RoundData RPC
// method.
type QueryRoundDataRequest struct {
	FeedId  uint64 `json:"feed_id"`
	RoundId uint64 `json:"round_id"`
}

// QueryRoundDataResponse is the response type for the Query/RoundData RPC
// method.
type QueryRoundDataResponse struct {
	Data RoundData `json:"data"`
}

// QueryLatestRoundDataRequest is the request type for the
// Query/LatestRoundData RPC method.
type QueryLatestRoundDataRequest struct {
	FeedId uint64 `json:"feed_id"`
}

// QueryLatestRoundDataResponse is the response type for the
// Query/LatestRoundData RPC method.
type QueryLatestRoundDataResponse struct {
	Data RoundData `json:"data"`
}

// QueryOracleRequest is the request type for the Query/Oracle RPC method.
type QueryOracleRequest struct {
	Oracle string `json:"oracle"`
}

// QueryOracleResponse is the response type for the Query/Oracle RPC method.
type QueryOracleResponse struct {
	Meta OracleMeta `json:"meta"`
}

// QueryOracleStatusRequest is the request type for the Query/OracleStatus
// RPC method.
type QueryOracleStatusRequest struct {
	FeedId uint64 `json:"feed_id"`
	Oracle string `json:"oracle"`
}

// QueryOracleStatusResponse is the response type for the Query/OracleStatus
// RPC method.
type QueryOracleStatusResponse struct {
	Status OracleStatus `json:"status"`
}

// QueryRequesterRequest is the request type for the Query/Requester RPC
// method.
type QueryRequesterRequest struct {
	FeedId    uint64 `json:"feed_id"`
	Requester string `json:"requester"`
}

// QueryRequesterResponse is the response type for the Query/Requester RPC
// method.
type QueryRequesterResponse struct {
	Requester Requester `json:"requester"`
}

// QueryPoolRequest is the request type for the Query/Pool RPC method.
type QueryPoolRequest struct{}

// QueryPoolResponse reports the balances of the free pool and the reserve.
type QueryPoolResponse struct {
	Available math.Int `json:"available"`
	Reserved  math.Int `json:"reserved"`
}

// QueryModuleAdminRequest is the request type for the Query/ModuleAdmin RPC
// method.
type QueryModuleAdminRequest struct{}

// QueryModuleAdminResponse is the response type for the Query/ModuleAdmin
// RPC method.
type QueryModuleAdminResponse struct {
	Admin        string `json:"admin"`
	PendingAdmin string `json:"pending_admin,omitempty"`
}

// MsgServer is the server API for the Msg service.
type MsgServer interface {
	CreateFeed(context.Context, *MsgCreateFeed) (*MsgCreateFeedResponse, error)
	Submit(context.Context, *MsgSubmit) (*MsgSubmitResponse, error)
	ChangeOracles(context.Context, *MsgChangeOracles) (*MsgChangeOraclesResponse, error)
	UpdateFutureRounds(context.Context, *MsgUpdateFutureRounds) (*MsgUpdateFutureRoundsResponse, error)
	SetPruningWindow(context.Context, *MsgSetPruningWindow) (*MsgSetPruningWindowResponse, error)
	TransferOwnership(context.Context, *MsgTransferOwnership) (*MsgTransferOwnershipResponse, error)
	AcceptOwnership(context.Context, *MsgAcceptOwnership) (*MsgAcceptOwnershipResponse, error)
	SetRequester(context.Context, *MsgSetRequester) (*MsgSetRequesterResponse, error)
	RemoveRequester(context.Context, *MsgRemoveRequester) (*MsgRemoveRequesterResponse, error)
	RequestNewRound(context.Context, *MsgRequestNewRound) (*MsgRequestNewRoundResponse, error)
	WithdrawPayment(context.Context, *MsgWithdrawPayment) (*MsgWithdrawPaymentResponse, error)
	TransferAdmin(context.Context, *MsgTransferAdmin) (*MsgTransferAdminResponse, error)
	AcceptAdmin(context.Context, *MsgAcceptAdmin) (*MsgAcceptAdminResponse, error)
	WithdrawFunds(context.Context, *MsgWithdrawFunds) (*MsgWithdrawFundsResponse, error)
	ReduceDebt(context.Context, *MsgReduceDebt) (*MsgReduceDebtResponse, error)
	TransferModuleAdmin(context.Context, *MsgTransferModuleAdmin) (*MsgTransferModuleAdminResponse, error)
	AcceptModuleAdmin(context.Context, *MsgAcceptModuleAdmin) (*MsgAcceptModuleAdminResponse, error)
	SetFeedCreator(context.Context, *MsgSetFeedCreator) (*MsgSetFeedCreatorResponse, error)
	RemoveFeedCreator(context.Context, *MsgRemoveFeedCreator) (*MsgRemoveFeedCreatorResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// QueryServer is the server API for the Query service.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Feed(context.Context, *QueryFeedRequest) (*QueryFeedResponse, error)
	Feeds(context.Context, *QueryFeedsRequest) (*QueryFeedsResponse, error)
	RoundData(context.Context, *QueryRoundDataRequest) (*QueryRoundDataResponse, error)
	LatestRoundData(context.Context, *QueryLatestRoundDataRequest) (*QueryLatestRoundDataResponse, error)
	Oracle(context.Context, *QueryOracleRequest) (*QueryOracleResponse, error)
	OracleStatus(context.Context, *QueryOracleStatusRequest) (*QueryOracleStatusResponse, error)
	Requester(context.Context, *QueryRequesterRequest) (*QueryRequesterResponse, error)
	Pool(context.Context, *QueryPoolRequest) (*QueryPoolResponse, error)
	ModuleAdmin(context.Context, *QueryModuleAdminRequest) (*QueryModuleAdminResponse, error)
}
