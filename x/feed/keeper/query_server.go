package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/paw-chain/feed/x/feed/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the QueryServer interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// Params queries the module parameters
func (qs queryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	return &types.QueryParamsResponse{Params: qs.GetParams(ctx)}, nil
}

// Feed queries the configuration of a feed
func (qs queryServer) Feed(goCtx context.Context, req *types.QueryFeedRequest) (*types.QueryFeedResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	config, found := qs.GetFeedConfig(ctx, req.FeedId)
	if !found {
		return nil, status.Errorf(codes.NotFound, "feed %d not found", req.FeedId)
	}

	return &types.QueryFeedResponse{Feed: config}, nil
}

// Feeds queries the configurations of all feeds
func (qs queryServer) Feeds(goCtx context.Context, req *types.QueryFeedsRequest) (*types.QueryFeedsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	resp := &types.QueryFeedsResponse{}
	qs.IterateFeeds(ctx, func(feedID uint64, config types.FeedConfig) bool {
		resp.FeedIds = append(resp.FeedIds, feedID)
		resp.Feeds = append(resp.Feeds, config)
		return false
	})

	return resp, nil
}

// RoundData queries the data of a specific round
func (qs queryServer) RoundData(goCtx context.Context, req *types.QueryRoundDataRequest) (*types.QueryRoundDataResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	data, found, err := qs.DataAt(ctx, req.FeedId, req.RoundId)
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}
	if !found {
		return nil, status.Errorf(codes.NotFound, "round %d of feed %d has no answer", req.RoundId, req.FeedId)
	}

	return &types.QueryRoundDataResponse{Data: data}, nil
}

// LatestRoundData queries the latest answered round of a feed
func (qs queryServer) LatestRoundData(goCtx context.Context, req *types.QueryLatestRoundDataRequest) (*types.QueryLatestRoundDataResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	data, err := qs.LatestData(ctx, req.FeedId)
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}

	return &types.QueryLatestRoundDataResponse{Data: data}, nil
}

// Oracle queries the global metadata of an oracle
func (qs queryServer) Oracle(goCtx context.Context, req *types.QueryOracleRequest) (*types.QueryOracleResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	if req.Oracle == "" {
		return nil, status.Error(codes.InvalidArgument, "oracle cannot be empty")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	meta, found := qs.GetOracleMeta(ctx, req.Oracle)
	if !found {
		return nil, status.Errorf(codes.NotFound, "oracle %s not found", req.Oracle)
	}

	return &types.QueryOracleResponse{Meta: meta}, nil
}

// OracleStatus queries the status of an oracle on a feed
func (qs queryServer) OracleStatus(goCtx context.Context, req *types.QueryOracleStatusRequest) (*types.QueryOracleStatusResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	if req.Oracle == "" {
		return nil, status.Error(codes.InvalidArgument, "oracle cannot be empty")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	oracleStatus, found := qs.GetOracleStatus(ctx, req.FeedId, req.Oracle)
	if !found {
		return nil, status.Errorf(codes.NotFound, "oracle %s has no status on feed %d", req.Oracle, req.FeedId)
	}

	return &types.QueryOracleStatusResponse{Status: oracleStatus}, nil
}

// Requester queries the round-request permissions of an account on a feed
func (qs queryServer) Requester(goCtx context.Context, req *types.QueryRequesterRequest) (*types.QueryRequesterResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	if req.Requester == "" {
		return nil, status.Error(codes.InvalidArgument, "requester cannot be empty")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	meta, found := qs.GetRequester(ctx, req.FeedId, req.Requester)
	if !found {
		return nil, status.Errorf(codes.NotFound, "requester %s has no permissions on feed %d", req.Requester, req.FeedId)
	}

	return &types.QueryRequesterResponse{Requester: meta}, nil
}

// Pool queries the balances of the free pool and the reserve
func (qs queryServer) Pool(goCtx context.Context, req *types.QueryPoolRequest) (*types.QueryPoolResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	return &types.QueryPoolResponse{
		Available: qs.AvailableFunds(ctx),
		Reserved:  qs.ReservedFunds(ctx),
	}, nil
}

// ModuleAdmin queries the module admin and any pending transfer
func (qs queryServer) ModuleAdmin(goCtx context.Context, req *types.QueryModuleAdminRequest) (*types.QueryModuleAdminResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	return &types.QueryModuleAdminResponse{
		Admin:        qs.GetModuleAdmin(ctx),
		PendingAdmin: qs.GetPendingModuleAdmin(ctx),
	}, nil
}
