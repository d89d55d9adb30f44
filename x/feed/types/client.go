package types

import (
	"context"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	grpc "google.golang.org/grpc"
)

// QueryClient is the client API for Query service.
type QueryClient interface {
	Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error)
	Feed(ctx context.Context, in *QueryFeedRequest, opts ...grpc.CallOption) (*QueryFeedResponse, error)
	Feeds(ctx context.Context, in *QueryFeedsRequest, opts ...grpc.CallOption) (*QueryFeedsResponse, error)
	RoundData(ctx context.Context, in *QueryRoundDataRequest, opts ...grpc.CallOption) (*QueryRoundDataResponse, error)
	LatestRoundData(ctx context.Context, in *QueryLatestRoundDataRequest, opts ...grpc.CallOption) (*QueryLatestRoundDataResponse, error)
	Oracle(ctx context.Context, in *QueryOracleRequest, opts ...grpc.CallOption) (*QueryOracleResponse, error)
	OracleStatus(ctx context.Context, in *QueryOracleStatusRequest, opts ...grpc.CallOption) (*QueryOracleStatusResponse, error)
	Requester(ctx context.Context, in *QueryRequesterRequest, opts ...grpc.CallOption) (*QueryRequesterResponse, error)
	Pool(ctx context.Context, in *QueryPoolRequest, opts ...grpc.CallOption) (*QueryPoolResponse, error)
	ModuleAdmin(ctx context.Context, in *QueryModuleAdminRequest, opts ...grpc.CallOption) (*QueryModuleAdminResponse, error)
}

type queryClient struct {
	cc grpc1.ClientConn
}

func NewQueryClient(cc grpc1.ClientConn) QueryClient {
	return &queryClient{cc}
}

func (c *queryClient) Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error) {
	out := new(QueryParamsResponse)
	err := c.cc.Invoke(ctx, "/paw.feed.v1.Query/Params", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Feed(ctx context.Context, in *QueryFeedRequest, opts ...grpc.CallOption) (*QueryFeedResponse, error) {
	out := new(QueryFeedResponse)
	err := c.cc.Invoke(ctx, "/paw.feed.v1.Query/Feed", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Feeds(ctx context.Context, in *QueryFeedsRequest, opts ...grpc.CallOption) (*QueryFeedsResponse, error) {
	out := new(QueryFeedsResponse)
	err := c.cc.Invoke(ctx, "/paw.feed.v1.Query/Feeds", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) RoundData(ctx context.Context, in *QueryRoundDataRequest, opts ...grpc.CallOption) (*QueryRoundDataResponse, error) {
	out := new(QueryRoundDataResponse)
	err := c.cc.Invoke(ctx, "/paw.feed.v1.Query/RoundData", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) LatestRoundData(ctx context.Context, in *QueryLatestRoundDataRequest, opts ...grpc.CallOption) (*QueryLatestRoundDataResponse, error) {
	out := new(QueryLatestRoundDataResponse)
	err := c.cc.Invoke(ctx, "/paw.feed.v1.Query/LatestRoundData", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Oracle(ctx context.Context, in *QueryOracleRequest, opts ...grpc.CallOption) (*QueryOracleResponse, error) {
	out := new(QueryOracleResponse)
	err := c.cc.Invoke(ctx, "/paw.feed.v1.Query/Oracle", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) OracleStatus(ctx context.Context, in *QueryOracleStatusRequest, opts ...grpc.CallOption) (*QueryOracleStatusResponse, error) {
	out := new(QueryOracleStatusResponse)
	err := c.cc.Invoke(ctx, "/paw.feed.v1.Query/OracleStatus", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Requester(ctx context.Context, in *QueryRequesterRequest, opts ...grpc.CallOption) (*QueryRequesterResponse, error) {
	out := new(QueryRequesterResponse)
	err := c.cc.Invoke(ctx, "/paw.feed.v1.Query/Requester", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Pool(ctx context.Context, in *QueryPoolRequest, opts ...grpc.CallOption) (*QueryPoolResponse, error) {
	out := new(QueryPoolResponse)
	err := c.cc.Invoke(ctx, "/paw.feed.v1.Query/Pool", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) ModuleAdmin(ctx context.Context, in *QueryModuleAdminRequest, opts ...grpc.CallOption) (*QueryModuleAdminResponse, error) {
	out := new(QueryModuleAdminResponse)
	err := c.cc.Invoke(ctx, "/paw.feed.v1.Query/ModuleAdmin", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
