package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/feed/x/feed/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// CreateFeed creates a new oracle feed.
func (ms msgServer) CreateFeed(goCtx context.Context, msg *types.MsgCreateFeed) (*types.MsgCreateFeedResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	// Use CacheContext so a failure part way through feed setup leaves no
	// state behind.
	cacheCtx, writeFn := ctx.CacheContext()
	feedID, err := ms.Keeper.CreateFeed(cacheCtx, msg)
	if err != nil {
		return nil, err
	}
	writeFn()

	return &types.MsgCreateFeedResponse{FeedId: feedID}, nil
}

// Submit handles an oracle submission for a feed round.
func (ms msgServer) Submit(goCtx context.Context, msg *types.MsgSubmit) (*types.MsgSubmitResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	// A submission mutates round, status, reward and debt state together;
	// all of it is discarded if any step fails.
	cacheCtx, writeFn := ctx.CacheContext()
	if err := ms.Keeper.Submit(cacheCtx, msg); err != nil {
		return nil, err
	}
	writeFn()

	return &types.MsgSubmitResponse{}, nil
}

// ChangeOracles disables and adds oracles for a feed.
func (ms msgServer) ChangeOracles(goCtx context.Context, msg *types.MsgChangeOracles) (*types.MsgChangeOraclesResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	cacheCtx, writeFn := ctx.CacheContext()
	if err := ms.Keeper.ChangeOracles(cacheCtx, msg.FeedId, msg.Owner, msg.ToDisable, msg.ToAdd); err != nil {
		return nil, err
	}
	writeFn()

	return &types.MsgChangeOraclesResponse{}, nil
}

// UpdateFutureRounds updates the round configuration applied to future rounds.
func (ms msgServer) UpdateFutureRounds(goCtx context.Context, msg *types.MsgUpdateFutureRounds) (*types.MsgUpdateFutureRoundsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := ms.Keeper.UpdateFutureRounds(ctx, msg); err != nil {
		return nil, err
	}

	return &types.MsgUpdateFutureRoundsResponse{}, nil
}

// SetPruningWindow updates the pruning window of a feed.
func (ms msgServer) SetPruningWindow(goCtx context.Context, msg *types.MsgSetPruningWindow) (*types.MsgSetPruningWindowResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	cacheCtx, writeFn := ctx.CacheContext()
	if err := ms.Keeper.SetPruningWindow(cacheCtx, msg.FeedId, msg.Owner, msg.PruningWindow); err != nil {
		return nil, err
	}
	writeFn()

	return &types.MsgSetPruningWindowResponse{}, nil
}

// TransferOwnership initiates the transfer of a feed to a new owner.
func (ms msgServer) TransferOwnership(goCtx context.Context, msg *types.MsgTransferOwnership) (*types.MsgTransferOwnershipResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := ms.Keeper.TransferOwnership(ctx, msg.FeedId, msg.Owner, msg.NewOwner); err != nil {
		return nil, err
	}

	return &types.MsgTransferOwnershipResponse{}, nil
}

// AcceptOwnership completes the transfer of feed ownership.
func (ms msgServer) AcceptOwnership(goCtx context.Context, msg *types.MsgAcceptOwnership) (*types.MsgAcceptOwnershipResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := ms.Keeper.AcceptOwnership(ctx, msg.FeedId, msg.NewOwner); err != nil {
		return nil, err
	}

	return &types.MsgAcceptOwnershipResponse{}, nil
}

// SetRequester grants round-request permissions to an account.
func (ms msgServer) SetRequester(goCtx context.Context, msg *types.MsgSetRequester) (*types.MsgSetRequesterResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := ms.Keeper.SetRequester(ctx, msg.FeedId, msg.Owner, msg.Requester, msg.Delay); err != nil {
		return nil, err
	}

	return &types.MsgSetRequesterResponse{}, nil
}

// RemoveRequester revokes round-request permissions.
func (ms msgServer) RemoveRequester(goCtx context.Context, msg *types.MsgRemoveRequester) (*types.MsgRemoveRequesterResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := ms.Keeper.RemoveRequester(ctx, msg.FeedId, msg.Owner, msg.Requester); err != nil {
		return nil, err
	}

	return &types.MsgRemoveRequesterResponse{}, nil
}

// RequestNewRound requests the start of a new oracle round.
func (ms msgServer) RequestNewRound(goCtx context.Context, msg *types.MsgRequestNewRound) (*types.MsgRequestNewRoundResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	cacheCtx, writeFn := ctx.CacheContext()
	roundID, err := ms.Keeper.RequestNewRound(cacheCtx, msg.FeedId, msg.Requester)
	if err != nil {
		return nil, err
	}
	writeFn()

	return &types.MsgRequestNewRoundResponse{RoundId: roundID}, nil
}

// WithdrawPayment withdraws accumulated oracle rewards to a recipient.
func (ms msgServer) WithdrawPayment(goCtx context.Context, msg *types.MsgWithdrawPayment) (*types.MsgWithdrawPaymentResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	cacheCtx, writeFn := ctx.CacheContext()
	if err := ms.Keeper.WithdrawPayment(cacheCtx, msg.Admin, msg.Oracle, msg.Recipient, msg.Amount); err != nil {
		return nil, err
	}
	writeFn()

	return &types.MsgWithdrawPaymentResponse{}, nil
}

// TransferAdmin initiates an admin transfer for an oracle.
func (ms msgServer) TransferAdmin(goCtx context.Context, msg *types.MsgTransferAdmin) (*types.MsgTransferAdminResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := ms.Keeper.TransferAdmin(ctx, msg.Oracle, msg.Admin, msg.NewAdmin); err != nil {
		return nil, err
	}

	return &types.MsgTransferAdminResponse{}, nil
}

// AcceptAdmin completes an admin transfer for an oracle.
func (ms msgServer) AcceptAdmin(goCtx context.Context, msg *types.MsgAcceptAdmin) (*types.MsgAcceptAdminResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := ms.Keeper.AcceptAdmin(ctx, msg.Oracle, msg.NewAdmin); err != nil {
		return nil, err
	}

	return &types.MsgAcceptAdminResponse{}, nil
}

// WithdrawFunds withdraws funds from the free reward pool.
func (ms msgServer) WithdrawFunds(goCtx context.Context, msg *types.MsgWithdrawFunds) (*types.MsgWithdrawFundsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	cacheCtx, writeFn := ctx.CacheContext()
	if err := ms.Keeper.WithdrawFunds(cacheCtx, msg.Admin, msg.Recipient, msg.Amount); err != nil {
		return nil, err
	}
	writeFn()

	return &types.MsgWithdrawFundsResponse{}, nil
}

// ReduceDebt pays down a feed's accumulated debt.
func (ms msgServer) ReduceDebt(goCtx context.Context, msg *types.MsgReduceDebt) (*types.MsgReduceDebtResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	cacheCtx, writeFn := ctx.CacheContext()
	if err := ms.Keeper.ReduceDebt(cacheCtx, msg.FeedId, msg.Amount); err != nil {
		return nil, err
	}
	writeFn()

	return &types.MsgReduceDebtResponse{}, nil
}

// TransferModuleAdmin initiates a module admin transfer.
func (ms msgServer) TransferModuleAdmin(goCtx context.Context, msg *types.MsgTransferModuleAdmin) (*types.MsgTransferModuleAdminResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := ms.Keeper.TransferModuleAdmin(ctx, msg.Admin, msg.NewAdmin); err != nil {
		return nil, err
	}

	return &types.MsgTransferModuleAdminResponse{}, nil
}

// AcceptModuleAdmin completes a module admin transfer.
func (ms msgServer) AcceptModuleAdmin(goCtx context.Context, msg *types.MsgAcceptModuleAdmin) (*types.MsgAcceptModuleAdminResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := ms.Keeper.AcceptModuleAdmin(ctx, msg.NewAdmin); err != nil {
		return nil, err
	}

	return &types.MsgAcceptModuleAdminResponse{}, nil
}

// SetFeedCreator allows an account to create feeds.
func (ms msgServer) SetFeedCreator(goCtx context.Context, msg *types.MsgSetFeedCreator) (*types.MsgSetFeedCreatorResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := ms.Keeper.SetFeedCreator(ctx, msg.Admin, msg.NewCreator); err != nil {
		return nil, err
	}

	return &types.MsgSetFeedCreatorResponse{}, nil
}

// RemoveFeedCreator disallows an account from creating feeds.
func (ms msgServer) RemoveFeedCreator(goCtx context.Context, msg *types.MsgRemoveFeedCreator) (*types.MsgRemoveFeedCreatorResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := ms.Keeper.RemoveFeedCreator(ctx, msg.Admin, msg.Creator); err != nil {
		return nil, err
	}

	return &types.MsgRemoveFeedCreatorResponse{}, nil
}

// UpdateParams updates the module parameters. Limited to the governance
// authority.
func (ms msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if msg.Authority != ms.Keeper.GetAuthority() {
		return nil, types.ErrInvalidParams.Wrapf("invalid authority: expected %s, got %s", ms.Keeper.GetAuthority(), msg.Authority)
	}
	if err := ms.Keeper.SetParams(ctx, msg.Params); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeParamsUpdated),
	)

	return &types.MsgUpdateParamsResponse{}, nil
}
