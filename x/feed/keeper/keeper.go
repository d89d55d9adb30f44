package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/paw-chain/feed/x/feed/types"
)

var _ types.FeedKeeperV1 = Keeper{}

// Keeper maintains the state of the feed module
type Keeper struct {
	storeKey   storetypes.StoreKey
	cdc        codec.BinaryCodec
	bankKeeper types.BankKeeper
	onAnswer   types.OnAnswerHandler
	authority  string // module authority (usually governance module account)
	metrics    *FeedMetrics
}

// NewKeeper creates a new feed Keeper instance
func NewKeeper(
	cdc codec.BinaryCodec,
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	onAnswer types.OnAnswerHandler,
	authority string,
) *Keeper {
	if onAnswer == nil {
		onAnswer = types.NoOpAnswerHandler{}
	}
	return &Keeper{
		storeKey:   key,
		cdc:        cdc,
		bankKeeper: bankKeeper,
		onAnswer:   onAnswer,
		authority:  authority,
		metrics:    NewFeedMetrics(),
	}
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetAuthority returns the module's authority (governance account)
func (k Keeper) GetAuthority() string {
	return k.authority
}

// getStore returns the KVStore for the feed module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// FundAddress returns the address holding the unreserved reward pool.
func (k Keeper) FundAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

// ReserveAddress returns the address holding rewards owed to oracles.
func (k Keeper) ReserveAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ReservePoolName)
}

// GetParams gets all parameters from the store
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	store := k.getStore(ctx)
	bz := store.Get(types.ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}

	var params types.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		return types.DefaultParams()
	}

	return params
}

// SetParams sets the module parameters
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return types.ErrInvalidParams.Wrap(err.Error())
	}

	store := k.getStore(ctx)
	bz, err := json.Marshal(&params)
	if err != nil {
		return fmt.Errorf("failed to marshal params: %w", err)
	}

	store.Set(types.ParamsKey, bz)
	return nil
}

// AvailableFunds returns the balance of the free reward pool.
func (k Keeper) AvailableFunds(ctx sdk.Context) math.Int {
	denom := k.GetParams(ctx).RewardDenom
	return k.bankKeeper.GetBalance(ctx, k.FundAddress(), denom).Amount
}

// ReservedFunds returns the balance of the reserve pool.
func (k Keeper) ReservedFunds(ctx sdk.Context) math.Int {
	denom := k.GetParams(ctx).RewardDenom
	return k.bankKeeper.GetBalance(ctx, k.ReserveAddress(), denom).Amount
}
