package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdkstd "github.com/cosmos/cosmos-sdk/std"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/feed/x/feed/keeper"
	"github.com/paw-chain/feed/x/feed/types"
)

// FeedKeeper creates a test keeper for the feed module backed by real auth
// and bank keepers. Returns the feed keeper, the bank keeper (for funding
// accounts in tests) and a context at block height 1.
func FeedKeeper(t testing.TB) (*keeper.Keeper, bankkeeper.Keeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	authStoreKey := storetypes.NewKVStoreKey(authtypes.StoreKey)
	bankStoreKey := storetypes.NewKVStoreKey(banktypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(authStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(bankStoreKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	sdkstd.RegisterInterfaces(registry)
	authtypes.RegisterInterfaces(registry)
	banktypes.RegisterInterfaces(registry)
	cdc := codec.NewProtoCodec(registry)
	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	// The feed pool account mints in tests so the reward pool can be funded
	// without a full genesis setup.
	maccPerms := map[string][]string{
		authtypes.FeeCollectorName: nil,
		types.ModuleName:           {authtypes.Minter},
		types.ReservePoolName:      nil,
	}

	accountKeeper := authkeeper.NewAccountKeeper(
		cdc,
		runtime.NewKVStoreService(authStoreKey),
		authtypes.ProtoBaseAccount,
		maccPerms,
		address.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()),
		sdk.GetConfig().GetBech32AccountAddrPrefix(),
		authority.String(),
	)

	bankKeeper := bankkeeper.NewBaseKeeper(
		cdc,
		runtime.NewKVStoreService(bankStoreKey),
		accountKeeper,
		map[string]bool{},
		authority.String(),
		log.NewNopLogger(),
	)

	k := keeper.NewKeeper(
		cdc,
		storeKey,
		bankKeeper,
		nil,
		authority.String(),
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Height: 1}, false, log.NewNopLogger())
	require.NoError(t, k.SetParams(ctx, types.DefaultParams()))

	return k, bankKeeper, ctx
}

// FundFeedPool mints coins into the feed module's free reward pool.
func FundFeedPool(t testing.TB, k *keeper.Keeper, bk bankkeeper.Keeper, ctx sdk.Context, amount math.Int) {
	denom := k.GetParams(ctx).RewardDenom
	coins := sdk.NewCoins(sdk.NewCoin(denom, amount))
	require.NoError(t, bk.MintCoins(ctx, types.ModuleName, coins))
}

// CreateTestFeed registers the owner as a feed creator and creates a feed
// with the given oracles. Returns the id of the new feed.
func CreateTestFeed(t testing.TB, k *keeper.Keeper, ctx sdk.Context, owner string, payment math.Int, minSubmissions uint32, oracles []types.OraclePair) uint64 {
	if admin := k.GetModuleAdmin(ctx); admin == "" {
		k.SetModuleAdmin(ctx, owner)
	}
	require.NoError(t, k.SetFeedCreator(ctx, k.GetModuleAdmin(ctx), owner))

	msg := &types.MsgCreateFeed{
		Owner:          owner,
		Payment:        payment,
		Timeout:        10,
		MinSubmissions: minSubmissions,
		Decimals:       6,
		Description:    "test feed",
		RestartDelay:   0,
		Oracles:        oracles,
		SubmissionValueBounds: types.ValueBounds{
			Min: math.NewInt(0),
			Max: math.NewInt(1_000_000_000),
		},
	}
	id, err := k.CreateFeed(ctx, msg)
	require.NoError(t, err)
	return id
}

// SubmitTestValue submits a value through the message server.
func SubmitTestValue(t testing.TB, k *keeper.Keeper, ctx sdk.Context, oracle string, feedID, roundID uint64, value math.Int) {
	msg := types.NewMsgSubmit(oracle, feedID, roundID, value)
	_, err := keeper.NewMsgServerImpl(*k).Submit(ctx, msg)
	require.NoError(t, err)
}
