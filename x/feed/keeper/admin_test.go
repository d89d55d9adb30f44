package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/feed/testutil/keeper"
	"github.com/paw-chain/feed/x/feed/types"
)

var (
	testAdmin    = sdk.AccAddress([]byte("module_admin_______")).String()
	testNewAdmin = sdk.AccAddress([]byte("module_admin_next__")).String()
)

func TestModuleAdminHandshake(t *testing.T) {
	k, _, ctx := keepertest.FeedKeeper(t)
	k.SetModuleAdmin(ctx, testAdmin)

	// only the current admin can initiate
	err := k.TransferModuleAdmin(ctx, testStranger, testNewAdmin)
	require.ErrorIs(t, err, types.ErrNotModuleAdmin)

	require.NoError(t, k.TransferModuleAdmin(ctx, testAdmin, testNewAdmin))
	require.Equal(t, testAdmin, k.GetModuleAdmin(ctx))
	require.Equal(t, testNewAdmin, k.GetPendingModuleAdmin(ctx))

	// only the pending admin can accept
	err = k.AcceptModuleAdmin(ctx, testStranger)
	require.ErrorIs(t, err, types.ErrNotPendingModuleAdmin)

	require.NoError(t, k.AcceptModuleAdmin(ctx, testNewAdmin))
	require.Equal(t, testNewAdmin, k.GetModuleAdmin(ctx))
	require.Empty(t, k.GetPendingModuleAdmin(ctx))

	// the handshake is consumed
	err = k.AcceptModuleAdmin(ctx, testNewAdmin)
	require.ErrorIs(t, err, types.ErrNotPendingModuleAdmin)
}

func TestFeedCreators(t *testing.T) {
	k, _, ctx := keepertest.FeedKeeper(t)
	k.SetModuleAdmin(ctx, testAdmin)

	require.False(t, k.IsFeedCreator(ctx, testOwner))

	// module admin gated
	err := k.SetFeedCreator(ctx, testStranger, testOwner)
	require.ErrorIs(t, err, types.ErrNotModuleAdmin)

	require.NoError(t, k.SetFeedCreator(ctx, testAdmin, testOwner))
	require.True(t, k.IsFeedCreator(ctx, testOwner))
	require.ElementsMatch(t, []string{testOwner}, k.GetFeedCreators(ctx))

	// creators can create feeds now
	feedID, err := k.CreateFeed(ctx, &types.MsgCreateFeed{
		Owner:          testOwner,
		Payment:        math.NewInt(1),
		Timeout:        10,
		MinSubmissions: 1,
		Oracles:        testOracles(1),
		SubmissionValueBounds: types.ValueBounds{
			Min: math.NewInt(0),
			Max: math.NewInt(100),
		},
	})
	require.NoError(t, err)
	require.Equal(t, uint64(0), feedID)

	err = k.RemoveFeedCreator(ctx, testStranger, testOwner)
	require.ErrorIs(t, err, types.ErrNotModuleAdmin)

	require.NoError(t, k.RemoveFeedCreator(ctx, testAdmin, testOwner))
	require.False(t, k.IsFeedCreator(ctx, testOwner))
	require.Empty(t, k.GetFeedCreators(ctx))
}
