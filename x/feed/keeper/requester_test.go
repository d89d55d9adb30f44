package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/feed/testutil/keeper"
	"github.com/paw-chain/feed/x/feed/types"
)

var testRequester = sdk.AccAddress([]byte("round_requester____")).String()

func TestSetAndRemoveRequester(t *testing.T) {
	k, _, ctx := keepertest.FeedKeeper(t)
	feedID := keepertest.CreateTestFeed(t, k, ctx, testOwner, math.NewInt(1), 1, testOracles(1))

	// owner gated
	err := k.SetRequester(ctx, feedID, testStranger, testRequester, 0)
	require.ErrorIs(t, err, types.ErrNotFeedOwner)

	require.NoError(t, k.SetRequester(ctx, feedID, testOwner, testRequester, 2))
	meta, found := k.GetRequester(ctx, feedID, testRequester)
	require.True(t, found)
	require.Equal(t, uint64(2), meta.Delay)
	require.Nil(t, meta.LastStartedRound)

	// removal is owner gated too
	err = k.RemoveRequester(ctx, feedID, testStranger, testRequester)
	require.ErrorIs(t, err, types.ErrNotFeedOwner)

	require.NoError(t, k.RemoveRequester(ctx, feedID, testOwner, testRequester))
	_, found = k.GetRequester(ctx, feedID, testRequester)
	require.False(t, found)

	// removing an unknown requester fails
	err = k.RemoveRequester(ctx, feedID, testOwner, testRequester)
	require.ErrorIs(t, err, types.ErrRequesterNotFound)
}

func TestSetRequesterKeepsLastStartedRound(t *testing.T) {
	k, bk, ctx := keepertest.FeedKeeper(t)
	keepertest.FundFeedPool(t, k, bk, ctx, math.NewInt(1_000))
	feedID := keepertest.CreateTestFeed(t, k, ctx, testOwner, math.NewInt(1), 1, testOracles(1))

	require.NoError(t, k.SetRequester(ctx, feedID, testOwner, testRequester, 0))

	roundID, err := k.RequestNewRound(ctx, feedID, testRequester)
	require.NoError(t, err)
	require.Equal(t, uint64(1), roundID)

	// updating the delay must not reset the throttle
	require.NoError(t, k.SetRequester(ctx, feedID, testOwner, testRequester, 5))
	meta, _ := k.GetRequester(ctx, feedID, testRequester)
	require.Equal(t, uint64(5), meta.Delay)
	require.NotNil(t, meta.LastStartedRound)
	require.Equal(t, uint64(1), *meta.LastStartedRound)
}

func TestRequestNewRound(t *testing.T) {
	k, bk, ctx := keepertest.FeedKeeper(t)
	keepertest.FundFeedPool(t, k, bk, ctx, math.NewInt(1_000))
	feedID := keepertest.CreateTestFeed(t, k, ctx, testOwner, math.NewInt(1), 1, testOracles(2))

	// permission gated
	_, err := k.RequestNewRound(ctx, feedID, testStranger)
	require.ErrorIs(t, err, types.ErrNotAuthorizedRequester)

	require.NoError(t, k.SetRequester(ctx, feedID, testOwner, testRequester, 1))

	roundID, err := k.RequestNewRound(ctx, feedID, testRequester)
	require.NoError(t, err)
	require.Equal(t, uint64(1), roundID)

	// the round is open for submissions
	_, found := k.GetRoundDetails(ctx, feedID, 1)
	require.True(t, found)
	config, _ := k.GetFeedConfig(ctx, feedID)
	require.Equal(t, uint64(1), config.ReportingRound)

	// the delay throttles back-to-back requests
	keepertest.SubmitTestValue(t, k, ctx, oracleAddr(0), feedID, 1, math.NewInt(100))
	_, err = k.RequestNewRound(ctx, feedID, testRequester)
	require.ErrorIs(t, err, types.ErrCannotRequestRoundYet)

	// once another round has passed a new request is allowed
	keepertest.SubmitTestValue(t, k, ctx, oracleAddr(1), feedID, 2, math.NewInt(200))
	roundID, err = k.RequestNewRound(ctx, feedID, testRequester)
	require.NoError(t, err)
	require.Equal(t, uint64(3), roundID)
}

func TestRequestNewRoundNeedsSupersedableRound(t *testing.T) {
	k, bk, ctx := keepertest.FeedKeeper(t)
	keepertest.FundFeedPool(t, k, bk, ctx, math.NewInt(1_000))
	feedID := keepertest.CreateTestFeed(t, k, ctx, testOwner, math.NewInt(1), 2, testOracles(2))
	require.NoError(t, k.SetRequester(ctx, feedID, testOwner, testRequester, 0))

	// open round 1 with a single submission, leaving it unanswered
	keepertest.SubmitTestValue(t, k, ctx, oracleAddr(0), feedID, 1, math.NewInt(100))

	_, err := k.RequestNewRound(ctx, feedID, testRequester)
	require.ErrorIs(t, err, types.ErrRoundNotSupersedable)
}
