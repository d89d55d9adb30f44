package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/feed/testutil/keeper"
	"github.com/paw-chain/feed/x/feed/keeper"
)

func TestInvariantsHoldOnHealthyState(t *testing.T) {
	k, bk, ctx := keepertest.FeedKeeper(t)
	keepertest.FundFeedPool(t, k, bk, ctx, math.NewInt(1_000))
	feedID := keepertest.CreateTestFeed(t, k, ctx, testOwner, math.NewInt(1), 1, testOracles(2))
	keepertest.SubmitTestValue(t, k, ctx, oracleAddr(0), feedID, 1, math.NewInt(100))

	msg, broken := keeper.AllInvariants(*k)(ctx)
	require.False(t, broken, msg)
}

func TestFeedConfigConsistencyInvariant(t *testing.T) {
	k, _, ctx := keepertest.FeedKeeper(t)
	feedID := keepertest.CreateTestFeed(t, k, ctx, testOwner, math.NewInt(1), 1, testOracles(2))

	config, _ := k.GetFeedConfig(ctx, feedID)
	config.SubmissionCountBounds.Max = 10
	k.SetFeedConfig(ctx, feedID, config)

	_, broken := keeper.FeedConfigConsistencyInvariant(*k)(ctx)
	require.True(t, broken)
}

func TestPruningWindowInvariant(t *testing.T) {
	k, _, ctx := keepertest.FeedKeeper(t)
	feedID := keepertest.CreateTestFeed(t, k, ctx, testOwner, math.NewInt(1), 1, testOracles(1))

	config, _ := k.GetFeedConfig(ctx, feedID)
	config.PruningWindow = 0
	k.SetFeedConfig(ctx, feedID, config)

	_, broken := keeper.PruningWindowInvariant(*k)(ctx)
	require.True(t, broken)
}

func TestDebtInvariant(t *testing.T) {
	k, _, ctx := keepertest.FeedKeeper(t)
	feedID := keepertest.CreateTestFeed(t, k, ctx, testOwner, math.NewInt(1), 1, testOracles(1))

	config, _ := k.GetFeedConfig(ctx, feedID)
	config.Debt = math.NewInt(-5)
	k.SetFeedConfig(ctx, feedID, config)

	_, broken := keeper.DebtInvariant(*k)(ctx)
	require.True(t, broken)

	config.Debt = math.NewInt(5)
	maxDebt := math.NewInt(1)
	config.MaxDebt = &maxDebt
	k.SetFeedConfig(ctx, feedID, config)

	_, broken = keeper.DebtInvariant(*k)(ctx)
	require.True(t, broken)
}
