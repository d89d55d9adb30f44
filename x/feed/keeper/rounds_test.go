package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/feed/testutil/keeper"
	"github.com/paw-chain/feed/x/feed/types"
)

func TestSubmitRoundLifecycle(t *testing.T) {
	k, bk, ctx := keepertest.FeedKeeper(t)
	keepertest.FundFeedPool(t, k, bk, ctx, math.NewInt(1_000_000))
	feedID := keepertest.CreateTestFeed(t, k, ctx, testOwner, math.NewInt(10), 2, testOracles(3))

	// the first submission opens the round but produces no answer yet
	keepertest.SubmitTestValue(t, k, ctx, oracleAddr(0), feedID, 1, math.NewInt(100))

	round, found := k.GetRound(ctx, feedID, 1)
	require.True(t, found)
	require.False(t, round.IsAnswered())
	require.Equal(t, ctx.BlockHeight(), round.StartedAt)

	config, _ := k.GetFeedConfig(ctx, feedID)
	require.Equal(t, uint64(1), config.ReportingRound)
	require.Equal(t, uint64(0), config.LatestRound)

	status, _ := k.GetOracleStatus(ctx, feedID, oracleAddr(0))
	require.NotNil(t, status.LastStartedRound)
	require.Equal(t, uint64(1), *status.LastStartedRound)
	require.NotNil(t, status.LastReportedRound)
	require.Equal(t, uint64(1), *status.LastReportedRound)
	require.True(t, status.LatestSubmission.Equal(math.NewInt(100)))

	// the second submission reaches the minimum and aggregates the answer
	keepertest.SubmitTestValue(t, k, ctx, oracleAddr(1), feedID, 1, math.NewInt(200))

	round, _ = k.GetRound(ctx, feedID, 1)
	require.True(t, round.IsAnswered())
	require.True(t, round.Answer.Equal(math.NewInt(150)))
	require.Equal(t, uint64(1), *round.AnsweredInRound)

	config, _ = k.GetFeedConfig(ctx, feedID)
	require.Equal(t, uint64(1), config.LatestRound)
	require.NotNil(t, config.FirstValidRound)
	require.Equal(t, uint64(1), *config.FirstValidRound)

	// a late third submission shifts the median
	keepertest.SubmitTestValue(t, k, ctx, oracleAddr(2), feedID, 1, math.NewInt(300))
	round, _ = k.GetRound(ctx, feedID, 1)
	require.True(t, round.Answer.Equal(math.NewInt(200)))

	// the maximum count was reached, the details are gone
	_, found = k.GetRoundDetails(ctx, feedID, 1)
	require.False(t, found)
}

func TestSubmitRejectsNonOracle(t *testing.T) {
	k, bk, ctx := keepertest.FeedKeeper(t)
	keepertest.FundFeedPool(t, k, bk, ctx, math.NewInt(1_000))
	feedID := keepertest.CreateTestFeed(t, k, ctx, testOwner, math.NewInt(1), 1, testOracles(1))

	msg := types.NewMsgSubmit(testStranger, feedID, 1, math.NewInt(100))
	require.ErrorIs(t, k.Submit(ctx, msg), types.ErrNotOracle)
}

func TestSubmitEnforcesValueBounds(t *testing.T) {
	k, bk, ctx := keepertest.FeedKeeper(t)
	keepertest.FundFeedPool(t, k, bk, ctx, math.NewInt(1_000))
	feedID := keepertest.CreateTestFeed(t, k, ctx, testOwner, math.NewInt(1), 1, testOracles(1))

	msg := types.NewMsgSubmit(oracleAddr(0), feedID, 1, math.NewInt(-1))
	require.ErrorIs(t, k.Submit(ctx, msg), types.ErrSubmissionBelowMinimum)

	msg = types.NewMsgSubmit(oracleAddr(0), feedID, 1, math.NewInt(2_000_000_000))
	require.ErrorIs(t, k.Submit(ctx, msg), types.ErrSubmissionAboveMaximum)
}

func TestSubmitEnforcesReportingOrder(t *testing.T) {
	k, bk, ctx := keepertest.FeedKeeper(t)
	keepertest.FundFeedPool(t, k, bk, ctx, math.NewInt(1_000))
	feedID := keepertest.CreateTestFeed(t, k, ctx, testOwner, math.NewInt(1), 2, testOracles(2))

	keepertest.SubmitTestValue(t, k, ctx, oracleAddr(0), feedID, 1, math.NewInt(100))

	// the same oracle cannot report twice for the same round
	msg := types.NewMsgSubmit(oracleAddr(0), feedID, 1, math.NewInt(100))
	require.ErrorIs(t, k.Submit(ctx, msg), types.ErrReportingOrder)

	// rounds beyond the next one cannot be reported
	msg = types.NewMsgSubmit(oracleAddr(1), feedID, 3, math.NewInt(100))
	require.ErrorIs(t, k.Submit(ctx, msg), types.ErrInvalidRound)
}

func TestSubmitRequiresSupersedablePreviousRound(t *testing.T) {
	k, bk, ctx := keepertest.FeedKeeper(t)
	keepertest.FundFeedPool(t, k, bk, ctx, math.NewInt(1_000))
	feedID := keepertest.CreateTestFeed(t, k, ctx, testOwner, math.NewInt(1), 2, testOracles(2))

	// round 1 is open with a single submission and neither answered nor
	// timed out, so round 2 cannot start
	keepertest.SubmitTestValue(t, k, ctx, oracleAddr(0), feedID, 1, math.NewInt(100))

	msg := types.NewMsgSubmit(oracleAddr(1), feedID, 2, math.NewInt(100))
	require.ErrorIs(t, k.Submit(ctx, msg), types.ErrNotSupersedable)
}

func TestSubmitClosesTimedOutRound(t *testing.T) {
	k, bk, ctx := keepertest.FeedKeeper(t)
	keepertest.FundFeedPool(t, k, bk, ctx, math.NewInt(1_000))
	feedID := keepertest.CreateTestFeed(t, k, ctx, testOwner, math.NewInt(1), 2, testOracles(2))

	keepertest.SubmitTestValue(t, k, ctx, oracleAddr(0), feedID, 1, math.NewInt(100))

	// move past the feed timeout of 10 blocks
	ctx = ctx.WithBlockHeight(ctx.BlockHeight() + 11)
	keepertest.SubmitTestValue(t, k, ctx, oracleAddr(1), feedID, 2, math.NewInt(100))

	// round 1 carried over the dummy answer of round 0
	round, found := k.GetRound(ctx, feedID, 1)
	require.True(t, found)
	require.True(t, round.IsAnswered())
	require.True(t, round.Answer.IsZero())
	require.Equal(t, uint64(0), *round.AnsweredInRound)
	require.Equal(t, ctx.BlockHeight(), *round.UpdatedAt)

	// its details were dropped when it was closed
	_, found = k.GetRoundDetails(ctx, feedID, 1)
	require.False(t, found)

	config, _ := k.GetFeedConfig(ctx, feedID)
	require.Equal(t, uint64(2), config.ReportingRound)
}

func TestSubmitRestartDelayBlocksEagerOracle(t *testing.T) {
	k, bk, ctx := keepertest.FeedKeeper(t)
	keepertest.FundFeedPool(t, k, bk, ctx, math.NewInt(1_000))

	feedID := keepertest.CreateTestFeed(t, k, ctx, testOwner, math.NewInt(1), 1, testOracles(2))
	msg := &types.MsgUpdateFutureRounds{
		Owner:          testOwner,
		FeedId:         feedID,
		Payment:        math.NewInt(1),
		MinSubmissions: 1,
		MaxSubmissions: 2,
		RestartDelay:   1,
		Timeout:        10,
	}
	require.NoError(t, k.UpdateFutureRounds(ctx, msg))

	// oracle 0 starts and answers round 1
	keepertest.SubmitTestValue(t, k, ctx, oracleAddr(0), feedID, 1, math.NewInt(100))

	// with a restart delay of 1 the same oracle cannot start round 2; the
	// round is never initialized so the submission finds no details
	submit := types.NewMsgSubmit(oracleAddr(0), feedID, 2, math.NewInt(100))
	require.ErrorIs(t, k.Submit(ctx, submit), types.ErrNotAcceptingSubmissions)

	// the other oracle can
	keepertest.SubmitTestValue(t, k, ctx, oracleAddr(1), feedID, 2, math.NewInt(200))

	// after sitting out one round, oracle 0 may start round 3
	keepertest.SubmitTestValue(t, k, ctx, oracleAddr(0), feedID, 3, math.NewInt(300))
	config, _ := k.GetFeedConfig(ctx, feedID)
	require.Equal(t, uint64(3), config.LatestRound)
}

func TestSubmitDropsPreviousRoundDetailsOnAnswer(t *testing.T) {
	k, bk, ctx := keepertest.FeedKeeper(t)
	keepertest.FundFeedPool(t, k, bk, ctx, math.NewInt(1_000))
	feedID := keepertest.CreateTestFeed(t, k, ctx, testOwner, math.NewInt(1), 1, testOracles(2))

	keepertest.SubmitTestValue(t, k, ctx, oracleAddr(0), feedID, 1, math.NewInt(100))
	_, found := k.GetRoundDetails(ctx, feedID, 1)
	require.True(t, found)

	// answering round 2 drops what is left of round 1
	keepertest.SubmitTestValue(t, k, ctx, oracleAddr(1), feedID, 2, math.NewInt(200))
	_, found = k.GetRoundDetails(ctx, feedID, 1)
	require.False(t, found)
}

func TestReadAPI(t *testing.T) {
	k, bk, ctx := keepertest.FeedKeeper(t)
	keepertest.FundFeedPool(t, k, bk, ctx, math.NewInt(1_000))
	feedID := keepertest.CreateTestFeed(t, k, ctx, testOwner, math.NewInt(1), 1, testOracles(2))

	// unanswered feeds serve default data
	data, err := k.LatestData(ctx, feedID)
	require.NoError(t, err)
	require.True(t, data.Answer.IsZero())

	_, found, err := k.FirstValidRound(ctx, feedID)
	require.NoError(t, err)
	require.False(t, found)

	keepertest.SubmitTestValue(t, k, ctx, oracleAddr(0), feedID, 1, math.NewInt(777))

	latest, err := k.LatestRound(ctx, feedID)
	require.NoError(t, err)
	require.Equal(t, uint64(1), latest)

	first, found, err := k.FirstValidRound(ctx, feedID)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, uint64(1), first)

	data, err = k.LatestData(ctx, feedID)
	require.NoError(t, err)
	require.True(t, data.Answer.Equal(math.NewInt(777)))
	require.Equal(t, uint64(1), data.AnsweredInRound)

	roundData, found, err := k.DataAt(ctx, feedID, 1)
	require.NoError(t, err)
	require.True(t, found)
	require.True(t, roundData.Answer.Equal(math.NewInt(777)))

	// open rounds have no data
	_, found, err = k.DataAt(ctx, feedID, 9)
	require.NoError(t, err)
	require.False(t, found)

	decimals, err := k.Decimals(ctx, feedID)
	require.NoError(t, err)
	require.Equal(t, uint8(6), decimals)

	// unknown feeds error
	_, err = k.LatestRound(ctx, 42)
	require.ErrorIs(t, err, types.ErrFeedNotFound)
}

func TestSubmitCatchUpToPreviousRound(t *testing.T) {
	k, bk, ctx := keepertest.FeedKeeper(t)
	keepertest.FundFeedPool(t, k, bk, ctx, math.NewInt(1_000_000))
	feedID := keepertest.CreateTestFeed(t, k, ctx, testOwner, math.NewInt(10), 2, testOracles(3))

	// two oracles answer round 1, the first moves on to round 2
	keepertest.SubmitTestValue(t, k, ctx, oracleAddr(0), feedID, 1, math.NewInt(100))
	keepertest.SubmitTestValue(t, k, ctx, oracleAddr(1), feedID, 1, math.NewInt(200))
	keepertest.SubmitTestValue(t, k, ctx, oracleAddr(0), feedID, 2, math.NewInt(110))

	config, _ := k.GetFeedConfig(ctx, feedID)
	require.Equal(t, uint64(2), config.ReportingRound)
	round2, found := k.GetRound(ctx, feedID, 2)
	require.True(t, found)
	require.False(t, round2.IsAnswered())

	// the slowest oracle may still report for round 1 while round 2 has no
	// answer, shifting the recorded median
	keepertest.SubmitTestValue(t, k, ctx, oracleAddr(2), feedID, 1, math.NewInt(300))

	round, found := k.GetRound(ctx, feedID, 1)
	require.True(t, found)
	require.True(t, round.Answer.Equal(math.NewInt(200)))
	require.Equal(t, uint64(1), *round.AnsweredInRound)

	// the maximum count was reached, round 1 stopped accepting
	_, found = k.GetRoundDetails(ctx, feedID, 1)
	require.False(t, found)

	// an oracle cannot report for round 1 twice
	msg := types.NewMsgSubmit(oracleAddr(2), feedID, 1, math.NewInt(400))
	require.ErrorIs(t, k.Submit(ctx, msg), types.ErrReportingOrder)
}

func TestSubmitPrunesOldRounds(t *testing.T) {
	k, bk, ctx := keepertest.FeedKeeper(t)
	keepertest.FundFeedPool(t, k, bk, ctx, math.NewInt(1_000_000))
	feedID := keepertest.CreateTestFeed(t, k, ctx, testOwner, math.NewInt(10), 1, testOracles(1))
	require.NoError(t, k.SetPruningWindow(ctx, feedID, testOwner, 2))

	for roundID := uint64(1); roundID <= 5; roundID++ {
		keepertest.SubmitTestValue(t, k, ctx, oracleAddr(0), feedID, roundID, math.NewInt(int64(100*roundID)))
	}

	config, _ := k.GetFeedConfig(ctx, feedID)
	require.Equal(t, uint64(5), config.LatestRound)
	require.Equal(t, uint64(4), config.NextRoundToPrune)
	require.NotNil(t, config.FirstValidRound)
	require.Equal(t, uint64(4), *config.FirstValidRound)

	// only the rounds within the window survive
	for roundID := uint64(1); roundID <= 3; roundID++ {
		_, found := k.GetRound(ctx, feedID, roundID)
		require.False(t, found, "round %d should be pruned", roundID)

		_, found, err := k.DataAt(ctx, feedID, roundID)
		require.NoError(t, err)
		require.False(t, found)
	}
	for roundID := uint64(4); roundID <= 5; roundID++ {
		round, found := k.GetRound(ctx, feedID, roundID)
		require.True(t, found, "round %d should be retained", roundID)
		require.True(t, round.IsAnswered())
	}

	// round zero is never pruned
	_, found := k.GetRound(ctx, feedID, 0)
	require.True(t, found)
}
