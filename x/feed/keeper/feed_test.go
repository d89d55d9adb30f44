package keeper_test

import (
	"fmt"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/feed/testutil/keeper"
	"github.com/paw-chain/feed/x/feed/types"
)

var (
	testOwner     = sdk.AccAddress([]byte("feed_owner_________")).String()
	testNewOwner  = sdk.AccAddress([]byte("feed_new_owner_____")).String()
	testRecipient = sdk.AccAddress([]byte("reward_recipient___")).String()
	testStranger  = sdk.AccAddress([]byte("some_stranger______")).String()
)

func oracleAddr(i int) string {
	return sdk.AccAddress([]byte(fmt.Sprintf("oracle_%02d__________", i))).String()
}

func oracleAdminAddr(i int) string {
	return sdk.AccAddress([]byte(fmt.Sprintf("oracle_admin_%02d____", i))).String()
}

func testOracles(n int) []types.OraclePair {
	pairs := make([]types.OraclePair, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, types.OraclePair{Oracle: oracleAddr(i), Admin: oracleAdminAddr(i)})
	}
	return pairs
}

func TestCreateFeed(t *testing.T) {
	k, _, ctx := keepertest.FeedKeeper(t)

	feedID := keepertest.CreateTestFeed(t, k, ctx, testOwner, math.NewInt(10), 2, testOracles(3))
	require.Equal(t, uint64(0), feedID)
	require.Equal(t, uint64(1), k.GetFeedCount(ctx))

	config, found := k.GetFeedConfig(ctx, feedID)
	require.True(t, found)
	require.Equal(t, testOwner, config.Owner)
	require.True(t, config.Payment.Equal(math.NewInt(10)))
	require.Equal(t, uint32(2), config.SubmissionCountBounds.Min)
	require.Equal(t, uint32(3), config.SubmissionCountBounds.Max)
	require.Equal(t, uint32(3), config.OracleCount)
	require.Equal(t, uint64(0), config.ReportingRound)
	require.Equal(t, uint64(0), config.LatestRound)
	require.Nil(t, config.FirstValidRound)
	require.Equal(t, uint64(1), config.NextRoundToPrune)
	require.True(t, config.Debt.IsZero())

	// round zero is seeded with dummy answered data
	round, found := k.GetRound(ctx, feedID, 0)
	require.True(t, found)
	require.True(t, round.IsAnswered())
	require.True(t, round.Answer.IsZero())
	require.NotNil(t, round.UpdatedAt)

	// all oracles are enabled from round zero
	for i := 0; i < 3; i++ {
		status, found := k.GetOracleStatus(ctx, feedID, oracleAddr(i))
		require.True(t, found)
		require.Equal(t, uint64(0), status.StartingRound)
		require.Nil(t, status.EndingRound)

		meta, found := k.GetOracleMeta(ctx, oracleAddr(i))
		require.True(t, found)
		require.Equal(t, oracleAdminAddr(i), meta.Admin)
		require.True(t, meta.Withdrawable.IsZero())
	}

	// ids are sequential
	secondID := keepertest.CreateTestFeed(t, k, ctx, testOwner, math.NewInt(10), 1, testOracles(1))
	require.Equal(t, uint64(1), secondID)
	require.Equal(t, uint64(2), k.GetFeedCount(ctx))
}

func TestCreateFeedRequiresCreator(t *testing.T) {
	k, _, ctx := keepertest.FeedKeeper(t)

	msg := &types.MsgCreateFeed{
		Owner:          testStranger,
		Payment:        math.NewInt(1),
		MinSubmissions: 1,
		Oracles:        testOracles(1),
		SubmissionValueBounds: types.ValueBounds{
			Min: math.NewInt(0),
			Max: math.NewInt(100),
		},
	}
	_, err := k.CreateFeed(ctx, msg)
	require.ErrorIs(t, err, types.ErrNotFeedCreator)
}

func TestCreateFeedValidatesRoundConfig(t *testing.T) {
	k, _, ctx := keepertest.FeedKeeper(t)
	k.SetModuleAdmin(ctx, testOwner)
	require.NoError(t, k.SetFeedCreator(ctx, testOwner, testOwner))

	msg := &types.MsgCreateFeed{
		Owner:          testOwner,
		Payment:        math.NewInt(1),
		MinSubmissions: 3,
		Oracles:        testOracles(2),
		SubmissionValueBounds: types.ValueBounds{
			Min: math.NewInt(0),
			Max: math.NewInt(100),
		},
	}
	// minimum above the number of oracles
	_, err := k.CreateFeed(ctx, msg)
	require.ErrorIs(t, err, types.ErrWrongBounds)

	// restart delay has to stay below the oracle count
	msg.MinSubmissions = 1
	msg.RestartDelay = 2
	_, err = k.CreateFeed(ctx, msg)
	require.ErrorIs(t, err, types.ErrDelayNotBelowCount)

	// a pruning window of zero would prune the dummy round
	msg.RestartDelay = 0
	window := uint64(0)
	msg.PruningWindow = &window
	_, err = k.CreateFeed(ctx, msg)
	require.ErrorIs(t, err, types.ErrCannotPruneRoundZero)
}

func TestCreateFeedRespectsFeedLimit(t *testing.T) {
	k, _, ctx := keepertest.FeedKeeper(t)

	params := types.DefaultParams()
	params.FeedLimit = 1
	require.NoError(t, k.SetParams(ctx, params))

	keepertest.CreateTestFeed(t, k, ctx, testOwner, math.NewInt(1), 1, testOracles(1))

	msg := &types.MsgCreateFeed{
		Owner:          testOwner,
		Payment:        math.NewInt(1),
		MinSubmissions: 1,
		Oracles:        testOracles(1),
		SubmissionValueBounds: types.ValueBounds{
			Min: math.NewInt(0),
			Max: math.NewInt(100),
		},
	}
	_, err := k.CreateFeed(ctx, msg)
	require.ErrorIs(t, err, types.ErrFeedLimitReached)
}

func TestTransferOwnership(t *testing.T) {
	k, _, ctx := keepertest.FeedKeeper(t)
	feedID := keepertest.CreateTestFeed(t, k, ctx, testOwner, math.NewInt(1), 1, testOracles(1))

	// only the owner can initiate a transfer
	err := k.TransferOwnership(ctx, feedID, testStranger, testNewOwner)
	require.ErrorIs(t, err, types.ErrNotFeedOwner)

	require.NoError(t, k.TransferOwnership(ctx, feedID, testOwner, testNewOwner))
	config, _ := k.GetFeedConfig(ctx, feedID)
	require.Equal(t, testOwner, config.Owner)
	require.Equal(t, testNewOwner, config.PendingOwner)

	// only the pending owner can accept
	err = k.AcceptOwnership(ctx, feedID, testStranger)
	require.ErrorIs(t, err, types.ErrNotPendingOwner)

	require.NoError(t, k.AcceptOwnership(ctx, feedID, testNewOwner))
	config, _ = k.GetFeedConfig(ctx, feedID)
	require.Equal(t, testNewOwner, config.Owner)
	require.Empty(t, config.PendingOwner)

	// the handshake is consumed
	err = k.AcceptOwnership(ctx, feedID, testNewOwner)
	require.ErrorIs(t, err, types.ErrNotPendingOwner)
}

func TestUpdateFutureRounds(t *testing.T) {
	k, _, ctx := keepertest.FeedKeeper(t)
	feedID := keepertest.CreateTestFeed(t, k, ctx, testOwner, math.NewInt(1), 1, testOracles(3))

	msg := &types.MsgUpdateFutureRounds{
		Owner:          testOwner,
		FeedId:         feedID,
		Payment:        math.NewInt(5),
		MinSubmissions: 2,
		MaxSubmissions: 3,
		RestartDelay:   1,
		Timeout:        20,
	}
	require.NoError(t, k.UpdateFutureRounds(ctx, msg))

	config, _ := k.GetFeedConfig(ctx, feedID)
	require.True(t, config.Payment.Equal(math.NewInt(5)))
	require.Equal(t, uint32(2), config.SubmissionCountBounds.Min)
	require.Equal(t, uint32(3), config.SubmissionCountBounds.Max)
	require.Equal(t, uint64(1), config.RestartDelay)
	require.Equal(t, int64(20), config.Timeout)

	// min above max
	bad := *msg
	bad.MinSubmissions = 4
	bad.MaxSubmissions = 3
	require.ErrorIs(t, k.UpdateFutureRounds(ctx, &bad), types.ErrWrongBounds)

	// max above oracle count
	bad = *msg
	bad.MaxSubmissions = 4
	require.ErrorIs(t, k.UpdateFutureRounds(ctx, &bad), types.ErrMaxExceededTotal)

	// restart delay at oracle count
	bad = *msg
	bad.RestartDelay = 3
	require.ErrorIs(t, k.UpdateFutureRounds(ctx, &bad), types.ErrDelayNotBelowCount)

	// zero minimum while oracles are enabled
	bad = *msg
	bad.MinSubmissions = 0
	require.ErrorIs(t, k.UpdateFutureRounds(ctx, &bad), types.ErrWrongBounds)

	// owner gated
	bad = *msg
	bad.Owner = testStranger
	require.ErrorIs(t, k.UpdateFutureRounds(ctx, &bad), types.ErrNotFeedOwner)
}

func TestSetPruningWindowPrunesExcessRounds(t *testing.T) {
	k, bk, ctx := keepertest.FeedKeeper(t)
	keepertest.FundFeedPool(t, k, bk, ctx, math.NewInt(1_000_000))

	feedID := keepertest.CreateTestFeed(t, k, ctx, testOwner, math.NewInt(1), 1, testOracles(2))

	// answer five rounds, alternating oracles so the restart delay never blocks
	for round := uint64(1); round <= 5; round++ {
		oracle := oracleAddr(int(round % 2))
		keepertest.SubmitTestValue(t, k, ctx, oracle, feedID, round, math.NewInt(int64(round*100)))
	}

	require.ErrorIs(t, k.SetPruningWindow(ctx, feedID, testOwner, 0), types.ErrCannotPruneRoundZero)
	require.ErrorIs(t, k.SetPruningWindow(ctx, feedID, testStranger, 2), types.ErrNotFeedOwner)

	require.NoError(t, k.SetPruningWindow(ctx, feedID, testOwner, 2))

	config, _ := k.GetFeedConfig(ctx, feedID)
	require.Equal(t, uint64(2), config.PruningWindow)
	require.Equal(t, uint64(4), config.NextRoundToPrune)
	require.NotNil(t, config.FirstValidRound)
	require.Equal(t, uint64(4), *config.FirstValidRound)

	// rounds 1 to 3 are gone, 4 and 5 are retained
	for round := uint64(1); round <= 3; round++ {
		_, found := k.GetRound(ctx, feedID, round)
		require.False(t, found, "round %d should be pruned", round)
	}
	for round := uint64(4); round <= 5; round++ {
		_, found := k.GetRound(ctx, feedID, round)
		require.True(t, found, "round %d should be retained", round)
	}
}
