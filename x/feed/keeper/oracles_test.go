package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/feed/testutil/keeper"
	"github.com/paw-chain/feed/x/feed/types"
)

func TestChangeOraclesAdds(t *testing.T) {
	k, _, ctx := keepertest.FeedKeeper(t)
	feedID := keepertest.CreateTestFeed(t, k, ctx, testOwner, math.NewInt(1), 1, testOracles(2))

	err := k.ChangeOracles(ctx, feedID, testOwner, nil, []types.OraclePair{
		{Oracle: oracleAddr(2), Admin: oracleAdminAddr(2)},
	})
	require.NoError(t, err)

	config, _ := k.GetFeedConfig(ctx, feedID)
	require.Equal(t, uint32(3), config.OracleCount)

	status, found := k.GetOracleStatus(ctx, feedID, oracleAddr(2))
	require.True(t, found)
	require.Equal(t, config.ReportingRound, status.StartingRound)
	require.Nil(t, status.EndingRound)

	// adding an enabled oracle again fails
	err = k.ChangeOracles(ctx, feedID, testOwner, nil, []types.OraclePair{
		{Oracle: oracleAddr(2), Admin: oracleAdminAddr(2)},
	})
	require.ErrorIs(t, err, types.ErrAlreadyEnabled)

	// the admin of a tracked oracle cannot be changed through add
	err = k.ChangeOracles(ctx, feedID, testOwner, []string{oracleAddr(2)}, []types.OraclePair{
		{Oracle: oracleAddr(2), Admin: testStranger},
	})
	require.ErrorIs(t, err, types.ErrOracleAdminMismatch)
}

func TestChangeOraclesDisablesAndReenables(t *testing.T) {
	k, bk, ctx := keepertest.FeedKeeper(t)
	keepertest.FundFeedPool(t, k, bk, ctx, math.NewInt(1_000))
	feedID := keepertest.CreateTestFeed(t, k, ctx, testOwner, math.NewInt(1), 1, testOracles(2))

	keepertest.SubmitTestValue(t, k, ctx, oracleAddr(0), feedID, 1, math.NewInt(100))

	require.NoError(t, k.ChangeOracles(ctx, feedID, testOwner, []string{oracleAddr(1)}, nil))

	config, _ := k.GetFeedConfig(ctx, feedID)
	require.Equal(t, uint32(1), config.OracleCount)

	status, _ := k.GetOracleStatus(ctx, feedID, oracleAddr(1))
	require.NotNil(t, status.EndingRound)
	require.Equal(t, uint64(1), *status.EndingRound)

	// a disabled oracle cannot submit to later rounds
	submit := types.NewMsgSubmit(oracleAddr(1), feedID, 2, math.NewInt(100))
	require.ErrorIs(t, k.Submit(ctx, submit), types.ErrOracleDisabled)

	// disabling twice fails
	err := k.ChangeOracles(ctx, feedID, testOwner, []string{oracleAddr(1)}, nil)
	require.ErrorIs(t, err, types.ErrOracleDisabled)

	// re-enabling resets the status
	require.NoError(t, k.ChangeOracles(ctx, feedID, testOwner, nil, []types.OraclePair{
		{Oracle: oracleAddr(1), Admin: oracleAdminAddr(1)},
	}))
	status, _ = k.GetOracleStatus(ctx, feedID, oracleAddr(1))
	require.Nil(t, status.EndingRound)
	require.Equal(t, uint64(1), status.StartingRound)
}

func TestChangeOraclesValidation(t *testing.T) {
	k, _, ctx := keepertest.FeedKeeper(t)
	feedID := keepertest.CreateTestFeed(t, k, ctx, testOwner, math.NewInt(1), 1, testOracles(1))

	// owner gated
	err := k.ChangeOracles(ctx, feedID, testStranger, nil, testOracles(2))
	require.ErrorIs(t, err, types.ErrNotFeedOwner)

	// unknown oracles cannot be disabled
	err = k.ChangeOracles(ctx, feedID, testOwner, []string{testStranger}, testOracles(2))
	require.ErrorIs(t, err, types.ErrOracleNotFound)

	// cannot disable more oracles than the feed has
	err = k.ChangeOracles(ctx, feedID, testOwner, []string{oracleAddr(0), testStranger}, nil)
	require.ErrorIs(t, err, types.ErrNotEnoughOracles)

	// the per-feed oracle limit applies
	params := types.DefaultParams()
	params.OracleCountLimit = 2
	require.NoError(t, k.SetParams(ctx, params))

	err = k.ChangeOracles(ctx, feedID, testOwner, nil, []types.OraclePair{
		{Oracle: oracleAddr(1), Admin: oracleAdminAddr(1)},
		{Oracle: oracleAddr(2), Admin: oracleAdminAddr(2)},
	})
	require.ErrorIs(t, err, types.ErrOraclesLimitExceeded)
}

func TestOracleAdminHandshake(t *testing.T) {
	k, _, ctx := keepertest.FeedKeeper(t)
	keepertest.CreateTestFeed(t, k, ctx, testOwner, math.NewInt(1), 1, testOracles(1))

	oracle := oracleAddr(0)
	oldAdmin := oracleAdminAddr(0)
	newAdmin := oracleAdminAddr(1)

	// only the current admin can initiate
	err := k.TransferAdmin(ctx, oracle, testStranger, newAdmin)
	require.ErrorIs(t, err, types.ErrNotAdmin)

	require.NoError(t, k.TransferAdmin(ctx, oracle, oldAdmin, newAdmin))

	meta, _ := k.GetOracleMeta(ctx, oracle)
	require.Equal(t, oldAdmin, meta.Admin)
	require.Equal(t, newAdmin, meta.PendingAdmin)

	// only the pending admin can accept
	err = k.AcceptAdmin(ctx, oracle, testStranger)
	require.ErrorIs(t, err, types.ErrNotPendingAdmin)

	require.NoError(t, k.AcceptAdmin(ctx, oracle, newAdmin))
	meta, _ = k.GetOracleMeta(ctx, oracle)
	require.Equal(t, newAdmin, meta.Admin)
	require.Empty(t, meta.PendingAdmin)

	// the handshake is consumed
	err = k.AcceptAdmin(ctx, oracle, newAdmin)
	require.ErrorIs(t, err, types.ErrNotPendingAdmin)
}
