package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/feed/testutil/keeper"
	"github.com/paw-chain/feed/x/feed/types"
)

func TestSubmitReservesPayment(t *testing.T) {
	k, bk, ctx := keepertest.FeedKeeper(t)
	keepertest.FundFeedPool(t, k, bk, ctx, math.NewInt(100))
	feedID := keepertest.CreateTestFeed(t, k, ctx, testOwner, math.NewInt(10), 1, testOracles(1))

	keepertest.SubmitTestValue(t, k, ctx, oracleAddr(0), feedID, 1, math.NewInt(42))

	require.True(t, k.AvailableFunds(ctx).Equal(math.NewInt(90)))
	require.True(t, k.ReservedFunds(ctx).Equal(math.NewInt(10)))

	meta, _ := k.GetOracleMeta(ctx, oracleAddr(0))
	require.True(t, meta.Withdrawable.Equal(math.NewInt(10)))

	config, _ := k.GetFeedConfig(ctx, feedID)
	require.True(t, config.Debt.IsZero())
}

func TestSubmitTracksDebtWhenPoolEmpty(t *testing.T) {
	k, _, ctx := keepertest.FeedKeeper(t)
	feedID := keepertest.CreateTestFeed(t, k, ctx, testOwner, math.NewInt(10), 1, testOracles(1))

	keepertest.SubmitTestValue(t, k, ctx, oracleAddr(0), feedID, 1, math.NewInt(42))

	config, _ := k.GetFeedConfig(ctx, feedID)
	require.True(t, config.Debt.Equal(math.NewInt(10)))

	// the reward is still owed to the oracle
	meta, _ := k.GetOracleMeta(ctx, oracleAddr(0))
	require.True(t, meta.Withdrawable.Equal(math.NewInt(10)))
	require.True(t, k.ReservedFunds(ctx).IsZero())
}

func TestSubmitFailsAtMaxDebt(t *testing.T) {
	k, _, ctx := keepertest.FeedKeeper(t)
	k.SetModuleAdmin(ctx, testOwner)
	require.NoError(t, k.SetFeedCreator(ctx, testOwner, testOwner))

	maxDebt := math.NewInt(10)
	msg := &types.MsgCreateFeed{
		Owner:          testOwner,
		Payment:        math.NewInt(10),
		Timeout:        10,
		MinSubmissions: 1,
		Oracles:        testOracles(1),
		SubmissionValueBounds: types.ValueBounds{
			Min: math.NewInt(0),
			Max: math.NewInt(1_000),
		},
		MaxDebt: &maxDebt,
	}
	feedID, err := k.CreateFeed(ctx, msg)
	require.NoError(t, err)

	// the pool is empty and the first payment would already reach the cap
	submit := types.NewMsgSubmit(oracleAddr(0), feedID, 1, math.NewInt(42))
	require.ErrorIs(t, k.Submit(ctx, submit), types.ErrMaxDebtReached)
}

func TestReduceDebt(t *testing.T) {
	k, bk, ctx := keepertest.FeedKeeper(t)
	feedID := keepertest.CreateTestFeed(t, k, ctx, testOwner, math.NewInt(10), 1, testOracles(1))

	// run up a debt of 10
	keepertest.SubmitTestValue(t, k, ctx, oracleAddr(0), feedID, 1, math.NewInt(42))

	// paying down debt needs funds in the pool
	require.Error(t, k.ReduceDebt(ctx, feedID, math.NewInt(10)))

	keepertest.FundFeedPool(t, k, bk, ctx, math.NewInt(100))

	// partial payment
	require.NoError(t, k.ReduceDebt(ctx, feedID, math.NewInt(4)))
	config, _ := k.GetFeedConfig(ctx, feedID)
	require.True(t, config.Debt.Equal(math.NewInt(6)))
	require.True(t, k.ReservedFunds(ctx).Equal(math.NewInt(4)))

	// overpayment is capped at the outstanding debt
	require.NoError(t, k.ReduceDebt(ctx, feedID, math.NewInt(100)))
	config, _ = k.GetFeedConfig(ctx, feedID)
	require.True(t, config.Debt.IsZero())
	require.True(t, k.ReservedFunds(ctx).Equal(math.NewInt(10)))

	// the oracle can withdraw now that the reserve is funded
	require.NoError(t, k.WithdrawPayment(ctx, oracleAdminAddr(0), oracleAddr(0), testRecipient, math.NewInt(10)))
}

func TestWithdrawPayment(t *testing.T) {
	k, bk, ctx := keepertest.FeedKeeper(t)
	keepertest.FundFeedPool(t, k, bk, ctx, math.NewInt(100))
	feedID := keepertest.CreateTestFeed(t, k, ctx, testOwner, math.NewInt(10), 1, testOracles(1))

	keepertest.SubmitTestValue(t, k, ctx, oracleAddr(0), feedID, 1, math.NewInt(42))

	// only the oracle admin may withdraw
	err := k.WithdrawPayment(ctx, testStranger, oracleAddr(0), testRecipient, math.NewInt(10))
	require.ErrorIs(t, err, types.ErrNotAdmin)

	// withdrawing more than earned fails
	err = k.WithdrawPayment(ctx, oracleAdminAddr(0), oracleAddr(0), testRecipient, math.NewInt(11))
	require.ErrorIs(t, err, types.ErrInsufficientFunds)

	require.NoError(t, k.WithdrawPayment(ctx, oracleAdminAddr(0), oracleAddr(0), testRecipient, math.NewInt(7)))

	meta, _ := k.GetOracleMeta(ctx, oracleAddr(0))
	require.True(t, meta.Withdrawable.Equal(math.NewInt(3)))
	require.True(t, k.ReservedFunds(ctx).Equal(math.NewInt(3)))

	recipientAddr, err := sdk.AccAddressFromBech32(testRecipient)
	require.NoError(t, err)
	denom := k.GetParams(ctx).RewardDenom
	require.True(t, bk.GetBalance(ctx, recipientAddr, denom).Amount.Equal(math.NewInt(7)))

	// unknown oracles are rejected
	err = k.WithdrawPayment(ctx, testStranger, testStranger, testRecipient, math.NewInt(1))
	require.ErrorIs(t, err, types.ErrOracleNotFound)
}

func TestWithdrawFunds(t *testing.T) {
	k, bk, ctx := keepertest.FeedKeeper(t)
	k.SetModuleAdmin(ctx, testOwner)
	keepertest.FundFeedPool(t, k, bk, ctx, math.NewInt(1_000))

	// module admin gated
	err := k.WithdrawFunds(ctx, testStranger, testRecipient, math.NewInt(100))
	require.ErrorIs(t, err, types.ErrNotModuleAdmin)

	// more than the pool holds
	err = k.WithdrawFunds(ctx, testOwner, testRecipient, math.NewInt(2_000))
	require.ErrorIs(t, err, types.ErrInsufficientFunds)

	// the minimum reserve of 100 has to remain
	err = k.WithdrawFunds(ctx, testOwner, testRecipient, math.NewInt(950))
	require.ErrorIs(t, err, types.ErrInsufficientReserve)

	require.NoError(t, k.WithdrawFunds(ctx, testOwner, testRecipient, math.NewInt(900)))
	require.True(t, k.AvailableFunds(ctx).Equal(math.NewInt(100)))

	recipientAddr, err := sdk.AccAddressFromBech32(testRecipient)
	require.NoError(t, err)
	denom := k.GetParams(ctx).RewardDenom
	require.True(t, bk.GetBalance(ctx, recipientAddr, denom).Amount.Equal(math.NewInt(900)))
}
