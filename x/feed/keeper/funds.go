package keeper

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/feed/x/feed/types"
)

// rewardOracle credits the round payment to the oracle. The payment is moved
// from the free pool into the reserve; if the pool cannot cover it the
// amount is tracked as feed debt instead, subject to the feed's debt limit.
// The oracle's withdrawable balance grows either way.
func (k Keeper) rewardOracle(ctx sdk.Context, feed *feedState, oracle string, payment sdkmath.Int) error {
	if err := k.reserve(ctx, payment); err != nil {
		newDebt := feed.config.Debt.Add(payment)
		if feed.config.MaxDebt != nil && newDebt.GTE(*feed.config.MaxDebt) {
			return types.ErrMaxDebtReached.Wrapf("debt %s, limit %s", newDebt, feed.config.MaxDebt)
		}
		feed.config.Debt = newDebt
		k.Logger(ctx).Info("reward pool could not cover oracle payment, tracking debt",
			"feed_id", feed.id, "payment", payment.String(), "debt", newDebt.String())
	}

	meta, found := k.GetOracleMeta(ctx, oracle)
	if !found {
		return types.ErrOracleNotFound.Wrapf("oracle %s", oracle)
	}
	meta.Withdrawable = meta.Withdrawable.Add(payment)
	k.SetOracleMeta(ctx, oracle, meta)

	return nil
}

// reserve moves the given amount from the free pool to the reserve pool.
func (k Keeper) reserve(ctx sdk.Context, amount sdkmath.Int) error {
	if !amount.IsPositive() {
		return nil
	}
	denom := k.GetParams(ctx).RewardDenom
	coins := sdk.NewCoins(sdk.NewCoin(denom, amount))
	return k.bankKeeper.SendCoinsFromModuleToModule(ctx, types.ModuleName, types.ReservePoolName, coins)
}

// WithdrawFunds withdraws the given amount from the free pool to a
// recipient. The pool balance may not drop below the configured minimum
// reserve. Limited to the module admin.
func (k Keeper) WithdrawFunds(ctx sdk.Context, admin, recipient string, amount sdkmath.Int) error {
	if err := k.ensureModuleAdmin(ctx, admin); err != nil {
		return err
	}

	available := k.AvailableFunds(ctx)
	if available.LT(amount) {
		return types.ErrInsufficientFunds.Wrapf("available %s, requested %s", available, amount)
	}
	params := k.GetParams(ctx)
	if available.Sub(amount).LT(params.MinimumReserve) {
		return types.ErrInsufficientReserve.Wrapf("withdrawal would leave %s, minimum is %s", available.Sub(amount), params.MinimumReserve)
	}

	recipientAddr, err := sdk.AccAddressFromBech32(recipient)
	if err != nil {
		return err
	}
	coins := sdk.NewCoins(sdk.NewCoin(params.RewardDenom, amount))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipientAddr, coins); err != nil {
		return types.ErrInsufficientFunds.Wrap(err.Error())
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFundsWithdrawn,
			sdk.NewAttribute(types.AttributeKeyAdmin, admin),
			sdk.NewAttribute(types.AttributeKeyRecipient, recipient),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)

	return nil
}

// ReduceDebt pays down a feed's accumulated debt by moving funds from the
// free pool into the reserve. Open to any account since reducing debt
// benefits the system.
func (k Keeper) ReduceDebt(ctx sdk.Context, feedID uint64, amount sdkmath.Int) error {
	feed, err := k.loadFeed(ctx, feedID)
	if err != nil {
		return err
	}

	toReserve := sdkmath.MinInt(amount, feed.config.Debt)
	if err := k.reserve(ctx, toReserve); err != nil {
		return types.ErrInsufficientFunds.Wrap(err.Error())
	}
	feed.config.Debt = feed.config.Debt.Sub(toReserve)
	feed.commit()

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDebtReduced,
			sdk.NewAttribute(types.AttributeKeyFeedID, fmt.Sprintf("%d", feedID)),
			sdk.NewAttribute(types.AttributeKeyAmount, toReserve.String()),
			sdk.NewAttribute(types.AttributeKeyDebt, feed.config.Debt.String()),
		),
	)

	return nil
}
