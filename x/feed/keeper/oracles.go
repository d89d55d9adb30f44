package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/feed/x/feed/types"
)

// GetOracleMeta retrieves the global metadata of an oracle
func (k Keeper) GetOracleMeta(ctx context.Context, oracle string) (types.OracleMeta, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetOracleMetaKey(oracle))
	if bz == nil {
		return types.OracleMeta{}, false
	}

	var meta types.OracleMeta
	if err := json.Unmarshal(bz, &meta); err != nil {
		return types.OracleMeta{}, false
	}
	return meta, true
}

// SetOracleMeta stores the global metadata of an oracle
func (k Keeper) SetOracleMeta(ctx context.Context, oracle string, meta types.OracleMeta) {
	store := k.getStore(ctx)
	bz, err := json.Marshal(&meta)
	if err != nil {
		panic(fmt.Sprintf("failed to marshal oracle meta: %s", err))
	}
	store.Set(types.GetOracleMetaKey(oracle), bz)
}

// GetOracleStatus retrieves the status of an oracle on a feed
func (k Keeper) GetOracleStatus(ctx context.Context, feedID uint64, oracle string) (types.OracleStatus, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetOracleStatusKey(feedID, oracle))
	if bz == nil {
		return types.OracleStatus{}, false
	}

	var status types.OracleStatus
	if err := json.Unmarshal(bz, &status); err != nil {
		return types.OracleStatus{}, false
	}
	return status, true
}

// SetOracleStatus stores the status of an oracle on a feed
func (k Keeper) SetOracleStatus(ctx context.Context, feedID uint64, oracle string, status types.OracleStatus) {
	store := k.getStore(ctx)
	bz, err := json.Marshal(&status)
	if err != nil {
		panic(fmt.Sprintf("failed to marshal oracle status: %s", err))
	}
	store.Set(types.GetOracleStatusKey(feedID, oracle), bz)
}

// ChangeOracles disables and adds oracles for the given feed. Limited to the
// owner of a feed.
func (k Keeper) ChangeOracles(ctx sdk.Context, feedID uint64, owner string, toDisable []string, toAdd []types.OraclePair) error {
	feed, err := k.loadFeed(ctx, feedID)
	if err != nil {
		return err
	}
	if err := feed.ensureOwner(owner); err != nil {
		return err
	}
	if err := feed.disableOracles(toDisable); err != nil {
		return err
	}
	if err := feed.addOracles(toAdd); err != nil {
		return err
	}
	feed.commit()

	return nil
}

// addOracles enables the given oracles on the feed, initializing their
// global metadata if they are not tracked yet.
func (f *feedState) addOracles(toAdd []types.OraclePair) error {
	newCount := f.config.OracleCount + uint32(len(toAdd))
	limit := f.k.GetParams(f.ctx).OracleCountLimit
	if newCount > limit {
		return types.ErrOraclesLimitExceeded.Wrapf("%d oracles, limit is %d", newCount, limit)
	}
	f.config.OracleCount = newCount

	for _, pair := range toAdd {
		if meta, found := f.k.GetOracleMeta(f.ctx, pair.Oracle); found {
			// The owner cannot change the admin of an already tracked oracle.
			if meta.Admin != pair.Admin {
				return types.ErrOracleAdminMismatch.Wrapf("oracle %s has admin %s", pair.Oracle, meta.Admin)
			}
		} else {
			f.k.SetOracleMeta(f.ctx, pair.Oracle, types.OracleMeta{
				Withdrawable: sdkmath.ZeroInt(),
				Admin:        pair.Admin,
			})
		}

		// Only enabling non-existent or disabled oracles keeps the oracle
		// count accurate.
		status, found := f.k.GetOracleStatus(f.ctx, f.id, pair.Oracle)
		if found {
			if status.EndingRound == nil {
				return types.ErrAlreadyEnabled.Wrapf("oracle %s on feed %d", pair.Oracle, f.id)
			}
			status.StartingRound = f.config.ReportingRound
			status.EndingRound = nil
		} else {
			status = types.NewOracleStatus(f.config.ReportingRound)
		}
		f.k.SetOracleStatus(f.ctx, f.id, pair.Oracle, status)

		f.ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeOraclePermissionsUpdated,
				sdk.NewAttribute(types.AttributeKeyFeedID, fmt.Sprintf("%d", f.id)),
				sdk.NewAttribute(types.AttributeKeyOracle, pair.Oracle),
				sdk.NewAttribute(types.AttributeKeyEnabled, "true"),
			),
		)
	}

	return nil
}

// disableOracles disables the given oracles at the current reporting round.
func (f *feedState) disableOracles(toDisable []string) error {
	disabledCount := uint32(len(toDisable))
	if f.config.OracleCount < disabledCount {
		return types.ErrNotEnoughOracles.Wrapf("cannot disable %d of %d oracles", disabledCount, f.config.OracleCount)
	}
	f.config.OracleCount -= disabledCount

	for _, oracle := range toDisable {
		status, found := f.k.GetOracleStatus(f.ctx, f.id, oracle)
		if !found {
			return types.ErrOracleNotFound.Wrapf("oracle %s on feed %d", oracle, f.id)
		}
		if status.EndingRound != nil {
			return types.ErrOracleDisabled.Wrapf("oracle %s on feed %d", oracle, f.id)
		}
		ending := f.config.ReportingRound
		status.EndingRound = &ending
		f.k.SetOracleStatus(f.ctx, f.id, oracle, status)

		f.ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeOraclePermissionsUpdated,
				sdk.NewAttribute(types.AttributeKeyFeedID, fmt.Sprintf("%d", f.id)),
				sdk.NewAttribute(types.AttributeKeyOracle, oracle),
				sdk.NewAttribute(types.AttributeKeyEnabled, "false"),
			),
		)
	}

	return nil
}

// WithdrawPayment withdraws accumulated rewards of an oracle to a recipient.
// Limited to the oracle admin.
func (k Keeper) WithdrawPayment(ctx sdk.Context, admin, oracle, recipient string, amount sdkmath.Int) error {
	meta, found := k.GetOracleMeta(ctx, oracle)
	if !found {
		return types.ErrOracleNotFound.Wrapf("oracle %s", oracle)
	}
	if meta.Admin != admin {
		return types.ErrNotAdmin.Wrapf("%s is not the admin of oracle %s", admin, oracle)
	}

	if meta.Withdrawable.LT(amount) {
		return types.ErrInsufficientFunds.Wrapf("withdrawable %s, requested %s", meta.Withdrawable, amount)
	}
	meta.Withdrawable = meta.Withdrawable.Sub(amount)

	recipientAddr, err := sdk.AccAddressFromBech32(recipient)
	if err != nil {
		return err
	}
	denom := k.GetParams(ctx).RewardDenom
	coins := sdk.NewCoins(sdk.NewCoin(denom, amount))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ReservePoolName, recipientAddr, coins); err != nil {
		return types.ErrInsufficientFunds.Wrap(err.Error())
	}
	k.SetOracleMeta(ctx, oracle, meta)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePaymentWithdrawn,
			sdk.NewAttribute(types.AttributeKeyOracle, oracle),
			sdk.NewAttribute(types.AttributeKeyRecipient, recipient),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)

	return nil
}

// TransferAdmin initiates an admin transfer for the given oracle. Limited to
// the oracle admin account.
func (k Keeper) TransferAdmin(ctx sdk.Context, oracle, oldAdmin, newAdmin string) error {
	meta, found := k.GetOracleMeta(ctx, oracle)
	if !found {
		return types.ErrOracleNotFound.Wrapf("oracle %s", oracle)
	}
	if meta.Admin != oldAdmin {
		return types.ErrNotAdmin.Wrapf("%s is not the admin of oracle %s", oldAdmin, oracle)
	}

	meta.PendingAdmin = newAdmin
	k.SetOracleMeta(ctx, oracle, meta)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeOracleAdminUpdateRequested,
			sdk.NewAttribute(types.AttributeKeyOracle, oracle),
			sdk.NewAttribute(types.AttributeKeyAdmin, oldAdmin),
			sdk.NewAttribute(types.AttributeKeyPendingAdmin, newAdmin),
		),
	)

	return nil
}

// AcceptAdmin completes an admin transfer for the given oracle. Limited to
// the pending oracle admin account.
func (k Keeper) AcceptAdmin(ctx sdk.Context, oracle, newAdmin string) error {
	meta, found := k.GetOracleMeta(ctx, oracle)
	if !found {
		return types.ErrOracleNotFound.Wrapf("oracle %s", oracle)
	}
	if meta.PendingAdmin == "" || meta.PendingAdmin != newAdmin {
		return types.ErrNotPendingAdmin.Wrapf("%s is not the pending admin of oracle %s", newAdmin, oracle)
	}

	meta.PendingAdmin = ""
	meta.Admin = newAdmin
	k.SetOracleMeta(ctx, oracle, meta)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeOracleAdminUpdated,
			sdk.NewAttribute(types.AttributeKeyOracle, oracle),
			sdk.NewAttribute(types.AttributeKeyAdmin, newAdmin),
		),
	)

	return nil
}
