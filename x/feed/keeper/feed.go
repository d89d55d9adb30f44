package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"

	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/feed/x/feed/types"
)

// feedState is a transient handle for a loaded feed. Mutations are kept in
// memory until commit writes the config back to the store.
type feedState struct {
	k      Keeper
	ctx    sdk.Context
	id     uint64
	config types.FeedConfig
}

// loadFeed returns a handle for the feed with the given id.
func (k Keeper) loadFeed(ctx sdk.Context, feedID uint64) (*feedState, error) {
	config, found := k.GetFeedConfig(ctx, feedID)
	if !found {
		return nil, types.ErrFeedNotFound.Wrapf("feed %d", feedID)
	}
	return &feedState{k: k, ctx: ctx, id: feedID, config: config}, nil
}

// commit writes the feed config back to the store.
func (f *feedState) commit() {
	f.k.SetFeedConfig(f.ctx, f.id, f.config)
}

func (f *feedState) ensureOwner(owner string) error {
	if f.config.Owner != owner {
		return types.ErrNotFeedOwner.Wrapf("feed %d is not owned by %s", f.id, owner)
	}
	return nil
}

// GetFeedConfig retrieves the config of a feed
func (k Keeper) GetFeedConfig(ctx context.Context, feedID uint64) (types.FeedConfig, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetFeedConfigKey(feedID))
	if bz == nil {
		return types.FeedConfig{}, false
	}

	var config types.FeedConfig
	if err := json.Unmarshal(bz, &config); err != nil {
		return types.FeedConfig{}, false
	}
	return config, true
}

// SetFeedConfig stores the config of a feed
func (k Keeper) SetFeedConfig(ctx context.Context, feedID uint64, config types.FeedConfig) {
	store := k.getStore(ctx)
	bz, err := json.Marshal(&config)
	if err != nil {
		panic(fmt.Sprintf("failed to marshal feed config: %s", err))
	}
	store.Set(types.GetFeedConfigKey(feedID), bz)
}

// GetFeedCount returns the number of feeds created so far
func (k Keeper) GetFeedCount(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(types.FeedCounterKey)
	if bz == nil {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

func (k Keeper) setFeedCount(ctx context.Context, count uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, count)
	store.Set(types.FeedCounterKey, bz)
}

// IterateFeeds iterates over all feed configs in the store
func (k Keeper) IterateFeeds(ctx context.Context, cb func(feedID uint64, config types.FeedConfig) (stop bool)) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.FeedConfigKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		key := iterator.Key()
		feedID := binary.BigEndian.Uint64(key[len(types.FeedConfigKeyPrefix):])

		var config types.FeedConfig
		if err := json.Unmarshal(iterator.Value(), &config); err != nil {
			continue
		}
		if cb(feedID, config) {
			break
		}
	}
}

// CreateFeed creates a new oracle feed with the given config values and
// returns its id. Limited to feed creator accounts.
func (k Keeper) CreateFeed(ctx sdk.Context, msg *types.MsgCreateFeed) (uint64, error) {
	if !k.IsFeedCreator(ctx, msg.Owner) {
		return 0, types.ErrNotFeedCreator.Wrapf("%s cannot create feeds", msg.Owner)
	}
	return k.createFeed(ctx, msg)
}

// createFeed builds the feed without the creator check. Genesis feeds go
// through here directly.
func (k Keeper) createFeed(ctx sdk.Context, msg *types.MsgCreateFeed) (uint64, error) {
	params := k.GetParams(ctx)
	if uint32(len(msg.Description)) > params.StringLimit {
		return 0, types.ErrDescriptionTooLong.Wrapf("%d > %d", len(msg.Description), params.StringLimit)
	}

	pruningWindow := uint64(math.MaxUint64)
	if msg.PruningWindow != nil {
		pruningWindow = *msg.PruningWindow
	}
	if pruningWindow == 0 {
		return 0, types.ErrCannotPruneRoundZero
	}

	id := k.GetFeedCount(ctx)
	if id >= params.FeedLimit {
		return 0, types.ErrFeedLimitReached.Wrapf("limit of %d feeds reached", params.FeedLimit)
	}
	k.setFeedCount(ctx, id+1)

	countBounds := types.SubmissionBounds{
		Min: msg.MinSubmissions,
		Max: uint32(len(msg.Oracles)),
	}
	feed := &feedState{
		k:   k,
		ctx: ctx,
		id:  id,
		config: types.FeedConfig{
			Owner:                 msg.Owner,
			Payment:               msg.Payment,
			Timeout:               msg.Timeout,
			SubmissionValueBounds: msg.SubmissionValueBounds,
			SubmissionCountBounds: countBounds,
			Decimals:              msg.Decimals,
			Description:           msg.Description,
			RestartDelay:          msg.RestartDelay,
			PruningWindow:         pruningWindow,
			NextRoundToPrune:      1,
			Debt:                  sdkmath.ZeroInt(),
			MaxDebt:               msg.MaxDebt,
		},
	}

	// Round zero holds dummy data that future rounds can carry over when
	// they time out without an answer.
	startedAt := ctx.BlockHeight()
	zero := sdkmath.ZeroInt()
	zeroRound := uint64(0)
	k.SetRound(ctx, id, 0, types.Round{
		StartedAt:       startedAt,
		Answer:          &zero,
		UpdatedAt:       &startedAt,
		AnsweredInRound: &zeroRound,
	})

	if err := feed.addOracles(msg.Oracles); err != nil {
		return 0, err
	}
	// validate the rounds config
	if err := feed.updateFutureRounds(msg.Payment, countBounds, msg.RestartDelay, msg.Timeout); err != nil {
		return 0, err
	}
	feed.commit()

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFeedCreated,
			sdk.NewAttribute(types.AttributeKeyFeedID, fmt.Sprintf("%d", id)),
			sdk.NewAttribute(types.AttributeKeyOwner, msg.Owner),
		),
	)

	k.Logger(ctx).Info("feed created", "feed_id", id, "owner", msg.Owner, "oracles", len(msg.Oracles))
	if k.metrics != nil {
		k.metrics.FeedsCreated.Inc()
	}

	return id, nil
}

// TransferOwnership initiates the transfer of the feed to a new owner.
func (k Keeper) TransferOwnership(ctx sdk.Context, feedID uint64, owner, newOwner string) error {
	feed, err := k.loadFeed(ctx, feedID)
	if err != nil {
		return err
	}
	if err := feed.ensureOwner(owner); err != nil {
		return err
	}

	feed.config.PendingOwner = newOwner
	feed.commit()

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeOwnerUpdateRequested,
			sdk.NewAttribute(types.AttributeKeyFeedID, fmt.Sprintf("%d", feedID)),
			sdk.NewAttribute(types.AttributeKeyOwner, owner),
			sdk.NewAttribute(types.AttributeKeyPendingOwner, newOwner),
		),
	)

	return nil
}

// AcceptOwnership completes the transfer of feed ownership.
func (k Keeper) AcceptOwnership(ctx sdk.Context, feedID uint64, newOwner string) error {
	feed, err := k.loadFeed(ctx, feedID)
	if err != nil {
		return err
	}
	if feed.config.PendingOwner == "" || feed.config.PendingOwner != newOwner {
		return types.ErrNotPendingOwner.Wrapf("%s is not the pending owner of feed %d", newOwner, feedID)
	}

	feed.config.PendingOwner = ""
	feed.config.Owner = newOwner
	feed.commit()

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeOwnerUpdated,
			sdk.NewAttribute(types.AttributeKeyFeedID, fmt.Sprintf("%d", feedID)),
			sdk.NewAttribute(types.AttributeKeyOwner, newOwner),
		),
	)

	return nil
}

// SetPruningWindow updates the pruning window of an existing feed. Prunes
// all rounds outside the new window if it is smaller than the old one.
func (k Keeper) SetPruningWindow(ctx sdk.Context, feedID uint64, owner string, pruningWindow uint64) error {
	if pruningWindow == 0 {
		return types.ErrCannotPruneRoundZero
	}

	feed, err := k.loadFeed(ctx, feedID)
	if err != nil {
		return err
	}
	if err := feed.ensureOwner(owner); err != nil {
		return err
	}

	feed.config.PruningWindow = pruningWindow
	for feed.pruneOldest() {
	}
	feed.commit()

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePruningWindowUpdated,
			sdk.NewAttribute(types.AttributeKeyFeedID, fmt.Sprintf("%d", feedID)),
			sdk.NewAttribute(types.AttributeKeyWindow, fmt.Sprintf("%d", pruningWindow)),
		),
	)

	return nil
}

// UpdateFutureRounds updates the configuration applied to future oracle
// rounds. Limited to the owner of a feed.
func (k Keeper) UpdateFutureRounds(ctx sdk.Context, msg *types.MsgUpdateFutureRounds) error {
	feed, err := k.loadFeed(ctx, msg.FeedId)
	if err != nil {
		return err
	}
	if err := feed.ensureOwner(msg.Owner); err != nil {
		return err
	}

	bounds := types.SubmissionBounds{Min: msg.MinSubmissions, Max: msg.MaxSubmissions}
	if err := feed.updateFutureRounds(msg.Payment, bounds, msg.RestartDelay, msg.Timeout); err != nil {
		return err
	}
	feed.commit()

	return nil
}

// updateFutureRounds validates and applies a new round configuration. Past
// and present rounds are unaffected.
func (f *feedState) updateFutureRounds(
	payment sdkmath.Int,
	bounds types.SubmissionBounds,
	restartDelay uint64,
	timeout int64,
) error {
	if bounds.Max < bounds.Min {
		return types.ErrWrongBounds.Wrapf("min %d above max %d", bounds.Min, bounds.Max)
	}
	// Both the min and max of submissions have to be covered by the number
	// of oracles.
	if f.config.OracleCount < bounds.Max {
		return types.ErrMaxExceededTotal.Wrapf("max %d above oracle count %d", bounds.Max, f.config.OracleCount)
	}
	// At least one oracle has to be able to start a new round.
	if uint64(f.config.OracleCount) <= restartDelay {
		return types.ErrDelayNotBelowCount.Wrapf("restart delay %d not below oracle count %d", restartDelay, f.config.OracleCount)
	}
	if f.config.OracleCount > 0 && bounds.Min == 0 {
		return types.ErrWrongBounds.Wrap("minimum submissions must be positive")
	}

	f.config.Payment = payment
	f.config.SubmissionCountBounds = bounds
	f.config.RestartDelay = restartDelay
	f.config.Timeout = timeout

	f.ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRoundDetailsUpdated,
			sdk.NewAttribute(types.AttributeKeyFeedID, fmt.Sprintf("%d", f.id)),
			sdk.NewAttribute(types.AttributeKeyPayment, payment.String()),
			sdk.NewAttribute(types.AttributeKeyMinCount, fmt.Sprintf("%d", bounds.Min)),
			sdk.NewAttribute(types.AttributeKeyMaxCount, fmt.Sprintf("%d", bounds.Max)),
			sdk.NewAttribute(types.AttributeKeyRestartDelay, fmt.Sprintf("%d", restartDelay)),
			sdk.NewAttribute(types.AttributeKeyTimeout, fmt.Sprintf("%d", timeout)),
		),
	)

	return nil
}

// pruneOldest removes the oldest round if it falls outside the pruning
// window. Returns true if a round was pruned.
func (f *feedState) pruneOldest() bool {
	pruneNext := f.config.NextRoundToPrune
	if f.config.LatestRound < pruneNext || f.config.LatestRound-pruneNext < f.config.PruningWindow {
		return false
	}

	f.k.deleteRound(f.ctx, f.id, pruneNext)
	f.k.deleteRoundDetails(f.ctx, f.id, pruneNext)
	f.config.NextRoundToPrune++
	next := f.config.NextRoundToPrune
	f.config.FirstValidRound = &next

	if f.k.metrics != nil {
		f.k.metrics.RoundsPruned.Inc()
	}
	return true
}
