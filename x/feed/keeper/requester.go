package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/feed/x/feed/types"
)

// GetRequester retrieves the round-request permissions of an account on a
// feed
func (k Keeper) GetRequester(ctx context.Context, feedID uint64, requester string) (types.Requester, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetRequesterKey(feedID, requester))
	if bz == nil {
		return types.Requester{}, false
	}

	var meta types.Requester
	if err := json.Unmarshal(bz, &meta); err != nil {
		return types.Requester{}, false
	}
	return meta, true
}

// SetRequesterMeta stores the round-request permissions of an account on a
// feed
func (k Keeper) SetRequesterMeta(ctx context.Context, feedID uint64, requester string, meta types.Requester) {
	store := k.getStore(ctx)
	bz, err := json.Marshal(&meta)
	if err != nil {
		panic(fmt.Sprintf("failed to marshal requester: %s", err))
	}
	store.Set(types.GetRequesterKey(feedID, requester), bz)
}

func (k Keeper) deleteRequester(ctx context.Context, feedID uint64, requester string) {
	store := k.getStore(ctx)
	store.Delete(types.GetRequesterKey(feedID, requester))
}

// SetRequester grants round-request permissions to an account. Keeps the
// last started round if the requester already existed. Limited to the feed
// owner.
func (k Keeper) SetRequester(ctx sdk.Context, feedID uint64, owner, requester string, delay uint64) error {
	feed, err := k.loadFeed(ctx, feedID)
	if err != nil {
		return err
	}
	if err := feed.ensureOwner(owner); err != nil {
		return err
	}

	meta, _ := k.GetRequester(ctx, feedID, requester)
	meta.Delay = delay
	k.SetRequesterMeta(ctx, feedID, requester, meta)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRequesterPermissionsSet,
			sdk.NewAttribute(types.AttributeKeyFeedID, fmt.Sprintf("%d", feedID)),
			sdk.NewAttribute(types.AttributeKeyRequester, requester),
			sdk.NewAttribute(types.AttributeKeyAuthorized, "true"),
			sdk.NewAttribute(types.AttributeKeyDelay, fmt.Sprintf("%d", delay)),
		),
	)

	return nil
}

// RemoveRequester revokes round-request permissions of an account. Limited
// to the feed owner.
func (k Keeper) RemoveRequester(ctx sdk.Context, feedID uint64, owner, requester string) error {
	feed, err := k.loadFeed(ctx, feedID)
	if err != nil {
		return err
	}
	if err := feed.ensureOwner(owner); err != nil {
		return err
	}

	meta, found := k.GetRequester(ctx, feedID, requester)
	if !found {
		return types.ErrRequesterNotFound.Wrapf("%s on feed %d", requester, feedID)
	}
	k.deleteRequester(ctx, feedID, requester)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRequesterPermissionsSet,
			sdk.NewAttribute(types.AttributeKeyFeedID, fmt.Sprintf("%d", feedID)),
			sdk.NewAttribute(types.AttributeKeyRequester, requester),
			sdk.NewAttribute(types.AttributeKeyAuthorized, "false"),
			sdk.NewAttribute(types.AttributeKeyDelay, fmt.Sprintf("%d", meta.Delay)),
		),
	)

	return nil
}

// RequestNewRound requests the start of a new oracle round. The requester
// has to wait for its configured delay between requests. Limited to accounts
// with requester permissions. Returns the id of the started round.
func (k Keeper) RequestNewRound(ctx sdk.Context, feedID uint64, sender string) (uint64, error) {
	meta, found := k.GetRequester(ctx, feedID, sender)
	if !found {
		return 0, types.ErrNotAuthorizedRequester.Wrapf("%s on feed %d", sender, feedID)
	}

	feed, err := k.loadFeed(ctx, feedID)
	if err != nil {
		return 0, err
	}

	newRound := feed.config.ReportingRound + 1
	if newRound == 0 {
		return 0, types.ErrOverflow
	}
	var lastStarted uint64
	if meta.LastStartedRound != nil {
		lastStarted = *meta.LastStartedRound
	}
	nextAllowedRound := lastStarted + meta.Delay
	if nextAllowedRound < lastStarted {
		return 0, types.ErrOverflow
	}
	if meta.LastStartedRound != nil && newRound <= nextAllowedRound {
		return 0, types.ErrCannotRequestRoundYet.Wrapf("next allowed round is %d", nextAllowedRound+1)
	}

	meta.LastStartedRound = &newRound
	k.SetRequesterMeta(ctx, feedID, sender, meta)

	roundID, err := feed.requestNewRound(sender)
	if err != nil {
		return 0, err
	}
	feed.commit()

	return roundID, nil
}
