package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/feed/x/feed/types"
)

// GetModuleAdmin returns the account controlling the pooled funds, empty if
// none was set.
func (k Keeper) GetModuleAdmin(ctx context.Context) string {
	store := k.getStore(ctx)
	return string(store.Get(types.ModuleAdminKey))
}

// SetModuleAdmin stores the account controlling the pooled funds.
func (k Keeper) SetModuleAdmin(ctx context.Context, admin string) {
	store := k.getStore(ctx)
	store.Set(types.ModuleAdminKey, []byte(admin))
}

// GetPendingModuleAdmin returns the account a module admin transfer has been
// offered to, empty if no transfer is in flight.
func (k Keeper) GetPendingModuleAdmin(ctx context.Context) string {
	store := k.getStore(ctx)
	return string(store.Get(types.PendingModuleAdminKey))
}

func (k Keeper) setPendingModuleAdmin(ctx context.Context, admin string) {
	store := k.getStore(ctx)
	if admin == "" {
		store.Delete(types.PendingModuleAdminKey)
		return
	}
	store.Set(types.PendingModuleAdminKey, []byte(admin))
}

func (k Keeper) ensureModuleAdmin(ctx context.Context, account string) error {
	if k.GetModuleAdmin(ctx) != account {
		return types.ErrNotModuleAdmin.Wrapf("%s is not the module admin", account)
	}
	return nil
}

// TransferModuleAdmin initiates a module admin transfer. Limited to the
// module admin account.
func (k Keeper) TransferModuleAdmin(ctx sdk.Context, oldAdmin, newAdmin string) error {
	if err := k.ensureModuleAdmin(ctx, oldAdmin); err != nil {
		return err
	}

	k.setPendingModuleAdmin(ctx, newAdmin)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeModuleAdminUpdateRequested,
			sdk.NewAttribute(types.AttributeKeyAdmin, oldAdmin),
			sdk.NewAttribute(types.AttributeKeyPendingAdmin, newAdmin),
		),
	)

	return nil
}

// AcceptModuleAdmin completes a module admin transfer. Limited to the
// pending module admin account.
func (k Keeper) AcceptModuleAdmin(ctx sdk.Context, newAdmin string) error {
	pending := k.GetPendingModuleAdmin(ctx)
	if pending == "" || pending != newAdmin {
		return types.ErrNotPendingModuleAdmin.Wrapf("%s is not the pending module admin", newAdmin)
	}

	k.setPendingModuleAdmin(ctx, "")
	k.SetModuleAdmin(ctx, newAdmin)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeModuleAdminUpdated,
			sdk.NewAttribute(types.AttributeKeyAdmin, newAdmin),
		),
	)

	return nil
}

// IsFeedCreator reports whether the account is allowed to create feeds.
func (k Keeper) IsFeedCreator(ctx context.Context, account string) bool {
	store := k.getStore(ctx)
	return store.Has(types.GetFeedCreatorKey(account))
}

// SetFeedCreator allows the given account to create feeds. Limited to the
// module admin.
func (k Keeper) SetFeedCreator(ctx sdk.Context, admin, newCreator string) error {
	if err := k.ensureModuleAdmin(ctx, admin); err != nil {
		return err
	}

	store := k.getStore(ctx)
	store.Set(types.GetFeedCreatorKey(newCreator), []byte{1})

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFeedCreatorSet,
			sdk.NewAttribute(types.AttributeKeyCreator, newCreator),
		),
	)

	return nil
}

// RemoveFeedCreator disallows the given account from creating feeds. Limited
// to the module admin.
func (k Keeper) RemoveFeedCreator(ctx sdk.Context, admin, creator string) error {
	if err := k.ensureModuleAdmin(ctx, admin); err != nil {
		return err
	}

	store := k.getStore(ctx)
	store.Delete(types.GetFeedCreatorKey(creator))

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFeedCreatorRemoved,
			sdk.NewAttribute(types.AttributeKeyCreator, creator),
		),
	)

	return nil
}

// GetFeedCreators returns all accounts allowed to create feeds.
func (k Keeper) GetFeedCreators(ctx context.Context) []string {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.FeedCreatorKeyPrefix)
	defer iterator.Close()

	creators := make([]string, 0, 8)
	for ; iterator.Valid(); iterator.Next() {
		creators = append(creators, string(iterator.Key()[len(types.FeedCreatorKeyPrefix):]))
	}
	return creators
}
