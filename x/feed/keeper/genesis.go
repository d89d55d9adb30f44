package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/feed/x/feed/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
// Genesis feeds are built through the same code path as MsgCreateFeed minus
// the creator check; a feed that cannot be created panics.
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(fmt.Sprintf("failed to set params: %s", err))
	}

	if genState.ModuleAdmin != "" {
		k.SetModuleAdmin(ctx, genState.ModuleAdmin)
	}
	store := k.getStore(ctx)
	for _, creator := range genState.FeedCreators {
		store.Set(types.GetFeedCreatorKey(creator), []byte{1})
	}

	for _, feed := range genState.Feeds {
		window := feed.PruningWindow
		msg := &types.MsgCreateFeed{
			Owner:                 feed.Owner,
			Payment:               feed.Payment,
			Timeout:               feed.Timeout,
			SubmissionValueBounds: feed.SubmissionValueBounds,
			MinSubmissions:        feed.MinSubmissions,
			Decimals:              feed.Decimals,
			Description:           feed.Description,
			RestartDelay:          feed.RestartDelay,
			Oracles:               feed.Oracles,
			PruningWindow:         &window,
		}
		// genesis feeds skip the creator check; a feed that cannot be
		// created aborts the chain start
		if _, err := k.createFeed(ctx, msg); err != nil {
			panic(fmt.Sprintf("failed to create genesis feed for %s: %s", feed.Owner, err))
		}
	}

	k.Logger(ctx).Info("feed module genesis initialized",
		"feeds", len(genState.Feeds), "creators", len(genState.FeedCreators))
}

// ExportGenesis returns the module's exported genesis state.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	genState := &types.GenesisState{
		Params:       k.GetParams(ctx),
		ModuleAdmin:  k.GetModuleAdmin(ctx),
		FeedCreators: k.GetFeedCreators(ctx),
		Feeds:        []types.GenesisFeed{},
	}

	k.IterateFeeds(ctx, func(feedID uint64, config types.FeedConfig) bool {
		feed := types.GenesisFeed{
			Owner:                 config.Owner,
			Payment:               config.Payment,
			Timeout:               config.Timeout,
			SubmissionValueBounds: config.SubmissionValueBounds,
			MinSubmissions:        config.SubmissionCountBounds.Min,
			Decimals:              config.Decimals,
			Description:           config.Description,
			RestartDelay:          config.RestartDelay,
			PruningWindow:         config.PruningWindow,
			Oracles:               []types.OraclePair{},
		}
		genState.Feeds = append(genState.Feeds, feed)
		return false
	})

	return genState
}
