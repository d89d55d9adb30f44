package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// OraclePair couples an oracle account with its admin account.
type OraclePair struct {
	Oracle string `json:"oracle"`
	Admin  string `json:"admin"`
}

// GenesisFeed declares a feed to be created at genesis. It is built through
// the same code path as MsgCreateFeed.
type GenesisFeed struct {
	Owner                 string       `json:"owner"`
	Payment               math.Int     `json:"payment"`
	Timeout               int64        `json:"timeout"`
	SubmissionValueBounds ValueBounds  `json:"submission_value_bounds"`
	MinSubmissions        uint32       `json:"min_submissions"`
	Decimals              uint8        `json:"decimals"`
	Description           string       `json:"description"`
	RestartDelay          uint64       `json:"restart_delay"`
	Oracles               []OraclePair `json:"oracles"`
	PruningWindow         uint64       `json:"pruning_window"`
}

// GenesisState is the feed module's genesis state.
type GenesisState struct {
	Params       Params        `json:"params"`
	ModuleAdmin  string        `json:"module_admin,omitempty"`
	FeedCreators []string      `json:"feed_creators"`
	Feeds        []GenesisFeed `json:"feeds"`
}

// DefaultGenesis returns the default genesis state for the feed module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:       DefaultParams(),
		FeedCreators: []string{},
		Feeds:        []GenesisFeed{},
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	if gs.ModuleAdmin != "" {
		if _, err := sdk.AccAddressFromBech32(gs.ModuleAdmin); err != nil {
			return fmt.Errorf("invalid module admin address: %w", err)
		}
	}
	for _, creator := range gs.FeedCreators {
		if _, err := sdk.AccAddressFromBech32(creator); err != nil {
			return fmt.Errorf("invalid feed creator address %q: %w", creator, err)
		}
	}
	if uint64(len(gs.Feeds)) > gs.Params.FeedLimit {
		return fmt.Errorf("genesis declares %d feeds, limit is %d", len(gs.Feeds), gs.Params.FeedLimit)
	}
	for i, feed := range gs.Feeds {
		if _, err := sdk.AccAddressFromBech32(feed.Owner); err != nil {
			return fmt.Errorf("feed %d: invalid owner address: %w", i, err)
		}
		if uint32(len(feed.Description)) > gs.Params.StringLimit {
			return fmt.Errorf("feed %d: description too long", i)
		}
		if feed.PruningWindow == 0 {
			return fmt.Errorf("feed %d: pruning window must be positive", i)
		}
		if uint32(len(feed.Oracles)) > gs.Params.OracleCountLimit {
			return fmt.Errorf("feed %d: too many oracles", i)
		}
		// the same round config checks InitGenesis would panic on
		if feed.MinSubmissions > uint32(len(feed.Oracles)) {
			return fmt.Errorf("feed %d: min submissions %d exceeds oracle count %d", i, feed.MinSubmissions, len(feed.Oracles))
		}
		if len(feed.Oracles) > 0 && feed.MinSubmissions == 0 {
			return fmt.Errorf("feed %d: min submissions must be positive", i)
		}
		if uint64(len(feed.Oracles)) <= feed.RestartDelay {
			return fmt.Errorf("feed %d: restart delay %d must be below oracle count %d", i, feed.RestartDelay, len(feed.Oracles))
		}
		for _, pair := range feed.Oracles {
			if _, err := sdk.AccAddressFromBech32(pair.Oracle); err != nil {
				return fmt.Errorf("feed %d: invalid oracle address: %w", i, err)
			}
			if _, err := sdk.AccAddressFromBech32(pair.Admin); err != nil {
				return fmt.Errorf("feed %d: invalid oracle admin address: %w", i, err)
			}
		}
	}
	return nil
}
