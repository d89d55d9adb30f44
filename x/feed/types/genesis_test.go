package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/feed/x/feed/types"
)

func validGenesisFeed() types.GenesisFeed {
	return types.GenesisFeed{
		Owner:   sdk.AccAddress([]byte("genesis_owner______")).String(),
		Payment: math.NewInt(1),
		SubmissionValueBounds: types.ValueBounds{
			Min: math.NewInt(0),
			Max: math.NewInt(100),
		},
		MinSubmissions: 1,
		PruningWindow:  100,
		Oracles: []types.OraclePair{
			{
				Oracle: sdk.AccAddress([]byte("genesis_oracle_____")).String(),
				Admin:  sdk.AccAddress([]byte("genesis_admin______")).String(),
			},
		},
	}
}

func TestDefaultGenesisValidates(t *testing.T) {
	require.NoError(t, types.DefaultGenesis().Validate())
}

func TestGenesisStateValidate(t *testing.T) {
	valid := types.GenesisState{
		Params:       types.DefaultParams(),
		ModuleAdmin:  sdk.AccAddress([]byte("genesis_mod_admin__")).String(),
		FeedCreators: []string{sdk.AccAddress([]byte("genesis_creator____")).String()},
		Feeds:        []types.GenesisFeed{validGenesisFeed()},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(gs *types.GenesisState)
	}{
		{"bad params", func(gs *types.GenesisState) { gs.Params.RewardDenom = "" }},
		{"bad module admin", func(gs *types.GenesisState) { gs.ModuleAdmin = "not-an-address" }},
		{"bad creator", func(gs *types.GenesisState) { gs.FeedCreators = []string{"not-an-address"} }},
		{"bad feed owner", func(gs *types.GenesisState) { gs.Feeds[0].Owner = "not-an-address" }},
		{"zero pruning window", func(gs *types.GenesisState) { gs.Feeds[0].PruningWindow = 0 }},
		{"bad oracle address", func(gs *types.GenesisState) { gs.Feeds[0].Oracles[0].Oracle = "not-an-address" }},
		{"more feeds than the limit", func(gs *types.GenesisState) { gs.Params.FeedLimit = 1; gs.Feeds = append(gs.Feeds, validGenesisFeed(), validGenesisFeed()) }},
		{"min submissions above oracle count", func(gs *types.GenesisState) { gs.Feeds[0].MinSubmissions = 2 }},
		{"zero min submissions with oracles", func(gs *types.GenesisState) { gs.Feeds[0].MinSubmissions = 0 }},
		{"restart delay not below oracle count", func(gs *types.GenesisState) { gs.Feeds[0].RestartDelay = 1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gs := types.GenesisState{
				Params:       types.DefaultParams(),
				ModuleAdmin:  valid.ModuleAdmin,
				FeedCreators: []string{valid.FeedCreators[0]},
				Feeds:        []types.GenesisFeed{validGenesisFeed()},
			}
			tc.mutate(&gs)
			require.Error(t, gs.Validate())
		})
	}
}
