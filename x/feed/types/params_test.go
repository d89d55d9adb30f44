package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/feed/x/feed/types"
)

func TestDefaultParamsValidate(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *types.Params)
	}{
		{"zero feed limit", func(p *types.Params) { p.FeedLimit = 0 }},
		{"zero oracle count limit", func(p *types.Params) { p.OracleCountLimit = 0 }},
		{"zero string limit", func(p *types.Params) { p.StringLimit = 0 }},
		{"nil minimum reserve", func(p *types.Params) { p.MinimumReserve = math.Int{} }},
		{"negative minimum reserve", func(p *types.Params) { p.MinimumReserve = math.NewInt(-1) }},
		{"empty reward denom", func(p *types.Params) { p.RewardDenom = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			params := types.DefaultParams()
			tc.mutate(&params)
			require.Error(t, params.Validate())
		})
	}
}
