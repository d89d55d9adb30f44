package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Params are the feed module parameters.
type Params struct {
	// FeedLimit is the maximum number of feeds that can be created
	FeedLimit uint64 `json:"feed_limit"`
	// OracleCountLimit is the maximum number of oracles per feed
	OracleCountLimit uint32 `json:"oracle_count_limit"`
	// StringLimit is the maximum length of a feed description
	StringLimit uint32 `json:"string_limit"`
	// MinimumReserve is the balance the fund account may never drop below
	// through admin withdrawals
	MinimumReserve math.Int `json:"minimum_reserve"`
	// RewardDenom is the denomination oracle rewards are paid in
	RewardDenom string `json:"reward_denom"`
}

// DefaultParams returns default feed module parameters.
func DefaultParams() Params {
	return Params{
		FeedLimit:        1000,
		OracleCountLimit: 25,
		StringLimit:      256,
		MinimumReserve:   math.NewInt(100),
		RewardDenom:      "upaw",
	}
}

// Validate checks the parameters for consistency.
func (p Params) Validate() error {
	if p.FeedLimit == 0 {
		return fmt.Errorf("feed limit must be positive")
	}
	if p.OracleCountLimit == 0 {
		return fmt.Errorf("oracle count limit must be positive")
	}
	if p.StringLimit == 0 {
		return fmt.Errorf("string limit must be positive")
	}
	if p.MinimumReserve.IsNil() || p.MinimumReserve.IsNegative() {
		return fmt.Errorf("minimum reserve cannot be negative")
	}
	if err := sdk.ValidateDenom(p.RewardDenom); err != nil {
		return fmt.Errorf("invalid reward denom: %w", err)
	}
	return nil
}
