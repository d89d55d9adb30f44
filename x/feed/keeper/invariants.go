package keeper

import (
	"fmt"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/feed/x/feed/types"
)

// RegisterInvariants registers all feed module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "feed-config-consistency",
		FeedConfigConsistencyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "pruning-window",
		PruningWindowInvariant(k))
	ir.RegisterRoute(types.ModuleName, "debt-non-negative",
		DebtInvariant(k))
}

// AllInvariants runs all invariants of the feed module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := FeedConfigConsistencyInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		res, stop = PruningWindowInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return DebtInvariant(k)(ctx)
	}
}

// FeedConfigConsistencyInvariant checks that every feed's submission count
// bounds are covered by its oracle count and that round ids are ordered.
func FeedConfigConsistencyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var issues []string

		k.IterateFeeds(ctx, func(feedID uint64, config types.FeedConfig) bool {
			bounds := config.SubmissionCountBounds
			if bounds.Min > bounds.Max {
				issues = append(issues, fmt.Sprintf("feed %d: min submissions %d above max %d", feedID, bounds.Min, bounds.Max))
			}
			if bounds.Max > config.OracleCount {
				issues = append(issues, fmt.Sprintf("feed %d: max submissions %d above oracle count %d", feedID, bounds.Max, config.OracleCount))
			}
			if config.OracleCount > 0 && bounds.Min == 0 {
				issues = append(issues, fmt.Sprintf("feed %d: zero min submissions with %d oracles", feedID, config.OracleCount))
			}
			if config.LatestRound > config.ReportingRound {
				issues = append(issues, fmt.Sprintf("feed %d: latest round %d ahead of reporting round %d", feedID, config.LatestRound, config.ReportingRound))
			}
			return false
		})

		broken := len(issues) > 0
		return sdk.FormatInvariant(types.ModuleName, "feed-config-consistency",
			fmt.Sprintf("%d issues found\n%s", len(issues), strings.Join(issues, "\n"))), broken
	}
}

// PruningWindowInvariant checks that no feed retains more answered rounds
// than its pruning window allows.
func PruningWindowInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var issues []string

		k.IterateFeeds(ctx, func(feedID uint64, config types.FeedConfig) bool {
			if config.PruningWindow == 0 {
				issues = append(issues, fmt.Sprintf("feed %d: zero pruning window", feedID))
				return false
			}
			if config.NextRoundToPrune == 0 {
				issues = append(issues, fmt.Sprintf("feed %d: round zero marked for pruning", feedID))
				return false
			}
			if config.LatestRound >= config.NextRoundToPrune &&
				config.LatestRound-config.NextRoundToPrune > config.PruningWindow {
				issues = append(issues, fmt.Sprintf("feed %d: %d rounds retained, window is %d",
					feedID, config.LatestRound-config.NextRoundToPrune+1, config.PruningWindow))
			}
			return false
		})

		broken := len(issues) > 0
		return sdk.FormatInvariant(types.ModuleName, "pruning-window",
			fmt.Sprintf("%d issues found\n%s", len(issues), strings.Join(issues, "\n"))), broken
	}
}

// DebtInvariant checks that feed debt is non-negative and below the
// configured limit.
func DebtInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var issues []string

		k.IterateFeeds(ctx, func(feedID uint64, config types.FeedConfig) bool {
			if config.Debt.IsNil() || config.Debt.IsNegative() {
				issues = append(issues, fmt.Sprintf("feed %d: negative debt %s", feedID, config.Debt))
				return false
			}
			if config.MaxDebt != nil && config.Debt.GTE(*config.MaxDebt) && config.Debt.IsPositive() {
				issues = append(issues, fmt.Sprintf("feed %d: debt %s at or above limit %s", feedID, config.Debt, config.MaxDebt))
			}
			return false
		})

		broken := len(issues) > 0
		return sdk.FormatInvariant(types.ModuleName, "debt-non-negative",
			fmt.Sprintf("%d issues found\n%s", len(issues), strings.Join(issues, "\n"))), broken
	}
}
