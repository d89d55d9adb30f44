package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper defines the expected bank keeper methods. The module account
// holds the free reward pool; the reserve pool account holds rewards that
// have been reserved for oracle payouts.
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SendCoinsFromModuleToModule(ctx context.Context, senderModule, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
}

// OnAnswerHandler is notified whenever a feed's answer updates. The handler
// must not fail; it is invoked after the answer has been recorded.
type OnAnswerHandler interface {
	OnAnswer(ctx sdk.Context, feedID uint64, data RoundData)
}

// NoOpAnswerHandler is an OnAnswerHandler that does nothing.
type NoOpAnswerHandler struct{}

func (NoOpAnswerHandler) OnAnswer(sdk.Context, uint64, RoundData) {}

// OnAnswerFunc adapts a function to the OnAnswerHandler interface.
type OnAnswerFunc func(ctx sdk.Context, feedID uint64, data RoundData)

func (f OnAnswerFunc) OnAnswer(ctx sdk.Context, feedID uint64, data RoundData) {
	f(ctx, feedID, data)
}

// FeedKeeperV1 is the versioned read interface for external modules that
// consume feed answers.
type FeedKeeperV1 interface {
	// LatestRound returns the id of the latest feed round.
	LatestRound(ctx sdk.Context, feedID uint64) (uint64, error)

	// FirstValidRound returns the id of the first round with non-default
	// data, or false if the feed has never been answered.
	FirstValidRound(ctx sdk.Context, feedID uint64) (uint64, bool, error)

	// DataAt returns the data for a given round, or false if the round has
	// no answer (or was pruned).
	DataAt(ctx sdk.Context, feedID, roundID uint64) (RoundData, bool, error)

	// LatestData returns the latest round data. It is default-valued if the
	// feed has never been answered; check FirstValidRound.
	LatestData(ctx sdk.Context, feedID uint64) (RoundData, error)

	// Decimals returns the number of decimals the feed is configured with.
	Decimals(ctx sdk.Context, feedID uint64) (uint8, error)
}
