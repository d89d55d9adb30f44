package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/feed/x/feed/types"
)

// GetRound retrieves the consumer-facing data of a feed round
func (k Keeper) GetRound(ctx context.Context, feedID, roundID uint64) (types.Round, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetRoundKey(feedID, roundID))
	if bz == nil {
		return types.Round{}, false
	}

	var round types.Round
	if err := json.Unmarshal(bz, &round); err != nil {
		return types.Round{}, false
	}
	return round, true
}

// SetRound stores the consumer-facing data of a feed round
func (k Keeper) SetRound(ctx context.Context, feedID, roundID uint64, round types.Round) {
	store := k.getStore(ctx)
	bz, err := json.Marshal(&round)
	if err != nil {
		panic(fmt.Sprintf("failed to marshal round: %s", err))
	}
	store.Set(types.GetRoundKey(feedID, roundID), bz)
}

func (k Keeper) deleteRound(ctx context.Context, feedID, roundID uint64) {
	store := k.getStore(ctx)
	store.Delete(types.GetRoundKey(feedID, roundID))
}

// GetRoundDetails retrieves the oracle-facing data of a feed round
func (k Keeper) GetRoundDetails(ctx context.Context, feedID, roundID uint64) (types.RoundDetails, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetRoundDetailsKey(feedID, roundID))
	if bz == nil {
		return types.RoundDetails{}, false
	}

	var details types.RoundDetails
	if err := json.Unmarshal(bz, &details); err != nil {
		return types.RoundDetails{}, false
	}
	return details, true
}

// SetRoundDetails stores the oracle-facing data of a feed round
func (k Keeper) SetRoundDetails(ctx context.Context, feedID, roundID uint64, details types.RoundDetails) {
	store := k.getStore(ctx)
	bz, err := json.Marshal(&details)
	if err != nil {
		panic(fmt.Sprintf("failed to marshal round details: %s", err))
	}
	store.Set(types.GetRoundDetailsKey(feedID, roundID), bz)
}

func (k Keeper) deleteRoundDetails(ctx context.Context, feedID, roundID uint64) {
	store := k.getStore(ctx)
	store.Delete(types.GetRoundDetailsKey(feedID, roundID))
}

// Submit records a new value for the given feed and round.
//
//   - Starts a new round if there is no round for the id yet and a round can
//     be started at this time by this oracle.
//   - Updates the round answer if the minimum number of submissions has been
//     reached.
//   - Records the reward incurred by the oracle.
//   - Removes the details of the round once the maximum number of
//     submissions has been reached.
//
// Limited to the oracles of a feed.
func (k Keeper) Submit(ctx sdk.Context, msg *types.MsgSubmit) error {
	feed, err := k.loadFeed(ctx, msg.FeedId)
	if err != nil {
		return err
	}
	status, found := k.GetOracleStatus(ctx, msg.FeedId, msg.Oracle)
	if !found {
		return types.ErrNotOracle.Wrapf("%s is not an oracle of feed %d", msg.Oracle, msg.FeedId)
	}
	if err := feed.ensureValidRound(msg.Oracle, msg.RoundId); err != nil {
		return err
	}

	if msg.Submission.LT(feed.config.SubmissionValueBounds.Min) {
		return types.ErrSubmissionBelowMinimum.Wrapf("%s < %s", msg.Submission, feed.config.SubmissionValueBounds.Min)
	}
	if msg.Submission.GT(feed.config.SubmissionValueBounds.Max) {
		return types.ErrSubmissionAboveMaximum.Wrapf("%s > %s", msg.Submission, feed.config.SubmissionValueBounds.Max)
	}

	newRoundID := feed.config.ReportingRound + 1
	var lastStarted uint64
	if status.LastStartedRound != nil {
		lastStarted = *status.LastStartedRound
	}
	nextEligibleRound := lastStarted + feed.config.RestartDelay + 1
	if nextEligibleRound < lastStarted {
		return types.ErrOverflow
	}
	eligibleToStart := msg.RoundId >= nextEligibleRound || status.LastStartedRound == nil

	// initialize the round if conditions are met
	if msg.RoundId == newRoundID && eligibleToStart {
		startedAt, err := feed.initializeRound(newRoundID)
		if err != nil {
			return err
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeNewRound,
				sdk.NewAttribute(types.AttributeKeyFeedID, fmt.Sprintf("%d", msg.FeedId)),
				sdk.NewAttribute(types.AttributeKeyRoundID, fmt.Sprintf("%d", newRoundID)),
				sdk.NewAttribute(types.AttributeKeyInitiator, msg.Oracle),
				sdk.NewAttribute(types.AttributeKeyStartedAt, fmt.Sprintf("%d", startedAt)),
			),
		)

		started := newRoundID
		status.LastStartedRound = &started
	}

	// record the submission
	details, found := k.GetRoundDetails(ctx, msg.FeedId, msg.RoundId)
	if !found {
		return types.ErrNotAcceptingSubmissions.Wrapf("round %d of feed %d", msg.RoundId, msg.FeedId)
	}
	k.deleteRoundDetails(ctx, msg.FeedId, msg.RoundId)
	details.Submissions = append(details.Submissions, msg.Submission)

	reported := msg.RoundId
	submission := msg.Submission
	status.LastReportedRound = &reported
	status.LatestSubmission = &submission
	k.SetOracleStatus(ctx, msg.FeedId, msg.Oracle, status)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSubmissionReceived,
			sdk.NewAttribute(types.AttributeKeyFeedID, fmt.Sprintf("%d", msg.FeedId)),
			sdk.NewAttribute(types.AttributeKeyRoundID, fmt.Sprintf("%d", msg.RoundId)),
			sdk.NewAttribute(types.AttributeKeySubmission, msg.Submission.String()),
			sdk.NewAttribute(types.AttributeKeyOracle, msg.Oracle),
		),
	)
	if k.metrics != nil {
		k.metrics.SubmissionsReceived.Inc()
	}

	// update the round answer once enough submissions came in
	if len(details.Submissions) >= int(details.SubmissionCountBounds.Min) {
		round, found := k.GetRound(ctx, msg.FeedId, msg.RoundId)
		if !found {
			return types.ErrRoundNotFound.Wrapf("round %d of feed %d", msg.RoundId, msg.FeedId)
		}

		updatedAt := ctx.BlockHeight()
		newAnswer := Median(details.Submissions)
		data := types.RoundData{
			StartedAt:       round.StartedAt,
			Answer:          newAnswer,
			UpdatedAt:       updatedAt,
			AnsweredInRound: msg.RoundId,
		}
		k.SetRound(ctx, msg.FeedId, msg.RoundId, data.IntoRound())

		feed.config.LatestRound = msg.RoundId
		if feed.config.FirstValidRound == nil {
			first := msg.RoundId
			feed.config.FirstValidRound = &first
		}
		// the previous round is not eligible for answers any more, so its
		// details are dropped
		if prevRoundID := msg.RoundId - 1; prevRoundID > 0 {
			k.deleteRoundDetails(ctx, msg.FeedId, prevRoundID)
		}
		feed.pruneOldest()

		k.onAnswer.OnAnswer(ctx, msg.FeedId, data)
		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeAnswerUpdated,
				sdk.NewAttribute(types.AttributeKeyFeedID, fmt.Sprintf("%d", msg.FeedId)),
				sdk.NewAttribute(types.AttributeKeyRoundID, fmt.Sprintf("%d", msg.RoundId)),
				sdk.NewAttribute(types.AttributeKeyAnswer, newAnswer.String()),
				sdk.NewAttribute(types.AttributeKeyUpdatedAt, fmt.Sprintf("%d", updatedAt)),
			),
		)
		if k.metrics != nil {
			k.metrics.AnswersUpdated.Inc()
		}
	}

	// reward the oracle, tracking debt if the pool cannot cover the payment
	if err := k.rewardOracle(ctx, feed, msg.Oracle, details.Payment); err != nil {
		return err
	}

	// keep the details around until the maximum count has been reached
	if len(details.Submissions) < int(details.SubmissionCountBounds.Max) {
		k.SetRoundDetails(ctx, msg.FeedId, msg.RoundId, details)
	}

	feed.commit()
	return nil
}

// ensureValidRound checks that the given oracle can submit data for the
// given round.
func (f *feedState) ensureValidRound(oracle string, roundID uint64) error {
	status, found := f.k.GetOracleStatus(f.ctx, f.id, oracle)
	if !found {
		return types.ErrNotOracle.Wrapf("%s is not an oracle of feed %d", oracle, f.id)
	}

	if status.StartingRound > roundID {
		return types.ErrOracleNotEnabled.Wrapf("oracle is enabled from round %d", status.StartingRound)
	}
	if status.EndingRound != nil && *status.EndingRound < roundID {
		return types.ErrOracleDisabled.Wrapf("oracle was disabled at round %d", *status.EndingRound)
	}
	if status.LastReportedRound != nil && *status.LastReportedRound >= roundID {
		return types.ErrReportingOrder.Wrapf("oracle already reported for round %d", *status.LastReportedRound)
	}

	reportingRound := f.config.ReportingRound
	isCurrent := roundID == reportingRound
	isNext := roundID == reportingRound+1
	currentUnanswered := true
	if round, found := f.k.GetRound(f.ctx, f.id, reportingRound); found {
		currentUnanswered = round.UpdatedAt == nil
	}
	isPrevious := roundID+1 == reportingRound
	if !(isCurrent || isNext || (isPrevious && currentUnanswered)) {
		return types.ErrInvalidRound.Wrapf("round %d, reporting round %d", roundID, reportingRound)
	}
	if roundID != 1 && !f.isSupersedable(roundID-1) {
		return types.ErrNotSupersedable.Wrapf("round %d is still open", roundID-1)
	}
	return nil
}

// isTimedOut checks whether a round is timed out. Returns false for rounds
// not present in storage.
func (f *feedState) isTimedOut(roundID uint64) bool {
	var startedAt int64
	if round, found := f.k.GetRound(f.ctx, f.id, roundID); found {
		startedAt = round.StartedAt
	}
	var timeout int64
	if details, found := f.k.GetRoundDetails(f.ctx, f.id, roundID); found {
		timeout = details.Timeout
	}

	return startedAt > 0 && timeout > 0 && startedAt+timeout < f.ctx.BlockHeight()
}

// wasUpdated checks whether a round has been answered. Returns false for
// rounds not present in storage.
func (f *feedState) wasUpdated(roundID uint64) bool {
	round, found := f.k.GetRound(f.ctx, f.id, roundID)
	return found && round.UpdatedAt != nil
}

// isSupersedable checks whether the round can be superseded by the next one.
func (f *feedState) isSupersedable(roundID uint64) bool {
	return roundID == 0 || f.wasUpdated(roundID) || f.isTimedOut(roundID)
}

// initializeRound opens a new round, closing the previous one if it timed
// out. Returns the block height the round started at.
func (f *feedState) initializeRound(newRoundID uint64) (int64, error) {
	f.config.ReportingRound = newRoundID

	prevRoundID := newRoundID - 1
	if f.isTimedOut(prevRoundID) {
		if err := f.closeTimedOutRound(prevRoundID); err != nil {
			return 0, err
		}
	}

	f.k.SetRoundDetails(f.ctx, f.id, newRoundID, types.RoundDetails{
		Submissions:           []sdkmath.Int{},
		SubmissionCountBounds: f.config.SubmissionCountBounds,
		Payment:               f.config.Payment,
		Timeout:               f.config.Timeout,
	})
	startedAt := f.ctx.BlockHeight()
	f.k.SetRound(f.ctx, f.id, newRoundID, types.NewRound(startedAt))

	if f.k.metrics != nil {
		f.k.metrics.RoundsStarted.Inc()
	}
	return startedAt, nil
}

// closeTimedOutRound closes a timed out round by carrying over the previous
// round's answer and removes its details.
func (f *feedState) closeTimedOutRound(timedOutID uint64) error {
	prevID := timedOutID - 1
	prevRound, found := f.k.GetRound(f.ctx, f.id, prevID)
	if !found {
		return types.ErrRoundNotFound.Wrapf("round %d of feed %d", prevID, f.id)
	}
	timedOutRound, found := f.k.GetRound(f.ctx, f.id, timedOutID)
	if !found {
		return types.ErrRoundNotFound.Wrapf("round %d of feed %d", timedOutID, f.id)
	}

	updatedAt := f.ctx.BlockHeight()
	timedOutRound.Answer = prevRound.Answer
	timedOutRound.AnsweredInRound = prevRound.AnsweredInRound
	timedOutRound.UpdatedAt = &updatedAt

	f.k.SetRound(f.ctx, f.id, timedOutID, timedOutRound)
	f.k.deleteRoundDetails(f.ctx, f.id, timedOutID)

	return nil
}

// requestNewRound opens a new round on behalf of a requester.
func (f *feedState) requestNewRound(requester string) (uint64, error) {
	newRoundID := f.config.ReportingRound + 1
	if newRoundID == 0 {
		return 0, types.ErrOverflow
	}
	if !f.isSupersedable(f.config.ReportingRound) {
		return 0, types.ErrRoundNotSupersedable.Wrapf("round %d is still open", f.config.ReportingRound)
	}
	startedAt, err := f.initializeRound(newRoundID)
	if err != nil {
		return 0, err
	}

	f.ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeNewRound,
			sdk.NewAttribute(types.AttributeKeyFeedID, fmt.Sprintf("%d", f.id)),
			sdk.NewAttribute(types.AttributeKeyRoundID, fmt.Sprintf("%d", newRoundID)),
			sdk.NewAttribute(types.AttributeKeyInitiator, requester),
			sdk.NewAttribute(types.AttributeKeyStartedAt, fmt.Sprintf("%d", startedAt)),
		),
	)

	return newRoundID, nil
}

// LatestRound returns the id of the latest feed round.
func (k Keeper) LatestRound(ctx sdk.Context, feedID uint64) (uint64, error) {
	config, found := k.GetFeedConfig(ctx, feedID)
	if !found {
		return 0, types.ErrFeedNotFound.Wrapf("feed %d", feedID)
	}
	return config.LatestRound, nil
}

// FirstValidRound returns the id of the first round with non-default data,
// or false if the feed has never been answered.
func (k Keeper) FirstValidRound(ctx sdk.Context, feedID uint64) (uint64, bool, error) {
	config, found := k.GetFeedConfig(ctx, feedID)
	if !found {
		return 0, false, types.ErrFeedNotFound.Wrapf("feed %d", feedID)
	}
	if config.FirstValidRound == nil {
		return 0, false, nil
	}
	return *config.FirstValidRound, true, nil
}

// DataAt returns the data for a given round, or false if the round has no
// answer or was pruned.
func (k Keeper) DataAt(ctx sdk.Context, feedID, roundID uint64) (types.RoundData, bool, error) {
	if _, found := k.GetFeedConfig(ctx, feedID); !found {
		return types.RoundData{}, false, types.ErrFeedNotFound.Wrapf("feed %d", feedID)
	}
	round, found := k.GetRound(ctx, feedID, roundID)
	if !found {
		return types.RoundData{}, false, nil
	}
	data, ok := types.RoundDataFromRound(round)
	return data, ok, nil
}

// LatestData returns the latest round data. It is default-valued if the feed
// has never been answered.
func (k Keeper) LatestData(ctx sdk.Context, feedID uint64) (types.RoundData, error) {
	latest, err := k.LatestRound(ctx, feedID)
	if err != nil {
		return types.RoundData{}, err
	}
	data, found, err := k.DataAt(ctx, feedID, latest)
	if err != nil {
		return types.RoundData{}, err
	}
	if !found {
		return types.DefaultRoundData(), nil
	}
	return data, nil
}

// Decimals returns the number of decimals the feed is configured with.
func (k Keeper) Decimals(ctx sdk.Context, feedID uint64) (uint8, error) {
	config, found := k.GetFeedConfig(ctx, feedID)
	if !found {
		return 0, types.ErrFeedNotFound.Wrapf("feed %d", feedID)
	}
	return config.Decimals, nil
}
