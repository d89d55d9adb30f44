package types

import (
	"cosmossdk.io/math"
)

// SubmissionBounds is the minimum and maximum number of submissions
// allowed per round.
type SubmissionBounds struct {
	Min uint32 `json:"min"`
	Max uint32 `json:"max"`
}

// ValueBounds is the inclusive range of acceptable submission values.
type ValueBounds struct {
	Min math.Int `json:"min"`
	Max math.Int `json:"max"`
}

// Contains reports whether v lies within the bounds.
func (b ValueBounds) Contains(v math.Int) bool {
	return v.GTE(b.Min) && v.LTE(b.Max)
}

// FeedConfig is the configuration and lifecycle state of an oracle feed.
type FeedConfig struct {
	// Owner of this feed
	Owner string `json:"owner"`
	// The pending owner of this feed, empty if no transfer is in flight
	PendingOwner string `json:"pending_owner,omitempty"`
	// Value bounds of oracle submissions
	SubmissionValueBounds ValueBounds `json:"submission_value_bounds"`
	// Count bounds of oracle submissions, applied to future rounds
	SubmissionCountBounds SubmissionBounds `json:"submission_count_bounds"`
	// Payment per accepted submission for future rounds
	Payment math.Int `json:"payment"`
	// Timeout of rounds in blocks
	Timeout int64 `json:"timeout"`
	// Number of decimals the feed values are scaled with
	Decimals uint8 `json:"decimals"`
	// Free-form description of this feed
	Description string `json:"description"`
	// Rounds an oracle has to wait before starting another round
	RestartDelay uint64 `json:"restart_delay"`
	// The round oracles are currently reporting data for
	ReportingRound uint64 `json:"reporting_round"`
	// The id of the latest answered round
	LatestRound uint64 `json:"latest_round"`
	// The id of the first round that contains non-default data
	FirstValidRound *uint64 `json:"first_valid_round,omitempty"`
	// The number of oracles enabled on this feed
	OracleCount uint32 `json:"oracle_count"`
	// Number of rounds to keep in storage for this feed
	PruningWindow uint64 `json:"pruning_window"`
	// The round that will be pruned next
	NextRoundToPrune uint64 `json:"next_round_to_prune"`
	// Reward owed to oracles that could not be funded from the pool
	Debt math.Int `json:"debt"`
	// The maximum debt the feed may accumulate, nil means unlimited
	MaxDebt *math.Int `json:"max_debt,omitempty"`
}

// Round is the consumer-facing data of a feed round.
type Round struct {
	StartedAt       int64     `json:"started_at"`
	Answer          *math.Int `json:"answer,omitempty"`
	UpdatedAt       *int64    `json:"updated_at,omitempty"`
	AnsweredInRound *uint64   `json:"answered_in_round,omitempty"`
}

// NewRound creates an open round started at the given block height.
func NewRound(startedAt int64) Round {
	return Round{StartedAt: startedAt}
}

// IsAnswered reports whether the round has an aggregated answer.
func (r Round) IsAnswered() bool {
	return r.Answer != nil
}

// RoundDetails is the oracle-facing data of a feed round. The count bounds,
// payment and timeout are snapshotted when the round opens so that later
// config changes do not affect in-flight rounds.
type RoundDetails struct {
	Submissions           []math.Int       `json:"submissions"`
	SubmissionCountBounds SubmissionBounds `json:"submission_count_bounds"`
	Payment               math.Int         `json:"payment"`
	Timeout               int64            `json:"timeout"`
}

// OracleMeta tracks the withdrawable rewards and admin for an oracle,
// shared across all feeds.
type OracleMeta struct {
	Withdrawable math.Int `json:"withdrawable"`
	Admin        string   `json:"admin"`
	PendingAdmin string   `json:"pending_admin,omitempty"`
}

// OracleStatus tracks an oracle's status on a single feed.
type OracleStatus struct {
	StartingRound     uint64    `json:"starting_round"`
	EndingRound       *uint64   `json:"ending_round,omitempty"`
	LastReportedRound *uint64   `json:"last_reported_round,omitempty"`
	LastStartedRound  *uint64   `json:"last_started_round,omitempty"`
	LatestSubmission  *math.Int `json:"latest_submission,omitempty"`
}

// NewOracleStatus creates the status for an oracle that was just enabled.
func NewOracleStatus(startingRound uint64) OracleStatus {
	return OracleStatus{StartingRound: startingRound}
}

// Requester stores the round-request permissions for an account on a feed.
type Requester struct {
	Delay            uint64  `json:"delay"`
	LastStartedRound *uint64 `json:"last_started_round,omitempty"`
}

// RoundData is an answered round as served to consumers.
type RoundData struct {
	StartedAt       int64    `json:"started_at"`
	Answer          math.Int `json:"answer"`
	UpdatedAt       int64    `json:"updated_at"`
	AnsweredInRound uint64   `json:"answered_in_round"`
}

// DefaultRoundData returns zero-valued round data, served for feeds that
// have never been answered.
func DefaultRoundData() RoundData {
	return RoundData{Answer: math.ZeroInt()}
}

// RoundDataFromRound converts an answered round into consumer round data.
// Returns false if the round has not been answered.
func RoundDataFromRound(r Round) (RoundData, bool) {
	if r.Answer == nil || r.UpdatedAt == nil || r.AnsweredInRound == nil {
		return RoundData{}, false
	}
	return RoundData{
		StartedAt:       r.StartedAt,
		Answer:          *r.Answer,
		UpdatedAt:       *r.UpdatedAt,
		AnsweredInRound: *r.AnsweredInRound,
	}, true
}

// IntoRound converts consumer round data back into a stored round.
func (d RoundData) IntoRound() Round {
	answer := d.Answer
	updatedAt := d.UpdatedAt
	answeredIn := d.AnsweredInRound
	return Round{
		StartedAt:       d.StartedAt,
		Answer:          &answer,
		UpdatedAt:       &updatedAt,
		AnsweredInRound: &answeredIn,
	}
}
