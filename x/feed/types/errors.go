package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Feed module sentinel errors
var (
	// Arithmetic errors
	ErrOverflow = sdkerrors.Register(ModuleName, 2, "math operation lead to an overflow")

	// Feed errors
	ErrFeedNotFound       = sdkerrors.Register(ModuleName, 3, "feed not found")
	ErrFeedLimitReached   = sdkerrors.Register(ModuleName, 4, "maximum number of feeds reached")
	ErrNotFeedCreator     = sdkerrors.Register(ModuleName, 5, "account is not allowed to create feeds")
	ErrDescriptionTooLong = sdkerrors.Register(ModuleName, 6, "description string too long")
	ErrNotFeedOwner       = sdkerrors.Register(ModuleName, 7, "only the feed owner can change the configuration")
	ErrNotPendingOwner    = sdkerrors.Register(ModuleName, 8, "only the pending owner can accept the transfer")

	// Round configuration errors
	ErrWrongBounds        = sdkerrors.Register(ModuleName, 9, "invalid submission count bounds")
	ErrMaxExceededTotal   = sdkerrors.Register(ModuleName, 10, "submission count bounds exceed total oracles")
	ErrDelayNotBelowCount = sdkerrors.Register(ModuleName, 11, "restart delay must be below oracle count")
	ErrCannotPruneRoundZero = sdkerrors.Register(ModuleName, 12, "round zero cannot be pruned")

	// Oracle errors
	ErrNotOracle            = sdkerrors.Register(ModuleName, 13, "account is not an oracle of this feed")
	ErrOracleNotFound       = sdkerrors.Register(ModuleName, 14, "no oracle metadata found for account")
	ErrOracleNotEnabled     = sdkerrors.Register(ModuleName, 15, "oracle is not enabled yet")
	ErrOracleDisabled       = sdkerrors.Register(ModuleName, 16, "oracle was disabled")
	ErrAlreadyEnabled       = sdkerrors.Register(ModuleName, 17, "oracle is already enabled")
	ErrNotEnoughOracles     = sdkerrors.Register(ModuleName, 18, "more oracles to disable than present")
	ErrOraclesLimitExceeded = sdkerrors.Register(ModuleName, 19, "oracle count limit exceeded")
	ErrOracleAdminMismatch  = sdkerrors.Register(ModuleName, 20, "oracle admin cannot be changed when adding")
	ErrNotAdmin             = sdkerrors.Register(ModuleName, 21, "only the oracle admin may do this")
	ErrNotPendingAdmin      = sdkerrors.Register(ModuleName, 22, "only the pending admin can accept the transfer")

	// Round state errors
	ErrReportingOrder          = sdkerrors.Register(ModuleName, 23, "oracle cannot report for past rounds")
	ErrRoundNotFound           = sdkerrors.Register(ModuleName, 24, "round not found")
	ErrInvalidRound            = sdkerrors.Register(ModuleName, 25, "round id is not valid for submissions")
	ErrNotSupersedable         = sdkerrors.Register(ModuleName, 26, "previous round cannot be superseded")
	ErrRoundNotSupersedable    = sdkerrors.Register(ModuleName, 27, "current round cannot be superseded by a new round")
	ErrNotAcceptingSubmissions = sdkerrors.Register(ModuleName, 28, "round is not accepting submissions")
	ErrSubmissionBelowMinimum  = sdkerrors.Register(ModuleName, 29, "submission below minimum value")
	ErrSubmissionAboveMaximum  = sdkerrors.Register(ModuleName, 30, "submission above maximum value")

	// Requester errors
	ErrRequesterNotFound      = sdkerrors.Register(ModuleName, 31, "no requester permissions stored for account")
	ErrNotAuthorizedRequester = sdkerrors.Register(ModuleName, 32, "account has no requester permissions")
	ErrCannotRequestRoundYet  = sdkerrors.Register(ModuleName, 33, "requester cannot request a new round yet")

	// Funds errors
	ErrInsufficientFunds   = sdkerrors.Register(ModuleName, 34, "insufficient funds")
	ErrInsufficientReserve = sdkerrors.Register(ModuleName, 35, "withdrawal would leave the reserve critically low")
	ErrMaxDebtReached      = sdkerrors.Register(ModuleName, 36, "maximum feed debt reached")

	// Module admin errors
	ErrNotModuleAdmin        = sdkerrors.Register(ModuleName, 37, "only the module admin may do this")
	ErrNotPendingModuleAdmin = sdkerrors.Register(ModuleName, 38, "only the pending module admin can accept the transfer")

	// Parameter errors
	ErrInvalidParams = sdkerrors.Register(ModuleName, 39, "invalid module parameters")
)
