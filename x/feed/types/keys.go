package types

import (
	"encoding/binary"
)

var (
	// ModuleNamespace is the namespace byte for the feed module (0x06)
	// All store keys are prefixed with this byte to prevent collisions with other modules
	ModuleNamespace = byte(0x06)

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x06, 0x01}

	// ModuleAdminKey is the key for the account controlling the pooled funds
	ModuleAdminKey = []byte{0x06, 0x02}

	// PendingModuleAdminKey is the key for the account a module admin transfer
	// has been offered to
	PendingModuleAdminKey = []byte{0x06, 0x03}

	// FeedCounterKey is the key for the running counter used to assign feed ids
	FeedCounterKey = []byte{0x06, 0x04}

	// FeedConfigKeyPrefix is the prefix for per-feed configuration
	FeedConfigKeyPrefix = []byte{0x06, 0x05}

	// FeedCreatorKeyPrefix is the prefix for the feed creator allowlist
	FeedCreatorKeyPrefix = []byte{0x06, 0x06}

	// RoundKeyPrefix is the prefix for consumer-facing round data (feed id, round id)
	RoundKeyPrefix = []byte{0x06, 0x07}

	// RoundDetailsKeyPrefix is the prefix for oracle-facing round data (feed id, round id)
	RoundDetailsKeyPrefix = []byte{0x06, 0x08}

	// OracleMetaKeyPrefix is the prefix for global oracle metadata
	OracleMetaKeyPrefix = []byte{0x06, 0x09}

	// OracleStatusKeyPrefix is the prefix for per-feed oracle status (feed id, oracle)
	OracleStatusKeyPrefix = []byte{0x06, 0x0A}

	// RequesterKeyPrefix is the prefix for per-feed requester permissions (feed id, account)
	RequesterKeyPrefix = []byte{0x06, 0x0B}
)

// GetFeedConfigKey returns the store key for a feed's configuration
func GetFeedConfigKey(feedID uint64) []byte {
	return appendUint64(FeedConfigKeyPrefix, feedID)
}

// GetFeedCreatorKey returns the store key for a feed creator allowlist entry
func GetFeedCreatorKey(creator string) []byte {
	return append(FeedCreatorKeyPrefix, []byte(creator)...)
}

// GetRoundKey returns the store key for a feed's round
func GetRoundKey(feedID, roundID uint64) []byte {
	return appendUint64(appendUint64(RoundKeyPrefix, feedID), roundID)
}

// GetRoundDetailsKey returns the store key for a feed round's details
func GetRoundDetailsKey(feedID, roundID uint64) []byte {
	return appendUint64(appendUint64(RoundDetailsKeyPrefix, feedID), roundID)
}

// GetOracleMetaKey returns the store key for an oracle's global metadata
func GetOracleMetaKey(oracle string) []byte {
	return append(OracleMetaKeyPrefix, []byte(oracle)...)
}

// GetOracleStatusKey returns the store key for an oracle's status on a feed
func GetOracleStatusKey(feedID uint64, oracle string) []byte {
	return append(appendUint64(OracleStatusKeyPrefix, feedID), []byte(oracle)...)
}

// GetRequesterKey returns the store key for a requester's permissions on a feed
func GetRequesterKey(feedID uint64, requester string) []byte {
	return append(appendUint64(RequesterKeyPrefix, feedID), []byte(requester)...)
}

func appendUint64(prefix []byte, v uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, v)
	key := make([]byte, 0, len(prefix)+8)
	key = append(key, prefix...)
	return append(key, bz...)
}
