package storage

import "errors"

var (
	// ErrKeyNotFound indicates no value is stored under the requested key.
	ErrKeyNotFound = errors.New("storage.key_not_found")

	// ErrEmptyKey indicates an operation was attempted with an empty key.
	ErrEmptyKey = errors.New("storage.empty_key")

	// ErrFailedToParseConnString indicates the Redis connection URL is invalid.
	ErrFailedToParseConnString = errors.New("storage.failed_to_parse_connection_string")

	// ErrRedisNotReady indicates the Redis server did not respond to ping
	// within the configured retry budget.
	ErrRedisNotReady = errors.New("storage.redis_not_ready")
)
