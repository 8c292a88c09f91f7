package defs

const (
	// RedisConnectionIndexKey is the key used by the redis connection registry to store live connection ids.
	RedisConnectionIndexKey = "relay:connection-index"
)
