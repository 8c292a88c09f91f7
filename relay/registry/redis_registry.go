package registry

import "github.com/garyburd/redigo/redis"

import "github.com/relaysh/relay.api/relay/defs"
import "github.com/relaysh/relay.api/relay/logging"

// NewRedisRegistry returns a ConnectionIndex implementation backed by a redis list
func NewRedisRegistry(conn redis.Conn) *RedisRegistry {
	logger := logging.New(defs.RegistryLogPrefix, logging.Green)
	return &RedisRegistry{logger, conn}
}

// RedisRegistry tracks live connection ids in the redis list found at defs.RedisConnectionIndexKey
type RedisRegistry struct {
	logging.LeveledLogger
	redis.Conn
}

// Insert adds the provided connection id to the index
func (registry *RedisRegistry) Insert(id string) error {
	_, e := registry.Do("LPUSH", defs.RedisConnectionIndexKey, id)
	return e
}

// Remove deletes the provided connection id from the index
func (registry *RedisRegistry) Remove(id string) error {
	_, e := registry.Do("LREM", defs.RedisConnectionIndexKey, 1, id)
	return e
}

// Exists returns true when the provided connection id is present in the index
func (registry *RedisRegistry) Exists(id string) bool {
	ids, e := registry.List()

	if e != nil {
		registry.Warnf("unable to load connection index: %s", e.Error())
		return false
	}

	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}

	return false
}

// List returns every connection id currently present in the index
func (registry *RedisRegistry) List() ([]string, error) {
	response, e := registry.Do("LRANGE", defs.RedisConnectionIndexKey, 0, -1)

	if e != nil {
		return nil, e
	}

	return redis.Strings(response, e)
}
