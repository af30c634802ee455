package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the repositories use. It is the full
// UniversalClient so tests can hand in a miniredis-backed client.
type Client interface {
	redis.UniversalClient
}

// Pipeliner wraps redis.Pipeliner for batch writes
type Pipeliner interface {
	redis.Pipeliner
}

// Nil is returned by reads of a missing key
const Nil = redis.Nil
