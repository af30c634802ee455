// Package redis wraps the go-redis client so repositories depend on a small
// interface instead of the concrete client.
package redis

import (
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/SogeMoge/xwsbot/internal/errors"
)

// Options tunes the connection pool
type Options struct {
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
}

// NewClient creates a client for a single host:port endpoint
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis: endpoint is required")
	}

	redisOpts := &redis.Options{Addr: endpoint}
	applyOptions(redisOpts, opts)

	return redis.NewClient(redisOpts), nil
}

// NewClientFromURL creates a client from a redis:// or rediss:// URL
func NewClientFromURL(rawURL string, opts *Options) (Client, error) {
	if rawURL == "" {
		return nil, errors.InvalidArgument("redis: url is required")
	}

	redisOpts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "redis: invalid url")
	}
	applyOptions(redisOpts, opts)

	return redis.NewClient(redisOpts), nil
}

func applyOptions(redisOpts *redis.Options, opts *Options) {
	if opts == nil {
		return
	}
	redisOpts.MinIdleConns = opts.MinIdleConns
	redisOpts.PoolSize = opts.PoolSize
	redisOpts.ConnMaxIdleTime = opts.ConnMaxIdleTime
	redisOpts.MaxRetries = opts.MaxRetries

	if opts.UseTLS && redisOpts.TLSConfig == nil {
		redisOpts.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}
}
