package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/SogeMoge/xwsbot/internal/config"
	"github.com/SogeMoge/xwsbot/internal/errors"
	"github.com/SogeMoge/xwsbot/internal/pkg/logger"
	redisclient "github.com/SogeMoge/xwsbot/internal/redis"
	referencerepo "github.com/SogeMoge/xwsbot/internal/repositories/reference"
	"github.com/SogeMoge/xwsbot/internal/services/importer"
)

// runtime is what every command builds first
type runtime struct {
	cfg      *config.Config
	log      *zap.Logger
	redis    redisclient.Client
	store    referencerepo.Store
	importer importer.Service
}

func newRuntime() (*runtime, error) {
	cfg, err := config.Load(settings)
	if err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create logger")
	}

	client, err := redisclient.NewClientFromURL(cfg.RedisURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create redis client")
	}

	store, err := referencerepo.NewRedis(&referencerepo.RedisConfig{Client: client})
	if err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "failed to create reference store")
	}

	imp, err := importer.New(&importer.Config{Store: store, Logger: log.Named("importer")})
	if err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "failed to create importer")
	}

	return &runtime{
		cfg:      cfg,
		log:      log,
		redis:    client,
		store:    store,
		importer: imp,
	}, nil
}

func (rt *runtime) Close() {
	if err := rt.redis.Close(); err != nil {
		rt.log.Warn("Failed to close redis client", zap.Error(err))
	}
	_ = rt.log.Sync()
}

// ping fails fast when redis is unreachable
func (rt *runtime) ping(ctx context.Context) error {
	if err := rt.redis.Ping(ctx).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "redis is unreachable").
			WithMeta("redis_url", rt.cfg.RedisURL)
	}
	return nil
}

// signalContext is canceled on SIGINT or SIGTERM
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
