package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SogeMoge/xwsbot/internal/errors"
	"github.com/SogeMoge/xwsbot/internal/pkg/logger"
)

func TestNewDefaults(t *testing.T) {
	log, err := logger.New(nil)
	require.NoError(t, err)
	assert.NotNil(t, log)
}

func TestNewRejectsBadConfig(t *testing.T) {
	testCases := []struct {
		name string
		cfg  *logger.Config
	}{
		{name: "unknown level", cfg: &logger.Config{Level: "loud"}},
		{name: "unknown format", cfg: &logger.Config{Format: "xml"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			log, err := logger.New(tc.cfg)
			assert.Nil(t, log)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xwsbot.log")

	log, err := logger.New(&logger.Config{Level: "debug", Format: "json", File: path})
	require.NoError(t, err)

	log.Info("Acquired lock")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Acquired lock")
}
