// Package logger builds the zap logger shared by every xwsbot command.
package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/SogeMoge/xwsbot/internal/errors"
)

// Formats accepted by Config.Format
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config selects level, encoding and an optional file sink
type Config struct {
	// Level is a zap level name: debug, info, warn, error
	Level string
	// Format is "json" or "console"
	Format string
	// File, when set, receives a copy of every entry
	File string
}

// Validate checks Level and Format
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if _, err := zapcore.ParseLevel(c.levelOrDefault()); err != nil {
		vb.InvalidField("Level", err.Error())
	}
	errors.ValidateEnum("Format", c.formatOrDefault(), []string{FormatJSON, FormatConsole}, vb)
	return vb.Build()
}

func (c *Config) levelOrDefault() string {
	if c.Level == "" {
		return "info"
	}
	return strings.ToLower(c.Level)
}

func (c *Config) formatOrDefault() string {
	if c.Format == "" {
		return FormatJSON
	}
	return strings.ToLower(c.Format)
}

// New builds a logger writing to stderr and, when configured, to a file
func New(cfg *Config) (*zap.Logger, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, _ := zapcore.ParseLevel(cfg.levelOrDefault())

	var zcfg zap.Config
	if cfg.formatOrDefault() == FormatConsole {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.EncoderConfig.TimeKey = "time"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.OutputPaths = []string{"stderr"}
	if cfg.File != "" {
		zcfg.OutputPaths = append(zcfg.OutputPaths, cfg.File)
	}

	log, err := zcfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build logger")
	}
	return log.With(zap.Int("pid", os.Getpid())), nil
}
