// Package config loads xwsbot settings from the environment, an optional
// .env file and command line flags.
package config

import (
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/SogeMoge/xwsbot/internal/clients/yasb"
	"github.com/SogeMoge/xwsbot/internal/errors"
	"github.com/SogeMoge/xwsbot/internal/orchestrators/dispatch"
	"github.com/SogeMoge/xwsbot/internal/pkg/keylock"
)

// Keys. Each one is read from the upper case environment variable of the
// same name.
const (
	KeyDiscordToken   = "discord_token"
	KeyRedisURL       = "redis_url"
	KeyRBEndpoint     = "rb_endpoint"
	KeyDataRoot       = "xws_data_root_dir"
	KeyHTTPAddr       = "http_addr"
	KeyFetchTimeout   = "fetch_timeout"
	KeyConfirmTimeout = "confirm_timeout"
	KeyLockIdleTTL    = "lock_idle_ttl"
	KeyLogLevel       = "log_level"
	KeyLogFormat      = "log_format"
	KeyLogFile        = "log_file"
	KeyPrepareOnStart = "prepare_on_start"
)

// Defaults
const (
	DefaultRedisURL = "redis://localhost:6379/0"
	DefaultDataRoot = "submodules/xwing-data2/data"
	DefaultHTTPAddr = ":8080"
	DefaultLogFile  = "xwsbot.log"

	// PlaceholderToken is the value shipped in the sample .env
	PlaceholderToken = "YOUR_REAL_BOT_TOKEN"
)

// Config is the resolved settings for every command
type Config struct {
	DiscordToken   string
	RedisURL       string
	RBEndpoint     string
	DataRoot       string
	HTTPAddr       string
	FetchTimeout   time.Duration
	ConfirmTimeout time.Duration
	LockIdleTTL    time.Duration
	LogLevel       string
	LogFormat      string
	LogFile        string
	PrepareOnStart bool
}

// NewViper returns a viper instance with defaults set and environment
// lookup enabled
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyRedisURL, DefaultRedisURL)
	v.SetDefault(KeyRBEndpoint, yasb.DefaultBaseURL)
	v.SetDefault(KeyDataRoot, DefaultDataRoot)
	v.SetDefault(KeyHTTPAddr, DefaultHTTPAddr)
	v.SetDefault(KeyFetchTimeout, yasb.DefaultHTTPTimeout)
	v.SetDefault(KeyConfirmTimeout, dispatch.DefaultConfirmTimeout)
	v.SetDefault(KeyLockIdleTTL, keylock.DefaultIdleTTL)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "json")
	v.SetDefault(KeyLogFile, DefaultLogFile)
	v.SetDefault(KeyPrepareOnStart, true)
	return v
}

// LoadDotEnv loads variables from the given files (".env" when none are
// given) without overriding ones already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to load %s", path)
		}
	}
	return nil
}

// Load reads a Config from v and validates the shared settings
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		return nil, errors.InvalidArgument("viper instance is required")
	}

	cfg := &Config{
		DiscordToken:   strings.TrimSpace(v.GetString(KeyDiscordToken)),
		RedisURL:       v.GetString(KeyRedisURL),
		RBEndpoint:     v.GetString(KeyRBEndpoint),
		DataRoot:       v.GetString(KeyDataRoot),
		HTTPAddr:       v.GetString(KeyHTTPAddr),
		FetchTimeout:   v.GetDuration(KeyFetchTimeout),
		ConfirmTimeout: v.GetDuration(KeyConfirmTimeout),
		LockIdleTTL:    v.GetDuration(KeyLockIdleTTL),
		LogLevel:       v.GetString(KeyLogLevel),
		LogFormat:      v.GetString(KeyLogFormat),
		LogFile:        v.GetString(KeyLogFile),
		PrepareOnStart: v.GetBool(KeyPrepareOnStart),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings every command needs
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("RedisURL", c.RedisURL, vb)
	errors.ValidateRequired("RBEndpoint", c.RBEndpoint, vb)
	errors.ValidateRequired("DataRoot", c.DataRoot, vb)
	errors.ValidatePositiveDuration("FetchTimeout", c.FetchTimeout, vb)
	errors.ValidatePositiveDuration("ConfirmTimeout", c.ConfirmTimeout, vb)
	errors.ValidatePositiveDuration("LockIdleTTL", c.LockIdleTTL, vb)
	return vb.Build()
}

// ValidateBot also requires a real Discord token
func (c *Config) ValidateBot() error {
	vb := errors.NewValidationBuilder()
	switch c.DiscordToken {
	case "":
		vb.RequiredField("DiscordToken")
	case PlaceholderToken:
		vb.InvalidField("DiscordToken", "still set to the placeholder value")
	}
	return vb.Build()
}

// ValidateAPI also requires a listen address
func (c *Config) ValidateAPI() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("HTTPAddr", c.HTTPAddr, vb)
	return vb.Build()
}
