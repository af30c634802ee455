package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/suite"

	"github.com/SogeMoge/xwsbot/internal/clients/yasb"
	"github.com/SogeMoge/xwsbot/internal/config"
	"github.com/SogeMoge/xwsbot/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func (s *ConfigTestSuite) SetupTest() {
	for _, key := range []string{
		"DISCORD_TOKEN", "REDIS_URL", "RB_ENDPOINT", "XWS_DATA_ROOT_DIR", "HTTP_ADDR",
		"FETCH_TIMEOUT", "CONFIRM_TIMEOUT", "LOCK_IDLE_TTL", "LOG_LEVEL", "LOG_FORMAT",
		"LOG_FILE", "PREPARE_ON_START", "XWSBOT_DOTENV_PROBE",
	} {
		s.T().Setenv(key, "")
		s.Require().NoError(os.Unsetenv(key))
	}
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Load(config.NewViper())
	s.Require().NoError(err)

	s.Equal(config.DefaultRedisURL, cfg.RedisURL)
	s.Equal(yasb.DefaultBaseURL, cfg.RBEndpoint)
	s.Equal(config.DefaultDataRoot, cfg.DataRoot)
	s.Equal(config.DefaultHTTPAddr, cfg.HTTPAddr)
	s.Equal(20*time.Second, cfg.FetchTimeout)
	s.Equal(120*time.Second, cfg.ConfirmTimeout)
	s.Equal(30*time.Minute, cfg.LockIdleTTL)
	s.Equal(config.DefaultLogFile, cfg.LogFile)
	s.True(cfg.PrepareOnStart)
	s.Empty(cfg.DiscordToken)
}

func (s *ConfigTestSuite) TestEnvironmentOverrides() {
	s.T().Setenv("DISCORD_TOKEN", "  abc.def.ghi  ")
	s.T().Setenv("REDIS_URL", "redis://cache:6379/2")
	s.T().Setenv("FETCH_TIMEOUT", "5s")
	s.T().Setenv("PREPARE_ON_START", "false")
	s.T().Setenv("XWS_DATA_ROOT_DIR", "/srv/xwing-data2/data")

	cfg, err := config.Load(config.NewViper())
	s.Require().NoError(err)

	s.Equal("abc.def.ghi", cfg.DiscordToken)
	s.Equal("redis://cache:6379/2", cfg.RedisURL)
	s.Equal(5*time.Second, cfg.FetchTimeout)
	s.False(cfg.PrepareOnStart)
	s.Equal("/srv/xwing-data2/data", cfg.DataRoot)
	s.NoError(cfg.ValidateBot())
}

func (s *ConfigTestSuite) TestFlagsOverrideEnvironment() {
	s.T().Setenv("HTTP_ADDR", ":9000")

	v := config.NewViper()
	flags := pflag.NewFlagSet("api", pflag.ContinueOnError)
	flags.String("http-addr", "", "")
	s.Require().NoError(v.BindPFlag(config.KeyHTTPAddr, flags.Lookup("http-addr")))
	s.Require().NoError(flags.Parse([]string{"--http-addr", "127.0.0.1:8181"}))

	cfg, err := config.Load(v)
	s.Require().NoError(err)
	s.Equal("127.0.0.1:8181", cfg.HTTPAddr)
}

func (s *ConfigTestSuite) TestInvalidSettings() {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "zero fetch timeout", key: "FETCH_TIMEOUT", value: "0s"},
		{name: "negative confirm timeout", key: "CONFIRM_TIMEOUT", value: "-1s"},
		{name: "blank data root", key: "XWS_DATA_ROOT_DIR", value: "  "},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.T().Setenv(tc.key, tc.value)

			cfg, err := config.Load(config.NewViper())
			s.Nil(cfg)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *ConfigTestSuite) TestValidateBot() {
	testCases := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{name: "real token", token: "abc.def.ghi"},
		{name: "missing token", token: "", wantErr: true},
		{name: "placeholder token", token: config.PlaceholderToken, wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg := &config.Config{DiscordToken: tc.token}
			err := cfg.ValidateBot()
			if tc.wantErr {
				s.True(errors.IsInvalidArgument(err))
				return
			}
			s.NoError(err)
		})
	}
}

func (s *ConfigTestSuite) TestValidateAPI() {
	s.NoError((&config.Config{HTTPAddr: ":8080"}).ValidateAPI())
	s.True(errors.IsInvalidArgument((&config.Config{}).ValidateAPI()))
}

func (s *ConfigTestSuite) TestLoadDotEnv() {
	path := filepath.Join(s.T().TempDir(), ".env")
	s.Require().NoError(os.WriteFile(path, []byte("XWSBOT_DOTENV_PROBE=from-file\nREDIS_URL=redis://dotenv:6379/0\n"), 0o600))
	s.T().Setenv("REDIS_URL", "redis://env:6379/0")

	s.Require().NoError(config.LoadDotEnv(path, filepath.Join(s.T().TempDir(), "missing.env")))
	s.T().Cleanup(func() { _ = os.Unsetenv("XWSBOT_DOTENV_PROBE") })

	s.Equal("from-file", os.Getenv("XWSBOT_DOTENV_PROBE"))
	s.Equal("redis://env:6379/0", os.Getenv("REDIS_URL"))
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
