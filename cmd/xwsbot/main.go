// Package main is the entry point for the xwsbot commands
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SogeMoge/xwsbot/internal/config"
)

var settings = config.NewViper()

var rootCmd = &cobra.Command{
	Use:   "xwsbot",
	Short: "X-Wing squad bot",
	Long: `xwsbot watches Discord channels for X-Wing Legacy squad builder links and
replies with a formatted breakdown of the list. It also imports the
xwing-data2 reference data and serves it over HTTP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return config.LoadDotEnv()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("redis-url", "", "Redis URL for reference data (env REDIS_URL)")
	flags.String("data-root", "", "xwing-data2 data directory (env XWS_DATA_ROOT_DIR)")
	flags.String("log-level", "", "log level: debug, info, warn, error (env LOG_LEVEL)")
	flags.String("log-format", "", "log format: json or console (env LOG_FORMAT)")
	flags.String("log-file", "", "file that receives a copy of the log (env LOG_FILE)")

	bindFlag(rootCmd, config.KeyRedisURL, "redis-url")
	bindFlag(rootCmd, config.KeyDataRoot, "data-root")
	bindFlag(rootCmd, config.KeyLogLevel, "log-level")
	bindFlag(rootCmd, config.KeyLogFormat, "log-format")
	bindFlag(rootCmd, config.KeyLogFile, "log-file")

	rootCmd.AddCommand(botCmd)
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(importCmd)
}

func bindFlag(cmd *cobra.Command, key, flag string) {
	f := cmd.PersistentFlags().Lookup(flag)
	if f == nil {
		f = cmd.Flags().Lookup(flag)
	}
	if err := settings.BindPFlag(key, f); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", flag, err))
	}
}
