// Command newswire turns NewsML bulletins into chat webhook notifications.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"NewswireNotifier/internal/app"
	"NewswireNotifier/internal/config"
	"NewswireNotifier/internal/logging"
)

const version = "0.1.0"

var flagLogLevel string

var rootCmd = &cobra.Command{
	Use:   "newswire",
	Short: "Post NewsML wire bulletins to a chat webhook",
	Long: `newswire reads NewsML bulletins in either the legacy (NewsML 1.x) or the
modern (NewsML-G2) dialect and turns them into chat webhook notifications.

Configuration comes from NEWSWIRE_CONFIG (YAML) and the environment:
SLACK_WEBHOOK, MIN_PRIORITY, ALERT_PRIORITY, DEBUG, ENVIRONMENT.
Delivery only happens when ENVIRONMENT=production.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "newswire version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error); overrides LOG_LEVEL")
	rootCmd.AddCommand(versionCmd)
}

func newApplication() (*app.Application, config.Config) {
	cfg := config.Load()
	if flagLogLevel != "" && !cfg.Debug {
		cfg.Logging.Level = flagLogLevel
	}
	logger := logging.New(cfg.Logging.Level)
	return app.New(cfg, logger), cfg
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
