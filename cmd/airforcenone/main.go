// AirForceNone tracks presidential, government and VIP military aircraft
// on the ADSB.One military feed.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/unklstewy/airforcenone/internal/errors"
	"github.com/unklstewy/airforcenone/internal/logging"
	"github.com/unklstewy/airforcenone/pkg/config"
)

var (
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *zap.SugaredLogger
)

var rootCmd = &cobra.Command{
	Use:   "airforcenone",
	Short: "Presidential & VIP aircraft tracker",
	Long: `AirForceNone - Presidential & VIP aircraft tracker.

Polls the ADSB.One military feed (1 request/second), identifies aircraft by
ICAO address against a known-aircraft catalog and by VIP callsign prefix,
resolves the country each aircraft is flying over, and ranks the results.

Examples:
  airforcenone scan                     # One poll of /v2/mil
  airforcenone scan --sample 15         # Show raw tracks when nothing matches
  airforcenone lookup ae01ce adfdf8     # Query specific aircraft
  airforcenone watch                    # Live view, re-polls every watch.interval
  airforcenone serve                    # JSON API on server.host:server.port
  airforcenone catalog import plane-alert-db.csv`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return errors.Wrap(err, "failed to load configuration")
		}
		if logLevel != "" {
			loaded.Log.Level = logLevel
			if err := loaded.Validate(); err != nil {
				return err
			}
		}
		cfg = loaded

		logger, err = logging.New(cfg.Log)
		if err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (json, yaml or toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override log.level (debug, info, warn, error)")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(catalogCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
