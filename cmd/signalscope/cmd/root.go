package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/signalscope/config"
	"github.com/rustyeddy/signalscope/internal/logging"
)

var (
	cfgFile  string
	logLevel string
	envFile  string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "signalscope",
	Short: "Technical analysis and composite signal scoring for daily bars",
	Long: `Signalscope reads daily OHLCV bars and scores the latest bar.

It provides tools for:
  - MACD, KDJ, moving average, volume and support/resistance indicators
  - Candlestick pattern recognition
  - Composite buy/sell/hold signals with MACD + KDJ resonance
  - A SQLite or CSV journal of detected signals
  - Optional Redis caching and Prometheus textfile metrics

Settings come from --config, then SIGNALSCOPE_* environment variables
(a .env file in the working directory is loaded first).`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override log.level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
}

func setup(cmd *cobra.Command, args []string) error {
	// a missing .env is normal outside development
	_ = godotenv.Load(envFile)

	var err error
	if cfg, err = config.Load(cfgFile); err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	return logging.Setup(cfg.Log.Level, cfg.Log.Pretty)
}
