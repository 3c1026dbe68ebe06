package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/signalscope/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Generate or validate configuration files",
	Long: `Manage signalscope configuration files.

Subcommands:
  init     - Generate a default configuration file
  validate - Validate an existing configuration file

Examples:
  signalscope config init -o signalscope.yaml
  signalscope config validate -f signalscope.yaml`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default configuration file",
	Long: `Create a new configuration file with default settings. The format follows
the extension: .yaml/.yml for YAML, anything else for JSON.

Example:
  signalscope config init -o signalscope.yaml`,
	RunE: runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a configuration file",
	Long: `Check if a configuration file is valid and can be loaded.

Example:
  signalscope config validate -f signalscope.yaml`,
	RunE: runConfigValidate,
}

var (
	configInitOutput   string
	configValidatePath string
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)

	configInitCmd.Flags().StringVarP(&configInitOutput, "output", "o", "signalscope.yaml", "output config file path")
	configValidateCmd.Flags().StringVarP(&configValidatePath, "file", "f", "", "path to config file (required)")
	configValidateCmd.MarkFlagRequired("file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if err := config.Default().SaveToFile(configInitOutput); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "✓ Created default configuration: %s\n", configInitOutput)
	fmt.Fprintln(w, "\nEdit the file and run with:")
	fmt.Fprintf(w, "  signalscope --config %s analyze <bars.csv>\n", configInitOutput)
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	c, err := config.LoadFromFile(configValidatePath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "✓ Configuration valid: %s\n", configValidatePath)
	fmt.Fprintf(w, "  MACD: %d/%d/%d  KDJ: %d/%d  MA: %v\n",
		c.Indicators.MACDFast, c.Indicators.MACDSlow, c.Indicators.MACDSignal,
		c.Indicators.KDJWindow, c.Indicators.KDJSmooth, c.Indicators.MAPeriods)
	fmt.Fprintf(w, "  Journal: %s\n", c.Journal.Type)
	if c.Cache.Enabled {
		fmt.Fprintf(w, "  Cache: redis %s (ttl %s)\n", c.Cache.RedisAddr, c.Cache.TTL)
	} else {
		fmt.Fprintln(w, "  Cache: disabled")
	}
	return nil
}
