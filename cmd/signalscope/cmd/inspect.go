package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/signalscope/indicators"
	"github.com/rustyeddy/signalscope/patterns"
	"github.com/rustyeddy/signalscope/report"
	"github.com/rustyeddy/signalscope/signals"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns <bars.csv>",
	Short: "List candlestick patterns at one bar",
	Long: `Run every pattern check at a bar position. Negative positions count from
the end; the default -1 is the last bar. Matches below
patterns.min_confidence are hidden.

Examples:
  signalscope patterns bars.csv
  signalscope patterns bars.csv --at -3`,
	Args: cobra.ExactArgs(1),
	RunE: runPatterns,
}

var indicatorsCmd = &cobra.Command{
	Use:   "indicators <bars.csv>",
	Short: "Print the latest indicator summary",
	Args:  cobra.ExactArgs(1),
	RunE:  runIndicators,
}

var resonanceCmd = &cobra.Command{
	Use:   "resonance <bars.csv>",
	Short: "Show whether MACD, KDJ and moving averages agree",
	Args:  cobra.ExactArgs(1),
	RunE:  runResonance,
}

var (
	patternsAt int
	inspectJSON bool
)

func init() {
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(indicatorsCmd)
	rootCmd.AddCommand(resonanceCmd)

	patternsCmd.Flags().IntVar(&patternsAt, "at", -1, "bar position to scan")
	for _, c := range []*cobra.Command{patternsCmd, indicatorsCmd, resonanceCmd} {
		c.Flags().BoolVar(&inspectJSON, "json", false, "print JSON")
	}
}

func runPatterns(cmd *cobra.Command, args []string) error {
	s, err := loadSeries(args[0])
	if err != nil {
		return err
	}

	found := []patterns.Result{}
	for _, p := range patterns.New(s).ScanAll(patternsAt) {
		if p.Confidence >= cfg.Patterns.MinConfidence {
			found = append(found, p)
		}
	}

	if inspectJSON {
		return writeJSON(cmd.OutOrStdout(), found)
	}
	fmt.Fprint(cmd.OutOrStdout(), report.Patterns(found))
	return nil
}

func runIndicators(cmd *cobra.Command, args []string) error {
	s, err := loadSeries(args[0])
	if err != nil {
		return err
	}
	eng, err := indicators.New(s, cfg.Indicators.Options()...)
	if err != nil {
		return err
	}

	sum := eng.Summary()
	if inspectJSON {
		return writeJSON(cmd.OutOrStdout(), sum)
	}
	fmt.Fprint(cmd.OutOrStdout(), report.Technical(sum))
	return nil
}

func runResonance(cmd *cobra.Command, args []string) error {
	s, err := loadSeries(args[0])
	if err != nil {
		return err
	}
	det, err := signals.New(s, signals.WithIndicators(cfg.Indicators.Options()...))
	if err != nil {
		return err
	}

	st := det.Resonance()
	if inspectJSON {
		return writeJSON(cmd.OutOrStdout(), st)
	}
	fmt.Fprint(cmd.OutOrStdout(), report.Resonance(st))
	return nil
}
