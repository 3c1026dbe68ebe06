package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/signalscope/internal/analysis"
	"github.com/rustyeddy/signalscope/metrics"
	"github.com/rustyeddy/signalscope/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <bars.csv>",
	Short: "Score the latest bar of a CSV file",
	Long: `Compute indicators and patterns for the bars in a CSV file and print the
composite signal for the last bar.

The file needs a header with open, high, low, close and volume columns
(case-insensitive; vol and trade_date are accepted). Dates may be
YYYY-MM-DD or YYYYMMDD.

Examples:
  signalscope analyze 600519.csv
  signalscope analyze bars.csv --symbol 600519 --journal
  signalscope analyze bars.csv --json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

var (
	analyzeSymbol  string
	analyzeJSON    bool
	analyzeJournal bool
)

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeSymbol, "symbol", "s", "", "symbol to record (default: file name)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the full outcome as JSON")
	analyzeCmd.Flags().BoolVarP(&analyzeJournal, "journal", "j", false, "record the signal in the configured journal")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	s, err := loadSeries(args[0])
	if err != nil {
		return err
	}

	c, closeCache, err := openCache(cfg.Cache)
	if err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	defer closeCache()

	svc := &analysis.Service{
		Cache:       c,
		Metrics:     metrics.New(),
		Options:     cfg.Indicators.Options(),
		Fingerprint: cfg.Indicators.Fingerprint(),
		Log:         log.Logger,
	}

	if analyzeJournal {
		j, err := openJournal(cfg.Journal)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		if j != nil {
			defer j.Close()
			svc.Journal = j
		}
	}

	out, err := svc.Analyze(cmd.Context(), symbolFor(analyzeSymbol, args[0]), s)
	if err != nil {
		return err
	}

	if cfg.Metrics.Textfile != "" {
		if err := svc.Metrics.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			log.Warn().Err(err).Msg("metrics not written")
		}
	}

	w := cmd.OutOrStdout()
	if analyzeJSON {
		return writeJSON(w, out)
	}

	fmt.Fprintln(w, report.Styled(out.Symbol, out.Signal))
	fmt.Fprintln(w)
	fmt.Fprint(w, report.Technical(out.Signal.Indicators))
	fmt.Fprintln(w)
	fmt.Fprint(w, report.Signal(out.Signal))
	fmt.Fprintln(w)
	fmt.Fprint(w, report.Resonance(out.Resonance))
	if out.RecordID != "" {
		fmt.Fprintf(w, "\n✓ Recorded %s in %s journal\n", out.RecordID, cfg.Journal.Type)
	}
	return nil
}
