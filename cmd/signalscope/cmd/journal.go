package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/signalscope/journal"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query the signal journal",
	Long: `Query and display signal records from the SQLite journal.

Subcommands:
  list  - Newest signals, optionally for one symbol
  show  - Details of a specific signal by ID
  day   - Signals for bars dated on a specific day

Examples:
  signalscope journal list --symbol 600519 --limit 5
  signalscope journal show <signal-id>
  signalscope journal day 2024-01-15`,
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the newest signals",
	Args:  cobra.NoArgs,
	RunE:  runJournalList,
}

var journalShowCmd = &cobra.Command{
	Use:   "show <signal-id>",
	Short: "Get details of a specific signal",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalShow,
}

var journalDayCmd = &cobra.Command{
	Use:   "day <YYYY-MM-DD>",
	Short: "List signals for bars dated on a specific day",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalDay,
}

var (
	journalDBPath string
	journalSymbol string
	journalLimit  int
)

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalShowCmd)
	journalCmd.AddCommand(journalDayCmd)

	journalCmd.PersistentFlags().StringVarP(&journalDBPath, "db", "d", "", "path to SQLite journal DB (default: journal.db_path)")
	journalListCmd.Flags().StringVarP(&journalSymbol, "symbol", "s", "", "only this symbol")
	journalListCmd.Flags().IntVarP(&journalLimit, "limit", "n", 20, "maximum records, 0 for all")
}

func openSQLite() (*journal.SQLite, error) {
	path := journalDBPath
	if path == "" {
		path = cfg.Journal.DBPath
	}
	if path == "" {
		return nil, fmt.Errorf("no journal database: set --db or journal.db_path")
	}
	j, err := journal.NewSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return j, nil
}

func printRecords(cmd *cobra.Command, recs []journal.SignalRecord) {
	if len(recs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "(no signals)")
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatSignalsOrg(recs))
}

func runJournalList(cmd *cobra.Command, args []string) error {
	j, err := openSQLite()
	if err != nil {
		return err
	}
	defer j.Close()

	recs, err := j.ListSignals(journalSymbol, journalLimit)
	if err != nil {
		return fmt.Errorf("query signals: %w", err)
	}
	printRecords(cmd, recs)
	return nil
}

func runJournalShow(cmd *cobra.Command, args []string) error {
	j, err := openSQLite()
	if err != nil {
		return err
	}
	defer j.Close()

	rec, err := j.GetSignal(args[0])
	if err != nil {
		return fmt.Errorf("get signal: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatSignalOrg(rec))
	return nil
}

func runJournalDay(cmd *cobra.Command, args []string) error {
	j, err := openSQLite()
	if err != nil {
		return err
	}
	defer j.Close()

	start, end, err := dayBounds(time.UTC, args[0])
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}

	recs, err := j.ListSignalsBetween(start, end)
	if err != nil {
		return fmt.Errorf("query signals: %w", err)
	}
	printRecords(cmd, recs)
	return nil
}

// dayBounds returns [day, day+1) in loc. Bar dates are stored as UTC
// midnight, so callers pass time.UTC.
func dayBounds(loc *time.Location, day string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1), nil
}
