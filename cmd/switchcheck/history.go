// History command lists recorded verification runs.
package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/retroctrl/platform-switch/internal/buildmatrix"
	"github.com/retroctrl/platform-switch/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "Show recorded verification runs",
	Long: `History lists recorded verification runs, newest first. With a
run ID argument it shows that run's per-entry outcomes instead.
Runs are recorded by "switchcheck verify --record".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	dataDir, err := resolveDataDir()
	if err != nil {
		return err
	}

	store := history.NewStore()
	if err := store.Open(filepath.Join(dataDir, "history.db")); err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()

	if len(args) == 1 {
		return printRunResults(cmd, store, args[0])
	}
	return printRuns(cmd, store)
}

func printRuns(cmd *cobra.Command, store *history.Store) error {
	runs, err := store.Runs()
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}

	if flagJSON {
		out, err := json.MarshalIndent(runs, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal runs: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no recorded runs")
		return nil
	}
	for _, r := range runs {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %d/%d passed\n",
			r.RunID, r.StartedAt.Format("2006-01-02 15:04:05"), r.Passed, r.Total)
	}
	return nil
}

func printRunResults(cmd *cobra.Command, store *history.Store, runID string) error {
	results, err := store.Results(runID)
	if err != nil {
		return err
	}

	if flagJSON {
		out, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal results: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	for _, r := range results {
		status := "ok  "
		if r.Outcome != buildmatrix.OutcomePass {
			status = "FAIL"
		}
		tags := r.Tags
		if tags == "" {
			tags = "(none)"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %-30s tags=%s\n", status, r.EntryName, tags)
		if r.Detail != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "     %s\n", r.Detail)
		}
	}
	return nil
}
