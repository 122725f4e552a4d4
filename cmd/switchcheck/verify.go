// Verify command runs the build matrix against the module.
package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/retroctrl/platform-switch/internal/buildmatrix"
	"github.com/retroctrl/platform-switch/internal/history"
	"github.com/retroctrl/platform-switch/pkg/log"
)

var flagRecord bool

var verifyCmd = &cobra.Command{
	Use:   "verify [entry...]",
	Short: "Compile every matrix configuration and check each outcome",
	Long: `Verify compiles each matrix entry's target with the entry's build
tags and checks the outcome against expectations: entries must build,
want-fail entries must be rejected by the compiler.

With no arguments the full matrix runs; otherwise only the named
entries run.`,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().BoolVar(&flagRecord, "record", false, "record the report in the history database")
}

func runVerify(cmd *cobra.Command, args []string) error {
	entries := matrixEntries()
	if len(args) > 0 {
		var err error
		entries, err = buildmatrix.ByName(entries, args)
		if err != nil {
			return err
		}
	}

	root, err := moduleRoot()
	if err != nil {
		return fmt.Errorf("locate module root: %w", err)
	}

	log.Info("verifying %d configurations in %s", len(entries), root)

	report, err := buildmatrix.NewRunner(root).Run(entries)
	if err != nil {
		return fmt.Errorf("run matrix: %w", err)
	}

	if flagJSON {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	} else {
		printReport(cmd, report)
	}

	if flagRecord {
		if err := recordReport(report); err != nil {
			return fmt.Errorf("record report: %w", err)
		}
		log.Info("recorded run %s", report.RunID)
	}

	if !report.Passed() {
		passed, total := report.Counts()
		return fmt.Errorf("verification failed: %d/%d configurations misbehaved", total-passed, total)
	}
	return nil
}

func printReport(cmd *cobra.Command, report *buildmatrix.Report) {
	for _, res := range report.Results {
		status := "ok  "
		if !res.Passed() {
			status = "FAIL"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %-30s tags=%s\n", status, res.Entry.Name, res.Entry.TagString())
		if res.Detail != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "     %s\n", res.Detail)
		}
	}
	passed, total := report.Counts()
	fmt.Fprintf(cmd.OutOrStdout(), "%d/%d configurations behaved as expected\n", passed, total)
}

func recordReport(report *buildmatrix.Report) error {
	dataDir, err := resolveDataDir()
	if err != nil {
		return err
	}

	store := history.NewStore()
	if err := store.Open(filepath.Join(dataDir, "history.db")); err != nil {
		return err
	}
	defer store.Close()

	return store.RecordRun(report)
}
