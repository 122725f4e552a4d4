// List command prints the configuration matrix.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var flagListYAML bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the build-configuration matrix",
	Long: `List prints the built-in configuration matrix plus any entries
declared in matrix.yaml. Entries marked want-fail are configurations
that must refuse to compile.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&flagListYAML, "yaml", false, "output as YAML (matrix.yaml entry format)")
}

func runList(cmd *cobra.Command, args []string) error {
	entries := matrixEntries()

	switch {
	case flagJSON:
		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal matrix: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	case flagListYAML:
		out, err := yaml.Marshal(map[string]any{cfgKeyEntries: entries})
		if err != nil {
			return fmt.Errorf("marshal matrix: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
	default:
		for _, e := range entries {
			tags := e.TagString()
			if tags == "" {
				tags = "(none)"
			}
			mark := " "
			if e.WantFail {
				mark = "!"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %-30s tags=%-40s %s\n", mark, e.Name, tags, e.Target)
		}
	}
	return nil
}
