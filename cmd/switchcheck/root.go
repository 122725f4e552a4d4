// Root command for the switchcheck CLI.
package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/retroctrl/platform-switch/internal/buildmatrix"
	"github.com/retroctrl/platform-switch/internal/paths"
	"github.com/retroctrl/platform-switch/pkg/platformswitch"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagRoot      string
	flagJSON      bool
)

// Values loaded from matrix.yaml by PersistentPreRunE so all
// subcommands can use them.
var (
	configDataDir string
	configEntries []buildmatrix.Entry
)

var rootCmd = &cobra.Command{
	Use:          "switchcheck",
	Short:        "Verify platform-switch build configurations",
	Version:      platformswitch.Version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configEntries, err = extraEntries(cfg)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "history database directory (default: $(CWD)/.switchcheck-db)")
	rootCmd.PersistentFlags().StringVar(&flagRoot, "module-root", "", "module root to verify (default: nearest go.mod upward from CWD)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(historyCmd)
}

// matrixEntries returns the built-in matrix plus entries declared in
// matrix.yaml.
func matrixEntries() []buildmatrix.Entry {
	return append(buildmatrix.Default(), configEntries...)
}

// resolveConfigDir returns the configuration directory following the
// precedence flag > env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir returns the history directory following the precedence
// flag > matrix.yaml data_dir > env > CWD default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// moduleRoot returns the root of the module under verification: the
// --module-root flag, or the nearest directory upward from CWD that
// holds a go.mod.
func moduleRoot() (string, error) {
	if flagRoot != "" {
		return filepath.Abs(flagRoot)
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}
