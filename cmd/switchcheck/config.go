// Config loading for the switchcheck CLI.
package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/retroctrl/platform-switch/internal/buildmatrix"
)

const (
	configFileName = "matrix"
	configFileType = "yaml"
	configFileExt  = "matrix.yaml"

	// Config keys.
	cfgKeyDataDir = "data_dir"
	cfgKeyEntries = "entries"
)

// defaultConfigYAML is the content written to matrix.yaml on init.
const defaultConfigYAML = `# switchcheck configuration
#
# The built-in matrix always runs; entries listed here are verified in
# addition to it. Recognized tags: std_error, core_error, unstable,
# defmt, nostd.

# History database directory (optional; overridable by --data-dir)
# data_dir:

# Extra matrix entries (optional)
# entries:
#   - name: my-downstream
#     tags: [defmt, nostd]
#     target: ./cmd/firmware
#     want_fail: false
entries: []
`

// loadConfig reads matrix.yaml from the resolved config directory using
// Viper. A missing matrix.yaml is not an error; the built-in matrix
// still applies.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// extraEntries decodes and validates the entries key.
func extraEntries(v *viper.Viper) ([]buildmatrix.Entry, error) {
	var entries []buildmatrix.Entry
	if err := v.UnmarshalKey(cfgKeyEntries, &entries); err != nil {
		return nil, fmt.Errorf("decode config entries: %w", err)
	}
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("config entry %q: %w", e.Name, err)
		}
	}
	return entries, nil
}
