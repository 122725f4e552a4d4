//go:build !defmt

package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// swapGlobal points the zerolog global logger at a buffer so the
// facade's forwarding can be observed.
func swapGlobal(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := zlog.Logger
	oldLevel := zerolog.GlobalLevel()
	zlog.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() {
		zlog.Logger = old
		zerolog.SetGlobalLevel(oldLevel)
	})
	return &buf
}

func TestEntryPointsForwardToZerolog(t *testing.T) {
	tests := []struct {
		name  string
		call  func(string, ...any)
		level string
	}{
		{name: "trace", call: Trace, level: "trace"},
		{name: "debug", call: Debug, level: "debug"},
		{name: "info", call: Info, level: "info"},
		{name: "warn", call: Warn, level: "warn"},
		{name: "error", call: Error, level: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := swapGlobal(t)

			tt.call("n=%d s=%s", 7, "x")

			line := buf.String()
			require.NotEmpty(t, line)
			assert.Contains(t, line, `"level":"`+tt.level+`"`)
			assert.Contains(t, line, `"message":"n=7 s=x"`)
		})
	}
}

func TestFormatArgumentsPassVerbatim(t *testing.T) {
	buf := swapGlobal(t)

	Info("%s %s %d", "a", "b", 3)

	assert.True(t, strings.Contains(buf.String(), `"message":"a b 3"`))
}
