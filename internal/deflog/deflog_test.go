package deflog

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capture redirects output into a buffer for the duration of a test.
func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(LevelTrace)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel(LevelTrace)
	})
	return &buf
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelTrace, "TRACE"},
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO "},
		{LevelWarn, "WARN "},
		{LevelError, "ERROR"},
		{Level(99), "?????"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.level.String())
	}
}

func TestEmitFormatsRecord(t *testing.T) {
	buf := capture(t)

	Info("count=%d name=%s", 3, "probe")

	assert.Equal(t, "INFO  count=3 name=probe\n", buf.String())
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t)
	SetLevel(LevelWarn)

	Trace("t")
	Debug("d")
	Info("i")
	Warn("w")
	Error("e")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "WARN "))
	assert.True(t, strings.HasPrefix(lines[1], "ERROR"))
}

func TestAllLevelsEmit(t *testing.T) {
	buf := capture(t)

	Trace("a")
	Debug("b")
	Info("c")
	Warn("d")
	Error("e")

	assert.Equal(t, 5, strings.Count(buf.String(), "\n"))
}

func TestOverlongRecordTruncated(t *testing.T) {
	buf := capture(t)

	Error("%s", strings.Repeat("x", 4*scratchSize))

	out := buf.String()
	assert.LessOrEqual(t, len(out), scratchSize)
	assert.True(t, strings.HasSuffix(out, "...\n"))
}
