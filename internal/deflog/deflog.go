// Package deflog is a leveled logging backend for constrained targets.
// Records are formatted into a fixed-size scratch buffer with tinyfmt
// and written in a single call, so the steady-state logging path does
// not touch the heap. Concurrency control, rotation, and sinks beyond a
// single writer are deliberately absent; a constrained target wires its
// serial/console writer once at startup.
package deflog

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/retroctrl/platform-switch/internal/tinyfmt"
)

// Level is the severity of a log record.
type Level int8

// Severity levels, lowest first.
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the fixed-width tag emitted in front of each record.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO "
	case LevelWarn:
		return "WARN "
	case LevelError:
		return "ERROR"
	default:
		return "?????"
	}
}

// scratchSize bounds a single record. Longer records are truncated with
// a trailing marker rather than allocated.
const scratchSize = 256

var (
	output   io.Writer = os.Stderr
	minLevel atomic.Int32
)

// SetOutput replaces the record sink. Call once during target bring-up,
// before logging starts.
func SetOutput(w io.Writer) {
	output = w
}

// SetLevel sets the minimum level that produces output.
func SetLevel(l Level) {
	minLevel.Store(int32(l))
}

// MinLevel returns the current minimum level.
func MinLevel() Level {
	return Level(minLevel.Load())
}

// Emit formats and writes one record if level passes the filter.
func Emit(level Level, format string, args ...any) {
	if level < MinLevel() {
		return
	}
	var scratch [scratchSize]byte
	buf := scratch[:0]
	buf = append(buf, level.String()...)
	buf = append(buf, ' ')
	buf = tinyfmt.AppendFormat(buf, format, args...)
	if len(buf) > scratchSize-1 {
		buf = buf[:scratchSize-4]
		buf = append(buf, "..."...)
	}
	buf = append(buf, '\n')
	output.Write(buf)
}

// Trace emits a record at LevelTrace.
func Trace(format string, args ...any) { Emit(LevelTrace, format, args...) }

// Debug emits a record at LevelDebug.
func Debug(format string, args ...any) { Emit(LevelDebug, format, args...) }

// Info emits a record at LevelInfo.
func Info(format string, args ...any) { Emit(LevelInfo, format, args...) }

// Warn emits a record at LevelWarn.
func Warn(format string, args ...any) { Emit(LevelWarn, format, args...) }

// Error emits a record at LevelError.
func Error(format string, args ...any) { Emit(LevelError, format, args...) }
