//go:build defmt

package log

import "github.com/retroctrl/platform-switch/internal/deflog"

// Constrained binding: every entry point forwards verbatim to deflog.
// Configure the sink and level through deflog.SetOutput / SetLevel
// during target bring-up.

// Trace logs a formatted message at trace level.
func Trace(format string, args ...any) { deflog.Trace(format, args...) }

// Debug logs a formatted message at debug level.
func Debug(format string, args ...any) { deflog.Debug(format, args...) }

// Info logs a formatted message at info level.
func Info(format string, args ...any) { deflog.Info(format, args...) }

// Warn logs a formatted message at warn level.
func Warn(format string, args ...any) { deflog.Warn(format, args...) }

// Error logs a formatted message at error level.
func Error(format string, args ...any) { deflog.Error(format, args...) }
