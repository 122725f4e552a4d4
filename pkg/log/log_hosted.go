//go:build !defmt

package log

import zlog "github.com/rs/zerolog/log"

// Hosted binding: every entry point forwards verbatim to the zerolog
// global logger. Configure sinks and levels through zerolog itself
// (zlog.Logger, zerolog.SetGlobalLevel).

// Trace logs a formatted message at trace level.
func Trace(format string, args ...any) { zlog.Trace().Msgf(format, args...) }

// Debug logs a formatted message at debug level.
func Debug(format string, args ...any) { zlog.Debug().Msgf(format, args...) }

// Info logs a formatted message at info level.
func Info(format string, args ...any) { zlog.Info().Msgf(format, args...) }

// Warn logs a formatted message at warn level.
func Warn(format string, args ...any) { zlog.Warn().Msgf(format, args...) }

// Error logs a formatted message at error level.
func Error(format string, args ...any) { zlog.Error().Msgf(format, args...) }
