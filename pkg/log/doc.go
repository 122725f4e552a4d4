// Package log is the leveled-logging facade.
//
// It exposes five entry points (Trace, Debug, Info, Warn, Error) that
// accept a format string and positional arguments and forward to
// whichever backend the build selected. All five bind to the same
// backend; the choice is made per build, never per call.
//
// Without build tags the hosted backend (zerolog's global logger) is
// used. Building with -tags defmt binds all five entry points to the
// constrained backend instead, which formats into a fixed scratch
// buffer and writes a single line per record.
//
// The facade adds no behavior of its own: record formatting, sinks,
// and thread-safety are entirely the selected backend's.
package log
