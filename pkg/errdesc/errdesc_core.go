//go:build core_error && !std_error && unstable

package errdesc

import "github.com/retroctrl/platform-switch/internal/tinyfmt"

// Constrained binding: reflection-free equivalents of the hosted
// surface. New is allocation-free (a string-typed error, no pointer),
// Errorf formats through tinyfmt, and the inspection helpers walk the
// wrap chain with plain type assertions.

// errorString is a description-only error.
type errorString string

func (e errorString) Error() string { return string(e) }

// wrapError carries a formatted description plus the single error
// wrapped via %w.
type wrapError struct {
	msg string
	err error
}

func (e *wrapError) Error() string { return e.msg }
func (e *wrapError) Unwrap() error { return e.err }

// New returns an error with the given description. Unlike the hosted
// backend, two errors with identical descriptions compare equal.
func New(text string) error { return errorString(text) }

// Errorf returns an error with a formatted description. A single %w
// operand wraps its error for Unwrap/Is/As.
func Errorf(format string, args ...any) error {
	msg := tinyfmt.Format(format, args...)
	if wrapped := wrapOperand(format, args); wrapped != nil {
		return &wrapError{msg: msg, err: wrapped}
	}
	return errorString(msg)
}

// wrapOperand returns the operand of the first %w verb, if it is an
// error.
func wrapOperand(format string, args []any) error {
	arg := 0
	for i := 0; i < len(format)-1; i++ {
		if format[i] != '%' {
			continue
		}
		i++
		if format[i] == '%' {
			continue
		}
		if arg >= len(args) {
			return nil
		}
		if format[i] == 'w' {
			if err, ok := args[arg].(error); ok {
				return err
			}
			return nil
		}
		arg++
	}
	return nil
}

// Is reports whether any error in err's chain matches target. The
// target must be comparable or provide its own Is method.
func Is(err, target error) bool {
	if target == nil {
		return err == nil
	}
	for err != nil {
		if err == target {
			return true
		}
		if x, ok := err.(interface{ Is(error) bool }); ok && x.Is(target) {
			return true
		}
		err = Unwrap(err)
	}
	return false
}

// As finds the first error in err's chain of type T and stores it in
// target.
func As[T error](err error, target *T) bool {
	if target == nil {
		return false
	}
	for err != nil {
		if t, ok := err.(T); ok {
			*target = t
			return true
		}
		if x, ok := err.(interface{ As(any) bool }); ok && x.As(target) {
			return true
		}
		err = Unwrap(err)
	}
	return false
}

// Unwrap returns the error wrapped by err, if any.
func Unwrap(err error) error {
	u, ok := err.(interface{ Unwrap() error })
	if !ok {
		return nil
	}
	return u.Unwrap()
}
