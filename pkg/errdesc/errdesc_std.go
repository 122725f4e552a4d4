//go:build std_error && !core_error

package errdesc

import (
	"errors"
	"fmt"
)

// Hosted binding: descriptions come from the standard errors and fmt
// machinery, unchanged.

// New returns an error with the given description.
func New(text string) error { return errors.New(text) }

// Errorf returns an error with a formatted description. A single %w
// operand wraps its error for Unwrap/Is/As.
func Errorf(format string, args ...any) error { return fmt.Errorf(format, args...) }

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's chain of type T and stores it in
// target.
func As[T error](err error, target *T) bool {
	if target == nil {
		return false
	}
	return errors.As(err, target)
}

// Unwrap returns the error wrapped by err, if any.
func Unwrap(err error) error { return errors.Unwrap(err) }
