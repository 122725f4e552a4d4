//go:build !nostd

package format

import "fmt"

// Hosted binding: standard fmt primitives.
type (
	// Debug is the debug-representation capability.
	Debug = fmt.GoStringer

	// Display is the display-representation capability.
	Display = fmt.Stringer

	// State is the handle passed to custom formatting implementations.
	State = fmt.State

	// Result is the outcome of a formatting operation.
	Result = error
)
