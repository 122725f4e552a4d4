//go:build nostd

package format

import "github.com/retroctrl/platform-switch/internal/tinyfmt"

// Constrained binding: tinyfmt primitives with the same shape.
type (
	// Debug is the debug-representation capability.
	Debug = tinyfmt.GoStringer

	// Display is the display-representation capability.
	Display = tinyfmt.Stringer

	// State is the handle passed to custom formatting implementations.
	State = tinyfmt.State

	// Result is the outcome of a formatting operation.
	Result = tinyfmt.Result
)
