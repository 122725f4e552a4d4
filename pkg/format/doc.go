// Package format is the formatting-trait facade.
//
// It exposes four stable type aliases used when implementing custom
// representations: Display (human-readable), Debug (developer-facing),
// State (the handle passed to custom formatting implementations), and
// Result (success-or-failure of a formatting operation).
//
// Without build tags the aliases bind to the standard fmt primitives.
// Building with -tags nostd binds them to the constrained equivalents
// in internal/tinyfmt instead. All four switch together; downstream
// code compiles unchanged either way.
package format
