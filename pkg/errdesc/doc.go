// Package errdesc is the error-description facade.
//
// It exposes one capability: attaching a human-readable description to
// an error value (New, Errorf with %w wrapping, and the Is/As/Unwrap
// inspection helpers). Which backend provides the capability is decided
// by build tags:
//
//   - -tags std_error binds the hosted backend (standard errors/fmt).
//   - -tags "core_error unstable" binds the constrained backend, which
//     avoids reflection and pointer allocation. core_error without the
//     unstable opt-in fails the build.
//   - with neither tag the package compiles empty: any downstream
//     reference to a facade symbol is an unresolved-reference compile
//     error, which is the intended way to surface an unconfigured
//     error facade.
//
// std_error and core_error are mutually exclusive; setting both fails
// the build.
package errdesc
