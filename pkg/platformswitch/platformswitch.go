// Package platformswitch declares the build-tag contract shared by the
// facade packages and the switchcheck verifier.
package platformswitch

// Version is the module version reported by switchcheck.
const Version = "0.3.0"

// Build tags recognized by the facade packages. Each facade group reads
// its own subset; unknown tags are rejected by the matrix validator.
const (
	// TagStdError binds pkg/errdesc to the hosted backend.
	TagStdError = "std_error"

	// TagCoreError binds pkg/errdesc to the constrained backend.
	// Mutually exclusive with TagStdError and only valid together
	// with TagUnstable.
	TagCoreError = "core_error"

	// TagUnstable is the explicit opt-in required by TagCoreError.
	TagUnstable = "unstable"

	// TagDefmt binds pkg/log to the constrained backend. Absent, the
	// hosted backend is used.
	TagDefmt = "defmt"

	// TagNostd binds pkg/format to the constrained backend. Absent,
	// the hosted backend is used.
	TagNostd = "nostd"
)

// KnownTags is the set of tags the matrix validator accepts.
var KnownTags = map[string]bool{
	TagStdError:  true,
	TagCoreError: true,
	TagUnstable:  true,
	TagDefmt:     true,
	TagNostd:     true,
}
