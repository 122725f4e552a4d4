//go:build core_error && !std_error && !unstable

package errdesc

// The constrained error backend is an explicit opt-in. This reference
// is deliberately undefined so the build stops here with a diagnostic
// naming the missing tag.
var _ = coreErrorRequiresTheUnstableBuildTag
