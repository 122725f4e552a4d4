//go:build std_error && core_error

package errdesc

// The hosted and constrained error backends are mutually exclusive.
// This reference is deliberately undefined so the build stops here with
// a diagnostic naming the bad tag combination.
var _ = stdErrorAndCoreErrorBuildTagsAreMutuallyExclusive
