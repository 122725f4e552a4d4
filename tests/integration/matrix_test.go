package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retroctrl/platform-switch/internal/buildmatrix"
)

// runMatrix executes the given entries against this module.
func runMatrix(t *testing.T, entries []buildmatrix.Entry) *buildmatrix.Report {
	t.Helper()
	requireToolchain(t)

	root, err := FindProjectRoot()
	require.NoError(t, err)

	report, err := buildmatrix.NewRunner(root).Run(entries)
	require.NoError(t, err)
	require.Len(t, report.Results, len(entries))
	return report
}

func resultByName(t *testing.T, report *buildmatrix.Report, name string) buildmatrix.Result {
	t.Helper()
	for _, res := range report.Results {
		if res.Entry.Name == name {
			return res
		}
	}
	t.Fatalf("no result named %q", name)
	return buildmatrix.Result{}
}

// The full built-in matrix must behave as declared: every supported
// configuration builds, every invalid one is rejected by the compiler.
func TestDefaultMatrixEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("compiles the matrix; skipped in -short mode")
	}

	report := runMatrix(t, buildmatrix.Default())

	for _, res := range report.Results {
		assert.True(t, res.Passed(), "%s: %s", res.Entry.Name, res.Detail)
	}
	assert.NotEmpty(t, report.RunID)
}

// All three groups bound to their hosted alternatives; downstream calls
// to every facade symbol compile.
func TestAllHostedConfiguration(t *testing.T) {
	entries, err := buildmatrix.ByName(buildmatrix.Default(), []string{"hosted-all"})
	require.NoError(t, err)

	report := runMatrix(t, entries)
	res := resultByName(t, report, "hosted-all")
	assert.True(t, res.Passed(), res.Detail)
}

// Constrained logging, hosted formatting, error facade disabled: the
// log and fmt fixtures build, the error fixture must not.
func TestConstrainedLogWithDisabledErrors(t *testing.T) {
	entries, err := buildmatrix.ByName(buildmatrix.Default(),
		[]string{"constrained-log", "hosted-fmt", "error-facade-disabled"})
	require.NoError(t, err)

	report := runMatrix(t, entries)
	for _, res := range report.Results {
		assert.True(t, res.Passed(), "%s: %s", res.Entry.Name, res.Detail)
	}
}

// core_error without the unstable opt-in fails at compile time, and
// the diagnostic names the missing tag through the guard identifier.
func TestCoreErrorWithoutOptInFailsWithDiagnostic(t *testing.T) {
	requireToolchain(t)

	root, err := FindProjectRoot()
	require.NoError(t, err)

	entry := buildmatrix.Entry{
		Name:   "gate-check",
		Tags:   []string{"core_error"},
		Target: "tests/integration/testdata/useerr",
		// Expect success here so the runner surfaces the compiler
		// output for inspection.
	}
	report, err := buildmatrix.NewRunner(root).Run([]buildmatrix.Entry{entry})
	require.NoError(t, err)

	res := report.Results[0]
	require.False(t, res.Passed())
	assert.Contains(t, res.Detail, "coreErrorRequiresTheUnstableBuildTag")
}

// Conflicting error backends fail with the mutual-exclusion guard.
func TestExclusiveBackendsFailWithDiagnostic(t *testing.T) {
	requireToolchain(t)

	root, err := FindProjectRoot()
	require.NoError(t, err)

	entry := buildmatrix.Entry{
		Name:   "conflict-check",
		Tags:   []string{"std_error", "core_error"},
		Target: "tests/integration/testdata/useerr",
	}
	report, err := buildmatrix.NewRunner(root).Run([]buildmatrix.Entry{entry})
	require.NoError(t, err)

	res := report.Results[0]
	require.False(t, res.Passed())
	assert.Contains(t, res.Detail, "stdErrorAndCoreErrorBuildTagsAreMutuallyExclusive")
}
