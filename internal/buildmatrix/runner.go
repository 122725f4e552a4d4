package buildmatrix

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/magefile/mage/sh"
)

// Outcome values recorded per entry.
const (
	OutcomePass = "pass"
	OutcomeFail = "fail"
)

// Result is the outcome of one matrix entry.
type Result struct {
	Entry   Entry         `json:"entry"`
	Outcome string        `json:"outcome"`
	Detail  string        `json:"detail,omitempty"`
	Elapsed time.Duration `json:"elapsed"`
}

// Passed reports whether the entry behaved as expected.
func (r Result) Passed() bool { return r.Outcome == OutcomePass }

// Report is the outcome of a full matrix run.
type Report struct {
	RunID     string    `json:"run_id"`
	StartedAt time.Time `json:"started_at"`
	Results   []Result  `json:"results"`
}

// Passed reports whether every entry behaved as expected.
func (r *Report) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed() {
			return false
		}
	}
	return true
}

// Counts returns the number of passing entries and the total.
func (r *Report) Counts() (passed, total int) {
	for _, res := range r.Results {
		if res.Passed() {
			passed++
		}
	}
	return passed, len(r.Results)
}

// Runner compiles matrix entries with the Go toolchain.
type Runner struct {
	// Root is the module root; entry targets are resolved against it.
	Root string
	// GoBin is the toolchain binary, "go" unless overridden.
	GoBin string
}

// NewRunner returns a Runner rooted at root.
func NewRunner(root string) *Runner {
	return &Runner{Root: root, GoBin: "go"}
}

// Run executes each entry and collects a report. An entry that fails
// validation aborts the run; a compilation mismatch does not, it is
// recorded and the remaining entries still run.
func (r *Runner) Run(entries []Entry) (*Report, error) {
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("entry %q: %w", e.Name, err)
		}
	}

	// Build outputs go to a scratch dir so main-package artifacts never
	// land in the working tree.
	outDir, err := os.MkdirTemp("", "switchcheck-*")
	if err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}
	defer os.RemoveAll(outDir)

	report := &Report{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}
	for _, e := range entries {
		report.Results = append(report.Results, r.runEntry(e, outDir))
	}
	return report, nil
}

func (r *Runner) runEntry(e Entry, outDir string) Result {
	args := []string{"build", "-o", filepath.Join(outDir, e.Name)}
	if tags := e.TagString(); tags != "" {
		args = append(args, "-tags", tags)
	}
	args = append(args, filepath.Join(r.Root, filepath.FromSlash(e.Target)))

	start := time.Now()
	var stdout, stderr bytes.Buffer
	_, err := sh.Exec(nil, &stdout, &stderr, r.GoBin, args...)
	elapsed := time.Since(start)

	res := Result{Entry: e, Outcome: OutcomePass, Elapsed: elapsed}
	failed := err != nil
	if failed != e.WantFail {
		res.Outcome = OutcomeFail
		if failed {
			res.Detail = firstLines(stderr.String(), 20)
		} else {
			res.Detail = "build succeeded but the configuration is expected to fail"
		}
	}
	return res
}

// firstLines truncates compiler output to at most n lines.
func firstLines(s string, n int) string {
	out := s
	for i, seen := 0, 0; i < len(s); i++ {
		if s[i] == '\n' {
			seen++
			if seen == n {
				out = s[:i] + "\n..."
				break
			}
		}
	}
	return out
}
