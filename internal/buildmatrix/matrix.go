// Package buildmatrix models and runs the supported build-configuration
// matrix for the facade packages. Each entry names a tag set, a
// downstream target package that references facade symbols, and the
// expected outcome; running an entry compiles the target with those
// tags and checks the result.
package buildmatrix

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/retroctrl/platform-switch/pkg/platformswitch"
)

// Entry validation errors.
var (
	ErrNameEmpty    = errors.New("entry name must not be empty")
	ErrTargetEmpty  = errors.New("entry target must not be empty")
	ErrUnknownTag   = errors.New("unknown build tag")
	ErrDuplicateTag = errors.New("duplicate build tag")
)

// Tag-combination errors. A default-matrix entry carrying one of these
// combinations is an intended build failure and is marked WantFail.
var (
	ErrExclusiveBackends = errors.New("std_error and core_error are mutually exclusive")
	ErrUnstableRequired  = errors.New("core_error requires the unstable tag")
)

// Entry is one build configuration to verify.
type Entry struct {
	Name     string   `json:"name" yaml:"name" mapstructure:"name"`
	Tags     []string `json:"tags,omitempty" yaml:"tags,omitempty" mapstructure:"tags"`
	Target   string   `json:"target" yaml:"target" mapstructure:"target"`
	WantFail bool     `json:"want_fail,omitempty" yaml:"want_fail,omitempty" mapstructure:"want_fail"`
}

// Validate checks that the entry is well-formed: named, targeted, and
// using only recognized tags. It does not judge the tag combination;
// invalid combinations are legitimate entries when WantFail is set.
func (e Entry) Validate() error {
	if e.Name == "" {
		return ErrNameEmpty
	}
	if e.Target == "" {
		return ErrTargetEmpty
	}
	seen := make(map[string]bool, len(e.Tags))
	for _, tag := range e.Tags {
		if !platformswitch.KnownTags[tag] {
			return fmt.Errorf("%w: %q", ErrUnknownTag, tag)
		}
		if seen[tag] {
			return fmt.Errorf("%w: %q", ErrDuplicateTag, tag)
		}
		seen[tag] = true
	}
	return nil
}

// TagConflict reports why tags is an invalid combination, or nil if it
// is valid. These are the same rules the guard files enforce at compile
// time.
func TagConflict(tags []string) error {
	set := make(map[string]bool, len(tags))
	for _, tag := range tags {
		set[tag] = true
	}
	if set[platformswitch.TagStdError] && set[platformswitch.TagCoreError] {
		return ErrExclusiveBackends
	}
	if set[platformswitch.TagCoreError] && !set[platformswitch.TagUnstable] {
		return ErrUnstableRequired
	}
	return nil
}

// TagString renders tags the way go build -tags expects them.
func (e Entry) TagString() string {
	return strings.Join(e.Tags, ",")
}

// Downstream fixture packages referenced by the default matrix. The
// testdata location keeps them out of ./... so unreferenced facade
// symbols are never resolved eagerly.
const (
	targetUseLog = "tests/integration/testdata/uselog"
	targetUseErr = "tests/integration/testdata/useerr"
	targetUseFmt = "tests/integration/testdata/usefmt"
	targetUseAll = "tests/integration/testdata/useall"
)

// Default returns the supported configuration matrix.
func Default() []Entry {
	return []Entry{
		// Every group bound to its hosted alternative.
		{Name: "hosted-all", Tags: []string{platformswitch.TagStdError}, Target: targetUseAll},
		// Default build: hosted logging, no tags at all.
		{Name: "hosted-log", Target: targetUseLog},
		{Name: "constrained-log", Tags: []string{platformswitch.TagDefmt}, Target: targetUseLog},
		{Name: "hosted-fmt", Target: targetUseFmt},
		{Name: "constrained-fmt", Tags: []string{platformswitch.TagNostd}, Target: targetUseFmt},
		{Name: "core-error", Tags: []string{platformswitch.TagCoreError, platformswitch.TagUnstable}, Target: targetUseErr},
		// Every group bound to its constrained alternative.
		{Name: "constrained-all", Tags: []string{
			platformswitch.TagDefmt,
			platformswitch.TagCoreError,
			platformswitch.TagUnstable,
			platformswitch.TagNostd,
		}, Target: targetUseAll},
		// Constrained logging with hosted formatting and the error
		// facade disabled: referencing an error symbol must not build.
		{Name: "error-facade-disabled", Tags: []string{platformswitch.TagDefmt}, Target: targetUseErr, WantFail: true},
		// Guard-enforced failures.
		{Name: "core-error-without-unstable", Tags: []string{platformswitch.TagCoreError}, Target: targetUseErr, WantFail: true},
		{Name: "exclusive-error-backends", Tags: []string{platformswitch.TagStdError, platformswitch.TagCoreError}, Target: targetUseErr, WantFail: true},
	}
}

// ByName returns the entries whose names appear in names, in matrix
// order. Unknown names produce an error.
func ByName(entries []Entry, names []string) ([]Entry, error) {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	var out []Entry
	for _, e := range entries {
		if want[e.Name] {
			out = append(out, e)
			delete(want, e.Name)
		}
	}
	if len(want) > 0 {
		missing := make([]string, 0, len(want))
		for n := range want {
			missing = append(missing, n)
		}
		sort.Strings(missing)
		return nil, fmt.Errorf("unknown matrix entries: %s", strings.Join(missing, ", "))
	}
	return out, nil
}
