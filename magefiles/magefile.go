//go:build mage

// Package main provides build targets for platform-switch using Mage.
//
// Usage:
//
//	mage build           Compile the switchcheck binary to bin/
//	mage test            Run all tests (unit + integration)
//	mage testUnit        Run only unit tests (exclude integration)
//	mage testIntegration Run only integration tests (builds first)
//	mage matrix          Run the build-configuration matrix
//	mage lint            Run golangci-lint
//	mage clean           Remove build artifacts
//	mage install         Install switchcheck to GOPATH/bin
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"github.com/retroctrl/platform-switch/internal/buildmatrix"
)

const (
	binGo      = "go"
	binaryName = "switchcheck"
	binaryDir  = "bin"
	cmdDir     = "./cmd/switchcheck"
)

// Build compiles the switchcheck binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests (unit and integration).
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// TestUnit runs only unit tests, excluding the tests/ directory.
func TestUnit() error {
	pkgs, err := sh.Output(binGo, "list", "./...")
	if err != nil {
		return err
	}
	var unitPkgs []string
	for pkg := range strings.SplitSeq(pkgs, "\n") {
		if pkg != "" && !strings.Contains(pkg, "/tests/") && !strings.HasSuffix(pkg, "/tests") {
			unitPkgs = append(unitPkgs, pkg)
		}
	}
	if len(unitPkgs) == 0 {
		fmt.Println("No unit test packages found.")
		return nil
	}
	args := append([]string{"test"}, unitPkgs...)
	return sh.RunV(binGo, args...)
}

// TestIntegration builds first, then runs only integration tests.
func TestIntegration() error {
	mg.Deps(Build)
	return sh.RunV(binGo, "test", "./tests/...")
}

// Matrix runs the full build-configuration matrix and prints a report.
func Matrix() error {
	root, err := os.Getwd()
	if err != nil {
		return err
	}

	report, err := buildmatrix.NewRunner(root).Run(buildmatrix.Default())
	if err != nil {
		return err
	}

	for _, res := range report.Results {
		status := "ok  "
		if !res.Passed() {
			status = "FAIL"
		}
		fmt.Printf("%s %-30s tags=%s\n", status, res.Entry.Name, res.Entry.TagString())
		if res.Detail != "" {
			fmt.Printf("     %s\n", res.Detail)
		}
	}

	passed, total := report.Counts()
	fmt.Printf("%d/%d configurations behaved as expected\n", passed, total)
	if passed != total {
		return fmt.Errorf("matrix verification failed")
	}
	return nil
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}
