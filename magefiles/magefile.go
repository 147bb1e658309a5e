//go:build mage

// Package main contains Mage build targets for go-docpdf.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binDir = "bin"

// commands lists the binaries built from ./cmd.
var commands = []string{"src2pdf", "md2pdf"}

// Default runs when mage is invoked without a target.
var Default = Build

// Build compiles both CLIs into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	for _, name := range commands {
		out := filepath.Join(binDir, name)
		ldflags := "-s -w -X main.Version=" + version
		if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, "./cmd/"+name); err != nil {
			return fmt.Errorf("go build %s: %w", name, err)
		}
		fmt.Printf("Built %s\n", out)
	}
	return nil
}

// Test runs the unit tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Integration runs the tests that drive a real headless Chrome.
func Integration() error {
	return sh.RunV("go", "test", "-tags", "integration", "-count=1", "./...")
}

// Bench runs the pipeline benchmarks.
func Bench() error {
	return sh.RunV("go", "test", "-tags", "bench", "-run", "^$", "-bench", ".", "./internal/pipeline/")
}

// Lint runs go vet, staticcheck and gosec.
func Lint() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return err
	}
	if err := sh.RunV("go", "tool", "staticcheck", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "gosec", "-quiet", "./...")
}

// Check runs Lint and Test.
func Check() {
	mg.SerialDeps(Lint, Test)
}

// Clean removes build and conversion artifacts.
func Clean() error {
	for _, dir := range []string{binDir, "output"} {
		if err := sh.Rm(dir); err != nil {
			return err
		}
	}
	return nil
}
