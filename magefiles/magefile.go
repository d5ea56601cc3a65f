//go:build mage

// Package main provides build targets for the catalog service using Mage.
//
// Usage:
//
//	mage build     Compile the catalog binary to bin/
//	mage test      Run all tests
//	mage lint      Run golangci-lint
//	mage serve     Build and run the server against SQLite
//	mage seed      Load sample data into the configured store
//	mage clean     Remove build artifacts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binLint    = "golangci-lint"
	binaryName = "catalog"
	binaryDir  = "bin"
	cmdDir     = "./cmd/catalog"
)

var binaryPath = filepath.Join(binaryDir, binaryName)

// Build compiles the catalog binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", binaryPath, cmdDir)
}

// Test runs all tests with the race detector.
func Test() error {
	return sh.RunV(binGo, "test", "-race", "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV(binLint, "run", "./...")
}

// Serve runs the server on a local SQLite file.
func Serve() error {
	mg.Deps(Build)
	return sh.RunWithV(map[string]string{"DB_DRIVER": "sqlite"}, binaryPath, "serve")
}

// Seed loads sample data into the store configured by the environment.
func Seed() error {
	mg.Deps(Build)
	return sh.RunV(binaryPath, "seed")
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}
