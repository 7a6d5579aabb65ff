// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build mage

// Package main provides build targets for the treelib project using Mage.
//
// Usage:
//
//	mage build      Compile treelib binary to bin/
//	mage install    Install treelib to GOPATH/bin
//	mage clean      Remove build artifacts
//	mage demo       Build and run the people-tree demo
//	mage lint       Run golangci-lint
//	mage test:all   Run all tests
//	mage test:unit  Run tests without the CLI package
//	mage test:cover Run all tests with a coverage profile
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "treelib"
	binaryDir  = "bin"
	cmdDir     = "./cmd/treelib"
)

// Build compiles the treelib binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
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

// Demo builds the binary and runs the people-tree demo.
func Demo() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binaryDir, binaryName), "demo")
}
