// Package main provides the treelib CLI.
// Implements: the people-tree demo, rendering and lookups over tree documents.
package main

import "os"

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
