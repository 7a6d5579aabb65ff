// Package treelib holds build metadata for the treelib module.
package treelib

// Version is the treelib release version.
const Version = "v0.1.0"
