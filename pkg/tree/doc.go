// Package tree implements a generic labelled tree stored as an arena.
//
// A Tree owns every node in a single map keyed by identifier. Parent and child
// relations are stored as identifiers and resolved through that map, so nodes
// never hold pointers to each other. Nodes are created through the tree and
// live as long as the tree; there is no removal, re-rooting or value update.
//
// A Tree is not safe for concurrent use. Hosts that share a tree between
// goroutines must serialise access themselves.
package tree
