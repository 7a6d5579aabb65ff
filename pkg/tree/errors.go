// This file declares the sentinel errors returned by tree operations.
package tree

import "errors"

// Node creation errors.
var (
	ErrInvalidIdentifier   = errors.New("invalid identifier")
	ErrAlreadyRooted       = errors.New("tree already has a root")
	ErrDuplicateIdentifier = errors.New("duplicate identifier")
	ErrParentNotFound      = errors.New("parent not found")
)

// Lookup errors.
var (
	ErrNodeNotFound  = errors.New("node not found")
	ErrNotDescendant = errors.New("node is not a descendant of base node")
)
