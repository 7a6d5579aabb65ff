// This file generates node identifiers.
package tree

import "github.com/google/uuid"

// NewIdentifier returns a fresh UUID v7 string for use as a node identifier.
// Callers use it to resubmit a node after ErrDuplicateIdentifier.
func NewIdentifier() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
