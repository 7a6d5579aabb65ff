package types

import (
	"errors"
	"strings"
)

// NodeRecord is the serialised form of a tree node. Flat documents (JSONL)
// carry one record per line linked by Parent; nested documents (JSON, YAML)
// carry a single root record with Children.
type NodeRecord struct {
	ID       string       `json:"id,omitempty" yaml:"id,omitempty"`
	Tag      string       `json:"tag,omitempty" yaml:"tag,omitempty"`
	Parent   string       `json:"parent,omitempty" yaml:"parent,omitempty"`
	Value    any          `json:"value,omitempty" yaml:"value,omitempty"`
	Children []NodeRecord `json:"children,omitempty" yaml:"children,omitempty"`
}

// Record validation errors.
var (
	ErrRecordIDEmpty     = errors.New("record id must not be empty")
	ErrRecordHasChildren = errors.New("flat record must not carry children")
)

// ValidateFlat checks a record read from a flat document. Identifiers are
// required because children refer to them.
func (r NodeRecord) ValidateFlat() error {
	if strings.TrimSpace(r.ID) == "" {
		return ErrRecordIDEmpty
	}
	if len(r.Children) > 0 {
		return ErrRecordHasChildren
	}
	return nil
}

// Count returns the number of records in the nested document rooted at r.
func (r NodeRecord) Count() int {
	n := 1
	for _, c := range r.Children {
		n += c.Count()
	}
	return n
}
