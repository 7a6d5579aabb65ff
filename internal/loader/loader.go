// Package loader reads tree documents into a tree.Tree and writes trees back
// out as documents.
// Implements: flat JSONL documents (one NodeRecord per line) and nested
// JSON/YAML documents (a single root NodeRecord with children).
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mesh-intelligence/treelib/pkg/tree"
)

// Format identifies a document encoding.
type Format string

// Supported document formats.
const (
	FormatJSONL Format = "jsonl"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Loader errors.
var (
	ErrUnknownFormat   = errors.New("unknown document format")
	ErrMalformedRecord = errors.New("malformed record")
	ErrNoRoot          = errors.New("document has no root record")
	ErrEmptyTree       = errors.New("tree is empty")
)

// extensionFormats maps file extensions to formats.
var extensionFormats = map[string]Format{
	".jsonl": FormatJSONL,
	".json":  FormatJSON,
	".yaml":  FormatYAML,
	".yml":   FormatYAML,
}

// ParseFormat converts a format name such as "yaml" into a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatJSONL, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath selects the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := extensionFormats[ext]
	if !ok {
		return "", fmt.Errorf("%w: extension %q", ErrUnknownFormat, ext)
	}
	return f, nil
}

// LoadFile reads the document at path, choosing the format from its extension.
func LoadFile(path string) (*tree.Tree[any], error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	t, err := Load(f, format)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return t, nil
}

// Load decodes a document of the given format from r.
func Load(r io.Reader, format Format) (*tree.Tree[any], error) {
	switch format {
	case FormatJSONL:
		return loadJSONL(r)
	case FormatJSON:
		return loadJSON(r)
	case FormatYAML:
		return loadYAML(r)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Write encodes t to w in the given format.
func Write[T any](w io.Writer, t *tree.Tree[T], format Format) error {
	switch format {
	case FormatJSONL:
		return WriteJSONL(w, t)
	case FormatJSON:
		return WriteJSON(w, t)
	case FormatYAML:
		return WriteYAML(w, t)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// WriteFile atomically writes t to path using the temp-file, fsync, rename
// pattern. The format is chosen from the extension.
func WriteFile[T any](path string, t *tree.Tree[T]) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".tree-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err := Write(tmp, t, format); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
