// Package output persists generated documents as formatted JSON.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sink writes one JSON document to a fixed path, replacing prior contents.
type Sink struct {
	path   string
	indent int
}

// NewSink creates a sink for path with the given indent width.
func NewSink(path string, indent int) *Sink {
	return &Sink{path: path, indent: indent}
}

// Path returns the destination file.
func (s *Sink) Path() string {
	return s.path
}

// Encode renders v with the sink's indentation and a trailing newline.
// HTML characters in descriptions are kept as-is.
func (s *Sink) Encode(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if s.indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", s.indent))
	}

	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return buf.Bytes(), nil
}

// Write encodes v and writes it to the destination, returning the byte count.
func (s *Sink) Write(v any) (int, error) {
	data, err := s.Encode(v)
	if err != nil {
		return 0, err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return 0, fmt.Errorf("failed to write file: %w", err)
	}

	return len(data), nil
}
