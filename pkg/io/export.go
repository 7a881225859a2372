package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"foliopress/pkg/core/document"
)

// FormatVersion is the current envelope version written by WriteJSON.
const FormatVersion = 1

// envelope wraps a catalog with its format version.
type envelope struct {
	Version int               `json:"version"`
	Catalog *document.Catalog `json:"catalog"`
}

// WriteJSON encodes a catalog as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(c *document.Catalog, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(envelope{Version: FormatVersion, Catalog: c}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a catalog to a JSON file at path. The write is atomic:
// the data goes to a temporary file in the same directory first and is
// renamed into place only once fully written.
func ExportJSON(c *document.Catalog, path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".catalog-*.json")
	if err != nil {
		return fmt.Errorf("create temp in %s: %w", dir, err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteJSON(c, tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}
