package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"foliopress/pkg/core/document"
)

// ReadJSON decodes a catalog envelope from r.
//
// ReadJSON returns an error if:
//   - The JSON is malformed
//   - The envelope version is missing or newer than [FormatVersion]
//   - The catalog has no pages (a catalog always has at least one)
//   - An element id appears twice anywhere in the document
//
// Hand-edited files with stale advisory z indices are accepted: the
// indices are rewritten from array order, which is authoritative.
// The returned catalog is independent of r; ReadJSON does not close r.
func ReadJSON(r io.Reader) (*document.Catalog, error) {
	var env envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if env.Version < 1 || env.Version > FormatVersion {
		return nil, fmt.Errorf("unsupported catalog format version %d (max %d)", env.Version, FormatVersion)
	}
	c := env.Catalog
	if c == nil {
		return nil, fmt.Errorf("envelope has no catalog")
	}
	if err := Normalize(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Normalize validates a decoded catalog and repairs its advisory state.
// It rejects catalogs without pages, elements without ids, and element ids
// appearing twice anywhere in the document; stale z indices are rewritten
// from array order (which is authoritative) and page numbers from page
// order. Every path that accepts a whole externally supplied catalog
// (file import, the HTTP PUT body) runs through it.
func Normalize(c *document.Catalog) error {
	if len(c.Pages) == 0 {
		return fmt.Errorf("catalog %s has no pages", c.ID)
	}

	seen := make(map[string]bool)
	for pi := range c.Pages {
		p := &c.Pages[pi]
		for ei := range p.Elements {
			id := p.Elements[ei].ID
			if id == "" {
				return fmt.Errorf("page %d: element %d has no id", pi, ei)
			}
			if seen[id] {
				return fmt.Errorf("duplicate element id %s", id)
			}
			seen[id] = true
			p.Elements[ei].Z = ei
		}
	}
	c.RenumberPages()
	return nil
}

// ImportJSON reads a JSON file at path and returns the decoded catalog.
// Errors wrap the underlying cause with the file path for context and
// include the same validation failures as [ReadJSON].
func ImportJSON(path string) (*document.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	c, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return c, nil
}
