package io

import (
	"path/filepath"
	"strings"
	"testing"

	"foliopress/pkg/core/document"
)

func sample() *document.Catalog {
	c := document.New("Spring catalog")
	a := document.NewElement(document.TypeShape)
	a.ID = "a"
	a.X, a.Y, a.Width, a.Height = 10, 20, 100, 50
	b := document.NewElement(document.TypeText)
	b.ID = "b"
	b.Text = "Hello"
	b.ProductID = "p1"
	b.Role = document.RolePrice
	c.AddElement(0, a)
	c.AddElement(0, b)
	c.AddPage(document.PageClosing)
	return c
}

func TestRoundTrip(t *testing.T) {
	orig := sample()
	path := filepath.Join(t.TempDir(), "catalog.json")

	if err := ExportJSON(orig, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}

	if got.ID != orig.ID || got.Name != orig.Name {
		t.Errorf("identity changed: %s %q", got.ID, got.Name)
	}
	if got.PageCount() != 2 {
		t.Fatalf("PageCount() = %d, want 2", got.PageCount())
	}
	p := got.Page(0)
	if len(p.Elements) != 2 {
		t.Fatalf("page 0 has %d elements, want 2", len(p.Elements))
	}
	el := p.Element("b")
	if el == nil || el.Text != "Hello" || el.ProductID != "p1" || el.Role != document.RolePrice {
		t.Errorf("element b lost fields: %+v", el)
	}
	for i, pg := range got.Pages {
		if pg.Number != i+1 {
			t.Errorf("page %d numbered %d", i, pg.Number)
		}
	}
}

func TestReadJSONRepairsZ(t *testing.T) {
	// Hand-edited file with stale advisory z indices.
	in := `{
  "version": 1,
  "catalog": {
    "id": "c1", "name": "n",
    "pages": [{"number": 1, "type": "interior", "elements": [
      {"id": "a", "type": "shape", "z": 9},
      {"id": "b", "type": "shape", "z": 3}
    ]}]
  }
}`
	c, err := ReadJSON(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	for i, e := range c.Pages[0].Elements {
		if e.Z != i {
			t.Errorf("Z[%d] = %d, want rewritten to %d", i, e.Z, i)
		}
	}
}

func TestReadJSONRejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"malformed", `{"version": 1, "catalog":`},
		{"missing version", `{"catalog": {"id": "c", "pages": [{"number": 1, "elements": []}]}}`},
		{"future version", `{"version": 99, "catalog": {"id": "c", "pages": [{"number": 1, "elements": []}]}}`},
		{"no catalog", `{"version": 1}`},
		{"no pages", `{"version": 1, "catalog": {"id": "c", "pages": []}}`},
		{"empty element id", `{"version": 1, "catalog": {"id": "c", "pages": [
			{"number": 1, "elements": [{"id": "", "type": "shape"}]}]}}`},
		{"duplicate id across pages", `{"version": 1, "catalog": {"id": "c", "pages": [
			{"number": 1, "elements": [{"id": "x", "type": "shape"}]},
			{"number": 2, "elements": [{"id": "x", "type": "shape"}]}]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadJSON(strings.NewReader(tt.in)); err == nil {
				t.Error("ReadJSON should reject this input")
			}
		})
	}
}

func TestImportJSONMissingFile(t *testing.T) {
	if _, err := ImportJSON(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("missing file should error")
	}
}

func TestExportLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	if err := ExportJSON(sample(), path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, ".catalog-*"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 0 {
		t.Errorf("temp files left behind: %v", matches)
	}
}
