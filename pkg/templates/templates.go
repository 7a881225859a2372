// Package templates provides the template catalog: named grid templates and
// themes the applicator consumes. Built-in templates cover the common page
// families; additional templates are loaded from TOML files in a directory,
// overriding built-ins with the same name.
package templates

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"foliopress/pkg/core/document"
	"foliopress/pkg/core/layout"
	"foliopress/pkg/errors"
)

// Template is a named page template: a slot grid plus theme defaults,
// tagged with the page family it applies to.
type Template struct {
	Name     string            `toml:"name"`
	Label    string            `toml:"label"`
	PageType document.PageType `toml:"page_type"`
	Grid     layout.Grid       `toml:"grid"`
	Theme    layout.Theme      `toml:"theme"`
}

// Catalog is an immutable set of templates keyed by name.
type Catalog struct {
	byName map[string]Template
}

// Builtin returns the catalog of built-in templates.
func Builtin() *Catalog {
	c := &Catalog{byName: map[string]Template{}}
	for _, t := range builtins {
		c.byName[t.Name] = t
	}
	return c
}

// Load returns the built-in catalog merged with every *.toml template in
// dir. A missing directory yields the built-ins alone; a malformed or
// invalid template file fails the whole load so a typo cannot silently
// drop a template.
func Load(dir string) (*Catalog, error) {
	c := Builtin()
	if dir == "" {
		return c, nil
	}

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read template dir %s", dir)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		t, err := parseFile(path)
		if err != nil {
			return nil, err
		}
		c.byName[t.Name] = t
	}
	return c, nil
}

func parseFile(path string) (Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Template{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read template %s", path)
	}
	var t Template
	if err := toml.Unmarshal(data, &t); err != nil {
		return Template{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse template %s", path)
	}
	if t.Name == "" {
		t.Name = strings.TrimSuffix(filepath.Base(path), ".toml")
	}
	if err := Validate(t); err != nil {
		return Template{}, err
	}
	return t, nil
}

// Validate checks a template's name and grid specification.
func Validate(t Template) error {
	if err := errors.ValidateTemplateName(t.Name); err != nil {
		return err
	}
	return errors.ValidateGrid(t.Grid.Cols, t.Grid.Rows, t.Grid.Padding, t.Grid.Spacing)
}

// Get returns the template with the given name.
func (c *Catalog) Get(name string) (Template, error) {
	t, ok := c.byName[name]
	if !ok {
		return Template{}, errors.New(errors.ErrCodeTemplateNotFound, "no template named %q", name)
	}
	return t, nil
}

// List returns all templates sorted by name.
func (c *Catalog) List() []Template {
	out := make([]Template, 0, len(c.byName))
	for _, t := range c.byName {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ForPageType returns the templates of the given page family, sorted by
// name. The family tag is descriptive; any template can be forced onto any
// page.
func (c *Catalog) ForPageType(t document.PageType) []Template {
	var out []Template
	for _, tpl := range c.List() {
		if tpl.PageType == t {
			out = append(out, tpl)
		}
	}
	return out
}

// builtins are the stock templates shipped with the editor.
var builtins = []Template{
	{
		Name:     "grid-2x2",
		Label:    "Four products",
		PageType: document.PageInterior,
		Grid:     layout.Grid{Cols: 2, Rows: 2, Padding: 24, Spacing: 16},
	},
	{
		Name:     "grid-3x3",
		Label:    "Nine products",
		PageType: document.PageInterior,
		Grid:     layout.Grid{Cols: 3, Rows: 3, Padding: 20, Spacing: 12},
	},
	{
		Name:     "grid-2x3",
		Label:    "Six products",
		PageType: document.PageInterior,
		Grid:     layout.Grid{Cols: 2, Rows: 3, Padding: 24, Spacing: 14},
	},
	{
		Name:     "hero",
		Label:    "Single product hero",
		PageType: document.PageCover,
		Grid: layout.Grid{
			Cols: 1, Rows: 1, Padding: 48, Spacing: 0,
			Decorations: []layout.Decoration{
				{ShapeKind: "rect", X: 0, Y: 0, Width: document.PageWidth, Height: 220, Fill: "#1a1a2e", Opacity: 1},
			},
		},
		Theme: layout.Theme{TitleColor: "#ffffff"},
	},
	{
		Name:     "index-list",
		Label:    "Index rows",
		PageType: document.PageIndex,
		Grid:     layout.Grid{Cols: 1, Rows: 8, Padding: 16, Spacing: 6},
	},
}
