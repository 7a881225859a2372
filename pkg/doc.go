// Package pkg provides the core libraries of the foliopress catalog editor.
//
// # Overview
//
// Foliopress is a multi-page product-catalog document engine: a scene graph
// of pages and elements, structural mutations with snapshot undo, slot-grid
// template layout with overflow pagination, and product-data binding. The
// pkg directory is organized into four main areas:
//
//  1. [core] - The editing engine (document model, history, selection,
//     alignment, layout, binding, editor façade)
//  2. [product] / [templates] - Domain inputs (product records, named grid
//     templates)
//  3. [store] / [io] - Persistence (saved-catalog backends, JSON envelope)
//  4. [render] - Structure diagrams for inspection and debugging
//
// # Architecture
//
// The typical data flow through foliopress:
//
//	Products (TOML) + Template (grid)
//	         ↓
//	    [core/layout] package (slots, cards, pagination)
//	         ↓
//	    [core/document] package (catalog scene graph)
//	         ↓
//	    [core/editor] package (mutations, undo, selection)
//	         ↓
//	    [io] / [store] (JSON export, saved catalogs)
//
// # Quick Start
//
// Generate a catalog from a product list and edit it:
//
//	import (
//	    "foliopress/pkg/core/editor"
//	    "foliopress/pkg/core/layout"
//	    "foliopress/pkg/product"
//	    "foliopress/pkg/templates"
//	)
//
//	// 1. Load inputs
//	products, _ := product.LoadTOML("products.toml")
//	tpl, _ := templates.Builtin().Get("grid-2x2")
//
//	// 2. Lay the products out, paginating overflow
//	ed := editor.New(nil, nil)
//	ed.ApplyTemplate(tpl.Grid, tpl.Theme, products.List())
//
//	// 3. Edit: every structural mutation is one undo step
//	ed.Selection().Set(ed.Page().Elements[0].ID)
//	ed.NudgeSelection(10, 0)
//	ed.Undo()
//
// # Main Packages
//
// ## Editing Engine
//
// [core/document] - The catalog scene graph: pages holding elements in
// back-to-front array order. Structural mutations (add, update, remove,
// duplicate, move, lock, group, reorder) live on the aggregate and report
// whether they changed anything; user-reachable bad input is a silent no-op.
//
// [core/history] - Bounded snapshot undo/redo. Every entry is a full
// document clone taken before a mutation; one entry per logical user action.
//
// [core/selection] - Selected-element state with group expansion: clicking
// a grouped element selects its whole group, shift-click toggles.
//
// [core/align] - Alignment (page bounds for one element, selection bounds
// for several) and equal-gap distribution, honoring locked elements.
//
// [core/layout] - Slot grids, product cards, template application with
// overflow pagination, and single-product placement into free slots.
//
// [core/binding] - Product-edit propagation into bound elements, with
// multi-product pages isolated from automatic sync.
//
// [core/editor] - The façade UI shells operate on: composes the packages
// above, enforces snapshot-before-mutate, and models drag gestures as one
// undo step.
//
// ## Domain Inputs
//
// [product] - Product records, price formatting, and the TOML product list
// loader.
//
// [templates] - Named grid templates: built-ins plus TOML overrides loaded
// from a directory.
//
// ## Persistence
//
// [store] - Saved-catalog backends behind one interface: memory, file,
// MongoDB, Postgres, Redis.
//
// [io] - The versioned JSON envelope: atomic export, validating import
// with z-index repair.
//
// ## Inspection
//
// [render] - Graphviz structure diagrams of a catalog (pages as clusters,
// group chains, binding edges) and SVG rendering.
//
// [errors] - Structured error codes and input validation for the shell
// layers (CLI, HTTP).
//
// [observability] - Hook interfaces for mutation, snapshot, template, sync,
// and store events.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                # All tests
//	go test ./pkg/core/document/...  # Specific package
//	go test -run TestDistribute ./pkg/core/align/  # Property tests included
//
// [core]: https://pkg.go.dev/foliopress/pkg/core
// [core/document]: https://pkg.go.dev/foliopress/pkg/core/document
// [core/history]: https://pkg.go.dev/foliopress/pkg/core/history
// [core/selection]: https://pkg.go.dev/foliopress/pkg/core/selection
// [core/align]: https://pkg.go.dev/foliopress/pkg/core/align
// [core/layout]: https://pkg.go.dev/foliopress/pkg/core/layout
// [core/binding]: https://pkg.go.dev/foliopress/pkg/core/binding
// [core/editor]: https://pkg.go.dev/foliopress/pkg/core/editor
// [product]: https://pkg.go.dev/foliopress/pkg/product
// [templates]: https://pkg.go.dev/foliopress/pkg/templates
// [store]: https://pkg.go.dev/foliopress/pkg/store
// [io]: https://pkg.go.dev/foliopress/pkg/io
// [render]: https://pkg.go.dev/foliopress/pkg/render
// [errors]: https://pkg.go.dev/foliopress/pkg/errors
// [observability]: https://pkg.go.dev/foliopress/pkg/observability
package pkg
