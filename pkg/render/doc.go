// Package render produces structure diagrams of a catalog.
//
// The diagram shows document composition, not page pixels: each page is a
// cluster, each element a node in back-to-front order, with group
// membership and product bindings drawn as edges. It exists for debugging
// catalogs from the CLI; the visual editing surface renders pages
// elsewhere.
//
//	dot := render.ToDOT(catalog, render.Options{Detailed: true, Page: -1})
//	svg, err := render.ToSVG(dot)
package render
