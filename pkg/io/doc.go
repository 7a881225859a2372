// Package io provides JSON import and export for whole catalog documents.
//
// # Overview
//
// A catalog serializes as a single document tree: the catalog record, its
// pages in order, and each page's elements in render order. The format is
// designed for:
//
//   - Saving and restoring working documents from disk
//   - Feeding the HTTP API and persistence backends one canonical shape
//   - Round-trip preservation: export then re-import yields an equal document
//
// # JSON Format
//
// The file is a versioned envelope around the catalog:
//
//	{
//	  "version": 1,
//	  "catalog": {
//	    "id": "…",
//	    "name": "Spring catalog",
//	    "pages": [
//	      {"id": "…", "number": 1, "type": "cover", "elements": [ … ]}
//	    ]
//	  }
//	}
//
// Element order inside a page is meaningful: it is the back-to-front render
// order, and each element's advisory z index equals its array position.
// Import validates that invariant and repairs the advisory indices rather
// than rejecting a hand-edited file.
//
// # Import
//
// Use [ImportJSON] to read a catalog from a file path, or [ReadJSON] to
// read from any io.Reader. Both validate the envelope version and the
// minimum-one-page invariant.
//
// # Export
//
// Use [ExportJSON] to write a catalog to a file, or [WriteJSON] to write to
// any io.Writer. ExportJSON writes via a temporary file and rename so a
// crash mid-write never leaves a truncated catalog behind.
package io
