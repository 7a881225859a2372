// Package store provides persistence for saved catalogs.
//
// The live working document belongs to the editor; this package holds the
// collection of saved catalogs around it. Backends for different
// deployments implement the same interface:
//   - memory: in-memory storage for development/testing
//   - file: JSON-per-catalog on disk for the CLI
//   - mongo: document storage for server deployments
//   - postgres: relational storage where a SQL fleet already exists
//   - redis: volatile storage for short-lived shared sessions
//
// The whole catalog is saved and loaded as one document tree; there is no
// partial-persistence contract.
package store

import (
	"context"
	"errors"
	"time"

	"foliopress/pkg/core/document"
)

// ErrNotFound is returned when no catalog with the requested id exists.
var ErrNotFound = errors.New("catalog not found")

// Summary is the listing view of a saved catalog.
type Summary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Pages     int       `json:"pages"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Store is the interface for saved-catalog persistence backends.
type Store interface {
	// Get retrieves a catalog by id. Returns ErrNotFound when it does
	// not exist.
	Get(ctx context.Context, id string) (*document.Catalog, error)

	// Put stores a catalog, replacing any existing one with the same id.
	Put(ctx context.Context, c *document.Catalog) error

	// Delete removes a catalog. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error

	// List returns summaries of all saved catalogs, newest first.
	List(ctx context.Context) ([]Summary, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// summarize builds the listing view of a catalog.
func summarize(c *document.Catalog) Summary {
	return Summary{
		ID:        c.ID,
		Name:      c.Name,
		Pages:     c.PageCount(),
		UpdatedAt: c.UpdatedAt,
	}
}
