// Package store provides persistence for flowchart projects.
//
// A project is a named diagram plus timestamps. The Store interface has
// two implementations:
//   - file: JSON files in a config directory, for CLI usage
//   - mongo: MongoDB collection, for server deployments
//
// # Usage
//
// Create a store:
//
//	// CLI
//	st, err := store.NewFileStore("")  // Uses ~/.config/flowdeck/projects/
//
//	// Server
//	st, err := store.NewMongoStore(ctx, "mongodb://localhost:27017", "flowdeck")
//
// Manage projects:
//
//	p := store.NewProject("onboarding", d)
//	if err := st.Put(ctx, p); err != nil {
//	    return err
//	}
//
//	p, err := st.Get(ctx, id)
//	if errors.Is(err, store.ErrNotFound) {
//	    // Project does not exist
//	}
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/flowdeck/flowdeck/pkg/diagram"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when a project does not exist.
	ErrNotFound = errors.New("project not found")

	// ErrClosed is returned after the store has been closed.
	ErrClosed = errors.New("store closed")
)

// Store is the interface for project storage backends.
type Store interface {
	// Get retrieves a project by ID.
	// Returns ErrNotFound if the project doesn't exist.
	Get(ctx context.Context, id string) (*diagram.Project, error)

	// Put stores a project, overwriting any existing one with the same ID.
	// UpdatedAt is refreshed on every call.
	Put(ctx context.Context, p *diagram.Project) error

	// Delete removes a project. Deleting a missing project is not an error.
	Delete(ctx context.Context, id string) error

	// List returns all projects ordered by most recently updated.
	// Listed projects carry metadata only; Diagram holds name and
	// orientation but no nodes or edges.
	List(ctx context.Context) ([]diagram.Project, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// NewProject creates a project around a diagram with a fresh ID and
// timestamps.
func NewProject(name string, d diagram.Diagram) *diagram.Project {
	now := time.Now().UTC()
	return &diagram.Project{
		ID:        uuid.NewString(),
		Name:      name,
		Diagram:   d,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
