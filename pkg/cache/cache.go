// Package cache provides caching for expensive pipeline stages.
//
// Two stages benefit from caching: computed layouts (keyed by the diagram
// content hash plus layout options) and rendered artifacts (keyed by the
// layout hash plus render options). Both are content-addressed, so a cache
// hit is always safe to serve.
//
// # Backends
//
// Three backends implement [Cache]:
//   - [FileCache]: on-disk cache for CLI usage
//   - [RedisCache]: shared cache for server deployments
//   - [NullCache]: no-op cache for tests or --no-cache runs
//
// # Keys
//
// A [Keyer] turns hashes and option structs into stable string keys, so
// every backend sees the same key for the same work.
package cache

import (
	"context"
	"time"

	"github.com/flowdeck/flowdeck/pkg/diagram"
)

// TTLs for the different cache entry kinds. Layouts are pure functions of
// their inputs and could live forever; the TTLs just bound disk usage.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// Cache is the storage interface shared by all backends.
//
// Get returns (nil, false, nil) on a miss. Backends must treat corrupt or
// expired entries as misses, never as errors.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// LayoutKeyOpts captures every option that changes layout output.
// Adding a field here automatically invalidates old cache entries.
type LayoutKeyOpts struct {
	Orientation diagram.Orientation `json:"orientation"`
	NodeGap     float64             `json:"node_gap"`
	LayerGap    float64             `json:"layer_gap"`
	Sweeps      int                 `json:"sweeps"`
}

// ArtifactKeyOpts captures every option that changes rendered output.
type ArtifactKeyOpts struct {
	Format string `json:"format"` // "svg", "png", "dot", "json"
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// LayoutKey generates a key for a computed layout.
	// diagramHash is the content hash of the normalized input diagram.
	LayoutKey(diagramHash string, opts LayoutKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact.
	// layoutHash is the content hash of the laid-out diagram.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer generates versioned, hash-based keys.
//
// Keys embed a schema version so that algorithm changes can invalidate
// the whole cache by bumping the constant.
type DefaultKeyer struct{}

// keyVersion invalidates all existing entries when bumped.
const keyVersion = "v1"

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for a computed layout.
func (k *DefaultKeyer) LayoutKey(diagramHash string, opts LayoutKeyOpts) string {
	return hashKey("layout:"+keyVersion, diagramHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+keyVersion, layoutHash, opts)
}
