package diagram

import (
	"fmt"

	"github.com/google/uuid"
)

// NewID returns a fresh random identifier for a node, edge, or project.
func NewID() string {
	return uuid.NewString()
}

// EnsureIDs fills in missing node and edge identifiers in place.
// Imported diagrams (for example from generators that emit only structure)
// often arrive without IDs; layout and storage both require them.
// Edge IDs are derived from their endpoints when possible so repeated
// imports of the same diagram stay stable; a random UUID is the fallback
// when the derived ID would collide.
func EnsureIDs(d *Diagram) {
	seen := make(map[string]struct{}, len(d.Nodes)+len(d.Edges))
	for i := range d.Nodes {
		if d.Nodes[i].ID == "" {
			d.Nodes[i].ID = NewID()
		}
		seen[d.Nodes[i].ID] = struct{}{}
	}
	for i := range d.Edges {
		if d.Edges[i].ID != "" {
			seen[d.Edges[i].ID] = struct{}{}
			continue
		}
		id := fmt.Sprintf("%s-%s", d.Edges[i].Source, d.Edges[i].Target)
		if _, taken := seen[id]; taken {
			id = NewID()
		}
		d.Edges[i].ID = id
		seen[id] = struct{}{}
	}
}
