// Package diagram defines the core data model for flowcharts.
//
// This package is the canonical wire format for Flowdeck's diagrams, used for
// JSON files, API requests and responses, project storage, and caching.
//
// # Core Types
//
//   - [Diagram]: a complete flowchart (nodes, edges, orientation)
//   - [Node]: a positioned, typed box with a label
//   - [Edge]: a directed, optionally labeled connection between two nodes
//   - [Handle]: the side of a node box where an edge attaches
//   - [Project]: a named, persisted diagram with timestamps
//
// # Handles
//
// Every edge carries a source and target [Handle]. Handles are assigned by
// the layout engine (package layout) and consumed by renderers to draw
// orthogonal connector stubs. The numeric encoding (0=top, 1=right,
// 2=bottom, 3=left) is fixed and part of the wire format.
//
// # Serialization
//
// Diagrams use a simple node-link JSON format:
//
//	{
//	  "orientation": "horizontal",
//	  "nodes": [{"id": "a", "type": "start", "label": "Start",
//	             "width": 160, "height": 40}],
//	  "edges": [{"id": "e1", "source": "a", "target": "b"}]
//	}
//
// Common operations:
//
//	d, _ := diagram.ReadFile("flow.json")     // File → Diagram
//	diagram.WriteFile(d, "out.json")          // Diagram → File
//	data, _ := diagram.Marshal(d)             // Diagram → []byte
//	parsed, _ := diagram.Unmarshal(data)      // []byte → Diagram
//
// All types carry bson tags alongside json tags so projects can be stored
// verbatim in MongoDB (see package store).
//
// # Concurrency
//
// Values in this package are plain data. They are safe for concurrent reads
// but not concurrent writes.
package diagram
