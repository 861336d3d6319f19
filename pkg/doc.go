// Package pkg provides the core libraries for Flowdeck diagram layout.
//
// # Overview
//
// Flowdeck computes automatic layouts for flowchart diagrams: it assigns
// coordinates to nodes and attachment handles to edges so an interactive
// editor can draw clean orthogonal connectors. The pkg directory is
// organized into these areas:
//
//  1. [diagram] - Domain types (nodes, edges, handles, orientations)
//  2. [layout] - The layout engine (cycle breaking, layering, ordering, coordinates)
//  3. [render] - Output generation (SVG, DOT, PNG via Graphviz)
//  4. [pipeline] - Orchestration (load → layout → render) with caching
//  5. [cache] / [store] - Infrastructure (layout cache, project storage)
//  6. [server] - HTTP API for editor integrations
//
// # Architecture
//
// The typical data flow through Flowdeck:
//
//	diagram.json
//	         ↓
//	    [diagram] package (parse + validate)
//	         ↓
//	    [layout] package (layers, ordering, coordinates, handles)
//	         ↓
//	    [render] package (SVG / DOT / PNG)
//	         ↓
//	    editor or file output
//
// # Quick Start
//
// Lay out and render a diagram:
//
//	import (
//	    "context"
//	    "github.com/flowdeck/flowdeck/pkg/diagram"
//	    "github.com/flowdeck/flowdeck/pkg/pipeline"
//	)
//
//	d, _ := pipeline.LoadFile("flow.json")
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, _ := runner.Execute(context.Background(), d, pipeline.Options{
//	    Orientation: diagram.Horizontal,
//	    Formats:     []string{"svg"},
//	})
//	svg := result.Artifacts["svg"]
//
// # Main Packages
//
// [diagram] - Core document model. Nodes carry positions and sizes, edges
// carry source/target handles, and the document has a layout orientation.
//
// [layout] - The layered layout engine. Breaks cycles, assigns layers with
// a longest-path scheme, reduces crossings with median sweeps, and derives
// coordinates and edge handles from the final geometry.
//
// [render] - Two rendering paths: a native SVG renderer faithful to the
// computed coordinates, and a Graphviz path (DOT, PNG) for comparison and
// external tooling.
//
// [pipeline] - Complete pipeline used by CLI and API. Caches layouts and
// rendered artifacts keyed on content hashes.
//
// [cache] - Cache interface with file, Redis, and null backends.
//
// [store] - Project persistence with file and MongoDB backends.
//
// [server] - chi-based HTTP API: layout and render endpoints plus project
// CRUD.
//
// [errors] - Structured error codes shared by CLI and API.
//
// [observability] - Hook registry for instrumenting pipeline, cache, and
// server events.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/layout/...    # Specific package
//	go test -run Example        # Examples only
//
// [diagram]: https://pkg.go.dev/github.com/flowdeck/flowdeck/pkg/diagram
// [layout]: https://pkg.go.dev/github.com/flowdeck/flowdeck/pkg/layout
// [render]: https://pkg.go.dev/github.com/flowdeck/flowdeck/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/flowdeck/flowdeck/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/flowdeck/flowdeck/pkg/cache
// [store]: https://pkg.go.dev/github.com/flowdeck/flowdeck/pkg/store
// [server]: https://pkg.go.dev/github.com/flowdeck/flowdeck/pkg/server
// [errors]: https://pkg.go.dev/github.com/flowdeck/flowdeck/pkg/errors
// [observability]: https://pkg.go.dev/github.com/flowdeck/flowdeck/pkg/observability
package pkg
