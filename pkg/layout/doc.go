// Package layout implements automatic flowchart layout.
//
// # Overview
//
// Given the nodes and edges of one diagram (possibly cyclic, possibly
// disconnected), [Run] computes a deterministic 2D placement for every node
// and assigns each edge the side of its endpoints it should attach to.
// The algorithm is a Sugiyama-style layered pipeline with five stages:
//
//  1. Cycle breaking: depth-first search marks a minimal set of back-edges
//     so the remaining graph is acyclic. Back-edges stay in the diagram;
//     they are only excluded from layering.
//  2. Layering: Kahn-style topological waves assign every node an integer
//     layer (longest path from a source).
//  3. Virtual graph: edges spanning more than one layer are subdivided by
//     chains of dummy nodes so every working edge connects adjacent layers.
//  4. Crossing reduction: iterative median sweeps reorder nodes within each
//     layer to heuristically reduce edge crossings. This is a heuristic,
//     not an exact minimizer; crossing minimization is NP-hard.
//  5. Coordinates and handles: ordered layers become concrete positions for
//     the requested [diagram.Orientation], shorter layers centered against
//     the longest; every edge then gets geometry-consistent handles, with
//     fixed return handles for back-edges and a loop marker for self-loops.
//
// # Contract
//
// Run is a pure function of its inputs: it never mutates the caller's
// slices, never panics on malformed input, and produces identical output
// for identical input. Edges referencing unknown node IDs are ignored
// during layout and surface in the output with default handles. A graph
// whose every node sits on a cycle with no entry point degrades to a
// trivial vertical stack. Empty input yields empty output.
//
// The returned node set is exactly the input node set (same IDs, new
// positions); dummy nodes never leak out. The returned edge set is exactly
// the input edge set (same IDs, sources, targets, labels) with recomputed
// handle values.
//
// # Concurrency
//
// The pipeline is synchronous, single-threaded pure computation. Concurrent
// calls on different inputs are safe; callers sharing one mutable diagram
// must serialize layout passes themselves.
package layout
