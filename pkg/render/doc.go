// Package render turns laid-out diagrams into visual artifacts.
//
// # Overview
//
// Rendering expects a diagram whose nodes already carry positions and
// whose edges already carry handles, i.e. the output of [layout.Run]
// applied back onto a [diagram.Diagram]. Two rendering paths exist:
//
//   - Native SVG: [SVG] draws boxes and orthogonal connectors directly
//     from the computed coordinates, preserving the engine's layout
//     exactly. This is the editor-faithful output.
//   - Graphviz: [ToDOT] exports the diagram as DOT, which can be
//     rendered through Graphviz with [RenderSVG] or [RenderPNG]. This
//     path ignores the computed coordinates and lets Graphviz lay out
//     the graph, which is useful for quick comparisons.
//
// # Usage
//
//	res := layout.Run(d.Nodes, d.Edges, layout.Options{Orientation: d.Orientation})
//	laid := d
//	laid.Nodes, laid.Edges = res.Nodes, res.Edges
//
//	svg := render.SVG(laid)
//
//	dot := render.ToDOT(laid)
//	png, err := render.RenderPNG(dot)
//
// [layout.Run]: github.com/flowdeck/flowdeck/pkg/layout#Run
// [diagram.Diagram]: github.com/flowdeck/flowdeck/pkg/diagram#Diagram
package render
