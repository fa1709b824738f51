// Package render groups the concrete rendering backends for behaviour-tree
// graphs.
//
// # Backends
//
// Both subpackages implement the [github.com/a17hq/btviz/pkg/dotcode]
// Factory boundary:
//
//   - [dot]: serializes graphs as Graphviz DOT source, byte-for-byte
//     deterministic for identical projections.
//   - [graphviz]: lays the DOT out in-process via goccy/go-graphviz and
//     produces SVG or PNG bytes.
//
// # Usage
//
//	gen := dotcode.NewGenerator()
//	svg, err := gen.Generate(graphviz.NewSVG(), tree)
//
// The generator compares factories by identity between calls, so construct
// a backend once and reuse it for the lifetime of the display loop.
package render
