// Package dotcode projects behaviour-tree snapshots onto abstract graphs
// for rendering.
//
// # Overview
//
// The package turns a flat [behaviour.Tree] snapshot into a directed graph
// description: one visual node per behaviour, one edge per parent→child
// relation, with shapes, colours, and tooltips derived from each
// behaviour's type and runtime status. The graph itself is abstract; a
// pluggable [Factory] turns it into a concrete artifact (DOT text, SVG,
// PNG).
//
// # Usage
//
// Create a [Generator] once and call Generate on every display cycle:
//
//	gen := dotcode.NewGenerator()
//	out, err := gen.Generate(dot.New(), tree)
//
// The generator rebuilds the graph from the current snapshot on every call
// so status changes always show; it only caches the drawing arguments and
// backend handle between calls. Layout hints are passed as options:
//
//	out, err := gen.Generate(factory, tree,
//	    dotcode.WithRankDir(dotcode.RankDirLR),
//	    dotcode.WithRankSep(0.4))
//
// # Colour rules
//
// A node's fill colour is its status colour when the status has one,
// otherwise its type colour, otherwise the backend default. Edges take the
// child's status colour, defaulting to light grey.
//
// # Errors
//
// An empty snapshot is not an error; it yields a single placeholder node.
// A child id with no matching record is a consistency fault and fails the
// build with [errors.ErrCodeDanglingChild] rather than silently dropping
// the edge.
package dotcode
