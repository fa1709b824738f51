// Package dot implements the DOT-text rendering backend.
//
// The factory accumulates nodes and edges in insertion order and serializes
// them as Graphviz DOT source. Output is deterministic: identical
// projections produce byte-identical DOT, which the display loop relies on
// for idempotent polling. Use [github.com/a17hq/btviz/pkg/render/graphviz]
// to turn the DOT into SVG or PNG in-process.
package dot

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/a17hq/btviz/pkg/dotcode"
	"github.com/a17hq/btviz/pkg/errors"
)

// Factory builds graphs that render to DOT source bytes.
type Factory struct{}

// New returns a DOT factory. Factories are compared by identity by the
// projection cache, so reuse one instance across Generate calls.
func New() *Factory {
	return &Factory{}
}

// NewGraph returns an empty DOT graph with the given layout hints.
func (f *Factory) NewGraph(rank, rankDir string, rankSep float64) dotcode.Graph {
	return &Graph{rank: rank, rankDir: rankDir, rankSep: rankSep}
}

// Render serializes a graph created by this factory.
func (f *Factory) Render(g dotcode.Graph) ([]byte, error) {
	dg, ok := g.(*Graph)
	if !ok {
		return nil, errors.New(errors.ErrCodeRenderFailed, "graph was not created by the dot factory")
	}
	return dg.DOT(), nil
}

type node struct {
	id      string
	label   string
	shape   string
	color   string
	tooltip string
}

type edge struct {
	from  string
	to    string
	color string
}

// Graph accumulates nodes and edges for one projection.
type Graph struct {
	rank    string
	rankDir string
	rankSep float64
	nodes   []node
	edges   []edge
}

// AddNode records one visual node. Empty shape, color, or tooltip values
// are omitted from the output so Graphviz defaults apply.
func (g *Graph) AddNode(id, label, shape, color, tooltip string) {
	g.nodes = append(g.nodes, node{id: id, label: label, shape: shape, color: color, tooltip: tooltip})
}

// AddEdge records one directed edge.
func (g *Graph) AddEdge(from, to, color string) {
	g.edges = append(g.edges, edge{from: from, to: to, color: color})
}

// DOT serializes the graph as Graphviz DOT source.
func (g *Graph) DOT() []byte {
	var buf bytes.Buffer
	buf.WriteString("digraph behaviourtree {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", g.rankDir)
	fmt.Fprintf(&buf, "  ranksep=%g;\n", g.rankSep)
	if g.rank != "" && g.rank != dotcode.RankNone {
		fmt.Fprintf(&buf, "  rank=%s;\n", g.rank)
	}
	buf.WriteString("\n")

	for _, n := range g.nodes {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.id, strings.Join(nodeAttrs(n), ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.edges {
		fmt.Fprintf(&buf, "  %q -> %q [color=%q];\n", e.from, e.to, e.color)
	}

	buf.WriteString("}\n")
	return buf.Bytes()
}

func nodeAttrs(n node) []string {
	attrs := []string{fmt.Sprintf("label=%q", n.label)}
	if n.shape != "" {
		attrs = append(attrs, fmt.Sprintf("shape=%s", n.shape))
	}
	if n.color != "" {
		attrs = append(attrs, "style=filled", fmt.Sprintf("fillcolor=%q", n.color))
	}
	if n.tooltip != "" {
		attrs = append(attrs, "tooltip="+quoteTooltip(n.tooltip))
	}
	return attrs
}

// quoteTooltip passes through tooltips that arrive pre-quoted (the dotcode
// formatter wraps its markup in double quotes already) and quotes anything
// else.
func quoteTooltip(s string) string {
	if strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) && len(s) >= 2 {
		return s
	}
	return fmt.Sprintf("%q", s)
}
