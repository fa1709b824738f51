// Package graphviz renders behaviour-tree graphs to image formats.
//
// The factory layers [github.com/goccy/go-graphviz] over the DOT backend:
// graphs accumulate as DOT source and Render lays them out in-process,
// producing SVG or PNG bytes with no external Graphviz installation.
package graphviz

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/a17hq/btviz/pkg/dotcode"
	"github.com/a17hq/btviz/pkg/render/dot"
)

// Factory renders graphs through Graphviz layout.
type Factory struct {
	format graphviz.Format
	dot    *dot.Factory
}

// NewSVG returns a factory producing SVG bytes.
func NewSVG() *Factory {
	return &Factory{format: graphviz.SVG, dot: dot.New()}
}

// NewPNG returns a factory producing PNG bytes.
func NewPNG() *Factory {
	return &Factory{format: graphviz.PNG, dot: dot.New()}
}

// NewGraph returns an empty graph with the given layout hints.
func (f *Factory) NewGraph(rank, rankDir string, rankSep float64) dotcode.Graph {
	return f.dot.NewGraph(rank, rankDir, rankSep)
}

// Render lays out and serializes a graph created by this factory.
func (f *Factory) Render(g dotcode.Graph) ([]byte, error) {
	src, err := f.dot.Render(g)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes(src)
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, f.format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
