package dot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/a17hq/btviz/pkg/dotcode"
	"github.com/a17hq/btviz/pkg/errors"
)

func buildSample(f *Factory) dotcode.Graph {
	g := f.NewGraph(dotcode.RankSame, dotcode.RankDirTB, 0.2)
	g.AddNode("a", "Root", "box", "#000000", `"<b>Status:</b> Running<br>"`)
	g.AddNode("b", "Leaf", "ellipse", "", "")
	g.AddEdge("a", "b", "#00ff00")
	return g
}

func TestRender(t *testing.T) {
	f := New()
	out, err := f.Render(buildSample(f))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	dot := string(out)

	for _, want := range []string{
		"digraph behaviourtree {",
		"rankdir=TB;",
		"ranksep=0.2;",
		"rank=same;",
		`"a" [label="Root", shape=box, style=filled, fillcolor="#000000", tooltip="<b>Status:</b> Running<br>"];`,
		`"b" [label="Leaf", shape=ellipse];`,
		`"a" -> "b" [color="#00ff00"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	f := New()
	first, err := f.Render(buildSample(f))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	second, err := f.Render(buildSample(f))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("identical graphs rendered differently")
	}
}

func TestRenderOmitsDefaults(t *testing.T) {
	f := New()
	g := f.NewGraph("", dotcode.RankDirLR, 0.4)
	g.AddNode("x", "Plain", "", "", "")

	out, err := f.Render(g)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	dot := string(out)

	if strings.Contains(dot, "\n  rank=") {
		t.Errorf("empty rank should omit the rank attribute:\n%s", dot)
	}
	if strings.Contains(dot, "shape=") {
		t.Errorf("empty shape should be omitted:\n%s", dot)
	}
	if strings.Contains(dot, "fillcolor=") {
		t.Errorf("empty color should be omitted:\n%s", dot)
	}
	if !strings.Contains(dot, "rankdir=LR;") {
		t.Errorf("rankdir not emitted:\n%s", dot)
	}
}

func TestRenderRankNone(t *testing.T) {
	f := New()
	g := f.NewGraph(dotcode.RankNone, dotcode.RankDirTB, 0.2)
	g.AddNode("x", "Plain", "", "", "")

	out, err := f.Render(g)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(string(out), "rank=none") {
		t.Errorf("rank=none should omit the rank attribute:\n%s", out)
	}
}

func TestRenderForeignGraph(t *testing.T) {
	f := New()
	_, err := f.Render(foreignGraph{})
	if err == nil {
		t.Fatal("Render: want error for foreign graph")
	}
	if !errors.Is(err, errors.ErrCodeRenderFailed) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeRenderFailed)
	}
}

type foreignGraph struct{}

func (foreignGraph) AddNode(id, label, shape, color, tooltip string) {}
func (foreignGraph) AddEdge(from, to, color string)                  {}

func TestQuoteTooltip(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"already quoted"`, `"already quoted"`},
		{`plain`, `"plain"`},
		{`has "quotes" inside`, `"has \"quotes\" inside"`},
	}

	for _, tt := range tests {
		if got := quoteTooltip(tt.in); got != tt.want {
			t.Errorf("quoteTooltip(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
