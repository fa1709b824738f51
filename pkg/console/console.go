// Package console provides colour formatting and ASCII tree rendering for
// terminal display of behaviour-tree snapshots.
//
// Styles are stateless lipgloss values; terminal capability detection is a
// one-time probe performed by lipgloss itself, so rendering degrades to
// plain text on dumb terminals and pipes without any package-level mutable
// state.
package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/a17hq/btviz/pkg/behaviour"
)

var (
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorCyan   = lipgloss.Color("36")
	colorDim    = lipgloss.Color("240")
	colorWhite  = lipgloss.Color("255")
)

// Styles for status display, exported for reuse by the TUI.
var (
	StyleInvalid = lipgloss.NewStyle().Foreground(colorDim)
	StyleRunning = lipgloss.NewStyle().Foreground(colorYellow)
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	StyleFailure = lipgloss.NewStyle().Foreground(colorRed)

	// StyleTitle for headings and banners.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary text such as timestamps and connectors.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleName for behaviour names without status colouring.
	StyleName = lipgloss.NewStyle().Foreground(colorWhite)
)

// StatusStyle returns the display style for a runtime status.
// Unknown statuses render like names, uncoloured.
func StatusStyle(s behaviour.Status) lipgloss.Style {
	switch s {
	case behaviour.StatusInvalid:
		return StyleInvalid
	case behaviour.StatusRunning:
		return StyleRunning
	case behaviour.StatusSuccess:
		return StyleSuccess
	case behaviour.StatusFailure:
		return StyleFailure
	default:
		return StyleName
	}
}

// StatusGlyph returns a single-character marker for a status.
func StatusGlyph(s behaviour.Status) string {
	switch s {
	case behaviour.StatusRunning:
		return "*"
	case behaviour.StatusSuccess:
		return "✓"
	case behaviour.StatusFailure:
		return "✗"
	default:
		return "-"
	}
}

// Banner renders a titled separator line for CLI output.
func Banner(title string) string {
	line := strings.Repeat("─", 40)
	return StyleDim.Render(line) + "\n" + StyleTitle.Render(title) + "\n" + StyleDim.Render(line)
}

// Tree renders a snapshot as an indented, status-coloured tree rooted at
// the snapshot's root. Behaviours unreachable from the root (or reachable
// twice through shared children or cycles) are visited at most once;
// dangling child ids render as a dimmed placeholder rather than failing.
func Tree(t behaviour.Tree) string {
	root := t.Root()
	if root == nil {
		return StyleDim.Render("no behaviour data received")
	}

	var sb strings.Builder
	visited := make(map[string]bool)
	writeSubtree(&sb, t, root, "", true, true, visited)
	return sb.String()
}

func writeSubtree(sb *strings.Builder, t behaviour.Tree, b *behaviour.Behaviour, prefix string, isRoot, isLast bool, visited map[string]bool) {
	connector := ""
	childPrefix := prefix
	if !isRoot {
		if isLast {
			connector = "└── "
			childPrefix = prefix + "    "
		} else {
			connector = "├── "
			childPrefix = prefix + "│   "
		}
	}

	style := StatusStyle(b.Status)
	fmt.Fprintf(sb, "%s%s %s\n",
		StyleDim.Render(prefix+connector),
		style.Render("["+StatusGlyph(b.Status)+"]"),
		style.Render(b.Name))

	if visited[b.ID.String()] {
		return
	}
	visited[b.ID.String()] = true

	for i, childID := range b.ChildIDs {
		last := i == len(b.ChildIDs)-1
		child := t.Lookup(childID)
		if child == nil {
			marker := "└── "
			if !last {
				marker = "├── "
			}
			fmt.Fprintf(sb, "%s\n", StyleDim.Render(childPrefix+marker+"<missing "+childID.String()+">"))
			continue
		}
		writeSubtree(sb, t, child, childPrefix, false, last, visited)
	}
}
