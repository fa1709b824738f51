package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/a17hq/btviz/pkg/behaviour"
	"github.com/a17hq/btviz/pkg/console"
)

var (
	watchHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	watchMetaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// snapshotMsg delivers one decoded snapshot to the model.
type snapshotMsg behaviour.Tree

// feedClosedMsg signals that the subscription channel closed.
type feedClosedMsg struct{}

// watchModel is the bubbletea model for the live tree view. It shows the
// latest snapshot as a coloured ASCII tree plus feed statistics.
type watchModel struct {
	channel   string
	snapshots <-chan behaviour.Tree

	tree     *behaviour.Tree
	received int
}

// newWatchModel creates a watch model reading from snapshots.
func newWatchModel(channel string, snapshots <-chan behaviour.Tree) watchModel {
	return watchModel{channel: channel, snapshots: snapshots}
}

// waitForSnapshot blocks on the feed and converts the result to a message.
func waitForSnapshot(snapshots <-chan behaviour.Tree) tea.Cmd {
	return func() tea.Msg {
		tree, ok := <-snapshots
		if !ok {
			return feedClosedMsg{}
		}
		return snapshotMsg(tree)
	}
}

func (m watchModel) Init() tea.Cmd {
	return waitForSnapshot(m.snapshots)
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case snapshotMsg:
		tree := behaviour.Tree(msg)
		m.tree = &tree
		m.received++
		return m, waitForSnapshot(m.snapshots)
	case feedClosedMsg:
		return m, tea.Quit
	}
	return m, nil
}

func (m watchModel) View() string {
	header := watchHeaderStyle.Render("btviz watch") +
		watchMetaStyle.Render(fmt.Sprintf("  channel=%s  snapshots=%d", m.channel, m.received))

	if m.tree == nil {
		return header + "\n\n" + watchMetaStyle.Render("waiting for first snapshot…") + "\n\n" + helpLine()
	}

	body := watchMetaStyle.Render("stamp "+m.tree.Stamp.Format("15:04:05.000")) + "\n" + console.Tree(*m.tree)
	return header + "\n\n" + body + "\n" + helpLine()
}

func helpLine() string {
	return watchMetaStyle.Render("q: quit")
}
