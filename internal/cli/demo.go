package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/a17hq/btviz/pkg/behaviour"
	"github.com/a17hq/btviz/pkg/feed"
)

// newDemoCmd creates the demo command publishing a synthetic ticking tree.
// It gives watch and serve something to display without a real tree
// runtime on the feed.
func newDemoCmd(configPath *string) *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Publish a synthetic ticking behaviour tree to the feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			return runDemo(cmd.Context(), cfg, interval)
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 500*time.Millisecond, "time between ticks")

	return cmd
}

// demoTree is a small scan-and-act tree whose leaf statuses cycle each
// tick, exercising every status colour.
type demoTree struct {
	tree behaviour.Tree
	tick int
}

func newDemoTree() *demoTree {
	root := behaviour.Behaviour{ID: uuid.New(), Name: "Demo", ClassName: "Selector", Type: behaviour.TypeSelector}
	scanSeq := behaviour.Behaviour{ID: uuid.New(), Name: "Scan", ClassName: "Sequence", Type: behaviour.TypeSequence}
	rotate := behaviour.Behaviour{ID: uuid.New(), Name: "Rotate", ClassName: "Rotate", Type: behaviour.TypeBehaviour}
	capture := behaviour.Behaviour{ID: uuid.New(), Name: "Capture", ClassName: "Capture", Type: behaviour.TypeBehaviour}
	idle := behaviour.Behaviour{ID: uuid.New(), Name: "Idle", ClassName: "Idle", Type: behaviour.TypeBehaviour}

	root.ChildIDs = []uuid.UUID{scanSeq.ID, idle.ID}
	scanSeq.ChildIDs = []uuid.UUID{rotate.ID, capture.ID}

	return &demoTree{
		tree: behaviour.Tree{
			Behaviours: []behaviour.Behaviour{root, scanSeq, rotate, capture, idle},
		},
	}
}

// next advances the demo one tick and returns the updated snapshot.
// Statuses walk a fixed schedule so every colour appears over a cycle.
func (d *demoTree) next() behaviour.Tree {
	d.tick++
	phase := d.tick % 8

	b := d.tree.Behaviours
	switch {
	case phase < 3: // rotating
		setStatuses(b, behaviour.StatusRunning, behaviour.StatusRunning, behaviour.StatusRunning, behaviour.StatusInvalid, behaviour.StatusInvalid)
	case phase < 5: // capturing
		setStatuses(b, behaviour.StatusRunning, behaviour.StatusRunning, behaviour.StatusSuccess, behaviour.StatusRunning, behaviour.StatusInvalid)
	case phase < 6: // scan succeeded
		setStatuses(b, behaviour.StatusSuccess, behaviour.StatusSuccess, behaviour.StatusSuccess, behaviour.StatusSuccess, behaviour.StatusInvalid)
	case phase < 7: // scan failed, falling back to idle
		setStatuses(b, behaviour.StatusRunning, behaviour.StatusFailure, behaviour.StatusSuccess, behaviour.StatusFailure, behaviour.StatusRunning)
	default: // reset
		setStatuses(b, behaviour.StatusInvalid, behaviour.StatusInvalid, behaviour.StatusInvalid, behaviour.StatusInvalid, behaviour.StatusInvalid)
	}

	for i := range b {
		b[i].Message = fmt.Sprintf("tick %d", d.tick)
	}
	d.tree.Stamp = time.Now()
	return d.tree
}

func setStatuses(b []behaviour.Behaviour, statuses ...behaviour.Status) {
	for i, s := range statuses {
		b[i].Status = s
	}
}

func runDemo(ctx context.Context, cfg Config, interval time.Duration) error {
	logger := loggerFromContext(ctx)

	pub := feed.NewPublisher(cfg.feedConfig())
	defer pub.Close()

	demo := newDemoTree()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("publishing demo tree", "addr", cfg.Feed.Addr, "channel", cfg.Feed.Channel, "interval", interval)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			tree := demo.next()
			if err := pub.Publish(ctx, tree); err != nil {
				return fmt.Errorf("publish: %w", err)
			}
			logger.Debug("published", "tick", demo.tick)
		}
	}
}
