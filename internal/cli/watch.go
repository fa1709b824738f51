package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/a17hq/btviz/pkg/console"
	"github.com/a17hq/btviz/pkg/feed"
)

// newWatchCmd creates the watch command for following the live feed.
func newWatchCmd(configPath *string) *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow the live behaviour-tree feed in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			return runWatch(cmd.Context(), cmd, cfg, once)
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "print the next snapshot and exit")

	return cmd
}

func runWatch(ctx context.Context, cmd *cobra.Command, cfg Config, once bool) error {
	logger := loggerFromContext(ctx)

	sub := feed.NewSubscriber(cfg.feedConfig(), logger)
	defer sub.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	snapshots, err := sub.Subscribe(ctx)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", cfg.Feed.Addr, err)
	}
	logger.Debug("subscribed", "addr", cfg.Feed.Addr, "channel", cfg.Feed.Channel)

	if once {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case tree, ok := <-snapshots:
			if !ok {
				return fmt.Errorf("feed closed before a snapshot arrived")
			}
			fmt.Fprintln(cmd.OutOrStdout(), console.Banner("behaviour tree @ "+tree.Stamp.Format("15:04:05.000")))
			fmt.Fprint(cmd.OutOrStdout(), console.Tree(tree))
			return nil
		}
	}

	p := tea.NewProgram(newWatchModel(cfg.Feed.Channel, snapshots), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}
