// Package cli implements the btviz command-line interface.
//
// This package provides commands for rendering behaviour-tree snapshots,
// watching a live snapshot feed, serving rendered trees over HTTP, and
// publishing a synthetic demo tree. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Render a snapshot file to DOT, SVG, or PNG
//   - watch: Follow the live snapshot feed in the terminal
//   - serve: Expose the latest rendered tree over HTTP
//   - demo: Publish a synthetic ticking tree to the feed
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/a17hq/btviz/pkg/buildinfo"
)

// Execute runs the btviz CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool
	var configPath string

	root := &cobra.Command{
		Use:          "btviz",
		Short:        "btviz visualizes behaviour trees as directed graphs",
		Long:         `btviz renders runtime behaviour-tree snapshots as directed graphs, colouring every node and edge by execution status so an operator can see at a glance what the tree is doing.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to TOML config file")

	root.AddCommand(newRenderCmd(&configPath))
	root.AddCommand(newWatchCmd(&configPath))
	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newDemoCmd(&configPath))

	return root.ExecuteContext(ctx)
}
