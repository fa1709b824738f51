package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/a17hq/btviz/pkg/behaviour"
	"github.com/a17hq/btviz/pkg/dotcode"
	"github.com/a17hq/btviz/pkg/errors"
	"github.com/a17hq/btviz/pkg/render/dot"
	"github.com/a17hq/btviz/pkg/render/graphviz"
)

// Output formats for the render command.
const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
)

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatDOT: true, formatSVG: true, formatPNG: true}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string  // output file path, "-" for stdout
	format  string  // output format: "dot", "svg", "png"
	rank    string  // rank mode passed to the layout
	rankDir string  // layout direction: TB or LR
	rankSep float64 // separation between layout ranks
}

// newRenderCmd creates the render command for one-shot snapshot rendering.
//
// Default settings:
//   - format: svg
//   - rank: same, rankdir: TB, ranksep: 0.2
func newRenderCmd(configPath *string) *cobra.Command {
	opts := renderOpts{
		format:  formatSVG,
		rank:    dotcode.DefaultRank,
		rankDir: dotcode.DefaultRankDir,
		rankSep: dotcode.DefaultRankSep,
	}

	cmd := &cobra.Command{
		Use:   "render [snapshot.json]",
		Short: "Render a behaviour-tree snapshot to DOT, SVG, or PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			applyLayoutDefaults(&opts, cfg.Layout, cmd)

			if !validFormats[opts.format] {
				return errors.New(errors.ErrCodeInvalidFormat,
					"invalid format: %q (must be 'dot', 'svg', or 'png')", opts.format)
			}
			return runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input path with new extension, '-' for stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), dot, png")
	cmd.Flags().StringVar(&opts.rank, "rank", opts.rank, "rank mode: none, same, min, max, source, sink")
	cmd.Flags().StringVar(&opts.rankDir, "rankdir", opts.rankDir, "layout direction: TB or LR")
	cmd.Flags().Float64Var(&opts.rankSep, "ranksep", opts.rankSep, "separation between layout ranks")

	return cmd
}

// applyLayoutDefaults overlays the config file's layout section onto flags
// the user did not set explicitly.
func applyLayoutDefaults(opts *renderOpts, layout LayoutConfig, cmd *cobra.Command) {
	if !cmd.Flags().Changed("rank") && layout.Rank != "" {
		opts.rank = layout.Rank
	}
	if !cmd.Flags().Changed("rankdir") && layout.RankDir != "" {
		opts.rankDir = layout.RankDir
	}
	if !cmd.Flags().Changed("ranksep") && layout.RankSep != 0 {
		opts.rankSep = layout.RankSep
	}
}

func runRender(cmd *cobra.Command, path string, opts renderOpts) error {
	logger := loggerFromContext(cmd.Context())

	tree, err := behaviour.ReadTreeFile(path)
	if err != nil {
		return err
	}
	logger.Debug("loaded snapshot", "behaviours", len(tree.Behaviours), "stamp", tree.Stamp)

	factory := factoryFor(opts.format)
	gen := dotcode.NewGenerator()

	prog := newProgress(logger)
	out, err := gen.Generate(factory, tree,
		dotcode.WithRank(opts.rank),
		dotcode.WithRankDir(opts.rankDir),
		dotcode.WithRankSep(opts.rankSep),
	)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d behaviours", len(tree.Behaviours)))

	if opts.output == "-" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}

	dest := opts.output
	if dest == "" {
		dest = replaceExt(path, opts.format)
	}
	if err := os.WriteFile(dest, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}
	logger.Info("wrote output", "path", dest)
	return nil
}

// factoryFor returns the rendering backend for an output format.
func factoryFor(format string) dotcode.Factory {
	switch format {
	case formatDOT:
		return dot.New()
	case formatPNG:
		return graphviz.NewPNG()
	default:
		return graphviz.NewSVG()
	}
}

// replaceExt swaps path's extension for the given one.
func replaceExt(path, ext string) string {
	if i := strings.LastIndex(path, "."); i > 0 {
		path = path[:i]
	}
	return path + "." + ext
}
