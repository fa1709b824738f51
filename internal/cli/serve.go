package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/a17hq/btviz/pkg/behaviour"
	"github.com/a17hq/btviz/pkg/dotcode"
	btverrors "github.com/a17hq/btviz/pkg/errors"
	"github.com/a17hq/btviz/pkg/feed"
	"github.com/a17hq/btviz/pkg/render/dot"
	"github.com/a17hq/btviz/pkg/render/graphviz"
)

// newServeCmd creates the serve command exposing rendered trees over HTTP.
func newServeCmd(configPath *string) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the latest rendered behaviour tree over HTTP",
		Long: `Serve subscribes to the snapshot feed and exposes the most recent tree:

  GET /tree.svg   rendered SVG of the latest snapshot
  GET /tree.dot   DOT source of the latest snapshot
  GET /healthz    liveness check

Each request re-renders from the latest snapshot, so a polling display
always sees current statuses.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}

// treeServer holds the latest snapshot and the per-format generators.
// Generators are not safe for concurrent use, so mu guards both the
// snapshot slot and every Generate call.
type treeServer struct {
	mu     sync.Mutex
	latest behaviour.Tree

	layout LayoutConfig
	svgGen *dotcode.Generator
	svg    *graphviz.Factory
	dotGen *dotcode.Generator
	dot    *dot.Factory
}

func newTreeServer(layout LayoutConfig) *treeServer {
	return &treeServer{
		layout: layout,
		svgGen: dotcode.NewGenerator(),
		svg:    graphviz.NewSVG(),
		dotGen: dotcode.NewGenerator(),
		dot:    dot.New(),
	}
}

// update replaces the latest snapshot.
func (s *treeServer) update(t behaviour.Tree) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = t
}

// render produces the latest tree through the given generator and factory.
func (s *treeServer) render(gen *dotcode.Generator, f dotcode.Factory) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gen.Generate(f, s.latest,
		dotcode.WithRank(s.layout.Rank),
		dotcode.WithRankDir(s.layout.RankDir),
		dotcode.WithRankSep(s.layout.RankSep),
	)
}

func (s *treeServer) handleSVG(w http.ResponseWriter, r *http.Request) {
	out, err := s.render(s.svgGen, s.svg)
	if err != nil {
		writeRenderError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(out)
}

func (s *treeServer) handleDOT(w http.ResponseWriter, r *http.Request) {
	out, err := s.render(s.dotGen, s.dot)
	if err != nil {
		writeRenderError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/vnd.graphviz")
	w.Write(out)
}

// writeRenderError maps projection failures to HTTP statuses. A dangling
// child means the feed handed us an inconsistent snapshot; the client
// should retry on the next poll, so 503 rather than 500.
func writeRenderError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if btverrors.Is(err, btverrors.ErrCodeDanglingChild) {
		status = http.StatusServiceUnavailable
	}
	http.Error(w, btverrors.UserMessage(err), status)
}

func runServe(ctx context.Context, cfg Config, addr string) error {
	logger := loggerFromContext(ctx)

	sub := feed.NewSubscriber(cfg.feedConfig(), logger)
	defer sub.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	snapshots, err := sub.Subscribe(ctx)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", cfg.Feed.Addr, err)
	}

	srv := newTreeServer(cfg.Layout)
	go func() {
		for tree := range snapshots {
			srv.update(tree)
			logger.Debug("snapshot received", "behaviours", len(tree.Behaviours), "stamp", tree.Stamp)
		}
	}()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/tree.svg", srv.handleSVG)
	r.Get("/tree.dot", srv.handleDOT)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	httpSrv := &http.Server{Addr: addr, Handler: r}
	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		httpSrv.Shutdown(shutdownCtx)
	}()

	logger.Info("serving", "addr", addr, "channel", cfg.Feed.Channel)
	if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return ctx.Err()
}
