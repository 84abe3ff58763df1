package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formkit/pkg/catalog"
	"github.com/goliatone/go-formkit/pkg/components"
	"github.com/goliatone/go-formkit/pkg/render"
)

const shutdownTimeout = 5 * time.Second

type serveOptions struct {
	addr   string
	source catalogSource
}

func newServeCmd(state *app) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog page and component assets over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, state, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address (overrides the config file)")
	addSourceFlags(cmd, &opts.source)

	return cmd
}

func runServe(cmd *cobra.Command, state *app, opts *serveOptions) error {
	if opts.addr != "" {
		state.cfg.Addr = opts.addr
		if err := state.cfg.Validate(); err != nil {
			return err
		}
	}

	handler, err := newServeHandler(cmd.Context(), state, opts.source)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:              state.cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		state.log.Info().Str("addr", server.Addr).Msg("serving catalog")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	state.log.Info().Msg("shutting down")
	return server.Shutdown(shutdownCtx)
}

// newServeHandler renders the catalog on every request so a fresh composer
// hands out fresh ids. The catalog itself is loaded once.
func newServeHandler(ctx context.Context, state *app, src catalogSource) (http.Handler, error) {
	cat, err := state.loadCatalog(ctx, src)
	if err != nil {
		return nil, err
	}
	renderers, err := newRenderers()
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("GET "+components.AssetsPrefix, http.StripPrefix(components.AssetsPrefix, http.FileServerFS(components.AssetsFS())))
	mux.Handle("GET /{$}", catalogHandler(state, cat, renderers, "html"))
	mux.Handle("GET /catalog.json", catalogHandler(state, cat, renderers, "json"))
	return mux, nil
}

func catalogHandler(state *app, cat *catalog.Catalog, renderers *render.Registry, format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := state.log.With().Str("path", r.URL.Path).Logger()

		renderer, err := renderers.Get(format)
		if err != nil {
			log.Error().Err(err).Msg("renderer lookup failed")
			http.Error(w, "renderer unavailable", http.StatusInternalServerError)
			return
		}
		composer, err := state.newComposer()
		if err != nil {
			log.Error().Err(err).Msg("composer setup failed")
			http.Error(w, "render failed", http.StatusInternalServerError)
			return
		}
		rendered, err := catalog.Render(composer, cat)
		if err != nil {
			log.Error().Err(err).Msg("catalog render failed")
			http.Error(w, "render failed", http.StatusInternalServerError)
			return
		}
		options, err := state.renderOptions(composer)
		if err != nil {
			log.Error().Err(err).Msg("theme selection failed")
			http.Error(w, "render failed", http.StatusInternalServerError)
			return
		}
		out, err := renderer.Render(r.Context(), rendered, options)
		if err != nil {
			log.Error().Err(err).Msg("page render failed")
			http.Error(w, "render failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", renderer.ContentType())
		if _, err := w.Write(out); err != nil {
			log.Debug().Err(err).Msg("write response")
		}
	}
}
