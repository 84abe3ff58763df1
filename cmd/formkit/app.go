package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-formkit/internal/config"
	"github.com/goliatone/go-formkit/pkg/catalog"
	"github.com/goliatone/go-formkit/pkg/components"
	"github.com/goliatone/go-formkit/pkg/diag"
	"github.com/goliatone/go-formkit/pkg/render"
	"github.com/goliatone/go-formkit/pkg/renderers/descriptors"
	"github.com/goliatone/go-formkit/pkg/renderers/page"
	"github.com/goliatone/go-formkit/pkg/schemafields"
	"github.com/goliatone/go-formkit/pkg/tokens"
)

// app is the state shared by every command once the root has run.
type app struct {
	cfg  config.Config
	log  zerolog.Logger
	pick picker
}

// catalogSource selects the stories a command works on.
type catalogSource struct {
	openapi   string
	operation string
	story     string
}

// loadCatalog returns the configured catalog (or the built-in one), with an
// OpenAPI operation section appended and narrowed to one story when asked.
func (a *app) loadCatalog(ctx context.Context, src catalogSource) (*catalog.Catalog, error) {
	var (
		cat *catalog.Catalog
		err error
	)
	switch {
	case a.cfg.Catalog != "":
		cat, err = catalog.LoadFile(a.cfg.Catalog)
		if err != nil {
			return nil, err
		}
	case src.openapi == "":
		cat = catalog.Default()
	}

	if src.openapi != "" {
		cat, err = a.appendOperation(ctx, cat, src)
		if err != nil {
			return nil, err
		}
	}

	if key := strings.TrimSpace(src.story); key != "" {
		return cat.Only(key)
	}
	return cat, nil
}

func (a *app) appendOperation(ctx context.Context, cat *catalog.Catalog, src catalogSource) (*catalog.Catalog, error) {
	if strings.TrimSpace(src.operation) == "" {
		return nil, fmt.Errorf("--operation is required with --openapi")
	}
	data, err := os.ReadFile(src.openapi)
	if err != nil {
		return nil, fmt.Errorf("read openapi document: %w", err)
	}
	doc, err := schemafields.Load(ctx, data)
	if err != nil {
		return nil, err
	}
	result, err := schemafields.Section(doc, src.operation)
	if err != nil {
		return nil, err
	}
	if len(result.Skipped) > 0 {
		a.log.Info().
			Str("operation", src.operation).
			Strs("skipped", result.Skipped).
			Msg("properties without a matching component were skipped")
	}

	if cat == nil {
		title := src.operation
		if doc.Info != nil && doc.Info.Title != "" {
			title = doc.Info.Title
		}
		cat = &catalog.Catalog{Title: title}
	}
	if err := cat.AddSection(result.Section); err != nil {
		return nil, err
	}
	return cat, nil
}

// newComposer wires component diagnostics into the logger, and into extra
// reporters such as a recorder for --strict.
func (a *app) newComposer(extra ...diag.Reporter) (*components.Composer, error) {
	reporters := append([]diag.Reporter{diag.NewLogger(a.log)}, extra...)
	return components.NewComposer(components.WithReporter(diag.Multi(reporters...)))
}

func (a *app) renderOptions(composer *components.Composer) (render.RenderOptions, error) {
	themeCfg, err := tokens.Select(tokens.NewDefaultRegistry(), a.cfg.Theme, a.cfg.ThemeVariant)
	if err != nil {
		return render.RenderOptions{}, err
	}
	return render.RenderOptions{
		Theme:         themeCfg,
		Components:    composer.Registry(),
		InlineRuntime: a.cfg.InlineRuntime,
	}, nil
}

func newRenderers() (*render.Registry, error) {
	html, err := page.New()
	if err != nil {
		return nil, err
	}
	registry := render.NewRegistry()
	registry.MustRegister(html)
	registry.MustRegister(descriptors.New())
	return registry, nil
}
