// Package page renders a catalog as a standalone HTML showcase page.
package page

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-formkit/pkg/catalog"
	"github.com/goliatone/go-formkit/pkg/components"
	"github.com/goliatone/go-formkit/pkg/render"
	rendertemplate "github.com/goliatone/go-formkit/pkg/render/template"
	"github.com/goliatone/go-formkit/pkg/render/template/pongo"
	"github.com/goliatone/go-formkit/pkg/tokens"
)

const templateName = "templates/page.tmpl"

// Layout classes applied to the story container of a section.
var layoutClasses = map[catalog.Layout]string{
	catalog.LayoutRow:    "flex flex-wrap items-start gap-4",
	catalog.LayoutColumn: "flex flex-col gap-4 max-w-md",
}

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. It must
// contain templates/page.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the page renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := pongo.New(
			pongo.WithFS(cfg.templateFS),
			pongo.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("page renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(_ context.Context, rendered *catalog.Rendered, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("page renderer: template renderer is nil")
	}
	if rendered == nil {
		return nil, fmt.Errorf("page renderer: rendered catalog is nil")
	}

	result, err := r.templates.RenderTemplate(templateName, buildView(rendered, options))
	if err != nil {
		return nil, fmt.Errorf("page renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func buildView(rendered *catalog.Rendered, options render.RenderOptions) map[string]any {
	sections := make([]map[string]any, 0, len(rendered.Sections))
	for _, section := range rendered.Sections {
		stories := make([]map[string]any, 0, len(section.Stories))
		for _, story := range section.Stories {
			stories = append(stories, map[string]any{
				"key":         story.Key,
				"name":        story.Name,
				"description": story.Description,
				"component":   story.Component,
				"html":        story.Output.HTML,
			})
		}
		class, ok := layoutClasses[section.Layout]
		if !ok {
			class = layoutClasses[catalog.LayoutRow]
		}
		sections = append(sections, map[string]any{
			"id":           section.ID,
			"title":        section.Title,
			"description":  section.Description,
			"layout":       string(section.Layout),
			"layout_class": class,
			"stories":      stories,
		})
	}

	stylesheets, scripts := options.Assets(rendered.Components)

	view := map[string]any{
		"title":       rendered.Title,
		"description": rendered.Description,
		"sections":    sections,
		"stylesheets": stylesheets,
		"scripts":     scriptViews(scripts),
	}
	if cfg := options.Theme; cfg != nil {
		view["theme"] = cfg.Theme
		view["variant"] = cfg.Variant
		view["css_vars"] = tokens.Style(cfg.CSSVars)
	}
	return view
}

func scriptViews(scripts []components.Script) []map[string]any {
	out := make([]map[string]any, 0, len(scripts))
	for _, script := range scripts {
		typ := script.Type
		if script.Module {
			typ = "module"
		}
		out = append(out, map[string]any{
			"src":    script.Src,
			"type":   typ,
			"inline": script.Inline,
			"async":  script.Async,
			"defer":  script.Defer,
		})
	}
	return out
}
