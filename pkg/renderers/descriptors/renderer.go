// Package descriptors renders a catalog as JSON: every story with its markup
// and the resolved field descriptor, plus the theme and assets the page would
// load. Useful for snapshot tests and for clients that mount markup
// themselves.
package descriptors

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-formkit/pkg/catalog"
	"github.com/goliatone/go-formkit/pkg/components"
	"github.com/goliatone/go-formkit/pkg/render"
)

// Document is the JSON payload.
type Document struct {
	*catalog.Rendered
	Theme       *Theme   `json:"theme,omitempty"`
	Stylesheets []string `json:"stylesheets,omitempty"`
	Scripts     []Script `json:"scripts,omitempty"`
}

// Theme echoes the selected theme and its CSS variables.
type Theme struct {
	Name    string            `json:"name"`
	Variant string            `json:"variant,omitempty"`
	CSSVars map[string]string `json:"cssVars,omitempty"`
}

// Script is components.Script with JSON names.
type Script struct {
	Src    string `json:"src,omitempty"`
	Inline bool   `json:"inline,omitempty"`
	Defer  bool   `json:"defer,omitempty"`
	Async  bool   `json:"async,omitempty"`
	Module bool   `json:"module,omitempty"`
}

type Option func(*Renderer)

// WithIndent sets the indentation; an empty string produces compact output.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

type Renderer struct {
	indent string
}

var _ render.Renderer = (*Renderer)(nil)

func New(options ...Option) *Renderer {
	r := &Renderer{indent: "  "}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string {
	return "json"
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

func (r *Renderer) Render(_ context.Context, rendered *catalog.Rendered, options render.RenderOptions) ([]byte, error) {
	if rendered == nil {
		return nil, fmt.Errorf("descriptors renderer: rendered catalog is nil")
	}

	doc := Document{Rendered: rendered}
	if cfg := options.Theme; cfg != nil {
		doc.Theme = &Theme{Name: cfg.Theme, Variant: cfg.Variant, CSSVars: cfg.CSSVars}
	}
	stylesheets, scripts := options.Assets(rendered.Components)
	doc.Stylesheets = stylesheets
	doc.Scripts = convertScripts(scripts)

	var (
		payload []byte
		err     error
	)
	if r.indent == "" {
		payload, err = json.Marshal(doc)
	} else {
		payload, err = json.MarshalIndent(doc, "", r.indent)
	}
	if err != nil {
		return nil, fmt.Errorf("descriptors renderer: encode: %w", err)
	}
	return append(payload, '\n'), nil
}

func convertScripts(scripts []components.Script) []Script {
	if len(scripts) == 0 {
		return nil
	}
	out := make([]Script, 0, len(scripts))
	for _, script := range scripts {
		out = append(out, Script{
			Src:    script.Src,
			Inline: script.Inline != "",
			Defer:  script.Defer,
			Async:  script.Async,
			Module: script.Module,
		})
	}
	return out
}
