package components

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-formkit/pkg/a11y"
	"github.com/goliatone/go-formkit/pkg/diag"
	rendertemplate "github.com/goliatone/go-formkit/pkg/render/template"
	"github.com/goliatone/go-formkit/pkg/render/template/pongo"
	"github.com/goliatone/go-formkit/pkg/styles"
)

const templatePrefix = "templates/components/"

// FieldDescriptor is the resolved presentation of one render.
type FieldDescriptor struct {
	Kind        styles.Kind `json:"kind"`
	Class       string      `json:"class"`
	ElementID   string      `json:"elementId,omitempty"`
	DescribedBy string      `json:"describedBy,omitempty"`
	AriaInvalid bool        `json:"ariaInvalid"`
}

// Output is what every render returns: markup plus the descriptor it was
// built from.
type Output struct {
	HTML       string          `json:"html"`
	Descriptor FieldDescriptor `json:"descriptor"`
}

// Option configures a Composer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	resolver         *styles.Resolver
	ids              a11y.IDGenerator
	reporter         diag.Reporter
	registry         *Registry
}

// WithTemplatesFS supplies an alternate template bundle. It must contain the
// templates/components/*.tmpl files.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplateRenderer injects a template renderer, bypassing the pongo engine.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithResolver replaces the default style resolver.
func WithResolver(resolver *styles.Resolver) Option {
	return func(cfg *config) {
		if resolver != nil {
			cfg.resolver = resolver
		}
	}
}

// WithIDGenerator replaces the process-wide id counter.
func WithIDGenerator(ids a11y.IDGenerator) Option {
	return func(cfg *config) {
		if ids != nil {
			cfg.ids = ids
		}
	}
}

// WithReporter routes developer diagnostics.
func WithReporter(reporter diag.Reporter) Option {
	return func(cfg *config) {
		cfg.reporter = reporter
	}
}

// WithRegistry replaces the default component registry.
func WithRegistry(registry *Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.registry = registry
		}
	}
}

// Composer assembles resolved classes, aria wiring and native attributes into
// markup. It is safe for concurrent use; the instances it creates are not.
type Composer struct {
	templates rendertemplate.TemplateRenderer
	resolver  *styles.Resolver
	binder    a11y.Binder
	reporter  diag.Reporter
	registry  *Registry
}

// NewComposer builds a Composer applying options.
func NewComposer(options ...Option) (*Composer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		if cfg.templateFS == nil {
			cfg.templateFS = TemplatesFS()
		}
		engine, err := pongo.New(pongo.WithFS(cfg.templateFS), pongo.WithExtension(".tmpl"))
		if err != nil {
			return nil, fmt.Errorf("components: configure template renderer: %w", err)
		}
		renderer = engine
	}

	resolver := cfg.resolver
	if resolver == nil {
		resolver = styles.Default()
	}
	registry := cfg.registry
	if registry == nil {
		registry = NewDefaultRegistry()
	}

	return &Composer{
		templates: renderer,
		resolver:  resolver,
		binder:    a11y.NewBinder(cfg.ids),
		reporter:  diag.OrNop(cfg.reporter),
		registry:  registry,
	}, nil
}

// Registry returns the component registry.
func (c *Composer) Registry() *Registry {
	return c.registry
}

// Resolver returns the style resolver.
func (c *Composer) Resolver() *styles.Resolver {
	return c.resolver
}

// RenderComponent renders a registered component by name.
func (c *Composer) RenderComponent(name string, props any) (Output, error) {
	descriptor, ok := c.registry.Descriptor(name)
	if !ok {
		return Output{}, fmt.Errorf("components: component %q not registered", name)
	}
	out, err := descriptor.Renderer(c, props)
	if err != nil {
		return Output{}, fmt.Errorf("components: render %q: %w", descriptor.Name, err)
	}
	return out, nil
}

// RenderButton renders a button once.
func (c *Composer) RenderButton(props ButtonProps) (Output, error) {
	return c.NewButton().Render(props)
}

// RenderInput renders an input once. Without an explicit id a fresh one is
// generated per call.
func (c *Composer) RenderInput(props InputProps) (Output, error) {
	return c.NewInput().Render(props)
}

// RenderCheckbox renders a checkbox once. Without an explicit id a fresh one
// is generated per call.
func (c *Composer) RenderCheckbox(props CheckboxProps) (Output, error) {
	return c.NewCheckbox().Render(props)
}

func (c *Composer) execute(name string, view map[string]any) (string, error) {
	out, err := c.templates.RenderTemplate(templatePrefix+name, view)
	if err != nil {
		return "", fmt.Errorf("components: render template %q: %w", name, err)
	}
	return strings.TrimSpace(out), nil
}

func (c *Composer) report(code diag.Code, component, elementID, format string, args ...any) {
	c.reporter.Report(diag.Diagnostic{
		Code:      code,
		Component: component,
		ElementID: elementID,
		Message:   fmt.Sprintf(format, args...),
	})
}

func (c *Composer) reportInvalidAttrs(component, elementID string, names []string) {
	for _, name := range names {
		c.report(diag.CodeInvalidAttribute, component, elementID, "dropped invalid attribute name %q", name)
	}
}
