// Package tokens turns go-theme manifests into the design tokens and CSS
// custom properties the component classes refer to (primary-500, error,
// success-dark and friends).
package tokens

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
)

// DefaultTheme and DarkVariant name the built-in manifest.
const (
	DefaultTheme = "formkit"
	DarkVariant  = "dark"
)

// ErrThemeNotFound is returned when a selection names an unknown theme or
// variant.
var ErrThemeNotFound = errors.New("tokens: theme not found")

// DefaultManifest returns the palette the default style tables are written
// against, plus a dark variant.
func DefaultManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    DefaultTheme,
		Version: "1.0.0",
		Tokens: map[string]string{
			"color-primary-50":    "#eff6ff",
			"color-primary-100":   "#dbeafe",
			"color-primary-500":   "#3b82f6",
			"color-primary-600":   "#2563eb",
			"color-primary-700":   "#1d4ed8",
			"color-secondary-500": "#8b5cf6",
			"color-secondary-600": "#7c3aed",
			"color-secondary-700": "#6d28d9",
			"color-error":         "#ef4444",
			"color-error-dark":    "#b91c1c",
			"color-success":       "#22c55e",
			"color-success-dark":  "#15803d",
			"color-surface":       "#f9fafb",
			"color-text":          "#111827",
		},
		Assets: theme.Assets{
			Prefix: "/formkit/assets",
			Files: map[string]string{
				"runtime.indeterminate": "formkit-indeterminate.js",
			},
		},
		Variants: map[string]theme.Variant{
			DarkVariant: {
				Tokens: map[string]string{
					"color-surface": "#111827",
					"color-text":    "#f9fafb",
				},
			},
		},
	}
}

// Registry holds manifests and resolves selections. It implements
// theme.ThemeSelector; every manifest is also checked by a go-theme registry
// on the way in.
type Registry struct {
	mu        sync.RWMutex
	manifests map[string]*theme.Manifest
	provider  interface {
		Register(*theme.Manifest) error
	}
}

var _ theme.ThemeSelector = (*Registry)(nil)

// NewRegistry returns a registry holding the given manifests.
func NewRegistry(manifests ...*theme.Manifest) (*Registry, error) {
	reg := &Registry{
		manifests: make(map[string]*theme.Manifest),
		provider:  theme.NewRegistry(),
	}
	for _, manifest := range manifests {
		if err := reg.Register(manifest); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// NewDefaultRegistry returns a registry with DefaultManifest.
func NewDefaultRegistry() *Registry {
	reg, err := NewRegistry(DefaultManifest())
	if err != nil {
		panic(err)
	}
	return reg
}

// Register adds a manifest.
func (r *Registry) Register(manifest *theme.Manifest) error {
	if manifest == nil || strings.TrimSpace(manifest.Name) == "" {
		return errors.New("tokens: manifest name is required")
	}
	if err := r.provider.Register(manifest); err != nil {
		return fmt.Errorf("tokens: register %q: %w", manifest.Name, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.manifests[manifest.Name] = manifest
	return nil
}

// Select returns the manifest for name. An empty name selects the default
// theme; an empty variant selects the base tokens.
func (r *Registry) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultTheme
	}
	variant = strings.TrimSpace(variant)

	r.mu.RLock()
	manifest, ok := r.manifests[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("%w: %q has no variant %q", ErrThemeNotFound, name, variant)
		}
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}

// Names returns the registered theme names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.manifests))
}

// Select resolves name/variant through selector into a renderer config.
func Select(selector theme.ThemeSelector, name, variant string) (*theme.RendererConfig, error) {
	if selector == nil {
		return nil, errors.New("tokens: selector is nil")
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, err
	}
	if selection == nil || selection.Manifest == nil {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}
	return Resolve(selection.Manifest, selection.Variant), nil
}

// Resolve merges the base tokens, templates and assets of manifest with the
// overrides of variant. Every token becomes a --<token> CSS variable.
func Resolve(manifest *theme.Manifest, variant string) *theme.RendererConfig {
	if manifest == nil {
		return nil
	}

	tokens := maps.Clone(manifest.Tokens)
	partials := maps.Clone(manifest.Templates)
	files := maps.Clone(manifest.Assets.Files)
	prefix := manifest.Assets.Prefix

	if v, ok := manifest.Variants[variant]; ok {
		tokens = merge(tokens, v.Tokens)
		partials = merge(partials, v.Templates)
		files = merge(files, v.Assets.Files)
		if v.Assets.Prefix != "" {
			prefix = v.Assets.Prefix
		}
	}

	return &theme.RendererConfig{
		Theme:    manifest.Name,
		Variant:  variant,
		Tokens:   tokens,
		Partials: partials,
		CSSVars:  CSSVars(tokens),
		AssetURL: assetResolver(prefix, files),
	}
}

// CSSVars maps each token to a custom property name.
func CSSVars(tokens map[string]string) map[string]string {
	if len(tokens) == 0 {
		return nil
	}
	vars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		vars["--"+strings.TrimPrefix(key, "--")] = value
	}
	return vars
}

// Style renders vars as a declaration list sorted by name, ready for a
// style attribute or a :root rule.
func Style(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	parts := make([]string, 0, len(vars))
	for _, key := range slices.Sorted(maps.Keys(vars)) {
		parts = append(parts, key+": "+vars[key])
	}
	return strings.Join(parts, "; ") + ";"
}

func merge(base, overrides map[string]string) map[string]string {
	if len(overrides) == 0 {
		return base
	}
	if base == nil {
		base = make(map[string]string, len(overrides))
	}
	maps.Copy(base, overrides)
	return base
}

func assetResolver(prefix string, files map[string]string) func(string) string {
	prefix = strings.TrimRight(prefix, "/")
	return func(key string) string {
		file, ok := files[key]
		if !ok || file == "" {
			return ""
		}
		if strings.HasPrefix(file, "/") || strings.Contains(file, "://") || prefix == "" {
			return file
		}
		return prefix + "/" + file
	}
}
