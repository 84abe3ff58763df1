package render

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formkit/pkg/components"
)

// RenderOptions carry per-request data renderers use without touching the
// rendered catalog.
type RenderOptions struct {
	// Theme supplies design tokens; renderers that emit CSS turn its CSSVars
	// into custom properties.
	Theme *theme.RendererConfig
	// Components resolves the stylesheets and scripts the used components
	// declare. Nil skips component assets.
	Components *components.Registry
	// InlineRuntime embeds component scripts with a known inline source
	// instead of linking them, for pages served without the asset handler.
	InlineRuntime bool
}

// RuntimeAssetKey is the theme asset key that may relocate the checkbox
// runtime script.
const RuntimeAssetKey = "runtime.indeterminate"

// Assets returns the component assets for names. The runtime script is
// inlined when requested, otherwise pointed at the theme's asset URL when the
// theme declares one.
func (o RenderOptions) Assets(names []string) (stylesheets []string, scripts []components.Script) {
	if o.Components == nil {
		return nil, nil
	}
	stylesheets, scripts = o.Components.Assets(names)
	for idx, script := range scripts {
		if script.Src != components.AssetsPrefix+components.RuntimeScriptName {
			continue
		}
		switch {
		case o.InlineRuntime:
			scripts[idx] = components.Script{Inline: components.RuntimeScript()}
		case o.Theme != nil && o.Theme.AssetURL != nil:
			if url := o.Theme.AssetURL(RuntimeAssetKey); url != "" {
				scripts[idx].Src = url
			}
		}
	}
	return stylesheets, scripts
}
