package components

import (
	"embed"
	"io/fs"
)

//go:embed templates/components/*.tmpl
var embeddedTemplates embed.FS

//go:embed assets/*
var embeddedAssets embed.FS

const (
	// RuntimeScriptName applies data-indeterminate onto live checkboxes.
	RuntimeScriptName = "formkit-indeterminate.js"
	// AssetsPrefix is the URL prefix the default registry points scripts at.
	AssetsPrefix = "/formkit/assets/"
)

// TemplatesFS exposes the embedded component templates.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// AssetsFS exposes the embedded runtime assets so callers can serve them
// under AssetsPrefix.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}

// RuntimeScript returns the indeterminate runtime source for inlining.
func RuntimeScript() string {
	data, err := fs.ReadFile(embeddedAssets, "assets/"+RuntimeScriptName)
	if err != nil {
		return ""
	}
	return string(data)
}
