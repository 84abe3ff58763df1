package render

import (
	"context"

	"github.com/goliatone/go-formkit/pkg/catalog"
)

// Renderer turns a rendered catalog into a document (an HTML page, a JSON
// dump of descriptors, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, rendered *catalog.Rendered, options RenderOptions) ([]byte, error)
}
