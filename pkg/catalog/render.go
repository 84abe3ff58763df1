package catalog

import (
	"fmt"

	"github.com/goliatone/go-formkit/pkg/components"
)

// RenderedStory is a story with its markup.
type RenderedStory struct {
	Key         string            `json:"key"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Component   string            `json:"component"`
	Output      components.Output `json:"output"`
}

// RenderedSection is a section with its rendered stories.
type RenderedSection struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Layout      Layout          `json:"layout"`
	Stories     []RenderedStory `json:"stories"`
}

// Rendered is the whole catalog rendered through one Composer.
type Rendered struct {
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Sections    []RenderedSection `json:"sections"`
	// Components lists the component names used, for asset lookup.
	Components []string `json:"components"`
}

// Render renders every story in catalog order. The first failing story
// aborts the render.
func Render(composer *components.Composer, cat *Catalog) (*Rendered, error) {
	if composer == nil {
		return nil, fmt.Errorf("catalog: composer is nil")
	}
	if cat == nil {
		return nil, fmt.Errorf("catalog: catalog is nil")
	}

	out := &Rendered{
		Title:       cat.Title,
		Description: cat.Description,
		Sections:    make([]RenderedSection, 0, len(cat.Sections)),
		Components:  cat.Components(),
	}
	for _, section := range cat.Sections {
		layout := section.Layout
		if layout == "" {
			layout = LayoutRow
		}
		rendered := RenderedSection{
			ID:          section.ID,
			Title:       section.Title,
			Description: section.Description,
			Layout:      layout,
			Stories:     make([]RenderedStory, 0, len(section.Stories)),
		}
		for _, story := range section.Stories {
			key := Key(section, story)
			props, err := cat.resolveProps(story.Props)
			if err != nil {
				return nil, fmt.Errorf("catalog: story %q: %w", key, err)
			}
			component := section.ComponentOf(story)
			output, err := composer.RenderComponent(component, props)
			if err != nil {
				return nil, fmt.Errorf("catalog: story %q: %w", key, err)
			}
			rendered.Stories = append(rendered.Stories, RenderedStory{
				Key:         key,
				Name:        story.Name,
				Description: story.Description,
				Component:   component,
				Output:      output,
			})
		}
		out.Sections = append(out.Sections, rendered)
	}
	return out, nil
}
