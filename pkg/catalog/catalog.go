// Package catalog describes component showcases as YAML: sections of stories,
// each story a component name plus the props to render it with.
package catalog

import (
	_ "embed"
	"fmt"
	"maps"
	"os"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Layout arranges the stories of a section.
type Layout string

const (
	LayoutRow    Layout = "row"
	LayoutColumn Layout = "column"
)

// IconRefPrefix marks a string prop that names an entry of Catalog.Icons.
const IconRefPrefix = "icon:"

// Catalog is a titled list of sections.
type Catalog struct {
	Title       string            `yaml:"title" json:"title" validate:"required"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
	Icons       map[string]string `yaml:"icons,omitempty" json:"icons,omitempty" validate:"dive,keys,slug,endkeys,required"`
	Sections    []Section         `yaml:"sections" json:"sections" validate:"required,min=1,dive"`
}

// Section groups stories of one component.
type Section struct {
	ID          string  `yaml:"id" json:"id" validate:"required,slug"`
	Title       string  `yaml:"title" json:"title" validate:"required"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Component   string  `yaml:"component" json:"component" validate:"required"`
	Layout      Layout  `yaml:"layout,omitempty" json:"layout,omitempty" validate:"omitempty,oneof=row column"`
	Stories     []Story `yaml:"stories" json:"stories" validate:"required,min=1,dive"`
}

// Story is one rendered example. Component overrides the section component.
type Story struct {
	Name        string         `yaml:"name" json:"name" validate:"required"`
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	Component   string         `yaml:"component,omitempty" json:"component,omitempty"`
	Props       map[string]any `yaml:"props,omitempty" json:"props,omitempty"`
}

//go:embed default.yaml
var defaultCatalog []byte

// Default returns the built-in showcase. Each call returns a fresh copy.
func Default() *Catalog {
	cat, err := Parse(defaultCatalog, "default.yaml")
	if err != nil {
		panic(err)
	}
	return cat
}

// LoadFile reads and validates a catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Source: path, Err: err}
	}
	return Parse(data, path)
}

// Parse decodes and validates a catalog. source names the input in errors.
func Parse(data []byte, source string) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, &ParseError{Source: source, Line: extractLine(err), Err: err}
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// ComponentOf returns the component a story renders.
func (s Section) ComponentOf(story Story) string {
	if c := strings.TrimSpace(story.Component); c != "" {
		return c
	}
	return s.Component
}

// Slug derives a URL-safe key from the story name.
func (s Story) Slug() string {
	return slugify(s.Name)
}

// Key identifies a story across the catalog as "<section>/<story-slug>".
func Key(section Section, story Story) string {
	return section.ID + "/" + story.Slug()
}

// Keys lists every story key in catalog order.
func (c *Catalog) Keys() []string {
	var keys []string
	for _, section := range c.Sections {
		for _, story := range section.Stories {
			keys = append(keys, Key(section, story))
		}
	}
	return keys
}

// Find returns the story with key.
func (c *Catalog) Find(key string) (Section, Story, bool) {
	for _, section := range c.Sections {
		for _, story := range section.Stories {
			if Key(section, story) == key {
				return section, story, true
			}
		}
	}
	return Section{}, Story{}, false
}

// Components returns the component names the catalog renders, sorted.
func (c *Catalog) Components() []string {
	seen := make(map[string]struct{})
	for _, section := range c.Sections {
		for _, story := range section.Stories {
			seen[strings.ToLower(section.ComponentOf(story))] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

// AddSection appends a section after validating the result.
func (c *Catalog) AddSection(section Section) error {
	next := *c
	next.Sections = append(slices.Clone(c.Sections), section)
	if err := next.Validate(); err != nil {
		return err
	}
	c.Sections = next.Sections
	return nil
}

// Only returns a copy holding just the story with key.
func (c *Catalog) Only(key string) (*Catalog, error) {
	section, story, ok := c.Find(key)
	if !ok {
		return nil, fmt.Errorf("catalog: story %q not found", key)
	}
	section.Stories = []Story{story}
	out := *c
	out.Sections = []Section{section}
	return &out, nil
}

// resolveProps copies props, swapping icon references for their markup.
func (c *Catalog) resolveProps(props map[string]any) (map[string]any, error) {
	if len(props) == 0 {
		return map[string]any{}, nil
	}
	out := make(map[string]any, len(props))
	for key, value := range props {
		name, ok := iconRef(value)
		if !ok {
			out[key] = value
			continue
		}
		markup, found := c.Icons[name]
		if !found {
			return nil, fmt.Errorf("catalog: prop %q references unknown icon %q", key, name)
		}
		out[key] = markup
	}
	return out, nil
}

func iconRef(value any) (string, bool) {
	s, ok := value.(string)
	if !ok || !strings.HasPrefix(s, IconRefPrefix) {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(s, IconRefPrefix)), true
}

var slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(name string) string {
	return strings.Trim(slugInvalid.ReplaceAllString(strings.ToLower(name), "-"), "-")
}
