package catalog_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formkit/pkg/catalog"
	"github.com/goliatone/go-formkit/pkg/components"
	"github.com/goliatone/go-formkit/pkg/diag"
)

func TestDefaultCatalogRenders(t *testing.T) {
	t.Parallel()

	cat := catalog.Default()
	require.Equal(t, []string{"button", "checkbox", "input"}, cat.Components())

	recorder := &diag.Recorder{}
	composer, err := components.NewComposer(components.WithReporter(recorder))
	require.NoError(t, err)

	rendered, err := catalog.Render(composer, cat)
	require.NoError(t, err)
	require.Len(t, rendered.Sections, len(cat.Sections))
	require.Empty(t, recorder.Diagnostics(), "default stories should not misuse components")

	_, story, ok := cat.Find("checkbox-states/indeterminate")
	require.True(t, ok)
	require.Equal(t, true, story.Props["indeterminate"])

	for _, section := range rendered.Sections {
		for _, story := range section.Stories {
			require.NotEmpty(t, story.Output.HTML, story.Key)
			require.NotContains(t, story.Output.HTML, catalog.IconRefPrefix, story.Key)
		}
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	valid := `title: Demo
icons:
  dot: '<svg viewBox="0 0 2 2"><circle cx="1" cy="1" r="1"/></svg>'
sections:
  - id: buttons
    title: Buttons
    component: button
    stories:
      - name: Go
        props: {label: Go, leadingIcon: "icon:dot"}
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cat *catalog.Catalog, err error)
	}{
		{
			name:     "valid catalog is parsed",
			contents: valid,
			assert: func(t *testing.T, cat *catalog.Catalog, err error) {
				require.NoError(t, err)
				require.Equal(t, "Demo", cat.Title)
				require.Equal(t, []string{"buttons/go"}, cat.Keys())
			},
		},
		{
			name:     "malformed yaml reports a line",
			contents: "title: Demo\nsections:\n  - id: [broken\n",
			assert: func(t *testing.T, cat *catalog.Catalog, err error) {
				require.Error(t, err)
				var parseErr *catalog.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Positive(t, parseErr.Line)
			},
		},
		{
			name:     "missing sections",
			contents: "title: Empty\n",
			assert: func(t *testing.T, cat *catalog.Catalog, err error) {
				require.ErrorIs(t, err, catalog.ErrInvalidCatalog)
				var verr *catalog.ValidationError
				require.ErrorAs(t, err, &verr)
				require.Equal(t, "sections", verr.Field)
			},
		},
		{
			name: "section id must be a slug",
			contents: `title: Demo
sections:
  - id: Bad Id
    title: Buttons
    component: button
    stories:
      - name: Go
`,
			assert: func(t *testing.T, cat *catalog.Catalog, err error) {
				require.ErrorIs(t, err, catalog.ErrInvalidCatalog)
				require.Contains(t, err.Error(), "slug")
			},
		},
		{
			name:     "unknown icon reference",
			contents: strings.Replace(valid, "icon:dot", "icon:star", 1),
			assert: func(t *testing.T, cat *catalog.Catalog, err error) {
				require.ErrorIs(t, err, catalog.ErrInvalidCatalog)
				require.Contains(t, err.Error(), `unknown icon "star"`)
			},
		},
		{
			name: "duplicate story names",
			contents: `title: Demo
sections:
  - id: buttons
    title: Buttons
    component: button
    stories:
      - name: Go
      - name: go
`,
			assert: func(t *testing.T, cat *catalog.Catalog, err error) {
				require.ErrorIs(t, err, catalog.ErrInvalidCatalog)
				require.Contains(t, err.Error(), "duplicate story")
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cat, err := catalog.Parse([]byte(tc.contents), "test.yaml")
			tc.assert(t, cat, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`title: Disk
sections:
  - id: inputs
    title: Inputs
    component: input
    layout: column
    stories:
      - name: Name
        props: {label: Name, required: true}
`), 0o644))

	cat, err := catalog.LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, catalog.LayoutColumn, cat.Sections[0].Layout)

	_, err = catalog.LoadFile(filepath.Join(dir, "missing.yaml"))
	var parseErr *catalog.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestAddSectionAndOnly(t *testing.T) {
	t.Parallel()

	cat := catalog.Default()
	before := len(cat.Sections)

	err := cat.AddSection(catalog.Section{ID: "button-variants", Title: "Dup", Component: "button", Stories: []catalog.Story{{Name: "x"}}})
	require.ErrorIs(t, err, catalog.ErrInvalidCatalog)
	require.Len(t, cat.Sections, before)

	require.NoError(t, cat.AddSection(catalog.Section{
		ID:        "signup",
		Title:     "Signup",
		Component: "input",
		Stories:   []catalog.Story{{Name: "Email", Props: map[string]any{"label": "Email"}}},
	}))
	require.Len(t, cat.Sections, before+1)

	only, err := cat.Only("signup/email")
	require.NoError(t, err)
	require.Len(t, only.Sections, 1)
	require.Len(t, only.Sections[0].Stories, 1)

	_, err = cat.Only("signup/missing")
	require.Error(t, err)
}

func TestRenderUnknownComponentFails(t *testing.T) {
	t.Parallel()

	cat, err := catalog.Parse([]byte(`title: Demo
sections:
  - id: selects
    title: Selects
    component: select
    stories:
      - name: Basic
`), "test.yaml")
	require.NoError(t, err)

	composer, err := components.NewComposer()
	require.NoError(t, err)

	_, err = catalog.Render(composer, cat)
	require.Error(t, err)
	require.Contains(t, err.Error(), "selects/basic")
}
