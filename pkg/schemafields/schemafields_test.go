package schemafields_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formkit/pkg/catalog"
	"github.com/goliatone/go-formkit/pkg/components"
	"github.com/goliatone/go-formkit/pkg/diag"
	"github.com/goliatone/go-formkit/pkg/schemafields"
)

func TestSectionMapsRequestBody(t *testing.T) {
	doc := loadFixture(t)

	result, err := schemafields.Section(doc, "createAccount")
	if err != nil {
		t.Fatalf("section: %v", err)
	}

	section := result.Section
	if section.ID != "create-account" || section.Title != "Create account" {
		t.Fatalf("unexpected section header %q / %q", section.ID, section.Title)
	}
	if diff := cmp.Diff([]string{"id", "plan", "tags"}, result.Skipped); diff != "" {
		t.Fatalf("skipped mismatch (-want +got):\n%s", diff)
	}

	var names []string
	for _, story := range section.Stories {
		names = append(names, story.Name)
	}
	want := []string{"Age", "Display name", "Email", "Newsletter", "Password", "Accept the terms"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("story order mismatch (-want +got):\n%s", diff)
	}

	email := section.Stories[2]
	wantEmail := map[string]any{
		"id":         "email",
		"label":      "Email",
		"helperText": "We never share it.",
		"required":   true,
		"attrs":      map[string]string{"name": "email", "type": "email"},
	}
	if diff := cmp.Diff(wantEmail, email.Props); diff != "" {
		t.Fatalf("email props mismatch (-want +got):\n%s", diff)
	}
	if got := section.ComponentOf(email); got != components.NameInput {
		t.Fatalf("email component = %q", got)
	}

	age := section.Stories[0]
	if diff := cmp.Diff(map[string]string{"name": "age", "type": "number", "min": "13", "step": "1"}, age.Props["attrs"]); diff != "" {
		t.Fatalf("age attrs mismatch (-want +got):\n%s", diff)
	}

	newsletter := section.Stories[3]
	if newsletter.Component != components.NameCheckbox || newsletter.Props["defaultChecked"] != true {
		t.Fatalf("unexpected newsletter story %+v", newsletter)
	}
}

func TestSectionRendersThroughCatalog(t *testing.T) {
	result, err := schemafields.Section(loadFixture(t), "createAccount")
	if err != nil {
		t.Fatalf("section: %v", err)
	}

	cat := &catalog.Catalog{Title: "Accounts"}
	if err := cat.AddSection(result.Section); err != nil {
		t.Fatalf("add section: %v", err)
	}

	recorder := &diag.Recorder{}
	composer, err := components.NewComposer(components.WithReporter(recorder))
	if err != nil {
		t.Fatalf("composer: %v", err)
	}
	rendered, err := catalog.Render(composer, cat)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := recorder.Diagnostics(); len(got) != 0 {
		t.Fatalf("unexpected diagnostics %+v", got)
	}

	html := rendered.Sections[0].Stories[2].Output.HTML
	for _, want := range []string{`type="email"`, `name="email"`, `required`, `aria-describedby="email-helper"`} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in %s", want, html)
		}
	}
	if strings.Contains(html, `type="text"`) {
		t.Fatalf("schema format should replace the default type: %s", html)
	}
}

func TestOperations(t *testing.T) {
	got := schemafields.Operations(loadFixture(t))
	if diff := cmp.Diff([]string{"createAccount", "get:/health"}, got); diff != "" {
		t.Fatalf("operations mismatch (-want +got):\n%s", diff)
	}
}

func TestSectionErrors(t *testing.T) {
	doc := loadFixture(t)

	_, err := schemafields.Section(doc, "deleteAccount")
	if !errors.Is(err, schemafields.ErrOperationNotFound) {
		t.Fatalf("expected ErrOperationNotFound, got %v", err)
	}

	_, err = schemafields.Section(doc, "get:/health")
	if err == nil || !strings.Contains(err.Error(), "no request body") {
		t.Fatalf("expected missing body error, got %v", err)
	}
}

func TestLoadRejectsInvalidDocuments(t *testing.T) {
	if _, err := schemafields.Load(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty payload")
	}
	if _, err := schemafields.Load(context.Background(), []byte("openapi: [")); err == nil {
		t.Fatal("expected error for malformed document")
	}
}

func loadFixture(t *testing.T) *openapi3.T {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "signup.yaml"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	doc, err := schemafields.Load(context.Background(), data)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return doc
}
