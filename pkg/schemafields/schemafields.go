// Package schemafields turns the request body of an OpenAPI operation into a
// catalog section: string and number properties become input stories,
// booleans become checkbox stories. Other property types are skipped.
package schemafields

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formkit/pkg/catalog"
	"github.com/goliatone/go-formkit/pkg/components"
)

// ErrOperationNotFound is returned when no operation matches the id.
var ErrOperationNotFound = errors.New("schemafields: operation not found")

// Preferred request body media types, first match wins.
var mediaTypes = []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"}

// inputTypes maps string formats onto native input types.
var inputTypes = map[string]string{
	"email":     "email",
	"password":  "password",
	"date":      "date",
	"date-time": "datetime-local",
	"time":      "time",
	"uri":       "url",
	"url":       "url",
}

// Result is the mapped section plus the property names that had no
// component.
type Result struct {
	Section catalog.Section
	Skipped []string
}

// Load parses an OpenAPI document from YAML or JSON. External references
// are not followed.
func Load(ctx context.Context, data []byte) (*openapi3.T, error) {
	if len(data) == 0 {
		return nil, errors.New("schemafields: document payload is empty")
	}
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("schemafields: load document: %w", err)
	}
	return doc, nil
}

// Operations lists the operation ids in the document, sorted. Operations
// without an id are listed as "<method>:<path>".
func Operations(doc *openapi3.T) []string {
	var ids []string
	forEachOperation(doc, func(id string, _ *openapi3.Operation) bool {
		ids = append(ids, id)
		return true
	})
	slices.Sort(ids)
	return ids
}

// Section maps the request body of operationID onto a section.
func Section(doc *openapi3.T, operationID string) (Result, error) {
	var op *openapi3.Operation
	forEachOperation(doc, func(id string, candidate *openapi3.Operation) bool {
		if id == operationID {
			op = candidate
			return false
		}
		return true
	})
	if op == nil {
		return Result{}, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
	}

	schema := requestSchema(op.RequestBody)
	if schema == nil || len(schema.Properties) == 0 {
		return Result{}, fmt.Errorf("schemafields: operation %q has no request body properties", operationID)
	}

	title := strings.TrimSpace(op.Summary)
	if title == "" {
		title = operationID
	}
	result := Result{Section: catalog.Section{
		ID:          sectionID(operationID),
		Title:       title,
		Description: strings.TrimSpace(op.Description),
		Component:   components.NameInput,
		Layout:      catalog.LayoutColumn,
	}}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	for _, name := range slices.Sorted(maps.Keys(schema.Properties)) {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil || ref.Value.ReadOnly {
			result.Skipped = append(result.Skipped, name)
			continue
		}
		story, ok := fieldStory(name, ref.Value, required[name])
		if !ok {
			result.Skipped = append(result.Skipped, name)
			continue
		}
		result.Section.Stories = append(result.Section.Stories, story)
	}
	if len(result.Section.Stories) == 0 {
		return Result{}, fmt.Errorf("schemafields: operation %q has no supported properties (skipped %s)", operationID, strings.Join(result.Skipped, ", "))
	}
	return result, nil
}

func fieldStory(name string, schema *openapi3.Schema, required bool) (catalog.Story, bool) {
	label := strings.TrimSpace(schema.Title)
	if label == "" {
		label = humanize(name)
	}
	props := map[string]any{
		"id":    name,
		"label": label,
	}
	if desc := strings.TrimSpace(schema.Description); desc != "" {
		props["helperText"] = desc
	}
	attrs := map[string]string{"name": name}

	switch schemaType(schema) {
	case openapi3.TypeBoolean:
		if def, ok := schema.Default.(bool); ok && def {
			props["defaultChecked"] = true
		}
		if required {
			attrs["required"] = ""
		}
		props["attrs"] = attrs
		return catalog.Story{Name: label, Component: components.NameCheckbox, Props: props}, true

	case openapi3.TypeString:
		if len(schema.Enum) > 0 {
			return catalog.Story{}, false
		}
		if typ, ok := inputTypes[schema.Format]; ok {
			attrs["type"] = typ
		}
		if schema.MinLength > 0 {
			attrs["minlength"] = strconv.FormatUint(schema.MinLength, 10)
		}
		if schema.MaxLength != nil {
			attrs["maxlength"] = strconv.FormatUint(*schema.MaxLength, 10)
		}
		if schema.Pattern != "" {
			attrs["pattern"] = schema.Pattern
		}

	case openapi3.TypeInteger, openapi3.TypeNumber:
		attrs["type"] = "number"
		if schema.Min != nil {
			attrs["min"] = formatNumber(*schema.Min)
		}
		if schema.Max != nil {
			attrs["max"] = formatNumber(*schema.Max)
		}
		if schemaType(schema) == openapi3.TypeInteger {
			attrs["step"] = "1"
		}

	default:
		return catalog.Story{}, false
	}

	if required {
		props["required"] = true
	}
	if def := defaultString(schema.Default); def != "" {
		props["defaultValue"] = def
	}
	props["attrs"] = attrs
	return catalog.Story{Name: label, Component: components.NameInput, Props: props}, true
}

func forEachOperation(doc *openapi3.T, fn func(id string, op *openapi3.Operation) bool) {
	if doc == nil || doc.Paths == nil {
		return
	}
	paths := doc.Paths.Map()
	for _, path := range slices.Sorted(maps.Keys(paths)) {
		item := paths[path]
		if item == nil {
			continue
		}
		operations := item.Operations()
		for _, method := range slices.Sorted(maps.Keys(operations)) {
			op := operations[method]
			if op == nil {
				continue
			}
			id := op.OperationID
			if id == "" {
				id = strings.ToLower(method) + ":" + path
			}
			if !fn(id, op) {
				return
			}
		}
	}
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range mediaTypes {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, key := range slices.Sorted(maps.Keys(content)) {
		if mt := content[key]; mt != nil && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func schemaType(schema *openapi3.Schema) string {
	if schema.Type == nil {
		return ""
	}
	for _, typ := range schema.Type.Slice() {
		if typ != openapi3.TypeNull {
			return typ
		}
	}
	return ""
}

func defaultString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return formatNumber(v)
	case int:
		return strconv.Itoa(v)
	}
	return ""
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var (
	nonSlug    = regexp.MustCompile(`[^a-z0-9]+`)
	wordBreaks = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

func sectionID(operationID string) string {
	id := wordBreaks.ReplaceAllString(operationID, "$1-$2")
	id = strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(id), "-"), "-")
	if id == "" {
		return "operation"
	}
	return id
}

// humanize turns "first_name" or "firstName" into "First name".
func humanize(name string) string {
	spaced := wordBreaks.ReplaceAllString(name, "$1 $2")
	spaced = strings.NewReplacer("_", " ", "-", " ").Replace(spaced)
	spaced = strings.ToLower(strings.Join(strings.Fields(spaced), " "))
	if spaced == "" {
		return name
	}
	return strings.ToUpper(spaced[:1]) + spaced[1:]
}
