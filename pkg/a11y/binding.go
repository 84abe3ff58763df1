package a11y

import "strings"

// Suffixes appended to the element id for the auxiliary text nodes.
const (
	HelperSuffix = "-helper"
	ErrorSuffix  = "-error"
)

// Request carries the inputs of one binding.
type Request struct {
	// ExplicitID wins over generation when non-empty.
	ExplicitID string
	// Prefix is handed to the generator, e.g. "input" or "checkbox".
	Prefix       string
	HelperText   string
	ErrorMessage string
	// Invalid marks the control invalid without an error message. Inputs set
	// it for the error variant.
	Invalid bool
}

// Binding is the derived wiring. DescribedBy is empty when nothing describes
// the control.
type Binding struct {
	ElementID      string
	HelperTextID   string
	ErrorMessageID string
	DescribedBy    string
	AriaInvalid    bool
	// ShowError and ShowHelper tell the composer which text nodes to render.
	// They are never both true.
	ShowError  bool
	ShowHelper bool
}

// Binder derives bindings. The zero value uses Default().
type Binder struct {
	ids IDGenerator
}

// NewBinder returns a binder over ids; nil selects Default().
func NewBinder(ids IDGenerator) Binder {
	return Binder{ids: ids}
}

// NewID generates an identifier without binding anything.
func (b Binder) NewID(prefix string) string {
	return b.generator().NewID(prefix)
}

// Bind derives the binding for req. The error message, when present, is the
// only description: helper text is dropped from both markup and
// aria-describedby.
func (b Binder) Bind(req Request) Binding {
	id := strings.TrimSpace(req.ExplicitID)
	if id == "" {
		id = b.generator().NewID(req.Prefix)
	}
	return bindID(id, req)
}

// BindID derives the binding for an id that is already known, as used by
// mounted instances that keep their generated id across renders.
func BindID(id string, req Request) Binding {
	return bindID(id, req)
}

func bindID(id string, req Request) Binding {
	out := Binding{
		ElementID:      id,
		HelperTextID:   id + HelperSuffix,
		ErrorMessageID: id + ErrorSuffix,
	}

	hasError := strings.TrimSpace(req.ErrorMessage) != ""
	hasHelper := strings.TrimSpace(req.HelperText) != ""

	switch {
	case hasError:
		out.DescribedBy = out.ErrorMessageID
		out.ShowError = true
	case hasHelper:
		out.DescribedBy = out.HelperTextID
		out.ShowHelper = true
	}
	out.AriaInvalid = hasError || req.Invalid
	return out
}

// Attrs returns the aria attributes for the native control.
func (b Binding) Attrs() map[string]string {
	attrs := map[string]string{
		"aria-invalid": "false",
	}
	if b.AriaInvalid {
		attrs["aria-invalid"] = "true"
	}
	if b.DescribedBy != "" {
		attrs["aria-describedby"] = b.DescribedBy
	}
	return attrs
}

func (b Binder) generator() IDGenerator {
	if b.ids == nil {
		return Default()
	}
	return b.ids
}

// HasAccessibleName reports whether a control gets a name from a visible
// label or an explicit aria-label / aria-labelledby override.
func HasAccessibleName(label string, attrs map[string]string) bool {
	if strings.TrimSpace(label) != "" {
		return true
	}
	for _, key := range []string{"aria-label", "aria-labelledby"} {
		if strings.TrimSpace(attrs[key]) != "" {
			return true
		}
	}
	return false
}
