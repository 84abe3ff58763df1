package components

import (
	"strings"

	"github.com/goliatone/go-formkit/pkg/a11y"
	"github.com/goliatone/go-formkit/pkg/control"
	"github.com/goliatone/go-formkit/pkg/diag"
	"github.com/goliatone/go-formkit/pkg/styles"
)

// InputProps configures an Input. Value selects controlled mode when non-nil;
// DefaultValue seeds an uncontrolled input once at mount.
type InputProps struct {
	ID           string            `json:"id,omitempty" yaml:"id,omitempty"`
	Variant      styles.Variant    `json:"variant,omitempty" yaml:"variant,omitempty"`
	Size         styles.Size       `json:"size,omitempty" yaml:"size,omitempty"`
	Label        string            `json:"label,omitempty" yaml:"label,omitempty"`
	HelperText   string            `json:"helperText,omitempty" yaml:"helperText,omitempty"`
	ErrorMessage string            `json:"errorMessage,omitempty" yaml:"errorMessage,omitempty"`
	LeftIcon     string            `json:"leftIcon,omitempty" yaml:"leftIcon,omitempty"`
	RightIcon    string            `json:"rightIcon,omitempty" yaml:"rightIcon,omitempty"`
	Disabled     bool              `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	ReadOnly     bool              `json:"readOnly,omitempty" yaml:"readOnly,omitempty"`
	Required     bool              `json:"required,omitempty" yaml:"required,omitempty"`
	Value        *string           `json:"value,omitempty" yaml:"value,omitempty"`
	DefaultValue string            `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
	Class        string            `json:"class,omitempty" yaml:"class,omitempty"`
	InputClass   string            `json:"inputClass,omitempty" yaml:"inputClass,omitempty"`
	Attrs        Attrs             `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	OnChange     func(value string) `json:"-" yaml:"-"`
}

// Input is a mounted text input.
type Input struct {
	composer *Composer
	id       string
	props    InputProps
	value    control.Tracker[string]
}

// NewInput mounts an input instance.
func (c *Composer) NewInput() *Input {
	return &Input{composer: c}
}

// Render composes the input markup. The element id is fixed on the first
// render unless props carry an explicit one.
func (in *Input) Render(props InputProps) (Output, error) {
	c := in.composer

	hasMessage := strings.TrimSpace(props.ErrorMessage) != ""
	desc, err := c.resolver.ResolveInput(props.Variant, props.Size, styles.Flags{
		LeftIcon:  strings.TrimSpace(props.LeftIcon) != "",
		RightIcon: strings.TrimSpace(props.RightIcon) != "",
	}, props.Variant == styles.VariantError || hasMessage)
	if err != nil {
		return Output{}, err
	}

	id := in.elementID(props.ID)
	binding := a11y.BindID(id, a11y.Request{
		HelperText:   props.HelperText,
		ErrorMessage: props.ErrorMessage,
		Invalid:      props.Variant == styles.VariantError,
	})

	value, drift := in.value.Observe(props.Value, props.DefaultValue)
	if drift {
		c.report(diag.CodeControlledDrift, NameInput, id,
			"input switched between controlled and uncontrolled after mount; keeping %s mode", in.value.Mode())
	}
	if !a11y.HasAccessibleName(props.Label, props.Attrs) {
		c.report(diag.CodeMissingAccessibleName, NameInput, id, "input has no label, aria-label or aria-labelledby")
	}

	class := desc.Class(props.InputClass)
	aria := binding.Attrs()

	attrs := newAttrList("value")
	attrs.set("id", id)
	if props.Attrs["type"] == "" {
		attrs.set("type", "text")
	}
	attrs.set("class", class)
	attrs.set("value", value)
	attrs.flag("disabled", props.Disabled)
	attrs.flag("readonly", props.ReadOnly)
	attrs.flag("required", props.Required)
	attrs.set("aria-invalid", aria["aria-invalid"])
	attrs.setNonEmpty("aria-describedby", aria["aria-describedby"])
	c.reportInvalidAttrs(NameInput, id, attrs.merge(props.Attrs))

	labelClass := "text-sm font-medium text-gray-700"
	if props.Disabled {
		labelClass = joinClasses(labelClass, "opacity-50")
	}
	helperClass := "text-sm text-gray-600"
	if props.Variant == styles.VariantSuccess {
		helperClass = "text-sm text-success-dark"
	}

	html, err := c.execute("input.tmpl", map[string]any{
		"wrapper_class": joinClasses("flex flex-col gap-1.5", props.Class),
		"id":            id,
		"label":         strings.TrimSpace(props.Label),
		"label_class":   labelClass,
		"required":      props.Required,
		"attrs":         attrs.String(),
		"left_icon":     sanitizeIcon(props.LeftIcon),
		"right_icon":    sanitizeIcon(props.RightIcon),
		"icon_left":     desc.IconLeft,
		"icon_right":    desc.IconRight,
		"show_error":    binding.ShowError,
		"error_id":      binding.ErrorMessageID,
		"error_message": strings.TrimSpace(props.ErrorMessage),
		"show_helper":   binding.ShowHelper,
		"helper_id":     binding.HelperTextID,
		"helper_text":   strings.TrimSpace(props.HelperText),
		"helper_class":  helperClass,
	})
	if err != nil {
		return Output{}, err
	}

	in.props = props
	return Output{
		HTML: html,
		Descriptor: FieldDescriptor{
			Kind:        styles.KindInput,
			Class:       class,
			ElementID:   id,
			DescribedBy: binding.DescribedBy,
			AriaInvalid: binding.AriaInvalid,
		},
	}, nil
}

// Change simulates the user editing the field. OnChange always sees the
// typed value; only an uncontrolled input keeps it. Disabled and read-only
// inputs ignore edits. It reports whether OnChange ran.
func (in *Input) Change(value string) bool {
	if !in.value.Mounted() || in.props.Disabled || in.props.ReadOnly {
		return false
	}
	in.value.Update(value)
	if in.props.OnChange == nil {
		return false
	}
	in.props.OnChange(value)
	return true
}

// Value returns the value the next render shows.
func (in *Input) Value() string {
	return in.value.Value()
}

// ID returns the element id, empty before the first render.
func (in *Input) ID() string {
	return in.id
}

func (in *Input) elementID(explicit string) string {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		in.id = explicit
		return explicit
	}
	if in.id == "" {
		in.id = in.composer.binder.NewID(NameInput)
	}
	return in.id
}
