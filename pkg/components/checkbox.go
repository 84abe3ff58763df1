package components

import (
	"strings"

	"github.com/goliatone/go-formkit/pkg/a11y"
	"github.com/goliatone/go-formkit/pkg/control"
	"github.com/goliatone/go-formkit/pkg/diag"
	"github.com/goliatone/go-formkit/pkg/styles"
)

// CheckboxProps configures a Checkbox. Checked selects controlled mode when
// non-nil. Indeterminate is a display state only and never reaches OnChange.
type CheckboxProps struct {
	ID             string             `json:"id,omitempty" yaml:"id,omitempty"`
	Size           styles.Size        `json:"size,omitempty" yaml:"size,omitempty"`
	Label          string             `json:"label,omitempty" yaml:"label,omitempty"`
	HelperText     string             `json:"helperText,omitempty" yaml:"helperText,omitempty"`
	ErrorMessage   string             `json:"errorMessage,omitempty" yaml:"errorMessage,omitempty"`
	Indeterminate  bool               `json:"indeterminate,omitempty" yaml:"indeterminate,omitempty"`
	Disabled       bool               `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Checked        *bool              `json:"checked,omitempty" yaml:"checked,omitempty"`
	DefaultChecked bool               `json:"defaultChecked,omitempty" yaml:"defaultChecked,omitempty"`
	Class          string             `json:"class,omitempty" yaml:"class,omitempty"`
	InputClass     string             `json:"inputClass,omitempty" yaml:"inputClass,omitempty"`
	Attrs          Attrs              `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	OnChange       func(checked bool) `json:"-" yaml:"-"`
}

// Checkbox is a mounted checkbox bound to a native control handle.
type Checkbox struct {
	composer *Composer
	id       string
	props    CheckboxProps
	checked  control.Tracker[bool]
	native   control.NativeCheckbox
	syncer   control.Syncer
}

// NewCheckbox mounts a checkbox instance.
func (c *Composer) NewCheckbox() *Checkbox {
	return &Checkbox{composer: c}
}

// Render composes the checkbox markup, then pushes the indeterminate flag
// onto the native control. The push happens on the first render and on every
// render where Indeterminate changed.
func (cb *Checkbox) Render(props CheckboxProps) (Output, error) {
	c := cb.composer

	desc, err := c.resolver.ResolveCheckbox(props.Size, strings.TrimSpace(props.ErrorMessage) != "")
	if err != nil {
		return Output{}, err
	}

	id := cb.elementID(props.ID)
	binding := a11y.BindID(id, a11y.Request{
		HelperText:   props.HelperText,
		ErrorMessage: props.ErrorMessage,
	})

	checked, drift := cb.checked.Observe(props.Checked, props.DefaultChecked)
	if drift {
		c.report(diag.CodeControlledDrift, NameCheckbox, id,
			"checkbox switched between controlled and uncontrolled after mount; keeping %s mode", cb.checked.Mode())
	}
	if !a11y.HasAccessibleName(props.Label, props.Attrs) {
		c.report(diag.CodeMissingAccessibleName, NameCheckbox, id, "checkbox has no label, aria-label or aria-labelledby")
	}

	state := control.Resolve(checked, props.Indeterminate)
	aria := binding.Attrs()

	attrs := newAttrList("checked", "data-indeterminate")
	attrs.set("type", "checkbox")
	attrs.set("data-formkit-checkbox", "")
	attrs.set("id", id)
	attrs.set("class", joinClasses("peer sr-only", props.InputClass))
	attrs.flag("checked", checked)
	attrs.flag("disabled", props.Disabled)
	if props.Indeterminate {
		attrs.set("data-indeterminate", "true")
	}
	attrs.set("aria-invalid", aria["aria-invalid"])
	attrs.setNonEmpty("aria-describedby", aria["aria-describedby"])
	c.reportInvalidAttrs(NameCheckbox, id, attrs.merge(props.Attrs))

	boxClass := desc.Class()

	// Indeterminate replaces the check glyph. Otherwise the glyph is always
	// emitted and gated on peer-checked.
	var checkIcon, dashIcon string
	if state.ShowsDash() {
		dashIcon = glyph("minus", minusPath, desc.IconSize)
	} else {
		checkIcon = glyph("check", checkPath, desc.IconSize)
	}

	labelTone := "text-gray-700"
	if props.Disabled {
		labelTone = "opacity-50 cursor-not-allowed"
	}
	labelClass := joinClasses("cursor-pointer select-none", desc.Label, labelTone)

	html, err := c.execute("checkbox.tmpl", map[string]any{
		"wrapper_class": joinClasses("flex flex-col gap-1.5", props.Class),
		"id":            id,
		"attrs":         attrs.String(),
		"box_class":     boxClass,
		"state":         state.String(),
		"check_icon":    checkIcon,
		"dash_icon":     dashIcon,
		"label":         strings.TrimSpace(props.Label),
		"label_class":   labelClass,
		"show_error":    binding.ShowError,
		"error_id":      binding.ErrorMessageID,
		"error_message": strings.TrimSpace(props.ErrorMessage),
		"show_helper":   binding.ShowHelper,
		"helper_id":     binding.HelperTextID,
		"helper_text":   strings.TrimSpace(props.HelperText),
	})
	if err != nil {
		return Output{}, err
	}

	cb.props = props
	cb.native.SetChecked(checked)
	cb.syncer.Sync(&cb.native, props.Indeterminate)

	return Output{
		HTML: html,
		Descriptor: FieldDescriptor{
			Kind:        styles.KindCheckbox,
			Class:       boxClass,
			ElementID:   id,
			DescribedBy: binding.DescribedBy,
			AriaInvalid: binding.AriaInvalid,
		},
	}, nil
}

// Toggle simulates a user activation of the native control. OnChange gets
// the new binary value exactly once. A controlled checkbox reverts the native
// control to its rendered state and waits for the next render; an
// uncontrolled one keeps the new value. Disabled checkboxes ignore toggles.
// It reports whether the toggle was accepted.
func (cb *Checkbox) Toggle() bool {
	if !cb.checked.Mounted() || cb.props.Disabled {
		return false
	}

	rendered := cb.native.Checked()
	renderedIndeterminate := cb.native.Indeterminate()
	next := cb.native.UserToggle()

	if cb.checked.Mode() == control.Controlled {
		cb.native.SetChecked(rendered)
		cb.native.SetIndeterminate(renderedIndeterminate)
	} else {
		cb.checked.Update(next)
	}

	if cb.props.OnChange != nil {
		cb.props.OnChange(next)
	}
	return true
}

// State returns the tri-state the control currently displays.
func (cb *Checkbox) State() control.TriState {
	return control.Resolve(cb.native.Checked(), cb.native.Indeterminate())
}

// Checked returns the resolved checked value the next render shows.
func (cb *Checkbox) Checked() bool {
	return cb.checked.Value()
}

// Handle exposes the native control the instance is attached to.
func (cb *Checkbox) Handle() control.Handle {
	return &cb.native
}

// ID returns the element id, empty before the first render.
func (cb *Checkbox) ID() string {
	return cb.id
}

func (cb *Checkbox) elementID(explicit string) string {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		cb.id = explicit
		return explicit
	}
	if cb.id == "" {
		cb.id = cb.composer.binder.NewID(NameCheckbox)
	}
	return cb.id
}
