package components

import (
	"github.com/goliatone/go-formkit/pkg/a11y"
	"github.com/goliatone/go-formkit/pkg/diag"
	"github.com/goliatone/go-formkit/pkg/styles"
)

// ButtonProps configures a Button. Icons take inline SVG markup; Label is
// plain text.
type ButtonProps struct {
	ID           string         `json:"id,omitempty" yaml:"id,omitempty"`
	Variant      styles.Variant `json:"variant,omitempty" yaml:"variant,omitempty"`
	Size         styles.Size    `json:"size,omitempty" yaml:"size,omitempty"`
	Rounded      bool           `json:"rounded,omitempty" yaml:"rounded,omitempty"`
	IconOnly     bool           `json:"iconOnly,omitempty" yaml:"iconOnly,omitempty"`
	Disabled     bool           `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Label        string         `json:"label,omitempty" yaml:"label,omitempty"`
	LeadingIcon  string         `json:"leadingIcon,omitempty" yaml:"leadingIcon,omitempty"`
	TrailingIcon string         `json:"trailingIcon,omitempty" yaml:"trailingIcon,omitempty"`
	Class        string         `json:"class,omitempty" yaml:"class,omitempty"`
	Attrs        Attrs          `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	OnClick      func()         `json:"-" yaml:"-"`
}

// Button is a mounted button.
type Button struct {
	composer *Composer
	props    ButtonProps
	rendered bool
}

// NewButton mounts a button instance.
func (c *Composer) NewButton() *Button {
	return &Button{composer: c}
}

// Render composes the button markup.
func (b *Button) Render(props ButtonProps) (Output, error) {
	c := b.composer
	desc, err := c.resolver.ResolveButton(props.Variant, props.Size, styles.Flags{
		Rounded:  props.Rounded,
		IconOnly: props.IconOnly,
	})
	if err != nil {
		return Output{}, err
	}
	class := desc.Class(props.Class)

	attrs := newAttrList()
	attrs.setNonEmpty("id", props.ID)
	if t := props.Attrs["type"]; t == "" {
		attrs.set("type", "button")
	}
	attrs.set("class", class)
	attrs.flag("disabled", props.Disabled)
	c.reportInvalidAttrs(NameButton, props.ID, attrs.merge(props.Attrs))

	if props.IconOnly && !a11y.HasAccessibleName("", props.Attrs) {
		c.report(diag.CodeMissingAccessibleName, NameButton, props.ID, "icon-only button has no aria-label")
	}

	html, err := c.execute("button.tmpl", map[string]any{
		"attrs":         attrs.String(),
		"label":         props.Label,
		"leading_icon":  sanitizeIcon(props.LeadingIcon),
		"trailing_icon": sanitizeIcon(props.TrailingIcon),
	})
	if err != nil {
		return Output{}, err
	}

	b.props = props
	b.rendered = true
	return Output{
		HTML: html,
		Descriptor: FieldDescriptor{
			Kind:      styles.KindButton,
			Class:     class,
			ElementID: props.ID,
		},
	}, nil
}

// Activate simulates a user activation. A disabled button suppresses it
// entirely. It reports whether OnClick ran.
func (b *Button) Activate() bool {
	if !b.rendered || b.props.Disabled || b.props.OnClick == nil {
		return false
	}
	b.props.OnClick()
	return true
}
