package styles

// Kind identifies the component family a request resolves for.
type Kind string

const (
	KindButton   Kind = "button"
	KindInput    Kind = "input"
	KindCheckbox Kind = "checkbox"
)

// Variant is a named visual style. The accepted set depends on the Kind.
type Variant string

// Button variants.
const (
	VariantPrimary   Variant = "primary"
	VariantSecondary Variant = "secondary"
	VariantGhost     Variant = "ghost"
	VariantDanger    Variant = "danger"
	VariantOutline   Variant = "outline"
)

// Input variants. VariantDefault and VariantError double as the checkbox
// state keys.
const (
	VariantDefault Variant = "default"
	VariantError   Variant = "error"
	VariantSuccess Variant = "success"
)

// Size is shared by every kind.
type Size string

const (
	SizeSmall  Size = "sm"
	SizeMedium Size = "md"
	SizeLarge  Size = "lg"
)

// Flags carries the kind-specific shape options. Rounded and IconOnly apply
// to buttons, LeftIcon and RightIcon to inputs. Checkboxes have none.
type Flags struct {
	Rounded   bool
	IconOnly  bool
	LeftIcon  bool
	RightIcon bool
}

// Request describes one resolution.
type Request struct {
	Kind    Kind
	Variant Variant
	Size    Size
	Flags   Flags
	// HasError forces the error classes regardless of Variant. Inputs set it
	// when the variant is error or an error message is present; checkboxes
	// when an error message is present.
	HasError bool
}

// ButtonVariants lists the enumerated button variants in display order.
func ButtonVariants() []Variant {
	return []Variant{VariantPrimary, VariantSecondary, VariantGhost, VariantDanger, VariantOutline}
}

// InputVariants lists the enumerated input variants in display order.
func InputVariants() []Variant {
	return []Variant{VariantDefault, VariantError, VariantSuccess}
}

// CheckboxStates lists the checkbox state keys.
func CheckboxStates() []Variant {
	return []Variant{VariantDefault, VariantError}
}

// Sizes lists the enumerated sizes from smallest to largest.
func Sizes() []Size {
	return []Size{SizeSmall, SizeMedium, SizeLarge}
}
