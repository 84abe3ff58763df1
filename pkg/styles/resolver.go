package styles

import (
	"fmt"
	"strings"
	"sync"
)

// Descriptor is the resolved presentation for one render. Variant and Size
// each hold exactly one table entry; Shape holds the conditional classes
// (radius for buttons, padding for inputs).
type Descriptor struct {
	Kind    Kind
	Base    string
	Variant string
	Size    string
	Shape   []string

	// Checkbox only.
	IconSize int
	Label    string

	// Input only: absolute position classes for the icon slots.
	IconLeft  string
	IconRight string
}

// Class joins the descriptor into a single class attribute value. Order is
// fixed: base, variant, size, shape, then extra.
func (d Descriptor) Class(extra ...string) string {
	parts := make([]string, 0, 4+len(d.Shape)+len(extra))
	parts = append(parts, d.Base, d.Variant, d.Size)
	parts = append(parts, d.Shape...)
	parts = append(parts, extra...)

	var tokens []string
	for _, part := range parts {
		tokens = append(tokens, strings.Fields(part)...)
	}
	return strings.Join(tokens, " ")
}

// Resolver maps requests to descriptors using a validated set of tables.
// It is safe for concurrent use.
type Resolver struct {
	tables Tables
}

// NewResolver validates tables and returns a resolver over a private copy.
func NewResolver(tables Tables) (*Resolver, error) {
	if err := tables.Validate(); err != nil {
		return nil, fmt.Errorf("styles: invalid tables: %w", err)
	}
	return &Resolver{tables: tables.Clone()}, nil
}

// MustNewResolver panics when the tables are incomplete.
func MustNewResolver(tables Tables) *Resolver {
	resolver, err := NewResolver(tables)
	if err != nil {
		panic(err)
	}
	return resolver
}

var (
	defaultOnce     sync.Once
	defaultResolver *Resolver
)

// Default returns the resolver built over DefaultTables.
func Default() *Resolver {
	defaultOnce.Do(func() {
		defaultResolver = MustNewResolver(DefaultTables())
	})
	return defaultResolver
}

// Resolve uses the default resolver.
func Resolve(req Request) (Descriptor, error) {
	return Default().Resolve(req)
}

// Resolve dispatches on req.Kind.
func (r *Resolver) Resolve(req Request) (Descriptor, error) {
	switch req.Kind {
	case KindButton:
		return r.ResolveButton(req.Variant, req.Size, req.Flags)
	case KindInput:
		return r.ResolveInput(req.Variant, req.Size, req.Flags, req.HasError)
	case KindCheckbox:
		if req.Variant != "" {
			return Descriptor{}, &ConfigError{Kind: KindCheckbox, Table: "variant", Key: string(req.Variant)}
		}
		return r.ResolveCheckbox(req.Size, req.HasError)
	default:
		return Descriptor{}, fmt.Errorf("styles: unknown component kind %q", req.Kind)
	}
}

// ResolveButton resolves button classes. IconOnly swaps the text padding for
// square dimensions, so Rounded yields a circle instead of a pill.
func (r *Resolver) ResolveButton(variant Variant, size Size, flags Flags) (Descriptor, error) {
	if variant == "" {
		variant = VariantPrimary
	}
	size = sizeOrDefault(size)

	variantClasses, err := lookup(KindButton, "variant", r.tables.ButtonVariants, variant)
	if err != nil {
		return Descriptor{}, err
	}

	sizeTable, sizeName := r.tables.ButtonSizes, "size"
	if flags.IconOnly {
		sizeTable, sizeName = r.tables.ButtonIconOnlySizes, "icon-only size"
	}
	sizeClasses, err := lookup(KindButton, sizeName, sizeTable, size)
	if err != nil {
		return Descriptor{}, err
	}

	radius := r.tables.ButtonRadius
	if flags.Rounded {
		radius = r.tables.ButtonRadiusRounded
	}

	return Descriptor{
		Kind:    KindButton,
		Base:    r.tables.ButtonBase,
		Variant: variantClasses,
		Size:    sizeClasses,
		Shape:   []string{radius},
	}, nil
}

// ResolveInput resolves input classes. hasError forces the error variant.
// With both icons present the dedicated both-icons padding applies.
func (r *Resolver) ResolveInput(variant Variant, size Size, flags Flags, hasError bool) (Descriptor, error) {
	if variant == "" {
		variant = VariantDefault
	}
	size = sizeOrDefault(size)

	// Reject unknown variants before error precedence hides them.
	if _, err := lookup(KindInput, "variant", r.tables.InputVariants, variant); err != nil {
		return Descriptor{}, err
	}
	if hasError {
		variant = VariantError
	}
	variantClasses, err := lookup(KindInput, "variant", r.tables.InputVariants, variant)
	if err != nil {
		return Descriptor{}, err
	}

	sizeClasses, err := lookup(KindInput, "size", r.tables.InputSizes, size)
	if err != nil {
		return Descriptor{}, err
	}

	paddingTable, paddingName := r.tables.InputPadding, "padding"
	switch {
	case flags.LeftIcon && flags.RightIcon:
		paddingTable, paddingName = r.tables.InputPaddingBoth, "both-icons padding"
	case flags.LeftIcon:
		paddingTable, paddingName = r.tables.InputPaddingLeft, "left-icon padding"
	case flags.RightIcon:
		paddingTable, paddingName = r.tables.InputPaddingRight, "right-icon padding"
	}
	padding, err := lookup(KindInput, paddingName, paddingTable, size)
	if err != nil {
		return Descriptor{}, err
	}

	desc := Descriptor{
		Kind:    KindInput,
		Base:    r.tables.InputBase,
		Variant: variantClasses,
		Size:    sizeClasses,
		Shape:   []string{padding},
	}
	if flags.LeftIcon {
		if desc.IconLeft, err = lookup(KindInput, "left icon position", r.tables.InputIconLeft, size); err != nil {
			return Descriptor{}, err
		}
	}
	if flags.RightIcon {
		if desc.IconRight, err = lookup(KindInput, "right icon position", r.tables.InputIconRight, size); err != nil {
			return Descriptor{}, err
		}
	}
	return desc, nil
}

// ResolveCheckbox resolves the custom box visual. Checkboxes have no variant;
// hasError selects the error state.
func (r *Resolver) ResolveCheckbox(size Size, hasError bool) (Descriptor, error) {
	size = sizeOrDefault(size)

	state := VariantDefault
	if hasError {
		state = VariantError
	}
	stateClasses, err := lookup(KindCheckbox, "state", r.tables.CheckboxStates, state)
	if err != nil {
		return Descriptor{}, err
	}
	sizeClasses, err := lookup(KindCheckbox, "size", r.tables.CheckboxSizes, size)
	if err != nil {
		return Descriptor{}, err
	}
	label, err := lookup(KindCheckbox, "label size", r.tables.CheckboxLabelSizes, size)
	if err != nil {
		return Descriptor{}, err
	}
	iconSize, ok := r.tables.CheckboxIconSizes[size]
	if !ok || iconSize <= 0 {
		return Descriptor{}, &ConfigError{Kind: KindCheckbox, Table: "icon size", Key: string(size)}
	}

	return Descriptor{
		Kind:     KindCheckbox,
		Base:     r.tables.CheckboxBase,
		Variant:  stateClasses,
		Size:     sizeClasses,
		IconSize: iconSize,
		Label:    label,
	}, nil
}

func sizeOrDefault(size Size) Size {
	if size == "" {
		return SizeMedium
	}
	return size
}

func lookup[K ~string](kind Kind, table string, entries map[K]string, key K) (string, error) {
	value, ok := entries[key]
	if !ok || strings.TrimSpace(value) == "" {
		return "", &ConfigError{Kind: kind, Table: table, Key: string(key)}
	}
	return value, nil
}
