package styles

import (
	"errors"
	"maps"
	"strings"
)

// Tables holds every lookup table the resolver consults. Callers may start
// from DefaultTables and replace entries; NewResolver validates the result.
type Tables struct {
	ButtonBase          string
	ButtonVariants      map[Variant]string
	ButtonSizes         map[Size]string
	ButtonIconOnlySizes map[Size]string
	ButtonRadius        string
	ButtonRadiusRounded string

	InputBase         string
	InputVariants     map[Variant]string
	InputSizes        map[Size]string
	InputPadding      map[Size]string
	InputPaddingLeft  map[Size]string
	InputPaddingRight map[Size]string
	InputPaddingBoth  map[Size]string
	InputIconLeft     map[Size]string
	InputIconRight    map[Size]string

	CheckboxBase       string
	CheckboxStates     map[Variant]string
	CheckboxSizes      map[Size]string
	CheckboxIconSizes  map[Size]int
	CheckboxLabelSizes map[Size]string
}

// DefaultTables returns a fresh copy of the built-in tables.
func DefaultTables() Tables {
	return Tables{
		ButtonBase: "inline-flex items-center justify-center gap-2 font-medium border transition-colors duration-200 " +
			"focus:outline-none focus:ring-2 focus:ring-offset-2 " +
			"disabled:opacity-50 disabled:cursor-not-allowed disabled:pointer-events-none",
		ButtonVariants: map[Variant]string{
			VariantPrimary:   "bg-primary-500 hover:bg-primary-600 active:bg-primary-700 text-white border-transparent focus:ring-primary-500",
			VariantSecondary: "bg-secondary-500 hover:bg-secondary-600 active:bg-secondary-700 text-white border-transparent focus:ring-secondary-500",
			VariantGhost:     "bg-transparent hover:bg-gray-100 active:bg-gray-200 text-gray-700 border-gray-300 focus:ring-gray-400",
			VariantDanger:    "bg-error hover:bg-error-dark active:bg-error-dark text-white border-transparent focus:ring-error",
			VariantOutline:   "bg-transparent hover:bg-primary-50 active:bg-primary-100 text-primary-600 border-primary-500 focus:ring-primary-500",
		},
		ButtonSizes: map[Size]string{
			SizeSmall:  "px-3 py-1.5 text-sm",
			SizeMedium: "px-4 py-2 text-base",
			SizeLarge:  "px-6 py-3 text-lg",
		},
		ButtonIconOnlySizes: map[Size]string{
			SizeSmall:  "w-8 h-8 p-0 text-sm",
			SizeMedium: "w-10 h-10 p-0 text-base",
			SizeLarge:  "w-12 h-12 p-0 text-lg",
		},
		ButtonRadius:        "rounded-lg",
		ButtonRadiusRounded: "rounded-full",

		InputBase: "w-full border rounded-lg font-medium transition-colors duration-200 " +
			"focus:outline-none focus:ring-2 focus:ring-offset-0 " +
			"disabled:opacity-50 disabled:cursor-not-allowed disabled:bg-gray-100 " +
			"read-only:bg-gray-100 read-only:cursor-default",
		InputVariants: map[Variant]string{
			VariantDefault: "border-gray-300 hover:border-gray-400 focus:border-primary-500 focus:ring-primary-500",
			VariantError:   "border-error hover:border-error-dark focus:border-error focus:ring-error",
			VariantSuccess: "border-success hover:border-success-dark focus:border-success focus:ring-success",
		},
		InputSizes: map[Size]string{
			SizeSmall:  "text-sm",
			SizeMedium: "text-base",
			SizeLarge:  "text-lg",
		},
		InputPadding: map[Size]string{
			SizeSmall:  "px-3 py-1.5",
			SizeMedium: "px-4 py-2",
			SizeLarge:  "px-4 py-3",
		},
		InputPaddingLeft: map[Size]string{
			SizeSmall:  "pl-9 pr-3 py-1.5",
			SizeMedium: "pl-10 pr-4 py-2",
			SizeLarge:  "pl-12 pr-4 py-3",
		},
		InputPaddingRight: map[Size]string{
			SizeSmall:  "pl-3 pr-9 py-1.5",
			SizeMedium: "pl-4 pr-10 py-2",
			SizeLarge:  "pl-4 pr-12 py-3",
		},
		InputPaddingBoth: map[Size]string{
			SizeSmall:  "pl-9 pr-9 py-1.5",
			SizeMedium: "pl-10 pr-10 py-2",
			SizeLarge:  "pl-12 pr-12 py-3",
		},
		InputIconLeft: map[Size]string{
			SizeSmall:  "left-3",
			SizeMedium: "left-3",
			SizeLarge:  "left-4",
		},
		InputIconRight: map[Size]string{
			SizeSmall:  "right-3",
			SizeMedium: "right-3",
			SizeLarge:  "right-4",
		},

		CheckboxBase: "flex items-center justify-center border-2 rounded-md cursor-pointer transition-all duration-200 " +
			"peer-disabled:opacity-50 peer-disabled:cursor-not-allowed peer-disabled:hover:border-gray-300",
		CheckboxStates: map[Variant]string{
			VariantDefault: "border-gray-300 hover:border-gray-400 peer-checked:bg-primary-500 peer-checked:border-primary-500 " +
				"hover:peer-checked:bg-primary-600 peer-focus:ring-2 peer-focus:ring-primary-500 peer-focus:ring-offset-2",
			VariantError: "border-error hover:border-error-dark peer-checked:bg-error peer-checked:border-error " +
				"hover:peer-checked:bg-error-dark peer-focus:ring-2 peer-focus:ring-error peer-focus:ring-offset-2",
		},
		CheckboxSizes: map[Size]string{
			SizeSmall:  "w-4 h-4",
			SizeMedium: "w-5 h-5",
			SizeLarge:  "w-6 h-6",
		},
		CheckboxIconSizes: map[Size]int{
			SizeSmall:  12,
			SizeMedium: 14,
			SizeLarge:  16,
		},
		CheckboxLabelSizes: map[Size]string{
			SizeSmall:  "text-sm",
			SizeMedium: "text-base",
			SizeLarge:  "text-lg",
		},
	}
}

// Clone returns a deep copy so callers can tweak entries without touching
// tables already handed to a Resolver.
func (t Tables) Clone() Tables {
	out := t
	out.ButtonVariants = maps.Clone(t.ButtonVariants)
	out.ButtonSizes = maps.Clone(t.ButtonSizes)
	out.ButtonIconOnlySizes = maps.Clone(t.ButtonIconOnlySizes)
	out.InputVariants = maps.Clone(t.InputVariants)
	out.InputSizes = maps.Clone(t.InputSizes)
	out.InputPadding = maps.Clone(t.InputPadding)
	out.InputPaddingLeft = maps.Clone(t.InputPaddingLeft)
	out.InputPaddingRight = maps.Clone(t.InputPaddingRight)
	out.InputPaddingBoth = maps.Clone(t.InputPaddingBoth)
	out.InputIconLeft = maps.Clone(t.InputIconLeft)
	out.InputIconRight = maps.Clone(t.InputIconRight)
	out.CheckboxStates = maps.Clone(t.CheckboxStates)
	out.CheckboxSizes = maps.Clone(t.CheckboxSizes)
	out.CheckboxIconSizes = maps.Clone(t.CheckboxIconSizes)
	out.CheckboxLabelSizes = maps.Clone(t.CheckboxLabelSizes)
	return out
}

// Validate checks that every enumerated tag has a non-empty entry in every
// table its kind consults. All gaps are reported, joined.
func (t Tables) Validate() error {
	var errs []error

	errs = append(errs, checkVariants(KindButton, "variant", t.ButtonVariants, ButtonVariants())...)
	errs = append(errs, checkSizes(KindButton, "size", t.ButtonSizes)...)
	errs = append(errs, checkSizes(KindButton, "icon-only size", t.ButtonIconOnlySizes)...)
	if strings.TrimSpace(t.ButtonRadius) == "" {
		errs = append(errs, &ConfigError{Kind: KindButton, Table: "radius", Key: "default"})
	}
	if strings.TrimSpace(t.ButtonRadiusRounded) == "" {
		errs = append(errs, &ConfigError{Kind: KindButton, Table: "radius", Key: "rounded"})
	}

	errs = append(errs, checkVariants(KindInput, "variant", t.InputVariants, InputVariants())...)
	errs = append(errs, checkSizes(KindInput, "size", t.InputSizes)...)
	errs = append(errs, checkSizes(KindInput, "padding", t.InputPadding)...)
	errs = append(errs, checkSizes(KindInput, "left-icon padding", t.InputPaddingLeft)...)
	errs = append(errs, checkSizes(KindInput, "right-icon padding", t.InputPaddingRight)...)
	errs = append(errs, checkSizes(KindInput, "both-icons padding", t.InputPaddingBoth)...)
	errs = append(errs, checkSizes(KindInput, "left icon position", t.InputIconLeft)...)
	errs = append(errs, checkSizes(KindInput, "right icon position", t.InputIconRight)...)

	errs = append(errs, checkVariants(KindCheckbox, "state", t.CheckboxStates, CheckboxStates())...)
	errs = append(errs, checkSizes(KindCheckbox, "size", t.CheckboxSizes)...)
	errs = append(errs, checkSizes(KindCheckbox, "label size", t.CheckboxLabelSizes)...)
	for _, size := range Sizes() {
		if t.CheckboxIconSizes[size] <= 0 {
			errs = append(errs, &ConfigError{Kind: KindCheckbox, Table: "icon size", Key: string(size)})
		}
	}

	return errors.Join(errs...)
}

func checkVariants(kind Kind, table string, entries map[Variant]string, want []Variant) []error {
	var errs []error
	for _, variant := range want {
		if strings.TrimSpace(entries[variant]) == "" {
			errs = append(errs, &ConfigError{Kind: kind, Table: table, Key: string(variant)})
		}
	}
	return errs
}

func checkSizes(kind Kind, table string, entries map[Size]string) []error {
	var errs []error
	for _, size := range Sizes() {
		if strings.TrimSpace(entries[size]) == "" {
			errs = append(errs, &ConfigError{Kind: kind, Table: table, Key: string(size)})
		}
	}
	return errs
}
