package styles

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolveCoversEveryVariantAndSize(t *testing.T) {
	type tc struct {
		name    string
		req     Request
		variant string
		size    string
	}
	tables := DefaultTables()
	var cases []tc
	for _, variant := range ButtonVariants() {
		for _, size := range Sizes() {
			cases = append(cases, tc{
				name:    "button/" + string(variant) + "/" + string(size),
				req:     Request{Kind: KindButton, Variant: variant, Size: size},
				variant: tables.ButtonVariants[variant],
				size:    tables.ButtonSizes[size],
			})
		}
	}
	for _, variant := range InputVariants() {
		for _, size := range Sizes() {
			cases = append(cases, tc{
				name:    "input/" + string(variant) + "/" + string(size),
				req:     Request{Kind: KindInput, Variant: variant, Size: size},
				variant: tables.InputVariants[variant],
				size:    tables.InputSizes[size],
			})
		}
	}
	for _, hasError := range []bool{false, true} {
		state := VariantDefault
		if hasError {
			state = VariantError
		}
		for _, size := range Sizes() {
			cases = append(cases, tc{
				name:    "checkbox/" + string(state) + "/" + string(size),
				req:     Request{Kind: KindCheckbox, Size: size, HasError: hasError},
				variant: tables.CheckboxStates[state],
				size:    tables.CheckboxSizes[size],
			})
		}
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			desc, err := Resolve(c.req)
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			if desc.Variant != c.variant {
				t.Fatalf("variant classes mismatch\nwant: %q\n got: %q", c.variant, desc.Variant)
			}
			if desc.Size != c.size {
				t.Fatalf("size classes mismatch\nwant: %q\n got: %q", c.size, desc.Size)
			}
			class := desc.Class()
			if class == "" {
				t.Fatalf("expected non-empty class string")
			}
			if got := strings.Count(class, c.variant); got != 1 {
				t.Fatalf("expected variant entry exactly once, got %d in %q", got, class)
			}
			if got := strings.Count(" "+class+" ", " "+c.size+" "); got != 1 {
				t.Fatalf("expected size entry exactly once, got %d in %q", got, class)
			}
		})
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	req := Request{Kind: KindInput, Variant: VariantSuccess, Size: SizeLarge, Flags: Flags{LeftIcon: true}}
	first, err := Resolve(req)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	second, err := Resolve(req)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("descriptor changed between calls (-first +second):\n%s", diff)
	}
}

func TestResolveInputBothIconsUsesDedicatedPadding(t *testing.T) {
	tables := DefaultTables()
	desc, err := Resolve(Request{Kind: KindInput, Size: SizeSmall, Flags: Flags{LeftIcon: true, RightIcon: true}})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := []string{tables.InputPaddingBoth[SizeSmall]}
	if diff := cmp.Diff(want, desc.Shape); diff != "" {
		t.Fatalf("padding mismatch (-want +got):\n%s", diff)
	}
	if strings.Contains(desc.Class(), tables.InputPaddingLeft[SizeSmall]) {
		t.Fatalf("left-icon padding leaked into both-icons layout: %q", desc.Class())
	}
	if desc.IconLeft != "left-3" || desc.IconRight != "right-3" {
		t.Fatalf("unexpected icon positions: %q / %q", desc.IconLeft, desc.IconRight)
	}
}

func TestResolveInputSingleIconPadding(t *testing.T) {
	tables := DefaultTables()
	left, err := Resolve(Request{Kind: KindInput, Size: SizeLarge, Flags: Flags{LeftIcon: true}})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if left.Shape[0] != tables.InputPaddingLeft[SizeLarge] || left.IconLeft != "left-4" || left.IconRight != "" {
		t.Fatalf("unexpected left-icon descriptor: %+v", left)
	}
	right, err := Resolve(Request{Kind: KindInput, Size: SizeMedium, Flags: Flags{RightIcon: true}})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if right.Shape[0] != tables.InputPaddingRight[SizeMedium] || right.IconRight != "right-3" {
		t.Fatalf("unexpected right-icon descriptor: %+v", right)
	}
}

func TestResolveButtonIconOnlySwitchesToSquare(t *testing.T) {
	tables := DefaultTables()
	for _, size := range Sizes() {
		desc, err := Resolve(Request{Kind: KindButton, Size: size, Flags: Flags{IconOnly: true, Rounded: true}})
		if err != nil {
			t.Fatalf("resolve %s: %v", size, err)
		}
		if desc.Size != tables.ButtonIconOnlySizes[size] {
			t.Fatalf("expected square dimensions for %s, got %q", size, desc.Size)
		}
		if strings.Contains(desc.Class(), "px-") {
			t.Fatalf("text padding leaked into icon-only button: %q", desc.Class())
		}
		if diff := cmp.Diff([]string{"rounded-full"}, desc.Shape); diff != "" {
			t.Fatalf("radius mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestResolveButtonRadius(t *testing.T) {
	plain, err := Resolve(Request{Kind: KindButton})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if plain.Shape[0] != "rounded-lg" {
		t.Fatalf("expected rounded-lg, got %q", plain.Shape[0])
	}
	if plain.Variant != DefaultTables().ButtonVariants[VariantPrimary] {
		t.Fatalf("expected primary default variant, got %q", plain.Variant)
	}
	if plain.Size != DefaultTables().ButtonSizes[SizeMedium] {
		t.Fatalf("expected md default size, got %q", plain.Size)
	}
}

func TestResolveErrorPrecedence(t *testing.T) {
	tables := DefaultTables()

	input, err := Resolve(Request{Kind: KindInput, Variant: VariantSuccess, HasError: true})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if input.Variant != tables.InputVariants[VariantError] {
		t.Fatalf("expected error classes to win over success, got %q", input.Variant)
	}

	checkbox, err := Resolve(Request{Kind: KindCheckbox, HasError: true})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if checkbox.Variant != tables.CheckboxStates[VariantError] {
		t.Fatalf("expected checkbox error state, got %q", checkbox.Variant)
	}
	if checkbox.IconSize != 14 {
		t.Fatalf("expected md icon size 14, got %d", checkbox.IconSize)
	}
}

func TestResolveUnknownTagsFailFast(t *testing.T) {
	cases := []Request{
		{Kind: KindButton, Variant: "link"},
		{Kind: KindButton, Size: "xl"},
		{Kind: KindInput, Variant: "warning"},
		{Kind: KindInput, Variant: "warning", HasError: true},
		{Kind: KindCheckbox, Size: "xs"},
		{Kind: KindCheckbox, Variant: VariantPrimary},
	}
	for _, req := range cases {
		_, err := Resolve(req)
		if err == nil {
			t.Fatalf("expected error for %+v", req)
		}
		if !errors.Is(err, ErrMissingEntry) {
			t.Fatalf("expected ErrMissingEntry for %+v, got %v", req, err)
		}
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) || cfgErr.Kind != req.Kind {
			t.Fatalf("expected ConfigError for kind %s, got %v", req.Kind, err)
		}
	}

	if _, err := Resolve(Request{Kind: "slider"}); err == nil {
		t.Fatalf("expected unknown kind error")
	}
}

func TestNewResolverRejectsTableGaps(t *testing.T) {
	tables := DefaultTables()
	delete(tables.ButtonVariants, VariantOutline)
	delete(tables.InputPaddingBoth, SizeSmall)
	tables.CheckboxIconSizes[SizeLarge] = 0

	_, err := NewResolver(tables)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, fragment := range []string{`"outline"`, "both-icons padding", "icon size"} {
		if !strings.Contains(err.Error(), fragment) {
			t.Fatalf("expected %q in error, got %v", fragment, err)
		}
	}
	if !errors.Is(err, ErrMissingEntry) {
		t.Fatalf("expected joined error to match ErrMissingEntry, got %v", err)
	}
}

func TestResolverCopiesTables(t *testing.T) {
	tables := DefaultTables()
	resolver, err := NewResolver(tables)
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}
	tables.ButtonVariants[VariantPrimary] = "mutated"

	desc, err := resolver.ResolveButton(VariantPrimary, SizeMedium, Flags{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if desc.Variant == "mutated" {
		t.Fatalf("resolver observed caller mutation")
	}
}

func TestDescriptorClassOrderAndExtras(t *testing.T) {
	desc := Descriptor{Base: "a  b", Variant: "c", Size: "d", Shape: []string{"e"}}
	if got := desc.Class(" f ", ""); got != "a b c d e f" {
		t.Fatalf("unexpected class string %q", got)
	}
}
