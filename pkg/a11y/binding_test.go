package a11y

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBindErrorWinsOverHelper(t *testing.T) {
	binder := NewBinder(NewCounter())

	got := binder.Bind(Request{ExplicitID: "email", HelperText: "We never share it", ErrorMessage: "Required"})
	want := Binding{
		ElementID:      "email",
		HelperTextID:   "email-helper",
		ErrorMessageID: "email-error",
		DescribedBy:    "email-error",
		AriaInvalid:    true,
		ShowError:      true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("binding mismatch (-want +got):\n%s", diff)
	}
}

func TestBindHelperOnly(t *testing.T) {
	got := NewBinder(NewCounter()).Bind(Request{ExplicitID: "email", HelperText: "We never share it"})
	if got.DescribedBy != "email-helper" {
		t.Fatalf("expected helper id, got %q", got.DescribedBy)
	}
	if got.AriaInvalid {
		t.Fatalf("expected aria-invalid false")
	}
	if !got.ShowHelper || got.ShowError {
		t.Fatalf("unexpected visibility flags: %+v", got)
	}
}

func TestBindNothingToDescribe(t *testing.T) {
	got := NewBinder(NewCounter()).Bind(Request{ExplicitID: "x", HelperText: "   ", ErrorMessage: "\t"})
	if got.DescribedBy != "" || got.AriaInvalid || got.ShowHelper || got.ShowError {
		t.Fatalf("expected blank text to be ignored, got %+v", got)
	}
	if diff := cmp.Diff(map[string]string{"aria-invalid": "false"}, got.Attrs()); diff != "" {
		t.Fatalf("attrs mismatch (-want +got):\n%s", diff)
	}
}

func TestBindInvalidWithoutMessage(t *testing.T) {
	got := NewBinder(NewCounter()).Bind(Request{ExplicitID: "x", Invalid: true, HelperText: "hint"})
	if !got.AriaInvalid {
		t.Fatalf("expected aria-invalid from Invalid flag")
	}
	if got.DescribedBy != "x-helper" {
		t.Fatalf("expected helper to remain described without a message, got %q", got.DescribedBy)
	}
	want := map[string]string{"aria-invalid": "true", "aria-describedby": "x-helper"}
	if diff := cmp.Diff(want, got.Attrs()); diff != "" {
		t.Fatalf("attrs mismatch (-want +got):\n%s", diff)
	}
}

func TestBindGeneratesIDWithPrefix(t *testing.T) {
	binder := NewBinder(NewCounter())
	first := binder.Bind(Request{Prefix: "checkbox"})
	second := binder.Bind(Request{Prefix: "checkbox"})
	if first.ElementID != "checkbox-1" || second.ElementID != "checkbox-2" {
		t.Fatalf("unexpected ids %q, %q", first.ElementID, second.ElementID)
	}
	if got := binder.NewID(""); got != "field-3" {
		t.Fatalf("expected default prefix, got %q", got)
	}
}

func TestCounterUniqueUnderConcurrency(t *testing.T) {
	counter := NewCounter()
	const workers, perWorker = 8, 250

	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, workers*perWorker)
		wg   sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]string, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				local = append(local, counter.NewID("input"))
			}
			mu.Lock()
			for _, id := range local {
				seen[id] = struct{}{}
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(seen) != workers*perWorker {
		t.Fatalf("expected %d unique ids, got %d", workers*perWorker, len(seen))
	}
}

func TestUUIDGeneratorDeterministicWithReader(t *testing.T) {
	seed := bytes.Repeat([]byte{0x42}, 64)
	a := NewUUIDGenerator(bytes.NewReader(seed)).NewID("input")
	b := NewUUIDGenerator(bytes.NewReader(seed)).NewID("input")
	if a != b {
		t.Fatalf("expected identical ids from identical readers: %q vs %q", a, b)
	}
	if !strings.HasPrefix(a, "input-") || len(a) != len("input-")+36 {
		t.Fatalf("unexpected uuid id %q", a)
	}

	gen := NewUUIDGenerator(nil)
	if gen.NewID("x") == gen.NewID("x") {
		t.Fatalf("expected random ids to differ")
	}
}

func TestHasAccessibleName(t *testing.T) {
	cases := []struct {
		label string
		attrs map[string]string
		want  bool
	}{
		{label: "Email", want: true},
		{attrs: map[string]string{"aria-label": "Search"}, want: true},
		{attrs: map[string]string{"aria-labelledby": "heading"}, want: true},
		{label: "  ", attrs: map[string]string{"aria-label": " "}, want: false},
		{want: false},
	}
	for _, c := range cases {
		if got := HasAccessibleName(c.label, c.attrs); got != c.want {
			t.Fatalf("HasAccessibleName(%q, %v) = %v, want %v", c.label, c.attrs, got, c.want)
		}
	}
}
