package control

import "testing"

func TestResolveTriState(t *testing.T) {
	cases := []struct {
		checked, indeterminate bool
		want                   TriState
		checkmark              bool
	}{
		{checked: false, indeterminate: false, want: Unchecked},
		{checked: true, indeterminate: false, want: Checked, checkmark: true},
		{checked: false, indeterminate: true, want: Indeterminate},
		{checked: true, indeterminate: true, want: Indeterminate},
	}
	for _, c := range cases {
		got := Resolve(c.checked, c.indeterminate)
		if got != c.want {
			t.Fatalf("Resolve(%v, %v) = %s, want %s", c.checked, c.indeterminate, got, c.want)
		}
		if got.ShowsCheckmark() != c.checkmark {
			t.Fatalf("ShowsCheckmark for %s = %v, want %v", got, got.ShowsCheckmark(), c.checkmark)
		}
		if got.ShowsDash() != c.indeterminate {
			t.Fatalf("ShowsDash for %s = %v", got, got.ShowsDash())
		}
	}
}

type countingHandle struct {
	NativeCheckbox
	writes []bool
}

func (h *countingHandle) SetIndeterminate(v bool) {
	h.writes = append(h.writes, v)
	h.NativeCheckbox.SetIndeterminate(v)
}

func TestSyncerPushesOnMountAndChange(t *testing.T) {
	h := &countingHandle{}
	var s Syncer

	if !s.Sync(h, false) {
		t.Fatalf("expected first sync to push even for false")
	}
	if s.Sync(h, false) {
		t.Fatalf("expected unchanged value to skip")
	}
	if !s.Sync(h, true) {
		t.Fatalf("expected change to push")
	}
	if !h.Indeterminate() {
		t.Fatalf("expected handle to carry indeterminate")
	}
	if s.Sync(h, true) {
		t.Fatalf("expected unchanged value to skip")
	}
	if !s.Sync(h, false) {
		t.Fatalf("expected change back to push")
	}
	want := []bool{false, true, false}
	if len(h.writes) != len(want) {
		t.Fatalf("unexpected writes %v", h.writes)
	}
	for i := range want {
		if h.writes[i] != want[i] {
			t.Fatalf("unexpected writes %v", h.writes)
		}
	}
	if s.Sync(nil, true) {
		t.Fatalf("nil handle must not report a push")
	}
}

func TestNativeCheckboxUserToggleClearsIndeterminate(t *testing.T) {
	n := &NativeCheckbox{}
	SyncIndeterminate(n, true)
	if got := n.UserToggle(); !got {
		t.Fatalf("expected toggle to check")
	}
	if n.Indeterminate() {
		t.Fatalf("expected toggle to clear indeterminate")
	}
}

func TestTrackerControlled(t *testing.T) {
	var tr Tracker[bool]
	off := false

	got, drift := tr.Observe(&off, true)
	if got || drift || tr.Mode() != Controlled {
		t.Fatalf("unexpected mount: value=%v drift=%v mode=%s", got, drift, tr.Mode())
	}
	if tr.Update(true) {
		t.Fatalf("controlled tracker must not self-mutate")
	}
	if tr.Value() {
		t.Fatalf("value changed without caller")
	}

	on := true
	if got, _ := tr.Observe(&on, false); !got {
		t.Fatalf("expected caller value to be re-derived")
	}

	got, drift = tr.Observe(nil, false)
	if !drift {
		t.Fatalf("expected drift when value prop disappears")
	}
	if !got {
		t.Fatalf("controlled instance fell back to default storage")
	}
	if _, drift = tr.Observe(nil, false); drift {
		t.Fatalf("drift should be reported once")
	}
}

func TestTrackerUncontrolled(t *testing.T) {
	var tr Tracker[string]

	got, drift := tr.Observe(nil, "seed")
	if got != "seed" || drift || tr.Mode() != Uncontrolled {
		t.Fatalf("unexpected mount: %q %v %s", got, drift, tr.Mode())
	}
	if got, _ := tr.Observe(nil, "other default"); got != "seed" {
		t.Fatalf("default must be captured once at mount, got %q", got)
	}
	if !tr.Update("typed") {
		t.Fatalf("uncontrolled tracker should store updates")
	}
	caller := "caller"
	got, drift = tr.Observe(&caller, "")
	if !drift {
		t.Fatalf("expected drift when value prop appears")
	}
	if got != "typed" {
		t.Fatalf("expected mount mode to stay in force, got %q", got)
	}
}
