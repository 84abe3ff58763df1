package control

// Handle is the live native checkbox a component instance is attached to.
type Handle interface {
	Checked() bool
	SetChecked(bool)
	Indeterminate() bool
	SetIndeterminate(bool)
}

// NativeCheckbox is an in-process model of a native checkbox. It follows
// browser semantics: a user toggle flips checked and clears indeterminate.
type NativeCheckbox struct {
	checked       bool
	indeterminate bool
}

func (n *NativeCheckbox) Checked() bool           { return n.checked }
func (n *NativeCheckbox) SetChecked(v bool)       { n.checked = v }
func (n *NativeCheckbox) Indeterminate() bool     { return n.indeterminate }
func (n *NativeCheckbox) SetIndeterminate(v bool) { n.indeterminate = v }

// UserToggle applies a user activation and returns the new checked value.
func (n *NativeCheckbox) UserToggle() bool {
	n.indeterminate = false
	n.checked = !n.checked
	return n.checked
}

// SyncIndeterminate pushes v onto h unconditionally.
func SyncIndeterminate(h Handle, v bool) {
	if h == nil {
		return
	}
	h.SetIndeterminate(v)
}

// Syncer remembers the last value pushed so it only touches the control
// when the declared value changes. The first Sync always pushes.
type Syncer struct {
	synced bool
	last   bool
}

// Sync pushes v onto h on first use or when v differs from the last pushed
// value. It reports whether it pushed.
func (s *Syncer) Sync(h Handle, v bool) bool {
	if h == nil {
		return false
	}
	if s.synced && s.last == v {
		return false
	}
	SyncIndeterminate(h, v)
	s.synced = true
	s.last = v
	return true
}
