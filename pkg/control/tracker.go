package control

// Mode is fixed when an instance mounts.
type Mode int

const (
	Uncontrolled Mode = iota
	Controlled
)

func (m Mode) String() string {
	if m == Controlled {
		return "controlled"
	}
	return "uncontrolled"
}

// Tracker resolves a field value across renders. The first Observe fixes the
// mode: a non-nil controlled value makes the instance controlled, otherwise
// the default is captured once into internal storage.
//
// Switching modes after mount is misuse. Observe reports it (once) and keeps
// the mount mode: a controlled instance keeps rendering the last value the
// caller supplied and never falls back to the default.
type Tracker[T any] struct {
	mounted bool
	mode    Mode
	value   T
	warned  bool
}

// Observe records one render's props and returns the value to render and
// whether this render is the first one to drift from the mount mode.
func (t *Tracker[T]) Observe(controlled *T, defaultValue T) (T, bool) {
	if !t.mounted {
		t.mounted = true
		if controlled != nil {
			t.mode = Controlled
			t.value = *controlled
		} else {
			t.mode = Uncontrolled
			t.value = defaultValue
		}
		return t.value, false
	}

	drift := (t.mode == Controlled) != (controlled != nil)
	if t.mode == Controlled && controlled != nil {
		t.value = *controlled
	}

	first := drift && !t.warned
	if drift {
		t.warned = true
	}
	return t.value, first
}

// Update stores v for uncontrolled instances and reports whether it did.
// Controlled instances never self-mutate.
func (t *Tracker[T]) Update(v T) bool {
	if t.mode == Controlled {
		return false
	}
	t.value = v
	return true
}

// Mode returns the mode fixed at mount.
func (t *Tracker[T]) Mode() Mode {
	return t.mode
}

// Mounted reports whether Observe has run.
func (t *Tracker[T]) Mounted() bool {
	return t.mounted
}

// Value returns the current resolved value.
func (t *Tracker[T]) Value() T {
	return t.value
}
