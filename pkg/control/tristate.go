package control

// TriState is the visual state of a checkbox.
type TriState int

const (
	Unchecked TriState = iota
	Checked
	Indeterminate
)

// Resolve folds the binary checked value and the indeterminate override into
// a TriState. Indeterminate wins over checked.
func Resolve(checked, indeterminate bool) TriState {
	switch {
	case indeterminate:
		return Indeterminate
	case checked:
		return Checked
	default:
		return Unchecked
	}
}

// ShowsCheckmark reports whether the check glyph renders.
func (s TriState) ShowsCheckmark() bool {
	return s == Checked
}

// ShowsDash reports whether the indeterminate glyph renders.
func (s TriState) ShowsDash() bool {
	return s == Indeterminate
}

func (s TriState) String() string {
	switch s {
	case Checked:
		return "checked"
	case Indeterminate:
		return "indeterminate"
	default:
		return "unchecked"
	}
}
