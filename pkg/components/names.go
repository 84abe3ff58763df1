package components

// Canonical component names used by the default registry and catalog stories.
const (
	NameButton   = "button"
	NameInput    = "input"
	NameCheckbox = "checkbox"
)
