package styles

import (
	"errors"
	"fmt"
)

// ErrMissingEntry is matched by every *ConfigError.
var ErrMissingEntry = errors.New("styles: missing lookup table entry")

// ConfigError reports a tag that has no entry in the table consulted for it.
// It signals a configuration defect, not a runtime condition.
type ConfigError struct {
	Kind  Kind
	Table string
	Key   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("styles: %s %s table has no entry for %q", e.Kind, e.Table, e.Key)
}

func (e *ConfigError) Unwrap() error {
	return ErrMissingEntry
}
