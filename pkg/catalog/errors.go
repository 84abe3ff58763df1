package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrInvalidCatalog matches every validation failure via errors.Is.
var ErrInvalidCatalog = errors.New("catalog: invalid catalog")

// ValidationError reports the first invalid field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("catalog: %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Is makes every ValidationError match ErrInvalidCatalog.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidCatalog
}

// ParseError wraps a read or YAML decoding failure. Line is zero when the
// decoder did not report one.
type ParseError struct {
	Source string
	Line   int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("catalog: parse %s (line %d): %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("catalog: parse %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

func extractLine(err error) int {
	if err == nil {
		return 0
	}
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
