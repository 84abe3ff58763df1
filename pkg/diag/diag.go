// Package diag carries development-time diagnostics for component misuse.
// Diagnostics are reported, never returned as errors: a misused component
// still renders.
package diag

import (
	"slices"
	"sync"

	"github.com/rs/zerolog"
)

// Code classifies a diagnostic.
type Code string

const (
	// CodeMissingAccessibleName: an input or checkbox without a visible label
	// or aria-label/aria-labelledby override, or an icon-only button without
	// an aria-label.
	CodeMissingAccessibleName Code = "missing_accessible_name"
	// CodeControlledDrift: the controlling value prop appeared or disappeared
	// after mount.
	CodeControlledDrift Code = "controlled_drift"
	// CodeInvalidAttribute: a pass-through attribute name was not a valid
	// HTML attribute name and was dropped.
	CodeInvalidAttribute Code = "invalid_attribute"
)

// Diagnostic is one reported misuse.
type Diagnostic struct {
	Code      Code
	Component string
	ElementID string
	Message   string
}

// Reporter receives diagnostics.
type Reporter interface {
	Report(Diagnostic)
}

// Nop discards everything.
type Nop struct{}

func (Nop) Report(Diagnostic) {}

// Recorder keeps diagnostics in memory. Safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	items []Diagnostic
}

func (r *Recorder) Report(d Diagnostic) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, d)
}

// Diagnostics returns a copy of everything recorded so far.
func (r *Recorder) Diagnostics() []Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.items)
}

// Count returns how many diagnostics with code were recorded.
func (r *Recorder) Count(code Code) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, item := range r.items {
		if item.Code == code {
			n++
		}
	}
	return n
}

// Logger writes diagnostics as zerolog warnings.
type Logger struct {
	log zerolog.Logger
}

// NewLogger adapts a zerolog logger.
func NewLogger(log zerolog.Logger) *Logger {
	return &Logger{log: log}
}

func (l *Logger) Report(d Diagnostic) {
	if l == nil {
		return
	}
	event := l.log.Warn().Str("code", string(d.Code)).Str("component", d.Component)
	if d.ElementID != "" {
		event = event.Str("element_id", d.ElementID)
	}
	event.Msg(d.Message)
}

// Multi forwards every diagnostic to each non-nil reporter in order.
func Multi(reporters ...Reporter) Reporter {
	out := make(multi, 0, len(reporters))
	for _, r := range reporters {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

type multi []Reporter

func (m multi) Report(d Diagnostic) {
	for _, r := range m {
		r.Report(d)
	}
}

// OrNop returns r, or Nop when r is nil.
func OrNop(r Reporter) Reporter {
	if r == nil {
		return Nop{}
	}
	return r
}
