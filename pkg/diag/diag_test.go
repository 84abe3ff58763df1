package diag

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
)

func TestLoggerWritesStructuredWarning(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewLogger(zerolog.New(&buf))

	reporter.Report(Diagnostic{
		Code:      CodeControlledDrift,
		Component: "checkbox",
		ElementID: "terms",
		Message:   "checked switched from controlled to uncontrolled",
	})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	want := map[string]any{
		"level":      "warn",
		"code":       "controlled_drift",
		"component":  "checkbox",
		"element_id": "terms",
		"message":    "checked switched from controlled to uncontrolled",
	}
	if diff := cmp.Diff(want, entry); diff != "" {
		t.Fatalf("log entry mismatch (-want +got):\n%s", diff)
	}
}

func TestRecorderCounts(t *testing.T) {
	rec := &Recorder{}
	rec.Report(Diagnostic{Code: CodeInvalidAttribute})
	rec.Report(Diagnostic{Code: CodeInvalidAttribute})
	rec.Report(Diagnostic{Code: CodeMissingAccessibleName})

	if got := rec.Count(CodeInvalidAttribute); got != 2 {
		t.Fatalf("expected 2 invalid attribute diagnostics, got %d", got)
	}
	items := rec.Diagnostics()
	items[0].Code = "mutated"
	if rec.Diagnostics()[0].Code != CodeInvalidAttribute {
		t.Fatalf("recorder exposed internal slice")
	}
}

func TestOrNop(t *testing.T) {
	if _, ok := OrNop(nil).(Nop); !ok {
		t.Fatalf("expected Nop for nil reporter")
	}
	rec := &Recorder{}
	if OrNop(rec) != Reporter(rec) {
		t.Fatalf("expected reporter passthrough")
	}
}

func TestMultiFansOut(t *testing.T) {
	first, second := &Recorder{}, &Recorder{}
	reporter := Multi(first, nil, second)

	reporter.Report(Diagnostic{Code: CodeInvalidAttribute, Component: "input"})

	if first.Count(CodeInvalidAttribute) != 1 || second.Count(CodeInvalidAttribute) != 1 {
		t.Fatalf("expected both recorders to receive the diagnostic")
	}
}
