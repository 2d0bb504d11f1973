package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"lintfold/internal/diag"
)

func TestTextWriter(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })

	var buf bytes.Buffer
	w := &TextWriter{}
	if err := w.Write(&buf, testReport()); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Diagnostics: 3 total",
		"(1 errors, 1 warnings, 1 info)",
		"ERROR",
		"WARNING",
		"INFO",
		"main.c:40  [40]",
		"main.c:12:5  [613]",
		"possible use of null pointer",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTextWriter_Empty(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })

	report := &diag.Report{Tool: "lintfold", Source: "capture.txt"}
	var buf bytes.Buffer
	if err := (&TextWriter{}).Write(&buf, report); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if !strings.Contains(buf.String(), "No diagnostics") {
		t.Errorf("empty report output missing clean-run line:\n%s", buf.String())
	}
}

func TestFormatLocation(t *testing.T) {
	tests := []struct {
		record diag.Record
		want   string
	}{
		{diag.Record{File: "a.c", Line: 10}, "a.c:10"},
		{diag.Record{File: "a.c", Line: 10, Column: 4}, "a.c:10:4"},
	}
	for _, tt := range tests {
		if got := formatLocation(tt.record); got != tt.want {
			t.Errorf("formatLocation(%+v) = %q, want %q", tt.record, got, tt.want)
		}
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five six seven eight nine ten", 20)
	if len(lines) < 2 {
		t.Errorf("expected wrapping, got %q", lines)
	}
	for _, line := range lines {
		if len(line) > 20 {
			t.Errorf("line %q exceeds width", line)
		}
	}
}
