package output

import (
	"bytes"
	"strings"
	"testing"

	"lintfold/internal/diag"
)

func TestMarkdownWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &MarkdownWriter{}
	if err := w.Write(&buf, testReport()); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"## Lint Report — `capture.txt`",
		"| Error    | 1    |",
		"| **Total** | **3** |",
		"<details>",
		":red_circle: ERROR (1)",
		"**`main.c:12:5`** [613]: possible use of null pointer",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestMarkdownWriter_Empty(t *testing.T) {
	report := &diag.Report{Tool: "lintfold", Source: "capture.txt"}
	var buf bytes.Buffer
	if err := (&MarkdownWriter{}).Write(&buf, report); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "No diagnostics") {
		t.Errorf("empty report output missing clean line:\n%s", out)
	}
	if strings.Contains(out, "<details>") {
		t.Errorf("empty report should have no sections:\n%s", out)
	}
}
