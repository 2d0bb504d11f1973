package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"lintfold/internal/diag"
)

// TextWriter outputs a human-readable text report.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, report *diag.Report) error {
	ew := &errWriter{w: w}

	total := report.Summary.Counts.Total()
	ew.printf("%s — %s\n", report.Tool, report.Source)
	ew.println(strings.Repeat("─", 60))
	ew.printf("Diagnostics: %d total", total)
	if total > 0 {
		ew.printf(" (%d errors, %d warnings, %d info)",
			report.Summary.Counts.Error,
			report.Summary.Counts.Warning,
			report.Summary.Counts.Info,
		)
	}
	ew.println("")
	ew.println(strings.Repeat("─", 60))

	if total == 0 {
		ew.println("\nNo diagnostics. Clean run!")
		return ew.err
	}

	// Group by severity (errors first), then by file and line
	grouped := groupBySeverity(report.Records)
	for _, sev := range []diag.Severity{diag.SeverityError, diag.SeverityWarning, diag.SeverityInfo} {
		records := grouped[sev]
		if len(records) == 0 {
			continue
		}

		ew.printf("\n%s\n", severityLabel(sev))
		ew.println(strings.Repeat("─", 40))

		sort.SliceStable(records, func(i, j int) bool {
			if records[i].File != records[j].File {
				return records[i].File < records[j].File
			}
			return records[i].Line < records[j].Line
		})

		for _, r := range records {
			ew.printf("\n  %s  [%s]\n", formatLocation(r), r.Code)
			for _, line := range wrapText(r.Message, 70) {
				ew.printf("    %s\n", line)
			}
		}
	}

	ew.printf("\n%s\n", strings.Repeat("─", 60))
	return ew.err
}

func formatLocation(r diag.Record) string {
	if r.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", r.File, r.Line, r.Column)
	}
	return fmt.Sprintf("%s:%d", r.File, r.Line)
}

func severityLabel(s diag.Severity) string {
	label := strings.ToUpper(string(s))
	switch s {
	case diag.SeverityError:
		return color.New(color.FgRed, color.Bold).Sprint(label)
	case diag.SeverityWarning:
		return color.New(color.FgYellow, color.Bold).Sprint(label)
	case diag.SeverityInfo:
		return color.New(color.FgCyan).Sprint(label)
	default:
		return label
	}
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}

func groupBySeverity(records []diag.Record) map[diag.Severity][]diag.Record {
	m := make(map[diag.Severity][]diag.Record)
	for _, r := range records {
		m[r.Severity] = append(m[r.Severity], r)
	}
	return m
}

func wrapText(text string, width int) []string {
	if len(text) <= width {
		return []string{text}
	}
	var lines []string
	words := strings.Fields(text)
	var current strings.Builder
	for _, word := range words {
		if current.Len()+len(word)+1 > width && current.Len() > 0 {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
