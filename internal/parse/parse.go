package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"lintfold/internal/diag"
)

// DefaultLocationOnlyCodes are the codes the tool uses to report where a
// symbol was defined, emitted immediately after the primary diagnostic about
// that symbol. They never produce standalone records.
var DefaultLocationOnlyCodes = []string{"830", "831"}

// Options controls merging behavior.
type Options struct {
	// LocationOnlyCodes overrides DefaultLocationOnlyCodes when non-nil.
	LocationOnlyCodes []string
}

// MalformedLineError reports a line that is neither noise nor a well-formed
// diagnostic. It aborts the whole parse: a malformed line means the grammar
// assumption is violated and later continuation state cannot be trusted.
type MalformedLineError struct {
	Line string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed diagnostic line: %q", e.Line)
}

// Kind classifies a single line of tool output.
type Kind int

const (
	Noise Kind = iota
	Diagnostic
	Malformed
)

// diagnosticRE matches one diagnostic line: file name, two spaces, a line
// number, optional single-space digit groups (the last is the column), two
// spaces, a severity token, one space, a numeric code, ": ", and the message.
var diagnosticRE = regexp.MustCompile(`^(\S+)  (\d+)((?: \d+)*)  (Info|Warning|Error|Note) (\d+): (.*)$`)

// Classify decides whether line is ignorable noise, a well-formed diagnostic
// (returned as a record), or malformed.
func Classify(line string) (diag.Record, Kind) {
	if isNoise(line) {
		return diag.Record{}, Noise
	}
	rec, ok := parseLine(line)
	if !ok {
		return diag.Record{}, Malformed
	}
	return rec, Diagnostic
}

func isNoise(line string) bool {
	if strings.HasPrefix(line, "  File") {
		return true
	}
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || trimmed == "During Specific Walk:"
}

func parseLine(line string) (diag.Record, bool) {
	m := diagnosticRE.FindStringSubmatch(line)
	if m == nil {
		return diag.Record{}, false
	}
	lineNo, err := strconv.Atoi(m[2])
	if err != nil {
		return diag.Record{}, false
	}
	column := 0
	if m[3] != "" {
		groups := strings.Fields(m[3])
		column, err = strconv.Atoi(groups[len(groups)-1])
		if err != nil {
			return diag.Record{}, false
		}
	}
	severity, ok := diag.ParseSeverity(m[4])
	if !ok {
		return diag.Record{}, false
	}
	return diag.Record{
		File:     m[1],
		Line:     lineNo,
		Column:   column,
		Severity: severity,
		Code:     m[5],
		Message:  m[6],
	}, true
}

// SplitLines splits a captured output blob on line terminators, handling both
// LF and CRLF, and discards empty trailing entries.
func SplitLines(blob string) []string {
	lines := strings.Split(blob, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Parse splits blob into lines and merges them into diagnostic records.
func Parse(blob string, opts Options) ([]diag.Record, error) {
	return Merge(SplitLines(blob), opts)
}

// Merge folds lines, in order, into diagnostic records. A location-only line
// overwrites the line/column of the immediately preceding open record (or is
// dropped when none is open); any other diagnostic line closes the open
// record and opens a new one. The open record is flushed once at end of
// input. A malformed line fails the whole merge with no partial results.
func Merge(lines []string, opts Options) ([]diag.Record, error) {
	codes := opts.LocationOnlyCodes
	if codes == nil {
		codes = DefaultLocationOnlyCodes
	}
	locationOnly := make(map[string]bool, len(codes))
	for _, c := range codes {
		locationOnly[c] = true
	}

	var records []diag.Record
	var pending *diag.Record
	for _, line := range lines {
		rec, kind := Classify(line)
		switch kind {
		case Noise:
			continue
		case Malformed:
			return nil, &MalformedLineError{Line: line}
		}
		if locationOnly[rec.Code] {
			if pending != nil {
				pending.Line = rec.Line
				pending.Column = rec.Column
			}
			continue
		}
		if pending != nil {
			records = append(records, *pending)
		}
		r := rec
		pending = &r
	}
	if pending != nil {
		records = append(records, *pending)
	}
	return records, nil
}
