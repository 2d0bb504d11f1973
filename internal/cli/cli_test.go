package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"lintfold/internal/parse"
	"lintfold/internal/policy"
)

// resetFlags resets all package-level flag variables to their zero values.
func resetFlags() {
	flagFormat = ""
	flagOut = ""
	flagFailOn = ""
	flagPolicy = ""
	flagCodes = ""
	flagNoColor = false
	flagJobs = 0
}

// --- buildOverrides tests ---

func TestBuildOverrides_NoFlags(t *testing.T) {
	resetFlags()
	m := buildOverrides()
	if len(m) != 0 {
		t.Errorf("buildOverrides() with no flags = %v, want empty map", m)
	}
}

func TestBuildOverrides_AllFlags(t *testing.T) {
	resetFlags()
	flagFormat = "sarif"
	flagFailOn = "warning"
	flagPolicy = "policy.toml"
	flagCodes = "830,831"
	flagNoColor = true

	m := buildOverrides()

	expected := map[string]string{
		"format":            "sarif",
		"failOn":            "warning",
		"policyFile":        "policy.toml",
		"locationOnlyCodes": "830,831",
		"noColor":           "true",
	}

	if len(m) != len(expected) {
		t.Fatalf("buildOverrides() returned %d entries, want %d", len(m), len(expected))
	}
	for k, v := range expected {
		if m[k] != v {
			t.Errorf("buildOverrides()[%q] = %q, want %q", k, m[k], v)
		}
	}
}

// --- readInputs tests ---

func TestReadInputs_Files(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	if err := os.WriteFile(a, []byte("alpha"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("beta"), 0o644); err != nil {
		t.Fatal(err)
	}

	inputs, err := readInputs([]string{a, b})
	if err != nil {
		t.Fatalf("readInputs error: %v", err)
	}
	if len(inputs) != 2 {
		t.Fatalf("input count = %d, want 2", len(inputs))
	}
	if inputs[0].name != a || inputs[0].blob != "alpha" {
		t.Errorf("first input = %+v", inputs[0])
	}
	if inputs[1].blob != "beta" {
		t.Errorf("second input = %+v", inputs[1])
	}
}

func TestReadInputs_MissingFile(t *testing.T) {
	_, err := readInputs([]string{filepath.Join(t.TempDir(), "nope.txt")})
	if err == nil {
		t.Fatal("expected error for missing input file")
	}
}

// --- parseAll tests ---

func TestParseAll_OrderPreserved(t *testing.T) {
	inputs := []input{
		{name: "one.txt", blob: "a.c  1  Error 40: first\n"},
		{name: "two.txt", blob: "b.c  2  Warning 613: second\n"},
		{name: "three.txt", blob: "c.c  3  Info 713: third\n"},
	}
	reports, err := parseAll(inputs, parse.Options{}, nil, 3)
	if err != nil {
		t.Fatalf("parseAll error: %v", err)
	}
	if len(reports) != 3 {
		t.Fatalf("report count = %d, want 3", len(reports))
	}
	for i, name := range []string{"one.txt", "two.txt", "three.txt"} {
		if reports[i].Source != name {
			t.Errorf("reports[%d].Source = %q, want %q", i, reports[i].Source, name)
		}
		if len(reports[i].Records) != 1 {
			t.Errorf("reports[%d] record count = %d, want 1", i, len(reports[i].Records))
		}
	}
}

func TestParseAll_MalformedPropagates(t *testing.T) {
	inputs := []input{
		{name: "good.txt", blob: "a.c  1  Error 40: fine\n"},
		{name: "bad.txt", blob: "not a valid line\n"},
	}
	_, err := parseAll(inputs, parse.Options{}, nil, 2)
	var mle *parse.MalformedLineError
	if !errors.As(err, &mle) {
		t.Fatalf("error = %v, want MalformedLineError", err)
	}
	if mle.Line != "not a valid line" {
		t.Errorf("MalformedLineError.Line = %q, want the offending line", mle.Line)
	}
}

func TestParseAll_PolicyApplied(t *testing.T) {
	inputs := []input{
		{name: "in.txt", blob: "a.c  1  Info 537: repeated include\na.c  2  Error 40: undeclared\n"},
	}
	pol := &policy.Policy{Suppress: []string{"537"}}
	reports, err := parseAll(inputs, parse.Options{}, pol, 1)
	if err != nil {
		t.Fatalf("parseAll error: %v", err)
	}
	if len(reports[0].Records) != 1 || reports[0].Records[0].Code != "40" {
		t.Errorf("records = %+v, want only code 40", reports[0].Records)
	}
	if reports[0].Summary.Counts.Total() != 1 {
		t.Errorf("summary total = %d, want 1", reports[0].Summary.Counts.Total())
	}
}
