// Package policy loads an optional TOML policy pack that tunes how parsed
// diagnostics are treated: which codes are location-only continuations, which
// codes are suppressed from the report, and per-code severity reclassification.
package policy

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"lintfold/internal/diag"
)

// Policy is a policy pack loaded from --policy or the config file.
type Policy struct {
	LocationOnlyCodes []string          `toml:"location_only_codes"`
	Suppress          []string          `toml:"suppress"`
	SeverityOverrides map[string]string `toml:"severity_overrides"`
}

// Load reads a policy file from disk. Returns nil Policy and nil error if
// path is empty.
func Load(path string) (*Policy, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading policy file: %w", err)
	}
	var p Policy
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing policy file: %w", err)
	}
	for code, name := range p.SeverityOverrides {
		if !validSeverityName(name) {
			return nil, fmt.Errorf("policy severity override for code %s: unknown severity %q", code, name)
		}
	}
	return &p, nil
}

func validSeverityName(name string) bool {
	switch diag.Severity(name) {
	case diag.SeverityInfo, diag.SeverityWarning, diag.SeverityError:
		return true
	}
	return false
}

// Apply post-processes parsed records: suppressed codes are dropped and
// severity overrides are enforced. Suppression happens after merging, so a
// suppressed primary diagnostic still absorbs its location-only continuation
// before it is removed. A nil policy returns records unchanged.
func (p *Policy) Apply(records []diag.Record) []diag.Record {
	if p == nil {
		return records
	}
	suppressed := make(map[string]bool, len(p.Suppress))
	for _, c := range p.Suppress {
		suppressed[c] = true
	}
	out := records[:0]
	for _, r := range records {
		if suppressed[r.Code] {
			continue
		}
		if name, ok := p.SeverityOverrides[r.Code]; ok {
			r.Severity = diag.Severity(name)
		}
		out = append(out, r)
	}
	return out
}
