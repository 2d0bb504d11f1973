package diag

// Severity represents the severity level of a diagnostic.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// ParseSeverity maps a severity token from tool output to a Severity.
// Note is advisory like Info, so both map to SeverityInfo.
func ParseSeverity(token string) (Severity, bool) {
	switch token {
	case "Info", "Note":
		return SeverityInfo, true
	case "Warning":
		return SeverityWarning, true
	case "Error":
		return SeverityError, true
	default:
		return "", false
	}
}

// SeverityRank returns a numeric rank for sorting (higher = more severe).
func SeverityRank(s Severity) int {
	switch s {
	case SeverityError:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	default:
		return 0
	}
}

// MeetsThreshold returns true if severity is at or above the threshold.
func MeetsThreshold(s Severity, threshold string) bool {
	if threshold == "none" || threshold == "" {
		return false
	}
	return SeverityRank(s) >= SeverityRank(Severity(threshold))
}

// Record represents a single diagnostic reported by the analysis tool.
type Record struct {
	File     string   `json:"file"`
	Line     int      `json:"line"`
	Column   int      `json:"column,omitempty"`
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`
}

// SeverityCounts holds counts by severity level.
type SeverityCounts struct {
	Info    int `json:"info"`
	Warning int `json:"warning"`
	Error   int `json:"error"`
}

// Total returns the sum across all severities.
func (c SeverityCounts) Total() int {
	return c.Info + c.Warning + c.Error
}

// Summary provides an overview of parsed diagnostics.
type Summary struct {
	Counts          SeverityCounts `json:"counts"`
	HighestSeverity Severity       `json:"highestSeverity"`
}

// Report is the top-level output structure for one captured blob.
type Report struct {
	Tool    string   `json:"tool"`
	Version string   `json:"version"`
	Source  string   `json:"source"`
	Summary Summary  `json:"summary"`
	Records []Record `json:"records"`
}

// ComputeSummary calculates the summary from records.
func ComputeSummary(records []Record) Summary {
	var s Summary
	for _, r := range records {
		switch r.Severity {
		case SeverityInfo:
			s.Counts.Info++
		case SeverityWarning:
			s.Counts.Warning++
		case SeverityError:
			s.Counts.Error++
		}
		if SeverityRank(r.Severity) > SeverityRank(s.HighestSeverity) {
			s.HighestSeverity = r.Severity
		}
	}
	return s
}
