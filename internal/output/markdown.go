package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"lintfold/internal/diag"
)

// MarkdownWriter outputs a CI-comment-friendly markdown report.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, report *diag.Report) error {
	total := report.Summary.Counts.Total()

	fmt.Fprintf(w, "## Lint Report — `%s`\n\n", report.Source)

	fmt.Fprintf(w, "| Severity | Count |\n")
	fmt.Fprintf(w, "|----------|-------|\n")
	fmt.Fprintf(w, "| Error    | %d    |\n", report.Summary.Counts.Error)
	fmt.Fprintf(w, "| Warning  | %d    |\n", report.Summary.Counts.Warning)
	fmt.Fprintf(w, "| Info     | %d    |\n", report.Summary.Counts.Info)
	fmt.Fprintf(w, "| **Total** | **%d** |\n\n", total)

	if total == 0 {
		fmt.Fprintln(w, "No diagnostics. :white_check_mark:")
		return nil
	}

	grouped := groupBySeverity(report.Records)
	for _, sev := range []diag.Severity{diag.SeverityError, diag.SeverityWarning, diag.SeverityInfo} {
		records := grouped[sev]
		if len(records) == 0 {
			continue
		}

		icon := mdSeverityIcon(sev)
		label := strings.ToUpper(string(sev))

		fmt.Fprintf(w, "<details>\n<summary>%s %s (%d)</summary>\n\n", icon, label, len(records))

		sort.SliceStable(records, func(i, j int) bool {
			if records[i].File != records[j].File {
				return records[i].File < records[j].File
			}
			return records[i].Line < records[j].Line
		})

		for _, r := range records {
			fmt.Fprintf(w, "- **`%s`** [%s]: %s\n", formatLocation(r), r.Code, r.Message)
		}

		fmt.Fprintf(w, "\n</details>\n\n")
	}

	return nil
}

func mdSeverityIcon(s diag.Severity) string {
	switch s {
	case diag.SeverityError:
		return ":red_circle:"
	case diag.SeverityWarning:
		return ":orange_circle:"
	case diag.SeverityInfo:
		return ":large_blue_circle:"
	default:
		return ":white_circle:"
	}
}
