// Lintfold parses captured output of a lint-style static analyzer into
// structured diagnostic records.
//
// It reads one or more captured output files (or stdin), folds location-only
// continuation lines into their primary diagnostics, filters banner noise,
// and renders the result as text, JSON, markdown, or SARIF with deterministic
// exit codes suitable for CI gating.
//
// Usage:
//
//	lint-tool src/*.c > capture.txt && lintfold check capture.txt
//	lintfold check --format sarif --out report.sarif capture.txt
//	lintfold check --fail-on warning capture.txt   # CI gate
//	lintfold check < capture.txt                   # read stdin
package main
