// Package diag defines the diagnostic data model shared across the tool.
//
// A Record is one normalized finding (file, line, column, severity, code,
// message) extracted from captured analyzer output. A Report wraps an ordered
// record list with a per-severity Summary for rendering and CI gating.
package diag
