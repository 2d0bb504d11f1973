// Package parse turns captured lint tool output into diagnostic records.
//
// The tool's output is line oriented. Each line is either noise (banners,
// "  File ..." separators, blank lines), a diagnostic of the form
//
//	<file>  <line>[ <digits>...]  <Info|Warning|Error|Note> <code>: <message>
//
// or malformed. Codes 830 and 831 are location-only continuations: the tool
// emits them right after a primary diagnostic to report where the referenced
// symbol was defined, and Merge folds their line/column into that preceding
// record instead of emitting them standalone. One malformed line fails the
// entire parse with a MalformedLineError carrying the offending text.
package parse
