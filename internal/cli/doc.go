// Package cli wires together the Cobra command tree for the lintfold binary.
//
// It defines the root command and all subcommands (check, config, version),
// binds flags, reads configuration, invokes the parser, and returns
// deterministic exit codes for CI gating.
package cli
