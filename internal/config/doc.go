// Package config loads and merges lintfold configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (LINTFOLD_FORMAT, LINTFOLD_FAIL_ON, etc.)
//  3. Config file ($XDG_CONFIG_HOME/lintfold/config.json)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config], [Save] to write the config file,
// and [SetField] to update a single key.
package config
