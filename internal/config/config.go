package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// Config represents the lintfold configuration.
type Config struct {
	Format            string   `json:"format"`
	FailOn            string   `json:"failOn"`
	PolicyFile        string   `json:"policyFile,omitempty"`
	LocationOnlyCodes []string `json:"locationOnlyCodes,omitempty"`
	NoColor           bool     `json:"noColor"`
}

// Default returns a Config with all defaults applied. An empty
// LocationOnlyCodes means "use the parser's built-in set".
func Default() Config {
	return Config{
		Format: "text",
		FailOn: "none",
	}
}

// ConfigDir returns the platform-appropriate config directory for lintfold.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "lintfold"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "lintfold"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "lintfold"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "lintfold"), nil
	default:
		return filepath.Join(home, ".config", "lintfold"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil error if file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.FailOn != "" {
		dst.FailOn = src.FailOn
	}
	if src.PolicyFile != "" {
		dst.PolicyFile = src.PolicyFile
	}
	if len(src.LocationOnlyCodes) > 0 {
		dst.LocationOnlyCodes = src.LocationOnlyCodes
	}
	dst.NoColor = src.NoColor || dst.NoColor
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("LINTFOLD_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("LINTFOLD_FAIL_ON"); v != "" {
		cfg.FailOn = v
	}
	if v := os.Getenv("LINTFOLD_POLICY"); v != "" {
		cfg.PolicyFile = v
	}
	if v := os.Getenv("LINTFOLD_LOCATION_ONLY_CODES"); v != "" {
		cfg.LocationOnlyCodes = splitCodes(v)
	}
	if v := os.Getenv("NO_COLOR"); v != "" {
		cfg.NoColor = true
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["format"]; ok && v != "" {
		cfg.Format = v
	}
	if v, ok := overrides["failOn"]; ok && v != "" {
		cfg.FailOn = v
	}
	if v, ok := overrides["policyFile"]; ok && v != "" {
		cfg.PolicyFile = v
	}
	if v, ok := overrides["locationOnlyCodes"]; ok && v != "" {
		cfg.LocationOnlyCodes = splitCodes(v)
	}
	if v, ok := overrides["noColor"]; ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.NoColor = b
		}
	}
}

func splitCodes(s string) []string {
	var codes []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			codes = append(codes, part)
		}
	}
	return codes
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "format":
		cfg.Format = value
	case "failOn":
		cfg.FailOn = value
	case "policyFile":
		cfg.PolicyFile = value
	case "locationOnlyCodes":
		cfg.LocationOnlyCodes = splitCodes(value)
	case "noColor":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("noColor must be a boolean: %w", err)
		}
		cfg.NoColor = b
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
