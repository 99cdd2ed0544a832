// ABOUTME: Panel-mode configuration resolution for the backend URL.
// ABOUTME: Precedence is flag, then CLASSDECK_BASE_URL, then the YAML config file, then the default.
package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is where the panel looks for the backend when nothing else
// is configured. It matches the server's default bind.
const DefaultBaseURL = "http://127.0.0.1:7788"

// fileConfig is the subset of ~/.config/classdeck/config.yaml the CLI reads.
type fileConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"` // Go duration string, e.g. "10s"
}

// resolveBaseURL picks the backend URL for panel mode. An explicit flag wins,
// then CLASSDECK_BASE_URL, then the config file, then DefaultBaseURL.
func resolveBaseURL(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("CLASSDECK_BASE_URL"); env != "" {
		return env
	}
	if fc := readFileConfig(configFilePath()); fc.BaseURL != "" {
		return fc.BaseURL
	}
	return DefaultBaseURL
}

// resolveTimeout returns the request timeout from the config file, or zero
// when none is configured or the value does not parse.
func resolveTimeout() time.Duration {
	fc := readFileConfig(configFilePath())
	if fc.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(fc.Timeout)
	if err != nil || d <= 0 {
		return 0
	}
	return d
}

// configFilePath returns the YAML config location, honoring XDG_CONFIG_HOME.
func configFilePath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "classdeck", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "classdeck", "config.yaml")
}

// readFileConfig parses the YAML config file. A missing or malformed file
// yields the zero value; the caller falls through to defaults.
func readFileConfig(path string) fileConfig {
	if path == "" {
		return fileConfig{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fileConfig{}
	}
	fc.BaseURL = strings.TrimSpace(fc.BaseURL)
	fc.Timeout = strings.TrimSpace(fc.Timeout)
	return fc
}

// dirOf returns the parent directory of a path, for pre-creating the
// database directory.
func dirOf(path string) string {
	return filepath.Dir(path)
}
