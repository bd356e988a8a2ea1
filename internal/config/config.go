// Package config loads and merges aura's JSON configuration files.
// Config is a plain value: parsed once per invocation, then threaded
// through the commands — there is no process-wide mutable settings state.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/fakeyudi/aura/internal/workspace"
)

// Config holds all configurable aura settings.
type Config struct {
	ExcludeDirs    []string `json:"exclude_dirs"`    // directory names skipped by scans
	AdviceCommand  string   `json:"advice_command"`  // CLI used for AI advice
	AnthropicModel string   `json:"anthropic_model"` // model for the API advisor
}

// Defaults returns sensible default configuration values.
func Defaults() Config {
	return Config{
		ExcludeDirs: workspace.DefaultExcludes,
	}
}

// LoadGlobal reads ~/.config/aura/config.json.
// Returns defaults if the file is absent.
func LoadGlobal() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(home, ".config", "aura", "config.json")
	return loadFile(path, true)
}

// LoadProject reads .auraconfig in the current working directory.
// Returns nil (no error) if the file is absent.
func LoadProject() (*Config, error) {
	return loadFile(".auraconfig", false)
}

// loadFile reads and parses a JSON config file at path.
// If returnDefaults is true, returns defaults when the file is absent.
// If returnDefaults is false, returns nil when the file is absent.
func loadFile(path string, returnDefaults bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if returnDefaults {
				d := Defaults()
				return &d, nil
			}
			return nil, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &cfg, nil
}

// Merge combines global and project configs, with project taking precedence.
// Missing keys fall back to global, then defaults.
func Merge(global, project *Config) Config {
	result := Defaults()

	apply := func(c *Config) {
		if c == nil {
			return
		}
		if len(c.ExcludeDirs) > 0 {
			result.ExcludeDirs = c.ExcludeDirs
		}
		if c.AdviceCommand != "" {
			result.AdviceCommand = c.AdviceCommand
		}
		if c.AnthropicModel != "" {
			result.AnthropicModel = c.AnthropicModel
		}
	}
	apply(global)
	apply(project)

	return result
}

// ParseError is returned when a config file exists but cannot be parsed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return "failed to parse config file " + e.Path + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
