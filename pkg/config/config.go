// Copyright (c) 2026 Mariusz Górski. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config loads and validates the tool configuration. The renderer
// itself takes an explicit render.Config; this package is the YAML surface
// in front of it.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mgorsk1/great-expectations/pkg/render"
)

// DefaultConfigFile is the configuration filename looked up in the working
// directory when no explicit path is given.
const DefaultConfigFile = "gesuite.yaml"

// EnvConfigPath overrides the configuration file path when set.
const EnvConfigPath = "GESUITE_CONFIG"

// HeaderConfig customizes the notebook greeting cell. FileName names a
// template resolved through the template chain; TemplateKwargs are passed to
// it alongside suite_name.
type HeaderConfig struct {
	FileName       string         `yaml:"file_name"`
	TemplateKwargs map[string]any `yaml:"template_kwargs"`
}

// Config holds all tool settings. Callers either construct a Config in Go
// code or place a gesuite.yaml next to their suites and call Load.
type Config struct {
	// CustomTemplatesDir optionally points at a directory whose files
	// shadow the built-in notebook templates, name by name.
	CustomTemplatesDir string `yaml:"custom_templates_dir"`

	// Header optionally replaces the default greeting cell.
	Header *HeaderConfig `yaml:"header"`

	// OutputDir is where generated notebooks are written when no explicit
	// output path is given (default "notebooks").
	OutputDir string `yaml:"output_dir"`
}

func (c *Config) applyDefaults() {
	if c.OutputDir == "" {
		c.OutputDir = "notebooks"
	}
}

// Validate checks field-level consistency before the renderer is built.
func (c *Config) Validate() error {
	if c.Header != nil && c.Header.FileName == "" {
		return fmt.Errorf("header.file_name is required when header is set")
	}
	return nil
}

// RenderConfig converts the loaded configuration into the renderer's
// explicit construction parameters.
func (c *Config) RenderConfig() render.Config {
	rc := render.Config{CustomTemplatesDir: c.CustomTemplatesDir}
	if c.Header != nil {
		rc.Header = &render.HeaderCell{
			FileName:       c.Header.FileName,
			TemplateKwargs: c.Header.TemplateKwargs,
		}
	}
	return rc
}

// Load reads a configuration YAML file, applies defaults, and validates it.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the configuration used when no file is present.
func Default() Config {
	var cfg Config
	cfg.applyDefaults()
	return cfg
}

// Resolve determines the effective configuration: an explicit path wins,
// then the GESUITE_CONFIG environment variable, then gesuite.yaml in the
// working directory, then built-in defaults when no file exists.
func Resolve(explicitPath string) (Config, error) {
	path := explicitPath
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			path = DefaultConfigFile
		}
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
