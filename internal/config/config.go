// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles apigen project configuration.
package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// Config represents the apigen.yaml project configuration file. Everything
// besides Version is a default that generate command flags can override.
type Config struct {
	Version int          `yaml:"version"`
	Schema  string       `yaml:"schema,omitempty"`
	Output  string       `yaml:"output,omitempty"`
	Model   ModelConfig  `yaml:"model,omitempty"`
	Client  ClientConfig `yaml:"client,omitempty"`
}

// ModelConfig configures the generated base model class.
type ModelConfig struct {
	Name string `yaml:"name,omitempty"`
	Doc  string `yaml:"doc,omitempty"`
}

// ClientConfig configures optional client module generation.
type ClientConfig struct {
	Output          string `yaml:"output,omitempty"`
	ClassName       string `yaml:"className,omitempty"`
	Description     string `yaml:"description,omitempty"`
	ServiceName     string `yaml:"serviceName,omitempty"`
	TypesModule     string `yaml:"typesModule,omitempty"`
	BaseClassImport string `yaml:"baseClassImport,omitempty"`
	BaseClassName   string `yaml:"baseClassName,omitempty"`
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	return nil
}
