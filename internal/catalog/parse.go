// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser decodes a catalog document from an io.Reader.
type Parser struct {
	parse func(io.Reader) (*Catalog, error)
}

var (
	// JSON parses catalog documents from JSON.
	JSON = Parser{parseJSON}
	// YAML parses catalog documents from YAML.
	YAML = Parser{parseYAML}
)

// ParserFor picks a parser from a file path's extension.
// JSON is the default for unknown extensions.
func ParserFor(path string) Parser {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return YAML
	}
	return JSON
}

// Parse decodes and validates a catalog document from r.
// A parameter row without a Name is a schema error, not a skip.
func (p Parser) Parse(r io.Reader) (*Catalog, error) {
	cat, err := p.parse(r)
	if err != nil {
		return nil, err
	}
	if err := cat.validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

// ParseFile reads, decodes and validates a catalog document from a file,
// picking the format from the file extension.
func ParseFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}

	yamlInput := strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")
	if err := ValidateDocument(data, yamlInput); err != nil {
		return nil, err
	}

	return ParserFor(path).Parse(bytes.NewReader(data))
}

func parseJSON(r io.Reader) (*Catalog, error) {
	var cat Catalog
	dec := json.NewDecoder(r)
	if err := dec.Decode(&cat); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}
	return &cat, nil
}

func parseYAML(r io.Reader) (*Catalog, error) {
	var cat Catalog
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cat); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}
	return &cat, nil
}

func (c *Catalog) validate() error {
	for _, api := range c.APIs {
		if api.Action == "" {
			return fmt.Errorf("ApiList entry is missing an Action name")
		}
		for i, p := range api.RequestParameters {
			if p.Name == "" {
				return fmt.Errorf("action %s: request parameter %d is missing a Name", api.Action, i)
			}
		}
		for i, p := range api.ResponseParameters {
			if p.Name == "" {
				return fmt.Errorf("action %s: response parameter %d is missing a Name", api.Action, i)
			}
		}
	}
	return nil
}
