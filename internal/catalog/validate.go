// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.schema.json
var catalogSchema []byte

// ValidateDocument checks a raw catalog document against the catalog JSON
// Schema before decoding. YAML documents are converted to JSON first.
// Violations are fatal: no partial output is ever produced from a document
// that fails structural validation.
func ValidateDocument(data []byte, fromYAML bool) error {
	if fromYAML {
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse catalog YAML: %w", err)
		}
		converted, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to convert catalog YAML to JSON: %w", err)
		}
		data = converted
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(catalogSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("failed to validate catalog document: %w", err)
	}

	if !result.Valid() {
		var sb strings.Builder
		sb.WriteString("invalid catalog document:")
		for _, desc := range result.Errors() {
			sb.WriteString("\n  - ")
			sb.WriteString(desc.String())
		}
		return fmt.Errorf("%s", sb.String())
	}

	return nil
}
