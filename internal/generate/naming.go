// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package generate

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	acronymBoundary   = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	lowerToUpper      = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	repeatUnderscores = regexp.MustCompile(`__+`)
)

// ToSnakeCase converts a PascalCase source name to a snake_case identifier.
// Acronym runs are kept as one word ("MCPService" -> "mcp_service",
// "ServiceID" -> "service_id"). The transform is idempotent.
func ToSnakeCase(name string) string {
	if name == "" {
		return name
	}
	s := acronymBoundary.ReplaceAllString(name, "${1}_${2}")
	s = lowerToUpper.ReplaceAllString(s, "${1}_${2}")
	return strings.ToLower(repeatUnderscores.ReplaceAllString(s, "_"))
}

// genericSuffixes are stripped from path segments when building nested type
// names, so "AuthorizerConfiguration" contributes "Authorizer" rather than
// forcing numeric disambiguation later.
var genericSuffixes = []string{"Configuration", "Config", "Info", "List", "Item", "Items"}

func stripGenericSuffix(name string) string {
	for _, suffix := range genericSuffixes {
		if strings.HasSuffix(name, suffix) && len(name) > len(suffix) {
			return name[:len(name)-len(suffix)]
		}
	}
	return name
}

// NestedBaseName builds the base type name for a nested ownership path.
// Multi-segment paths concatenate their (suffix-stripped) segment names so
// distinct paths get distinct bases; array-object paths get an Item suffix
// because their node represents one array element.
func NestedBaseName(ownerPath []string, arrayObject bool) string {
	parts := make([]string, 0, len(ownerPath))
	for _, seg := range ownerPath {
		if seg != "" {
			parts = append(parts, stripGenericSuffix(seg))
		}
	}

	var core string
	switch len(parts) {
	case 0:
		core = "NestedModel"
	case 1:
		core = parts[0]
	default:
		core = strings.Join(parts, "")
	}

	if arrayObject {
		core += "Item"
	}
	return core
}

// NameRegistry tracks every type name assigned during one generator run,
// guaranteeing global uniqueness of emitted names. It is run-scoped: two
// runs never share a registry.
type NameRegistry struct {
	names map[string]struct{}
}

// NewNameRegistry returns a registry seeded with the given names
// (typically the configured base model name).
func NewNameRegistry(seed ...string) *NameRegistry {
	r := &NameRegistry{names: make(map[string]struct{}, len(seed))}
	for _, name := range seed {
		r.Reserve(name)
	}
	return r
}

// Reserve records a name as taken.
func (r *NameRegistry) Reserve(name string) {
	r.names[name] = struct{}{}
}

// Reserved reports whether a name is already taken.
func (r *NameRegistry) Reserved(name string) bool {
	_, ok := r.names[name]
	return ok
}

// Qualify turns a base name into a type name unique within the run:
// <base>For<action>, with an incrementing numeric suffix from 2 when the
// candidate is already taken. The chosen name is reserved before returning.
func (r *NameRegistry) Qualify(base, action string) string {
	candidate := base + "For" + action
	for index := 2; r.Reserved(candidate); index++ {
		candidate = fmt.Sprintf("%sFor%s%d", base, action, index)
	}
	r.Reserve(candidate)
	return candidate
}
