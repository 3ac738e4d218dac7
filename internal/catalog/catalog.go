// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package catalog models the flat API catalog document consumed by the
// generator: a DataType section of named structs plus an ApiList of actions,
// each carrying one row per leaf request/response field.
package catalog

// Catalog is a fully parsed API catalog document.
type Catalog struct {
	DataTypes []DataType `json:"DataType" yaml:"DataType"`
	APIs      []API      `json:"ApiList" yaml:"ApiList"`
}

// DataType is a named struct definition from the catalog's DataType section.
type DataType struct {
	StructName string    `json:"StructName" yaml:"StructName"`
	Elements   []Element `json:"Element" yaml:"Element"`
}

// Element is a single field of a DataType struct.
type Element struct {
	Name      string   `json:"ElementName" yaml:"ElementName"`
	Type      int      `json:"ElementType" yaml:"ElementType"`
	Required  int      `json:"IsRequired" yaml:"IsRequired"`
	Array     int      `json:"IsArray" yaml:"IsArray"`
	TypeRef   *TypeRef `json:"ParameterType,omitempty" yaml:"ParameterType,omitempty"`
	Sensitive int      `json:"IsSensitive" yaml:"IsSensitive"`
}

// API is one named action with its request and response field lists.
type API struct {
	Action             string      `json:"Action" yaml:"Action"`
	RequestParameters  []Parameter `json:"RequestParameters" yaml:"RequestParameters"`
	ResponseParameters []Parameter `json:"ResponseParameters" yaml:"ResponseParameters"`
}

// Parameter is one leaf field row. Name is a dotted path for request rows
// (nesting and array membership are path-encoded with the "N" marker segment);
// response rows instead carry an explicit IsArray flag.
type Parameter struct {
	Name        string   `json:"Name" yaml:"Name"`
	Type        int      `json:"Type" yaml:"Type"`
	Required    int      `json:"IsRequired" yaml:"IsRequired"`
	Array       int      `json:"IsArray" yaml:"IsArray"`
	Description string   `json:"Description" yaml:"Description"`
	TypeRef     *TypeRef `json:"ParameterType,omitempty" yaml:"ParameterType,omitempty"`
}

// TypeRef is a named-type reference overriding a parameter's numeric type code.
type TypeRef struct {
	Ref string `json:"$ref" yaml:"$ref"`
}

// IsRequired reports whether the parameter is marked required (flag value 1).
func (p Parameter) IsRequired() bool { return p.Required == 1 }

// IsArray reports whether the parameter carries the explicit array flag.
// Only meaningful for response and DataType rows.
func (p Parameter) IsArray() bool { return p.Array == 1 }

// Ref returns the named-type reference, or "" if the row has none.
func (p Parameter) Ref() string {
	if p.TypeRef == nil {
		return ""
	}
	return p.TypeRef.Ref
}

// IsRequired reports whether the element is marked required (flag value 1).
func (e Element) IsRequired() bool { return e.Required == 1 }

// IsArray reports whether the element carries the explicit array flag.
func (e Element) IsArray() bool { return e.Array == 1 }

// Ref returns the named-type reference, or "" if the element has none.
func (e Element) Ref() string {
	if e.TypeRef == nil {
		return ""
	}
	return e.TypeRef.Ref
}
