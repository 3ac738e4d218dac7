// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package generate builds strongly-typed record definitions from flat,
// path-encoded API field catalogs: it classifies dotted field paths,
// assigns collision-free type names and wires the resulting model graph.
package generate

// TypeRef is the closed set of field type expressions. Emitters consume it
// with an exhaustive type switch; there are no other implementations.
type TypeRef interface {
	typeRef()
}

// Scalar is a primitive target-language type, e.g. "str".
type Scalar struct {
	Name string
}

// Named references a generated or catalog-declared record type by name.
type Named struct {
	Name string
}

// Array wraps an element type into a sequence type.
type Array struct {
	Elem TypeRef
}

func (Scalar) typeRef() {}
func (Named) typeRef()  {}
func (Array) typeRef()  {}

// FieldDef is one member of a record definition.
type FieldDef struct {
	// SourceName is the original catalog field name, kept for wire-format
	// aliasing in the emitted record.
	SourceName string

	// Identifier is the snake_case target identifier.
	Identifier string

	Type        TypeRef
	Required    bool
	Description string
}

// ModelNode is one named record in an action's model graph.
type ModelNode struct {
	// Name is the collision-free type name assigned by the NameRegistry.
	Name string

	// OwnerKey is the joined ownership path the node represents. It is a
	// construction-time lookup key only and never appears in output.
	OwnerKey string

	Fields []FieldDef
}

// hasField reports whether a field with the given identifier already exists,
// guarding idempotent re-insertion during wiring.
func (n *ModelNode) hasField(identifier string) bool {
	for _, f := range n.Fields {
		if f.Identifier == identifier {
			return true
		}
	}
	return false
}

func (n *ModelNode) addField(f FieldDef) {
	n.Fields = append(n.Fields, f)
}

// ModelGraph is the result of compiling one action's request field list:
// a root node named after the action's request type plus its auxiliary
// nested nodes in deterministic creation order.
type ModelGraph struct {
	Root *ModelNode
	Aux  []*ModelNode
}
