// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package generate

import "github.com/dacolabs/apigen/internal/catalog"

// ResponseFields prepares the field list for an action's response record.
// Responses are never nested: every row is emitted directly on the response
// type. A row's ParameterType reference overrides its numeric type code, and
// response fields are always optional on the wire.
func ResponseFields(params []catalog.Parameter) []FieldDef {
	fields := make([]FieldDef, 0, len(params))
	for _, p := range params {
		var ref TypeRef
		if r := p.Ref(); r != "" {
			ref = Named{Name: r}
		} else {
			ref = Scalar{Name: PythonType(p.Type)}
		}
		if p.IsArray() {
			ref = Array{Elem: ref}
		}
		fields = append(fields, FieldDef{
			SourceName:  p.Name,
			Identifier:  ToSnakeCase(p.Name),
			Type:        ref,
			Description: p.Description,
		})
	}
	return fields
}

// DataTypeFields prepares the field list for a catalog-declared struct.
func DataTypeFields(elements []catalog.Element) []FieldDef {
	fields := make([]FieldDef, 0, len(elements))
	for _, e := range elements {
		var ref TypeRef
		if r := e.Ref(); r != "" {
			ref = Named{Name: r}
		} else {
			ref = Scalar{Name: PythonType(e.Type)}
		}
		if e.IsArray() {
			ref = Array{Elem: ref}
		}
		fields = append(fields, FieldDef{
			SourceName: e.Name,
			Identifier: ToSnakeCase(e.Name),
			Type:       ref,
			Required:   e.IsRequired(),
		})
	}
	return fields
}
