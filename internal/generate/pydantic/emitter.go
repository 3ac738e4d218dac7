// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package pydantic emits Pydantic BaseModel definitions and an RPC client
// module from a parsed API catalog.
package pydantic

import (
	"bytes"
	"embed"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/dacolabs/apigen/internal/catalog"
	"github.com/dacolabs/apigen/internal/generate"
)

//go:embed types.py.tmpl client.py.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "types.py.tmpl", "client.py.tmpl"))

// Options configures the generated types module.
type Options struct {
	// BaseModelName is the name of the shared pydantic base class all
	// generated records inherit from.
	BaseModelName string

	// BaseModelDoc is the base class docstring.
	BaseModelDoc string
}

// ClientOptions configures the generated client module.
type ClientOptions struct {
	ClassName       string
	Description     string
	ServiceName     string
	TypesModule     string
	BaseClassImport string
	BaseClassName   string
}

// DefaultOptions are the emitter defaults used when the caller configures
// nothing.
func DefaultOptions() Options {
	return Options{
		BaseModelName: "APIBaseModel",
		BaseModelDoc:  "Auto-generated base model",
	}
}

type fieldView struct {
	Identifier string
	Annotation string
	Default    string
	Alias      string
}

type classView struct {
	Name   string
	Fields []fieldView
}

type sectionView struct {
	Comment string
	Classes []classView
}

type typesData struct {
	BaseName string
	BaseDoc  string
	Sections []sectionView
}

type methodView struct {
	Action   string
	Name     string
	Request  string
	Response string
}

type clientData struct {
	ClassName       string
	Doc             string
	ServiceName     string
	TypesModule     string
	BaseClassImport string
	BaseClassName   string
	TypeImports     []string
	Methods         []methodView
}

// GenerateTypes emits the full types module for a catalog: the base model,
// one record per DataType struct, then per action the request model graph
// and the flat response model. Type names are unique across the whole run.
func GenerateTypes(cat *catalog.Catalog, opts Options) ([]byte, error) {
	if opts.BaseModelName == "" {
		opts.BaseModelName = DefaultOptions().BaseModelName
	}
	if opts.BaseModelDoc == "" {
		opts.BaseModelDoc = DefaultOptions().BaseModelDoc
	}

	reg := generate.NewNameRegistry(opts.BaseModelName)
	data := typesData{
		BaseName: opts.BaseModelName,
		BaseDoc:  sanitizeDocstring(opts.BaseModelDoc),
	}

	if len(cat.DataTypes) > 0 {
		section := sectionView{Comment: "Data Types"}
		for _, dt := range cat.DataTypes {
			if dt.StructName == "" || len(dt.Elements) == 0 {
				continue
			}
			if reg.Reserved(dt.StructName) {
				continue
			}
			reg.Reserve(dt.StructName)
			section.Classes = append(section.Classes, classView{
				Name:   dt.StructName,
				Fields: renderFields(generate.DataTypeFields(dt.Elements)),
			})
		}
		if len(section.Classes) > 0 {
			data.Sections = append(data.Sections, section)
		}
	}

	for _, api := range cat.APIs {
		if len(api.RequestParameters) > 0 {
			graph := generate.BuildModelGraph(api.Action, api.RequestParameters, reg)
			section := sectionView{Comment: api.Action + " - Request"}
			for _, node := range graph.Aux {
				section.Classes = append(section.Classes, classView{
					Name:   node.Name,
					Fields: renderFields(node.Fields),
				})
			}
			section.Classes = append(section.Classes, classView{
				Name:   graph.Root.Name,
				Fields: renderFields(graph.Root.Fields),
			})
			data.Sections = append(data.Sections, section)
		}

		if len(api.ResponseParameters) > 0 {
			name := api.Action + "Response"
			if reg.Reserved(name) {
				// Two actions sharing a response shape emit it once.
				continue
			}
			reg.Reserve(name)
			data.Sections = append(data.Sections, sectionView{
				Comment: api.Action + " - Response",
				Classes: []classView{{
					Name:   name,
					Fields: renderResponseFields(generate.ResponseFields(api.ResponseParameters)),
				}},
			})
		}
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "types.py.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute types template: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerateClient emits the client module: a class with an action lookup
// table and one method per action dispatching through the generic invoke
// primitive. An empty ApiList yields empty output.
func GenerateClient(cat *catalog.Catalog, opts ClientOptions) ([]byte, error) {
	if len(cat.APIs) == 0 {
		return nil, nil
	}

	doc := opts.Description
	if doc == "" {
		doc = "API client for " + opts.ServiceName
	}

	data := clientData{
		ClassName:       opts.ClassName,
		Doc:             sanitizeDocstring(doc),
		ServiceName:     opts.ServiceName,
		TypesModule:     opts.TypesModule,
		BaseClassImport: opts.BaseClassImport,
		BaseClassName:   opts.BaseClassName,
	}

	imports := make(map[string]struct{}, 2*len(cat.APIs))
	for _, api := range cat.APIs {
		request := api.Action + "Request"
		response := api.Action + "Response"
		imports[request] = struct{}{}
		imports[response] = struct{}{}
		data.Methods = append(data.Methods, methodView{
			Action:   api.Action,
			Name:     generate.ToSnakeCase(api.Action),
			Request:  request,
			Response: response,
		})
	}
	for name := range imports {
		data.TypeImports = append(data.TypeImports, name)
	}
	sort.Strings(data.TypeImports)

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "client.py.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute client template: %w", err)
	}
	return buf.Bytes(), nil
}

// renderFields turns field definitions into template views. Optional fields
// get an Optional[...] annotation with a None default; required fields use
// pydantic's bare "..." default.
func renderFields(fields []generate.FieldDef) []fieldView {
	views := make([]fieldView, 0, len(fields))
	for _, f := range fields {
		annotation := pythonType(f.Type)
		def := "..."
		if !f.Required {
			annotation = "Optional[" + annotation + "]"
			def = "default=None"
		}
		views = append(views, fieldView{
			Identifier: f.Identifier,
			Annotation: annotation,
			Default:    def,
			Alias:      f.SourceName,
		})
	}
	return views
}

// renderResponseFields is renderFields with every field forced optional.
func renderResponseFields(fields []generate.FieldDef) []fieldView {
	for i := range fields {
		fields[i].Required = false
	}
	return renderFields(fields)
}

// pythonType renders a type expression. The switch is exhaustive over the
// closed TypeRef variant set.
func pythonType(ref generate.TypeRef) string {
	switch t := ref.(type) {
	case generate.Scalar:
		return t.Name
	case generate.Named:
		return t.Name
	case generate.Array:
		return "list[" + pythonType(t.Elem) + "]"
	default:
		panic(fmt.Sprintf("unhandled type expression %T", ref))
	}
}

// sanitizeDocstring keeps docstring content from breaking out of its
// triple quotes and collapses it onto one line.
func sanitizeDocstring(text string) string {
	if text == "" {
		return ""
	}
	s := strings.ReplaceAll(text, `"""`, `\"\"\"`)
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.Join(strings.Fields(s), " ")
}
