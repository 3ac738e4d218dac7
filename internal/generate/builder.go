// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package generate

import (
	"sort"
	"strings"

	"github.com/dacolabs/apigen/internal/catalog"
)

// BuildModelGraph compiles one action's request field list into a model
// graph: a root node named <action>Request plus one auxiliary node per
// distinct non-root ownership path. Type names are drawn from reg, so the
// graph's names never collide with anything else emitted in the same run.
//
// Construction is two linear passes over the field list. The first pass
// discovers every ownership path (including intermediate ancestors that
// carry no field directly), decides which paths are array objects, and
// allocates a named node per path. The second pass wires parent-child
// reference fields and attaches the leaf fields.
func BuildModelGraph(action string, params []catalog.Parameter, reg *NameRegistry) *ModelGraph {
	rootName := action + "Request"
	reg.Reserve(rootName)

	// Discovery: leaf names seen per ownership path, split by whether the
	// leaf carried the array-item marker, plus every path prefix.
	arrayLeaves := make(map[string]map[string]struct{})
	plainLeaves := make(map[string]map[string]struct{})
	ownerPaths := make(map[string][]string)

	for _, p := range params {
		cp := ClassifyPath(p.Name)
		if len(cp.OwnerPath) == 0 {
			continue
		}

		key := cp.OwnerKey()
		leaves := plainLeaves
		if cp.ArrayItem {
			leaves = arrayLeaves
		}
		if leaves[key] == nil {
			leaves[key] = make(map[string]struct{})
		}
		leaves[key][cp.LeafName] = struct{}{}

		for i := 1; i <= len(cp.OwnerPath); i++ {
			prefix := cp.OwnerPath[:i]
			ownerPaths[strings.Join(prefix, ".")] = prefix
		}
	}

	// A path is an array object iff every leaf recorded under it carried
	// the array-item marker. Mixed marker usage demotes the path to a
	// plain nested object.
	arrayObjects := make(map[string]bool)
	for key := range arrayLeaves {
		if _, mixed := plainLeaves[key]; !mixed {
			arrayObjects[key] = true
		}
	}

	keys := make([]string, 0, len(ownerPaths))
	for key := range ownerPaths {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	// Allocate nodes in a fixed order so name assignment is deterministic:
	// plain nested paths first, then array-object paths.
	nodes := make(map[string]*ModelNode, len(keys))
	var aux []*ModelNode
	allocate := func(key string, arrayObject bool) {
		base := NestedBaseName(ownerPaths[key], arrayObject)
		node := &ModelNode{
			Name:     reg.Qualify(base, action),
			OwnerKey: key,
		}
		nodes[key] = node
		aux = append(aux, node)
	}
	for _, key := range keys {
		if !arrayObjects[key] {
			allocate(key, false)
		}
	}
	for _, key := range keys {
		if arrayObjects[key] {
			allocate(key, true)
		}
	}

	// Wire parent-child reference fields. The child field is array-typed
	// exactly when the child path is an array object.
	for _, key := range keys {
		segments := ownerPaths[key]
		if len(segments) < 2 {
			continue
		}
		parent, ok := nodes[strings.Join(segments[:len(segments)-1], ".")]
		if !ok {
			continue
		}
		childName := segments[len(segments)-1]
		identifier := ToSnakeCase(childName)
		if parent.hasField(identifier) {
			continue
		}

		var ref TypeRef = Named{Name: nodes[key].Name}
		if arrayObjects[key] {
			ref = Array{Elem: ref}
		}
		parent.addField(FieldDef{
			SourceName: childName,
			Identifier: identifier,
			Type:       ref,
		})
	}

	// Attach leaf fields, and synthesize root references so every
	// first-level nested path stays reachable from the root.
	root := &ModelNode{Name: rootName}
	type rootRef struct {
		name    string
		typeRef TypeRef
	}
	var rootRefs []rootRef
	seenRefs := make(map[string]bool)
	addRootRef := func(name string, ref TypeRef) {
		if seenRefs[name] {
			return
		}
		seenRefs[name] = true
		rootRefs = append(rootRefs, rootRef{name: name, typeRef: ref})
	}

	for _, p := range params {
		cp := ClassifyPath(p.Name)

		field := FieldDef{
			SourceName:  cp.LeafName,
			Identifier:  ToSnakeCase(cp.LeafName),
			Type:        Scalar{Name: PythonType(p.Type)},
			Required:    p.IsRequired(),
			Description: p.Description,
		}
		if cp.SimpleArray {
			field.Type = Array{Elem: field.Type}
		}

		if len(cp.OwnerPath) == 0 {
			if !root.hasField(field.Identifier) {
				root.addField(field)
			}
			continue
		}

		key := cp.OwnerKey()
		node, ok := nodes[key]
		if !ok {
			continue
		}
		if !node.hasField(field.Identifier) {
			node.addField(field)
		}

		first := cp.OwnerPath[0]
		switch {
		case cp.ArrayItem && len(cp.OwnerPath) == 1:
			// Wrap iff the path really is an array object; a demoted
			// mixed-marker path is referenced as a single nested record.
			var ref TypeRef = Named{Name: node.Name}
			if arrayObjects[key] {
				ref = Array{Elem: ref}
			}
			addRootRef(first, ref)
		case !cp.ArrayItem && !cp.SimpleArray:
			refName := first
			if n, ok := nodes[first]; ok {
				refName = n.Name
			}
			addRootRef(first, Named{Name: refName})
		}
	}

	// First-level paths whose leaves were all deeper array items or simple
	// arrays produced no reference above; synthesize one per remaining path
	// so every node stays reachable from the root.
	for _, key := range keys {
		if len(ownerPaths[key]) != 1 {
			continue
		}
		var ref TypeRef = Named{Name: nodes[key].Name}
		if arrayObjects[key] {
			ref = Array{Elem: ref}
		}
		addRootRef(key, ref)
	}

	for _, ref := range rootRefs {
		identifier := ToSnakeCase(ref.name)
		if root.hasField(identifier) {
			continue
		}
		root.addField(FieldDef{
			SourceName: ref.name,
			Identifier: identifier,
			Type:       ref.typeRef,
		})
	}

	return &ModelGraph{Root: root, Aux: aux}
}
