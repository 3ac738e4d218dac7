// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package generate

import "strings"

// ArrayMarker is the literal path segment denoting "for each element"
// semantics in a dotted field path, e.g. "Envs.N.Key".
const ArrayMarker = "N"

// ClassifiedPath is the decomposition of one dotted field path.
// Exactly one of the four classifications holds for any path:
// root, simple-array, array-item, or plain-nested.
type ClassifiedPath struct {
	// OwnerPath is the sequence of ancestor segment names locating the leaf,
	// with array markers stripped. Empty means the field sits on the root.
	OwnerPath []string

	// LeafName is the field's own name.
	LeafName string

	// ArrayItem is true when the path contains an internal array marker,
	// i.e. the field belongs to an element of an array of objects.
	ArrayItem bool

	// SimpleArray is true when the path ends in an array marker,
	// i.e. the field itself is an array of scalars.
	SimpleArray bool
}

// OwnerKey returns the joined ownership path, used as a node lookup key
// during model graph construction.
func (c ClassifiedPath) OwnerKey() string {
	return strings.Join(c.OwnerPath, ".")
}

// ClassifyPath decomposes a dotted field path into its ownership path, leaf
// name and array classification. It is a pure function of the input string.
//
//	"Name"                 -> owner [], leaf "Name"
//	"Auth.Key.ApiKey"      -> owner ["Auth","Key"], leaf "ApiKey"
//	"Envs.N.Key"           -> owner ["Envs"], leaf "Key", array item
//	"AllowedClients.N"     -> owner [], leaf "AllowedClients", simple array
func ClassifyPath(path string) ClassifiedPath {
	segments := strings.Split(path, ".")

	var cp ClassifiedPath
	if len(segments) >= 2 && segments[len(segments)-1] == ArrayMarker {
		cp.SimpleArray = true
		segments = segments[:len(segments)-1]
	} else if len(segments) > 1 {
		for _, seg := range segments[:len(segments)-1] {
			if seg == ArrayMarker {
				cp.ArrayItem = true
				break
			}
		}
	}

	clean := segments[:0:0]
	for _, seg := range segments {
		if seg != ArrayMarker {
			clean = append(clean, seg)
		}
	}

	if len(clean) <= 1 {
		if len(clean) == 1 {
			cp.LeafName = clean[0]
		}
		return cp
	}

	cp.OwnerPath = clean[:len(clean)-1]
	cp.LeafName = clean[len(clean)-1]
	return cp
}
