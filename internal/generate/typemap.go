// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package generate

// Catalog numeric type codes. The set is closed; anything outside it
// degrades to the string mapping rather than failing.
const (
	TypeString  = 1
	TypeInteger = 2
	TypeFloat   = 3
	TypeLong    = 4
	TypeDouble  = 5
	TypeBoolean = 6
	TypeObject  = 7
	TypeArray   = 8
)

var pythonTypes = map[int]string{
	TypeString:  "str",
	TypeInteger: "int",
	TypeFloat:   "float",
	TypeLong:    "int",
	TypeDouble:  "float",
	TypeBoolean: "bool",
	TypeObject:  "dict",
	TypeArray:   "list",
}

// PythonType maps a catalog type code to a Python primitive type name.
// Unknown codes map to "str".
func PythonType(code int) string {
	if t, ok := pythonTypes[code]; ok {
		return t
	}
	return "str"
}
