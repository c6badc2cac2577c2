package schema

import (
	"strings"
)

// TypeKind identifies the variant held by a Type.
type TypeKind uint8

const (
	// TypeNull matches only the null value.
	TypeNull TypeKind = iota
	// TypeBoolean matches boolean values.
	TypeBoolean
	// TypeInteger matches integer values only; doubles never satisfy it.
	TypeInteger
	// TypeDouble matches double values.
	TypeDouble
	// TypeString matches string values.
	TypeString
	// TypeArray matches arrays whose every element matches the element type.
	TypeArray
	// TypeObjectRef references a named object schema.
	TypeObjectRef
	// TypeEnumRef references a named enum definition.
	TypeEnumRef
	// TypeRef references a named object or enum schema; which one is
	// disambiguated at validation time by what the value actually is.
	// Produced by the text form, where a bare identifier could mean either.
	TypeRef
	// TypeUnion matches when any member type matches, tried in order.
	TypeUnion
	// TypeOptional matches null or the wrapped type.
	TypeOptional
)

// Type is a closed recursive variant describing the shape a value must have.
// Nested types are held by pointer so the recursion has a finite
// representation.
type Type struct {
	kind    TypeKind
	elem    *Type   // TypeArray, TypeOptional
	name    string  // TypeObjectRef, TypeEnumRef, TypeRef
	members []*Type // TypeUnion
}

// Null matches only null.
func Null() *Type { return &Type{kind: TypeNull} }

// Boolean matches boolean values.
func Boolean() *Type { return &Type{kind: TypeBoolean} }

// Integer matches integer values.
func Integer() *Type { return &Type{kind: TypeInteger} }

// Double matches double values.
func Double() *Type { return &Type{kind: TypeDouble} }

// String matches string values.
func String() *Type { return &Type{kind: TypeString} }

// ArrayOf matches arrays of elem.
func ArrayOf(elem *Type) *Type { return &Type{kind: TypeArray, elem: elem} }

// ObjectRef references the named object schema.
func ObjectRef(name string) *Type { return &Type{kind: TypeObjectRef, name: name} }

// EnumRef references the named enum definition.
func EnumRef(name string) *Type { return &Type{kind: TypeEnumRef, name: name} }

// Ref references a named schema, object or enum decided at validation time.
func Ref(name string) *Type { return &Type{kind: TypeRef, name: name} }

// Union matches any of the member types, tried in the given order.
func Union(members ...*Type) *Type { return &Type{kind: TypeUnion, members: members} }

// Optional matches null or the wrapped type.
func Optional(elem *Type) *Type { return &Type{kind: TypeOptional, elem: elem} }

// Kind returns the type's variant.
func (t *Type) Kind() TypeKind { return t.kind }

// Name returns the referenced schema name for ref kinds.
func (t *Type) Name() string { return t.name }

func (t *Type) String() string {
	switch t.kind {
	case TypeNull:
		return "null"
	case TypeBoolean:
		return "boolean"
	case TypeInteger:
		return "integer"
	case TypeDouble:
		return "double"
	case TypeString:
		return "string"
	case TypeArray:
		return "array<" + t.elem.String() + ">"
	case TypeObjectRef:
		return "object(" + t.name + ")"
	case TypeEnumRef:
		return "enum(" + t.name + ")"
	case TypeRef:
		return t.name
	case TypeUnion:
		parts := make([]string, len(t.members))
		for i, m := range t.members {
			parts[i] = m.String()
		}
		return "union(" + strings.Join(parts, " | ") + ")"
	case TypeOptional:
		return "optional<" + t.elem.String() + ">"
	}
	return "unknown"
}
