package value

import (
	"sort"
	"strconv"
	"strings"

	"cfgpp/internal/cfgerr"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	// KindNull is the null value.
	KindNull Kind = iota
	// KindBoolean holds a bool.
	KindBoolean
	// KindInteger holds a 64-bit signed integer.
	KindInteger
	// KindDouble holds a 64-bit float.
	KindDouble
	// KindString holds text.
	KindString
	// KindEnum holds an enum literal's text.
	KindEnum
	// KindArray holds an ordered sequence of values.
	KindArray
	// KindObject holds a mapping of unique string keys to values.
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindEnum:
		return "enum"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "unknown"
}

// Value is the typed result of parsing CFG++ text. It is a closed variant:
// exactly one of the payload fields is meaningful, selected by kind.
// Each array/object exclusively owns its children; the grammar cannot
// produce shared sub-trees or cycles.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string // string and enum payload
	arr  []*Value
	obj  map[string]*Value
}

// Null creates a null value.
func Null() *Value {
	return &Value{kind: KindNull}
}

// Bool creates a boolean value.
func Bool(b bool) *Value {
	return &Value{kind: KindBoolean, b: b}
}

// Int creates an integer value.
func Int(i int64) *Value {
	return &Value{kind: KindInteger, i: i}
}

// Double creates a floating-point value.
func Double(f float64) *Value {
	return &Value{kind: KindDouble, f: f}
}

// Str creates a string value.
func Str(s string) *Value {
	return &Value{kind: KindString, s: s}
}

// Enum creates an enum literal value.
func Enum(s string) *Value {
	return &Value{kind: KindEnum, s: s}
}

// Array creates an array value from the given elements.
func Array(elems ...*Value) *Value {
	return &Value{kind: KindArray, arr: elems}
}

// Object creates an empty object value.
func Object() *Value {
	return &Value{kind: KindObject, obj: make(map[string]*Value)}
}

// Kind returns the variant held by the value.
func (v *Value) Kind() Kind {
	return v.kind
}

// Type returns the value's type name for diagnostics.
func (v *Value) Type() string {
	return v.kind.String()
}

func (v *Value) IsNull() bool   { return v.kind == KindNull }
func (v *Value) IsObject() bool { return v.kind == KindObject }
func (v *Value) IsArray() bool  { return v.kind == KindArray }

// AsBool returns the boolean payload.
func (v *Value) AsBool() (bool, bool) {
	if v.kind != KindBoolean {
		return false, false
	}
	return v.b, true
}

// AsInt returns the integer payload.
func (v *Value) AsInt() (int64, bool) {
	if v.kind != KindInteger {
		return 0, false
	}
	return v.i, true
}

// AsDouble returns the float payload.
func (v *Value) AsDouble() (float64, bool) {
	if v.kind != KindDouble {
		return 0, false
	}
	return v.f, true
}

// AsString returns the string payload.
func (v *Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// AsEnum returns the enum literal's text.
func (v *Value) AsEnum() (string, bool) {
	if v.kind != KindEnum {
		return "", false
	}
	return v.s, true
}

// Elems returns the array elements, or nil for other kinds.
func (v *Value) Elems() []*Value {
	if v.kind != KindArray {
		return nil
	}
	return v.arr
}

// Keys returns the object's keys in sorted order, or nil for other kinds.
// Key order is not semantically significant; sorting keeps output stable.
func (v *Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	keys := make([]string, 0, len(v.obj))
	for k := range v.obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value for key. Defined only on objects; any other kind
// reports "not found" rather than an error.
func (v *Value) Get(key string) (*Value, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	child, ok := v.obj[key]
	return child, ok
}

// GetIndex returns the i-th element. Defined only on arrays; any other kind
// or an out-of-range index reports "not found".
func (v *Value) GetIndex(i int) (*Value, bool) {
	if v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return nil, false
	}
	return v.arr[i], true
}

// Set assigns key to child. Later assignment to an existing key overwrites
// the earlier one. Calling Set on a non-object is a type error.
func (v *Value) Set(key string, child *Value) error {
	if v.kind != KindObject {
		return &cfgerr.TypeError{Expected: "object", Actual: v.Type()}
	}
	v.obj[key] = child
	return nil
}

// Push appends child to the array. Calling Push on a non-array is a type error.
func (v *Value) Push(child *Value) error {
	if v.kind != KindArray {
		return &cfgerr.TypeError{Expected: "array", Actual: v.Type()}
	}
	v.arr = append(v.arr, child)
	return nil
}

// Len returns the element/entry count for arrays and objects, and zero for
// every other variant. Emptiness is not a meaningful question for scalars.
func (v *Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj)
	default:
		return 0
	}
}

// IsEmpty reports whether an array or object has no children; it is false
// for every other variant.
func (v *Value) IsEmpty() bool {
	switch v.kind {
	case KindArray:
		return len(v.arr) == 0
	case KindObject:
		return len(v.obj) == 0
	default:
		return false
	}
}

// String renders the value in literal form. Object keys are emitted in
// sorted order for deterministic output.
func (v *Value) String() string {
	var sb strings.Builder
	v.write(&sb)
	return sb.String()
}

func (v *Value) write(sb *strings.Builder) {
	switch v.kind {
	case KindNull:
		sb.WriteString("null")
	case KindBoolean:
		sb.WriteString(strconv.FormatBool(v.b))
	case KindInteger:
		sb.WriteString(strconv.FormatInt(v.i, 10))
	case KindDouble:
		sb.WriteString(strconv.FormatFloat(v.f, 'g', -1, 64))
	case KindString:
		sb.WriteString(strconv.Quote(v.s))
	case KindEnum:
		sb.WriteString(v.s)
	case KindArray:
		sb.WriteByte('[')
		for i, e := range v.arr {
			if i > 0 {
				sb.WriteString(", ")
			}
			e.write(sb)
		}
		sb.WriteByte(']')
	case KindObject:
		sb.WriteByte('{')
		for i, k := range v.Keys() {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(k)
			sb.WriteString(" = ")
			v.obj[k].write(sb)
		}
		sb.WriteByte('}')
	}
}
