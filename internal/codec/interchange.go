package codec

import (
	"encoding/json"
	"fmt"

	"cfgpp/internal/cfgerr"
	"cfgpp/internal/value"
)

// toInterface lowers a value tree to plain Go values for the generic
// marshalers. Enum values flatten to strings; the distinction does not
// survive a round trip through JSON, YAML or TOML.
func toInterface(v *value.Value) any {
	switch v.Kind() {
	case value.KindNull:
		return nil
	case value.KindBoolean:
		b, _ := v.AsBool()
		return b
	case value.KindInteger:
		i, _ := v.AsInt()
		return i
	case value.KindDouble:
		d, _ := v.AsDouble()
		return d
	case value.KindString:
		s, _ := v.AsString()
		return s
	case value.KindEnum:
		e, _ := v.AsEnum()
		return e
	case value.KindArray:
		elems := v.Elems()
		out := make([]any, len(elems))
		for i, elem := range elems {
			out[i] = toInterface(elem)
		}
		return out
	case value.KindObject:
		out := make(map[string]any, v.Len())
		for _, key := range v.Keys() {
			child, _ := v.Get(key)
			out[key] = toInterface(child)
		}
		return out
	}
	return nil
}

// fromInterface lifts decoded generic values back into a value tree.
// json.Number is resolved to an integer when it parses as one, otherwise
// to a double, so "42" and "42.0" stay distinct kinds.
func fromInterface(raw any) (*value.Value, error) {
	switch x := raw.(type) {
	case nil:
		return value.Null(), nil
	case bool:
		return value.Bool(x), nil
	case int:
		return value.Int(int64(x)), nil
	case int64:
		return value.Int(x), nil
	case uint64:
		return value.Int(int64(x)), nil
	case float64:
		return value.Double(x), nil
	case string:
		return value.Str(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return value.Int(i), nil
		}
		d, err := x.Float64()
		if err != nil {
			return nil, &cfgerr.ParseError{Msg: "invalid number: " + x.String()}
		}
		return value.Double(d), nil
	case []any:
		arr := value.Array()
		for _, elem := range x {
			child, err := fromInterface(elem)
			if err != nil {
				return nil, err
			}
			if err := arr.Push(child); err != nil {
				return nil, err
			}
		}
		return arr, nil
	case map[string]any:
		obj := value.Object()
		for key, elem := range x {
			child, err := fromInterface(elem)
			if err != nil {
				return nil, err
			}
			if err := obj.Set(key, child); err != nil {
				return nil, err
			}
		}
		return obj, nil
	}
	return nil, &cfgerr.ParseError{Msg: fmt.Sprintf("unsupported value of type %T", raw)}
}
