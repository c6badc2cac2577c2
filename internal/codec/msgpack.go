package codec

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"cfgpp/internal/cfgerr"
	"cfgpp/internal/value"
)

// wireValue is the msgpack shape of a value tree. Unlike the generic
// codecs it is lossless: enum and string stay distinct kinds, so a cached
// tree decodes back to exactly what was parsed.
type wireValue struct {
	Kind   uint8                 `msgpack:"k"`
	Bool   bool                  `msgpack:"b,omitempty"`
	Int    int64                 `msgpack:"i,omitempty"`
	Double float64               `msgpack:"d,omitempty"`
	Str    string                `msgpack:"s,omitempty"`
	Elems  []*wireValue          `msgpack:"a,omitempty"`
	Fields map[string]*wireValue `msgpack:"o,omitempty"`
}

// ToMsgpack encodes a value tree into the lossless msgpack wire form.
func ToMsgpack(v *value.Value) ([]byte, error) {
	out, err := msgpack.Marshal(toWire(v))
	if err != nil {
		return nil, &cfgerr.ParseError{Msg: err.Error()}
	}
	return out, nil
}

// FromMsgpack decodes the msgpack wire form back into a value tree.
func FromMsgpack(data []byte) (*value.Value, error) {
	var w wireValue
	if err := msgpack.Unmarshal(data, &w); err != nil {
		return nil, &cfgerr.ParseError{Msg: err.Error()}
	}
	return fromWire(&w)
}

func toWire(v *value.Value) *wireValue {
	w := &wireValue{Kind: uint8(v.Kind())}
	switch v.Kind() {
	case value.KindBoolean:
		w.Bool, _ = v.AsBool()
	case value.KindInteger:
		w.Int, _ = v.AsInt()
	case value.KindDouble:
		w.Double, _ = v.AsDouble()
	case value.KindString:
		w.Str, _ = v.AsString()
	case value.KindEnum:
		w.Str, _ = v.AsEnum()
	case value.KindArray:
		elems := v.Elems()
		w.Elems = make([]*wireValue, len(elems))
		for i, elem := range elems {
			w.Elems[i] = toWire(elem)
		}
	case value.KindObject:
		w.Fields = make(map[string]*wireValue, v.Len())
		for _, key := range v.Keys() {
			child, _ := v.Get(key)
			w.Fields[key] = toWire(child)
		}
	}
	return w
}

func fromWire(w *wireValue) (*value.Value, error) {
	switch value.Kind(w.Kind) {
	case value.KindNull:
		return value.Null(), nil
	case value.KindBoolean:
		return value.Bool(w.Bool), nil
	case value.KindInteger:
		return value.Int(w.Int), nil
	case value.KindDouble:
		return value.Double(w.Double), nil
	case value.KindString:
		return value.Str(w.Str), nil
	case value.KindEnum:
		return value.Enum(w.Str), nil
	case value.KindArray:
		arr := value.Array()
		for _, elem := range w.Elems {
			child, err := fromWire(elem)
			if err != nil {
				return nil, err
			}
			if err := arr.Push(child); err != nil {
				return nil, err
			}
		}
		return arr, nil
	case value.KindObject:
		obj := value.Object()
		for key, elem := range w.Fields {
			child, err := fromWire(elem)
			if err != nil {
				return nil, err
			}
			if err := obj.Set(key, child); err != nil {
				return nil, err
			}
		}
		return obj, nil
	}
	return nil, &cfgerr.ParseError{Msg: fmt.Sprintf("unknown wire kind %d", w.Kind)}
}
