package codec

import (
	"encoding/json"
	"strings"

	"cfgpp/internal/cfgerr"
	"cfgpp/internal/value"
)

// ToJSON renders a value tree as indented JSON.
func ToJSON(v *value.Value) (string, error) {
	out, err := json.MarshalIndent(toInterface(v), "", "  ")
	if err != nil {
		return "", &cfgerr.ParseError{Msg: err.Error()}
	}
	return string(out), nil
}

// ToJSONCompact renders a value tree as single-line JSON.
func ToJSONCompact(v *value.Value) (string, error) {
	out, err := json.Marshal(toInterface(v))
	if err != nil {
		return "", &cfgerr.ParseError{Msg: err.Error()}
	}
	return string(out), nil
}

// FromJSON parses JSON into a value tree. Numbers are decoded through
// json.Number so integers and doubles keep their kinds.
func FromJSON(text string) (*value.Value, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, &cfgerr.ParseError{Msg: err.Error()}
	}
	if dec.More() {
		return nil, &cfgerr.ParseError{Msg: "trailing data after JSON value"}
	}
	return fromInterface(raw)
}
