package codec

import (
	"github.com/goccy/go-yaml"

	"cfgpp/internal/cfgerr"
	"cfgpp/internal/value"
)

// ToYAML renders a value tree as YAML.
func ToYAML(v *value.Value) (string, error) {
	out, err := yaml.Marshal(toInterface(v))
	if err != nil {
		return "", &cfgerr.ParseError{Msg: err.Error()}
	}
	return string(out), nil
}

// FromYAML parses YAML into a value tree.
func FromYAML(text string) (*value.Value, error) {
	var raw any
	if err := yaml.Unmarshal([]byte(text), &raw); err != nil {
		return nil, &cfgerr.ParseError{Msg: err.Error()}
	}
	return fromInterface(raw)
}
