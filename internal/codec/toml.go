package codec

import (
	"bytes"

	"github.com/BurntSushi/toml"

	"cfgpp/internal/cfgerr"
	"cfgpp/internal/value"
)

// ToTOML renders a value tree as TOML. The root must be an object; TOML has
// no representation for a bare scalar or array document.
func ToTOML(v *value.Value) (string, error) {
	if !v.IsObject() {
		return "", &cfgerr.TypeError{Expected: "object", Actual: v.Type()}
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(toInterface(v)); err != nil {
		return "", &cfgerr.ParseError{Msg: err.Error()}
	}
	return buf.String(), nil
}

// FromTOML parses TOML into a value tree.
func FromTOML(text string) (*value.Value, error) {
	var raw map[string]any
	if _, err := toml.Decode(text, &raw); err != nil {
		return nil, &cfgerr.ParseError{Msg: err.Error()}
	}
	return fromInterface(raw)
}
