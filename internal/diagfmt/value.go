package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"cfgpp/internal/value"
)

// FormatValuePretty writes a value tree back out as multi-line CFG++ text.
// Objects expand one field per line; scalars and arrays keep their literal
// rendering.
func FormatValuePretty(w io.Writer, v *value.Value) error {
	if !v.IsObject() {
		_, err := fmt.Fprintln(w, v.String())
		return err
	}
	return writeObjectBody(w, v, 0)
}

func writeObjectBody(w io.Writer, obj *value.Value, depth int) error {
	indent := strings.Repeat("    ", depth)
	for _, key := range obj.Keys() {
		child, _ := obj.Get(key)
		if child.IsObject() {
			if _, err := fmt.Fprintf(w, "%s%s {\n", indent, key); err != nil {
				return err
			}
			if err := writeObjectBody(w, child, depth+1); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%s}\n", indent); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s%s = %s;\n", indent, key, child.String()); err != nil {
			return err
		}
	}
	return nil
}
