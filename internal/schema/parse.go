package schema

import (
	"os"
	"strings"

	"cfgpp/internal/cfgerr"
)

// Parse reads the line-oriented schema text form. Two declaration shapes are
// recognized: 'enum Name { a, b, c }' (single or multi line) and object
// schemas 'Name { field: type; ... }'. Anything else, including blank lines
// and comments, is skipped.
func Parse(text string) (*Schema, error) {
	s := New()
	lines := strings.Split(text, "\n")

	for i := 0; i < len(lines); {
		line := strings.TrimSpace(lines[i])

		if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "#") {
			i++
			continue
		}

		if strings.HasPrefix(line, "enum ") {
			name, values, consumed, err := parseEnumDecl(lines[i:])
			if err != nil {
				return nil, err
			}
			s.enums[name] = values
			i += consumed
			continue
		}

		if strings.Contains(line, "{") {
			name, fields, consumed := parseObjectDecl(lines[i:])
			s.objects[name] = fields
			i += consumed
			continue
		}

		i++
	}

	return s, nil
}

// ParseFile reads and parses a schema file.
func ParseFile(path string) (*Schema, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &cfgerr.IoError{Msg: "failed to read schema file: " + err.Error(), Err: err}
	}
	return Parse(string(content))
}

func parseEnumDecl(lines []string) (name string, values []string, consumed int, err error) {
	first := strings.TrimSpace(lines[0])
	rest := strings.TrimPrefix(first, "enum ")

	braceStart := strings.Index(rest, "{")
	if braceStart < 0 {
		return "", nil, 0, &cfgerr.ParseError{Msg: "invalid enum definition"}
	}
	name = strings.TrimSpace(rest[:braceStart])

	// Single-line form: everything between the braces.
	if braceEnd := strings.Index(rest, "}"); braceEnd > braceStart {
		return name, splitEnumValues(rest[braceStart+1 : braceEnd]), 1, nil
	}

	consumed = 1
	for _, line := range lines[1:] {
		trimmed := strings.TrimSpace(line)
		if strings.Contains(trimmed, "}") {
			break
		}
		if trimmed != "" && !strings.HasPrefix(trimmed, "//") {
			values = append(values, splitEnumValues(trimmed)...)
		}
		consumed++
	}
	return name, values, consumed + 1, nil
}

func splitEnumValues(s string) []string {
	var values []string
	for _, part := range strings.Split(s, ",") {
		if v := strings.TrimSpace(part); v != "" {
			values = append(values, v)
		}
	}
	return values
}

func parseObjectDecl(lines []string) (name string, fields map[string]*Field, consumed int) {
	first := strings.TrimSpace(lines[0])
	if bracePos := strings.Index(first, "{"); bracePos >= 0 {
		name = strings.TrimSpace(first[:bracePos])
	}
	if name == "" {
		name = "unnamed"
	}

	fields = make(map[string]*Field)
	consumed = 1
	for _, line := range lines[1:] {
		trimmed := strings.TrimSpace(line)
		if strings.Contains(trimmed, "}") {
			break
		}
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			consumed++
			continue
		}

		// 'field_name: type;'
		if colon := strings.Index(trimmed, ":"); colon >= 0 {
			fieldName := strings.TrimSpace(trimmed[:colon])
			typeText := strings.TrimSuffix(strings.TrimSpace(trimmed[colon+1:]), ";")
			fields[fieldName] = NewField(parseTypeText(typeText), true)
		}
		consumed++
	}
	return name, fields, consumed + 1
}

// parseTypeText maps a type expression from the text form to a Type. Bare
// identifiers become Ref types; whether they name an object schema or an
// enum is resolved during validation.
func parseTypeText(s string) *Type {
	s = strings.TrimSpace(s)
	switch s {
	case "null":
		return Null()
	case "boolean":
		return Boolean()
	case "integer":
		return Integer()
	case "double":
		return Double()
	case "string":
		return String()
	}
	if inner, ok := genericArg(s, "array<"); ok {
		return ArrayOf(parseTypeText(inner))
	}
	if inner, ok := genericArg(s, "optional<"); ok {
		return Optional(parseTypeText(inner))
	}
	return Ref(s)
}

func genericArg(s, prefix string) (string, bool) {
	if strings.HasPrefix(s, prefix) && strings.HasSuffix(s, ">") {
		return s[len(prefix) : len(s)-1], true
	}
	return "", false
}
