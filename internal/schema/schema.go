package schema

import (
	"fmt"
)

// Schema owns named enum and object definitions plus an optional root type.
// A Schema is constructed once, by parsing schema text or programmatically,
// and is read-only during validation; sharing one schema across concurrent
// validations is safe.
type Schema struct {
	enums   map[string][]string
	objects map[string]map[string]*Field
	root    *Type
}

// New creates an empty schema.
func New() *Schema {
	return &Schema{
		enums:   make(map[string][]string),
		objects: make(map[string]map[string]*Field),
	}
}

// AddEnum registers a named enum and its allowed values.
func (s *Schema) AddEnum(name string, values []string) {
	s.enums[name] = values
}

// AddObject registers a named object schema.
func (s *Schema) AddObject(name string, fields map[string]*Field) {
	s.objects[name] = fields
}

// SetRoot sets the root type checked by Validate.
func (s *Schema) SetRoot(t *Type) {
	s.root = t
}

// Enum returns the allowed values of a named enum.
func (s *Schema) Enum(name string) ([]string, bool) {
	values, ok := s.enums[name]
	return values, ok
}

// Object returns the field definitions of a named object schema.
func (s *Schema) Object(name string) (map[string]*Field, bool) {
	fields, ok := s.objects[name]
	return fields, ok
}

// ValidationError is a purely diagnostic record of one mismatch. It is
// collected, never thrown mid-validation.
type ValidationError struct {
	Path     string
	Message  string
	Expected string
	Actual   string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error at '%s': %s", e.Path, e.Message)
}
