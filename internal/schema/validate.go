package schema

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"cfgpp/internal/value"
)

// Validate checks v against the schema's root type. All mismatches are
// collected; validation never stops at the first error. A nil return means
// the value conforms. Without a root type the value tree is walked
// structurally, which accepts any well-formed tree.
func (s *Schema) Validate(v *value.Value) []ValidationError {
	var errs []ValidationError
	if s.root != nil {
		s.validateType(v, s.root, "", &errs)
	} else {
		s.validateInferred(v, "", &errs)
	}
	return errs
}

// ValidateField checks a single value against one field definition,
// including its constraints.
func (s *Schema) ValidateField(v *value.Value, field *Field, path string) []ValidationError {
	var errs []ValidationError
	s.validateType(v, field.Type, path, &errs)
	for _, c := range field.Constraints {
		s.validateConstraint(v, c, path, &errs)
	}
	return errs
}

func (s *Schema) validateType(v *value.Value, t *Type, path string, errs *[]ValidationError) {
	switch t.kind {
	case TypeNull:
		if !v.IsNull() {
			s.mismatch(v, t, path, errs)
		}
	case TypeBoolean:
		if v.Kind() != value.KindBoolean {
			s.mismatch(v, t, path, errs)
		}
	case TypeInteger:
		if v.Kind() != value.KindInteger {
			s.mismatch(v, t, path, errs)
		}
	case TypeDouble:
		if v.Kind() != value.KindDouble {
			s.mismatch(v, t, path, errs)
		}
	case TypeString:
		if v.Kind() != value.KindString {
			s.mismatch(v, t, path, errs)
		}

	case TypeArray:
		if !v.IsArray() {
			s.mismatch(v, t, path, errs)
			return
		}
		for i, elem := range v.Elems() {
			s.validateType(elem, t.elem, path+"["+strconv.Itoa(i)+"]", errs)
		}

	case TypeObjectRef:
		s.validateObjectRef(v, t, path, errs)

	case TypeEnumRef:
		s.validateEnumRef(v, t, path, errs)

	case TypeRef:
		s.validateRef(v, t, path, errs)

	case TypeUnion:
		for _, member := range t.members {
			var memberErrs []ValidationError
			s.validateType(v, member, path, &memberErrs)
			if len(memberErrs) == 0 {
				return
			}
		}
		*errs = append(*errs, ValidationError{
			Path:     path,
			Message:  fmt.Sprintf("value does not match any type in union: %s", t),
			Expected: t.String(),
			Actual:   v.Type(),
		})

	case TypeOptional:
		if !v.IsNull() {
			s.validateType(v, t.elem, path, errs)
		}
	}
}

func (s *Schema) validateObjectRef(v *value.Value, t *Type, path string, errs *[]ValidationError) {
	if !v.IsObject() {
		s.mismatch(v, t, path, errs)
		return
	}
	fields, ok := s.objects[t.name]
	if !ok {
		*errs = append(*errs, ValidationError{
			Path:     path,
			Message:  fmt.Sprintf("unknown object schema '%s'", t.name),
			Expected: t.String(),
			Actual:   v.Type(),
		})
		return
	}

	// Deterministic error order over the map.
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		field := fields[name]
		fieldPath := joinPath(path, name)
		fv, present := v.Get(name)
		if !present {
			if field.Required {
				*errs = append(*errs, ValidationError{
					Path:     fieldPath,
					Message:  fmt.Sprintf("required field '%s' is missing", name),
					Expected: field.Type.String(),
				})
			}
			continue
		}
		s.validateType(fv, field.Type, fieldPath, errs)
		for _, c := range field.Constraints {
			s.validateConstraint(fv, c, fieldPath, errs)
		}
	}

	// Object schemas are closed: every present field must be declared.
	for _, name := range v.Keys() {
		if _, declared := fields[name]; !declared {
			fv, _ := v.Get(name)
			*errs = append(*errs, ValidationError{
				Path:    joinPath(path, name),
				Message: fmt.Sprintf("unexpected field '%s'", name),
				Actual:  fv.Type(),
			})
		}
	}
}

func (s *Schema) validateEnumRef(v *value.Value, t *Type, path string, errs *[]ValidationError) {
	ev, ok := v.AsEnum()
	if !ok {
		s.mismatch(v, t, path, errs)
		return
	}
	allowed, known := s.enums[t.name]
	if !known {
		*errs = append(*errs, ValidationError{
			Path:     path,
			Message:  fmt.Sprintf("unknown enum type '%s'", t.name),
			Expected: t.String(),
			Actual:   v.Type(),
		})
		return
	}
	for _, a := range allowed {
		if a == ev {
			return
		}
	}
	*errs = append(*errs, ValidationError{
		Path:     path,
		Message:  fmt.Sprintf("invalid enum value '%s', expected one of: %s", ev, strings.Join(allowed, ", ")),
		Expected: t.String(),
		Actual:   "enum(" + ev + ")",
	})
}

// validateRef resolves a bare schema name from the text form. When the name
// exists in both namespaces the value's own kind picks the interpretation.
func (s *Schema) validateRef(v *value.Value, t *Type, path string, errs *[]ValidationError) {
	_, isObject := s.objects[t.name]
	_, isEnum := s.enums[t.name]

	switch {
	case isObject && isEnum:
		if v.Kind() == value.KindEnum {
			s.validateEnumRef(v, EnumRef(t.name), path, errs)
		} else {
			s.validateObjectRef(v, ObjectRef(t.name), path, errs)
		}
	case isObject:
		s.validateObjectRef(v, ObjectRef(t.name), path, errs)
	case isEnum:
		s.validateEnumRef(v, EnumRef(t.name), path, errs)
	default:
		*errs = append(*errs, ValidationError{
			Path:     path,
			Message:  fmt.Sprintf("unknown schema '%s'", t.name),
			Expected: t.name,
			Actual:   v.Type(),
		})
	}
}

func (s *Schema) validateConstraint(v *value.Value, c Constraint, path string, errs *[]ValidationError) {
	switch c.kind {
	case ConstraintMinLength:
		if str, ok := v.AsString(); ok && len(str) < c.n {
			*errs = append(*errs, ValidationError{
				Path:    path,
				Message: fmt.Sprintf("string length %d is less than minimum %d", len(str), c.n),
			})
		}
	case ConstraintMaxLength:
		if str, ok := v.AsString(); ok && len(str) > c.n {
			*errs = append(*errs, ValidationError{
				Path:    path,
				Message: fmt.Sprintf("string length %d exceeds maximum %d", len(str), c.n),
			})
		}
	case ConstraintMinValue:
		if num, ok := numericValue(v); ok && num < c.f {
			*errs = append(*errs, ValidationError{
				Path:    path,
				Message: fmt.Sprintf("value %v is less than minimum %v", num, c.f),
			})
		}
	case ConstraintMaxValue:
		if num, ok := numericValue(v); ok && num > c.f {
			*errs = append(*errs, ValidationError{
				Path:    path,
				Message: fmt.Sprintf("value %v exceeds maximum %v", num, c.f),
			})
		}
	case ConstraintPattern:
		if str, ok := v.AsString(); ok && !c.re.MatchString(str) {
			*errs = append(*errs, ValidationError{
				Path:    path,
				Message: fmt.Sprintf("string '%s' does not match pattern %s", str, c.expr),
			})
		}
	case ConstraintCustom:
		// Resolved by the host application, always passes here.
	}
}

func (s *Schema) validateInferred(v *value.Value, path string, errs *[]ValidationError) {
	switch {
	case v.IsObject():
		for _, key := range v.Keys() {
			fv, _ := v.Get(key)
			s.validateInferred(fv, joinPath(path, key), errs)
		}
	case v.IsArray():
		for i, elem := range v.Elems() {
			s.validateInferred(elem, path+"["+strconv.Itoa(i)+"]", errs)
		}
	}
}

func (s *Schema) mismatch(v *value.Value, t *Type, path string, errs *[]ValidationError) {
	*errs = append(*errs, ValidationError{
		Path:     path,
		Message:  "type mismatch",
		Expected: t.String(),
		Actual:   v.Type(),
	})
}

func numericValue(v *value.Value) (float64, bool) {
	if i, ok := v.AsInt(); ok {
		return float64(i), true
	}
	if d, ok := v.AsDouble(); ok {
		return d, true
	}
	return 0, false
}

func joinPath(base, name string) string {
	if base == "" {
		return name
	}
	return base + "." + name
}
