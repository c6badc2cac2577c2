package schema_test

import (
	"strings"
	"testing"

	"cfgpp/internal/schema"
	"cfgpp/internal/value"
)

func userSchema() *schema.Schema {
	s := schema.New()
	s.AddEnum("Status", []string{"active", "inactive"})
	s.AddObject("User", map[string]*schema.Field{
		"name":   schema.NewField(schema.String(), true),
		"age":    schema.NewField(schema.Integer(), true),
		"status": schema.NewField(schema.EnumRef("Status"), true),
	})
	s.SetRoot(schema.ObjectRef("User"))
	return s
}

func userValue(name string, age int64, status string) *value.Value {
	v := value.Object()
	v.Set("name", value.Str(name))
	v.Set("age", value.Int(age))
	v.Set("status", value.Enum(status))
	return v
}

func findError(errs []schema.ValidationError, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func TestValidate_Conforming(t *testing.T) {
	errs := userSchema().Validate(userValue("ann", 30, "active"))
	if len(errs) != 0 {
		t.Errorf("Expected no errors, got %v", errs)
	}
}

func TestValidate_MissingRequiredField(t *testing.T) {
	v := value.Object()
	v.Set("name", value.Str("ann"))

	errs := userSchema().Validate(v)
	if !findError(errs, "required field 'age' is missing") {
		t.Errorf("Expected missing-field error for age, got %v", errs)
	}
	if !findError(errs, "required field 'status' is missing") {
		t.Errorf("Expected missing-field error for status, got %v", errs)
	}
}

func TestValidate_UnexpectedField(t *testing.T) {
	v := userValue("ann", 30, "active")
	v.Set("extra", value.Int(1))

	errs := userSchema().Validate(v)
	if !findError(errs, "unexpected field 'extra'") {
		t.Errorf("Object schemas are closed; got %v", errs)
	}
}

func TestValidate_TypeMismatch(t *testing.T) {
	v := userValue("ann", 30, "active")
	v.Set("age", value.Str("thirty"))

	errs := userSchema().Validate(v)
	if len(errs) != 1 {
		t.Fatalf("Expected 1 error, got %v", errs)
	}
	if errs[0].Path != "age" || errs[0].Expected != "integer" || errs[0].Actual != "string" {
		t.Errorf("Unexpected error detail: %+v", errs[0])
	}
}

func TestValidate_IntegerIsNotDouble(t *testing.T) {
	s := schema.New()
	s.SetRoot(schema.Double())

	if errs := s.Validate(value.Int(1)); len(errs) == 0 {
		t.Error("integer must not satisfy double")
	}
	if errs := s.Validate(value.Double(1.0)); len(errs) != 0 {
		t.Errorf("double rejected: %v", errs)
	}
}

func TestValidate_InvalidEnumValue(t *testing.T) {
	errs := userSchema().Validate(userValue("ann", 30, "paused"))
	if !findError(errs, "invalid enum value 'paused', expected one of: active, inactive") {
		t.Errorf("Expected enum error, got %v", errs)
	}
}

func TestValidate_FailSlowCollectsEverything(t *testing.T) {
	v := value.Object()
	v.Set("name", value.Int(1))      // wrong type
	v.Set("status", value.Enum("x")) // invalid enum, age missing

	errs := userSchema().Validate(v)
	if len(errs) < 3 {
		t.Errorf("Expected at least 3 accumulated errors, got %v", errs)
	}
}

func TestValidate_ArrayElementPaths(t *testing.T) {
	s := schema.New()
	s.SetRoot(schema.ArrayOf(schema.Integer()))

	arr := value.Array(value.Int(1), value.Str("x"), value.Int(3))
	errs := s.Validate(arr)
	if len(errs) != 1 {
		t.Fatalf("Expected 1 error, got %v", errs)
	}
	if errs[0].Path != "[1]" {
		t.Errorf("Expected path [1], got %q", errs[0].Path)
	}
}

func TestValidate_Union(t *testing.T) {
	s := schema.New()
	s.SetRoot(schema.Union(schema.Integer(), schema.String()))

	if errs := s.Validate(value.Int(1)); len(errs) != 0 {
		t.Errorf("integer should match the union: %v", errs)
	}
	if errs := s.Validate(value.Str("x")); len(errs) != 0 {
		t.Errorf("string should match the union: %v", errs)
	}

	errs := s.Validate(value.Bool(true))
	if len(errs) != 1 {
		t.Fatalf("Expected a single aggregated union error, got %v", errs)
	}
	if !strings.Contains(errs[0].Message, "does not match any type in union") {
		t.Errorf("Unexpected message: %v", errs[0].Message)
	}
}

func TestValidate_Optional(t *testing.T) {
	s := schema.New()
	s.AddObject("Cfg", map[string]*schema.Field{
		"note": schema.NewField(schema.Optional(schema.String()), true),
	})
	s.SetRoot(schema.ObjectRef("Cfg"))

	ok := value.Object()
	ok.Set("note", value.Null())
	if errs := s.Validate(ok); len(errs) != 0 {
		t.Errorf("optional should allow null: %v", errs)
	}

	bad := value.Object()
	bad.Set("note", value.Int(1))
	if errs := s.Validate(bad); len(errs) == 0 {
		t.Error("optional<string> must still reject integers")
	}
}

func TestValidate_UnknownSchemaName(t *testing.T) {
	s := schema.New()
	s.SetRoot(schema.ObjectRef("Ghost"))

	errs := s.Validate(value.Object())
	if !findError(errs, "unknown object schema 'Ghost'") {
		t.Errorf("Expected unknown-schema error, got %v", errs)
	}
}

func TestValidate_NoRootStructuralWalk(t *testing.T) {
	s := schema.New()
	v := value.Object()
	v.Set("anything", value.Array(value.Int(1), value.Null()))

	if errs := s.Validate(v); len(errs) != 0 {
		t.Errorf("Without a root type every well-formed tree passes: %v", errs)
	}
}

// ====== Constraints ======

func TestConstraints(t *testing.T) {
	pattern, err := schema.PatternString(`[a-z]+`)
	if err != nil {
		t.Fatalf("PatternString failed: %v", err)
	}

	s := schema.New()
	s.AddObject("Cfg", map[string]*schema.Field{
		"name": schema.NewField(schema.String(), true).
			WithConstraint(schema.MinLength(2)).
			WithConstraint(schema.MaxLength(5)).
			WithConstraint(pattern),
		"port": schema.NewField(schema.Integer(), true).
			WithConstraint(schema.MinValue(1)).
			WithConstraint(schema.MaxValue(65535)),
	})
	s.SetRoot(schema.ObjectRef("Cfg"))

	mk := func(name string, port int64) *value.Value {
		v := value.Object()
		v.Set("name", value.Str(name))
		v.Set("port", value.Int(port))
		return v
	}

	if errs := s.Validate(mk("abc", 80)); len(errs) != 0 {
		t.Errorf("Conforming value rejected: %v", errs)
	}
	if errs := s.Validate(mk("a", 80)); !findError(errs, "less than minimum") {
		t.Errorf("MinLength not enforced: %v", errs)
	}
	if errs := s.Validate(mk("toolong", 80)); !findError(errs, "exceeds maximum") {
		t.Errorf("MaxLength not enforced: %v", errs)
	}
	if errs := s.Validate(mk("abc", 0)); !findError(errs, "less than minimum") {
		t.Errorf("MinValue not enforced: %v", errs)
	}
	if errs := s.Validate(mk("abc", 70000)); !findError(errs, "exceeds maximum") {
		t.Errorf("MaxValue not enforced: %v", errs)
	}
	if errs := s.Validate(mk("ABC", 80)); !findError(errs, "does not match pattern") {
		t.Errorf("Pattern not enforced: %v", errs)
	}
}

func TestConstraint_PatternIsFullMatch(t *testing.T) {
	pattern, _ := schema.PatternString(`\d+`)

	s := schema.New()
	s.AddObject("Cfg", map[string]*schema.Field{
		"id": schema.NewField(schema.String(), true).WithConstraint(pattern),
	})
	s.SetRoot(schema.ObjectRef("Cfg"))

	v := value.Object()
	v.Set("id", value.Str("abc123def"))
	if errs := s.Validate(v); len(errs) == 0 {
		t.Error("A partial match must not satisfy the pattern")
	}

	v.Set("id", value.Str("123"))
	if errs := s.Validate(v); len(errs) != 0 {
		t.Errorf("Full match rejected: %v", errs)
	}
}

func TestConstraint_PatternAlternation(t *testing.T) {
	// Leftmost-first matching finds the shorter branch first; the whole
	// string must still be accepted when a longer branch covers it.
	pattern, _ := schema.PatternString(`a|ab`)

	s := schema.New()
	s.AddObject("Cfg", map[string]*schema.Field{
		"id": schema.NewField(schema.String(), true).WithConstraint(pattern),
	})
	s.SetRoot(schema.ObjectRef("Cfg"))

	for _, id := range []string{"a", "ab"} {
		v := value.Object()
		v.Set("id", value.Str(id))
		if errs := s.Validate(v); len(errs) != 0 {
			t.Errorf("%q rejected by a|ab: %v", id, errs)
		}
	}

	v := value.Object()
	v.Set("id", value.Str("abc"))
	if errs := s.Validate(v); !findError(errs, "does not match pattern a|ab") {
		t.Errorf("Expected a pattern error naming the original expression: %v", errs)
	}
}

// ====== Text form ======

func TestParse_TextForm(t *testing.T) {
	s, err := schema.Parse(`
		// statuses
		enum Status {
			active, inactive,
			pending
		}

		User {
			name: string;
			age: integer;
			status: Status;
			tags: array<string>;
			bio: optional<string>;
		}
	`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	values, ok := s.Enum("Status")
	if !ok {
		t.Fatal("Status enum not registered")
	}
	if len(values) != 3 {
		t.Errorf("Expected 3 enum values, got %v", values)
	}

	fields, ok := s.Object("User")
	if !ok {
		t.Fatal("User object not registered")
	}
	if len(fields) != 5 {
		t.Errorf("Expected 5 fields, got %d", len(fields))
	}
}

func TestParse_SingleLineEnum(t *testing.T) {
	s, err := schema.Parse(`enum Level { low, high }`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	values, ok := s.Enum("Level")
	if !ok || len(values) != 2 {
		t.Errorf("Expected 2 values, got %v", values)
	}
}

func TestParse_TextFormValidatesValues(t *testing.T) {
	s, err := schema.Parse(`
		enum Mode { fast, safe }

		Job {
			name: string;
			mode: Mode;
		}
	`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	s.SetRoot(schema.Ref("Job"))

	ok := value.Object()
	ok.Set("name", value.Str("backup"))
	ok.Set("mode", value.Enum("safe"))
	if errs := s.Validate(ok); len(errs) != 0 {
		t.Errorf("Conforming value rejected: %v", errs)
	}

	bad := value.Object()
	bad.Set("name", value.Str("backup"))
	bad.Set("mode", value.Enum("reckless"))
	if errs := s.Validate(bad); !findError(errs, "invalid enum value") {
		t.Errorf("Named enum reference not resolved: %v", errs)
	}
}

func TestTypeStrings(t *testing.T) {
	tests := []struct {
		t    *schema.Type
		want string
	}{
		{schema.String(), "string"},
		{schema.ArrayOf(schema.Integer()), "array<integer>"},
		{schema.Optional(schema.Boolean()), "optional<boolean>"},
		{schema.Union(schema.Null(), schema.Double()), "union(null | double)"},
		{schema.ObjectRef("User"), "object(User)"},
		{schema.EnumRef("Status"), "enum(Status)"},
	}
	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}
