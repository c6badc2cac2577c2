package schema

import (
	"regexp"

	"cfgpp/internal/value"
)

// ConstraintKind identifies a field constraint.
type ConstraintKind uint8

const (
	// ConstraintMinLength bounds string length from below.
	ConstraintMinLength ConstraintKind = iota
	// ConstraintMaxLength bounds string length from above.
	ConstraintMaxLength
	// ConstraintMinValue bounds a numeric value from below.
	ConstraintMinValue
	// ConstraintMaxValue bounds a numeric value from above.
	ConstraintMaxValue
	// ConstraintPattern requires a full regex match of string content.
	ConstraintPattern
	// ConstraintCustom is a named hook with no built-in behavior.
	ConstraintCustom
)

// Constraint restricts an already type-matched value. Constraints that do
// not apply to the value's kind are skipped silently.
type Constraint struct {
	kind ConstraintKind
	n    int
	f    float64
	re   *regexp.Regexp
	expr string
	name string
}

// MinLength requires string length >= n.
func MinLength(n int) Constraint { return Constraint{kind: ConstraintMinLength, n: n} }

// MaxLength requires string length <= n.
func MaxLength(n int) Constraint { return Constraint{kind: ConstraintMaxLength, n: n} }

// MinValue requires a numeric value >= f. Integers are coerced to float64
// for the comparison.
func MinValue(f float64) Constraint { return Constraint{kind: ConstraintMinValue, f: f} }

// MaxValue requires a numeric value <= f.
func MaxValue(f float64) Constraint { return Constraint{kind: ConstraintMaxValue, f: f} }

// Pattern requires the whole string to match re. The expression is
// recompiled with \A and \z anchors; checking the span of the leftmost
// match instead would reject strings where a shorter alternative wins.
func Pattern(re *regexp.Regexp) Constraint {
	expr := re.String()
	return Constraint{kind: ConstraintPattern, re: anchored(expr), expr: expr}
}

// PatternString compiles expr and returns a full-match pattern constraint.
func PatternString(expr string) (Constraint, error) {
	if _, err := regexp.Compile(expr); err != nil {
		return Constraint{}, err
	}
	return Constraint{kind: ConstraintPattern, re: anchored(expr), expr: expr}, nil
}

// anchored wraps a known-valid expression so it must cover the whole input.
func anchored(expr string) *regexp.Regexp {
	return regexp.MustCompile(`\A(?:` + expr + `)\z`)
}

// Custom names a host-side validation hook. It always passes here.
func Custom(name string) Constraint { return Constraint{kind: ConstraintCustom, name: name} }

// Field describes one declared object field.
type Field struct {
	Type        *Type
	Required    bool
	Default     *value.Value
	Constraints []Constraint
}

// NewField creates a field definition without constraints or default.
func NewField(t *Type, required bool) *Field {
	return &Field{Type: t, Required: required}
}

// WithConstraint appends a constraint and returns the field for chaining.
func (f *Field) WithConstraint(c Constraint) *Field {
	f.Constraints = append(f.Constraints, c)
	return f
}

// WithDefault sets the field's default value and returns the field.
func (f *Field) WithDefault(v *value.Value) *Field {
	f.Default = v
	return f
}
