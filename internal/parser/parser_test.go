package parser_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cfgpp/internal/cfgerr"
	"cfgpp/internal/parser"
	"cfgpp/internal/value"
)

// parseString parses input with deterministic options and no real
// environment access.
func parseString(t *testing.T, input string) *value.Value {
	t.Helper()
	p := parser.New(testOptions(nil))
	v, err := p.ParseString(input)
	if err != nil {
		t.Fatalf("ParseString(%q) failed: %v", input, err)
	}
	return v
}

func testOptions(env map[string]string) parser.Options {
	opts := parser.DefaultOptions()
	opts.Lookup = func(name string) (string, bool) {
		val, ok := env[name]
		return val, ok
	}
	return opts
}

func expectParseError(t *testing.T, input, wantSubstr string) {
	t.Helper()
	p := parser.New(testOptions(nil))
	_, err := p.ParseString(input)
	if err == nil {
		t.Fatalf("ParseString(%q) succeeded, expected error containing %q", input, wantSubstr)
	}
	if !strings.Contains(err.Error(), wantSubstr) {
		t.Errorf("Error %q does not contain %q", err.Error(), wantSubstr)
	}
}

// ====== Top-level forms ======

func TestParse_NamedSection(t *testing.T) {
	v := parseString(t, `
		database {
			host = "localhost";
			port = 5432;
			ssl = true;
		}
	`)

	if !v.IsObject() {
		t.Fatalf("Expected object root, got %s", v.Type())
	}
	// The section name becomes a top-level key.
	host, ok := v.GetPath("database.host")
	if !ok {
		t.Fatal("database.host not found")
	}
	if s, _ := host.AsString(); s != "localhost" {
		t.Errorf("Expected localhost, got %q", s)
	}
	if port, _ := v.GetPath("database.port"); port != nil {
		if i, _ := port.AsInt(); i != 5432 {
			t.Errorf("Expected 5432, got %d", i)
		}
	}
	if ssl, ok := v.GetPath("database.ssl"); !ok {
		t.Error("database.ssl not found")
	} else if b, _ := ssl.AsBool(); !b {
		t.Error("Expected ssl = true")
	}
}

func TestParse_TopLevelAssignments(t *testing.T) {
	v := parseString(t, `
		name = "app";
		workers = 4;
	`)

	if name, _ := v.GetPath("name"); name == nil {
		t.Fatal("name not found")
	} else if s, _ := name.AsString(); s != "app" {
		t.Errorf("Expected app, got %q", s)
	}
	if workers, _ := v.GetPath("workers"); workers == nil {
		t.Fatal("workers not found")
	} else if i, _ := workers.AsInt(); i != 4 {
		t.Errorf("Expected 4, got %d", i)
	}
}

func TestParse_MixedSectionsAndAssignments(t *testing.T) {
	v := parseString(t, `
		version = 2;
		server {
			port = 8080;
		}
	`)
	if _, ok := v.GetPath("version"); !ok {
		t.Error("version not found")
	}
	if _, ok := v.GetPath("server.port"); !ok {
		t.Error("server.port not found")
	}
}

func TestParse_EmptyInput(t *testing.T) {
	v := parseString(t, "")
	if !v.IsObject() || !v.IsEmpty() {
		t.Errorf("Empty input should parse to an empty object, got %s", v.String())
	}
}

func TestParse_BareValue(t *testing.T) {
	v := parseString(t, `[1, 2, 3]`)
	if !v.IsArray() || v.Len() != 3 {
		t.Errorf("Expected 3-element array, got %s", v.String())
	}
}

// ====== Values ======

func TestParse_ScalarKinds(t *testing.T) {
	v := parseString(t, `
		a = 1;
		b = 2.5;
		c = "text";
		d = true;
		e = null;
		f = active;
	`)

	checks := []struct {
		path string
		kind value.Kind
	}{
		{"a", value.KindInteger},
		{"b", value.KindDouble},
		{"c", value.KindString},
		{"d", value.KindBoolean},
		{"e", value.KindNull},
		{"f", value.KindEnum},
	}
	for _, c := range checks {
		got, ok := v.GetPath(c.path)
		if !ok {
			t.Errorf("%s not found", c.path)
			continue
		}
		if got.Kind() != c.kind {
			t.Errorf("%s: expected %v, got %v", c.path, c.kind, got.Kind())
		}
	}
}

func TestParse_NestedObjectSugar(t *testing.T) {
	// Inside an object a field may be written 'name { ... }' without '='.
	v := parseString(t, `
		app {
			limits {
				max = 10;
			}
			log = { level = "debug"; };
		}
	`)
	if _, ok := v.GetPath("app.limits.max"); !ok {
		t.Error("app.limits.max not found")
	}
	if _, ok := v.GetPath("app.log.level"); !ok {
		t.Error("app.log.level not found")
	}
}

func TestParse_NamedValueObject(t *testing.T) {
	// A named object in value position yields the inner object; the name
	// is decorative.
	v := parseString(t, `connection = pool { size = 5; };`)
	size, ok := v.GetPath("connection.size")
	if !ok {
		t.Fatal("connection.size not found")
	}
	if i, _ := size.AsInt(); i != 5 {
		t.Errorf("Expected 5, got %d", i)
	}
}

func TestParse_Arrays(t *testing.T) {
	v := parseString(t, `
		plain = [1, 2, 3];
		noCommas = ["a" "b"];
		trailing = [1, 2,];
		nested = [[1], [2, 3]];
		mixed = [1, "two", true, null, active];
	`)

	if arr, _ := v.GetPath("plain"); arr == nil || arr.Len() != 3 {
		t.Error("plain should have 3 elements")
	}
	if arr, _ := v.GetPath("noCommas"); arr == nil || arr.Len() != 2 {
		t.Error("commas between elements are optional")
	}
	if arr, _ := v.GetPath("trailing"); arr == nil || arr.Len() != 2 {
		t.Error("trailing comma should be tolerated")
	}
	if inner, ok := v.GetPath("nested[1]"); !ok || inner.Len() != 2 {
		t.Error("nested[1] should have 2 elements")
	}
	if e, ok := v.GetPath("mixed[4]"); !ok {
		t.Error("mixed[4] not found")
	} else if e.Kind() != value.KindEnum {
		t.Errorf("mixed[4]: expected enum, got %v", e.Kind())
	}
}

func TestParse_LastWriteWins(t *testing.T) {
	v := parseString(t, `
		a = 1;
		a = 2;
	`)
	got, _ := v.GetPath("a")
	if i, _ := got.AsInt(); i != 2 {
		t.Errorf("Expected 2, got %d", i)
	}
}

func TestParse_Comments(t *testing.T) {
	v := parseString(t, `
		// leading comment
		a = 1; // trailing comment
		// b = 2;
	`)
	if _, ok := v.GetPath("a"); !ok {
		t.Error("a not found")
	}
	if _, ok := v.GetPath("b"); ok {
		t.Error("commented-out b should not parse")
	}
}

// ====== Errors ======

func TestParse_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"missing_value", `a = ;`, "unexpected token"},
		{"unclosed_object", `a { b = 1;`, "unclosed object"},
		{"unclosed_array", `a = [1, 2`, "unclosed array"},
		{"stray_punct", `a = 1; }`, "unexpected token"},
		{"trailing_after_value", `a 1;`, "unexpected input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectParseError(t, tt.input, tt.want)
		})
	}
}

func TestParse_ErrorsArePositioned(t *testing.T) {
	p := parser.New(testOptions(nil))
	_, err := p.ParseString("a = 1;\nb = ;")
	if err == nil {
		t.Fatal("Expected a syntax error")
	}

	var synErr *cfgerr.SyntaxError
	if !errors.As(err, &synErr) {
		t.Fatalf("Expected *cfgerr.SyntaxError, got %T", err)
	}
	if synErr.Line != 2 {
		t.Errorf("Expected line 2, got %d", synErr.Line)
	}
}

func TestParse_FailFastNoPartialTree(t *testing.T) {
	p := parser.New(testOptions(nil))
	v, err := p.ParseString(`a = 1; b = ;`)
	if err == nil {
		t.Fatal("Expected a syntax error")
	}
	if v != nil {
		t.Errorf("Expected nil tree on error, got %s", v.String())
	}
}

// ====== Environment variables ======

func TestEnvVar_Expansion(t *testing.T) {
	opts := testOptions(map[string]string{"HOST": "db.internal"})
	p := parser.New(opts)

	v, err := p.ParseString(`host = ${HOST};`)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	host, _ := v.GetPath("host")
	if s, _ := host.AsString(); s != "db.internal" {
		t.Errorf("Expected db.internal, got %q", s)
	}
}

func TestEnvVar_DefaultUsed(t *testing.T) {
	p := parser.New(testOptions(nil))
	v, err := p.ParseString(`port = ${PORT:-8080};`)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	port, _ := v.GetPath("port")
	// Expanded values are always strings, defaults included.
	if s, _ := port.AsString(); s != "8080" {
		t.Errorf("Expected \"8080\", got %q", s)
	}
}

func TestEnvVar_SetBeatsDefault(t *testing.T) {
	p := parser.New(testOptions(map[string]string{"PORT": "9000"}))
	v, err := p.ParseString(`port = ${PORT:-8080};`)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	port, _ := v.GetPath("port")
	if s, _ := port.AsString(); s != "9000" {
		t.Errorf("Expected \"9000\", got %q", s)
	}
}

func TestEnvVar_MissingWithoutDefault(t *testing.T) {
	p := parser.New(testOptions(nil))
	_, err := p.ParseString(`host = ${NOPE};`)
	if err == nil {
		t.Fatal("Expected an error for unset variable without default")
	}
	var envErr *cfgerr.EnvVarError
	if !errors.As(err, &envErr) {
		t.Fatalf("Expected *cfgerr.EnvVarError, got %T: %v", err, err)
	}
	if envErr.Var != "NOPE" {
		t.Errorf("Expected variable NOPE, got %q", envErr.Var)
	}
}

func TestEnvVar_ExpansionDisabled(t *testing.T) {
	opts := testOptions(map[string]string{"HOST": "db.internal"})
	opts.ExpandEnvVars = false
	p := parser.New(opts)

	v, err := p.ParseString(`host = ${HOST};`)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	host, _ := v.GetPath("host")
	if s, _ := host.AsString(); s != "${HOST}" {
		t.Errorf("Expected raw text, got %q", s)
	}
}

// ====== Includes ======

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestInclude_MergesKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "common.cfgpp", `
		logging {
			level = "info";
		}
	`)
	main := writeFile(t, dir, "main.cfgpp", `
		@include "common.cfgpp"
		app {
			name = "svc";
		}
	`)

	opts := testOptions(nil)
	opts.IncludePaths = []string{dir}
	p := parser.New(opts)

	v, err := p.ParseFile(main)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if _, ok := v.GetPath("logging.level"); !ok {
		t.Error("included logging.level not found")
	}
	if _, ok := v.GetPath("app.name"); !ok {
		t.Error("app.name not found")
	}
}

func TestInclude_ValuePosition(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ports.cfgpp", `[80, 443]`)
	main := writeFile(t, dir, "main.cfgpp", `ports = @import "ports.cfgpp";`)

	opts := testOptions(nil)
	opts.IncludePaths = []string{dir}
	p := parser.New(opts)

	v, err := p.ParseFile(main)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if arr, ok := v.GetPath("ports"); !ok || arr.Len() != 2 {
		t.Errorf("Expected 2 ports, got %v", arr)
	}
}

func TestInclude_SearchPathOrder(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeFile(t, first, "x.cfgpp", `v = 1;`)
	writeFile(t, second, "x.cfgpp", `v = 2;`)
	main := writeFile(t, second, "main.cfgpp", `@include "x.cfgpp"`)

	opts := testOptions(nil)
	opts.IncludePaths = []string{first, second}
	p := parser.New(opts)

	v, err := p.ParseFile(main)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	got, _ := v.GetPath("v")
	if i, _ := got.AsInt(); i != 1 {
		t.Errorf("First matching search root should win, got %d", i)
	}
}

func TestInclude_FileNotFound(t *testing.T) {
	opts := testOptions(nil)
	opts.IncludePaths = []string{t.TempDir()}
	p := parser.New(opts)

	_, err := p.ParseString(`@include "missing.cfgpp"`)
	var incErr *cfgerr.IncludeError
	if !errors.As(err, &incErr) {
		t.Fatalf("Expected *cfgerr.IncludeError, got %T: %v", err, err)
	}
}

func TestInclude_DepthWithinLimit(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "c2.cfgpp", `deep = true;`)
	writeFile(t, dir, "c1.cfgpp", `@include "c2.cfgpp"`)
	main := writeFile(t, dir, "main.cfgpp", `@include "c1.cfgpp"`)

	opts := testOptions(nil)
	opts.IncludePaths = []string{dir}
	opts.MaxIncludeDepth = 3
	p := parser.New(opts)

	v, err := p.ParseFile(main)
	if err != nil {
		t.Fatalf("Nested includes within the limit should parse: %v", err)
	}
	if _, ok := v.GetPath("deep"); !ok {
		t.Error("deep not found through nested includes")
	}
}

func TestInclude_CycleStoppedByDepth(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.cfgpp", `@include "b.cfgpp"`)
	writeFile(t, dir, "b.cfgpp", `@include "a.cfgpp"`)

	opts := testOptions(nil)
	opts.IncludePaths = []string{dir}
	opts.MaxIncludeDepth = 5
	p := parser.New(opts)

	_, err := p.ParseFile(filepath.Join(dir, "a.cfgpp"))
	var incErr *cfgerr.IncludeError
	if !errors.As(err, &incErr) {
		t.Fatalf("Expected depth error on include cycle, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "maximum include depth") {
		t.Errorf("Unexpected message: %v", err)
	}
}

func TestInclude_Disabled(t *testing.T) {
	opts := testOptions(nil)
	opts.ProcessIncludes = false
	p := parser.New(opts)

	_, err := p.ParseString(`@include "x.cfgpp"`)
	if err == nil || !strings.Contains(err.Error(), "include directives are disabled") {
		t.Errorf("Expected disabled-include error, got %v", err)
	}
}

// ====== Multi-file and syntax-only ======

func TestParseFiles_LaterWins(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, "base.cfgpp", `
		server { port = 80; }
		name = "base";
	`)
	override := writeFile(t, dir, "override.cfgpp", `
		server { port = 8080; }
	`)

	p := parser.New(testOptions(nil))
	v, err := p.ParseFiles(base, override)
	if err != nil {
		t.Fatalf("ParseFiles failed: %v", err)
	}

	port, _ := v.GetPath("server.port")
	if i, _ := port.AsInt(); i != 8080 {
		t.Errorf("Later file should win, got %d", i)
	}
	if _, ok := v.GetPath("name"); !ok {
		t.Error("Keys unique to the earlier file should survive")
	}
}

func TestValidateSyntax(t *testing.T) {
	p := parser.New(testOptions(nil))

	if err := p.ValidateSyntax(`a = 1; b { c = [1, 2]; }`); err != nil {
		t.Errorf("Valid input rejected: %v", err)
	}
	if err := p.ValidateSyntax(`a = ;`); err == nil {
		t.Error("Invalid input accepted")
	}
}

func TestParseFile_Missing(t *testing.T) {
	p := parser.New(testOptions(nil))
	_, err := p.ParseFile(filepath.Join(t.TempDir(), "absent.cfgpp"))
	var ioErr *cfgerr.IoError
	if !errors.As(err, &ioErr) {
		t.Fatalf("Expected *cfgerr.IoError, got %T: %v", err, err)
	}
}

// ====== End to end ======

func TestParse_FullExample(t *testing.T) {
	v := parseString(t, `
		// service configuration
		database {
			host = "localhost";
			port = 5432;
			timeout = 2.5;
			mode = primary;
			replicas = ["r1", "r2"];
			tls {
				enabled = true;
				cert = null;
			}
		}
	`)

	if mode, ok := v.GetPath("database.mode"); !ok {
		t.Error("database.mode not found")
	} else if e, _ := mode.AsEnum(); e != "primary" {
		t.Errorf("Expected enum primary, got %q", e)
	}
	if r, ok := v.GetPath("database.replicas[0]"); !ok {
		t.Error("database.replicas[0] not found")
	} else if s, _ := r.AsString(); s != "r1" {
		t.Errorf("Expected r1, got %q", s)
	}
	if cert, ok := v.GetPath("database.tls.cert"); !ok || !cert.IsNull() {
		t.Error("database.tls.cert should be null")
	}
}
