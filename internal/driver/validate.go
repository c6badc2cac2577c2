package driver

import (
	"cfgpp/internal/parser"
	"cfgpp/internal/schema"
	"cfgpp/internal/trace"
)

type ValidateResult struct {
	Parse  *ParseResult
	Schema *schema.Schema
	Errors []schema.ValidationError
}

// Validate parses a configuration file and checks it against a schema file.
// A non-empty Errors slice is not an error return; the config was readable,
// it just does not conform.
func Validate(configPath, schemaPath string, opts parser.Options, maxDiagnostics int) (*ValidateResult, error) {
	res, err := Parse(configPath, opts, maxDiagnostics)
	if err != nil {
		return nil, err
	}

	s, err := schema.ParseFile(schemaPath)
	if err != nil {
		return nil, err
	}

	sp := trace.Begin(opts.Tracer, trace.ScopePhase, "validate", 0).WithExtra("schema", schemaPath)
	errs := s.Validate(res.Value)
	sp.End("")

	return &ValidateResult{
		Parse:  res,
		Schema: s,
		Errors: errs,
	}, nil
}
