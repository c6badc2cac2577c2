package parser

import (
	"os"

	"cfgpp/internal/diag"
	"cfgpp/internal/trace"
)

// LookupEnv is the environment capability injected into the parser.
// Tests substitute deterministic fixtures; production code uses os.LookupEnv.
type LookupEnv func(name string) (string, bool)

// Options configures a Parser.
type Options struct {
	// ExpandEnvVars enables ${VAR} expansion. When disabled, env-var tokens
	// parse to their raw text as string values.
	ExpandEnvVars bool
	// ProcessIncludes enables @include/@import directives.
	ProcessIncludes bool
	// MaxIncludeDepth bounds include recursion. The depth counter is the
	// sole defense against include cycles.
	MaxIncludeDepth int
	// IncludePaths is the ordered list of roots searched for include targets.
	IncludePaths []string
	// SyntaxOnly runs every production without building containers and
	// returns a null placeholder on success.
	SyntaxOnly bool
	// Lookup resolves environment variables; nil means os.LookupEnv.
	Lookup LookupEnv
	// Reporter receives diagnostics in addition to the returned error.
	Reporter diag.Reporter
	// Tracer receives phase events; nil disables tracing.
	Tracer trace.Tracer
}

// DefaultOptions returns the standard configuration: expansion and
// includes on, depth ceiling 10, current directory as the only search root.
func DefaultOptions() Options {
	return Options{
		ExpandEnvVars:   true,
		ProcessIncludes: true,
		MaxIncludeDepth: 10,
		IncludePaths:    []string{"."},
	}
}

func (o *Options) lookup(name string) (string, bool) {
	if o.Lookup != nil {
		return o.Lookup(name)
	}
	return os.LookupEnv(name)
}
