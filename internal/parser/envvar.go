package parser

import (
	"strings"

	"cfgpp/internal/cfgerr"
	"cfgpp/internal/diag"
	"cfgpp/internal/token"
	"cfgpp/internal/value"
)

// expandEnvVar resolves a ${NAME} or ${NAME:-default} token. With expansion
// disabled the raw token text is returned unmodified as a string value.
func (p *Parser) expandEnvVar(tok token.Token) (*value.Value, error) {
	raw := tok.Text
	if !p.opts.ExpandEnvVars {
		return value.Str(raw), nil
	}

	content := raw[2 : len(raw)-1] // strip '${' and '}'
	name := content
	def := ""
	hasDefault := false
	if i := strings.Index(content, ":-"); i >= 0 {
		name = content[:i]
		def = content[i+2:]
		hasDefault = true
	}

	if val, ok := p.opts.lookup(name); ok {
		return value.Str(val), nil
	}
	if hasDefault {
		return value.Str(def), nil
	}

	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(diag.EnvVarNotFound, diag.SevError, tok.Span,
			"environment variable '"+name+"' not found", nil)
	}
	return nil, &cfgerr.EnvVarError{Var: name, Msg: "environment variable not found"}
}
