package lexer

import (
	"cfgpp/internal/diag"
	"cfgpp/internal/source"
)

// Options configures a Lexer. A nil Reporter drops diagnostics; the token
// stream still carries Invalid tokens so callers can fail fast.
type Options struct {
	Reporter diag.Reporter
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	lx.errCode = code
	lx.errMsg = msg
	lx.errSpan = sp
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
