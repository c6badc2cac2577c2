package parser

import (
	"fmt"
	"os"
	"path/filepath"

	"cfgpp/internal/cfgerr"
	"cfgpp/internal/diag"
	"cfgpp/internal/token"
	"cfgpp/internal/value"
)

// parseInclude handles '@include "path"' and '@import "path"'. The path is
// resolved against the ordered include roots; the first existing file wins.
// The found file is parsed recursively and its value spliced in place.
func (p *Parser) parseInclude() (*value.Value, error) {
	dirTok := p.advance()

	if !p.opts.ProcessIncludes {
		return nil, p.syntaxError(diag.SynDisabledInclude, dirTok, "include directives are disabled")
	}

	pathTok, err := p.expect(token.String, diag.SynUnexpectedToken)
	if err != nil {
		return nil, err
	}
	includePath := pathTok.Text

	if p.depth >= p.opts.MaxIncludeDepth {
		p.reportInclude(diag.IncDepthExceeded, pathTok)
		return nil, &cfgerr.IncludeError{
			Path: includePath,
			Msg:  fmt.Sprintf("maximum include depth (%d) exceeded", p.opts.MaxIncludeDepth),
		}
	}

	found := ""
	for _, root := range p.opts.IncludePaths {
		candidate := filepath.Join(root, includePath)
		if _, err := os.Stat(candidate); err == nil {
			found = candidate
			break
		}
	}
	if found == "" {
		p.reportInclude(diag.IncFileNotFound, pathTok)
		return nil, &cfgerr.IncludeError{Path: includePath, Msg: "file not found in include paths"}
	}

	id, err := p.fs.Load(found)
	if err != nil {
		p.reportInclude(diag.IncReadFailed, pathTok)
		return nil, &cfgerr.IncludeError{Path: includePath, Msg: "failed to read file: " + err.Error()}
	}

	p.depth++
	v, err := p.parseSource(id)
	p.depth--
	return v, err
}

func (p *Parser) reportInclude(code diag.Code, pathTok token.Token) {
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevError, pathTok.Span,
			fmt.Sprintf("include of %q failed", pathTok.Text), nil)
	}
}
