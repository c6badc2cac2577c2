package parser

import (
	"cfgpp/internal/cfgerr"
	"cfgpp/internal/diag"
	"cfgpp/internal/lexer"
	"cfgpp/internal/source"
	"cfgpp/internal/token"
	"cfgpp/internal/trace"
	"cfgpp/internal/value"
)

// Parser turns CFG++ text into a value tree with a single forward cursor
// over the token stream. It holds private mutable state (token buffer,
// cursor, include depth) and must not be shared across concurrent parses;
// distinct instances are fully independent.
type Parser struct {
	fs    *source.FileSet
	opts  Options
	toks  []token.Token
	cur   int
	depth int
}

// New creates a parser with the given options.
func New(opts Options) *Parser {
	if opts.MaxIncludeDepth <= 0 {
		opts.MaxIncludeDepth = DefaultOptions().MaxIncludeDepth
	}
	if opts.IncludePaths == nil {
		opts.IncludePaths = DefaultOptions().IncludePaths
	}
	return &Parser{
		fs:   source.NewFileSet(),
		opts: opts,
	}
}

// FileSet exposes the files loaded during parsing, for diagnostics rendering.
func (p *Parser) FileSet() *source.FileSet {
	return p.fs
}

// ParseString parses one CFG++ document from memory.
func (p *Parser) ParseString(input string) (*value.Value, error) {
	id := p.fs.AddVirtual("<input>", []byte(input))
	p.depth = 0
	return p.parseSource(id)
}

// ParseFile parses one CFG++ document from disk.
func (p *Parser) ParseFile(path string) (*value.Value, error) {
	id, err := p.fs.Load(path)
	if err != nil {
		return nil, &cfgerr.IoError{Msg: "failed to read file: " + err.Error(), Err: err}
	}
	p.depth = 0
	return p.parseSource(id)
}

// ParseFiles parses every file and unions their top-level objects into one
// result. Later files' keys override earlier ones on conflict; files whose
// top-level value is not an object contribute nothing.
func (p *Parser) ParseFiles(paths ...string) (*value.Value, error) {
	result := value.Object()
	for _, path := range paths {
		v, err := p.ParseFile(path)
		if err != nil {
			return nil, err
		}
		if !v.IsObject() {
			continue
		}
		for _, key := range v.Keys() {
			child, _ := v.Get(key)
			if err := result.Set(key, child); err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}

// ValidateSyntax checks grammar conformance without building a value tree.
func (p *Parser) ValidateSyntax(input string) error {
	saved := p.opts.SyntaxOnly
	p.opts.SyntaxOnly = true
	_, err := p.ParseString(input)
	p.opts.SyntaxOnly = saved
	return err
}

// parseSource lexes one file and parses its top level. The token buffer and
// cursor are saved around the call so include expansion can recurse.
func (p *Parser) parseSource(id source.FileID) (*value.Value, error) {
	file := p.fs.Get(id)
	sp := trace.Begin(p.opts.Tracer, trace.ScopeFile, "parse", 0).WithExtra("file", file.Path)
	defer sp.End("")

	toks, err := lexer.Scan(file, lexer.Options{Reporter: p.opts.Reporter})
	if err != nil {
		return nil, err
	}

	savedToks, savedCur := p.toks, p.cur
	p.toks, p.cur = toks, 0
	defer func() {
		p.toks, p.cur = savedToks, savedCur
	}()

	v, err := p.parseTopLevel()
	if err != nil {
		return nil, err
	}
	if !p.at(token.EOF) {
		return nil, p.syntaxError(diag.SynTrailingInput, p.peek(), "unexpected input after top-level value")
	}
	return v, nil
}

// Cursor helpers.

func (p *Parser) peek() token.Token {
	return p.toks[p.cur]
}

func (p *Parser) at(k token.Kind) bool {
	return p.toks[p.cur].Kind == k
}

func (p *Parser) advance() token.Token {
	tok := p.toks[p.cur]
	if tok.Kind != token.EOF {
		p.cur++
	}
	return tok
}

// eat consumes the next token when it matches k.
func (p *Parser) eat(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expect(k token.Kind, code diag.Code) (token.Token, error) {
	if p.at(k) {
		return p.advance(), nil
	}
	tok := p.peek()
	return token.Token{}, p.syntaxError(code, tok,
		"expected "+k.String()+", found "+tok.Kind.String())
}

// syntaxError reports to the configured Reporter and builds the typed error
// with 1-based line/column and the 0-based byte offset of the token.
func (p *Parser) syntaxError(code diag.Code, tok token.Token, msg string) error {
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevError, tok.Span, msg, nil)
	}
	file := p.fs.Get(tok.Span.File)
	pos := file.Pos(tok.Span.Start)
	return &cfgerr.SyntaxError{
		Msg:    msg,
		File:   file.Path,
		Line:   pos.Line,
		Col:    pos.Col,
		Offset: tok.Span.Start,
	}
}
