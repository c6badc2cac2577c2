package lexer

import (
	"cfgpp/internal/cfgerr"
	"cfgpp/internal/diag"
	"cfgpp/internal/source"
	"cfgpp/internal/token"
)

// Lexer produces the CFG++ token stream for a single file. Whitespace and
// line comments are consumed between tokens and never surface.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1-element lookahead buffer

	errCode diag.Code
	errMsg  string
	errSpan source.Span
}

// New creates a lexer over the given file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token. After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStart(ch):
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '"':
		return lx.scanString()
	case ch == '$':
		return lx.scanEnvVar()
	case ch == '@':
		return lx.scanDirective()
	default:
		return lx.scanPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Err returns the first lexical error encountered, or nil.
func (lx *Lexer) Err() error {
	if lx.errMsg == "" {
		return nil
	}
	pos := lx.file.Pos(lx.errSpan.Start)
	return &cfgerr.SyntaxError{
		Msg:    lx.errMsg,
		File:   lx.file.Path,
		Line:   pos.Line,
		Col:    pos.Col,
		Offset: lx.errSpan.Start,
	}
}

// Scan collects the complete token stream ending in EOF, or returns the
// first lexical error.
func Scan(file *source.File, opts Options) ([]token.Token, error) {
	lx := New(file, opts)
	var tokens []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.Invalid {
			return nil, lx.Err()
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}

// skipTrivia consumes whitespace and line comments before the next token.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		if isWhitespace(ch) {
			lx.cursor.Bump()
			continue
		}
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '/' && b1 == '/' {
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			continue
		}
		return
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
