package lexer

import (
	"fmt"

	"cfgpp/internal/diag"
	"cfgpp/internal/token"
)

// scanPunct reads single-character punctuation and the '::' namespace token.
// The '//' comment form never reaches here; skipTrivia consumes it.
func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Bump()

	var kind token.Kind
	switch b {
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '=':
		kind = token.Equals
	case ';':
		kind = token.Semicolon
	case ',':
		kind = token.Comma
	case '.':
		kind = token.Dot
	case ':':
		if lx.cursor.Eat(':') {
			kind = token.ColonColon
		} else {
			kind = token.Colon
		}
	case '+':
		kind = token.Plus
	case '-':
		kind = token.Minus
	case '*':
		kind = token.Star
	case '/':
		kind = token.Slash
	default:
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.LexUnknownChar, sp, fmt.Sprintf("unexpected character %q", rune(b)))
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(b)}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// scanEnvVar reads ${...}, counting nested braces. The token text keeps the
// delimiters; the parser splits name and default.
func (lx *Lexer) scanEnvVar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '$'
	if !lx.cursor.Eat('{') {
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.LexUnknownChar, sp, "unexpected character '$'")
		return token.Token{Kind: token.Invalid, Span: sp, Text: "$"}
	}

	depth := 1
	for !lx.cursor.EOF() {
		switch lx.cursor.Bump() {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				sp := lx.cursor.SpanFrom(start)
				return token.Token{Kind: token.EnvVar, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
			}
		}
	}

	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexUnterminatedEnvVar, sp, "unterminated environment variable")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// scanDirective reads '@' plus a word; only @include and @import exist.
func (lx *Lexer) scanDirective() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '@'
	for !lx.cursor.EOF() && isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	switch text {
	case "@include":
		return token.Token{Kind: token.KwInclude, Span: sp, Text: text}
	case "@import":
		return token.Token{Kind: token.KwImport, Span: sp, Text: text}
	}
	lx.report(diag.LexUnknownDirective, sp, fmt.Sprintf("unknown directive '%s'", text))
	return token.Token{Kind: token.Invalid, Span: sp, Text: text}
}
