package token

import (
	"cfgpp/internal/source"
)

// Token represents a single source token with its location.
// Comment and whitespace runs are consumed by the lexer and never surface
// as tokens; the stream the parser sees is significant tokens plus EOF.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a scalar literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case String, Integer, Double, Boolean, Null:
		return true
	default:
		return false
	}
}

// IsDirective reports whether the token is an include or import directive.
func (t Token) IsDirective() bool {
	return t.Kind == KwInclude || t.Kind == KwImport
}

// IsPunct reports whether the token is punctuation or an operator.
func (t Token) IsPunct() bool {
	switch t.Kind {
	case LBrace, RBrace, LBracket, RBracket, LParen, RParen,
		Equals, Semicolon, Comma, Dot, Colon, ColonColon,
		Plus, Minus, Star, Slash:
		return true
	default:
		return false
	}
}
