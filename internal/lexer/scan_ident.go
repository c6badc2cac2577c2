package lexer

import (
	"cfgpp/internal/token"
)

// scanIdentOrKeyword reads [A-Za-z_][A-Za-z0-9_]* and classifies the
// literal texts true/false, null, and enum.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() && isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	kind := token.Ident
	switch text {
	case "true", "false":
		kind = token.Boolean
	case "null":
		kind = token.Null
	case "enum":
		kind = token.KwEnum
	}
	return token.Token{Kind: kind, Span: sp, Text: text}
}
