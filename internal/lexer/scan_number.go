package lexer

import (
	"cfgpp/internal/token"
)

// scanNumber reads an integer or floating-point literal. A first '.' marks
// the number as floating-point; a second '.' terminates it so the dot is
// re-lexed as its own token ("1..2" is Double("1.") Dot Integer("2")).
// One exponent marker with an optional sign is accepted.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.Integer

	lx.cursor.Bump() // leading digit
	for !lx.cursor.EOF() {
		switch b := lx.cursor.Peek(); {
		case isDec(b):
			lx.cursor.Bump()
		case b == '.':
			if kind == token.Double {
				goto emit
			}
			kind = token.Double
			lx.cursor.Bump()
		case b == 'e' || b == 'E':
			kind = token.Double
			lx.cursor.Bump()
			if p := lx.cursor.Peek(); p == '+' || p == '-' {
				lx.cursor.Bump()
			}
		default:
			goto emit
		}
	}

emit:
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
