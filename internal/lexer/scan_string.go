package lexer

import (
	"strings"

	"cfgpp/internal/diag"
	"cfgpp/internal/token"
)

// scanString reads a double-quoted literal, decoding the escapes
// \n \r \t \\ \". An unrecognized escape keeps the backslash and the
// following character literally.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'

	var sb strings.Builder
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		switch b {
		case '"':
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.String, Span: sp, Text: sb.String()}
		case '\\':
			if lx.cursor.EOF() {
				break
			}
			switch esc := lx.cursor.Bump(); esc {
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			case '\\':
				sb.WriteByte('\\')
			case '"':
				sb.WriteByte('"')
			default:
				sb.WriteByte('\\')
				sb.WriteByte(esc)
			}
		default:
			sb.WriteByte(b)
		}
	}

	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexUnterminatedString, sp, "unterminated string")
	return token.Token{Kind: token.Invalid, Span: sp, Text: sb.String()}
}
