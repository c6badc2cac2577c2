package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// String represents a string literal token (text holds the decoded content).
	String
	// Integer represents an integer literal token.
	Integer
	// Double represents a floating-point literal token.
	Double
	// Boolean represents a 'true' or 'false' literal token.
	Boolean
	// Null represents the 'null' literal token.
	Null

	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwInclude represents the '@include' directive keyword.
	KwInclude // @include
	// KwImport represents the '@import' directive keyword.
	KwImport // @import

	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// LParen represents the left paren token.
	LParen // (
	// RParen represents the right paren token.
	RParen // )
	// Equals represents the equals token.
	Equals // =
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Comma represents the comma token.
	Comma // ,
	// Dot represents the dot token.
	Dot // .
	// Colon represents the colon token.
	Colon // :
	// ColonColon represents the namespace token.
	ColonColon // ::

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /

	// EnvVar represents an environment variable reference token.
	// Text holds the full raw form including the '${' and '}' delimiters.
	EnvVar // ${...}
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case String:
		return "String"
	case Integer:
		return "Integer"
	case Double:
		return "Double"
	case Boolean:
		return "Boolean"
	case Null:
		return "Null"
	case KwEnum:
		return "KwEnum"
	case KwInclude:
		return "KwInclude"
	case KwImport:
		return "KwImport"
	case LBrace:
		return "LBrace"
	case RBrace:
		return "RBrace"
	case LBracket:
		return "LBracket"
	case RBracket:
		return "RBracket"
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	case Equals:
		return "Equals"
	case Semicolon:
		return "Semicolon"
	case Comma:
		return "Comma"
	case Dot:
		return "Dot"
	case Colon:
		return "Colon"
	case ColonColon:
		return "ColonColon"
	case Plus:
		return "Plus"
	case Minus:
		return "Minus"
	case Star:
		return "Star"
	case Slash:
		return "Slash"
	case EnvVar:
		return "EnvVar"
	}
	return "Unknown"
}
