// Package diag provides position-tracked diagnostics shared by the lexer,
// parser, and schema validator.
package diag
