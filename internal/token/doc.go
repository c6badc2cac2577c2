// Package token defines the token kinds produced by the CFG++ lexer.
package token
