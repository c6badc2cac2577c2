package cfgerr

import (
	"fmt"
)

// SyntaxError reports a lexical or grammatical failure at a source position.
// Line and Col are 1-based; Offset is the 0-based byte offset.
type SyntaxError struct {
	Msg    string
	File   string
	Line   uint32
	Col    uint32
	Offset uint32
}

func (e *SyntaxError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s: syntax error at line %d, column %d: %s", e.File, e.Line, e.Col, e.Msg)
	}
	return fmt.Sprintf("syntax error at line %d, column %d: %s", e.Line, e.Col, e.Msg)
}

// TypeError reports a value accessed as the wrong container kind.
type TypeError struct {
	Expected string
	Actual   string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("type error: expected %s, found %s", e.Expected, e.Actual)
}

// KeyNotFound reports a missing object key.
type KeyNotFound struct {
	Key string
}

func (e *KeyNotFound) Error() string {
	return fmt.Sprintf("key not found: %s", e.Key)
}

// IndexOutOfBounds reports an array index outside the valid range.
type IndexOutOfBounds struct {
	Index int
}

func (e *IndexOutOfBounds) Error() string {
	return fmt.Sprintf("index out of bounds: %d", e.Index)
}

// IoError reports a file system failure.
type IoError struct {
	Msg string
	Err error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("i/o error: %s", e.Msg)
}

func (e *IoError) Unwrap() error {
	return e.Err
}

// IncludeError reports a failed include directive.
type IncludeError struct {
	Path string
	Msg  string
}

func (e *IncludeError) Error() string {
	return fmt.Sprintf("include error: %s - %s", e.Path, e.Msg)
}

// EnvVarError reports a failed environment variable expansion.
type EnvVarError struct {
	Var string
	Msg string
}

func (e *EnvVarError) Error() string {
	return fmt.Sprintf("environment variable error: %s - %s", e.Var, e.Msg)
}

// ParseError reports a generic parsing failure with no position.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Msg)
}
