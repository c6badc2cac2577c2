package diag

import "fmt"

// Code identifies a diagnostic category. Ranges: 1xxx lexical, 2xxx
// syntactic, 3xxx include/env resolution, 4xxx schema validation.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexUnterminatedEnvVar Code = 1003
	LexUnknownDirective   Code = 1004
	LexBadNumber          Code = 1005

	// Syntactic
	SynUnexpectedToken  Code = 2001
	SynExpectIdentifier Code = 2002
	SynExpectEquals     Code = 2003
	SynExpectValue      Code = 2004
	SynUnclosedBrace    Code = 2005
	SynUnclosedBracket  Code = 2006
	SynTrailingInput    Code = 2007
	SynDisabledInclude  Code = 2008

	// Include and environment resolution
	IncFileNotFound   Code = 3001
	IncDepthExceeded  Code = 3002
	IncReadFailed     Code = 3003
	EnvVarNotFound    Code = 3101

	// Schema validation
	ValTypeMismatch    Code = 4001
	ValMissingField    Code = 4002
	ValUnexpectedField Code = 4003
	ValInvalidEnum     Code = 4004
	ValUnionMismatch   Code = 4005
	ValConstraint      Code = 4006
	ValUnknownSchema   Code = 4007
)

// ID returns the short stable identifier printed in diagnostics, e.g. "CFG1002".
func (c Code) ID() string {
	return fmt.Sprintf("CFG%04d", uint16(c))
}

func (c Code) String() string {
	return c.ID()
}
