// Package fuzztests houses Go fuzz harnesses that exercise the front of the
// CFG++ pipeline (source -> lexer -> parser). Its goal is to smoke test
// robustness and guard against panics on arbitrary inputs.
//
// Does not: generate corpora, write files, run the CLI.
package fuzztests
