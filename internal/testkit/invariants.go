// Package testkit holds invariant checkers shared by tests and fuzz
// harnesses. Production code must not import it.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"cfgpp/internal/source"
	"cfgpp/internal/token"
)

// CheckTokenSpans runs a minimal set of span invariants on a lexed stream:
// 1) every span is within file content bounds
// 2) spans never move backwards; each token starts at or after the previous end
// 3) the stream ends with exactly one EOF or Invalid token
func CheckTokenSpans(tokens []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	if len(tokens) == 0 {
		return fmt.Errorf("empty token stream")
	}

	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevEnd uint32
	for i, tok := range tokens {
		sp := tok.Span
		if sp.File != sf.ID {
			return fmt.Errorf("token %d span points to different file id: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.End < sp.Start {
			return fmt.Errorf("token %d has inverted span: %v", i, sp)
		}
		if sp.End > lenContent {
			return fmt.Errorf("token %d span end beyond content: %d > %d", i, sp.End, lenContent)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d span %v overlaps previous end %d", i, sp, prevEnd)
		}
		prevEnd = sp.End

		terminal := tok.Kind == token.EOF || tok.Kind == token.Invalid
		if terminal && i != len(tokens)-1 {
			return fmt.Errorf("terminal token %v at index %d is not last", tok.Kind, i)
		}
		if i == len(tokens)-1 && !terminal {
			return fmt.Errorf("stream does not end with EOF or Invalid, got %v", tok.Kind)
		}
	}
	return nil
}
