package fuzztests

import (
	"testing"
	"time"

	"cfgpp/internal/diag"
	"cfgpp/internal/parser"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

func fuzzParserOptions(bag *diag.Bag) parser.Options {
	return parser.Options{
		Reporter:        diag.BagReporter{Bag: bag},
		ExpandEnvVars:   false,
		ProcessIncludes: false,
		MaxIncludeDepth: 1,
	}
}

func FuzzParserBuildsTree(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(_ *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		bag := diag.NewBag(128)
		p := parser.New(fuzzParserOptions(bag))
		_, _ = p.ParseString(string(input))
	})
}

// FuzzParserNoHang checks that no input makes the parser loop forever.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)

	// Shapes that stress fail-fast error paths.
	f.Add([]byte("a = 1\nb = 2;"))
	f.Add([]byte("x { y { z {"))
	f.Add([]byte("arr = [[[[[["))
	f.Add([]byte("a = \"${NESTED:-${INNER:-x}}\";"))
	f.Add([]byte("= = = ;"))

	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		done := make(chan struct{})
		go func() {
			defer close(done)
			bag := diag.NewBag(128)
			p := parser.New(fuzzParserOptions(bag))
			_, _ = p.ParseString(string(input))
		}()

		select {
		case <-done:
		case <-time.After(parseTimeout):
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen], []byte("...")...)
}
