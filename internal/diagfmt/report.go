package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"cfgpp/internal/schema"
)

// FormatValidation writes a validation report. An empty error list prints a
// single confirmation line; otherwise one block per error with the path,
// the message, and the expected/actual types when known.
func FormatValidation(w io.Writer, errs []schema.ValidationError, useColor bool) {
	if len(errs) == 0 {
		ok := "configuration is valid"
		if useColor {
			ok = color.New(color.FgHiGreen).Sprint(ok)
		}
		fmt.Fprintln(w, ok)
		return
	}

	label := "error"
	if useColor {
		label = color.New(color.FgHiRed, color.Bold).Sprint(label)
	}
	for _, e := range errs {
		path := e.Path
		if path == "" {
			path = "<root>"
		}
		fmt.Fprintf(w, "%s: %s: %s\n", label, path, e.Message)
		if e.Expected != "" {
			fmt.Fprintf(w, "    expected: %s\n", e.Expected)
		}
		if e.Actual != "" {
			fmt.Fprintf(w, "    actual:   %s\n", e.Actual)
		}
	}
	fmt.Fprintf(w, "%d validation error(s)\n", len(errs))
}
