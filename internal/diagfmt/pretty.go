package diagfmt

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"cfgpp/internal/diag"
	"cfgpp/internal/source"
)

// Pretty formats diagnostics for humans. It walks bag.Items() (call
// bag.Sort() first for stable output) and prints for each diagnostic:
//
//	<path>:<line>:<col>: <severity> <CODE>: <message>
//
// followed, when Context is set, by the offending source line with a caret
// underline, and then any notes in the same shape.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeHeader(w, d.Primary, d.Severity, d.Code, d.Message, fs, opts)
		if opts.Context {
			writeContext(w, d.Primary, fs, opts)
		}
		if opts.ShowNotes {
			for _, note := range d.Notes {
				writeHeader(w, note.Span, diag.SevInfo, 0, note.Msg, fs, opts)
				if opts.Context {
					writeContext(w, note.Span, fs, opts)
				}
			}
		}
	}
}

func writeHeader(w io.Writer, span source.Span, sev diag.Severity, code diag.Code, msg string, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(span.File)
	pos := fs.ResolveStart(span)

	sevText := strings.ToLower(sev.String())
	if opts.Color {
		sevText = severityColor(sev).Sprint(sevText)
	}

	fmt.Fprintf(w, "%s:%d:%d: %s", displayPath(file.Path, opts.PathMode), pos.Line, pos.Col, sevText)
	if code != 0 {
		fmt.Fprintf(w, " %s", code.ID())
	}
	fmt.Fprintf(w, ": %s\n", msg)
}

// writeContext prints the source line the span starts on, with a caret
// under the offending range. Multi-line spans are underlined only on
// their first line.
func writeContext(w io.Writer, span source.Span, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(span.File)
	pos := fs.ResolveStart(span)

	lineStart, lineEnd := lineBounds(file, pos.Line)
	lineText := string(file.Content[lineStart:lineEnd])

	underStart := span.Start - lineStart
	underEnd := span.End - lineStart
	if span.End <= span.Start || underEnd > uint32(len(lineText)) {
		underEnd = underStart + 1
	}
	if underStart >= uint32(len(lineText))+1 {
		underStart = uint32(len(lineText))
		underEnd = underStart + 1
	}

	caret := strings.Repeat(" ", int(underStart)) + "^" + strings.Repeat("~", int(underEnd-underStart)-1)
	if opts.Color {
		caret = color.New(color.FgHiGreen).Sprint(caret)
	}

	fmt.Fprintf(w, "%5d | %s\n", pos.Line, lineText)
	fmt.Fprintf(w, "      | %s\n", caret)
}

// lineBounds returns the byte range of the given 1-based line, excluding
// the trailing newline.
func lineBounds(file *source.File, line uint32) (start, end uint32) {
	if line > 1 {
		start = file.LineIdx[line-2] + 1
	}
	if int(line-1) < len(file.LineIdx) {
		end = file.LineIdx[line-1]
	} else {
		end = uint32(len(file.Content))
	}
	return start, end
}

func displayPath(path string, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
	case PathModeRelative:
		if wd, err := os.Getwd(); err == nil {
			if rel, err := filepath.Rel(wd, path); err == nil {
				return rel
			}
		}
	case PathModeBasename:
		return filepath.Base(path)
	}
	return path
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgHiRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgHiYellow)
	default:
		return color.New(color.FgHiCyan)
	}
}
