package diagfmt

import (
	"encoding/json"
	"io"

	"cfgpp/internal/diag"
	"cfgpp/internal/source"
)

type DiagnosticOutput struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	File     string `json:"file,omitempty"`
	Line     uint32 `json:"line,omitempty"`
	Col      uint32 `json:"col,omitempty"`
	Notes    []struct {
		Message string `json:"message"`
	} `json:"notes,omitempty"`
}

// JSON writes the bag as an indented JSON array of diagnostics.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	var output []DiagnosticOutput

	for i, d := range bag.Items() {
		if opts.Max > 0 && i >= opts.Max {
			break
		}
		out := DiagnosticOutput{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
		}
		if opts.IncludePositions {
			file := fs.Get(d.Primary.File)
			pos := fs.ResolveStart(d.Primary)
			out.File = displayPath(file.Path, opts.PathMode)
			out.Line = pos.Line
			out.Col = pos.Col
		}
		if opts.IncludeNotes {
			for _, note := range d.Notes {
				out.Notes = append(out.Notes, struct {
					Message string `json:"message"`
				}{Message: note.Msg})
			}
		}
		output = append(output, out)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
