package diagfmt

import (
	"encoding/json"
	"io"

	"warlang/internal/diag"
	"warlang/internal/source"
)

type jsonPosition struct {
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

type jsonNote struct {
	Message  string       `json:"message"`
	Position jsonPosition `json:"position"`
}

type jsonDiagnostic struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Path     string       `json:"path"`
	Position jsonPosition `json:"position"`
	Notes    []jsonNote   `json:"notes,omitempty"`
}

// JSON emits the bag as a JSON array, one object per diagnostic, in
// bag order.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet) error {
	output := make([]jsonDiagnostic, 0, bag.Len())
	for _, d := range bag.Items() {
		start, _ := fs.Resolve(d.Primary)
		jd := jsonDiagnostic{
			Severity: severityLabel(d.Severity),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Position: jsonPosition{Line: start.Line, Col: start.Col},
		}
		if file := fs.Get(d.Primary.File); file != nil {
			jd.Path = file.Path
		}
		for _, note := range d.Notes {
			noteStart, _ := fs.Resolve(note.Span)
			jd.Notes = append(jd.Notes, jsonNote{
				Message:  note.Message,
				Position: jsonPosition{Line: noteStart.Line, Col: noteStart.Col},
			})
		}
		output = append(output, jd)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
