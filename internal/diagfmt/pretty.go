package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"warlang/internal/diag"
	"warlang/internal/source"
)

// Pretty formats diagnostics in a human-readable way. It walks
// bag.Items() in order (callers sort the bag first) and prints, per
// diagnostic:
//
//	<path>:<line>:<col>: <severity>[<CODE>]: <message>
//
// followed by the source line with a ^~~~ underline for the span, then
// any notes in the same shape.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts)
	}
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan, color.Bold)
	}
}

func severityLabel(sev diag.Severity) string {
	switch sev {
	case diag.SevError:
		return "error"
	case diag.SevWarning:
		return "warning"
	default:
		return "info"
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	head := severityLabel(d.Severity) + "[" + d.Code.ID() + "]"
	if opts.Color {
		head = severityColor(d.Severity).Sprint(head)
	}

	fmt.Fprintf(w, "%s: %s: %s\n", position(fs, d.Primary, opts.PathMode), head, d.Message)
	underlineSpan(w, fs, d.Primary, opts)

	if !opts.ShowNotes {
		return
	}
	for _, note := range d.Notes {
		label := "note"
		if opts.Color {
			label = color.New(color.FgCyan, color.Bold).Sprint(label)
		}
		fmt.Fprintf(w, "%s: %s: %s\n", position(fs, note.Span, opts.PathMode), label, note.Message)
		underlineSpan(w, fs, note.Span, opts)
	}
}

func position(fs *source.FileSet, sp source.Span, mode PathMode) string {
	file := fs.Get(sp.File)
	if file == nil {
		return "<unknown>"
	}
	start, _ := fs.Resolve(sp)
	path := file.Path
	if mode == PathModeBasename {
		path = filepath.Base(path)
	}
	return fmt.Sprintf("%s:%d:%d", path, start.Line, start.Col)
}

// underlineSpan prints the source line and a caret line beneath it.
// Column math runs through runewidth so the caret lands correctly even
// when the line contains wide runes.
func underlineSpan(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	file := fs.Get(sp.File)
	if file == nil {
		return
	}
	start, end := fs.Resolve(sp)
	lineText := file.GetLine(start.Line)
	if lineText == "" && sp.Empty() {
		return
	}

	fmt.Fprintf(w, "  %s\n", lineText)

	prefix := lineText
	if int(start.Col-1) <= len(lineText) {
		prefix = lineText[:start.Col-1]
	}
	pad := runewidth.StringWidth(prefix)

	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		spanned := lineText
		if int(end.Col-1) <= len(lineText) {
			spanned = lineText[start.Col-1 : end.Col-1]
		}
		width = runewidth.StringWidth(spanned)
		if width < 1 {
			width = 1
		}
	}

	marker := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		marker = color.New(color.FgGreen, color.Bold).Sprint(marker)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), marker)
}
