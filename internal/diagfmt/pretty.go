package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"flint/internal/diag"
	"flint/internal/source"
)

var (
	colorError   = color.New(color.FgRed, color.Bold)
	colorWarning = color.New(color.FgYellow, color.Bold)
	colorAdvice  = color.New(color.FgCyan, color.Bold)
	colorPath    = color.New(color.Bold)
	colorGutter  = color.New(color.FgBlue)
)

// Pretty renders diagnostics in a human-readable form. It walks bag.Items()
// in order (callers sort the bag first). Each diagnostic prints as
//
//	<path>:<line>:<col>: <SEVERITY> <CODE>: <message>
//	  <line> | <source text>
//	         | ^~~~~
//
// followed by its notes when ShowNotes is set.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printDiagnostic(w, d, fs, opts)
	}
}

func printDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	start, end := fs.Resolve(d.Primary)
	file := fs.Get(d.Primary.File)

	head := fmt.Sprintf("%s:%d:%d:", pathFor(file, fs, opts.PathMode), start.Line, start.Col)
	sev := d.Severity.String()
	if opts.Color {
		head = colorPath.Sprint(head)
		sev = severityColor(d.Severity).Sprint(sev)
	}
	fmt.Fprintf(w, "%s %s %s: %s\n", head, sev, d.Code.ID(), d.Message)

	if file != nil {
		printContext(w, file, start, end, d.Severity, opts)
	}

	if opts.ShowNotes {
		for _, n := range d.Notes {
			nStart, _ := fs.Resolve(n.Span)
			nFile := fs.Get(n.Span.File)
			fmt.Fprintf(w, "  note: %s:%d:%d: %s\n",
				pathFor(nFile, fs, opts.PathMode), nStart.Line, nStart.Col, n.Msg)
		}
	}
}

func printContext(w io.Writer, file *source.File, start, end source.LineCol, sev diag.Severity, opts PrettyOpts) {
	firstLine := start.Line
	if ctx := uint32(max(int(opts.Context), 0)); ctx > 0 && firstLine > ctx {
		firstLine -= ctx
	} else if ctx > 0 {
		firstLine = 1
	}

	gutterWidth := len(fmt.Sprintf("%d", start.Line))
	for line := firstLine; line <= start.Line; line++ {
		text := file.GetLine(line)
		gutter := fmt.Sprintf("%*d |", gutterWidth, line)
		if opts.Color {
			gutter = colorGutter.Sprint(gutter)
		}
		fmt.Fprintf(w, "  %s %s\n", gutter, text)
	}

	// underline row below the primary line
	text := file.GetLine(start.Line)
	col := int(start.Col) - 1
	if col > len(text) {
		col = len(text)
	}
	pad := runewidth.StringWidth(text[:col])

	width := 1
	if end.Line == start.Line && int(end.Col) > int(start.Col) {
		to := int(end.Col) - 1
		if to > len(text) {
			to = len(text)
		}
		if to > col {
			width = runewidth.StringWidth(text[col:to])
		}
	}
	marks := "^" + strings.Repeat("~", max(width-1, 0))
	if opts.Color {
		marks = severityColor(sev).Sprint(marks)
	}
	gutter := fmt.Sprintf("%*s |", gutterWidth, "")
	if opts.Color {
		gutter = colorGutter.Sprint(gutter)
	}
	fmt.Fprintf(w, "  %s %s%s\n", gutter, strings.Repeat(" ", pad), marks)
}

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return colorError
	case diag.SevWarning:
		return colorWarning
	default:
		return colorAdvice
	}
}

// pathFor formats a file path according to the mode.
func pathFor(f *source.File, fs *source.FileSet, mode PathMode) string {
	if f == nil {
		return "<unknown>"
	}
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}
