package diagfmt

import (
	"strings"
	"testing"

	"flint/internal/diag"
	"flint/internal/source"
)

func diagBagFor(t *testing.T, src string, start, end uint32) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("widget.h", []byte(src))
	bag := diag.NewBag(0)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.StyleNonVirtualDestructor,
		Message:  "class 'Widget' has virtual functions but no virtual destructor",
		Primary:  source.Span{File: id, Start: start, End: end},
	})
	return bag, fs
}

func TestPrettyBasic(t *testing.T) {
	// span covers "Widget" on line 1
	bag, fs := diagBagFor(t, "class Widget {\n};\n", 6, 12)

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	out := sb.String()

	if !strings.Contains(out, "widget.h:1:7:") {
		t.Errorf("missing location header:\n%s", out)
	}
	if !strings.Contains(out, "WARNING STY3002:") {
		t.Errorf("missing severity/code:\n%s", out)
	}
	if !strings.Contains(out, "class Widget {") {
		t.Errorf("missing source line:\n%s", out)
	}
	if !strings.Contains(out, "^~~~~") {
		t.Errorf("missing underline:\n%s", out)
	}
}

func TestPrettyUnderlineAlignment(t *testing.T) {
	bag, fs := diagBagFor(t, "class Widget {\n};\n", 6, 12)

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})
	lines := strings.Split(sb.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("output too short:\n%s", sb.String())
	}
	srcLine, markLine := lines[1], lines[2]
	if strings.Index(srcLine, "Widget") < 0 {
		t.Fatalf("unexpected source line %q", srcLine)
	}
	// the caret column must match the W of Widget
	if strings.Index(markLine, "^") != strings.Index(srcLine, "Widget") {
		t.Errorf("caret misaligned:\n%q\n%q", srcLine, markLine)
	}
	if got := strings.Count(markLine, "~"); got != 5 {
		t.Errorf("underline length = %d, want 5", got)
	}
}

func TestPrettyNotes(t *testing.T) {
	bag, fs := diagBagFor(t, "class Widget {\n};\n", 6, 12)
	items := bag.Items()
	items[0].Notes = []diag.Note{{Span: items[0].Primary, Msg: "declared here"}}

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{ShowNotes: true, PathMode: PathModeBasename})
	if !strings.Contains(sb.String(), "note: widget.h:1:7: declared here") {
		t.Errorf("missing note:\n%s", sb.String())
	}

	sb.Reset()
	Pretty(&sb, bag, fs, PrettyOpts{ShowNotes: false})
	if strings.Contains(sb.String(), "declared here") {
		t.Errorf("notes shown despite ShowNotes=false:\n%s", sb.String())
	}
}
