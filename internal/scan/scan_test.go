package scan

import (
	"errors"
	"testing"

	"flint/internal/lexer"
	"flint/internal/source"
	"flint/internal/token"
)

func cursorFor(t *testing.T, src string) Cursor {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.cpp", []byte(src))
	lx := lexer.New(fs.Get(id), lexer.Options{})
	return NewCursor(lx.ScanAll())
}

// seek advances until the cursor sits at kind; fails the test at EOF.
func seek(t *testing.T, c Cursor, kind token.Kind) Cursor {
	t.Helper()
	for !c.AtEnd() && c.Kind() != kind {
		c = c.Next()
	}
	if c.AtEnd() {
		t.Fatalf("token %v not found in stream", kind)
	}
	return c
}

func TestSkipBracesMatching(t *testing.T) {
	c := cursorFor(t, "{ a { b { } c } d } tail")
	end := SkipBraces(c)
	if end.AtEnd() {
		t.Fatal("SkipBraces hit the sentinel on balanced input")
	}
	if end.Kind() != token.RBrace {
		t.Fatalf("SkipBraces stopped at %v, want RBrace", end.Kind())
	}
	if next := end.Next(); next.Kind() != token.Ident || next.Text() != "tail" {
		t.Fatalf("matching brace misplaced: next token %v %q", next.Kind(), next.Text())
	}
}

func TestSkipBracesUnbalanced(t *testing.T) {
	c := cursorFor(t, "{ a { b }")
	if end := SkipBraces(c); !end.AtEnd() {
		t.Fatalf("SkipBraces on truncated input stopped at %v, want sentinel", end.Kind())
	}
}

func TestSkipParens(t *testing.T) {
	c := cursorFor(t, "(a, (b, c), d) tail")
	end := SkipParens(c)
	if end.Kind() != token.RParen {
		t.Fatalf("SkipParens stopped at %v, want RParen", end.Kind())
	}
	if next := end.Next(); next.Text() != "tail" {
		t.Fatalf("wrong closing paren: next token %q", next.Text())
	}
}

func TestSkipTemplateArgs(t *testing.T) {
	tests := []struct {
		src       string
		wantArray bool
	}{
		{"vector<int>", false},
		{"array<int[4]>", true},
		{"vector<array<int[4], 2> >", false},
		{"map<string, pair<int, int> >", false},
		{"foo<decltype(a < b), int>", false},
	}
	for _, tt := range tests {
		c := seek(t, cursorFor(t, tt.src), token.Lt)
		end, hasArray := SkipTemplateArgs(c)
		if end.AtEnd() {
			t.Errorf("%q: hit sentinel, want Gt", tt.src)
			continue
		}
		if end.Kind() != token.Gt {
			t.Errorf("%q: stopped at %v, want Gt", tt.src, end.Kind())
		}
		if !end.Next().AtEnd() {
			t.Errorf("%q: stopped at inner close, not the top-level one", tt.src)
		}
		if hasArray != tt.wantArray {
			t.Errorf("%q: containsArray = %v, want %v", tt.src, hasArray, tt.wantArray)
		}
	}
}

func TestSkipTemplateArgsShrGap(t *testing.T) {
	// ">>" lexes as one shift token, so the doubled close is never seen.
	c := seek(t, cursorFor(t, "vector<array<int, 4>>"), token.Lt)
	if end, _ := SkipTemplateArgs(c); !end.AtEnd() {
		t.Fatalf("expected sentinel for unsplit '>>', got %v", end.Kind())
	}
}

func TestSkipFunctionDecl(t *testing.T) {
	c := cursorFor(t, "f(int x) const; tail")
	end := SkipFunctionDecl(c)
	if end.Kind() != token.Semicolon {
		t.Fatalf("prototype: stopped at %v, want Semicolon", end.Kind())
	}

	c = cursorFor(t, "f(int x) { if (x) { return; } } tail")
	end = SkipFunctionDecl(c)
	if end.Kind() != token.RBrace {
		t.Fatalf("definition: stopped at %v, want RBrace", end.Kind())
	}
	if end.Next().Text() != "tail" {
		t.Fatalf("definition: stopped at inner brace")
	}
}

func TestReadQualifiedName(t *testing.T) {
	parts, c := ReadQualifiedName(cursorFor(t, "a::b::c rest"))
	if len(parts) != 3 || parts[0] != "a" || parts[1] != "b" || parts[2] != "c" {
		t.Fatalf("parts = %v, want [a b c]", parts)
	}
	if c.Text() != "rest" {
		t.Fatalf("cursor stopped at %q, want rest", c.Text())
	}

	parts, _ = ReadQualifiedName(cursorFor(t, "::std::exception x"))
	if len(parts) != 2 || parts[0] != "std" || parts[1] != "exception" {
		t.Fatalf("global-qualified parts = %v", parts)
	}

	parts, c = ReadQualifiedName(cursorFor(t, "123"))
	if parts != nil {
		t.Fatalf("non-identifier start yielded %v", parts)
	}
	if c.Kind() != token.IntLit {
		t.Fatalf("cursor moved on failed read: %v", c.Kind())
	}
}

func TestExtractArguments(t *testing.T) {
	tests := []struct {
		src  string
		want []string
	}{
		{"f()", nil},
		{"f(a, b, c)", []string{"a", "b", "c"}},
		{"f(g(a, b), c)", []string{"g(a, b)", "c"}},
		{"f(x + 1, \"s\")", []string{"x + 1", "\"s\""}},
	}
	for _, tt := range tests {
		c := seek(t, cursorFor(t, tt.src), token.LParen)
		args, end, ok := ExtractArguments(c)
		if !ok {
			t.Errorf("%q: not ok", tt.src)
			continue
		}
		if end.Kind() != token.RParen {
			t.Errorf("%q: end at %v, want RParen", tt.src, end.Kind())
		}
		if len(args) != len(tt.want) {
			t.Errorf("%q: %d args, want %d", tt.src, len(args), len(tt.want))
			continue
		}
		for i, w := range tt.want {
			if got := args[i].Text(); got != w {
				t.Errorf("%q: arg[%d] = %q, want %q", tt.src, i, got, w)
			}
		}
	}
}

func TestExtractArgumentsTruncated(t *testing.T) {
	c := seek(t, cursorFor(t, "f(a, b"), token.LParen)
	if _, _, ok := ExtractArguments(c); ok {
		t.Fatal("truncated argument list reported ok")
	}
}

func TestExtractNameAndArguments(t *testing.T) {
	c := cursorFor(t, "ns::make<int>(a, b);")
	name, args, end, ok := ExtractNameAndArguments(c)
	if !ok {
		t.Fatal("not ok")
	}
	if got := name.Text(); got != "ns::make<int>" {
		t.Fatalf("name = %q", got)
	}
	if len(args) != 2 || args[0].Text() != "a" || args[1].Text() != "b" {
		t.Fatalf("args = %v", args)
	}
	if end.Next().Kind() != token.Semicolon {
		t.Fatalf("end misplaced at %v", end.Kind())
	}

	if _, _, _, ok := ExtractNameAndArguments(cursorFor(t, "x = 1;")); ok {
		t.Fatal("non-call shape reported ok")
	}
}

func TestTrackerFrames(t *testing.T) {
	src := `
namespace outer {
class Foo : public Bar, protected virtual ns::Baz {
 public:
  void f() { int hidden = 0; }
};
struct S { int x; };
}
`
	type enter struct {
		kind   FrameKind
		name   string
		access Access
	}
	var got []enter
	var left []string

	tr := NewTracker(false)
	err := tr.Walk(cursorFor(t, src), Hooks{
		EnterFrame: func(f *Frame, _ Cursor) {
			got = append(got, enter{f.Kind, f.Name, f.Access})
			if f.Name == "Foo" {
				if len(f.Bases) != 2 {
					t.Fatalf("Foo has %d bases, want 2", len(f.Bases))
				}
				b0, b1 := f.Bases[0], f.Bases[1]
				if b0.Access != AccessPublic || b0.Terminal() != "Bar" || b0.Virtual {
					t.Errorf("base 0 = %+v", b0)
				}
				if b1.Access != AccessProtected || !b1.Virtual || b1.Terminal() != "Baz" || len(b1.Name) != 2 {
					t.Errorf("base 1 = %+v", b1)
				}
			}
		},
		LeaveFrame: func(f *Frame, _ Cursor) {
			left = append(left, f.Name)
		},
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}

	want := []enter{
		{FrameNamespace, "outer", AccessPublic},
		{FrameClass, "Foo", AccessPrivate},
		{FrameStruct, "S", AccessPublic},
	}
	if len(got) != len(want) {
		t.Fatalf("frames entered = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("frame[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if len(left) != 3 || left[0] != "Foo" || left[1] != "S" || left[2] != "outer" {
		t.Errorf("leave order = %v", left)
	}
}

func TestTrackerAccessSpecifier(t *testing.T) {
	src := "class C { public: int a; protected: int b; };"
	var seen []Access

	tr := NewTracker(false)
	err := tr.Walk(cursorFor(t, src), Hooks{
		OnToken: func(c Cursor, t *Tracker) Cursor {
			if c.Kind() == token.Ident {
				if f := t.CurrentClass(); f != nil {
					seen = append(seen, f.Access)
				}
			}
			return c
		},
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	// idents: a (public), b (protected)
	if len(seen) != 2 || seen[0] != AccessPublic || seen[1] != AccessProtected {
		t.Fatalf("access per member = %v", seen)
	}
}

func TestTrackerSkipsFunctionBodies(t *testing.T) {
	src := "int a; void f() { int hidden; } int b;"
	var idents []string

	tr := NewTracker(false)
	err := tr.Walk(cursorFor(t, src), Hooks{
		OnToken: func(c Cursor, _ *Tracker) Cursor {
			if c.Kind() == token.Ident {
				idents = append(idents, c.Text())
			}
			return c
		},
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	if len(idents) != 3 || idents[0] != "a" || idents[1] != "f" || idents[2] != "b" {
		t.Fatalf("idents = %v, want [a f b]", idents)
	}
}

func TestTrackerDescendBodies(t *testing.T) {
	src := "void f() { int hidden; }"
	var idents []string

	tr := NewTracker(true)
	err := tr.Walk(cursorFor(t, src), Hooks{
		OnToken: func(c Cursor, _ *Tracker) Cursor {
			if c.Kind() == token.Ident {
				idents = append(idents, c.Text())
			}
			return c
		},
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	if len(idents) != 2 || idents[1] != "hidden" {
		t.Fatalf("idents = %v, want [f hidden]", idents)
	}
}

func TestTrackerIgnoresNonScopes(t *testing.T) {
	src := `
class Fwd;
namespace alias_ns = a::b;
enum Color { kRed, kGreen };
void f(class Opaque* p);
template <typename T> class Box {};
`
	var entered []string
	tr := NewTracker(false)
	err := tr.Walk(cursorFor(t, src), Hooks{
		EnterFrame: func(f *Frame, _ Cursor) { entered = append(entered, f.Name) },
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	if len(entered) != 1 || entered[0] != "Box" {
		t.Fatalf("entered = %v, want [Box]", entered)
	}
}

func TestTrackerAnonymousFrames(t *testing.T) {
	src := "namespace { class Hidden {}; } struct {} x;"
	var frames []*Frame
	tr := NewTracker(false)
	err := tr.Walk(cursorFor(t, src), Hooks{
		EnterFrame: func(f *Frame, _ Cursor) {
			cp := *f
			frames = append(frames, &cp)
		},
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	if len(frames) != 3 {
		t.Fatalf("%d frames entered, want 3", len(frames))
	}
	if !frames[0].Anonymous || frames[0].Kind != FrameNamespace {
		t.Errorf("frame 0 = %+v", frames[0])
	}
	if frames[1].Name != "Hidden" || frames[1].Ignore {
		t.Errorf("frame 1 = %+v", frames[1])
	}
	if !frames[2].Anonymous || !frames[2].Ignore {
		t.Errorf("frame 2 = %+v", frames[2])
	}
}

func TestTrackerUnbalanced(t *testing.T) {
	for _, src := range []string{
		"class Foo {",
		"namespace a { class B { }",
		"}",
		"namespace a { } }",
	} {
		tr := NewTracker(false)
		err := tr.Walk(cursorFor(t, src), Hooks{})
		if !errors.Is(err, ErrUnbalanced) {
			t.Errorf("%q: err = %v, want ErrUnbalanced", src, err)
		}
	}
}

func TestTrackerOnTokenMayConsume(t *testing.T) {
	// The hook consumes typedefs wholesale; the walk resumes after them.
	src := "typedef int MyInt; class C {};"
	var entered, skippedTypedef bool

	tr := NewTracker(false)
	err := tr.Walk(cursorFor(t, src), Hooks{
		OnToken: func(c Cursor, _ *Tracker) Cursor {
			if c.Kind() == token.KwTypedef {
				skippedTypedef = true
				for !c.AtEnd() && c.Kind() != token.Semicolon {
					c = c.Next()
				}
				return c.Next()
			}
			return c
		},
		EnterFrame: func(f *Frame, _ Cursor) { entered = f.Name == "C" },
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	if !skippedTypedef || !entered {
		t.Fatalf("skipped=%v entered=%v", skippedTypedef, entered)
	}
}
