package source

import (
	"testing"
)

func TestAddVirtualAndGet(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.cpp", []byte("int main() {}\n"))

	f := fs.Get(id)
	if f.Path != "test.cpp" {
		t.Errorf("Path = %q, want %q", f.Path, "test.cpp")
	}
	if f.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag")
	}
	if string(f.Content) != "int main() {}\n" {
		t.Errorf("Content = %q", f.Content)
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.cpp", []byte("abc\ndef\nghi"))

	cases := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},
		{2, 1, 3},
		{4, 2, 1},
		{6, 2, 3},
		{8, 3, 1},
		{10, 3, 3},
	}
	for _, c := range cases {
		start, _ := fs.Resolve(Span{File: id, Start: c.off, End: c.off})
		if start.Line != c.line || start.Col != c.col {
			t.Errorf("Resolve(off=%d) = %d:%d, want %d:%d", c.off, start.Line, start.Col, c.line, c.col)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.cpp", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	if got := f.GetLine(1); got != "first" {
		t.Errorf("GetLine(1) = %q", got)
	}
	if got := f.GetLine(2); got != "second" {
		t.Errorf("GetLine(2) = %q", got)
	}
	if got := f.GetLine(3); got != "third" {
		t.Errorf("GetLine(3) = %q", got)
	}
	if got := f.GetLine(4); got != "" {
		t.Errorf("GetLine(4) = %q, want empty", got)
	}
	if got := f.GetLine(0); got != "" {
		t.Errorf("GetLine(0) = %q, want empty", got)
	}
}

func TestGetByPath(t *testing.T) {
	fs := NewFileSet()
	fs.AddVirtual("dir/a.h", []byte("x"))

	if _, ok := fs.GetByPath("dir/a.h"); !ok {
		t.Error("expected to find dir/a.h")
	}
	if _, ok := fs.GetByPath("dir/b.h"); ok {
		t.Error("did not expect to find dir/b.h")
	}
}
