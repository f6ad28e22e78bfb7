package fileclass

import "testing"

func TestClassify(t *testing.T) {
	cases := map[string]Category{
		"foo.h":             Header,
		"dir/foo.hpp":       Header,
		"foo.hh":            Header,
		"Foo-inl.h":         InlHeader,
		"dir/Map-inl.hpp":   InlHeader,
		"foo.cpp":           Source,
		"foo.cc":            Source,
		"foo.cxx":           Source,
		"old/unit.C":        Source,
		"legacy.c":          SourceC,
		"README.md":         Unknown,
		"noext":             Unknown,
		"weird.inl":         Unknown,
	}
	for path, want := range cases {
		if got := Classify(path); got != want {
			t.Errorf("Classify(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestCategoryPredicates(t *testing.T) {
	if !Header.IsHeader() || !InlHeader.IsHeader() {
		t.Error("headers should be IsHeader")
	}
	if Source.IsHeader() {
		t.Error("source is not a header")
	}
	if !Source.IsCpp() || !Header.IsCpp() {
		t.Error("C++ categories should be IsCpp")
	}
	if SourceC.IsCpp() {
		t.Error("C source is not C++")
	}
}
