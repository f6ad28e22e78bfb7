// Package fileclass maps file paths to the coarse categories the checks
// branch on. Classification is purely extension-based.
package fileclass

import (
	"path/filepath"
	"strings"
)

// Category is the coarse kind of a C/C++ source file.
type Category uint8

const (
	// Unknown means the path does not look like a C/C++ file at all.
	Unknown Category = iota
	// Header is a plain header (.h, .hh, .hpp, .hxx).
	Header
	// InlHeader is an inline-implementation header (-inl.h and friends).
	InlHeader
	// Source is a C++ translation unit (.cpp, .cc, .cxx).
	Source
	// SourceC is a C translation unit (.c); C++-only checks skip these.
	SourceC
)

func (c Category) String() string {
	switch c {
	case Header:
		return "header"
	case InlHeader:
		return "inl-header"
	case Source:
		return "source"
	case SourceC:
		return "source-c"
	}
	return "unknown"
}

// IsHeader reports whether the category is a header of either flavor.
func (c Category) IsHeader() bool {
	return c == Header || c == InlHeader
}

// IsCpp reports whether C++-specific checks apply.
func (c Category) IsCpp() bool {
	return c == Header || c == InlHeader || c == Source
}

// Classify maps a path to its Category.
func Classify(path string) Category {
	base := filepath.Base(path)
	// a capital .C is C++ by convention, not C
	if strings.HasSuffix(base, ".C") {
		return Source
	}
	ext := strings.ToLower(filepath.Ext(base))

	switch ext {
	case ".h", ".hh", ".hpp", ".hxx":
		stem := strings.TrimSuffix(base, filepath.Ext(base))
		if strings.HasSuffix(strings.ToLower(stem), "-inl") {
			return InlHeader
		}
		return Header
	case ".cpp", ".cc", ".cxx":
		return Source
	case ".c":
		return SourceC
	}
	return Unknown
}
