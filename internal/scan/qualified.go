package scan

import (
	"flint/internal/token"
)

// ReadQualifiedName reads an alternating identifier / '::' run such as
// "a::b::c" starting at the cursor. It returns the ordered identifier texts
// (scope operators discarded) and the cursor just past the last identifier.
// It never fails: when the cursor is not at an identifier the result is nil
// and the cursor is returned unchanged. A leading '::' (global qualifier)
// is accepted and discarded.
func ReadQualifiedName(c Cursor) ([]string, Cursor) {
	if c.Kind() == token.ColonColon && c.PeekKind(1) == token.Ident {
		c = c.Next()
	}
	if c.Kind() != token.Ident {
		return nil, c
	}

	parts := []string{c.Text()}
	c = c.Next()
	for c.Kind() == token.ColonColon && c.PeekKind(1) == token.Ident {
		c = c.Next()
		parts = append(parts, c.Text())
		c = c.Next()
	}
	return parts, c
}
