package scan

import (
	"flint/internal/token"
)

// SkipBraces advances from an opening '{' to its matching '}' in one forward
// pass. Returns a cursor at the matching RBrace, or at the EOF sentinel when
// the input runs out before balance.
func SkipBraces(c Cursor) Cursor {
	depth := 0
	for !c.AtEnd() {
		switch c.Kind() {
		case token.LBrace:
			depth++
		case token.RBrace:
			depth--
			if depth == 0 {
				return c
			}
		}
		c = c.Next()
	}
	return c
}

// SkipParens advances from an opening '(' to its matching ')'.
// Same contract as SkipBraces.
func SkipParens(c Cursor) Cursor {
	depth := 0
	for !c.AtEnd() {
		switch c.Kind() {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
			if depth == 0 {
				return c
			}
		}
		c = c.Next()
	}
	return c
}

// SkipTemplateArgs advances from a '<' to the matching top-level '>'.
// Angle brackets are counted only at paren depth zero, which keeps
// "f(a < b, c > d)" from being misread. containsArray is set when a '['
// appears at the top template level before the close, which callers use to
// detect array-typed template parameters.
//
// A Shr token closing two nested lists is not split (accepted gap, see
// package doc). Returns the sentinel cursor when the stream ends first.
func SkipTemplateArgs(c Cursor) (end Cursor, containsArray bool) {
	angleDepth := 0
	parenDepth := 0
	for !c.AtEnd() {
		switch c.Kind() {
		case token.LParen:
			parenDepth++
		case token.RParen:
			if parenDepth > 0 {
				parenDepth--
			}
		case token.Lt:
			if parenDepth == 0 {
				angleDepth++
			}
		case token.Gt:
			if parenDepth == 0 {
				angleDepth--
				if angleDepth == 0 {
					return c, containsArray
				}
			}
		case token.LBracket:
			if parenDepth == 0 && angleDepth == 1 {
				containsArray = true
			}
		}
		c = c.Next()
	}
	return c, containsArray
}

// SkipFunctionDecl advances from just after a function name to the end of
// the declaration: the terminating ';' of a prototype, or the matching '}'
// of a definition body. Returns the sentinel cursor on truncated input.
func SkipFunctionDecl(c Cursor) Cursor {
	for !c.AtEnd() {
		switch c.Kind() {
		case token.Semicolon:
			return c
		case token.LBrace:
			return SkipBraces(c)
		}
		c = c.Next()
	}
	return c
}
