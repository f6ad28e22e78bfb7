package scan

import (
	"flint/internal/source"
	"flint/internal/token"
)

// Cursor is a forward-only position within a token sequence. Cursors are
// values: navigation returns new cursors and never mutates the underlying
// tokens.
type Cursor struct {
	toks []token.Token
	pos  int
}

// NewCursor creates a cursor at the start of toks. The sequence must end
// with an EOF token; if it does not (or is empty), a sentinel is appended
// so navigation can always terminate safely.
func NewCursor(toks []token.Token) Cursor {
	if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
		toks = append(toks[:len(toks):len(toks)], token.Token{Kind: token.EOF})
	}
	return Cursor{toks: toks, pos: 0}
}

// Tok returns the token under the cursor.
func (c Cursor) Tok() token.Token {
	return c.toks[c.pos]
}

// Kind returns the kind of the token under the cursor.
func (c Cursor) Kind() token.Kind {
	return c.toks[c.pos].Kind
}

// Text returns the text of the token under the cursor.
func (c Cursor) Text() string {
	return c.toks[c.pos].Text
}

// Span returns the span of the token under the cursor.
func (c Cursor) Span() source.Span {
	return c.toks[c.pos].Span
}

// AtEnd reports whether the cursor is at the EOF sentinel.
func (c Cursor) AtEnd() bool {
	return c.toks[c.pos].Kind == token.EOF
}

// Next returns a cursor advanced by one token, clamped at the sentinel.
func (c Cursor) Next() Cursor {
	if c.pos+1 < len(c.toks) {
		c.pos++
	}
	return c
}

// Pos returns the index of the cursor within the sequence.
func (c Cursor) Pos() int {
	return c.pos
}

// Slice returns the tokens in [from, c). Both cursors must come from the
// same sequence. The result borrows the underlying storage.
func (c Cursor) Slice(from Cursor) []token.Token {
	if from.pos > c.pos {
		return nil
	}
	return c.toks[from.pos:c.pos]
}

// PeekKind returns the kind n tokens ahead, clamped at the sentinel.
func (c Cursor) PeekKind(n int) token.Kind {
	p := c.pos + n
	if p >= len(c.toks) {
		p = len(c.toks) - 1
	}
	return c.toks[p].Kind
}
