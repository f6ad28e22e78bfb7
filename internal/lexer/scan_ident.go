package lexer

import (
	"flint/internal/token"
)

// scanIdentOrKeyword scans an identifier and classifies it via LookupKeyword.
// Keywords are case-sensitive. Token.Text is exactly the source slice.
// String/char literal prefixes (L"...", u8"...", R"(...)") are not folded in:
// the prefix lexes as an identifier and the literal follows on its own, which
// is a fine approximation for token-pattern checks.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	if !isIdentStartByte(lx.cursor.Peek()) {
		return lx.scanOperatorOrPunct()
	}
	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}
