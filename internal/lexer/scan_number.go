package lexer

import (
	"flint/internal/diag"
	"flint/internal/token"
)

// scanNumber handles C++ numeric literals: decimal, octal (leading 0),
// hex (0x), binary (0b), digit separators ('), floats with fraction and
// exponent, and trailing [uUlLfF] suffix runs. The suffix stays in
// Token.Text; Kind is IntLit or FloatLit by shape.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	// leading dot: ".digits" form
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		if !isDec(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadNumber, sp, "expected digit after '.'")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		kind = token.FloatLit
		lx.eatDigits(isDec)
		return lx.finishNumber(start, kind)
	}

	if lx.cursor.Peek() == '0' {
		lx.cursor.Bump()
		switch lx.cursor.Peek() {
		case 'x', 'X':
			lx.cursor.Bump()
			if !isHex(lx.cursor.Peek()) {
				sp := lx.cursor.SpanFrom(start)
				lx.errLex(diag.LexBadNumber, sp, "expected hex digit after 0x")
				return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
			}
			lx.eatDigits(isHex)
			return lx.finishNumber(start, kind)
		case 'b', 'B':
			lx.cursor.Bump()
			lx.eatDigits(func(b byte) bool { return b == '0' || b == '1' })
			return lx.finishNumber(start, kind)
		default:
			// octal or plain zero; may still turn into a float below
			lx.eatDigits(isOct)
		}
	} else {
		lx.eatDigits(isDec)
	}

	// fraction
	if lx.cursor.Peek() == '.' {
		b0, b1, ok := lx.cursor.Peek2()
		if ok && b0 == '.' && b1 == '.' {
			// "..." is an ellipsis, not part of the number
		} else {
			lx.cursor.Bump()
			kind = token.FloatLit
			lx.eatDigits(isDec)
		}
	}

	// exponent
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		if _, b1, ok := lx.cursor.Peek2(); ok && (b1 == '+' || b1 == '-' || isDec(b1)) {
			kind = token.FloatLit
			lx.cursor.Bump()
			if p := lx.cursor.Peek(); p == '+' || p == '-' {
				lx.cursor.Bump()
			}
			lx.eatDigits(isDec)
		}
	}

	return lx.finishNumber(start, kind)
}

// eatDigits consumes digits in the given class plus ' separators between them.
func (lx *Lexer) eatDigits(class func(byte) bool) {
	for {
		b := lx.cursor.Peek()
		if class(b) {
			lx.cursor.Bump()
			continue
		}
		if b == '\'' {
			if _, b1, ok := lx.cursor.Peek2(); ok && class(b1) {
				lx.cursor.Bump()
				lx.cursor.Bump()
				continue
			}
		}
		return
	}
}

// finishNumber consumes the literal suffix and emits the token.
func (lx *Lexer) finishNumber(start Mark, kind token.Kind) token.Token {
	for {
		switch lx.cursor.Peek() {
		case 'u', 'U', 'l', 'L':
			lx.cursor.Bump()
		case 'f', 'F':
			kind = token.FloatLit
			lx.cursor.Bump()
		default:
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
		}
	}
}
