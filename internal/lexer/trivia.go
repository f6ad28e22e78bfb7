package lexer

import (
	"flint/internal/diag"
	"flint/internal/token"
)

// collectLeadingTrivia gathers consecutive trivia before a significant token.
//   - runs of ' ' and '\t' coalesce into one TriviaSpace
//   - consecutive '\n' coalesce into one TriviaNewline
//   - a backslash-newline line splice counts as space
//   - //... to end of line -> TriviaLineComment
//   - /* ... */ -> TriviaBlockComment (C++ block comments do not nest;
//     unterminated -> report and cut at EOF)
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		// spaces/tabs/line splices
		if b == ' ' || b == '\t' || lx.atLineSplice() {
			for {
				b2 := lx.cursor.Peek()
				if b2 == ' ' || b2 == '\t' {
					lx.cursor.Bump()
					continue
				}
				if lx.atLineSplice() {
					lx.cursor.Bump()
					lx.cursor.Bump()
					continue
				}
				break
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaSpace,
				Span: sp,
				Text: lx.text(sp),
			})
			continue
		}

		// newlines (coalesce a run)
		if b == '\n' {
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaNewline,
				Span: sp,
				Text: lx.text(sp),
			})
			continue
		}

		// stray carriage returns survive CRLF normalization as lone \r
		if b == '\r' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaSpace,
				Span: sp,
				Text: lx.text(sp),
			})
			continue
		}

		// comments
		if b == '/' {
			if lx.scanCommentIntoHold() {
				continue
			}
		}

		// no more trivia
		break
	}
}

func (lx *Lexer) atLineSplice() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == '\\' && b1 == '\n'
}

// scanCommentIntoHold handles "//..." and "/*...*/".
func (lx *Lexer) scanCommentIntoHold() bool {
	start := lx.cursor.Mark()
	if !lx.cursor.Eat('/') {
		return false
	}
	b := lx.cursor.Peek()
	switch b {
	case '/': // line comment
		lx.cursor.Bump()
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.hold = append(lx.hold, token.Trivia{
			Kind: token.TriviaLineComment,
			Span: sp,
			Text: lx.text(sp),
		})
		return true

	case '*': // block comment, no nesting in C++
		lx.cursor.Bump()
		closed := false
		for !lx.cursor.EOF() {
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				closed = true
				break
			}
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		if !closed {
			lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
		}
		lx.hold = append(lx.hold, token.Trivia{
			Kind: token.TriviaBlockComment,
			Span: sp,
			Text: lx.text(sp),
		})
		return true

	default:
		// a lone '/' is an operator; rewind
		lx.cursor.Reset(start)
		return false
	}
}
