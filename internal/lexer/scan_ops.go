package lexer

import (
	"flint/internal/diag"
	"flint/internal/token"
)

// scanOperatorOrPunct scans punctuation greedily: 3-byte sequences first,
// then 2-byte, then single bytes.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
	}

	switch {
	case lx.try3('<', '<', '='):
		return emit(token.ShlAssign)
	case lx.try3('>', '>', '='):
		return emit(token.ShrAssign)
	case lx.try3('-', '>', '*'):
		return emit(token.ArrowStar)
	case lx.try3('.', '.', '.'):
		return emit(token.Ellipsis)
	case lx.try2(':', ':'):
		return emit(token.ColonColon)
	case lx.try2('-', '>'):
		return emit(token.Arrow)
	case lx.try2('+', '+'):
		return emit(token.PlusPlus)
	case lx.try2('-', '-'):
		return emit(token.MinusMinus)
	case lx.try2('<', '<'):
		return emit(token.Shl)
	case lx.try2('>', '>'):
		return emit(token.Shr)
	case lx.try2('<', '='):
		return emit(token.LtEq)
	case lx.try2('>', '='):
		return emit(token.GtEq)
	case lx.try2('=', '='):
		return emit(token.EqEq)
	case lx.try2('!', '='):
		return emit(token.BangEq)
	case lx.try2('+', '='):
		return emit(token.PlusAssign)
	case lx.try2('-', '='):
		return emit(token.MinusAssign)
	case lx.try2('*', '='):
		return emit(token.StarAssign)
	case lx.try2('/', '='):
		return emit(token.SlashAssign)
	case lx.try2('%', '='):
		return emit(token.PercentAssign)
	case lx.try2('&', '='):
		return emit(token.AmpAssign)
	case lx.try2('|', '='):
		return emit(token.PipeAssign)
	case lx.try2('^', '='):
		return emit(token.CaretAssign)
	case lx.try2('&', '&'):
		return emit(token.AmpAmp)
	case lx.try2('|', '|'):
		return emit(token.PipePipe)
	case lx.try2('.', '*'):
		return emit(token.DotStar)
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	case ';':
		return emit(token.Semicolon)
	case ',':
		return emit(token.Comma)
	case '?':
		return emit(token.Question)
	case ':':
		return emit(token.Colon)
	case '.':
		return emit(token.Dot)
	case '~':
		return emit(token.Tilde)
	case '!':
		return emit(token.Bang)
	case '=':
		return emit(token.Assign)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '*':
		return emit(token.Star)
	case '/':
		return emit(token.Slash)
	case '%':
		return emit(token.Percent)
	case '&':
		return emit(token.Amp)
	case '|':
		return emit(token.Pipe)
	case '^':
		return emit(token.Caret)
	default:
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, "unknown character")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
}

// scanHashOrDirective handles '#'. A '#' followed (possibly after spaces) by
// a known directive word becomes one Pp* token spanning "#...word"; otherwise
// it is a bare Hash (or HashHash) token.
func (lx *Lexer) scanHashOrDirective() token.Token {
	start := lx.cursor.Mark()

	if lx.try2('#', '#') {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.HashHash, Span: sp, Text: lx.text(sp)}
	}

	lx.cursor.Bump() // '#'

	// lookahead past spaces/tabs to the directive word
	probe := lx.cursor
	for probe.Peek() == ' ' || probe.Peek() == '\t' {
		probe.Bump()
	}
	wordStart := probe.Mark()
	for isIdentContinueByte(probe.Peek()) {
		probe.Bump()
	}
	word := lx.text(probe.SpanFrom(wordStart))

	if k, ok := token.LookupDirective(word); ok {
		lx.cursor = probe
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Hash, Span: sp, Text: lx.text(sp)}
}
