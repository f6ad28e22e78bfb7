package scan

import (
	"strings"

	"flint/internal/token"
)

// Argument is one contiguous, borrowed sub-range of tokens: a single call
// argument or a function-name run. It never owns storage independently.
type Argument struct {
	Toks []token.Token
}

// Empty reports whether the argument holds no tokens.
func (a Argument) Empty() bool { return len(a.Toks) == 0 }

// First returns the first token of the argument; zero Token when empty.
func (a Argument) First() token.Token {
	if len(a.Toks) == 0 {
		return token.Token{}
	}
	return a.Toks[0]
}

// Text renders the argument roughly as it appeared in source.
func (a Argument) Text() string {
	return FormatTokens(a.Toks)
}

// FormatTokens joins token texts with minimal spacing, for diagnostics.
func FormatTokens(toks []token.Token) string {
	var b strings.Builder
	for i, t := range toks {
		if i > 0 && needSpace(toks[i-1].Kind, t.Kind) {
			b.WriteByte(' ')
		}
		b.WriteString(t.Text)
	}
	return b.String()
}

func needSpace(prev, next token.Kind) bool {
	switch prev {
	case token.LParen, token.LBracket, token.ColonColon, token.Tilde, token.Lt:
		return false
	}
	switch next {
	case token.RParen, token.RBracket, token.ColonColon, token.Comma,
		token.Semicolon, token.Lt, token.Gt, token.LParen:
		return false
	}
	return true
}

// ExtractArguments decomposes "(args...)" starting at an opening paren into
// argument spans, splitting only on top-level commas. "()" yields zero
// arguments. A '<' delegates to SkipTemplateArgs, accepting the heuristic
// risk that a comparison operator causes an over-skip.
//
// Returns the spans, the cursor at the matching ')', and ok=false when the
// scan ran off the end of the stream; the caller must then abandon
// analysis of this construct, not the whole file.
func ExtractArguments(c Cursor) ([]Argument, Cursor, bool) {
	if c.Kind() != token.LParen {
		return nil, c, false
	}
	depth := 1
	c = c.Next()
	argStart := c

	var args []Argument
	for !c.AtEnd() {
		switch c.Kind() {
		case token.Lt:
			end, _ := SkipTemplateArgs(c)
			if end.AtEnd() {
				return args, end, false
			}
			c = end

		case token.LParen:
			depth++

		case token.RParen:
			depth--
			if depth == 0 {
				span := c.Slice(argStart)
				if len(span) > 0 || len(args) > 0 {
					args = append(args, Argument{Toks: span})
				}
				return args, c, true
			}

		case token.Comma:
			if depth == 1 {
				args = append(args, Argument{Toks: c.Slice(argStart)})
				argStart = c.Next()
			}
		}
		c = c.Next()
	}
	return args, c, false
}

// ExtractNameAndArguments reads a possibly qualified, possibly templated
// function name starting at an identifier, then its argument list:
// "ns::f<T>(a, b)". Returns the name span, the argument spans, the cursor
// at the closing ')', and ok=false when the shape does not match or the
// stream ends early.
func ExtractNameAndArguments(c Cursor) (name Argument, args []Argument, end Cursor, ok bool) {
	if c.Kind() != token.Ident {
		return Argument{}, nil, c, false
	}
	nameStart := c

	for {
		// identifier just consumed position: advance past it
		c = c.Next()
		if c.Kind() == token.Lt {
			tEnd, _ := SkipTemplateArgs(c)
			if tEnd.AtEnd() {
				return Argument{}, nil, tEnd, false
			}
			c = tEnd.Next()
		}
		if c.Kind() == token.ColonColon && c.PeekKind(1) == token.Ident {
			c = c.Next()
			continue
		}
		break
	}

	if c.Kind() != token.LParen {
		return Argument{}, nil, c, false
	}
	name = Argument{Toks: c.Slice(nameStart)}

	args, end, ok = ExtractArguments(c)
	return name, args, end, ok
}
