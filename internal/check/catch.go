package check

import (
	"fmt"

	"flint/internal/diag"
	"flint/internal/scan"
	"flint/internal/token"
)

// checkCatchByValue flags catch clauses that catch a class type by value,
// which slices derived exceptions. Catch-all, pointer and reference
// clauses are exempt, as are builtin types.
func checkCatchByValue(ctx *Context) int {
	start := ctx.findings

	c := scan.NewCursor(ctx.Tokens)
	for !c.AtEnd() {
		if c.Kind() != token.KwCatch || c.PeekKind(1) != token.LParen {
			c = c.Next()
			continue
		}
		catchTok := c.Tok()
		args, end, ok := scan.ExtractArguments(c.Next())
		if !ok {
			break
		}
		c = end.Next()

		if len(args) != 1 {
			continue
		}
		if name, byValue := caughtByValue(args[0]); byValue {
			ctx.Report(diag.StyleCatchByValue, diag.SevWarning, catchTok.Span,
				fmt.Sprintf("'%s' caught by value; catch by (const) reference instead", name))
		}
	}

	return ctx.findings - start
}

// caughtByValue inspects one exception-declaration and returns the caught
// type name when it is a class type with no pointer or reference declarator.
func caughtByValue(a scan.Argument) (string, bool) {
	typeName := ""
	for _, t := range a.Toks {
		switch t.Kind {
		case token.Ellipsis, token.Amp, token.AmpAmp, token.Star:
			return "", false
		case token.KwConst, token.KwVolatile:
			// qualifiers do not decide anything
		case token.Ident:
			if typeName == "" {
				typeName = t.Text
			}
			// a second identifier is the parameter name
		case token.ColonColon:
			// qualified type, keep the terminal part
			typeName = ""
		default:
			if t.IsKeyword() {
				// builtin element type (int, char, long ...)
				return "", false
			}
		}
	}
	if typeName == "" {
		return "", false
	}
	return typeName, true
}
