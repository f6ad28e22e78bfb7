package check

import (
	"fmt"

	"flint/internal/diag"
	"flint/internal/token"
)

// checkSelfInitialization flags constructor initializer entries of the
// form x(x): the member is initialized from its own indeterminate value.
// The pattern is anchored on the surrounding list punctuation so ordinary
// calls like f(f) in argument position are not matched.
func checkSelfInitialization(ctx *Context) int {
	start := ctx.findings

	toks := ctx.Tokens
	for i := 0; i+4 < len(toks); i++ {
		if toks[i].Kind != token.Colon && toks[i].Kind != token.Comma {
			continue
		}
		if toks[i+1].Kind != token.Ident ||
			toks[i+2].Kind != token.LParen ||
			toks[i+3].Kind != token.Ident ||
			toks[i+4].Kind != token.RParen {
			continue
		}
		if toks[i+1].Text != toks[i+3].Text {
			continue
		}
		// an initializer entry is followed by another entry or the body
		if i+5 >= len(toks) {
			continue
		}
		switch toks[i+5].Kind {
		case token.Comma, token.LBrace:
			ctx.Report(diag.StyleSelfInitialization, diag.SevError, toks[i+1].Span,
				fmt.Sprintf("member '%s' is initialized from itself", toks[i+1].Text))
		}
	}

	return ctx.findings - start
}

// checkThrowNew flags "throw new X": the handler would have to know to
// delete the pointer, and nobody's handlers do.
func checkThrowNew(ctx *Context) int {
	start := ctx.findings

	toks := ctx.Tokens
	for i := 0; i+1 < len(toks); i++ {
		if toks[i].Kind == token.KwThrow && toks[i+1].Kind == token.KwNew {
			ctx.Report(diag.StyleThrowNew, diag.SevWarning, toks[i].Span,
				"heap-allocated exception; throw by value instead")
		}
	}

	return ctx.findings - start
}

// checkUpcaseNull suggests nullptr over NULL.
func checkUpcaseNull(ctx *Context) int {
	start := ctx.findings

	for _, t := range ctx.Tokens {
		if t.Kind == token.Ident && t.Text == "NULL" {
			ctx.Report(diag.StyleUpcaseNull, diag.SevAdvice, t.Span,
				"prefer nullptr over NULL")
		}
	}

	return ctx.findings - start
}
