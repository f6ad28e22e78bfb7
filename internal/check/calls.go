package check

import (
	"fmt"

	"flint/internal/diag"
	"flint/internal/scan"
	"flint/internal/token"
)

// checkMemsetZeroLength flags memset calls whose length argument is the
// literal 0 while the fill value is not: almost always the two trailing
// arguments swapped.
func checkMemsetZeroLength(ctx *Context) int {
	start := ctx.findings

	c := scan.NewCursor(ctx.Tokens)
	for !c.AtEnd() {
		if c.Kind() != token.Ident || c.Text() != "memset" || c.PeekKind(1) != token.LParen {
			c = c.Next()
			continue
		}
		nameTok := c.Tok()
		args, end, ok := scan.ExtractArguments(c.Next())
		if !ok {
			break
		}
		c = end.Next()

		if len(args) != 3 {
			continue
		}
		if isLiteralZero(args[2]) && !isLiteralZero(args[1]) {
			ctx.Report(diag.StyleMemsetZeroLength, diag.SevWarning, nameTok.Span,
				fmt.Sprintf("memset fills zero bytes; did you mean memset(%s, %s, %s)?",
					args[0].Text(), args[2].Text(), args[1].Text()))
		}
	}

	return ctx.findings - start
}

func isLiteralZero(a scan.Argument) bool {
	return len(a.Toks) == 1 && a.Toks[0].Kind == token.IntLit && a.Toks[0].Text == "0"
}

// checkBannedIdentifier flags calls to identifiers from the configured ban
// table. Member accesses (x.open, p->open) are left alone: only the free
// function spelling is banned.
func checkBannedIdentifier(ctx *Context) int {
	start := ctx.findings
	if len(ctx.Config.Banned) == 0 {
		return 0
	}

	prev := token.Invalid
	c := scan.NewCursor(ctx.Tokens)
	for !c.AtEnd() {
		k := c.Kind()
		if k != token.Ident || c.PeekKind(1) != token.LParen {
			prev = k
			c = c.Next()
			continue
		}
		repl, banned := ctx.Config.Banned[c.Text()]
		if !banned || prev == token.Dot || prev == token.Arrow {
			prev = k
			c = c.Next()
			continue
		}
		msg := fmt.Sprintf("'%s' is banned", c.Text())
		if repl != "" {
			msg += fmt.Sprintf("; use '%s' instead", repl)
		}
		ctx.Report(diag.StyleBannedIdentifier, diag.SevError, c.Span(), msg)
		prev = k
		c = c.Next()
	}

	return ctx.findings - start
}

// lockGuardTypes are the RAII lock holders that are useless as unnamed
// temporaries: the lock is released at the end of the full expression.
var lockGuardTypes = map[string]bool{
	"lock_guard":  true,
	"unique_lock": true,
	"scoped_lock": true,
	"shared_lock": true,
}

// checkUnnamedGuard flags lock-holder temporaries declared without a
// variable name, e.g. "std::lock_guard<std::mutex>(m);".
func checkUnnamedGuard(ctx *Context) int {
	start := ctx.findings

	c := scan.NewCursor(ctx.Tokens)
	for !c.AtEnd() {
		if c.Kind() != token.Ident || !lockGuardTypes[c.Text()] {
			c = c.Next()
			continue
		}
		nameTok := c.Tok()
		after := c.Next()
		if after.Kind() == token.Lt {
			end, _ := scan.SkipTemplateArgs(after)
			if end.AtEnd() {
				break
			}
			after = end.Next()
		}
		if after.Kind() != token.LParen {
			c = after
			continue
		}
		ctx.Report(diag.StyleUnnamedGuard, diag.SevError, nameTok.Span,
			fmt.Sprintf("unnamed %s temporary releases the lock immediately; give it a name", nameTok.Text))
		c = after
	}

	return ctx.findings - start
}
