package check

import (
	"fmt"
	"strings"

	"flint/internal/diag"
	"flint/internal/source"
	"flint/internal/token"
)

// checkPreprocessorBalance verifies #if/#ifdef/#ifndef nesting. The first
// stray #endif or #else ends the scan so one real mistake does not cascade
// into a report per following directive.
func checkPreprocessorBalance(ctx *Context) int {
	start := ctx.findings

	var open []source.Span
	for _, t := range ctx.Tokens {
		switch t.Kind {
		case token.PpIf, token.PpIfdef, token.PpIfndef:
			open = append(open, t.Span)
		case token.PpElse, token.PpElif:
			if len(open) == 0 {
				ctx.Report(diag.PpDanglingElse, diag.SevError, t.Span,
					"#else with no matching #if")
				return ctx.findings - start
			}
		case token.PpEndif:
			if len(open) == 0 {
				ctx.Report(diag.PpUnbalancedConditional, diag.SevError, t.Span,
					"#endif with no matching #if")
				return ctx.findings - start
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) > 0 {
		last := ctx.Tokens[len(ctx.Tokens)-1]
		ctx.Report(diag.PpUnterminatedConditional, diag.SevError, last.Span,
			fmt.Sprintf("%d conditional(s) still open at end of file", len(open)),
			diag.Note{Span: open[len(open)-1], Msg: "last opened here"})
	}

	return ctx.findings - start
}

// checkIncludeGuard requires headers to carry #pragma once.
func checkIncludeGuard(ctx *Context) int {
	start := ctx.findings
	if len(ctx.Tokens) == 0 || ctx.Tokens[0].Kind == token.EOF {
		return 0
	}
	for i, t := range ctx.Tokens {
		if t.Kind != token.PpPragma {
			continue
		}
		if i+1 < len(ctx.Tokens) && ctx.Tokens[i+1].Text == "once" {
			return 0
		}
	}
	ctx.Report(diag.PpMissingIncludeGuard, diag.SevWarning, ctx.Tokens[0].Span,
		"header is missing #pragma once")
	return ctx.findings - start
}

// checkDeprecatedInclude reports includes of headers from the configured
// deprecation table.
func checkDeprecatedInclude(ctx *Context) int {
	start := ctx.findings
	if len(ctx.Config.DeprecatedIncludes) == 0 {
		return 0
	}

	for i, t := range ctx.Tokens {
		if t.Kind != token.PpInclude || i+1 >= len(ctx.Tokens) {
			continue
		}
		path := includePath(ctx.Tokens[i+1])
		if path == "" {
			continue
		}
		repl, bad := ctx.Config.DeprecatedIncludes[path]
		if !bad {
			continue
		}
		msg := fmt.Sprintf("included file '%s' is deprecated", path)
		if repl != "" {
			msg += fmt.Sprintf("; use '%s' instead", repl)
		}
		ctx.Report(diag.PpDeprecatedInclude, diag.SevAdvice, ctx.Tokens[i+1].Span, msg)
	}

	return ctx.findings - start
}

// includePath strips the <> or "" delimiters off an include operand.
func includePath(t token.Token) string {
	if t.Kind != token.StringLit || len(t.Text) < 2 {
		return ""
	}
	switch {
	case strings.HasPrefix(t.Text, "<") && strings.HasSuffix(t.Text, ">"),
		strings.HasPrefix(t.Text, "\"") && strings.HasSuffix(t.Text, "\""):
		return t.Text[1 : len(t.Text)-1]
	}
	return ""
}
