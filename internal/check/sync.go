package check

import (
	"flint/internal/diag"
	"flint/internal/scan"
	"flint/internal/token"
)

type constructKind uint8

const (
	constructLoop constructKind = iota
	constructSwitch
	constructSync
)

type construct struct {
	kind  constructKind
	depth int
}

// synchronizedMacros are the lock-scope macro spellings whose blocks must
// not be left with break or continue: the jump skips the unlock.
var synchronizedMacros = map[string]bool{
	"SYNCHRONIZED":       true,
	"SYNCHRONIZED_CONST": true,
	"TIMED_SYNCHRONIZED": true,
	"UNSYNCHRONIZED":     true,
}

// checkBreakInSynchronized flags break and continue statements whose
// innermost enclosing construct is a SYNCHRONIZED block rather than a loop
// or switch.
func checkBreakInSynchronized(ctx *Context) int {
	start := ctx.findings

	var stack []construct
	pending := constructKind(0)
	hasPending := false
	parenDepth := 0

	innermost := func(includeSwitch bool) (constructKind, bool) {
		for i := len(stack) - 1; i >= 0; i-- {
			if stack[i].kind == constructSwitch && !includeSwitch {
				continue
			}
			return stack[i].kind, true
		}
		return 0, false
	}

	tr := scan.NewTracker(true)
	_ = tr.Walk(ctx.Cursor(), scan.Hooks{
		OnToken: func(c scan.Cursor, t *scan.Tracker) scan.Cursor {
			switch c.Kind() {
			case token.KwFor, token.KwWhile, token.KwDo:
				pending, hasPending = constructLoop, true

			case token.KwSwitch:
				pending, hasPending = constructSwitch, true

			case token.Ident:
				if synchronizedMacros[c.Text()] {
					pending, hasPending = constructSync, true
				}

			case token.LParen:
				parenDepth++

			case token.RParen:
				if parenDepth > 0 {
					parenDepth--
				}

			case token.Semicolon:
				// unbraced body ends before any '{'; the semicolons of a
				// for-header do not count
				if parenDepth == 0 {
					hasPending = false
				}

			case token.LBrace:
				if hasPending {
					stack = append(stack, construct{kind: pending, depth: t.BraceDepth() + 1})
					hasPending = false
				}

			case token.RBrace:
				if n := len(stack); n > 0 && stack[n-1].depth == t.BraceDepth() {
					stack = stack[:n-1]
				}

			case token.KwBreak:
				if k, ok := innermost(true); ok && k == constructSync {
					ctx.Report(diag.StyleBreakInSynchronized, diag.SevError, c.Span(),
						"break jumps out of a SYNCHRONIZED block, skipping the unlock")
				}

			case token.KwContinue:
				if k, ok := innermost(false); ok && k == constructSync {
					ctx.Report(diag.StyleBreakInSynchronized, diag.SevError, c.Span(),
						"continue jumps out of a SYNCHRONIZED block, skipping the unlock")
				}
			}
			return c
		},
	})

	return ctx.findings - start
}
