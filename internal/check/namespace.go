package check

import (
	"fmt"
	"strings"

	"flint/internal/diag"
	"flint/internal/scan"
	"flint/internal/token"
)

// checkUsingNamespaceInHeader flags using-directives at file scope in a
// header, where they leak into every including translation unit.
func checkUsingNamespaceInHeader(ctx *Context) int {
	start := ctx.findings

	tr := scan.NewTracker(false)
	_ = tr.Walk(ctx.Cursor(), scan.Hooks{
		OnToken: func(c scan.Cursor, t *scan.Tracker) scan.Cursor {
			if c.Kind() != token.KwUsing || c.PeekKind(1) != token.KwNamespace {
				return c
			}
			if !t.AtFileScope() {
				return c
			}
			using := c
			parts, after := scan.ReadQualifiedName(c.Next().Next())
			ctx.Report(diag.StyleUsingNamespaceHeader, diag.SevError, using.Span(),
				fmt.Sprintf("using namespace %s directive in a header", strings.Join(parts, "::")))
			return after
		},
	})

	return ctx.findings - start
}

// checkNamespaceScopedStatic flags file-scope statics in headers: every
// including translation unit gets its own copy.
func checkNamespaceScopedStatic(ctx *Context) int {
	start := ctx.findings

	tr := scan.NewTracker(false)
	_ = tr.Walk(ctx.Cursor(), scan.Hooks{
		OnToken: func(c scan.Cursor, t *scan.Tracker) scan.Cursor {
			if c.Kind() != token.KwStatic {
				return c
			}
			if f := t.Current(); f != nil && f.Kind != scan.FrameNamespace {
				return c // class member static, fine
			}
			ctx.Report(diag.StyleNamespaceScopedStatic, diag.SevWarning, c.Span(),
				"namespace-scoped static in a header gives every translation unit its own copy")
			return c
		},
	})

	return ctx.findings - start
}
