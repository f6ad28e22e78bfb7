package check

import (
	"fmt"

	"flint/internal/diag"
	"flint/internal/scan"
	"flint/internal/token"
)

// checkVirtualDestructor flags classes that declare a virtual method but
// whose destructor is public and non-virtual (or missing, which is the
// same thing). A non-public destructor is exempt: such classes cannot be
// deleted through a base pointer from outside anyway.
func checkVirtualDestructor(ctx *Context) int {
	start := ctx.findings

	// set between a 'virtual' keyword and the end of its declaration
	pendingVirtual := false

	tr := scan.NewTracker(false)
	_ = tr.Walk(ctx.Cursor(), scan.Hooks{
		OnToken: func(c scan.Cursor, t *scan.Tracker) scan.Cursor {
			f := t.CurrentClass()
			if f == nil {
				pendingVirtual = false
				return c
			}
			switch c.Kind() {
			case token.KwVirtual:
				pendingVirtual = true
				f.SawVirtualMethod = true
			case token.Tilde:
				if c.PeekKind(1) == token.Ident && c.Next().Text() == f.Name && !f.SawDestructor {
					f.SawDestructor = true
					f.DestructorVirtual = pendingVirtual
					f.DestructorAccess = f.Access
				}
				pendingVirtual = false
			case token.Semicolon, token.LBrace, token.RBrace:
				pendingVirtual = false
			}
			return c
		},
		LeaveFrame: func(f *scan.Frame, _ scan.Cursor) {
			if !f.IsClassLike() || f.Ignore || !f.SawVirtualMethod {
				return
			}
			if f.SawDestructor {
				if f.DestructorVirtual || f.DestructorAccess != scan.AccessPublic {
					return
				}
			}
			ctx.Report(diag.StyleNonVirtualDestructor, diag.SevWarning, f.NameSpan,
				fmt.Sprintf("class '%s' has virtual functions but no virtual destructor", f.Name))
		},
	})

	return ctx.findings - start
}
