package check

import (
	"fmt"
	"strings"

	"flint/internal/diag"
	"flint/internal/scan"
)

// checkExceptionInheritance flags classes deriving non-publicly from an
// exception base. Slicing a privately inherited exception breaks catch
// clauses that expect the base type.
func checkExceptionInheritance(ctx *Context) int {
	start := ctx.findings

	tr := scan.NewTracker(false)
	_ = tr.Walk(ctx.Cursor(), scan.Hooks{
		EnterFrame: func(f *scan.Frame, _ scan.Cursor) {
			if !f.IsClassLike() || f.Ignore {
				return
			}
			for _, b := range f.Bases {
				if b.Terminal() != "exception" || b.Access == scan.AccessPublic {
					continue
				}
				ctx.Report(diag.StyleExceptionInheritance, diag.SevWarning, f.NameSpan,
					fmt.Sprintf("class '%s' inherits %s from exception type '%s'; inheritance should be public",
						f.Name, b.Access, strings.Join(b.Name, "::")))
			}
		},
	})

	return ctx.findings - start
}

// checkProtectedInheritance flags protected inheritance, which is almost
// always a misspelled private or public.
func checkProtectedInheritance(ctx *Context) int {
	start := ctx.findings

	tr := scan.NewTracker(false)
	_ = tr.Walk(ctx.Cursor(), scan.Hooks{
		EnterFrame: func(f *scan.Frame, _ scan.Cursor) {
			if !f.IsClassLike() || f.Ignore {
				return
			}
			for _, b := range f.Bases {
				if b.Access != scan.AccessProtected {
					continue
				}
				ctx.Report(diag.StyleProtectedInheritance, diag.SevWarning, f.NameSpan,
					fmt.Sprintf("class '%s' uses protected inheritance from '%s'",
						f.Name, strings.Join(b.Name, "::")))
			}
		},
	})

	return ctx.findings - start
}
