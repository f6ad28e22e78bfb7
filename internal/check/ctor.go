package check

import (
	"fmt"
	"strings"

	"flint/internal/diag"
	"flint/internal/scan"
	"flint/internal/token"
)

// checkImplicitConstructor flags constructors callable with exactly one
// argument that are not marked explicit. Copy and move constructors are
// exempt, as are initializer_list constructors and constructors carrying
// an "implicit" marker in their leading comment.
func checkImplicitConstructor(ctx *Context) int {
	start := ctx.findings

	sawExplicit := false
	prev := token.Invalid

	tr := scan.NewTracker(false)
	_ = tr.Walk(ctx.Cursor(), scan.Hooks{
		OnToken: func(c scan.Cursor, t *scan.Tracker) scan.Cursor {
			k := c.Kind()
			defer func() { prev = k }()

			switch k {
			case token.KwExplicit:
				sawExplicit = true
				return c
			case token.Semicolon, token.LBrace, token.RBrace:
				sawExplicit = false
				return c
			}

			f := t.CurrentClass()
			if f == nil || f.Ignore || f.Name == "" {
				return c
			}
			if k != token.Ident || c.Text() != f.Name || c.PeekKind(1) != token.LParen {
				return c
			}
			// "~Foo(" is the destructor, "Foo::" qualified uses and "new
			// Foo(" expressions are not declarations of this class's ctor.
			if prev == token.Tilde || prev == token.ColonColon || prev == token.KwNew {
				return c
			}

			nameTok := c.Tok()
			args, end, ok := scan.ExtractArguments(c.Next())
			if !ok {
				return end // sentinel, stops the walk
			}
			if convertingConstructor(f.Name, args) &&
				!sawExplicit &&
				!nameTok.HasLeadingComment("implicit") {
				ctx.Report(diag.StyleImplicitConstructor, diag.SevError, nameTok.Span,
					fmt.Sprintf("constructor '%s' callable with one argument should be marked explicit",
						ctorSignature(f.Name, args)))
			}
			sawExplicit = false
			return end
		},
	})

	return ctx.findings - start
}

// ctorSignature renders the declaration roughly as written, for the report.
func ctorSignature(name string, args []scan.Argument) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Text()
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(parts, ", "))
}

// convertingConstructor reports whether an argument list makes the
// constructor invocable with exactly one argument of a foreign type.
func convertingConstructor(className string, args []scan.Argument) bool {
	if len(args) == 0 {
		return false
	}

	// Count arguments without a default; more than one required argument
	// means no single-argument call is possible.
	required := 0
	for _, a := range args {
		if !hasTopLevelAssign(a) {
			required++
		}
	}
	if required > 1 {
		return false
	}

	first := args[0]
	if argMentions(first, className) && argIsReference(first) {
		return false // copy or move constructor
	}
	if argMentions(first, "initializer_list") {
		return false
	}
	return true
}

func hasTopLevelAssign(a scan.Argument) bool {
	depth := 0
	for _, t := range a.Toks {
		switch t.Kind {
		case token.LParen, token.LBrace, token.LBracket:
			depth++
		case token.RParen, token.RBrace, token.RBracket:
			depth--
		case token.Assign:
			if depth == 0 {
				return true
			}
		}
	}
	return false
}

func argMentions(a scan.Argument, name string) bool {
	for _, t := range a.Toks {
		if t.Kind == token.Ident && t.Text == name {
			return true
		}
	}
	return false
}

func argIsReference(a scan.Argument) bool {
	for _, t := range a.Toks {
		if t.Kind == token.Amp || t.Kind == token.AmpAmp {
			return true
		}
	}
	return false
}
