// Package check holds the lint check contract, the registry, and every
// check implementation. A check is a pure function over one file's token
// stream: it emits findings through the context's reporter and returns how
// many it emitted. Checks never return Go errors; when the token stream
// turns out to be unparseable a check stops early and keeps the findings
// it already made.
package check

import (
	"sort"

	"flint/internal/config"
	"flint/internal/diag"
	"flint/internal/fileclass"
	"flint/internal/scan"
	"flint/internal/source"
	"flint/internal/token"
)

// Context is the per-file input to a check run. One Context is shared by
// all checks over a file; the findings counter resets between checks.
type Context struct {
	File     *source.File
	Category fileclass.Category
	Tokens   []token.Token
	Config   config.Config
	Sink     diag.Reporter

	findings int
}

// Cursor returns a fresh cursor over the file's tokens.
func (ctx *Context) Cursor() scan.Cursor {
	return scan.NewCursor(ctx.Tokens)
}

// Report emits one finding and counts it.
func (ctx *Context) Report(code diag.Code, sev diag.Severity, sp source.Span, msg string, notes ...diag.Note) {
	ctx.findings++
	if ctx.Sink != nil {
		ctx.Sink.Report(code, sev, sp, msg, notes)
	}
}

// Check is one registered lint rule.
type Check struct {
	// Name is the stable identifier used in config and CLI output.
	Name string
	// Doc is a one-line description for `flint checks`.
	Doc string
	// Applies gates the check by file category.
	Applies func(fileclass.Category) bool
	// Run executes the check and returns the number of findings.
	Run func(ctx *Context) int
}

func anyFile(fileclass.Category) bool { return true }

func cppOnly(c fileclass.Category) bool { return c.IsCpp() }

func headersOnly(c fileclass.Category) bool { return c.IsHeader() }

// All is the closed registry, ordered by name.
var All = []Check{
	{
		Name:    "banned-identifier",
		Doc:     "calls to identifiers from the configured ban table",
		Applies: anyFile,
		Run:     checkBannedIdentifier,
	},
	{
		Name:    "break-in-synchronized",
		Doc:     "break or continue escaping a SYNCHRONIZED block",
		Applies: cppOnly,
		Run:     checkBreakInSynchronized,
	},
	{
		Name:    "catch-by-value",
		Doc:     "exceptions caught by value instead of by reference",
		Applies: cppOnly,
		Run:     checkCatchByValue,
	},
	{
		Name:    "deprecated-include",
		Doc:     "includes of headers from the configured deprecation table",
		Applies: anyFile,
		Run:     checkDeprecatedInclude,
	},
	{
		Name:    "exception-inheritance",
		Doc:     "non-public inheritance from an exception base",
		Applies: cppOnly,
		Run:     checkExceptionInheritance,
	},
	{
		Name:    "implicit-constructor",
		Doc:     "single-argument constructors not marked explicit",
		Applies: cppOnly,
		Run:     checkImplicitConstructor,
	},
	{
		Name:    "include-guard",
		Doc:     "headers missing #pragma once",
		Applies: headersOnly,
		Run:     checkIncludeGuard,
	},
	{
		Name:    "memset-zero-length",
		Doc:     "memset calls with a zero length and nonzero fill",
		Applies: anyFile,
		Run:     checkMemsetZeroLength,
	},
	{
		Name:    "namespace-scoped-static",
		Doc:     "file-scope statics in headers",
		Applies: headersOnly,
		Run:     checkNamespaceScopedStatic,
	},
	{
		Name:    "preprocessor-balance",
		Doc:     "unbalanced #if/#endif conditionals",
		Applies: anyFile,
		Run:     checkPreprocessorBalance,
	},
	{
		Name:    "protected-inheritance",
		Doc:     "protected inheritance",
		Applies: cppOnly,
		Run:     checkProtectedInheritance,
	},
	{
		Name:    "self-initialization",
		Doc:     "constructor initializer entries of the form x(x)",
		Applies: cppOnly,
		Run:     checkSelfInitialization,
	},
	{
		Name:    "throw-new",
		Doc:     "heap-allocated exceptions (throw new X)",
		Applies: cppOnly,
		Run:     checkThrowNew,
	},
	{
		Name:    "unnamed-mutex-holder",
		Doc:     "lock guard temporaries with no variable name",
		Applies: cppOnly,
		Run:     checkUnnamedGuard,
	},
	{
		Name:    "upcase-null",
		Doc:     "NULL where nullptr would do",
		Applies: cppOnly,
		Run:     checkUpcaseNull,
	},
	{
		Name:    "using-namespace-in-header",
		Doc:     "using namespace directives at header file scope",
		Applies: headersOnly,
		Run:     checkUsingNamespaceInHeader,
	},
	{
		Name:    "virtual-destructor",
		Doc:     "polymorphic classes without a virtual destructor",
		Applies: cppOnly,
		Run:     checkVirtualDestructor,
	},
}

// Lookup finds a registered check by name.
func Lookup(name string) (Check, bool) {
	for _, c := range All {
		if c.Name == name {
			return c, true
		}
	}
	return Check{}, false
}

// Names returns the sorted names of all registered checks.
func Names() []string {
	names := make([]string, len(All))
	for i, c := range All {
		names[i] = c.Name
	}
	sort.Strings(names)
	return names
}

// RunAll runs every enabled, applicable check over the context and returns
// the total finding count.
func RunAll(ctx *Context) int {
	total := 0
	for _, c := range All {
		if !ctx.Config.Enabled(c.Name) || !c.Applies(ctx.Category) {
			continue
		}
		total += c.Run(ctx)
	}
	return total
}
