package check

import (
	"strings"
	"testing"

	"flint/internal/config"
	"flint/internal/diag"
	"flint/internal/fileclass"
	"flint/internal/lexer"
	"flint/internal/source"
	"flint/internal/token"
)

func contextFor(t *testing.T, path, src string, cfg config.Config) (*Context, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual(path, []byte(src))
	file := fs.Get(id)
	toks := lexer.New(file, lexer.Options{}).ScanAll()

	bag := diag.NewBag(0)
	return &Context{
		File:     file,
		Category: fileclass.Classify(path),
		Tokens:   toks,
		Config:   cfg,
		Sink:     diag.BagReporter{Bag: bag},
	}, bag
}

func runCheck(t *testing.T, name, path, src string) (int, *diag.Bag) {
	t.Helper()
	return runCheckCfg(t, name, path, src, config.Default())
}

func runCheckCfg(t *testing.T, name, path, src string, cfg config.Config) (int, *diag.Bag) {
	t.Helper()
	c, ok := Lookup(name)
	if !ok {
		t.Fatalf("no such check %q", name)
	}
	ctx, bag := contextFor(t, path, src, cfg)
	return c.Run(ctx), bag
}

func wantFindings(t *testing.T, name, path, src string, want int) {
	t.Helper()
	got, bag := runCheck(t, name, path, src)
	if got != want {
		t.Errorf("%s on %q: %d findings, want %d\n%v", name, src, got, want, bag.Items())
	}
}

func TestImplicitConstructor(t *testing.T) {
	tests := []struct {
		src  string
		want int
	}{
		{"class Foo { Foo(int x); };", 1},
		{"class Foo { explicit Foo(int x); };", 0},
		{"class Foo { Foo(const Foo&); };", 0},
		{"class Foo { Foo(Foo&& other); };", 0},
		{"class Foo { Foo(int x, int y = 0); };", 1},
		{"class Foo { Foo(int x, int y); };", 0},
		{"class Foo { Foo(); };", 0},
		{"class Foo { /* implicit */ Foo(int x); };", 0},
		{"class Foo { Foo(std::initializer_list<int> xs); };", 0},
		{"class Foo { public: Foo(int x) : x_(x) {} int x_; };", 1},
		{"struct Bar { Bar(double d); };", 1},
		{"class Foo { void Foo2(int x); };", 0},
		// a qualified out-of-line definition is not a declaration site
		{"class Foo { }; Foo::Foo(int x) { }", 0},
	}
	for _, tt := range tests {
		wantFindings(t, "implicit-constructor", "test.cpp", tt.src, tt.want)
	}
}

func TestImplicitConstructorSeverity(t *testing.T) {
	_, bag := runCheck(t, "implicit-constructor", "test.cpp", "class Foo { Foo(int x); };")
	items := bag.Items()
	if len(items) != 1 || items[0].Severity != diag.SevError {
		t.Fatalf("items = %v", items)
	}
	if items[0].Code != diag.StyleImplicitConstructor {
		t.Errorf("code = %v", items[0].Code)
	}
}

func TestVirtualDestructor(t *testing.T) {
	tests := []struct {
		src  string
		want int
	}{
		{"class Base { public: virtual void f(); };", 1},
		{"class Base { public: virtual void f(); virtual ~Base(); };", 0},
		{"class Base { public: virtual void f(); protected: ~Base(); };", 0},
		{"class Base { public: void f(); };", 0},
		{"class Base { public: virtual void f(); ~Base(); };", 1},
		{"struct A { virtual void f(); }; struct B { virtual void g(); virtual ~B(); };", 1},
		{"class Out { public: virtual void f(); class In { public: virtual void g(); virtual ~In(); }; };", 1},
	}
	for _, tt := range tests {
		wantFindings(t, "virtual-destructor", "test.cpp", tt.src, tt.want)
	}
}

func TestVirtualDestructorSeverity(t *testing.T) {
	_, bag := runCheck(t, "virtual-destructor", "test.cpp",
		"class Base { public: virtual void f(); };")
	items := bag.Items()
	if len(items) != 1 || items[0].Severity != diag.SevWarning {
		t.Fatalf("items = %v", items)
	}
}

func TestPreprocessorBalance(t *testing.T) {
	tests := []struct {
		src  string
		want int
	}{
		{"#if A\n#endif\n", 0},
		{"#if A\n#else\n#endif\n", 0},
		{"#ifdef A\n#ifndef B\n#endif\n#endif\n", 0},
		// the first stray #endif stops the scan; no cascade
		{"#if A\n#endif\n#endif\n#endif\n", 1},
		{"#else\n", 1},
		{"#if A\n", 1},
		{"#if A\n#if B\n#endif\n", 1},
	}
	for _, tt := range tests {
		wantFindings(t, "preprocessor-balance", "test.cpp", tt.src, tt.want)
	}
}

func TestPreprocessorBalanceStopsAtFirstStray(t *testing.T) {
	_, bag := runCheck(t, "preprocessor-balance", "test.cpp", "#endif\n#endif\n")
	items := bag.Items()
	if len(items) != 1 {
		t.Fatalf("items = %v", items)
	}
	if items[0].Code != diag.PpUnbalancedConditional || items[0].Severity != diag.SevError {
		t.Errorf("item = %+v", items[0])
	}
}

func TestIncludeGuard(t *testing.T) {
	wantFindings(t, "include-guard", "test.h", "int x;\n", 1)
	wantFindings(t, "include-guard", "test.h", "#pragma once\nint x;\n", 0)
	wantFindings(t, "include-guard", "test.h", "", 0)
	wantFindings(t, "include-guard", "widget-inl.h", "inline int f() { return 1; }\n", 1)
}

func TestExceptionInheritance(t *testing.T) {
	tests := []struct {
		src  string
		want int
	}{
		{"class E : std::exception {};", 1}, // class defaults to private
		{"class E : public std::exception {};", 0},
		{"class E : private std::exception {};", 1},
		{"struct E : std::exception {};", 0}, // struct defaults to public
		{"class E : public Base, private std::exception {};", 1},
		{"class E : private Base {};", 0},
	}
	for _, tt := range tests {
		wantFindings(t, "exception-inheritance", "test.cpp", tt.src, tt.want)
	}
}

func TestProtectedInheritance(t *testing.T) {
	wantFindings(t, "protected-inheritance", "test.cpp", "class X : protected Y {};", 1)
	wantFindings(t, "protected-inheritance", "test.cpp", "class X : public Y {};", 0)
	wantFindings(t, "protected-inheritance", "test.cpp", "class X : private Y {};", 0)
}

func TestUsingNamespaceInHeader(t *testing.T) {
	wantFindings(t, "using-namespace-in-header", "test.h", "using namespace std;\n", 1)
	wantFindings(t, "using-namespace-in-header", "test.h", "using std::vector;\n", 0)
	wantFindings(t, "using-namespace-in-header", "test.h",
		"namespace impl { using namespace std; }\n", 0)
}

func TestNamespaceScopedStatic(t *testing.T) {
	tests := []struct {
		src  string
		want int
	}{
		{"static int x = 1;\n", 1},
		{"namespace n { static int y; }\n", 1},
		{"class C { static int x; };\n", 0},
		{"inline int f() { static int once; return once; }\n", 0},
		{"int x;\n", 0},
	}
	for _, tt := range tests {
		wantFindings(t, "namespace-scoped-static", "test.h", tt.src, tt.want)
	}
}

func TestBreakInSynchronized(t *testing.T) {
	tests := []struct {
		src  string
		want int
	}{
		{"void f() { SYNCHRONIZED (m) { if (x) break; } }", 1},
		{"void f() { SYNCHRONIZED (m) { for (;;) { break; } } }", 0},
		{"void f() { while (1) { SYNCHRONIZED (m) { continue; } } }", 1},
		{"void f() { while (1) { SYNCHRONIZED (m) { } break; } }", 0},
		{"void f() { SYNCHRONIZED (m) { switch (x) { default: break; } } }", 0},
		// continue searches past the switch to the synchronized block
		{"void f() { SYNCHRONIZED (m) { switch (x) { default: continue; } } }", 1},
		{"void f() { for (;;) { break; } }", 0},
	}
	for _, tt := range tests {
		wantFindings(t, "break-in-synchronized", "test.cpp", tt.src, tt.want)
	}
}

func TestCatchByValue(t *testing.T) {
	tests := []struct {
		src  string
		want int
	}{
		{"void f() { try { } catch (Exception e) { } }", 1},
		{"void f() { try { } catch (const Exception& e) { } }", 0},
		{"void f() { try { } catch (Exception* e) { } }", 0},
		{"void f() { try { } catch (...) { } }", 0},
		{"void f() { try { } catch (int e) { } }", 0},
		{"void f() { try { } catch (std::exception e) { } }", 1},
		{"void f() { try { } catch (const Exception e) { } }", 1},
	}
	for _, tt := range tests {
		wantFindings(t, "catch-by-value", "test.cpp", tt.src, tt.want)
	}
}

func TestMemsetZeroLength(t *testing.T) {
	tests := []struct {
		src  string
		want int
	}{
		{"void f() { memset(p, 1, 0); }", 1},
		{"void f() { memset(p, 0, 10); }", 0},
		{"void f() { memset(p, 0, 0); }", 0},
		{"void f() { memset(p, 0xFF, sizeof(buf)); }", 0},
		{"void f() { memset(p, 1); }", 0}, // not the 3-arg form
	}
	for _, tt := range tests {
		wantFindings(t, "memset-zero-length", "test.cpp", tt.src, tt.want)
	}
}

func TestSelfInitialization(t *testing.T) {
	tests := []struct {
		src  string
		want int
	}{
		{"Foo::Foo() : x(x) {}", 1},
		{"Foo::Foo(int x) : x_(x) {}", 0},
		{"Foo::Foo() : a(a), b(b) {}", 2},
		{"void g() { f(f); }", 0},
	}
	for _, tt := range tests {
		wantFindings(t, "self-initialization", "test.cpp", tt.src, tt.want)
	}
}

func TestThrowNew(t *testing.T) {
	wantFindings(t, "throw-new", "test.cpp", "void f() { throw new Error(); }", 1)
	wantFindings(t, "throw-new", "test.cpp", "void f() { throw Error(); }", 0)
	wantFindings(t, "throw-new", "test.cpp", "void f() { throw; }", 0)
}

func TestUnnamedGuard(t *testing.T) {
	tests := []struct {
		src  string
		want int
	}{
		{"void f() { std::lock_guard<std::mutex>(m); }", 1},
		{"void f() { std::lock_guard<std::mutex> g(m); }", 0},
		{"void f() { unique_lock<mutex>(m); }", 1},
		{"void f() { std::scoped_lock(m); }", 1},
		{"void f() { other_guard<mutex>(m); }", 0},
	}
	for _, tt := range tests {
		wantFindings(t, "unnamed-mutex-holder", "test.cpp", tt.src, tt.want)
	}
}

func TestBannedIdentifier(t *testing.T) {
	cfg := config.Default()
	cfg.Banned["gets"] = "fgets"

	got, bag := runCheckCfg(t, "banned-identifier", "test.cpp",
		"void f() { strtok(a, b); gets(buf); obj.strtok(a); }", cfg)
	if got != 2 {
		t.Fatalf("findings = %d, want 2\n%v", got, bag.Items())
	}
	for _, d := range bag.Items() {
		if d.Severity != diag.SevError {
			t.Errorf("severity = %v", d.Severity)
		}
	}
}

func TestUpcaseNull(t *testing.T) {
	got, bag := runCheck(t, "upcase-null", "test.cpp", "int* p = NULL; int* q = NULL;")
	if got != 2 {
		t.Fatalf("findings = %d\n%v", got, bag.Items())
	}
	if bag.Items()[0].Severity != diag.SevAdvice {
		t.Errorf("severity = %v", bag.Items()[0].Severity)
	}
	wantFindings(t, "upcase-null", "test.cpp", "int* p = nullptr;", 0)
}

func TestDeprecatedInclude(t *testing.T) {
	cfg := config.Default()
	cfg.DeprecatedIncludes["common/base/Base.h"] = "folly/Foo.h"

	got, bag := runCheckCfg(t, "deprecated-include", "test.cpp",
		"#include <common/base/Base.h>\n#include \"common/base/Base.h\"\n#include <other.h>\n", cfg)
	if got != 2 {
		t.Fatalf("findings = %d\n%v", got, bag.Items())
	}
	if bag.Items()[0].Severity != diag.SevAdvice {
		t.Errorf("severity = %v", bag.Items()[0].Severity)
	}
}

func TestChecksAreIdempotent(t *testing.T) {
	src := "class Foo { Foo(int x); };\nclass Base { public: virtual void f(); };\n"
	ctx, _ := contextFor(t, "test.cpp", src, config.Default())
	first := RunAll(ctx)
	second := RunAll(ctx)
	if first == 0 || first != second {
		t.Fatalf("first = %d, second = %d", first, second)
	}
}

func TestRunAllGating(t *testing.T) {
	// C++-only checks skip C sources
	ctx, bag := contextFor(t, "test.c", "int* p = NULL;", config.Default())
	if got := RunAll(ctx); got != 0 {
		t.Fatalf("C file: %d findings\n%v", got, bag.Items())
	}

	// header-only checks skip sources
	ctx, bag = contextFor(t, "test.cpp", "static int x = 1;\nusing namespace std;\n", config.Default())
	if got := RunAll(ctx); got != 0 {
		t.Fatalf("source file: %d findings\n%v", got, bag.Items())
	}
}

func TestRunAllDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Disabled = []string{"implicit-constructor"}
	ctx, _ := contextFor(t, "test.cpp", "class Foo { Foo(int x); };", cfg)
	if got := RunAll(ctx); got != 0 {
		t.Fatalf("disabled check still ran: %d findings", got)
	}
}

func TestRecoverableFailureKeepsFindings(t *testing.T) {
	// truncated stream: findings made before the breakage survive
	src := "class A { A(int x); };\nclass B { B(int y"
	got, bag := runCheck(t, "implicit-constructor", "test.cpp", src)
	if got != 1 {
		t.Fatalf("findings = %d, want 1\n%v", got, bag.Items())
	}
}

func TestLookupAndNames(t *testing.T) {
	if _, ok := Lookup("implicit-constructor"); !ok {
		t.Error("implicit-constructor not registered")
	}
	if _, ok := Lookup("no-such-check"); ok {
		t.Error("bogus lookup succeeded")
	}
	names := Names()
	if len(names) != len(All) {
		t.Fatalf("Names() = %d entries, want %d", len(names), len(All))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted at %d: %v", i, names)
		}
	}
}

func TestTokensIncludeEOF(t *testing.T) {
	ctx, _ := contextFor(t, "test.cpp", "int x;", config.Default())
	if n := len(ctx.Tokens); n == 0 || ctx.Tokens[n-1].Kind != token.EOF {
		t.Fatal("context tokens should end with the EOF sentinel")
	}
}

func TestImplicitConstructorNamesSignature(t *testing.T) {
	_, bag := runCheck(t, "implicit-constructor", "test.cpp",
		"class Foo { Foo(const char* s, int n = 0); };")
	items := bag.Items()
	if len(items) != 1 {
		t.Fatalf("items = %v", items)
	}
	if !strings.Contains(items[0].Message, "Foo(const char * s, int n = 0)") {
		t.Errorf("message %q does not name the signature", items[0].Message)
	}
}

func TestPreprocessorBalanceUnterminatedAnchor(t *testing.T) {
	ctx, bag := contextFor(t, "test.cpp", "#if A\nint x;\n", config.Default())
	c, _ := Lookup("preprocessor-balance")
	if got := c.Run(ctx); got != 1 {
		t.Fatalf("findings = %d, want 1", got)
	}
	items := bag.Items()
	last := ctx.Tokens[len(ctx.Tokens)-1]
	if items[0].Primary != last.Span {
		t.Errorf("primary = %v, want the last token's span %v", items[0].Primary, last.Span)
	}
	if len(items[0].Notes) != 1 || items[0].Notes[0].Span != ctx.Tokens[0].Span {
		t.Errorf("notes = %v, want one note at the open #if", items[0].Notes)
	}
}
