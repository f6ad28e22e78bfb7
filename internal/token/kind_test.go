package token

import "testing"

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		Invalid:    "Invalid",
		EOF:        "EOF",
		Ident:      "Ident",
		KwClass:    "KwClass",
		KwWhile:    "KwWhile",
		StringLit:  "StringLit",
		ColonColon: "ColonColon",
		Shr:        "Shr",
		PpEndif:    "PpEndif",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
	if got := Kind(255).String(); got != "Kind(?)" {
		t.Errorf("out-of-range String() = %q", got)
	}
}

func TestKindNamesComplete(t *testing.T) {
	// Every kind below the sentinel must have a name.
	for k := Kind(0); k < kindCount; k++ {
		if kindNames[k] == "" {
			t.Errorf("Kind(%d) has no name", k)
		}
	}
}

func TestTokenPredicates(t *testing.T) {
	if !(Token{Kind: KwVirtual}).IsKeyword() {
		t.Error("KwVirtual should be a keyword")
	}
	if (Token{Kind: Ident}).IsKeyword() {
		t.Error("Ident should not be a keyword")
	}
	if !(Token{Kind: PpIfdef}).IsPreprocessor() {
		t.Error("PpIfdef should be preprocessor")
	}
	if !(Token{Kind: KwProtected}).IsAccessSpecifier() {
		t.Error("KwProtected should be an access specifier")
	}
	if !(Token{Kind: KwStruct}).IsClassKey() {
		t.Error("KwStruct should be a class key")
	}
	if (Token{Kind: KwUnion}).IsClassKey() {
		t.Error("KwUnion should not be a class key")
	}
}

func TestHasLeadingComment(t *testing.T) {
	tok := Token{
		Kind: Ident,
		Leading: []Trivia{
			{Kind: TriviaSpace, Text: "  "},
			{Kind: TriviaBlockComment, Text: "/* implicit */"},
		},
	}
	if !tok.HasLeadingComment("implicit") {
		t.Error("expected to find implicit marker")
	}
	if tok.HasLeadingComment("implicitly") {
		t.Error("word boundary not respected")
	}
	if (Token{}).HasLeadingComment("implicit") {
		t.Error("no trivia should mean no marker")
	}
}
