package token

import (
	"flint/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, character, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, CharLit, StringLit, KwTrue, KwFalse, KwNullptr:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a C++ keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwAsm && t.Kind <= KwWhile
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsPreprocessor reports whether the token is a preprocessor directive.
func (t Token) IsPreprocessor() bool {
	return t.Kind >= PpInclude && t.Kind <= PpLine
}

// IsAccessSpecifier reports whether the token is public, protected, or private.
func (t Token) IsAccessSpecifier() bool {
	switch t.Kind {
	case KwPublic, KwProtected, KwPrivate:
		return true
	default:
		return false
	}
}

// IsClassKey reports whether the token opens a class-like declaration.
func (t Token) IsClassKey() bool {
	return t.Kind == KwClass || t.Kind == KwStruct
}

// HasLeadingComment reports whether any leading comment trivia contains word.
// Used for in-source suppression markers such as /* implicit */.
func (t Token) HasLeadingComment(word string) bool {
	for _, tr := range t.Leading {
		if tr.Kind != TriviaLineComment && tr.Kind != TriviaBlockComment {
			continue
		}
		if containsWord(tr.Text, word) {
			return true
		}
	}
	return false
}

// containsWord reports whether s contains word bounded by non-identifier bytes.
func containsWord(s, word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i+len(word) <= len(s); i++ {
		if s[i:i+len(word)] != word {
			continue
		}
		if i > 0 && isWordByte(s[i-1]) {
			continue
		}
		if end := i + len(word); end < len(s) && isWordByte(s[end]) {
			continue
		}
		return true
	}
	return false
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= '0' && b <= '9') || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
