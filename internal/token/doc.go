// Package token defines lexical token kinds and trivia for C++ sources.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Begin..End).
//   - Preprocessor directives ("#" plus the directive word) are single tokens
//     with a Pp* kind; the rest of the directive line is lexed normally.
//   - A well-formed token stream always ends with exactly one EOF token.
//   - The kind set is closed: checks compare kinds for equality and set
//     membership only, never parse Text to re-classify a token.
package token
