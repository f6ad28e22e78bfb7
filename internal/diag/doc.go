// Package diag defines the diagnostic model shared by the lexer and all
// lint checks.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture
//     findings produced by the lexer and the check catalogue.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity: tri-level enum (Advice, Warning, Error) defined in severity.go.
//   - Code: compact numeric identifier (see codes.go) with stable string form.
//   - Message: human oriented text; keep it short and actionable.
//   - Primary span: the canonical source.Span pointing to the finding.
//   - Notes: optional secondary spans/messages for additional context.
//
// Severity never changes control flow inside a check: a check stops early
// only on unrecoverable parse state, not because a finding is severe.
//
// # Emitting diagnostics
//
// Checks emit through a diag.Reporter to decouple emission from storage.
// BagReporter aggregates diagnostics into a Bag, which supports sorting,
// deduplication and merging. Rendering lives in internal/diagfmt.
package diag
