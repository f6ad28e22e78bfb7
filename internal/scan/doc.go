// Package scan provides heuristic structural navigation over C++ token
// streams: balanced delimiter skipping, call-argument extraction,
// qualified-identifier reading, and a nested class/namespace scope tracker.
//
// Nothing here is a parser. Navigation looks at token kinds only, runs in a
// single forward pass, and is deliberately approximate: it aims to be useful
// on real code, not sound on adversarial input.
//
// Invariants:
//   - A Cursor never moves backward within one operation.
//   - The token stream ends with exactly one EOF sentinel; every skip
//     operation returns a cursor at the sentinel when the input is
//     unbalanced, and callers must check AtEnd before dereferencing.
//   - Angle-bracket counting is suspended inside parentheses, so
//     "f(a < b, c > d)" is not misread as a template-argument list.
//
// Known accepted gap: a Shr token (">>") closing two nested template lists
// is not split into two closes. "vector<vector<int>>" therefore over-skips.
// This matches the behavior of the tool this engine reproduces; changing it
// would change output on existing code.
package scan
