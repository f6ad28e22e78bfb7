package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedChar         Code = 1003
	LexUnterminatedBlockComment Code = 1004
	LexBadNumber                Code = 1005
	LexUnterminatedInclude      Code = 1006

	// Preprocessor checks
	PpUnbalancedConditional   Code = 2001
	PpDanglingElse            Code = 2002
	PpUnterminatedConditional Code = 2003
	PpMissingIncludeGuard     Code = 2004
	PpDeprecatedInclude       Code = 2005

	// Declaration-structure checks
	StyleImplicitConstructor   Code = 3001
	StyleNonVirtualDestructor  Code = 3002
	StyleExceptionInheritance  Code = 3003
	StyleProtectedInheritance  Code = 3004
	StyleUsingNamespaceHeader  Code = 3005
	StyleNamespaceScopedStatic Code = 3006
	StyleBreakInSynchronized   Code = 3007

	// Statement/expression checks
	StyleCatchByValue       Code = 4001
	StyleMemsetZeroLength   Code = 4002
	StyleSelfInitialization Code = 4003
	StyleThrowNew           Code = 4004
	StyleUnnamedGuard       Code = 4005
	StyleBannedIdentifier   Code = 4006
	StyleUpcaseNull         Code = 4007
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown diagnostic",

	LexUnknownChar:              "unknown character",
	LexUnterminatedString:       "unterminated string literal",
	LexUnterminatedChar:         "unterminated character literal",
	LexUnterminatedBlockComment: "unterminated block comment",
	LexBadNumber:                "malformed numeric literal",
	LexUnterminatedInclude:      "unterminated include path",

	PpUnbalancedConditional:   "unbalanced preprocessor conditional",
	PpDanglingElse:            "#else without open conditional",
	PpUnterminatedConditional: "preprocessor conditional not closed",
	PpMissingIncludeGuard:     "header missing #pragma once",
	PpDeprecatedInclude:       "deprecated include",

	StyleImplicitConstructor:   "single-argument constructor not marked explicit",
	StyleNonVirtualDestructor:  "polymorphic class without virtual destructor",
	StyleExceptionInheritance:  "non-public inheritance from exception base",
	StyleProtectedInheritance:  "protected inheritance",
	StyleUsingNamespaceHeader:  "using namespace directive in header",
	StyleNamespaceScopedStatic: "namespace-scoped static in header",
	StyleBreakInSynchronized:   "control flow escapes synchronized block",

	StyleCatchByValue:       "exception caught by value",
	StyleMemsetZeroLength:   "memset with zero length",
	StyleSelfInitialization: "member initialized from itself",
	StyleThrowNew:           "heap-allocated exception thrown",
	StyleUnnamedGuard:       "unnamed lock guard temporary",
	StyleBannedIdentifier:   "banned identifier",
	StyleUpcaseNull:         "NULL instead of nullptr",
}

// ID returns the stable short identifier, e.g. "STY3001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("PP%04d", ic)
	case ic >= 3000 && ic < 5000:
		return fmt.Sprintf("STY%04d", ic)
	}
	return "E0000"
}

// Title returns the human-readable summary for the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
