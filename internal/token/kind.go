package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// KwAsm represents the 'asm' keyword.
	KwAsm // asm
	// KwAuto represents the 'auto' keyword.
	KwAuto // auto
	// KwBool represents the 'bool' keyword.
	KwBool // bool
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwCase represents the 'case' keyword.
	KwCase // case
	// KwCatch represents the 'catch' keyword.
	KwCatch // catch
	// KwChar represents the 'char' keyword.
	KwChar // char
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwConstexpr represents the 'constexpr' keyword.
	KwConstexpr // constexpr
	// KwConstCast represents the 'const_cast' keyword.
	KwConstCast // const_cast
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwDecltype represents the 'decltype' keyword.
	KwDecltype // decltype
	// KwDefault represents the 'default' keyword.
	KwDefault // default
	// KwDelete represents the 'delete' keyword.
	KwDelete // delete
	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwDouble represents the 'double' keyword.
	KwDouble // double
	// KwDynamicCast represents the 'dynamic_cast' keyword.
	KwDynamicCast // dynamic_cast
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwExplicit represents the 'explicit' keyword.
	KwExplicit // explicit
	// KwExport represents the 'export' keyword.
	KwExport // export
	// KwExtern represents the 'extern' keyword.
	KwExtern // extern
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwFloat represents the 'float' keyword.
	KwFloat // float
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwFriend represents the 'friend' keyword.
	KwFriend // friend
	// KwGoto represents the 'goto' keyword.
	KwGoto // goto
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwInline represents the 'inline' keyword.
	KwInline // inline
	// KwInt represents the 'int' keyword.
	KwInt // int
	// KwLong represents the 'long' keyword.
	KwLong // long
	// KwMutable represents the 'mutable' keyword.
	KwMutable // mutable
	// KwNamespace represents the 'namespace' keyword.
	KwNamespace // namespace
	// KwNew represents the 'new' keyword.
	KwNew // new
	// KwNoexcept represents the 'noexcept' keyword.
	KwNoexcept // noexcept
	// KwNullptr represents the 'nullptr' keyword.
	KwNullptr // nullptr
	// KwOperator represents the 'operator' keyword.
	KwOperator // operator
	// KwPrivate represents the 'private' keyword.
	KwPrivate // private
	// KwProtected represents the 'protected' keyword.
	KwProtected // protected
	// KwPublic represents the 'public' keyword.
	KwPublic // public
	// KwRegister represents the 'register' keyword.
	KwRegister // register
	// KwReinterpretCast represents the 'reinterpret_cast' keyword.
	KwReinterpretCast // reinterpret_cast
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwShort represents the 'short' keyword.
	KwShort // short
	// KwSigned represents the 'signed' keyword.
	KwSigned // signed
	// KwSizeof represents the 'sizeof' keyword.
	KwSizeof // sizeof
	// KwStatic represents the 'static' keyword.
	KwStatic // static
	// KwStaticAssert represents the 'static_assert' keyword.
	KwStaticAssert // static_assert
	// KwStaticCast represents the 'static_cast' keyword.
	KwStaticCast // static_cast
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwSwitch represents the 'switch' keyword.
	KwSwitch // switch
	// KwTemplate represents the 'template' keyword.
	KwTemplate // template
	// KwThis represents the 'this' keyword.
	KwThis // this
	// KwThreadLocal represents the 'thread_local' keyword.
	KwThreadLocal // thread_local
	// KwThrow represents the 'throw' keyword.
	KwThrow // throw
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwTry represents the 'try' keyword.
	KwTry // try
	// KwTypedef represents the 'typedef' keyword.
	KwTypedef // typedef
	// KwTypeid represents the 'typeid' keyword.
	KwTypeid // typeid
	// KwTypename represents the 'typename' keyword.
	KwTypename // typename
	// KwUnion represents the 'union' keyword.
	KwUnion // union
	// KwUnsigned represents the 'unsigned' keyword.
	KwUnsigned // unsigned
	// KwUsing represents the 'using' keyword.
	KwUsing // using
	// KwVirtual represents the 'virtual' keyword.
	KwVirtual // virtual
	// KwVoid represents the 'void' keyword.
	KwVoid // void
	// KwVolatile represents the 'volatile' keyword.
	KwVolatile // volatile
	// KwWchar represents the 'wchar_t' keyword.
	KwWchar // wchar_t
	// KwWhile represents the 'while' keyword.
	KwWhile // while

	// IntLit represents an integer literal token.
	IntLit
	// FloatLit represents a floating-point literal token.
	FloatLit
	// CharLit represents a character literal token.
	CharLit
	// StringLit represents a string literal token.
	StringLit

	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
	// Semicolon represents ';'.
	Semicolon // ;
	// Comma represents ','.
	Comma // ,
	// Question represents '?'.
	Question // ?
	// Colon represents ':'.
	Colon // :
	// ColonColon represents '::'.
	ColonColon // ::
	// Dot represents '.'.
	Dot // .
	// DotStar represents '.*'.
	DotStar // .*
	// Ellipsis represents '...'.
	Ellipsis // ...
	// Arrow represents '->'.
	Arrow // ->
	// ArrowStar represents '->*'.
	ArrowStar // ->*
	// Tilde represents '~'.
	Tilde // ~
	// Bang represents '!'.
	Bang // !
	// BangEq represents '!='.
	BangEq // !=
	// Assign represents '='.
	Assign // =
	// EqEq represents '=='.
	EqEq // ==
	// Lt represents '<'.
	Lt // <
	// LtEq represents '<='.
	LtEq // <=
	// Gt represents '>'.
	Gt // >
	// GtEq represents '>='.
	GtEq // >=
	// Plus represents '+'.
	Plus // +
	// PlusPlus represents '++'.
	PlusPlus // ++
	// PlusAssign represents '+='.
	PlusAssign // +=
	// Minus represents '-'.
	Minus // -
	// MinusMinus represents '--'.
	MinusMinus // --
	// MinusAssign represents '-='.
	MinusAssign // -=
	// Star represents '*'.
	Star // *
	// StarAssign represents '*='.
	StarAssign // *=
	// Slash represents '/'.
	Slash // /
	// SlashAssign represents '/='.
	SlashAssign // /=
	// Percent represents '%'.
	Percent // %
	// PercentAssign represents '%='.
	PercentAssign // %=
	// Amp represents '&'.
	Amp // &
	// AmpAmp represents '&&'.
	AmpAmp // &&
	// AmpAssign represents '&='.
	AmpAssign // &=
	// Pipe represents '|'.
	Pipe // |
	// PipePipe represents '||'.
	PipePipe // ||
	// PipeAssign represents '|='.
	PipeAssign // |=
	// Caret represents '^'.
	Caret // ^
	// CaretAssign represents '^='.
	CaretAssign // ^=
	// Shl represents '<<'.
	Shl // <<
	// ShlAssign represents '<<='.
	ShlAssign // <<=
	// Shr represents '>>'.
	Shr // >>
	// ShrAssign represents '>>='.
	ShrAssign // >>=
	// Hash represents a '#' that does not start a recognized directive.
	Hash // #
	// HashHash represents '##'.
	HashHash // ##

	// PpInclude represents the '#include' directive token.
	PpInclude // #include
	// PpDefine represents the '#define' directive token.
	PpDefine // #define
	// PpUndef represents the '#undef' directive token.
	PpUndef // #undef
	// PpIf represents the '#if' directive token.
	PpIf // #if
	// PpIfdef represents the '#ifdef' directive token.
	PpIfdef // #ifdef
	// PpIfndef represents the '#ifndef' directive token.
	PpIfndef // #ifndef
	// PpElse represents the '#else' directive token.
	PpElse // #else
	// PpElif represents the '#elif' directive token.
	PpElif // #elif
	// PpEndif represents the '#endif' directive token.
	PpEndif // #endif
	// PpPragma represents the '#pragma' directive token.
	PpPragma // #pragma
	// PpError represents the '#error' directive token.
	PpError // #error
	// PpWarning represents the '#warning' directive token.
	PpWarning // #warning
	// PpLine represents the '#line' directive token.
	PpLine // #line

	kindCount // sentinel for table sizing, keep last
)

var kindNames = [...]string{
	Invalid: "Invalid",
	EOF:     "EOF",
	Ident:   "Ident",

	KwAsm:             "KwAsm",
	KwAuto:            "KwAuto",
	KwBool:            "KwBool",
	KwBreak:           "KwBreak",
	KwCase:            "KwCase",
	KwCatch:           "KwCatch",
	KwChar:            "KwChar",
	KwClass:           "KwClass",
	KwConst:           "KwConst",
	KwConstexpr:       "KwConstexpr",
	KwConstCast:       "KwConstCast",
	KwContinue:        "KwContinue",
	KwDecltype:        "KwDecltype",
	KwDefault:         "KwDefault",
	KwDelete:          "KwDelete",
	KwDo:              "KwDo",
	KwDouble:          "KwDouble",
	KwDynamicCast:     "KwDynamicCast",
	KwElse:            "KwElse",
	KwEnum:            "KwEnum",
	KwExplicit:        "KwExplicit",
	KwExport:          "KwExport",
	KwExtern:          "KwExtern",
	KwFalse:           "KwFalse",
	KwFloat:           "KwFloat",
	KwFor:             "KwFor",
	KwFriend:          "KwFriend",
	KwGoto:            "KwGoto",
	KwIf:              "KwIf",
	KwInline:          "KwInline",
	KwInt:             "KwInt",
	KwLong:            "KwLong",
	KwMutable:         "KwMutable",
	KwNamespace:       "KwNamespace",
	KwNew:             "KwNew",
	KwNoexcept:        "KwNoexcept",
	KwNullptr:         "KwNullptr",
	KwOperator:        "KwOperator",
	KwPrivate:         "KwPrivate",
	KwProtected:       "KwProtected",
	KwPublic:          "KwPublic",
	KwRegister:        "KwRegister",
	KwReinterpretCast: "KwReinterpretCast",
	KwReturn:          "KwReturn",
	KwShort:           "KwShort",
	KwSigned:          "KwSigned",
	KwSizeof:          "KwSizeof",
	KwStatic:          "KwStatic",
	KwStaticAssert:    "KwStaticAssert",
	KwStaticCast:      "KwStaticCast",
	KwStruct:          "KwStruct",
	KwSwitch:          "KwSwitch",
	KwTemplate:        "KwTemplate",
	KwThis:            "KwThis",
	KwThreadLocal:     "KwThreadLocal",
	KwThrow:           "KwThrow",
	KwTrue:            "KwTrue",
	KwTry:             "KwTry",
	KwTypedef:         "KwTypedef",
	KwTypeid:          "KwTypeid",
	KwTypename:        "KwTypename",
	KwUnion:           "KwUnion",
	KwUnsigned:        "KwUnsigned",
	KwUsing:           "KwUsing",
	KwVirtual:         "KwVirtual",
	KwVoid:            "KwVoid",
	KwVolatile:        "KwVolatile",
	KwWchar:           "KwWchar",
	KwWhile:           "KwWhile",

	IntLit:    "IntLit",
	FloatLit:  "FloatLit",
	CharLit:   "CharLit",
	StringLit: "StringLit",

	LParen:        "LParen",
	RParen:        "RParen",
	LBrace:        "LBrace",
	RBrace:        "RBrace",
	LBracket:      "LBracket",
	RBracket:      "RBracket",
	Semicolon:     "Semicolon",
	Comma:         "Comma",
	Question:      "Question",
	Colon:         "Colon",
	ColonColon:    "ColonColon",
	Dot:           "Dot",
	DotStar:       "DotStar",
	Ellipsis:      "Ellipsis",
	Arrow:         "Arrow",
	ArrowStar:     "ArrowStar",
	Tilde:         "Tilde",
	Bang:          "Bang",
	BangEq:        "BangEq",
	Assign:        "Assign",
	EqEq:          "EqEq",
	Lt:            "Lt",
	LtEq:          "LtEq",
	Gt:            "Gt",
	GtEq:          "GtEq",
	Plus:          "Plus",
	PlusPlus:      "PlusPlus",
	PlusAssign:    "PlusAssign",
	Minus:         "Minus",
	MinusMinus:    "MinusMinus",
	MinusAssign:   "MinusAssign",
	Star:          "Star",
	StarAssign:    "StarAssign",
	Slash:         "Slash",
	SlashAssign:   "SlashAssign",
	Percent:       "Percent",
	PercentAssign: "PercentAssign",
	Amp:           "Amp",
	AmpAmp:        "AmpAmp",
	AmpAssign:     "AmpAssign",
	Pipe:          "Pipe",
	PipePipe:      "PipePipe",
	PipeAssign:    "PipeAssign",
	Caret:         "Caret",
	CaretAssign:   "CaretAssign",
	Shl:           "Shl",
	ShlAssign:     "ShlAssign",
	Shr:           "Shr",
	ShrAssign:     "ShrAssign",
	Hash:          "Hash",
	HashHash:      "HashHash",

	PpInclude: "PpInclude",
	PpDefine:  "PpDefine",
	PpUndef:   "PpUndef",
	PpIf:      "PpIf",
	PpIfdef:   "PpIfdef",
	PpIfndef:  "PpIfndef",
	PpElse:    "PpElse",
	PpElif:    "PpElif",
	PpEndif:   "PpEndif",
	PpPragma:  "PpPragma",
	PpError:   "PpError",
	PpWarning: "PpWarning",
	PpLine:    "PpLine",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
