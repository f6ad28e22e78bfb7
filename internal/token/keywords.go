package token

var keywords = map[string]Kind{
	"asm":              KwAsm,
	"auto":             KwAuto,
	"bool":             KwBool,
	"break":            KwBreak,
	"case":             KwCase,
	"catch":            KwCatch,
	"char":             KwChar,
	"class":            KwClass,
	"const":            KwConst,
	"constexpr":        KwConstexpr,
	"const_cast":       KwConstCast,
	"continue":         KwContinue,
	"decltype":         KwDecltype,
	"default":          KwDefault,
	"delete":           KwDelete,
	"do":               KwDo,
	"double":           KwDouble,
	"dynamic_cast":     KwDynamicCast,
	"else":             KwElse,
	"enum":             KwEnum,
	"explicit":         KwExplicit,
	"export":           KwExport,
	"extern":           KwExtern,
	"false":            KwFalse,
	"float":            KwFloat,
	"for":              KwFor,
	"friend":           KwFriend,
	"goto":             KwGoto,
	"if":               KwIf,
	"inline":           KwInline,
	"int":              KwInt,
	"long":             KwLong,
	"mutable":          KwMutable,
	"namespace":        KwNamespace,
	"new":              KwNew,
	"noexcept":         KwNoexcept,
	"nullptr":          KwNullptr,
	"operator":         KwOperator,
	"private":          KwPrivate,
	"protected":        KwProtected,
	"public":           KwPublic,
	"register":         KwRegister,
	"reinterpret_cast": KwReinterpretCast,
	"return":           KwReturn,
	"short":            KwShort,
	"signed":           KwSigned,
	"sizeof":           KwSizeof,
	"static":           KwStatic,
	"static_assert":    KwStaticAssert,
	"static_cast":      KwStaticCast,
	"struct":           KwStruct,
	"switch":           KwSwitch,
	"template":         KwTemplate,
	"this":             KwThis,
	"thread_local":     KwThreadLocal,
	"throw":            KwThrow,
	"true":             KwTrue,
	"try":              KwTry,
	"typedef":          KwTypedef,
	"typeid":           KwTypeid,
	"typename":         KwTypename,
	"union":            KwUnion,
	"unsigned":         KwUnsigned,
	"using":            KwUsing,
	"virtual":          KwVirtual,
	"void":             KwVoid,
	"volatile":         KwVolatile,
	"wchar_t":          KwWchar,
	"while":            KwWhile,
}

// LookupKeyword returns the keyword kind for ident, if it is one.
// Keywords are case-sensitive; "Class" is an identifier.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

var directives = map[string]Kind{
	"include": PpInclude,
	"define":  PpDefine,
	"undef":   PpUndef,
	"if":      PpIf,
	"ifdef":   PpIfdef,
	"ifndef":  PpIfndef,
	"else":    PpElse,
	"elif":    PpElif,
	"endif":   PpEndif,
	"pragma":  PpPragma,
	"error":   PpError,
	"warning": PpWarning,
	"line":    PpLine,
}

// LookupDirective returns the preprocessor kind for the word following '#'.
func LookupDirective(word string) (Kind, bool) {
	k, ok := directives[word]
	return k, ok
}
