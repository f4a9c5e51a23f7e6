// Package token defines the C11/C17 token kind enumeration and the token
// record produced by the lexer (component C).
package token

import "fmt"

// Kind identifies the syntactic category of a token. The enumeration is
// closed: every lexeme the lexer recognizes maps to exactly one Kind.
type Kind uint16

// Sentinel and literal kinds.
const (
	Unknown Kind = iota
	EOF
	Newline
	Whitespace
	Comment

	Identifier
	IntegerLiteral
	FloatLiteral
	CharLiteral
	StringLiteral
)

// C89/C99 keywords.
const (
	KwAuto Kind = iota + 100
	KwBreak
	KwCase
	KwChar
	KwConst
	KwContinue
	KwDefault
	KwDo
	KwDouble
	KwElse
	KwEnum
	KwExtern
	KwFloat
	KwFor
	KwGoto
	KwIf
	KwInt
	KwLong
	KwRegister
	KwReturn
	KwShort
	KwSigned
	KwSizeof
	KwStatic
	KwStruct
	KwSwitch
	KwTypedef
	KwUnion
	KwUnsigned
	KwVoid
	KwVolatile
	KwWhile
)

// C11/C17 keywords. Both spellings (e.g. "alignas" and "_Alignas") map to
// the same Kind.
const (
	KwAlignas Kind = iota + 200
	KwAlignof
	KwAtomic
	KwGeneric
	KwStaticAssert
	KwThreadLocal
	KwNoreturn
)

// Operators and punctuators.
const (
	Plus Kind = iota + 300
	Minus
	Star
	Slash
	Percent
	Assign
	PlusAssign
	MinusAssign
	StarAssign
	SlashAssign
	PercentAssign
	ShiftLeftAssign
	ShiftRightAssign
	AmpAssign
	PipeAssign
	CaretAssign
	Eq
	Ne
	Lt
	Le
	Gt
	Ge
	AmpAmp
	PipePipe
	Bang
	Amp
	Pipe
	Tilde
	Caret
	ShiftLeft
	ShiftRight
	PlusPlus
	MinusMinus
	LParen
	RParen
	LBracket
	RBracket
	LBrace
	RBrace
	Semi
	Comma
	Dot
	Arrow
	Colon
	Question
	Ellipsis
)

// Preprocessor directive kinds (after consuming '#').
const (
	PPHash Kind = iota + 400
	PPHashHash
	PPDefine
	PPUndef
	PPInclude
	PPIf
	PPIfdef
	PPIfndef
	PPElif
	PPElse
	PPEndif
	PPLine
	PPError
	PPPragma
	PPWarning
)

var keywordKinds = map[string]Kind{
	"auto": KwAuto, "break": KwBreak, "case": KwCase, "char": KwChar,
	"const": KwConst, "continue": KwContinue, "default": KwDefault, "do": KwDo,
	"double": KwDouble, "else": KwElse, "enum": KwEnum, "extern": KwExtern,
	"float": KwFloat, "for": KwFor, "goto": KwGoto, "if": KwIf, "int": KwInt,
	"long": KwLong, "register": KwRegister, "return": KwReturn, "short": KwShort,
	"signed": KwSigned, "sizeof": KwSizeof, "static": KwStatic, "struct": KwStruct,
	"switch": KwSwitch, "typedef": KwTypedef, "union": KwUnion,
	"unsigned": KwUnsigned, "void": KwVoid, "volatile": KwVolatile, "while": KwWhile,

	"alignas": KwAlignas, "_Alignas": KwAlignas,
	"alignof": KwAlignof, "_Alignof": KwAlignof,
	"atomic": KwAtomic, "_Atomic": KwAtomic,
	"generic": KwGeneric, "_Generic": KwGeneric,
	"static_assert": KwStaticAssert, "_Static_assert": KwStaticAssert,
	"thread_local": KwThreadLocal, "_Thread_local": KwThreadLocal,
	"noreturn": KwNoreturn, "_Noreturn": KwNoreturn,
}

// LookupKeyword reports the keyword Kind for lexeme, if any. The lookup
// table has 39 distinct keyword kinds: 32 C89/C99 keywords plus 7
// C11/C17 keywords with two spellings each, 46 entries in all.
func LookupKeyword(lexeme string) (Kind, bool) {
	k, ok := keywordKinds[lexeme]
	return k, ok
}

// directiveKinds maps a preprocessor directive name (the text after '#'
// and intra-line whitespace) to its Kind. Unknown directives are not
// present here; the lexer falls back to Identifier for those.
var directiveKinds = map[string]Kind{
	"define":  PPDefine,
	"undef":   PPUndef,
	"include": PPInclude,
	"if":      PPIf,
	"ifdef":   PPIfdef,
	"ifndef":  PPIfndef,
	"elif":    PPElif,
	"else":    PPElse,
	"endif":   PPEndif,
	"line":    PPLine,
	"error":   PPError,
	"pragma":  PPPragma,
	"warning": PPWarning,
}

// LookupDirective reports the directive Kind for a directive name (the
// identifier-shaped text immediately following '#'). The table has 13
// entries per §4.3.
func LookupDirective(name string) (Kind, bool) {
	k, ok := directiveKinds[name]
	return k, ok
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// IsValid reports whether k is a recognized kind: it rejects the
// zero-value Unknown sentinel (used for a truly unrecognized lexeme) and
// any value outside the closed set.
func (k Kind) IsValid() bool {
	_, ok := kindNames[k]
	return ok && k != Unknown
}

var kindNames = buildKindNames()

func buildKindNames() map[Kind]string {
	names := map[Kind]string{
		Unknown: "Unknown", EOF: "EOF", Newline: "Newline", Whitespace: "Whitespace", Comment: "Comment",
		Identifier: "Identifier", IntegerLiteral: "IntegerLiteral", FloatLiteral: "FloatLiteral",
		CharLiteral: "CharLiteral", StringLiteral: "StringLiteral",

		Plus: "+", Minus: "-", Star: "*", Slash: "/", Percent: "%",
		Assign: "=", PlusAssign: "+=", MinusAssign: "-=", StarAssign: "*=", SlashAssign: "/=",
		PercentAssign: "%=", ShiftLeftAssign: "<<=", ShiftRightAssign: ">>=",
		AmpAssign: "&=", PipeAssign: "|=", CaretAssign: "^=",
		Eq: "==", Ne: "!=", Lt: "<", Le: "<=", Gt: ">", Ge: ">=",
		AmpAmp: "&&", PipePipe: "||", Bang: "!", Amp: "&", Pipe: "|", Tilde: "~", Caret: "^",
		ShiftLeft: "<<", ShiftRight: ">>", PlusPlus: "++", MinusMinus: "--",
		LParen: "(", RParen: ")", LBracket: "[", RBracket: "]", LBrace: "{", RBrace: "}",
		Semi: ";", Comma: ",", Dot: ".", Arrow: "->", Colon: ":", Question: "?", Ellipsis: "...",

		PPHash: "#", PPHashHash: "##", PPDefine: "define", PPUndef: "undef", PPInclude: "include",
		PPIf: "if", PPIfdef: "ifdef", PPIfndef: "ifndef", PPElif: "elif", PPElse: "else",
		PPEndif: "endif", PPLine: "line", PPError: "error", PPPragma: "pragma", PPWarning: "warning",
	}
	for lexeme, kind := range keywordKinds {
		if _, seen := names[kind]; !seen {
			names[kind] = lexeme
		}
	}
	return names
}
