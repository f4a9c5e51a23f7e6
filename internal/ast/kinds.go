// Package ast is the polymorphic AST data model and traversal layer
// (components E–H): a closed set of expression, statement, declaration,
// and type-specifier node kinds, a double-dispatch visitor, a validating
// builder façade, and tree utilities.
package ast

import "fmt"

// Family identifies which of the four node families a Kind belongs to.
type Family uint8

// Family values.
const (
	FamilyExpr Family = iota
	FamilyStmt
	FamilyDecl
	FamilyTypeSpec
	FamilyTranslationUnit
)

func (f Family) String() string {
	switch f {
	case FamilyExpr:
		return "Expr"
	case FamilyStmt:
		return "Stmt"
	case FamilyDecl:
		return "Decl"
	case FamilyTypeSpec:
		return "TypeSpec"
	case FamilyTranslationUnit:
		return "TranslationUnit"
	default:
		return fmt.Sprintf("Family(%d)", f)
	}
}

// Kind identifies the concrete shape of a node within its family. The
// enumeration is closed: every node constructed by the Builder carries
// exactly one Kind, and every Kind belongs to exactly one Family.
type Kind uint16

// Expression kinds (10).
const (
	KindLiteralExpr Kind = iota + 1
	KindIdentifierExpr
	KindBinaryExpr
	KindUnaryExpr
	KindAssignmentExpr
	KindTernaryExpr
	KindCallExpr
	KindSubscriptExpr
	KindMemberExpr
	KindCastExpr
)

// Statement kinds (13).
const (
	KindExpressionStmt Kind = iota + 100
	KindCompoundStmt
	KindIfStmt
	KindWhileStmt
	KindDoWhileStmt
	KindForStmt
	KindReturnStmt
	KindBreakStmt
	KindContinueStmt
	KindSwitchStmt
	KindCaseStmt
	KindLabeledStmt
	KindGotoStmt
)

// Declaration kinds (6).
const (
	KindVariableDecl Kind = iota + 200
	KindFunctionDecl
	KindStructDecl
	KindUnionDecl
	KindEnumDecl
	KindTypedefDecl
)

// Type specifier kinds (8).
const (
	KindBasicType Kind = iota + 300
	KindPointerType
	KindArrayType
	KindFunctionType
	KindStructRefType
	KindUnionRefType
	KindEnumRefType
	KindTypedefNameRefType
)

// KindTranslationUnit is the sole tree root kind.
const KindTranslationUnit Kind = 1000

var kindNames = map[Kind]string{
	KindLiteralExpr:    "LiteralExpr",
	KindIdentifierExpr: "IdentifierExpr",
	KindBinaryExpr:     "BinaryExpr",
	KindUnaryExpr:      "UnaryExpr",
	KindAssignmentExpr: "AssignmentExpr",
	KindTernaryExpr:    "TernaryExpr",
	KindCallExpr:       "CallExpr",
	KindSubscriptExpr:  "SubscriptExpr",
	KindMemberExpr:     "MemberExpr",
	KindCastExpr:       "CastExpr",

	KindExpressionStmt: "ExpressionStatement",
	KindCompoundStmt:   "CompoundStatement",
	KindIfStmt:         "IfStatement",
	KindWhileStmt:      "WhileStatement",
	KindDoWhileStmt:    "DoWhileStatement",
	KindForStmt:        "ForStatement",
	KindReturnStmt:     "ReturnStatement",
	KindBreakStmt:      "BreakStatement",
	KindContinueStmt:   "ContinueStatement",
	KindSwitchStmt:     "SwitchStatement",
	KindCaseStmt:       "CaseStatement",
	KindLabeledStmt:    "LabeledStatement",
	KindGotoStmt:       "GotoStatement",

	KindVariableDecl: "VariableDeclaration",
	KindFunctionDecl: "FunctionDeclaration",
	KindStructDecl:   "StructDeclaration",
	KindUnionDecl:    "UnionDeclaration",
	KindEnumDecl:     "EnumDeclaration",
	KindTypedefDecl:  "TypedefDeclaration",

	KindBasicType:          "BasicTypeSpecifier",
	KindPointerType:        "PointerTypeSpecifier",
	KindArrayType:          "ArrayTypeSpecifier",
	KindFunctionType:       "FunctionTypeSpecifier",
	KindStructRefType:      "StructRefTypeSpecifier",
	KindUnionRefType:       "UnionRefTypeSpecifier",
	KindEnumRefType:        "EnumRefTypeSpecifier",
	KindTypedefNameRefType: "TypedefNameRefTypeSpecifier",

	KindTranslationUnit: "TranslationUnit",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// BinaryOp enumerates binary operators.
type BinaryOp uint8

// BinaryOp values.
const (
	BinAdd BinaryOp = iota
	BinSub
	BinMul
	BinDiv
	BinMod
	BinEq
	BinNe
	BinLt
	BinLe
	BinGt
	BinGe
	BinLAnd
	BinLOr
	BinBAnd
	BinBOr
	BinBXor
	BinShl
	BinShr
	BinComma
)

var binaryOpSpellings = map[BinaryOp]string{
	BinAdd: "+", BinSub: "-", BinMul: "*", BinDiv: "/", BinMod: "%",
	BinEq: "==", BinNe: "!=", BinLt: "<", BinLe: "<=", BinGt: ">", BinGe: ">=",
	BinLAnd: "&&", BinLOr: "||", BinBAnd: "&", BinBOr: "|", BinBXor: "^",
	BinShl: "<<", BinShr: ">>", BinComma: ",",
}

func (op BinaryOp) String() string { return binaryOpSpellings[op] }

// UnaryOp enumerates unary operators, including fixedness.
type UnaryOp uint8

// UnaryOp values.
const (
	UnaryPostfixInc UnaryOp = iota
	UnaryPostfixDec
	UnaryPrefixInc
	UnaryPrefixDec
	UnaryPlus
	UnaryMinus
	UnaryBNot
	UnaryLNot
	UnaryDeref
	UnaryAddr
	UnarySizeof
)

var unaryOpSpellings = map[UnaryOp]string{
	UnaryPostfixInc: "++", UnaryPostfixDec: "--",
	UnaryPrefixInc: "++", UnaryPrefixDec: "--",
	UnaryPlus: "+", UnaryMinus: "-", UnaryBNot: "~", UnaryLNot: "!",
	UnaryDeref: "*", UnaryAddr: "&", UnarySizeof: "sizeof",
}

func (op UnaryOp) String() string { return unaryOpSpellings[op] }

// IsPostfix reports whether op is one of the two postfix forms.
func (op UnaryOp) IsPostfix() bool {
	return op == UnaryPostfixInc || op == UnaryPostfixDec
}

// AssignOp enumerates assignment operators.
type AssignOp uint8

// AssignOp values.
const (
	AssignPlain AssignOp = iota
	AssignAdd
	AssignSub
	AssignMul
	AssignDiv
	AssignMod
	AssignShl
	AssignShr
	AssignBAnd
	AssignBOr
	AssignBXor
)

var assignOpSpellings = map[AssignOp]string{
	AssignPlain: "=", AssignAdd: "+=", AssignSub: "-=", AssignMul: "*=",
	AssignDiv: "/=", AssignMod: "%=", AssignShl: "<<=", AssignShr: ">>=",
	AssignBAnd: "&=", AssignBOr: "|=", AssignBXor: "^=",
}

func (op AssignOp) String() string { return assignOpSpellings[op] }

// BasicTypeKind enumerates the built-in scalar type names.
type BasicTypeKind uint8

// BasicTypeKind values.
const (
	BasicVoid BasicTypeKind = iota
	BasicChar
	BasicShort
	BasicInt
	BasicLong
	BasicFloat
	BasicDouble
	BasicSigned
	BasicUnsigned
	BasicBool
	BasicComplex
)

var basicTypeSpellings = map[BasicTypeKind]string{
	BasicVoid: "void", BasicChar: "char", BasicShort: "short", BasicInt: "int",
	BasicLong: "long", BasicFloat: "float", BasicDouble: "double",
	BasicSigned: "signed", BasicUnsigned: "unsigned", BasicBool: "_Bool",
	BasicComplex: "_Complex",
}

func (k BasicTypeKind) String() string { return basicTypeSpellings[k] }

// StorageClass enumerates declaration storage classes.
type StorageClass uint8

// StorageClass values.
const (
	StorageNone StorageClass = iota
	StorageAuto
	StorageStatic
	StorageExtern
	StorageRegister
	StorageThreadLocal
)

func (s StorageClass) String() string {
	switch s {
	case StorageAuto:
		return "auto"
	case StorageStatic:
		return "static"
	case StorageExtern:
		return "extern"
	case StorageRegister:
		return "register"
	case StorageThreadLocal:
		return "thread_local"
	default:
		return ""
	}
}

// CaseKind distinguishes a labeled case from a default case in a switch.
type CaseKind uint8

// CaseKind values.
const (
	CaseLabel CaseKind = iota
	CaseDefault
)
