package ast

// BasicType is a built-in scalar type, qualified by the long/short/
// signed/unsigned combination the parser observed.
type BasicType struct {
	TypeSpecHeader
	BasicKind BasicTypeKind
	Long      bool
	Short     bool
	Signed    bool
	Unsigned  bool
}

func (n *BasicType) Accept(v *Visitor) error { return visitNode(v, n, v.OnBasicType) }

// PointerType wraps a base type.
type PointerType struct {
	TypeSpecHeader
	Base TypeSpec
}

func (n *PointerType) Accept(v *Visitor) error { return visitNode(v, n, v.OnPointerType) }

// ArrayType wraps an element type and an optional constant-expression
// size; Size == nil denotes a variable-length array.
type ArrayType struct {
	TypeSpecHeader
	Element TypeSpec
	Size    Expr
}

func (n *ArrayType) Accept(v *Visitor) error { return visitNode(v, n, v.OnArrayType) }

// IsVLA reports whether this array has no constant size.
func (n *ArrayType) IsVLA() bool { return n.Size == nil }

// FunctionType wraps a return type and a parameter-type sequence, plus a
// variadic flag.
type FunctionType struct {
	TypeSpecHeader
	ReturnType TypeSpec
	Parameters []TypeSpec
	Variadic   bool
}

func (n *FunctionType) Accept(v *Visitor) error { return visitNode(v, n, v.OnFunctionType) }

// StructRefType names a struct type; Decl is nil for a forward reference.
type StructRefType struct {
	TypeSpecHeader
	Name string
	Decl *StructDecl
}

func (n *StructRefType) Accept(v *Visitor) error { return visitNode(v, n, v.OnStructRefType) }

// UnionRefType names a union type; Decl is nil for a forward reference.
type UnionRefType struct {
	TypeSpecHeader
	Name string
	Decl *UnionDecl
}

func (n *UnionRefType) Accept(v *Visitor) error { return visitNode(v, n, v.OnUnionRefType) }

// EnumRefType names an enum type; Decl is nil for a forward reference.
type EnumRefType struct {
	TypeSpecHeader
	Name string
	Decl *EnumDecl
}

func (n *EnumRefType) Accept(v *Visitor) error { return visitNode(v, n, v.OnEnumRefType) }

// TypedefNameRefType references a name introduced by a typedef.
type TypedefNameRefType struct {
	TypeSpecHeader
	Name string
	Decl *TypedefDecl
}

func (n *TypedefNameRefType) Accept(v *Visitor) error {
	return visitNode(v, n, v.OnTypedefNameRefType)
}
