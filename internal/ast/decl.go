package ast

// VariableDecl declares a named variable of Type, with an optional
// initializer.
type VariableDecl struct {
	DeclHeader
	Type TypeSpec
	Init Expr
}

func (n *VariableDecl) Accept(v *Visitor) error { return visitNode(v, n, v.OnVariableDecl) }

// FunctionDecl declares a function; Body is nil for a prototype.
type FunctionDecl struct {
	DeclHeader
	ReturnType TypeSpec
	Parameters []Decl
	Body       *CompoundStmt
}

func (n *FunctionDecl) Accept(v *Visitor) error { return visitNode(v, n, v.OnFunctionDecl) }

// StructDecl declares a struct type; Members are variable-shaped decls.
type StructDecl struct {
	DeclHeader
	Members []Decl
}

func (n *StructDecl) Accept(v *Visitor) error { return visitNode(v, n, v.OnStructDecl) }

// UnionDecl declares a union type; Members are variable-shaped decls.
type UnionDecl struct {
	DeclHeader
	Members []Decl
}

func (n *UnionDecl) Accept(v *Visitor) error { return visitNode(v, n, v.OnUnionDecl) }

// EnumConstant is one `name[ = value]` entry of an enum declaration.
type EnumConstant struct {
	Name  string
	Value Expr
}

// EnumDecl declares an enum type and its ordered constant list.
type EnumDecl struct {
	DeclHeader
	Constants []EnumConstant
}

func (n *EnumDecl) Accept(v *Visitor) error { return visitNode(v, n, v.OnEnumDecl) }

// TypedefDecl introduces Name as an alias for Type.
type TypedefDecl struct {
	DeclHeader
	Type TypeSpec
}

func (n *TypedefDecl) Accept(v *Visitor) error { return visitNode(v, n, v.OnTypedefDecl) }

// TranslationUnit is the sole tree root; it owns an ordered sequence of
// top-level declarations.
type TranslationUnit struct {
	Header
	Declarations []Decl
}

func (n *TranslationUnit) Accept(v *Visitor) error { return visitNode(v, n, v.OnTranslationUnit) }
