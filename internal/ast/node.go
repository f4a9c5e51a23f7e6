package ast

import "github.com/taogeice/cfront/internal/source"

// Node is implemented by every node in the tree, regardless of family.
// It is the interface consumed by generic traversal and utility code.
type Node interface {
	NodeFamily() Family
	NodeKind() Kind
	NodeLocation() source.Location
	NodeParent() Node
	setParent(Node)
	Accept(v *Visitor) error
}

// Header is embedded by every concrete node and carries the fields
// common to all four families. parent is a non-owning back-reference;
// the garbage collector, not an arena handle, keeps it valid for the
// node's whole lifetime.
type Header struct {
	Family   Family
	Kind     Kind
	Location source.Location
	Parent   Node
}

// NodeFamily returns the node's family.
func (h *Header) NodeFamily() Family { return h.Family }

// NodeKind returns the node's concrete kind.
func (h *Header) NodeKind() Kind { return h.Kind }

// NodeLocation returns the node's source location.
func (h *Header) NodeLocation() source.Location { return h.Location }

// NodeParent returns the node's parent, or nil at the root.
func (h *Header) NodeParent() Node {
	if h.Parent == nil {
		return nil
	}
	return h.Parent
}

func (h *Header) setParent(p Node) { h.Parent = p }

// Expr is implemented by every expression node.
type Expr interface {
	Node
	IsLvalue() bool
	IsConstant() bool
	ExprType() Node
	exprNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Decl is implemented by every declaration node.
type Decl interface {
	Node
	DeclName() string
	declNode()
}

// TypeSpec is implemented by every type-specifier node.
type TypeSpec interface {
	Node
	typeSpecNode()
}

// ExprHeader is embedded by concrete expression nodes; it adds the two
// derived flags fixed at construction time per §3, plus a reserved Type
// slot. Type is always nil at construction: this module has no semantic
// phase, so nothing ever populates it, but the field must exist so a
// later type-checking pass has somewhere to attach its result.
type ExprHeader struct {
	Header
	Lvalue   bool
	Constant bool
	Type     Node
}

func (e *ExprHeader) IsLvalue() bool   { return e.Lvalue }
func (e *ExprHeader) IsConstant() bool { return e.Constant }
func (e *ExprHeader) ExprType() Node   { return e.Type }
func (*ExprHeader) exprNode()          {}

// StmtHeader is embedded by concrete statement nodes.
type StmtHeader struct {
	Header
}

func (*StmtHeader) stmtNode() {}

// DeclHeader is embedded by concrete declaration nodes. Symbol is a
// reserved weak reference to an external symbol-table entry, populated
// by the semantic phase; it is always nil here since this module stops
// at the AST layer and never builds a symbol table.
type DeclHeader struct {
	Header
	Name         string
	StorageClass StorageClass
	Symbol       any
}

func (d *DeclHeader) DeclName() string { return d.Name }
func (*DeclHeader) declNode()          {}

// TypeSpecHeader is embedded by concrete type-specifier nodes.
type TypeSpecHeader struct {
	Header
}

func (*TypeSpecHeader) typeSpecNode() {}
