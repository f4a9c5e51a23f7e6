package ast

import "github.com/taogeice/cfront/internal/token"

// LiteralExpr is a literal token turned into an expression node.
type LiteralExpr struct {
	ExprHeader
	Token token.Token
}

func (n *LiteralExpr) Accept(v *Visitor) error { return visitNode(v, n, v.OnLiteralExpr) }

// IdentifierExpr references a name.
type IdentifierExpr struct {
	ExprHeader
	Name string
}

func (n *IdentifierExpr) Accept(v *Visitor) error { return visitNode(v, n, v.OnIdentifierExpr) }

// BinaryExpr applies a binary operator to two operands.
type BinaryExpr struct {
	ExprHeader
	Op    BinaryOp
	Left  Expr
	Right Expr
}

func (n *BinaryExpr) Accept(v *Visitor) error { return visitNode(v, n, v.OnBinaryExpr) }

// UnaryExpr applies a unary operator to one operand.
type UnaryExpr struct {
	ExprHeader
	Op      UnaryOp
	Operand Expr
}

func (n *UnaryExpr) Accept(v *Visitor) error { return visitNode(v, n, v.OnUnaryExpr) }

// AssignmentExpr assigns Value into Target.
type AssignmentExpr struct {
	ExprHeader
	Op     AssignOp
	Target Expr
	Value  Expr
}

func (n *AssignmentExpr) Accept(v *Visitor) error { return visitNode(v, n, v.OnAssignmentExpr) }

// TernaryExpr is the conditional `cond ? then : else` expression.
type TernaryExpr struct {
	ExprHeader
	Cond Expr
	Then Expr
	Else Expr
}

func (n *TernaryExpr) Accept(v *Visitor) error { return visitNode(v, n, v.OnTernaryExpr) }

// CallExpr invokes Callee with Args.
type CallExpr struct {
	ExprHeader
	Callee Expr
	Args   []Expr
}

func (n *CallExpr) Accept(v *Visitor) error { return visitNode(v, n, v.OnCallExpr) }

// SubscriptExpr indexes Array by Index.
type SubscriptExpr struct {
	ExprHeader
	Array Expr
	Index Expr
}

func (n *SubscriptExpr) Accept(v *Visitor) error { return visitNode(v, n, v.OnSubscriptExpr) }

// MemberExpr accesses a member of Object, via '.' or '->' (IsArrow).
type MemberExpr struct {
	ExprHeader
	Object  Expr
	Member  string
	IsArrow bool
}

func (n *MemberExpr) Accept(v *Visitor) error { return visitNode(v, n, v.OnMemberExpr) }

// CastExpr casts Operand to Type.
type CastExpr struct {
	ExprHeader
	Type    TypeSpec
	Operand Expr
}

func (n *CastExpr) Accept(v *Visitor) error { return visitNode(v, n, v.OnCastExpr) }
