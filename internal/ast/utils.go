package ast

import (
	"reflect"

	"github.com/taogeice/cfront/internal/diag"
)

// Children is the table-driven child enumeration for the tree: Walk,
// CountDescendants, Depth, ChildCount, FindChildrenByKind, FindAllByKind
// and Validate consume it instead of re-deriving child lists per kind.
// Clone, Equals and the Dumper do not call it; each switches over the
// concrete node types itself.
func Children(n Node) []Node {
	switch t := n.(type) {
	case *LiteralExpr, *IdentifierExpr, *BreakStmt, *ContinueStmt, *GotoStmt,
		*BasicType, *StructRefType, *UnionRefType, *EnumRefType, *TypedefNameRefType:
		return nil

	case *BinaryExpr:
		return nodes(t.Left, t.Right)
	case *UnaryExpr:
		return nodes(t.Operand)
	case *AssignmentExpr:
		return nodes(t.Target, t.Value)
	case *TernaryExpr:
		return nodes(t.Cond, t.Then, t.Else)
	case *CallExpr:
		out := nodes(t.Callee)
		for _, a := range t.Args {
			out = append(out, nodes(a)...)
		}
		return out
	case *SubscriptExpr:
		return nodes(t.Array, t.Index)
	case *MemberExpr:
		return nodes(t.Object)
	case *CastExpr:
		return nodes(t.Type, t.Operand)

	case *ExpressionStmt:
		return nodes(t.Expr)
	case *CompoundStmt:
		var out []Node
		for _, d := range t.Declarations {
			out = append(out, nodes(d)...)
		}
		for _, s := range t.Statements {
			out = append(out, nodes(s)...)
		}
		return out
	case *IfStmt:
		return nodes(t.Cond, t.Then, t.Else)
	case *WhileStmt:
		return nodes(t.Cond, t.Body)
	case *DoWhileStmt:
		return nodes(t.Body, t.Cond)
	case *ForStmt:
		return nodes(t.Init, t.Cond, t.Increment, t.Body)
	case *ReturnStmt:
		return nodes(t.Value)
	case *SwitchStmt:
		out := nodes(t.Cond)
		for _, c := range t.Cases {
			out = append(out, nodes(c)...)
		}
		return out
	case *CaseStmt:
		return nodes(t.Value, t.Body)
	case *LabeledStmt:
		return nodes(t.Body)

	case *VariableDecl:
		return nodes(t.Type, t.Init)
	case *FunctionDecl:
		out := nodes(t.ReturnType)
		for _, p := range t.Parameters {
			out = append(out, nodes(p)...)
		}
		out = append(out, nodes(t.Body)...)
		return out
	case *StructDecl:
		var out []Node
		for _, m := range t.Members {
			out = append(out, nodes(m)...)
		}
		return out
	case *UnionDecl:
		var out []Node
		for _, m := range t.Members {
			out = append(out, nodes(m)...)
		}
		return out
	case *EnumDecl:
		var out []Node
		for _, c := range t.Constants {
			out = append(out, nodes(c.Value)...)
		}
		return out
	case *TypedefDecl:
		return nodes(t.Type)
	case *TranslationUnit:
		var out []Node
		for _, d := range t.Declarations {
			out = append(out, nodes(d)...)
		}
		return out

	case *PointerType:
		return nodes(t.Base)
	case *ArrayType:
		return nodes(t.Element, t.Size)
	case *FunctionType:
		out := nodes(t.ReturnType)
		for _, p := range t.Parameters {
			out = append(out, nodes(p)...)
		}
		return out

	default:
		return nil
	}
}

// nodes filters out nil children (both a bare nil interface and a
// typed-nil pointer boxed in an interface) and returns the rest as Node.
func nodes(children ...Node) []Node {
	var out []Node
	for _, c := range children {
		if !isNilNode(c) {
			out = append(out, c)
		}
	}
	return out
}

func isNilNode(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// CountDescendants returns 1 + the number of distinct nodes reachable
// from root via Children.
func CountDescendants(root Node) int {
	if root == nil {
		return 0
	}
	count := 1
	for _, c := range Children(root) {
		count += CountDescendants(c)
	}
	return count
}

// Depth returns 1 + the maximum depth of root's children, or 0 if root
// is nil.
func Depth(root Node) int {
	if root == nil {
		return 0
	}
	maxChild := 0
	for _, c := range Children(root) {
		if d := Depth(c); d > maxChild {
			maxChild = d
		}
	}
	return 1 + maxChild
}

// ChildCount returns the number of direct children of n.
func ChildCount(n Node) int {
	return len(Children(n))
}

// FindChildrenByKind returns the direct children of n whose Kind equals
// kind.
func FindChildrenByKind(n Node, kind Kind) []Node {
	var out []Node
	for _, c := range Children(n) {
		if c.NodeKind() == kind {
			out = append(out, c)
		}
	}
	return out
}

// FindParentByKind walks n's parent back-references upward and returns
// the nearest ancestor whose Kind equals kind, or nil if none matches.
func FindParentByKind(n Node, kind Kind) Node {
	for p := n.NodeParent(); p != nil; p = p.NodeParent() {
		if p.NodeKind() == kind {
			return p
		}
	}
	return nil
}

// FindAllByKind performs an iterative DFS over root using an explicit
// stack, returning every descendant (root included) whose Kind equals
// kind, in pre-order.
func FindAllByKind(root Node, kind Kind) []Node {
	if root == nil {
		return nil
	}
	var out []Node
	stack := []Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.NodeKind() == kind {
			out = append(out, n)
		}
		children := Children(n)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return out
}

// Validate performs per-kind structural checks (§4.7) over the subtree
// rooted at n, reporting violations through diags if non-nil. It
// returns true iff no violation was found anywhere in the subtree.
func Validate(n Node, diags *diag.Engine) bool {
	ok := validateNode(n, diags)
	for _, c := range Children(n) {
		if !Validate(c, diags) {
			ok = false
		}
	}
	return ok
}

func validateNode(n Node, diags *diag.Engine) bool {
	report := func(format string, args ...any) bool {
		if diags != nil {
			diags.Report(diag.Error, n.NodeLocation(), format, args...)
		}
		return false
	}

	switch t := n.(type) {
	case *LiteralExpr:
		if !t.Token.IsValid() {
			return report("literal expression has an invalid token kind")
		}
	case *IdentifierExpr:
		if t.Name == "" {
			return report("identifier expression has an empty name")
		}
	case *BinaryExpr:
		if t.Left == nil || t.Right == nil {
			return report("binary expression %q is missing an operand", t.Op)
		}
	case *AssignmentExpr:
		if t.Target == nil || t.Value == nil {
			return report("assignment expression %q is missing an operand", t.Op)
		}
	case *IfStmt:
		if t.Cond == nil || t.Then == nil {
			return report("if statement is missing a condition or a then-branch")
		}
	case *WhileStmt:
		if t.Cond == nil || t.Body == nil {
			return report("while statement is missing a condition or a body")
		}
	case *DoWhileStmt:
		if t.Cond == nil || t.Body == nil {
			return report("do-while statement is missing a condition or a body")
		}
	case *CaseStmt:
		if t.CaseKind == CaseLabel && t.Value == nil {
			return report("case statement requires a value")
		}
		if t.CaseKind == CaseDefault && t.Value != nil {
			return report("default statement must not carry a value")
		}
	case *VariableDecl:
		if t.Type == nil || t.Name == "" {
			return report("variable declaration %q requires a type and a name", t.Name)
		}
	case *FunctionDecl:
		if t.ReturnType == nil || t.Name == "" {
			return report("function declaration %q requires a return type and a name", t.Name)
		}
	}
	return true
}
