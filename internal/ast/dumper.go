package ast

import (
	"bytes"
	"fmt"

	"github.com/fatih/color"
)

// DumperOptions configures Dump's output.
type DumperOptions struct {
	Indent      string // default "  "
	ShowLocation bool
	ShowTypes    bool
	ColorOutput  bool
}

// Dumper is the concrete visitor described in §4.8: it prints one line
// per node with an indent prefix, the node's type name, and kind-
// specific annotations. Handlers do not auto-recurse; each explicitly
// walks its own children (via dumpChild/dumpList) so it can interleave
// section labels like "Condition:"/"Then:"/"Body:" between them.
type Dumper struct {
	opts  DumperOptions
	out   *bytes.Buffer
	depth int
	count int
}

// Dump renders root (and its descendants) and returns the formatted text,
// including header/footer sentinel lines and the total node count.
func Dump(root Node, opts DumperOptions) string {
	if opts.Indent == "" {
		opts.Indent = "  "
	}
	d := &Dumper{opts: opts, out: &bytes.Buffer{}}
	d.out.WriteString("=== AST Dump ===\n")
	if root != nil {
		root.Accept(d.visitor())
	}
	fmt.Fprintf(d.out, "=== Total: %d nodes ===\n", d.count)
	return d.out.String()
}

func (d *Dumper) writeLine(text string) {
	for i := 0; i < d.depth; i++ {
		d.out.WriteString(d.opts.Indent)
	}
	line := docConcat(docText(text), docLineNode())
	d.out.Write(renderDoc(line, renderOptions{Indent: d.opts.Indent}))
}

func (d *Dumper) colorize(c *color.Color, s string) string {
	if !d.opts.ColorOutput {
		return s
	}
	return c.Sprint(s)
}

func (d *Dumper) header(n Node, annotation string) string {
	text := n.NodeKind().String()
	if annotation != "" {
		text += annotation
	}
	if d.opts.ShowLocation {
		text += " @ " + n.NodeLocation().String()
	}
	if d.opts.ShowTypes {
		if e, ok := n.(Expr); ok {
			text += " [type: " + typeAnnotation(e.ExprType()) + "]"
		}
	}
	return d.colorize(color.New(color.FgGreen), text)
}

// visitAnnotated emits the header line for n (counting it), then calls
// body with the depth incremented by one, so callers can emit labeled
// child sections or bare children underneath.
func (d *Dumper) visitAnnotated(n Node, annotation string, body func()) {
	d.count++
	d.writeLine(d.header(n, annotation))
	if body == nil {
		return
	}
	d.depth++
	body()
	d.depth--
}

// typeAnnotation renders an expression's reserved Type slot. No semantic
// phase exists in this module, so the slot is always nil in practice;
// this reads whatever is actually there instead of a hardcoded string,
// so a future type-checker's output shows up here automatically.
func typeAnnotation(t Node) string {
	if isNilNode(t) {
		return "<unresolved>"
	}
	return t.NodeKind().String()
}

func (d *Dumper) label(text string) {
	d.writeLine(d.colorize(color.New(color.FgCyan), text))
}

func (d *Dumper) dumpChild(n Node, label string) {
	if isNilNode(n) {
		return
	}
	if label != "" {
		d.label(label)
		d.depth++
		n.Accept(d.visitor())
		d.depth--
		return
	}
	n.Accept(d.visitor())
}

func (d *Dumper) dumpList(items []Node, label string) {
	d.label(fmt.Sprintf("%s (%d):", label, len(items)))
	d.depth++
	for _, it := range items {
		it.Accept(d.visitor())
	}
	d.depth--
}

func unaryFixedness(op UnaryOp) string {
	if op.IsPostfix() {
		return "(postfix)"
	}
	return "(prefix)"
}

// visitor builds the *Visitor whose per-kind slots drive the dump. A new
// one is built for every Accept call the dumper makes; its closures
// capture this Dumper instance.
func (d *Dumper) visitor() *Visitor {
	v := &Visitor{}

	v.OnLiteralExpr = func(n *LiteralExpr) error {
		d.visitAnnotated(n, fmt.Sprintf(": '%s'", n.Token.Lexeme), nil)
		return nil
	}
	v.OnIdentifierExpr = func(n *IdentifierExpr) error {
		d.visitAnnotated(n, fmt.Sprintf(": '%s'", n.Name), nil)
		return nil
	}
	v.OnBinaryExpr = func(n *BinaryExpr) error {
		d.visitAnnotated(n, fmt.Sprintf(": %s", n.Op), func() {
			d.dumpChild(n.Left, "Left:")
			d.dumpChild(n.Right, "Right:")
		})
		return nil
	}
	v.OnUnaryExpr = func(n *UnaryExpr) error {
		d.visitAnnotated(n, fmt.Sprintf(": %s %s", n.Op, unaryFixedness(n.Op)), func() {
			d.dumpChild(n.Operand, "")
		})
		return nil
	}
	v.OnAssignmentExpr = func(n *AssignmentExpr) error {
		d.visitAnnotated(n, fmt.Sprintf(": %s", n.Op), func() {
			d.dumpChild(n.Target, "Target:")
			d.dumpChild(n.Value, "Value:")
		})
		return nil
	}
	v.OnTernaryExpr = func(n *TernaryExpr) error {
		d.visitAnnotated(n, "", func() {
			d.dumpChild(n.Cond, "Condition:")
			d.dumpChild(n.Then, "Then:")
			d.dumpChild(n.Else, "Else:")
		})
		return nil
	}
	v.OnCallExpr = func(n *CallExpr) error {
		d.visitAnnotated(n, "", func() {
			d.dumpChild(n.Callee, "Callee:")
			args := make([]Node, len(n.Args))
			for i, a := range n.Args {
				args[i] = a
			}
			d.dumpList(args, "Arguments")
		})
		return nil
	}
	v.OnSubscriptExpr = func(n *SubscriptExpr) error {
		d.visitAnnotated(n, "", func() {
			d.dumpChild(n.Array, "Array:")
			d.dumpChild(n.Index, "Index:")
		})
		return nil
	}
	v.OnMemberExpr = func(n *MemberExpr) error {
		op := "."
		if n.IsArrow {
			op = "->"
		}
		d.visitAnnotated(n, fmt.Sprintf(": '%s' (%s)", n.Member, op), func() {
			d.dumpChild(n.Object, "Object:")
		})
		return nil
	}
	v.OnCastExpr = func(n *CastExpr) error {
		d.visitAnnotated(n, "", func() {
			d.dumpChild(n.Type, "Type:")
			d.dumpChild(n.Operand, "Operand:")
		})
		return nil
	}

	v.OnExpressionStmt = func(n *ExpressionStmt) error {
		d.visitAnnotated(n, "", func() { d.dumpChild(n.Expr, "") })
		return nil
	}
	v.OnCompoundStmt = func(n *CompoundStmt) error {
		d.visitAnnotated(n, "", func() {
			if len(n.Declarations) > 0 {
				decls := make([]Node, len(n.Declarations))
				for i, dd := range n.Declarations {
					decls[i] = dd
				}
				d.dumpList(decls, "Declarations")
			}
			if len(n.Statements) > 0 {
				stmts := make([]Node, len(n.Statements))
				for i, s := range n.Statements {
					stmts[i] = s
				}
				d.dumpList(stmts, "Statements")
			}
		})
		return nil
	}
	v.OnIfStmt = func(n *IfStmt) error {
		d.visitAnnotated(n, "", func() {
			d.dumpChild(n.Cond, "Condition:")
			d.dumpChild(n.Then, "Then:")
			d.dumpChild(n.Else, "Else:")
		})
		return nil
	}
	v.OnWhileStmt = func(n *WhileStmt) error {
		d.visitAnnotated(n, "", func() {
			d.dumpChild(n.Cond, "Condition:")
			d.dumpChild(n.Body, "Body:")
		})
		return nil
	}
	v.OnDoWhileStmt = func(n *DoWhileStmt) error {
		d.visitAnnotated(n, "", func() {
			d.dumpChild(n.Body, "Body:")
			d.dumpChild(n.Cond, "Condition:")
		})
		return nil
	}
	v.OnForStmt = func(n *ForStmt) error {
		d.visitAnnotated(n, "", func() {
			d.dumpChild(n.Init, "Init:")
			d.dumpChild(n.Cond, "Condition:")
			d.dumpChild(n.Increment, "Increment:")
			d.dumpChild(n.Body, "Body:")
		})
		return nil
	}
	v.OnReturnStmt = func(n *ReturnStmt) error {
		d.visitAnnotated(n, "", func() { d.dumpChild(n.Value, "") })
		return nil
	}
	v.OnBreakStmt = func(n *BreakStmt) error {
		d.visitAnnotated(n, "", nil)
		return nil
	}
	v.OnContinueStmt = func(n *ContinueStmt) error {
		d.visitAnnotated(n, "", nil)
		return nil
	}
	v.OnSwitchStmt = func(n *SwitchStmt) error {
		d.visitAnnotated(n, "", func() {
			d.dumpChild(n.Cond, "Condition:")
			cases := make([]Node, len(n.Cases))
			for i, c := range n.Cases {
				cases[i] = c
			}
			d.dumpList(cases, "Cases")
		})
		return nil
	}
	v.OnCaseStmt = func(n *CaseStmt) error {
		annotation := ": default"
		if n.CaseKind == CaseLabel {
			annotation = ""
		}
		d.visitAnnotated(n, annotation, func() {
			d.dumpChild(n.Value, "Value:")
			d.dumpChild(n.Body, "Body:")
		})
		return nil
	}
	v.OnLabeledStmt = func(n *LabeledStmt) error {
		d.visitAnnotated(n, fmt.Sprintf(": '%s'", n.Label), func() {
			d.dumpChild(n.Body, "")
		})
		return nil
	}
	v.OnGotoStmt = func(n *GotoStmt) error {
		d.visitAnnotated(n, fmt.Sprintf(": '%s'", n.Label), nil)
		return nil
	}

	v.OnVariableDecl = func(n *VariableDecl) error {
		d.visitAnnotated(n, fmt.Sprintf(": '%s'", n.Name), func() {
			d.dumpChild(n.Type, "Type:")
			d.dumpChild(n.Init, "Init:")
		})
		return nil
	}
	v.OnFunctionDecl = func(n *FunctionDecl) error {
		d.visitAnnotated(n, fmt.Sprintf(": '%s'", n.Name), func() {
			d.dumpChild(n.ReturnType, "ReturnType:")
			if len(n.Parameters) > 0 {
				params := make([]Node, len(n.Parameters))
				for i, p := range n.Parameters {
					params[i] = p
				}
				d.dumpList(params, "Parameters")
			}
			if n.Body != nil {
				d.dumpChild(n.Body, "Body:")
			}
		})
		return nil
	}
	v.OnStructDecl = func(n *StructDecl) error {
		name := "<anonymous>"
		if n.Name != "" {
			name = "'" + n.Name + "'"
		}
		d.visitAnnotated(n, ": "+name, func() {
			members := make([]Node, len(n.Members))
			for i, m := range n.Members {
				members[i] = m
			}
			d.dumpList(members, "Members")
		})
		return nil
	}
	v.OnUnionDecl = func(n *UnionDecl) error {
		name := "<anonymous>"
		if n.Name != "" {
			name = "'" + n.Name + "'"
		}
		d.visitAnnotated(n, ": "+name, func() {
			members := make([]Node, len(n.Members))
			for i, m := range n.Members {
				members[i] = m
			}
			d.dumpList(members, "Members")
		})
		return nil
	}
	v.OnEnumDecl = func(n *EnumDecl) error {
		name := "<anonymous>"
		if n.Name != "" {
			name = "'" + n.Name + "'"
		}
		d.visitAnnotated(n, ": "+name, func() {
			for _, c := range n.Constants {
				d.label(fmt.Sprintf("'%s'", c.Name))
				if c.Value != nil {
					d.depth++
					d.dumpChild(c.Value, "Value:")
					d.depth--
				}
			}
		})
		return nil
	}
	v.OnTypedefDecl = func(n *TypedefDecl) error {
		d.visitAnnotated(n, fmt.Sprintf(": '%s'", n.Name), func() {
			d.dumpChild(n.Type, "Type:")
		})
		return nil
	}
	v.OnTranslationUnit = func(n *TranslationUnit) error {
		d.visitAnnotated(n, "", func() {
			decls := make([]Node, len(n.Declarations))
			for i, dd := range n.Declarations {
				decls[i] = dd
			}
			for _, dd := range decls {
				dd.Accept(d.visitor())
			}
		})
		return nil
	}

	v.OnBasicType = func(n *BasicType) error {
		annotation := ": " + n.BasicKind.String()
		flags := ""
		if n.Long {
			flags += " long"
		}
		if n.Short {
			flags += " short"
		}
		if n.Signed {
			flags += " signed"
		}
		if n.Unsigned {
			flags += " unsigned"
		}
		d.visitAnnotated(n, annotation+flags, nil)
		return nil
	}
	v.OnPointerType = func(n *PointerType) error {
		d.visitAnnotated(n, "", func() { d.dumpChild(n.Base, "") })
		return nil
	}
	v.OnArrayType = func(n *ArrayType) error {
		annotation := ""
		if n.IsVLA() {
			annotation = " [VLA]"
		}
		d.visitAnnotated(n, annotation, func() {
			d.dumpChild(n.Element, "Element:")
			if n.Size != nil {
				d.dumpChild(n.Size, "Size:")
			}
		})
		return nil
	}
	v.OnFunctionType = func(n *FunctionType) error {
		annotation := ""
		if n.Variadic {
			annotation = " [variadic]"
		}
		d.visitAnnotated(n, annotation, func() {
			d.dumpChild(n.ReturnType, "ReturnType:")
			params := make([]Node, len(n.Parameters))
			for i, p := range n.Parameters {
				params[i] = p
			}
			if len(params) > 0 {
				d.dumpList(params, "Parameters")
			}
		})
		return nil
	}
	v.OnStructRefType = func(n *StructRefType) error {
		d.visitAnnotated(n, refAnnotation(n.Name, n.Decl == nil), nil)
		return nil
	}
	v.OnUnionRefType = func(n *UnionRefType) error {
		d.visitAnnotated(n, refAnnotation(n.Name, n.Decl == nil), nil)
		return nil
	}
	v.OnEnumRefType = func(n *EnumRefType) error {
		d.visitAnnotated(n, refAnnotation(n.Name, n.Decl == nil), nil)
		return nil
	}
	v.OnTypedefNameRefType = func(n *TypedefNameRefType) error {
		d.visitAnnotated(n, fmt.Sprintf(": '%s'", n.Name), nil)
		return nil
	}

	return v
}

func refAnnotation(name string, forward bool) string {
	label := "<anonymous>"
	if name != "" {
		label = "'" + name + "'"
	}
	text := ": " + label
	if forward {
		text += " [forward]"
	}
	return text
}
