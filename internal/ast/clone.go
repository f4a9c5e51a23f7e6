package ast

// Clone deep-copies the subtrees rooted at n: every owned child is
// copied recursively, operator kinds and flags are preserved, and
// back-references are rebuilt fresh by attach rather than copied (a
// cloned subtree has no parent until the caller attaches it somewhere).
// Clone was left as declared-but-unimplemented by the teacher's
// tree-sitter-backed counterpart, which never needed structural clone on
// an immutable parsed tree; here it is a type switch over every concrete
// node type and does not go through Children.
func Clone(n Node) Node {
	if isNilNode(n) {
		return nil
	}

	switch t := n.(type) {
	case *LiteralExpr:
		c := &LiteralExpr{ExprHeader: t.ExprHeader, Token: t.Token}
		c.Parent = nil
		return c
	case *IdentifierExpr:
		c := &IdentifierExpr{ExprHeader: t.ExprHeader, Name: t.Name}
		c.Parent = nil
		return c
	case *BinaryExpr:
		c := &BinaryExpr{ExprHeader: t.ExprHeader, Op: t.Op, Left: cloneChild(t.Left), Right: cloneChild(t.Right)}
		c.Parent = nil
		attach(c, c.Left)
		attach(c, c.Right)
		return c
	case *UnaryExpr:
		c := &UnaryExpr{ExprHeader: t.ExprHeader, Op: t.Op, Operand: cloneChild(t.Operand)}
		c.Parent = nil
		attach(c, c.Operand)
		return c
	case *AssignmentExpr:
		c := &AssignmentExpr{ExprHeader: t.ExprHeader, Op: t.Op, Target: cloneChild(t.Target), Value: cloneChild(t.Value)}
		c.Parent = nil
		attach(c, c.Target)
		attach(c, c.Value)
		return c
	case *TernaryExpr:
		c := &TernaryExpr{ExprHeader: t.ExprHeader, Cond: cloneChild(t.Cond), Then: cloneChild(t.Then), Else: cloneChild(t.Else)}
		c.Parent = nil
		attach(c, c.Cond)
		attach(c, c.Then)
		attach(c, c.Else)
		return c
	case *CallExpr:
		c := &CallExpr{ExprHeader: t.ExprHeader, Callee: cloneChild(t.Callee)}
		c.Parent = nil
		for _, a := range t.Args {
			c.Args = append(c.Args, cloneChild(a))
		}
		attach(c, c.Callee)
		for _, a := range c.Args {
			attach(c, a)
		}
		return c
	case *SubscriptExpr:
		c := &SubscriptExpr{ExprHeader: t.ExprHeader, Array: cloneChild(t.Array), Index: cloneChild(t.Index)}
		c.Parent = nil
		attach(c, c.Array)
		attach(c, c.Index)
		return c
	case *MemberExpr:
		c := &MemberExpr{ExprHeader: t.ExprHeader, Object: cloneChild(t.Object), Member: t.Member, IsArrow: t.IsArrow}
		c.Parent = nil
		attach(c, c.Object)
		return c
	case *CastExpr:
		c := &CastExpr{ExprHeader: t.ExprHeader, Type: cloneChild(t.Type), Operand: cloneChild(t.Operand)}
		c.Parent = nil
		attach(c, c.Type)
		attach(c, c.Operand)
		return c

	case *ExpressionStmt:
		c := &ExpressionStmt{StmtHeader: t.StmtHeader, Expr: cloneChild(t.Expr)}
		c.Parent = nil
		attach(c, c.Expr)
		return c
	case *CompoundStmt:
		c := &CompoundStmt{StmtHeader: t.StmtHeader}
		c.Parent = nil
		for _, d := range t.Declarations {
			c.Declarations = append(c.Declarations, cloneChild(d))
		}
		for _, s := range t.Statements {
			c.Statements = append(c.Statements, cloneChild(s))
		}
		for _, d := range c.Declarations {
			attach(c, d)
		}
		for _, s := range c.Statements {
			attach(c, s)
		}
		return c
	case *IfStmt:
		c := &IfStmt{StmtHeader: t.StmtHeader, Cond: cloneChild(t.Cond), Then: cloneChild(t.Then), Else: cloneChild(t.Else)}
		c.Parent = nil
		attach(c, c.Cond)
		attach(c, c.Then)
		attach(c, c.Else)
		return c
	case *WhileStmt:
		c := &WhileStmt{StmtHeader: t.StmtHeader, Cond: cloneChild(t.Cond), Body: cloneChild(t.Body)}
		c.Parent = nil
		attach(c, c.Cond)
		attach(c, c.Body)
		return c
	case *DoWhileStmt:
		c := &DoWhileStmt{StmtHeader: t.StmtHeader, Body: cloneChild(t.Body), Cond: cloneChild(t.Cond)}
		c.Parent = nil
		attach(c, c.Body)
		attach(c, c.Cond)
		return c
	case *ForStmt:
		c := &ForStmt{StmtHeader: t.StmtHeader, Init: cloneChild(t.Init), Cond: cloneChild(t.Cond), Increment: cloneChild(t.Increment), Body: cloneChild(t.Body)}
		c.Parent = nil
		attach(c, c.Init)
		attach(c, c.Cond)
		attach(c, c.Increment)
		attach(c, c.Body)
		return c
	case *ReturnStmt:
		c := &ReturnStmt{StmtHeader: t.StmtHeader, Value: cloneChild(t.Value)}
		c.Parent = nil
		attach(c, c.Value)
		return c
	case *BreakStmt:
		c := &BreakStmt{StmtHeader: t.StmtHeader}
		c.Parent = nil
		return c
	case *ContinueStmt:
		c := &ContinueStmt{StmtHeader: t.StmtHeader}
		c.Parent = nil
		return c
	case *SwitchStmt:
		c := &SwitchStmt{StmtHeader: t.StmtHeader, Cond: cloneChild(t.Cond)}
		c.Parent = nil
		for _, cs := range t.Cases {
			c.Cases = append(c.Cases, cloneChild(cs))
		}
		attach(c, c.Cond)
		for _, cs := range c.Cases {
			attach(c, cs)
		}
		return c
	case *CaseStmt:
		c := &CaseStmt{StmtHeader: t.StmtHeader, CaseKind: t.CaseKind, Value: cloneChild(t.Value), Body: cloneChild(t.Body)}
		c.Parent = nil
		attach(c, c.Value)
		attach(c, c.Body)
		return c
	case *LabeledStmt:
		c := &LabeledStmt{StmtHeader: t.StmtHeader, Label: t.Label, Body: cloneChild(t.Body)}
		c.Parent = nil
		attach(c, c.Body)
		return c
	case *GotoStmt:
		c := &GotoStmt{StmtHeader: t.StmtHeader, Label: t.Label}
		c.Parent = nil
		return c

	case *VariableDecl:
		c := &VariableDecl{DeclHeader: t.DeclHeader, Type: cloneChild(t.Type), Init: cloneChild(t.Init)}
		c.Parent = nil
		attach(c, c.Type)
		attach(c, c.Init)
		return c
	case *FunctionDecl:
		c := &FunctionDecl{DeclHeader: t.DeclHeader, ReturnType: cloneChild(t.ReturnType)}
		c.Parent = nil
		for _, p := range t.Parameters {
			c.Parameters = append(c.Parameters, cloneChild(p))
		}
		if t.Body != nil {
			c.Body = cloneChild(t.Body)
		}
		attach(c, c.ReturnType)
		for _, p := range c.Parameters {
			attach(c, p)
		}
		if c.Body != nil {
			attach(c, c.Body)
		}
		return c
	case *StructDecl:
		c := &StructDecl{DeclHeader: t.DeclHeader}
		c.Parent = nil
		for _, m := range t.Members {
			c.Members = append(c.Members, cloneChild(m))
		}
		for _, m := range c.Members {
			attach(c, m)
		}
		return c
	case *UnionDecl:
		c := &UnionDecl{DeclHeader: t.DeclHeader}
		c.Parent = nil
		for _, m := range t.Members {
			c.Members = append(c.Members, cloneChild(m))
		}
		for _, m := range c.Members {
			attach(c, m)
		}
		return c
	case *EnumDecl:
		c := &EnumDecl{DeclHeader: t.DeclHeader}
		c.Parent = nil
		for _, ec := range t.Constants {
			c.Constants = append(c.Constants, EnumConstant{Name: ec.Name, Value: cloneChild(ec.Value)})
		}
		for _, ec := range c.Constants {
			attach(c, ec.Value)
		}
		return c
	case *TypedefDecl:
		c := &TypedefDecl{DeclHeader: t.DeclHeader, Type: cloneChild(t.Type)}
		c.Parent = nil
		attach(c, c.Type)
		return c
	case *TranslationUnit:
		c := &TranslationUnit{Header: t.Header}
		c.Parent = nil
		for _, d := range t.Declarations {
			c.Declarations = append(c.Declarations, cloneChild(d))
		}
		for _, d := range c.Declarations {
			attach(c, d)
		}
		return c

	case *BasicType:
		c := &BasicType{TypeSpecHeader: t.TypeSpecHeader, BasicKind: t.BasicKind, Long: t.Long, Short: t.Short, Signed: t.Signed, Unsigned: t.Unsigned}
		c.Parent = nil
		return c
	case *PointerType:
		c := &PointerType{TypeSpecHeader: t.TypeSpecHeader, Base: cloneChild(t.Base)}
		c.Parent = nil
		attach(c, c.Base)
		return c
	case *ArrayType:
		c := &ArrayType{TypeSpecHeader: t.TypeSpecHeader, Element: cloneChild(t.Element), Size: cloneChild(t.Size)}
		c.Parent = nil
		attach(c, c.Element)
		attach(c, c.Size)
		return c
	case *FunctionType:
		c := &FunctionType{TypeSpecHeader: t.TypeSpecHeader, ReturnType: cloneChild(t.ReturnType), Variadic: t.Variadic}
		c.Parent = nil
		for _, p := range t.Parameters {
			c.Parameters = append(c.Parameters, cloneChild(p))
		}
		attach(c, c.ReturnType)
		for _, p := range c.Parameters {
			attach(c, p)
		}
		return c
	case *StructRefType:
		c := &StructRefType{TypeSpecHeader: t.TypeSpecHeader, Name: t.Name, Decl: t.Decl}
		c.Parent = nil
		return c
	case *UnionRefType:
		c := &UnionRefType{TypeSpecHeader: t.TypeSpecHeader, Name: t.Name, Decl: t.Decl}
		c.Parent = nil
		return c
	case *EnumRefType:
		c := &EnumRefType{TypeSpecHeader: t.TypeSpecHeader, Name: t.Name, Decl: t.Decl}
		c.Parent = nil
		return c
	case *TypedefNameRefType:
		c := &TypedefNameRefType{TypeSpecHeader: t.TypeSpecHeader, Name: t.Name, Decl: t.Decl}
		c.Parent = nil
		return c

	default:
		return nil
	}
}

func cloneChild[T Node](n T) T {
	var zero T
	if isNilNode(n) {
		return zero
	}
	return Clone(n).(T)
}

// Equals performs a recursive structural comparison of a and b: operator
// kinds, flags, names, and literal payloads must match, and every
// descendant pair (in stored order) must also compare equal. Parent
// back-references are excluded, matching the declared-but-unimplemented
// contract in §4.7.
func Equals(a, b Node) bool {
	if isNilNode(a) && isNilNode(b) {
		return true
	}
	if isNilNode(a) != isNilNode(b) {
		return false
	}
	if a.NodeFamily() != b.NodeFamily() || a.NodeKind() != b.NodeKind() {
		return false
	}

	switch at := a.(type) {
	case *LiteralExpr:
		bt := b.(*LiteralExpr)
		return at.Token.Equal(bt.Token)
	case *IdentifierExpr:
		bt := b.(*IdentifierExpr)
		return at.Name == bt.Name
	case *BinaryExpr:
		bt := b.(*BinaryExpr)
		return at.Op == bt.Op && Equals(at.Left, bt.Left) && Equals(at.Right, bt.Right)
	case *UnaryExpr:
		bt := b.(*UnaryExpr)
		return at.Op == bt.Op && Equals(at.Operand, bt.Operand)
	case *AssignmentExpr:
		bt := b.(*AssignmentExpr)
		return at.Op == bt.Op && Equals(at.Target, bt.Target) && Equals(at.Value, bt.Value)
	case *TernaryExpr:
		bt := b.(*TernaryExpr)
		return Equals(at.Cond, bt.Cond) && Equals(at.Then, bt.Then) && Equals(at.Else, bt.Else)
	case *CallExpr:
		bt := b.(*CallExpr)
		if !Equals(at.Callee, bt.Callee) || len(at.Args) != len(bt.Args) {
			return false
		}
		for i := range at.Args {
			if !Equals(at.Args[i], bt.Args[i]) {
				return false
			}
		}
		return true
	case *SubscriptExpr:
		bt := b.(*SubscriptExpr)
		return Equals(at.Array, bt.Array) && Equals(at.Index, bt.Index)
	case *MemberExpr:
		bt := b.(*MemberExpr)
		return at.Member == bt.Member && at.IsArrow == bt.IsArrow && Equals(at.Object, bt.Object)
	case *CastExpr:
		bt := b.(*CastExpr)
		return Equals(at.Type, bt.Type) && Equals(at.Operand, bt.Operand)

	case *ExpressionStmt:
		bt := b.(*ExpressionStmt)
		return Equals(at.Expr, bt.Expr)
	case *CompoundStmt:
		bt := b.(*CompoundStmt)
		if len(at.Declarations) != len(bt.Declarations) || len(at.Statements) != len(bt.Statements) {
			return false
		}
		for i := range at.Declarations {
			if !Equals(at.Declarations[i], bt.Declarations[i]) {
				return false
			}
		}
		for i := range at.Statements {
			if !Equals(at.Statements[i], bt.Statements[i]) {
				return false
			}
		}
		return true
	case *IfStmt:
		bt := b.(*IfStmt)
		return Equals(at.Cond, bt.Cond) && Equals(at.Then, bt.Then) && Equals(at.Else, bt.Else)
	case *WhileStmt:
		bt := b.(*WhileStmt)
		return Equals(at.Cond, bt.Cond) && Equals(at.Body, bt.Body)
	case *DoWhileStmt:
		bt := b.(*DoWhileStmt)
		return Equals(at.Cond, bt.Cond) && Equals(at.Body, bt.Body)
	case *ForStmt:
		bt := b.(*ForStmt)
		return Equals(at.Init, bt.Init) && Equals(at.Cond, bt.Cond) && Equals(at.Increment, bt.Increment) && Equals(at.Body, bt.Body)
	case *ReturnStmt:
		bt := b.(*ReturnStmt)
		return Equals(at.Value, bt.Value)
	case *BreakStmt, *ContinueStmt:
		return true
	case *SwitchStmt:
		bt := b.(*SwitchStmt)
		if !Equals(at.Cond, bt.Cond) || len(at.Cases) != len(bt.Cases) {
			return false
		}
		for i := range at.Cases {
			if !Equals(at.Cases[i], bt.Cases[i]) {
				return false
			}
		}
		return true
	case *CaseStmt:
		bt := b.(*CaseStmt)
		return at.CaseKind == bt.CaseKind && Equals(at.Value, bt.Value) && Equals(at.Body, bt.Body)
	case *LabeledStmt:
		bt := b.(*LabeledStmt)
		return at.Label == bt.Label && Equals(at.Body, bt.Body)
	case *GotoStmt:
		bt := b.(*GotoStmt)
		return at.Label == bt.Label

	case *VariableDecl:
		bt := b.(*VariableDecl)
		return at.Name == bt.Name && at.StorageClass == bt.StorageClass && Equals(at.Type, bt.Type) && Equals(at.Init, bt.Init)
	case *FunctionDecl:
		bt := b.(*FunctionDecl)
		if at.Name != bt.Name || at.StorageClass != bt.StorageClass || !Equals(at.ReturnType, bt.ReturnType) || len(at.Parameters) != len(bt.Parameters) {
			return false
		}
		for i := range at.Parameters {
			if !Equals(at.Parameters[i], bt.Parameters[i]) {
				return false
			}
		}
		return Equals(Node(at.Body), Node(bt.Body))
	case *StructDecl:
		bt := b.(*StructDecl)
		return at.Name == bt.Name && equalDeclSlices(at.Members, bt.Members)
	case *UnionDecl:
		bt := b.(*UnionDecl)
		return at.Name == bt.Name && equalDeclSlices(at.Members, bt.Members)
	case *EnumDecl:
		bt := b.(*EnumDecl)
		if at.Name != bt.Name || len(at.Constants) != len(bt.Constants) {
			return false
		}
		for i := range at.Constants {
			if at.Constants[i].Name != bt.Constants[i].Name || !Equals(at.Constants[i].Value, bt.Constants[i].Value) {
				return false
			}
		}
		return true
	case *TypedefDecl:
		bt := b.(*TypedefDecl)
		return at.Name == bt.Name && Equals(at.Type, bt.Type)
	case *TranslationUnit:
		bt := b.(*TranslationUnit)
		return equalDeclSlices(at.Declarations, bt.Declarations)

	case *BasicType:
		bt := b.(*BasicType)
		return at.BasicKind == bt.BasicKind && at.Long == bt.Long && at.Short == bt.Short && at.Signed == bt.Signed && at.Unsigned == bt.Unsigned
	case *PointerType:
		bt := b.(*PointerType)
		return Equals(at.Base, bt.Base)
	case *ArrayType:
		bt := b.(*ArrayType)
		return Equals(at.Element, bt.Element) && Equals(at.Size, bt.Size)
	case *FunctionType:
		bt := b.(*FunctionType)
		if !Equals(at.ReturnType, bt.ReturnType) || at.Variadic != bt.Variadic || len(at.Parameters) != len(bt.Parameters) {
			return false
		}
		for i := range at.Parameters {
			if !Equals(at.Parameters[i], bt.Parameters[i]) {
				return false
			}
		}
		return true
	case *StructRefType:
		bt := b.(*StructRefType)
		return at.Name == bt.Name && at.Decl == bt.Decl
	case *UnionRefType:
		bt := b.(*UnionRefType)
		return at.Name == bt.Name && at.Decl == bt.Decl
	case *EnumRefType:
		bt := b.(*EnumRefType)
		return at.Name == bt.Name && at.Decl == bt.Decl
	case *TypedefNameRefType:
		bt := b.(*TypedefNameRefType)
		return at.Name == bt.Name && at.Decl == bt.Decl

	default:
		return false
	}
}

func equalDeclSlices(a, b []Decl) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equals(a[i], b[i]) {
			return false
		}
	}
	return true
}
