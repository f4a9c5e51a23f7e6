package ast

// Visitor is a record of per-kind function slots plus the generic hooks
// described in §4.5: before_visit gates whether a node (and, by
// implication, anything the handler chooses to recurse into) is visited
// at all; after_visit always runs once the kind-specific (or default)
// handler has returned. Handlers do not auto-recurse — each is
// responsible for explicitly calling Accept on whichever children it
// wants visited, which is what lets the Dumper interleave its own labels
// between children.
type Visitor struct {
	BeforeVisit func(Node) bool
	AfterVisit  func(Node)
	OnError     func(Node, string)

	// VisitDefault runs for any kind whose specific slot is unset.
	VisitDefault func(Node) error

	OnLiteralExpr    func(*LiteralExpr) error
	OnIdentifierExpr func(*IdentifierExpr) error
	OnBinaryExpr     func(*BinaryExpr) error
	OnUnaryExpr      func(*UnaryExpr) error
	OnAssignmentExpr func(*AssignmentExpr) error
	OnTernaryExpr    func(*TernaryExpr) error
	OnCallExpr       func(*CallExpr) error
	OnSubscriptExpr  func(*SubscriptExpr) error
	OnMemberExpr     func(*MemberExpr) error
	OnCastExpr       func(*CastExpr) error

	OnExpressionStmt func(*ExpressionStmt) error
	OnCompoundStmt   func(*CompoundStmt) error
	OnIfStmt         func(*IfStmt) error
	OnWhileStmt      func(*WhileStmt) error
	OnDoWhileStmt    func(*DoWhileStmt) error
	OnForStmt        func(*ForStmt) error
	OnReturnStmt     func(*ReturnStmt) error
	OnBreakStmt      func(*BreakStmt) error
	OnContinueStmt   func(*ContinueStmt) error
	OnSwitchStmt     func(*SwitchStmt) error
	OnCaseStmt       func(*CaseStmt) error
	OnLabeledStmt    func(*LabeledStmt) error
	OnGotoStmt       func(*GotoStmt) error

	OnVariableDecl    func(*VariableDecl) error
	OnFunctionDecl    func(*FunctionDecl) error
	OnStructDecl      func(*StructDecl) error
	OnUnionDecl       func(*UnionDecl) error
	OnEnumDecl        func(*EnumDecl) error
	OnTypedefDecl     func(*TypedefDecl) error
	OnTranslationUnit func(*TranslationUnit) error

	OnBasicType          func(*BasicType) error
	OnPointerType         func(*PointerType) error
	OnArrayType           func(*ArrayType) error
	OnFunctionType        func(*FunctionType) error
	OnStructRefType       func(*StructRefType) error
	OnUnionRefType        func(*UnionRefType) error
	OnEnumRefType         func(*EnumRefType) error
	OnTypedefNameRefType  func(*TypedefNameRefType) error
}

// visitNode implements the accept dispatch contract for one concrete
// node type T: before_visit gate, kind-specific-or-default handler,
// error reporting, after_visit.
func visitNode[T Node](v *Visitor, n T, slot func(T) error) error {
	if v.BeforeVisit != nil && !v.BeforeVisit(n) {
		return nil
	}

	var err error
	switch {
	case slot != nil:
		err = slot(n)
	case v.VisitDefault != nil:
		err = v.VisitDefault(n)
	}

	if err != nil && v.OnError != nil {
		v.OnError(n, err.Error())
	}
	if v.AfterVisit != nil {
		v.AfterVisit(n)
	}
	return err
}

// TraversalContext carries the mutable state threaded through a generic
// DFS/BFS walk. VisitChildren is reset to true before every visit call;
// the callback can clear it to prune just the current node's subtree
// without aborting the rest of the walk, which is a narrower control
// than StopTraversal (whole-walk abort). It only has an effect on
// pre-order DFS and BFS, the two orders where children are visited
// after their parent — in post-order, children have already been
// walked by the time visit(n, ctx) runs, so there is nothing left to
// prune.
type TraversalContext struct {
	Depth         int
	MaxDepth      int // 0 means unlimited
	VisitChildren bool
	StopTraversal bool
}

// Walk performs a generic traversal of root and its descendants,
// invoking visit(node, ctx) at each node. preorder selects pre-order
// (node before children) or post-order (children before node) for DFS;
// bfs selects breadth-first level-order traversal instead of DFS, in
// which case preorder is ignored.
func Walk(root Node, preorder bool, bfs bool, visit func(Node, *TraversalContext)) {
	if root == nil {
		return
	}
	if bfs {
		walkBFS(root, visit)
		return
	}
	ctx := &TraversalContext{VisitChildren: true}
	walkDFS(root, preorder, ctx, visit)
}

func walkDFS(n Node, preorder bool, ctx *TraversalContext, visit func(Node, *TraversalContext)) {
	if ctx.StopTraversal {
		return
	}
	if ctx.MaxDepth > 0 && ctx.Depth > ctx.MaxDepth {
		return
	}

	if preorder {
		ctx.VisitChildren = true
		visit(n, ctx)
		if ctx.StopTraversal {
			return
		}
		if !ctx.VisitChildren {
			return
		}
	}

	ctx.Depth++
	for _, c := range Children(n) {
		walkDFS(c, preorder, ctx, visit)
		if ctx.StopTraversal {
			ctx.Depth--
			return
		}
	}
	ctx.Depth--

	if !preorder {
		visit(n, ctx)
	}
}

func walkBFS(root Node, visit func(Node, *TraversalContext)) {
	ctx := &TraversalContext{}
	queue := []Node{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		ctx.VisitChildren = true
		visit(n, ctx)
		if ctx.StopTraversal {
			return
		}
		if ctx.VisitChildren {
			queue = append(queue, Children(n)...)
		}
	}
}
