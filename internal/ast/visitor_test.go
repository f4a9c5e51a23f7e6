package ast

import (
	"errors"
	"testing"
)

func buildSampleUnit(b *Builder) *FunctionDecl {
	intType := b.CreateBasicType(loc(1), BasicInt, false, false, false, false)
	compound := b.CreateCompoundStatement(loc(1))
	zero := intLiteral(b, 1, "0")
	ret := b.CreateReturnStatement(loc(1), zero)
	b.AddStmtToCompound(compound, ret)
	fn, ok := b.AddFunctionDeclaration(loc(1), "main", StorageNone, intType, nil, compound)
	if !ok {
		panic("buildSampleUnit: unexpected rejection")
	}
	return fn
}

func TestVisitorDispatchesToSpecificHandlerOverDefault(t *testing.T) {
	b, _ := newTestBuilder()
	lit := intLiteral(b, 1, "7")

	var sawSpecific, sawDefault bool
	v := &Visitor{
		OnLiteralExpr: func(n *LiteralExpr) error { sawSpecific = true; return nil },
		VisitDefault:  func(n Node) error { sawDefault = true; return nil },
	}
	if err := lit.Accept(v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sawSpecific || sawDefault {
		t.Errorf("expected the specific handler to run instead of the default, got specific=%v default=%v", sawSpecific, sawDefault)
	}
}

func TestVisitorFallsBackToDefault(t *testing.T) {
	b, _ := newTestBuilder()
	lit := intLiteral(b, 1, "7")

	var sawDefault bool
	v := &Visitor{VisitDefault: func(n Node) error { sawDefault = true; return nil }}
	if err := lit.Accept(v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sawDefault {
		t.Errorf("expected default handler to run")
	}
}

func TestVisitorBeforeVisitGatesDispatch(t *testing.T) {
	b, _ := newTestBuilder()
	lit := intLiteral(b, 1, "7")

	var dispatched bool
	v := &Visitor{
		BeforeVisit:   func(n Node) bool { return false },
		OnLiteralExpr: func(n *LiteralExpr) error { dispatched = true; return nil },
	}
	if err := lit.Accept(v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dispatched {
		t.Errorf("BeforeVisit returning false should suppress dispatch")
	}
}

func TestVisitorOnErrorReceivesHandlerError(t *testing.T) {
	b, _ := newTestBuilder()
	lit := intLiteral(b, 1, "7")

	wantErr := errors.New("boom")
	var gotMsg string
	v := &Visitor{
		OnLiteralExpr: func(n *LiteralExpr) error { return wantErr },
		OnError:       func(n Node, msg string) { gotMsg = msg },
	}
	if err := lit.Accept(v); !errors.Is(err, wantErr) {
		t.Fatalf("expected Accept to surface the handler error, got %v", err)
	}
	if gotMsg != wantErr.Error() {
		t.Errorf("OnError message = %q, want %q", gotMsg, wantErr.Error())
	}
}

func TestVisitorAfterVisitAlwaysRuns(t *testing.T) {
	b, _ := newTestBuilder()
	lit := intLiteral(b, 1, "7")

	var afterCount int
	v := &Visitor{
		OnLiteralExpr: func(n *LiteralExpr) error { return errors.New("boom") },
		AfterVisit:    func(n Node) { afterCount++ },
	}
	lit.Accept(v)
	if afterCount != 1 {
		t.Errorf("AfterVisit count = %d, want 1", afterCount)
	}
}

func TestWalkPreorderVisitsParentBeforeChildren(t *testing.T) {
	b, _ := newTestBuilder()
	fn := buildSampleUnit(b)

	var order []Kind
	Walk(fn, true, false, func(n Node, ctx *TraversalContext) {
		order = append(order, n.NodeKind())
	})
	if len(order) == 0 || order[0] != KindFunctionDecl {
		t.Fatalf("expected FunctionDecl first in pre-order, got %v", order)
	}
	// CompoundStmt (the body) must precede the ReturnStmt it contains.
	bodyIdx, retIdx := -1, -1
	for i, k := range order {
		if k == KindCompoundStmt {
			bodyIdx = i
		}
		if k == KindReturnStmt {
			retIdx = i
		}
	}
	if bodyIdx == -1 || retIdx == -1 || bodyIdx > retIdx {
		t.Errorf("expected CompoundStmt before ReturnStmt in pre-order, got %v", order)
	}
}

func TestWalkPostorderVisitsChildrenBeforeParent(t *testing.T) {
	b, _ := newTestBuilder()
	fn := buildSampleUnit(b)

	var order []Kind
	Walk(fn, false, false, func(n Node, ctx *TraversalContext) {
		order = append(order, n.NodeKind())
	})
	if order[len(order)-1] != KindFunctionDecl {
		t.Fatalf("expected FunctionDecl last in post-order, got %v", order)
	}
}

func TestWalkBFSVisitsLevelOrder(t *testing.T) {
	b, _ := newTestBuilder()
	fn := buildSampleUnit(b)

	var order []Kind
	Walk(fn, true, true, func(n Node, ctx *TraversalContext) {
		order = append(order, n.NodeKind())
	})
	if order[0] != KindFunctionDecl {
		t.Fatalf("expected FunctionDecl first in BFS, got %v", order)
	}
	// CompoundStmt is a direct child of FunctionDecl, so it must appear
	// before ReturnStmt, which is two levels down.
	bodyIdx, retIdx := -1, -1
	for i, k := range order {
		if k == KindCompoundStmt {
			bodyIdx = i
		}
		if k == KindReturnStmt {
			retIdx = i
		}
	}
	if bodyIdx == -1 || retIdx == -1 || bodyIdx > retIdx {
		t.Errorf("expected CompoundStmt before ReturnStmt in BFS, got %v", order)
	}
}

func TestWalkRespectsMaxDepth(t *testing.T) {
	b, _ := newTestBuilder()
	fn := buildSampleUnit(b)

	// FunctionDecl is at depth 0, its CompoundStmt body at depth 1, and the
	// ReturnStmt inside the body at depth 2.
	var sawBody, sawReturn bool
	Walk(fn, true, false, func(n Node, ctx *TraversalContext) {
		switch n.NodeKind() {
		case KindFunctionDecl:
			ctx.MaxDepth = 1
		case KindCompoundStmt:
			sawBody = true
		case KindReturnStmt:
			sawReturn = true
		}
	})
	if !sawBody {
		t.Fatalf("expected the body at depth 1 to be visited with MaxDepth = 1")
	}
	if sawReturn {
		t.Errorf("expected MaxDepth = 1 to prune the ReturnStmt at depth 2")
	}
}

func TestWalkStopTraversalShortCircuits(t *testing.T) {
	b, _ := newTestBuilder()
	fn := buildSampleUnit(b)

	var visited int
	Walk(fn, true, false, func(n Node, ctx *TraversalContext) {
		visited++
		if n.NodeKind() == KindFunctionDecl {
			ctx.StopTraversal = true
		}
	})
	if visited != 1 {
		t.Errorf("expected traversal to stop after the root, visited %d nodes", visited)
	}
}

func TestWalkVisitChildrenPrunesOnlyCurrentSubtree(t *testing.T) {
	b, _ := newTestBuilder()
	fn := buildSampleUnit(b)

	var sawReturnType, sawReturnStmt bool
	Walk(fn, true, false, func(n Node, ctx *TraversalContext) {
		switch n.NodeKind() {
		case KindCompoundStmt:
			ctx.VisitChildren = false
		case KindBasicType:
			sawReturnType = true
		case KindReturnStmt:
			sawReturnStmt = true
		}
	})
	if !sawReturnType {
		t.Errorf("expected the function's return type to still be visited")
	}
	if sawReturnStmt {
		t.Errorf("expected pruning CompoundStmt's children to skip the ReturnStmt beneath it")
	}
}
