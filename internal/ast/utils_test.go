package ast

import (
	"testing"

	"github.com/taogeice/cfront/internal/diag"
)

func TestCountDescendantsMatchesSpecExample(t *testing.T) {
	b, _ := newTestBuilder()
	buildSampleUnit(b)
	root := b.Root()

	// TranslationUnit, FunctionDecl, BasicType (return type), CompoundStmt,
	// ReturnStmt, LiteralExpr: six nodes reachable from the root via
	// Children. The function has no parameter nodes: an explicit `(void)`
	// parameter list is a parser-level convention for "no parameters" and
	// is represented here as an empty Parameters slice rather than a
	// synthetic void-typed declaration, since the parser itself is out of
	// scope for this tree.
	if got, want := CountDescendants(root), 6; got != want {
		t.Errorf("CountDescendants() = %d, want %d", got, want)
	}
}

func TestDepthOfSampleUnit(t *testing.T) {
	b, _ := newTestBuilder()
	buildSampleUnit(b)
	root := b.Root()

	// TranslationUnit -> FunctionDecl -> CompoundStmt -> ReturnStmt -> LiteralExpr
	if got, want := Depth(root), 5; got != want {
		t.Errorf("Depth() = %d, want %d", got, want)
	}
}

func TestChildCount(t *testing.T) {
	b, _ := newTestBuilder()
	fn := buildSampleUnit(b)
	// ReturnType + Body, no parameters.
	if got, want := ChildCount(fn), 2; got != want {
		t.Errorf("ChildCount(fn) = %d, want %d", got, want)
	}
}

func TestFindChildrenByKind(t *testing.T) {
	b, _ := newTestBuilder()
	fn := buildSampleUnit(b)
	found := FindChildrenByKind(fn, KindBasicType)
	if len(found) != 1 {
		t.Fatalf("expected exactly one BasicType child, got %d", len(found))
	}
}

func TestFindParentByKindWalksUpward(t *testing.T) {
	b, _ := newTestBuilder()
	fn := buildSampleUnit(b)
	lits := FindAllByKind(fn, KindLiteralExpr)
	if len(lits) != 1 {
		t.Fatalf("expected exactly one literal, got %d", len(lits))
	}
	parent := FindParentByKind(lits[0], KindFunctionDecl)
	if parent != Node(fn) {
		t.Errorf("expected FindParentByKind to find the enclosing FunctionDecl")
	}
	if got := FindParentByKind(lits[0], KindStructDecl); got != nil {
		t.Errorf("expected nil when no ancestor matches, got %v", got)
	}
}

func TestFindAllByKindIsPreorder(t *testing.T) {
	b, _ := newTestBuilder()
	compound := b.CreateCompoundStatement(loc(1))
	a := intLiteral(b, 1, "1")
	c := intLiteral(b, 2, "2")
	b.AddStmtToCompound(compound, b.CreateReturnStatement(loc(1), a))
	b.AddStmtToCompound(compound, b.CreateReturnStatement(loc(2), c))

	lits := FindAllByKind(compound, KindLiteralExpr)
	if len(lits) != 2 {
		t.Fatalf("expected 2 literals, got %d", len(lits))
	}
	if lits[0] != Node(a) || lits[1] != Node(c) {
		t.Errorf("expected literals in source order")
	}
}

func TestValidateCatchesMissingOperands(t *testing.T) {
	b, _ := newTestBuilder()
	lhs := intLiteral(b, 1, "1")

	bad := &BinaryExpr{
		ExprHeader: ExprHeader{Header: Header{Family: FamilyExpr, Kind: KindBinaryExpr, Location: loc(1)}},
		Op:         BinAdd, Left: lhs, Right: nil,
	}

	mem := diag.NewMemoryConsumer()
	engine := diag.NewEngine(mem)
	if Validate(bad, engine) {
		t.Fatalf("expected Validate to reject a binary expression missing an operand")
	}
	if len(mem.Diagnostics) == 0 {
		t.Errorf("expected at least one diagnostic to be reported")
	}
}

func TestValidateAcceptsWellFormedTree(t *testing.T) {
	b, _ := newTestBuilder()
	buildSampleUnit(b)

	mem := diag.NewMemoryConsumer()
	engine := diag.NewEngine(mem)
	if !Validate(b.Root(), engine) {
		t.Errorf("expected a well-formed tree to validate cleanly, got diagnostics: %v", mem.Lines())
	}
}

func TestIsNilNodeDetectsTypedNilPointer(t *testing.T) {
	var p *LiteralExpr
	var n Node = p
	if !isNilNode(n) {
		t.Errorf("expected a typed-nil *LiteralExpr boxed in Node to be detected as nil")
	}
	if !isNilNode(nil) {
		t.Errorf("expected a bare nil interface to be detected as nil")
	}
}
