package ast

import (
	"testing"

	"github.com/go-test/deep"
)

func TestCloneProducesStructurallyEqualIndependentTree(t *testing.T) {
	b, _ := newTestBuilder()
	fn := buildSampleUnit(b)

	cloned := Clone(fn)
	if !Equals(fn, cloned) {
		t.Fatalf("expected clone to be structurally equal to the original")
	}
	if cloned.NodeParent() != nil {
		t.Errorf("expected a freshly cloned subtree to have no parent, got %v", cloned.NodeParent())
	}

	clonedFn, ok := cloned.(*FunctionDecl)
	if !ok {
		t.Fatalf("expected Clone to preserve the concrete type, got %T", cloned)
	}
	if clonedFn == fn {
		t.Errorf("expected Clone to allocate a distinct node")
	}
	if clonedFn.Body == fn.Body {
		t.Errorf("expected Clone to allocate a distinct body subtree")
	}
	if clonedFn.Body.NodeParent() != Node(clonedFn) {
		t.Errorf("expected the cloned body's parent to point at the cloned function, not the original")
	}
}

func TestCloneMutationDoesNotAffectOriginal(t *testing.T) {
	b, _ := newTestBuilder()
	fn := buildSampleUnit(b)

	clonedFn := Clone(fn).(*FunctionDecl)
	clonedFn.Name = "renamed"

	if fn.Name == "renamed" {
		t.Errorf("mutating the clone's name affected the original")
	}
	if Equals(fn, clonedFn) {
		t.Errorf("expected Equals to detect the name divergence after mutation")
	}
}

func TestEqualsDetectsOperandDifference(t *testing.T) {
	b, _ := newTestBuilder()
	left, _ := b.CreateIdentifierExpression(loc(1), "x")
	rightA := intLiteral(b, 1, "1")
	rightB := intLiteral(b, 1, "2")

	exprA, _ := b.CreateBinaryExpression(loc(1), BinAdd, left, rightA)
	exprB, _ := b.CreateBinaryExpression(loc(1), BinAdd, left, rightB)

	if Equals(exprA, exprB) {
		t.Errorf("expected Equals to distinguish expressions with different literal operands")
	}

	if diff := deep.Equal(exprA.Op, exprB.Op); diff != nil {
		t.Errorf("expected identical operators, got diff: %v", diff)
	}
}

func TestEqualsNilHandling(t *testing.T) {
	var a, b Node
	if !Equals(a, b) {
		t.Errorf("expected two nil nodes to be equal")
	}
	bt, _ := newTestBuilder()
	lit := intLiteral(bt, 1, "0")
	if Equals(a, lit) || Equals(lit, a) {
		t.Errorf("expected a nil node to never equal a non-nil node")
	}
}
