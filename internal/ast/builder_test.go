package ast

import (
	"testing"

	"github.com/taogeice/cfront/internal/diag"
	"github.com/taogeice/cfront/internal/source"
	"github.com/taogeice/cfront/internal/token"
)

func loc(line int) source.Location {
	return source.NewLocation("t.c", line, 1, 0)
}

func newTestBuilder() (*Builder, *diag.MemoryConsumer) {
	mem := diag.NewMemoryConsumer()
	b := NewBuilder(diag.NewEngine(mem))
	return b, mem
}

func intLiteral(b *Builder, line int, lexeme string) *LiteralExpr {
	tok := token.Token{Kind: token.IntegerLiteral, Lexeme: lexeme, Location: loc(line)}
	n, ok := b.CreateLiteralExpression(loc(line), tok)
	if !ok {
		panic("intLiteral: unexpected rejection")
	}
	return n
}

func TestBuilderAddVariableDeclarationSetsParentAndFlags(t *testing.T) {
	b, _ := newTestBuilder()
	typ := b.CreateBasicType(loc(1), BasicInt, false, false, false, false)
	init := intLiteral(b, 1, "0")

	v, ok := b.AddVariableDeclaration(loc(1), "x", StorageNone, typ, init)
	if !ok {
		t.Fatalf("expected acceptance")
	}
	if v.NodeParent() != b.Root() {
		t.Errorf("variable decl parent = %v, want root", v.NodeParent())
	}
	if typ.NodeParent() != Node(v) {
		t.Errorf("type parent not attached to variable decl")
	}
	if init.NodeParent() != Node(v) {
		t.Errorf("init parent not attached to variable decl")
	}
	if len(b.Root().Declarations) != 1 || b.Root().Declarations[0] != v {
		t.Errorf("variable decl not appended to root")
	}
}

func TestBuilderRejectsInvalidIdentifierName(t *testing.T) {
	b, mem := newTestBuilder()
	typ := b.CreateBasicType(loc(1), BasicInt, false, false, false, false)

	_, ok := b.AddVariableDeclaration(loc(1), "1bad", StorageNone, typ, nil)
	if ok {
		t.Fatalf("expected rejection for invalid identifier")
	}
	if len(mem.Diagnostics) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d", len(mem.Diagnostics))
	}
	if mem.Diagnostics[0].Level != diag.Error {
		t.Errorf("expected error-level diagnostic, got %v", mem.Diagnostics[0].Level)
	}
}

func TestBuilderCaseStatementRequiresValueIffLabel(t *testing.T) {
	b, _ := newTestBuilder()
	body := b.CreateBreakStatement(loc(1))
	val := intLiteral(b, 1, "1")

	if _, ok := b.CreateCaseStatement(loc(1), CaseLabel, nil, body); ok {
		t.Errorf("case label without a value should be rejected")
	}
	if _, ok := b.CreateCaseStatement(loc(1), CaseDefault, val, body); ok {
		t.Errorf("default with a value should be rejected")
	}
	if _, ok := b.CreateCaseStatement(loc(1), CaseLabel, val, body); !ok {
		t.Errorf("case label with a value should be accepted")
	}
	if _, ok := b.CreateCaseStatement(loc(1), CaseDefault, nil, body); !ok {
		t.Errorf("default without a value should be accepted")
	}
}

func TestBuilderExpressionLvalueFlags(t *testing.T) {
	b, _ := newTestBuilder()
	lit := intLiteral(b, 1, "0")
	if lit.IsLvalue() || !lit.IsConstant() {
		t.Errorf("literal expression expected lvalue=false constant=true, got lvalue=%v constant=%v", lit.IsLvalue(), lit.IsConstant())
	}

	ident, _ := b.CreateIdentifierExpression(loc(1), "x")
	if !ident.IsLvalue() || ident.IsConstant() {
		t.Errorf("identifier expression expected lvalue=true constant=false, got lvalue=%v constant=%v", ident.IsLvalue(), ident.IsConstant())
	}

	sub, ok := b.CreateSubscriptExpression(loc(1), ident, lit)
	if !ok || !sub.IsLvalue() {
		t.Errorf("subscript expression expected lvalue=true")
	}

	member, ok := b.CreateMemberExpression(loc(1), ident, "field", false)
	if !ok || !member.IsLvalue() {
		t.Errorf("member expression expected lvalue=true")
	}

	bin, ok := b.CreateBinaryExpression(loc(1), BinAdd, ident, lit)
	if !ok || bin.IsLvalue() {
		t.Errorf("binary expression expected lvalue=false")
	}
}

func TestBuilderCompoundAppendAttachesParent(t *testing.T) {
	b, _ := newTestBuilder()
	compound := b.CreateCompoundStatement(loc(1))
	ret := b.CreateReturnStatement(loc(2), nil)
	typ := b.CreateBasicType(loc(1), BasicInt, false, false, false, false)
	decl, _ := b.AddVariableDeclaration(loc(1), "y", StorageNone, typ, nil)

	if !b.AddStmtToCompound(compound, ret) {
		t.Fatalf("expected statement append to succeed")
	}
	if !b.AddDeclToCompound(compound, decl) {
		t.Fatalf("expected declaration append to succeed")
	}
	if len(compound.Statements) != 1 || len(compound.Declarations) != 1 {
		t.Fatalf("expected one statement and one declaration in compound")
	}
	if ret.NodeParent() != Node(compound) {
		t.Errorf("return statement parent not attached to compound")
	}
}

func TestBuilderArrayTypeIsVLAWhenSizeOmitted(t *testing.T) {
	b, _ := newTestBuilder()
	elem := b.CreateBasicType(loc(1), BasicInt, false, false, false, false)

	vla, ok := b.CreateArrayType(loc(1), elem, nil)
	if !ok || !vla.IsVLA() {
		t.Errorf("array type without a size should be a VLA")
	}

	size := intLiteral(b, 1, "4")
	fixed, ok := b.CreateArrayType(loc(1), elem, size)
	if !ok || fixed.IsVLA() {
		t.Errorf("array type with a size should not be a VLA")
	}
}

func TestBuilderFunctionDeclarationWithoutReturnTypeIsRejected(t *testing.T) {
	b, _ := newTestBuilder()
	_, ok := b.AddFunctionDeclaration(loc(1), "f", StorageNone, nil, nil, nil)
	if ok {
		t.Errorf("function declaration without a return type should be rejected")
	}
}
