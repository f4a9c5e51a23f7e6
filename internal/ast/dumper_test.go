package ast

import (
	"strings"
	"testing"
)

func TestDumpMinimalProgram(t *testing.T) {
	b, _ := newTestBuilder()
	buildSampleUnit(b)

	out := Dump(b.Root(), DumperOptions{})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	want := []string{
		"=== AST Dump ===",
		"TranslationUnit",
		"  FunctionDeclaration: 'main'",
		"    ReturnType:",
		"      BasicTypeSpecifier: int",
		"    Body:",
		"      CompoundStatement",
		"        Statements (1):",
		"          ReturnStatement",
		"            LiteralExpr: '0'",
		"=== Total: 6 nodes ===",
	}
	if len(lines) != len(want) {
		t.Fatalf("dump produced %d lines, want %d:\n%s", len(lines), len(want), out)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, lines[i], w)
		}
	}
}

func TestDumpCountMatchesCountDescendants(t *testing.T) {
	b, _ := newTestBuilder()
	buildSampleUnit(b)
	root := b.Root()

	out := Dump(root, DumperOptions{})
	want := CountDescendants(root)
	wantFooter := "=== Total: " + itoa(want) + " nodes ==="
	if !strings.Contains(out, wantFooter) {
		t.Errorf("expected dump footer %q in output:\n%s", wantFooter, out)
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := []byte{}
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

func TestDumpShowLocationAppendsLocationSuffix(t *testing.T) {
	b, _ := newTestBuilder()
	lit := intLiteral(b, 3, "42")

	out := Dump(lit, DumperOptions{ShowLocation: true})
	if !strings.Contains(out, "@ t.c:3:1") {
		t.Errorf("expected location suffix in output:\n%s", out)
	}
}

func TestDumpAnnotatesOperatorsAndMemberAccess(t *testing.T) {
	b, _ := newTestBuilder()
	obj, _ := b.CreateIdentifierExpression(loc(1), "p")
	member, _ := b.CreateMemberExpression(loc(1), obj, "field", true)

	out := Dump(member, DumperOptions{})
	if !strings.Contains(out, "MemberExpr: 'field' (->)") {
		t.Errorf("expected arrow member annotation, got:\n%s", out)
	}
}

func TestDumpAnnotatesUnaryFixedness(t *testing.T) {
	b, _ := newTestBuilder()
	operand, _ := b.CreateIdentifierExpression(loc(1), "i")
	post, _ := b.CreateUnaryExpression(loc(1), UnaryPostfixInc, operand)
	pre, _ := b.CreateUnaryExpression(loc(1), UnaryPrefixInc, operand)

	postOut := Dump(post, DumperOptions{})
	preOut := Dump(pre, DumperOptions{})
	if !strings.Contains(postOut, "UnaryExpr: ++ (postfix)") {
		t.Errorf("expected postfix annotation, got:\n%s", postOut)
	}
	if !strings.Contains(preOut, "UnaryExpr: ++ (prefix)") {
		t.Errorf("expected prefix annotation, got:\n%s", preOut)
	}
}

func TestDumpAnnotatesVLAArrayType(t *testing.T) {
	b, _ := newTestBuilder()
	elem := b.CreateBasicType(loc(1), BasicInt, false, false, false, false)
	vla, _ := b.CreateArrayType(loc(1), elem, nil)

	out := Dump(vla, DumperOptions{})
	if !strings.Contains(out, "ArrayTypeSpecifier [VLA]") {
		t.Errorf("expected [VLA] annotation, got:\n%s", out)
	}
}

func TestDumpAnnotatesForwardStructRef(t *testing.T) {
	b, _ := newTestBuilder()
	ref := b.CreateStructRefType(loc(1), "Point", nil)

	out := Dump(ref, DumperOptions{})
	if !strings.Contains(out, "StructRefTypeSpecifier: 'Point' [forward]") {
		t.Errorf("expected forward-reference annotation, got:\n%s", out)
	}
}

func TestDumpAnnotatesAnonymousStruct(t *testing.T) {
	b, _ := newTestBuilder()
	s, _ := b.AddStructDeclaration(loc(1), "", nil)

	out := Dump(s, DumperOptions{})
	if !strings.Contains(out, "StructDeclaration: <anonymous>") {
		t.Errorf("expected anonymous struct annotation, got:\n%s", out)
	}
}

func TestDumpHandlesNilRoot(t *testing.T) {
	out := Dump(nil, DumperOptions{})
	if !strings.Contains(out, "=== Total: 0 nodes ===") {
		t.Errorf("expected zero-node footer for a nil root, got:\n%s", out)
	}
}
