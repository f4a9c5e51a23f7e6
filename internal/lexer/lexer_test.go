package lexer

import (
	"testing"

	"github.com/taogeice/cfront/internal/diag"
	"github.com/taogeice/cfront/internal/token"
)

func tokenize(t *testing.T, src string) []token.Token {
	t.Helper()
	l := New([]byte(src), "test.c", diag.NewEngine(nil))
	return l.Tokenize()
}

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, tok := range toks {
		ks[i] = tok.Kind
	}
	return ks
}

func assertKinds(t *testing.T, toks []token.Token, want ...token.Kind) {
	t.Helper()
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("kind count mismatch: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %s, want %s (all: %v)", i, got[i], want[i], got)
		}
	}
}

func TestTokenizeEndsWithEOF(t *testing.T) {
	toks := tokenize(t, "x")
	if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
		t.Fatalf("expected trailing EOF token, got %v", kinds(toks))
	}
}

func TestIntegerLiteralBases(t *testing.T) {
	cases := []struct {
		src  string
		kind token.LiteralKind
		val  int64
	}{
		{"42", token.LitIntDecimal, 42},
		{"0x2A", token.LitIntHex, 42},
		{"052", token.LitIntOctal, 42},
		{"0b101010", token.LitIntBinary, 42},
		{"42u", token.LitIntDecimal, 42},
		{"42UL", token.LitIntDecimal, 42},
	}
	for _, c := range cases {
		toks := tokenize(t, c.src)
		assertKinds(t, toks, token.IntegerLiteral, token.EOF)
		lit := toks[0].Literal
		if lit == nil || lit.Kind != c.kind {
			t.Fatalf("%s: got literal %+v, want kind %v", c.src, lit, c.kind)
		}
		if lit.Int != c.val {
			t.Fatalf("%s: got value %d, want %d", c.src, lit.Int, c.val)
		}
	}
}

func TestFloatLiterals(t *testing.T) {
	cases := []struct {
		src  string
		kind token.LiteralKind
		val  float64
	}{
		{"3.14", token.LitDouble, 3.14},
		{".5", token.LitDouble, 0.5},
		{"1e10", token.LitDouble, 1e10},
		{"1.5e-3", token.LitDouble, 1.5e-3},
		{"2.0f", token.LitFloat, 2.0},
		{"09.5", token.LitDouble, 9.5},
	}
	for _, c := range cases {
		toks := tokenize(t, c.src)
		assertKinds(t, toks, token.FloatLiteral, token.EOF)
		lit := toks[0].Literal
		if lit == nil || lit.Kind != c.kind {
			t.Fatalf("%s: got literal %+v, want kind %v", c.src, lit, c.kind)
		}
		if lit.Float != c.val {
			t.Fatalf("%s: got value %v, want %v", c.src, lit.Float, c.val)
		}
	}
}

func TestKeywordVsIdentifier(t *testing.T) {
	toks := tokenize(t, "int main alignas _Alignas foobar")
	assertKinds(t, toks,
		token.KwInt, token.Identifier, token.KwAlignas, token.KwAlignas, token.Identifier, token.EOF)
	if toks[1].Lexeme != "main" {
		t.Fatalf("expected identifier lexeme main, got %q", toks[1].Lexeme)
	}
}

func TestLongestMatchOperators(t *testing.T) {
	toks := tokenize(t, "<<= << < <= >>= >> > >= == = != !")
	assertKinds(t, toks,
		token.ShiftLeftAssign, token.ShiftLeft, token.Lt, token.Le,
		token.ShiftRightAssign, token.ShiftRight, token.Gt, token.Ge,
		token.Eq, token.Assign, token.Ne, token.Bang, token.EOF)
}

func TestCompoundBitwiseAssignOperators(t *testing.T) {
	toks := tokenize(t, "&= |= ^= & | ^")
	assertKinds(t, toks,
		token.AmpAssign, token.PipeAssign, token.CaretAssign,
		token.Amp, token.Pipe, token.Caret, token.EOF)
}

func TestCommentsSkippedByDefault(t *testing.T) {
	toks := tokenize(t, "a/* b */c")
	assertKinds(t, toks, token.Identifier, token.Identifier, token.EOF)

	toks = tokenize(t, "a//b\nc")
	assertKinds(t, toks, token.Identifier, token.Identifier, token.EOF)
}

func TestCommentsPreservedWhenRequested(t *testing.T) {
	l := New([]byte("a/* b */c"), "test.c", diag.NewEngine(nil))
	l.SetPreserveComments(true)
	toks := l.Tokenize()
	assertKinds(t, toks, token.Identifier, token.Comment, token.Identifier, token.EOF)
}

func TestUnterminatedBlockCommentReportsFatal(t *testing.T) {
	mem := diag.NewMemoryConsumer()
	e := diag.NewEngine(mem)
	l := New([]byte("/* never closed"), "test.c", e)
	l.Tokenize()
	if !e.FatalOccurred() {
		t.Fatalf("expected fatal diagnostic for unterminated block comment")
	}
}

func TestUnterminatedStringReportsFatal(t *testing.T) {
	mem := diag.NewMemoryConsumer()
	e := diag.NewEngine(mem)
	toks := New([]byte(`"abc`), "test.c", e).Tokenize()
	assertKinds(t, toks, token.StringLiteral, token.EOF)
	if !e.FatalOccurred() {
		t.Fatalf("expected fatal diagnostic for unterminated string")
	}
}

func TestStringEscapeDecoding(t *testing.T) {
	toks := tokenize(t, `"a\n\t\x41\101"`)
	assertKinds(t, toks, token.StringLiteral, token.EOF)
	got := string(toks[0].Literal.Bytes)
	want := "a\n\tAA"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestUnicodeEscapeDecodesToUTF8(t *testing.T) {
	toks := tokenize(t, `"\U000000e9"`)
	assertKinds(t, toks, token.StringLiteral, token.EOF)
	got := string(toks[0].Literal.Bytes)
	want := "é"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWideLiterals(t *testing.T) {
	toks := tokenize(t, `L'a' L"wide"`)
	assertKinds(t, toks, token.CharLiteral, token.StringLiteral, token.EOF)
	if !toks[0].IsWide() || !toks[1].IsWide() {
		t.Fatalf("expected wide flag set on both literals")
	}
}

func TestInvalidCharacterReported(t *testing.T) {
	mem := diag.NewMemoryConsumer()
	e := diag.NewEngine(mem)
	toks := New([]byte("int x $ = 1;"), "test.c", e).Tokenize()
	found := false
	for _, tok := range toks {
		if tok.Kind == token.Unknown {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an Unknown token for '$', got %v", kinds(toks))
	}
	if e.ErrorCount() == 0 {
		t.Fatalf("expected an error diagnostic for invalid character")
	}
}

func TestPreprocessorDirectiveCapturesFullLine(t *testing.T) {
	toks := tokenize(t, "#include <stdio.h>\nint x;")
	if toks[0].Kind != token.PPInclude {
		t.Fatalf("expected PPInclude, got %s", toks[0].Kind)
	}
	if toks[0].Lexeme != "#include <stdio.h>" {
		t.Fatalf("got lexeme %q", toks[0].Lexeme)
	}
	assertKinds(t, toks[1:], token.KwInt, token.Identifier, token.Semi, token.EOF)
}

func TestUnknownDirectiveFallsBackToIdentifier(t *testing.T) {
	toks := tokenize(t, "#bogus stuff\n")
	if toks[0].Kind != token.Identifier {
		t.Fatalf("expected Identifier fallback for unknown directive, got %s", toks[0].Kind)
	}
}

func TestMinimalProgram(t *testing.T) {
	toks := tokenize(t, "int main(void) { return 0; }")
	assertKinds(t, toks,
		token.KwInt, token.Identifier, token.LParen, token.KwVoid, token.RParen,
		token.LBrace, token.KwReturn, token.IntegerLiteral, token.Semi, token.RBrace,
		token.EOF)
}

func TestTokenEquality(t *testing.T) {
	a := tokenize(t, "foo")[0]
	b := tokenize(t, "foo")[0]
	if !a.Equal(b) {
		t.Fatalf("expected identical-lexeme tokens to compare equal")
	}
	c := tokenize(t, "bar")[0]
	if a.Equal(c) {
		t.Fatalf("expected different-lexeme tokens to compare unequal")
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	l := New([]byte("a b"), "test.c", diag.NewEngine(nil))
	peeked := l.Peek()
	next := l.Next()
	if peeked.Lexeme != next.Lexeme {
		t.Fatalf("Peek/Next mismatch: peeked %q, next %q", peeked.Lexeme, next.Lexeme)
	}
	rest := l.Next()
	if rest.Lexeme != "b" {
		t.Fatalf("expected second token b, got %q", rest.Lexeme)
	}
}
