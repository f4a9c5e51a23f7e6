package token

import "github.com/taogeice/cfront/internal/source"

// LiteralKind identifies the decoded payload shape and numeric base
// carried by a literal token.
type LiteralKind uint8

// LiteralKind values.
const (
	NoLiteral LiteralKind = iota
	LitIntDecimal
	LitIntHex
	LitIntOctal
	LitIntBinary
	LitFloat
	LitDouble
	LitChar
	LitWChar
	LitString
	LitWString
)

// Literal is the decoded payload of a literal token. Exactly one field is
// meaningful, selected by Kind.
type Literal struct {
	Kind  LiteralKind
	Int   int64
	Float float64
	Char  byte
	Bytes []byte // decoded string payload; may differ from the raw lexeme
}

// Flags carries extensible boolean metadata about a token beyond its Kind.
type Flags uint8

// Flags bits.
const (
	FlagWide Flags = 1 << iota // 'L' prefixed char/string literal
)

// Has reports whether all bits in mask are set.
func (f Flags) Has(mask Flags) bool { return f&mask == mask }

// Token is a lexed lexeme with its kind, decoded literal payload (if any),
// and source location.
type Token struct {
	Kind     Kind
	Lexeme   string
	Location source.Location
	Literal  *Literal // nil unless Kind is a literal kind
	Flags    Flags
}

// IsWide reports whether the token is a wide ('L'-prefixed) char or
// string literal.
func (t Token) IsWide() bool { return t.Flags.Has(FlagWide) }

// Equal compares kind and lexeme, per the token equality contract in §4.2.
func (t Token) Equal(other Token) bool {
	return t.Kind == other.Kind && t.Lexeme == other.Lexeme
}

// IsValid requires a known kind.
func (t Token) IsValid() bool {
	return t.Kind.IsValid()
}

// HasValidLocation requires line > 0 and column > 0.
func (t Token) HasValidLocation() bool {
	return t.Location.Line > 0 && t.Location.Column > 0
}

// HasValidLexeme requires a non-empty lexeme unless Kind is EOF.
func (t Token) HasValidLexeme() bool {
	if t.Kind == EOF {
		return true
	}
	return t.Lexeme != ""
}

// Length returns the byte length of the lexeme.
func (t Token) Length() int { return len(t.Lexeme) }
