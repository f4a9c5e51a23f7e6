// Package lexer is the streaming C11/C17 scanner (component D): a
// pull-based, single-threaded tokenizer with look-ahead, escape handling,
// multiple numeric bases, preprocessor-directive recognition, and
// precise source-location tracking. Errors are reported through an
// injected diag.Engine; the lexer never panics on malformed input.
package lexer

import (
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/taogeice/cfront/internal/diag"
	"github.com/taogeice/cfront/internal/source"
	"github.com/taogeice/cfront/internal/token"
	"go.uber.org/zap"
)

// Lexer holds scanning state over a source buffer.
type Lexer struct {
	src       []byte
	pos       int
	line      int
	column    int
	lineStart int
	filename  string

	inPreprocessor   bool
	inComment        bool
	supportUnicode   bool
	preserveComments bool

	diags *diag.Engine
	log   *zap.Logger
}

// New constructs a Lexer over src. diags may be nil, in which case a
// no-op engine is used (diagnostics are counted but never delivered).
func New(src []byte, filename string, diags *diag.Engine) *Lexer {
	if diags == nil {
		diags = diag.NewEngine(nil)
	}
	return &Lexer{
		src:            src,
		line:           1,
		column:         1,
		filename:       filename,
		supportUnicode: true,
		diags:          diags,
		log:            zap.NewNop(),
	}
}

// NewFromFile reads path and constructs a Lexer over its contents. The
// source buffer is owned exclusively by the returned Lexer.
func NewFromFile(path string, diags *diag.Engine) (*Lexer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source file %s: %w", path, err)
	}
	return New(data, path, diags), nil
}

// WithLogger attaches a structured developer logger for ambient trace
// output, independent of the user-facing diagnostic stream.
func (l *Lexer) WithLogger(log *zap.Logger) *Lexer {
	if log != nil {
		l.log = log
	}
	return l
}

// SetPreserveComments controls whether comments are surfaced as Comment
// tokens (true) or silently skipped as trivia (false, the default).
func (l *Lexer) SetPreserveComments(v bool) { l.preserveComments = v }

// PreserveComments reports the current comment-preservation setting.
func (l *Lexer) PreserveComments() bool { return l.preserveComments }

// lexState is a snapshot of cursor position used to implement Peek via
// snapshot/Next/restore.
type lexState struct {
	pos       int
	line      int
	column    int
	lineStart int
}

func (l *Lexer) snapshot() lexState {
	return lexState{pos: l.pos, line: l.line, column: l.column, lineStart: l.lineStart}
}

func (l *Lexer) restore(s lexState) {
	l.pos, l.line, l.column, l.lineStart = s.pos, s.line, s.column, s.lineStart
}

// Next returns the next token, consuming it. At end of input it returns
// an EOF token repeatedly.
func (l *Lexer) Next() token.Token {
	for {
		if l.eof() {
			return l.eofToken()
		}
		if ct, matched := l.skipOneTriviaUnit(); matched {
			if ct != nil {
				return *ct
			}
			continue
		}
		break
	}
	if l.eof() {
		return l.eofToken()
	}
	return l.scanToken()
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() token.Token {
	snap := l.snapshot()
	t := l.Next()
	l.restore(snap)
	return t
}

// Tokenize repeatedly calls Next, appending to a sequence until an EOF
// token is produced (EOF is included in the result, per §4.3).
func (l *Lexer) Tokenize() []token.Token {
	var toks []token.Token
	for {
		t := l.Next()
		toks = append(toks, t)
		if t.Kind == token.EOF {
			break
		}
	}
	return toks
}

func (l *Lexer) eofToken() token.Token {
	return token.Token{Kind: token.EOF, Location: l.currentLocation()}
}

func (l *Lexer) eof() bool { return l.pos >= len(l.src) }

func (l *Lexer) currentLocation() source.Location {
	return source.NewLocation(l.filename, l.line, l.column, l.pos)
}

func (l *Lexer) peekByte(delta int) byte {
	idx := l.pos + delta
	if idx < 0 || idx >= len(l.src) {
		return 0
	}
	return l.src[idx]
}

// advanceByte consumes exactly one byte that is known not to be a
// newline, advancing the column.
func (l *Lexer) advanceByte() {
	if l.pos < len(l.src) {
		l.pos++
		l.column++
	}
}

func (l *Lexer) consumeNewline() {
	if l.eof() {
		return
	}
	if l.src[l.pos] == '\r' {
		l.pos++
		if !l.eof() && l.src[l.pos] == '\n' {
			l.pos++
		}
	} else {
		l.pos++
	}
	l.line++
	l.column = 1
	l.lineStart = l.pos
}

func (l *Lexer) report(level diag.Level, loc source.Location, format string, args ...any) {
	l.diags.Report(level, loc, format, args...)
	l.log.Debug("lexer diagnostic", zap.String("level", level.String()), zap.String("location", loc.String()))
}

// skipOneTriviaUnit consumes exactly one unit of whitespace, comment, or
// line-continuation trivia starting at the cursor, if any is present.
// matched is false if the cursor is not on trivia. When preserveComments
// is enabled and the unit is a comment, a Comment token is returned and
// must be yielded by the caller instead of being silently skipped.
func (l *Lexer) skipOneTriviaUnit() (tok *token.Token, matched bool) {
	b := l.src[l.pos]

	switch {
	case b == '\\' && isNewlineByte(l.peekByte(1)):
		l.advanceByte()
		l.consumeNewline()
		return nil, true

	case isHorizontalSpace(b):
		for !l.eof() && isHorizontalSpace(l.src[l.pos]) {
			l.advanceByte()
		}
		return nil, true

	case isNewlineByte(b):
		l.consumeNewline()
		return nil, true

	case b == '/' && l.peekByte(1) == '/':
		start := l.pos
		loc := l.currentLocation()
		l.advanceByte()
		l.advanceByte()
		for !l.eof() && l.src[l.pos] != '\n' && l.src[l.pos] != '\r' {
			l.advanceByte()
		}
		if l.preserveComments {
			t := token.Token{Kind: token.Comment, Lexeme: string(l.src[start:l.pos]), Location: loc}
			return &t, true
		}
		return nil, true

	case b == '/' && l.peekByte(1) == '*':
		start := l.pos
		loc := l.currentLocation()
		l.advanceByte()
		l.advanceByte()
		closed := false
		for !l.eof() {
			if l.src[l.pos] == '*' && l.peekByte(1) == '/' {
				l.advanceByte()
				l.advanceByte()
				closed = true
				break
			}
			if isNewlineByte(l.src[l.pos]) {
				l.consumeNewline()
			} else {
				l.advanceByte()
			}
		}
		if !closed {
			l.report(diag.Fatal, loc, "unterminated block comment")
		}
		if l.preserveComments {
			t := token.Token{Kind: token.Comment, Lexeme: string(l.src[start:l.pos]), Location: loc}
			return &t, true
		}
		return nil, true

	default:
		return nil, false
	}
}

func isNewlineByte(b byte) bool { return b == '\n' || b == '\r' }

func isHorizontalSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\v', '\f':
		return true
	default:
		return false
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isOctalDigit(b byte) bool { return b >= '0' && b <= '7' }

func isBinaryDigit(b byte) bool { return b == '0' || b == '1' }

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isIdentStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

// scanToken dispatches on the current byte to produce exactly one token.
// The cursor must not be at EOF and must not be on trivia.
func (l *Lexer) scanToken() token.Token {
	b := l.src[l.pos]

	switch {
	case b == '#':
		return l.scanHash()
	case b == 'L' && l.peekByte(1) == '\'':
		return l.scanCharLiteral(true)
	case b == 'L' && l.peekByte(1) == '"':
		return l.scanStringLiteral(true)
	case isIdentStart(b):
		return l.scanIdentifier()
	case isDigit(b):
		return l.scanNumber()
	case b == '.' && isDigit(l.peekByte(1)):
		return l.scanLeadingDotFloat()
	case b == '\'':
		return l.scanCharLiteral(false)
	case b == '"':
		return l.scanStringLiteral(false)
	default:
		if tok, ok := l.scanOperator(); ok {
			return tok
		}
		return l.scanUnknown()
	}
}

func (l *Lexer) scanUnknown() token.Token {
	start := l.pos
	loc := l.currentLocation()
	b := l.src[l.pos]
	if b >= 0x80 {
		if r, size := utf8.DecodeRune(l.src[l.pos:]); r == utf8.RuneError && size == 1 {
			l.advanceByte()
		} else {
			for i := 0; i < size; i++ {
				l.advanceByte()
			}
		}
	} else {
		l.advanceByte()
	}
	l.report(diag.Error, loc, "invalid character %q", b)
	return token.Token{Kind: token.Unknown, Lexeme: string(l.src[start:l.pos]), Location: loc}
}

func (l *Lexer) scanIdentifier() token.Token {
	start := l.pos
	loc := l.currentLocation()
	for !l.eof() && isIdentPart(l.src[l.pos]) {
		l.advanceByte()
	}
	lexeme := string(l.src[start:l.pos])
	if kind, ok := token.LookupKeyword(lexeme); ok {
		return token.Token{Kind: kind, Lexeme: lexeme, Location: loc}
	}
	return token.Token{Kind: token.Identifier, Lexeme: lexeme, Location: loc}
}

// scanHash handles '#', '##', and preprocessor directive lines. Directive
// name lookup is a peek that does not disturb the cursor; whenever a name
// follows the '#', the entire rest of the line (not including the
// newline) becomes the token lexeme. A known name yields its directive
// Kind, an unknown one an Identifier token.
func (l *Lexer) scanHash() token.Token {
	start := l.pos
	loc := l.currentLocation()
	l.advanceByte() // consume '#'

	if !l.eof() && l.src[l.pos] == '#' {
		l.advanceByte()
		return token.Token{Kind: token.PPHashHash, Lexeme: string(l.src[start:l.pos]), Location: loc}
	}

	j := l.pos
	for j < len(l.src) && isHorizontalSpace(l.src[j]) {
		j++
	}
	nameStart := j
	for j < len(l.src) && isIdentPart(l.src[j]) {
		j++
	}
	name := string(l.src[nameStart:j])

	if name == "" {
		return token.Token{Kind: token.PPHash, Lexeme: string(l.src[start:l.pos]), Location: loc}
	}

	kind, known := token.LookupDirective(name)

	reachedEOF := true
	for !l.eof() {
		c := l.src[l.pos]
		if isNewlineByte(c) {
			reachedEOF = false
			break
		}
		l.advanceByte()
	}
	lexeme := string(l.src[start:l.pos])
	if reachedEOF {
		l.report(diag.Fatal, loc, "end of file inside preprocessor directive")
	}
	if !known {
		return token.Token{Kind: token.Identifier, Lexeme: lexeme, Location: loc}
	}
	return token.Token{Kind: kind, Lexeme: lexeme, Location: loc}
}

// tryMatch advances past s if it matches the upcoming bytes exactly.
func (l *Lexer) tryMatch(s string) bool {
	if l.pos+len(s) > len(l.src) {
		return false
	}
	if string(l.src[l.pos:l.pos+len(s)]) != s {
		return false
	}
	for i := 0; i < len(s); i++ {
		l.advanceByte()
	}
	return true
}

// scanOperator performs the longest-match dispatch over operators and
// punctuators described in §4.3's lead-character table.
func (l *Lexer) scanOperator() (token.Token, bool) {
	start := l.pos
	loc := l.currentLocation()
	b := l.src[l.pos]

	build := func(k token.Kind) (token.Token, bool) {
		return token.Token{Kind: k, Lexeme: string(l.src[start:l.pos]), Location: loc}, true
	}

	switch b {
	case '=':
		if l.tryMatch("==") {
			return build(token.Eq)
		}
		l.tryMatch("=")
		return build(token.Assign)
	case '!':
		if l.tryMatch("!=") {
			return build(token.Ne)
		}
		l.tryMatch("!")
		return build(token.Bang)
	case '<':
		if l.tryMatch("<<=") {
			return build(token.ShiftLeftAssign)
		}
		if l.tryMatch("<=") {
			return build(token.Le)
		}
		if l.tryMatch("<<") {
			return build(token.ShiftLeft)
		}
		l.tryMatch("<")
		return build(token.Lt)
	case '>':
		if l.tryMatch(">>=") {
			return build(token.ShiftRightAssign)
		}
		if l.tryMatch(">=") {
			return build(token.Ge)
		}
		if l.tryMatch(">>") {
			return build(token.ShiftRight)
		}
		l.tryMatch(">")
		return build(token.Gt)
	case '&':
		if l.tryMatch("&&") {
			return build(token.AmpAmp)
		}
		if l.tryMatch("&=") {
			return build(token.AmpAssign)
		}
		l.tryMatch("&")
		return build(token.Amp)
	case '|':
		if l.tryMatch("||") {
			return build(token.PipePipe)
		}
		if l.tryMatch("|=") {
			return build(token.PipeAssign)
		}
		l.tryMatch("|")
		return build(token.Pipe)
	case '^':
		if l.tryMatch("^=") {
			return build(token.CaretAssign)
		}
		l.tryMatch("^")
		return build(token.Caret)
	case '+':
		if l.tryMatch("++") {
			return build(token.PlusPlus)
		}
		if l.tryMatch("+=") {
			return build(token.PlusAssign)
		}
		l.tryMatch("+")
		return build(token.Plus)
	case '-':
		if l.tryMatch("--") {
			return build(token.MinusMinus)
		}
		if l.tryMatch("-=") {
			return build(token.MinusAssign)
		}
		if l.tryMatch("->") {
			return build(token.Arrow)
		}
		l.tryMatch("-")
		return build(token.Minus)
	case '*':
		if l.tryMatch("*=") {
			return build(token.StarAssign)
		}
		l.tryMatch("*")
		return build(token.Star)
	case '/':
		if l.tryMatch("/=") {
			return build(token.SlashAssign)
		}
		l.tryMatch("/")
		return build(token.Slash)
	case '%':
		if l.tryMatch("%=") {
			return build(token.PercentAssign)
		}
		l.tryMatch("%")
		return build(token.Percent)
	case '.':
		if l.tryMatch("...") {
			return build(token.Ellipsis)
		}
		l.tryMatch(".")
		return build(token.Dot)
	case '(':
		l.advanceByte()
		return build(token.LParen)
	case ')':
		l.advanceByte()
		return build(token.RParen)
	case '[':
		l.advanceByte()
		return build(token.LBracket)
	case ']':
		l.advanceByte()
		return build(token.RBracket)
	case '{':
		l.advanceByte()
		return build(token.LBrace)
	case '}':
		l.advanceByte()
		return build(token.RBrace)
	case ';':
		l.advanceByte()
		return build(token.Semi)
	case ',':
		l.advanceByte()
		return build(token.Comma)
	case ':':
		l.advanceByte()
		return build(token.Colon)
	case '?':
		l.advanceByte()
		return build(token.Question)
	case '~':
		l.advanceByte()
		return build(token.Tilde)
	default:
		return token.Token{}, false
	}
}

func (l *Lexer) intToken(start int, loc source.Location, kind token.LiteralKind, val int64) token.Token {
	return token.Token{
		Kind:     token.IntegerLiteral,
		Lexeme:   string(l.src[start:l.pos]),
		Location: loc,
		Literal:  &token.Literal{Kind: kind, Int: val},
	}
}

func (l *Lexer) floatToken(start int, loc source.Location, kind token.LiteralKind, val float64) token.Token {
	return token.Token{
		Kind:     token.FloatLiteral,
		Lexeme:   string(l.src[start:l.pos]),
		Location: loc,
		Literal:  &token.Literal{Kind: kind, Float: val},
	}
}

// consumeIntSuffix consumes trailing integer suffix letters
// ({u,U,l,L} in any combination) without validating them, per §4.3.
func (l *Lexer) consumeIntSuffix() {
	for !l.eof() {
		switch l.src[l.pos] {
		case 'u', 'U', 'l', 'L':
			l.advanceByte()
		default:
			return
		}
	}
}

// consumeFloatSuffix consumes a single trailing f/F/l/L suffix letter, if
// present, and returns it (0 if absent).
func (l *Lexer) consumeFloatSuffix() byte {
	if l.eof() {
		return 0
	}
	switch l.src[l.pos] {
	case 'f', 'F', 'l', 'L':
		c := l.src[l.pos]
		l.advanceByte()
		return c
	default:
		return 0
	}
}

// tryScanExponent consumes an 'e'/'E' exponent with optional sign and
// mandatory digits, if one is present at the cursor. It does not move the
// cursor when no valid exponent follows.
func (l *Lexer) tryScanExponent() bool {
	if l.eof() {
		return false
	}
	c := l.src[l.pos]
	if c != 'e' && c != 'E' {
		return false
	}
	j := l.pos + 1
	if j < len(l.src) && (l.src[j] == '+' || l.src[j] == '-') {
		j++
	}
	if j >= len(l.src) || !isDigit(l.src[j]) {
		return false
	}
	for l.pos < j {
		l.advanceByte()
	}
	for !l.eof() && isDigit(l.src[l.pos]) {
		l.advanceByte()
	}
	return true
}

// scanNumber scans an integer or floating literal starting at a digit,
// selecting a base per §4.3: 0x/0X hex, 0b/0B binary (C23 extension), a
// leading zero followed by a digit is octal, otherwise decimal (which is
// re-scanned for a fractional part and/or exponent to detect a float).
func (l *Lexer) scanNumber() token.Token {
	start := l.pos
	loc := l.currentLocation()

	if l.src[l.pos] == '0' && (l.peekByte(1) == 'x' || l.peekByte(1) == 'X') {
		l.advanceByte()
		l.advanceByte()
		digStart := l.pos
		for !l.eof() && isHexDigit(l.src[l.pos]) {
			l.advanceByte()
		}
		if l.pos == digStart {
			l.report(diag.Error, loc, "invalid number format: empty hex literal")
		}
		digits := string(l.src[digStart:l.pos])
		l.consumeIntSuffix()
		val, _ := strconv.ParseUint(digits, 16, 64)
		return l.intToken(start, loc, token.LitIntHex, int64(val))
	}

	if l.src[l.pos] == '0' && (l.peekByte(1) == 'b' || l.peekByte(1) == 'B') {
		l.advanceByte()
		l.advanceByte()
		digStart := l.pos
		for !l.eof() && isBinaryDigit(l.src[l.pos]) {
			l.advanceByte()
		}
		if l.pos == digStart {
			l.report(diag.Error, loc, "invalid number format: empty binary literal")
		}
		digits := string(l.src[digStart:l.pos])
		l.consumeIntSuffix()
		val, _ := strconv.ParseUint(digits, 2, 64)
		return l.intToken(start, loc, token.LitIntBinary, int64(val))
	}

	if l.src[l.pos] == '0' && isDigit(l.peekByte(1)) {
		return l.scanOctalOrDecimalFloat(start, loc)
	}

	// decimal, possibly a float
	for !l.eof() && isDigit(l.src[l.pos]) {
		l.advanceByte()
	}
	isFloat := false
	if !l.eof() && l.src[l.pos] == '.' {
		isFloat = true
		l.advanceByte()
		for !l.eof() && isDigit(l.src[l.pos]) {
			l.advanceByte()
		}
	}
	if l.tryScanExponent() {
		isFloat = true
	}

	if isFloat {
		numEnd := l.pos
		suffix := l.consumeFloatSuffix()
		valueText := string(l.src[start:numEnd])
		val, _ := strconv.ParseFloat(valueText, 64)
		kind := token.LitDouble
		if suffix == 'f' || suffix == 'F' {
			kind = token.LitFloat
		}
		return l.floatToken(start, loc, kind, val)
	}

	numEnd := l.pos
	l.consumeIntSuffix()
	digits := string(l.src[start:numEnd])
	val, _ := strconv.ParseInt(digits, 10, 64)
	return l.intToken(start, loc, token.LitIntDecimal, val)
}

// scanOctalOrDecimalFloat handles the "0" + digit case, which is octal
// unless a '.' or exponent later reveals it is actually a decimal float
// (e.g. "09.5").
func (l *Lexer) scanOctalOrDecimalFloat(start int, loc source.Location) token.Token {
	l.advanceByte() // leading '0'
	runStart := l.pos
	for !l.eof() && isDigit(l.src[l.pos]) {
		l.advanceByte()
	}

	isFloat := false
	if !l.eof() && l.src[l.pos] == '.' {
		isFloat = true
		l.advanceByte()
		for !l.eof() && isDigit(l.src[l.pos]) {
			l.advanceByte()
		}
	}
	if l.tryScanExponent() {
		isFloat = true
	}

	if isFloat {
		numEnd := l.pos
		suffix := l.consumeFloatSuffix()
		valueText := string(l.src[start:numEnd])
		val, _ := strconv.ParseFloat(valueText, 64)
		kind := token.LitDouble
		if suffix == 'f' || suffix == 'F' {
			kind = token.LitFloat
		}
		return l.floatToken(start, loc, kind, val)
	}

	octDigits := string(l.src[runStart:l.pos])
	valid := true
	for i := 0; i < len(octDigits); i++ {
		if !isOctalDigit(octDigits[i]) {
			valid = false
			break
		}
	}
	if !valid {
		l.report(diag.Error, loc, "invalid number format: non-octal digit in octal literal %q", octDigits)
	}
	l.consumeIntSuffix()
	var val int64
	if valid {
		v, _ := strconv.ParseInt(octDigits, 8, 64)
		val = v
	}
	return l.intToken(start, loc, token.LitIntOctal, val)
}

// scanLeadingDotFloat handles a float literal with no leading integer
// part, e.g. ".5" or ".5e-3f".
func (l *Lexer) scanLeadingDotFloat() token.Token {
	start := l.pos
	loc := l.currentLocation()
	l.advanceByte() // '.'
	for !l.eof() && isDigit(l.src[l.pos]) {
		l.advanceByte()
	}
	l.tryScanExponent()
	numEnd := l.pos
	suffix := l.consumeFloatSuffix()
	valueText := string(l.src[start:numEnd])
	val, _ := strconv.ParseFloat(valueText, 64)
	kind := token.LitDouble
	if suffix == 'f' || suffix == 'F' {
		kind = token.LitFloat
	}
	return l.floatToken(start, loc, kind, val)
}

// decodeEscape decodes one escape sequence; the cursor must be on the
// backslash. It returns the decoded bytes and whether the escape was
// recognized (an unrecognized escape is reported but not fatal, per the
// error taxonomy, and still returns a best-effort byte).
func (l *Lexer) decodeEscape() ([]byte, bool) {
	loc := l.currentLocation()
	l.advanceByte() // consume backslash
	if l.eof() {
		l.report(diag.Error, loc, "invalid escape sequence at end of input")
		return nil, false
	}
	c := l.src[l.pos]
	switch c {
	case 'n':
		l.advanceByte()
		return []byte{'\n'}, true
	case 't':
		l.advanceByte()
		return []byte{'\t'}, true
	case 'r':
		l.advanceByte()
		return []byte{'\r'}, true
	case 'b':
		l.advanceByte()
		return []byte{'\b'}, true
	case 'f':
		l.advanceByte()
		return []byte{'\f'}, true
	case 'v':
		l.advanceByte()
		return []byte{'\v'}, true
	case 'a':
		l.advanceByte()
		return []byte{0x07}, true
	case '\\':
		l.advanceByte()
		return []byte{'\\'}, true
	case '\'':
		l.advanceByte()
		return []byte{'\''}, true
	case '"':
		l.advanceByte()
		return []byte{'"'}, true
	case '?':
		l.advanceByte()
		return []byte{'?'}, true
	case '0', '1', '2', '3', '4', '5', '6', '7':
		digStart := l.pos
		for i := 0; i < 3 && !l.eof() && isOctalDigit(l.src[l.pos]); i++ {
			l.advanceByte()
		}
		digits := string(l.src[digStart:l.pos])
		v, _ := strconv.ParseUint(digits, 8, 32)
		return []byte{byte(v)}, true
	case 'x':
		l.advanceByte()
		digStart := l.pos
		for i := 0; i < 2 && !l.eof() && isHexDigit(l.src[l.pos]); i++ {
			l.advanceByte()
		}
		if l.pos == digStart {
			l.report(diag.Error, loc, "invalid hex escape sequence")
			return nil, false
		}
		digits := string(l.src[digStart:l.pos])
		v, _ := strconv.ParseUint(digits, 16, 32)
		return []byte{byte(v)}, true
	case 'u':
		return l.decodeUnicodeEscape(loc, 4)
	case 'U':
		return l.decodeUnicodeEscape(loc, 8)
	default:
		l.report(diag.Error, loc, "invalid escape sequence '\\%c'", c)
		l.advanceByte()
		return []byte{c}, false
	}
}

// decodeUnicodeEscape decodes \u or \U, expecting exactly n hex digits,
// and encodes the resulting rune as UTF-8 bytes.
func (l *Lexer) decodeUnicodeEscape(loc source.Location, n int) ([]byte, bool) {
	l.advanceByte() // consume 'u'/'U'
	digStart := l.pos
	for i := 0; i < n && !l.eof() && isHexDigit(l.src[l.pos]); i++ {
		l.advanceByte()
	}
	if l.pos-digStart != n {
		l.report(diag.Error, loc, "invalid unicode escape sequence")
		return nil, false
	}
	digits := string(l.src[digStart:l.pos])
	v, _ := strconv.ParseUint(digits, 16, 32)
	r := rune(v)
	if !utf8.ValidRune(r) {
		r = utf8.RuneError
	}
	buf := make([]byte, utf8.UTFMax)
	size := utf8.EncodeRune(buf, r)
	return buf[:size], true
}

func charLiteralKind(wide bool) token.LiteralKind {
	if wide {
		return token.LitWChar
	}
	return token.LitChar
}

func stringLiteralKind(wide bool) token.LiteralKind {
	if wide {
		return token.LitWString
	}
	return token.LitString
}

func wideFlag(wide bool) token.Flags {
	if wide {
		return token.FlagWide
	}
	return 0
}

// scanCharLiteral scans a (possibly wide) character literal. Per §4.3 it
// reads one logical, escape-aware character and requires a closing quote;
// a missing closing quote is reported as fatal (unterminated-char).
func (l *Lexer) scanCharLiteral(wide bool) token.Token {
	start := l.pos
	loc := l.currentLocation()
	if wide {
		l.advanceByte() // 'L'
	}
	l.advanceByte() // opening quote

	var value byte
	if !l.eof() && l.src[l.pos] == '\\' {
		bs, _ := l.decodeEscape()
		if len(bs) > 0 {
			value = bs[0]
		}
	} else if !l.eof() {
		value = l.src[l.pos]
		l.advanceByte()
	}

	if l.eof() || l.src[l.pos] != '\'' {
		l.report(diag.Fatal, loc, "unterminated character literal")
	} else {
		l.advanceByte()
	}

	return token.Token{
		Kind:     token.CharLiteral,
		Lexeme:   string(l.src[start:l.pos]),
		Location: loc,
		Literal:  &token.Literal{Kind: charLiteralKind(wide), Char: value},
		Flags:    wideFlag(wide),
	}
}

// scanStringLiteral scans a (possibly wide) string literal. Strings do
// not cross line boundaries: an unterminated string is reported
// (resolving Open Question 3) and the scan stops at the newline without
// consuming it, so the lexer can continue from there.
func (l *Lexer) scanStringLiteral(wide bool) token.Token {
	start := l.pos
	loc := l.currentLocation()
	if wide {
		l.advanceByte() // 'L'
	}
	l.advanceByte() // opening quote

	var buf []byte
	terminated := false
	for !l.eof() {
		c := l.src[l.pos]
		if c == '"' {
			l.advanceByte()
			terminated = true
			break
		}
		if isNewlineByte(c) {
			break
		}
		if c == '\\' {
			bs, _ := l.decodeEscape()
			buf = append(buf, bs...)
			continue
		}
		buf = append(buf, c)
		l.advanceByte()
	}
	if !terminated {
		l.report(diag.Fatal, loc, "unterminated string literal")
	}

	return token.Token{
		Kind:     token.StringLiteral,
		Lexeme:   string(l.src[start:l.pos]),
		Location: loc,
		Literal:  &token.Literal{Kind: stringLiteralKind(wide), Bytes: buf},
		Flags:    wideFlag(wide),
	}
}
