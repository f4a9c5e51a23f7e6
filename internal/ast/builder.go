package ast

import (
	"regexp"

	"github.com/taogeice/cfront/internal/diag"
	"github.com/taogeice/cfront/internal/source"
	"github.com/taogeice/cfront/internal/token"
	"go.uber.org/zap"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Builder is the single façade a parser constructs a tree through. It
// owns the TranslationUnit root and the diagnostic sink; no exported
// constructor outside Builder ever sets a child's Parent back-reference
// directly, which keeps "no partial initialization is ever observable"
// true of every node reachable from Root().
type Builder struct {
	root   *TranslationUnit
	diags  *diag.Engine
	log    *zap.Logger
}

// NewBuilder constructs a Builder with an empty TranslationUnit root.
func NewBuilder(diags *diag.Engine) *Builder {
	if diags == nil {
		diags = diag.NewEngine(nil)
	}
	return &Builder{
		root: &TranslationUnit{Header: Header{Family: FamilyTranslationUnit, Kind: KindTranslationUnit}},
		diags: diags,
		log:   zap.NewNop(),
	}
}

// WithLogger attaches a structured developer logger used to trace
// rejected constructions before the corresponding diagnostic is
// reported.
func (b *Builder) WithLogger(log *zap.Logger) *Builder {
	if log != nil {
		b.log = log
	}
	return b
}

// Root returns the builder's TranslationUnit.
func (b *Builder) Root() *TranslationUnit { return b.root }

func (b *Builder) reject(loc source.Location, format string, args ...any) {
	b.log.Debug("rejected ast construction")
	b.diags.Report(diag.Error, loc, format, args...)
}

func validIdentifierName(name string) bool {
	return identifierPattern.MatchString(name)
}

func attach(parent Node, child Node) {
	if !isNilNode(child) {
		child.setParent(parent)
	}
}

// --- Declarations -----------------------------------------------------

// AddVariableDeclaration validates name and typ, constructs a
// VariableDecl, appends it to the root's declaration list (setting its
// parent), and returns it. On validation failure it reports and returns
// (nil, false).
func (b *Builder) AddVariableDeclaration(loc source.Location, name string, storage StorageClass, typ TypeSpec, init Expr) (*VariableDecl, bool) {
	if !validIdentifierName(name) {
		b.reject(loc, "invalid variable name %q", name)
		return nil, false
	}
	if typ == nil {
		b.reject(loc, "variable declaration %q requires a type", name)
		return nil, false
	}
	n := &VariableDecl{
		DeclHeader: DeclHeader{Header: Header{Family: FamilyDecl, Kind: KindVariableDecl, Location: loc}, Name: name, StorageClass: storage},
		Type:       typ,
		Init:       init,
	}
	attach(n, typ)
	attach(n, init)
	b.root.Declarations = append(b.root.Declarations, n)
	attach(b.root, n)
	return n, true
}

// AddFunctionDeclaration validates name and returnType, constructs a
// FunctionDecl, appends it to the root, and returns it.
func (b *Builder) AddFunctionDeclaration(loc source.Location, name string, storage StorageClass, returnType TypeSpec, parameters []Decl, body *CompoundStmt) (*FunctionDecl, bool) {
	if !validIdentifierName(name) {
		b.reject(loc, "invalid function name %q", name)
		return nil, false
	}
	if returnType == nil {
		b.reject(loc, "function declaration %q requires a return type", name)
		return nil, false
	}
	n := &FunctionDecl{
		DeclHeader: DeclHeader{Header: Header{Family: FamilyDecl, Kind: KindFunctionDecl, Location: loc}, Name: name, StorageClass: storage},
		ReturnType: returnType,
		Parameters: parameters,
		Body:       body,
	}
	attach(n, returnType)
	for _, p := range parameters {
		attach(n, p)
	}
	if body != nil {
		attach(n, body)
	}
	b.root.Declarations = append(b.root.Declarations, n)
	attach(b.root, n)
	return n, true
}

// AddStructDeclaration constructs a StructDecl; name may be empty for an
// anonymous struct.
func (b *Builder) AddStructDeclaration(loc source.Location, name string, members []Decl) (*StructDecl, bool) {
	if name != "" && !validIdentifierName(name) {
		b.reject(loc, "invalid struct name %q", name)
		return nil, false
	}
	n := &StructDecl{
		DeclHeader: DeclHeader{Header: Header{Family: FamilyDecl, Kind: KindStructDecl, Location: loc}, Name: name},
		Members:    members,
	}
	for _, m := range members {
		attach(n, m)
	}
	b.root.Declarations = append(b.root.Declarations, n)
	attach(b.root, n)
	return n, true
}

// AddUnionDeclaration constructs a UnionDecl; name may be empty for an
// anonymous union.
func (b *Builder) AddUnionDeclaration(loc source.Location, name string, members []Decl) (*UnionDecl, bool) {
	if name != "" && !validIdentifierName(name) {
		b.reject(loc, "invalid union name %q", name)
		return nil, false
	}
	n := &UnionDecl{
		DeclHeader: DeclHeader{Header: Header{Family: FamilyDecl, Kind: KindUnionDecl, Location: loc}, Name: name},
		Members:    members,
	}
	for _, m := range members {
		attach(n, m)
	}
	b.root.Declarations = append(b.root.Declarations, n)
	attach(b.root, n)
	return n, true
}

// AddEnumDeclaration constructs an EnumDecl; name may be empty for an
// anonymous enum.
func (b *Builder) AddEnumDeclaration(loc source.Location, name string, constants []EnumConstant) (*EnumDecl, bool) {
	if name != "" && !validIdentifierName(name) {
		b.reject(loc, "invalid enum name %q", name)
		return nil, false
	}
	n := &EnumDecl{
		DeclHeader: DeclHeader{Header: Header{Family: FamilyDecl, Kind: KindEnumDecl, Location: loc}, Name: name},
		Constants:  constants,
	}
	for _, c := range constants {
		attach(n, c.Value)
	}
	b.root.Declarations = append(b.root.Declarations, n)
	attach(b.root, n)
	return n, true
}

// AddTypedefDeclaration validates name and typ, constructs a
// TypedefDecl, appends it to the root, and returns it.
func (b *Builder) AddTypedefDeclaration(loc source.Location, name string, typ TypeSpec) (*TypedefDecl, bool) {
	if !validIdentifierName(name) {
		b.reject(loc, "invalid typedef name %q", name)
		return nil, false
	}
	if typ == nil {
		b.reject(loc, "typedef %q requires an underlying type", name)
		return nil, false
	}
	n := &TypedefDecl{
		DeclHeader: DeclHeader{Header: Header{Family: FamilyDecl, Kind: KindTypedefDecl, Location: loc}, Name: name},
		Type:       typ,
	}
	attach(n, typ)
	b.root.Declarations = append(b.root.Declarations, n)
	attach(b.root, n)
	return n, true
}

// --- Statements ---------------------------------------------------------

func (b *Builder) CreateExpressionStatement(loc source.Location, expr Expr) (*ExpressionStmt, bool) {
	if expr == nil {
		b.reject(loc, "expression statement requires an expression")
		return nil, false
	}
	n := &ExpressionStmt{StmtHeader: StmtHeader{Header{Family: FamilyStmt, Kind: KindExpressionStmt, Location: loc}}, Expr: expr}
	attach(n, expr)
	return n, true
}

// CreateCompoundStatement returns an empty compound block; statements
// and declarations are appended afterward via AddStmtToCompound and
// AddDeclToCompound.
func (b *Builder) CreateCompoundStatement(loc source.Location) *CompoundStmt {
	return &CompoundStmt{StmtHeader: StmtHeader{Header{Family: FamilyStmt, Kind: KindCompoundStmt, Location: loc}}}
}

func (b *Builder) CreateIfStatement(loc source.Location, cond Expr, then Stmt, els Stmt) (*IfStmt, bool) {
	if cond == nil || then == nil {
		b.reject(loc, "if statement requires a condition and a then-branch")
		return nil, false
	}
	n := &IfStmt{StmtHeader: StmtHeader{Header{Family: FamilyStmt, Kind: KindIfStmt, Location: loc}}, Cond: cond, Then: then, Else: els}
	attach(n, cond)
	attach(n, then)
	attach(n, els)
	return n, true
}

func (b *Builder) CreateWhileStatement(loc source.Location, cond Expr, body Stmt) (*WhileStmt, bool) {
	if cond == nil || body == nil {
		b.reject(loc, "while statement requires a condition and a body")
		return nil, false
	}
	n := &WhileStmt{StmtHeader: StmtHeader{Header{Family: FamilyStmt, Kind: KindWhileStmt, Location: loc}}, Cond: cond, Body: body}
	attach(n, cond)
	attach(n, body)
	return n, true
}

func (b *Builder) CreateDoWhileStatement(loc source.Location, body Stmt, cond Expr) (*DoWhileStmt, bool) {
	if cond == nil || body == nil {
		b.reject(loc, "do-while statement requires a condition and a body")
		return nil, false
	}
	n := &DoWhileStmt{StmtHeader: StmtHeader{Header{Family: FamilyStmt, Kind: KindDoWhileStmt, Location: loc}}, Body: body, Cond: cond}
	attach(n, body)
	attach(n, cond)
	return n, true
}

func (b *Builder) CreateForStatement(loc source.Location, init Stmt, cond Expr, increment Expr, body Stmt) (*ForStmt, bool) {
	if body == nil {
		b.reject(loc, "for statement requires a body")
		return nil, false
	}
	n := &ForStmt{StmtHeader: StmtHeader{Header{Family: FamilyStmt, Kind: KindForStmt, Location: loc}}, Init: init, Cond: cond, Increment: increment, Body: body}
	attach(n, init)
	attach(n, cond)
	attach(n, increment)
	attach(n, body)
	return n, true
}

func (b *Builder) CreateReturnStatement(loc source.Location, value Expr) *ReturnStmt {
	n := &ReturnStmt{StmtHeader: StmtHeader{Header{Family: FamilyStmt, Kind: KindReturnStmt, Location: loc}}, Value: value}
	attach(n, value)
	return n
}

func (b *Builder) CreateBreakStatement(loc source.Location) *BreakStmt {
	return &BreakStmt{StmtHeader: StmtHeader{Header{Family: FamilyStmt, Kind: KindBreakStmt, Location: loc}}}
}

func (b *Builder) CreateContinueStatement(loc source.Location) *ContinueStmt {
	return &ContinueStmt{StmtHeader: StmtHeader{Header{Family: FamilyStmt, Kind: KindContinueStmt, Location: loc}}}
}

func (b *Builder) CreateSwitchStatement(loc source.Location, cond Expr, cases []*CaseStmt) (*SwitchStmt, bool) {
	if cond == nil {
		b.reject(loc, "switch statement requires a condition")
		return nil, false
	}
	n := &SwitchStmt{StmtHeader: StmtHeader{Header{Family: FamilyStmt, Kind: KindSwitchStmt, Location: loc}}, Cond: cond, Cases: cases}
	attach(n, cond)
	for _, c := range cases {
		attach(n, c)
	}
	return n, true
}

// CreateCaseStatement enforces value != nil iff kind == CaseLabel.
func (b *Builder) CreateCaseStatement(loc source.Location, kind CaseKind, value Expr, body Stmt) (*CaseStmt, bool) {
	if kind == CaseLabel && value == nil {
		b.reject(loc, "case statement requires a value")
		return nil, false
	}
	if kind == CaseDefault && value != nil {
		b.reject(loc, "default statement must not carry a value")
		return nil, false
	}
	if body == nil {
		b.reject(loc, "case statement requires a body")
		return nil, false
	}
	n := &CaseStmt{StmtHeader: StmtHeader{Header{Family: FamilyStmt, Kind: KindCaseStmt, Location: loc}}, CaseKind: kind, Value: value, Body: body}
	attach(n, value)
	attach(n, body)
	return n, true
}

func (b *Builder) CreateLabeledStatement(loc source.Location, label string, body Stmt) (*LabeledStmt, bool) {
	if !validIdentifierName(label) || body == nil {
		b.reject(loc, "labeled statement requires a valid label and a body")
		return nil, false
	}
	n := &LabeledStmt{StmtHeader: StmtHeader{Header{Family: FamilyStmt, Kind: KindLabeledStmt, Location: loc}}, Label: label, Body: body}
	attach(n, body)
	return n, true
}

func (b *Builder) CreateGotoStatement(loc source.Location, label string) (*GotoStmt, bool) {
	if !validIdentifierName(label) {
		b.reject(loc, "goto statement requires a valid label")
		return nil, false
	}
	return &GotoStmt{StmtHeader: StmtHeader{Header{Family: FamilyStmt, Kind: KindGotoStmt, Location: loc}}, Label: label}, true
}

// AddStmtToCompound appends stmt to compound's statement sequence and
// sets its parent back-reference.
func (b *Builder) AddStmtToCompound(compound *CompoundStmt, stmt Stmt) bool {
	if compound == nil || stmt == nil {
		return false
	}
	compound.Statements = append(compound.Statements, stmt)
	attach(compound, stmt)
	return true
}

// AddDeclToCompound appends decl to compound's declaration sequence and
// sets its parent back-reference.
func (b *Builder) AddDeclToCompound(compound *CompoundStmt, decl Decl) bool {
	if compound == nil || decl == nil {
		return false
	}
	compound.Declarations = append(compound.Declarations, decl)
	attach(compound, decl)
	return true
}

// --- Expressions --------------------------------------------------------

// CreateLiteralExpression wraps a lexed literal token. is_lvalue is
// false and is_constant is true, per §3.
func (b *Builder) CreateLiteralExpression(loc source.Location, tok token.Token) (*LiteralExpr, bool) {
	if !tok.IsValid() {
		b.reject(loc, "literal expression has an invalid token kind")
		return nil, false
	}
	return &LiteralExpr{
		ExprHeader: ExprHeader{Header: Header{Family: FamilyExpr, Kind: KindLiteralExpr, Location: loc}, Lvalue: false, Constant: true},
		Token:      tok,
	}, true
}

// CreateIdentifierExpression references name. is_lvalue is true.
func (b *Builder) CreateIdentifierExpression(loc source.Location, name string) (*IdentifierExpr, bool) {
	if name == "" {
		b.reject(loc, "identifier expression requires a non-empty name")
		return nil, false
	}
	return &IdentifierExpr{
		ExprHeader: ExprHeader{Header: Header{Family: FamilyExpr, Kind: KindIdentifierExpr, Location: loc}, Lvalue: true, Constant: false},
		Name:       name,
	}, true
}

// CreateBinaryExpression combines left and right with op. is_lvalue is
// false.
func (b *Builder) CreateBinaryExpression(loc source.Location, op BinaryOp, left, right Expr) (*BinaryExpr, bool) {
	if left == nil || right == nil {
		b.reject(loc, "binary expression %q requires both operands", op)
		return nil, false
	}
	n := &BinaryExpr{
		ExprHeader: ExprHeader{Header: Header{Family: FamilyExpr, Kind: KindBinaryExpr, Location: loc}},
		Op:         op, Left: left, Right: right,
	}
	attach(n, left)
	attach(n, right)
	return n, true
}

// CreateUnaryExpression applies op to operand. is_lvalue is false.
func (b *Builder) CreateUnaryExpression(loc source.Location, op UnaryOp, operand Expr) (*UnaryExpr, bool) {
	if operand == nil {
		b.reject(loc, "unary expression %q requires an operand", op)
		return nil, false
	}
	n := &UnaryExpr{
		ExprHeader: ExprHeader{Header: Header{Family: FamilyExpr, Kind: KindUnaryExpr, Location: loc}},
		Op:         op, Operand: operand,
	}
	attach(n, operand)
	return n, true
}

// CreateAssignmentExpression assigns value into target. is_lvalue is
// false (the assignment expression itself, not its target).
func (b *Builder) CreateAssignmentExpression(loc source.Location, op AssignOp, target, value Expr) (*AssignmentExpr, bool) {
	if target == nil || value == nil {
		b.reject(loc, "assignment expression %q requires a target and a value", op)
		return nil, false
	}
	n := &AssignmentExpr{
		ExprHeader: ExprHeader{Header: Header{Family: FamilyExpr, Kind: KindAssignmentExpr, Location: loc}},
		Op:         op, Target: target, Value: value,
	}
	attach(n, target)
	attach(n, value)
	return n, true
}

// CreateTernaryExpression builds `cond ? then : els`. is_lvalue is
// false.
func (b *Builder) CreateTernaryExpression(loc source.Location, cond, then, els Expr) (*TernaryExpr, bool) {
	if cond == nil || then == nil || els == nil {
		b.reject(loc, "ternary expression requires a condition, a then-value, and an else-value")
		return nil, false
	}
	n := &TernaryExpr{
		ExprHeader: ExprHeader{Header: Header{Family: FamilyExpr, Kind: KindTernaryExpr, Location: loc}},
		Cond:       cond, Then: then, Else: els,
	}
	attach(n, cond)
	attach(n, then)
	attach(n, els)
	return n, true
}

// CreateCallExpression invokes callee with args. is_lvalue is false.
func (b *Builder) CreateCallExpression(loc source.Location, callee Expr, args []Expr) (*CallExpr, bool) {
	if callee == nil {
		b.reject(loc, "call expression requires a callee")
		return nil, false
	}
	n := &CallExpr{
		ExprHeader: ExprHeader{Header: Header{Family: FamilyExpr, Kind: KindCallExpr, Location: loc}},
		Callee:     callee, Args: args,
	}
	attach(n, callee)
	for _, a := range args {
		attach(n, a)
	}
	return n, true
}

// CreateSubscriptExpression indexes array by index. is_lvalue is true.
func (b *Builder) CreateSubscriptExpression(loc source.Location, array, index Expr) (*SubscriptExpr, bool) {
	if array == nil || index == nil {
		b.reject(loc, "subscript expression requires an array and an index")
		return nil, false
	}
	n := &SubscriptExpr{
		ExprHeader: ExprHeader{Header: Header{Family: FamilyExpr, Kind: KindSubscriptExpr, Location: loc}, Lvalue: true},
		Array:      array, Index: index,
	}
	attach(n, array)
	attach(n, index)
	return n, true
}

// CreateMemberExpression accesses member of object via '.' or '->'
// (isArrow). is_lvalue is true.
func (b *Builder) CreateMemberExpression(loc source.Location, object Expr, member string, isArrow bool) (*MemberExpr, bool) {
	if object == nil || member == "" {
		b.reject(loc, "member expression requires an object and a member name")
		return nil, false
	}
	n := &MemberExpr{
		ExprHeader: ExprHeader{Header: Header{Family: FamilyExpr, Kind: KindMemberExpr, Location: loc}, Lvalue: true},
		Object:     object, Member: member, IsArrow: isArrow,
	}
	attach(n, object)
	return n, true
}

// CreateCastExpression casts operand to typ. is_lvalue is false.
func (b *Builder) CreateCastExpression(loc source.Location, typ TypeSpec, operand Expr) (*CastExpr, bool) {
	if typ == nil || operand == nil {
		b.reject(loc, "cast expression requires a type and an operand")
		return nil, false
	}
	n := &CastExpr{
		ExprHeader: ExprHeader{Header: Header{Family: FamilyExpr, Kind: KindCastExpr, Location: loc}},
		Type:       typ, Operand: operand,
	}
	attach(n, typ)
	attach(n, operand)
	return n, true
}

// --- Type specifiers -----------------------------------------------------

func (b *Builder) CreateBasicType(loc source.Location, kind BasicTypeKind, long, short, signed, unsigned bool) *BasicType {
	return &BasicType{
		TypeSpecHeader: TypeSpecHeader{Header{Family: FamilyTypeSpec, Kind: KindBasicType, Location: loc}},
		BasicKind:      kind, Long: long, Short: short, Signed: signed, Unsigned: unsigned,
	}
}

func (b *Builder) CreatePointerType(loc source.Location, base TypeSpec) (*PointerType, bool) {
	if base == nil {
		b.reject(loc, "pointer type requires a base type")
		return nil, false
	}
	n := &PointerType{TypeSpecHeader: TypeSpecHeader{Header{Family: FamilyTypeSpec, Kind: KindPointerType, Location: loc}}, Base: base}
	attach(n, base)
	return n, true
}

// CreateArrayType wraps element with an optional constant-expression
// size; size == nil denotes a variable-length array.
func (b *Builder) CreateArrayType(loc source.Location, element TypeSpec, size Expr) (*ArrayType, bool) {
	if element == nil {
		b.reject(loc, "array type requires an element type")
		return nil, false
	}
	n := &ArrayType{TypeSpecHeader: TypeSpecHeader{Header{Family: FamilyTypeSpec, Kind: KindArrayType, Location: loc}}, Element: element, Size: size}
	attach(n, element)
	attach(n, size)
	return n, true
}

func (b *Builder) CreateFunctionType(loc source.Location, returnType TypeSpec, parameters []TypeSpec, variadic bool) (*FunctionType, bool) {
	if returnType == nil {
		b.reject(loc, "function type requires a return type")
		return nil, false
	}
	n := &FunctionType{
		TypeSpecHeader: TypeSpecHeader{Header{Family: FamilyTypeSpec, Kind: KindFunctionType, Location: loc}},
		ReturnType:     returnType, Parameters: parameters, Variadic: variadic,
	}
	attach(n, returnType)
	for _, p := range parameters {
		attach(n, p)
	}
	return n, true
}

// CreateStructRefType names a struct type; decl is nil for a forward
// reference.
func (b *Builder) CreateStructRefType(loc source.Location, name string, decl *StructDecl) *StructRefType {
	return &StructRefType{TypeSpecHeader: TypeSpecHeader{Header{Family: FamilyTypeSpec, Kind: KindStructRefType, Location: loc}}, Name: name, Decl: decl}
}

// CreateUnionRefType names a union type; decl is nil for a forward
// reference.
func (b *Builder) CreateUnionRefType(loc source.Location, name string, decl *UnionDecl) *UnionRefType {
	return &UnionRefType{TypeSpecHeader: TypeSpecHeader{Header{Family: FamilyTypeSpec, Kind: KindUnionRefType, Location: loc}}, Name: name, Decl: decl}
}

// CreateEnumRefType names an enum type; decl is nil for a forward
// reference.
func (b *Builder) CreateEnumRefType(loc source.Location, name string, decl *EnumDecl) *EnumRefType {
	return &EnumRefType{TypeSpecHeader: TypeSpecHeader{Header{Family: FamilyTypeSpec, Kind: KindEnumRefType, Location: loc}}, Name: name, Decl: decl}
}

// CreateTypedefNameRefType references a typedef'd name.
func (b *Builder) CreateTypedefNameRefType(loc source.Location, name string, decl *TypedefDecl) *TypedefNameRefType {
	return &TypedefNameRefType{TypeSpecHeader: TypeSpecHeader{Header{Family: FamilyTypeSpec, Kind: KindTypedefNameRefType, Location: loc}}, Name: name, Decl: decl}
}
