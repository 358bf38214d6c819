package cst

// CompileUnit is the root production:
//
//	compileUnit: (funcDef | varDecl)* EOF
//
// Decls preserves the textual interleaving of functions and global
// variable declarations; any regrouping is the lowering stage's concern.
type CompileUnit struct {
	Decls []Decl
}

// Decl is a top-level declaration: *VarDecl or *FuncDef.
type Decl interface {
	isDecl()
}

// FuncDef is a function definition:
//
//	funcDef: 'int' ID '(' ')' block
//
// The surface grammar supports no formal parameters.
type FuncDef struct {
	Return Token // the 'int' keyword
	Name   Token
	Body   *Block
}

func (*FuncDef) isDecl() {}

// VarDecl declares one or more variables sharing a base type:
//
//	varDecl: basicType varDef (',' varDef)* ';'
type VarDecl struct {
	Type  *BasicType
	Names []Token // one identifier per declared variable, in source order
}

func (*VarDecl) isDecl()      {}
func (*VarDecl) isBlockItem() {}

// BasicType is the type production. Int is the matched 'int' keyword; a
// nil Int means no type keyword matched, which a conforming parse never
// produces.
type BasicType struct {
	Int *Token
}

// Block is a braced statement list:
//
//	block: '{' blockItemList? '}'
//
// Items is empty when the braces enclose nothing.
type Block struct {
	Items []BlockItem
}

// BlockItem is one entry of a block: a Statement or a *VarDecl.
type BlockItem interface {
	isBlockItem()
}

// Statement is the closed set of statement alternatives. Exactly one
// variant matches each statement production.
type Statement interface {
	BlockItem
	isStatement()
}

// AssignStmt is `lVal '=' expr ';'`.
type AssignStmt struct {
	LVal   *LVal
	Assign Token
	Value  *Expr
}

// ReturnStmt is `'return' expr ';'`.
type ReturnStmt struct {
	Return Token
	Value  *Expr
}

// BlockStmt is a nested block used in statement position.
type BlockStmt struct {
	Body *Block
}

// ExprStmt is `expr? ';'`. A nil X is the empty statement (a bare
// semicolon), an expected, non-error production.
type ExprStmt struct {
	X *Expr
}

// IfStmt is `'if' '(' expr ')' statement ('else' statement)?`. A nil Else
// means no else branch matched. The parser has already bound each 'else'
// to the innermost unmatched 'if', so no dangling-else handling is needed
// downstream.
type IfStmt struct {
	If   Token
	Cond *Expr
	Then Statement
	Else Statement
}

// WhileStmt is `'while' '(' expr ')' statement`.
type WhileStmt struct {
	While Token
	Cond  *Expr
	Body  Statement
}

// BreakStmt is `'break' ';'`.
type BreakStmt struct {
	Break Token
}

// ContinueStmt is `'continue' ';'`.
type ContinueStmt struct {
	Continue Token
}

func (*AssignStmt) isBlockItem()   {}
func (*ReturnStmt) isBlockItem()   {}
func (*BlockStmt) isBlockItem()    {}
func (*ExprStmt) isBlockItem()     {}
func (*IfStmt) isBlockItem()       {}
func (*WhileStmt) isBlockItem()    {}
func (*BreakStmt) isBlockItem()    {}
func (*ContinueStmt) isBlockItem() {}

func (*AssignStmt) isStatement()   {}
func (*ReturnStmt) isStatement()   {}
func (*BlockStmt) isStatement()    {}
func (*ExprStmt) isStatement()     {}
func (*IfStmt) isStatement()       {}
func (*WhileStmt) isStatement()    {}
func (*BreakStmt) isStatement()    {}
func (*ContinueStmt) isStatement() {}

// Expr is the top expression production:
//
//	expr: lorExp
type Expr struct {
	LOr *LOrExpr
}

// The binary-expression productions below all share one shape: a chain of
// operands at the next-higher precedence level, separated by operator
// tokens of this level. The parser guarantees
// len(Operands) == len(Ops)+1; a chain with no operator tokens is a
// single operand.

// LOrExpr is `landExp ('||' landExp)*`.
type LOrExpr struct {
	Operands []*LAndExpr
	Ops      []Token
}

// LAndExpr is `eqExp ('&&' eqExp)*`.
type LAndExpr struct {
	Operands []*EqExpr
	Ops      []Token
}

// EqExpr is `relExp (('==' | '!=') relExp)*`.
type EqExpr struct {
	Operands []*RelExpr
	Ops      []Token
}

// RelExpr is `addExp (('<' | '<=' | '>' | '>=') addExp)*`.
type RelExpr struct {
	Operands []*AddExpr
	Ops      []Token
}

// AddExpr is `mulExp (('+' | '-') mulExp)*`.
type AddExpr struct {
	Operands []*MulExpr
	Ops      []Token
}

// MulExpr is `unaryExp (('*' | '/' | '%') unaryExp)*`.
type MulExpr struct {
	Operands []UnaryExpr
	Ops      []Token
}

// UnaryExpr is the closed set of unary-expression alternatives:
//
//	unaryExp: primaryExp | ID '(' realParamList? ')' | unaryOp unaryExp
//
// Every PrimaryExpr is also a UnaryExpr, mirroring the grammar's
// alternative nesting.
type UnaryExpr interface {
	isUnaryExpr()
}

// CallExpr is a function call: an identifier immediately followed by a
// parenthesized argument list. A nil Args means the parentheses were
// empty.
type CallExpr struct {
	Callee Token
	Args   *RealParamList
}

func (*CallExpr) isUnaryExpr() {}

// PrefixExpr is a prefix unary operator applied to another unary
// expression.
type PrefixExpr struct {
	Op Token
	X  UnaryExpr
}

func (*PrefixExpr) isUnaryExpr() {}

// PrimaryExpr is the closed set of primary-expression alternatives:
//
//	primaryExp: '(' expr ')' | DIGIT | lVal
type PrimaryExpr interface {
	UnaryExpr
	isPrimaryExpr()
}

// ParenExpr is a parenthesized expression. The parentheses are purely
// syntactic grouping; lowering produces no node for them.
type ParenExpr struct {
	X *Expr
}

// NumberLit is an integer literal token.
type NumberLit struct {
	Value Token
}

// LVal is an identifier denoting a storage location.
type LVal struct {
	Ident Token
}

func (*ParenExpr) isUnaryExpr() {}
func (*NumberLit) isUnaryExpr() {}
func (*LVal) isUnaryExpr()      {}

func (*ParenExpr) isPrimaryExpr() {}
func (*NumberLit) isPrimaryExpr() {}
func (*LVal) isPrimaryExpr()      {}

// RealParamList is `expr (',' expr)*`, the arguments of a call in
// left-to-right source order.
type RealParamList struct {
	Params []*Expr
}
