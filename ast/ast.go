package ast

import "fmt"

// Kind identifies the syntactic role of a Node.
type Kind int

const (
	// KindInvalid is the zero value of Kind. A conforming lowering never
	// produces it; encountering it in a tree indicates a defect in the
	// code that built the tree.
	KindInvalid Kind = iota

	// Structural kinds, built with NewContainer (or a composite factory).

	KindCompileUnit  // children: global decl-stmts, then func-defs
	KindBlock        // children: zero or more statements
	KindDeclStmt     // children: one var-decl per declared name
	KindFormalParams // children: formal parameters (none in the surface grammar)
	KindRealParams   // children: call arguments in source order

	// Fixed-shape composite kinds, built with their dedicated factories.

	KindFuncDef  // children: type, name, block, formal-params
	KindFuncCall // children: callee ident, real-params
	KindVarDecl  // children: type, name
	KindType     // leaf; carries a TypeAttr

	// Statement kinds, built with NewOperator.

	KindAssign   // children: lvalue, value
	KindReturn   // children: value
	KindIf       // children: condition, then-branch
	KindIfElse   // children: condition, then-branch, else-branch
	KindWhile    // children: condition, body
	KindBreak    // childless marker
	KindContinue // childless marker

	// Operator kinds, built with NewOperator. Binary operators always have
	// exactly two children, ordered left then right.

	KindLogicalOr
	KindLogicalAnd
	KindEqual
	KindNotEqual
	KindLess
	KindLessEqual
	KindGreater
	KindGreaterEqual
	KindAdd
	KindSub
	KindMul
	KindDiv
	KindMod
	KindNeg // unary numeric negation; one child

	// Leaf kinds, built with NewLeaf.

	KindIdent  // carries an IdentAttr
	KindIntLit // carries an IntLitAttr
)

var kindNames = map[Kind]string{
	KindInvalid:      "invalid",
	KindCompileUnit:  "compile-unit",
	KindBlock:        "block",
	KindDeclStmt:     "decl-stmt",
	KindFormalParams: "formal-params",
	KindRealParams:   "real-params",
	KindFuncDef:      "func-def",
	KindFuncCall:     "func-call",
	KindVarDecl:      "var-decl",
	KindType:         "type",
	KindAssign:       "assign",
	KindReturn:       "return",
	KindIf:           "if",
	KindIfElse:       "if-else",
	KindWhile:        "while",
	KindBreak:        "break",
	KindContinue:     "continue",
	KindLogicalOr:    "lor",
	KindLogicalAnd:   "land",
	KindEqual:        "eq",
	KindNotEqual:     "ne",
	KindLess:         "lt",
	KindLessEqual:    "le",
	KindGreater:      "gt",
	KindGreaterEqual: "ge",
	KindAdd:          "add",
	KindSub:          "sub",
	KindMul:          "mul",
	KindDiv:          "div",
	KindMod:          "mod",
	KindNeg:          "neg",
	KindIdent:        "ident",
	KindIntLit:       "int-lit",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// isContainer reports whether k is a structural kind whose child count
// legitimately varies from zero.
func (k Kind) isContainer() bool {
	switch k {
	case KindCompileUnit, KindBlock, KindDeclStmt, KindFormalParams, KindRealParams:
		return true
	}
	return false
}

// operatorArity returns the exact child count k demands, for the kinds
// assembled with NewOperator. The second result is false for kinds that
// must be built with NewContainer, NewLeaf, or a composite factory.
func (k Kind) operatorArity() (int, bool) {
	switch k {
	case KindBreak, KindContinue:
		return 0, true
	case KindReturn, KindNeg:
		return 1, true
	case KindAssign, KindIf, KindWhile, KindVarDecl,
		KindLogicalOr, KindLogicalAnd,
		KindEqual, KindNotEqual,
		KindLess, KindLessEqual, KindGreater, KindGreaterEqual,
		KindAdd, KindSub, KindMul, KindDiv, KindMod:
		return 2, true
	case KindIfElse:
		return 3, true
	}
	return 0, false
}

// Node is a single node of the AST. Children are exclusively owned by
// their parent and their order is semantically significant (an if-else
// node's children are always condition, then-branch, else-branch).
//
// Nodes should be created through the factory functions in this package,
// which guarantee that Kind, Children, and Attr are mutually consistent.
type Node struct {
	Kind     Kind
	Children []*Node
	// Attr is the lexical payload of leaf-like nodes (identifiers,
	// integer literals, type nodes, function and variable names). It is
	// nil on purely structural and operator nodes.
	Attr Attribute
	// Line is the 1-based source line of the node's dominant token, or 0
	// when the production has no dominant token of its own.
	Line int
}

// SourcePos identifies a location in a MiniC source file for diagnostics.
type SourcePos struct {
	Filename string
	Line     int // 1-based; 0 when unknown
}

func (p SourcePos) String() string {
	filename := p.Filename
	if filename == "" {
		filename = "<input>"
	}
	if p.Line <= 0 {
		return filename
	}
	return fmt.Sprintf("%s:%d", filename, p.Line)
}
