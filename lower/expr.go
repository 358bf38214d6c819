package lower

import (
	"github.com/minic-lang/minic/ast"
	"github.com/minic-lang/minic/cst"
)

// binaryOpKinds maps an operator terminal to the AST kind of the binary
// node it produces. One table serves every precedence level; the grammar
// guarantees each level's Ops only ever hold that level's terminals.
var binaryOpKinds = map[cst.TokenKind]ast.Kind{
	cst.TokenOr:        ast.KindLogicalOr,
	cst.TokenAnd:       ast.KindLogicalAnd,
	cst.TokenEq:        ast.KindEqual,
	cst.TokenNotEq:     ast.KindNotEqual,
	cst.TokenLess:      ast.KindLess,
	cst.TokenLessEq:    ast.KindLessEqual,
	cst.TokenGreater:   ast.KindGreater,
	cst.TokenGreaterEq: ast.KindGreaterEqual,
	cst.TokenPlus:      ast.KindAdd,
	cst.TokenMinus:     ast.KindSub,
	cst.TokenStar:      ast.KindMul,
	cst.TokenSlash:     ast.KindDiv,
	cst.TokenPercent:   ast.KindMod,
}

// foldBinary lowers one binary-expression chain into a strictly
// left-associative tree. The first operand is lowered at the next-higher
// precedence level; if the chain has no operator tokens that operand is
// returned unchanged, with no wrapper node — this is how an expression
// with no operators at some level degenerates transparently into the
// next level's node. Otherwise the operators fold left to right, each
// synthesized node taking its operator token's line.
func foldBinary[T any](l *lowerer, operands []T, ops []cst.Token, lowerOperand func(T) (*ast.Node, error)) (*ast.Node, error) {
	if len(operands) != len(ops)+1 {
		return nil, l.errf(0, "malformed expression chain: %d operands for %d operators", len(operands), len(ops))
	}
	left, err := lowerOperand(operands[0])
	if err != nil {
		return nil, err
	}
	for i, op := range ops {
		kind, ok := binaryOpKinds[op.Kind]
		if !ok {
			return nil, l.errf(op.Line, "unexpected %v in binary expression", op.Kind)
		}
		right, err := lowerOperand(operands[i+1])
		if err != nil {
			return nil, err
		}
		left = ast.NewOperator(kind, op.Line, left, right)
	}
	return left, nil
}

// expr handles `expr: lorExp`.
func (l *lowerer) expr(e *cst.Expr) (*ast.Node, error) {
	return l.lorExpr(e.LOr)
}

func (l *lowerer) lorExpr(e *cst.LOrExpr) (*ast.Node, error) {
	return foldBinary(l, e.Operands, e.Ops, l.landExpr)
}

func (l *lowerer) landExpr(e *cst.LAndExpr) (*ast.Node, error) {
	return foldBinary(l, e.Operands, e.Ops, l.eqExpr)
}

func (l *lowerer) eqExpr(e *cst.EqExpr) (*ast.Node, error) {
	return foldBinary(l, e.Operands, e.Ops, l.relExpr)
}

func (l *lowerer) relExpr(e *cst.RelExpr) (*ast.Node, error) {
	return foldBinary(l, e.Operands, e.Ops, l.addExpr)
}

func (l *lowerer) addExpr(e *cst.AddExpr) (*ast.Node, error) {
	return foldBinary(l, e.Operands, e.Ops, l.mulExpr)
}

func (l *lowerer) mulExpr(e *cst.MulExpr) (*ast.Node, error) {
	return foldBinary(l, e.Operands, e.Ops, l.unaryExpr)
}

// unaryExpr disambiguates the three unary alternatives: a function call
// (identifier followed by a parenthesized argument list), a prefix
// operator applied recursively, or a primary expression. Only numeric
// negation is supported as a prefix operator; any other prefix terminal is
// a grammar/lowering mismatch and fatal.
func (l *lowerer) unaryExpr(e cst.UnaryExpr) (*ast.Node, error) {
	switch e := e.(type) {
	case *cst.CallExpr:
		callee := ast.NewLeaf(ast.IdentAttr{Text: e.Callee.Text, Line: e.Callee.Line})
		var args *ast.Node
		if e.Args != nil {
			var err error
			args, err = l.realParamList(e.Args)
			if err != nil {
				return nil, err
			}
		}
		return ast.NewFuncCall(callee, args), nil
	case *cst.PrefixExpr:
		if e.Op.Kind != cst.TokenMinus {
			return nil, l.errf(e.Op.Line, "unsupported unary operator %v", e.Op.Kind)
		}
		operand, err := l.unaryExpr(e.X)
		if err != nil {
			return nil, err
		}
		return ast.NewOperator(ast.KindNeg, e.Op.Line, operand), nil
	case cst.PrimaryExpr:
		return l.primaryExpr(e)
	default:
		return nil, l.errf(0, "unexpected unary expression production %T", e)
	}
}

// primaryExpr disambiguates grouping, integer literals, and lvalue
// references. Grouping is structural only: the inner expression's node is
// returned directly and no node represents the parentheses.
func (l *lowerer) primaryExpr(e cst.PrimaryExpr) (*ast.Node, error) {
	switch e := e.(type) {
	case *cst.ParenExpr:
		return l.expr(e.X)
	case *cst.NumberLit:
		attr, err := ast.ParseIntLiteral(e.Value.Text, e.Value.Line)
		if err != nil {
			return nil, l.err(e.Value.Line, err)
		}
		return ast.NewLeaf(attr), nil
	case *cst.LVal:
		return l.lval(e), nil
	default:
		return nil, l.errf(0, "unexpected primary expression production %T", e)
	}
}

// realParamList lowers call arguments into a real-params container in
// left-to-right source order. Argument count and types are not checked
// here; call-site matching belongs to the semantic pass.
func (l *lowerer) realParamList(params *cst.RealParamList) (*ast.Node, error) {
	args := make([]*ast.Node, 0, len(params.Params))
	for _, p := range params.Params {
		n, err := l.expr(p)
		if err != nil {
			return nil, err
		}
		args = append(args, n)
	}
	return ast.NewContainer(ast.KindRealParams, args...), nil
}
