package lower

// Builders for assembling CST fixtures by hand. The upstream parser is not
// part of this module, so tests construct the shapes it would produce.

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/minic-lang/minic/ast"
	"github.com/minic-lang/minic/cst"
	"github.com/minic-lang/minic/reporter"
)

func tk(kind cst.TokenKind, text string, line int) cst.Token {
	return cst.Token{Kind: kind, Text: text, Line: line}
}

func lv(name string, line int) *cst.LVal {
	return &cst.LVal{Ident: tk(cst.TokenIdent, name, line)}
}

func lit(text string, line int) *cst.NumberLit {
	return &cst.NumberLit{Value: tk(cst.TokenDigit, text, line)}
}

// Singleton chains: wrap a unary expression one precedence level up
// without introducing any operator.

func mulOf(u cst.UnaryExpr) *cst.MulExpr {
	return &cst.MulExpr{Operands: []cst.UnaryExpr{u}}
}

func addOf(u cst.UnaryExpr) *cst.AddExpr {
	return &cst.AddExpr{Operands: []*cst.MulExpr{mulOf(u)}}
}

func relOf(u cst.UnaryExpr) *cst.RelExpr {
	return &cst.RelExpr{Operands: []*cst.AddExpr{addOf(u)}}
}

func eqOf(u cst.UnaryExpr) *cst.EqExpr {
	return &cst.EqExpr{Operands: []*cst.RelExpr{relOf(u)}}
}

func landOf(u cst.UnaryExpr) *cst.LAndExpr {
	return &cst.LAndExpr{Operands: []*cst.EqExpr{eqOf(u)}}
}

// Wrappers from a given level up to the expr root, all levels above
// degenerate.

func exprFromLOr(e *cst.LOrExpr) *cst.Expr {
	return &cst.Expr{LOr: e}
}

func exprFromLAnd(e *cst.LAndExpr) *cst.Expr {
	return exprFromLOr(&cst.LOrExpr{Operands: []*cst.LAndExpr{e}})
}

func exprFromEq(e *cst.EqExpr) *cst.Expr {
	return exprFromLAnd(&cst.LAndExpr{Operands: []*cst.EqExpr{e}})
}

func exprFromRel(e *cst.RelExpr) *cst.Expr {
	return exprFromEq(&cst.EqExpr{Operands: []*cst.RelExpr{e}})
}

func exprFromAdd(e *cst.AddExpr) *cst.Expr {
	return exprFromRel(&cst.RelExpr{Operands: []*cst.AddExpr{e}})
}

func exprFromMul(e *cst.MulExpr) *cst.Expr {
	return exprFromAdd(&cst.AddExpr{Operands: []*cst.MulExpr{e}})
}

// exprOf wraps a single unary expression into a fully degenerate chain.
func exprOf(u cst.UnaryExpr) *cst.Expr {
	return exprFromMul(mulOf(u))
}

func newTestLowerer() *lowerer {
	return &lowerer{filename: "test.mc", handler: reporter.NewHandler(nil)}
}

func lowerExpr(t *testing.T, e *cst.Expr) *ast.Node {
	t.Helper()
	n, err := newTestLowerer().expr(e)
	require.NoError(t, err)
	require.NotNil(t, n)
	return n
}

// identLeaf asserts that n is an identifier leaf with the given name.
func identLeaf(t *testing.T, n *ast.Node, name string) {
	t.Helper()
	require.Equal(t, ast.KindIdent, n.Kind)
	require.Empty(t, n.Children)
	require.Equal(t, name, n.Attr.(ast.IdentAttr).Text)
}
