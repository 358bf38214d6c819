package walk

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minic-lang/minic/ast"
)

func buildTree() *ast.Node {
	// return -(a + 2)
	return ast.NewOperator(ast.KindReturn, 1,
		ast.NewOperator(ast.KindNeg, 1,
			ast.NewOperator(ast.KindAdd, 1,
				ast.NewLeaf(ast.IdentAttr{Text: "a", Line: 1}),
				ast.NewLeaf(ast.IntLitAttr{Value: 2, Line: 1}),
			),
		),
	)
}

func TestNodesVisitsDepthFirst(t *testing.T) {
	var kinds []ast.Kind
	err := Nodes(buildTree(), func(n *ast.Node) error {
		kinds = append(kinds, n.Kind)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []ast.Kind{ast.KindReturn, ast.KindNeg, ast.KindAdd, ast.KindIdent, ast.KindIntLit}, kinds)
}

func TestNodesEnterAndExit(t *testing.T) {
	var trace []string
	err := NodesEnterAndExit(buildTree(),
		func(n *ast.Node) error {
			trace = append(trace, "enter "+n.Kind.String())
			return nil
		},
		func(n *ast.Node) error {
			trace = append(trace, "exit "+n.Kind.String())
			return nil
		},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"enter return",
		"enter neg",
		"enter add",
		"enter ident", "exit ident",
		"enter int-lit", "exit int-lit",
		"exit add",
		"exit neg",
		"exit return",
	}, trace)
}

func TestNodesStopsOnError(t *testing.T) {
	stop := errors.New("stop")
	var count int
	err := Nodes(buildTree(), func(n *ast.Node) error {
		count++
		if n.Kind == ast.KindAdd {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 3, count, "walk must stop at the failing node")
}
