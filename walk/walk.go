// Package walk provides helpers for traversing a lowered MiniC AST, for
// use by later passes and by tests.
package walk

import "github.com/minic-lang/minic/ast"

// Nodes visits every node of the tree rooted at root, depth first,
// parents before children, in child order. If fn returns a non-nil error,
// the walk stops and that error is returned.
func Nodes(root *ast.Node, fn func(*ast.Node) error) error {
	return NodesEnterAndExit(root, fn, nil)
}

// NodesEnterAndExit visits every node of the tree rooted at root, calling
// enter before a node's children and exit (if non-nil) after them. If
// either function returns a non-nil error, the walk stops and that error
// is returned.
func NodesEnterAndExit(root *ast.Node, enter, exit func(*ast.Node) error) error {
	if err := enter(root); err != nil {
		return err
	}
	for _, child := range root.Children {
		if err := NodesEnterAndExit(child, enter, exit); err != nil {
			return err
		}
	}
	if exit != nil {
		return exit(root)
	}
	return nil
}
