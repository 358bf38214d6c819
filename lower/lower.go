package lower

import (
	"errors"

	"github.com/minic-lang/minic/ast"
	"github.com/minic-lang/minic/cst"
	"github.com/minic-lang/minic/reporter"
)

// CompileUnit lowers a full compilation unit to its AST root. filename is
// used only to attribute diagnostics. The returned tree is exclusively
// owned by the caller and shares nothing with unit; lowering the same unit
// again produces a fully independent tree.
//
// On a fatal condition the returned AST is nil and the error has been
// routed through handler. handler may be nil, in which case lowering fails
// on the first error.
func CompileUnit(filename string, unit *cst.CompileUnit, handler *reporter.Handler) (*ast.Node, error) {
	if unit == nil {
		return nil, errors.New("minic/lower: nil compile unit")
	}
	if handler == nil {
		handler = reporter.NewHandler(nil)
	}
	l := &lowerer{filename: filename, handler: handler}
	return l.compileUnit(unit)
}

// lowerer carries the per-unit context through the mutually recursive
// production handlers. It has no mutable state of its own.
type lowerer struct {
	filename string
	handler  *reporter.Handler
}

func (l *lowerer) pos(line int) ast.SourcePos {
	return ast.SourcePos{Filename: l.filename, Line: line}
}

// errf reports a fatal condition at the given line and returns the error
// that aborts the unit's lowering. The result is never nil: even when the
// configured reporter swallows the error, a fatal condition leaves nothing
// to build, so the ErrInvalidSource sentinel is surfaced instead.
func (l *lowerer) errf(line int, format string, args ...any) error {
	if err := l.handler.HandleErrorf(l.pos(line), format, args...); err != nil {
		return err
	}
	return reporter.ErrInvalidSource
}

// err is errf for an already-constructed error.
func (l *lowerer) err(line int, underlying error) error {
	if err := l.handler.HandleError(reporter.Error(l.pos(line), underlying)); err != nil {
		return err
	}
	return reporter.ErrInvalidSource
}

// compileUnit handles `compileUnit: (funcDef | varDecl)* EOF`.
//
// Global variable declarations are lowered before function definitions, in
// source order within each group, regardless of how the two interleave in
// the text. This guarantees declaration-before-use structurally but also
// hides a real ordering violation: a function defined before a global can
// still see that global in the tree.
// TODO: the semantic pass should compare the line numbers of a function
// and the globals it references and reject uses of globals declared on a
// later line.
func (l *lowerer) compileUnit(unit *cst.CompileUnit) (*ast.Node, error) {
	var children []*ast.Node
	for _, decl := range unit.Decls {
		if varDecl, ok := decl.(*cst.VarDecl); ok {
			n, err := l.varDecl(varDecl)
			if err != nil {
				return nil, err
			}
			children = append(children, n)
		}
	}
	for _, decl := range unit.Decls {
		if funcDef, ok := decl.(*cst.FuncDef); ok {
			n, err := l.funcDef(funcDef)
			if err != nil {
				return nil, err
			}
			children = append(children, n)
		}
	}
	return ast.NewContainer(ast.KindCompileUnit, children...), nil
}

// funcDef handles `funcDef: 'int' ID '(' ')' block`. The resulting node
// always has the fixed four-child shape enforced by ast.NewFuncDef; the
// formal-parameter child is an empty container because the surface grammar
// supports no parameters.
func (l *lowerer) funcDef(def *cst.FuncDef) (*ast.Node, error) {
	returnType := ast.TypeAttr{Type: ast.TypeInt, Line: def.Return.Line}
	name := ast.IdentAttr{Text: def.Name.Text, Line: def.Name.Line}
	body, err := l.block(def.Body)
	if err != nil {
		return nil, err
	}
	return ast.NewFuncDef(returnType, name, body, nil), nil
}

// block handles `block: '{' blockItemList? '}'`. A block with no items
// lowers to an explicitly empty container, never to a missing node, so a
// function body is always a valid block. Empty statements lower to no node
// and are skipped rather than inserted as placeholders.
func (l *lowerer) block(b *cst.Block) (*ast.Node, error) {
	items := make([]*ast.Node, 0, len(b.Items))
	for _, item := range b.Items {
		var n *ast.Node
		var err error
		switch item := item.(type) {
		case *cst.VarDecl:
			n, err = l.varDecl(item)
		case cst.Statement:
			n, err = l.statement(item)
		default:
			err = l.errf(0, "unexpected block item production %T", item)
		}
		if err != nil {
			return nil, err
		}
		if n == nil {
			continue
		}
		items = append(items, n)
	}
	return ast.NewContainer(ast.KindBlock, items...), nil
}

// varDecl handles `varDecl: basicType varDef (',' varDef)* ';'`. One
// declaration statement fans out into one var-decl child per declared
// name. Each child gets its own freshly constructed type node — type nodes
// are never shared across siblings, keeping the tree strict.
func (l *lowerer) varDecl(decl *cst.VarDecl) (*ast.Node, error) {
	typeAttr := l.basicType(decl.Type)
	children := make([]*ast.Node, 0, len(decl.Names))
	for _, name := range decl.Names {
		typeNode := ast.NewTypeNode(typeAttr)
		nameNode := ast.NewLeaf(ast.IdentAttr{Text: name.Text, Line: name.Line})
		children = append(children, ast.NewOperator(ast.KindVarDecl, name.Line, typeNode, nameNode))
	}
	return ast.NewContainer(ast.KindDeclStmt, children...), nil
}

// basicType handles `basicType: 'int'`. An absent keyword yields the void
// sentinel; a conforming parse never produces that.
func (l *lowerer) basicType(t *cst.BasicType) ast.TypeAttr {
	if t == nil || t.Int == nil {
		return ast.TypeAttr{Type: ast.TypeVoid}
	}
	return ast.TypeAttr{Type: ast.TypeInt, Line: t.Int.Line}
}

// statement dispatches on the statement alternative the parser matched.
// The alternatives form a closed set; the default branch can only be
// reached if a new variant is added to cst without a handler here, which
// is a defect in this package, not a property of any input.
//
// A nil result with a nil error is the empty statement: the caller must
// skip it, not wrap it.
func (l *lowerer) statement(stmt cst.Statement) (*ast.Node, error) {
	switch stmt := stmt.(type) {
	case *cst.AssignStmt:
		return l.assignStmt(stmt)
	case *cst.ReturnStmt:
		return l.returnStmt(stmt)
	case *cst.BlockStmt:
		return l.block(stmt.Body)
	case *cst.ExprStmt:
		if stmt.X == nil {
			return nil, nil
		}
		return l.expr(stmt.X)
	case *cst.IfStmt:
		return l.ifStmt(stmt)
	case *cst.WhileStmt:
		return l.whileStmt(stmt)
	case *cst.BreakStmt:
		return ast.NewOperator(ast.KindBreak, stmt.Break.Line), nil
	case *cst.ContinueStmt:
		return ast.NewOperator(ast.KindContinue, stmt.Continue.Line), nil
	default:
		return nil, l.errf(0, "unexpected statement production %T", stmt)
	}
}

// nestedStatement lowers a statement in branch or loop-body position. An
// empty statement there still needs a node to keep the parent's arity
// fixed, so it becomes an empty block.
func (l *lowerer) nestedStatement(stmt cst.Statement) (*ast.Node, error) {
	n, err := l.statement(stmt)
	if err != nil {
		return nil, err
	}
	if n == nil {
		n = ast.NewContainer(ast.KindBlock)
	}
	return n, nil
}

// assignStmt handles `assignStatement: lVal '=' expr ';'`.
func (l *lowerer) assignStmt(stmt *cst.AssignStmt) (*ast.Node, error) {
	target := l.lval(stmt.LVal)
	value, err := l.expr(stmt.Value)
	if err != nil {
		return nil, err
	}
	return ast.NewOperator(ast.KindAssign, stmt.Assign.Line, target, value), nil
}

// returnStmt handles `returnStatement: 'return' expr ';'`.
func (l *lowerer) returnStmt(stmt *cst.ReturnStmt) (*ast.Node, error) {
	value, err := l.expr(stmt.Value)
	if err != nil {
		return nil, err
	}
	return ast.NewOperator(ast.KindReturn, stmt.Return.Line, value), nil
}

// ifStmt builds a two-child if node or, when an else branch is present, a
// three-child if-else node. The parser has already bound each 'else' to
// the innermost unmatched 'if', so presence is the only thing checked.
func (l *lowerer) ifStmt(stmt *cst.IfStmt) (*ast.Node, error) {
	cond, err := l.expr(stmt.Cond)
	if err != nil {
		return nil, err
	}
	then, err := l.nestedStatement(stmt.Then)
	if err != nil {
		return nil, err
	}
	if stmt.Else == nil {
		return ast.NewOperator(ast.KindIf, stmt.If.Line, cond, then), nil
	}
	elseBranch, err := l.nestedStatement(stmt.Else)
	if err != nil {
		return nil, err
	}
	return ast.NewOperator(ast.KindIfElse, stmt.If.Line, cond, then, elseBranch), nil
}

// whileStmt builds a two-child while node (condition, body). Whether
// break/continue inside the body actually sit in a loop is the semantic
// pass's concern.
func (l *lowerer) whileStmt(stmt *cst.WhileStmt) (*ast.Node, error) {
	cond, err := l.expr(stmt.Cond)
	if err != nil {
		return nil, err
	}
	body, err := l.nestedStatement(stmt.Body)
	if err != nil {
		return nil, err
	}
	return ast.NewOperator(ast.KindWhile, stmt.While.Line, cond, body), nil
}

// lval handles `lVal: ID`, an identifier leaf carrying its line. The
// identifier text in the attribute is an independent copy.
func (l *lowerer) lval(v *cst.LVal) *ast.Node {
	return ast.NewLeaf(ast.IdentAttr{Text: v.Ident.Text, Line: v.Ident.Line})
}
