// Package cst models the concrete syntax tree handed to the lowering
// stage by the upstream MiniC parser.
//
// The CST preserves the grammar's shape: one type per production, with
// grouped alternatives modeled as closed interfaces (Decl, BlockItem,
// Statement, UnaryExpr, PrimaryExpr). The marker methods on those
// interfaces are unexported, so the set of variants the lowering must
// handle is fixed at compile time; a type switch over a CST alternative is
// exhaustive by construction.
//
// The parser guarantees the structural invariants stated on each type
// (for example, a binary-expression chain always has one more operand
// than it has operator tokens). The lowering stage relies on those
// guarantees and does not re-validate them beyond what it must branch on.
//
// A CST is read-only input: the lowering never mutates it, and nothing in
// the resulting AST aliases it, so the CST can be released as soon as
// lowering returns.
package cst
