// Package ast defines the AST (Abstract Syntax Tree) produced by the
// MiniC lowering stage.
//
// Unlike the concrete syntax tree in the cst package, which keeps one type
// per grammar production, the AST is a single recursive type: every
// construct is a *Node tagged with a Kind, holding an ordered list of
// children that it exclusively owns. The tree is strict — no node is ever
// shared between two parents — so releasing the root releases everything,
// and the CST the tree was lowered from can be discarded independently.
//
// Leaf-like nodes (identifier references, integer literals, type nodes)
// carry an Attribute payload pairing the lexical information with the
// source line it came from. Structural and operator nodes carry no
// attribute; their Line field records the dominant token of the production
// (the operator token for a binary expression, the keyword for a
// statement) or 0 when the production has no such token.
//
// Creation of nodes should use the factory functions in this package
// instead of struct literals. The factories enforce the structural
// invariants of each kind — arity of operator nodes, the fixed four-child
// shape of a function definition, the presence of an (possibly empty)
// parameter container on every call — so later passes never need to
// re-validate shape. Handing a factory a structurally impossible
// combination is a programming error and panics; it is never a
// compilation error.
package ast
