// Package lower converts a MiniC concrete syntax tree into the abstract
// syntax tree consumed by semantic analysis and code generation.
//
// The transformation is a depth-first recursive descent over the CST, one
// handler per grammar production, entered once at the compilation-unit
// root through CompileUnit. Children are lowered before their parent node
// is assembled, so a node is never exposed partially constructed. The
// lowering holds no state between invocations; independent CSTs may be
// lowered concurrently.
//
// The grammar has already ruled out malformed shapes, so this stage
// validates nothing it does not itself branch on. It does not reject
// programs that are syntactically legal but semantically invalid
// (undeclared identifiers, break outside a loop, calling a non-function);
// those checks belong to the semantic pass. The only errors it produces
// are fatal ones: a CST shape no handler can classify (a grammar/lowering
// mismatch) or an integer literal the numeric parser rejects. Both abort
// the unit's lowering and are attributed to a source line through the
// reporter.
package lower
