// Package minic provides the lowering stage of the MiniC compiler front
// end: it converts concrete syntax trees, produced by the upstream
// grammar-driven parser, into abstract syntax trees suitable for semantic
// analysis and code generation.
//
// The sub-packages do the actual work and can be used directly:
//
//   - cst models the concrete syntax tree the parser hands over.
//   - ast models the tree this stage produces.
//   - lower transforms one CST into one AST.
//   - reporter carries source-located errors out of the transformation.
//   - walk traverses a lowered AST.
//
// This package adds orchestration on top: a Lowerer resolves compilation
// units by name and lowers several of them concurrently. The transformer
// keeps no state between invocations, so units only need to not share CST
// nodes with each other for this to be safe.
package minic
