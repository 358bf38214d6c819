package ast

import "fmt"

// NewLeaf creates a childless node from an identifier or integer-literal
// attribute; the node's kind is inferred from the attribute's variant.
// Type attributes must go through NewTypeNode instead.
func NewLeaf(attr Attribute) *Node {
	switch attr := attr.(type) {
	case IdentAttr:
		return &Node{Kind: KindIdent, Attr: attr, Line: attr.Line}
	case IntLitAttr:
		return &Node{Kind: KindIntLit, Attr: attr, Line: attr.Line}
	default:
		panic(fmt.Sprintf("minic/ast: NewLeaf called with %T; use NewTypeNode for type attributes", attr))
	}
}

// NewOperator creates an operator or statement node with exactly the
// supplied children, in the order given. The kind's arity is enforced:
// binary operators take two children, return and negation one, if two,
// if-else three, while two, break and continue none. line is the 1-based
// line of the production's dominant token.
func NewOperator(kind Kind, line int, children ...*Node) *Node {
	arity, ok := kind.operatorArity()
	if !ok {
		panic(fmt.Sprintf("minic/ast: NewOperator called with non-operator kind %v", kind))
	}
	if len(children) != arity {
		panic(fmt.Sprintf("minic/ast: %v node requires exactly %d children, got %d", kind, arity, len(children)))
	}
	for i, child := range children {
		if child == nil {
			panic(fmt.Sprintf("minic/ast: NewOperator(%v) given nil child at index %d", kind, i))
		}
	}
	return &Node{Kind: kind, Children: children, Line: line}
}

// NewContainer creates a structural node (block, compile unit, declaration
// statement, parameter list) whose child count varies from zero. A
// container with no children is a valid, empty node — never a missing one.
func NewContainer(kind Kind, children ...*Node) *Node {
	if !kind.isContainer() {
		panic(fmt.Sprintf("minic/ast: NewContainer called with non-container kind %v", kind))
	}
	for i, child := range children {
		if child == nil {
			panic(fmt.Sprintf("minic/ast: NewContainer(%v) given nil child at index %d", kind, i))
		}
	}
	return &Node{Kind: kind, Children: children}
}

// NewTypeNode creates a leaf node carrying a declared type tag.
func NewTypeNode(attr TypeAttr) *Node {
	return &Node{Kind: KindType, Attr: attr, Line: attr.Line}
}

// NewFuncDef assembles a function definition. The node always has exactly
// four children, in order: the return type, the function name, the body
// block, and a formal-parameter container. formalParams may be nil (the
// surface grammar supports no parameters), in which case an empty
// container is synthesized so the shape stays fixed.
func NewFuncDef(returnType TypeAttr, name IdentAttr, body, formalParams *Node) *Node {
	if body == nil || body.Kind != KindBlock {
		panic("minic/ast: NewFuncDef requires a block body")
	}
	if formalParams == nil {
		formalParams = NewContainer(KindFormalParams)
	} else if formalParams.Kind != KindFormalParams {
		panic(fmt.Sprintf("minic/ast: NewFuncDef given %v node as formal parameters", formalParams.Kind))
	}
	return &Node{
		Kind:     KindFuncDef,
		Children: []*Node{NewTypeNode(returnType), NewLeaf(name), body, formalParams},
		Line:     name.Line,
	}
}

// NewFuncCall assembles a function call from a callee identifier leaf and
// a real-parameter container. realParams may be nil (a call with empty
// parentheses), in which case an empty container is synthesized.
func NewFuncCall(callee, realParams *Node) *Node {
	if callee == nil || callee.Kind != KindIdent {
		panic("minic/ast: NewFuncCall callee must be an identifier leaf")
	}
	if realParams == nil {
		realParams = NewContainer(KindRealParams)
	} else if realParams.Kind != KindRealParams {
		panic(fmt.Sprintf("minic/ast: NewFuncCall given %v node as real parameters", realParams.Kind))
	}
	return &Node{
		Kind:     KindFuncCall,
		Children: []*Node{callee, realParams},
		Line:     callee.Line,
	}
}
