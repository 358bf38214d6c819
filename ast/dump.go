package ast

import (
	"fmt"
	"strings"
)

// Dump renders the tree rooted at root as indented text, one node per
// line: the node's kind, its attribute payload in parentheses if it has
// one, and "@line" when the node has a source line. The format is stable
// and meant for tests and debugging, not for machine consumption.
func Dump(root *Node) string {
	var sb strings.Builder
	dump(&sb, root, 0)
	return sb.String()
}

func dump(sb *strings.Builder, n *Node, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(n.Kind.String())
	switch attr := n.Attr.(type) {
	case TypeAttr:
		fmt.Fprintf(sb, "(%v)", attr.Type)
	case IdentAttr:
		fmt.Fprintf(sb, "(%s)", attr.Text)
	case IntLitAttr:
		fmt.Fprintf(sb, "(%d)", attr.Value)
	}
	if n.Line > 0 {
		fmt.Fprintf(sb, " @%d", n.Line)
	}
	sb.WriteByte('\n')
	for _, child := range n.Children {
		dump(sb, child, depth+1)
	}
}
