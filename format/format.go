// Package format renders a parse tree produced by expr/parser in
// alternate notations: fully parenthesized infix, postfix, and prefix.
//
// All renderers are pure, read-only tree walks producing the same
// operator order the tree encodes. The grammar represents a chain of
// left-associative operators as a right-leaning tail list, so each
// renderer flattens those chains explicitly before emitting; recursing
// naively would invert associativity.
package format

import (
	"encoding"

	"github.com/dhamidi/rex/expr/parser"
)

// Encoder renders one parse tree in one notation.
type Encoder interface {
	encoding.TextMarshaler
	Encode(node *parser.Node) error
}

// chain splits the right-leaning tail list under an Expr or Term node
// into its head operand, the operator terminals in source order, and
// the operand subtrees following each operator. A chain of length zero
// (an epsilon tail) yields empty slices.
func chain(n *parser.Node) (head *parser.Node, ops, operands []*parser.Node) {
	head = n.Children[0]
	tail := n.Children[1]
	for tail.HasOperator() {
		ops = append(ops, tail.Children[0])
		operands = append(operands, tail.Children[1])
		tail = tail.Children[2]
	}
	return head, ops, operands
}

// operand resolves a PowerOperand to the subtree worth rendering: the
// atom, or the expression between the literal parens. The paren
// terminals themselves are discarded; renderers reconstruct parentheses
// rather than reusing the input's.
func operand(n *parser.Node) *parser.Node {
	if len(n.Children) == 1 {
		return n.Children[0]
	}
	return n.Children[1]
}
