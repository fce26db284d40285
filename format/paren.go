package format

import (
	"io"
	"strings"

	"github.com/dhamidi/rex/expr/parser"
)

type ParenEncoder struct {
	w    io.Writer
	node *parser.Node
}

func NewParenEncoder(w io.Writer) *ParenEncoder {
	return &ParenEncoder{w: w}
}

func (e *ParenEncoder) Encode(node *parser.Node) error {
	e.node = node
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *ParenEncoder) MarshalText() ([]byte, error) {
	return []byte(Parenthesized(e.node)), nil
}

// Parenthesized returns the fully parenthesized infix rendering of the
// tree. Every binary operation gets one explicit pair of parentheses,
// except that the whole expression is never wrapped in an extra
// outermost pair.
func Parenthesized(node *parser.Node) string {
	var sb strings.Builder
	writeParenthesized(&sb, node)
	return stripOuterParens(sb.String())
}

func writeParenthesized(sb *strings.Builder, n *parser.Node) {
	switch n.Kind {
	case parser.KindExpr, parser.KindTerm:
		head, ops, operands := chain(n)
		if len(ops) == 0 {
			writeParenthesized(sb, head)
			return
		}
		// (((e0 op1 e1) op2 e2) ... opN eN): all opening parens
		// first, one closing paren after each operand.
		sb.WriteString(strings.Repeat("(", len(ops)))
		writeParenthesized(sb, head)
		for i, op := range ops {
			sb.WriteString(op.TokenLiteral())
			writeParenthesized(sb, operands[i])
			sb.WriteByte(')')
		}

	case parser.KindPower:
		if len(n.Children) == 3 {
			sb.WriteByte('(')
			writeParenthesized(sb, n.Children[0])
			sb.WriteByte('^')
			writeParenthesized(sb, n.Children[2])
			sb.WriteByte(')')
			return
		}
		writeParenthesized(sb, n.Children[0])

	case parser.KindPowerOperand:
		writeParenthesized(sb, operand(n))

	case parser.KindAtom:
		sb.WriteString(n.TokenLiteral())
	}
}

// stripOuterParens removes the single redundant outermost pair the
// walk produces for any expression whose top level is an operation.
// The walk only ever emits fully wrapped operations or bare atoms, so
// a leading "(" always matches the final ")".
func stripOuterParens(s string) string {
	if len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')' {
		return s[1 : len(s)-1]
	}
	return s
}
