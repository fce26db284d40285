package format

import (
	"io"
	"strings"

	"github.com/dhamidi/rex/expr/parser"
)

type PostfixEncoder struct {
	w    io.Writer
	node *parser.Node
}

func NewPostfixEncoder(w io.Writer) *PostfixEncoder {
	return &PostfixEncoder{w: w}
}

func (e *PostfixEncoder) Encode(node *parser.Node) error {
	e.node = node
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *PostfixEncoder) MarshalText() ([]byte, error) {
	return []byte(Postfix(e.node)), nil
}

// Postfix returns the postfix rendering of the tree. Every token is
// followed by one space, including the last.
func Postfix(node *parser.Node) string {
	var sb strings.Builder
	writePostfix(&sb, node)
	return sb.String()
}

func writePostfix(sb *strings.Builder, n *parser.Node) {
	switch n.Kind {
	case parser.KindExpr, parser.KindTerm:
		head, ops, operands := chain(n)
		writePostfix(sb, head)
		// e0 e1 op1 e2 op2 ... eN opN
		for i, op := range ops {
			writePostfix(sb, operands[i])
			sb.WriteString(op.TokenLiteral())
			sb.WriteByte(' ')
		}

	case parser.KindPower:
		if len(n.Children) == 3 {
			writePostfix(sb, n.Children[0])
			writePostfix(sb, n.Children[2])
			sb.WriteString("^ ")
			return
		}
		writePostfix(sb, n.Children[0])

	case parser.KindPowerOperand:
		writePostfix(sb, operand(n))

	case parser.KindAtom:
		sb.WriteString(n.TokenLiteral())
		sb.WriteByte(' ')
	}
}
