package format

import (
	"io"

	"github.com/dhamidi/rex/expr/parser"
)

type PrefixEncoder struct {
	w    io.Writer
	node *parser.Node
}

func NewPrefixEncoder(w io.Writer) *PrefixEncoder {
	return &PrefixEncoder{w: w}
}

func (e *PrefixEncoder) Encode(node *parser.Node) error {
	e.node = node
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *PrefixEncoder) MarshalText() ([]byte, error) {
	return []byte(Prefix(e.node)), nil
}

// Prefix returns the prefix rendering of the tree. Every token is
// followed by one space, including the last.
func Prefix(node *parser.Node) string {
	return prefixString(node)
}

// prefixString builds the output back to front for flattened chains:
// the i-th operator of a left-associative chain wraps everything
// emitted so far, so it is prepended while its operand is appended.
// That rules out a single forward-writing pass, hence strings instead
// of a builder here.
func prefixString(n *parser.Node) string {
	switch n.Kind {
	case parser.KindExpr, parser.KindTerm:
		head, ops, operands := chain(n)
		if len(ops) == 0 {
			return prefixString(head)
		}
		result := ops[0].TokenLiteral() + " " + prefixString(head) + prefixString(operands[0])
		for i := 1; i < len(ops); i++ {
			result = ops[i].TokenLiteral() + " " + result
			result += prefixString(operands[i])
		}
		return result

	case parser.KindPower:
		if len(n.Children) == 3 {
			return "^ " + prefixString(n.Children[0]) + prefixString(n.Children[2])
		}
		return prefixString(n.Children[0])

	case parser.KindPowerOperand:
		return prefixString(operand(n))

	case parser.KindAtom:
		return n.TokenLiteral() + " "
	}
	return ""
}
