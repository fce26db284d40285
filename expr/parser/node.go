package parser

type NodeKind int

const (
	// Nonterminals. The grammar is the left-recursion-eliminated form of
	// the natural expression grammar, so chains of left-associative
	// operators appear as right-leaning ExprTail/TermTail lists.
	KindExpr NodeKind = iota
	KindExprTail
	KindTerm
	KindTermTail
	KindPower
	KindPowerOperand

	// Terminals
	KindLParen
	KindRParen
	KindPowerOp
	KindMulOp
	KindDivOp
	KindAddOp
	KindSubOp
	KindAtom
	KindEpsilon
)

var nodeKindNames = map[NodeKind]string{
	KindExpr:         "Expr",
	KindExprTail:     "ExprTail",
	KindTerm:         "Term",
	KindTermTail:     "TermTail",
	KindPower:        "Power",
	KindPowerOperand: "PowerOperand",
	KindLParen:       "LParen",
	KindRParen:       "RParen",
	KindPowerOp:      "PowerOp",
	KindMulOp:        "MulOp",
	KindDivOp:        "DivOp",
	KindAddOp:        "AddOp",
	KindSubOp:        "SubOp",
	KindAtom:         "Atom",
	KindEpsilon:      "Epsilon",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Node is one parse-tree node. Terminal nodes carry the matched token
// and have no children; nonterminal nodes carry the children their
// production dictates:
//
//	Expr         -> Term ExprTail                    (2 children)
//	ExprTail     -> (+|-) Term ExprTail | Epsilon    (3 or 1)
//	Term         -> Power TermTail                   (2)
//	TermTail     -> (*|/) Power TermTail | Epsilon   (3 or 1)
//	Power        -> PowerOperand ^ Power             (3 or 1)
//	                | PowerOperand
//	PowerOperand -> Atom | ( Expr )                  (1 or 3)
//
// Each node exclusively owns its children; the tree is built bottom-up
// during parsing and is read-only afterwards.
type Node struct {
	Kind     NodeKind
	Span     Span
	Children []*Node
	Token    *Token
}

func (n *Node) AddChild(child *Node) {
	if child != nil {
		n.Children = append(n.Children, child)
	}
}

// IsTerminal reports whether the node instantiates a terminal symbol.
func (n *Node) IsTerminal() bool {
	return n.Kind >= KindLParen
}

// HasOperator reports whether a tail node carries an operator production
// rather than the epsilon production.
func (n *Node) HasOperator() bool {
	return (n.Kind == KindExprTail || n.Kind == KindTermTail) && len(n.Children) == 3
}

func (n *Node) FirstChildOfKind(kind NodeKind) *Node {
	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

func (n *Node) TokenLiteral() string {
	if n.Token != nil {
		return n.Token.Literal
	}
	return ""
}

func (n *Node) String() string {
	return n.stringIndent(0, false)
}

func (n *Node) StringWithPositions() string {
	return n.stringIndent(0, true)
}

func (n *Node) stringIndent(indent int, showPositions bool) string {
	prefix := ""
	for i := 0; i < indent; i++ {
		prefix += "  "
	}

	result := prefix + n.Kind.String()
	if showPositions {
		result += " [" + n.Span.Start.String() + "-" + n.Span.End.String() + "]"
	}
	if n.Token != nil {
		result += " " + n.Token.Literal
	}
	result += "\n"

	for _, child := range n.Children {
		result += child.stringIndent(indent+1, showPositions)
	}
	return result
}
