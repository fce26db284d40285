package parser

import "io"

type Option func(*Parser)

// WithFile sets the file name used in token and node positions.
func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

// Parser consumes a token sequence per the expression grammar and builds
// one parse tree. It is not safe for concurrent use; the tree it returns
// is read-only and safe to share.
type Parser struct {
	file   string
	reader io.Reader
	input  []byte
	tokens []Token
	pos    int
}

// ParseExpression prepares a parser for a single infix expression.
// Call Finish to run the parse.
func ParseExpression(r io.Reader, opts ...Option) *Parser {
	p := &Parser{reader: r}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Finish reads all input, tokenizes it, and parses one expression.
// The whole input must be consumed: trailing tokens after a complete
// expression are a ParseError. On failure the returned error is a
// *LexError or *ParseError.
func (p *Parser) Finish() (*Node, error) {
	if err := p.readAll(); err != nil {
		return nil, err
	}
	if err := p.tokenize(); err != nil {
		return nil, err
	}
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.check(TokenEOF) {
		tok := p.peek()
		return nil, &ParseError{
			Message:  "trailing input after expression",
			Expected: []TokenKind{TokenEOF},
			Got:      &tok,
		}
	}
	return node, nil
}

// Tokens returns the token sequence produced by Finish, including the
// final EOF token.
func (p *Parser) Tokens() []Token {
	return p.tokens
}

func (p *Parser) readAll() error {
	if p.input != nil {
		return nil
	}
	data, err := io.ReadAll(p.reader)
	if err != nil {
		return err
	}
	p.input = data
	return nil
}

func (p *Parser) tokenize() error {
	lexer := NewLexer(p.input, p.file)
	p.tokens = nil
	p.pos = 0
	for {
		tok, err := lexer.NextToken()
		if err != nil {
			return err
		}
		p.tokens = append(p.tokens, tok)
		if tok.Kind == TokenEOF {
			return nil
		}
	}
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Kind: TokenEOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) check(kind TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) startNode(kind NodeKind) *Node {
	return &Node{
		Kind: kind,
		Span: Span{Start: p.peek().Span.Start},
	}
}

func (p *Parser) finishNode(n *Node) *Node {
	if p.pos > 0 && p.pos <= len(p.tokens) {
		n.Span.End = p.tokens[p.pos-1].Span.End
	}
	return n
}

// terminal matches the current token against kind and wraps it in a
// terminal node. A mismatch stops the parse: the grammar has no error
// recovery, only report-and-abort.
func (p *Parser) terminal(kind TokenKind, nodeKind NodeKind) (*Node, error) {
	tok := p.peek()
	if tok.Kind != kind {
		return nil, &ParseError{
			Message:  "failed to match " + nodeKind.String(),
			Expected: []TokenKind{kind},
			Got:      &tok,
		}
	}
	p.advance()
	return &Node{Kind: nodeKind, Span: tok.Span, Token: &tok}, nil
}

func (p *Parser) epsilon() *Node {
	pos := p.peek().Span.Start
	return &Node{Kind: KindEpsilon, Span: Span{Start: pos, End: pos}}
}

// Expr -> Term ExprTail
func (p *Parser) parseExpr() (*Node, error) {
	node := p.startNode(KindExpr)

	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	node.AddChild(term)

	tail, err := p.parseExprTail()
	if err != nil {
		return nil, err
	}
	node.AddChild(tail)

	return p.finishNode(node), nil
}

// ExprTail -> (+|-) Term ExprTail | epsilon
func (p *Parser) parseExprTail() (*Node, error) {
	node := p.startNode(KindExprTail)

	var op *Node
	var err error
	switch {
	case p.check(TokenPlus):
		op, err = p.terminal(TokenPlus, KindAddOp)
	case p.check(TokenMinus):
		op, err = p.terminal(TokenMinus, KindSubOp)
	default:
		node.AddChild(p.epsilon())
		return p.finishNode(node), nil
	}
	if err != nil {
		return nil, err
	}
	node.AddChild(op)

	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	node.AddChild(term)

	tail, err := p.parseExprTail()
	if err != nil {
		return nil, err
	}
	node.AddChild(tail)

	return p.finishNode(node), nil
}

// Term -> Power TermTail
func (p *Parser) parseTerm() (*Node, error) {
	node := p.startNode(KindTerm)

	power, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	node.AddChild(power)

	tail, err := p.parseTermTail()
	if err != nil {
		return nil, err
	}
	node.AddChild(tail)

	return p.finishNode(node), nil
}

// TermTail -> (*|/) Power TermTail | epsilon
func (p *Parser) parseTermTail() (*Node, error) {
	node := p.startNode(KindTermTail)

	var op *Node
	var err error
	switch {
	case p.check(TokenStar):
		op, err = p.terminal(TokenStar, KindMulOp)
	case p.check(TokenSlash):
		op, err = p.terminal(TokenSlash, KindDivOp)
	default:
		node.AddChild(p.epsilon())
		return p.finishNode(node), nil
	}
	if err != nil {
		return nil, err
	}
	node.AddChild(op)

	power, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	node.AddChild(power)

	tail, err := p.parseTermTail()
	if err != nil {
		return nil, err
	}
	node.AddChild(tail)

	return p.finishNode(node), nil
}

// Power -> PowerOperand ^ Power | PowerOperand
//
// The exponent decision is made after the operand has been parsed, so a
// parenthesized operand has already consumed up to its matching ")".
// Scanning ahead for the first ")" instead would misread nested
// parentheses, e.g. (a+(b*c))^2.
func (p *Parser) parsePower() (*Node, error) {
	node := p.startNode(KindPower)

	operand, err := p.parsePowerOperand()
	if err != nil {
		return nil, err
	}
	node.AddChild(operand)

	if !p.check(TokenCaret) {
		return p.finishNode(node), nil
	}

	op, err := p.terminal(TokenCaret, KindPowerOp)
	if err != nil {
		return nil, err
	}
	node.AddChild(op)

	// Right-associative: recurse directly into the next Power.
	right, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	node.AddChild(right)

	return p.finishNode(node), nil
}

// PowerOperand -> Atom | ( Expr )
func (p *Parser) parsePowerOperand() (*Node, error) {
	node := p.startNode(KindPowerOperand)

	switch p.peek().Kind {
	case TokenAtom:
		atom, err := p.terminal(TokenAtom, KindAtom)
		if err != nil {
			return nil, err
		}
		node.AddChild(atom)

	case TokenLParen:
		lparen, err := p.terminal(TokenLParen, KindLParen)
		if err != nil {
			return nil, err
		}
		node.AddChild(lparen)

		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		node.AddChild(inner)

		rparen, err := p.terminal(TokenRParen, KindRParen)
		if err != nil {
			return nil, err
		}
		node.AddChild(rparen)

	default:
		tok := p.peek()
		return nil, &ParseError{
			Message:  "expected operand",
			Expected: []TokenKind{TokenAtom, TokenLParen},
			Got:      &tok,
		}
	}

	return p.finishNode(node), nil
}
