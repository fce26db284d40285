package parser

type Lexer struct {
	input  []byte
	file   string
	pos    int
	line   int
	column int
}

func NewLexer(input []byte, file string) *Lexer {
	return &Lexer{
		input:  input,
		file:   file,
		pos:    0,
		line:   1,
		column: 1,
	}
}

func (l *Lexer) Position() Position {
	return Position{
		File:   l.file,
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

// NextToken returns the next token in the input, or a LexError for a
// character outside the token alphabet. At end of input it returns an
// EOF token with an empty literal.
func (l *Lexer) NextToken() (Token, error) {
	startPos := l.Position()

	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF, Span: Span{Start: startPos, End: startPos}}, nil
	}

	ch := l.peek()

	if isLetter(ch) {
		return l.scanRun(startPos, isLetter), nil
	}
	if isDigit(ch) {
		return l.scanRun(startPos, isDigit), nil
	}
	if kind, ok := LookupOperator(ch); ok {
		l.advance()
		end := l.Position()
		return Token{
			Kind:    kind,
			Span:    Span{Start: startPos, End: end},
			Literal: string(ch),
		}, nil
	}

	return Token{}, &LexError{Char: ch, Pos: startPos}
}

// scanRun consumes a maximal run of characters in the given class and
// produces a single Atom token.
func (l *Lexer) scanRun(start Position, in func(byte) bool) Token {
	for in(l.peek()) {
		l.advance()
	}
	end := l.Position()
	return Token{
		Kind:    TokenAtom,
		Span:    Span{Start: start, End: end},
		Literal: string(l.input[start.Offset:end.Offset]),
	}
}

// Tokenize scans the whole input, stopping before the EOF token.
// Empty input yields an empty token sequence.
func Tokenize(input []byte, file string) ([]Token, error) {
	l := NewLexer(input, file)
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenEOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
