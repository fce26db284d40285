package parser

import "strconv"

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

type Span struct {
	Start Position
	End   Position
}

type TokenKind int

const (
	TokenEOF TokenKind = iota

	TokenLParen
	TokenRParen
	TokenCaret
	TokenStar
	TokenSlash
	TokenPlus
	TokenMinus

	// An Atom is a maximal run of letters (a variable name) or a
	// maximal run of digits (a number literal). The two never mix:
	// "2x" lexes as two adjacent atoms.
	TokenAtom
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:    "EOF",
	TokenLParen: "(",
	TokenRParen: ")",
	TokenCaret:  "^",
	TokenStar:   "*",
	TokenSlash:  "/",
	TokenPlus:   "+",
	TokenMinus:  "-",
	TokenAtom:   "Atom",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

type Token struct {
	Kind    TokenKind
	Span    Span
	Literal string
}

var operators = map[byte]TokenKind{
	'(': TokenLParen,
	')': TokenRParen,
	'^': TokenCaret,
	'*': TokenStar,
	'/': TokenSlash,
	'+': TokenPlus,
	'-': TokenMinus,
}

// LookupOperator returns the token kind for a single-character operator
// or paren, and false for any other byte.
func LookupOperator(ch byte) (TokenKind, bool) {
	kind, ok := operators[ch]
	return kind, ok
}
