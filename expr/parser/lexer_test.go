package parser

import (
	"errors"
	"testing"
)

func TestLexerTokenKinds(t *testing.T) {
	tests := []struct {
		input    string
		expected []TokenKind
	}{
		{"", []TokenKind{TokenEOF}},
		{"a", []TokenKind{TokenAtom, TokenEOF}},
		{"abc", []TokenKind{TokenAtom, TokenEOF}},
		{"123", []TokenKind{TokenAtom, TokenEOF}},
		{"a+b", []TokenKind{TokenAtom, TokenPlus, TokenAtom, TokenEOF}},
		{"a-b", []TokenKind{TokenAtom, TokenMinus, TokenAtom, TokenEOF}},
		{"a*b", []TokenKind{TokenAtom, TokenStar, TokenAtom, TokenEOF}},
		{"a/b", []TokenKind{TokenAtom, TokenSlash, TokenAtom, TokenEOF}},
		{"a^b", []TokenKind{TokenAtom, TokenCaret, TokenAtom, TokenEOF}},
		{"(a)", []TokenKind{TokenLParen, TokenAtom, TokenRParen, TokenEOF}},
		{"(a+3)+var^(b+282*c)", []TokenKind{
			TokenLParen, TokenAtom, TokenPlus, TokenAtom, TokenRParen,
			TokenPlus, TokenAtom, TokenCaret,
			TokenLParen, TokenAtom, TokenPlus, TokenAtom, TokenStar, TokenAtom, TokenRParen,
			TokenEOF,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lexer := NewLexer([]byte(tt.input), "test")
			var got []TokenKind
			for {
				tok, err := lexer.NextToken()
				if err != nil {
					t.Fatalf("NextToken() error: %v", err)
				}
				got = append(got, tok.Kind)
				if tok.Kind == TokenEOF {
					break
				}
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("got %d tokens, want %d", len(got), len(tt.expected))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("token %d: got %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestLexerMaximalRuns(t *testing.T) {
	tests := []struct {
		input    string
		literals []string
	}{
		{"abc", []string{"abc"}},
		{"282", []string{"282"}},
		// Letters and digits never mix into one atom.
		{"2x", []string{"2", "x"}},
		{"var282", []string{"var", "282"}},
		{"12ab34", []string{"12", "ab", "34"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := Tokenize([]byte(tt.input), "test")
			if err != nil {
				t.Fatalf("Tokenize() error: %v", err)
			}
			if len(tokens) != len(tt.literals) {
				t.Fatalf("got %d tokens, want %d", len(tokens), len(tt.literals))
			}
			for i, tok := range tokens {
				if tok.Kind != TokenAtom {
					t.Errorf("token %d: Kind = %v, want %v", i, tok.Kind, TokenAtom)
				}
				if tok.Literal != tt.literals[i] {
					t.Errorf("token %d: Literal = %q, want %q", i, tok.Literal, tt.literals[i])
				}
			}
		})
	}
}

func TestLexerPositions(t *testing.T) {
	tokens, err := Tokenize([]byte("ab+c"), "input.txt")
	if err != nil {
		t.Fatalf("Tokenize() error: %v", err)
	}
	if len(tokens) != 3 {
		t.Fatalf("got %d tokens, want 3", len(tokens))
	}

	tests := []struct {
		index   int
		literal string
		offset  int
		column  int
	}{
		{0, "ab", 0, 1},
		{1, "+", 2, 3},
		{2, "c", 3, 4},
	}

	for _, tt := range tests {
		tok := tokens[tt.index]
		if tok.Literal != tt.literal {
			t.Errorf("token %d: Literal = %q, want %q", tt.index, tok.Literal, tt.literal)
		}
		if tok.Span.Start.Offset != tt.offset {
			t.Errorf("token %d: Offset = %d, want %d", tt.index, tok.Span.Start.Offset, tt.offset)
		}
		if tok.Span.Start.Column != tt.column {
			t.Errorf("token %d: Column = %d, want %d", tt.index, tok.Span.Start.Column, tt.column)
		}
		if tok.Span.Start.File != "input.txt" {
			t.Errorf("token %d: File = %q, want %q", tt.index, tok.Span.Start.File, "input.txt")
		}
		if tok.Span.Start.Line != 1 {
			t.Errorf("token %d: Line = %d, want 1", tt.index, tok.Span.Start.Line)
		}
	}
}

func TestLexerInvalidCharacter(t *testing.T) {
	tests := []struct {
		input  string
		char   byte
		offset int
	}{
		{"a#b", '#', 1},
		{"a b", ' ', 1},
		{"#", '#', 0},
		{"1.5", '.', 1},
		{"a+b=c", '=', 3},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Tokenize([]byte(tt.input), "test")
			var lexErr *LexError
			if !errors.As(err, &lexErr) {
				t.Fatalf("Tokenize() error = %v, want *LexError", err)
			}
			if lexErr.Char != tt.char {
				t.Errorf("Char = %q, want %q", lexErr.Char, tt.char)
			}
			if lexErr.Pos.Offset != tt.offset {
				t.Errorf("Offset = %d, want %d", lexErr.Pos.Offset, tt.offset)
			}
		})
	}
}

func TestLexerEmptyInput(t *testing.T) {
	tokens, err := Tokenize([]byte(""), "test")
	if err != nil {
		t.Fatalf("Tokenize() error: %v", err)
	}
	if len(tokens) != 0 {
		t.Errorf("got %d tokens, want 0", len(tokens))
	}
}
