package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dhamidi/rex/expr/parser"
)

func parse(t *testing.T, input string) *parser.Node {
	t.Helper()
	p := parser.ParseExpression(strings.NewReader(input))
	node, err := p.Finish()
	if err != nil {
		t.Fatalf("parse error for input %q: %v", input, err)
	}
	return node
}

func TestNotations(t *testing.T) {
	tests := []struct {
		input   string
		paren   string
		postfix string
		prefix  string
	}{
		{"a", "a", "a ", "a "},
		{"282", "282", "282 ", "282 "},
		{"a+b", "a+b", "a b + ", "+ a b "},
		{"a+b+c", "(a+b)+c", "a b + c + ", "+ + a b c "},
		{"a-b-c", "(a-b)-c", "a b - c - ", "- - a b c "},
		{"a+b-c+d", "((a+b)-c)+d", "a b + c - d + ", "+ - + a b c d "},
		{"a*b*c", "(a*b)*c", "a b * c * ", "* * a b c "},
		{"a/b/c", "(a/b)/c", "a b / c / ", "/ / a b c "},
		{"a^b^c", "a^(b^c)", "a b c ^ ^ ", "^ a ^ b c "},
		{"a+b*c", "a+(b*c)", "a b c * + ", "+ a * b c "},
		{"a+b*c^d", "a+(b*(c^d))", "a b c d ^ * + ", "+ a * b ^ c d "},
		{"(a+b)*c", "(a+b)*c", "a b + c * ", "* + a b c "},
		{"(a)", "a", "a ", "a "},
		{"((a))", "a", "a ", "a "},
		{"(a+b)", "a+b", "a b + ", "+ a b "},
		{"(a+(b*c))^2", "(a+(b*c))^2", "a b c * + 2 ^ ", "^ + a * b c 2 "},
		{"(a+3)+var^(b+282*c)", "(a+3)+(var^(b+(282*c)))", "a 3 + var b 282 c * + ^ + ", "+ + a 3 ^ var + b * 282 c "},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			node := parse(t, tt.input)
			if got := Parenthesized(node); got != tt.paren {
				t.Errorf("Parenthesized = %q, want %q", got, tt.paren)
			}
			if got := Postfix(node); got != tt.postfix {
				t.Errorf("Postfix = %q, want %q", got, tt.postfix)
			}
			if got := Prefix(node); got != tt.prefix {
				t.Errorf("Prefix = %q, want %q", got, tt.prefix)
			}
		})
	}
}

func TestParenthesizedRoundTrip(t *testing.T) {
	// Reparsing the parenthesized output must yield an observationally
	// equivalent tree: all three renderings stay fixed.
	tests := []string{
		"a+b+c",
		"a-b-c",
		"a^b^c",
		"a+b*c^d",
		"(a+b)*c",
		"(a+(b*c))^2",
		"a/b/c-d*e",
		"(a+3)+var^(b+282*c)",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			first := parse(t, input)
			second := parse(t, Parenthesized(first))

			if got, want := Parenthesized(second), Parenthesized(first); got != want {
				t.Errorf("round-trip Parenthesized = %q, want %q", got, want)
			}
			if got, want := Postfix(second), Postfix(first); got != want {
				t.Errorf("round-trip Postfix = %q, want %q", got, want)
			}
			if got, want := Prefix(second), Prefix(first); got != want {
				t.Errorf("round-trip Prefix = %q, want %q", got, want)
			}
		})
	}
}

func TestEncoders(t *testing.T) {
	node := parse(t, "a+b*c")

	tests := []struct {
		name    string
		encoder func(*bytes.Buffer) Encoder
		want    string
	}{
		{"paren", func(b *bytes.Buffer) Encoder { return NewParenEncoder(b) }, "a+(b*c)"},
		{"postfix", func(b *bytes.Buffer) Encoder { return NewPostfixEncoder(b) }, "a b c * + "},
		{"prefix", func(b *bytes.Buffer) Encoder { return NewPrefixEncoder(b) }, "+ a * b c "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.encoder(&buf).Encode(node); err != nil {
				t.Fatalf("Encode() error: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Encode() wrote %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeJSONEncoder(t *testing.T) {
	node := parse(t, "a+b")

	var buf bytes.Buffer
	if err := NewTreeJSONEncoder(&buf).Encode(node); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	var decoded struct {
		Kind     string `json:"kind"`
		Children []struct {
			Kind string `json:"kind"`
		} `json:"children"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if decoded.Kind != "Expr" {
		t.Errorf("root kind = %q, want %q", decoded.Kind, "Expr")
	}
	if len(decoded.Children) != 2 {
		t.Fatalf("root has %d children, want 2", len(decoded.Children))
	}
	if decoded.Children[0].Kind != "Term" {
		t.Errorf("first child kind = %q, want %q", decoded.Children[0].Kind, "Term")
	}
	if decoded.Children[1].Kind != "ExprTail" {
		t.Errorf("second child kind = %q, want %q", decoded.Children[1].Kind, "ExprTail")
	}
}

func TestChain(t *testing.T) {
	node := parse(t, "a+b-c+d")

	head, ops, operands := chain(node)
	if head.Kind != parser.KindTerm {
		t.Errorf("head Kind = %v, want Term", head.Kind)
	}
	if len(ops) != 3 || len(operands) != 3 {
		t.Fatalf("got %d ops and %d operands, want 3 and 3", len(ops), len(operands))
	}
	for i, want := range []string{"+", "-", "+"} {
		if got := ops[i].TokenLiteral(); got != want {
			t.Errorf("op %d = %q, want %q", i, got, want)
		}
	}

	t.Run("epsilon tail", func(t *testing.T) {
		head, ops, operands := chain(parse(t, "a"))
		if head.Kind != parser.KindTerm {
			t.Errorf("head Kind = %v, want Term", head.Kind)
		}
		if len(ops) != 0 || len(operands) != 0 {
			t.Errorf("got %d ops and %d operands, want none", len(ops), len(operands))
		}
	})
}
