// Package expr ties the pipeline together: one infix expression in,
// three renderings of it out.
package expr

import (
	"strings"

	"github.com/dhamidi/rex/expr/parser"
	"github.com/dhamidi/rex/format"
)

// Forms holds the three renderings of one expression. All three reflect
// the same precedence and associativity as the input.
type Forms struct {
	Parenthesized string
	Postfix       string
	Prefix        string
}

// Rewrite parses one infix expression and renders it in all three
// notations. On invalid input the error is a *parser.LexError or
// *parser.ParseError carrying the offending character or token and its
// position.
func Rewrite(input string, opts ...parser.Option) (*Forms, error) {
	p := parser.ParseExpression(strings.NewReader(input), opts...)
	node, err := p.Finish()
	if err != nil {
		return nil, err
	}
	return &Forms{
		Parenthesized: format.Parenthesized(node),
		Postfix:       format.Postfix(node),
		Prefix:        format.Prefix(node),
	}, nil
}
