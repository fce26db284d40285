// Package parser tokenizes and parses a single arithmetic expression in
// infix notation.
//
// # Input language
//
// An expression contains atoms (maximal runs of letters, or of digits),
// parentheses, and the binary operators ^ * / + and -. There is no
// whitespace, no unary operators, and no floating-point syntax.
// Precedence is ^ highest, then * and /, then + and -; ^ associates to
// the right and everything else to the left.
//
// # Grammar
//
// The parser is a recursive descent over the left-recursion-eliminated
// grammar
//
//	Expr         -> Term ExprTail
//	ExprTail     -> (+|-) Term ExprTail | epsilon
//	Term         -> Power TermTail
//	TermTail     -> (*|/) Power TermTail | epsilon
//	Power        -> PowerOperand ^ Power | PowerOperand
//	PowerOperand -> Atom | ( Expr )
//
// Eliminating left recursion makes the grammar directly codable as
// recursive descent, at the cost of representing a chain of same-
// precedence left-associative operators as a right-leaning ExprTail or
// TermTail list. Consumers that re-linearize the tree (see the format
// package) must flatten those chains or left-associativity inverts.
//
// # Errors
//
// A character outside the token alphabet is a *LexError; a missing or
// mismatched terminal, or input that ends mid-derivation, is a
// *ParseError. Both carry positions. The parser stops at the first
// failure; there is no recovery and no partial tree.
//
// # Example
//
//	p := parser.ParseExpression(strings.NewReader("a+b*c^d"))
//	tree, err := p.Finish()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(tree)
package parser
