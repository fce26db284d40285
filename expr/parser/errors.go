package parser

import (
	"fmt"
	"strings"
)

// LexError reports a character outside the token alphabet.
type LexError struct {
	Char byte
	Pos  Position
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s: unexpected character %q", e.Pos, e.Char)
}

// ParseError reports a required terminal that was absent or mismatched,
// or input that ended mid-derivation. Got is nil when the token stream
// was exhausted.
type ParseError struct {
	Message  string
	Expected []TokenKind
	Got      *Token
}

func (e *ParseError) Error() string {
	var sb strings.Builder
	if e.Got != nil {
		sb.WriteString(e.Got.Span.Start.String())
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if len(e.Expected) > 0 {
		sb.WriteString(": expected ")
		for i, kind := range e.Expected {
			if i > 0 {
				sb.WriteString(" or ")
			}
			sb.WriteString(kind.String())
		}
		if e.Got != nil {
			sb.WriteString(", got ")
			if e.Got.Kind == TokenEOF {
				sb.WriteString("end of input")
			} else {
				sb.WriteString(fmt.Sprintf("%q", e.Got.Literal))
			}
		}
	}
	return sb.String()
}
