// Package shunt converts a validated infix token stream into postfix
// (reverse Polish) order using Dijkstra's shunting-yard algorithm: a
// single operator stack and an output slice, honoring operator
// precedence, associativity, unary minus, and postfix factorial.
// robpike.io/ivy has no equivalent package: it parses its APL-like
// grammar by recursive descent over operator tables in parse/parse.go
// instead of producing postfix, so this package is grounded directly
// in the textbook shunting-yard algorithm, shaped to this package's
// token.Token vocabulary.
package shunt

import (
	"fmt"

	"github.com/LazyView/PC-Calculator/token"
)

type assoc int

const (
	leftAssoc assoc = iota
	rightAssoc
)

// precedence and associativity. Unary minus and factorial sit above
// every binary operator.
func precedence(k token.Kind) (level int, a assoc, ok bool) {
	switch k {
	case token.Plus, token.Minus:
		return 1, leftAssoc, true
	case token.Star, token.Slash, token.Percent:
		return 2, leftAssoc, true
	case token.Caret:
		return 3, rightAssoc, true
	case token.UnaryMinus:
		return 4, rightAssoc, true
	}
	return 0, 0, false
}

// ToPostfix reorders a validated infix token stream (as produced by
// scan.Tokenize, terminated by token.End) into postfix order. The
// postfix stream contains no parenthesis tokens.
func ToPostfix(infix []token.Token) ([]token.Token, error) {
	var out []token.Token
	var stack []token.Token

	popWhile := func(op token.Token) error {
		lvl, as, _ := precedence(op.Kind)
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.Kind == token.LParen {
				break
			}
			topLvl, _, isOp := precedence(top.Kind)
			if !isOp {
				break
			}
			if as == leftAssoc {
				if topLvl < lvl {
					break
				}
			} else {
				if topLvl <= lvl {
					break
				}
			}
			out = append(out, top)
			stack = stack[:len(stack)-1]
		}
		return nil
	}

	for _, tok := range infix {
		switch tok.Kind {
		case token.Number:
			out = append(out, tok)

		case token.LParen:
			stack = append(stack, tok)

		case token.RParen:
			found := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == token.LParen {
					found = true
					break
				}
				out = append(out, top)
			}
			if !found {
				return nil, fmt.Errorf("shunt: unmatched ')'")
			}

		case token.Factorial:
			// Postfix unary: nothing on the stack could bind tighter,
			// so it emits straight to the output.
			out = append(out, tok)

		case token.UnaryMinus:
			if err := popWhile(tok); err != nil {
				return nil, err
			}
			stack = append(stack, tok)

		case token.Plus, token.Minus, token.Star, token.Slash, token.Percent, token.Caret:
			if err := popWhile(tok); err != nil {
				return nil, err
			}
			stack = append(stack, tok)

		case token.End:
			// handled after the loop

		default:
			return nil, fmt.Errorf("shunt: unexpected token %v", tok)
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == token.LParen {
			// A validated input never leaves an unmatched '(' on the
			// stack; reaching this means the validator has a bug.
			return nil, fmt.Errorf("shunt: unmatched '(' reached end of input")
		}
		out = append(out, top)
	}

	out = append(out, token.Token{Kind: token.End})
	return out, nil
}
