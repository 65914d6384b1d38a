// Package scan lexes a single expression line into a token.Token
// stream and validates it against the lexical grammar: a balanced,
// non-empty parenthesization; hex letters confined to hex literals;
// '!' only following something that could be an operand; '-'
// classified as unary or binary from its left context. Tokenizing and
// validating are done in one pass (an invalid character or placement
// aborts immediately, so no partial token stream ever escapes), the
// same "one state machine over the rune stream" shape as
// robpike.io/ivy's state-function scanner in scan/scan.go, simplified
// here from goroutine+channel emission to a direct return since a
// calculator line is bounded and does not need to be consumed
// incrementally by a concurrent parser.
package scan

import (
	"fmt"

	"github.com/LazyView/PC-Calculator/token"
)

// Tokenize lexes src into a token stream terminated by token.End.
// On any lexical or placement error it returns a nil slice and a
// descriptive error; the caller (package calc) maps that to a fixed
// "Syntax error!" string.
func Tokenize(src string) ([]token.Token, error) {
	var toks []token.Token
	var prev *token.Kind // nil means "start of expression"
	depth := 0
	i, n := 0, len(src)

	emit := func(k token.Kind, text string) {
		toks = append(toks, token.Token{Kind: k, Text: text})
		kk := k
		prev = &kk
	}

	for i < n {
		c := src[i]
		switch {
		case isSpace(c):
			i++

		case isDigit(c):
			start := i
			i++
			switch {
			case src[start] == '0' && i < n && (src[i] == 'b' || src[i] == 'B'):
				i++
				ds := i
				for i < n && (src[i] == '0' || src[i] == '1') {
					i++
				}
				if i == ds {
					return nil, fmt.Errorf("scan: binary literal at %d has no digits", start)
				}
			case src[start] == '0' && i < n && (src[i] == 'x' || src[i] == 'X'):
				i++
				ds := i
				for i < n && isHexDigit(src[i]) {
					i++
				}
				if i == ds {
					return nil, fmt.Errorf("scan: hex literal at %d has no digits", start)
				}
			default:
				for i < n && isDigit(src[i]) {
					i++
				}
			}
			emit(token.Number, src[start:i])

		case c == '(':
			emit(token.LParen, "(")
			depth++
			i++

		case c == ')':
			if len(toks) > 0 && toks[len(toks)-1].Kind == token.LParen {
				return nil, fmt.Errorf("scan: empty parentheses at %d", i)
			}
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("scan: unmatched ')' at %d", i)
			}
			emit(token.RParen, ")")
			i++

		case c == '!':
			if prev == nil || !(*prev == token.Number || *prev == token.RParen || *prev == token.Factorial) {
				return nil, fmt.Errorf("scan: '!' at %d does not follow an operand", i)
			}
			emit(token.Factorial, "!")
			i++

		case c == '-':
			if startsOperand(prev) {
				emit(token.UnaryMinus, "-")
			} else {
				emit(token.Minus, "-")
			}
			i++

		case c == '+' || c == '*' || c == '/' || c == '%' || c == '^':
			emit(binaryOpKind(c), string(c))
			i++

		default:
			return nil, fmt.Errorf("scan: unexpected character %q at %d", c, i)
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("scan: unbalanced parentheses")
	}
	toks = append(toks, token.Token{Kind: token.End})
	return toks, nil
}

// Validate reports whether src satisfies the lexical grammar, without
// returning the resulting tokens.
func Validate(src string) error {
	_, err := Tokenize(src)
	return err
}

// startsOperand reports whether a '-' seen right after a token of
// kind *prev (or at start of expression, prev == nil) must be unary:
// at the start, after another operator, after '(', or after another
// unary minus.
func startsOperand(prev *token.Kind) bool {
	if prev == nil {
		return true
	}
	switch *prev {
	case token.LParen, token.UnaryMinus:
		return true
	}
	return prev.IsBinaryOp()
}

func binaryOpKind(c byte) token.Kind {
	switch c {
	case '+':
		return token.Plus
	case '-':
		return token.Minus
	case '*':
		return token.Star
	case '/':
		return token.Slash
	case '%':
		return token.Percent
	case '^':
		return token.Caret
	}
	panic("scan: not an operator")
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\r' || c == '\n' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

// LooksLikeExpression reports whether src contains at least one
// character from the expression alphabet (digits, hex letters, the
// 'x'/'X' literal-prefix letter, operators, parentheses) ignoring
// whitespace. The CLI boundary uses
// this to distinguish a syntactically broken expression ("Syntax
// error!") from text that is not an attempt at one at all
// ("Invalid command ...!").
func LooksLikeExpression(src string) bool {
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case isSpace(c):
		case isHexDigit(c):
			return true
		case c == '+' || c == '-' || c == '*' || c == '/' || c == '%' || c == '^' || c == '!' || c == '(' || c == ')':
			return true
		case c == 'x' || c == 'X' || c == 'b' || c == 'B':
			return true
		}
	}
	return false
}
