// Package eval runs a postfix token stream (as produced by package
// shunt) against a single stack of bigint.Int values, driving the
// arithmetic kernel and surfacing the typed Error/Kind pair. It has
// no direct robpike.io/ivy analogue (ivy evaluates its parsed
// expression tree directly rather than a postfix stream); its
// error-propagation style generalizes the push/pop bookkeeping ivy's
// run.Run performs around context.Eval.
package eval

import (
	"errors"

	"github.com/LazyView/PC-Calculator/bigint"
	"github.com/LazyView/PC-Calculator/codec"
	"github.com/LazyView/PC-Calculator/token"
)

// Eval runs postfix to completion and returns the single remaining
// value. Any stack discipline violation, codec failure, or kernel
// error is returned as an *Error with the appropriate Kind; nothing
// panics.
func Eval(postfix []token.Token) (bigint.Int, error) {
	var stack []bigint.Int

	pop := func() (bigint.Int, error) {
		if len(stack) == 0 {
			return bigint.Int{}, newError(StackUnderflow, "stack underflow")
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v, nil
	}
	push := func(v bigint.Int) { stack = append(stack, v) }

	for _, tok := range postfix {
		switch tok.Kind {
		case token.End:
			if len(stack) != 1 {
				return bigint.Int{}, newError(InvalidToken, "expression did not reduce to a single value")
			}
			return stack[0], nil

		case token.Number:
			v, err := codec.ParseLiteral(tok.Text)
			if err != nil {
				return bigint.Int{}, newError(InvalidToken, "invalid numeric literal: "+tok.Text)
			}
			push(v)

		case token.UnaryMinus:
			a, err := pop()
			if err != nil {
				return bigint.Int{}, err
			}
			push(bigint.Negate(a))

		case token.Factorial:
			a, err := pop()
			if err != nil {
				return bigint.Int{}, err
			}
			f, ferr := bigint.Factorial(a)
			if ferr != nil {
				return bigint.Int{}, wrapKernelError(ferr)
			}
			push(f)

		case token.Plus, token.Minus, token.Star, token.Slash, token.Percent, token.Caret:
			right, err := pop()
			if err != nil {
				return bigint.Int{}, err
			}
			left, err := pop()
			if err != nil {
				return bigint.Int{}, err
			}
			v, err := apply(tok.Kind, left, right)
			if err != nil {
				return bigint.Int{}, err
			}
			push(v)

		default:
			return bigint.Int{}, newError(InvalidToken, "unexpected token in postfix stream")
		}
	}
	// A well-formed postfix stream always ends in token.End; reaching
	// here means it didn't.
	return bigint.Int{}, newError(InvalidToken, "postfix stream missing terminator")
}

func apply(k token.Kind, left, right bigint.Int) (bigint.Int, error) {
	switch k {
	case token.Plus:
		return bigint.Add(left, right), nil
	case token.Minus:
		return bigint.Sub(left, right), nil
	case token.Star:
		return bigint.Mul(left, right), nil
	case token.Slash:
		v, err := bigint.Div(left, right)
		if err != nil {
			return bigint.Int{}, wrapKernelError(err)
		}
		return v, nil
	case token.Percent:
		v, err := bigint.Mod(left, right)
		if err != nil {
			return bigint.Int{}, wrapKernelError(err)
		}
		return v, nil
	case token.Caret:
		v, err := bigint.Power(left, right)
		if err != nil {
			return bigint.Int{}, wrapKernelError(err)
		}
		return v, nil
	}
	return bigint.Int{}, newError(InvalidToken, "unknown binary operator")
}

// wrapKernelError attaches the appropriate Kind to an error returned
// by the bigint package.
func wrapKernelError(err error) *Error {
	switch {
	case errors.Is(err, bigint.ErrDivByZero):
		return newError(DivisionByZero, "division by zero")
	case errors.Is(err, bigint.ErrNegativeFactorial):
		return newError(NegativeFactorial, "factorial of negative number")
	default:
		return newError(Memory, err.Error())
	}
}
