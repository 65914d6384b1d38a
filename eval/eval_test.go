package eval

import (
	"testing"

	"github.com/LazyView/PC-Calculator/token"
)

func num(text string) token.Token { return token.Token{Kind: token.Number, Text: text} }
func op(k token.Kind) token.Token { return token.Token{Kind: k} }
func end() token.Token            { return token.Token{Kind: token.End} }

func TestEvalArithmetic(t *testing.T) {
	// postfix for "10 3 - 2 -" = (10-3)-2 = 5
	postfix := []token.Token{num("10"), num("3"), op(token.Minus), num("2"), op(token.Minus), end()}
	got, err := Eval(postfix)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "5" {
		t.Fatalf("got %s, want 5", got)
	}
}

func TestEvalPowerRightAssociative(t *testing.T) {
	// postfix for "2 3 2 ^ ^" = 2^(3^2) = 512
	postfix := []token.Token{num("2"), num("3"), num("2"), op(token.Caret), op(token.Caret), end()}
	got, err := Eval(postfix)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "512" {
		t.Fatalf("got %s, want 512", got)
	}
}

func TestEvalUnaryMinusAndFactorial(t *testing.T) {
	// "3 ! -" = -(3!) = -6, i.e. postfix: Number(3), Factorial, UnaryMinus
	postfix := []token.Token{num("3"), op(token.Factorial), op(token.UnaryMinus), end()}
	got, err := Eval(postfix)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "-6" {
		t.Fatalf("got %s, want -6", got)
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	postfix := []token.Token{num("1"), num("0"), op(token.Slash), end()}
	_, err := Eval(postfix)
	assertKind(t, err, DivisionByZero)
}

func TestEvalModuloByZero(t *testing.T) {
	postfix := []token.Token{num("1"), num("0"), op(token.Percent), end()}
	_, err := Eval(postfix)
	assertKind(t, err, DivisionByZero)
}

func TestEvalNegativeFactorial(t *testing.T) {
	postfix := []token.Token{num("-5"), op(token.Factorial), end()}
	_, err := Eval(postfix)
	assertKind(t, err, NegativeFactorial)
}

func TestEvalStackUnderflow(t *testing.T) {
	postfix := []token.Token{num("1"), op(token.Plus), end()}
	_, err := Eval(postfix)
	assertKind(t, err, StackUnderflow)
}

func TestEvalTooManyOperands(t *testing.T) {
	postfix := []token.Token{num("1"), num("2"), end()}
	_, err := Eval(postfix)
	assertKind(t, err, InvalidToken)
}

func TestEvalInvalidLiteral(t *testing.T) {
	postfix := []token.Token{{Kind: token.Number, Text: "0b2"}, end()}
	_, err := Eval(postfix)
	assertKind(t, err, InvalidToken)
}

func assertKind(t *testing.T, err error, want Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error of kind %v, got nil", want)
	}
	e, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *eval.Error, got %T (%v)", err, err)
	}
	if e.Kind != want {
		t.Fatalf("got kind %v, want %v", e.Kind, want)
	}
}
