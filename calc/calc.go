// Package calc wires the tokenizer, shunting-yard converter, and
// postfix evaluator together into the single entry point for a
// source line: source line -> tokens -> postfix -> BigInt result ->
// formatted text. It plays the role robpike.io/ivy's run package
// plays around that project's scan/parse/value packages, but returns
// values instead of printing them or recovering from a panic, so the
// CLI boundary (cmd/calc) decides how to display a result or map an
// error to one of the fixed strings in ErrorMessage.
package calc

import (
	"github.com/LazyView/PC-Calculator/bigint"
	"github.com/LazyView/PC-Calculator/codec"
	"github.com/LazyView/PC-Calculator/config"
	"github.com/LazyView/PC-Calculator/eval"
	"github.com/LazyView/PC-Calculator/scan"
	"github.com/LazyView/PC-Calculator/shunt"
)

// Evaluate runs one expression line through the pipeline and formats
// the result in cfg's current output base. Any returned error is an
// *eval.Error; ErrorMessage maps it to a fixed, user-facing string.
func Evaluate(cfg *config.Config, line string) (string, error) {
	tokens, err := scan.Tokenize(line)
	if err != nil {
		return "", eval.NewError(eval.InvalidToken, err.Error())
	}
	postfix, err := shunt.ToPostfix(tokens)
	if err != nil {
		return "", eval.NewError(eval.InvalidToken, err.Error())
	}
	result, err := eval.Eval(postfix)
	if err != nil {
		return "", err
	}
	return format(cfg, result), nil
}

func format(cfg *config.Config, result bigint.Int) string {
	switch cfg.OutputBase() {
	case config.Binary:
		return codec.FormatBinary(result)
	case config.Hex:
		return codec.FormatHex(result)
	default:
		return codec.FormatDecimal(result)
	}
}
