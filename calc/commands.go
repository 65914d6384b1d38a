package calc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/LazyView/PC-Calculator/config"
	"github.com/LazyView/PC-Calculator/eval"
	"github.com/LazyView/PC-Calculator/scan"
)

// Execute drives one line of input the way the interactive and batch
// front-ends both do: mode commands are matched first (after
// trimming and lowercasing), then anything else is handed to
// Evaluate as an expression. It is intentionally thin, trivial glue
// around the mode commands and Evaluate, but lives here rather than
// in cmd/calc so both the interactive and file-driven CLI entry
// points share one implementation.
//
// Execute returns the text to print (empty for a blank input line)
// and whether the session should terminate.
func Execute(cfg *config.Config, rawLine string) (output string, quit bool) {
	trimmed := strings.TrimSpace(rawLine)
	if trimmed == "" {
		return "", false
	}
	switch strings.ToLower(trimmed) {
	case "dec":
		cfg.SetOutputBase(config.Decimal)
		return config.Decimal.String(), false
	case "bin":
		cfg.SetOutputBase(config.Binary)
		return config.Binary.String(), false
	case "hex":
		cfg.SetOutputBase(config.Hex)
		return config.Hex.String(), false
	case "out":
		return cfg.OutputBase().String(), false
	case "quit":
		return "", true
	}

	if !scan.LooksLikeExpression(trimmed) {
		return fmt.Sprintf("Invalid command %q!", rawLine), false
	}

	result, err := Evaluate(cfg, trimmed)
	if err != nil {
		return ErrorMessage(err), false
	}
	return result, false
}

// ErrorMessage maps an error returned by Evaluate to one of four
// fixed, user-facing strings. The evaluator's five error Kinds
// collapse onto these four: InvalidToken and StackUnderflow both
// indicate a malformed expression and print the same "Syntax error!"
// text.
func ErrorMessage(err error) string {
	var e *eval.Error
	if errors.As(err, &e) {
		switch e.Kind {
		case eval.DivisionByZero:
			return "Division by zero!"
		case eval.NegativeFactorial:
			return "Input of factorial must not be negative!"
		case eval.Memory:
			return "Memory allocation error!"
		}
	}
	return "Syntax error!"
}
