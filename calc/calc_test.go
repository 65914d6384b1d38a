package calc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LazyView/PC-Calculator/calc"
	"github.com/LazyView/PC-Calculator/config"
)

func TestEvaluateDecimalDefault(t *testing.T) {
	cfg := &config.Config{}
	out, err := calc.Evaluate(cfg, "2+3*4")
	assert.NoError(t, err)
	assert.Equal(t, "14", out)
}

func TestEvaluateRespectsOutputBase(t *testing.T) {
	cfg := &config.Config{}
	cfg.SetOutputBase(config.Binary)
	out, err := calc.Evaluate(cfg, "5")
	assert.NoError(t, err)
	assert.Equal(t, "0b0101", out)

	cfg.SetOutputBase(config.Hex)
	out, err = calc.Evaluate(cfg, "-6")
	assert.NoError(t, err)
	assert.Equal(t, "0xa", out)
}

func TestEvaluateErrors(t *testing.T) {
	cfg := &config.Config{}

	_, err := calc.Evaluate(cfg, "1/0")
	assert.Equal(t, "Division by zero!", calc.ErrorMessage(err))

	_, err = calc.Evaluate(cfg, "(-1)!")
	assert.Equal(t, "Input of factorial must not be negative!", calc.ErrorMessage(err))

	_, err = calc.Evaluate(cfg, "1+")
	assert.Equal(t, "Syntax error!", calc.ErrorMessage(err))

	_, err = calc.Evaluate(cfg, "(1+2")
	assert.Equal(t, "Syntax error!", calc.ErrorMessage(err))
}

// TestExecuteSession walks a whole interactive session through the
// command surface: mode switches, an expression evaluated in each
// mode, an invalid command, and quit.
func TestExecuteSession(t *testing.T) {
	cfg := &config.Config{}

	out, quit := calc.Execute(cfg, "2+2")
	assert.False(t, quit)
	assert.Equal(t, "4", out)

	out, quit = calc.Execute(cfg, "bin")
	assert.False(t, quit)
	assert.Equal(t, "bin", out)

	out, quit = calc.Execute(cfg, "5")
	assert.False(t, quit)
	assert.Equal(t, "0b0101", out)

	out, quit = calc.Execute(cfg, "hex")
	assert.False(t, quit)
	assert.Equal(t, "hex", out)

	out, quit = calc.Execute(cfg, "255")
	assert.False(t, quit)
	assert.Equal(t, "0x0ff", out)

	out, quit = calc.Execute(cfg, "out")
	assert.False(t, quit)
	assert.Equal(t, "hex", out)

	out, quit = calc.Execute(cfg, "dec")
	assert.False(t, quit)
	assert.Equal(t, "dec", out)

	out, quit = calc.Execute(cfg, "")
	assert.False(t, quit)
	assert.Equal(t, "", out)

	out, quit = calc.Execute(cfg, "zzz")
	assert.False(t, quit)
	assert.Equal(t, `Invalid command "zzz"!`, out)

	out, quit = calc.Execute(cfg, "quit")
	assert.True(t, quit)
	assert.Equal(t, "", out)
}

func TestExecuteExpressionLeavesOutputBaseUnchanged(t *testing.T) {
	// Only a mode command changes the output base; a line holding an
	// expression is evaluated in the base active when Execute was
	// called and leaves that base as it was.
	cfg := &config.Config{}
	out, _ := calc.Execute(cfg, "10")
	assert.Equal(t, "10", out)
	assert.Equal(t, config.Decimal, cfg.OutputBase())
}
