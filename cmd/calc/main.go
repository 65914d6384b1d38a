// Command calc is the external interface to the calculator: an
// interactive REPL over standard input, or a batch run over a file
// named on the command line. Argument parsing and dispatch use
// cobra, the shape grounded in github.com/oisee/z80-optimizer's
// cmd/z80opt/main.go, which wraps a pure arithmetic/search engine
// with a cobra root command, in place of robpike.io/ivy's hand-rolled
// flag-based main() in ivy.go.
package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/LazyView/PC-Calculator/calc"
	"github.com/LazyView/PC-Calculator/config"
)

var debug bool

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "calc [file]",
		Short: "Arbitrary-precision infix calculator",
		Long: "calc evaluates infix arithmetic expressions over signed arbitrary-\n" +
			"precision integers in decimal, binary, and hexadecimal. With no\n" +
			"arguments it reads lines interactively from standard input; with a\n" +
			"file argument it reads lines from the file.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(debug)
			cfg := &config.Config{}
			cfg.SetDebug("trace", debug)
			if len(args) == 1 {
				return runFile(cfg, logger, args[0])
			}
			return runInteractive(cfg, logger)
		},
	}
	root.Flags().BoolVar(&debug, "debug", false, "trace mode changes and the batch file being read to stderr")
	return root
}

func newLogger(debug bool) zerolog.Logger {
	level := zerolog.Disabled
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()
}

// runFile implements `calc <file>`: batch-read the file as if its
// lines had been typed interactively, except without a prompt.
// Failure to open the file reports a fixed message and a non-zero
// exit.
func runFile(cfg *config.Config, logger zerolog.Logger, path string) error {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Invalid input file!")
		os.Exit(1)
	}
	defer f.Close()
	logger.Debug().Str("file", path).Msg("reading batch input")
	return runLines(cfg, logger, bufio.NewScanner(f))
}

// runInteractive implements the no-argument `calc` invocation: read
// from standard input until EOF or a `quit` line.
func runInteractive(cfg *config.Config, logger zerolog.Logger) error {
	return runLines(cfg, logger, bufio.NewScanner(os.Stdin))
}

func runLines(cfg *config.Config, logger zerolog.Logger, scanner *bufio.Scanner) error {
	for scanner.Scan() {
		line := scanner.Text()
		beforeBase := cfg.OutputBase()
		output, quit := calc.Execute(cfg, line)
		if output != "" {
			fmt.Println(output)
		}
		if afterBase := cfg.OutputBase(); afterBase != beforeBase {
			logger.Debug().Stringer("from", beforeBase).Stringer("to", afterBase).Msg("output base changed")
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}
