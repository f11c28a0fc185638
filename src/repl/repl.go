// Package repl is the interactive truth table prompt.
package repl

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ergochat/readline"
	"github.com/eriklarko/truth-table/src/config"
)

const prompt = "truth-table> "

// Run reads lines until exit, quit or EOF and executes each of them.
// Errors are printed to errOut and do not end the loop.
func Run(sess *Session, cfg *config.Config, errOut io.Writer) error {
	rl, err := readline.NewFromConfig(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     cfg.HistoryFile,
		HistoryLimit:    500,
		AutoComplete:    &completer{sess: sess},
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to start readline: %w", err)
	}
	defer func() { _ = rl.Close() }()

	fmt.Fprintln(sess.out, "Truth tables: type an expression, 'help' for commands, 'exit' to quit")
	for {
		line, err := rl.ReadLine()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			slog.Debug("readline failed", "error", err)
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		if lower == "exit" || lower == "quit" {
			break
		}

		if err := sess.Execute(line); err != nil {
			fmt.Fprintf(errOut, "  Error: %v\n", err)
		}
	}
	return nil
}
