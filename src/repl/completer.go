package repl

import (
	"strings"
	"unicode"

	"github.com/eriklarko/truth-table/src/config"
	"github.com/eriklarko/truth-table/src/render"
)

type completionContext int

const (
	contextCommand    completionContext = iota // start of line, partial command
	contextFormat                              // after format
	contextSymbols                             // after symbols
	contextExpression                          // anywhere in an expression
)

var symbolSetNames = []string{config.SymbolsASCII, config.SymbolsUnicode}

// connectives offered after a space in an expression
var connectives = []string{"~", "∧", "∨", "⊕", "→", "↔", "("}

// multi character spellings completed from their first characters
var asciiConnectives = []string{"->", "<->"}

// completer implements readline's AutoCompleter interface.
type completer struct {
	sess *Session
}

// Do returns completion candidates for line[:pos]. newLine holds the suffix to
// append for each candidate and length is how many runes before pos they
// complete.
func (c *completer) Do(line []rune, pos int) (newLine [][]rune, length int) {
	ctx, prefix := c.parseContext(string(line[:pos]))

	var candidates []string
	switch ctx {
	case contextCommand:
		candidates = filterPrefix(append(c.sess.commandNames(), "exit", "quit"), prefix)
	case contextFormat:
		candidates = filterPrefix(render.Formats(), prefix)
	case contextSymbols:
		candidates = filterPrefix(symbolSetNames, prefix)
	case contextExpression:
		if prefix == "" {
			candidates = connectives
		} else {
			candidates = filterPrefix(asciiConnectives, prefix)
		}
	}

	for _, cand := range candidates {
		suffix := []rune(cand)[len([]rune(prefix)):]
		newLine = append(newLine, append(suffix, ' '))
	}
	length = len([]rune(prefix))
	return
}

func (c *completer) parseContext(line string) (completionContext, string) {
	lower := strings.ToLower(line)

	if rest, ok := strings.CutPrefix(lower, "format "); ok {
		return contextFormat, strings.TrimSpace(rest)
	}
	if rest, ok := strings.CutPrefix(lower, "symbols "); ok {
		return contextSymbols, strings.TrimSpace(rest)
	}

	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	if !strings.ContainsFunc(trimmed, func(r rune) bool { return !unicode.IsLetter(r) }) {
		return contextCommand, trimmed
	}

	// vars and classify take an expression, as does everything else
	return contextExpression, lastToken(line)
}

func filterPrefix(items []string, prefix string) []string {
	if prefix == "" {
		result := make([]string, len(items))
		copy(result, items)
		return result
	}
	lowerPrefix := strings.ToLower(prefix)
	var result []string
	for _, item := range items {
		if strings.HasPrefix(strings.ToLower(item), lowerPrefix) {
			result = append(result, item)
		}
	}
	return result
}

// lastToken returns what follows the last space of s
func lastToken(s string) string {
	if i := strings.LastIndexAny(s, " \t"); i >= 0 {
		return s[i+1:]
	}
	return s
}
