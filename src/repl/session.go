package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/eriklarko/truth-table/src/boolexpr"
	"github.com/eriklarko/truth-table/src/config"
	"github.com/eriklarko/truth-table/src/render"
	"github.com/eriklarko/truth-table/src/truthtable"
)

var errNoTable = errors.New("no table yet, type an expression first")

type command struct {
	name        string
	args        string
	description string
	run         func(s *Session, args string) error
}

// Session holds what one interactive user has set up: the output format, the
// connective spelling and the last table printed.
type Session struct {
	cfg         *config.Config
	generator   *truthtable.Generator
	format      string
	symbols     boolexpr.SymbolSet
	symbolsName string
	color       bool

	last     *truthtable.Table
	lastRoot *boolexpr.Node

	commands map[string]command
	out      io.Writer // destination for REPL output (default os.Stdout)
}

// NewSession creates a session using the format, symbols and variable limit of
// the given config.
func NewSession(cfg *config.Config) (*Session, error) {
	generator, err := cfg.Generator()
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:         cfg,
		generator:   generator,
		format:      cfg.Format,
		symbols:     cfg.SymbolSet(),
		symbolsName: cfg.Symbols,
		out:         os.Stdout,
	}
	s.initCommands()
	return s, nil
}

// SetColor turns colored text tables on or off
func (s *Session) SetColor(color bool) {
	s.color = color
}

func (s *Session) initCommands() {
	s.commands = make(map[string]command)
	for _, c := range []command{
		{name: "help", description: "show this help", run: (*Session).help},
		{name: "format", args: "<" + strings.Join(render.Formats(), "|") + ">", description: "set the output format", run: (*Session).setFormat},
		{name: "symbols", args: "<unicode|ascii>", description: "set how connectives are printed", run: (*Session).setSymbols},
		{name: "vars", args: "<expression>", description: "list the variables of an expression", run: (*Session).vars},
		{name: "classify", args: "<expression>", description: "tell whether an expression is a tautology, a contradiction or contingent", run: (*Session).classify},
		{name: "last", description: "print the previous table again", run: (*Session).printLast},
		{name: "save", description: "store the current format and symbols in the config file", run: (*Session).save},
	} {
		s.commands[c.name] = c
	}
}

// commandNames returns the names of all commands, sorted (for tab completion)
func (s *Session) commandNames() []string {
	names := make([]string, 0, len(s.commands))
	for name := range s.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute runs a command, or prints the truth table of the line when it is
// not a command.
func (s *Session) Execute(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	name, args, _ := strings.Cut(line, " ")
	if c, ok := s.commands[strings.ToLower(name)]; ok {
		return c.run(s, strings.TrimSpace(args))
	}

	return s.table(line)
}

func (s *Session) table(expression string) error {
	root, err := boolexpr.Parse(expression)
	if err != nil {
		return err
	}

	table, err := s.generator.Compute(root)
	if err != nil {
		return err
	}

	s.last = table
	s.lastRoot = root
	return s.print(table, root)
}

func (s *Session) print(table *truthtable.Table, root *boolexpr.Node) error {
	renderer, err := render.New(
		s.format,
		render.WithHeader(root.Format(s.symbols)),
		render.WithColor(s.color),
	)
	if err != nil {
		return err
	}
	return renderer.Render(s.out, table)
}

func (s *Session) help(string) error {
	fmt.Fprintln(s.out, "Type an expression to print its truth table, for example (P ∧ Q) → R")
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Connectives, loosest first:")
	fmt.Fprintln(s.out, "  IFF      ↔  <->  ⇔")
	fmt.Fprintln(s.out, "  IMPLIES  →  ->   ⇒")
	fmt.Fprintln(s.out, "  XOR      ⊕  ^")
	fmt.Fprintln(s.out, "  OR       ∨  |")
	fmt.Fprintln(s.out, "  AND      ∧  &")
	fmt.Fprintln(s.out, "  NOT      ~  !    ¬")
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Commands:")
	for _, name := range s.commandNames() {
		c := s.commands[name]
		fmt.Fprintf(s.out, "  %-30s %s\n", strings.TrimSpace(c.name+" "+c.args), c.description)
	}
	fmt.Fprintf(s.out, "  %-30s %s\n", "exit", "leave")
	return nil
}

func (s *Session) setFormat(format string) error {
	if format == "" {
		fmt.Fprintf(s.out, "format: %s\n", s.format)
		return nil
	}
	if !render.IsFormat(format) {
		return fmt.Errorf("unknown format '%s', expected one of %s", format, strings.Join(render.Formats(), ", "))
	}
	s.format = strings.ToLower(format)
	fmt.Fprintf(s.out, "format: %s\n", s.format)
	return nil
}

func (s *Session) setSymbols(symbols string) error {
	switch name := strings.ToLower(symbols); name {
	case config.SymbolsUnicode:
		s.symbols = boolexpr.UnicodeSymbols
		s.symbolsName = name
	case config.SymbolsASCII:
		s.symbols = boolexpr.ASCIISymbols
		s.symbolsName = name
	default:
		return fmt.Errorf("symbols must be '%s' or '%s', got '%s'", config.SymbolsUnicode, config.SymbolsASCII, symbols)
	}
	fmt.Fprintf(s.out, "symbols: %s\n", strings.ToLower(symbols))
	return nil
}

func (s *Session) vars(expression string) error {
	root, err := boolexpr.Parse(expression)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, strings.Join(root.Variables(), ", "))
	return nil
}

func (s *Session) classify(expression string) error {
	root := s.lastRoot
	if expression != "" {
		var err error
		if root, err = boolexpr.Parse(expression); err != nil {
			return err
		}
	}
	if root == nil {
		return errNoTable
	}

	classification, err := truthtable.Classify(root)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s: %s\n", root.Format(s.symbols), classification)
	return nil
}

func (s *Session) printLast(string) error {
	if s.last == nil {
		return errNoTable
	}
	return s.print(s.last, s.lastRoot)
}

func (s *Session) save(string) error {
	saved := *s.cfg
	saved.Format = s.format
	saved.Symbols = s.symbolsName

	if err := saved.Write(); err != nil {
		return err
	}
	s.cfg.Format, s.cfg.Symbols = saved.Format, saved.Symbols

	fmt.Fprintf(s.out, "saved settings to %s\n", saved.Path)
	return nil
}
