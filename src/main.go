package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/eriklarko/truth-table/src/boolexpr"
	"github.com/eriklarko/truth-table/src/config"
	"github.com/eriklarko/truth-table/src/environment"
	"github.com/eriklarko/truth-table/src/render"
	"github.com/eriklarko/truth-table/src/repl"
	"github.com/eriklarko/truth-table/src/truthtable"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	configPath   string
	format       string
	maxVariables int
	output       string
	classify     bool
	verbose      bool
	expressions  []string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}

	fs := flag.NewFlagSet("truth-table", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "path to the yaml config file (default $XDG_CONFIG_HOME/truth-table/config.yaml)")
	fs.StringVar(&opts.format, "format", "", "output format, one of "+strings.Join(render.Formats(), ", "))
	fs.IntVar(&opts.maxVariables, "max-vars", 0, fmt.Sprintf("maximum number of distinct variables, at most %d", truthtable.MaxVariablesCap))
	fs.StringVar(&opts.output, "o", "", "write the table to this file instead of stdout")
	fs.BoolVar(&opts.classify, "classify", false, "print whether each expression is a tautology, a contradiction or contingent")
	fs.BoolVar(&opts.verbose, "verbose", false, "log debug information to stderr")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Syntax : truth-table [options] [expression...]\n")
		fmt.Fprintf(stderr, "Without expressions they are read from stdin, one per line, or typed at a prompt.\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, errUsage
	}
	opts.expressions = fs.Args()
	return opts, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return exitUsage
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}
	slog.Debug("using config", "path", cfg.Path, "format", cfg.Format, "max-variables", cfg.MaxVariables)

	expressions := opts.expressions
	if len(expressions) == 0 {
		if environment.IsInteractive() && opts.output == "" {
			return runInteractive(cfg, stderr)
		}

		expressions, err = readExpressions(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "error: failed to read expressions: %v\n", err)
			return exitFail
		}
	}

	if opts.output != "" && len(expressions) != 1 {
		fmt.Fprintf(stderr, "error: -o takes exactly one expression, got %d\n", len(expressions))
		return exitUsage
	}

	generator, err := cfg.Generator()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	printer := &printer{
		cfg:       cfg,
		generator: generator,
		output:    opts.output,
		classify:  opts.classify,
		color:     opts.output == "" && environment.IsColorTerminal(),
		stdout:    stdout,
	}

	exitCode := exitOK
	for i, expression := range expressions {
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		if err := printer.print(expression); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			exitCode = exitFail
		}
	}
	return exitCode
}

// loadConfig reads the config file, then lets the environment and the flags
// override it
func loadConfig(opts *options) (*config.Config, error) {
	path := opts.configPath
	if path == "" {
		path = defaultConfigPath()
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.LoadConfig(path)
		switch {
		case err == nil:
			cfg = loaded
		case os.IsNotExist(err) && opts.configPath == "":
			slog.Debug("no config file, using defaults", "path", path)
			// the REPL's save command creates it
			cfg.Path = path
		case os.IsNotExist(err):
			return nil, fmt.Errorf("config file %s does not exist", path)
		default:
			return nil, err
		}
	}

	if err := cfg.ApplyEnvironment(); err != nil {
		return nil, err
	}

	if opts.format != "" {
		cfg.Format = opts.format
	}
	if opts.maxVariables != 0 {
		cfg.MaxVariables = opts.maxVariables
	}
	return cfg, cfg.Validate()
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "truth-table", "config.yaml")
}

// maxLineLength bounds a single expression read from stdin
const maxLineLength = 16 << 20

// readExpressions returns the non-empty lines of in
func readExpressions(in io.Reader) ([]string, error) {
	var expressions []string

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineLength)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			expressions = append(expressions, line)
		}
	}
	return expressions, scanner.Err()
}

func runInteractive(cfg *config.Config, stderr io.Writer) int {
	sess, err := repl.NewSession(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}
	sess.SetColor(environment.IsColorTerminal())

	if err := repl.Run(sess, cfg, stderr); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFail
	}
	return exitOK
}

type printer struct {
	cfg       *config.Config
	generator *truthtable.Generator
	output    string
	classify  bool
	color     bool
	stdout    io.Writer
}

func (p *printer) print(expression string) error {
	root, err := boolexpr.Parse(expression)
	if err != nil {
		return err
	}

	table, err := p.generator.Compute(root)
	if err != nil {
		return err
	}

	renderer, err := render.New(
		p.cfg.Format,
		render.WithHeader(root.Format(p.cfg.SymbolSet())),
		render.WithColor(p.color),
	)
	if err != nil {
		return err
	}

	if p.output != "" {
		if err := render.WriteFile(p.output, renderer, table); err != nil {
			return err
		}
		slog.Debug("wrote table", "path", p.output, "rows", len(table.Rows))
	} else if err := renderer.Render(p.stdout, table); err != nil {
		return err
	}

	if p.classify {
		classification, err := truthtable.Classify(root)
		if err != nil {
			return err
		}
		fmt.Fprintf(p.stdout, "classification: %s\n", classification)
	}
	return nil
}
