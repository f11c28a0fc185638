package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/eriklarko/truth-table/src/boolexpr"
	"github.com/eriklarko/truth-table/src/render"
	"github.com/eriklarko/truth-table/src/truthtable"
	"gopkg.in/yaml.v3"
)

const (
	SymbolsUnicode = "unicode"
	SymbolsASCII   = "ascii"

	EnvFormat       = "TRUTHTABLE_FORMAT"
	EnvMaxVariables = "TRUTHTABLE_MAX_VARIABLES"
)

// Config is read from a yaml file.
// Example:
//
//	max-variables: 12
//	format: markdown
//	symbols: ascii
//	history-file: ~/.truth_table_history
type Config struct {
	MaxVariables int    `yaml:"max-variables,omitempty"`
	Format       string `yaml:"format,omitempty"`
	Symbols      string `yaml:"symbols,omitempty"`
	HistoryFile  string `yaml:"history-file,omitempty"`

	// Path is where the config was loaded from and where Write puts it
	Path string `yaml:"-"`
}

func Default() *Config {
	return &Config{
		MaxVariables: truthtable.DefaultMaxVariables,
		Format:       render.FormatText,
		Symbols:      SymbolsUnicode,
		HistoryFile:  defaultHistoryFile(),
	}
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".truth_table_history")
}

// LoadConfig reads the config at path. Keys missing from the file keep their
// default value and an empty file is the default config. When the file does
// not exist the returned error satisfies os.IsNotExist.
func LoadConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		// returned as is so callers can check os.IsNotExist
		return nil, err
	}

	config := Default()
	config.Path = path

	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return config, nil
}

// ApplyEnvironment lets TRUTHTABLE_FORMAT and TRUTHTABLE_MAX_VARIABLES
// override what the file says.
func (c *Config) ApplyEnvironment() error {
	if format := os.Getenv(EnvFormat); format != "" {
		c.Format = format
	}

	if maxVariables := os.Getenv(EnvMaxVariables); maxVariables != "" {
		n, err := strconv.Atoi(maxVariables)
		if err != nil {
			return fmt.Errorf("failed to parse %s=%q: %w", EnvMaxVariables, maxVariables, err)
		}
		c.MaxVariables = n
	}

	return c.Validate()
}

func (c *Config) Validate() error {
	if c.MaxVariables < 1 || c.MaxVariables > truthtable.MaxVariablesCap {
		return fmt.Errorf("max-variables must be between 1 and %d, got %d", truthtable.MaxVariablesCap, c.MaxVariables)
	}
	if !render.IsFormat(c.Format) {
		return fmt.Errorf("unknown format '%s', expected one of %v", c.Format, render.Formats())
	}
	if c.Symbols != SymbolsUnicode && c.Symbols != SymbolsASCII {
		return fmt.Errorf("symbols must be '%s' or '%s', got '%s'", SymbolsUnicode, SymbolsASCII, c.Symbols)
	}
	return nil
}

// Write stores the config as yaml at c.Path
func (c *Config) Write() error {
	if c.Path == "" {
		return fmt.Errorf("config has no path to write to")
	}

	content, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(c.Path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for config file %s: %w", c.Path, err)
	}

	if err := os.WriteFile(c.Path, content, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", c.Path, err)
	}
	// WriteFile keeps the mode of an existing file
	if err := os.Chmod(c.Path, 0644); err != nil {
		return fmt.Errorf("failed to set permissions on config file %s: %w", c.Path, err)
	}
	return nil
}

func (c *Config) SymbolSet() boolexpr.SymbolSet {
	if c.Symbols == SymbolsASCII {
		return boolexpr.ASCIISymbols
	}
	return boolexpr.UnicodeSymbols
}

func (c *Config) Generator() (*truthtable.Generator, error) {
	return truthtable.NewGenerator(c.MaxVariables)
}
