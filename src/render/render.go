package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/eriklarko/truth-table/src/truthtable"
)

// Renderer writes a truth table in some output format
type Renderer interface {
	Render(w io.Writer, table *truthtable.Table) error
}

const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
	FormatYAML     = "yaml"
)

// Formats lists the names New accepts
func Formats() []string {
	return []string{FormatText, FormatMarkdown, FormatCSV, FormatYAML}
}

type options struct {
	header string
	color  bool
}

type Option func(*options)

// WithHeader replaces the expression shown as the result column's title, for
// example to print it with ASCII connectives.
func WithHeader(header string) Option {
	return func(o *options) {
		o.header = header
	}
}

// WithColor paints true cells green and false cells red in the text format.
// The other formats ignore it.
func WithColor(color bool) Option {
	return func(o *options) {
		o.color = color
	}
}

func (o options) resultHeader(table *truthtable.Table) string {
	if o.header != "" {
		return o.header
	}
	return table.Expression
}

// New returns the renderer for the named format.
// Usage:
//
//	renderer, err := render.New("markdown")
//	if err != nil {
//		...
//	}
//	err = renderer.Render(os.Stdout, table)
func New(format string, opts ...Option) (Renderer, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	switch strings.ToLower(format) {
	case FormatText, "":
		return &textRenderer{options: o}, nil
	case FormatMarkdown, "md":
		return &textRenderer{options: o, markdown: true}, nil
	case FormatCSV:
		return &csvRenderer{options: o}, nil
	case FormatYAML, "yml":
		return &yamlRenderer{options: o}, nil
	}
	return nil, fmt.Errorf("unknown format '%s', expected one of %s", format, strings.Join(Formats(), ", "))
}

// IsFormat reports whether New accepts the format name.
func IsFormat(format string) bool {
	_, err := New(format)
	return err == nil
}

// WriteFile renders the table into the file at the given path, replacing any
// previous content.
func WriteFile(path string, renderer Renderer, table *truthtable.Table) (err error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		// not worth stopping for, the absolute path only makes the error
		// messages easier to follow
		absPath = path
	}

	file, err := os.Create(absPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", absPath, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close file %s: %w", absPath, closeErr)
		}
	}()

	if err := renderer.Render(file, table); err != nil {
		return fmt.Errorf("failed to write table to %s: %w", absPath, err)
	}

	return nil
}
