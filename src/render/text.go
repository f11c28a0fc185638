package render

import (
	"bufio"
	"io"
	"strings"

	"github.com/eriklarko/truth-table/src/truthtable"
	"golang.org/x/text/width"
)

type textRenderer struct {
	options
	markdown bool
}

func (r *textRenderer) Render(w io.Writer, table *truthtable.Table) error {
	header := append([]string{}, table.Variables...)
	header = append(header, r.resultHeader(table))
	if r.markdown {
		for i := range header {
			header[i] = strings.ReplaceAll(header[i], "|", `\|`)
		}
	}

	widths := make([]int, len(header))
	for i, cell := range header {
		widths[i] = max(displayWidth(cell), 1)
	}

	out := bufio.NewWriter(w)
	r.writeLine(out, header, widths, false)
	r.writeSeparator(out, widths)

	cells := make([]string, len(header))
	for _, row := range table.Rows {
		for i, value := range row.Values {
			cells[i] = letter(value)
		}
		cells[len(cells)-1] = letter(row.Result)
		r.writeLine(out, cells, widths, r.color && !r.markdown)
	}

	return out.Flush()
}

func (r *textRenderer) writeLine(out *bufio.Writer, cells []string, widths []int, colored bool) {
	if r.markdown {
		out.WriteString("| ")
	} else {
		out.WriteString(" ")
	}

	for i, cell := range cells {
		if i > 0 {
			out.WriteString(" | ")
		}
		if colored {
			out.WriteString(paint(cell))
		} else {
			out.WriteString(cell)
		}
		// no trailing padding on the last plain text column
		if i < len(cells)-1 || r.markdown {
			out.WriteString(strings.Repeat(" ", widths[i]-displayWidth(cell)))
		}
	}

	if r.markdown {
		out.WriteString(" |")
	}
	out.WriteString("\n")
}

func (r *textRenderer) writeSeparator(out *bufio.Writer, widths []int) {
	dashes := make([]string, len(widths))
	for i, w := range widths {
		dashes[i] = strings.Repeat("-", w+2)
	}

	if r.markdown {
		out.WriteString("|" + strings.Join(dashes, "|") + "|\n")
	} else {
		out.WriteString(strings.Join(dashes, "+") + "\n")
	}
}

func letter(value bool) string {
	if value {
		return "T"
	}
	return "F"
}

const (
	green = "\x1b[32m"
	red   = "\x1b[31m"
	reset = "\x1b[0m"
)

func paint(cell string) string {
	if cell == letter(true) {
		return green + cell + reset
	}
	return red + cell + reset
}

// displayWidth counts terminal columns, East Asian wide characters take two
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}
