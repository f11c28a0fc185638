package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/eriklarko/truth-table/src/truthtable"
)

type csvRenderer struct {
	options
}

func (r *csvRenderer) Render(w io.Writer, table *truthtable.Table) error {
	writer := csv.NewWriter(w)

	header := append([]string{}, table.Variables...)
	header = append(header, r.resultHeader(table))
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header %v: %w", header, err)
	}

	record := make([]string, len(header))
	for i, row := range table.Rows {
		for k, value := range row.Values {
			record[k] = strconv.FormatBool(value)
		}
		record[len(record)-1] = strconv.FormatBool(row.Result)

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
