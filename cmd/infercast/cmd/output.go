package cmd

import (
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer formats large numbers with grouping separators for table output.
var printer = message.NewPrinter(language.English)

// renderTable writes a formatted table to w.
func renderTable(w io.Writer, headers []string, rows [][]string) error {
	table := tablewriter.NewTable(w)

	headerCells := make([]any, len(headers))
	for i, h := range headers {
		headerCells[i] = h
	}
	table.Header(headerCells...)

	for _, row := range rows {
		cells := make([]any, len(row))
		for i, c := range row {
			cells[i] = c
		}
		if err := table.Append(cells...); err != nil {
			return err
		}
	}

	return table.Render()
}

// renderJSON writes indented JSON to w.
func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// render picks JSON or table output based on the --json flag.
func render(v any, headers []string, rows [][]string) error {
	if jsonOutput {
		return renderJSON(os.Stdout, v)
	}
	return renderTable(os.Stdout, headers, rows)
}

// isTerminal reports whether stdout is a terminal.
func isTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}

// formatCount renders a parameter or FLOP count with grouping separators in
// terminals and as a plain number otherwise (easier to pipe).
func formatCount(n float64) string {
	if isTerminal() {
		return printer.Sprintf("%.0f", n)
	}
	return strconv.FormatFloat(n, 'f', 0, 64)
}
