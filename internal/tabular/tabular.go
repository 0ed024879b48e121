// Package tabular turns raw delimited text into ordered header-mapped rows.
// It has no knowledge of finance fields; semantic mapping happens in the
// normalize package.
//
// The cell splitter is deliberately lenient rather than RFC 4180 compliant:
// a double quote toggles whether commas are literal, and one leading plus one
// trailing quote is stripped per token. Doubled quotes ("") are not unescaped
// and the writer does not re-escape embedded quotes. Known limitation, kept
// so exported files round-trip through the same token rules.
package tabular

import (
	"strings"
)

// Row maps a header name, as written in the header line, to the cell value
// in the same column position. Missing trailing cells map to empty string.
type Row struct {
	Headers []string
	Cells   map[string]string
}

// Get returns the cell under the given header name, or "" when the column
// does not exist.
func (r Row) Get(header string) string {
	return r.Cells[header]
}

// Parse splits text into header-mapped rows. The first line defines column
// names positionally; each later line becomes one Row. Empty input yields no
// rows, and malformed lines never error: short rows are filled with empty
// strings, long rows are truncated to the header width.
func Parse(text string) []Row {
	lines := splitLines(text)
	if len(lines) == 0 {
		return nil
	}

	headers := splitCells(lines[0])

	rows := make([]Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		cells := splitCells(line)
		row := Row{Headers: headers, Cells: make(map[string]string, len(headers))}
		for i, h := range headers {
			v := ""
			if i < len(cells) {
				v = cells[i]
			}
			row.Cells[h] = v
		}
		rows = append(rows, row)
	}
	return rows
}

// splitLines splits on CRLF or LF and drops blank lines.
func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// splitCells splits a line on commas with a quote toggle: inside a quoted
// span commas are literal. Quotes are stripped token-level, one leading and
// one trailing quote per cell.
func splitCells(line string) []string {
	var cells []string
	var cur strings.Builder
	inQuotes := false

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
			cur.WriteRune(ch)
		case ch == ',' && !inQuotes:
			cells = append(cells, finishCell(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(ch)
		}
	}
	cells = append(cells, finishCell(cur.String()))
	return cells
}

// finishCell trims a raw token and removes one leading and one trailing
// double quote if present.
func finishCell(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return strings.TrimSpace(s)
}
