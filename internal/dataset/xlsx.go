package dataset

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/finboard/finboard-cli/internal/tabular"
)

// readXLSX converts the first sheet of a workbook into header-mapped rows:
// row 0 is the header, later rows zip against it positionally with
// empty-string fill, same as the delimited-text parser.
func readXLSX(path string) ([]tabular.Row, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "dataset: open xlsx")
	}
	if len(f.Sheets) == 0 {
		return nil, eris.New("dataset: xlsx has no sheets")
	}
	sheet := f.Sheets[0]
	if len(sheet.Rows) == 0 {
		return nil, nil
	}

	headers := rowToStrings(sheet.Rows[0])

	rows := make([]tabular.Row, 0, len(sheet.Rows)-1)
	for _, r := range sheet.Rows[1:] {
		cells := rowToStrings(r)
		row := tabular.Row{Headers: headers, Cells: make(map[string]string, len(headers))}
		for i, h := range headers {
			v := ""
			if i < len(cells) {
				v = cells[i]
			}
			row.Cells[h] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for i, cell := range row.Cells {
		cells[i] = cell.String()
	}
	return cells
}
