package tabular

import (
	"strconv"
	"strings"

	"github.com/finboard/finboard-cli/internal/model"
)

// WriteCSV renders periods as comma-delimited text in canonical column
// order. Labels containing a comma or quote are wrapped in double quotes;
// embedded quotes are not escaped, matching the parser's token-level rules.
func WriteCSV(periods []model.Period) string {
	var b strings.Builder
	b.WriteString(strings.Join(model.Columns, ","))
	b.WriteByte('\n')

	for _, p := range periods {
		cells := make([]string, 0, len(model.Columns))
		cells = append(cells, quoteIfNeeded(p.Period))
		for _, f := range model.NumericFields {
			cells = append(cells, formatNumber(p.Value(f)))
		}
		b.WriteString(strings.Join(cells, ","))
		b.WriteByte('\n')
	}
	return b.String()
}

func quoteIfNeeded(s string) string {
	if strings.ContainsAny(s, `,"`) {
		return `"` + s + `"`
	}
	return s
}

// formatNumber renders a float with the shortest exact representation, so
// integral values stay integral ("720", not "720.000000").
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
