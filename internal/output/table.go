package output

import (
	"github.com/shopspring/decimal"
)

// TableRow is one month of the tabular view with one value per series.
type TableRow struct {
	Month  int               `json:"month"`
	Values []decimal.Decimal `json:"values"`
}

// BuildRows zips parallel series (indexed by month 0..N) into table rows for
// months 1..N. Month 0, the starting balance, is not listed. Series of
// different length are cut to the shortest.
func BuildRows(series ...[]decimal.Decimal) []TableRow {
	if len(series) == 0 {
		return nil
	}
	n := len(series[0])
	for _, s := range series[1:] {
		if len(s) < n {
			n = len(s)
		}
	}
	if n <= 1 {
		return nil
	}
	rows := make([]TableRow, 0, n-1)
	for m := 1; m < n; m++ {
		values := make([]decimal.Decimal, len(series))
		for i, s := range series {
			values[i] = s[m]
		}
		rows = append(rows, TableRow{Month: m, Values: values})
	}
	return rows
}

// FormatRow renders a table row as strings: month number then currency cells.
func FormatRow(row TableRow) []string {
	cells := make([]string, 0, len(row.Values)+1)
	cells = append(cells, intToString(row.Month))
	for _, v := range row.Values {
		cells = append(cells, FormatCurrency(v))
	}
	return cells
}
