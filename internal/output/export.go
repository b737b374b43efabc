package output

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/rpgo/growth-calculator/internal/domain"
)

const (
	// ExportSeparator is a semicolon because pt-BR currency uses the comma.
	ExportSeparator = ";"
	// ByteOrderMark prefixes every export so spreadsheets pick UTF-8.
	ByteOrderMark = "\ufeff"

	CompoundExportFile   = "cronograma-juros-compostos.csv"
	ComparisonExportFile = "poupanca-vs-selic.csv"
)

// escapeField quotes a field containing the separator, a quote or a newline,
// doubling any inner quotes.
func escapeField(s string) string {
	if !strings.ContainsAny(s, ExportSeparator+"\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Encode renders rows as the export document: BOM, fields joined by ';',
// rows joined by '\n' with no trailing newline. An empty row becomes an
// empty line.
func Encode(rows [][]string) string {
	var b strings.Builder
	b.WriteString(ByteOrderMark)
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, field := range row {
			if j > 0 {
				b.WriteString(ExportSeparator)
			}
			b.WriteString(escapeField(field))
		}
	}
	return b.String()
}

// Decode parses an export document back into rows. Blank lines, such as the
// separator before the summary, are skipped.
func Decode(text string) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(strings.TrimPrefix(text, ByteOrderMark)))
	r.Comma = ';'
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to decode export: %w", err)
	}
	return rows, nil
}

// CompoundExport builds the month-by-month schedule of a simulation followed
// by its summary rows.
func CompoundExport(result *domain.SimulationResult) [][]string {
	if result == nil {
		return nil
	}
	rows := [][]string{{"Mês", "Aporte", "Juros do mês", "Saldo ao final"}}
	for _, r := range result.Rows {
		if r.Month == 0 {
			continue
		}
		rows = append(rows, []string{
			intToString(r.Month),
			FormatCurrency(r.Contribution),
			FormatCurrency(r.Interest),
			FormatCurrency(r.Balance),
		})
	}
	rows = append(rows,
		[]string{},
		summaryRow("Montante", FormatCurrency(result.FinalBalance)),
		summaryRow("Total Aportado", FormatCurrency(result.TotalContributed)),
		summaryRow("Juros Acumulados", FormatCurrency(result.AccruedInterest)),
	)
	return rows
}

// ComparisonExport lists every month (M0..Mn) with the savings, gross and net
// benchmark balances followed by the three final amounts.
func ComparisonExport(result *domain.ComparisonResult) [][]string {
	if result == nil {
		return nil
	}
	rows := [][]string{{"Mês", "Poupança", "Selic (bruta)", "Selic (líquida)"}}
	for i, label := range result.Labels {
		rows = append(rows, []string{
			label,
			FormatCurrency(result.Savings[i]),
			FormatCurrency(result.BenchmarkGross[i]),
			FormatCurrency(result.BenchmarkNet[i]),
		})
	}
	rows = append(rows,
		[]string{},
		summaryRow("Montante Poupança", FormatCurrency(result.Finals.Savings)),
		summaryRow("Montante Selic (bruta)", FormatCurrency(result.Finals.BenchmarkGross)),
		summaryRow("Montante Selic (líquida)", FormatCurrency(result.Finals.BenchmarkNet)),
	)
	return rows
}

// summaryRow places the value in the last of the four columns.
func summaryRow(label, value string) []string {
	return []string{label, "", "", value}
}
