package output

import (
	"bytes"
	"fmt"
	"strings"
)

// MarkdownFormatter renders a report as GitHub-flavoured markdown. The console
// and HTML formatters build on it.
type MarkdownFormatter struct{}

func (m MarkdownFormatter) Name() string      { return "markdown" }
func (m MarkdownFormatter) Extension() string { return "md" }

func (m MarkdownFormatter) Format(report *Report) ([]byte, error) {
	if report.Empty() {
		return nil, ErrEmptyReport
	}
	return []byte(reportMarkdown(report)), nil
}

func reportMarkdown(report *Report) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n\n", report.Title)

	if report.Kind == ReportComparison && report.Comparison != nil {
		meta := ComparisonMeta(report.Comparison.Params, report.Comparison)
		fmt.Fprintf(&buf, "_%s_ · %s · %s\n\n", meta.Chip, meta.Period, meta.Rates)
	}

	fmt.Fprintln(&buf, "## Resumo")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "| Indicador | Valor |")
	fmt.Fprintln(&buf, "|---|---:|")
	for _, k := range report.KPIs() {
		fmt.Fprintf(&buf, "| %s | %s |\n", mdEscape(k.Label), mdEscape(k.Value))
	}
	fmt.Fprintln(&buf)

	if rec := report.Recommendation(); rec != nil {
		fmt.Fprintf(&buf, "**Melhor resultado:** %s (%s, %s)\n\n",
			rec.Winner, FormatCurrency(rec.Difference), FormatPercentage(rec.PercentageChange))
	}

	fmt.Fprintln(&buf, "## Detalhe mensal")
	fmt.Fprintln(&buf)
	columns := report.Columns()
	fmt.Fprintf(&buf, "| %s |\n", strings.Join(columns, " | "))
	aligns := make([]string, len(columns))
	for i := range aligns {
		aligns[i] = "---:"
	}
	fmt.Fprintf(&buf, "|%s|\n", strings.Join(aligns, "|"))
	rows := report.TableRows()
	if len(rows) == 0 {
		cells := make([]string, len(columns))
		for i := range cells {
			cells[i] = PlaceholderCell
		}
		fmt.Fprintf(&buf, "| %s |\n", strings.Join(cells, " | "))
	}
	for _, row := range rows {
		fmt.Fprintf(&buf, "| %s |\n", strings.Join(FormatRow(row), " | "))
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "## Premissas")
	fmt.Fprintln(&buf)
	for _, a := range report.Assumptions() {
		fmt.Fprintf(&buf, "- %s\n", mdEscape(a))
	}
	return buf.String()
}

// mdEscape keeps table cells from breaking on a pipe.
func mdEscape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
