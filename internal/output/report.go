package output

import (
	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ReportKind identifies which calculator produced a report.
type ReportKind string

const (
	ReportCompound   ReportKind = "juros-compostos"
	ReportComparison ReportKind = "poupanca-selic"
)

// Report is the formatter input: exactly one of Compound or Comparison is set.
type Report struct {
	Kind       ReportKind
	Title      string
	Compound   *domain.SimulationResult
	Comparison *domain.ComparisonResult
}

// NewCompoundReport wraps a compound simulation result.
func NewCompoundReport(result *domain.SimulationResult) *Report {
	return &Report{Kind: ReportCompound, Title: "Juros Compostos", Compound: result}
}

// NewComparisonReport wraps a savings vs. benchmark comparison.
func NewComparisonReport(result *domain.ComparisonResult) *Report {
	return &Report{Kind: ReportComparison, Title: "Poupança x Selic", Comparison: result}
}

// Empty reports whether there is no result to render.
func (r *Report) Empty() bool {
	return r == nil || (r.Compound == nil && r.Comparison == nil)
}

// FileName is the export file name of the report's calculator.
func (r *Report) FileName() string {
	if r.Kind == ReportComparison {
		return ComparisonExportFile
	}
	return CompoundExportFile
}

// ExportRows returns the rows of the delimited export document.
func (r *Report) ExportRows() [][]string {
	switch r.Kind {
	case ReportComparison:
		return ComparisonExport(r.Comparison)
	default:
		return CompoundExport(r.Compound)
	}
}

// KPIs returns the headline cards.
func (r *Report) KPIs() []KPI {
	switch {
	case r.Kind == ReportComparison && r.Comparison != nil:
		return ComparisonKPIs(r.Comparison.Finals)
	case r.Compound != nil:
		return CompoundKPIs(Summarize(r.Compound))
	}
	return nil
}

// Columns returns the header of the tabular view.
func (r *Report) Columns() []string {
	if r.Kind == ReportComparison {
		return TableHeader(r.Comparison != nil && r.Comparison.Params.TaxEnabled)
	}
	return []string{"Mês", "Aporte", "Juros do mês", "Saldo ao final"}
}

// TableRows returns months 1..N of the tabular view.
func (r *Report) TableRows() []TableRow {
	switch {
	case r.Kind == ReportComparison && r.Comparison != nil:
		return BuildRows(r.Comparison.Savings, r.Comparison.DisplayedBenchmark())
	case r.Compound != nil:
		n := len(r.Compound.Rows)
		contributions := make([]decimal.Decimal, n)
		interest := make([]decimal.Decimal, n)
		for i, row := range r.Compound.Rows {
			contributions[i] = row.Contribution
			interest[i] = row.Interest
		}
		return BuildRows(contributions, interest, r.Compound.Balances())
	}
	return nil
}

// Chart returns the series for the charting surface.
func (r *Report) Chart() ChartData {
	if r.Kind == ReportComparison {
		return ComparisonChart(r.Comparison)
	}
	return CompoundChart(r.Compound)
}

// Assumptions returns the modelling notes for the report inputs.
func (r *Report) Assumptions() []string {
	switch {
	case r.Kind == ReportComparison && r.Comparison != nil:
		return ComparisonAssumptions(r.Comparison.Params)
	case r.Compound != nil:
		return CompoundAssumptions(r.Compound.Params)
	}
	return DefaultAssumptions
}

// Recommendation is only meaningful for comparisons.
func (r *Report) Recommendation() *Recommendation {
	if r.Kind != ReportComparison || r.Comparison == nil {
		return nil
	}
	rec := AnalyzeComparison(r.Comparison)
	return &rec
}
