package output

import (
	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ChartSeries is one named line of a chart, aligned with ChartData.Labels.
type ChartSeries struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
}

// ChartData is what the charting surface consumes: one label per month
// (M0..Mn) and any number of parallel series. It is rebuilt from scratch on
// every compute and never patched in place.
type ChartData struct {
	Labels []string      `json:"labels"`
	Series []ChartSeries `json:"series"`
}

// CompoundChart plots balance, cumulative contributions and cumulative interest.
func CompoundChart(result *domain.SimulationResult) ChartData {
	if result == nil {
		return ChartData{}
	}
	labels := make([]string, len(result.Rows))
	for i := range result.Rows {
		labels[i] = "M" + intToString(i)
	}
	return ChartData{
		Labels: labels,
		Series: []ChartSeries{
			{Label: "Montante", Data: toFloats(result.Balances())},
			{Label: "Aportes", Data: toFloats(result.CumulativeContributions())},
			{Label: "Juros", Data: toFloats(result.CumulativeInterest())},
		},
	}
}

// ComparisonChart plots the savings series against the net benchmark series.
func ComparisonChart(result *domain.ComparisonResult) ChartData {
	if result == nil {
		return ChartData{}
	}
	labels := make([]string, len(result.Labels))
	copy(labels, result.Labels)
	return ChartData{
		Labels: labels,
		Series: []ChartSeries{
			{Label: "Poupança", Data: toFloats(result.Savings)},
			{Label: "Selic (líquida)", Data: toFloats(result.BenchmarkNet)},
		},
	}
}

func toFloats(values []decimal.Decimal) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i], _ = v.Float64()
	}
	return out
}
