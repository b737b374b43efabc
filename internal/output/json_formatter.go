package output

import (
	"encoding/json"
)

// JSONFormatter outputs the report as indented JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

type jsonReport struct {
	Kind           ReportKind      `json:"kind"`
	Title          string          `json:"title"`
	KPIs           []KPI           `json:"kpis"`
	Columns        []string        `json:"columns"`
	Rows           [][]string      `json:"rows"`
	Chart          ChartData       `json:"chart"`
	Assumptions    []string        `json:"assumptions"`
	Recommendation *Recommendation `json:"recommendation,omitempty"`
	Meta           *TableMeta      `json:"meta,omitempty"`
	Result         any             `json:"result"`
}

func (j JSONFormatter) Format(report *Report) ([]byte, error) {
	if report.Empty() {
		return nil, ErrEmptyReport
	}
	doc := jsonReport{
		Kind:           report.Kind,
		Title:          report.Title,
		KPIs:           report.KPIs(),
		Columns:        report.Columns(),
		Chart:          report.Chart(),
		Assumptions:    report.Assumptions(),
		Recommendation: report.Recommendation(),
	}
	for _, row := range report.TableRows() {
		doc.Rows = append(doc.Rows, FormatRow(row))
	}
	if report.Kind == ReportComparison {
		meta := ComparisonMeta(report.Comparison.Params, report.Comparison)
		doc.Meta = &meta
		doc.Result = report.Comparison
	} else {
		doc.Result = report.Compound
	}
	return json.MarshalIndent(doc, "", "  ")
}
