package output

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	pdfPageWidth    = 210.0
	pdfMarginLeft   = 15.0
	pdfMarginRight  = 15.0
	pdfMarginTop    = 15.0
	pdfMarginBottom = 20.0
	pdfContentWidth = pdfPageWidth - pdfMarginLeft - pdfMarginRight
)

// PDFFormatter lays the report out as an A4 document: KPIs, the monthly
// table and the assumptions.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string      { return "pdf" }
func (p PDFFormatter) Extension() string { return "pdf" }

func (p PDFFormatter) Format(report *Report) ([]byte, error) {
	if report.Empty() {
		return nil, ErrEmptyReport
	}
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	pdf.SetAutoPageBreak(true, pdfMarginBottom)
	// Core fonts are cp1252; translate accents, R$ and bullets.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 18)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(pdfContentWidth, 10, tr(report.Title), "", 1, "L", false, 0, "")

	if report.Kind == ReportComparison && report.Comparison != nil {
		meta := ComparisonMeta(report.Comparison.Params, report.Comparison)
		pdf.SetFont("Arial", "I", 10)
		pdf.SetTextColor(80, 80, 80)
		pdf.CellFormat(pdfContentWidth, 6, tr(meta.Chip+"  •  "+meta.Period), "", 1, "L", false, 0, "")
		pdf.CellFormat(pdfContentWidth, 6, tr(meta.Rates), "", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(pdfContentWidth, 8, tr("Resumo"), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(50, 50, 50)
	pdf.SetFillColor(245, 247, 250)
	pdf.SetDrawColor(200, 200, 200)
	for _, k := range report.KPIs() {
		pdf.CellFormat(pdfContentWidth*0.6, 7, tr(k.Label), "1", 0, "L", true, 0, "")
		pdf.CellFormat(pdfContentWidth*0.4, 7, tr(k.Value), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(pdfContentWidth, 8, tr("Detalhe mensal"), "", 1, "L", false, 0, "")

	columns := report.Columns()
	colWidth := pdfContentWidth / float64(len(columns))
	header := func() {
		pdf.SetFont("Arial", "B", 9)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFillColor(0, 51, 102)
		for _, c := range columns {
			pdf.CellFormat(colWidth, 7, tr(c), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(50, 50, 50)
	}
	header()
	rows := report.TableRows()
	if len(rows) == 0 {
		pdf.CellFormat(pdfContentWidth, 6, tr(PlaceholderCell), "1", 1, "C", false, 0, "")
	}
	_, pageHeight := pdf.GetPageSize()
	for _, row := range rows {
		if pdf.GetY()+6 > pageHeight-pdfMarginBottom {
			pdf.AddPage()
			header()
		}
		for i, cell := range FormatRow(row) {
			align := "R"
			if i == 0 {
				align = "C"
			}
			pdf.CellFormat(colWidth, 6, tr(cell), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(pdfContentWidth, 8, tr("Premissas"), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(50, 50, 50)
	for _, a := range report.Assumptions() {
		pdf.MultiCell(pdfContentWidth, 5, tr("• "+a), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
