package output

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"console", "csv", "html", "json", "markdown", "pdf"}, AvailableFormatterNames())
	assert.Contains(t, AvailableFormatAliases(), "md")

	assert.Equal(t, "markdown", NormalizeFormatName(" MD "))
	assert.Equal(t, "csv", NormalizeFormatName("planilha"))
	require.NotNil(t, GetFormatterByName("Terminal"))
	assert.Equal(t, "console", GetFormatterByName("Terminal").Name())
	assert.Nil(t, GetFormatterByName("xlsx"))

	_, err := LookupFormatter("xlsx")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
	assert.Contains(t, err.Error(), "unsupported report format")
}

func TestFormattersRejectEmptyReport(t *testing.T) {
	for _, name := range AvailableFormatterNames() {
		_, err := GetFormatterByName(name).Format(&Report{Kind: ReportCompound})
		assert.ErrorIs(t, err, ErrEmptyReport, name)
	}
	_, err := Render(nil, "csv")
	assert.ErrorIs(t, err, ErrEmptyReport)
}

func TestCSVFormatter(t *testing.T) {
	out, err := Render(NewCompoundReport(sampleSimulation(t)), "csv")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "\ufeffMês;Aporte;Juros do mês;Saldo ao final"))
	rows, err := Decode(string(out))
	require.NoError(t, err)
	assert.Equal(t, []string{"Juros Acumulados", "", "", "R$ 33,31"}, rows[len(rows)-1])
}

func TestMarkdownFormatter(t *testing.T) {
	out, err := MarkdownFormatter{}.Format(NewCompoundReport(sampleSimulation(t)))
	require.NoError(t, err)
	md := string(out)
	assert.True(t, strings.HasPrefix(md, "# Juros Compostos\n"))
	assert.Contains(t, md, "| Montante | R$ 1.333,31 |")
	assert.Contains(t, md, "| Mês | Aporte | Juros do mês | Saldo ao final |")
	assert.Contains(t, md, "| 1 | R$ 100,00 | R$ 10,00 | R$ 1.110,00 |")
	assert.NotContains(t, md, "Melhor resultado")

	out, err = MarkdownFormatter{}.Format(NewComparisonReport(sampleComparison(t, 12, true)))
	require.NoError(t, err)
	md = string(out)
	assert.Contains(t, md, "_IR regressivo — 181–360 dias (20%)_")
	assert.Contains(t, md, "| Mês | Poupança | Selic (líquida) |")
	assert.Contains(t, md, "**Melhor resultado:** Selic (líquida)")
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(NewComparisonReport(sampleComparison(t, 6, false)))
	require.NoError(t, err)
	text := string(out)
	assert.Contains(t, text, "Poupança x Selic")
	assert.Contains(t, text, "Montante Poupança")
}

func TestHTMLFormatter(t *testing.T) {
	out, err := HTMLFormatter{}.Format(NewCompoundReport(sampleSimulation(t)))
	require.NoError(t, err)
	page := string(out)
	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Contains(t, page, "<title>Juros Compostos</title>")
	assert.Contains(t, page, "<table>")
	assert.Contains(t, page, "R$ 1.333,31")
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(NewComparisonReport(sampleComparison(t, 3, true)))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Equal(t, "poupanca-selic", doc["kind"])
	assert.Len(t, doc["rows"], 3)
	assert.NotNil(t, doc["meta"])
	assert.NotNil(t, doc["recommendation"])
	chart := doc["chart"].(map[string]any)
	assert.Len(t, chart["labels"], 4)
}

func TestPDFFormatter(t *testing.T) {
	out, err := PDFFormatter{}.Format(NewComparisonReport(sampleComparison(t, 60, true)))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF-"))
}

func TestWriteFormatted(t *testing.T) {
	old := nowFunc
	nowFunc = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	t.Cleanup(func() { nowFunc = old })

	dir := t.TempDir()
	report := NewCompoundReport(sampleSimulation(t))

	name, err := GenerateReport(report, "csv", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, CompoundExportFile), name)

	name, err = GenerateReport(report, "json", filepath.Join(dir, "nested"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "nested", "juros-compostos_20250102_030405.json"), name)
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))

	_, err = GenerateReport(report, "docx", dir)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
