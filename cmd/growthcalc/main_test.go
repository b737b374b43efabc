package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/growth-calculator/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd(&out, &errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func useFileStore(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("GROWTHCALC_STORE", "file")
	t.Setenv("GROWTHCALC_STORE_DIR", dir)
	return dir
}

func TestCompoundCSV(t *testing.T) {
	out, err := run(t, "compound", "--principal", "1000", "--contribution", "100", "--rate", "1", "--horizon", "12", "--format", "csv")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, output.ByteOrderMark+"Mês;Aporte;Juros do mês;Saldo ao final"))

	rows, err := output.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "R$ 100,00", "R$ 10,00", "R$ 1.110,00"}, rows[1])
	assert.Equal(t, "Montante", rows[13][0])
}

func TestCompoundPage(t *testing.T) {
	out, err := run(t, "compound", "--principal", "1000", "--rate", "1", "--horizon", "1", "--unit", "anos", "--per-page", "5", "--page", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "Página 3 de 3")
	assert.Contains(t, out, "Saldo")
}

func TestCompareMarkdown(t *testing.T) {
	out, err := run(t, "compare", "--principal", "10000", "--contribution", "500", "--selic", "13,75", "--tr", "0,1",
		"--horizon", "2", "--unit", "anos", "--tax", "--format", "md")
	require.NoError(t, err)
	assert.Contains(t, out, "# Poupança x Selic")
	assert.Contains(t, out, "IR regressivo — 361–720 dias (17,5%)")
	assert.Contains(t, out, "Poup 6,27%")
	assert.Contains(t, out, "Selic (líquida)")
}

func TestCompareCopySummary(t *testing.T) {
	out, err := run(t, "compare", "--selic", "10", "--horizon", "6", "--copy-summary")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Detalhe mensal\nIR desativado\nPeríodo: 6 meses\n"))
	assert.Contains(t, out, "Montantes — Poup:")
}

func TestCompareRunFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`calculator: comparison
comparison:
  principal: "1.000,00"
  contribution: 100
  benchmark_annual: 8
  reference_annual: 0
  horizon: 3
output:
  format: json
`), 0o644))

	out, err := run(t, "compare", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"kind": "poupanca-selic"`)

	_, err = run(t, "compound", "--config", path)
	assert.ErrorContains(t, err, "not juros-compostos")
}

func TestWriteReportToDirectory(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "compound", "--principal", "500", "--rate", "0,5", "--format", "planilha", "--out", dir)
	require.NoError(t, err)
	assert.Contains(t, out, output.CompoundExportFile)
	_, err = os.Stat(filepath.Join(dir, output.CompoundExportFile))
	assert.NoError(t, err)
}

func TestUnknownFormat(t *testing.T) {
	_, err := run(t, "compound", "--format", "docx")
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)
}

func TestScenarioLifecycle(t *testing.T) {
	useFileStore(t)

	out, err := run(t, "scenario", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Nenhum cenário salvo.")

	for _, name := range []string{"a", "b", "c"} {
		out, err = run(t, "scenario", "save", name, "--principal", "1000", "--contribution", "100", "--rate", "1")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "saved "+name+" ("))
	}

	_, err = run(t, "scenario", "save", "  ")
	assert.Error(t, err)

	out, err = run(t, "scenario", "delete", "1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "deleted b ("))

	out, err = run(t, "scenario", "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "a: Inicial R$ 1.000,00 • Aporte R$ 100,00 • Taxa 1,000% a.m. • 12 meses")
	assert.Contains(t, lines[1], "c: ")

	out, err = run(t, "scenario", "apply", "0", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "R$ 1.110,00")

	_, err = run(t, "scenario", "delete", "7")
	assert.Error(t, err)
}

func TestFormats(t *testing.T) {
	out, err := run(t, "formats")
	require.NoError(t, err)
	for _, name := range output.AvailableFormatterNames() {
		assert.Contains(t, out, "  "+name+"\n")
	}
	assert.Contains(t, out, "planilha -> csv")
}
