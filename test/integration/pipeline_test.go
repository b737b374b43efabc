package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rpgo/growth-calculator/internal/config"
	"github.com/rpgo/growth-calculator/internal/output"
	"github.com/rpgo/growth-calculator/internal/store"
	"github.com/rpgo/growth-calculator/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const compoundRun = `calculator: juros-compostos
compound:
  principal: "R$ 1.000,00"
  contribution: 100
  monthly_rate: "1%"
  horizon: 1
  unit: anos
output:
  format: csv
`

const comparisonRun = `calculator: poupanca-selic
comparison:
  principal: 10000
  contribution: 500
  benchmark_annual: "13,75"
  reference_annual: "0,1"
  horizon: 25
  tax_enabled: true
output:
  format: markdown
  per_page: 10
`

func fileDeps(t *testing.T, dir string) view.Deps {
	t.Helper()
	kv, err := store.NewFileKV(dir)
	require.NoError(t, err)
	return view.Deps{Scenarios: store.NewScenarioStore(kv, store.CompoundScenariosKey)}
}

func TestCompoundPipelineWithFileStore(t *testing.T) {
	ctx := context.Background()
	storeDir := t.TempDir()

	run, err := config.NewInputParser().Parse([]byte(compoundRun))
	require.NoError(t, err)
	require.Equal(t, config.CalculatorCompound, run.Calculator)

	app := view.NewAppState(fileDeps(t, storeDir))
	calc, err := app.Route(ctx, "#/"+run.Calculator)
	require.NoError(t, err)
	compound := calc.(*view.CompoundController)

	compound.SetInput(*run.Compound)
	assert.Equal(t, view.Stale, compound.State())
	result, err := compound.Compute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, result.Months())

	_, err = compound.SaveScenario(ctx, "Reserva")
	require.NoError(t, err)

	// a second session over the same directory sees the saved scenario
	reloaded := view.NewAppState(fileDeps(t, storeDir))
	calc, err = reloaded.Open(ctx, view.KindCompound)
	require.NoError(t, err)
	again := calc.(*view.CompoundController)
	require.Len(t, again.Scenarios(), 1)
	saved := again.Scenarios()[0]
	assert.Equal(t, "Reserva", saved.Name)

	_, err = again.ApplyScenario(ctx, saved.ID)
	require.NoError(t, err)
	doc, name, err := again.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, output.CompoundExportFile, name)

	rows, err := output.Decode(doc)
	require.NoError(t, err)
	require.Len(t, rows, 1+12+3)
	assert.Equal(t, []string{"1", "R$ 100,00", "R$ 10,00", "R$ 1.110,00"}, rows[1])
	assert.Equal(t, "Total Aportado", rows[14][0])
	assert.Equal(t, "R$ 2.200,00", rows[14][3])

	outDir := t.TempDir()
	path, err := output.GenerateReport(again.Report(), run.Output.Format, outDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, output.CompoundExportFile), path)
	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, doc, string(written))
}

func TestComparisonPipelineAllFormats(t *testing.T) {
	ctx := context.Background()

	run, err := config.NewInputParser().Parse([]byte(comparisonRun))
	require.NoError(t, err)

	app := view.NewAppState(view.Deps{})
	calc, err := app.Open(ctx, view.KindComparison)
	require.NoError(t, err)
	cmp := calc.(*view.ComparisonController)
	cmp.SetInput(*run.Comparison)
	assert.True(t, cmp.SavingsRateAuto())

	result, err := cmp.Compute(ctx)
	require.NoError(t, err)
	assert.True(t, result.Finals.BenchmarkNet.LessThan(result.Finals.BenchmarkGross))

	page := cmp.SetPerPage("10")
	assert.Equal(t, 3, page.TotalPages)

	outDir := t.TempDir()
	for _, format := range output.AvailableFormatterNames() {
		path, err := output.GenerateReport(cmp.Report(), format, outDir)
		require.NoError(t, err, format)
		info, err := os.Stat(path)
		require.NoError(t, err, format)
		assert.Positive(t, info.Size(), format)
	}

	data, err := output.Render(cmp.Report(), run.Output.Format)
	require.NoError(t, err)
	assert.Contains(t, string(data), "IR regressivo — >720 dias (15%)")
}
