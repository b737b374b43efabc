package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	testConfig := "calculator: poupanca-selic\n" +
		"comparison:\n" +
		"  principal: 10000\n" +
		"  contribution: \"500,00\"\n" +
		"  benchmark_annual: 13.75\n" +
		"  reference_annual: 0.1\n" +
		"  horizon: 2\n" +
		"  unit: anos\n" +
		"  tax_enabled: true\n" +
		"output:\n" +
		"  format: csv\n" +
		"  dir: out\n"

	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o644))

	run, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, CalculatorComparison, run.Calculator)
	require.NotNil(t, run.Comparison)
	assert.Equal(t, "csv", run.Output.Format)
	assert.Equal(t, "out", run.Output.Dir)

	p := run.Comparison.Params()
	assert.True(t, p.Principal.Equal(decimal.NewFromInt(10000)))
	assert.True(t, p.Contribution.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, 24, p.Months)
	assert.True(t, p.TaxEnabled)
	// blank savings rate is derived from the high-benchmark regime: 6.17 + 0.1
	assert.Equal(t, "6.27", p.SavingsAnnual.StringFixed(2))
}

func TestLoadFromFile_Compound(t *testing.T) {
	testConfig := "calculator: compound\n" +
		"compound:\n" +
		"  principal: 1000\n" +
		"  contribution: 100\n" +
		"  monthly_rate: 1\n" +
		"  horizon: 12\n"

	run, err := NewInputParser().Parse([]byte(testConfig))
	require.NoError(t, err)
	assert.Equal(t, CalculatorCompound, run.Calculator)
	assert.Equal(t, "console", run.Output.Format)

	p := run.Compound.Params()
	assert.True(t, p.MonthlyRate.Equal(decimal.NewFromFloat(0.01)))
	assert.Equal(t, 12, p.Months)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	_, err := NewInputParser().LoadFromFile("nonexistent.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	_, err := NewInputParser().Parse([]byte("calculator: [unclosed"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidateRun(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"missing calculator", "compound: {}\n", "calculator is required"},
		{"unknown calculator", "calculator: mortgage\n", "unknown calculator"},
		{"missing section", "calculator: juros-compostos\n", "requires a compound section"},
		{"missing comparison", "calculator: compare\ncompound: {}\n", "requires a comparison section"},
		{"negative page size", "calculator: juros\ncompound: {}\noutput:\n  per_page: -1\n", "per_page cannot be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInputParser().Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNormalizeCalculator(t *testing.T) {
	for in, want := range map[string]string{
		"juros-compostos": CalculatorCompound,
		" Compound ":      CalculatorCompound,
		"poupanca-selic":  CalculatorComparison,
		"COMPARE":         CalculatorComparison,
	} {
		got, err := NormalizeCalculator(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
