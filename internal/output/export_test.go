package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	rows := [][]string{
		{"a;b", `say "hi"`, "plain"},
		{},
		{"line\nbreak"},
	}
	got := Encode(rows)
	want := "\ufeff" + `"a;b";"say ""hi""";plain` + "\n\n" + "\"line\nbreak\""
	assert.Equal(t, want, got)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	rows := [][]string{
		{"Mês", "Valor"},
		{"semi;colon", `quote "inside"`},
		{"R$ 1.234,56", "multi\nline"},
	}
	decoded, err := Decode(Encode(rows))
	require.NoError(t, err)
	assert.Equal(t, rows, decoded)
}

func TestDecodeRejectsBrokenQuotes(t *testing.T) {
	_, err := Decode("\ufeff\"unterminated;x")
	assert.Error(t, err)
}

func TestCompoundExport(t *testing.T) {
	rows := CompoundExport(sampleSimulation(t))
	require.Len(t, rows, 1+3+1+3)

	assert.Equal(t, []string{"Mês", "Aporte", "Juros do mês", "Saldo ao final"}, rows[0])
	assert.Equal(t, []string{"1", "R$ 100,00", "R$ 10,00", "R$ 1.110,00"}, rows[1])
	assert.Equal(t, []string{"3", "R$ 100,00", "R$ 12,21", "R$ 1.333,31"}, rows[3])
	assert.Empty(t, rows[4])
	assert.Equal(t, []string{"Montante", "", "", "R$ 1.333,31"}, rows[5])
	assert.Equal(t, []string{"Total Aportado", "", "", "R$ 1.300,00"}, rows[6])
	assert.Equal(t, []string{"Juros Acumulados", "", "", "R$ 33,31"}, rows[7])

	doc := Encode(rows)
	assert.True(t, strings.HasPrefix(doc, "\ufeffMês;Aporte;Juros do mês;Saldo ao final\n1;"))
	assert.Contains(t, doc, "\n\nMontante;;;R$ 1.333,31")
	assert.False(t, strings.HasSuffix(doc, "\n"))
}

func TestComparisonExport(t *testing.T) {
	result := sampleComparison(t, 12, true)
	rows := ComparisonExport(result)
	require.Len(t, rows, 1+13+1+3)

	assert.Equal(t, []string{"Mês", "Poupança", "Selic (bruta)", "Selic (líquida)"}, rows[0])
	assert.Equal(t, []string{"M0", "R$ 10.000,00", "R$ 10.000,00", "R$ 10.000,00"}, rows[1])
	assert.Equal(t, "M12", rows[13][0])
	assert.Empty(t, rows[14])
	assert.Equal(t, []string{"Montante Poupança", "", "", FormatCurrency(result.Finals.Savings)}, rows[15])
	assert.Equal(t, "Montante Selic (bruta)", rows[16][0])
	assert.Equal(t, []string{"Montante Selic (líquida)", "", "", FormatCurrency(result.Finals.BenchmarkNet)}, rows[17])

	decoded, err := Decode(Encode(rows))
	require.NoError(t, err)
	// the blank separator line is not a record
	assert.Len(t, decoded, len(rows)-1)
	assert.Equal(t, rows[15], decoded[14])
}

func TestExportNilResult(t *testing.T) {
	assert.Nil(t, CompoundExport(nil))
	assert.Nil(t, ComparisonExport(nil))
}
