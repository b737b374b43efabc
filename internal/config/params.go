package config

import (
	"strings"

	"github.com/rpgo/growth-calculator/internal/calculation"
	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/rpgo/growth-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Field is a raw form value. It accepts any YAML scalar so run files can
// write amounts as numbers or as pt-BR strings ("1.234,56").
type Field string

// UnmarshalYAML keeps the scalar text as is.
func (f *Field) UnmarshalYAML(value *yaml.Node) error {
	*f = Field(value.Value)
	return nil
}

// Blank reports whether the field was left empty.
func (f Field) Blank() bool { return strings.TrimSpace(string(f)) == "" }

// ParseAmount reads a number typed by a person. It trims blanks, a leading
// "R$" and a trailing "%", accepts the comma as decimal separator (with dots
// as thousands separators) and returns zero for anything unparsable.
func ParseAmount(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	s = strings.TrimSpace(strings.TrimPrefix(s, "R$"))
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	if s == "" {
		return decimal.Zero
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseHorizon converts a horizon in the given unit to whole months. Invalid
// or non-positive input counts as one unit; the result is at least 1.
func ParseHorizon(raw string, unit dateutil.HorizonUnit) int {
	period := ParseAmount(raw).InexactFloat64()
	return dateutil.MonthsFromHorizon(period, unit)
}

// CompoundInput is the compound calculator form. The rate is a monthly percentage.
type CompoundInput struct {
	Principal    Field `yaml:"principal"`
	Contribution Field `yaml:"contribution"`
	MonthlyRate  Field `yaml:"monthly_rate"`
	Horizon      Field `yaml:"horizon"`
	Unit         Field `yaml:"unit"`
}

// Params converts the form into simulation inputs.
func (in CompoundInput) Params() domain.SimulationParams {
	return domain.SimulationParams{
		Principal:    ParseAmount(string(in.Principal)),
		Contribution: ParseAmount(string(in.Contribution)),
		MonthlyRate:  ParseAmount(string(in.MonthlyRate)).Div(decimal.NewFromInt(100)),
		Months:       ParseHorizon(string(in.Horizon), dateutil.ParseHorizonUnit(string(in.Unit))),
	}
}

// ComparisonInput is the savings vs. benchmark form. Rates are annual
// percentages. A blank savings rate is derived from the benchmark.
type ComparisonInput struct {
	Principal       Field `yaml:"principal"`
	Contribution    Field `yaml:"contribution"`
	BenchmarkAnnual Field `yaml:"benchmark_annual"`
	SavingsAnnual   Field `yaml:"savings_annual"`
	ReferenceAnnual Field `yaml:"reference_annual"`
	Horizon         Field `yaml:"horizon"`
	Unit            Field `yaml:"unit"`
	TaxEnabled      bool  `yaml:"tax_enabled"`
}

// AutoSavingsRate is the derived savings rate shown while the field is in auto mode.
func AutoSavingsRate(benchmark, reference decimal.Decimal) decimal.Decimal {
	return calculation.DerivedSavingsRate(benchmark, reference).Round(2)
}

// Params converts the form into comparison inputs.
func (in ComparisonInput) Params() domain.ComparisonParams {
	benchmark := ParseAmount(string(in.BenchmarkAnnual))
	reference := ParseAmount(string(in.ReferenceAnnual))
	savings := AutoSavingsRate(benchmark, reference)
	if !in.SavingsAnnual.Blank() {
		savings = ParseAmount(string(in.SavingsAnnual))
	}
	return domain.ComparisonParams{
		Principal:       ParseAmount(string(in.Principal)),
		Contribution:    ParseAmount(string(in.Contribution)),
		BenchmarkAnnual: benchmark,
		SavingsAnnual:   savings,
		ReferenceAnnual: reference,
		Months:          ParseHorizon(string(in.Horizon), dateutil.ParseHorizonUnit(string(in.Unit))),
		TaxEnabled:      in.TaxEnabled,
	}
}
