package domain

import (
	"github.com/shopspring/decimal"
)

// Scenario is a named, persisted snapshot of calculator inputs.
// MonthlyRate is stored as a fraction; CreatedAt is epoch milliseconds.
type Scenario struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Principal    decimal.Decimal `json:"principal"`
	Contribution decimal.Decimal `json:"contribution"`
	MonthlyRate  decimal.Decimal `json:"monthlyRate"`
	Months       int             `json:"months"`
	CreatedAt    int64           `json:"createdAt"`
}

// Params converts the scenario back into simulation inputs.
func (s Scenario) Params() SimulationParams {
	return SimulationParams{
		Principal:    s.Principal,
		Contribution: s.Contribution,
		MonthlyRate:  s.MonthlyRate,
		Months:       ClampMonths(s.Months),
	}
}

// ScenarioFromParams captures simulation inputs under a name.
func ScenarioFromParams(name string, p SimulationParams) Scenario {
	return Scenario{
		Name:         name,
		Principal:    p.Principal,
		Contribution: p.Contribution,
		MonthlyRate:  p.MonthlyRate,
		Months:       p.Months,
	}
}
