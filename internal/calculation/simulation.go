package calculation

import (
	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// interestPrecision bounds the decimal places kept for each period's interest.
// Without it the digit count grows with every multiplication.
const interestPrecision = 10

// Simulate iterates monthly compounding:
//
//	balance[0] = principal
//	balance[m] = balance[m-1] + balance[m-1]*rate + contribution
//
// Months below one are clamped to one. Signs of rate and contribution are not
// validated. The function is pure.
func Simulate(p domain.SimulationParams) domain.SimulationResult {
	months := domain.ClampMonths(p.Months)
	p.Months = months

	rows := make([]domain.MonthRow, 0, months+1)
	rows = append(rows, domain.MonthRow{
		Month:        0,
		Contribution: decimal.Zero,
		Interest:     decimal.Zero,
		Balance:      p.Principal,
	})

	balance := p.Principal
	for m := 1; m <= months; m++ {
		interest := balance.Mul(p.MonthlyRate).Round(interestPrecision)
		balance = balance.Add(interest).Add(p.Contribution)
		rows = append(rows, domain.MonthRow{
			Month:        m,
			Contribution: p.Contribution,
			Interest:     interest,
			Balance:      balance,
		})
	}

	totalContributed := p.Principal.Add(p.Contribution.Mul(decimal.NewFromInt(int64(months))))
	return domain.SimulationResult{
		Params:           p,
		Rows:             rows,
		FinalBalance:     balance,
		TotalContributed: totalContributed,
		AccruedInterest:  balance.Sub(totalContributed),
	}
}
