package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// record is the persisted shape of a scenario. Amounts are JSON numbers.
type record struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Principal    json.Number `json:"principal"`
	Contribution json.Number `json:"contribution"`
	MonthlyRate  json.Number `json:"monthlyRate"`
	Months       int         `json:"months"`
	CreatedAt    int64       `json:"createdAt"`
}

// looseRecord accepts any value for the numeric fields, plus the short keys
// (P, A, i, n) written by the first version of the calculator.
type looseRecord struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Principal    any    `json:"principal"`
	Contribution any    `json:"contribution"`
	MonthlyRate  any    `json:"monthlyRate"`
	Months       any    `json:"months"`
	CreatedAt    any    `json:"createdAt"`

	LegacyPrincipal    any `json:"P"`
	LegacyContribution any `json:"A"`
	LegacyRate         any `json:"i"`
	LegacyMonths       any `json:"n"`
}

func encodeScenarios(list []domain.Scenario) (string, error) {
	records := make([]record, len(list))
	for i, s := range list {
		records[i] = record{
			ID:           s.ID,
			Name:         s.Name,
			Principal:    json.Number(s.Principal.String()),
			Contribution: json.Number(s.Contribution.String()),
			MonthlyRate:  json.Number(s.MonthlyRate.String()),
			Months:       domain.ClampMonths(s.Months),
			CreatedAt:    s.CreatedAt,
		}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("failed to encode scenarios: %w", err)
	}
	return string(data), nil
}

// decodeScenarios parses a stored list. Missing or invalid amounts become 0
// and the horizon becomes at least 1; only malformed JSON is an error.
func decodeScenarios(data string) ([]domain.Scenario, error) {
	if strings.TrimSpace(data) == "" {
		return []domain.Scenario{}, nil
	}
	dec := json.NewDecoder(bytes.NewReader([]byte(data)))
	dec.UseNumber()
	var raw []looseRecord
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	list := make([]domain.Scenario, 0, len(raw))
	for _, r := range raw {
		list = append(list, domain.Scenario{
			ID:           r.ID,
			Name:         r.Name,
			Principal:    toDecimal(firstSet(r.Principal, r.LegacyPrincipal)),
			Contribution: toDecimal(firstSet(r.Contribution, r.LegacyContribution)),
			MonthlyRate:  toDecimal(firstSet(r.MonthlyRate, r.LegacyRate)),
			Months:       domain.ClampMonths(int(toDecimal(firstSet(r.Months, r.LegacyMonths)).IntPart())),
			CreatedAt:    toDecimal(r.CreatedAt).IntPart(),
		})
	}
	return list, nil
}

func firstSet(values ...any) any {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

func toDecimal(v any) decimal.Decimal {
	var s string
	switch t := v.(type) {
	case json.Number:
		s = t.String()
	case string:
		s = strings.Replace(strings.TrimSpace(t), ",", ".", 1)
	default:
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
