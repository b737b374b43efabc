package view

import (
	"context"
	"strings"

	"github.com/rpgo/growth-calculator/internal/calculation"
	"github.com/rpgo/growth-calculator/internal/store"
)

// Kind is the closed set of calculators the app can open.
type Kind int

const (
	KindPlaceholder Kind = iota
	KindCompound
	KindComparison
)

// Kinds lists every calculator in menu order.
var Kinds = []Kind{KindCompound, KindComparison, KindPlaceholder}

// Slug is the route segment of the calculator ("#/<slug>").
func (k Kind) Slug() string {
	switch k {
	case KindCompound:
		return "juros-compostos"
	case KindComparison:
		return "poupanca-selic"
	default:
		return "placeholder"
	}
}

func (k Kind) String() string { return k.Slug() }

// ParseKind maps a slug to a Kind. Unknown slugs open the placeholder.
func ParseKind(slug string) Kind {
	switch strings.ToLower(strings.TrimSpace(slug)) {
	case "juros-compostos":
		return KindCompound
	case "poupanca-selic":
		return KindComparison
	default:
		return KindPlaceholder
	}
}

// Calculator is the lifecycle every calculator view implements.
type Calculator interface {
	Kind() Kind
	Title() string
	Mount(ctx context.Context, app *AppState) error
	Unmount(app *AppState)
}

// Deps are the collaborators shared by the calculators.
type Deps struct {
	Engine    *calculation.CalculationEngine
	Scenarios *store.ScenarioStore
	Clipboard Clipboard
	Logger    calculation.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Logger == nil {
		d.Logger = calculation.NopLogger{}
	}
	if d.Engine == nil {
		d.Engine = calculation.NewCalculationEngine()
		d.Engine.SetLogger(d.Logger)
	}
	if d.Scenarios == nil {
		d.Scenarios = store.NewScenarioStore(store.NewMemoryKV(), store.CompoundScenariosKey)
	}
	return d
}

// NewCalculator builds the calculator for kind.
func NewCalculator(kind Kind, deps Deps) Calculator {
	switch kind {
	case KindCompound:
		return NewCompoundController(deps)
	case KindComparison:
		return NewComparisonController(deps)
	default:
		return Placeholder{}
	}
}

// Placeholder is shown for calculators that do not exist yet.
type Placeholder struct{}

func (Placeholder) Kind() Kind                             { return KindPlaceholder }
func (Placeholder) Title() string                          { return "Em breve" }
func (Placeholder) Mount(context.Context, *AppState) error { return nil }
func (Placeholder) Unmount(*AppState)                      {}
