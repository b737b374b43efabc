package view

import (
	"context"
	"errors"
	"fmt"

	"github.com/rpgo/growth-calculator/internal/config"
	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/rpgo/growth-calculator/internal/output"
	"github.com/rpgo/growth-calculator/internal/store"
	"github.com/rpgo/growth-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// CompoundController drives the compound growth calculator: form inputs,
// the last computed result and the saved scenarios.
type CompoundController struct {
	deps      Deps
	input     config.CompoundInput
	dirty     *DirtyTracker
	last      *domain.SimulationResult
	table     output.TableState
	scenarios []domain.Scenario
}

// NewCompoundController creates an unmounted controller.
func NewCompoundController(deps Deps) *CompoundController {
	return &CompoundController{
		deps:  deps.withDefaults(),
		dirty: NewDirtyTracker(),
		table: output.NewTableState(output.DefaultPerPage),
	}
}

func (c *CompoundController) Kind() Kind    { return KindCompound }
func (c *CompoundController) Title() string { return "Juros Compostos" }

// Mount loads the saved scenarios and computes the initial result.
func (c *CompoundController) Mount(ctx context.Context, _ *AppState) error {
	if err := c.RefreshScenarios(ctx); err != nil {
		if !errors.Is(err, store.ErrCorrupt) {
			return err
		}
		c.deps.Logger.Warnf("ignoring saved scenarios: %v", err)
	}
	_, err := c.Compute(ctx)
	return err
}

// Unmount drops the result; saved scenarios stay in the store.
func (c *CompoundController) Unmount(_ *AppState) {
	c.last = nil
	c.scenarios = nil
	c.dirty.Reset()
}

// Input returns the current form values.
func (c *CompoundController) Input() config.CompoundInput { return c.input }

// SetInput replaces the form values and discards the stale result.
func (c *CompoundController) SetInput(in config.CompoundInput) {
	c.input = in
	c.last = nil
	c.dirty.Edit()
}

// State returns the dirty state.
func (c *CompoundController) State() DirtyState { return c.dirty.State() }

// Last returns the last computed result, nil when stale.
func (c *CompoundController) Last() *domain.SimulationResult { return c.last }

// Compute runs the simulation for the current inputs.
func (c *CompoundController) Compute(ctx context.Context) (*domain.SimulationResult, error) {
	result, err := c.deps.Engine.RunSimulation(ctx, c.input.Params())
	if err != nil {
		return nil, err
	}
	c.last = result
	c.table.Page = 1
	c.dirty.Computed()
	return result, nil
}

// Report wraps the last result for the formatters.
func (c *CompoundController) Report() *output.Report {
	if c.last == nil {
		return nil
	}
	return output.NewCompoundReport(c.last)
}

// KPIs returns the headline cards of the last result.
func (c *CompoundController) KPIs() []output.KPI {
	return output.CompoundKPIs(output.Summarize(c.last))
}

// Chart returns the chart series of the last result.
func (c *CompoundController) Chart() output.ChartData {
	return output.CompoundChart(c.last)
}

// Table returns the current page of the monthly schedule.
func (c *CompoundController) Table() output.Page {
	var rows []output.TableRow
	if r := c.Report(); r != nil {
		rows = r.TableRows()
	}
	p := output.Paginate(rows, c.table)
	c.table.Page = p.Page
	return p
}

// NextPage moves the table forward.
func (c *CompoundController) NextPage() output.Page { c.table.Next(); return c.Table() }

// PrevPage moves the table back.
func (c *CompoundController) PrevPage() output.Page { c.table.Prev(); return c.Table() }

// SetPerPage reads a page size selector value and goes back to page 1.
func (c *CompoundController) SetPerPage(raw string) output.Page {
	c.table.SetPerPage(output.ParsePerPage(raw))
	return c.Table()
}

// Export returns the export document and its file name, computing first
// when there is no result.
func (c *CompoundController) Export(ctx context.Context) (string, string, error) {
	if c.last == nil {
		if _, err := c.Compute(ctx); err != nil {
			return "", "", err
		}
	}
	r := c.Report()
	return output.Encode(r.ExportRows()), r.FileName(), nil
}

// Scenarios returns the saved scenarios as last loaded.
func (c *CompoundController) Scenarios() []domain.Scenario { return c.scenarios }

// ScenarioLines describes each saved scenario for the list.
func (c *CompoundController) ScenarioLines() []string {
	lines := make([]string, len(c.scenarios))
	for i, s := range c.scenarios {
		lines[i] = s.Name + ": " + output.ScenarioLine(s)
	}
	return lines
}

// RefreshScenarios reloads the saved list.
func (c *CompoundController) RefreshScenarios(ctx context.Context) error {
	list, err := c.deps.Scenarios.List(ctx)
	c.scenarios = list
	return err
}

// SaveScenario stores the current inputs under name.
func (c *CompoundController) SaveScenario(ctx context.Context, name string) (domain.Scenario, error) {
	saved, err := c.deps.Scenarios.Save(ctx, domain.ScenarioFromParams(name, c.input.Params()))
	if err != nil {
		return domain.Scenario{}, err
	}
	c.scenarios = append(c.scenarios, saved)
	return saved, nil
}

// ApplyScenario loads a saved scenario into the form and computes it.
func (c *CompoundController) ApplyScenario(ctx context.Context, id string) (*domain.SimulationResult, error) {
	sc, err := c.deps.Scenarios.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	c.SetInput(InputFromScenario(sc))
	return c.Compute(ctx)
}

// DeleteScenario removes a saved scenario by ID and reloads the list.
func (c *CompoundController) DeleteScenario(ctx context.Context, id string) error {
	if _, err := c.deps.Scenarios.RemoveByID(ctx, id); err != nil {
		return err
	}
	return c.RefreshScenarios(ctx)
}

// InputFromScenario fills the compound form from a saved scenario. The form
// takes a monthly percentage while the scenario keeps a fraction.
func InputFromScenario(sc domain.Scenario) config.CompoundInput {
	return config.CompoundInput{
		Principal:    config.Field(sc.Principal.String()),
		Contribution: config.Field(sc.Contribution.String()),
		MonthlyRate:  config.Field(sc.MonthlyRate.Mul(decimal.NewFromInt(100)).String()),
		Horizon:      config.Field(fmt.Sprint(domain.ClampMonths(sc.Months))),
		Unit:         config.Field(dateutil.UnitMonths),
	}
}
