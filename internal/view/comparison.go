package view

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rpgo/growth-calculator/internal/config"
	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/rpgo/growth-calculator/internal/output"
	"github.com/shopspring/decimal"
)

// Form field names accepted by ComparisonController.SetField.
const (
	FieldPrincipal    = "principal"
	FieldContribution = "contribution"
	FieldBenchmark    = "benchmark"
	FieldReference    = "reference"
	FieldHorizon      = "horizon"
	FieldUnit         = "unit"
)

// ErrNoResult is returned by actions that need a computed result.
var ErrNoResult = errors.New("nothing computed yet")

// ComparisonController drives the savings vs. benchmark calculator.
type ComparisonController struct {
	deps    Deps
	input   config.ComparisonInput
	savings SavingsRateField
	dirty   *DirtyTracker
	last    *domain.ComparisonResult
	table   output.TableState
	copy    CopyIndicator
}

// NewComparisonController creates an unmounted controller.
func NewComparisonController(deps Deps) *ComparisonController {
	return &ComparisonController{
		deps:  deps.withDefaults(),
		dirty: NewDirtyTracker(),
		table: output.NewTableState(output.DefaultPerPage),
	}
}

func (c *ComparisonController) Kind() Kind    { return KindComparison }
func (c *ComparisonController) Title() string { return "Poupança x Selic" }

// Mount starts Stale with the savings rate in auto mode; nothing is computed.
func (c *ComparisonController) Mount(_ context.Context, _ *AppState) error {
	c.savings = SavingsRateField{}
	c.dirty.Reset()
	return nil
}

// Unmount drops the result and pager.
func (c *ComparisonController) Unmount(_ *AppState) {
	c.last = nil
	c.table = output.NewTableState(c.table.PerPage)
	c.dirty.Reset()
}

// SetInput replaces every form value. A typed savings rate switches the
// field to Manual; a blank one puts it back in Auto.
func (c *ComparisonController) SetInput(in config.ComparisonInput) {
	c.input = in
	if in.SavingsAnnual.Blank() {
		c.savings = SavingsRateField{}
	} else {
		c.savings.Edit(config.ParseAmount(string(in.SavingsAnnual)))
	}
	c.markEdited()
}

// SetField updates one form value.
func (c *ComparisonController) SetField(name, value string) error {
	v := config.Field(value)
	switch name {
	case FieldPrincipal:
		c.input.Principal = v
	case FieldContribution:
		c.input.Contribution = v
	case FieldBenchmark:
		c.input.BenchmarkAnnual = v
	case FieldReference:
		c.input.ReferenceAnnual = v
	case FieldHorizon:
		c.input.Horizon = v
	case FieldUnit:
		c.input.Unit = v
	default:
		return fmt.Errorf("unknown field %q", name)
	}
	c.markEdited()
	return nil
}

func (c *ComparisonController) markEdited() {
	c.last = nil
	c.dirty.Edit()
}

// SavingsRate is the savings annual rate in effect.
func (c *ComparisonController) SavingsRate() decimal.Decimal {
	return c.savings.Value(c.benchmark(), c.reference())
}

// SavingsRateAuto reports whether the savings rate follows the benchmark.
func (c *ComparisonController) SavingsRateAuto() bool { return c.savings.Auto() }

// EditSavingsRate switches the savings rate to a typed value.
func (c *ComparisonController) EditSavingsRate(raw string) {
	c.savings.Edit(config.ParseAmount(raw))
	c.markEdited()
}

// ResetSavingsRate goes back to the derived savings rate. The result is only
// invalidated when the effective rate moved.
func (c *ComparisonController) ResetSavingsRate() bool {
	changed := c.savings.Reset(c.benchmark(), c.reference())
	if changed {
		c.markEdited()
	}
	return changed
}

func (c *ComparisonController) benchmark() decimal.Decimal {
	return config.ParseAmount(string(c.input.BenchmarkAnnual))
}

func (c *ComparisonController) reference() decimal.Decimal {
	return config.ParseAmount(string(c.input.ReferenceAnnual))
}

// Params returns the comparison inputs, savings rate included.
func (c *ComparisonController) Params() domain.ComparisonParams {
	in := c.input
	in.SavingsAnnual = config.Field(c.SavingsRate().String())
	return in.Params()
}

// TaxEnabled reports the tax toggle.
func (c *ComparisonController) TaxEnabled() bool { return c.input.TaxEnabled }

// SetTaxEnabled flips the tax toggle. With a result on screen the comparison
// is recomputed; otherwise only the badge and header change.
func (c *ComparisonController) SetTaxEnabled(ctx context.Context, on bool) (recomputed bool, err error) {
	c.input.TaxEnabled = on
	if !c.dirty.ToggleTax(c.last != nil) {
		return false, nil
	}
	if _, err := c.Compute(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// State returns the dirty state.
func (c *ComparisonController) State() DirtyState { return c.dirty.State() }

// Last returns the last computed result, nil when stale.
func (c *ComparisonController) Last() *domain.ComparisonResult { return c.last }

// Compute runs the comparison and resets the table to its first page.
func (c *ComparisonController) Compute(ctx context.Context) (*domain.ComparisonResult, error) {
	result, err := c.deps.Engine.RunComparison(ctx, c.Params())
	if err != nil {
		return nil, err
	}
	c.last = result
	c.table.Page = 1
	c.dirty.Computed()
	return result, nil
}

// Report wraps the last result for the formatters.
func (c *ComparisonController) Report() *output.Report {
	if c.last == nil {
		return nil
	}
	return output.NewComparisonReport(c.last)
}

// KPIs returns the final amounts, or nil before the first compute.
func (c *ComparisonController) KPIs() []output.KPI {
	if c.last == nil {
		return nil
	}
	return output.ComparisonKPIs(c.last.Finals)
}

// Chart returns savings against the net benchmark.
func (c *ComparisonController) Chart() output.ChartData {
	return output.ComparisonChart(c.last)
}

// Columns returns the table header for the current tax toggle.
func (c *ComparisonController) Columns() []string {
	return output.TableHeader(c.input.TaxEnabled)
}

// Table returns the current page of months 1..N.
func (c *ComparisonController) Table() output.Page {
	var rows []output.TableRow
	if c.last != nil {
		rows = output.BuildRows(c.last.Savings, c.last.DisplayedBenchmark())
	}
	p := output.Paginate(rows, c.table)
	c.table.Page = p.Page
	return p
}

// NextPage moves the table forward.
func (c *ComparisonController) NextPage() output.Page { c.table.Next(); return c.Table() }

// PrevPage moves the table back.
func (c *ComparisonController) PrevPage() output.Page { c.table.Prev(); return c.Table() }

// SetPerPage reads a page size selector value and goes back to page 1.
func (c *ComparisonController) SetPerPage(raw string) output.Page {
	c.table.SetPerPage(output.ParsePerPage(raw))
	return c.Table()
}

// Export returns the export document and its file name.
func (c *ComparisonController) Export() (string, string, error) {
	if c.last == nil {
		return "", "", ErrNoResult
	}
	r := c.Report()
	return output.Encode(r.ExportRows()), r.FileName(), nil
}

// Badge is the tax bracket badge for the current horizon.
func (c *ComparisonController) Badge() string {
	p := c.Params()
	return output.TaxBadge(p.TaxEnabled, p.Months)
}

// Meta returns the table header texts.
func (c *ComparisonController) Meta() output.TableMeta {
	return output.ComparisonMeta(c.Params(), c.last)
}

// CopySummary copies the summary text and records the outcome at now.
func (c *ComparisonController) CopySummary(now time.Time) error {
	text := output.CopySummary(c.Params(), c.last)
	var err error
	if c.deps.Clipboard == nil {
		err = ErrNoClipboard
	} else {
		err = c.deps.Clipboard.WriteText(text)
	}
	if err != nil {
		c.copy.Set(CopyFailed, now)
		c.deps.Logger.Warnf("copy summary failed: %v", err)
		return err
	}
	c.copy.Set(CopyDone, now)
	return nil
}

// CopyLabel is the copy button text at now.
func (c *ComparisonController) CopyLabel(now time.Time) string { return c.copy.Label(now) }
