package main

import (
	"time"

	"github.com/rpgo/growth-calculator/internal/config"
	"github.com/rpgo/growth-calculator/internal/view"
	"github.com/spf13/cobra"
)

type compareFlags struct {
	configFile   string
	principal    string
	contribution string
	selic        string
	savingsRate  string
	tr           string
	horizon      string
	unit         string
	tax          bool
	page         int
	perPage      int
	copySummary  bool
}

func (f *compareFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.configFile, "config", "c", "", "YAML run file with a comparison section")
	fl.StringVar(&f.principal, "principal", "", "initial amount (R$)")
	fl.StringVar(&f.contribution, "contribution", "", "monthly contribution (R$)")
	fl.StringVar(&f.selic, "selic", "", "Selic annual rate (%)")
	fl.StringVar(&f.savingsRate, "savings-rate", "", "savings annual rate (%); derived from Selic and TR when omitted")
	fl.StringVar(&f.tr, "tr", "", "TR annual rate (%)")
	fl.StringVar(&f.horizon, "horizon", "12", "horizon length")
	fl.StringVar(&f.unit, "unit", "meses", "horizon unit: meses or anos")
	fl.BoolVar(&f.tax, "tax", false, "apply the regressive income tax to the Selic series")
	fl.IntVar(&f.page, "page", 0, "print only this page of the monthly table")
	fl.IntVar(&f.perPage, "per-page", 0, "rows per table page (default 10)")
	fl.BoolVar(&f.copySummary, "copy-summary", false, "print the plain-text summary instead of the report")
}

func (f *compareFlags) input(cmd *cobra.Command) (config.ComparisonInput, config.OutputConfig, error) {
	in := config.ComparisonInput{Horizon: "12", Unit: "meses"}
	var out config.OutputConfig
	if f.configFile != "" {
		run, err := loadRun(f.configFile, config.CalculatorComparison)
		if err != nil {
			return in, out, err
		}
		in, out = *run.Comparison, run.Output
	}

	changed := cmd.Flags().Changed
	set := func(name string, dst *config.Field, v string) {
		if changed(name) || (f.configFile == "" && v != "") {
			*dst = config.Field(v)
		}
	}
	set("principal", &in.Principal, f.principal)
	set("contribution", &in.Contribution, f.contribution)
	set("selic", &in.BenchmarkAnnual, f.selic)
	set("savings-rate", &in.SavingsAnnual, f.savingsRate)
	set("tr", &in.ReferenceAnnual, f.tr)
	set("horizon", &in.Horizon, f.horizon)
	set("unit", &in.Unit, f.unit)
	if changed("tax") {
		in.TaxEnabled = f.tax
	}
	if changed("page") {
		out.Page = f.page
	}
	if changed("per-page") {
		out.PerPage = f.perPage
	}
	return in, out, nil
}

func newCompareCmd(a *app) *cobra.Command {
	flags := &compareFlags{}
	cmd := &cobra.Command{
		Use:     "compare",
		Aliases: []string{"poupanca-selic", "comparison"},
		Short:   "Compare the savings account with the Selic rate",
		Example: "  growthcalc compare --principal 10000 --contribution 500 --selic 13,75 --tr 0,1 --horizon 2 --unit anos --tax",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, run, err := flags.input(cmd)
			if err != nil {
				return err
			}
			c := view.NewComparisonController(a.deps(nil))
			if err := c.Mount(cmd.Context(), nil); err != nil {
				return err
			}
			c.SetInput(in)
			if badge := c.Badge(); badge != "" {
				a.logger.Debugf("%s", badge)
			}
			if _, err := c.Compute(cmd.Context()); err != nil {
				return err
			}
			switch {
			case flags.copySummary:
				return c.CopySummary(time.Now())
			case pagingRequested(run):
				return a.showPage(c, c.Columns(), run.Page, run.PerPage)
			default:
				return a.emit(c.Report(), run)
			}
		},
	}
	flags.register(cmd)
	return cmd
}
