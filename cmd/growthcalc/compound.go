package main

import (
	"github.com/rpgo/growth-calculator/internal/config"
	"github.com/rpgo/growth-calculator/internal/view"
	"github.com/spf13/cobra"
)

// compoundFlags are the compound form inputs shared by "compound" and
// "scenario save".
type compoundFlags struct {
	configFile   string
	principal    string
	contribution string
	rate         string
	horizon      string
	unit         string
	page         int
	perPage      int
}

func (f *compoundFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.configFile, "config", "c", "", "YAML run file with a compound section")
	fl.StringVar(&f.principal, "principal", "", "initial amount (R$)")
	fl.StringVar(&f.contribution, "contribution", "", "monthly contribution (R$)")
	fl.StringVar(&f.rate, "rate", "", "monthly interest rate (%)")
	fl.StringVar(&f.horizon, "horizon", "12", "horizon length")
	fl.StringVar(&f.unit, "unit", "meses", "horizon unit: meses or anos")
	fl.IntVar(&f.page, "page", 0, "print only this page of the monthly table")
	fl.IntVar(&f.perPage, "per-page", 0, "rows per table page (default 10)")
}

// input merges the run file (when given) with the flags set on the command line.
func (f *compoundFlags) input(cmd *cobra.Command) (config.CompoundInput, config.OutputConfig, error) {
	in := config.CompoundInput{Horizon: "12", Unit: "meses"}
	var out config.OutputConfig
	if f.configFile != "" {
		run, err := loadRun(f.configFile, config.CalculatorCompound)
		if err != nil {
			return in, out, err
		}
		in, out = *run.Compound, run.Output
	}

	changed := cmd.Flags().Changed
	set := func(name string, dst *config.Field, v string) {
		if changed(name) || (f.configFile == "" && v != "") {
			*dst = config.Field(v)
		}
	}
	set("principal", &in.Principal, f.principal)
	set("contribution", &in.Contribution, f.contribution)
	set("rate", &in.MonthlyRate, f.rate)
	set("horizon", &in.Horizon, f.horizon)
	set("unit", &in.Unit, f.unit)
	if changed("page") {
		out.Page = f.page
	}
	if changed("per-page") {
		out.PerPage = f.perPage
	}
	return in, out, nil
}

func newCompoundCmd(a *app) *cobra.Command {
	flags := &compoundFlags{}
	cmd := &cobra.Command{
		Use:     "compound",
		Aliases: []string{"juros-compostos", "juros"},
		Short:   "Project compound growth with monthly contributions",
		Example: "  growthcalc compound --principal 1000 --contribution 100 --rate 1 --horizon 2 --unit anos",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, run, err := flags.input(cmd)
			if err != nil {
				return err
			}
			c := view.NewCompoundController(a.deps(nil))
			c.SetInput(in)
			if _, err := c.Compute(cmd.Context()); err != nil {
				return err
			}
			if pagingRequested(run) {
				return a.showPage(c, c.Report().Columns(), run.Page, run.PerPage)
			}
			return a.emit(c.Report(), run)
		},
	}
	flags.register(cmd)
	return cmd
}
