package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/rpgo/growth-calculator/internal/calculation"
	"github.com/rpgo/growth-calculator/internal/config"
	"github.com/rpgo/growth-calculator/internal/output"
	"github.com/rpgo/growth-calculator/internal/store"
	"github.com/rpgo/growth-calculator/internal/view"
	"github.com/spf13/cobra"
)

// app carries the global flags and the writers shared by every command.
type app struct {
	out      io.Writer
	errOut   io.Writer
	verbose  bool
	envFiles []string
	format   string
	outDir   string
	logger   calculation.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut, logger: calculation.NopLogger{}}

	root := &cobra.Command{
		Use:          "growthcalc",
		Short:        "Compound growth and savings vs. Selic calculators",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.logger = calculation.NewWriterLogger(a.errOut, a.verbose)
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "print calculation breakdowns and store activity to stderr")
	pf.StringSliceVar(&a.envFiles, "env-file", nil, "env files with GROWTHCALC_* settings (default .env)")
	pf.StringVarP(&a.format, "format", "f", "", "report format: "+strings.Join(output.AvailableFormatterNames(), ", "))
	pf.StringVarP(&a.outDir, "out", "o", "", "write the report into this directory instead of stdout")

	root.AddCommand(
		newCompoundCmd(a),
		newCompareCmd(a),
		newScenarioCmd(a),
		newFormatsCmd(a),
	)
	return root
}

// deps builds the collaborators handed to the calculator controllers.
func (a *app) deps(scenarios *store.ScenarioStore) view.Deps {
	engine := calculation.NewCalculationEngine()
	engine.Debug = a.verbose
	engine.SetLogger(a.logger)
	return view.Deps{
		Engine:    engine,
		Scenarios: scenarios,
		Clipboard: view.WriterClipboard{W: a.out},
		Logger:    a.logger,
	}
}

// openScenarios opens the configured store backend for compound scenarios.
func (a *app) openScenarios(ctx context.Context) (*store.ScenarioStore, func(), error) {
	settings, err := config.LoadSettings(a.envFiles...)
	if err != nil {
		return nil, func() {}, err
	}
	a.logger.Debugf("scenario store: %s", settings.Store)
	kv, closeFn, err := config.OpenStore(ctx, settings)
	if err != nil {
		return nil, closeFn, fmt.Errorf("failed to open %s store: %w", settings.Store, err)
	}
	st := store.NewScenarioStore(kv, store.CompoundScenariosKey)
	st.SetLogger(a.logger)
	return st, closeFn, nil
}

// resolveFormat prefers the --format flag, then the run file.
func (a *app) resolveFormat(run config.OutputConfig) string {
	if strings.TrimSpace(a.format) != "" {
		return a.format
	}
	if strings.TrimSpace(run.Format) != "" {
		return run.Format
	}
	return "console"
}

// emit renders the report to stdout, or writes it into the output directory.
func (a *app) emit(report *output.Report, run config.OutputConfig) error {
	format := a.resolveFormat(run)
	dir := a.outDir
	if dir == "" {
		dir = run.Dir
	}
	if dir != "" {
		path, err := output.GenerateReport(report, format, dir)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "report written to %s\n", path)
		return nil
	}
	data, err := output.Render(report, format)
	if err != nil {
		return err
	}
	_, err = a.out.Write(data)
	return err
}

// pager is the paginated view of a controller's monthly table.
type pager interface {
	SetPerPage(raw string) output.Page
	NextPage() output.Page
}

// showPage moves the pager to the requested page and prints it.
func (a *app) showPage(p pager, columns []string, page, perPage int) error {
	if perPage < 1 {
		perPage = output.DefaultPerPage
	}
	current := p.SetPerPage(strconv.Itoa(perPage))
	for current.Page < page && current.HasNext {
		current = p.NextPage()
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, strings.Join(columns, "\t")+"\t")
	if current.Empty() {
		cells := make([]string, len(columns))
		for i := range cells {
			cells[i] = output.PlaceholderCell
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t")
	}
	for _, row := range current.Rows {
		fmt.Fprintln(tw, strings.Join(output.FormatRow(row), "\t")+"\t")
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, current.Info())
	return nil
}

// pagingRequested reports whether the run asked for a single table page.
func pagingRequested(run config.OutputConfig) bool {
	return run.Page > 0 || run.PerPage > 0
}

func loadRun(path, calculator string) (*config.RunConfig, error) {
	run, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	if run.Calculator != calculator {
		return nil, fmt.Errorf("run file %s is for %s, not %s", path, run.Calculator, calculator)
	}
	return run, nil
}

func newFormatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the report formats and their aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(a.out, "Formats:")
			for _, name := range output.AvailableFormatterNames() {
				fmt.Fprintf(a.out, "  %s\n", name)
			}
			fmt.Fprintln(a.out, "Aliases:")
			for _, alias := range output.AvailableFormatAliases() {
				fmt.Fprintf(a.out, "  %s -> %s\n", alias, output.NormalizeFormatName(alias))
			}
			return nil
		},
	}
}
