package main

import (
	"errors"
	"fmt"

	"github.com/rpgo/growth-calculator/internal/config"
	"github.com/rpgo/growth-calculator/internal/store"
	"github.com/rpgo/growth-calculator/internal/view"
	"github.com/spf13/cobra"
)

func newScenarioCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "scenario",
		Aliases: []string{"cenario"},
		Short:   "Manage saved compound growth scenarios",
	}
	cmd.AddCommand(
		newScenarioListCmd(a),
		newScenarioSaveCmd(a),
		newScenarioDeleteCmd(a),
		newScenarioApplyCmd(a),
	)
	return cmd
}

// withController opens the store, mounts a compound controller over it and
// runs fn. A corrupt saved list is reported and treated as empty.
func (a *app) withController(cmd *cobra.Command, fn func(c *view.CompoundController, st *store.ScenarioStore) error) error {
	st, closeFn, err := a.openScenarios(cmd.Context())
	defer closeFn()
	if err != nil {
		return err
	}
	c := view.NewCompoundController(a.deps(st))
	if err := c.RefreshScenarios(cmd.Context()); err != nil {
		if !errors.Is(err, store.ErrCorrupt) {
			return err
		}
		a.logger.Warnf("saved scenarios are unreadable and will be replaced on the next save: %v", err)
	}
	return fn(c, st)
}

func newScenarioListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved scenarios",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withController(cmd, func(c *view.CompoundController, _ *store.ScenarioStore) error {
				scenarios := c.Scenarios()
				if len(scenarios) == 0 {
					fmt.Fprintln(a.out, "Nenhum cenário salvo.")
					return nil
				}
				for i, line := range c.ScenarioLines() {
					fmt.Fprintf(a.out, "%d  %s  %s\n", i, scenarios[i].ID, line)
				}
				return nil
			})
		},
	}
}

func newScenarioSaveCmd(a *app) *cobra.Command {
	flags := &compoundFlags{}
	cmd := &cobra.Command{
		Use:   "save NAME",
		Short: "Save the compound inputs under a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, _, err := flags.input(cmd)
			if err != nil {
				return err
			}
			return a.withController(cmd, func(c *view.CompoundController, _ *store.ScenarioStore) error {
				c.SetInput(in)
				saved, err := c.SaveScenario(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "saved %s (%s)\n", saved.Name, saved.ID)
				return nil
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newScenarioDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete ID|INDEX",
		Aliases: []string{"rm"},
		Short:   "Delete a saved scenario by ID or list position",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withController(cmd, func(c *view.CompoundController, st *store.ScenarioStore) error {
				sc, _, err := st.Resolve(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if err := c.DeleteScenario(cmd.Context(), sc.ID); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "deleted %s (%s)\n", sc.Name, sc.ID)
				return nil
			})
		},
	}
}

func newScenarioApplyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "apply ID|INDEX",
		Short: "Compute a saved scenario and print its report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withController(cmd, func(c *view.CompoundController, st *store.ScenarioStore) error {
				sc, _, err := st.Resolve(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if _, err := c.ApplyScenario(cmd.Context(), sc.ID); err != nil {
					return err
				}
				return a.emit(c.Report(), config.OutputConfig{})
			})
		},
	}
}
