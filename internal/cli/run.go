package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/sghaida/solid/examples"
)

var errNothingToRun = errors.New("name at least one example or pass --all")

func runCmd(a *app) *cobra.Command {
	var all bool

	c := &cobra.Command{
		Use:   "run [name...]",
		Short: "Run examples by name, in the order given",
		RunE: func(cmd *cobra.Command, names []string) error {
			seq := examples.Catalog(a.catalog())

			var (
				list []examples.Example
				err  error
			)
			switch {
			case all && len(names) > 0:
				return errors.New("--all cannot be combined with example names")
			case all:
				list, err = examples.Select(seq, seq.Names()...)
			case len(names) == 0:
				return errNothingToRun
			default:
				list, err = examples.Select(seq, names...)
			}
			if err != nil {
				return err
			}

			start := time.Now()
			a.log.Info("running examples", "count", len(list))
			if err := examples.RunEach(cmd.Context(), list, cmd.OutOrStdout()); err != nil {
				a.log.Error("example failed", "error", err)
				return err
			}
			a.log.Info("examples finished", "count", len(list), "duration", time.Since(start))
			return nil
		},
	}

	c.Flags().BoolVar(&all, "all", false, "run every example")
	return c
}
