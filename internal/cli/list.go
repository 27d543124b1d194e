package cli

import (
	"github.com/spf13/cobra"

	"github.com/sghaida/solid/examples"
	"github.com/sghaida/solid/internal/console"
)

func listCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every example with its principle and summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := console.New(cmd.OutOrStdout())
			_ = examples.Catalog(a.catalog()).Each(func(name string, e examples.Example) error {
				out.Printf("%-6s %-4s %s\n", name, e.Principle(), e.Summary())
				return out.Err()
			})
			return out.Err()
		},
	}
}
