package cli

import (
	"fmt"
	"text/tabwriter"

	"taller/internal/modkit/module"
	clmod "taller/internal/services/classifications/module"

	"github.com/spf13/cobra"
)

func newStatsCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the most detected categories in the audit trail",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			deps, err := a.deps(ctx)
			if err != nil {
				return err
			}
			cl := clmod.New(deps)
			if err := cl.Boot(ctx); err != nil {
				return err
			}
			rep, err := module.MustPortsOf[clmod.Ports](cl).Query.Report(ctx, limit)
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.printJSON(cmd.OutOrStdout(), rep)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d classifications recorded\n", rep.Total)
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CATEGORY\tUSES\tAVG CONF")
			for _, r := range rep.Categories {
				fmt.Fprintf(tw, "%s\t%d\t%.1f%%\n", r.Category, r.Uses, r.AvgConfidence)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "number of categories")
	return cmd
}
