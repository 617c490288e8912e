package cli

import (
	"fmt"

	"taller/internal/core/taxonomy/seed"
	"taller/internal/modkit/module"
	taxmod "taller/internal/services/taxonomy/module"

	"github.com/spf13/cobra"
)

func newSeedCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the stored taxonomy with the embedded seed or a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pack, err := seed.Load()
			if file != "" {
				pack, err = seed.LoadFile(file)
			}
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			deps, err := a.deps(ctx)
			if err != nil {
				return err
			}
			stats, err := module.MustPortsOf[taxmod.Ports](taxmod.New(deps)).Seed.Seed(ctx, pack)
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.printJSON(cmd.OutOrStdout(), stats)
			}
			for _, s := range stats {
				fmt.Fprintf(cmd.OutOrStdout(), "%-6s %3d categories %4d keywords\n", s.Kind, s.Categories, s.Keywords)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "seed YAML file (default: embedded)")
	return cmd
}
