// Package cli implements the taller admin command line
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"taller/internal/core/version"
	"taller/internal/modkit"
	"taller/internal/platform/config"
	"taller/internal/platform/logger"
	"taller/internal/platform/store"

	"github.com/spf13/cobra"
)

// app carries what the subcommands share; the store opens on first use
type app struct {
	cfg    config.Conf
	asJSON bool
	st     *store.Store
}

func (a *app) deps(ctx context.Context) (modkit.Deps, error) {
	if a.st == nil {
		st, err := store.Open(ctx, store.FromConfig(a.cfg, "cli"), store.WithLogger(*logger.Get()))
		if err != nil {
			return modkit.Deps{}, err
		}
		a.st = st
	}
	return modkit.DepsFrom(*logger.Get(), a.cfg, a.st), nil
}

func (a *app) close() {
	if a.st != nil {
		_ = a.st.Close(context.Background())
	}
}

func (a *app) printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// NewRoot builds the command tree
func NewRoot() *cobra.Command {
	root, _ := newRoot()
	return root
}

func newRoot() (*cobra.Command, *app) {
	a := &app{cfg: config.New()}
	root := &cobra.Command{
		Use:   "taller",
		Short: "Classify maintenance descriptions into spare parts and labor categories",
		Long: `taller analyzes free-text maintenance descriptions against the workshop taxonomy.

Storage comes from the environment (SERVICE_STORE_DRIVER, SERVICE_PGSQL_DBURL,
SERVICE_SQLITE_PATH, ...). Use --static to classify against the embedded seed
taxonomy without a database.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(*cobra.Command, []string) {
			logger.Init(logger.FromEnv())
		},
	}
	root.PersistentFlags().BoolVar(&a.asJSON, "json", false, "print results as JSON")

	root.AddCommand(
		newAnalyzeCmd(a),
		newClassifyCmd(a),
		newSeedCmd(a),
		newStatsCmd(a),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, _ []string) {
				b := version.Info()
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s, %s)\n", b.Service, b.Version, b.Commit, b.Date)
			},
		},
	)
	return root, a
}

// Execute runs the root command and closes the store it opened
func Execute(ctx context.Context) error {
	root, a := newRoot()
	defer a.close()
	return root.ExecuteContext(ctx)
}
