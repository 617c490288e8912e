package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"taller/internal/core/classifier"
	"taller/internal/core/taxonomy"
	"taller/internal/core/taxonomy/seed"
	"taller/internal/modkit/module"
	"taller/internal/platform/logger"
	analysismod "taller/internal/services/analysis/module"
	"taller/internal/services/analysis/domain"
	"taller/internal/services/analysis/service"
	clmod "taller/internal/services/classifications/module"
	taxmod "taller/internal/services/taxonomy/module"

	"github.com/spf13/cobra"
)

// analyzer builds the analysis port, either over the store or over the embedded seed
func (a *app) analyzer(ctx context.Context, static bool) (domain.AnalyzerPort, error) {
	if static {
		pack, err := seed.Load()
		if err != nil {
			return nil, err
		}
		eng := classifier.NewEngine(taxonomy.NewLoader(pack))
		return service.New(eng, nil, analysismod.FromConfig(a.cfg), *logger.Get()), nil
	}
	deps, err := a.deps(ctx)
	if err != nil {
		return nil, err
	}
	tax := taxmod.New(deps)
	cl := clmod.New(deps)
	if err := cl.Boot(ctx); err != nil {
		return nil, err
	}
	m := analysismod.New(deps,
		module.MustPortsOf[taxmod.Ports](tax).Snapshots,
		module.MustPortsOf[clmod.Ports](cl).Writer)
	return module.MustPortsOf[analysismod.Ports](m).Analyzer, nil
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var (
		recordID int64
		static   bool
	)
	cmd := &cobra.Command{
		Use:   "analyze <description...>",
		Short: "Analyze a maintenance description for parts and labor",
		Example: `  taller analyze --static "Repuestos: 1 filtro de aceite | Trabajo realizado: Service general completo"
  taller analyze --record-id 42 "cambio de mangueras hidraulicas"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			an, err := a.analyzer(ctx, static)
			if err != nil {
				return err
			}
			in := domain.AnalyzeInput{Description: strings.Join(args, " ")}
			if recordID > 0 {
				in.RecordID = &recordID
			}
			rep, err := an.Analyze(ctx, in)
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.printJSON(cmd.OutOrStdout(), rep)
			}
			printReport(cmd.OutOrStdout(), rep)
			return nil
		},
	}
	cmd.Flags().Int64Var(&recordID, "record-id", 0, "maintenance record id; enables the audit trail")
	cmd.Flags().BoolVar(&static, "static", false, "use the embedded seed taxonomy instead of the store")
	return cmd
}

func printReport(w io.Writer, rep domain.Report) {
	fmt.Fprintln(w, rep.Summary)
	section := func(title string, best *string, conf float64, ms []domain.MatchView) {
		b := "-"
		if best != nil {
			b = *best
		}
		fmt.Fprintf(w, "\n%s (best: %s, %.1f%%)\n", title, b, conf)
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, m := range ms {
			fmt.Fprintf(tw, "  %s\t%.1f%%\t%s\n", m.Category, m.Confidence, strings.Join(m.Keywords, ", "))
		}
		_ = tw.Flush()
	}
	section("Repuestos", rep.BestPart, rep.PartConfidence, rep.Parts)
	section("Trabajos", rep.BestLabor, rep.LaborConfidence, rep.Labor)
}

func newClassifyCmd(a *app) *cobra.Command {
	var (
		kind   string
		static bool
	)
	cmd := &cobra.Command{
		Use:   "classify <text...>",
		Short: "Run a single classification pass against one taxonomy",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := taxonomy.ParseKind(kind)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			an, err := a.analyzer(ctx, static)
			if err != nil {
				return err
			}
			res, err := an.Classify(ctx, strings.Join(args, " "), k)
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.printJSON(cmd.OutOrStdout(), res)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %q\n", res.Kind, res.Normalized)
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, m := range res.Matches {
				fmt.Fprintf(tw, "  %s\t%.3f\t%s\n", m.Category, m.Confidence, strings.Join(m.Keywords, ", "))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "part", "taxonomy: part or labor")
	cmd.Flags().BoolVar(&static, "static", false, "use the embedded seed taxonomy instead of the store")
	return cmd
}
