package service

import (
	"context"
	"sort"

	perr "taller/internal/platform/errors"
	dom "taller/internal/services/analysis/domain"

	"golang.org/x/sync/errgroup"
)

// topPerClient caps the category names listed per client
const topPerClient = 3

// AnalyzeBatch analyzes items on a bounded worker pool and aggregates the reports
// the first analysis error cancels the rest and fails the batch
func (s *Service) AnalyzeBatch(ctx context.Context, items []dom.BatchItem) (dom.BatchReport, error) {
	if len(items) > s.cfg.BatchMax {
		return dom.BatchReport{}, perr.WithField(
			perr.Newf(perr.ErrorCodeValidation, "batch holds %d items, the limit is %d", len(items), s.cfg.BatchMax), "items")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)

	reports := make([]dom.Report, len(items))
	for i := range items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := s.Analyze(gctx, items[i].AnalyzeInput)
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return dom.BatchReport{}, err
	}
	return Aggregate(items, reports), nil
}

type aggState struct {
	agg       dom.CategoryAggregate
	sum       float64
	clients   map[string]struct{}
	equipment map[string]struct{}
}

type aggregator struct {
	byName map[string]*aggState
	order  []string
}

func newAggregator() *aggregator { return &aggregator{byName: map[string]*aggState{}} }

func (a *aggregator) add(m dom.MatchView, client, equipment string) {
	st, ok := a.byName[m.Category]
	if !ok {
		st = &aggState{
			agg:       dom.CategoryAggregate{Category: m.Category, Color: m.Color},
			clients:   map[string]struct{}{},
			equipment: map[string]struct{}{},
		}
		a.byName[m.Category] = st
		a.order = append(a.order, m.Category)
	}
	st.agg.Count++
	st.sum += m.Confidence
	if client != "" {
		st.clients[client] = struct{}{}
	}
	if equipment != "" {
		st.equipment[equipment] = struct{}{}
	}
}

// result sorts by count desc then name
func (a *aggregator) result() []dom.CategoryAggregate {
	out := make([]dom.CategoryAggregate, 0, len(a.order))
	for _, name := range a.order {
		st := a.byName[name]
		st.agg.AvgConfidence = Round1(st.sum / float64(st.agg.Count))
		st.agg.Clients = sortedKeys(st.clients)
		st.agg.Equipment = sortedKeys(st.equipment)
		out = append(out, st.agg)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// Aggregate folds per-item reports into category and client summaries
func Aggregate(items []dom.BatchItem, reports []dom.Report) dom.BatchReport {
	parts, labor := newAggregator(), newAggregator()
	clientSet := map[string]struct{}{}
	for i, r := range reports {
		client, equipment := items[i].Client, items[i].Equipment
		if client != "" {
			clientSet[client] = struct{}{}
		}
		for _, m := range r.Parts {
			parts.add(m, client, equipment)
		}
		for _, m := range r.Labor {
			labor.add(m, client, equipment)
		}
	}

	out := dom.BatchReport{
		Total:   len(reports),
		Parts:   parts.result(),
		Labor:   labor.result(),
		Reports: reports,
	}
	for _, c := range sortedKeys(clientSet) {
		cs := dom.ClientSummary{Client: c}
		cs.PartUses, cs.PartTypes, cs.TopParts = clientShare(out.Parts, c)
		cs.LaborUses, cs.LaborTypes, cs.TopLabor = clientShare(out.Labor, c)
		out.Clients = append(out.Clients, cs)
	}
	if out.Clients == nil {
		out.Clients = []dom.ClientSummary{}
	}
	return out
}

// clientShare counts the categories a client appears in, in aggregate order
func clientShare(aggs []dom.CategoryAggregate, client string) (uses, types int, top []string) {
	top = []string{}
	for _, a := range aggs {
		if !contains(a.Clients, client) {
			continue
		}
		uses += a.Count
		types++
		if len(top) < topPerClient {
			top = append(top, a.Category)
		}
	}
	return uses, types, top
}

func contains(xs []string, x string) bool {
	i := sort.SearchStrings(xs, x)
	return i < len(xs) && xs[i] == x
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
