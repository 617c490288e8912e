// Package classifier scores normalized maintenance text against a taxonomy snapshot
package classifier

import (
	"context"
	"math"
	"sort"
	"strings"

	"taller/internal/core/normalize"
	"taller/internal/core/taxonomy"
)

// DefaultThreshold is the minimum confidence a candidate needs to be kept
const DefaultThreshold = 0.3

// Score adjustments, applied in this exact order
const (
	WholeWordBonus  = 1.5
	SynonymPenalty  = 0.8
	RootBonus       = 1.1
	LeafPenalty     = 0.9
	ComplexityBonus = 1.2
	ComplexityTier  = 3
	Divisor         = 2.0
)

// Match is the strongest classification for one category
type Match struct {
	CategoryID int64    `json:"category_id"`
	Category   string   `json:"category"`
	Confidence float64  `json:"confidence"`
	Keywords   []string `json:"keywords"`
	Root       bool     `json:"root"`
	Color      string   `json:"color"`
}

// Result is the outcome of one pass over one taxonomy
type Result struct {
	Kind       taxonomy.Kind `json:"kind"`
	Text       string        `json:"text"`
	Normalized string        `json:"normalized"`
	Matches    []Match       `json:"matches"`
	Best       *Match        `json:"best,omitempty"`
	Confidence float64       `json:"confidence"`
	Generation uint64        `json:"generation"`
}

// Score computes the confidence of one entry
// saturation at 1.0 is intentional; strong stacked bonuses become indistinguishable
func Score(e taxonomy.Entry, kind taxonomy.Kind, wholeWord bool) float64 {
	c := e.Weight
	if wholeWord {
		c *= WholeWordBonus
	}
	if e.Synonym {
		c *= SynonymPenalty
	}
	if e.IsRoot() {
		c *= RootBonus
	} else {
		c *= LeafPenalty
	}
	if kind == taxonomy.KindLabor && e.Complexity >= ComplexityTier {
		c *= ComplexityBonus
	}
	return math.Min(c/Divisor, 1.0)
}

// candidate is one above-threshold hit before per-category dedup
type candidate struct {
	entry      taxonomy.Entry
	confidence float64
}

// Classify is a pure function of (snapshot, text, threshold)
func Classify(snap *taxonomy.Snapshot, text string, threshold float64) Result {
	res := Result{Text: text, Normalized: normalize.Text(text), Matches: []Match{}}
	if snap != nil {
		res.Kind = snap.Kind
		res.Generation = snap.Generation
	}
	if res.Normalized == "" || snap == nil {
		return res
	}

	var cands []candidate
	for _, key := range snap.Keys() {
		if !strings.Contains(res.Normalized, key) {
			continue
		}
		whole := normalize.WholeWord(res.Normalized, key)
		for _, e := range snap.Entries(key) {
			c := Score(e, snap.Kind, whole)
			if c >= threshold {
				cands = append(cands, candidate{entry: e, confidence: c})
			}
		}
	}

	res.Matches = dedup(cands)
	if len(res.Matches) > 0 {
		best := res.Matches[0]
		res.Best = &best
		res.Confidence = best.Confidence
	}
	return res
}

// dedup keeps the highest candidate per category name (first seen wins ties),
// collects every distinct keyword of that category with the winner's first,
// then ranks by confidence desc
func dedup(cands []candidate) []Match {
	type acc struct {
		win  candidate
		kws  []string
		seen map[string]struct{}
	}
	order := []string{}
	byCat := map[string]*acc{}
	for _, c := range cands {
		name := c.entry.CategoryName
		a, ok := byCat[name]
		if !ok {
			a = &acc{win: c, seen: map[string]struct{}{}}
			byCat[name] = a
			order = append(order, name)
		} else if c.confidence > a.win.confidence {
			a.win = c
		}
		if _, dup := a.seen[c.entry.Keyword]; !dup {
			a.seen[c.entry.Keyword] = struct{}{}
			a.kws = append(a.kws, c.entry.Keyword)
		}
	}

	out := make([]Match, 0, len(order))
	for _, name := range order {
		a := byCat[name]
		kws := make([]string, 0, len(a.kws))
		kws = append(kws, a.win.entry.Keyword)
		for _, k := range a.kws {
			if k != a.win.entry.Keyword {
				kws = append(kws, k)
			}
		}
		out = append(out, Match{
			CategoryID: a.win.entry.CategoryID,
			Category:   name,
			Confidence: a.win.confidence,
			Keywords:   kws,
			Root:       a.win.entry.IsRoot(),
			Color:      a.win.entry.Color,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Confidence > out[j].Confidence })
	return out
}

// SnapshotLoader is the part of taxonomy.Loader the engine needs
type SnapshotLoader interface {
	Load(ctx context.Context, kind taxonomy.Kind) (*taxonomy.Snapshot, error)
}

// Engine binds Classify to a cached taxonomy
type Engine struct {
	tax SnapshotLoader
}

// NewEngine constructs an Engine over a loader
func NewEngine(tax SnapshotLoader) *Engine {
	if tax == nil {
		panic("classifier: nil SnapshotLoader")
	}
	return &Engine{tax: tax}
}

// Classify loads the kind's snapshot and classifies text against it
// Blank text short-circuits without touching the taxonomy; load failures propagate
func (e *Engine) Classify(ctx context.Context, text string, kind taxonomy.Kind, threshold float64) (Result, error) {
	if normalize.Text(text) == "" {
		return Result{Kind: kind, Text: text, Matches: []Match{}}, nil
	}
	snap, err := e.tax.Load(ctx, kind)
	if err != nil {
		return Result{}, err
	}
	return Classify(snap, text, threshold), nil
}
