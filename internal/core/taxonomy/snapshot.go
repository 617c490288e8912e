package taxonomy

import (
	"sort"
	"time"

	"taller/internal/core/normalize"
)

// Snapshot is an immutable keyword index for one kind
// it is never mutated after Build returns, so readers need no locking
type Snapshot struct {
	Kind       Kind
	Generation uint64
	LoadedAt   time.Time

	keys       []string // normalized keys in scan order
	index      map[string][]Entry
	entries    int
	categories int
}

// Build joins categories and keywords into a snapshot
// Keywords of unknown categories, with a non-positive weight, or that normalize to
// the empty string are skipped. Scan order is weight desc, leaf categories before
// roots, then source order.
func Build(kind Kind, cats []Category, kws []Keyword) *Snapshot {
	byID := make(map[int64]Category, len(cats))
	for _, c := range cats {
		byID[c.ID] = c
	}

	type row struct {
		norm string
		e    Entry
	}
	rows := make([]row, 0, len(kws))
	used := map[int64]struct{}{}
	for _, k := range kws {
		c, ok := byID[k.CategoryID]
		if !ok || k.Weight <= 0 {
			continue
		}
		n := normalize.Text(k.Text)
		if n == "" {
			continue
		}
		e := Entry{
			Keyword:      k.Text,
			Weight:       k.Weight,
			Synonym:      k.Synonym,
			PrincipalID:  k.PrincipalID,
			CategoryID:   c.ID,
			CategoryName: c.Name,
			ParentID:     c.ParentID,
			Color:        c.Color,
		}
		if kind == KindLabor {
			e.Complexity = c.Complexity
		}
		rows = append(rows, row{norm: n, e: e})
		used[c.ID] = struct{}{}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].e, rows[j].e
		if a.Weight != b.Weight {
			return a.Weight > b.Weight
		}
		return !a.IsRoot() && b.IsRoot()
	})

	s := &Snapshot{
		Kind:       kind,
		index:      make(map[string][]Entry, len(rows)),
		entries:    len(rows),
		categories: len(used),
	}
	for _, r := range rows {
		if _, seen := s.index[r.norm]; !seen {
			s.keys = append(s.keys, r.norm)
		}
		s.index[r.norm] = append(s.index[r.norm], r.e)
	}
	return s
}

// Keys returns the normalized keywords in scan order; callers must not modify it
func (s *Snapshot) Keys() []string {
	if s == nil {
		return nil
	}
	return s.keys
}

// Entries returns every entry registered under a normalized keyword
func (s *Snapshot) Entries(norm string) []Entry {
	if s == nil {
		return nil
	}
	return s.index[norm]
}

// Mapping returns a copy of the normalized keyword to entries mapping
func (s *Snapshot) Mapping() map[string][]Entry {
	out := make(map[string][]Entry, len(s.Keys()))
	for _, k := range s.Keys() {
		out[k] = append([]Entry(nil), s.index[k]...)
	}
	return out
}

// Len is the number of keyword entries in the snapshot
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return s.entries
}

// Categories is the number of distinct categories reachable through some keyword
func (s *Snapshot) Categories() int {
	if s == nil {
		return 0
	}
	return s.categories
}
