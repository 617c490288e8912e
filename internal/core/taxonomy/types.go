// Package taxonomy holds the keyword taxonomies used to classify maintenance text
// and a loader that caches one immutable snapshot per kind
package taxonomy

import (
	"strings"

	perr "taller/internal/platform/errors"
)

// Kind selects one of the two independent taxonomies
type Kind string

const (
	// KindPart is the spare parts taxonomy
	KindPart Kind = "part"
	// KindLabor is the labor/work taxonomy
	KindLabor Kind = "labor"
)

// Kinds lists every taxonomy kind in a stable order
var Kinds = []Kind{KindPart, KindLabor}

// Valid reports whether k is a known kind
func (k Kind) Valid() bool { return k == KindPart || k == KindLabor }

// ParseKind accepts the canonical names plus the legacy spanish ones
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "part", "parts", "repuesto", "repuestos":
		return KindPart, nil
	case "labor", "work", "trabajo", "trabajos":
		return KindLabor, nil
	}
	return "", perr.InvalidArgf("unknown taxonomy kind %q", s)
}

// Category is an active category of either kind
type Category struct {
	ID       int64
	Name     string
	ParentID *int64 // nil for root categories
	Color    string
	// Complexity is the labor tier (1..n); always 0 for parts
	Complexity int
}

// IsRoot reports whether the category has no parent
func (c Category) IsRoot() bool { return c.ParentID == nil }

// Keyword is an active keyword registered under a category
type Keyword struct {
	ID          int64
	CategoryID  int64
	Text        string // original casing and accents
	Weight      float64
	Synonym     bool
	PrincipalID *int64
}

// Entry is one keyword joined with its category, as seen by the classifier
type Entry struct {
	Keyword      string
	Weight       float64
	Synonym      bool
	PrincipalID  *int64
	CategoryID   int64
	CategoryName string
	ParentID     *int64
	Color        string
	Complexity   int
}

// IsRoot reports whether the entry's category is a root category
func (e Entry) IsRoot() bool { return e.ParentID == nil }
