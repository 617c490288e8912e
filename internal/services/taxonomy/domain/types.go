// Package domain defines the types and ports of the taxonomy service
package domain

import (
	"time"

	"taller/internal/core/taxonomy"
)

// CategoryView is one category as the loaded snapshot sees it
type CategoryView struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	ParentID   *int64   `json:"parent_id,omitempty"`
	Color      string   `json:"color"`
	Complexity int      `json:"complexity,omitempty"`
	Keywords   []string `json:"keywords"`
}

// View summarizes a loaded snapshot
type View struct {
	Kind       taxonomy.Kind  `json:"kind"`
	Generation uint64         `json:"generation"`
	LoadedAt   time.Time      `json:"loaded_at"`
	Keywords   int            `json:"keywords"`
	Categories []CategoryView `json:"categories"`
}

// SeedStats counts what a seed wrote per kind
type SeedStats struct {
	Kind       taxonomy.Kind `json:"kind"`
	Categories int           `json:"categories"`
	Keywords   int           `json:"keywords"`
}
