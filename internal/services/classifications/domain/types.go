// Package domain defines the types and ports of the classification audit trail
package domain

import (
	"time"

	"taller/internal/core/taxonomy"

	"github.com/google/uuid"
)

// Record is one audited classification; records are append-only
type Record struct {
	ID         uuid.UUID     `json:"id"`
	CreatedAt  time.Time     `json:"created_at"`
	RecordID   int64         `json:"record_id"`
	Text       string        `json:"text"`
	Pass       taxonomy.Kind `json:"pass"`
	Category   string        `json:"category"`
	Confidence float64       `json:"confidence"`
	// Keywords holds the matched keywords of every surviving candidate, best first
	Keywords [][]string `json:"keywords"`
}

// UsageRow is how often a category was detected and with what average confidence
type UsageRow struct {
	Category      string  `json:"category"`
	Uses          int64   `json:"uses"`
	AvgConfidence float64 `json:"avg_confidence"`
	Color         string  `json:"color,omitempty"`
}

// UsageReport wraps the top categories with the total record count
type UsageReport struct {
	Total      int64      `json:"total"`
	Categories []UsageRow `json:"categories"`
}
