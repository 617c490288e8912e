// Package domain defines the analysis request and report types
package domain

// AnalyzeInput is one maintenance description; RecordID enables the audit trail
type AnalyzeInput struct {
	Description string `json:"description" validate:"max=20000"`
	RecordID    *int64 `json:"record_id,omitempty" validate:"omitempty,min=1"`
}

// MatchView is one ranked category in a report; Confidence is a percentage
type MatchView struct {
	Category   string   `json:"category"`
	Confidence float64  `json:"confidence"`
	Keywords   []string `json:"keywords"`
	Color      string   `json:"color"`
}

// Report is the combined parts and labor analysis of one description
type Report struct {
	Parts           []MatchView `json:"parts"`
	Labor           []MatchView `json:"labor"`
	PartConfidence  float64     `json:"part_confidence"`
	LaborConfidence float64     `json:"labor_confidence"`
	BestPart        *string     `json:"best_part"`
	BestLabor       *string     `json:"best_labor"`
	Summary         string      `json:"summary"`
}

// BatchItem is a description plus the labels the aggregate report groups by
type BatchItem struct {
	AnalyzeInput
	Client    string `json:"client,omitempty" validate:"max=200"`
	Equipment string `json:"equipment,omitempty" validate:"max=200"`
}

// BatchInput is the body of a batch analysis
type BatchInput struct {
	Items []BatchItem `json:"items" validate:"required,min=1,dive"`
}

// CategoryAggregate summarizes one category across a batch
type CategoryAggregate struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
	// AvgConfidence is the mean of the per-report percentages, one decimal
	AvgConfidence float64  `json:"avg_confidence"`
	Color         string   `json:"color"`
	Clients       []string `json:"clients"`
	Equipment     []string `json:"equipment"`
}

// ClientSummary is what one client's descriptions mention most
type ClientSummary struct {
	Client     string   `json:"client"`
	PartUses   int      `json:"part_uses"`
	PartTypes  int      `json:"part_types"`
	TopParts   []string `json:"top_parts"`
	LaborUses  int      `json:"labor_uses"`
	LaborTypes int      `json:"labor_types"`
	TopLabor   []string `json:"top_labor"`
}

// BatchReport aggregates many analyses
type BatchReport struct {
	Total   int                 `json:"total"`
	Parts   []CategoryAggregate `json:"parts"`
	Labor   []CategoryAggregate `json:"labor"`
	Clients []ClientSummary     `json:"clients"`
	Reports []Report            `json:"reports"`
}
