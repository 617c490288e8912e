package domain

import (
	"context"

	"taller/internal/core/classifier"
	"taller/internal/core/taxonomy"
)

// AnalyzerPort analyzes maintenance descriptions
type AnalyzerPort interface {
	Analyze(ctx context.Context, in AnalyzeInput) (Report, error)
	AnalyzeBatch(ctx context.Context, items []BatchItem) (BatchReport, error)
	Classify(ctx context.Context, text string, kind taxonomy.Kind) (classifier.Result, error)
}

// Classifier runs one pass against one taxonomy
type Classifier interface {
	Classify(ctx context.Context, text string, kind taxonomy.Kind, threshold float64) (classifier.Result, error)
}

// Recorder persists the best match of a pass
type Recorder interface {
	Record(ctx context.Context, recordID int64, res classifier.Result) error
}
