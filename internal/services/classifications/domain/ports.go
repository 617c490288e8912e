package domain

import (
	"context"

	"taller/internal/core/classifier"
)

// WriterPort appends audit records
type WriterPort interface {
	// Record stores the best match of res for recordID; a result without a best match is a no-op
	Record(ctx context.Context, recordID int64, res classifier.Result) error
}

// QueryPort reads the audit trail
type QueryPort interface {
	UsageStats(ctx context.Context, limit int) ([]UsageRow, error)
	ListByRecord(ctx context.Context, recordID int64) ([]Record, error)
	Count(ctx context.Context) (int64, error)
	Report(ctx context.Context, limit int) (UsageReport, error)
}
