// Package service implements the classification audit trail
package service

import (
	"context"
	"math"
	"sync/atomic"
	"time"

	"taller/internal/core/classifier"
	"taller/internal/modkit/repokit"
	"taller/internal/platform/logger"
	dom "taller/internal/services/classifications/domain"
	"taller/internal/services/classifications/repo"

	"github.com/google/uuid"
)

// Palette colors usage stats by rank
var Palette = []string{
	"#007bff", "#28a745", "#ffc107", "#dc3545", "#6f42c1",
	"#fd7e14", "#20c997", "#6c757d", "#e83e8c", "#17a2b8",
}

// MirrorSink is the best-effort secondary sink
type MirrorSink interface {
	Migrate(ctx context.Context) error
	Insert(ctx context.Context, rs ...dom.Record) error
}

// Config for the classifications service
type Config struct {
	StatsLimit int
	HardLimit  int
}

type mirrorRef struct{ sink MirrorSink }

// Service implements domain.WriterPort and domain.QueryPort
type Service struct {
	db     repokit.TxRunner
	binder repokit.Binder[repo.Storage]
	// mirror is dropped by a failed Migrate while writers may be running
	mirror atomic.Pointer[mirrorRef]
	cfg    Config
	log    logger.Logger

	now   func() time.Time
	newID func() uuid.UUID
}

// New constructs the service; mirror may be nil
func New(db repokit.TxRunner, binder repokit.Binder[repo.Storage], mirror MirrorSink, cfg Config, log logger.Logger) *Service {
	if cfg.StatsLimit <= 0 {
		cfg.StatsLimit = 10
	}
	if cfg.HardLimit <= 0 {
		cfg.HardLimit = 100
	}
	s := &Service{
		db:     db,
		binder: binder,
		cfg:    cfg,
		log:    log,
		now:    time.Now,
		newID:  uuid.New,
	}
	if mirror != nil {
		s.mirror.Store(&mirrorRef{sink: mirror})
	}
	return s
}

// Mirror returns the active mirror sink, nil when none is configured or it was disabled
func (s *Service) Mirror() MirrorSink {
	if ref := s.mirror.Load(); ref != nil {
		return ref.sink
	}
	return nil
}

func (s *Service) storage() repo.Storage { return s.binder.Bind(s.db) }

// Migrate creates the primary schema and, when configured, the mirror table
// a mirror failure is logged and the mirror disabled
func (s *Service) Migrate(ctx context.Context) error {
	if err := s.storage().Migrate(ctx); err != nil {
		return err
	}
	if m := s.Mirror(); m != nil {
		if err := m.Migrate(ctx); err != nil {
			s.log.Warn().Err(err).Msg("classification mirror disabled")
			s.mirror.Store(nil)
		}
	}
	return nil
}

// Build turns a pass result into a record; ok is false when there is no best match
func (s *Service) Build(recordID int64, res classifier.Result) (dom.Record, bool) {
	if res.Best == nil {
		return dom.Record{}, false
	}
	kws := make([][]string, 0, len(res.Matches))
	for _, m := range res.Matches {
		kws = append(kws, append([]string(nil), m.Keywords...))
	}
	return dom.Record{
		ID:         s.newID(),
		CreatedAt:  s.now().UTC(),
		RecordID:   recordID,
		Text:       res.Text,
		Pass:       res.Kind,
		Category:   res.Best.Category,
		Confidence: res.Confidence,
		Keywords:   kws,
	}, true
}

// Record implements domain.WriterPort
// the primary insert must succeed; the mirror is best-effort
func (s *Service) Record(ctx context.Context, recordID int64, res classifier.Result) error {
	rec, ok := s.Build(recordID, res)
	if !ok {
		return nil
	}
	if err := s.storage().Insert(ctx, rec); err != nil {
		return err
	}
	if m := s.Mirror(); m != nil {
		if err := m.Insert(ctx, rec); err != nil {
			s.log.Warn().Err(err).
				Str("id", rec.ID.String()).
				Int64("record_id", rec.RecordID).
				Msg("classification mirror insert failed")
		}
	}
	return nil
}

// UsageStats implements domain.QueryPort
// average confidence is reported as a percentage with one decimal; colors follow rank
func (s *Service) UsageStats(ctx context.Context, limit int) ([]dom.UsageRow, error) {
	if limit <= 0 {
		limit = s.cfg.StatsLimit
	}
	limit = min(limit, s.cfg.HardLimit)
	rows, err := s.storage().UsageStats(ctx, limit)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].AvgConfidence = math.Round(rows[i].AvgConfidence*1000) / 10
		rows[i].Color = Palette[i%len(Palette)]
	}
	return rows, nil
}

// ListByRecord implements domain.QueryPort
func (s *Service) ListByRecord(ctx context.Context, recordID int64) ([]dom.Record, error) {
	return s.storage().ListByRecord(ctx, recordID)
}

// Count implements domain.QueryPort
func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.storage().Count(ctx)
}

// Report combines the top categories with the total count
func (s *Service) Report(ctx context.Context, limit int) (dom.UsageReport, error) {
	rows, err := s.UsageStats(ctx, limit)
	if err != nil {
		return dom.UsageReport{}, err
	}
	n, err := s.Count(ctx)
	if err != nil {
		return dom.UsageReport{}, err
	}
	return dom.UsageReport{Total: n, Categories: rows}, nil
}
