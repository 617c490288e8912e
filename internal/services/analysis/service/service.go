// Package service implements the maintenance analyzer
package service

import (
	"context"
	"fmt"
	"math"

	"taller/internal/core/classifier"
	"taller/internal/core/taxonomy"
	"taller/internal/platform/logger"
	dom "taller/internal/services/analysis/domain"
)

// EmptySummary is reported for a blank description
const EmptySummary = "Sin descripción para analizar"

// Config tunes the analyzer
type Config struct {
	Threshold   float64
	TopN        int
	PartLabels  []string
	LaborLabels []string
	// Record enables the audit trail for inputs carrying a record id
	Record   bool
	Workers  int
	BatchMax int
}

// DefaultConfig mirrors the defaults read by the module
func DefaultConfig() Config {
	return Config{
		Threshold:   classifier.DefaultThreshold,
		TopN:        5,
		PartLabels:  []string{"repuesto", "parts"},
		LaborLabels: []string{"trabajo", "labor"},
		Record:      true,
		Workers:     4,
		BatchMax:    500,
	}
}

// Service implements domain.AnalyzerPort
type Service struct {
	engine dom.Classifier
	rec    dom.Recorder
	cfg    Config
	log    logger.Logger
}

// New constructs the analyzer; rec may be nil to disable recording
func New(engine dom.Classifier, rec dom.Recorder, cfg Config, log logger.Logger) *Service {
	if engine == nil {
		panic("analysis: nil classifier")
	}
	if cfg.TopN <= 0 {
		cfg.TopN = 5
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.BatchMax <= 0 {
		cfg.BatchMax = 500
	}
	return &Service{engine: engine, rec: rec, cfg: cfg, log: log}
}

// Classify runs a single pass with the configured threshold
func (s *Service) Classify(ctx context.Context, text string, kind taxonomy.Kind) (classifier.Result, error) {
	return s.engine.Classify(ctx, text, kind, s.cfg.Threshold)
}

// Analyze implements domain.AnalyzerPort
// taxonomy failures fail the call; recording failures are only logged
func (s *Service) Analyze(ctx context.Context, in dom.AnalyzeInput) (dom.Report, error) {
	if in.Description == "" {
		return dom.Report{Parts: []dom.MatchView{}, Labor: []dom.MatchView{}, Summary: EmptySummary}, nil
	}

	partsText, laborText := Split(in.Description, s.cfg.PartLabels, s.cfg.LaborLabels)
	parts, err := s.Classify(ctx, partsText, taxonomy.KindPart)
	if err != nil {
		return dom.Report{}, err
	}
	labor, err := s.Classify(ctx, laborText, taxonomy.KindLabor)
	if err != nil {
		return dom.Report{}, err
	}

	if in.RecordID != nil {
		s.record(ctx, *in.RecordID, parts)
		s.record(ctx, *in.RecordID, labor)
	}
	return s.report(parts, labor), nil
}

func (s *Service) record(ctx context.Context, recordID int64, res classifier.Result) {
	if !s.cfg.Record || s.rec == nil || res.Best == nil {
		return
	}
	if err := s.rec.Record(ctx, recordID, res); err != nil {
		logger.C(ctx).Warn().Err(err).
			Int64("record_id", recordID).
			Str("pass", string(res.Kind)).
			Str("category", res.Best.Category).
			Msg("classification not recorded")
	}
}

func (s *Service) report(parts, labor classifier.Result) dom.Report {
	return dom.Report{
		Parts:           s.views(parts.Matches),
		Labor:           s.views(labor.Matches),
		PartConfidence:  Percent(parts.Confidence),
		LaborConfidence: Percent(labor.Confidence),
		BestPart:        bestName(parts),
		BestLabor:       bestName(labor),
		Summary:         fmt.Sprintf("Detectados %d tipos de repuestos y %d tipos de trabajos", len(parts.Matches), len(labor.Matches)),
	}
}

// views truncates to the top N; best and overall confidence come from the full list
func (s *Service) views(ms []classifier.Match) []dom.MatchView {
	n := min(len(ms), s.cfg.TopN)
	out := make([]dom.MatchView, 0, n)
	for _, m := range ms[:n] {
		out = append(out, dom.MatchView{
			Category:   m.Category,
			Confidence: Percent(m.Confidence),
			Keywords:   append([]string{}, m.Keywords...),
			Color:      m.Color,
		})
	}
	return out
}

func bestName(r classifier.Result) *string {
	if r.Best == nil {
		return nil
	}
	name := r.Best.Category
	return &name
}

// Percent scales a 0..1 confidence to a percentage with one decimal
func Percent(c float64) float64 { return Round1(c * 100) }

// Round1 rounds half away from zero to one decimal
func Round1(v float64) float64 { return math.Round(v*10) / 10 }
