// Package http provides http transport for the analyzer
package http

import (
	stdhttp "net/http"
	"sync"

	"taller/internal/core/taxonomy"
	"taller/internal/modkit/httpkit"
	"taller/internal/platform/net/http/bind"
	"taller/internal/services/analysis/domain"

	"github.com/go-playground/validator/v10"
)

// ClassifyInput is a single pass request
type ClassifyInput struct {
	Text string `json:"text" validate:"max=20000"`
	Kind string `json:"kind" validate:"required,taxkind"`
}

var registerOnce sync.Once

func registerValidators() {
	registerOnce.Do(func() {
		err := bind.Register("taxkind", "{0} must be part or labor", func(fl validator.FieldLevel) bool {
			_, err := taxonomy.ParseKind(fl.Field().String())
			return err == nil
		})
		if err != nil {
			panic(err)
		}
	})
}

// Register mounts analysis endpoints on the given router
func Register(r httpkit.Router, s domain.AnalyzerPort) {
	registerValidators()
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.AnalyzeInput](r, "/", h.analyze)
	httpkit.PostJSON[domain.BatchInput](r, "/batch", h.batch)
	httpkit.PostJSON[ClassifyInput](r, "/classify", h.classify)
}

type handlers struct{ svc domain.AnalyzerPort }

// @Summary Analyze a maintenance description
// @Description Splits the description into parts and labor segments and classifies both
// @Tags Analysis
// @Accept json
// @Produce json
// @Param payload body domain.AnalyzeInput true "Description"
// @Success 200 {object} domain.Report "ok"
// @Failure 400 {object} swaggerkit.ErrorResponse
// @Failure 503 {object} swaggerkit.ErrorResponse
// @Router /analysis [post]
func (h *handlers) analyze(r *stdhttp.Request, in domain.AnalyzeInput) (any, error) {
	return h.svc.Analyze(r.Context(), in)
}

// @Summary Analyze many descriptions and aggregate by category
// @Tags Analysis
// @Accept json
// @Produce json
// @Param payload body domain.BatchInput true "Descriptions"
// @Success 200 {object} domain.BatchReport "ok"
// @Failure 400 {object} swaggerkit.ErrorResponse
// @Failure 503 {object} swaggerkit.ErrorResponse
// @Router /analysis/batch [post]
func (h *handlers) batch(r *stdhttp.Request, in domain.BatchInput) (any, error) {
	return h.svc.AnalyzeBatch(r.Context(), in.Items)
}

// @Summary Classify text against one taxonomy
// @Tags Analysis
// @Accept json
// @Produce json
// @Param payload body ClassifyInput true "Text and kind"
// @Success 200 {object} classifier.Result "ok"
// @Failure 400 {object} swaggerkit.ErrorResponse
// @Failure 503 {object} swaggerkit.ErrorResponse
// @Router /analysis/classify [post]
func (h *handlers) classify(r *stdhttp.Request, in ClassifyInput) (any, error) {
	kind, err := taxonomy.ParseKind(in.Kind)
	if err != nil {
		return nil, err
	}
	return h.svc.Classify(r.Context(), in.Text, kind)
}
