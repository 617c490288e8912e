// Package http provides http transport for classification stats and history
package http

import (
	stdhttp "net/http"
	"strconv"

	"taller/internal/modkit/httpkit"
	perr "taller/internal/platform/errors"
	"taller/internal/services/classifications/domain"
)

// Register mounts classification endpoints on the given router
func Register(r httpkit.Router, s domain.QueryPort) {
	h := &handlers{svc: s}

	httpkit.GetJSON(r, "/stats", h.stats)
	httpkit.GetJSON(r, "/records/{id}", h.byRecord)
}

type handlers struct{ svc domain.QueryPort }

// @Summary Most detected categories
// @Tags Classifications
// @Produce json
// @Param limit query int false "max categories (default 10)"
// @Success 200 {object} domain.UsageReport "ok"
// @Failure 400 {object} swaggerkit.ErrorResponse
// @Router /classifications/stats [get]
func (h *handlers) stats(r *stdhttp.Request) (any, error) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, perr.WithField(perr.New(perr.ErrorCodeValidation, "limit must be a positive integer"), "limit")
		}
		limit = n
	}
	return h.svc.Report(r.Context(), limit)
}

// @Summary Classification history of one maintenance record
// @Tags Classifications
// @Produce json
// @Param id path int true "maintenance record id"
// @Success 200 {array} domain.Record "ok"
// @Failure 400 {object} swaggerkit.ErrorResponse
// @Router /classifications/records/{id} [get]
func (h *handlers) byRecord(r *stdhttp.Request) (any, error) {
	id, err := strconv.ParseInt(httpkit.URLParam(r, "id"), 10, 64)
	if err != nil {
		return nil, perr.WithField(perr.New(perr.ErrorCodeValidation, "id must be an integer"), "id")
	}
	return h.svc.ListByRecord(r.Context(), id)
}
