// Package http provides http transport for the taxonomy admin surface
package http

import (
	stdhttp "net/http"

	"taller/internal/core/taxonomy"
	"taller/internal/modkit/httpkit"
	"taller/internal/services/taxonomy/domain"
)

// Register mounts taxonomy endpoints on the given router
func Register(r httpkit.Router, s domain.AdminPort) {
	h := &handlers{svc: s}

	httpkit.GetJSON(r, "/", h.stats)
	httpkit.Post(r, "/invalidate", h.invalidate)
	httpkit.GetJSON(r, "/{kind}", h.view)
}

type handlers struct{ svc domain.AdminPort }

// @Summary Taxonomy cache state
// @Tags Taxonomy
// @Produce json
// @Success 200 {array} taxonomy.Stat "ok"
// @Router /taxonomy [get]
func (h *handlers) stats(*stdhttp.Request) (any, error) {
	return h.svc.Stats(), nil
}

// @Summary Drop cached taxonomies
// @Description Call after editing categories or keywords; the next analysis reloads
// @Tags Taxonomy
// @Produce json
// @Success 200 {array} taxonomy.Stat "ok"
// @Router /taxonomy/invalidate [post]
func (h *handlers) invalidate(*stdhttp.Request) (any, error) {
	h.svc.Invalidate()
	return h.svc.Stats(), nil
}

// @Summary Loaded taxonomy for one kind
// @Tags Taxonomy
// @Produce json
// @Param kind path string true "part or labor"
// @Success 200 {object} domain.View "ok"
// @Failure 422 {object} swaggerkit.ErrorResponse
// @Router /taxonomy/{kind} [get]
func (h *handlers) view(r *stdhttp.Request) (any, error) {
	kind, err := taxonomy.ParseKind(httpkit.URLParam(r, "kind"))
	if err != nil {
		return nil, err
	}
	return h.svc.View(r.Context(), kind)
}
