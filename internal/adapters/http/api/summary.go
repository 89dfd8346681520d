// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/regista/internal/domain/analysis"
)

// SummaryDependencies defines the interface for the aggregate view.
type SummaryDependencies interface {
	Summary(ctx context.Context, p analysis.Params, league string) (analysis.Summary, error)
	DefaultParams() analysis.Params
}

// SummaryHandler handles summary requests.
type SummaryHandler struct {
	deps SummaryDependencies
}

// NewSummaryHandler creates a new summary handler.
func NewSummaryHandler(deps SummaryDependencies) *SummaryHandler {
	return &SummaryHandler{deps: deps}
}

// HandleGetSummary handles GET /summary requests. The summary is computed
// over the full, untruncated pipeline result.
func (h *SummaryHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_summary"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	params, league, err := filterQuery(r, h.deps.DefaultParams())
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	summary, err := h.deps.Summary(r.Context(), params, league)
	if err != nil {
		status, code := classify(err)
		writeError(w, status, code, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
