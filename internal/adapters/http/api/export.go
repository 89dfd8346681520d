// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/okian/regista/internal/adapters/export"
	"github.com/okian/regista/pkg/metrics"
)

// ExportHandler streams the current leaderboard as a downloadable file.
type ExportHandler struct {
	deps LeaderboardDependencies
}

// NewExportHandler creates a new export handler.
func NewExportHandler(deps LeaderboardDependencies) *ExportHandler {
	return &ExportHandler{deps: deps}
}

// HandleExport handles GET /export?format=csv|xlsx requests. The filter
// parameters mirror /leaderboard; the export is never truncated.
func (h *ExportHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	const op = "api.export"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "xlsx" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	params, league, err := filterQuery(r, h.deps.DefaultParams())
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	result, err := h.deps.Leaderboard(r.Context(), params, league, 0)
	if err != nil {
		metrics.RecordExportError()
		status, code := classify(err)
		writeError(w, status, code, Wrap(op, err))
		return
	}

	switch format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="leaders.csv"`)
		err = export.WriteCSV(w, result)
	case "xlsx":
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="leaders.xlsx"`)
		err = export.WriteXLSX(w, result)
	}
	if err != nil {
		// Headers are already written; all we can do is count it.
		metrics.RecordExportError()
		return
	}
	metrics.RecordExport(format)
}
