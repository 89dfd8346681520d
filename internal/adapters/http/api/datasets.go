// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/okian/regista/internal/adapters/repository"
)

// Maximum accepted upload size. FBRef big-five exports run well under this.
const maxUploadBytes = 32 << 20

// DatasetDependencies defines the interface for dataset management.
type DatasetDependencies interface {
	Ingest(ctx context.Context, league string, r io.Reader) (repository.Info, error)
	Datasets(ctx context.Context) []repository.Info
	RemoveDataset(ctx context.Context, id string) error
}

// DatasetsHandler handles dataset upload, listing and removal.
type DatasetsHandler struct {
	deps DatasetDependencies
}

// NewDatasetsHandler creates a new datasets handler.
func NewDatasetsHandler(deps DatasetDependencies) *DatasetsHandler {
	return &DatasetsHandler{deps: deps}
}

// HandleDatasets handles GET /datasets and POST /datasets requests. A POST
// body is the raw CSV export; an optional league query parameter pins the
// league instead of inferring it per row.
func (h *DatasetsHandler) HandleDatasets(w http.ResponseWriter, r *http.Request) {
	const op = "api.datasets"
	switch r.Method {
	case http.MethodGet:
		infos := h.deps.Datasets(r.Context())
		if infos == nil {
			infos = []repository.Info{}
		}
		writeJSON(w, http.StatusOK, infos)
	case http.MethodPost:
		league := r.URL.Query().Get("league")
		body := http.MaxBytesReader(w, r.Body, maxUploadBytes)
		info, err := h.deps.Ingest(r.Context(), league, body)
		if err != nil {
			status, code := classify(err)
			writeError(w, status, code, Wrap(op, err))
			return
		}
		writeJSON(w, http.StatusCreated, info)
	default:
		http.NotFound(w, r)
	}
}

// HandleDatasetByID handles DELETE /datasets/{id} requests.
func (h *DatasetsHandler) HandleDatasetByID(w http.ResponseWriter, r *http.Request) {
	const op = "api.delete_dataset"
	if r.Method != http.MethodDelete {
		http.NotFound(w, r)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/datasets/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	if err := h.deps.RemoveDataset(r.Context(), id); err != nil {
		status, code := classify(err)
		writeError(w, status, code, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted", "id": id})
}
