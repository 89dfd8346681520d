// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/regista/internal/adapters/repository"
	"github.com/okian/regista/internal/domain/analysis"
	"github.com/okian/regista/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Ingest parses one uploaded CSV export and stores it as a dataset.
	Ingest(ctx context.Context, league string, r io.Reader) (repository.Info, error)

	// Datasets lists descriptors of every loaded dataset.
	Datasets(ctx context.Context) []repository.Info

	// RemoveDataset drops a dataset by id.
	RemoveDataset(ctx context.Context, id string) error

	// Read operations run the filter/sort pipeline over the merged view.
	Leaderboard(ctx context.Context, p analysis.Params, league string, limit int) ([]model.RankedPlayer, error)
	Summary(ctx context.Context, p analysis.Params, league string) (analysis.Summary, error)

	// DefaultParams supplies the filter defaults applied when a query
	// parameter is absent.
	DefaultParams() analysis.Params

	// MaxResultLimit caps the limit query parameter.
	MaxResultLimit() int
}

// Default number of leaderboard rows when no limit is requested.
const defaultLimit = 50

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	datasetsHandler    *DatasetsHandler
	leaderboardHandler *LeaderboardHandler
	summaryHandler     *SummaryHandler
	exportHandler      *ExportHandler
	dashboardHandler   *dashboardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		datasetsHandler:    NewDatasetsHandler(deps),
		leaderboardHandler: NewLeaderboardHandler(deps),
		summaryHandler:     NewSummaryHandler(deps),
		exportHandler:      NewExportHandler(deps),
		dashboardHandler:   newdashboardHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/dashboard", s.dashboardHandler.HandleDashboard)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/leaderboard", MetricsMiddleware(s.leaderboardHandler.HandleGetLeaderboard, "leaderboard"))
	mux.HandleFunc("/summary", MetricsMiddleware(s.summaryHandler.HandleGetSummary, "summary"))
	mux.HandleFunc("/export", MetricsMiddleware(s.exportHandler.HandleExport, "export"))
	mux.HandleFunc("/datasets", MetricsMiddleware(s.datasetsHandler.HandleDatasets, "datasets"))
	mux.HandleFunc("/datasets/", MetricsMiddleware(s.datasetsHandler.HandleDatasetByID, "datasets"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// filterQuery extracts the pipeline parameters from the query string,
// falling back to the service defaults for absent values.
func filterQuery(r *http.Request, defaults analysis.Params) (analysis.Params, string, error) {
	q := r.URL.Query()
	p := defaults

	if v := strings.TrimSpace(q.Get("max_age")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return p, "", WrapKind("api.filter_query", ErrBadRequest, err)
		}
		p.MaxAge = n
	}
	if v := strings.TrimSpace(q.Get("min_90s")); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return p, "", WrapKind("api.filter_query", ErrBadRequest, err)
		}
		p.MinNineties = f
	}
	if v := strings.TrimSpace(q.Get("position")); v != "" {
		p.Position = v
	}
	return p, strings.TrimSpace(q.Get("league")), nil
}
