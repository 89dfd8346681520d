// Package app provides the core service that implements the dependencies
// required by the HTTP API: dataset ingest, the analysis pipeline and the
// aggregate views.
package app

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	datafile "github.com/okian/regista/internal/adapters/datasource/file"
	"github.com/okian/regista/internal/adapters/fbref"
	"github.com/okian/regista/internal/adapters/repository"
	"github.com/okian/regista/internal/domain/analysis"
	"github.com/okian/regista/internal/domain/league"
	"github.com/okian/regista/internal/domain/model"
	"github.com/okian/regista/pkg/logger"
	"github.com/okian/regista/pkg/metrics"
)

// Default service configuration.
const (
	defaultMaxResultLimit = 500
)

// Service implements the API dependencies for the dashboard.
type Service struct {
	mu sync.RWMutex

	// Core components
	datasets repository.Store
	parser   *fbref.Parser
	loader   *datafile.Loader

	// Configuration
	dataPath       string
	watchData      bool
	defaultParams  analysis.Params
	maxResultLimit int

	// State
	started   bool
	stopWatch context.CancelFunc
	watchDone chan struct{}

	// Logging
	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		defaultParams:  analysis.DefaultParams(),
		maxResultLimit: defaultMaxResultLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the service: the dataset registry, the parser, and,
// when configured, the preloaded dataset and its file monitor. A missing
// or malformed preloaded file is logged and skipped; uploads still work.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting dashboard service...")

	s.datasets = repository.NewMemStore()
	s.parser = fbref.NewParser(fbref.WithLogger(s.logger))

	if s.dataPath != "" {
		s.loader = datafile.NewLoader(s.dataPath, s.parser)
		if err := s.loadPreloaded(ctx); err != nil {
			s.logger.Warn(ctx, "preloaded data unavailable; waiting for uploads",
				logger.String("path", s.dataPath), logger.Error(err))
		}
		if s.watchData {
			if err := s.startMonitor(ctx); err != nil {
				s.logger.Warn(ctx, "data file monitor unavailable",
					logger.String("path", s.dataPath), logger.Error(err))
			}
		}
	}

	s.started = true
	s.logger.Info(ctx, "dashboard service started",
		logger.String("data_path", s.dataPath),
		logger.Int("datasets", s.datasets.Count(ctx)),
		logger.Int("players", s.datasets.RowCount(ctx)),
	)
	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping dashboard service...")

	if s.stopWatch != nil {
		s.stopWatch()
		<-s.watchDone
		s.stopWatch = nil
	}

	s.started = false
	s.logger.Info(context.Background(), "dashboard service stopped")
}

// loadPreloaded loads or reloads the on-disk dataset. Caller holds the
// lock only during Start; the monitor path takes the store's own locks.
func (s *Service) loadPreloaded(ctx context.Context) error {
	ds, err := s.loader.Load(ctx)
	if err != nil {
		return err
	}
	if err := s.datasets.Put(ctx, ds); err != nil {
		return err
	}
	metrics.RecordIngestRows(len(ds.Rows))
	s.updateGauges(ctx)
	s.logger.Info(ctx, "preloaded dataset loaded",
		logger.String("path", s.dataPath), logger.Int("rows", len(ds.Rows)))
	return nil
}

// startMonitor launches the fsnotify watch loop. Caller holds the lock.
func (s *Service) startMonitor(ctx context.Context) error {
	monitor, err := datafile.NewMonitor(s.dataPath, s.logger)
	if err != nil {
		return err
	}

	watchCtx, cancel := context.WithCancel(context.Background())
	s.stopWatch = cancel
	s.watchDone = make(chan struct{})

	go func() {
		defer close(s.watchDone)
		err := monitor.Watch(watchCtx, func(ctx context.Context) error {
			metrics.RecordDataReload()
			return s.loadPreloaded(ctx)
		})
		if err != nil {
			s.logger.Warn(context.Background(), "data file monitor stopped", logger.Error(err))
		}
	}()

	s.logger.Info(ctx, "watching preloaded data file", logger.String("path", s.dataPath))
	return nil
}

// Ingest parses one uploaded CSV export and stores it. The source label
// is derived from the league so a re-upload for the same league replaces
// the previous one, matching the one-slot-per-league upload model.
func (s *Service) Ingest(ctx context.Context, leagueName string, r io.Reader) (repository.Info, error) {
	if s.datasets == nil {
		return repository.Info{}, ErrNotStarted
	}
	leagueName = strings.TrimSpace(leagueName)
	if leagueName != "" && !league.IsKnown(leagueName) {
		return repository.Info{}, fmt.Errorf("%w: %q", league.ErrUnknown, leagueName)
	}

	start := time.Now()
	rows, err := s.parser.Parse(ctx, r, leagueName)
	if err != nil {
		metrics.RecordIngestError()
		return repository.Info{}, err
	}

	source := "upload:combined"
	if leagueName != "" {
		source = "upload:" + leagueName
	}
	ds := repository.Dataset{
		ID:       uuid.NewString(),
		Source:   source,
		League:   leagueName,
		Rows:     rows,
		LoadedAt: time.Now(),
	}
	if err := s.datasets.Put(ctx, ds); err != nil {
		metrics.RecordIngestError()
		return repository.Info{}, err
	}

	metrics.RecordIngest()
	metrics.RecordIngestRows(len(rows))
	metrics.RecordIngestLatency(float64(time.Since(start).Milliseconds()))
	s.updateGauges(ctx)

	s.logger.Info(ctx, "dataset ingested",
		logger.String("source", source), logger.Int("rows", len(rows)))

	return repository.Info{
		ID:       ds.ID,
		Source:   ds.Source,
		League:   ds.League,
		Rows:     len(ds.Rows),
		LoadedAt: ds.LoadedAt,
	}, nil
}

// Datasets lists descriptors of everything loaded.
func (s *Service) Datasets(ctx context.Context) []repository.Info {
	if s.datasets == nil {
		return nil
	}
	return s.datasets.List(ctx)
}

// RemoveDataset drops a dataset by id.
func (s *Service) RemoveDataset(ctx context.Context, id string) error {
	if s.datasets == nil {
		return ErrNotStarted
	}
	if err := s.datasets.Remove(ctx, id); err != nil {
		return err
	}
	s.updateGauges(ctx)
	return nil
}

// Leaderboard runs the filter/sort pipeline over the merged view and
// returns at most limit rows. limit <= 0 means no truncation.
func (s *Service) Leaderboard(ctx context.Context, p analysis.Params, leagueFilter string, limit int) ([]model.RankedPlayer, error) {
	result, err := s.analyze(ctx, p, leagueFilter)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Summary computes the aggregate view over the full (untruncated) result.
func (s *Service) Summary(ctx context.Context, p analysis.Params, leagueFilter string) (analysis.Summary, error) {
	result, err := s.analyze(ctx, p, leagueFilter)
	if err != nil {
		return analysis.Summary{}, err
	}
	return analysis.Summarize(result), nil
}

// analyze validates parameters and runs the pipeline, recording metrics.
func (s *Service) analyze(ctx context.Context, p analysis.Params, leagueFilter string) ([]model.RankedPlayer, error) {
	if s.datasets == nil {
		return nil, ErrNotStarted
	}
	if p.MaxAge < 0 || p.MinNineties < 0 {
		metrics.RecordAnalysisError()
		return nil, fmt.Errorf("%w: bounds must be non-negative", analysis.ErrBadParams)
	}

	start := time.Now()
	rows := s.datasets.Merged(ctx, leagueFilter)
	result := analysis.Analyze(rows, p)

	metrics.RecordAnalysisRun()
	metrics.RecordAnalysisLatency(float64(time.Since(start).Milliseconds()))

	s.logger.Debug(ctx, "analysis run",
		logger.Int("input_rows", len(rows)),
		logger.Int("result_rows", len(result)),
		logger.String("league", leagueFilter),
	)
	return result, nil
}

// DefaultParams returns the configured default filter parameters.
func (s *Service) DefaultParams() analysis.Params {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.defaultParams
}

// MaxResultLimit caps the limit query parameter.
func (s *Service) MaxResultLimit() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxResultLimit
}

// GetStats returns a snapshot of service statistics.
func (s *Service) GetStats() map[string]interface{} {
	ctx := context.Background()
	if s.datasets == nil {
		return map[string]interface{}{
			"datasets": 0,
			"players":  0,
			"started":  false,
		}
	}
	s.updateGauges(ctx)
	return map[string]interface{}{
		"datasets":        s.datasets.Count(ctx),
		"players":         s.datasets.RowCount(ctx),
		"dataPath":        s.dataPath,
		"watchingData":    s.watchData,
		"defaultMaxAge":   s.defaultParams.MaxAge,
		"defaultMin90s":   s.defaultParams.MinNineties,
		"defaultPosition": s.defaultParams.Position,
	}
}

// updateGauges pushes registry sizes to the metrics package.
func (s *Service) updateGauges(ctx context.Context) {
	metrics.UpdateDatasetCount(s.datasets.Count(ctx))
	metrics.UpdatePlayerCount(s.datasets.RowCount(ctx))
}
