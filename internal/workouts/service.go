package workouts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/2beens/exerciselog/internal/telemetry/metrics"
	"github.com/2beens/exerciselog/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts_test

type entriesRepo interface {
	AddEntry(ctx context.Context, entry LogEntry, aggregate AggregateFunc) (*LogEntry, *AveragesSnapshot, error)
	ListEntries(ctx context.Context) ([]LogEntry, error)
	ListEntriesByID(ctx context.Context) ([]LogEntry, error)
	LatestSnapshot(ctx context.Context) (*AveragesSnapshot, error)
	ListSnapshots(ctx context.Context) ([]AveragesSnapshot, error)
	Clear(ctx context.Context) error
}

type averagesCache interface {
	Get(ctx context.Context) (*AveragesSnapshot, error)
	Set(ctx context.Context, snapshot AveragesSnapshot) error
	Invalidate(ctx context.Context) error
}

type Service struct {
	repo           entriesRepo
	cache          averagesCache
	metricsManager *metrics.Manager
}

func NewService(repo entriesRepo, cache averagesCache, metricsManager *metrics.Manager) *Service {
	if cache == nil {
		cache = NoopAveragesCache{}
	}
	return &Service{
		repo:           repo,
		cache:          cache,
		metricsManager: metricsManager,
	}
}

// Submit stores the entry and the averages recomputed over every stored entry.
func (s *Service) Submit(ctx context.Context, entry LogEntry) (*LogEntry, *AveragesSnapshot, error) {
	added, snapshot, err := s.repo.AddEntry(ctx, entry, Aggregate)
	if err != nil {
		return nil, nil, fmt.Errorf("add entry: %w", err)
	}

	s.metricsManager.CounterLogEntries.Inc()
	if err := s.cache.Set(ctx, *snapshot); err != nil {
		log.Errorf("workouts service: cache latest averages: %s", err)
		// the previous snapshot must not outlive this one
		if err := s.cache.Invalidate(ctx); err != nil {
			log.Errorf("workouts service: invalidate averages cache: %s", err)
		}
	}

	log.Debugf("workouts service: entry %d added, averages snapshot %d", added.ID, snapshot.ID)
	return added, snapshot, nil
}

func (s *Service) ListEntries(ctx context.Context) ([]LogEntry, error) {
	return s.repo.ListEntries(ctx)
}

// LatestAverages returns ErrNoAverages when nothing was submitted since the last clear.
func (s *Service) LatestAverages(ctx context.Context) (*AveragesSnapshot, error) {
	cached, err := s.cache.Get(ctx)
	if err == nil {
		s.metricsManager.CounterAveragesCache.WithLabelValues("hit").Inc()
		return cached, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		log.Errorf("workouts service: get cached averages: %s", err)
	}
	s.metricsManager.CounterAveragesCache.WithLabelValues("miss").Inc()

	snapshot, err := s.repo.LatestSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, *snapshot); err != nil {
		log.Errorf("workouts service: back-fill averages cache: %s", err)
	}

	return snapshot, nil
}

func (s *Service) AveragesHistory(ctx context.Context) ([]AveragesSnapshot, error) {
	return s.repo.ListSnapshots(ctx)
}

// Clear removes all entries and snapshots.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear: %w", err)
	}

	s.metricsManager.CounterClears.Inc()
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Errorf("workouts service: invalidate averages cache: %s", err)
	}

	return nil
}

// Export writes both CSV files and the archive holding them into dir, returning the archive path.
func (s *Service) Export(ctx context.Context, dir string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.export")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	start := time.Now()

	entries, err := s.repo.ListEntriesByID(ctx)
	if err != nil {
		return "", fmt.Errorf("list entries: %w", err)
	}

	logsPath := filepath.Join(dir, LogsCSVName)
	if err := writeFile(logsPath, func(w io.Writer) error {
		return WriteEntriesCSV(w, entries)
	}); err != nil {
		return "", fmt.Errorf("write %s: %w", LogsCSVName, err)
	}

	snapshots, err := s.repo.ListSnapshots(ctx)
	if err != nil {
		return "", fmt.Errorf("list averages: %w", err)
	}

	averagesPath := filepath.Join(dir, AveragesCSVName)
	if err := writeFile(averagesPath, func(w io.Writer) error {
		return WriteAveragesCSV(w, snapshots)
	}); err != nil {
		return "", fmt.Errorf("write %s: %w", AveragesCSVName, err)
	}

	archivePath := filepath.Join(dir, ArchiveName)
	if err := CreateArchive(archivePath, logsPath, averagesPath); err != nil {
		return "", err
	}

	s.metricsManager.CounterExports.Inc()
	s.metricsManager.HistogramExportDuration.Observe(time.Since(start).Seconds())

	return archivePath, nil
}
