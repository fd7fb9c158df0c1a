// Package service wires the converter, the feed merger and the store into the
// operations the HTTP API exposes.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/okian/playerdata/internal/adapters/repository"
	"github.com/okian/playerdata/internal/domain/convert"
	"github.com/okian/playerdata/internal/domain/dedupe"
	"github.com/okian/playerdata/internal/domain/feed"
	"github.com/okian/playerdata/internal/domain/highscore"
	"github.com/okian/playerdata/internal/domain/model"
	"github.com/okian/playerdata/pkg/logger"
	"github.com/okian/playerdata/pkg/metrics"
)

// DefaultMaxInputBytes bounds payload size when no limit is configured.
const DefaultMaxInputBytes = 1 << 20

// FeedReport describes one feed ingest.
type FeedReport struct {
	ID       string         `json:"id"`
	Player   string         `json:"player"`
	RealName string         `json:"realName"`
	Format   convert.Format `json:"format"`
	// Outcome is initial, overlap or gap.
	Outcome   string `json:"outcome"`
	Received  int    `json:"received"`
	Prepended int    `json:"prepended"`
	Total     int    `json:"total"`
}

// HighscoreReport describes one highscore ingest.
type HighscoreReport struct {
	ID          string         `json:"id"`
	Player      string         `json:"player"`
	Format      convert.Format `json:"format"`
	CapturedAt  time.Time      `json:"capturedAt"`
	Skills      int            `json:"skills"`
	Activities  int            `json:"activities"`
	Skipped     int            `json:"skipped"`
	CombatLevel int            `json:"combatLevel,omitempty"`
	// Duplicate is set when the payload was already ingested and not stored again.
	Duplicate bool `json:"duplicate"`
}

// Service implements the API dependencies for the player data system.
type Service struct {
	mu sync.RWMutex

	converter *convert.Converter
	store     repository.Store
	deduper   dedupe.Deduper

	maxInputBytes   int
	snapshotHistory int
	dedupeSize      int

	started   bool
	startedAt time.Time

	ingests  atomic.Int64
	failures atomic.Int64

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithConverter sets the converter used for every payload.
func WithConverter(c *convert.Converter) Option {
	return func(s *Service) {
		if c != nil {
			s.converter = c
		}
	}
}

// WithStore sets the store. Without it Start creates an in-process store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithMaxInputBytes bounds accepted payload size.
func WithMaxInputBytes(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxInputBytes = n
		}
	}
}

// WithDedupeSize sets how many highscore payload fingerprints are remembered.
// Zero or negative keeps every fingerprint.
func WithDedupeSize(n int) Option {
	return func(s *Service) {
		s.dedupeSize = n
	}
}

// WithSnapshotHistory sets the snapshots kept per player by the default store.
func WithSnapshotHistory(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.snapshotHistory = n
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		maxInputBytes:   DefaultMaxInputBytes,
		snapshotHistory: repository.DefaultSnapshotHistory,
		dedupeSize:      dedupe.DefaultMaxSize,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.converter == nil {
		s.converter = convert.New(convert.WithLogger(s.logger.Named("convert")))
	}
	if s.deduper == nil {
		s.deduper = dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(s.dedupeSize))
	}
	if s.store == nil {
		s.store = repository.NewMemoryStore(repository.WithSnapshotHistory(s.snapshotHistory))
		s.logger.Info(ctx, "using in-process store", logger.Int("snapshotHistory", s.snapshotHistory))
	}

	s.started = true
	s.startedAt = time.Now()
	s.logger.Info(ctx, "player data service started", logger.Int("maxInputBytes", s.maxInputBytes))

	return nil
}

// Stop marks the service stopped.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "player data service stopped")
}

// Convert decodes data without storing anything.
func (s *Service) Convert(ctx context.Context, format convert.Format, data []byte) (convert.Result, error) {
	if err := s.ready(); err != nil {
		return convert.Result{}, err
	}
	return s.convert(ctx, format, data)
}

// IngestFeed decodes a structured or markup payload and merges its feed into
// the stored one. Nothing is stored when decoding fails.
func (s *Service) IngestFeed(ctx context.Context, player model.Player, format convert.Format, data []byte) (FeedReport, error) {
	if err := s.ready(); err != nil {
		return FeedReport{}, err
	}
	if !format.YieldsFeed() {
		return FeedReport{}, fmt.Errorf("%w: %s has no activity feed", ErrWrongFormat, format)
	}

	res, err := s.convert(ctx, format, data)
	if err != nil {
		s.failures.Add(1)
		return FeedReport{}, err
	}

	var (
		rec     feed.Reconciliation
		initial bool
	)
	merged, err := s.store.UpdateFeed(ctx, player, func(current feed.Feed, exists bool) (feed.Feed, error) {
		initial = !exists
		rec = feed.Reconcile(current, *res.Feed)
		return rec.Merged, nil
	})
	if err != nil {
		s.failures.Add(1)
		return FeedReport{}, fmt.Errorf("store feed: %w", err)
	}

	outcome := metrics.MergeOverlap
	switch {
	case initial:
		outcome = metrics.MergeInitial
	case !rec.BoundaryFound:
		outcome = metrics.MergeGap
	}
	metrics.RecordMerge(outcome, rec.Prepended)
	s.ingests.Add(1)

	report := FeedReport{
		ID:        uuid.NewString(),
		Player:    player.Name,
		RealName:  res.RealName,
		Format:    format,
		Outcome:   outcome,
		Received:  res.Feed.Len(),
		Prepended: rec.Prepended,
		Total:     merged.Len(),
	}

	fields := []logger.Field{
		logger.String("ingestID", report.ID),
		logger.String("player", player.Name),
		logger.String("format", string(format)),
		logger.String("outcome", outcome),
		logger.Int("prepended", report.Prepended),
		logger.Int("total", report.Total),
	}
	if outcome == metrics.MergeGap {
		s.logger.Warn(ctx, "feed ingested with a gap, items may be missing", fields...)
	} else {
		s.logger.Info(ctx, "feed ingested", fields...)
	}

	return report, nil
}

// IngestHighscore decodes a lite or structured payload and stores it as the
// player's latest snapshot.
func (s *Service) IngestHighscore(ctx context.Context, player model.Player, format convert.Format, data []byte) (HighscoreReport, error) {
	if err := s.ready(); err != nil {
		return HighscoreReport{}, err
	}
	if !format.YieldsHighscore() {
		return HighscoreReport{}, fmt.Errorf("%w: %s has no highscores", ErrWrongFormat, format)
	}

	capturedAt := time.Now().UTC()
	res, err := s.convert(ctx, format, data, highscore.WithPlayer(player), highscore.WithCapturedAt(capturedAt))
	if err != nil {
		s.failures.Add(1)
		return HighscoreReport{}, err
	}

	report := HighscoreReport{
		ID:         uuid.NewString(),
		Player:     player.Name,
		Format:     format,
		CapturedAt: capturedAt,
		Skills:     len(res.Highscore.Skills()),
		Activities: len(res.Highscore.Activities()),
		Skipped:    res.Skipped,
	}
	if cl, err := res.Highscore.CombatLevel(true, false); err == nil {
		report.CombatLevel = cl
	}

	fingerprint := dedupe.Fingerprint(player.Key(), string(format), data)
	if s.deduper.SeenAndRecord(ctx, fingerprint) {
		metrics.RecordDuplicate(string(format))
		s.logger.Info(ctx, "highscore payload already ingested",
			logger.String("ingestID", report.ID),
			logger.String("player", player.Name),
			logger.String("format", string(format)),
		)
		report.Duplicate = true
		return report, nil
	}

	if err := s.store.SaveSnapshot(ctx, player, res.Highscore); err != nil {
		s.deduper.Unrecord(ctx, fingerprint)
		s.failures.Add(1)
		return HighscoreReport{}, fmt.Errorf("store snapshot: %w", err)
	}
	metrics.RecordSnapshotSaved()
	s.ingests.Add(1)

	s.logger.Info(ctx, "highscore ingested",
		logger.String("ingestID", report.ID),
		logger.String("player", player.Name),
		logger.String("format", string(format)),
		logger.Int("skills", report.Skills),
		logger.Int("activities", report.Activities),
		logger.Int("skipped", report.Skipped),
	)

	return report, nil
}

// Feed returns the player's stored feed.
func (s *Service) Feed(ctx context.Context, player model.Player) (feed.Feed, error) {
	if err := s.ready(); err != nil {
		return feed.Feed{}, err
	}
	return s.store.Feed(ctx, player)
}

// LatestHighscore returns the player's most recent snapshot.
func (s *Service) LatestHighscore(ctx context.Context, player model.Player) (*highscore.Snapshot, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.store.LatestSnapshot(ctx, player)
}

// HighscoreHistory returns the player's stored snapshots, newest first.
func (s *Service) HighscoreHistory(ctx context.Context, player model.Player) ([]*highscore.Snapshot, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.store.Snapshots(ctx, player)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":       s.started,
		"maxInputBytes": s.maxInputBytes,
		"ingests":       s.ingests.Load(),
		"failures":      s.failures.Load(),
		"formats":       convert.Formats,
	}

	if s.started {
		players := s.store.Count(context.Background())
		stats["players"] = players
		stats["fingerprints"] = s.deduper.Size()
		stats["uptimeSeconds"] = int64(time.Since(s.startedAt).Seconds())
		metrics.UpdateTrackedPlayers(players)
	}

	return stats
}

// MaxInputBytes returns the payload size limit.
func (s *Service) MaxInputBytes() int {
	return s.maxInputBytes
}

func (s *Service) ready() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return ErrNotStarted
	}
	return nil
}

// convert runs the converter with size checks, logging and metrics.
func (s *Service) convert(ctx context.Context, format convert.Format, data []byte, opts ...highscore.Option) (convert.Result, error) {
	if len(data) > s.maxInputBytes {
		metrics.RecordConversion(string(format), metrics.OutcomeRejected, 0)
		return convert.Result{}, fmt.Errorf("%w: %d bytes, limit %d", ErrInputTooLarge, len(data), s.maxInputBytes)
	}

	start := time.Now()
	res, err := s.converter.Convert(ctx, format, data, opts...)
	elapsed := time.Since(start)

	if err != nil {
		outcome := outcomeOf(err)
		metrics.RecordConversion(string(format), outcome, elapsed)
		s.logger.Warn(ctx, "conversion failed",
			logger.String("format", string(format)),
			logger.String("outcome", outcome),
			logger.Error(err),
		)
		return convert.Result{}, err
	}

	metrics.RecordConversion(string(format), metrics.OutcomeOK, elapsed)
	metrics.RecordSkippedRecords(string(format), res.Skipped)
	s.logger.Debug(ctx, "payload converted",
		logger.String("format", string(format)),
		logger.Int("bytes", len(data)),
		logger.Int("skipped", res.Skipped),
		logger.Duration("elapsed", elapsed),
	)
	return res, nil
}

func outcomeOf(err error) string {
	switch kind := convert.KindOf(err); {
	case errors.Is(kind, convert.ErrMalformedInput):
		return metrics.OutcomeMalformed
	case errors.Is(kind, convert.ErrEmptyResult):
		return metrics.OutcomeEmpty
	case errors.Is(kind, convert.ErrRemoteError):
		return metrics.OutcomeRemote
	default:
		return metrics.OutcomeRejected
	}
}
