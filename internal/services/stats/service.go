package stats

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/kerchief/duelbot/internal/models"
	"github.com/kerchief/duelbot/internal/repositories/scores"
)

// Define errors
var (
	ErrNilConfig     = errors.New("config cannot be nil")
	ErrNilRepository = errors.New("repository cannot be nil")

	// ErrPersistFailed is returned when the snapshot could not be written
	// even after a retry. The in-memory update has still been applied.
	ErrPersistFailed = errors.New("failed to persist scores")
)

// service implements the Service interface. It owns the in-memory snapshot
// exclusively; all access goes through the mutex.
type service struct {
	repo scores.Repository

	mu       sync.Mutex
	snapshot models.ScoreSnapshot
}

// New creates a new stats service, loading the persisted snapshot
func New(ctx context.Context, cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}

	loaded, err := cfg.Repository.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load scores: %w", err)
	}

	return &service{
		repo:     cfg.Repository,
		snapshot: loaded.Snapshot,
	}, nil
}

// GetPlayerStats retrieves a copy of a player's record for a guild
func (s *service) GetPlayerStats(_ context.Context, input *GetPlayerStatsInput) (*GetPlayerStatsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if players, ok := s.snapshot[input.GuildID]; ok {
		if record, ok := players[input.UserID]; ok {
			copied := *record
			return &GetPlayerStatsOutput{Stats: &copied}, nil
		}
	}

	return &GetPlayerStatsOutput{Stats: models.NewPlayerStats()}, nil
}

// RecordResult applies one duel result and writes the snapshot through to the
// repository. A failed write is retried once; if the retry also fails the
// in-memory state keeps the update and ErrPersistFailed is returned.
func (s *service) RecordResult(ctx context.Context, input *RecordResultInput) (*RecordResultOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	switch input.Outcome {
	case models.GameOutcomeWin, models.GameOutcomeLoss, models.GameOutcomeTie:
	default:
		return nil, fmt.Errorf("unknown outcome %q", input.Outcome)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	players, ok := s.snapshot[input.GuildID]
	if !ok {
		players = make(map[string]*models.PlayerStats)
		s.snapshot[input.GuildID] = players
	}

	record, ok := players[input.UserID]
	if !ok {
		record = models.NewPlayerStats()
		players[input.UserID] = record
	}

	record.Username = input.Username
	record.Points += input.PointsDelta
	record.GamesPlayed++
	switch input.Outcome {
	case models.GameOutcomeWin:
		record.Wins++
	case models.GameOutcomeLoss:
		record.Losses++
	case models.GameOutcomeTie:
		record.Ties++
	}

	if err := s.persistLocked(ctx); err != nil {
		return nil, err
	}

	copied := *record
	return &RecordResultOutput{Stats: &copied}, nil
}

// persistLocked writes the snapshot through to the repository with one retry.
// Caller must hold s.mu.
func (s *service) persistLocked(ctx context.Context) error {
	saveInput := &scores.SaveInput{Snapshot: s.snapshot.Clone()}

	err := s.repo.Save(ctx, saveInput)
	if err == nil {
		return nil
	}

	log.Printf("Score persist failed, retrying: %v", err)
	if retryErr := s.repo.Save(ctx, saveInput); retryErr != nil {
		return fmt.Errorf("%w: %s", ErrPersistFailed, retryErr)
	}

	return nil
}
