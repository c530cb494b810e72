package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/fitsync/fitsync/internal/models"
	"github.com/fitsync/fitsync/internal/repository"
	"github.com/fitsync/fitsync/internal/stats"
	"github.com/fitsync/fitsync/internal/storage"
)

// legacyReadTimeout bounds the wait on the legacy session blob when building
// a summary; slow storage at startup degrades to zeroed stats instead of
// blocking the caller.
const legacyReadTimeout = 2 * time.Second

// ProgressService derives statistics from workout sessions. It reads the
// document's session list merged with the legacy "workout_sessions" storage
// blob (two stores that were never reconciled, only merged defensively with
// duplicate suppression) and feeds the result to the stats package.
type ProgressService struct {
	repo   *repository.Repository
	logger *slog.Logger

	now func() time.Time
}

// NewProgressService creates a new progress service.
func NewProgressService(repo *repository.Repository, logger *slog.Logger) *ProgressService {
	return &ProgressService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// SetNow overrides the service clock. Test hook.
func (s *ProgressService) SetNow(now func() time.Time) {
	s.now = now
}

// Summary bundles the derived statistics for one user.
type Summary struct {
	Weekly      stats.WeeklyStats
	Consistency float64
	Streak      stats.Streak
	Records     map[string]stats.PersonalRecord
}

// Summary computes all statistics for a user in one pass. The legacy store
// read is best-effort: on timeout or error the summary covers only the
// document sessions, and with no document at all it is all zeroes.
func (s *ProgressService) Summary(ctx context.Context, userID string) Summary {
	sessions, err := s.sessionsFor(ctx, userID)
	if err != nil {
		s.logger.Warn("stats degraded to defaults", "user_id", userID, "error", err)
		return Summary{Records: map[string]stats.PersonalRecord{}}
	}

	now := s.now()
	return Summary{
		Weekly:      stats.Weekly(sessions, now),
		Consistency: stats.Consistency(sessions, now),
		Streak:      stats.Streaks(sessions),
		Records:     stats.PersonalRecords(sessions),
	}
}

// WeeklyStats returns the current week's aggregates for a user.
func (s *ProgressService) WeeklyStats(ctx context.Context, userID string) (stats.WeeklyStats, error) {
	sessions, err := s.sessionsFor(ctx, userID)
	if err != nil {
		return stats.WeeklyStats{}, err
	}
	return stats.Weekly(sessions, s.now()), nil
}

// ConsistencyScore returns the 0–100 recent-frequency score for a user.
func (s *ProgressService) ConsistencyScore(ctx context.Context, userID string) (float64, error) {
	sessions, err := s.sessionsFor(ctx, userID)
	if err != nil {
		return 0, err
	}
	return stats.Consistency(sessions, s.now()), nil
}

// Streaks returns the user's current and longest workout streaks.
func (s *ProgressService) Streaks(ctx context.Context, userID string) (stats.Streak, error) {
	sessions, err := s.sessionsFor(ctx, userID)
	if err != nil {
		return stats.Streak{}, err
	}
	return stats.Streaks(sessions), nil
}

// PersonalRecords returns the per-exercise max single-set weights.
func (s *ProgressService) PersonalRecords(ctx context.Context, userID string) (map[string]stats.PersonalRecord, error) {
	sessions, err := s.sessionsFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return stats.PersonalRecords(sessions), nil
}

// ProgressEntries returns the recorded progress entries for a user, newest
// last (document order).
func (s *ProgressService) ProgressEntries(userID string) ([]models.WorkoutProgress, error) {
	data := s.repo.Current()
	if data == nil {
		return nil, repository.ErrDataNotLoaded
	}
	var out []models.WorkoutProgress
	for _, p := range data.WorkoutProgress {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

// Achievements reads the legacy achievements blob. Absent means empty.
func (s *ProgressService) Achievements(ctx context.Context) ([]models.Achievement, error) {
	var out []models.Achievement
	err := s.repo.GetBlob(ctx, storage.KeyAchievements, &out)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return []models.Achievement{}, nil
	}
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Achievement{}
	}
	return out, nil
}

// SaveAchievements replaces the legacy achievements blob.
func (s *ProgressService) SaveAchievements(ctx context.Context, achievements []models.Achievement) error {
	if achievements == nil {
		achievements = []models.Achievement{}
	}
	return s.repo.SetBlob(ctx, storage.KeyAchievements, achievements)
}

// sessionsFor merges the user's document sessions with the legacy session
// store and suppresses duplicates. Document entries come first, so they win
// the first-seen rule. A corrupt or slow legacy blob is skipped, not fatal.
func (s *ProgressService) sessionsFor(ctx context.Context, userID string) ([]models.WorkoutSession, error) {
	data := s.repo.Current()
	if data == nil {
		return nil, repository.ErrDataNotLoaded
	}

	var merged []models.WorkoutSession
	for _, sess := range data.WorkoutSessions {
		if sess.UserID == userID {
			merged = append(merged, sess)
		}
	}

	legacyCtx, cancel := context.WithTimeout(ctx, legacyReadTimeout)
	defer cancel()

	var legacy []models.WorkoutSession
	err := s.repo.GetBlob(legacyCtx, storage.KeyLegacySessions, &legacy)
	switch {
	case errors.Is(err, storage.ErrKeyNotFound):
		// No legacy store; nothing to merge.
	case err != nil:
		s.logger.Warn("skipping unreadable legacy session store", "error", err)
	default:
		for _, sess := range legacy {
			// Legacy records may predate user ids; an empty owner is
			// assumed to belong to the requesting (only) user.
			if sess.UserID == userID || sess.UserID == "" {
				merged = append(merged, sess)
			}
		}
	}

	return stats.Dedupe(merged), nil
}
