package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/fitsync/fitsync/internal/models"
	"github.com/fitsync/fitsync/internal/repository"
)

// SessionService runs workout sessions: start, append completed sets one at
// a time, pause/resume, complete. Each step rewrites the whole document.
//
// Elapsed time is always "now − StartTime"; there is no running timer state
// in the document. Pausing freezes the elapsed value, and resuming
// re-anchors StartTime backward by exactly that amount
// (newStartTime = now − elapsedSoFar), so pauses never lose or gain time.
type SessionService struct {
	repo   *repository.Repository
	logger *slog.Logger

	// now is swapped out in tests to simulate the clock.
	now func() time.Time
}

// NewSessionService creates a new session service.
func NewSessionService(repo *repository.Repository, logger *slog.Logger) *SessionService {
	return &SessionService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// SetNow overrides the service clock. Test hook.
func (s *SessionService) SetNow(now func() time.Time) {
	s.now = now
}

// Start begins a session for a custom workout, denormalizing the workout
// name and exercise list into the session record.
func (s *SessionService) Start(ctx context.Context, userID, workoutID string) (*models.WorkoutSession, error) {
	data := s.repo.Current()
	if data == nil {
		return nil, repository.ErrDataNotLoaded
	}

	var workout *models.CustomWorkout
	for i := range data.CustomWorkouts {
		if data.CustomWorkouts[i].ID == workoutID {
			workout = &data.CustomWorkouts[i]
			break
		}
	}
	if workout == nil {
		return nil, ErrNotFound
	}

	exercises := make([]models.SessionExercise, 0, len(workout.Exercises))
	for _, ex := range workout.Exercises {
		exercises = append(exercises, models.SessionExercise{
			ExerciseID:    ex.ExerciseID,
			ExerciseName:  ex.ExerciseName,
			CompletedSets: []models.CompletedSet{},
		})
	}

	session := models.WorkoutSession{
		ID:          s.repo.GenerateID("session"),
		UserID:      userID,
		WorkoutID:   workout.ID,
		WorkoutName: workout.Name,
		Status:      models.SessionInProgress,
		StartTime:   s.now(),
		Exercises:   exercises,
	}
	data.WorkoutSessions = append(data.WorkoutSessions, session)

	if err := s.repo.Save(ctx, data); err != nil {
		return nil, err
	}
	s.logger.Info("session started", "session_id", session.ID, "workout_id", workoutID)
	return &session, nil
}

// CompleteSet appends one completed set to an exercise of a running session.
// Sets arrive one at a time as the user finishes them; each append is a full
// document rewrite.
func (s *SessionService) CompleteSet(ctx context.Context, sessionID, exerciseID string, reps int, weightKg float64) error {
	data := s.repo.Current()
	if data == nil {
		return repository.ErrDataNotLoaded
	}

	session := findSession(data, sessionID)
	if session == nil {
		return ErrNotFound
	}
	if session.Status != models.SessionInProgress {
		return ErrInvalidState
	}

	set := models.CompletedSet{
		Reps:        reps,
		WeightKg:    weightKg,
		CompletedAt: s.now(),
	}

	for i := range session.Exercises {
		if session.Exercises[i].ExerciseID == exerciseID {
			session.Exercises[i].CompletedSets = append(session.Exercises[i].CompletedSets, set)
			return s.repo.Save(ctx, data)
		}
	}

	// Exercise was not part of the planned workout; the user added it on
	// the fly. Track it like the others.
	session.Exercises = append(session.Exercises, models.SessionExercise{
		ExerciseID:    exerciseID,
		CompletedSets: []models.CompletedSet{set},
	})
	return s.repo.Save(ctx, data)
}

// Pause freezes a running session's elapsed time.
func (s *SessionService) Pause(ctx context.Context, sessionID string) error {
	data := s.repo.Current()
	if data == nil {
		return repository.ErrDataNotLoaded
	}

	session := findSession(data, sessionID)
	if session == nil {
		return ErrNotFound
	}
	if session.Status != models.SessionInProgress {
		return ErrInvalidState
	}

	session.ElapsedSeconds = int(s.now().Sub(session.StartTime).Seconds())
	session.Status = models.SessionPaused

	if err := s.repo.Save(ctx, data); err != nil {
		return err
	}
	s.logger.Info("session paused", "session_id", sessionID, "elapsed_s", session.ElapsedSeconds)
	return nil
}

// Resume continues a paused session, re-anchoring the start time so the
// pause duration is excluded from elapsed time.
func (s *SessionService) Resume(ctx context.Context, sessionID string) error {
	data := s.repo.Current()
	if data == nil {
		return repository.ErrDataNotLoaded
	}

	session := findSession(data, sessionID)
	if session == nil {
		return ErrNotFound
	}
	if session.Status != models.SessionPaused {
		return ErrInvalidState
	}

	session.StartTime = s.now().Add(-time.Duration(session.ElapsedSeconds) * time.Second)
	session.Status = models.SessionInProgress

	if err := s.repo.Save(ctx, data); err != nil {
		return err
	}
	s.logger.Info("session resumed", "session_id", sessionID)
	return nil
}

// Elapsed reports the session's active time so far.
func (s *SessionService) Elapsed(sessionID string) (time.Duration, error) {
	data := s.repo.Current()
	if data == nil {
		return 0, repository.ErrDataNotLoaded
	}

	session := findSession(data, sessionID)
	if session == nil {
		return 0, ErrNotFound
	}

	switch session.Status {
	case models.SessionInProgress:
		return s.now().Sub(session.StartTime), nil
	case models.SessionPaused:
		return time.Duration(session.ElapsedSeconds) * time.Second, nil
	default:
		return time.Duration(session.DurationMinutes) * time.Minute, nil
	}
}

// Complete finishes a running session: duration from the wall-clock delta,
// then one progress entry per exercise holding its best completed set.
func (s *SessionService) Complete(ctx context.Context, sessionID string, caloriesBurned int) (*models.WorkoutSession, error) {
	data := s.repo.Current()
	if data == nil {
		return nil, repository.ErrDataNotLoaded
	}

	session := findSession(data, sessionID)
	if session == nil {
		return nil, ErrNotFound
	}
	if session.Status != models.SessionInProgress {
		return nil, ErrInvalidState
	}

	now := s.now()
	end := now
	session.EndTime = &end
	session.DurationMinutes = int(now.Sub(session.StartTime).Minutes())
	session.CaloriesBurned = caloriesBurned
	session.Status = models.SessionCompleted

	s.recordProgress(data, session, now)

	if err := s.repo.Save(ctx, data); err != nil {
		return nil, err
	}
	s.logger.Info("session completed",
		"session_id", sessionID,
		"duration_min", session.DurationMinutes,
		"calories", caloriesBurned,
	)
	out := *session
	return &out, nil
}

// recordProgress appends one progress entry per exercise that has completed
// sets: the best set by reps × weight volume, plus the exercise's total
// volume. The personalRecord flag is written as false unconditionally; prior
// records are never consulted, so the flag carries no information yet.
func (s *SessionService) recordProgress(data *models.AppData, session *models.WorkoutSession, now time.Time) {
	for _, ex := range session.Exercises {
		if len(ex.CompletedSets) == 0 {
			continue
		}

		best := ex.CompletedSets[0]
		total := 0.0
		for _, set := range ex.CompletedSets {
			total += set.Volume()
			if set.Volume() > best.Volume() {
				best = set
			}
		}

		data.WorkoutProgress = append(data.WorkoutProgress, models.WorkoutProgress{
			ID:             s.repo.GenerateID("progress"),
			UserID:         session.UserID,
			SessionID:      session.ID,
			ExerciseID:     ex.ExerciseID,
			ExerciseName:   ex.ExerciseName,
			Date:           now,
			BestSet:        best,
			TotalVolume:    total,
			PersonalRecord: false,
		})
	}
}

func findSession(data *models.AppData, sessionID string) *models.WorkoutSession {
	for i := range data.WorkoutSessions {
		if data.WorkoutSessions[i].ID == sessionID {
			return &data.WorkoutSessions[i]
		}
	}
	return nil
}
