package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/fitsync/fitsync/internal/models"
	"github.com/fitsync/fitsync/internal/repository"
	"github.com/fitsync/fitsync/internal/storage"
)

// WorkoutService manages the workout-system context: user-authored custom
// workouts, the Sunday-to-Saturday weekly plans, day plans pinned to calendar
// dates, and the per-weekday selected-exercise blobs stored beside the
// document.
type WorkoutService struct {
	repo *repository.Repository
}

// NewWorkoutService creates a new workout service.
func NewWorkoutService(repo *repository.Repository) *WorkoutService {
	return &WorkoutService{repo: repo}
}

// CreateWorkout adds a custom workout for the user.
func (s *WorkoutService) CreateWorkout(ctx context.Context, w models.CustomWorkout) (*models.CustomWorkout, error) {
	if w.UserID == "" || w.Name == "" {
		return nil, ErrInvalidInput
	}
	data := s.repo.Current()
	if data == nil {
		return nil, repository.ErrDataNotLoaded
	}

	now := time.Now()
	w.ID = s.repo.GenerateID("workout")
	w.CreatedAt = now
	w.UpdatedAt = now
	if w.Exercises == nil {
		w.Exercises = []models.WorkoutExercise{}
	}
	data.CustomWorkouts = append(data.CustomWorkouts, w)

	if err := s.repo.Save(ctx, data); err != nil {
		return nil, err
	}
	slog.Info("custom workout created", "workout_id", w.ID, "user_id", w.UserID)
	return &w, nil
}

// Workouts returns the custom workouts belonging to the user.
func (s *WorkoutService) Workouts(userID string) ([]models.CustomWorkout, error) {
	data := s.repo.Current()
	if data == nil {
		return nil, repository.ErrDataNotLoaded
	}
	var out []models.CustomWorkout
	for _, w := range data.CustomWorkouts {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	return out, nil
}

// UpdateWorkout replaces a custom workout by id, preserving creation data.
func (s *WorkoutService) UpdateWorkout(ctx context.Context, w models.CustomWorkout) error {
	data := s.repo.Current()
	if data == nil {
		return repository.ErrDataNotLoaded
	}

	for i := range data.CustomWorkouts {
		if data.CustomWorkouts[i].ID != w.ID {
			continue
		}
		w.UserID = data.CustomWorkouts[i].UserID
		w.CreatedAt = data.CustomWorkouts[i].CreatedAt
		w.UpdatedAt = time.Now()
		data.CustomWorkouts[i] = w
		return s.repo.Save(ctx, data)
	}
	return ErrNotFound
}

// DeleteWorkout removes a custom workout. Sessions keep their denormalized
// workout names; weekly plans keep dangling references, as they always have.
func (s *WorkoutService) DeleteWorkout(ctx context.Context, workoutID string) error {
	data := s.repo.Current()
	if data == nil {
		return repository.ErrDataNotLoaded
	}

	for i := range data.CustomWorkouts {
		if data.CustomWorkouts[i].ID != workoutID {
			continue
		}
		data.CustomWorkouts = append(data.CustomWorkouts[:i], data.CustomWorkouts[i+1:]...)
		return s.repo.Save(ctx, data)
	}
	return ErrNotFound
}

// CreateWeeklyPlan adds a weekly plan. Day indices must be within Sunday (0)
// to Saturday (6).
func (s *WorkoutService) CreateWeeklyPlan(ctx context.Context, userID, name string, days []models.WeeklyDay) (*models.WeeklyPlan, error) {
	if userID == "" || name == "" {
		return nil, ErrInvalidInput
	}
	for _, d := range days {
		if d.Day < 0 || d.Day > 6 {
			return nil, ErrInvalidInput
		}
	}
	data := s.repo.Current()
	if data == nil {
		return nil, repository.ErrDataNotLoaded
	}

	now := time.Now()
	plan := models.WeeklyPlan{
		ID:        s.repo.GenerateID("weeklyplan"),
		UserID:    userID,
		Name:      name,
		Days:      days,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if plan.Days == nil {
		plan.Days = []models.WeeklyDay{}
	}
	data.WeeklyPlans = append(data.WeeklyPlans, plan)

	if err := s.repo.Save(ctx, data); err != nil {
		return nil, err
	}
	slog.Info("weekly plan created", "weekly_plan_id", plan.ID, "user_id", userID)
	return &plan, nil
}

// WeeklyPlans returns the weekly plans belonging to the user.
func (s *WorkoutService) WeeklyPlans(userID string) ([]models.WeeklyPlan, error) {
	data := s.repo.Current()
	if data == nil {
		return nil, repository.ErrDataNotLoaded
	}
	var out []models.WeeklyPlan
	for _, p := range data.WeeklyPlans {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

// ActiveWeeklyPlan returns the user's active weekly plan, or ErrNotFound.
func (s *WorkoutService) ActiveWeeklyPlan(userID string) (*models.WeeklyPlan, error) {
	plans, err := s.WeeklyPlans(userID)
	if err != nil {
		return nil, err
	}
	for _, p := range plans {
		if p.IsActive {
			out := p
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

// SetActiveWeeklyPlan marks one weekly plan active, unsetting the flag on
// the user's other weekly plans first.
func (s *WorkoutService) SetActiveWeeklyPlan(ctx context.Context, userID, planID string) error {
	data := s.repo.Current()
	if data == nil {
		return repository.ErrDataNotLoaded
	}

	found := false
	for i := range data.WeeklyPlans {
		p := &data.WeeklyPlans[i]
		if p.UserID != userID {
			continue
		}
		if p.ID == planID {
			p.IsActive = true
			p.UpdatedAt = time.Now()
			found = true
		} else if p.IsActive {
			p.IsActive = false
		}
	}
	if !found {
		return ErrNotFound
	}
	return s.repo.Save(ctx, data)
}

// DeleteWeeklyPlan removes a weekly plan.
func (s *WorkoutService) DeleteWeeklyPlan(ctx context.Context, planID string) error {
	data := s.repo.Current()
	if data == nil {
		return repository.ErrDataNotLoaded
	}

	for i := range data.WeeklyPlans {
		if data.WeeklyPlans[i].ID != planID {
			continue
		}
		data.WeeklyPlans = append(data.WeeklyPlans[:i], data.WeeklyPlans[i+1:]...)
		return s.repo.Save(ctx, data)
	}
	return ErrNotFound
}

// CreateDayPlan pins a workout to a calendar date.
func (s *WorkoutService) CreateDayPlan(ctx context.Context, userID, date, workoutID, notes string) (*models.DayPlan, error) {
	if userID == "" || date == "" {
		return nil, ErrInvalidInput
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidInput
	}
	data := s.repo.Current()
	if data == nil {
		return nil, repository.ErrDataNotLoaded
	}

	plan := models.DayPlan{
		ID:        s.repo.GenerateID("dayplan"),
		UserID:    userID,
		Date:      date,
		WorkoutID: workoutID,
		Notes:     notes,
	}
	data.DayPlans = append(data.DayPlans, plan)

	if err := s.repo.Save(ctx, data); err != nil {
		return nil, err
	}
	return &plan, nil
}

// DayPlansFor returns the user's day plans for a calendar date.
func (s *WorkoutService) DayPlansFor(userID, date string) ([]models.DayPlan, error) {
	data := s.repo.Current()
	if data == nil {
		return nil, repository.ErrDataNotLoaded
	}
	var out []models.DayPlan
	for _, p := range data.DayPlans {
		if p.UserID == userID && p.Date == date {
			out = append(out, p)
		}
	}
	return out, nil
}

// CompleteDayPlan marks a day plan done.
func (s *WorkoutService) CompleteDayPlan(ctx context.Context, dayPlanID string) error {
	data := s.repo.Current()
	if data == nil {
		return repository.ErrDataNotLoaded
	}

	for i := range data.DayPlans {
		if data.DayPlans[i].ID != dayPlanID {
			continue
		}
		data.DayPlans[i].Completed = true
		return s.repo.Save(ctx, data)
	}
	return ErrNotFound
}

// DayExercises returns the selected exercise array for a weekday (Sunday=0).
// An absent blob is an empty selection, not an error.
func (s *WorkoutService) DayExercises(ctx context.Context, day int) ([]models.LibraryExercise, error) {
	if day < 0 || day > 6 {
		return nil, ErrInvalidInput
	}

	var out []models.LibraryExercise
	err := s.repo.GetBlob(ctx, storage.DayExercisesKey(day), &out)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return []models.LibraryExercise{}, nil
	}
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.LibraryExercise{}
	}
	return out, nil
}

// SaveDayExercises replaces the selected exercise array for a weekday.
func (s *WorkoutService) SaveDayExercises(ctx context.Context, day int, exercises []models.LibraryExercise) error {
	if day < 0 || day > 6 {
		return ErrInvalidInput
	}
	if exercises == nil {
		exercises = []models.LibraryExercise{}
	}
	return s.repo.SetBlob(ctx, storage.DayExercisesKey(day), exercises)
}
