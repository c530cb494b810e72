package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitsync/fitsync/internal/models"
)

func TestCustomWorkoutCRUD(t *testing.T) {
	repo := newTestRepo(t)
	workouts := NewWorkoutService(repo)
	ctx := context.Background()

	created, err := workouts.CreateWorkout(ctx, models.CustomWorkout{
		UserID: "u1",
		Name:   "Leg Day",
		Exercises: []models.WorkoutExercise{
			{ExerciseID: "squat", ExerciseName: "Squat", Sets: 5, Reps: 5},
		},
		Difficulty: models.DifficultyHard,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	created.Name = "Heavy Leg Day"
	require.NoError(t, workouts.UpdateWorkout(ctx, *created))

	got, err := workouts.Workouts("u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Heavy Leg Day", got[0].Name)

	require.NoError(t, workouts.DeleteWorkout(ctx, created.ID))
	got, err = workouts.Workouts("u1")
	require.NoError(t, err)
	assert.Empty(t, got)

	assert.ErrorIs(t, workouts.DeleteWorkout(ctx, created.ID), ErrNotFound)
}

func TestWeeklyPlanSingleActive(t *testing.T) {
	repo := newTestRepo(t)
	workouts := NewWorkoutService(repo)
	ctx := context.Background()

	days := []models.WeeklyDay{
		{Day: 0, Rest: true},
		{Day: 1, WorkoutID: "w1"},
		{Day: 3, WorkoutID: "w2"},
	}
	a, err := workouts.CreateWeeklyPlan(ctx, "u1", "Plan A", days)
	require.NoError(t, err)
	b, err := workouts.CreateWeeklyPlan(ctx, "u1", "Plan B", nil)
	require.NoError(t, err)

	require.NoError(t, workouts.SetActiveWeeklyPlan(ctx, "u1", a.ID))
	require.NoError(t, workouts.SetActiveWeeklyPlan(ctx, "u1", b.ID))

	active, err := workouts.ActiveWeeklyPlan("u1")
	require.NoError(t, err)
	assert.Equal(t, b.ID, active.ID)

	plans, err := workouts.WeeklyPlans("u1")
	require.NoError(t, err)
	for _, p := range plans {
		if p.ID != b.ID {
			assert.False(t, p.IsActive)
		}
	}
}

func TestCreateWeeklyPlanValidatesDays(t *testing.T) {
	repo := newTestRepo(t)
	workouts := NewWorkoutService(repo)
	ctx := context.Background()

	_, err := workouts.CreateWeeklyPlan(ctx, "u1", "Bad", []models.WeeklyDay{{Day: 7}})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = workouts.CreateWeeklyPlan(ctx, "u1", "Bad", []models.WeeklyDay{{Day: -1}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDayExercisesBlob(t *testing.T) {
	repo := newTestRepo(t)
	workouts := NewWorkoutService(repo)
	ctx := context.Background()

	// Absent selection reads as empty, per day.
	got, err := workouts.DayExercises(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	selection := []models.LibraryExercise{
		{ID: "bench", Name: "Bench Press", Category: models.CategoryStrength},
	}
	require.NoError(t, workouts.SaveDayExercises(ctx, 1, selection))

	got, err = workouts.DayExercises(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, selection, got)

	// Sunday's slot is unaffected by Monday's save.
	got, err = workouts.DayExercises(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = workouts.DayExercises(ctx, 7)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, workouts.SaveDayExercises(ctx, -1, nil), ErrInvalidInput)
}

func TestDayPlans(t *testing.T) {
	repo := newTestRepo(t)
	workouts := NewWorkoutService(repo)
	ctx := context.Background()

	plan, err := workouts.CreateDayPlan(ctx, "u1", "2024-03-06", "w1", "easy pace")
	require.NoError(t, err)

	_, err = workouts.CreateDayPlan(ctx, "u1", "06.03.2024", "w1", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	got, err := workouts.DayPlansFor("u1", "2024-03-06")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.False(t, got[0].Completed)

	require.NoError(t, workouts.CompleteDayPlan(ctx, plan.ID))
	got, err = workouts.DayPlansFor("u1", "2024-03-06")
	require.NoError(t, err)
	assert.True(t, got[0].Completed)
}
