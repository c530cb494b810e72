package service

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fitsync/fitsync/internal/metrics"
	"github.com/fitsync/fitsync/internal/models"
	"github.com/fitsync/fitsync/internal/repository"
	"github.com/fitsync/fitsync/internal/storage"
)

// newTestRepo builds a repository over a throwaway file store.
func newTestRepo(t *testing.T) *repository.Repository {
	t.Helper()

	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	repo, err := repository.New(context.Background(), store, metrics.New(nil), slog.Default())
	require.NoError(t, err)
	return repo
}

// seedUser inserts a user directly into the document and returns its id.
func seedUser(t *testing.T, repo *repository.Repository, email, password string) string {
	t.Helper()

	data := repo.Current()
	id := repo.GenerateID("user")
	data.Users = append(data.Users, models.User{
		ID:       id,
		Email:    email,
		Password: password,
		Name:     "Test User",
	})
	require.NoError(t, repo.Save(context.Background(), data))
	return id
}

// seedWorkout inserts a two-exercise custom workout and returns its id.
func seedWorkout(t *testing.T, repo *repository.Repository, userID string) string {
	t.Helper()

	data := repo.Current()
	id := repo.GenerateID("workout")
	data.CustomWorkouts = append(data.CustomWorkouts, models.CustomWorkout{
		ID:     id,
		UserID: userID,
		Name:   "Push Day",
		Exercises: []models.WorkoutExercise{
			{ExerciseID: "bench", ExerciseName: "Bench Press", Sets: 3, Reps: 8},
			{ExerciseID: "ohp", ExerciseName: "Overhead Press", Sets: 3, Reps: 10},
		},
	})
	require.NoError(t, repo.Save(context.Background(), data))
	return id
}
