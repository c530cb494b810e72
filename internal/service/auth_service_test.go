package service

import (
	"context"
	"log/slog"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitsync/fitsync/internal/models"
	"github.com/fitsync/fitsync/internal/repository"
)

func TestRegisterAndLogin(t *testing.T) {
	repo := newTestRepo(t)
	auth := NewAuthService(repo, slog.Default())
	ctx := context.Background()

	email := gofakeit.Email()
	user, err := auth.Register(ctx, email, "secret123", gofakeit.Name(), models.LevelBeginner)
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, email, user.Email)

	t.Run("login with matching password returns that user", func(t *testing.T) {
		got, err := auth.Login(ctx, email, "secret123")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)

		// The session marker is persisted and replayed.
		current, err := auth.CurrentUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, user.ID, current.ID)
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		_, err := auth.Login(ctx, email, "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email rejected", func(t *testing.T) {
		_, err := auth.Login(ctx, "nobody@example.com", "secret123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newTestRepo(t)
	auth := NewAuthService(repo, slog.Default())
	ctx := context.Background()

	email := gofakeit.Email()
	_, err := auth.Register(ctx, email, "secret123", "First", models.LevelBeginner)
	require.NoError(t, err)

	before := len(repo.Current().Users)

	_, err = auth.Register(ctx, email, "other", "Second", models.LevelAdvanced)
	assert.ErrorIs(t, err, ErrEmailExists)

	// The document was not mutated by the failed attempt.
	assert.Len(t, repo.Current().Users, before)
}

func TestSessionReplayAcrossRestart(t *testing.T) {
	repo := newTestRepo(t)
	auth := NewAuthService(repo, slog.Default())
	ctx := context.Background()

	email := gofakeit.Email()
	user, err := auth.Register(ctx, email, "secret123", "Someone", models.LevelIntermediate)
	require.NoError(t, err)
	_, err = auth.Login(ctx, email, "secret123")
	require.NoError(t, err)

	// A fresh service over the same repository sees the same session.
	replayed := NewAuthService(repo, slog.Default())
	current, err := replayed.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.ID, current.ID)
}

func TestLogoutClearsSession(t *testing.T) {
	repo := newTestRepo(t)
	auth := NewAuthService(repo, slog.Default())
	ctx := context.Background()

	email := gofakeit.Email()
	_, err := auth.Register(ctx, email, "secret123", "Someone", models.LevelBeginner)
	require.NoError(t, err)
	_, err = auth.Login(ctx, email, "secret123")
	require.NoError(t, err)

	require.NoError(t, auth.Logout(ctx))

	_, err = auth.CurrentUser(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestLoginWithBackfilledPassword(t *testing.T) {
	// Users migrated from documents predating the password field log in
	// with the fixed default.
	repo := newTestRepo(t)
	auth := NewAuthService(repo, slog.Default())
	ctx := context.Background()

	seedUser(t, repo, "legacy@example.com", repository.DefaultPassword)

	got, err := auth.Login(ctx, "legacy@example.com", repository.DefaultPassword)
	require.NoError(t, err)
	assert.Equal(t, "legacy@example.com", got.Email)
}

func TestUpdateProfile(t *testing.T) {
	repo := newTestRepo(t)
	auth := NewAuthService(repo, slog.Default())
	ctx := context.Background()

	userID := seedUser(t, repo, gofakeit.Email(), "pw")

	updated, err := auth.UpdateProfile(ctx, userID, "New Name", models.LevelAdvanced, []string{"strength"}, 180, 82.5)
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, models.LevelAdvanced, updated.FitnessLevel)
	assert.Equal(t, 82.5, updated.WeightKg)

	_, err = auth.UpdateProfile(ctx, "missing", "x", models.LevelBeginner, nil, 0, 0)
	assert.ErrorIs(t, err, ErrNotFound)
}
