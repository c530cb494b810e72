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

// AuthService handles registration, login and the current-user session
// marker. The model is single-device, single-session: the winning user id is
// stored under one key and replayed on the next startup. Passwords are
// compared in plaintext because that is what existing documents contain.
type AuthService struct {
	repo   *repository.Repository
	logger *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(repo *repository.Repository, logger *slog.Logger) *AuthService {
	return &AuthService{repo: repo, logger: logger}
}

// Register creates a new user profile. A duplicate email is rejected with
// ErrEmailExists before anything is mutated; uniqueness is a linear scan,
// there is no index.
func (s *AuthService) Register(ctx context.Context, email, password, name string, level models.FitnessLevel) (*models.User, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidInput
	}

	data := s.repo.Current()
	if data == nil {
		return nil, repository.ErrDataNotLoaded
	}

	for _, u := range data.Users {
		if u.Email == email {
			s.logger.Warn("registration rejected, email exists", "email", email)
			return nil, ErrEmailExists
		}
	}

	now := time.Now()
	user := models.User{
		ID:           s.repo.GenerateID("user"),
		Email:        email,
		Password:     password,
		Name:         name,
		FitnessLevel: level,
		Goals:        []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	data.Users = append(data.Users, user)

	if err := s.repo.Save(ctx, data); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID, "email", user.Email)
	return &user, nil
}

// Login authenticates by linear scan over the user list and stores the
// matching user id as the current session marker.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	data := s.repo.Current()
	if data == nil {
		return nil, repository.ErrDataNotLoaded
	}

	for i := range data.Users {
		u := &data.Users[i]
		if u.Email != email {
			continue
		}
		if u.Password != password {
			s.logger.Warn("login failed", "email", email)
			return nil, ErrInvalidCredentials
		}
		if err := s.repo.SetBlob(ctx, storage.KeyCurrentUser, u.ID); err != nil {
			return nil, err
		}
		s.logger.Info("user logged in", "user_id", u.ID)
		out := *u
		return &out, nil
	}

	s.logger.Warn("login failed", "email", email)
	return nil, ErrInvalidCredentials
}

// CurrentUser replays the stored session marker: it looks the saved id up in
// the user list again. A missing or stale marker is ErrNotAuthenticated.
func (s *AuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	data := s.repo.Current()
	if data == nil {
		return nil, repository.ErrDataNotLoaded
	}

	var userID string
	err := s.repo.GetBlob(ctx, storage.KeyCurrentUser, &userID)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return nil, ErrNotAuthenticated
	}
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	for _, u := range data.Users {
		if u.ID == userID {
			out := u
			return &out, nil
		}
	}
	// Marker points at a deleted user; treat as logged out.
	return nil, ErrNotAuthenticated
}

// Logout clears the session marker. The document is untouched.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.repo.DeleteBlob(ctx, storage.KeyCurrentUser); err != nil {
		return err
	}
	s.logger.Info("user logged out")
	return nil
}

// UpdateProfile replaces the mutable profile fields of a user. Email and
// password are not touched here.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, name string, level models.FitnessLevel, goals []string, heightCm, weightKg float64) (*models.User, error) {
	data := s.repo.Current()
	if data == nil {
		return nil, repository.ErrDataNotLoaded
	}

	for i := range data.Users {
		if data.Users[i].ID != userID {
			continue
		}
		u := &data.Users[i]
		u.Name = name
		u.FitnessLevel = level
		u.Goals = goals
		u.HeightCm = heightCm
		u.WeightKg = weightKg
		u.UpdatedAt = time.Now()

		if err := s.repo.Save(ctx, data); err != nil {
			return nil, err
		}
		out := *u
		return &out, nil
	}
	return nil, ErrNotFound
}
