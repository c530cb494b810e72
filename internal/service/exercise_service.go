package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fitsync/fitsync/internal/models"
	"github.com/fitsync/fitsync/internal/repository"
)

// ExerciseService manages the shared exercise library. The library holds
// whatever users added; entries are appended as-is and never deduplicated
// against a canonical catalog (none exists).
type ExerciseService struct {
	repo *repository.Repository
}

// NewExerciseService creates a new exercise library service.
func NewExerciseService(repo *repository.Repository) *ExerciseService {
	return &ExerciseService{repo: repo}
}

// Library returns all library exercises.
func (s *ExerciseService) Library() ([]models.LibraryExercise, error) {
	data := s.repo.Current()
	if data == nil {
		return nil, repository.ErrDataNotLoaded
	}
	return data.ExerciseLibrary, nil
}

// LibraryFilter narrows a library listing. Zero values match everything.
type LibraryFilter struct {
	Category    models.ExerciseCategory
	MuscleGroup string
	Search      string
}

// FilterLibrary returns the library entries matching the filter.
func (s *ExerciseService) FilterLibrary(filter LibraryFilter) ([]models.LibraryExercise, error) {
	data := s.repo.Current()
	if data == nil {
		return nil, repository.ErrDataNotLoaded
	}

	var out []models.LibraryExercise
	for _, ex := range data.ExerciseLibrary {
		if filter.Category != "" && ex.Category != filter.Category {
			continue
		}
		if filter.MuscleGroup != "" && !containsFold(ex.MuscleGroups, filter.MuscleGroup) {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(ex.Name), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, ex)
	}
	return out, nil
}

// AddExercise appends a user-authored entry to the library.
func (s *ExerciseService) AddExercise(ctx context.Context, ex models.LibraryExercise) (*models.LibraryExercise, error) {
	if ex.Name == "" {
		return nil, ErrInvalidInput
	}
	data := s.repo.Current()
	if data == nil {
		return nil, repository.ErrDataNotLoaded
	}

	ex.ID = s.repo.GenerateID("exercise")
	data.ExerciseLibrary = append(data.ExerciseLibrary, ex)

	if err := s.repo.Save(ctx, data); err != nil {
		return nil, err
	}
	slog.Info("library exercise added", "exercise_id", ex.ID, "name", ex.Name)
	return &ex, nil
}

// UpdateExercise replaces a library entry by id.
func (s *ExerciseService) UpdateExercise(ctx context.Context, ex models.LibraryExercise) error {
	data := s.repo.Current()
	if data == nil {
		return repository.ErrDataNotLoaded
	}

	for i := range data.ExerciseLibrary {
		if data.ExerciseLibrary[i].ID != ex.ID {
			continue
		}
		data.ExerciseLibrary[i] = ex
		return s.repo.Save(ctx, data)
	}
	return ErrNotFound
}

// DeleteExercise removes a library entry. Workouts referencing it keep their
// denormalized exercise names, so nothing cascades.
func (s *ExerciseService) DeleteExercise(ctx context.Context, exerciseID string) error {
	data := s.repo.Current()
	if data == nil {
		return repository.ErrDataNotLoaded
	}

	for i := range data.ExerciseLibrary {
		if data.ExerciseLibrary[i].ID != exerciseID {
			continue
		}
		data.ExerciseLibrary = append(data.ExerciseLibrary[:i], data.ExerciseLibrary[i+1:]...)
		return s.repo.Save(ctx, data)
	}
	return ErrNotFound
}

func containsFold(list []string, want string) bool {
	for _, v := range list {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}
