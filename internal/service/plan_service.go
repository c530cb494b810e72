package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/fitsync/fitsync/internal/models"
	"github.com/fitsync/fitsync/internal/repository"
)

// PlanService manages the plan hierarchy: Plan → Day → Workout → Exercise →
// Set. The hierarchy is stored as flat slices with parent-id references and
// no enforced integrity; the cascade helper below is the only thing keeping
// orphans out of the document.
type PlanService struct {
	repo *repository.Repository
}

// NewPlanService creates a new plan service.
func NewPlanService(repo *repository.Repository) *PlanService {
	return &PlanService{repo: repo}
}

// CreatePlan adds a plan for the user.
func (s *PlanService) CreatePlan(ctx context.Context, userID, name, description string) (*models.Plan, error) {
	if userID == "" || name == "" {
		return nil, ErrInvalidInput
	}
	data := s.repo.Current()
	if data == nil {
		return nil, repository.ErrDataNotLoaded
	}

	now := time.Now()
	plan := models.Plan{
		ID:          s.repo.GenerateID("plan"),
		UserID:      userID,
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	data.Plans = append(data.Plans, plan)

	if err := s.repo.Save(ctx, data); err != nil {
		return nil, err
	}
	slog.Info("plan created", "plan_id", plan.ID, "user_id", userID)
	return &plan, nil
}

// Plans returns the plans belonging to the user.
func (s *PlanService) Plans(userID string) ([]models.Plan, error) {
	data := s.repo.Current()
	if data == nil {
		return nil, repository.ErrDataNotLoaded
	}

	var out []models.Plan
	for _, p := range data.Plans {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

// UpdatePlan replaces the name and description of a plan.
func (s *PlanService) UpdatePlan(ctx context.Context, planID, name, description string) (*models.Plan, error) {
	data := s.repo.Current()
	if data == nil {
		return nil, repository.ErrDataNotLoaded
	}

	for i := range data.Plans {
		if data.Plans[i].ID != planID {
			continue
		}
		p := &data.Plans[i]
		p.Name = name
		p.Description = description
		p.UpdatedAt = time.Now()

		if err := s.repo.Save(ctx, data); err != nil {
			return nil, err
		}
		out := *p
		return &out, nil
	}
	return nil, ErrNotFound
}

// SetActivePlan marks one plan active and unsets the flag on every other
// plan of the same user. Single-active is maintained by this loop only.
func (s *PlanService) SetActivePlan(ctx context.Context, userID, planID string) error {
	data := s.repo.Current()
	if data == nil {
		return repository.ErrDataNotLoaded
	}

	found := false
	for i := range data.Plans {
		p := &data.Plans[i]
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

// DeletePlan removes a plan and cascades through its days, workouts,
// exercises and sets.
func (s *PlanService) DeletePlan(ctx context.Context, planID string) error {
	data := s.repo.Current()
	if data == nil {
		return repository.ErrDataNotLoaded
	}

	exists := false
	for _, p := range data.Plans {
		if p.ID == planID {
			exists = true
			break
		}
	}
	if !exists {
		return ErrNotFound
	}

	desc := descendants(data, planID)
	data.Plans = deleteByID(data.Plans, func(p models.Plan) string { return p.ID }, map[string]bool{planID: true})
	data.Days = deleteByID(data.Days, func(d models.Day) string { return d.ID }, desc.days)
	data.Workouts = deleteByID(data.Workouts, func(w models.Workout) string { return w.ID }, desc.workouts)
	data.Exercises = deleteByID(data.Exercises, func(e models.Exercise) string { return e.ID }, desc.exercises)
	data.Sets = deleteByID(data.Sets, func(st models.Set) string { return st.ID }, desc.sets)

	if err := s.repo.Save(ctx, data); err != nil {
		return err
	}
	slog.Info("plan deleted",
		"plan_id", planID,
		"days", len(desc.days),
		"workouts", len(desc.workouts),
		"exercises", len(desc.exercises),
		"sets", len(desc.sets),
	)
	return nil
}

// AddDay appends a training day to a plan.
func (s *PlanService) AddDay(ctx context.Context, planID, name string, order int) (*models.Day, error) {
	data := s.repo.Current()
	if data == nil {
		return nil, repository.ErrDataNotLoaded
	}
	if !planExists(data, planID) {
		return nil, ErrNotFound
	}

	day := models.Day{
		ID:     s.repo.GenerateID("day"),
		PlanID: planID,
		Name:   name,
		Order:  order,
	}
	data.Days = append(data.Days, day)
	if err := s.repo.Save(ctx, data); err != nil {
		return nil, err
	}
	return &day, nil
}

// Days returns the days of a plan.
func (s *PlanService) Days(planID string) ([]models.Day, error) {
	data := s.repo.Current()
	if data == nil {
		return nil, repository.ErrDataNotLoaded
	}
	var out []models.Day
	for _, d := range data.Days {
		if d.PlanID == planID {
			out = append(out, d)
		}
	}
	return out, nil
}

// AddWorkout appends a workout to a plan day.
func (s *PlanService) AddWorkout(ctx context.Context, dayID, name, notes string) (*models.Workout, error) {
	data := s.repo.Current()
	if data == nil {
		return nil, repository.ErrDataNotLoaded
	}

	found := false
	for _, d := range data.Days {
		if d.ID == dayID {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrNotFound
	}

	workout := models.Workout{
		ID:    s.repo.GenerateID("workout"),
		DayID: dayID,
		Name:  name,
		Notes: notes,
	}
	data.Workouts = append(data.Workouts, workout)
	if err := s.repo.Save(ctx, data); err != nil {
		return nil, err
	}
	return &workout, nil
}

// AddExercise appends an exercise to a plan workout.
func (s *PlanService) AddExercise(ctx context.Context, workoutID, name string, order int) (*models.Exercise, error) {
	data := s.repo.Current()
	if data == nil {
		return nil, repository.ErrDataNotLoaded
	}

	found := false
	for _, w := range data.Workouts {
		if w.ID == workoutID {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrNotFound
	}

	exercise := models.Exercise{
		ID:        s.repo.GenerateID("exercise"),
		WorkoutID: workoutID,
		Name:      name,
		Order:     order,
	}
	data.Exercises = append(data.Exercises, exercise)
	if err := s.repo.Save(ctx, data); err != nil {
		return nil, err
	}
	return &exercise, nil
}

// AddSet appends a planned set to an exercise.
func (s *PlanService) AddSet(ctx context.Context, exerciseID string, reps int, weightKg float64, restSeconds int) (*models.Set, error) {
	data := s.repo.Current()
	if data == nil {
		return nil, repository.ErrDataNotLoaded
	}

	found := false
	for _, e := range data.Exercises {
		if e.ID == exerciseID {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrNotFound
	}

	set := models.Set{
		ID:          s.repo.GenerateID("set"),
		ExerciseID:  exerciseID,
		Reps:        reps,
		WeightKg:    weightKg,
		RestSeconds: restSeconds,
	}
	data.Sets = append(data.Sets, set)
	if err := s.repo.Save(ctx, data); err != nil {
		return nil, err
	}
	return &set, nil
}

// planDescendants collects the ids of every record under one plan.
type planDescendants struct {
	days      map[string]bool
	workouts  map[string]bool
	exercises map[string]bool
	sets      map[string]bool
}

// descendants walks the chain plan → days → workouts → exercises → sets and
// returns all descendant ids. Cascade deletes go through here instead of
// ad hoc filters at each call site.
func descendants(data *models.AppData, planID string) planDescendants {
	desc := planDescendants{
		days:      map[string]bool{},
		workouts:  map[string]bool{},
		exercises: map[string]bool{},
		sets:      map[string]bool{},
	}
	for _, d := range data.Days {
		if d.PlanID == planID {
			desc.days[d.ID] = true
		}
	}
	for _, w := range data.Workouts {
		if desc.days[w.DayID] {
			desc.workouts[w.ID] = true
		}
	}
	for _, e := range data.Exercises {
		if desc.workouts[e.WorkoutID] {
			desc.exercises[e.ID] = true
		}
	}
	for _, st := range data.Sets {
		if desc.exercises[st.ExerciseID] {
			desc.sets[st.ID] = true
		}
	}
	return desc
}

func planExists(data *models.AppData, planID string) bool {
	for _, p := range data.Plans {
		if p.ID == planID {
			return true
		}
	}
	return false
}

// deleteByID filters a slice down to the records whose id is not in drop.
func deleteByID[T any](records []T, id func(T) string, drop map[string]bool) []T {
	out := records[:0]
	for _, rec := range records {
		if !drop[id(rec)] {
			out = append(out, rec)
		}
	}
	return out
}
