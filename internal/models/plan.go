package models

import "time"

// Plan is the root of the plan hierarchy: Plan → Day → Workout → Exercise → Set.
// Children reference their parent by ID; deleting a plan requires the cascade
// helper in the plan service, nothing here enforces integrity.
type Plan struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	Description string `json:"description"`

	// IsActive is a single-active-per-user flag. The setter must unset it
	// on the user's other plans first; it is maintained imperatively, not
	// by any index.
	IsActive bool `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Day is one training day within a plan.
type Day struct {
	ID     string `json:"id"`
	PlanID string `json:"planId"`
	Name   string `json:"name"`

	// Order is the position of the day within its plan, starting at 0.
	Order int `json:"order"`
}

// Workout is a named workout within a plan day.
type Workout struct {
	ID    string `json:"id"`
	DayID string `json:"dayId"`
	Name  string `json:"name"`
	Notes string `json:"notes"`
}

// Exercise is one exercise within a plan workout.
type Exercise struct {
	ID        string `json:"id"`
	WorkoutID string `json:"workoutId"`
	Name      string `json:"name"`

	// Order is the position of the exercise within its workout.
	Order int `json:"order"`
}

// Set is the planned set prescription for an exercise.
type Set struct {
	ID          string  `json:"id"`
	ExerciseID  string  `json:"exerciseId"`
	Reps        int     `json:"reps"`
	WeightKg    float64 `json:"weight"`
	RestSeconds int     `json:"restSeconds"`
}
