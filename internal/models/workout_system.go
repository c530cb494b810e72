package models

import "time"

// Difficulty grades user-authored workouts and library exercises.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// CustomWorkout is a user-authored workout: a named list of exercises with a
// per-exercise set/rep prescription. It lives in the workout-system context
// and is independent of the plan hierarchy.
type CustomWorkout struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	Description string `json:"description"`

	Exercises []WorkoutExercise `json:"exercises"`

	Difficulty       Difficulty `json:"difficulty"`
	EstimatedMinutes int        `json:"estimatedDuration"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// WorkoutExercise is an exercise entry inside a custom workout. ExerciseID
// references the exercise library; the name is denormalized so a workout
// survives library edits.
type WorkoutExercise struct {
	ExerciseID   string  `json:"exerciseId"`
	ExerciseName string  `json:"exerciseName"`
	Sets         int     `json:"sets"`
	Reps         int     `json:"reps"`
	WeightKg     float64 `json:"weight"`
	RestSeconds  int     `json:"restSeconds"`
}

// WeeklyPlan assigns a workout, or rest, to each day of a week. Days run
// Sunday (0) through Saturday (6).
type WeeklyPlan struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Name   string `json:"name"`

	// IsActive follows the same single-active-per-user rule as Plan.IsActive.
	IsActive bool `json:"isActive"`

	Days []WeeklyDay `json:"days"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// WeeklyDay is one day's assignment in a weekly plan. An empty WorkoutID
// with Rest set means a planned rest day.
type WeeklyDay struct {
	// Day is the weekday index, Sunday = 0.
	Day       int    `json:"day"`
	WorkoutID string `json:"workoutId"`
	Rest      bool   `json:"rest"`
}

// DayPlan pins a workout to a concrete calendar date.
type DayPlan struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`

	// Date is the calendar day in "2006-01-02" form, device-local time.
	Date      string `json:"date"`
	WorkoutID string `json:"workoutId"`
	Notes     string `json:"notes"`
	Completed bool   `json:"completed"`
}
