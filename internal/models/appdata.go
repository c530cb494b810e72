package models

import "time"

// CurrentVersion is stamped into new documents. Existing documents keep
// whatever version they were created with; nothing branches on it yet.
const CurrentVersion = "1.0"

// AppData is the root document holding all application state. It is loaded
// fully into memory, mutated in place, and persisted as one blob.
type AppData struct {
	Version     string    `json:"version"`
	LastUpdated time.Time `json:"lastUpdated"`

	Users []User `json:"users"`

	// Plan hierarchy context.
	Plans     []Plan     `json:"plans"`
	Days      []Day      `json:"days"`
	Workouts  []Workout  `json:"workouts"`
	Exercises []Exercise `json:"exercises"`
	Sets      []Set      `json:"sets"`

	// Workout system context. The sessions slice keeps its historical
	// "workoutSessions2" key: the original "workoutSessions" store was
	// superseded but old exports still carry the legacy key separately.
	CustomWorkouts  []CustomWorkout   `json:"customWorkouts"`
	WeeklyPlans     []WeeklyPlan      `json:"weeklyPlans"`
	WorkoutSessions []WorkoutSession  `json:"workoutSessions2"`
	WorkoutProgress []WorkoutProgress `json:"workoutProgress"`
	DayPlans        []DayPlan         `json:"dayPlans"`

	// ExerciseLibrary is populated only by user action; there is no seed
	// catalog and user-authored entries are never deduplicated.
	ExerciseLibrary []LibraryExercise `json:"exerciseLibrary"`
}

// NewAppData returns the empty skeleton document created on first run.
func NewAppData() *AppData {
	return &AppData{
		Version:         CurrentVersion,
		LastUpdated:     time.Now(),
		Users:           []User{},
		Plans:           []Plan{},
		Days:            []Day{},
		Workouts:        []Workout{},
		Exercises:       []Exercise{},
		Sets:            []Set{},
		CustomWorkouts:  []CustomWorkout{},
		WeeklyPlans:     []WeeklyPlan{},
		WorkoutSessions: []WorkoutSession{},
		WorkoutProgress: []WorkoutProgress{},
		DayPlans:        []DayPlan{},
		ExerciseLibrary: []LibraryExercise{},
	}
}
