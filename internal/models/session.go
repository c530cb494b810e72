package models

import "time"

// SessionStatus is the lifecycle state of a workout session. The only valid
// transitions are in-progress → paused, paused → in-progress, and
// in-progress → completed. A session left in-progress by a crash is never
// resumed or invalidated; it simply stays that way in the document.
type SessionStatus string

const (
	SessionInProgress SessionStatus = "in-progress"
	SessionPaused     SessionStatus = "paused"
	SessionCompleted  SessionStatus = "completed"
)

// WorkoutSession is one execution instance of a workout.
type WorkoutSession struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	WorkoutID string `json:"workoutId"`

	// WorkoutName is denormalized at start time so history survives
	// workout deletion.
	WorkoutName string `json:"workoutName"`

	Status SessionStatus `json:"status"`

	// StartTime anchors elapsed-time computation. Resuming a paused
	// session moves it backward by the already-elapsed duration, so
	// "now − StartTime" stays correct across pauses.
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`

	// ElapsedSeconds is the frozen elapsed time while Status is paused.
	ElapsedSeconds int `json:"elapsedSeconds"`

	// DurationMinutes is set on completion from the wall-clock delta.
	DurationMinutes int `json:"duration"`
	CaloriesBurned  int `json:"caloriesBurned"`

	Exercises []SessionExercise `json:"exercises"`
}

// SessionExercise tracks the completed sets for one exercise in a session.
type SessionExercise struct {
	ExerciseID   string `json:"exerciseId"`
	ExerciseName string `json:"exerciseName"`

	CompletedSets []CompletedSet `json:"completedSets"`
}

// CompletedSet is one set the user actually performed.
type CompletedSet struct {
	Reps        int       `json:"reps"`
	WeightKg    float64   `json:"weight"`
	CompletedAt time.Time `json:"completedAt"`
}

// Volume is the reps × weight load of the set, used to rank sets when
// recording progress.
func (s CompletedSet) Volume() float64 {
	return float64(s.Reps) * s.WeightKg
}

// WorkoutProgress is a derived progress entry recorded when a session
// completes: the best completed set for one exercise plus the total volume
// moved across all its sets.
type WorkoutProgress struct {
	ID           string `json:"id"`
	UserID       string `json:"userId"`
	SessionID    string `json:"sessionId"`
	ExerciseID   string `json:"exerciseId"`
	ExerciseName string `json:"exerciseName"`

	Date        time.Time    `json:"date"`
	BestSet     CompletedSet `json:"bestSet"`
	TotalVolume float64      `json:"totalVolume"`

	// PersonalRecord is written as false unconditionally. Record comparison
	// has never been implemented, and existing documents only ever contain
	// false, so readers must not rely on this flag.
	PersonalRecord bool `json:"personalRecord"`
}

// Achievement is an entry in the legacy achievements store. It is kept in
// its own storage blob, separate from the root document.
type Achievement struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlockedAt,omitempty"`
}
