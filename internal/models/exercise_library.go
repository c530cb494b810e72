package models

// ExerciseCategory classifies library exercises.
type ExerciseCategory string

const (
	CategoryStrength    ExerciseCategory = "strength"
	CategoryCardio      ExerciseCategory = "cardio"
	CategoryFlexibility ExerciseCategory = "flexibility"
	CategoryBalance     ExerciseCategory = "balance"
)

// LibraryExercise is an exercise definition in the shared library. The
// library holds only user-authored entries; there is no canonical catalog to
// deduplicate against.
type LibraryExercise struct {
	ID   string           `json:"id"`
	Name string           `json:"name"`

	Category     ExerciseCategory `json:"category"`
	MuscleGroups []string         `json:"muscleGroups"`
	Equipment    []string         `json:"equipment"`
	Difficulty   Difficulty       `json:"difficulty"`
	Instructions []string         `json:"instructions"`
}
