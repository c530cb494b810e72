package models

import "time"

// FitnessLevel is the self-reported experience level of a user.
type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "beginner"
	LevelIntermediate FitnessLevel = "intermediate"
	LevelAdvanced     FitnessLevel = "advanced"
)

// User represents a registered user profile.
//
// Password is stored and compared in plaintext. That is a known weakness of
// the data format, not a choice this package gets to revisit: the field is
// part of the export wire format and existing documents carry plaintext
// values that must keep working after an import.
type User struct {
	// ID is the unique identifier for the user.
	ID string `json:"id"`

	// Email is expected to be unique. Uniqueness is checked by linear scan
	// at registration time, not enforced by any index.
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`

	FitnessLevel FitnessLevel `json:"fitnessLevel"`
	Goals        []string     `json:"goals"`

	// HeightCm and WeightKg are metric; zero means unset.
	HeightCm float64 `json:"height"`
	WeightKg float64 `json:"weight"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
