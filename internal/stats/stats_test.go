package stats

import (
	"math"
	"testing"
	"time"

	"github.com/fitsync/fitsync/internal/models"
)

// sessionOn builds a completed session starting at the given time.
func sessionOn(start time.Time, durationMin, calories int) models.WorkoutSession {
	return models.WorkoutSession{
		Status:          models.SessionCompleted,
		StartTime:       start,
		DurationMinutes: durationMin,
		CaloriesBurned:  calories,
	}
}

func day(d int) time.Time {
	// Day 1 = 2024-03-01, all at 10:00 UTC.
	return time.Date(2024, 3, d, 10, 0, 0, 0, time.UTC)
}

func TestStreaks(t *testing.T) {
	tests := []struct {
		name        string
		days        []int
		wantCurrent int
		wantLongest int
	}{
		{
			name: "no sessions",
		},
		{
			name:        "single day",
			days:        []int{5},
			wantCurrent: 1,
			wantLongest: 1,
		},
		{
			name:        "gap of four splits groups",
			days:        []int{1, 2, 3, 7, 8},
			wantCurrent: 2,
			wantLongest: 3,
		},
		{
			name:        "three day gaps still continue",
			days:        []int{1, 4, 7, 10},
			wantCurrent: 4,
			wantLongest: 4,
		},
		{
			name:        "same day counted once",
			days:        []int{1, 1, 1, 2},
			wantCurrent: 2,
			wantLongest: 2,
		},
		{
			name:        "longest in the past",
			days:        []int{1, 2, 3, 4, 20},
			wantCurrent: 1,
			wantLongest: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sessions []models.WorkoutSession
			for _, d := range tt.days {
				sessions = append(sessions, sessionOn(day(d), 45, 300))
			}

			got := Streaks(sessions)
			if got.Current != tt.wantCurrent {
				t.Errorf("Current = %d, want %d", got.Current, tt.wantCurrent)
			}
			if got.Longest != tt.wantLongest {
				t.Errorf("Longest = %d, want %d", got.Longest, tt.wantLongest)
			}
		})
	}
}

func TestWeekly(t *testing.T) {
	// A Wednesday; the week began Sunday 2024-03-03 00:00.
	now := time.Date(2024, 3, 6, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		sessions     []models.WorkoutSession
		wantCount    int
		wantMinutes  int
		wantCalories int
		wantProgress float64
	}{
		{
			name: "empty",
		},
		{
			name: "per-session clamps apply",
			sessions: []models.WorkoutSession{
				sessionOn(day(4), 1000, 5000),
			},
			wantCount:    1,
			wantMinutes:  300,
			wantCalories: 2000,
			wantProgress: 25,
		},
		{
			name: "previous week excluded",
			sessions: []models.WorkoutSession{
				sessionOn(day(1), 45, 300), // Friday before the week start
				sessionOn(day(5), 45, 300),
			},
			wantCount:    1,
			wantMinutes:  45,
			wantCalories: 300,
			wantProgress: 25,
		},
		{
			name: "non-completed sessions excluded",
			sessions: []models.WorkoutSession{
				{Status: models.SessionInProgress, StartTime: day(5), DurationMinutes: 30},
				sessionOn(day(5), 30, 200),
			},
			wantCount:    1,
			wantMinutes:  30,
			wantCalories: 200,
			wantProgress: 25,
		},
		{
			name: "progress capped at goal",
			sessions: []models.WorkoutSession{
				sessionOn(day(3), 30, 200),
				sessionOn(day(4), 30, 200),
				sessionOn(day(5), 30, 200),
				sessionOn(day(5).Add(2*time.Hour), 30, 200),
				sessionOn(day(6), 30, 200),
			},
			wantCount:    5,
			wantMinutes:  150,
			wantCalories: 1000,
			wantProgress: 100,
		},
		{
			name: "negative values clamp to zero",
			sessions: []models.WorkoutSession{
				sessionOn(day(5), -20, -100),
			},
			wantCount:    1,
			wantMinutes:  0,
			wantCalories: 0,
			wantProgress: 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Weekly(tt.sessions, now)
			if got.WorkoutCount != tt.wantCount {
				t.Errorf("WorkoutCount = %d, want %d", got.WorkoutCount, tt.wantCount)
			}
			if got.TotalMinutes != tt.wantMinutes {
				t.Errorf("TotalMinutes = %d, want %d", got.TotalMinutes, tt.wantMinutes)
			}
			if got.TotalCalories != tt.wantCalories {
				t.Errorf("TotalCalories = %d, want %d", got.TotalCalories, tt.wantCalories)
			}
			if math.Abs(got.ProgressPercent-tt.wantProgress) > 0.01 {
				t.Errorf("ProgressPercent = %v, want %v", got.ProgressPercent, tt.wantProgress)
			}
		})
	}
}

func TestConsistency(t *testing.T) {
	now := time.Date(2024, 3, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		sessions []models.WorkoutSession
		want     float64
	}{
		{
			name: "empty",
			want: 0,
		},
		{
			name: "three sessions in window",
			sessions: []models.WorkoutSession{
				sessionOn(day(10), 45, 300),
				sessionOn(day(15), 45, 300),
				sessionOn(day(20), 45, 300),
			},
			want: 3.0 / 30 * 100 * 4,
		},
		{
			name: "old sessions ignored",
			sessions: []models.WorkoutSession{
				sessionOn(time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC), 45, 300),
				sessionOn(day(20), 45, 300),
			},
			want: 1.0 / 30 * 100 * 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Consistency(tt.sessions, now)
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("Consistency = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("clamped at 100", func(t *testing.T) {
		var sessions []models.WorkoutSession
		for d := 1; d <= 30; d++ {
			sessions = append(sessions, sessionOn(day(d), 45, 300))
			sessions = append(sessions, sessionOn(day(d).Add(3*time.Hour), 45, 300))
		}
		if got := Consistency(sessions, now); got != 100 {
			t.Errorf("Consistency = %v, want 100", got)
		}
	})
}

func TestPersonalRecords(t *testing.T) {
	s1 := models.WorkoutSession{
		ID:        "s1",
		StartTime: day(1),
		Exercises: []models.SessionExercise{
			{
				ExerciseID:   "bench",
				ExerciseName: "Bench Press",
				CompletedSets: []models.CompletedSet{
					{Reps: 10, WeightKg: 60},
					{Reps: 5, WeightKg: 80},
				},
			},
		},
	}
	s2 := models.WorkoutSession{
		ID:        "s2",
		StartTime: day(8),
		Exercises: []models.SessionExercise{
			{
				ExerciseID:   "bench",
				ExerciseName: "Bench Press",
				CompletedSets: []models.CompletedSet{
					{Reps: 3, WeightKg: 90},
				},
			},
			{
				ExerciseID:   "squat",
				ExerciseName: "Squat",
				CompletedSets: []models.CompletedSet{
					{Reps: 8, WeightKg: 100},
				},
			},
		},
	}

	records := PersonalRecords([]models.WorkoutSession{s1, s2})
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	bench := records["bench"]
	if bench.SessionID != "s2" || bench.WeightKg != 90 {
		t.Errorf("bench record = %+v, want session s2 at 90kg", bench)
	}
	squat := records["squat"]
	if squat.SessionID != "s2" || squat.WeightKg != 100 {
		t.Errorf("squat record = %+v, want session s2 at 100kg", squat)
	}
}

func TestDedupe(t *testing.T) {
	base := day(1)

	a := sessionOn(base, 45, 300)
	a.ID = "a"
	// Same 5-minute bucket, same duration: duplicate of a.
	b := sessionOn(base.Add(2*time.Minute), 45, 300)
	b.ID = "b"
	// Same bucket but different duration: kept.
	c := sessionOn(base.Add(1*time.Minute), 50, 300)
	c.ID = "c"
	// Different bucket: kept.
	d := sessionOn(base.Add(10*time.Minute), 45, 300)
	d.ID = "d"

	out := Dedupe([]models.WorkoutSession{a, b, c, d})
	if len(out) != 3 {
		t.Fatalf("got %d sessions, want 3", len(out))
	}
	if out[0].ID != "a" || out[1].ID != "c" || out[2].ID != "d" {
		t.Errorf("kept %s,%s,%s; want a,c,d (first-seen wins)", out[0].ID, out[1].ID, out[2].ID)
	}
}
