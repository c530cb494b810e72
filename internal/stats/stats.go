// Package stats computes progress statistics from workout session records.
//
// Everything here is a pure function over a slice of sessions: no storage,
// no incremental maintenance, recomputed from scratch on every call. Date
// arithmetic is day-granular in the local time zone, with the week starting
// on Sunday.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/fitsync/fitsync/internal/models"
)

const (
	// weeklyGoal is the fixed target the progress percentage is measured
	// against: 4 workouts per week.
	weeklyGoal = 4

	// Per-session clamps applied when summing weekly totals, guarding the
	// aggregates against garbage values in old session records.
	maxSessionMinutes  = 300
	maxSessionCalories = 2000

	// maxStreakGapDays is the largest gap between consecutive workout days
	// that still continues a streak.
	maxStreakGapDays = 3
)

// WeeklyStats summarizes the current calendar week (Sunday-based, local time).
type WeeklyStats struct {
	WorkoutCount  int
	TotalMinutes  int
	TotalCalories int

	// ProgressPercent is completion against the fixed weekly goal,
	// capped at 100.
	ProgressPercent float64
}

// Weekly aggregates the completed sessions of the week containing now.
func Weekly(sessions []models.WorkoutSession, now time.Time) WeeklyStats {
	weekStart := startOfWeek(now)

	var s WeeklyStats
	for _, sess := range sessions {
		if sess.Status != models.SessionCompleted {
			continue
		}
		if sess.StartTime.Before(weekStart) {
			continue
		}
		s.WorkoutCount++
		s.TotalMinutes += clamp(sess.DurationMinutes, 0, maxSessionMinutes)
		s.TotalCalories += clamp(sess.CaloriesBurned, 0, maxSessionCalories)
	}

	progress := float64(s.WorkoutCount) / weeklyGoal
	if progress > 1 {
		progress = 1
	}
	s.ProgressPercent = progress * 100
	return s
}

// Consistency scores recent workout frequency 0–100: the session count of
// the last 30 days against a 4-per-week target normalized to the window.
// Intermediate values may exceed 100; only the final result is clamped.
func Consistency(sessions []models.WorkoutSession, now time.Time) float64 {
	windowStart := now.AddDate(0, 0, -30)

	count := 0
	for _, sess := range sessions {
		if sess.StartTime.Before(windowStart) {
			continue
		}
		count++
	}

	score := float64(count) / 30 * 100 * weeklyGoal
	if score > 100 {
		score = 100
	}
	return score
}

// Streak holds the current and longest consecutive-workout streaks, counted
// in distinct workout days.
type Streak struct {
	Current int
	Longest int
}

// Streaks computes streaks over the whole session history. A streak
// continues while the gap between consecutive workout days stays within
// maxStreakGapDays; the current streak counts backward from the most recent
// workout day.
func Streaks(sessions []models.WorkoutSession) Streak {
	days := workoutDays(sessions)
	if len(days) == 0 {
		return Streak{}
	}

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if gapDays(days[i-1], days[i]) <= maxStreakGapDays {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	current := 1
	for i := len(days) - 1; i > 0; i-- {
		if gapDays(days[i-1], days[i]) > maxStreakGapDays {
			break
		}
		current++
	}

	return Streak{Current: current, Longest: longest}
}

// PersonalRecord is the heaviest single set ever completed for an exercise.
type PersonalRecord struct {
	ExerciseID   string
	ExerciseName string
	SessionID    string
	WeightKg     float64
	Reps         int
	Date         time.Time
}

// PersonalRecords finds, per exercise id, the session holding the maximum
// single-set weight across history. Ties keep the earlier session.
func PersonalRecords(sessions []models.WorkoutSession) map[string]PersonalRecord {
	records := make(map[string]PersonalRecord)
	for _, sess := range sessions {
		for _, ex := range sess.Exercises {
			for _, set := range ex.CompletedSets {
				rec, ok := records[ex.ExerciseID]
				if ok && set.WeightKg <= rec.WeightKg {
					continue
				}
				records[ex.ExerciseID] = PersonalRecord{
					ExerciseID:   ex.ExerciseID,
					ExerciseName: ex.ExerciseName,
					SessionID:    sess.ID,
					WeightKg:     set.WeightKg,
					Reps:         set.Reps,
					Date:         sess.StartTime,
				}
			}
		}
	}
	return records
}

// Dedupe drops sessions considered duplicates of an earlier one: same
// 5-minute start bucket and equal duration. The legacy session store and the
// document store were merged at some point and can contain overlapping
// entries; first-seen survives.
func Dedupe(sessions []models.WorkoutSession) []models.WorkoutSession {
	type dupKey struct {
		bucket   int64
		duration int
	}

	seen := make(map[dupKey]bool, len(sessions))
	out := make([]models.WorkoutSession, 0, len(sessions))
	for _, sess := range sessions {
		key := dupKey{
			bucket:   sess.StartTime.Truncate(5 * time.Minute).Unix(),
			duration: sess.DurationMinutes,
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, sess)
	}
	return out
}

// workoutDays returns the distinct local-midnight days of the sessions,
// sorted ascending.
func workoutDays(sessions []models.WorkoutSession) []time.Time {
	uniq := make(map[time.Time]bool, len(sessions))
	for _, sess := range sessions {
		uniq[dayOf(sess.StartTime)] = true
	}
	days := make([]time.Time, 0, len(uniq))
	for d := range uniq {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func startOfWeek(now time.Time) time.Time {
	return dayOf(now).AddDate(0, 0, -int(now.Weekday()))
}

// gapDays is the whole-day distance between two local-midnight days,
// rounded so DST-shortened days still count as full days.
func gapDays(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
