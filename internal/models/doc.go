// Package models defines the core domain models for FitSync.
//
// # Document Model
//
// All application state lives in a single AppData document that is loaded
// once at startup and rewritten to storage as a whole after every mutation.
// The JSON tags on these types ARE the wire format: exported files written by
// existing installs must round-trip through them unchanged.
//
// # Two Bounded Contexts
//
// The document carries two parallel data models that grew independently and
// are deliberately not unified:
//
//   - The plan hierarchy: Plan → Day → Workout → Exercise → Set, a normalized
//     set of flat slices where each child references its parent by ID. There
//     is no referential-integrity enforcement beyond the cascade-delete code
//     in the plan service.
//   - The workout system: CustomWorkout, WeeklyPlan, WorkoutSession,
//     WorkoutProgress and DayPlan, covering user-authored workouts, the
//     weekly schedule, execution sessions and derived progress entries.
//
// # Design Principles
//
//  1. Relationships are ID strings, never pointers, so the whole document
//     serializes without cycles.
//  2. Slices are initialized empty (not nil) in NewAppData so the exported
//     JSON contains [] rather than null for every collection.
//  3. User data exists in both contexts; services pick their context, the
//     storage layer sees only the one document.
package models
