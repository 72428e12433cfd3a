package models

import "time"

// ExerciseEntry is one exercise as recorded in a logged session.
// A set that is not checked is not counted, even if a rep number was
// typed in for it.
type ExerciseEntry struct {
	ExerciseID        string `json:"exercise_id"`
	TargetSets        int    `json:"target_sets"`
	TargetReps        int    `json:"target_reps"`
	CheckedSets       []bool `json:"checked_sets"`
	ActualReps        []int  `json:"actual_reps"`
	ActualHoldSeconds []int  `json:"actual_hold_seconds,omitempty"`
	// HitTarget is whatever the logging client computed for display.
	// The engine recomputes pass/fail itself and never trusts it.
	HitTarget bool `json:"hit_target"`
}

// WorkoutSession is one logged workout. Immutable after creation.
type WorkoutSession struct {
	ID        string          `json:"id"`
	Date      time.Time       `json:"date"`
	Category  Category        `json:"category"`
	Level     int             `json:"level"`
	Exercises []ExerciseEntry `json:"exercises"`
	Notes     string          `json:"notes,omitempty"`
}

//
// For TOML parsing only
//

type SessionTOML struct {
	Category  string      `toml:"category"`
	Level     int         `toml:"level"`
	Date      string      `toml:"date,omitempty"`
	Notes     string      `toml:"notes,omitempty"`
	Exercises []EntryTOML `toml:"exercise"`
}

type EntryTOML struct {
	Exercise    string `toml:"exercise"`
	TargetSets  int    `toml:"target_sets"`
	TargetReps  int    `toml:"target_reps,omitempty"`
	Checked     []bool `toml:"checked"`
	Reps        []int  `toml:"reps,omitempty"`
	HoldSeconds []int  `toml:"hold_seconds,omitempty"`
}
