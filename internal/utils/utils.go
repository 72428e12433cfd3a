package utils

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/calistheniq/calistheniq/internal/models"
)

// ParseSessionFromTOML reads a logged-workout TOML file into a session
// ready to run through the progression pipeline. Example file:
//
//	category = "push"
//	level = 1
//	date = "2025-01-15"
//	notes = "felt strong today"
//
//	[[exercise]]
//	exercise = "beginner-negative-push-ups"
//	target_sets = 3
//	target_reps = 8
//	checked = [true, true, true]
//	reps = [8, 8, 8]
//
//	[[exercise]]
//	exercise = "beginner-plank-hold"
//	target_sets = 4
//	checked = [true, true, true, true]
//	hold_seconds = [60, 60, 60, 60]
func ParseSessionFromTOML(path string) (*models.WorkoutSession, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sessionTOML models.SessionTOML
	if err := toml.Unmarshal(data, &sessionTOML); err != nil {
		return nil, err
	}

	category, err := models.ParseCategory(sessionTOML.Category)
	if err != nil {
		return nil, err
	}
	if sessionTOML.Level < models.MinLevel || sessionTOML.Level > models.MaxLevel {
		return nil, fmt.Errorf("level %d out of range [%d, %d]",
			sessionTOML.Level, models.MinLevel, models.MaxLevel)
	}

	date := time.Now().UTC()
	if sessionTOML.Date != "" {
		date, err = ParseDay(sessionTOML.Date)
		if err != nil {
			return nil, err
		}
	}

	session := &models.WorkoutSession{
		ID:       uuid.New().String(),
		Date:     date,
		Category: category,
		Level:    sessionTOML.Level,
		Notes:    sessionTOML.Notes,
	}

	for _, e := range sessionTOML.Exercises {
		checked := 0
		for _, c := range e.Checked {
			if c {
				checked++
			}
		}
		session.Exercises = append(session.Exercises, models.ExerciseEntry{
			ExerciseID:        e.Exercise,
			TargetSets:        e.TargetSets,
			TargetReps:        e.TargetReps,
			CheckedSets:       e.Checked,
			ActualReps:        e.Reps,
			ActualHoldSeconds: e.HoldSeconds,
			// Rough client-side guess; the engine recomputes pass/fail.
			HitTarget: checked >= e.TargetSets,
		})
	}

	return session, nil
}

func BoolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
