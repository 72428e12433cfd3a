package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/calistheniq/calistheniq/internal/models"
)

// ImportGateCriteria loads the externally supplied curriculum from TOML,
// replacing any previous criteria for the (category, level) pairs it
// defines. Example file:
//
//	[[gate]]
//	category = "push"
//	level = 1
//	required_passes = 3
//
//	[[gate.exercise]]
//	exercise = "beginner-negative-push-ups"
//	sets = 3
//	reps = 8
//
//	[[gate.exercise]]
//	exercise = "beginner-plank-hold"
//	sets = 4
//	hold_seconds = 60
func (s *Storage) ImportGateCriteria(tomlData []byte) error {
	var gatesTOML models.GatesImportTOML
	if err := toml.Unmarshal(tomlData, &gatesTOML); err != nil {
		return fmt.Errorf("invalid TOML format: %w", err)
	}

	ctx := context.Background()
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, gate := range gatesTOML.Gates {
		category, err := models.ParseCategory(gate.Category)
		if err != nil {
			return err
		}
		if gate.Level < models.MinLevel || gate.Level > models.MaxLevel {
			return fmt.Errorf("gate %s level %d out of range [%d, %d]",
				gate.Category, gate.Level, models.MinLevel, models.MaxLevel)
		}
		requiredPasses := gate.RequiredPasses
		if requiredPasses <= 0 {
			requiredPasses = 3
		}

		// Replace the whole gate; cascade clears the old exercises.
		_, err = tx.ExecContext(ctx,
			`DELETE FROM gate_criteria WHERE category = ? AND level = ?`,
			string(category), gate.Level)
		if err != nil {
			return fmt.Errorf("failed to clear old criteria: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO gate_criteria (category, level, required_passes)
             VALUES (?, ?, ?)`,
			string(category), gate.Level, requiredPasses)
		if err != nil {
			return fmt.Errorf("failed to insert criteria: %w", err)
		}

		for i, ex := range gate.Exercises {
			metric, err := criterionMetric(ex)
			if err != nil {
				return fmt.Errorf("gate %s level %d, exercise %q: %w",
					gate.Category, gate.Level, ex.Exercise, err)
			}
			if ex.Sets <= 0 {
				return fmt.Errorf("gate %s level %d, exercise %q: sets must be positive",
					gate.Category, gate.Level, ex.Exercise)
			}

			_, err = tx.ExecContext(ctx,
				`INSERT INTO gate_criteria_exercises
                 (id, category, level, position, exercise_id, target_sets, metric_kind, metric_value)
                 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				uuid.New().String(),
				string(category),
				gate.Level,
				i,
				ex.Exercise,
				ex.Sets,
				string(metric.Kind),
				metric.Value,
			)
			if err != nil {
				return fmt.Errorf("failed to insert criterion exercise: %w", err)
			}
		}
	}

	return tx.Commit()
}

// criterionMetric resolves the exactly-one-of reps/hold_seconds pair into
// a tagged metric.
func criterionMetric(ex models.CriterionTOML) (models.Metric, error) {
	switch {
	case ex.Reps > 0 && ex.HoldSeconds > 0:
		return models.Metric{}, fmt.Errorf("reps and hold_seconds are mutually exclusive")
	case ex.Reps > 0:
		return models.Metric{Kind: models.MetricReps, Value: ex.Reps}, nil
	case ex.HoldSeconds > 0:
		return models.Metric{Kind: models.MetricHold, Value: ex.HoldSeconds}, nil
	default:
		return models.Metric{}, fmt.Errorf("either reps or hold_seconds is required")
	}
}

// GetGateCriteria returns the criteria for (category, level), or nil when
// no gate is defined there. Absence is a legitimate untracked-level
// state, not an error.
func (s *Storage) GetGateCriteria(category models.Category, level int) (*models.GateCriteria, error) {
	row := s.DB.QueryRow(`
        SELECT required_passes
        FROM gate_criteria
        WHERE category = ? AND level = ?`,
		string(category), level)

	var requiredPasses int
	if err := row.Scan(&requiredPasses); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load gate criteria: %w", err)
	}

	rows, err := s.DB.Query(`
        SELECT exercise_id, target_sets, metric_kind, metric_value
        FROM gate_criteria_exercises
        WHERE category = ? AND level = ?
        ORDER BY position ASC`,
		string(category), level)
	if err != nil {
		return nil, fmt.Errorf("failed to load criterion exercises: %w", err)
	}
	defer rows.Close()

	criteria := &models.GateCriteria{
		Category:                  category,
		Level:                     level,
		RequiredConsecutivePasses: requiredPasses,
	}
	for rows.Next() {
		var criterion models.ExerciseCriterion
		var kind string
		err := rows.Scan(&criterion.ExerciseID, &criterion.TargetSets, &kind, &criterion.Target.Value)
		if err != nil {
			continue
		}
		criterion.Target.Kind = models.MetricKind(kind)
		criteria.Exercises = append(criteria.Exercises, criterion)
	}
	return criteria, rows.Err()
}
