package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calistheniq/calistheniq/internal/models"
)

func pushL1Criteria() *models.GateCriteria {
	return &models.GateCriteria{
		Category:                  models.CategoryPush,
		Level:                     1,
		RequiredConsecutivePasses: 3,
		Exercises: []models.ExerciseCriterion{
			{
				ExerciseID: "beginner-negative-push-ups",
				TargetSets: 3,
				Target:     models.Metric{Kind: models.MetricReps, Value: 8},
			},
			{
				ExerciseID: "beginner-scapula-push-ups",
				TargetSets: 4,
				Target:     models.Metric{Kind: models.MetricReps, Value: 8},
			},
			{
				ExerciseID: "beginner-plank-hold",
				TargetSets: 4,
				Target:     models.Metric{Kind: models.MetricHold, Value: 60},
			},
		},
	}
}

func cleanPushL1Session() models.WorkoutSession {
	return models.WorkoutSession{
		ID:       "s1",
		Date:     time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
		Category: models.CategoryPush,
		Level:    1,
		Exercises: []models.ExerciseEntry{
			{
				ExerciseID:  "beginner-negative-push-ups",
				TargetSets:  3,
				TargetReps:  8,
				CheckedSets: []bool{true, true, true},
				ActualReps:  []int{8, 8, 8},
				HitTarget:   true,
			},
			{
				ExerciseID:  "beginner-scapula-push-ups",
				TargetSets:  4,
				TargetReps:  8,
				CheckedSets: []bool{true, true, true, true},
				ActualReps:  []int{8, 8, 8, 8},
				HitTarget:   true,
			},
			{
				ExerciseID:        "beginner-plank-hold",
				TargetSets:        4,
				CheckedSets:       []bool{true, true, true, true},
				ActualHoldSeconds: []int{60, 60, 60, 60},
				HitTarget:         true,
			},
		},
	}
}

func TestEvaluateSession_Clean(t *testing.T) {
	result := EvaluateSession(cleanPushL1Session(), pushL1Criteria())
	assert.True(t, result.IsClean)
	assert.Equal(t, 100, result.CompletionPct)
	require.Len(t, result.Exercises, 3)
	for _, ex := range result.Exercises {
		assert.True(t, ex.Met, ex.ExerciseID)
	}
}

func TestEvaluateSession_OneRepBelowTarget(t *testing.T) {
	session := cleanPushL1Session()
	session.Exercises[0].ActualReps = []int{8, 8, 7}
	session.Exercises[0].HitTarget = false

	result := EvaluateSession(session, pushL1Criteria())
	assert.False(t, result.IsClean)
	assert.Equal(t, 67, result.CompletionPct) // 2 of 3 met
}

func TestEvaluateSession_UncheckedSetNotCounted(t *testing.T) {
	session := cleanPushL1Session()
	// Only 2 of the required 3 sets checked; the typed-in rep value of the
	// third set must not rescue the exercise.
	session.Exercises[0].CheckedSets = []bool{true, true, false}

	result := EvaluateSession(session, pushL1Criteria())
	assert.False(t, result.IsClean)
	assert.Equal(t, 2, result.Exercises[0].ActualCheckedSets)
	assert.False(t, result.Exercises[0].Met)
}

func TestEvaluateSession_HitTargetFlagIgnored(t *testing.T) {
	session := cleanPushL1Session()
	session.Exercises[0].ActualReps = []int{8, 8, 7}
	session.Exercises[0].HitTarget = true // lying client

	result := EvaluateSession(session, pushL1Criteria())
	assert.False(t, result.Exercises[0].Met)
	assert.False(t, result.IsClean)
}

func TestEvaluateSession_MissingExercise(t *testing.T) {
	session := cleanPushL1Session()
	session.Exercises = session.Exercises[:1]

	result := EvaluateSession(session, pushL1Criteria())
	assert.False(t, result.IsClean)
	assert.Equal(t, 33, result.CompletionPct)
	assert.Equal(t, 0, result.Exercises[1].ActualCheckedSets)
	assert.Empty(t, result.Exercises[1].ActualReps)
}

func TestEvaluateSession_EmptySession(t *testing.T) {
	session := models.WorkoutSession{
		ID:       "s2",
		Date:     time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Category: models.CategoryPush,
		Level:    1,
	}

	result := EvaluateSession(session, pushL1Criteria())
	assert.False(t, result.IsClean)
	assert.Equal(t, 0, result.CompletionPct)
}

func TestEvaluateSession_HoldBelowTarget(t *testing.T) {
	session := cleanPushL1Session()
	session.Exercises[2].ActualHoldSeconds = []int{60, 60, 59, 60}

	result := EvaluateSession(session, pushL1Criteria())
	assert.False(t, result.IsClean)
}

func TestEvaluateSession_HoldMissingValues(t *testing.T) {
	session := cleanPushL1Session()
	session.Exercises[2].ActualHoldSeconds = nil

	result := EvaluateSession(session, pushL1Criteria())
	assert.False(t, result.Exercises[2].Met)
}

func TestEvaluateSession_NoCriteriaIsVacuousPass(t *testing.T) {
	session := cleanPushL1Session()
	session.Level = 5

	result := EvaluateSession(session, nil)
	assert.True(t, result.IsClean)
	assert.Equal(t, 100, result.CompletionPct)
	assert.Empty(t, result.Exercises)
}

func TestEvaluateSession_ZeroCriteriaExercises(t *testing.T) {
	criteria := &models.GateCriteria{
		Category:                  models.CategoryPush,
		Level:                     1,
		RequiredConsecutivePasses: 3,
	}

	result := EvaluateSession(cleanPushL1Session(), criteria)
	// Distinct from the absent-criteria case: defined-but-empty is 0%.
	assert.True(t, result.IsClean)
	assert.Equal(t, 0, result.CompletionPct)
}

func TestEvaluateSession_Deterministic(t *testing.T) {
	session := cleanPushL1Session()
	session.Exercises[1].ActualReps = []int{8, 7, 8, 8}

	first := EvaluateSession(session, pushL1Criteria())
	second := EvaluateSession(session, pushL1Criteria())
	assert.Equal(t, first, second)
}
