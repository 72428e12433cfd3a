// Package engine implements the progression rules: scoring a logged
// session against its gate criteria, advancing the per-level gate state
// machine, promoting categories, and deriving week/streak progress.
// Everything here is a pure function over immutable inputs; persistence
// belongs to the caller.
package engine

import (
	"math"

	"github.com/calistheniq/calistheniq/internal/models"
)

// ExerciseResult is the per-criterion breakdown of an evaluated session,
// in criteria order.
type ExerciseResult struct {
	ExerciseID        string
	Met               bool
	TargetSets        int
	Target            models.Metric
	ActualCheckedSets int
	ActualReps        []int
	ActualHoldSeconds []int
}

// SessionResult is the outcome of scoring one session. Computed fresh on
// every evaluation, never persisted verbatim.
type SessionResult struct {
	IsClean       bool
	CompletionPct int
	Exercises     []ExerciseResult
}

// EvaluateSession scores a session against the gate criteria for its
// (category, level). A nil criteria means no gate is defined there, which
// is a vacuous clean pass: untracked levels impose no gate.
func EvaluateSession(session models.WorkoutSession, criteria *models.GateCriteria) SessionResult {
	if criteria == nil {
		return SessionResult{IsClean: true, CompletionPct: 100}
	}

	results := make([]ExerciseResult, 0, len(criteria.Exercises))
	met := 0
	for _, criterion := range criteria.Exercises {
		entry := findEntry(session.Exercises, criterion.ExerciseID)
		res := ExerciseResult{
			ExerciseID: criterion.ExerciseID,
			TargetSets: criterion.TargetSets,
			Target:     criterion.Target,
		}
		if entry != nil {
			res.Met = exerciseMeetsCriterion(*entry, criterion)
			res.ActualCheckedSets = checkedCount(entry.CheckedSets)
			res.ActualReps = entry.ActualReps
			res.ActualHoldSeconds = entry.ActualHoldSeconds
		}
		if res.Met {
			met++
		}
		results = append(results, res)
	}

	pct := 0
	if len(criteria.Exercises) > 0 {
		pct = int(math.Round(float64(met) / float64(len(criteria.Exercises)) * 100))
	}

	return SessionResult{
		IsClean:       met == len(results),
		CompletionPct: pct,
		Exercises:     results,
	}
}

// exerciseMeetsCriterion checks one entry against one criterion: enough
// checked sets, and every checked set at or above the target metric.
// Unchecked sets are ignored for the metric check.
func exerciseMeetsCriterion(entry models.ExerciseEntry, criterion models.ExerciseCriterion) bool {
	if checkedCount(entry.CheckedSets) < criterion.TargetSets {
		return false
	}

	switch criterion.Target.Kind {
	case models.MetricHold:
		if len(entry.ActualHoldSeconds) == 0 {
			return false
		}
		for i, checked := range entry.CheckedSets {
			if checked && at(entry.ActualHoldSeconds, i) < criterion.Target.Value {
				return false
			}
		}
	default:
		for i, checked := range entry.CheckedSets {
			if checked && at(entry.ActualReps, i) < criterion.Target.Value {
				return false
			}
		}
	}
	return true
}

func findEntry(entries []models.ExerciseEntry, exerciseID string) *models.ExerciseEntry {
	for i := range entries {
		if entries[i].ExerciseID == exerciseID {
			return &entries[i]
		}
	}
	return nil
}

func checkedCount(checked []bool) int {
	n := 0
	for _, c := range checked {
		if c {
			n++
		}
	}
	return n
}

// at reads s[i], treating a missing value as 0.
func at(s []int, i int) int {
	if i < len(s) {
		return s[i]
	}
	return 0
}
