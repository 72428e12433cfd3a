package engine

import (
	"time"

	"github.com/calistheniq/calistheniq/internal/models"
)

// UpdateGateAfterSession advances the gate state machine with one
// evaluated session. Clean sessions increment the consecutive-pass
// counter, reaching the criteria threshold marks the gate passed; any
// non-clean session resets the counter to 0. The session date is
// recorded either way.
func UpdateGateAfterSession(
	gate models.GateProgress,
	result SessionResult,
	criteria models.GateCriteria,
	sessionDate time.Time,
) models.GateProgress {
	updated := gate
	updated.LastSessionDate = &sessionDate

	if result.IsClean {
		updated.ConsecutivePasses = gate.ConsecutivePasses + 1
		if updated.ConsecutivePasses >= criteria.RequiredConsecutivePasses {
			updated.Status = models.GatePassed
		} else {
			updated.Status = models.GateInProgress
		}
		return updated
	}

	updated.ConsecutivePasses = 0
	updated.Status = models.GateInProgress
	return updated
}

// CreateGateProgress seeds a fresh gate for (category, level) relative to
// the user's current level in that category. Levels already cleared come
// back pre-passed with the counter at the threshold; levels ahead come
// back locked.
func CreateGateProgress(category models.Category, level, userLevel int) models.GateProgress {
	gate := models.GateProgress{
		Category: category,
		Level:    level,
		Status:   models.GateInProgress,
	}
	switch {
	case level > userLevel:
		gate.Status = models.GateLocked
	case level < userLevel:
		gate.Status = models.GatePassed
		gate.ConsecutivePasses = RequiredConsecutivePasses
	}
	return gate
}

// RequiredConsecutivePasses is the curriculum-wide gate threshold, used
// when seeding historically cleared gates.
const RequiredConsecutivePasses = 3

// NodeState derives the visual state of a skill-tree node from the gate
// and the user's current levels. No state machine of its own.
func NodeState(gate models.GateProgress, userLevels map[models.Category]int) models.NodeState {
	if gate.Status == models.GatePassed {
		return models.NodePassed
	}
	if gate.Level > userLevels[gate.Category] {
		return models.NodeLocked
	}
	if gate.ConsecutivePasses > 0 {
		return models.NodeInProgress
	}
	return models.NodeOpen
}

// CheckCategoryLevelUp promotes the user's category by one level when the
// gate is passed and is the gate for the level the user is currently on.
// A stale gate for a past level passing again must not re-promote.
// Mutates user.Levels and reports whether a promotion happened.
func CheckCategoryLevelUp(gate models.GateProgress, user *models.User) bool {
	if gate.Status == models.GatePassed && gate.Level == user.Levels[gate.Category] {
		user.Levels[gate.Category]++
		return true
	}
	return false
}
