package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/calistheniq/calistheniq/internal/models"
)

func completeWeek(weekStart string) models.WeekProgress {
	return models.WeekProgress{WeekStart: weekStart, Push: true, Pull: true, Squat: true}
}

func incompleteWeek(weekStart string) models.WeekProgress {
	return models.WeekProgress{WeekStart: weekStart, Push: true}
}

func TestCalculateStreak_Empty(t *testing.T) {
	assert.Equal(t, 0, CalculateStreak(nil))
}

func TestCalculateStreak_AllComplete(t *testing.T) {
	history := []models.WeekProgress{
		completeWeek("2025-01-06"),
		completeWeek("2025-01-13"),
		completeWeek("2025-01-20"),
		completeWeek("2025-01-27"),
	}
	assert.Equal(t, 4, CalculateStreak(history))
}

func TestCalculateStreak_OnlyTrailingRunCounts(t *testing.T) {
	history := []models.WeekProgress{
		completeWeek("2025-01-06"),
		incompleteWeek("2025-01-13"),
		completeWeek("2025-01-20"),
		completeWeek("2025-01-27"),
	}
	assert.Equal(t, 2, CalculateStreak(history))
}

func TestCalculateStreak_IncompleteLastWeekResets(t *testing.T) {
	history := []models.WeekProgress{
		completeWeek("2025-01-06"),
		completeWeek("2025-01-13"),
		incompleteWeek("2025-01-20"),
		completeWeek("2025-01-27"),
	}
	assert.Equal(t, 1, CalculateStreak(history))
}

func TestCalculateStreak_AllIncomplete(t *testing.T) {
	history := []models.WeekProgress{
		incompleteWeek("2025-01-06"),
		incompleteWeek("2025-01-13"),
	}
	assert.Equal(t, 0, CalculateStreak(history))
}

func TestUpdateStreakOnWeekEnd(t *testing.T) {
	assert.Equal(t, 3, UpdateStreakOnWeekEnd(2, completeWeek("2025-01-13")))
	assert.Equal(t, 0, UpdateStreakOnWeekEnd(5, incompleteWeek("2025-01-13")))
	assert.Equal(t, 1, UpdateStreakOnWeekEnd(0, completeWeek("2025-01-13")))
}
