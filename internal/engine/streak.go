package engine

import "github.com/calistheniq/calistheniq/internal/models"

// CalculateStreak walks archived week history (oldest to newest,
// excluding the current in-progress week) and returns the trailing run of
// complete weeks: any incomplete week resets the count.
func CalculateStreak(history []models.WeekProgress) int {
	streak := 0
	for _, week := range history {
		if IsWeekComplete(week) {
			streak++
		} else {
			streak = 0
		}
	}
	return streak
}

// UpdateStreakOnWeekEnd is the incremental form of CalculateStreak,
// applied when a week rolls over without replaying full history.
func UpdateStreakOnWeekEnd(currentStreak int, endedWeek models.WeekProgress) int {
	if IsWeekComplete(endedWeek) {
		return currentStreak + 1
	}
	return 0
}
