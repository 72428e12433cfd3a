package storage

import (
	"database/sql"
	"fmt"

	"github.com/calistheniq/calistheniq/internal/models"
	"github.com/calistheniq/calistheniq/internal/utils"
)

// GetWeekProgress returns the stored record for the week identified by
// its Monday date, or nil when that week was never touched.
func (s *Storage) GetWeekProgress(weekStart string) (*models.WeekProgress, error) {
	row := s.DB.QueryRow(`
        SELECT week_start, push_done, pull_done, squat_done
        FROM week_progress
        WHERE week_start = ?`, weekStart)

	var week models.WeekProgress
	var push, pull, squat int
	err := row.Scan(&week.WeekStart, &push, &pull, &squat)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load week progress: %w", err)
	}

	week.Push = push == 1
	week.Pull = pull == 1
	week.Squat = squat == 1
	return &week, nil
}

// UpdateWeekProgress writes the week record. Old weeks are never deleted;
// they stay as the streak's history.
func (s *Storage) UpdateWeekProgress(week models.WeekProgress) error {
	_, err := s.DB.Exec(
		`INSERT OR REPLACE INTO week_progress
         (week_start, push_done, pull_done, squat_done)
         VALUES (?, ?, ?, ?)`,
		week.WeekStart,
		utils.BoolToInt(week.Push),
		utils.BoolToInt(week.Pull),
		utils.BoolToInt(week.Squat),
	)
	if err != nil {
		return fmt.Errorf("failed to update week progress: %w", err)
	}
	return nil
}
