package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/calistheniq/calistheniq/internal/models"
)

// GetGateProgress returns the stored gate for (category, level), or nil
// when the user never touched that gate.
func (s *Storage) GetGateProgress(category models.Category, level int) (*models.GateProgress, error) {
	row := s.DB.QueryRow(`
        SELECT category, level, status, consecutive_passes, last_session_date
        FROM gate_progress
        WHERE category = ? AND level = ?`,
		string(category), level)

	var gate models.GateProgress
	var cat, status string
	var lastDate sql.NullString

	err := row.Scan(&cat, &gate.Level, &status, &gate.ConsecutivePasses, &lastDate)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load gate progress: %w", err)
	}

	gate.Category = models.Category(cat)
	gate.Status = models.GateStatus(status)
	if lastDate.Valid {
		t, err := time.Parse(time.RFC3339, lastDate.String)
		if err == nil {
			gate.LastSessionDate = &t
		}
	}
	return &gate, nil
}

// UpdateGateProgress writes the gate record, replacing any previous state
// for its (category, level).
func (s *Storage) UpdateGateProgress(gate models.GateProgress) error {
	var lastDate interface{}
	if gate.LastSessionDate != nil {
		lastDate = gate.LastSessionDate.UTC().Format(time.RFC3339)
	}

	_, err := s.DB.Exec(
		`INSERT OR REPLACE INTO gate_progress
         (category, level, status, consecutive_passes, last_session_date)
         VALUES (?, ?, ?, ?, ?)`,
		string(gate.Category),
		gate.Level,
		string(gate.Status),
		gate.ConsecutivePasses,
		lastDate,
	)
	if err != nil {
		return fmt.Errorf("failed to update gate progress: %w", err)
	}
	return nil
}
