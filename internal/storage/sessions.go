package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/calistheniq/calistheniq/internal/models"
	"github.com/calistheniq/calistheniq/internal/utils"
)

// SaveSession persists a logged session and its entries in one
// transaction. Sessions are immutable once saved.
func (s *Storage) SaveSession(session models.WorkoutSession) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO workout_sessions (id, date, category, level, notes)
         VALUES (?, ?, ?, ?, ?)`,
		session.ID,
		session.Date.UTC().Format(time.RFC3339),
		string(session.Category),
		session.Level,
		session.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	for i, entry := range session.Exercises {
		checked, err := json.Marshal(entry.CheckedSets)
		if err != nil {
			return fmt.Errorf("failed to encode checked sets: %w", err)
		}
		reps, err := json.Marshal(entry.ActualReps)
		if err != nil {
			return fmt.Errorf("failed to encode reps: %w", err)
		}
		var holds interface{}
		if entry.ActualHoldSeconds != nil {
			data, err := json.Marshal(entry.ActualHoldSeconds)
			if err != nil {
				return fmt.Errorf("failed to encode hold seconds: %w", err)
			}
			holds = string(data)
		}

		_, err = tx.Exec(
			`INSERT INTO session_entries
             (id, session_id, position, exercise_id, target_sets, target_reps,
              checked_sets, actual_reps, actual_hold_seconds, hit_target)
             VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			uuid.New().String(),
			session.ID,
			i,
			entry.ExerciseID,
			entry.TargetSets,
			entry.TargetReps,
			string(checked),
			string(reps),
			holds,
			utils.BoolToInt(entry.HitTarget),
		)
		if err != nil {
			return fmt.Errorf("failed to insert entry: %w", err)
		}
	}

	return tx.Commit()
}

// GetSessions returns every logged session with its entries, oldest
// first.
func (s *Storage) GetSessions() ([]models.WorkoutSession, error) {
	rows, err := s.DB.Query(`
        SELECT id, date, category, level, notes
        FROM workout_sessions
        ORDER BY date ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.WorkoutSession
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			continue // skip rows that fail to load
		}
		sessions = append(sessions, *session)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range sessions {
		entries, err := s.getSessionEntries(sessions[i].ID)
		if err != nil {
			return nil, err
		}
		sessions[i].Exercises = entries
	}
	return sessions, nil
}

// GetSessionByID returns one session with its entries.
func (s *Storage) GetSessionByID(sessionID string) (*models.WorkoutSession, error) {
	row := s.DB.QueryRow(`
        SELECT id, date, category, level, notes
        FROM workout_sessions
        WHERE id = ?`, sessionID)

	session, err := scanSession(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("session %s not found", sessionID)
		}
		return nil, err
	}

	entries, err := s.getSessionEntries(session.ID)
	if err != nil {
		return nil, err
	}
	session.Exercises = entries
	return session, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*models.WorkoutSession, error) {
	var session models.WorkoutSession
	var rawDate, category string
	var notes sql.NullString

	if err := row.Scan(&session.ID, &rawDate, &category, &session.Level, &notes); err != nil {
		return nil, err
	}

	session.Date, _ = time.Parse(time.RFC3339, rawDate)
	session.Category = models.Category(category)
	session.Notes = notes.String
	return &session, nil
}

func (s *Storage) getSessionEntries(sessionID string) ([]models.ExerciseEntry, error) {
	rows, err := s.DB.Query(`
        SELECT exercise_id, target_sets, target_reps,
               checked_sets, actual_reps, actual_hold_seconds, hit_target
        FROM session_entries
        WHERE session_id = ?
        ORDER BY position ASC`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	var entries []models.ExerciseEntry
	for rows.Next() {
		var entry models.ExerciseEntry
		var checked, reps string
		var holds sql.NullString
		var hitTarget int

		err := rows.Scan(
			&entry.ExerciseID,
			&entry.TargetSets,
			&entry.TargetReps,
			&checked,
			&reps,
			&holds,
			&hitTarget,
		)
		if err != nil {
			continue
		}

		_ = json.Unmarshal([]byte(checked), &entry.CheckedSets)
		_ = json.Unmarshal([]byte(reps), &entry.ActualReps)
		if holds.Valid {
			_ = json.Unmarshal([]byte(holds.String), &entry.ActualHoldSeconds)
		}
		entry.HitTarget = hitTarget == 1
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
