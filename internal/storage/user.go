package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/calistheniq/calistheniq/internal/models"
)

// GetUser loads the single local user.
func (s *Storage) GetUser() (*models.User, error) {
	row := s.DB.QueryRow(`
        SELECT id, push_level, pull_level, squat_level, created_at
        FROM users
        LIMIT 1`)

	var id, rawCreated string
	var push, pull, squat int
	err := row.Scan(&id, &push, &pull, &squat, &rawCreated)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("no user found, run 'calistheniq init' first")
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	created, _ := time.Parse(time.RFC3339, rawCreated)
	return &models.User{
		ID: id,
		Levels: map[models.Category]int{
			models.CategoryPush:  push,
			models.CategoryPull:  pull,
			models.CategorySquat: squat,
		},
		CreatedAt: created,
	}, nil
}

// CreateUser creates the local user at level 1 everywhere. No-op if a
// user already exists.
func (s *Storage) CreateUser() (*models.User, error) {
	if user, err := s.GetUser(); err == nil {
		return user, nil
	}

	user := models.NewUser(uuid.New().String(), time.Now().UTC())
	_, err := s.DB.Exec(
		`INSERT INTO users (id, push_level, pull_level, squat_level, created_at)
         VALUES (?, ?, ?, ?, ?)`,
		user.ID,
		user.Levels[models.CategoryPush],
		user.Levels[models.CategoryPull],
		user.Levels[models.CategorySquat],
		user.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// UpdateUser writes the current level triple back.
func (s *Storage) UpdateUser(user *models.User) error {
	_, err := s.DB.Exec(
		`UPDATE users
         SET push_level = ?, pull_level = ?, squat_level = ?
         WHERE id = ?`,
		user.Levels[models.CategoryPush],
		user.Levels[models.CategoryPull],
		user.Levels[models.CategorySquat],
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}
