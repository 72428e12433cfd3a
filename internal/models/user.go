package models

import "time"

// User holds the current level per category, the single source of truth
// for "current level". Levels move only +1 at a time, via the promoter.
type User struct {
	ID        string           `json:"id"`
	Levels    map[Category]int `json:"levels"`
	CreatedAt time.Time        `json:"created_at"`
}

// NewUser creates a user starting at level 1 in every category.
func NewUser(id string, createdAt time.Time) *User {
	levels := make(map[Category]int, len(Categories))
	for _, c := range Categories {
		levels[c] = MinLevel
	}
	return &User{
		ID:        id,
		Levels:    levels,
		CreatedAt: createdAt,
	}
}
