package models

import "fmt"

// Category is one of the three trainable movement patterns.
// The set is closed and never extended at runtime.
type Category string

const (
	CategoryPush  Category = "push"
	CategoryPull  Category = "pull"
	CategorySquat Category = "squat"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryPush, CategoryPull, CategorySquat}

const (
	// MinLevel and MaxLevel bound the skill curriculum. Gates simply stop
	// existing beyond MaxLevel.
	MinLevel = 1
	MaxLevel = 5
)

func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryPush, CategoryPull, CategorySquat:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown category %q (expected push, pull or squat)", s)
}
