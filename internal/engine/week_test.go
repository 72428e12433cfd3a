package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/calistheniq/calistheniq/internal/models"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 12, 0, 0, 0, time.UTC)
}

func TestWeekStart(t *testing.T) {
	// 2025-01-13 is a Monday.
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"wednesday", day(2025, time.January, 15), "2025-01-13"},
		{"monday maps to itself", day(2025, time.January, 13), "2025-01-13"},
		{"sunday maps back six days", day(2025, time.January, 19), "2025-01-13"},
		{"saturday", day(2025, time.January, 18), "2025-01-13"},
		{"next monday starts a new week", day(2025, time.January, 20), "2025-01-20"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekStart(tt.date))
		})
	}
}

func TestWeekStart_StableAcrossSpan(t *testing.T) {
	monday := day(2025, time.January, 13)
	for i := 0; i < 7; i++ {
		assert.Equal(t, "2025-01-13", WeekStart(monday.AddDate(0, 0, i)))
	}
	assert.NotEqual(t, "2025-01-13", WeekStart(monday.AddDate(0, 0, 7)))
	assert.NotEqual(t, "2025-01-13", WeekStart(monday.AddDate(0, 0, -1)))
}

func TestNewWeekProgress(t *testing.T) {
	week := NewWeekProgress(day(2025, time.January, 15))
	assert.Equal(t, "2025-01-13", week.WeekStart)
	for _, c := range models.Categories {
		assert.False(t, week.Done(c))
	}
}

func TestMarkCategoryDone(t *testing.T) {
	week := NewWeekProgress(day(2025, time.January, 15))

	updated := MarkCategoryDone(week, models.CategoryPush)
	assert.True(t, updated.Done(models.CategoryPush))
	assert.False(t, updated.Done(models.CategoryPull))
	// The input week is unchanged.
	assert.False(t, week.Done(models.CategoryPush))
}

func TestMarkCategoryDone_Idempotent(t *testing.T) {
	week := NewWeekProgress(day(2025, time.January, 15))
	first := MarkCategoryDone(week, models.CategoryPush)
	second := MarkCategoryDone(first, models.CategoryPush)
	assert.Equal(t, first, second)
}

func TestIsWeekComplete(t *testing.T) {
	week := NewWeekProgress(day(2025, time.January, 15))
	assert.False(t, IsWeekComplete(week))

	week = MarkCategoryDone(week, models.CategoryPush)
	assert.False(t, IsWeekComplete(week))

	week = MarkCategoryDone(week, models.CategoryPull)
	week = MarkCategoryDone(week, models.CategorySquat)
	assert.True(t, IsWeekComplete(week))
}

func TestNeedsWeekReset(t *testing.T) {
	assert.True(t, NeedsWeekReset(nil, time.Now()))

	week := NewWeekProgress(day(2025, time.January, 15))
	assert.False(t, NeedsWeekReset(&week, day(2025, time.January, 17)))
	assert.True(t, NeedsWeekReset(&week, day(2025, time.January, 20)))
}

func TestCompletedCount(t *testing.T) {
	week := NewWeekProgress(day(2025, time.January, 15))
	assert.Equal(t, 0, CompletedCount(week))

	week = MarkCategoryDone(week, models.CategoryPush)
	week = MarkCategoryDone(week, models.CategorySquat)
	assert.Equal(t, 2, CompletedCount(week))
}
