package engine

import (
	"time"

	"github.com/calistheniq/calistheniq/internal/models"
)

// weekDateLayout formats a week id: the Monday of the week, date only.
const weekDateLayout = "2006-01-02"

// WeekStart returns the week id for the week containing t: the date of
// that week's Monday as "YYYY-MM-DD". Weeks run Monday through Sunday, so
// a Sunday maps six days back.
func WeekStart(t time.Time) string {
	diff := int(time.Monday - t.Weekday())
	if t.Weekday() == time.Sunday {
		diff = -6
	}
	return t.AddDate(0, 0, diff).Format(weekDateLayout)
}

// NewWeekProgress creates an empty record for the week containing t.
func NewWeekProgress(t time.Time) models.WeekProgress {
	return models.WeekProgress{WeekStart: WeekStart(t)}
}

// MarkCategoryDone returns the week with the category flagged as trained.
// Idempotent.
func MarkCategoryDone(week models.WeekProgress, c models.Category) models.WeekProgress {
	switch c {
	case models.CategoryPush:
		week.Push = true
	case models.CategoryPull:
		week.Pull = true
	case models.CategorySquat:
		week.Squat = true
	}
	return week
}

// IsWeekComplete reports whether all three categories were trained.
func IsWeekComplete(week models.WeekProgress) bool {
	return week.Push && week.Pull && week.Squat
}

// NeedsWeekReset reports whether the stored week is missing or belongs to
// a different calendar week than now, meaning the caller must archive it
// and start a fresh one. This is the only sanctioned staleness check.
func NeedsWeekReset(week *models.WeekProgress, now time.Time) bool {
	if week == nil {
		return true
	}
	return week.WeekStart != WeekStart(now)
}

// CompletedCount counts the categories trained this week, 0 to 3.
func CompletedCount(week models.WeekProgress) int {
	n := 0
	for _, c := range models.Categories {
		if week.Done(c) {
			n++
		}
	}
	return n
}
