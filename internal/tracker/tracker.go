// Package tracker sequences the progression engine against persistence:
// logging a session runs save → evaluate → gate update → promotion check
// → week marking as a single serialized unit, and loading replays week
// history into the current streak.
package tracker

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/calistheniq/calistheniq/internal/engine"
	"github.com/calistheniq/calistheniq/internal/models"
)

// Store is the persistence port the tracker drives. Lookups that have no
// stored record return nil rather than an error; the tracker decides when
// to seed fresh records.
type Store interface {
	GetGateCriteria(category models.Category, level int) (*models.GateCriteria, error)

	GetUser() (*models.User, error)
	UpdateUser(user *models.User) error

	GetGateProgress(category models.Category, level int) (*models.GateProgress, error)
	UpdateGateProgress(gate models.GateProgress) error

	GetWeekProgress(weekStart string) (*models.WeekProgress, error)
	UpdateWeekProgress(week models.WeekProgress) error

	GetSessions() ([]models.WorkoutSession, error)
	SaveSession(session models.WorkoutSession) error
}

// Tracker owns the single-writer discipline for one user's records: the
// mutex keeps concurrent session submissions from interleaving and losing
// gate counter updates.
type Tracker struct {
	store Store
	mu    sync.Mutex
}

func New(store Store) *Tracker {
	return &Tracker{store: store}
}

// LogResult is everything a caller needs to render the outcome of one
// logged session.
type LogResult struct {
	Result    engine.SessionResult
	Gate      models.GateProgress
	LeveledUp bool
	NewLevel  int
	Week      models.WeekProgress
}

// LogSession runs the full pipeline for one session: persist it, score it
// against the gate criteria, advance the gate, promote the category if
// the gate cleared, and mark the category trained for the session's week.
func (t *Tracker) LogSession(session models.WorkoutSession) (*LogResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.store.SaveSession(session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	user, err := t.store.GetUser()
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	criteria, err := t.store.GetGateCriteria(session.Category, session.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to load gate criteria: %w", err)
	}

	result := engine.EvaluateSession(session, criteria)
	out := &LogResult{Result: result}

	if criteria != nil {
		gate, err := t.gateFor(session.Category, session.Level, user.Levels[session.Category])
		if err != nil {
			return nil, err
		}

		updated := engine.UpdateGateAfterSession(gate, result, *criteria, session.Date)
		if err := t.store.UpdateGateProgress(updated); err != nil {
			return nil, fmt.Errorf("failed to update gate: %w", err)
		}
		out.Gate = updated

		logrus.WithFields(logrus.Fields{
			"category": session.Category,
			"level":    session.Level,
			"clean":    result.IsClean,
			"passes":   updated.ConsecutivePasses,
			"status":   updated.Status,
		}).Debug("gate updated")

		if engine.CheckCategoryLevelUp(updated, user) {
			out.LeveledUp = true
			out.NewLevel = user.Levels[session.Category]
			if err := t.store.UpdateUser(user); err != nil {
				return nil, fmt.Errorf("failed to update user: %w", err)
			}

			// Seed the gate for the freshly reached level.
			next := engine.CreateGateProgress(session.Category, out.NewLevel, out.NewLevel)
			if err := t.store.UpdateGateProgress(next); err != nil {
				return nil, fmt.Errorf("failed to seed next gate: %w", err)
			}
			logrus.WithFields(logrus.Fields{
				"category": session.Category,
				"level":    out.NewLevel,
			}).Info("category leveled up")
		}
	} else {
		// No gate defined at this level; nothing to track, but the
		// session still counts for the week.
		out.Gate = engine.CreateGateProgress(session.Category, session.Level, user.Levels[session.Category])
	}

	week, err := t.currentWeek(session.Date)
	if err != nil {
		return nil, err
	}
	week = engine.MarkCategoryDone(week, session.Category)
	if err := t.store.UpdateWeekProgress(week); err != nil {
		return nil, fmt.Errorf("failed to update week: %w", err)
	}
	out.Week = week

	return out, nil
}

// Snapshot is the loaded view of a user's progress at one point in time.
type Snapshot struct {
	User     *models.User
	Week     models.WeekProgress
	Streak   int
	Gates    map[models.Category]models.GateProgress
	Sessions []models.WorkoutSession
}

// Load assembles the current progress view: the user, the current week
// (freshly created on rollover; old weeks stay as history), the gate at
// each category's current level, and the streak recomputed from archived
// week history.
func (t *Tracker) Load(now time.Time) (*Snapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	user, err := t.store.GetUser()
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	week, err := t.currentWeek(now)
	if err != nil {
		return nil, err
	}

	gates := make(map[models.Category]models.GateProgress, len(models.Categories))
	for _, c := range models.Categories {
		gate, err := t.gateFor(c, user.Levels[c], user.Levels[c])
		if err != nil {
			return nil, err
		}
		gates[c] = gate
	}

	sessions, err := t.store.GetSessions()
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	return &Snapshot{
		User:     user,
		Week:     week,
		Streak:   engine.CalculateStreak(WeekHistory(sessions, now)),
		Gates:    gates,
		Sessions: sessions,
	}, nil
}

// gateFor returns the stored gate for (category, level), seeding and
// persisting a fresh one when none exists. A gate still marked locked for
// a level the user has since reached is stale and gets reseeded instead
// of reused.
func (t *Tracker) gateFor(category models.Category, level, userLevel int) (models.GateProgress, error) {
	stored, err := t.store.GetGateProgress(category, level)
	if err != nil {
		return models.GateProgress{}, fmt.Errorf("failed to load gate: %w", err)
	}
	if stored != nil && !(stored.Status == models.GateLocked && stored.Level <= userLevel) {
		return *stored, nil
	}

	gate := engine.CreateGateProgress(category, level, userLevel)
	if err := t.store.UpdateGateProgress(gate); err != nil {
		return models.GateProgress{}, fmt.Errorf("failed to seed gate: %w", err)
	}
	return gate, nil
}

// currentWeek returns the week record for the week containing at,
// creating an empty one when there is no record for that week yet.
// NeedsWeekReset is the only staleness check used.
func (t *Tracker) currentWeek(at time.Time) (models.WeekProgress, error) {
	stored, err := t.store.GetWeekProgress(engine.WeekStart(at))
	if err != nil {
		return models.WeekProgress{}, fmt.Errorf("failed to load week: %w", err)
	}
	if !engine.NeedsWeekReset(stored, at) {
		return *stored, nil
	}

	week := engine.NewWeekProgress(at)
	if err := t.store.UpdateWeekProgress(week); err != nil {
		return models.WeekProgress{}, fmt.Errorf("failed to create week: %w", err)
	}
	return week, nil
}

// WeekHistory rebuilds per-week category coverage from the session log,
// oldest to newest, excluding the week containing now. Feeds the streak
// calculation.
func WeekHistory(sessions []models.WorkoutSession, now time.Time) []models.WeekProgress {
	byWeek := make(map[string]models.WeekProgress)
	for _, s := range sessions {
		ws := engine.WeekStart(s.Date)
		week, ok := byWeek[ws]
		if !ok {
			week = models.WeekProgress{WeekStart: ws}
		}
		byWeek[ws] = engine.MarkCategoryDone(week, s.Category)
	}

	current := engine.WeekStart(now)
	history := make([]models.WeekProgress, 0, len(byWeek))
	for ws, week := range byWeek {
		if ws != current {
			history = append(history, week)
		}
	}
	sort.Slice(history, func(i, j int) bool {
		return history[i].WeekStart < history[j].WeekStart
	})
	return history
}
