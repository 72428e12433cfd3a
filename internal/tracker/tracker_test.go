package tracker

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calistheniq/calistheniq/internal/engine"
	"github.com/calistheniq/calistheniq/internal/models"
)

// memStore is an in-memory Store for pipeline tests.
type memStore struct {
	mu       sync.Mutex
	user     *models.User
	criteria map[string]*models.GateCriteria
	gates    map[string]models.GateProgress
	weeks    map[string]models.WeekProgress
	sessions []models.WorkoutSession
}

func newMemStore() *memStore {
	return &memStore{
		user:     models.NewUser("u1", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		criteria: make(map[string]*models.GateCriteria),
		gates:    make(map[string]models.GateProgress),
		weeks:    make(map[string]models.WeekProgress),
	}
}

func key(c models.Category, level int) string {
	return fmt.Sprintf("%s:%d", c, level)
}

func (m *memStore) addCriteria(c models.Category, level int) {
	m.criteria[key(c, level)] = &models.GateCriteria{
		Category:                  c,
		Level:                     level,
		RequiredConsecutivePasses: 3,
		Exercises: []models.ExerciseCriterion{
			{
				ExerciseID: "ex-1",
				TargetSets: 3,
				Target:     models.Metric{Kind: models.MetricReps, Value: 8},
			},
		},
	}
}

func (m *memStore) GetGateCriteria(c models.Category, level int) (*models.GateCriteria, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.criteria[key(c, level)], nil
}

func (m *memStore) GetUser() (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := *m.user
	u.Levels = make(map[models.Category]int, len(m.user.Levels))
	for c, l := range m.user.Levels {
		u.Levels[c] = l
	}
	return &u, nil
}

func (m *memStore) UpdateUser(user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = user
	return nil
}

func (m *memStore) GetGateProgress(c models.Category, level int) (*models.GateProgress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if g, ok := m.gates[key(c, level)]; ok {
		return &g, nil
	}
	return nil, nil
}

func (m *memStore) UpdateGateProgress(gate models.GateProgress) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gates[key(gate.Category, gate.Level)] = gate
	return nil
}

func (m *memStore) GetWeekProgress(weekStart string) (*models.WeekProgress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if w, ok := m.weeks[weekStart]; ok {
		return &w, nil
	}
	return nil, nil
}

func (m *memStore) UpdateWeekProgress(week models.WeekProgress) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.weeks[week.WeekStart] = week
	return nil
}

func (m *memStore) GetSessions() ([]models.WorkoutSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.WorkoutSession(nil), m.sessions...), nil
}

func (m *memStore) SaveSession(session models.WorkoutSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions = append(m.sessions, session)
	return nil
}

func cleanSession(id string, date time.Time) models.WorkoutSession {
	return models.WorkoutSession{
		ID:       id,
		Date:     date,
		Category: models.CategoryPush,
		Level:    1,
		Exercises: []models.ExerciseEntry{
			{
				ExerciseID:  "ex-1",
				TargetSets:  3,
				TargetReps:  8,
				CheckedSets: []bool{true, true, true},
				ActualReps:  []int{8, 9, 8},
			},
		},
	}
}

func dirtySession(id string, date time.Time) models.WorkoutSession {
	s := cleanSession(id, date)
	s.Exercises[0].ActualReps = []int{8, 9, 7}
	return s
}

func TestLogSession_CleanIncrementsGate(t *testing.T) {
	store := newMemStore()
	store.addCriteria(models.CategoryPush, 1)
	tr := New(store)

	res, err := tr.LogSession(cleanSession("s1", time.Date(2025, 1, 13, 9, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	assert.True(t, res.Result.IsClean)
	assert.Equal(t, 1, res.Gate.ConsecutivePasses)
	assert.Equal(t, models.GateInProgress, res.Gate.Status)
	assert.False(t, res.LeveledUp)
	assert.True(t, res.Week.Done(models.CategoryPush))
	assert.Len(t, store.sessions, 1)
}

func TestLogSession_ThreeCleanSessionsPromote(t *testing.T) {
	store := newMemStore()
	store.addCriteria(models.CategoryPush, 1)
	tr := New(store)

	d := time.Date(2025, 1, 13, 9, 0, 0, 0, time.UTC)
	_, err := tr.LogSession(cleanSession("s1", d))
	require.NoError(t, err)
	_, err = tr.LogSession(cleanSession("s2", d.AddDate(0, 0, 2)))
	require.NoError(t, err)

	res, err := tr.LogSession(cleanSession("s3", d.AddDate(0, 0, 4)))
	require.NoError(t, err)

	assert.Equal(t, models.GatePassed, res.Gate.Status)
	assert.Equal(t, 3, res.Gate.ConsecutivePasses)
	assert.True(t, res.LeveledUp)
	assert.Equal(t, 2, res.NewLevel)
	assert.Equal(t, 2, store.user.Levels[models.CategoryPush])

	// The gate for the new level was seeded fresh.
	next := store.gates[key(models.CategoryPush, 2)]
	assert.Equal(t, models.GateInProgress, next.Status)
	assert.Equal(t, 0, next.ConsecutivePasses)
}

func TestLogSession_DirtySessionResetsCounter(t *testing.T) {
	store := newMemStore()
	store.addCriteria(models.CategoryPush, 1)
	tr := New(store)

	d := time.Date(2025, 1, 13, 9, 0, 0, 0, time.UTC)
	_, err := tr.LogSession(cleanSession("s1", d))
	require.NoError(t, err)
	_, err = tr.LogSession(cleanSession("s2", d.AddDate(0, 0, 1)))
	require.NoError(t, err)

	res, err := tr.LogSession(dirtySession("s3", d.AddDate(0, 0, 2)))
	require.NoError(t, err)

	assert.False(t, res.Result.IsClean)
	assert.Equal(t, 0, res.Gate.ConsecutivePasses)
	assert.Equal(t, models.GateInProgress, res.Gate.Status)
	assert.False(t, res.LeveledUp)
	// A failed session still counts toward the training week.
	assert.True(t, res.Week.Done(models.CategoryPush))
}

func TestLogSession_NoCriteriaIsVacuous(t *testing.T) {
	store := newMemStore()
	tr := New(store)

	session := cleanSession("s1", time.Date(2025, 1, 13, 9, 0, 0, 0, time.UTC))
	session.Level = 5

	res, err := tr.LogSession(session)
	require.NoError(t, err)

	assert.True(t, res.Result.IsClean)
	assert.Equal(t, 100, res.Result.CompletionPct)
	assert.False(t, res.LeveledUp)
	assert.True(t, res.Week.Done(models.CategoryPush))
	// No gate was persisted for the untracked level.
	_, ok := store.gates[key(models.CategoryPush, 5)]
	assert.False(t, ok)
}

func TestLogSession_ConcurrentSubmissionsSerialized(t *testing.T) {
	store := newMemStore()
	store.addCriteria(models.CategoryPush, 1)
	tr := New(store)

	d := time.Date(2025, 1, 13, 9, 0, 0, 0, time.UTC)
	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := tr.LogSession(cleanSession(fmt.Sprintf("s%d", i), d.Add(time.Duration(i)*time.Hour)))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	// No lost update: three clean sessions land on exactly three passes.
	assert.Equal(t, 2, store.user.Levels[models.CategoryPush])
	gate := store.gates[key(models.CategoryPush, 1)]
	assert.Equal(t, models.GatePassed, gate.Status)
	assert.Equal(t, 3, gate.ConsecutivePasses)
}

func TestLoad_FreshUser(t *testing.T) {
	store := newMemStore()
	store.addCriteria(models.CategoryPush, 1)
	tr := New(store)

	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	snap, err := tr.Load(now)
	require.NoError(t, err)

	assert.Equal(t, "2025-01-13", snap.Week.WeekStart)
	assert.Equal(t, 0, snap.Streak)
	assert.Empty(t, snap.Sessions)
	for _, c := range models.Categories {
		gate := snap.Gates[c]
		assert.Equal(t, 1, gate.Level)
		assert.Equal(t, models.GateInProgress, gate.Status)
	}
}

func TestLoad_WeekRolloverKeepsHistoryAndStreak(t *testing.T) {
	store := newMemStore()
	tr := New(store)

	// One full training week, then load in the following week.
	mon := time.Date(2025, 1, 13, 9, 0, 0, 0, time.UTC)
	for i, c := range models.Categories {
		s := cleanSession(fmt.Sprintf("s%d", i), mon.AddDate(0, 0, i))
		s.Category = c
		_, err := tr.LogSession(s)
		require.NoError(t, err)
	}

	nextWeek := mon.AddDate(0, 0, 7)
	snap, err := tr.Load(nextWeek)
	require.NoError(t, err)

	assert.Equal(t, "2025-01-20", snap.Week.WeekStart)
	assert.Equal(t, 0, engine.CompletedCount(snap.Week))
	assert.Equal(t, 1, snap.Streak)

	// The ended week is still on record.
	old, ok := store.weeks["2025-01-13"]
	require.True(t, ok)
	assert.True(t, engine.IsWeekComplete(old))
}

func TestLoad_HealsStaleLockedGate(t *testing.T) {
	store := newMemStore()
	tr := New(store)

	// A gate recorded as locked for a level the user has since reached.
	store.gates[key(models.CategoryPull, 1)] = models.GateProgress{
		Category: models.CategoryPull,
		Level:    1,
		Status:   models.GateLocked,
	}

	snap, err := tr.Load(time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, models.GateInProgress, snap.Gates[models.CategoryPull].Status)
}

func TestWeekHistory(t *testing.T) {
	now := time.Date(2025, 2, 5, 10, 0, 0, 0, time.UTC)

	var sessions []models.WorkoutSession
	addWeek := func(mon time.Time, cats ...models.Category) {
		for i, c := range cats {
			s := cleanSession(fmt.Sprintf("s-%s-%d", mon.Format("01-02"), i), mon.AddDate(0, 0, i))
			s.Category = c
			sessions = append(sessions, s)
		}
	}

	addWeek(time.Date(2025, 1, 13, 9, 0, 0, 0, time.UTC),
		models.CategoryPush, models.CategoryPull, models.CategorySquat)
	addWeek(time.Date(2025, 1, 20, 9, 0, 0, 0, time.UTC), models.CategoryPush)
	addWeek(time.Date(2025, 1, 27, 9, 0, 0, 0, time.UTC),
		models.CategoryPush, models.CategoryPull, models.CategorySquat)
	// Current week must be excluded.
	addWeek(time.Date(2025, 2, 3, 9, 0, 0, 0, time.UTC), models.CategoryPush)

	history := WeekHistory(sessions, now)
	require.Len(t, history, 3)
	assert.Equal(t, "2025-01-13", history[0].WeekStart)
	assert.Equal(t, "2025-01-20", history[1].WeekStart)
	assert.Equal(t, "2025-01-27", history[2].WeekStart)
	assert.Equal(t, 1, engine.CalculateStreak(history))
}
