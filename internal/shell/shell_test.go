package shell

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"mvp90terminal/internal/auth"
	"mvp90terminal/internal/catalog"
	"mvp90terminal/internal/feed"
	"mvp90terminal/internal/intel"
	"mvp90terminal/internal/routing"
	"mvp90terminal/internal/trends"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newStore(c *clock) *Store {
	return NewStore(catalog.Samples(), Options{TTL: time.Hour, Now: c.now})
}

func TestModuleRegistryOrder(t *testing.T) {
	keys := make([]string, 0, len(Modules))
	for _, m := range Modules {
		keys = append(keys, m.Key)
	}
	assert.Equal(t, []string{
		"startupFeed", "founderSearch", "vcDealTracker", "savedLists",
		"trendDashboard", "lpDigest", "routing",
	}, keys)
}

func TestUnknownModuleShowsPlaceholder(t *testing.T) {
	s := NewState()
	assert.Equal(t, Header{Title: "Startup Feed", Subtitle: "Live startup signals"}, s.Frame().Header)

	s.SelectModule("portfolio")
	f := s.Frame()
	assert.Equal(t, "portfolio", f.State.CurrentModule)
	assert.Equal(t, Header{Title: "Dashboard", Subtitle: "Select a module"}, f.Header)
	require.NotNil(t, f.Placeholder)
	assert.Nil(t, f.Module)
	assert.Equal(t, "Choose a module from the sidebar to get started", f.Placeholder.Message)
}

func TestLogoutDropsRole(t *testing.T) {
	s := NewState()
	s.SignIn(intel.RoleAnalyst)
	s.SelectModule(ModuleRouting)
	s.Logout()
	assert.False(t, s.Authenticated)
	assert.Equal(t, intel.RoleViewer, s.Role)
	assert.Equal(t, ModuleRouting, s.CurrentModule)
}

func TestSessionsAreDisjoint(t *testing.T) {
	st := newStore(&clock{t: time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC)})
	a := st.Open(auth.Identity{Username: "ana", Role: intel.RoleAnalyst})
	b := st.Open(auth.Identity{Username: "bo", Role: intel.RoleAdmin})
	require.NotEqual(t, a.ID(), b.ID())

	require.NoError(t, a.Do(func(w *Workspace) error {
		assert.Equal(t, "ana", w.Username())
		assert.Equal(t, intel.RoleAnalyst, w.State().Role)
		if _, err := w.Routing.StageDraft(1, intel.ActionStore, "crowded"); err != nil {
			return err
		}
		_, err := w.Routing.Override(1, w.Username())
		return err
	}))

	require.NoError(t, b.Do(func(w *Workspace) error {
		idea, err := w.Routing.Idea(1)
		require.NoError(t, err)
		assert.False(t, routing.Overridden(idea))
		return nil
	}))
}

func TestGetUnknownSession(t *testing.T) {
	st := newStore(&clock{t: time.Now()})
	_, err := st.Get("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSweepExpiresIdleSessions(t *testing.T) {
	c := &clock{t: time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC)}
	st := newStore(c)
	idle := st.Open(auth.DemoLogin())
	active := st.Open(auth.DemoLogin())

	c.advance(40 * time.Minute)
	_, err := st.Get(active.ID())
	require.NoError(t, err)
	c.advance(30 * time.Minute)

	assert.Equal(t, 1, st.Sweep())
	_, err = st.Get(idle.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = st.Get(active.ID())
	assert.NoError(t, err)
}

func TestDeleteSession(t *testing.T) {
	st := newStore(&clock{t: time.Now()})
	ws := st.Open(auth.DemoLogin())
	st.Delete(ws.ID())
	st.Delete("unknown")
	assert.Zero(t, st.Len())
}

func TestRefreshLoopUpdatesLiveWorkspaces(t *testing.T) {
	st := newStore(&clock{t: time.Now()})
	ws := st.Open(auth.DemoLogin())

	var before []float64
	require.NoError(t, ws.Do(func(w *Workspace) error {
		res, err := w.Trends.View(trends.Query{})
		for _, row := range res.Sectors {
			before = append(before, row.Change)
		}
		return err
	}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- st.RefreshLoop(ctx, RefreshConfig{
			FeedEvery:   5 * time.Millisecond,
			TrendsEvery: 5 * time.Millisecond,
			Seed:        42,
		})
	}()

	assert.Eventually(t, func() bool {
		changed := false
		_ = ws.Do(func(w *Workspace) error {
			res, _ := w.Trends.View(trends.Query{})
			for i, row := range res.Sectors {
				if row.Change != before[i] {
					changed = true
				}
			}
			return nil
		})
		return changed
	}, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	_ = ws.Do(func(w *Workspace) error {
		res := w.Feed.View(feed.Filters{}, feed.SortNovelty)
		assert.False(t, res.Refreshing)
		return nil
	})
}

func TestRefreshLoopRejectsZeroIntervals(t *testing.T) {
	st := newStore(&clock{t: time.Now()})
	assert.Error(t, st.RefreshLoop(context.Background(), RefreshConfig{}))
}

func TestResumeKeepsPanels(t *testing.T) {
	st := newStore(&clock{t: time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC)})
	ws := st.Open(auth.Identity{Username: "ana", Role: intel.RoleAnalyst})
	require.NoError(t, ws.Do(func(w *Workspace) error {
		_, err := w.Feed.ToggleWatch(2)
		w.Logout()
		return err
	}))

	back, err := st.Resume(ws.ID(), auth.Identity{Username: "ana", Role: intel.RoleAdmin})
	require.NoError(t, err)
	assert.Same(t, ws, back)
	_ = back.Do(func(w *Workspace) error {
		assert.True(t, w.State().Authenticated)
		assert.Equal(t, intel.RoleAdmin, w.State().Role)
		p, err := w.Feed.Open(2, "")
		require.NoError(t, err)
		assert.True(t, p.Watched)
		return nil
	})

	_, err = st.Resume("gone", auth.DemoLogin())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
