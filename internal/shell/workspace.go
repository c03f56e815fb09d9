package shell

import (
	"sync"
	"time"

	"mvp90terminal/internal/auth"
	"mvp90terminal/internal/catalog"
	"mvp90terminal/internal/deals"
	"mvp90terminal/internal/digest"
	"mvp90terminal/internal/feed"
	"mvp90terminal/internal/founder"
	"mvp90terminal/internal/routing"
	"mvp90terminal/internal/trends"
	"mvp90terminal/internal/watchlist"
)

// Workspace is everything one session sees. Panels are not safe for
// concurrent use; callers go through Do.
type Workspace struct {
	id string

	mu       sync.Mutex
	state    State
	username string
	lastSeen time.Time

	Feed      *feed.Feed
	Founders  *founder.Searcher
	Deals     *deals.Tracker
	Watchlist *watchlist.List
	Trends    *trends.Dashboard
	Digest    *digest.Panel
	Routing   *routing.Panel
}

func newWorkspace(id string, data catalog.Dataset, dir founder.Directory, now func() time.Time) *Workspace {
	data = data.Clone()
	return &Workspace{
		id:        id,
		state:     NewState(),
		lastSeen:  now(),
		Feed:      feed.New(data.Signals),
		Founders:  founder.NewSearcher(dir),
		Deals:     deals.NewTracker(data.Deals, now),
		Watchlist: watchlist.New(data.SavedItems),
		Trends:    trends.New(data.Sectors, data.TopIdeas, data.Sources),
		Digest:    digest.NewPanel(data.Digest),
		Routing:   routing.New(data.Ideas, now),
	}
}

// ID is the session id.
func (w *Workspace) ID() string { return w.id }

// Do runs fn while holding the session lock. fn must not block on I/O or
// latency waits.
func (w *Workspace) Do(fn func(w *Workspace) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return fn(w)
}

// State returns the shell state. Call inside Do.
func (w *Workspace) State() State { return w.state }

// Username is the name the session signed in with. Call inside Do.
func (w *Workspace) Username() string { return w.username }

func (w *Workspace) signIn(id auth.Identity) {
	w.username = id.Username
	w.state.SignIn(id.Role)
}

// SelectModule switches the active module. Call inside Do.
func (w *Workspace) SelectModule(key string) { w.state.SelectModule(key) }

// Logout signs the session out. Panel state is kept. Call inside Do.
func (w *Workspace) Logout() { w.state.Logout() }

func (w *Workspace) touch(at time.Time) {
	w.mu.Lock()
	w.lastSeen = at
	w.mu.Unlock()
}

func (w *Workspace) idleSince() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastSeen
}
