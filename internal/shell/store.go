package shell

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mvp90terminal/internal/auth"
	"mvp90terminal/internal/catalog"
	"mvp90terminal/internal/founder"
)

// ErrSessionNotFound is returned for unknown or expired session ids.
var ErrSessionNotFound = errors.New("session not found")

// DefaultTTL is how long an idle session survives.
const DefaultTTL = 12 * time.Hour

// Options tune a Store. Zero values pick defaults.
type Options struct {
	TTL           time.Duration
	SearchLatency catalog.Latency
	Now           func() time.Time
	Logger        *zap.Logger
}

// Store holds the live sessions.
type Store struct {
	data   catalog.Dataset
	dir    founder.Directory
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*Workspace
}

// NewStore creates a store whose sessions all start from data.
func NewStore(data catalog.Dataset, opts Options) *Store {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	var dir founder.Directory = founder.NewMemoryDirectory(data.Founders)
	if opts.SearchLatency > 0 {
		dir = founder.SlowDirectory{Directory: dir, Latency: opts.SearchLatency}
	}
	return &Store{
		data:     data.Clone(),
		dir:      dir,
		ttl:      opts.TTL,
		now:      opts.Now,
		logger:   opts.Logger,
		sessions: make(map[string]*Workspace),
	}
}

// Open starts a signed-in session for id.
func (s *Store) Open(id auth.Identity) *Workspace {
	ws := newWorkspace(uuid.NewString(), s.data, s.dir, s.now)
	ws.signIn(id)

	s.mu.Lock()
	s.sessions[ws.id] = ws
	n := len(s.sessions)
	s.mu.Unlock()

	s.logger.Info("session opened",
		zap.String("session", ws.id),
		zap.String("role", string(id.Role)),
		zap.Int("live", n),
	)
	return ws
}

// Resume signs an existing session back in with id, keeping its panels.
func (s *Store) Resume(sessionID string, id auth.Identity) (*Workspace, error) {
	ws, err := s.Get(sessionID)
	if err != nil {
		return nil, err
	}
	_ = ws.Do(func(ws *Workspace) error {
		ws.signIn(id)
		return nil
	})
	s.logger.Info("session resumed", zap.String("session", ws.id), zap.String("role", string(id.Role)))
	return ws, nil
}

// Get returns the session and marks it active.
func (s *Store) Get(id string) (*Workspace, error) {
	s.mu.RLock()
	ws, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	ws.touch(s.now())
	return ws, nil
}

// Delete drops a session. Unknown ids are ignored.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len is the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep drops sessions idle for longer than the TTL and reports how many
// went away.
func (s *Store) Sweep() int {
	cutoff := s.now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, ws := range s.sessions {
		if ws.idleSince().Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		s.logger.Info("sessions expired", zap.Int("removed", removed), zap.Int("live", len(s.sessions)))
	}
	return removed
}

func (s *Store) snapshot() []*Workspace {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Workspace, 0, len(s.sessions))
	for _, ws := range s.sessions {
		out = append(out, ws)
	}
	return out
}

// RefreshConfig drives RefreshLoop.
type RefreshConfig struct {
	FeedEvery   time.Duration
	TrendsEvery time.Duration
	// Settle is the pause between raising the refreshing flag and applying
	// the new values.
	Settle time.Duration
	// SweepEvery defaults to a tenth of the TTL.
	SweepEvery time.Duration
	Seed       uint64
}

// DefaultRefresh matches the dashboard timers.
func DefaultRefresh() RefreshConfig {
	return RefreshConfig{FeedEvery: 30 * time.Second, TrendsEvery: 60 * time.Second, Settle: time.Second}
}

// RefreshLoop re-stamps every feed and jitters every trend dashboard on
// their timers, and sweeps idle sessions. It returns nil once ctx is done.
func (s *Store) RefreshLoop(ctx context.Context, cfg RefreshConfig) error {
	if cfg.FeedEvery <= 0 || cfg.TrendsEvery <= 0 {
		return fmt.Errorf("refresh intervals must be positive: feed=%s trends=%s", cfg.FeedEvery, cfg.TrendsEvery)
	}
	if cfg.SweepEvery <= 0 {
		cfg.SweepEvery = max(s.ttl/10, time.Second)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(s.now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))

	feedTick := time.NewTicker(cfg.FeedEvery)
	defer feedTick.Stop()
	trendsTick := time.NewTicker(cfg.TrendsEvery)
	defer trendsTick.Stop()
	sweepTick := time.NewTicker(cfg.SweepEvery)
	defer sweepTick.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-feedTick.C:
			s.refresh(ctx, cfg.Settle,
				func(ws *Workspace) { ws.Feed.BeginRefresh() },
				func(ws *Workspace) { ws.Feed.ApplyRefresh(rng) },
			)
		case <-trendsTick.C:
			s.refresh(ctx, cfg.Settle,
				func(ws *Workspace) { ws.Trends.BeginRefresh() },
				func(ws *Workspace) { ws.Trends.ApplyRefresh(rng) },
			)
		case <-sweepTick.C:
			s.Sweep()
		}
	}
}

// refresh raises the flag on every workspace, waits settle, then applies.
// A cancelled wait still applies so no panel is left flagged.
func (s *Store) refresh(ctx context.Context, settle time.Duration, begin, apply func(*Workspace)) {
	live := s.snapshot()
	for _, ws := range live {
		_ = ws.Do(func(ws *Workspace) error { begin(ws); return nil })
	}
	_ = catalog.Latency(settle).Wait(ctx)
	for _, ws := range live {
		_ = ws.Do(func(ws *Workspace) error { apply(ws); return nil })
	}
}
