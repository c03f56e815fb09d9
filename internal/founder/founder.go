// Package founder implements founder intelligence search with a short
// history of successful queries.
package founder

import (
	"context"
	"errors"
	"slices"
	"strings"

	"mvp90terminal/internal/catalog"
	"mvp90terminal/internal/intel"
	"mvp90terminal/internal/view"
)

// ErrNoFounder is returned when no founder matches a query.
var ErrNoFounder = errors.New("founder: no match")

// NoFounderMessage is the State.Error text after a miss.
const NoFounderMessage = "No founder found matching your search criteria."

// HistoryLimit caps the search history.
const HistoryLimit = 5

// QuickSearches are the one-click queries offered under the search box.
var QuickSearches = []string{"Priya Sharma", "Rajesh Kumar", "Dr. Sarah Chen", "NeuroLink AI", "CropSense"}

// Suggestions are offered after a failed search.
var Suggestions = QuickSearches[:3]

// ReputationTiers buckets reputation scores.
var ReputationTiers = view.Thresholds{Good: 8.5, Fair: 7}

// Directory looks founders up by free text.
type Directory interface {
	Find(ctx context.Context, query string) (intel.FounderDetails, bool, error)
}

// MemoryDirectory matches against an in-memory founder list.
type MemoryDirectory struct {
	founders []intel.FounderDetails
}

// NewMemoryDirectory copies founders into a directory.
func NewMemoryDirectory(founders []intel.FounderDetails) *MemoryDirectory {
	return &MemoryDirectory{founders: slices.Clone(founders)}
}

// Find returns the first founder, in list order, whose name, company or
// LinkedIn handle contains query ignoring case.
func (d *MemoryDirectory) Find(ctx context.Context, query string) (intel.FounderDetails, bool, error) {
	if err := ctx.Err(); err != nil {
		return intel.FounderDetails{}, false, err
	}
	q := strings.ToLower(query)
	for _, f := range d.founders {
		if strings.Contains(strings.ToLower(f.Name), q) ||
			strings.Contains(strings.ToLower(f.Company), q) ||
			(f.SocialLinks.LinkedIn != "" && strings.Contains(strings.ToLower(f.SocialLinks.LinkedIn), q)) {
			return f, true, nil
		}
	}
	return intel.FounderDetails{}, false, nil
}

// SlowDirectory delays every lookup of the wrapped directory.
type SlowDirectory struct {
	Directory Directory
	Latency   catalog.Latency
}

// Find waits the latency, then delegates.
func (d SlowDirectory) Find(ctx context.Context, query string) (intel.FounderDetails, bool, error) {
	if err := d.Latency.Wait(ctx); err != nil {
		return intel.FounderDetails{}, false, err
	}
	return d.Directory.Find(ctx, query)
}

// Lookup is the outcome of one directory call.
type Lookup struct {
	Query   string
	Founder intel.FounderDetails
	Found   bool
}

// Resolve runs query against dir. Blank queries return (nil, nil): nothing
// to do and nothing to record.
func Resolve(ctx context.Context, dir Directory, query string) (*Lookup, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	f, ok, err := dir.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	return &Lookup{Query: query, Founder: f, Found: ok}, nil
}

// State is what the founder panel renders.
type State struct {
	Result         *intel.FounderDetails `json:"result"`
	ReputationTier view.Tier             `json:"reputationTier,omitempty"`
	Error          string                `json:"error,omitempty"`
	Suggestions    []string              `json:"suggestions,omitempty"`
	History        []string              `json:"history"`
	QuickSearches  []string              `json:"quickSearches"`
}

// Searcher keeps one session's search result and history. Directory calls
// happen outside it through Resolve; Record applies their outcome.
type Searcher struct {
	dir     Directory
	result  *intel.FounderDetails
	errMsg  string
	history []string
}

// NewSearcher builds a searcher over dir.
func NewSearcher(dir Directory) *Searcher {
	return &Searcher{dir: dir}
}

// Directory returns the directory searches run against.
func (s *Searcher) Directory() Directory { return s.dir }

// Search resolves and records query in one step.
func (s *Searcher) Search(ctx context.Context, query string) (State, error) {
	l, err := Resolve(ctx, s.dir, query)
	if err != nil {
		return s.State(), err
	}
	return s.Record(l)
}

// Record applies a lookup. A match replaces the result and moves the query
// to the front of the history; a miss clears the result and returns
// ErrNoFounder. A nil lookup changes nothing.
func (s *Searcher) Record(l *Lookup) (State, error) {
	if l == nil {
		return s.State(), nil
	}
	if !l.Found {
		s.result = nil
		s.errMsg = NoFounderMessage
		return s.State(), ErrNoFounder
	}

	f := l.Founder
	s.result = &f
	s.errMsg = ""
	s.history = pushHistory(s.history, l.Query)
	return s.State(), nil
}

// History returns the most recent successful queries, newest first.
func (s *Searcher) History() []string { return slices.Clone(s.history) }

// State snapshots the panel.
func (s *Searcher) State() State {
	st := State{
		Error:         s.errMsg,
		History:       s.History(),
		QuickSearches: QuickSearches,
	}
	if s.history == nil {
		st.History = []string{}
	}
	if s.result != nil {
		f := *s.result
		st.Result = &f
		st.ReputationTier = ReputationTiers.Tier(f.Reputation.Score)
	}
	if s.errMsg != "" {
		st.Suggestions = Suggestions
	}
	return st
}

func pushHistory(history []string, query string) []string {
	out := make([]string, 0, HistoryLimit)
	out = append(out, query)
	for _, q := range history {
		if q != query && len(out) < HistoryLimit {
			out = append(out, q)
		}
	}
	return out
}
