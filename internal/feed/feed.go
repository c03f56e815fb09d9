// Package feed implements the live startup signal feed and the per-startup
// profile opened from it.
package feed

import (
	"errors"
	"fmt"
	"slices"

	"mvp90terminal/internal/intel"
	"mvp90terminal/internal/view"
)

// ErrSignalNotFound is returned for ids outside the feed.
var ErrSignalNotFound = errors.New("signal not found")

// ErrUnknownSort is returned for sort keys the feed does not offer.
var ErrUnknownSort = errors.New("unknown sort key")

// Facet option lists offered by the filter bar.
var (
	Industries = []string{"AI/ML", "AgTech", "FinTech", "HealthTech", "Logistics"}
	Regions    = []string{"North America", "Asia", "Europe", "Global"}
	Sources    = []string{"GitHub", "ProductHunt", "Reddit", "Twitter"}
)

// ScoreTiers buckets novelty and market fit scores. Cloneability is tiered
// on 10 minus the score, so a hard-to-copy startup reads as good.
var ScoreTiers = view.Thresholds{Good: 8, Fair: 6}

func cloneabilityTier(score float64) view.Tier { return ScoreTiers.Tier(10 - score) }

// SortKey selects the descending sort of the feed.
type SortKey string

const (
	SortNovelty   SortKey = "noveltyScore"
	SortMarketFit SortKey = "indiaMarketFit"
	SortBuildCost SortKey = "estimatedBuildCost"
)

// ParseSortKey validates key. Empty selects novelty.
func ParseSortKey(key string) (SortKey, error) {
	switch k := SortKey(key); k {
	case SortNovelty, SortMarketFit, SortBuildCost:
		return k, nil
	case "":
		return SortNovelty, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSort, key)
	}
}

// Filters narrows the feed. Zero values match everything, so Filters{} is
// the "clear filters" reset.
type Filters struct {
	Industry        string          `json:"industry"`
	Region          string          `json:"region"`
	Source          string          `json:"source"`
	ActionTag       intel.ActionTag `json:"actionTag"`
	MinNoveltyScore float64         `json:"minNoveltyScore"`
}

func (f Filters) predicate() view.Predicate[intel.StartupSignal] {
	return view.All(
		view.Equals(f.Industry, func(s intel.StartupSignal) string { return s.Industry }),
		view.Equals(f.Region, func(s intel.StartupSignal) string { return s.Region }),
		view.Equals(f.Source, func(s intel.StartupSignal) string { return s.Source }),
		view.Equals(string(f.ActionTag), func(s intel.StartupSignal) string { return string(s.ActionTag) }),
		view.AtLeast(f.MinNoveltyScore, func(s intel.StartupSignal) float64 { return s.NoveltyScore }),
	)
}

func (k SortKey) comparator() view.Comparator[intel.StartupSignal] {
	var c view.Comparator[intel.StartupSignal]
	switch k {
	case SortMarketFit:
		c = view.By(func(s intel.StartupSignal) float64 { return s.IndiaMarketFit })
	case SortBuildCost:
		c = view.By(func(s intel.StartupSignal) int { return s.EstimatedBuildCost })
	default:
		c = view.By(func(s intel.StartupSignal) float64 { return s.NoveltyScore })
	}
	return view.Desc(c)
}

// Rand is the randomness the refresh tick draws from.
type Rand interface {
	IntN(n int) int
}

// Feed holds one session's copy of the signals and the profile state that
// hangs off them. It is not safe for concurrent use; the owning session
// serializes access.
type Feed struct {
	signals    []intel.StartupSignal
	refreshing bool
	watched    map[int]bool
	notes      map[int]string
}

// New builds a feed over a private copy of signals.
func New(signals []intel.StartupSignal) *Feed {
	return &Feed{
		signals: slices.Clone(signals),
		watched: make(map[int]bool),
		notes:   make(map[int]string),
	}
}

// Card is one feed row with its score tiers and action tone resolved.
type Card struct {
	intel.StartupSignal
	NoveltyTier      view.Tier `json:"noveltyTier"`
	CloneabilityTier view.Tier `json:"cloneabilityTier"`
	MarketFitTier    view.Tier `json:"marketFitTier"`
	ActionTone       view.Tone `json:"actionTone"`
}

func card(s intel.StartupSignal) Card {
	return Card{
		StartupSignal:    s,
		NoveltyTier:      ScoreTiers.Tier(s.NoveltyScore),
		CloneabilityTier: cloneabilityTier(s.CloneabilityScore),
		MarketFitTier:    ScoreTiers.Tier(s.IndiaMarketFit),
		ActionTone:       view.ActionPalette.Tone(string(s.ActionTag)),
	}
}

// Result is what the feed panel renders.
type Result struct {
	Signals    []Card `json:"signals"`
	Total      int    `json:"total"`
	Refreshing bool   `json:"refreshing"`
	// CanClear is set when the filters leave nothing to show.
	CanClear bool `json:"canClear"`
}

// View filters then sorts the signals. Ties keep sample order.
func (f *Feed) View(filters Filters, sort SortKey) Result {
	kept := view.Filter(f.signals, filters.predicate())
	out := view.Sorted(kept, sort.comparator())
	cards := make([]Card, len(out))
	for i, s := range out {
		cards[i] = card(s)
	}
	return Result{
		Signals:    cards,
		Total:      len(f.signals),
		Refreshing: f.refreshing,
		CanClear:   len(out) == 0,
	}
}

// Signal returns one signal by id.
func (f *Feed) Signal(id int) (intel.StartupSignal, error) {
	i := slices.IndexFunc(f.signals, func(s intel.StartupSignal) bool { return s.ID == id })
	if i < 0 {
		return intel.StartupSignal{}, fmt.Errorf("%w: %d", ErrSignalNotFound, id)
	}
	return f.signals[i], nil
}

// Refreshing reports whether a refresh tick is in flight.
func (f *Feed) Refreshing() bool { return f.refreshing }

// BeginRefresh marks a tick as in flight.
func (f *Feed) BeginRefresh() { f.refreshing = true }

// ApplyRefresh stamps every signal with a new "N min ago" (N in 1..20) and
// swaps the whole slice in one step.
func (f *Feed) ApplyRefresh(rng Rand) {
	next := make([]intel.StartupSignal, len(f.signals))
	for i, s := range f.signals {
		s.LastUpdated = fmt.Sprintf("%d min ago", rng.IntN(20)+1)
		next[i] = s
	}
	f.signals = next
	f.refreshing = false
}
