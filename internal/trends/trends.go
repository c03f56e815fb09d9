// Package trends implements the sector momentum dashboard.
package trends

import (
	"errors"
	"fmt"
	"slices"

	"mvp90terminal/internal/intel"
	"mvp90terminal/internal/view"
)

// ErrBadQuery is returned for unknown time ranges.
var ErrBadQuery = errors.New("invalid trends query")

// AllCategories is the category filter that keeps every idea.
const AllCategories = "all"

// Display tiers.
var (
	MomentumTiers = view.Thresholds{Good: 80, Fair: 60}
	ScoreTiers    = view.Thresholds{Good: 8.5, Fair: 7.5}
)

const (
	hotMomentum   = 70
	highIdeaScore = 8.0
)

// TimeRange is echoed back to the client; the samples do not vary with it.
type TimeRange string

const (
	Range7d  TimeRange = "7d"
	Range30d TimeRange = "30d"
	Range90d TimeRange = "90d"
)

// Query is the dashboard control state.
type Query struct {
	TimeRange TimeRange `json:"timeRange"`
	Category  string    `json:"category"`
}

// SectorRow is a sector with its display formatting.
type SectorRow struct {
	intel.SectorMomentum
	MomentumLabel string    `json:"momentumLabel"`
	ChangeLabel   string    `json:"changeLabel"`
	MomentumTier  view.Tier `json:"momentumTier"`
	ChangeTone    view.Tone `json:"changeTone"`
}

// IdeaRow is a top idea with its score tier.
type IdeaRow struct {
	intel.TopIdea
	ScoreLabel string    `json:"scoreLabel"`
	ScoreTier  view.Tier `json:"scoreTier"`
}

// Summary is the footer stat block.
type Summary struct {
	TotalSignals   int    `json:"totalSignals"`
	HotSectors     int    `json:"hotSectors"`
	HighScoreIdeas int    `json:"highScoreIdeas"`
	SignalsPerDay  string `json:"signalsPerDay"`
}

// Result is what the dashboard renders.
type Result struct {
	TimeRange  TimeRange                  `json:"timeRange"`
	Category   string                     `json:"category"`
	Categories []string                   `json:"categories"`
	Sectors    []SectorRow                `json:"sectors"`
	Ideas      []IdeaRow                  `json:"ideas"`
	Sources    []intel.SourceDistribution `json:"sources"`
	Summary    Summary                    `json:"summary"`
	Refreshing bool                       `json:"refreshing"`
}

// Rand is the randomness the refresh tick draws from.
type Rand interface {
	Float64() float64
}

// Dashboard holds one session's trend data.
type Dashboard struct {
	sectors    []intel.SectorMomentum
	ideas      []intel.TopIdea
	sources    []intel.SourceDistribution
	refreshing bool
}

// New builds a dashboard over private copies of the inputs.
func New(sectors []intel.SectorMomentum, ideas []intel.TopIdea, sources []intel.SourceDistribution) *Dashboard {
	return &Dashboard{
		sectors: slices.Clone(sectors),
		ideas:   slices.Clone(ideas),
		sources: slices.Clone(sources),
	}
}

// View renders the dashboard for q.
func (d *Dashboard) View(q Query) (Result, error) {
	switch q.TimeRange {
	case "":
		q.TimeRange = Range30d
	case Range7d, Range30d, Range90d:
	default:
		return Result{}, fmt.Errorf("%w: time range %q", ErrBadQuery, q.TimeRange)
	}
	if q.Category == "" {
		q.Category = AllCategories
	}

	var keep view.Predicate[intel.TopIdea]
	if q.Category != AllCategories {
		keep = view.Equals(q.Category, func(i intel.TopIdea) string { return i.Category })
	}

	sectors := make([]SectorRow, len(d.sectors))
	for i, s := range d.sectors {
		sectors[i] = sectorRow(s)
	}
	kept := view.Filter(d.ideas, keep)
	ideas := make([]IdeaRow, len(kept))
	for i, idea := range kept {
		ideas[i] = IdeaRow{
			TopIdea:    idea,
			ScoreLabel: fmt.Sprintf("%.1f", idea.Score),
			ScoreTier:  ScoreTiers.Tier(idea.Score),
		}
	}

	return Result{
		TimeRange:  q.TimeRange,
		Category:   q.Category,
		Categories: d.Categories(),
		Sectors:    sectors,
		Ideas:      ideas,
		Sources:    slices.Clone(d.sources),
		Summary:    d.Summary(),
		Refreshing: d.refreshing,
	}, nil
}

func sectorRow(s intel.SectorMomentum) SectorRow {
	sign := ""
	if s.Change > 0 {
		sign = "+"
	}
	return SectorRow{
		SectorMomentum: s,
		MomentumLabel:  fmt.Sprintf("%.0f%%", s.Momentum),
		ChangeLabel:    fmt.Sprintf("%s%.1f%%", sign, s.Change),
		MomentumTier:   MomentumTiers.Tier(s.Momentum),
		ChangeTone:     view.SignTone(s.Change),
	}
}

// Categories is "all" followed by the distinct idea categories.
func (d *Dashboard) Categories() []string {
	return append([]string{AllCategories}, view.Distinct(d.ideas, func(i intel.TopIdea) string { return i.Category })...)
}

// Summary computes the footer stats.
func (d *Dashboard) Summary() Summary {
	var total int
	var velocity float64
	for _, s := range d.sources {
		total += s.Count
		velocity += s.Velocity
	}
	return Summary{
		TotalSignals:   total,
		HotSectors:     view.Count(d.sectors, view.AtLeast(hotMomentum, func(s intel.SectorMomentum) float64 { return s.Momentum })),
		HighScoreIdeas: view.Count(d.ideas, view.AtLeast(highIdeaScore, func(i intel.TopIdea) float64 { return i.Score })),
		SignalsPerDay:  fmt.Sprintf("%.1f", velocity),
	}
}

// BeginRefresh marks a tick as in flight.
func (d *Dashboard) BeginRefresh() { d.refreshing = true }

// ApplyRefresh nudges every momentum by up to ±2, clamped to 0..100, and
// draws a fresh change in -15..15.
func (d *Dashboard) ApplyRefresh(rng Rand) {
	next := make([]intel.SectorMomentum, len(d.sectors))
	for i, s := range d.sectors {
		s.Momentum = min(100, max(0, s.Momentum+(rng.Float64()-0.5)*4))
		s.Change = (rng.Float64() - 0.5) * 30
		next[i] = s
	}
	d.sectors = next
	d.refreshing = false
}
