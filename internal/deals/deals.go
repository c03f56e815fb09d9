// Package deals implements the VC deal tracker.
package deals

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"mvp90terminal/internal/intel"
	"mvp90terminal/internal/view"
)

var (
	// ErrDealNotFound is returned for ids outside the tracker.
	ErrDealNotFound = errors.New("deal not found")
	// ErrBadQuery is returned for unknown sort keys, orders or date ranges.
	ErrBadQuery = errors.New("invalid deal query")
)

// StagePalette colors funding stages.
var StagePalette = view.Palette{
	"Seed":         view.ToneBlue,
	"Pre-Series A": view.TonePurple,
	"Series A":     view.ToneGreen,
	"Series B":     view.ToneOrange,
	"Series C+":    view.ToneRed,
}

// DateRange limits deals to a trailing window.
type DateRange string

const (
	RangeAll DateRange = "all"
	Range7d  DateRange = "7d"
	Range30d DateRange = "30d"
	Range90d DateRange = "90d"
)

func (r DateRange) days() (int, bool) {
	switch r {
	case Range7d:
		return 7, true
	case Range30d:
		return 30, true
	case Range90d:
		return 90, true
	default:
		return 0, false
	}
}

// SortKey selects the deal ordering.
type SortKey string

const (
	SortDate      SortKey = "date"
	SortRoundSize SortKey = "roundSize"
	SortValuation SortKey = "valuation"
)

// Order is the sort direction.
type Order string

const (
	OrderDesc Order = "desc"
	OrderAsc  Order = "asc"
)

// Query is the full filter bar state. The zero value lists every deal,
// newest first.
type Query struct {
	Geography    string    `json:"geography"`
	Industry     string    `json:"industry"`
	Stage        string    `json:"stage"`
	LeadInvestor string    `json:"leadInvestor"`
	DateRange    DateRange `json:"dateRange"`
	SortBy       SortKey   `json:"sortBy"`
	Order        Order     `json:"order"`
}

// Normalize fills defaults and validates the enumerations.
func (q Query) Normalize() (Query, error) {
	if q.DateRange == "" {
		q.DateRange = RangeAll
	}
	if q.SortBy == "" {
		q.SortBy = SortDate
	}
	if q.Order == "" {
		q.Order = OrderDesc
	}
	if _, ok := q.DateRange.days(); !ok && q.DateRange != RangeAll {
		return q, fmt.Errorf("%w: date range %q", ErrBadQuery, q.DateRange)
	}
	switch q.SortBy {
	case SortDate, SortRoundSize, SortValuation:
	default:
		return q, fmt.Errorf("%w: sort %q", ErrBadQuery, q.SortBy)
	}
	if q.Order != OrderAsc && q.Order != OrderDesc {
		return q, fmt.Errorf("%w: order %q", ErrBadQuery, q.Order)
	}
	return q, nil
}

// Facets are the distinct dropdown options in sample order.
type Facets struct {
	Industries  []string `json:"industries"`
	Geographies []string `json:"geographies"`
	Stages      []string `json:"stages"`
}

// Result is what the tracker renders.
type Result struct {
	Deals []intel.VCDeal `json:"deals"`
	// TotalFunding sums the filtered round sizes, in millions.
	TotalFunding float64 `json:"totalFunding"`
	TotalLabel   string  `json:"totalLabel"`
	Facets       Facets  `json:"facets"`
}

// Tracker holds one session's deals.
type Tracker struct {
	deals []intel.VCDeal
	now   func() time.Time
}

// NewTracker builds a tracker. A nil clock means time.Now.
func NewTracker(deals []intel.VCDeal, now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{deals: slices.Clone(deals), now: now}
}

// List filters, sorts and totals the deals.
func (t *Tracker) List(q Query) (Result, error) {
	q, err := q.Normalize()
	if err != nil {
		return Result{}, err
	}

	preds := []view.Predicate[intel.VCDeal]{
		view.Equals(q.Geography, func(d intel.VCDeal) string { return d.Geography }),
		view.Equals(q.Industry, func(d intel.VCDeal) string { return d.Industry }),
		view.Equals(q.Stage, func(d intel.VCDeal) string { return d.Stage }),
		view.ContainsFold(q.LeadInvestor, func(d intel.VCDeal) string { return d.LeadInvestor }),
	}
	if days, ok := q.DateRange.days(); ok {
		cutoff := intel.NewDate(t.now().AddDate(0, 0, -days))
		preds = append(preds, func(d intel.VCDeal) bool { return !d.Date.Before(cutoff) })
	}

	kept := view.Filter(t.deals, view.All(preds...))
	out := view.Sorted(kept, view.Direction(q.SortBy.comparator(), q.Order == OrderDesc))

	total := TotalFunding(out)
	return Result{
		Deals:        out,
		TotalFunding: total,
		TotalLabel:   fmt.Sprintf("$%.1fM", total),
		Facets:       t.Facets(),
	}, nil
}

func (k SortKey) comparator() view.Comparator[intel.VCDeal] {
	switch k {
	case SortRoundSize:
		return view.By(func(d intel.VCDeal) float64 { return d.RoundSize.USD() })
	case SortValuation:
		return view.By(func(d intel.VCDeal) float64 { return d.Valuation.USD() })
	default:
		return view.By(func(d intel.VCDeal) int64 { return d.Date.Time().Unix() })
	}
}

// TotalFunding sums round sizes in millions.
func TotalFunding(deals []intel.VCDeal) float64 {
	var sum float64
	for _, d := range deals {
		sum += d.RoundSize.InMillions()
	}
	return sum
}

// Facets returns the distinct industries, geographies and stages.
func (t *Tracker) Facets() Facets {
	return Facets{
		Industries:  view.Distinct(t.deals, func(d intel.VCDeal) string { return d.Industry }),
		Geographies: view.Distinct(t.deals, func(d intel.VCDeal) string { return d.Geography }),
		Stages:      view.Distinct(t.deals, func(d intel.VCDeal) string { return d.Stage }),
	}
}

// Detail is a single deal with its display tones.
type Detail struct {
	Deal           intel.VCDeal `json:"deal"`
	DisplayDate    string       `json:"displayDate"`
	StageTone      view.Tone    `json:"stageTone"`
	ConfidenceTone view.Tone    `json:"confidenceTone"`
}

// Deal returns the detail of deal id.
func (t *Tracker) Deal(id int) (Detail, error) {
	i := slices.IndexFunc(t.deals, func(d intel.VCDeal) bool { return d.ID == id })
	if i < 0 {
		return Detail{}, fmt.Errorf("%w: %d", ErrDealNotFound, id)
	}
	d := t.deals[i]
	return Detail{
		Deal:           d,
		DisplayDate:    d.Date.Display(),
		StageTone:      StagePalette.Tone(d.Stage),
		ConfidenceTone: view.ConfidencePalette.Tone(string(d.Confidence)),
	}, nil
}
