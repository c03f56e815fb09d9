// Package watchlist implements the saved-items panel.
package watchlist

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"mvp90terminal/internal/intel"
	"mvp90terminal/internal/view"
)

var (
	// ErrItemNotFound is returned when removing an id that is not saved.
	ErrItemNotFound = errors.New("saved item not found")
	// ErrBadQuery is returned for unknown tabs or sort keys.
	ErrBadQuery = errors.New("invalid watchlist query")
)

// Tab selects the item type shown.
type Tab string

const (
	TabAll      Tab = "all"
	TabSignals  Tab = "signals"
	TabFounders Tab = "founders"
	TabDeals    Tab = "deals"
)

var tabTypes = map[Tab]intel.SavedType{
	TabSignals:  intel.SavedSignal,
	TabFounders: intel.SavedFounder,
	TabDeals:    intel.SavedDeal,
}

// SortKey orders the list.
type SortKey string

const (
	SortDateAdded  SortKey = "dateAdded"
	SortLastUpdate SortKey = "lastUpdate"
	SortName       SortKey = "name"
)

// Query is the panel's control state.
type Query struct {
	Tab         Tab     `json:"tab"`
	SortBy      SortKey `json:"sortBy"`
	UpdatesOnly bool    `json:"updatesOnly"`
}

// Validate reports ErrBadQuery for a tab or sort key the panel does not offer.
func (q Query) Validate() error {
	if _, ok := tabTypes[q.Tab]; !ok && q.Tab != "" && q.Tab != TabAll {
		return fmt.Errorf("%w: tab %q", ErrBadQuery, q.Tab)
	}
	switch q.SortBy {
	case "", SortDateAdded, SortLastUpdate, SortName:
		return nil
	}
	return fmt.Errorf("%w: sort %q", ErrBadQuery, q.SortBy)
}

// TabCount is a tab label with the number of items it holds.
type TabCount struct {
	Key   Tab    `json:"key"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Empty is the empty-state copy.
type Empty struct {
	Message string `json:"message"`
	Hint    string `json:"hint"`
}

// Result is what the panel renders.
type Result struct {
	Items        []intel.SavedItem `json:"items"`
	Tabs         []TabCount        `json:"tabs"`
	UpdatesCount int               `json:"updatesCount"`
	Empty        *Empty            `json:"empty,omitempty"`
}

// List holds one session's saved items.
type List struct {
	items    []intel.SavedItem
	collator *collate.Collator
}

// New builds a list over a private copy of items.
func New(items []intel.SavedItem) *List {
	return &List{
		items:    slices.Clone(items),
		collator: collate.New(language.English),
	}
}

// View filters by tab and update state, then sorts.
func (l *List) View(q Query) (Result, error) {
	if q.Tab == "" {
		q.Tab = TabAll
	}
	if q.SortBy == "" {
		q.SortBy = SortDateAdded
	}

	var byTab view.Predicate[intel.SavedItem]
	if q.Tab != TabAll {
		kind, ok := tabTypes[q.Tab]
		if !ok {
			return Result{}, fmt.Errorf("%w: tab %q", ErrBadQuery, q.Tab)
		}
		byTab = func(i intel.SavedItem) bool { return i.Type() == kind }
	}
	var byUpdate view.Predicate[intel.SavedItem]
	if q.UpdatesOnly {
		byUpdate = intel.SavedItem.HasUpdate
	}

	cmp, err := l.comparator(q.SortBy)
	if err != nil {
		return Result{}, err
	}

	items := view.Sorted(view.Filter(l.items, view.All(byTab, byUpdate)), cmp)
	res := Result{
		Items:        items,
		Tabs:         l.tabs(),
		UpdatesCount: view.Count(l.items, intel.SavedItem.HasUpdate),
	}
	if len(items) == 0 {
		res.Empty = emptyState(q.UpdatesOnly)
	}
	return res, nil
}

func (l *List) comparator(key SortKey) (view.Comparator[intel.SavedItem], error) {
	switch key {
	case SortDateAdded:
		return view.Desc(view.By(func(i intel.SavedItem) int64 { return i.DateAdded.Time().Unix() })), nil
	case SortLastUpdate:
		return func(a, b intel.SavedItem) int {
			switch {
			case a.LastUpdate == nil && b.LastUpdate == nil:
				return 0
			case a.LastUpdate == nil:
				return 1
			case b.LastUpdate == nil:
				return -1
			}
			return b.LastUpdate.Time().Compare(a.LastUpdate.Time())
		}, nil
	case SortName:
		return func(a, b intel.SavedItem) int { return l.collator.CompareString(a.Name, b.Name) }, nil
	default:
		return nil, fmt.Errorf("%w: sort %q", ErrBadQuery, key)
	}
}

func (l *List) tabs() []TabCount {
	count := func(kind intel.SavedType) int {
		return view.Count(l.items, func(i intel.SavedItem) bool { return i.Type() == kind })
	}
	return []TabCount{
		{Key: TabAll, Name: "All Items", Count: len(l.items)},
		{Key: TabSignals, Name: "Signals", Count: count(intel.SavedSignal)},
		{Key: TabFounders, Name: "Founders", Count: count(intel.SavedFounder)},
		{Key: TabDeals, Name: "Deals", Count: count(intel.SavedDeal)},
	}
}

func emptyState(updatesOnly bool) *Empty {
	if updatesOnly {
		return &Empty{
			Message: "No items with recent updates",
			Hint:    "Try unchecking 'Show updates only' to see all saved items",
		}
	}
	return &Empty{
		Message: "No saved items found",
		Hint:    "Start saving signals, founders, and deals from other modules",
	}
}

// Remove deletes the item with id. There is no undo.
func (l *List) Remove(id string) error {
	i := slices.IndexFunc(l.items, func(item intel.SavedItem) bool { return item.ID == id })
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	l.items = slices.Delete(slices.Clone(l.items), i, i+1)
	return nil
}
