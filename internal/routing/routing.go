// Package routing implements the Build/Scout/Store triage board and its
// analyst override workflow.
package routing

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"mvp90terminal/internal/intel"
	"mvp90terminal/internal/view"
)

var (
	// ErrIdeaNotFound is returned for ids outside the board.
	ErrIdeaNotFound = errors.New("idea not found")
	// ErrOverrideIncomplete is returned when the draft lacks an action or a comment.
	ErrOverrideIncomplete = errors.New("routing: override needs an action and a comment")
	// ErrUnknownBucket is returned for bucket filters outside all/Build/Scout/Store.
	ErrUnknownBucket = errors.New("unknown routing bucket")
)

// OverrideIncompleteMessage asks for the missing override fields.
const OverrideIncompleteMessage = "Please select an action and provide a comment for the override."

// OverrideApplied confirms a successful override.
const OverrideApplied = "Override applied successfully!"

// OverrideRestricted is shown to roles that cannot override.
const OverrideRestricted = "Override functionality is only available for Admin and Analyst roles."

// BucketAll shows every idea.
const BucketAll = "all"

// ScoreTiers buckets idea scores. Cloneability is inverted before bucketing.
var ScoreTiers = view.Thresholds{Good: 8, Fair: 6}

// Draft is the per-idea override form. An empty action means the analyst
// has not picked one yet; the form displays Build.
type Draft struct {
	Action  intel.ActionTag `json:"action"`
	Comment string          `json:"comment"`
}

// Shown is the action the form displays.
func (d Draft) Shown() intel.ActionTag {
	if d.Action == "" {
		return intel.ActionBuild
	}
	return d.Action
}

// Card is an idea as rendered on the board.
type Card struct {
	intel.RoutedIdea
	Overridden       bool            `json:"overridden"`
	ActionTone       view.Tone       `json:"actionTone"`
	PriorityTone     view.Tone       `json:"priorityTone"`
	NoveltyTier      view.Tier       `json:"noveltyTier"`
	CloneabilityTier view.Tier       `json:"cloneabilityTier"`
	MarketFitTier    view.Tier       `json:"marketFitTier"`
	Draft            Draft           `json:"draft"`
	DraftAction      intel.ActionTag `json:"draftAction"`
}

// Board is what the routing panel renders.
type Board struct {
	Bucket string         `json:"bucket"`
	Ideas  []Card         `json:"ideas"`
	Counts map[string]int `json:"counts"`
}

// Panel holds one session's routed ideas and override drafts.
type Panel struct {
	ideas  []intel.RoutedIdea
	drafts map[int]Draft
	now    func() time.Time
}

// New builds a panel over a private copy of ideas. A nil clock means time.Now.
func New(ideas []intel.RoutedIdea, now func() time.Time) *Panel {
	if now == nil {
		now = time.Now
	}
	return &Panel{ideas: slices.Clone(ideas), drafts: make(map[int]Draft), now: now}
}

// View filters the board by bucket over currentAction.
func (p *Panel) View(bucket string) (Board, error) {
	if bucket == "" {
		bucket = BucketAll
	}
	var keep view.Predicate[intel.RoutedIdea]
	if bucket != BucketAll {
		tag, err := intel.ParseActionTag(bucket)
		if err != nil {
			return Board{}, fmt.Errorf("%w: %q", ErrUnknownBucket, bucket)
		}
		keep = func(i intel.RoutedIdea) bool { return i.CurrentAction == tag }
	}

	kept := view.Filter(p.ideas, keep)
	cards := make([]Card, len(kept))
	for i, idea := range kept {
		cards[i] = p.card(idea)
	}
	return Board{Bucket: bucket, Ideas: cards, Counts: p.Counts()}, nil
}

func (p *Panel) card(idea intel.RoutedIdea) Card {
	d := p.drafts[idea.ID]
	return Card{
		RoutedIdea:       idea,
		Overridden:       Overridden(idea),
		ActionTone:       view.ActionPalette.Tone(string(idea.CurrentAction)),
		PriorityTone:     view.UrgencyPalette.Tone(string(idea.Priority)),
		NoveltyTier:      ScoreTiers.Tier(idea.Scores.Novelty),
		CloneabilityTier: ScoreTiers.Tier(10 - idea.Scores.Cloneability),
		MarketFitTier:    ScoreTiers.Tier(idea.Scores.MarketFit),
		Draft:            d,
		DraftAction:      d.Shown(),
	}
}

// Counts returns the number of ideas per current action.
func (p *Panel) Counts() map[string]int {
	counts := make(map[string]int, len(intel.ActionTags))
	for _, tag := range intel.ActionTags {
		counts[string(tag)] = view.Count(p.ideas, func(i intel.RoutedIdea) bool { return i.CurrentAction == tag })
	}
	return counts
}

// Overridden reports whether the idea left its original bucket.
func Overridden(idea intel.RoutedIdea) bool {
	return idea.CurrentAction != idea.OriginalAction
}

// Idea returns one idea by id.
func (p *Panel) Idea(id int) (intel.RoutedIdea, error) {
	i := p.index(id)
	if i < 0 {
		return intel.RoutedIdea{}, fmt.Errorf("%w: %d", ErrIdeaNotFound, id)
	}
	return p.ideas[i], nil
}

func (p *Panel) index(id int) int {
	return slices.IndexFunc(p.ideas, func(i intel.RoutedIdea) bool { return i.ID == id })
}

// StageDraft updates the override form of idea id. An empty action leaves
// the staged action as it was.
func (p *Panel) StageDraft(id int, action intel.ActionTag, comment string) (Draft, error) {
	if p.index(id) < 0 {
		return Draft{}, fmt.Errorf("%w: %d", ErrIdeaNotFound, id)
	}
	d := p.drafts[id]
	if action != "" {
		if _, err := intel.ParseActionTag(string(action)); err != nil {
			return Draft{}, err
		}
		d.Action = action
	}
	d.Comment = comment
	p.drafts[id] = d
	return d, nil
}

// Override applies the staged draft of idea id as analyst. The idea's
// current action and override record are replaced; the original action is
// kept. The form then resets to Build with no comment.
func (p *Panel) Override(id int, analyst string) (intel.RoutedIdea, error) {
	i := p.index(id)
	if i < 0 {
		return intel.RoutedIdea{}, fmt.Errorf("%w: %d", ErrIdeaNotFound, id)
	}
	d := p.drafts[id]
	if d.Action == "" || strings.TrimSpace(d.Comment) == "" {
		return intel.RoutedIdea{}, ErrOverrideIncomplete
	}

	next := slices.Clone(p.ideas)
	idea := next[i]
	idea.CurrentAction = d.Action
	idea.AnalystOverride = &intel.AnalystOverride{
		NewAction: d.Action,
		Comment:   d.Comment,
		Analyst:   analyst,
		Date:      intel.NewDate(p.now()),
	}
	next[i] = idea
	p.ideas = next
	p.drafts[id] = Draft{Action: intel.ActionBuild}
	return idea, nil
}
