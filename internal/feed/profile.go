package feed

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"mvp90terminal/internal/intel"
	"mvp90terminal/internal/view"
)

// ErrUnknownTab is returned for tabs the profile does not have.
var ErrUnknownTab = errors.New("unknown profile tab")

// Tab is a profile section.
type Tab string

const (
	TabOverview Tab = "overview"
	TabScoring  Tab = "scoring"
	TabTraction Tab = "traction"
	TabAnalysis Tab = "analysis"
)

// Tabs lists the profile tabs in display order.
var Tabs = []Tab{TabOverview, TabScoring, TabTraction, TabAnalysis}

// ParseTab validates a tab. Empty opens the overview.
func ParseTab(value string) (Tab, error) {
	if value == "" {
		return TabOverview, nil
	}
	for _, t := range Tabs {
		if string(t) == value {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, value)
}

// NotesRestricted is shown to roles that cannot keep analyst notes.
const NotesRestricted = "Analyst notes are only available for Admin and Analyst roles."

var printer = message.NewPrinter(language.English)

// ScoreCard is one score with its display tier.
type ScoreCard struct {
	Label string    `json:"label"`
	Value float64   `json:"value"`
	Tier  view.Tier `json:"tier"`
}

// Traction is the formatted traction block with its analysis sentence.
type Traction struct {
	GithubStars      string `json:"githubStars"`
	TwitterFollowers string `json:"twitterFollowers"`
	SubstackPosts    string `json:"substackPosts"`
	Analysis         string `json:"analysis"`
}

// Profile is the detail view of one startup.
type Profile struct {
	Signal     intel.StartupSignal `json:"signal"`
	Tab        Tab                 `json:"tab"`
	BuildCost  string              `json:"buildCost"`
	Scores     []ScoreCard         `json:"scores"`
	ActionTone view.Tone           `json:"actionTone"`
	Strengths  []string            `json:"strengths"`
	Risks      []string            `json:"risks"`
	Traction   Traction            `json:"traction"`
	Watched    bool                `json:"watched"`
	Notes      string              `json:"notes"`
}

// Open builds the profile of signal id on tab.
func (f *Feed) Open(id int, tab Tab) (Profile, error) {
	s, err := f.Signal(id)
	if err != nil {
		return Profile{}, err
	}
	if tab == "" {
		tab = TabOverview
	}
	return Profile{
		Signal:    s,
		Tab:       tab,
		BuildCost: printer.Sprintf("$%d", s.EstimatedBuildCost),
		Scores: []ScoreCard{
			{Label: "Novelty", Value: s.NoveltyScore, Tier: ScoreTiers.Tier(s.NoveltyScore)},
			{Label: "Cloneability", Value: s.CloneabilityScore, Tier: cloneabilityTier(s.CloneabilityScore)},
			{Label: "India Market Fit", Value: s.IndiaMarketFit, Tier: ScoreTiers.Tier(s.IndiaMarketFit)},
		},
		ActionTone: view.ActionPalette.Tone(string(s.ActionTag)),
		Strengths:  Strengths(s),
		Risks:      Risks(s),
		Traction:   Summarize(s.Traction),
		Watched:    f.watched[id],
		Notes:      f.notes[id],
	}, nil
}

// ToggleWatch flips the saved flag of signal id and returns the new value.
func (f *Feed) ToggleWatch(id int) (bool, error) {
	if _, err := f.Signal(id); err != nil {
		return false, err
	}
	f.watched[id] = !f.watched[id]
	return f.watched[id], nil
}

// SetNotes stores analyst notes for signal id.
func (f *Feed) SetNotes(id int, notes string) error {
	if _, err := f.Signal(id); err != nil {
		return err
	}
	f.notes[id] = notes
	return nil
}

// Strengths lists the positive observations derived from the scores.
func Strengths(s intel.StartupSignal) []string {
	out := []string{}
	if s.NoveltyScore >= 7 {
		out = append(out, "High novelty score indicates innovative approach")
	}
	if s.CloneabilityScore <= 4 {
		out = append(out, "Low cloneability suggests defensible moat")
	}
	if s.IndiaMarketFit >= 7 {
		out = append(out, "Strong India market fit for local expansion")
	}
	if s.EstimatedBuildCost < 100000 {
		out = append(out, "Relatively low build cost for quick MVP")
	}
	return out
}

// Risks lists the concerns derived from the scores.
func Risks(s intel.StartupSignal) []string {
	out := []string{}
	if s.NoveltyScore < 6 {
		out = append(out, "Lower novelty may indicate crowded market")
	}
	if s.CloneabilityScore >= 7 {
		out = append(out, "High cloneability risk from competitors")
	}
	if s.IndiaMarketFit < 6 {
		out = append(out, "Limited India market fit may affect local success")
	}
	if s.EstimatedBuildCost > 200000 {
		out = append(out, "High build cost requires significant initial investment")
	}
	return out
}

// Summarize formats the traction counters and writes the analysis sentence.
func Summarize(t intel.TractionSignals) Traction {
	engagement := "early"
	switch {
	case t.GithubStars > 1000:
		engagement = "strong"
	case t.GithubStars > 500:
		engagement = "moderate"
	}

	presence := "limited"
	switch {
	case t.TwitterFollowers > 3000:
		presence = "significant"
	case t.TwitterFollowers > 1000:
		presence = "growing"
	}

	activity := "less active"
	switch {
	case t.SubstackPosts > 10:
		activity = "highly active"
	case t.SubstackPosts > 5:
		activity = "moderately active"
	}

	return Traction{
		GithubStars:      printer.Sprintf("%d", t.GithubStars),
		TwitterFollowers: printer.Sprintf("%d", t.TwitterFollowers),
		SubstackPosts:    printer.Sprintf("%d", t.SubstackPosts),
		Analysis: fmt.Sprintf(
			"Based on the traction signals, this startup shows %s developer engagement and %s social media presence. The founder appears to be %s in thought leadership.",
			engagement, presence, activity,
		),
	}
}
