package intel

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ActionTag is the triage classification attached to a startup idea.
type ActionTag string

const (
	ActionBuild ActionTag = "Build"
	ActionScout ActionTag = "Scout"
	ActionStore ActionTag = "Store"
)

// ActionTags lists the tags in display order.
var ActionTags = []ActionTag{ActionBuild, ActionScout, ActionStore}

// ErrUnknownAction is returned for tags outside Build/Scout/Store.
var ErrUnknownAction = errors.New("unknown action tag")

// ParseActionTag validates a tag supplied by a client or dataset.
func ParseActionTag(value string) (ActionTag, error) {
	for _, tag := range ActionTags {
		if string(tag) == value {
			return tag, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, value)
}

// UnmarshalText rejects tags outside Build/Scout/Store.
func (t *ActionTag) UnmarshalText(text []byte) error {
	tag, err := ParseActionTag(string(text))
	if err != nil {
		return err
	}
	*t = tag
	return nil
}

// Level is the shared High/Medium/Low scale used for deal confidence,
// idea priority and trend impact.
type Level string

const (
	LevelHigh   Level = "High"
	LevelMedium Level = "Medium"
	LevelLow    Level = "Low"
)

// UnmarshalText rejects values outside High/Medium/Low.
func (l *Level) UnmarshalText(text []byte) error {
	switch v := Level(text); v {
	case LevelHigh, LevelMedium, LevelLow:
		*l = v
		return nil
	default:
		return fmt.Errorf("intel: unknown level %q", string(text))
	}
}

// TractionSignals are the public traction counters of a startup.
type TractionSignals struct {
	GithubStars      int `json:"githubStars" yaml:"githubStars"`
	TwitterFollowers int `json:"twitterFollowers" yaml:"twitterFollowers"`
	SubstackPosts    int `json:"substackPosts" yaml:"substackPosts"`
}

// StartupSignal is a startup surfaced by the signal feed.
type StartupSignal struct {
	ID                 int             `json:"id" yaml:"id"`
	Name               string          `json:"name" yaml:"name"`
	Pitch              string          `json:"pitch" yaml:"pitch"`
	NoveltyScore       float64         `json:"noveltyScore" yaml:"noveltyScore"`
	CloneabilityScore  float64         `json:"cloneabilityScore" yaml:"cloneabilityScore"`
	IndiaMarketFit     float64         `json:"indiaMarketFit" yaml:"indiaMarketFit"`
	EstimatedBuildCost int             `json:"estimatedBuildCost" yaml:"estimatedBuildCost"`
	Industry           string          `json:"industry" yaml:"industry"`
	Region             string          `json:"region" yaml:"region"`
	Source             string          `json:"source" yaml:"source"`
	Team               string          `json:"team" yaml:"team"`
	FounderBackground  string          `json:"founderBackground" yaml:"founderBackground"`
	Traction           TractionSignals `json:"tractionSignals" yaml:"tractionSignals"`
	ActionTag          ActionTag       `json:"actionTag" yaml:"actionTag"`
	LastUpdated        string          `json:"lastUpdated" yaml:"lastUpdated"`
}

// SocialLinks holds optional founder handles.
type SocialLinks struct {
	Twitter  string `json:"twitter,omitempty" yaml:"twitter"`
	Github   string `json:"github,omitempty" yaml:"github"`
	LinkedIn string `json:"linkedin,omitempty" yaml:"linkedin"`
	Substack string `json:"substack,omitempty" yaml:"substack"`
}

// NetworkOverlaps lists investors and operators connected to a founder.
type NetworkOverlaps struct {
	VCs       []string `json:"vcs" yaml:"vcs"`
	Operators []string `json:"operators" yaml:"operators"`
}

// Activity is a recent event in a founder's timeline.
type Activity struct {
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description" yaml:"description"`
	Date        string `json:"date" yaml:"date"`
}

// FundingRound is a historical raise by a founder's company.
type FundingRound struct {
	Company string `json:"company" yaml:"company"`
	Round   string `json:"round" yaml:"round"`
	Amount  Amount `json:"amount" yaml:"amount"`
	Year    string `json:"year" yaml:"year"`
}

// Reputation is the founder's aggregate score with its contributing factors.
type Reputation struct {
	Score   float64  `json:"score" yaml:"score"`
	Factors []string `json:"factors" yaml:"factors"`
}

// FounderDetails is the full founder profile returned by a search.
type FounderDetails struct {
	ID              int             `json:"id" yaml:"id"`
	Name            string          `json:"name" yaml:"name"`
	CurrentRole     string          `json:"currentRole" yaml:"currentRole"`
	Company         string          `json:"company" yaml:"company"`
	Education       []string        `json:"education" yaml:"education"`
	WorkBackground  []string        `json:"workBackground" yaml:"workBackground"`
	PastCompanies   []string        `json:"pastCompanies" yaml:"pastCompanies"`
	SocialLinks     SocialLinks     `json:"socialLinks" yaml:"socialLinks"`
	NetworkOverlaps NetworkOverlaps `json:"networkOverlaps" yaml:"networkOverlaps"`
	RecentActivity  []Activity      `json:"recentActivity" yaml:"recentActivity"`
	FundingHistory  []FundingRound  `json:"fundingHistory" yaml:"fundingHistory"`
	Reputation      Reputation      `json:"reputation" yaml:"reputation"`
}

// VCDeal is a tracked funding round.
type VCDeal struct {
	ID                int      `json:"id" yaml:"id"`
	StartupName       string   `json:"startupName" yaml:"startupName"`
	Industry          string   `json:"industry" yaml:"industry"`
	Stage             string   `json:"stage" yaml:"stage"`
	RoundSize         Amount   `json:"roundSize" yaml:"roundSize"`
	LeadInvestor      string   `json:"leadInvestor" yaml:"leadInvestor"`
	OtherInvestors    []string `json:"otherInvestors" yaml:"otherInvestors"`
	Geography         string   `json:"geography" yaml:"geography"`
	Date              Date     `json:"date" yaml:"date"`
	Valuation         Amount   `json:"valuation" yaml:"valuation"`
	Description       string   `json:"description" yaml:"description"`
	FounderBackground string   `json:"founderBackground" yaml:"founderBackground"`
	UseOfFunds        []string `json:"useOfFunds" yaml:"useOfFunds"`
	DealSource        string   `json:"dealSource" yaml:"dealSource"`
	Confidence        Level    `json:"confidence" yaml:"confidence"`
}

// IdeaScores are the four routing inputs of an idea.
type IdeaScores struct {
	Novelty      float64 `json:"novelty" yaml:"novelty"`
	Cloneability float64 `json:"cloneability" yaml:"cloneability"`
	MarketFit    float64 `json:"marketFit" yaml:"marketFit"`
	BuildCost    int     `json:"buildCost" yaml:"buildCost"`
}

// AnalystOverride records a manual correction of an idea's action.
type AnalystOverride struct {
	NewAction ActionTag `json:"newAction" yaml:"newAction"`
	Comment   string    `json:"comment" yaml:"comment"`
	Analyst   string    `json:"analyst" yaml:"analyst"`
	Date      Date      `json:"date" yaml:"date"`
}

// RoutedIdea is an idea in the Build/Scout/Store triage board.
type RoutedIdea struct {
	ID              int              `json:"id" yaml:"id"`
	Name            string           `json:"name" yaml:"name"`
	Description     string           `json:"description" yaml:"description"`
	Category        string           `json:"category" yaml:"category"`
	OriginalAction  ActionTag        `json:"originalAction" yaml:"originalAction"`
	CurrentAction   ActionTag        `json:"currentAction" yaml:"currentAction"`
	Reasoning       string           `json:"reasoning" yaml:"reasoning"`
	Scores          IdeaScores       `json:"scores" yaml:"scores"`
	AnalystOverride *AnalystOverride `json:"analystOverride,omitempty" yaml:"analystOverride"`
	Priority        Level            `json:"priority" yaml:"priority"`
	EstimatedEffort string           `json:"estimatedEffort" yaml:"estimatedEffort"`
	RiskFactors     []string         `json:"riskFactors" yaml:"riskFactors"`
}

// DigestIdea is a ranked idea in the LP digest.
type DigestIdea struct {
	Name        string  `json:"name" yaml:"name"`
	Score       float64 `json:"score" yaml:"score"`
	Category    string  `json:"category" yaml:"category"`
	Description string  `json:"description" yaml:"description"`
	Reasoning   string  `json:"reasoning" yaml:"reasoning"`
}

// EmergingTrend is a market trend highlighted in the digest.
type EmergingTrend struct {
	Trend       string   `json:"trend" yaml:"trend"`
	Impact      Level    `json:"impact" yaml:"impact"`
	Description string   `json:"description" yaml:"description"`
	Sectors     []string `json:"sectors" yaml:"sectors"`
}

// SuggestedBuild is a build recommendation in the digest.
type SuggestedBuild struct {
	Name         string `json:"name" yaml:"name"`
	Priority     Level  `json:"priority" yaml:"priority"`
	BuildCost    Amount `json:"buildCost" yaml:"buildCost"`
	TimeToMarket string `json:"timeToMarket" yaml:"timeToMarket"`
	Reasoning    string `json:"reasoning" yaml:"reasoning"`
}

// MarketInsight is a single observation with a confidence percentage.
type MarketInsight struct {
	Insight    string `json:"insight" yaml:"insight"`
	Category   string `json:"category" yaml:"category"`
	Confidence int    `json:"confidence" yaml:"confidence"`
}

// DigestData is the read-only input of the LP digest.
type DigestData struct {
	TopIdeas        []DigestIdea     `json:"topIdeas" yaml:"topIdeas"`
	EmergingTrends  []EmergingTrend  `json:"emergingTrends" yaml:"emergingTrends"`
	SuggestedBuilds []SuggestedBuild `json:"suggestedBuilds" yaml:"suggestedBuilds"`
	MarketInsights  []MarketInsight  `json:"marketInsights" yaml:"marketInsights"`
}

// SectorMomentum is a sector row on the trend dashboard.
type SectorMomentum struct {
	Sector       string  `json:"sector" yaml:"sector"`
	Momentum     float64 `json:"momentum" yaml:"momentum"`
	Change       float64 `json:"change" yaml:"change"`
	DealCount    int     `json:"dealCount" yaml:"dealCount"`
	TotalFunding Amount  `json:"totalFunding" yaml:"totalFunding"`
}

// TopIdea is a scored idea on the trend dashboard.
type TopIdea struct {
	ID          int     `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Category    string  `json:"category" yaml:"category"`
	Score       float64 `json:"score" yaml:"score"`
	Description string  `json:"description" yaml:"description"`
	Source      string  `json:"source" yaml:"source"`
}

// SourceDistribution describes how many signals a source produced.
type SourceDistribution struct {
	Source     string  `json:"source" yaml:"source"`
	Count      int     `json:"count" yaml:"count"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
	Velocity   float64 `json:"velocity" yaml:"velocity"`
}

// SavedType discriminates watchlist entries.
type SavedType string

const (
	SavedSignal  SavedType = "signal"
	SavedFounder SavedType = "founder"
	SavedDeal    SavedType = "deal"
)

// Snapshot is the type-specific payload of a saved item.
type Snapshot interface {
	SavedType() SavedType
}

// SignalSnapshot is the payload saved for a startup signal.
type SignalSnapshot struct {
	NoveltyScore float64   `json:"noveltyScore" yaml:"noveltyScore"`
	ActionTag    ActionTag `json:"actionTag" yaml:"actionTag"`
	Industry     string    `json:"industry" yaml:"industry"`
}

// SavedType implements Snapshot.
func (SignalSnapshot) SavedType() SavedType { return SavedSignal }

// FounderSnapshot is the payload saved for a founder.
type FounderSnapshot struct {
	Company    string  `json:"company" yaml:"company"`
	Reputation float64 `json:"reputation" yaml:"reputation"`
}

// SavedType implements Snapshot.
func (FounderSnapshot) SavedType() SavedType { return SavedFounder }

// DealSnapshot is the payload saved for a deal.
type DealSnapshot struct {
	RoundSize    Amount `json:"roundSize" yaml:"roundSize"`
	Stage        string `json:"stage" yaml:"stage"`
	LeadInvestor string `json:"leadInvestor" yaml:"leadInvestor"`
}

// SavedType implements Snapshot.
func (DealSnapshot) SavedType() SavedType { return SavedDeal }

// SavedItem is a watchlist entry. Its type is always the type of its payload.
type SavedItem struct {
	ID          string
	Name        string
	Description string
	DateAdded   Date
	LastUpdate  *Date
	UpdateType  string
	Data        Snapshot
}

// Type returns the discriminator derived from the payload.
func (i SavedItem) Type() SavedType {
	if i.Data == nil {
		return ""
	}
	return i.Data.SavedType()
}

// HasUpdate reports whether the item carries a recent update.
func (i SavedItem) HasUpdate() bool { return i.LastUpdate != nil }

// MarshalJSON writes the item with an explicit "type" discriminator.
func (i SavedItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID          string    `json:"id"`
		Type        SavedType `json:"type"`
		Name        string    `json:"name"`
		Description string    `json:"description"`
		DateAdded   Date      `json:"dateAdded"`
		LastUpdate  *Date     `json:"lastUpdate,omitempty"`
		UpdateType  string    `json:"updateType,omitempty"`
		Data        Snapshot  `json:"data"`
	}{
		ID:          i.ID,
		Type:        i.Type(),
		Name:        i.Name,
		Description: i.Description,
		DateAdded:   i.DateAdded,
		LastUpdate:  i.LastUpdate,
		UpdateType:  i.UpdateType,
		Data:        i.Data,
	})
}
