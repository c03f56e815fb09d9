package routing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mvp90terminal/internal/catalog"
	"mvp90terminal/internal/intel"
	"mvp90terminal/internal/view"
)

func newPanel() *Panel {
	return New(catalog.Samples().Ideas, func() time.Time {
		return time.Date(2024, 1, 20, 18, 30, 0, 0, time.UTC)
	})
}

func TestCountsAndBuckets(t *testing.T) {
	p := newPanel()
	assert.Equal(t, map[string]int{"Build": 2, "Scout": 2, "Store": 2}, p.Counts())

	board, err := p.View("Scout")
	require.NoError(t, err)
	require.Len(t, board.Ideas, 2)
	assert.Equal(t, "MediChain", board.Ideas[0].Name)
	assert.True(t, board.Ideas[0].Overridden)
	assert.Equal(t, "EcoLogistics", board.Ideas[1].Name)
	assert.False(t, board.Ideas[1].Overridden)

	all, err := p.View("")
	require.NoError(t, err)
	assert.Len(t, all.Ideas, 6)

	_, err = p.View("Sell")
	assert.ErrorIs(t, err, ErrUnknownBucket)
}

func TestCardTiersInvertCloneability(t *testing.T) {
	board, err := newPanel().View(BucketAll)
	require.NoError(t, err)
	neuro := board.Ideas[0]
	assert.Equal(t, view.TierGood, neuro.NoveltyTier)
	assert.Equal(t, view.TierGood, neuro.CloneabilityTier)
	assert.Equal(t, view.TierFair, neuro.MarketFitTier)
	assert.Equal(t, view.ToneRed, neuro.PriorityTone)
	assert.Equal(t, intel.ActionBuild, neuro.DraftAction)

	eco := board.Ideas[4]
	assert.Equal(t, view.TierPoor, eco.CloneabilityTier)
	assert.Equal(t, view.ToneGreen, eco.PriorityTone)
}

func TestOverrideAppliesDraft(t *testing.T) {
	p := newPanel()
	_, err := p.StageDraft(1, intel.ActionStore, "Regulatory risk too high")
	require.NoError(t, err)

	idea, err := p.Override(1, "analyst1")
	require.NoError(t, err)
	assert.Equal(t, intel.ActionStore, idea.CurrentAction)
	assert.Equal(t, intel.ActionBuild, idea.OriginalAction)
	require.NotNil(t, idea.AnalystOverride)
	assert.Equal(t, intel.AnalystOverride{
		NewAction: intel.ActionStore,
		Comment:   "Regulatory risk too high",
		Analyst:   "analyst1",
		Date:      intel.MustDate("2024-01-20"),
	}, *idea.AnalystOverride)

	board, err := p.View(BucketAll)
	require.NoError(t, err)
	assert.Equal(t, Draft{Action: intel.ActionBuild}, board.Ideas[0].Draft)
	assert.True(t, board.Ideas[0].Overridden)
	assert.Equal(t, 3, p.Counts()["Store"])
}

func TestOverrideRequiresActionAndComment(t *testing.T) {
	p := newPanel()
	before, err := p.Idea(1)
	require.NoError(t, err)

	_, err = p.StageDraft(1, intel.ActionStore, "")
	require.NoError(t, err)
	_, err = p.Override(1, "analyst1")
	assert.ErrorIs(t, err, ErrOverrideIncomplete)
	assert.Equal(t, "Please select an action and provide a comment for the override.", err.Error())

	_, err = p.StageDraft(2, "", "comment without a picked action")
	require.NoError(t, err)
	_, err = p.Override(2, "analyst1")
	assert.ErrorIs(t, err, ErrOverrideIncomplete)

	after, err := p.Idea(1)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestOverrideAfterResetUsesBuild(t *testing.T) {
	p := newPanel()
	_, err := p.StageDraft(5, intel.ActionStore, "park it")
	require.NoError(t, err)
	_, err = p.Override(5, "a")
	require.NoError(t, err)

	_, err = p.StageDraft(5, "", "actually build")
	require.NoError(t, err)
	idea, err := p.Override(5, "a")
	require.NoError(t, err)
	assert.Equal(t, intel.ActionBuild, idea.CurrentAction)
}

func TestUnknownIdea(t *testing.T) {
	p := newPanel()
	_, err := p.StageDraft(99, intel.ActionBuild, "x")
	assert.ErrorIs(t, err, ErrIdeaNotFound)
	_, err = p.Override(99, "a")
	assert.ErrorIs(t, err, ErrIdeaNotFound)
	_, err = p.StageDraft(1, "Sell", "x")
	assert.Error(t, err)
}
