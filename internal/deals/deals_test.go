package deals

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mvp90terminal/internal/catalog"
	"mvp90terminal/internal/intel"
	"mvp90terminal/internal/view"
)

func fixedClock(day string) func() time.Time {
	return func() time.Time { return intel.MustDate(day).Time().Add(15 * time.Hour) }
}

func newTracker() *Tracker {
	return NewTracker(catalog.Samples().Deals, fixedClock("2024-01-16"))
}

func names(deals []intel.VCDeal) []string {
	out := make([]string, len(deals))
	for i, d := range deals {
		out[i] = d.StartupName
	}
	return out
}

func TestIndiaDealsAndTotal(t *testing.T) {
	res, err := newTracker().List(Query{Geography: "India"})
	require.NoError(t, err)
	assert.Equal(t, []string{"FlexiPay", "AgriDrone"}, names(res.Deals))

	want := res.Deals[0].RoundSize.InMillions() + res.Deals[1].RoundSize.InMillions()
	assert.InDelta(t, want, res.TotalFunding, 1e-9)
	assert.InDelta(t, 14.8, res.TotalFunding, 1e-9)
	assert.Equal(t, "$14.8M", res.TotalLabel)
}

func TestDefaultIsNewestFirst(t *testing.T) {
	res, err := newTracker().List(Query{})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"FlexiPay", "GreenLogistics", "HealthAI", "EduTech Pro",
		"CryptoSecure", "AgriDrone", "CleanEnergy Solutions",
	}, names(res.Deals))
	assert.Equal(t, "$84.3M", res.TotalLabel)
}

func TestSortByRoundSizeAscending(t *testing.T) {
	res, err := newTracker().List(Query{SortBy: SortRoundSize, Order: OrderAsc})
	require.NoError(t, err)
	assert.Equal(t, "AgriDrone", res.Deals[0].StartupName)
	assert.Equal(t, "HealthAI", res.Deals[len(res.Deals)-1].StartupName)
}

func TestSortByValuation(t *testing.T) {
	res, err := newTracker().List(Query{SortBy: SortValuation})
	require.NoError(t, err)
	assert.Equal(t, []string{"HealthAI", "CleanEnergy Solutions", "CryptoSecure"}, names(res.Deals[:3]))
}

func TestLeadInvestorIsCaseInsensitiveSubstring(t *testing.T) {
	res, err := newTracker().List(Query{LeadInvestor: "sequoia"})
	require.NoError(t, err)
	assert.Equal(t, []string{"FlexiPay"}, names(res.Deals))
}

func TestDateRangeUsesClock(t *testing.T) {
	res, err := newTracker().List(Query{DateRange: Range7d})
	require.NoError(t, err)
	assert.Equal(t, []string{"FlexiPay", "GreenLogistics", "HealthAI"}, names(res.Deals))

	late := NewTracker(catalog.Samples().Deals, fixedClock("2024-06-01"))
	res, err = late.List(Query{DateRange: Range30d})
	require.NoError(t, err)
	assert.Empty(t, res.Deals)
	assert.Equal(t, "$0.0M", res.TotalLabel)
}

func TestBadQueryIsRejected(t *testing.T) {
	for _, q := range []Query{{DateRange: "1y"}, {SortBy: "hype"}, {Order: "up"}} {
		_, err := newTracker().List(q)
		assert.ErrorIs(t, err, ErrBadQuery)
	}
}

func TestFacetsKeepSampleOrder(t *testing.T) {
	f := newTracker().Facets()
	assert.Equal(t, []string{"India", "Southeast Asia", "North America", "Europe"}, f.Geographies)
	assert.Equal(t, []string{"Series A", "Seed", "Series B", "Pre-Series A"}, f.Stages)
	assert.Len(t, f.Industries, 7)
}

func TestDealDetail(t *testing.T) {
	d, err := newTracker().Deal(4)
	require.NoError(t, err)
	assert.Equal(t, "EduTech Pro", d.Deal.StartupName)
	assert.Equal(t, "Jan 8, 2024", d.DisplayDate)
	assert.Equal(t, view.TonePurple, d.StageTone)
	assert.Equal(t, view.ToneYellow, d.ConfidenceTone)

	_, err = newTracker().Deal(100)
	assert.ErrorIs(t, err, ErrDealNotFound)
}
