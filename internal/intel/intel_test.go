package intel

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in       string
		millions float64
		display  string
	}{
		{"$12M", 12, "$12M"},
		{"$3.5M", 3.5, "$3.5M"},
		{"$500K", 0.5, "$500K"},
		{"$2.3B", 2300, "$2.3B"},
		{"$900", 0.0009, "$900"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			a, err := ParseAmount(tc.in)
			require.NoError(t, err)
			assert.InDelta(t, tc.millions, a.InMillions(), 1e-9)
			assert.Equal(t, tc.display, a.String())
		})
	}
}

func TestParseAmountRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "$", "$12X", "twelve", "$-3M", "$NaNM", "$InfB", "$+InfM", "nan"} {
		_, err := ParseAmount(in)
		assert.Error(t, err, in)
	}
}

func TestBillionsOutrankMillions(t *testing.T) {
	assert.Greater(t, MustAmount("$1.2B").USD(), MustAmount("$900M").USD())
}

func TestDateRoundTripsThroughJSON(t *testing.T) {
	d := MustDate("2024-01-15")
	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-15"`, string(raw))
	assert.Equal(t, "Jan 15, 2024", d.Display())

	var back Date
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, d, back)
}

func TestNewDateTruncates(t *testing.T) {
	d := NewDate(time.Date(2024, 3, 9, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, "2024-03-09", d.String())
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("")
	require.NoError(t, err)
	assert.Equal(t, RoleViewer, r)

	_, err = ParseRole("Root")
	assert.ErrorIs(t, err, ErrUnknownRole)

	assert.True(t, RoleAdmin.CanMutate())
	assert.True(t, RoleAnalyst.CanMutate())
	assert.False(t, RoleViewer.CanMutate())
}

func TestSavedItemJSONCarriesDiscriminator(t *testing.T) {
	updated := MustDate("2024-01-16")
	item := SavedItem{
		ID:         "founder-1",
		Name:       "Priya Sharma",
		DateAdded:  MustDate("2024-01-14"),
		LastUpdate: &updated,
		Data:       FounderSnapshot{Company: "NeuroLink AI", Reputation: 8.5},
	}

	raw, err := json.Marshal(item)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "founder", decoded["type"])
	assert.Equal(t, "2024-01-16", decoded["lastUpdate"])
	data := decoded["data"].(map[string]any)
	assert.Equal(t, "NeuroLink AI", data["company"])
}

func TestActionTagUnmarshalValidates(t *testing.T) {
	var tag ActionTag
	require.NoError(t, json.Unmarshal([]byte(`"Scout"`), &tag))
	assert.Equal(t, ActionScout, tag)
	assert.Error(t, json.Unmarshal([]byte(`"Sell"`), &tag))
}
