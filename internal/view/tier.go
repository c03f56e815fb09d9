package view

// Tier is the three-level bucket behind every score color on the dashboard.
type Tier string

const (
	TierGood Tier = "good"
	TierFair Tier = "fair"
	TierPoor Tier = "poor"
)

// Tone is the palette name a front end maps to a concrete color.
type Tone string

const (
	ToneGreen  Tone = "green"
	ToneYellow Tone = "yellow"
	ToneRed    Tone = "red"
	ToneBlue   Tone = "blue"
	TonePurple Tone = "purple"
	ToneOrange Tone = "orange"
	ToneGray   Tone = "gray"
)

// Tone returns green, yellow or red.
func (t Tier) Tone() Tone {
	switch t {
	case TierGood:
		return ToneGreen
	case TierFair:
		return ToneYellow
	default:
		return ToneRed
	}
}

// Thresholds are inclusive lower bounds for the good and fair tiers.
type Thresholds struct {
	Good float64
	Fair float64
}

// Tier buckets v: >= Good is good, >= Fair is fair, anything else poor.
func (th Thresholds) Tier(v float64) Tier {
	switch {
	case v >= th.Good:
		return TierGood
	case v >= th.Fair:
		return TierFair
	default:
		return TierPoor
	}
}

// Palette maps discrete labels to tones with a fallback.
type Palette map[string]Tone

// Tone returns the tone for label, gray when unknown.
func (p Palette) Tone(label string) Tone {
	if t, ok := p[label]; ok {
		return t
	}
	return ToneGray
}

// SignTone colors a change value: positive green, negative red, zero gray.
func SignTone(v float64) Tone {
	switch {
	case v > 0:
		return ToneGreen
	case v < 0:
		return ToneRed
	default:
		return ToneGray
	}
}

// Shared palettes.
var (
	ActionPalette = Palette{"Build": ToneGreen, "Scout": ToneBlue, "Store": TonePurple}
	// ConfidencePalette colors deal confidence.
	ConfidencePalette = Palette{"High": ToneGreen, "Medium": ToneYellow, "Low": ToneRed}
	// UrgencyPalette colors priority and impact: High is the loudest.
	UrgencyPalette = Palette{"High": ToneRed, "Medium": ToneYellow, "Low": ToneGreen}
)
