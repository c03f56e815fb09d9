package intel

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit is the magnitude suffix of a currency amount.
type Unit byte

const (
	UnitOne      Unit = 0
	UnitThousand Unit = 'K'
	UnitMillion  Unit = 'M'
	UnitBillion  Unit = 'B'
)

func (u Unit) multiplier() float64 {
	switch u {
	case UnitThousand:
		return 1e3
	case UnitMillion:
		return 1e6
	case UnitBillion:
		return 1e9
	default:
		return 1
	}
}

// Amount is a USD amount stored as magnitude and unit so that it renders the
// way it was entered ("$3.5M") while sorting and summing on its real value.
type Amount struct {
	Magnitude float64
	Unit      Unit
}

// Millions builds an amount expressed in millions.
func Millions(v float64) Amount { return Amount{Magnitude: v, Unit: UnitMillion} }

// ParseAmount parses "$12M", "$500K", "$2.3B" or "$900". The dollar sign is
// optional; any suffix other than K, M or B is an error.
func ParseAmount(value string) (Amount, error) {
	raw := strings.TrimSpace(value)
	raw = strings.TrimPrefix(raw, "$")
	if raw == "" {
		return Amount{}, fmt.Errorf("intel: empty amount")
	}

	unit := UnitOne
	switch last := raw[len(raw)-1]; last {
	case 'K', 'k':
		unit = UnitThousand
	case 'M', 'm':
		unit = UnitMillion
	case 'B', 'b':
		unit = UnitBillion
	}
	if unit != UnitOne {
		raw = raw[:len(raw)-1]
	}

	magnitude, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Amount{}, fmt.Errorf("intel: parse amount %q: %w", value, err)
	}
	if math.IsNaN(magnitude) || math.IsInf(magnitude, 0) {
		return Amount{}, fmt.Errorf("intel: amount %q is not a finite number", value)
	}
	if magnitude < 0 {
		return Amount{}, fmt.Errorf("intel: negative amount %q", value)
	}
	return Amount{Magnitude: magnitude, Unit: unit}, nil
}

// MustAmount is ParseAmount for literals known to be valid.
func MustAmount(value string) Amount {
	a, err := ParseAmount(value)
	if err != nil {
		panic(err)
	}
	return a
}

// USD returns the amount in dollars.
func (a Amount) USD() float64 { return a.Magnitude * a.Unit.multiplier() }

// InMillions returns the amount in millions of dollars.
func (a Amount) InMillions() float64 { return a.USD() / 1e6 }

// String renders the amount the way the dashboard displays it.
func (a Amount) String() string {
	s := "$" + strconv.FormatFloat(a.Magnitude, 'f', -1, 64)
	if a.Unit != UnitOne {
		s += string(rune(a.Unit))
	}
	return s
}

// MarshalText encodes the amount as its display string.
func (a Amount) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText decodes a display string such as "$12M".
func (a *Amount) UnmarshalText(text []byte) error {
	parsed, err := ParseAmount(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
