package temperature

import (
	"fmt"
	"strconv"
	"strings"
)

// Format renders v rounded to two decimals followed by the unit symbol,
// e.g. "36.60 °C".
func Format(v float64, u Unit) string {
	return fmt.Sprintf("%.2f %s", v, u.Symbol())
}

// Reading is one unit's share of a Result.
type Reading struct {
	Unit  Unit
	Value float64
}

func (r Reading) String() string {
	return Format(r.Value, r.Unit)
}

// Label returns the caption shown next to the reading, e.g. "In Kelvin".
func (r Reading) Label() string {
	return "In " + r.Unit.String()
}

// Readings lists the result in unit declaration order.
func (r Result) Readings() []Reading {
	units := Units()
	out := make([]Reading, 0, len(units))
	for _, u := range units {
		out = append(out, Reading{Unit: u, Value: r.In(u)})
	}
	return out
}

// ParseValue parses free-form numeric text as typed by a user: an optional
// sign, digits with decimals and an optional exponent. A single comma is
// read as the decimal separator when the text has no dot.
func ParseValue(text string) (float64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidInput)
	}
	// strconv also reads hex floats and digit separators.
	if strings.ContainsAny(s, "xX_") {
		return 0, fmt.Errorf("%w: %q is not a decimal number", ErrInvalidInput, text)
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !finite(v) {
		return 0, fmt.Errorf("%w: %q is not a finite number", ErrInvalidInput, text)
	}
	return v, nil
}
