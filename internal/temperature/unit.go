package temperature

import (
	"fmt"
	"strings"
)

// Unit is one of the three supported temperature scales.
// The zero value is Celsius.
type Unit uint8

const (
	Celsius Unit = iota
	Fahrenheit
	Kelvin
)

var unitInfo = [...]struct {
	key    string
	name   string
	symbol string
	code   string
}{
	Celsius:    {key: "celsius", name: "Celsius", symbol: "°C", code: "c"},
	Fahrenheit: {key: "fahrenheit", name: "Fahrenheit", symbol: "°F", code: "f"},
	Kelvin:     {key: "kelvin", name: "Kelvin", symbol: "K", code: "k"},
}

// Units returns all supported units in declaration order.
func Units() []Unit {
	return []Unit{Celsius, Fahrenheit, Kelvin}
}

// Valid reports whether u is one of the declared units.
func (u Unit) Valid() bool {
	return int(u) < len(unitInfo)
}

// String returns the display name, e.g. "Celsius".
func (u Unit) String() string {
	if !u.Valid() {
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}
	return unitInfo[u].name
}

// Symbol returns the display symbol, e.g. "°C".
func (u Unit) Symbol() string {
	if !u.Valid() {
		return "?"
	}
	return unitInfo[u].symbol
}

// Key returns the lower-case identifier used in JSON and query strings.
func (u Unit) Key() string {
	if !u.Valid() {
		return ""
	}
	return unitInfo[u].key
}

// ParseUnit accepts a unit name, one-letter code or symbol, ignoring case
// and surrounding whitespace.
func ParseUnit(s string) (Unit, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	for i, info := range unitInfo {
		if t == info.key || t == info.code || t == strings.ToLower(info.symbol) {
			return Unit(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown unit %q", ErrInvalidInput, s)
}

// MarshalText encodes the unit as its key.
func (u Unit) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, fmt.Errorf("%w: unknown unit %d", ErrInvalidInput, uint8(u))
	}
	return []byte(u.Key()), nil
}

// UnmarshalText decodes anything ParseUnit accepts.
func (u *Unit) UnmarshalText(b []byte) error {
	parsed, err := ParseUnit(string(b))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
