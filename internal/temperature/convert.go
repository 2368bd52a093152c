package temperature

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidInput is returned when a value is not a finite number or a unit
// is not one of the supported scales.
var ErrInvalidInput = errors.New("invalid input")

// absoluteZeroOffset is the Celsius/Kelvin offset.
const absoluteZeroOffset = 273.15

// Input is a value expressed in a source unit.
type Input struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

// Convert converts the input into all three units.
func (in Input) Convert() (Result, error) {
	return Convert(in.Value, in.Unit)
}

// String echoes the value as entered, followed by the unit symbol.
func (in Input) String() string {
	return strconv.FormatFloat(in.Value, 'f', -1, 64) + " " + in.Unit.Symbol()
}

// Result holds the same temperature in every supported unit.
type Result struct {
	Celsius    float64 `json:"celsius"`
	Fahrenheit float64 `json:"fahrenheit"`
	Kelvin     float64 `json:"kelvin"`
}

// Convert expresses value, given in unit from, in Celsius, Fahrenheit and
// Kelvin. Values below absolute zero are accepted. No rounding is applied.
func Convert(value float64, from Unit) (Result, error) {
	if !finite(value) {
		return Result{}, fmt.Errorf("%w: %v is not a finite number", ErrInvalidInput, value)
	}

	var r Result
	switch from {
	case Celsius:
		r = Result{
			Celsius:    value,
			Fahrenheit: value/5*9 + 32,
			Kelvin:     value + absoluteZeroOffset,
		}
	case Fahrenheit:
		r = Result{
			Celsius:    (value - 32) / 9 * 5,
			Fahrenheit: value,
			Kelvin:     (value-32)/9*5 + absoluteZeroOffset,
		}
	case Kelvin:
		r = Result{
			Celsius:    value - absoluteZeroOffset,
			Fahrenheit: (value-absoluteZeroOffset)/5*9 + 32,
			Kelvin:     value,
		}
	default:
		return Result{}, fmt.Errorf("%w: unknown unit %d", ErrInvalidInput, uint8(from))
	}

	// Dividing first keeps intermediates in range; only a result that is
	// itself beyond math.MaxFloat64 is left, e.g. Fahrenheit for huge Celsius.
	if !finite(r.Celsius) || !finite(r.Fahrenheit) || !finite(r.Kelvin) {
		return Result{}, fmt.Errorf("%w: %v %s is out of range", ErrInvalidInput, value, from.Symbol())
	}
	return r, nil
}

// In returns the value for unit u.
func (r Result) In(u Unit) float64 {
	switch u {
	case Fahrenheit:
		return r.Fahrenheit
	case Kelvin:
		return r.Kelvin
	default:
		return r.Celsius
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
