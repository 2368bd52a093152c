package session

import (
	"time"

	"github.com/i474232898/tempcheck/internal/temperature"
)

// State is everything a converter screen holds: the entered value and the
// selected source unit. The zero value is 0 °C.
type State struct {
	Value float64          `json:"value"`
	Unit  temperature.Unit `json:"unit"`
}

// Input returns the state as a conversion input.
func (s State) Input() temperature.Input {
	return temperature.Input{Value: s.Value, Unit: s.Unit}
}

// Screen is a stored converter screen.
type Screen struct {
	ID        string    `json:"id"`
	State     State     `json:"state"`
	UpdatedAt time.Time `json:"updatedAt"` // always UTC
}

// Change is a partial update of a screen. Nil fields are left as they are.
type Change struct {
	Value *float64
	Unit  *temperature.Unit
}

// Empty reports whether the change touches nothing.
func (c Change) Empty() bool {
	return c.Value == nil && c.Unit == nil
}

// Apply returns st with the change applied.
func (c Change) Apply(st State) State {
	if c.Value != nil {
		st.Value = *c.Value
	}
	if c.Unit != nil {
		st.Unit = *c.Unit
	}
	return st
}

// View is a screen together with its freshly computed conversion.
// Views are built on every read and never stored.
type View struct {
	Screen
	Result temperature.Result
}
