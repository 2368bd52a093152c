package session

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/i474232898/tempcheck/internal/temperature"
)

// Service owns converter screens and recomputes their conversions on demand.
type Service struct {
	store Store
}

// NewService creates a new Service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create validates the initial state and stores it under a fresh id.
func (s *Service) Create(st State) (View, error) {
	result, err := st.Input().Convert()
	if err != nil {
		return View{}, err
	}

	screen := Screen{
		ID:        uuid.NewString(),
		State:     st,
		UpdatedAt: time.Now().UTC(),
	}
	s.store.Save(screen)

	log.Printf("DEBUG: created screen %s at %s", screen.ID, st.Input())
	return View{Screen: screen, Result: result}, nil
}

// Get loads a screen and converts its current state.
func (s *Service) Get(id string) (View, error) {
	screen, err := s.store.Get(id)
	if err != nil {
		return View{}, err
	}

	result, err := screen.State.Input().Convert()
	if err != nil {
		return View{}, fmt.Errorf("screen %s holds unconvertible state: %w", id, err)
	}
	return View{Screen: screen, Result: result}, nil
}

// Update applies a change to a screen. The new state is converted before
// it is saved, so a rejected change leaves the screen untouched.
func (s *Service) Update(id string, c Change) (View, error) {
	if c.Empty() {
		return View{}, fmt.Errorf("%w: nothing to change", temperature.ErrInvalidInput)
	}

	var result temperature.Result
	screen, err := s.store.Update(id, func(screen Screen) (Screen, error) {
		next := c.Apply(screen.State)
		r, err := next.Input().Convert()
		if err != nil {
			return screen, err
		}
		result = r

		screen.State = next
		screen.UpdatedAt = time.Now().UTC()
		return screen, nil
	})
	if err != nil {
		return View{}, err
	}

	return View{Screen: screen, Result: result}, nil
}

// Delete removes a screen.
func (s *Service) Delete(id string) error {
	return s.store.Delete(id)
}

// Prune drops idle screens and reports how many were removed.
func (s *Service) Prune() int {
	return s.store.Prune(time.Now().UTC())
}

// Len reports how many screens are currently held.
func (s *Service) Len() int {
	return s.store.Len()
}
