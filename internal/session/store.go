package session

import "time"

// Store is the contract the in-memory screen store must satisfy.
type Store interface {
	Save(screen Screen)
	Get(id string) (Screen, error)
	// Update runs fn on the stored screen and saves its result as one
	// step. When fn fails nothing is saved.
	Update(id string, fn func(Screen) (Screen, error)) (Screen, error)
	Delete(id string) error
	Prune(now time.Time) int
	Len() int
}
