package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

// Pruner drops expired state and reports how much was removed.
type Pruner interface {
	Prune() int
}

// Scheduler periodically prunes idle converter screens.
type Scheduler struct {
	scheduler *gocron.Scheduler
	pruner    Pruner
	interval  time.Duration
}

// New creates a new Scheduler.
func New(interval time.Duration, pruner Pruner) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		pruner:    pruner,
		interval:  interval,
	}
}

// Start schedules the pruning job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	interval := s.interval
	if interval <= 0 {
		interval = time.Minute
	}

	_, err := s.scheduler.Every(interval).Do(func() {
		if removed := s.pruner.Prune(); removed > 0 {
			log.Printf("scheduler: pruned %d idle screens", removed)
		}
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
