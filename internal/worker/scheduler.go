package worker

// scheduler.go
// In-process cron that fires the monthly billing run. Exactly one entry is
// installed at a time: Install replaces the previous schedule.

import (
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

type Scheduler struct {
	cron *cron.Cron
	job  func()

	mu       sync.Mutex
	entryID  cron.EntryID
	hasEntry bool
}

// NewScheduler wraps a cron runner around job. Call Install to arm it and
// Start to begin ticking.
func NewScheduler(job func()) *Scheduler {
	return &Scheduler{cron: cron.New(), job: job}
}

// Install replaces the current cron entry with the given 5-field spec.
func (s *Scheduler) Install(spec string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.cron.AddFunc(spec, s.job)
	if err != nil {
		return err
	}
	if s.hasEntry {
		s.cron.Remove(s.entryID)
	}
	s.entryID = id
	s.hasEntry = true
	log.Info().Str("spec", spec).Msg("scheduler: entry installed")
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the ticker; running jobs finish on their own goroutine.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}
