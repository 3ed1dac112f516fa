package orchestrator

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"gift-occasions/internal/domain/occasion"
	"gift-occasions/internal/notify"
	"gift-occasions/internal/pkg/clock"
	"gift-occasions/internal/pkg/errs"

	"github.com/google/uuid"
)

type WorkflowRunner interface {
	Run(ctx context.Context, occ occasion.Occasion) (*notify.Attempt, error)
}

type OccasionLoader interface {
	LoadAll(ctx context.Context) ([]occasion.Occasion, error)
}

// Scheduler owns the job table: the mapping from occasion ID to its single
// live one-shot timer. The table is the only mutable shared state in the
// orchestrator and every mutation happens under one mutex; workflow bodies
// always run outside it, so an in-flight delivery never blocks scheduling.
//
// Callers are responsible for cancelling before rescheduling an ID; the
// scheduler does not auto-replace an existing job.
type Scheduler struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*time.Timer

	workflow WorkflowRunner
	loader   OccasionLoader
	clock    clock.Clock
	fireHour int
	loc      *time.Location
	logger   *slog.Logger
}

func NewScheduler(
	workflow WorkflowRunner,
	loader OccasionLoader,
	clk clock.Clock,
	fireHour int,
	loc *time.Location,
	logger *slog.Logger,
) *Scheduler {
	return &Scheduler{
		jobs:     make(map[uuid.UUID]*time.Timer),
		workflow: workflow,
		loader:   loader,
		clock:    clk,
		fireHour: fireHour,
		loc:      loc,
		logger:   logger,
	}
}

// Schedule registers a one-shot job firing at the occasion's trigger time;
// past-due occasions fire immediately. The occasion is captured by value so
// the fire callback never sees a later mutation.
func (s *Scheduler) Schedule(occ occasion.Occasion) error {
	delay, err := s.delayFor(occ)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[occ.ID] = time.AfterFunc(delay, func() { s.fire(occ) })

	s.logger.Debug("occasion scheduled",
		"occasion_id", occ.ID.String(), "delay", delay.String())
	return nil
}

func (s *Scheduler) delayFor(occ occasion.Occasion) (time.Duration, error) {
	fireAt, err := occasion.FireTime(occ.Date, s.fireHour, s.loc)
	if err != nil {
		return 0, err
	}
	delay := fireAt.Sub(s.clock.Now())
	if delay < 0 {
		delay = 0
	}
	return delay, nil
}

// Cancel stops and drops the job for the given ID. Cancelling an unknown,
// already-fired or already-cancelled job is a no-op: retried client
// operations legitimately cancel IDs that are no longer in the table.
func (s *Scheduler) Cancel(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.jobs[id]; ok {
		t.Stop()
		delete(s.jobs, id)
	}
}

// RunNow cancels any pending job for the occasion and executes the workflow
// synchronously, returning its result to the caller.
func (s *Scheduler) RunNow(ctx context.Context, occ occasion.Occasion) (*notify.Attempt, error) {
	s.Cancel(occ.ID)
	return s.workflow.Run(ctx, occ)
}

// HasPending reports whether a live job exists for the given occasion ID.
func (s *Scheduler) HasPending(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.jobs[id]
	return ok
}

// ReloadAll schedules every persisted occasion. A failure scheduling one
// occasion is logged and skipped; it never aborts the rest of the reload.
func (s *Scheduler) ReloadAll(ctx context.Context) error {
	occasions, err := s.loader.LoadAll(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to load occasions at startup")
	}

	scheduled := 0
	for _, occ := range occasions {
		if err := s.Schedule(occ); err != nil {
			s.logger.Warn("could not schedule occasion at startup",
				"occasion_id", occ.ID.String(), "error", err.Error())
			continue
		}
		scheduled++
	}

	s.logger.Info("occasion reload complete",
		"loaded", len(occasions), "scheduled", scheduled)
	return nil
}

// Stop cancels every pending job. Workflows already running are not
// interrupted.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.jobs {
		t.Stop()
		delete(s.jobs, id)
	}
}

// fire removes the job's own table entry, then runs the workflow outside the
// lock. The removal makes a fired job indistinguishable from a cancelled one
// to later Cancel calls.
func (s *Scheduler) fire(occ occasion.Occasion) {
	s.mu.Lock()
	delete(s.jobs, occ.ID)
	s.mu.Unlock()

	if _, err := s.workflow.Run(context.Background(), occ); err != nil {
		s.logger.Error("occasion notification workflow failed",
			"occasion_id", occ.ID.String(), "error", err.Error())
	}
}
