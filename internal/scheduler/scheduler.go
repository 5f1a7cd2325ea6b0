package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/MagicGarden_Go/internal/logger"
	"github.com/osse101/MagicGarden_Go/internal/worker"
)

// Enqueuer accepts jobs without blocking
type Enqueuer interface {
	Enqueue(job worker.Job) bool
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	pool Enqueuer
	ctx  context.Context
	quit chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

// New creates a new scheduler. ctx carries the logger used for skip reports.
func New(ctx context.Context, pool Enqueuer) *Scheduler {
	return &Scheduler{
		pool: pool,
		ctx:  ctx,
		quit: make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval. A run that finds the
// queue full is skipped; the next interval tries again.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.schedule(interval, job, false)
}

// ScheduleNow is Schedule with an extra run enqueued immediately
func (s *Scheduler) ScheduleNow(interval time.Duration, job worker.Job) {
	s.schedule(interval, job, true)
}

func (s *Scheduler) schedule(interval time.Duration, job worker.Job, immediate bool) {
	log := logger.FromContext(s.ctx)
	log.Info(LogMsgJobScheduled, "job", worker.JobName(job), "interval", interval)

	if immediate {
		s.enqueue(job)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.enqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
}

func (s *Scheduler) enqueue(job worker.Job) {
	if !s.pool.Enqueue(job) {
		logger.FromContext(s.ctx).Debug(LogMsgTickSkipped, "job", worker.JobName(job))
	}
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.once.Do(func() { close(s.quit) })
	s.wg.Wait()
}
