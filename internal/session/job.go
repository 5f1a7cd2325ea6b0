package session

import "context"

// TickJob advances the growth clock on the worker pool
type TickJob struct {
	session *Session
}

// NewTickJob creates a growth tick job for s
func NewTickJob(s *Session) *TickJob {
	return &TickJob{session: s}
}

// Name labels the job in worker metrics
func (j *TickJob) Name() string { return "growth_tick" }

// Process runs one tick at the session's clock
func (j *TickJob) Process(ctx context.Context) error {
	j.session.Tick(ctx, j.session.now())
	return nil
}
