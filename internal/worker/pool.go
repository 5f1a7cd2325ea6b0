package worker

import (
	"context"
	"sync"

	"github.com/osse101/MagicGarden_Go/internal/logger"
	"github.com/osse101/MagicGarden_Go/internal/metrics"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// Named jobs report their name as the metrics label
type Named interface {
	Name() string
}

// JobName returns the label used for job in logs and metrics
func JobName(job Job) string {
	if n, ok := job.(Named); ok {
		return n.Name()
	}
	return DefaultJobName
}

// Pool represents a worker pool
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}

	mu      sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
	stopped bool
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
	}
}

// Start starts the workers. Jobs run with a context derived from ctx that
// is cancelled by Stop.
func (p *Pool) Start(ctx context.Context) {
	p.mu.Lock()
	p.ctx, p.cancel = context.WithCancel(ctx)
	p.mu.Unlock()

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(p.ctx)
	}
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			metrics.JobQueueDepth.Set(float64(len(p.jobQueue)))
			p.run(ctx, job)
		case <-p.quit:
			return
		}
	}
}

func (p *Pool) run(ctx context.Context, job Job) {
	name := JobName(job)
	if err := job.Process(ctx); err != nil {
		metrics.WorkerJobs.WithLabelValues(name, metrics.ResultError).Inc()
		logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "job", name, "error", err)
		return
	}
	metrics.WorkerJobs.WithLabelValues(name, metrics.ResultSuccess).Inc()
}

// Enqueue adds a job without blocking. It returns false when the queue is
// full or the pool is stopped; the caller decides whether to retry.
func (p *Pool) Enqueue(job Job) bool {
	p.mu.Lock()
	stopped := p.stopped
	p.mu.Unlock()
	if stopped {
		return false
	}

	select {
	case p.jobQueue <- job:
		metrics.JobQueueDepth.Set(float64(len(p.jobQueue)))
		return true
	default:
		metrics.JobsDropped.WithLabelValues(JobName(job)).Inc()
		logger.FromContext(p.baseContext()).Debug(LogMsgJobDropped, "job", JobName(job))
		return false
	}
}

// Stop stops the workers and waits for running jobs to finish. Queued jobs
// are discarded.
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	cancel := p.cancel
	p.mu.Unlock()

	close(p.quit)
	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
	logger.FromContext(p.baseContext()).Info(LogMsgPoolStopped)
}

func (p *Pool) baseContext() context.Context {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ctx == nil {
		return context.Background()
	}
	return p.ctx
}
