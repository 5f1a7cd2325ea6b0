package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/MagicGarden_Go/internal/testing/leaktest"
	"github.com/osse101/MagicGarden_Go/internal/worker"
)

// MockJob is a simple job for testing
type MockJob struct {
	runCount atomic.Int32
	Done     chan struct{}
}

func (m *MockJob) Process(ctx context.Context) error {
	m.runCount.Add(1)
	select {
	case m.Done <- struct{}{}:
	default:
	}
	return nil
}

// fullQueue refuses every job
type fullQueue struct {
	mu       sync.Mutex
	attempts int
}

func (f *fullQueue) Enqueue(job worker.Job) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attempts++
	return false
}

func (f *fullQueue) Attempts() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.attempts
}

func TestScheduler(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start(context.Background())
	defer pool.Stop()

	sched := New(context.Background(), pool)
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 10)}
	sched.Schedule(10*time.Millisecond, job)

	timeout := time.After(time.Second)
	runCount := 0
	for runCount < 2 {
		select {
		case <-job.Done:
			runCount++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}

	assert.GreaterOrEqual(t, runCount, 2)
}

func TestScheduler_ScheduleNowRunsImmediately(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start(context.Background())
	defer pool.Stop()

	sched := New(context.Background(), pool)
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 10)}
	sched.ScheduleNow(time.Hour, job)

	select {
	case <-job.Done:
	case <-time.After(time.Second):
		t.Fatal("immediate run did not happen")
	}
}

func TestScheduler_FullQueueSkipsWithoutBlocking(t *testing.T) {
	queue := &fullQueue{}
	sched := New(context.Background(), queue)

	sched.Schedule(5*time.Millisecond, &MockJob{Done: make(chan struct{}, 1)})

	assert.Eventually(t, func() bool {
		return queue.Attempts() >= 3
	}, time.Second, 5*time.Millisecond, "scheduler keeps ticking when the queue refuses jobs")

	stopped := make(chan struct{})
	go func() {
		sched.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked")
	}
}

func TestScheduler_StopReleasesGoroutines(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	sched := New(context.Background(), &fullQueue{})
	for i := 0; i < 5; i++ {
		sched.Schedule(time.Millisecond, &MockJob{Done: make(chan struct{}, 1)})
	}
	sched.Stop()
	sched.Stop()

	checker.Check(0)
}
