package growth

import (
	"math"
	"time"

	"github.com/osse101/MagicGarden_Go/internal/domain"
)

// Engine provides pure growth logic (no I/O, no mutation of server-owned fields)
type Engine struct{}

// NewEngine creates a new growth engine
func NewEngine() *Engine {
	return &Engine{}
}

// Progress computes the completion percentage of a bed at now.
// It is always derived from the absolute start time, so repeated calls never drift.
func (e *Engine) Progress(now time.Time, bed domain.Bed) float64 {
	if !bed.IsPlanted() || bed.StartTime == nil || bed.GrowTime <= 0 {
		return 0
	}

	elapsed := now.Sub(*bed.StartTime).Seconds()
	if elapsed <= 0 {
		return 0
	}

	progress := elapsed / float64(bed.GrowTime) * domain.MaxProgress
	return math.Min(domain.MaxProgress, progress)
}

// Recompute returns a copy of beds with Progress projected at now.
// Locked and empty beds are reset to zero.
func (e *Engine) Recompute(now time.Time, beds []domain.Bed) []domain.Bed {
	out := make([]domain.Bed, len(beds))
	for i, bed := range beds {
		out[i] = bed.Clone()
		out[i].Progress = e.Progress(now, bed)
	}
	return out
}

// ReadyAt returns when the bed reaches full progress. ok is false for beds
// that are not growing.
func (e *Engine) ReadyAt(bed domain.Bed) (time.Time, bool) {
	if !bed.IsPlanted() || bed.StartTime == nil || bed.GrowTime <= 0 {
		return time.Time{}, false
	}
	return bed.StartTime.Add(time.Duration(bed.GrowTime) * time.Second), true
}

// Remaining returns the time left until the bed is ready, never negative
func (e *Engine) Remaining(now time.Time, bed domain.Bed) time.Duration {
	readyAt, ok := e.ReadyAt(bed)
	if !ok {
		return 0
	}
	if d := readyAt.Sub(now); d > 0 {
		return d
	}
	return 0
}

// NewlyReady returns the ids of beds that were below full progress in before
// and have reached it in after. Beds are matched by id.
func (e *Engine) NewlyReady(before, after []domain.Bed) []int {
	prev := make(map[int]float64, len(before))
	for _, b := range before {
		prev[b.ID] = b.Progress
	}

	var ready []int
	for _, b := range after {
		if !b.IsReady() {
			continue
		}
		if p, ok := prev[b.ID]; ok && p < domain.MaxProgress {
			ready = append(ready, b.ID)
		}
	}
	return ready
}
