package service

import (
	"log"
	"sync"
	"time"

	"github.com/jengzang/trip-planner-go/internal/models"
)

// PlanStore is the persistence surface the writer flushes to.
type PlanStore interface {
	SavePlans(userName string, days []models.DayPlan) error
}

// PlanWriter coalesces plan saves: rapid successive edits within the
// debounce window collapse into one write per user. The debounce
// applies to persistence only; Latest always serves the most recent
// enqueued plan so reads never fall behind an unflushed write. Writes
// are fire-and-forget and a failed flush is logged, not surfaced. A
// new enqueue while a flush is running sets a dirty flag and
// reschedules instead of racing the in-flight write.
type PlanWriter struct {
	store PlanStore
	delay time.Duration

	mu       sync.Mutex
	pending  map[string][]models.DayPlan
	latest   map[string][]models.DayPlan
	timer    *time.Timer
	flushing bool
	dirty    bool
}

// NewPlanWriter creates a plan writer with the given debounce window.
func NewPlanWriter(store PlanStore, delay time.Duration) *PlanWriter {
	return &PlanWriter{
		store:   store,
		delay:   delay,
		pending: make(map[string][]models.DayPlan),
		latest:  make(map[string][]models.DayPlan),
	}
}

// Enqueue records the latest plan for a user and (re)schedules a
// flush. Only the most recent plan per user is ever written.
func (w *PlanWriter) Enqueue(userName string, days []models.DayPlan) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending[userName] = days
	w.latest[userName] = days
	if w.flushing {
		w.dirty = true
		return
	}
	w.schedule()
}

// Latest returns the most recently enqueued plan for a user, flushed
// or not. ok is false when nothing has been enqueued for the user.
func (w *PlanWriter) Latest(userName string) (days []models.DayPlan, ok bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	days, ok = w.latest[userName]
	return days, ok
}

// Discard drops any queued and cached state for a user. Called after
// a write that bypasses the queue, so reads fall through to the store.
func (w *PlanWriter) Discard(userName string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.pending, userName)
	delete(w.latest, userName)
}

// schedule resets the debounce timer; callers hold w.mu.
func (w *PlanWriter) schedule() {
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.delay, w.flush)
}

func (w *PlanWriter) flush() {
	w.mu.Lock()
	batch := w.pending
	w.pending = make(map[string][]models.DayPlan)
	w.flushing = true
	w.mu.Unlock()

	for userName, days := range batch {
		if err := w.store.SavePlans(userName, days); err != nil {
			log.Printf("Plan flush failed for %s: %v", userName, err)
		}
	}

	w.mu.Lock()
	w.flushing = false
	if w.dirty {
		w.dirty = false
		w.schedule()
	}
	w.mu.Unlock()
}

// Flush writes any pending plans immediately. Used on shutdown.
func (w *PlanWriter) Flush() {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	w.flush()
}
