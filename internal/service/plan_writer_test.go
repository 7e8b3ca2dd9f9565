package service

import (
	"sync"
	"testing"
	"time"

	"github.com/jengzang/trip-planner-go/internal/models"
)

type recordingStore struct {
	mu     sync.Mutex
	writes []struct {
		user string
		days []models.DayPlan
	}
}

func (s *recordingStore) SavePlans(userName string, days []models.DayPlan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes = append(s.writes, struct {
		user string
		days []models.DayPlan
	}{userName, days})
	return nil
}

func (s *recordingStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.writes)
}

func (s *recordingStore) last() (string, []models.DayPlan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.writes) == 0 {
		return "", nil
	}
	w := s.writes[len(s.writes)-1]
	return w.user, w.days
}

func plansNamed(names ...string) []models.DayPlan {
	return []models.DayPlan{{ID: "day-1", Label: "Day 1", LocationNames: names}}
}

func TestPlanWriterCoalesces(t *testing.T) {
	store := &recordingStore{}
	w := NewPlanWriter(store, 20*time.Millisecond)

	w.Enqueue("alice", plansNamed("A"))
	w.Enqueue("alice", plansNamed("A", "B"))
	w.Enqueue("alice", plansNamed("A", "B", "C"))

	time.Sleep(100 * time.Millisecond)

	if got := store.count(); got != 1 {
		t.Fatalf("writes = %d, want rapid edits coalesced into 1", got)
	}
	user, days := store.last()
	if user != "alice" {
		t.Errorf("user = %s", user)
	}
	if len(days[0].LocationNames) != 3 {
		t.Errorf("flushed plan = %v, want the latest enqueue", days[0].LocationNames)
	}
}

func TestPlanWriterPerUser(t *testing.T) {
	store := &recordingStore{}
	w := NewPlanWriter(store, 10*time.Millisecond)

	w.Enqueue("alice", plansNamed("A"))
	w.Enqueue("bob", plansNamed("B"))

	time.Sleep(80 * time.Millisecond)

	if got := store.count(); got != 2 {
		t.Fatalf("writes = %d, want one per user", got)
	}
}

func TestPlanWriterFlush(t *testing.T) {
	store := &recordingStore{}
	w := NewPlanWriter(store, time.Hour)

	w.Enqueue("alice", plansNamed("A"))
	w.Flush()

	if got := store.count(); got != 1 {
		t.Fatalf("writes after Flush = %d, want 1", got)
	}
}

func TestPlanWriterLatest(t *testing.T) {
	store := &recordingStore{}
	w := NewPlanWriter(store, time.Hour)

	if _, ok := w.Latest("alice"); ok {
		t.Error("Latest should report nothing before any enqueue")
	}

	w.Enqueue("alice", plansNamed("A"))
	w.Enqueue("alice", plansNamed("A", "B"))

	days, ok := w.Latest("alice")
	if !ok || len(days[0].LocationNames) != 2 {
		t.Errorf("Latest = (%v, %v), want the newest enqueue", days, ok)
	}

	// Flushing persists but must not make Latest forget.
	w.Flush()
	days, ok = w.Latest("alice")
	if !ok || len(days[0].LocationNames) != 2 {
		t.Errorf("Latest after flush = (%v, %v)", days, ok)
	}
}

func TestPlanWriterDiscard(t *testing.T) {
	store := &recordingStore{}
	w := NewPlanWriter(store, time.Hour)

	w.Enqueue("alice", plansNamed("A"))
	w.Discard("alice")

	if _, ok := w.Latest("alice"); ok {
		t.Error("Latest should report nothing after Discard")
	}
	w.Flush()
	if got := store.count(); got != 0 {
		t.Errorf("writes after Discard = %d, want the queued plan dropped", got)
	}
}

func TestPlanWriterEnqueueDuringFlush(t *testing.T) {
	store := &recordingStore{}
	w := NewPlanWriter(store, 10*time.Millisecond)

	w.Enqueue("alice", plansNamed("A"))
	time.Sleep(40 * time.Millisecond)
	w.Enqueue("alice", plansNamed("A", "B"))
	time.Sleep(60 * time.Millisecond)

	if got := store.count(); got != 2 {
		t.Fatalf("writes = %d, want 2", got)
	}
	_, days := store.last()
	if len(days[0].LocationNames) != 2 {
		t.Errorf("last write = %v, want the second enqueue", days[0].LocationNames)
	}
}
