// Package animation runs frame-driven animation tasks for the overlay.
package animation

import (
	"slices"

	"specto/internal/platform/metrics"
)

// Task advances one frame per Step call and reports true once finished.
type Task interface {
	Step() (done bool)
}

// Scheduler holds running tasks and steps them once per frame tick.
// Tasks run in the order they were added.
type Scheduler struct {
	metrics *metrics.Metrics

	nextID int
	order  []int
	tasks  map[int]Task
}

// New creates a scheduler. Metrics may be nil.
func New(m *metrics.Metrics) *Scheduler {
	return &Scheduler{
		metrics: m,
		tasks:   make(map[int]Task),
	}
}

// Add registers a task and returns an idempotent cancel function.
func (s *Scheduler) Add(t Task) (cancel func()) {
	id := s.nextID
	s.nextID++
	s.order = append(s.order, id)
	s.tasks[id] = t
	s.metrics.SetActiveAnimations(len(s.tasks))
	return func() {
		if _, ok := s.tasks[id]; ok {
			delete(s.tasks, id)
			s.metrics.SetActiveAnimations(len(s.tasks))
		}
	}
}

// Tick steps every running task once and drops the finished ones.
func (s *Scheduler) Tick() {
	var finished []int
	for _, id := range s.order {
		t, ok := s.tasks[id]
		if !ok {
			finished = append(finished, id)
			continue
		}
		if t.Step() {
			delete(s.tasks, id)
			finished = append(finished, id)
		}
	}
	for _, id := range finished {
		if i := slices.Index(s.order, id); i >= 0 {
			s.order = slices.Delete(s.order, i, i+1)
		}
	}
	s.metrics.SetActiveAnimations(len(s.tasks))
}

// Active reports how many tasks are still running.
func (s *Scheduler) Active() int { return len(s.tasks) }
