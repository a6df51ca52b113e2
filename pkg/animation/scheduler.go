package animation

import (
	"sync"
	"time"
)

// Scheduler holds running animation tasks and advances them when stepped.
//
// The scheduler does not own a timer: the host render loop calls Step once
// per frame. The task set is guarded by a mutex so Step may run on a
// different goroutine from Start, but task callbacks are invoked without
// the lock held.
type Scheduler struct {
	mu    sync.Mutex
	clock Clock
	tasks []*AnimationTask
}

// DefaultScheduler is the scheduler timers and screens use when none is
// given.
var DefaultScheduler = NewScheduler(nil)

// NewScheduler creates a scheduler reading time from c. A nil clock uses
// the package clock (see SetClock).
func NewScheduler(c Clock) *Scheduler {
	return &Scheduler{clock: c}
}

func (s *Scheduler) now() time.Time {
	if s.clock != nil {
		return s.clock.Now()
	}
	return Now()
}

// Start registers task and delivers its first frame. A task with a
// non-positive duration completes immediately and is never registered.
// Starting a task that is already running restarts it.
func (s *Scheduler) Start(task *AnimationTask) {
	if task == nil {
		return
	}
	if task.status == TaskRunning && task.scheduler != nil {
		task.scheduler.remove(task)
	}
	task.scheduler = s
	if task.begin(s.now()) {
		return
	}
	s.mu.Lock()
	s.tasks = append(s.tasks, task)
	s.mu.Unlock()
}

// Step advances every running task to the current time. Completed tasks
// are removed.
func (s *Scheduler) Step() {
	s.mu.Lock()
	if len(s.tasks) == 0 {
		s.mu.Unlock()
		return
	}
	// Copy so callbacks may start or cancel tasks.
	tasks := make([]*AnimationTask, len(s.tasks))
	copy(tasks, s.tasks)
	s.mu.Unlock()

	now := s.now()
	for _, task := range tasks {
		if task.advance(now) {
			s.remove(task)
		}
	}
}

// HasActiveTasks returns true if any tasks are running.
func (s *Scheduler) HasActiveTasks() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks) > 0
}

// Len returns the number of running tasks.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

func (s *Scheduler) remove(task *AnimationTask) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tasks {
		if t == task {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}
