package animation

import (
	"fmt"
	"time"
)

// TaskStatus represents the lifecycle state of an AnimationTask.
//
//	         Start()             elapsed >= Duration
//	Pending ─────────► Running ──────────────────────► Completed
//	                      │
//	                      │ Cancel()
//	                      ▼
//	                  Cancelled
type TaskStatus int

const (
	// TaskPending means the task has not been started.
	TaskPending TaskStatus = iota
	// TaskRunning means the task is registered and receives frames.
	TaskRunning
	// TaskCompleted means the task delivered its final frame.
	TaskCompleted
	// TaskCancelled means the task was removed before completing.
	TaskCancelled
)

// String returns a human-readable representation of the task status.
func (s TaskStatus) String() string {
	switch s {
	case TaskPending:
		return "pending"
	case TaskRunning:
		return "running"
	case TaskCompleted:
		return "completed"
	case TaskCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("TaskStatus(%d)", int(s))
	}
}

// AnimationTask interpolates progress from 0 to 1 over Duration.
//
// OnFrame receives the curved progress each time the owning Scheduler is
// stepped, starting with progress 0 when the task starts and ending with
// exactly 1. OnDone fires once after the final frame; it does not fire for
// cancelled tasks.
type AnimationTask struct {
	// Duration is the length of the animation.
	Duration time.Duration

	// Curve transforms linear progress. Nil means linear.
	Curve Curve

	// OnFrame is called with the eased progress for every frame.
	OnFrame func(progress float64)

	// OnDone is called once when the task completes.
	OnDone func()

	start     time.Time
	status    TaskStatus
	progress  float64
	scheduler *Scheduler
}

// NewTask creates a linear task with the given duration and frame callback.
func NewTask(duration time.Duration, onFrame func(progress float64)) *AnimationTask {
	return &AnimationTask{
		Duration: duration,
		Curve:    LinearCurve,
		OnFrame:  onFrame,
	}
}

// Status returns the current task status.
func (t *AnimationTask) Status() TaskStatus {
	return t.status
}

// IsRunning reports whether the task is still receiving frames.
func (t *AnimationTask) IsRunning() bool {
	return t.status == TaskRunning
}

// Progress returns the linear (un-eased) progress delivered by the last
// frame.
func (t *AnimationTask) Progress() float64 {
	return t.progress
}

// StartTime returns when the task was started.
func (t *AnimationTask) StartTime() time.Time {
	return t.start
}

// Cancel stops the task at its current progress. No-op unless running.
func (t *AnimationTask) Cancel() {
	if t.status != TaskRunning {
		return
	}
	if t.scheduler != nil {
		t.scheduler.remove(t)
	}
	t.status = TaskCancelled
}

// begin delivers the first frame. It returns true if the task is already
// finished.
func (t *AnimationTask) begin(now time.Time) bool {
	t.start = now
	t.status = TaskRunning
	if t.Duration <= 0 {
		t.finish()
		return true
	}
	t.emit(0)
	return false
}

// advance delivers the frame for now and returns true once complete.
func (t *AnimationTask) advance(now time.Time) bool {
	if t.status != TaskRunning {
		return true
	}
	progress := float64(now.Sub(t.start)) / float64(t.Duration)
	if progress >= 1 {
		t.finish()
		return true
	}
	t.emit(clampUnit(progress))
	return false
}

func (t *AnimationTask) finish() {
	t.emit(1)
	t.status = TaskCompleted
	if t.OnDone != nil {
		t.OnDone()
	}
}

func (t *AnimationTask) emit(progress float64) {
	t.progress = progress
	if t.OnFrame == nil {
		return
	}
	eased := progress
	if t.Curve != nil {
		eased = t.Curve(progress)
	}
	t.OnFrame(eased)
}
