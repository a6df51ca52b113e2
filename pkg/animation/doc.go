// Package animation provides declarative, frame-driven animation tasks.
//
// # Core Components
//
//   - [AnimationTask]: a single animation with a start time, a duration, a
//     [Curve] and a per-frame callback receiving the eased progress in [0, 1].
//
//   - [Scheduler]: the set of running tasks. The host's render loop calls
//     [Scheduler.Step] once per frame; cancelling a task removes it.
//
//   - [Tween]: maps task progress onto a value range such as a stroke
//     fraction.
//
// # Basic Usage
//
//	strokeEnd := animation.TweenFloat64(1, 0)
//	task := animation.NewTask(5*time.Second, func(t float64) {
//	    layer.StrokeEnd = strokeEnd.Evaluate(t)
//	    layer.SetNeedsDisplay()
//	})
//	scheduler.Start(task)
//
//	// Per frame, from the host loop:
//	scheduler.Step()
//
// A task with a zero or negative duration completes inside Start: its
// callback observes progress 1 and OnDone fires before Start returns.
package animation
