// Package testing provides helpers for deterministic widget tests.
//
// # Animation Testing
//
// Control time by giving the widget's scheduler a FakeClock:
//
//	clk := timertest.NewFakeClock()
//	scheduler := animation.NewScheduler(clk)
//	timer := circletimer.New(circletimer.WithScheduler(scheduler))
//
//	timer.StartTimer(2 * time.Second)
//	clk.Advance(time.Second)
//	scheduler.Step()
//
// # Display List Testing
//
// Record what a painter draws and inspect the operations:
//
//	ops := timertest.RecordOps(size, timer.Paint)
//	fills := timertest.OpsNamed(ops, "drawPath")
//
// # Pixel Testing
//
// Render onto a raster canvas and sample colors with ColorAt.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import timertest "github.com/go-drift/circletimer/pkg/testing"
package testing
