package animation

// Tween maps progress in [0, 1] onto the range Begin..End through Lerp.
type Tween[T any] struct {
	Begin T
	End   T
	Lerp  func(a, b T, t float64) T
}

// Evaluate returns the value at progress t. A tween without Lerp jumps
// straight to End.
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// LerpFloat64 interpolates linearly between a and b.
func LerpFloat64(a, b, t float64) float64 {
	return a + (b-a)*t
}

// TweenFloat64 returns a linear float64 tween, the shape used for stroke
// fractions.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{Begin: begin, End: end, Lerp: LerpFloat64}
}
