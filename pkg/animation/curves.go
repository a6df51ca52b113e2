package animation

// Curve transforms linear progress t in [0, 1] into eased progress.
type Curve func(t float64) float64

// LinearCurve returns linear progress (no easing).
func LinearCurve(t float64) float64 {
	return t
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
