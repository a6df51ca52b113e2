package graphics

// BoxShadow defines a shadow to draw around a shape.
//
// BlurRadius controls softness. Canvases approximate the blur with a
// gaussian whose sigma is BlurRadius * 0.5.
type BoxShadow struct {
	Color      Color
	Offset     Offset
	BlurRadius float64
	Spread     float64
}

// Sigma returns the blur sigma, or 0 if BlurRadius is not positive.
func (s BoxShadow) Sigma() float64 {
	if s.BlurRadius <= 0 {
		return 0
	}
	return s.BlurRadius * 0.5
}

// IsVisible reports whether the shadow would draw anything.
func (s BoxShadow) IsVisible() bool {
	return s.Color.Alpha() > 0
}

// DefaultShadowOffset matches the platform layer default of a shadow cast
// three points above the shape.
var DefaultShadowOffset = Offset{X: 0, Y: -3}

// NewLayerShadow creates a black shadow with the given opacity (0-1) and blur
// radius, offset by DefaultShadowOffset.
func NewLayerShadow(opacity, blurRadius float64) BoxShadow {
	return BoxShadow{
		Color:      ColorBlack.WithAlpha(opacity),
		Offset:     DefaultShadowOffset,
		BlurRadius: blurRadius,
	}
}
