package circletimer

import (
	"fmt"

	"github.com/go-drift/circletimer/pkg/graphics"
)

// Strategy selects how the fill is removed while a timer runs.
type Strategy int

const (
	// StrategyMask hides the fill behind a shrinking ring-shaped mask. If
	// the background is transparent, whatever is beneath the timer shows
	// through.
	StrategyMask Strategy = iota
	// StrategyStroke paints over the fill with a growing stroke in the
	// background color.
	StrategyStroke
)

// String returns a human-readable representation of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyMask:
		return "mask"
	case StrategyStroke:
		return "stroke"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Style is the timer's visual configuration. No field is validated:
// degenerate values (negative ratios, opacity outside [0, 1]) are passed to
// the canvas as-is.
//
// The ratio fields are fractions of the widget's width and are converted to
// pixels every time the widget lays out.
type Style struct {
	// UseMask selects StrategyMask when true and StrategyStroke otherwise.
	UseMask bool `yaml:"use_mask" toml:"use_mask"`

	// BorderColor is the color of the border around the circle.
	BorderColor graphics.Color `yaml:"border_color" toml:"border_color"`
	// BackgroundColor is the color of the timer's background.
	BackgroundColor graphics.Color `yaml:"background_color" toml:"background_color"`
	// FillColor is the color of the timer when it's filled.
	FillColor graphics.Color `yaml:"fill_color" toml:"fill_color"`

	// ShadowOpacity is the opacity of the shadow behind the circle.
	ShadowOpacity float64 `yaml:"shadow_opacity" toml:"shadow_opacity"`
	// ShadowWidthRatio is the shadow blur radius relative to the width.
	ShadowWidthRatio float64 `yaml:"shadow_width_ratio" toml:"shadow_width_ratio"`
	// BorderWidthRatio is the border width relative to the width.
	BorderWidthRatio float64 `yaml:"border_width_ratio" toml:"border_width_ratio"`
	// FillDiameterRatio is the fill diameter relative to the width.
	FillDiameterRatio float64 `yaml:"fill_diameter_ratio" toml:"fill_diameter_ratio"`
}

// DefaultStyle returns a white-bordered, light gray timer with a blue fill
// occupying 80% of the width.
func DefaultStyle() Style {
	return Style{
		UseMask:           true,
		BorderColor:       graphics.ColorWhite,
		BackgroundColor:   graphics.ColorLightGray,
		FillColor:         graphics.ColorBlue,
		ShadowOpacity:     0.25,
		ShadowWidthRatio:  1.0 / 20,
		BorderWidthRatio:  1.0 / 20,
		FillDiameterRatio: 16.0 / 20,
	}
}

// Strategy returns the removal strategy selected by UseMask.
func (s Style) Strategy() Strategy {
	if s.UseMask {
		return StrategyMask
	}
	return StrategyStroke
}
