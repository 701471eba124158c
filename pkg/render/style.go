package render

import (
	"github.com/iconclip/iconclip/pkg/errors"
)

// Transparent is the background sentinel meaning "no background rectangle".
const Transparent = "transparent"

// Default style values used when the caller does not override them.
const (
	DefaultColor  = "#000000"
	DefaultSizePx = 256

	// MaxPadding is the largest padding fraction accepted at entry points.
	// Half the shorter side is the point where the icon would vanish.
	MaxPadding = 0.5

	// MaxCornerRadius is the largest corner-radius percentage accepted at
	// entry points. 50 turns the container into a circle/stadium.
	MaxCornerRadius = 50.0
)

// Style is the value object describing how an icon is rendered.
//
// Padding is a fraction of the icon's shorter view-box dimension, in
// [0, MaxPadding]. CornerRadius is a percentage of the expanded container's
// shorter dimension, in [0, MaxCornerRadius]. Entry points accepting raw
// user input must clamp via [Style.Clamped] before rendering; the assembler
// itself trusts its inputs.
type Style struct {
	Color        string  `json:"color"`
	Background   string  `json:"background"`
	Padding      float64 `json:"padding"`
	CornerRadius float64 `json:"corner_radius"`
	SizePx       int     `json:"size_px"`
}

// DefaultStyle returns the style used when nothing is configured:
// black glyph, transparent background, no padding, square corners, 256 px.
func DefaultStyle() Style {
	return Style{
		Color:      DefaultColor,
		Background: Transparent,
		SizePx:     DefaultSizePx,
	}
}

// Clamped returns a copy with Padding, CornerRadius, and SizePx forced into
// their valid ranges and empty colors replaced by defaults. Called at entry
// points (CLI flags, HTTP query parameters, TUI state), not internally.
func (s Style) Clamped() Style {
	if s.Color == "" {
		s.Color = DefaultColor
	}
	if s.Background == "" {
		s.Background = Transparent
	}
	if s.Padding < 0 {
		s.Padding = 0
	}
	if s.Padding > MaxPadding {
		s.Padding = MaxPadding
	}
	if s.CornerRadius < 0 {
		s.CornerRadius = 0
	}
	if s.CornerRadius > MaxCornerRadius {
		s.CornerRadius = MaxCornerRadius
	}
	if s.SizePx <= 0 {
		s.SizePx = DefaultSizePx
	}
	return s
}

// Validate checks the style's colors and size.
// Range errors for Padding/CornerRadius are not validation failures; they
// are clamped instead, mirroring how sliders behave in the UI.
func (s Style) Validate() error {
	if err := errors.ValidateColor(s.Color); err != nil {
		return err
	}
	if err := errors.ValidateBackground(s.Background); err != nil {
		return err
	}
	return errors.ValidateSize(s.SizePx)
}
