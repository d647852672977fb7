package slingshot

import "time"

// Behavior defaults, overridable per session via the Slingshot setters.
const (
	// DefaultThreshold is the overscroll distance (in device-independent
	// pixels) beyond which releasing the drag triggers the jump to top.
	DefaultThreshold float32 = 150

	// DefaultHeightRatio is the minimum content-height to viewport-height
	// ratio required for the behavior to be available at all. Short content
	// has nothing to jump back from.
	DefaultHeightRatio float32 = 3
)

// Animation timing
const (
	IndicatorFlipDuration = 200 * time.Millisecond
	SnapBackDuration      = 250 * time.Millisecond
	ScrollResetDuration   = 300 * time.Millisecond
)

// Indicator sizing
const (
	IndicatorArrowSize float32 = 24
	IndicatorTextSize  float32 = 13
	IndicatorPadding   float32 = 6
)

// Overscroll limits
const (
	// DefaultMaxOverscroll caps how far content may be dragged past its
	// bottom edge inside OverscrollContainer.
	DefaultMaxOverscroll float32 = 240
)
