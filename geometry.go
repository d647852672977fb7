package slingshot

import (
	"fyne.io/fyne/v2"
)

// metrics is a point-in-time snapshot of the container state. All state
// machine decisions are made against one snapshot so a transition never
// mixes values from two different host events.
type metrics struct {
	Offset       fyne.Position
	Content      fyne.Size
	Viewport     fyne.Size
	Insets       Insets
	Dragging     bool
	Decelerating bool
	Zooming      bool
}

// snapshot reads the full container state at once.
func snapshot(c Container) metrics {
	return metrics{
		Offset:       c.Offset(),
		Content:      c.ContentSize(),
		Viewport:     c.ViewportSize(),
		Insets:       c.Insets(),
		Dragging:     c.Dragging(),
		Decelerating: c.Decelerating(),
		Zooming:      c.Zooming(),
	}
}

// scrolledPastBottom reports whether the offset is beyond the natural end
// of content.
func scrolledPastBottom(m metrics) bool {
	return m.Offset.Y > m.Content.Height-m.Viewport.Height
}

// distancePastBottom returns how far the offset is beyond the natural end
// of content. Never negative.
func distancePastBottom(m metrics) float32 {
	d := m.Offset.Y - (m.Content.Height - m.Viewport.Height)
	if d < 0 {
		return 0
	}
	return d
}

// availableByContentSize reports whether the content is tall enough,
// relative to the viewport, for the behavior to make sense.
func availableByContentSize(m metrics, ratio float32) bool {
	return m.Content.Height >= ratio*(m.Viewport.Height-m.Insets.Bottom)
}

// canSlingshot gates every state transition: the content must be tall
// enough and the host must not be mid zoom gesture or zoom rebound.
func canSlingshot(m metrics, ratio float32) bool {
	return availableByContentSize(m, ratio) && !m.Zooming
}
