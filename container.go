package slingshot

import (
	"fyne.io/fyne/v2"
)

// Insets describes edge padding applied by the host around its content.
type Insets struct {
	Top    float32
	Bottom float32
	Left   float32
	Right  float32
}

// Container is the scrollable host the behavior attaches to. The package
// only observes and reacts to this surface; it never implements scrolling
// itself. OverscrollContainer is the bundled implementation for Fyne
// content, but any host exposing these signals can be used.
//
// Overlay objects passed to AttachOverlay are positioned by the caller in
// content coordinate space, so an object at (0, contentHeight) sits
// immediately below the last row of content.
type Container interface {
	// Offset returns the current scroll offset. Offset.Y grows as content
	// scrolls up; values past ContentSize().Height-ViewportSize().Height
	// indicate overscroll beyond the bottom edge.
	Offset() fyne.Position

	// ContentSize returns the full size of the scrolled content.
	ContentSize() fyne.Size

	// ViewportSize returns the visible area of the container.
	ViewportSize() fyne.Size

	// Insets returns the host's edge insets.
	Insets() Insets

	// Dragging reports whether the user is actively touching/dragging.
	Dragging() bool

	// Decelerating reports whether the finger has lifted and the host's
	// scrolling physics are settling the offset.
	Decelerating() bool

	// Zooming reports whether a pinch-zoom gesture or zoom rebound is in
	// progress. Hosts without a zoom concept return false.
	Zooming() bool

	// OnOffsetChanged registers fn to run after every offset change, in
	// delivery order on the event goroutine. The returned cancel func
	// removes the registration synchronously.
	OnOffsetChanged(fn func()) (cancel func())

	// ScrollToTop animates the offset to the top-of-content position,
	// accounting for the top inset. Fire and forget; the host keeps
	// delivering offset notifications while the animation runs.
	ScrollToTop()

	// AttachOverlay adds an object to the host's content coordinate space.
	AttachOverlay(obj fyne.CanvasObject)

	// DetachOverlay removes a previously attached object. Removing an
	// object that is not attached is a no-op.
	DetachOverlay(obj fyne.CanvasObject)
}
