package slingshot

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// OverscrollContainer is a vertical scroll container that lets the user
// drag content past its bottom edge, which the standard Fyne scroll
// container clamps away. It implements Container and is the usual host for
// the slingshot behavior:
//
//	oc := slingshot.NewOverscrollContainer(list)
//	slingshot.Enable(oc)
//
// Mouse wheel scrolling stays inside the natural range; only an active
// drag (mouse or touch) can overscroll. On release the content snaps back
// to the natural range with a short ease-out animation, unless a listener
// redirects the offset first (ScrollToTop does exactly that).
type OverscrollContainer struct {
	widget.BaseWidget

	content fyne.CanvasObject
	// surface holds content plus overlays in content coordinate space and
	// is moved as a whole to apply the scroll offset.
	surface *fyne.Container

	offset        fyne.Position
	insets        Insets
	maxOverscroll float32

	dragging     bool
	decelerating bool

	listeners  map[int]func()
	listenerID int

	anim *fyne.Animation
}

// NewOverscrollContainer wraps content in an overscrollable viewport.
func NewOverscrollContainer(content fyne.CanvasObject) *OverscrollContainer {
	oc := &OverscrollContainer{
		content:       content,
		surface:       container.NewWithoutLayout(content),
		maxOverscroll: DefaultMaxOverscroll,
		listeners:     make(map[int]func()),
	}
	oc.ExtendBaseWidget(oc)
	return oc
}

// Offset returns the current scroll offset.
func (oc *OverscrollContainer) Offset() fyne.Position {
	return oc.offset
}

// ContentSize returns the laid-out size of the scrolled content. Content
// shorter than the viewport is stretched to fill it.
func (oc *OverscrollContainer) ContentSize() fyne.Size {
	viewport := oc.Size()
	height := oc.content.MinSize().Height
	if height < viewport.Height {
		height = viewport.Height
	}
	return fyne.NewSize(viewport.Width, height)
}

// ViewportSize returns the visible area.
func (oc *OverscrollContainer) ViewportSize() fyne.Size {
	return oc.Size()
}

// Insets returns the configured edge insets.
func (oc *OverscrollContainer) Insets() Insets {
	return oc.insets
}

// SetInsets configures edge insets. The top inset shifts the resting
// position ScrollToTop animates to.
func (oc *OverscrollContainer) SetInsets(insets Insets) {
	oc.insets = insets
}

// Dragging reports whether a drag gesture is in progress.
func (oc *OverscrollContainer) Dragging() bool {
	return oc.dragging
}

// Decelerating reports whether the offset is settling after a release.
func (oc *OverscrollContainer) Decelerating() bool {
	return oc.decelerating
}

// Zooming always reports false: Fyne has no pinch-zoom concept for
// containers.
func (oc *OverscrollContainer) Zooming() bool {
	return false
}

// SetMaxOverscroll caps how far content may be dragged past its bottom
// edge. Values at or below zero restore the default.
func (oc *OverscrollContainer) SetMaxOverscroll(max float32) {
	if max <= 0 {
		max = DefaultMaxOverscroll
	}
	oc.maxOverscroll = max
}

// OnOffsetChanged registers fn to run after every offset change.
func (oc *OverscrollContainer) OnOffsetChanged(fn func()) (cancel func()) {
	oc.listenerID++
	id := oc.listenerID
	oc.listeners[id] = fn
	return func() {
		delete(oc.listeners, id)
	}
}

// AttachOverlay adds obj to the content coordinate space.
func (oc *OverscrollContainer) AttachOverlay(obj fyne.CanvasObject) {
	oc.surface.Add(obj)
}

// DetachOverlay removes obj from the content coordinate space.
func (oc *OverscrollContainer) DetachOverlay(obj fyne.CanvasObject) {
	oc.surface.Remove(obj)
}

// ScrollToTop animates the offset back to the top-of-content position,
// honoring the top inset. Any running snap-back animation is replaced.
func (oc *OverscrollContainer) ScrollToTop() {
	oc.stopAnimation()

	from := oc.offset.Y
	to := -oc.insets.Top
	if from == to {
		oc.decelerating = false
		return
	}

	oc.animateOffset(from, to, ScrollResetDuration, fyne.AnimationEaseInOut)
}

// SetOffset scrolls programmatically to p, clamped to the natural range.
func (oc *OverscrollContainer) SetOffset(p fyne.Position) {
	oc.stopAnimation()
	oc.setOffsetY(clamp(p.Y, -oc.insets.Top, oc.maxScroll()))
}

// Dragged moves the content with the pointer, allowing overscroll past the
// bottom edge up to the configured cap.
func (oc *OverscrollContainer) Dragged(e *fyne.DragEvent) {
	oc.stopAnimation()
	oc.dragging = true
	oc.decelerating = false

	y := clamp(oc.offset.Y-e.Dragged.DY, -oc.insets.Top, oc.maxScroll()+oc.maxOverscroll)
	oc.setOffsetY(y)
}

// DragEnd finishes the gesture: listeners see one decelerating event at
// the released offset, then the content snaps back into the natural range
// unless a listener already started its own offset animation.
func (oc *OverscrollContainer) DragEnd() {
	if !oc.dragging {
		return
	}
	oc.dragging = false
	oc.decelerating = true
	oc.notify()

	if oc.anim != nil {
		// A listener took over the offset (slingshot reset).
		return
	}

	target := clamp(oc.offset.Y, -oc.insets.Top, oc.maxScroll())
	if target == oc.offset.Y {
		oc.decelerating = false
		return
	}
	oc.animateOffset(oc.offset.Y, target, SnapBackDuration, fyne.AnimationEaseOut)
}

// Scrolled handles mouse wheel and trackpad scrolling within the natural
// range. Wheel input never overscrolls.
func (oc *OverscrollContainer) Scrolled(e *fyne.ScrollEvent) {
	if oc.dragging {
		return
	}
	oc.stopAnimation()
	oc.setOffsetY(clamp(oc.offset.Y-e.Scrolled.DY, -oc.insets.Top, oc.maxScroll()))
}

// TouchDown marks the start of a touch-driven drag. The mobile driver
// delivers the movement itself through Dragged.
func (oc *OverscrollContainer) TouchDown(_ *mobile.TouchEvent) {
	oc.stopAnimation()
	oc.dragging = true
	oc.decelerating = false
}

// TouchUp ends a touch-driven drag.
func (oc *OverscrollContainer) TouchUp(_ *mobile.TouchEvent) {
	oc.DragEnd()
}

// TouchCancel ends a cancelled touch like a release.
func (oc *OverscrollContainer) TouchCancel(_ *mobile.TouchEvent) {
	oc.DragEnd()
}

// CreateRenderer creates the widget renderer
func (oc *OverscrollContainer) CreateRenderer() fyne.WidgetRenderer {
	return &overscrollRenderer{oc: oc}
}

// maxScroll returns the largest natural offset: content bottom aligned with
// the viewport bottom, pushed up by the bottom inset.
func (oc *OverscrollContainer) maxScroll() float32 {
	m := oc.ContentSize().Height - oc.ViewportSize().Height + oc.insets.Bottom
	if m < 0 {
		return 0
	}
	return m
}

// setOffsetY applies a new vertical offset and notifies listeners.
func (oc *OverscrollContainer) setOffsetY(y float32) {
	if oc.offset.Y == y {
		return
	}
	oc.offset.Y = y
	oc.surface.Move(fyne.NewPos(-oc.offset.X, -oc.offset.Y))
	oc.notify()
}

// animateOffset drives the offset between two values, notifying listeners
// on every tick. The final tick clears the decelerating flag.
func (oc *OverscrollContainer) animateOffset(from, to float32, duration time.Duration, curve fyne.AnimationCurve) {
	anim := fyne.NewAnimation(duration, func(f float32) {
		oc.setOffsetY(from + (to-from)*f)
		if f >= 1 {
			oc.decelerating = false
			oc.anim = nil
		}
	})
	anim.Curve = curve
	oc.anim = anim

	// Off-canvas there is nothing to animate; settle immediately.
	if !canAnimate(oc) {
		oc.anim = nil
		oc.setOffsetY(to)
		oc.decelerating = false
		return
	}
	anim.Start()
}

// canAnimate reports whether obj is attached to a live canvas with an
// animation driver behind it.
func canAnimate(obj fyne.CanvasObject) bool {
	app := fyne.CurrentApp()
	if app == nil || app.Driver() == nil {
		return false
	}
	return app.Driver().CanvasForObject(obj) != nil
}

// stopAnimation cancels any running offset animation.
func (oc *OverscrollContainer) stopAnimation() {
	if oc.anim != nil {
		oc.anim.Stop()
		oc.anim = nil
	}
}

// notify runs the registered offset listeners. Each listener sees the
// fully updated container state.
func (oc *OverscrollContainer) notify() {
	for _, fn := range oc.listeners {
		fn()
	}
}

// overscrollRenderer renders the viewport: the surface holds content and
// overlays in content space and is shifted by the negative offset.
type overscrollRenderer struct {
	oc *OverscrollContainer
}

// Layout arranges the components
func (r *overscrollRenderer) Layout(size fyne.Size) {
	contentHeight := r.oc.content.MinSize().Height
	if contentHeight < size.Height {
		contentHeight = size.Height
	}

	r.oc.content.Resize(fyne.NewSize(size.Width, contentHeight))
	r.oc.content.Move(fyne.NewPos(0, 0))

	r.oc.surface.Resize(fyne.NewSize(size.Width, contentHeight))
	r.oc.surface.Move(fyne.NewPos(-r.oc.offset.X, -r.oc.offset.Y))
}

// MinSize returns the minimum size
func (r *overscrollRenderer) MinSize() fyne.Size {
	// The viewport itself can be arbitrarily small; the content scrolls.
	return fyne.NewSize(32, 32)
}

// Refresh refreshes the renderer
func (r *overscrollRenderer) Refresh() {
	r.Layout(r.oc.Size())
	r.oc.surface.Refresh()
}

// Objects returns the rendered objects
func (r *overscrollRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.oc.surface}
}

// Destroy cleans up renderer resources
func (r *overscrollRenderer) Destroy() {
	r.oc.stopAnimation()
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
