package slingshot

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
)

// newTestOverscroll builds a 400x800 viewport over 2000 points of content,
// so the natural scroll range ends at offset 1200.
func newTestOverscroll() *OverscrollContainer {
	test.NewApp()

	content := canvas.NewRectangle(nil)
	content.SetMinSize(fyne.NewSize(400, 2000))

	oc := NewOverscrollContainer(content)
	oc.Resize(fyne.NewSize(400, 800))
	return oc
}

func dragBy(oc *OverscrollContainer, dy float32) {
	oc.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DY: dy}})
}

func TestOverscrollContentSize(t *testing.T) {
	oc := newTestOverscroll()

	size := oc.ContentSize()
	if size.Height != 2000 {
		t.Errorf("Expected content height 2000, got %v", size.Height)
	}
	if oc.ViewportSize().Height != 800 {
		t.Errorf("Expected viewport height 800, got %v", oc.ViewportSize().Height)
	}
	if oc.maxScroll() != 1200 {
		t.Errorf("Expected max scroll 1200, got %v", oc.maxScroll())
	}
}

func TestShortContentStretchesToViewport(t *testing.T) {
	test.NewApp()
	content := canvas.NewRectangle(nil)
	content.SetMinSize(fyne.NewSize(400, 300))

	oc := NewOverscrollContainer(content)
	oc.Resize(fyne.NewSize(400, 800))

	if oc.ContentSize().Height != 800 {
		t.Errorf("Short content should fill the viewport, got %v", oc.ContentSize().Height)
	}
	if oc.maxScroll() != 0 {
		t.Errorf("Short content should not scroll, max=%v", oc.maxScroll())
	}
}

func TestWheelScrollClampsToNaturalRange(t *testing.T) {
	oc := newTestOverscroll()

	oc.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.Delta{DY: -500}})
	if oc.Offset().Y != 500 {
		t.Errorf("Expected offset 500 after wheel scroll, got %v", oc.Offset().Y)
	}

	oc.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.Delta{DY: -5000}})
	if oc.Offset().Y != 1200 {
		t.Errorf("Wheel scroll must clamp at 1200, got %v", oc.Offset().Y)
	}

	oc.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.Delta{DY: 5000}})
	if oc.Offset().Y != 0 {
		t.Errorf("Wheel scroll must clamp at 0, got %v", oc.Offset().Y)
	}
}

func TestDragOverscrollsPastBottom(t *testing.T) {
	oc := newTestOverscroll()
	oc.SetOffset(fyne.NewPos(0, 1200))

	dragBy(oc, -100)
	if !oc.Dragging() {
		t.Error("Dragging should be true during a drag")
	}
	if oc.Offset().Y != 1300 {
		t.Errorf("Expected overscrolled offset 1300, got %v", oc.Offset().Y)
	}

	// Overscroll is capped.
	dragBy(oc, -10000)
	want := oc.maxScroll() + DefaultMaxOverscroll
	if oc.Offset().Y != want {
		t.Errorf("Expected capped offset %v, got %v", want, oc.Offset().Y)
	}
}

func TestDragEndSnapsBack(t *testing.T) {
	oc := newTestOverscroll()
	oc.SetOffset(fyne.NewPos(0, 1200))
	dragBy(oc, -150)

	sawDeceleration := false
	cancel := oc.OnOffsetChanged(func() {
		if oc.Decelerating() {
			sawDeceleration = true
		}
	})
	defer cancel()

	oc.DragEnd()

	if oc.Dragging() {
		t.Error("Dragging should be false after DragEnd")
	}
	if !sawDeceleration {
		t.Error("Listeners should observe a decelerating event on release")
	}
	// Off-canvas the snap-back settles synchronously.
	if oc.Offset().Y != 1200 {
		t.Errorf("Expected offset to settle at 1200, got %v", oc.Offset().Y)
	}
	if oc.Decelerating() {
		t.Error("Decelerating should clear once settled")
	}

	// DragEnd without a preceding drag is a no-op.
	oc.DragEnd()
}

func TestListenerCanRedirectRelease(t *testing.T) {
	oc := newTestOverscroll()
	oc.SetOffset(fyne.NewPos(0, 1200))
	dragBy(oc, -200)

	cancel := oc.OnOffsetChanged(func() {
		if oc.Decelerating() && !oc.Dragging() {
			oc.ScrollToTop()
		}
	})
	defer cancel()

	oc.DragEnd()

	if oc.Offset().Y != 0 {
		t.Errorf("Expected the release to land at the top, got %v", oc.Offset().Y)
	}
}

func TestScrollToTopHonorsTopInset(t *testing.T) {
	oc := newTestOverscroll()
	oc.SetInsets(Insets{Top: 20})
	oc.SetOffset(fyne.NewPos(0, 600))

	oc.ScrollToTop()

	if oc.Offset().Y != -20 {
		t.Errorf("Expected offset -20 after reset with top inset, got %v", oc.Offset().Y)
	}
}

func TestOffsetListenersAndCancel(t *testing.T) {
	oc := newTestOverscroll()

	calls := 0
	cancel := oc.OnOffsetChanged(func() { calls++ })

	oc.SetOffset(fyne.NewPos(0, 100))
	if calls != 1 {
		t.Errorf("Expected 1 notification, got %d", calls)
	}

	// Unchanged offset does not notify.
	oc.SetOffset(fyne.NewPos(0, 100))
	if calls != 1 {
		t.Errorf("Unchanged offset should not notify, got %d", calls)
	}

	cancel()
	oc.SetOffset(fyne.NewPos(0, 200))
	if calls != 1 {
		t.Errorf("Cancelled listener must not run, got %d", calls)
	}
}

func TestOverlayAttachDetach(t *testing.T) {
	oc := newTestOverscroll()

	overlay := canvas.NewRectangle(nil)
	base := len(oc.surface.Objects)

	oc.AttachOverlay(overlay)
	if len(oc.surface.Objects) != base+1 {
		t.Error("AttachOverlay should add the object to the surface")
	}

	oc.DetachOverlay(overlay)
	if len(oc.surface.Objects) != base {
		t.Error("DetachOverlay should remove the object from the surface")
	}
}

func TestZoomingAlwaysFalse(t *testing.T) {
	oc := newTestOverscroll()
	if oc.Zooming() {
		t.Error("OverscrollContainer has no zoom concept")
	}
}

func TestSlingshotOnOverscrollContainer(t *testing.T) {
	oc := newTestOverscroll()

	s := Enable(oc)
	defer s.Disable()
	s.SetHeightRatio(1)

	// Drag 200 points past the natural bottom and release.
	oc.SetOffset(fyne.NewPos(0, 1200))
	dragBy(oc, -200)

	if !s.engaged {
		t.Fatal("Expected engagement 200 points past bottom")
	}

	oc.DragEnd()

	if oc.Offset().Y != 0 {
		t.Errorf("Release while engaged should land at the top, got %v", oc.Offset().Y)
	}
	if s.engaged {
		t.Error("engaged should be false after the reset")
	}
}
