package slingshot

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// indicator is the overlay shown below the content while the user drags
// past the bottom edge. It renders an arrow glyph above a short hint label.
// Opacity follows the overscroll distance; the arrow flips and the label
// switches to the "release" variant once the threshold is crossed.
//
// The widget holds no gesture state of its own: the session pushes every
// visual change through SetState.
type indicator struct {
	widget.BaseWidget

	arrowDown *canvas.Image
	arrowUp   *canvas.Image
	label     *canvas.Text

	localization *Localization
	tint         color.Color

	engaged  bool
	progress float32 // 0..1 overall opacity
	flip     float32 // 0 = arrow down, 1 = arrow up

	flipAnim *fyne.Animation
}

// newIndicator creates the indicator with the pull variant showing and
// everything fully transparent.
func newIndicator(tint color.Color, localization *Localization) *indicator {
	if tint == nil {
		tint = theme.Color(theme.ColorNameForeground)
	}
	if localization == nil {
		localization = NewLocalization()
	}

	in := &indicator{
		arrowDown:    canvas.NewImageFromResource(theme.MoveDownIcon()),
		arrowUp:      canvas.NewImageFromResource(theme.MoveUpIcon()),
		label:        canvas.NewText(localization.GetText(KeyPullToTop), tint),
		localization: localization,
		tint:         tint,
	}

	in.arrowDown.FillMode = canvas.ImageFillContain
	in.arrowUp.FillMode = canvas.ImageFillContain
	in.label.TextSize = IndicatorTextSize
	in.label.Alignment = fyne.TextAlignCenter

	in.ExtendBaseWidget(in)
	in.applyPaint()
	return in
}

// SetState applies the visual state for the current overscroll. progress is
// the clamped distance/threshold ratio and doubles as overall opacity.
func (in *indicator) SetState(progress float32, engaged bool) {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	in.progress = progress

	if engaged != in.engaged {
		in.engaged = engaged
		in.updateLabelText()
		in.startFlip()
	}

	in.applyPaint()
	in.Refresh()
}

// SetTint changes the arrow and label color.
func (in *indicator) SetTint(tint color.Color) {
	if tint == nil {
		tint = theme.Color(theme.ColorNameForeground)
	}
	in.tint = tint
	in.applyPaint()
	in.Refresh()
}

// SetLocalization swaps the text source and re-renders the label.
func (in *indicator) SetLocalization(localization *Localization) {
	if localization == nil {
		return
	}
	in.localization = localization
	in.updateLabelText()
	in.Refresh()
}

// updateLabelText picks the label variant for the current engagement.
func (in *indicator) updateLabelText() {
	key := KeyPullToTop
	if in.engaged {
		key = KeyReleaseToTop
	}
	in.label.Text = in.localization.GetText(key)
}

// startFlip animates the arrow cross-fade toward the current engagement.
func (in *indicator) startFlip() {
	if in.flipAnim != nil {
		in.flipAnim.Stop()
		in.flipAnim = nil
	}

	from := in.flip
	to := float32(0)
	if in.engaged {
		to = 1
	}
	if from == to {
		return
	}

	// Off-canvas there is no animation driver; jump straight to the end
	// state.
	if !canAnimate(in) {
		in.flip = to
		in.applyPaint()
		return
	}

	anim := fyne.NewAnimation(IndicatorFlipDuration, func(f float32) {
		in.flip = from + (to-from)*f
		in.applyPaint()
		in.Refresh()
	})
	anim.Curve = fyne.AnimationEaseInOut
	in.flipAnim = anim
	anim.Start()
}

// applyPaint writes opacity and color onto the canvas objects. The two
// arrows cross-fade through flip; the label follows the overall opacity.
func (in *indicator) applyPaint() {
	in.arrowDown.Translucency = float64(1 - in.progress*(1-in.flip))
	in.arrowUp.Translucency = float64(1 - in.progress*in.flip)
	in.label.Color = withAlpha(in.tint, in.progress)
}

// CreateRenderer creates the widget renderer
func (in *indicator) CreateRenderer() fyne.WidgetRenderer {
	return &indicatorRenderer{indicator: in}
}

// indicatorRenderer lays the arrow out centered above the label.
type indicatorRenderer struct {
	indicator *indicator
}

// Layout arranges the components
func (r *indicatorRenderer) Layout(size fyne.Size) {
	in := r.indicator

	arrowSize := fyne.NewSize(IndicatorArrowSize, IndicatorArrowSize)
	arrowPos := fyne.NewPos((size.Width-arrowSize.Width)/2, IndicatorPadding)
	in.arrowDown.Resize(arrowSize)
	in.arrowDown.Move(arrowPos)
	in.arrowUp.Resize(arrowSize)
	in.arrowUp.Move(arrowPos)

	labelHeight := in.label.MinSize().Height
	in.label.Resize(fyne.NewSize(size.Width, labelHeight))
	in.label.Move(fyne.NewPos(0, arrowPos.Y+arrowSize.Height+IndicatorPadding))
}

// MinSize returns the minimum size
func (r *indicatorRenderer) MinSize() fyne.Size {
	labelMin := r.indicator.label.MinSize()
	width := labelMin.Width
	if width < IndicatorArrowSize {
		width = IndicatorArrowSize
	}
	height := IndicatorPadding + IndicatorArrowSize + IndicatorPadding + labelMin.Height
	return fyne.NewSize(width, height)
}

// Refresh refreshes the renderer
func (r *indicatorRenderer) Refresh() {
	canvas.Refresh(r.indicator.arrowDown)
	canvas.Refresh(r.indicator.arrowUp)
	canvas.Refresh(r.indicator.label)
}

// Objects returns the rendered objects
func (r *indicatorRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.indicator.arrowDown, r.indicator.arrowUp, r.indicator.label}
}

// Destroy cleans up renderer resources
func (r *indicatorRenderer) Destroy() {
	if r.indicator.flipAnim != nil {
		r.indicator.flipAnim.Stop()
		r.indicator.flipAnim = nil
	}
}

// withAlpha scales the alpha channel of c by a (0..1).
func withAlpha(c color.Color, a float32) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float32(n.A) * a)
	return n
}
