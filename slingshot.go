package slingshot

import (
	"image/color"

	"fyne.io/fyne/v2"
	"github.com/google/uuid"
)

// machineState identifies the phase of the gesture state machine.
// String() returns human-friendly names for diagnostics.
type machineState int

const (
	stateIdle machineState = iota
	stateDragging
	stateEngaged
	stateReleasing
)

// String returns a readable label for the state.
func (ms machineState) String() string {
	switch ms {
	case stateIdle:
		return "idle"
	case stateDragging:
		return "dragging"
	case stateEngaged:
		return "engaged"
	case stateReleasing:
		return "releasing"
	default:
		return "unknown"
	}
}

// sessions maps each observed container to its active session. Access is
// confined to the event goroutine, like every other mutation here.
var sessions = make(map[Container]*Slingshot)

// Slingshot is one attachment of the behavior to a container. Obtain it
// from Enable; it is torn down by Disable and must not be reused after.
type Slingshot struct {
	id        string
	container Container

	threshold   float32
	heightRatio float32
	tint        color.Color

	localization *Localization

	enabled bool
	engaged bool
	state   machineState

	indicatorView     *indicator
	indicatorAttached bool

	cancelObservation func()
}

// Enable attaches the behavior to c and returns the session handle.
// Enabling an already enabled container returns the existing session
// unchanged. Every enablement after a Disable starts a fresh session.
func Enable(c Container) *Slingshot {
	if c == nil {
		return nil
	}
	if s, ok := sessions[c]; ok {
		return s
	}

	s := &Slingshot{
		id:           uuid.NewString(),
		container:    c,
		threshold:    DefaultThreshold,
		heightRatio:  DefaultHeightRatio,
		localization: NewLocalization(),
		enabled:      true,
		state:        stateIdle,
	}
	s.cancelObservation = c.OnOffsetChanged(s.onOffsetChanged)
	sessions[c] = s
	return s
}

// Disable detaches the behavior from c. Safe to call for containers that
// were never enabled.
func Disable(c Container) {
	if s, ok := sessions[c]; ok {
		s.Disable()
	}
}

// IsEnabled reports whether the behavior is currently attached to c.
func IsEnabled(c Container) bool {
	_, ok := sessions[c]
	return ok
}

// ID returns the stable identifier of this session, useful for host logs.
func (s *Slingshot) ID() string {
	return s.id
}

// IsEnabled reports whether this session is still attached.
func (s *Slingshot) IsEnabled() bool {
	return s.enabled
}

// Disable stops observing, detaches the indicator and discards the session.
// Calling it twice is a no-op on the second call.
func (s *Slingshot) Disable() {
	if !s.enabled {
		return
	}
	s.enabled = false
	if s.cancelObservation != nil {
		s.cancelObservation()
		s.cancelObservation = nil
	}
	s.detachIndicator()
	s.engaged = false
	s.state = stateIdle
	delete(sessions, s.container)
}

// Threshold returns the configured overscroll release distance.
func (s *Slingshot) Threshold() float32 {
	return s.threshold
}

// SetThreshold overrides the release distance for this session. Values at
// or below zero keep the default.
func (s *Slingshot) SetThreshold(threshold float32) {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	s.threshold = threshold
}

// HeightRatio returns the configured content-to-viewport availability ratio.
func (s *Slingshot) HeightRatio() float32 {
	return s.heightRatio
}

// SetHeightRatio overrides the availability ratio for this session. Values
// at or below zero keep the default.
func (s *Slingshot) SetHeightRatio(ratio float32) {
	if ratio <= 0 {
		ratio = DefaultHeightRatio
	}
	s.heightRatio = ratio
}

// SetTintColor sets the indicator arrow and label color. nil restores the
// theme foreground.
func (s *Slingshot) SetTintColor(tint color.Color) {
	s.tint = tint
	if s.indicatorView != nil {
		s.indicatorView.SetTint(tint)
	}
}

// SetLocalization swaps the text source for the indicator strings.
func (s *Slingshot) SetLocalization(localization *Localization) {
	if localization == nil {
		return
	}
	s.localization = localization
	if s.indicatorView != nil {
		s.indicatorView.SetLocalization(localization)
	}
}

// onOffsetChanged is the single observation callback. It runs the state
// machine against a fresh snapshot of the container on every offset event.
func (s *Slingshot) onOffsetChanged() {
	if !s.enabled {
		return
	}

	m := snapshot(s.container)

	// Availability gate comes before any transition.
	if !canSlingshot(m, s.heightRatio) {
		return
	}

	switch {
	case m.Dragging:
		distance := distancePastBottom(m)
		s.engaged = distance > s.threshold

		switch {
		case s.engaged:
			s.state = stateEngaged
		case scrolledPastBottom(m):
			s.state = stateDragging
		default:
			s.state = stateIdle
		}

		if scrolledPastBottom(m) {
			s.attachIndicator(m)
			s.indicatorView.SetState(distance/s.threshold, s.engaged)
		} else {
			s.detachIndicator()
		}

	case m.Decelerating && s.engaged:
		// Release while engaged: hand the offset back to the host and
		// let its animated-scroll primitive do the rest. engaged drops
		// first so notifications during the animation are inert.
		s.state = stateReleasing
		s.engaged = false
		s.detachIndicator()
		s.container.ScrollToTop()
		s.state = stateIdle
	}
}

// attachIndicator lazily builds the indicator, attaches it if needed and
// keeps it positioned just below the content at threshold height.
func (s *Slingshot) attachIndicator(m metrics) {
	if s.indicatorView == nil {
		s.indicatorView = newIndicator(s.tint, s.localization)
	}
	if !s.indicatorAttached {
		s.container.AttachOverlay(s.indicatorView)
		s.indicatorAttached = true
	}
	s.indicatorView.Move(fyne.NewPos(0, m.Content.Height))
	s.indicatorView.Resize(fyne.NewSize(m.Viewport.Width, s.threshold))
}

// detachIndicator removes the indicator from the host. No-op when it is
// not attached.
func (s *Slingshot) detachIndicator() {
	if !s.indicatorAttached {
		return
	}
	s.container.DetachOverlay(s.indicatorView)
	s.indicatorAttached = false
}
