package overlay

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/muesli/termenv"
)

// Signal is the discrete input driving a Transition: SignalBegan targets
// fully shown (progress 1) and SignalEnd targets fully hidden (progress 0).
type Signal int

const (
	SignalEnd Signal = iota
	SignalBegan
)

// State reports where a Transition currently sits.
type State int

const (
	StateHidden State = iota
	StateShowing
	StateShown
	StateHiding
)

// Event is emitted by Advance when a run settles at its target. A run that
// is retargeted before settling emits nothing.
type Event int

const (
	EventNone Event = iota
	EventShowComplete
	EventHideComplete
)

// Easing maps a normalized time fraction in [0,1] to an eased fraction.
type Easing func(t float64) float64

func EaseLinear(t float64) float64 { return t }

func EaseInCubic(t float64) float64 { return t * t * t }

func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// Show/hide durations. Degraded terminals get the shorter run since they
// redraw with less fidelity per frame.
const (
	DurationDefault = 300 * time.Millisecond
	DurationReduced = 240 * time.Millisecond
)

// DefaultDuration picks the transition duration for the current terminal's
// color profile.
func DefaultDuration() time.Duration {
	if termenv.ColorProfile() == termenv.Ascii {
		return DurationReduced
	}
	return DurationDefault
}

// Spring settle thresholds. A spring run is settled once both position and
// velocity are within this distance of rest.
const springRestDelta = 0.001

// Transition converts discrete show/hide signals into a continuously
// animated progress value in [0,1] and reports settling exactly once per
// uninterrupted run.
//
// The engine has no clock of its own: callers pass the current time to
// SetSignal and Advance, so a test harness can drive it with synthetic
// ticks. Retargeting mid-run abandons the run without emitting its event
// and starts the new run from the current progress value, which produces a
// smooth reversal instead of a snap to either extreme.
type Transition struct {
	state    State
	signal   Signal
	progress float64

	duration time.Duration
	easing   Easing

	runFrom   float64
	runTarget float64
	runStart  time.Time
	running   bool
	finished  bool

	useSpring bool
	spring    harmonica.Spring
	springVel float64
}

// TransitionOption tunes a Transition at construction time.
type TransitionOption func(*Transition)

// WithTransitionDuration sets the run duration for eased motion.
func WithTransitionDuration(d time.Duration) TransitionOption {
	return func(t *Transition) {
		if d > 0 {
			t.duration = d
		}
	}
}

// WithTransitionEasing sets the easing curve for eased motion.
func WithTransitionEasing(e Easing) TransitionOption {
	return func(t *Transition) {
		if e != nil {
			t.easing = e
		}
	}
}

// WithTransitionSpring switches the engine to spring motion. Progress may
// overshoot [0,1] while the spring rings; consumers clamp.
func WithTransitionSpring(frequency, damping float64, fps int) TransitionOption {
	return func(t *Transition) {
		if fps <= 0 {
			fps = 60
		}
		t.useSpring = true
		t.spring = harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)
	}
}

// NewTransition returns an engine settled at hidden.
func NewTransition(opts ...TransitionOption) *Transition {
	t := &Transition{
		state:    StateHidden,
		signal:   SignalEnd,
		duration: DefaultDuration(),
		easing:   EaseInOutCubic,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetSignal retargets the engine. A signal matching the current target is a
// no-op: it neither restarts the run nor re-fires a completion. A signal
// reversing an in-flight run abandons it silently and starts a fresh run
// from the current progress.
func (t *Transition) SetSignal(sig Signal, now time.Time) {
	t.signal = sig
	target := 0.0
	if sig == SignalBegan {
		target = 1
	}

	if t.running {
		if t.runTarget == target {
			return
		}
	} else if t.progress == target {
		return
	}

	t.runFrom = t.progress
	t.runTarget = target
	t.runStart = now
	t.running = true
	t.finished = false
	if sig == SignalBegan {
		t.state = StateShowing
	} else {
		t.state = StateHiding
	}
}

// Advance steps the active run to now and returns the completion event, if
// any. Once a run has settled, further calls return EventNone until the
// next SetSignal; the finished flag guards against re-firing on every tick.
func (t *Transition) Advance(now time.Time) Event {
	if !t.running || t.finished {
		return EventNone
	}

	if t.useSpring {
		pos, vel := t.spring.Update(t.progress, t.springVel, t.runTarget)
		t.progress, t.springVel = pos, vel
		if math.Abs(pos-t.runTarget) < springRestDelta && math.Abs(vel) < springRestDelta {
			return t.settle()
		}
		return EventNone
	}

	frac := float64(now.Sub(t.runStart)) / float64(t.duration)
	if frac >= 1 {
		frac = 1
	} else if frac < 0 {
		frac = 0
	}
	t.progress = t.runFrom + (t.runTarget-t.runFrom)*t.easing(frac)
	if frac >= 1 {
		return t.settle()
	}
	return EventNone
}

func (t *Transition) settle() Event {
	t.progress = t.runTarget
	t.springVel = 0
	t.running = false
	t.finished = true
	if t.runTarget == 1 {
		t.state = StateShown
		if t.signal == SignalBegan {
			return EventShowComplete
		}
		return EventNone
	}
	t.state = StateHidden
	if t.signal == SignalEnd {
		return EventHideComplete
	}
	return EventNone
}

// Progress reports the current animation value. Eased runs stay inside
// [0,1]; spring runs may overshoot while ringing.
func (t *Transition) Progress() float64 { return t.progress }

// State reports the engine's position in its show/hide cycle.
func (t *Transition) State() State { return t.state }

// Signal reports the most recent discrete input.
func (t *Transition) Signal() Signal { return t.signal }

// Animating reports whether a run is in flight.
func (t *Transition) Animating() bool { return t.running }
