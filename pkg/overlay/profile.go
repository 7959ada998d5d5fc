package overlay

// Layout carries sizing and offset hints for one dialog. Width and Height
// are measured from the rendered box by the Provider on every frame, so a
// profile can do size-aware motion such as sliding in from an edge. The
// offsets are caller hints, opaque to the core: OffsetY is also the hook
// for keyboard-style avoidance (shift the box up while an input row is
// consuming the bottom of the screen).
type Layout struct {
	Width   int
	Height  int
	OffsetX int
	OffsetY int

	// MaxWidth caps the dialog box width in cells. Zero means the
	// Provider's responsive default.
	MaxWidth int
}

// Style is the visual descriptor a TransitionProfile produces for one
// frame. Opacity blends the dialog's colors toward the backdrop, Scale
// clips the box toward its center, and the offsets displace it from its
// anchored position.
type Style struct {
	Opacity float64
	Scale   float64
	OffsetX int
	OffsetY int
}

// Clamped returns the style with opacity forced into [0,1] and scale into
// (0,1]. Profiles may legitimately emit overshoot while a spring rings or
// an easing curve anticipates; the renderer only consumes the clamped form.
func (s Style) Clamped() Style {
	s.Opacity = clamp01(s.Opacity)
	if s.Scale > 1 {
		s.Scale = 1
	}
	if s.Scale < 0 {
		s.Scale = 0
	}
	return s
}

// TransitionProfile maps the discrete signal, the engine progress and the
// dialog's layout hints to a Style. Profiles must be pure: they are invoked
// once per frame per dialog.
type TransitionProfile func(sig Signal, progress float64, hints Layout) Style

// scaleFloor is the scale a dialog pops in from under the default profile.
const scaleFloor = 0.85

// DefaultProfile fades and scales the dialog in. Opacity ramps over the
// front 40% of progress so the box reads as present well before it settles,
// masking frame jank on slow terminals; scale grows from an undershoot
// toward 1 over the whole run.
func DefaultProfile(sig Signal, progress float64, hints Layout) Style {
	return Style{
		Opacity: clamp01(progress / 0.4),
		Scale:   scaleFloor + (1-scaleFloor)*clamp01(progress),
	}
}

// SlideUpProfile slides the dialog in from the bottom edge, using the
// measured height fed back through the hints. Opacity ramps quickly so the
// box never ghosts over content while far from its resting place.
func SlideUpProfile(sig Signal, progress float64, hints Layout) Style {
	h := hints.Height
	if h <= 0 {
		h = 12
	}
	p := clamp01(progress)
	return Style{
		Opacity: clamp01(progress / 0.25),
		Scale:   1,
		OffsetY: int(float64(h) * (1 - p)),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
