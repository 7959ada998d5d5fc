package overlay

import "time"

// Config is the per-dialog configuration record. SetConfig replaces it
// wholesale; the registry never merges fields across calls.
type Config struct {
	// Title renders bold in the accent color above the content. Empty
	// means no title row.
	Title string

	// OnCancel runs when the dialog should close due to outside action:
	// Esc, a backdrop click, or another dialog opening while this one is
	// visible. Nil disables all three paths.
	OnCancel func()

	// AutoClose opts this dialog into the one-dialog convention: while it
	// is visible, opening another dialog invokes OnCancel first.
	AutoClose bool

	// Profile maps engine progress to a visual style. Nil means
	// DefaultProfile.
	Profile TransitionProfile

	OnShowComplete func()
	OnHideComplete func()

	// Hints seeds the layout passed to Profile. The Provider overwrites
	// Width and Height with measured values each frame.
	Hints Layout

	Variant Variant

	// Motion tuning. Duration/Easing drive eased runs; SpringFreq > 0
	// switches the dialog to spring motion instead.
	Duration      time.Duration
	Easing        Easing
	SpringFreq    float64
	SpringDamping float64
}

// DefaultConfig returns the configuration used for dialogs that never set
// one. Auto-close participation defaults to on.
func DefaultConfig() Config {
	return Config{
		AutoClose: true,
		Profile:   DefaultProfile,
		Duration:  DefaultDuration(),
		Easing:    EaseInOutCubic,
	}
}

// Option configures one dialog at attach or reconfigure time.
type Option func(*Config)

func WithTitle(title string) Option {
	return func(c *Config) { c.Title = title }
}

func WithOnCancel(f func()) Option {
	return func(c *Config) { c.OnCancel = f }
}

// WithAutoClose controls participation in the auto-close convention.
func WithAutoClose(on bool) Option {
	return func(c *Config) { c.AutoClose = on }
}

func WithProfile(p TransitionProfile) Option {
	return func(c *Config) {
		if p != nil {
			c.Profile = p
		}
	}
}

func WithOnShowComplete(f func()) Option {
	return func(c *Config) { c.OnShowComplete = f }
}

func WithOnHideComplete(f func()) Option {
	return func(c *Config) { c.OnHideComplete = f }
}

func WithHints(l Layout) Option {
	return func(c *Config) { c.Hints = l }
}

func WithVariant(v Variant) Option {
	return func(c *Config) { c.Variant = v }
}

func WithDuration(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.Duration = d
		}
	}
}

func WithEasing(e Easing) Option {
	return func(c *Config) {
		if e != nil {
			c.Easing = e
		}
	}
}

// WithSpringMotion animates progress with a damped spring instead of a
// fixed-duration easing.
func WithSpringMotion(frequency, damping float64) Option {
	return func(c *Config) {
		c.SpringFreq = frequency
		c.SpringDamping = damping
	}
}

func buildConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
