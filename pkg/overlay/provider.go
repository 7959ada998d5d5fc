package overlay

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/overlay/pkg/overlay/mouse"
)

// FrameMsg is one animation clock tick. The Provider schedules these itself
// while any dialog is animating; a test harness can deliver them directly
// with synthetic times.
type FrameMsg struct {
	At time.Time
}

// CancelMsg is delivered to the wrapped model right after the Provider has
// invoked a dialog's cancel handler for a consumed Esc or backdrop click.
// Apps that flip a flag in the handler and push visibility during Update see
// the flag change take effect on this same pass instead of waiting for the
// next unrelated message.
type CancelMsg struct {
	ID Identity
}

const defaultFPS = 60

// Provider wraps an application model and renders every registered dialog
// over its view. Mount one near the root of the program and hand it to
// tea.NewProgram; obtain dialogs with Attach.
type Provider struct {
	child tea.Model
	reg   *Registry

	engines   map[Identity]*Transition
	engineSeq map[Identity]uint64
	measured  map[Identity]Layout

	hits  *mouse.Handler
	clock func() time.Time
	fps   int

	width   int
	height  int
	ticking bool
}

// ProviderOption tunes a Provider at construction time.
type ProviderOption func(*Provider)

// WithFPS sets the frame rate of the animation clock.
func WithFPS(fps int) ProviderOption {
	return func(p *Provider) {
		if fps > 0 {
			p.fps = fps
		}
	}
}

// WithClock replaces the wall clock. Tests use this together with direct
// FrameMsg delivery to run transitions on synthetic time.
func WithClock(now func() time.Time) ProviderOption {
	return func(p *Provider) {
		if now != nil {
			p.clock = now
		}
	}
}

// New returns a Provider wrapping child.
func New(child tea.Model, opts ...ProviderOption) *Provider {
	p := &Provider{
		child:     child,
		reg:       NewRegistry(),
		engines:   make(map[Identity]*Transition),
		engineSeq: make(map[Identity]uint64),
		measured:  make(map[Identity]Layout),
		hits:      mouse.NewHandler(),
		clock:     time.Now,
		fps:       defaultFPS,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Registry exposes the dialog table. Most callers go through Modal handles
// instead; the registry is the escape hatch for app wiring such as custom
// back-navigation sources.
func (p *Provider) Registry() *Registry { return p.reg }

func (p *Provider) Init() tea.Cmd { return p.child.Init() }

func (p *Provider) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width, p.height = msg.Width, msg.Height

	case FrameMsg:
		return p, p.frame(msg.At)

	case tea.KeyMsg:
		// Esc is the back-navigation source: consumed iff the current
		// dialog has a cancel handler, otherwise the child sees it.
		if msg.String() == "esc" {
			if id, ok := p.cancelCurrent(); ok {
				return p, p.afterCancel(id)
			}
		}

	case tea.MouseMsg:
		if cmd, handled := p.routeMouse(msg); handled {
			return p, cmd
		}
	}

	child, cmd := p.child.Update(msg)
	p.child = child
	return p, tea.Batch(cmd, p.sync())
}

// cancelCurrent invokes the visible dialog's cancel handler. The second
// return value reports whether the event was consumed.
func (p *Provider) cancelCurrent() (Identity, bool) {
	cur, ok := p.reg.Current()
	if !ok {
		return "", false
	}
	cfg := p.reg.Config(cur)
	if cfg.OnCancel == nil {
		return "", false
	}
	cfg.OnCancel()
	return cur, true
}

// afterCancel runs the wrapped model's update pass with a CancelMsg so a
// declarative app pushes the handler's flag change immediately, then
// re-syncs the engines against the new visibility state.
func (p *Provider) afterCancel(id Identity) tea.Cmd {
	child, cmd := p.child.Update(CancelMsg{ID: id})
	p.child = child
	return tea.Batch(cmd, p.sync())
}

const (
	backdropRegionPrefix = "overlay.backdrop/"
	dialogRegionPrefix   = "overlay.dialog/"
)

// routeMouse resolves pointer events against the regions registered during
// the last View pass. While a dialog is visible every pointer action over
// its regions stays with it: a backdrop click invokes the cancel handler,
// and everything else is swallowed so content under the dialog cannot
// scroll, hover or react. With no region hit the event falls through to the
// child.
func (p *Provider) routeMouse(msg tea.MouseMsg) (tea.Cmd, bool) {
	act := p.hits.HandleMouse(msg)
	if act.Region == nil || act.Type == mouse.ActionNone {
		return nil, false
	}
	switch {
	case strings.HasPrefix(act.Region.ID, dialogRegionPrefix):
		return nil, true
	case strings.HasPrefix(act.Region.ID, backdropRegionPrefix):
		if act.Type != mouse.ActionClick {
			return nil, true
		}
		id, _ := act.Region.Data.(Identity)
		if cfg := p.reg.Config(id); cfg.OnCancel != nil {
			cfg.OnCancel()
			return p.afterCancel(id), true
		}
		return p.sync(), true
	}
	return nil, false
}

// sync pushes every dialog's visibility flag into its engine and starts the
// frame clock when a run is in flight. Signal changes made outside a frame
// are only ever observed here or at the next frame boundary, never mid-tick.
func (p *Provider) sync() tea.Cmd {
	now := p.clock()
	p.applySignals(now)
	p.prune()
	if !p.anyAnimating() {
		return nil
	}
	if p.ticking {
		return nil
	}
	p.ticking = true
	return p.tickCmd()
}

// frame advances one animation tick. Evaluation order within the tick is
// fixed: signal-change detection, run progression, completion callbacks.
func (p *Provider) frame(at time.Time) tea.Cmd {
	p.applySignals(at)

	type completion struct {
		id Identity
		ev Event
	}
	var done []completion
	for _, id := range p.reg.Order() {
		if ev := p.engine(id).Advance(at); ev != EventNone {
			done = append(done, completion{id, ev})
		}
	}

	for _, c := range done {
		cfg := p.reg.Config(c.id)
		switch c.ev {
		case EventShowComplete:
			if cfg.OnShowComplete != nil {
				cfg.OnShowComplete()
			}
		case EventHideComplete:
			if cfg.OnHideComplete != nil {
				cfg.OnHideComplete()
			}
		}
	}

	// Callbacks may have retargeted dialogs; fold that in before deciding
	// whether the clock keeps running.
	p.applySignals(at)
	p.prune()

	if p.anyAnimating() {
		p.ticking = true
		return p.tickCmd()
	}
	p.ticking = false
	return nil
}

func (p *Provider) applySignals(now time.Time) {
	for _, id := range p.reg.Order() {
		sig := SignalEnd
		if p.reg.Visible(id) {
			sig = SignalBegan
		}
		p.engine(id).SetSignal(sig, now)
	}
}

// engine returns the transition for id, creating it from the dialog's
// motion configuration on first use. A settled engine whose configuration
// was replaced since is rebuilt with the new motion tuning, carrying its
// resting position over; a run in flight keeps its old tuning until it
// settles.
func (p *Provider) engine(id Identity) *Transition {
	seq := p.reg.configSeq(id)
	if eng, ok := p.engines[id]; ok {
		if p.engineSeq[id] == seq || eng.Animating() {
			return eng
		}
		reb := p.newEngine(id)
		reb.progress = eng.progress
		reb.state = eng.state
		reb.signal = eng.signal
		reb.finished = eng.finished
		p.engines[id] = reb
		p.engineSeq[id] = seq
		return reb
	}
	eng := p.newEngine(id)
	p.engines[id] = eng
	p.engineSeq[id] = seq
	return eng
}

func (p *Provider) newEngine(id Identity) *Transition {
	cfg := p.reg.Config(id)
	opts := []TransitionOption{
		WithTransitionDuration(cfg.Duration),
		WithTransitionEasing(cfg.Easing),
	}
	if cfg.SpringFreq > 0 {
		opts = append(opts, WithTransitionSpring(cfg.SpringFreq, cfg.SpringDamping, p.fps))
	}
	return NewTransition(opts...)
}

// prune drops engine and measurement state for detached dialogs.
func (p *Provider) prune() {
	for id := range p.engines {
		if _, ok := p.reg.entries[id]; !ok {
			delete(p.engines, id)
			delete(p.engineSeq, id)
			delete(p.measured, id)
		}
	}
}

func (p *Provider) anyAnimating() bool {
	for _, eng := range p.engines {
		if eng.Animating() {
			return true
		}
	}
	return false
}

func (p *Provider) tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(p.fps), func(t time.Time) tea.Msg {
		return FrameMsg{At: t}
	})
}

func (p *Provider) View() string {
	out := p.child.View()
	p.hits.Clear()

	for _, id := range p.reg.Order() {
		content, ok := p.reg.Content(id)
		if !ok {
			continue
		}
		eng, ok := p.engines[id]
		if !ok {
			continue
		}
		if eng.State() == StateHidden && !eng.Animating() {
			continue
		}

		cfg := p.reg.Config(id)
		profile := cfg.Profile
		if profile == nil {
			profile = DefaultProfile
		}

		// Hints carry last frame's measured box size so profiles can do
		// size-aware motion.
		hints := cfg.Hints
		if m, ok := p.measured[id]; ok {
			hints.Width, hints.Height = m.Width, m.Height
		}

		st := profile(eng.Signal(), eng.Progress(), hints).Clamped()
		if st.Opacity <= 0 && st.Scale <= 0 {
			continue
		}

		box := renderBox(content, cfg, st.Opacity, p.width)
		p.measured[id] = Layout{Width: lipgloss.Width(box), Height: lipgloss.Height(box)}

		box = scaleBox(box, st.Scale)
		bw, bh := lipgloss.Width(box), lipgloss.Height(box)
		x, y := boxOrigin(p.width, p.height, bw, bh, st, cfg.Hints)
		out = overlayAt(out, box, x, y, p.height)

		// Only a dialog whose flag is up intercepts input. One animating
		// out is visible but inert.
		if p.reg.Visible(id) {
			p.hits.HitMap.AddRect(backdropRegionPrefix+string(id), 0, 0, p.width, p.height, id)
			p.hits.HitMap.AddRect(dialogRegionPrefix+string(id), x, y, bw, bh, id)
		}
	}
	return out
}
