package overlay

// Modal is the declaration handle for one dialog. It holds only its own
// identity and talks to the Provider's registry through the registry's
// operations; it never sees another dialog's state.
//
// The lifecycle is attach → push content and visibility on every render →
// detach. Detach is idempotent and must run when the owning component
// unmounts, so a dead dialog can never stay registered or visible.
type Modal struct {
	id       Identity
	reg      *Registry
	detached bool
}

// Attach allocates an identity, registers the dialog's configuration with
// the Provider and returns its handle.
//
// A nil Provider is the one fatal usage error in the package: it panics
// immediately rather than degrading, so the mistake surfaces at development
// time instead of producing a dialog that silently never renders.
func Attach(p *Provider, opts ...Option) *Modal {
	if p == nil {
		panic("overlay: Modal attached without a Provider")
	}
	m := &Modal{id: NewIdentity(), reg: p.reg}
	m.reg.SetConfig(m.id, buildConfig(opts))
	return m
}

// ID returns the dialog's identity.
func (m *Modal) ID() Identity { return m.id }

// SetContent installs the rendered payload. Callers push fresh content on
// every update pass; the registry stores only the latest.
func (m *Modal) SetContent(view string) {
	if m.detached {
		return
	}
	m.reg.SetContent(m.id, view)
}

// SetVisible drives the dialog toward shown or hidden. Opening a dialog
// while another is visible triggers that dialog's auto-close handling; see
// Registry.SetVisible.
func (m *Modal) SetVisible(visible bool) {
	if m.detached {
		return
	}
	m.reg.SetVisible(m.id, visible)
}

// Visible reports the dialog's visibility flag.
func (m *Modal) Visible() bool {
	if m.detached {
		return false
	}
	return m.reg.Visible(m.id)
}

// Configure replaces the dialog's configuration wholesale, starting from
// the defaults. Options from earlier calls do not carry over.
func (m *Modal) Configure(opts ...Option) {
	if m.detached {
		return
	}
	m.reg.SetConfig(m.id, buildConfig(opts))
}

// Detach removes the dialog from the registry, clearing its content and
// resetting visibility. Further calls on the handle are no-ops.
func (m *Modal) Detach() {
	if m.detached {
		return
	}
	m.detached = true
	m.reg.Remove(m.id)
}
