package overlay

// Registry is the provider-scoped table of attached dialogs: content,
// configuration and visibility per identity, in attach order.
//
// Every operation is total. Unknown identities are implicitly created
// rather than rejected, since identities are generated internally and are
// always valid by construction. The registry permits multiple identities to
// be visible at once; Current returns the first in attach order, and
// keeping at most one dialog visible is a caller convention the auto-close
// rule supports but does not enforce.
//
// All mutation happens on the program's update goroutine, so the registry
// carries no lock.
type Registry struct {
	order   []Identity
	entries map[Identity]*entry
}

type entry struct {
	content    string
	hasContent bool
	cfg        Config
	hasCfg     bool
	cfgSeq     uint64
	visible    bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[Identity]*entry)}
}

func (r *Registry) get(id Identity) *entry {
	e, ok := r.entries[id]
	if !ok {
		e = &entry{}
		r.entries[id] = e
		r.order = append(r.order, id)
	}
	return e
}

// SetContent installs the renderable payload for id. The payload is opaque
// to the registry; it is stored and forwarded to the renderer as-is.
func (r *Registry) SetContent(id Identity, view string) {
	e := r.get(id)
	e.content = view
	e.hasContent = true
}

// ClearContent marks id's payload absent without removing the entry.
func (r *Registry) ClearContent(id Identity) {
	e := r.get(id)
	e.content = ""
	e.hasContent = false
}

// Content returns id's payload and whether one is installed.
func (r *Registry) Content(id Identity) (string, bool) {
	e, ok := r.entries[id]
	if !ok {
		return "", false
	}
	return e.content, e.hasContent
}

// SetConfig replaces id's configuration wholesale. The latest call wins
// entirely; fields from earlier calls do not survive.
func (r *Registry) SetConfig(id Identity, cfg Config) {
	e := r.get(id)
	e.cfg = cfg
	e.hasCfg = true
	e.cfgSeq++
}

// Config returns id's configuration, or the defaults when none was set.
func (r *Registry) Config(id Identity) Config {
	if e, ok := r.entries[id]; ok && e.hasCfg {
		return e.cfg
	}
	return DefaultConfig()
}

// configSeq counts configuration replacements for id, so the Provider can
// tell a reconfigured dialog from one whose config it has already consumed.
func (r *Registry) configSeq(id Identity) uint64 {
	if e, ok := r.entries[id]; ok {
		return e.cfgSeq
	}
	return 0
}

// SetVisible is the coordination point. Making a dialog visible first looks
// up the currently visible dialog and, when that dialog opted into
// auto-close and has a cancel handler, invokes the handler before applying
// the new state. The call is synchronous best-effort courtesy: whatever the
// handler does, the new dialog still becomes visible.
func (r *Registry) SetVisible(id Identity, visible bool) {
	if visible {
		if cur, ok := r.Current(); ok && cur != id {
			cfg := r.Config(cur)
			if cfg.AutoClose && cfg.OnCancel != nil {
				cfg.OnCancel()
			}
		}
	}
	r.get(id).visible = visible
}

// Visible reports id's visibility flag.
func (r *Registry) Visible(id Identity) bool {
	e, ok := r.entries[id]
	return ok && e.visible
}

// Current returns the first visible identity in attach order. With the
// single-visible convention honored this is the one open dialog; with it
// broken the result is deterministic but carries no further meaning.
func (r *Registry) Current() (Identity, bool) {
	for _, id := range r.order {
		if r.entries[id].visible {
			return id, true
		}
	}
	return "", false
}

// Remove deletes id entirely: content, configuration and visibility. Called
// on detach so an unmounted dialog can never linger visible.
func (r *Registry) Remove(id Identity) {
	if _, ok := r.entries[id]; !ok {
		return
	}
	delete(r.entries, id)
	for i, other := range r.order {
		if other == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Order returns the identities in attach order. The slice is shared; do
// not mutate.
func (r *Registry) Order() []Identity {
	return r.order
}

// Len reports the number of registered identities.
func (r *Registry) Len() int { return len(r.order) }
