package overlay

import "testing"

func TestRegistryAutoClose(t *testing.T) {
	tests := []struct {
		name        string
		autoClose   bool
		wantCancels int
	}{
		{"auto-close on", true, 1},
		{"auto-close off", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()
			a, b := NewIdentity(), NewIdentity()

			cancels := 0
			cfg := DefaultConfig()
			cfg.AutoClose = tt.autoClose
			cfg.OnCancel = func() { cancels++ }
			reg.SetConfig(a, cfg)
			reg.SetVisible(a, true)

			reg.SetVisible(b, true)
			if cancels != tt.wantCancels {
				t.Errorf("cancel invocations = %d, want %d", cancels, tt.wantCancels)
			}
			if !reg.Visible(b) {
				t.Error("B should be visible regardless of A's handler")
			}
		})
	}
}

func TestRegistryAutoCloseSkipsSelf(t *testing.T) {
	reg := NewRegistry()
	a := NewIdentity()

	cancels := 0
	cfg := DefaultConfig()
	cfg.OnCancel = func() { cancels++ }
	reg.SetConfig(a, cfg)

	reg.SetVisible(a, true)
	reg.SetVisible(a, true)
	if cancels != 0 {
		t.Errorf("re-opening the same dialog invoked its own cancel %d times", cancels)
	}
}

func TestRegistryAutoCloseWithoutHandler(t *testing.T) {
	reg := NewRegistry()
	a, b := NewIdentity(), NewIdentity()

	// A is visible with auto-close but no handler; opening B must not panic.
	reg.SetVisible(a, true)
	reg.SetVisible(b, true)
	if !reg.Visible(b) {
		t.Error("B should be visible")
	}
}

func TestRegistryCurrentAttachOrder(t *testing.T) {
	reg := NewRegistry()
	a, b, c := NewIdentity(), NewIdentity(), NewIdentity()
	reg.SetContent(a, "a")
	reg.SetContent(b, "b")
	reg.SetContent(c, "c")

	if _, ok := reg.Current(); ok {
		t.Error("empty registry reported a current dialog")
	}

	// Break the single-visible convention deliberately: Current must still
	// answer deterministically with the first in attach order.
	reg.get(b).visible = true
	reg.get(c).visible = true
	cur, ok := reg.Current()
	if !ok || cur != b {
		t.Errorf("Current() = %v, %v; want %v", cur, ok, b)
	}

	reg.Remove(b)
	cur, ok = reg.Current()
	if !ok || cur != c {
		t.Errorf("Current() after remove = %v, %v; want %v", cur, ok, c)
	}
}

func TestRegistryPermissiveUnknownID(t *testing.T) {
	reg := NewRegistry()
	ghost := NewIdentity()

	// None of these may panic or error; operations on unknown identities
	// implicitly create the entry.
	reg.SetVisible(ghost, true)
	reg.SetContent(ghost, "boo")
	reg.ClearContent(ghost)
	reg.Remove(NewIdentity())

	if !reg.Visible(ghost) {
		t.Error("implicit entry lost its visibility")
	}
	if reg.Len() != 1 {
		t.Errorf("Len() = %d, want 1", reg.Len())
	}
}

func TestRegistryConfigReplaceIsWholesale(t *testing.T) {
	reg := NewRegistry()
	id := NewIdentity()

	first := DefaultConfig()
	first.OnCancel = func() {}
	first.Variant = VariantDanger
	reg.SetConfig(id, first)

	second := DefaultConfig()
	second.Variant = VariantInfo
	reg.SetConfig(id, second)

	got := reg.Config(id)
	if got.Variant != VariantInfo {
		t.Errorf("Variant = %v, want VariantInfo", got.Variant)
	}
	if got.OnCancel != nil {
		t.Error("OnCancel survived a wholesale config replacement")
	}
}

func TestRegistryConfigDefaultsWhenUnset(t *testing.T) {
	reg := NewRegistry()
	id := NewIdentity()
	reg.SetContent(id, "x")

	cfg := reg.Config(id)
	if !cfg.AutoClose {
		t.Error("default config should opt into auto-close")
	}
	if cfg.Profile == nil {
		t.Error("default config should carry a profile")
	}
	if cfg.Duration <= 0 {
		t.Error("default config should carry a duration")
	}
}

func TestRegistryRemoveResetsEverything(t *testing.T) {
	reg := NewRegistry()
	id := NewIdentity()
	reg.SetContent(id, "body")
	reg.SetVisible(id, true)

	reg.Remove(id)

	if reg.Visible(id) {
		t.Error("removed dialog still visible")
	}
	if _, ok := reg.Content(id); ok {
		t.Error("removed dialog still has content")
	}
	if reg.Len() != 0 {
		t.Errorf("Len() = %d, want 0", reg.Len())
	}
}
