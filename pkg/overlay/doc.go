// Package overlay provides a declarative modal overlay manager for Bubble
// Tea programs.
//
// A single Provider wraps the application model, owns the dialog registry,
// and composites every registered dialog over the wrapped view. Dialogs are
// declared with Attach and controlled through a boolean visibility flag;
// the Provider animates their appearance and disappearance and enforces a
// one-dialog-priority policy (opening a dialog can auto-close the one that
// is currently visible).
//
// # Quick Start
//
//	app := myModel{}
//	prov := overlay.New(app)
//
//	confirm := overlay.Attach(prov,
//	    overlay.WithVariant(overlay.VariantDanger),
//	    overlay.WithOnCancel(func() { confirmOpen = false }),
//	    overlay.WithOnShowComplete(func() { /* focus first button */ }),
//	)
//
//	// In Update(), on every visibility change:
//	confirm.SetContent("Delete this item?\n\n[enter] delete  [esc] cancel")
//	confirm.SetVisible(confirmOpen)
//
//	p := tea.NewProgram(prov, tea.WithAltScreen(), tea.WithMouseCellMotion())
//
// The Provider drives a frame tick while any dialog is animating, routes Esc
// and backdrop clicks to the visible dialog's cancel handler, and forwards
// every other message to the wrapped model. A consumed cancel event is
// followed by a CancelMsg to the wrapped model, so the visibility push in
// Update above observes the handler's flag change on the same pass.
//
// # Options
//
//   - WithTitle(s) - accent-colored title row above the content
//   - WithOnCancel(f) - handler for Esc, backdrop clicks and auto-close
//   - WithAutoClose(b) - participate in the auto-close convention (default true)
//   - WithProfile(p) - replace the transition profile (fade/scale by default)
//   - WithDuration(d), WithEasing(e) - tune the show/hide timing
//   - WithSpringMotion(freq, damping) - physically animated progress
//   - WithOnShowComplete(f), WithOnHideComplete(f) - settle notifications
//   - WithHints(l) - sizing/offset hints passed through to the profile
//   - WithVariant(v) - visual style (Default, Danger, Warning, Info)
//
// Attaching a dialog without a Provider is a programming error and panics
// immediately; every other operation is total and never fails.
package overlay
