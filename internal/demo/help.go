package demo

import "github.com/charmbracelet/glamour"

const helpMarkdown = `# overlay demo

Every dialog on this screen is managed by a single overlay Provider.

## Keys

| Key | Action |
|-----|--------|
| d   | open the delete confirmation (danger variant) |
| s   | open the settings form |
| p   | open the command palette (slides in on a spring) |
| ?   | this help |
| esc | cancel whichever dialog is open |
| q   | quit |

## Things to try

- Open settings, then press **p**: the palette auto-closes the form.
- Press **d** and hit esc while the dialog is still fading in: the box
  reverses smoothly from wherever the animation was.
- Click anywhere outside a dialog to dismiss it.
`

// renderHelp renders the help markdown at the current width. The result is
// cached until the window resizes.
func (m *Model) renderHelp() string {
	if m.helpView != "" {
		return m.helpView
	}

	wrap := 46
	if m.width > 0 && m.width-14 < wrap {
		wrap = m.width - 14
	}
	if wrap < 20 {
		wrap = 20
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		m.helpView = helpMarkdown
		return m.helpView
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		m.helpView = helpMarkdown
		return m.helpView
	}
	m.helpView = out
	return m.helpView
}
