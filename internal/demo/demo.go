// Package demo is the showcase application for the overlay library. Each
// dialog exercises a different corner of the API: variants, cancel
// handlers, the auto-close convention, custom transition profiles, spring
// motion and interactive embedded content.
package demo

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/overlay/pkg/overlay"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
)

// Model is the demo application wrapped by the overlay Provider.
type Model struct {
	// ReducedMotion shortens every transition. Set before Setup.
	ReducedMotion bool

	keys   keyMap
	width  int
	height int
	status string

	confirm  *overlay.Modal
	settings *overlay.Modal
	help     *overlay.Modal
	palette  *overlay.Modal

	confirmOpen  bool
	settingsOpen bool
	helpOpen     bool
	paletteOpen  bool

	form       *huh.Form
	theme      string
	autosave   bool
	helpView   string
	paletteIn  textinput.Model
	paletteSel int
}

// New returns the demo model. Dialogs are attached separately with Setup
// once the Provider exists.
func New() *Model {
	ti := textinput.New()
	ti.Placeholder = "type a command..."
	ti.Prompt = "> "
	ti.CharLimit = 40

	return &Model{
		keys:      defaultKeyMap(),
		status:    "ready",
		theme:     "dark",
		paletteIn: ti,
	}
}

// Setup attaches every dialog to the Provider. Called once after New.
func (m *Model) Setup(p *overlay.Provider) {
	duration := func(d time.Duration) time.Duration {
		if m.ReducedMotion {
			return overlay.DurationReduced / 2
		}
		return d
	}

	m.confirm = overlay.Attach(p,
		overlay.WithTitle("Confirm Delete"),
		overlay.WithVariant(overlay.VariantDanger),
		overlay.WithDuration(duration(overlay.DurationDefault)),
		overlay.WithOnCancel(func() { m.confirmOpen = false }),
		overlay.WithOnShowComplete(func() { m.status = "confirm dialog settled" }),
		overlay.WithOnHideComplete(func() { m.status = "confirm dialog dismissed" }),
	)

	m.settings = overlay.Attach(p,
		overlay.WithTitle("Settings"),
		overlay.WithVariant(overlay.VariantInfo),
		overlay.WithDuration(duration(overlay.DurationDefault)),
		overlay.WithOnCancel(func() { m.settingsOpen = false }),
		overlay.WithHints(overlay.Layout{MaxWidth: 54}),
	)

	// Help opts out of auto-close so opening the palette on top of it
	// keeps it registered as visible underneath.
	m.help = overlay.Attach(p,
		overlay.WithTitle("Help"),
		overlay.WithAutoClose(false),
		overlay.WithOnCancel(func() { m.helpOpen = false }),
		overlay.WithDuration(duration(overlay.DurationReduced)),
	)

	paletteOpts := []overlay.Option{
		overlay.WithProfile(overlay.SlideUpProfile),
		overlay.WithSpringMotion(7.0, 0.85),
		overlay.WithOnCancel(func() { m.paletteOpen = false }),
		overlay.WithHints(overlay.Layout{MaxWidth: 46}),
	}
	if m.ReducedMotion {
		// Springs ring; reduced motion swaps the palette to a plain ease.
		paletteOpts = []overlay.Option{
			overlay.WithProfile(overlay.SlideUpProfile),
			overlay.WithDuration(duration(overlay.DurationReduced)),
			overlay.WithOnCancel(func() { m.paletteOpen = false }),
			overlay.WithHints(overlay.Layout{MaxWidth: 46}),
		}
	}
	m.palette = overlay.Attach(p, paletteOpts...)
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.helpView = "" // re-render markdown at the new width

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))
	}

	// Interactive dialog content consumes messages while open. Every open
	// dialog contributes its command to the batch.
	if m.settingsOpen && m.form != nil {
		f, formCmd := m.form.Update(msg)
		if form, ok := f.(*huh.Form); ok {
			m.form = form
		}
		cmds = append(cmds, formCmd)
		if m.form.State == huh.StateCompleted {
			m.theme = m.form.GetString("theme")
			m.autosave = m.form.GetBool("autosave")
			m.settingsOpen = false
			m.status = fmt.Sprintf("settings saved: theme=%s autosave=%v", m.theme, m.autosave)
		}
	}
	if m.paletteOpen {
		if _, ok := msg.(tea.KeyMsg); !ok {
			var tiCmd tea.Cmd
			m.paletteIn, tiCmd = m.paletteIn.Update(msg)
			cmds = append(cmds, tiCmd)
		}
	}

	m.push()
	return m, tea.Batch(cmds...)
}

// handleKey routes global keys and keys for whichever dialog is open.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case m.paletteOpen:
		return m.handlePaletteKey(msg)

	case m.confirmOpen:
		switch msg.String() {
		case "enter", "y":
			m.confirmOpen = false
			m.status = "item deleted"
		case "n":
			m.confirmOpen = false
			m.status = "delete aborted"
		}
		return nil

	case m.helpOpen, m.settingsOpen:
		// Settings keys go to the form; help closes only via esc.
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Confirm):
		m.confirmOpen = true
	case key.Matches(msg, m.keys.Settings):
		return m.openSettings()
	case key.Matches(msg, m.keys.Help):
		m.helpOpen = true
	case key.Matches(msg, m.keys.Palette):
		m.openPalette()
	}
	return nil
}

func (m *Model) openSettings() tea.Cmd {
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("theme").
				Title("Theme").
				Options(
					huh.NewOption("Dark", "dark"),
					huh.NewOption("Light", "light"),
					huh.NewOption("Solarized", "solarized"),
				),
			huh.NewConfirm().
				Key("autosave").
				Title("Autosave?"),
		),
	)
	m.settingsOpen = true
	return m.form.Init()
}

// push re-registers content and visibility for every dialog. Declarative:
// the registry always reflects this update pass, nothing is retained.
func (m *Model) push() {
	m.confirm.SetContent(m.confirmView())
	m.confirm.SetVisible(m.confirmOpen)

	m.settings.SetContent(m.settingsView())
	m.settings.SetVisible(m.settingsOpen)

	m.help.SetContent(m.renderHelp())
	m.help.SetVisible(m.helpOpen)

	m.palette.SetContent(m.paletteView())
	m.palette.SetVisible(m.paletteOpen)
}

func (m *Model) confirmView() string {
	return "Delete this item?\n\n" +
		hintStyle.Render("enter/y: delete   n: keep   esc: cancel")
}

func (m *Model) settingsView() string {
	if m.form == nil {
		return ""
	}
	return m.form.View()
}

func (m *Model) View() string {
	title := titleStyle.Render("overlay demo")
	status := statusStyle.Render(m.status)

	hints := ""
	for i, b := range m.keys.bindings() {
		h := b.Help()
		if i > 0 {
			hints += "   "
		}
		hints += fmt.Sprintf("%s %s", h.Key, hintStyle.Render(h.Desc))
	}

	body := fmt.Sprintf("%s\n\n%s\n\n%s", title, hints, status)
	if m.width == 0 {
		return body
	}
	return lipgloss.NewStyle().Padding(1, 2).Width(m.width).Render(body)
}
