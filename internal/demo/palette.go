package demo

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// paletteCommand pairs a palette entry with its effect on the model.
type paletteCommand struct {
	name string
	run  func(m *Model) tea.Cmd
}

var paletteCommands = []paletteCommand{
	{"open help", func(m *Model) tea.Cmd { m.helpOpen = true; return nil }},
	{"open settings", func(m *Model) tea.Cmd { return m.openSettings() }},
	{"delete item", func(m *Model) tea.Cmd { m.confirmOpen = true; return nil }},
	{"reset status", func(m *Model) tea.Cmd { m.status = "ready"; return nil }},
	{"toggle autosave", func(m *Model) tea.Cmd {
		m.autosave = !m.autosave
		m.status = fmt.Sprintf("autosave=%v", m.autosave)
		return nil
	}},
}

var (
	paletteMatchStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	paletteSelectStyle = lipgloss.NewStyle().Background(lipgloss.Color("237")).Foreground(lipgloss.Color("255"))
	paletteDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func (m *Model) openPalette() {
	m.paletteIn.SetValue("")
	m.paletteIn.Focus()
	m.paletteSel = 0
	m.paletteOpen = true
}

// paletteMatches filters the command list by the current query. An empty
// query lists everything in declared order.
func (m *Model) paletteMatches() []int {
	query := m.paletteIn.Value()
	if query == "" {
		idx := make([]int, len(paletteCommands))
		for i := range paletteCommands {
			idx[i] = i
		}
		return idx
	}
	names := make([]string, len(paletteCommands))
	for i, c := range paletteCommands {
		names[i] = c.name
	}
	matches := fuzzy.Find(query, names)
	idx := make([]int, len(matches))
	for i, match := range matches {
		idx[i] = match.Index
	}
	return idx
}

func (m *Model) handlePaletteKey(msg tea.KeyMsg) tea.Cmd {
	matched := m.paletteMatches()

	switch msg.String() {
	case "up":
		if m.paletteSel > 0 {
			m.paletteSel--
		}
		return nil
	case "down":
		if m.paletteSel < len(matched)-1 {
			m.paletteSel++
		}
		return nil
	case "enter":
		if m.paletteSel >= 0 && m.paletteSel < len(matched) {
			entry := paletteCommands[matched[m.paletteSel]]
			m.paletteOpen = false
			return entry.run(m)
		}
		return nil
	}

	var cmd tea.Cmd
	m.paletteIn, cmd = m.paletteIn.Update(msg)
	m.paletteSel = 0
	return cmd
}

func (m *Model) paletteView() string {
	var sb strings.Builder
	sb.WriteString(m.paletteIn.View())
	sb.WriteString("\n\n")

	matched := m.paletteMatches()
	if len(matched) == 0 {
		sb.WriteString(paletteDimStyle.Render("(no matching commands)"))
		return sb.String()
	}

	query := m.paletteIn.Value()
	names := make([]string, len(paletteCommands))
	for i, c := range paletteCommands {
		names[i] = c.name
	}

	for row, idx := range matched {
		line := names[idx]
		if query != "" {
			line = highlightMatch(names[idx], query)
		}
		cursor := "  "
		if row == m.paletteSel {
			cursor = "> "
			line = paletteSelectStyle.Render(names[idx])
		}
		if row > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(cursor + line)
	}
	return sb.String()
}

// highlightMatch bolds the characters fuzzy matching selected. Falls back
// to the plain name when the query no longer matches.
func highlightMatch(name, query string) string {
	matches := fuzzy.Find(query, []string{name})
	if len(matches) == 0 {
		return name
	}
	matchedAt := make(map[int]bool, len(matches[0].MatchedIndexes))
	for _, i := range matches[0].MatchedIndexes {
		matchedAt[i] = true
	}
	var sb strings.Builder
	for i, r := range name {
		if matchedAt[i] {
			sb.WriteString(paletteMatchStyle.Render(string(r)))
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
