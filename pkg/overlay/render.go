package overlay

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// dialogWidth computes the responsive box width for the screen, honoring a
// MaxWidth hint when one is set.
func dialogWidth(screenW int, hints Layout) int {
	w := screenW * 60 / 100
	if w > 80 {
		w = 80
	}
	if w < 30 {
		w = 30
	}
	if hints.MaxWidth > 0 && w > hints.MaxWidth {
		w = hints.MaxWidth
	}
	return w
}

// renderBox renders content inside the dialog chrome at full scale, with
// the style's opacity already blended into the chrome colors.
func renderBox(content string, cfg Config, opacity float64, screenW int) string {
	maxW := dialogWidth(screenW, cfg.Hints)
	accent := fade(accentColor(cfg.Variant), opacity)
	body := lipgloss.NewStyle().Foreground(fade(colorText, opacity))

	inner := body.Render(content)
	if cfg.Title != "" {
		inner = titleStyle.Foreground(accent).Render(cfg.Title) + "\n\n" + inner
	}
	return boxStyle.
		BorderForeground(accent).
		MaxWidth(maxW).
		Render(inner)
}

// scaleBox crops the rendered box toward its center to approximate a scale
// transform. Text cells cannot shrink, so scale is a reveal, not a resize.
func scaleBox(box string, scale float64) string {
	if scale >= 0.999 {
		return box
	}
	lines := strings.Split(box, "\n")
	w := lipgloss.Width(box)
	h := len(lines)

	sw := int(math.Round(float64(w) * scale))
	sh := int(math.Round(float64(h) * scale))
	if sw < 1 {
		sw = 1
	}
	if sh < 1 {
		sh = 1
	}

	top := (h - sh) / 2
	left := (w - sw) / 2

	out := make([]string, 0, sh)
	for _, line := range lines[top : top+sh] {
		line = ansi.TruncateLeft(line, left, "")
		line = ansi.Truncate(line, sw, "")
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// overlayAt splices the overlay block over the base view at cell (x, y).
// The base is extended with blank lines as needed so an overlay anchored
// below short content still lands where the profile put it.
func overlayAt(base, over string, x, y, screenH int) string {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	baseLines := strings.Split(base, "\n")
	overLines := strings.Split(over, "\n")

	for _, ov := range overLines {
		if y >= screenH && screenH > 0 {
			break
		}
		for len(baseLines) <= y {
			baseLines = append(baseLines, "")
		}

		bl := baseLines[y]
		ow := ansi.StringWidth(ov)

		left := ansi.Truncate(bl, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(bl, x+ow, "")

		baseLines[y] = left + ov + right
		y++
	}
	return strings.Join(baseLines, "\n")
}

// boxOrigin anchors the (already scaled) box: centered on screen, then
// displaced by the frame style and the caller's layout hints.
func boxOrigin(screenW, screenH, boxW, boxH int, st Style, hints Layout) (int, int) {
	x := (screenW-boxW)/2 + st.OffsetX + hints.OffsetX
	y := (screenH-boxH)/2 + st.OffsetY + hints.OffsetY
	return x, y
}
