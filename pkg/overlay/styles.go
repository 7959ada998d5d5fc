package overlay

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Variant selects the dialog's visual accent.
type Variant int

const (
	VariantDefault Variant = iota
	VariantDanger
	VariantWarning
	VariantInfo
)

// Palette. Hex values mirror the 256-color codes used across the demo so
// opacity blending can work in RGB space.
const (
	colorPrimary  = "#ff87d7"
	colorError    = "#ff0000"
	colorWarning  = "#ffaf00"
	colorInfo     = "#00d7ff"
	colorMuted    = "#626262"
	colorText     = "#d0d0d0"
	colorBackdrop = "#1c1c1c"
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().Bold(true)
)

// accentColor returns the border/title color for a variant.
func accentColor(v Variant) string {
	switch v {
	case VariantDanger:
		return colorError
	case VariantWarning:
		return colorWarning
	case VariantInfo:
		return colorInfo
	default:
		return colorPrimary
	}
}

// fade blends hex toward the backdrop color by 1-opacity. Opacity 1 returns
// the color unchanged, 0 returns the backdrop.
func fade(hex string, opacity float64) lipgloss.Color {
	if opacity >= 1 {
		return lipgloss.Color(hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return lipgloss.Color(hex)
	}
	bd, err := colorful.Hex(colorBackdrop)
	if err != nil {
		return lipgloss.Color(hex)
	}
	return lipgloss.Color(bd.BlendRgb(c, clamp01(opacity)).Hex())
}
