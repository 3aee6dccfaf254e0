package accordion

import "github.com/charmbracelet/lipgloss"

// Default palette for card chrome. Hosts override per card with WithBorder
// and WithAccent, or per toggle with Toggle.Styled.
var (
	// ColorAccent is the default border and toggle color.
	ColorAccent = lipgloss.Color("39")
	// ColorFocus highlights the focused card's border.
	ColorFocus = lipgloss.Color("213")
	// ColorBright is used by the top heading levels.
	ColorBright = lipgloss.Color("231")
	// ColorMuted is used by the low heading levels and hints.
	ColorMuted = lipgloss.Color("245")
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(0, 1)

	toggleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)
)

var headingStyles = [...]lipgloss.Style{
	LevelPlain: lipgloss.NewStyle(),
	LevelH1:    lipgloss.NewStyle().Bold(true).Underline(true).Foreground(ColorBright),
	LevelH2:    lipgloss.NewStyle().Bold(true).Foreground(ColorBright),
	LevelH3:    lipgloss.NewStyle().Bold(true),
	LevelH4:    lipgloss.NewStyle().Foreground(ColorAccent),
	LevelH5:    lipgloss.NewStyle().Foreground(ColorMuted),
	LevelH6:    lipgloss.NewStyle().Foreground(ColorMuted).Italic(true),
}

func headingStyle(level HeaderLevel) lipgloss.Style {
	if level < 0 || int(level) >= len(headingStyles) {
		return lipgloss.NewStyle()
	}
	return headingStyles[level]
}

const (
	indicatorOpen   = "▾"
	indicatorClosed = "▸"
)

// indicatorFor picks the chevron by the phase's resting target: opening and
// open cards point down, closing and closed cards point right.
func indicatorFor(v Visibility) string {
	switch v {
	case StartDown, AnimatingDown, Shown:
		return indicatorOpen
	default:
		return indicatorClosed
	}
}

// frameFor returns the card frame style with per-card chrome applied.
func frameFor(c Card, focused bool) lipgloss.Style {
	style := cardStyle
	if c.chrome.hasBorder {
		style = style.Border(c.chrome.border)
	}
	if c.chrome.hasAccent {
		style = style.BorderForeground(c.chrome.accent)
	}
	if focused {
		style = style.BorderForeground(ColorFocus)
	}
	return style
}
