package accordion

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the configured cards as one vertical stack. Each toggle is
// zone-marked; pass the final composed frame through Scan so clicks resolve
// against absolute positions.
func (a *Accordion) View(state State, cfg Config) string {
	if len(cfg.Cards) == 0 {
		return ""
	}
	sections := make([]string, 0, len(cfg.Cards))
	for _, c := range cfg.Cards {
		sections = append(sections, a.renderCard(state, cfg, c))
	}
	if len(sections) == 1 {
		return sections[0]
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *Accordion) renderCard(state State, cfg Config, c Card) string {
	cs := state.GetOrInit(c.id)
	width := contentWidth(c, cfg.Width)
	if width < 1 {
		width = 1
	}

	header := a.renderHeader(c, cs, width)

	style := ProjectPanel(cs, a.spec)
	rows := style.Height
	if style.Transition != nil {
		rows = a.engine.Height(c.id, style.Height)
	}

	var body string
	switch {
	case style.Clip && rows <= 0:
		// fully collapsed: no body rows at all
	case style.Clip:
		body = lipgloss.NewStyle().
			MaxHeight(rows).
			Render(renderBlocks(c.blocks, width))
	default:
		body = renderBlocks(c.blocks, width)
	}

	inner := header
	if body != "" {
		inner = lipgloss.JoinVertical(lipgloss.Left, header, body)
	}

	frame := frameFor(c, cfg.Focus != "" && cfg.Focus == c.id)
	return frame.Width(cfg.Width - frame.GetHorizontalBorderSize()).Render(inner)
}

// renderHeader draws the header row: optional leading blocks, the marked
// toggle, optional trailing blocks.
func (a *Accordion) renderHeader(c Card, cs CardState, width int) string {
	h := c.header

	style := toggleStyle
	if h.level != LevelPlain {
		style = headingStyle(h.level)
	}
	if h.toggle.styled {
		style = h.toggle.style
	}
	toggle := style.Render(indicatorFor(cs.Visibility) + " " + h.toggle.label)
	if a.zones != nil {
		toggle = a.zones.Mark(a.prefix+c.id, toggle)
	}

	segments := make([]string, 0, len(h.before)+len(h.after)+1)
	for _, b := range h.before {
		segments = append(segments, b.Render(0))
	}
	segments = append(segments, toggle)
	for _, b := range h.after {
		segments = append(segments, b.Render(0))
	}
	row := strings.Join(segments, " ")

	if lipgloss.Width(row) > width {
		row = lipgloss.NewStyle().MaxWidth(width).Render(row)
	}
	return row
}
